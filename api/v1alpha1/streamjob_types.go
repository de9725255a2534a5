package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// StreamJobSpec defines the desired state of StreamJob
type StreamJobSpec struct {
	// EntryClass is the entry point of the job program
	EntryClass string `json:"entryClass"`

	// Parallelism is the default parallelism of the job
	// +optional
	// +kubebuilder:default=1
	// +kubebuilder:validation:Minimum=1
	Parallelism int32 `json:"parallelism,omitempty"`

	// Restore requests resuming the job from a savepoint. Absence of this
	// block means the job starts from empty state.
	// +optional
	Restore *RestoreSpec `json:"restore,omitempty"`
}

// RestoreSpec carries savepoint restore settings on a StreamJob
type RestoreSpec struct {
	// SavepointPath is the savepoint location to restore from
	SavepointPath string `json:"savepointPath"`

	// AllowNonRestoredState drops savepoint state that no longer maps to
	// the job instead of failing the restore
	// +optional
	AllowNonRestoredState *bool `json:"allowNonRestoredState,omitempty"`

	// ClaimMode is the recovery claim mode
	// +optional
	// +kubebuilder:validation:Enum=NO_CLAIM;CLAIM;LEGACY
	ClaimMode string `json:"claimMode,omitempty"`
}

// StreamJobStatus defines the observed state of StreamJob
type StreamJobStatus struct {
	// Phase is the current phase of the job submission
	// +optional
	Phase StreamJobPhase `json:"phase,omitempty"`

	// Message provides human-readable status information
	// +optional
	Message string `json:"message,omitempty"`

	// RestoreSettings is the normalized rendering of the effective restore
	// settings, for diagnostics
	// +optional
	RestoreSettings string `json:"restoreSettings,omitempty"`

	// ObservedGeneration is the spec generation last processed
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// AcceptedAt is when the submission was accepted
	// +optional
	AcceptedAt *metav1.Time `json:"acceptedAt,omitempty"`

	// Conditions represent the latest available observations
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// StreamJobPhase represents the lifecycle phase of a job submission
// +kubebuilder:validation:Enum=Pending;Accepted;Invalid
type StreamJobPhase string

const (
	// StreamJobPhasePending means the submission has not been processed yet
	StreamJobPhasePending StreamJobPhase = "Pending"

	// StreamJobPhaseAccepted means the submission is valid and handed to
	// the scheduler
	StreamJobPhaseAccepted StreamJobPhase = "Accepted"

	// StreamJobPhaseInvalid means the submission was rejected
	StreamJobPhaseInvalid StreamJobPhase = "Invalid"
)

// ConditionRestoreSettingsValid reports whether the restore block of the
// spec forms valid restore settings.
const ConditionRestoreSettingsValid = "RestoreSettingsValid"

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=sjob
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Restore",type=string,JSONPath=`.spec.restore.savepointPath`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`
// +genclient

// StreamJob is the Schema for the streamjobs API
type StreamJob struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   StreamJobSpec   `json:"spec,omitempty"`
	Status StreamJobStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// StreamJobList contains a list of StreamJob
type StreamJobList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []StreamJob `json:"items"`
}

func init() {
	SchemeBuilder.Register(&StreamJob{}, &StreamJobList{})
}

// GetCondition returns the condition with the given type
func (j *StreamJob) GetCondition(conditionType string) *metav1.Condition {
	for i := range j.Status.Conditions {
		if j.Status.Conditions[i].Type == conditionType {
			return &j.Status.Conditions[i]
		}
	}
	return nil
}
