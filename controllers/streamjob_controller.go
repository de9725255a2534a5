package controllers

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	jobmilliov1alpha1 "github.com/jobmill-project/jobmill/api/v1alpha1"
	"github.com/jobmill-project/jobmill/pkg/recovery"
)

// StreamJobReconciler reconciles a StreamJob object
type StreamJobReconciler struct {
	client.Client
	Scheme *runtime.Scheme
}

// +kubebuilder:rbac:groups=jobmill.io,resources=streamjobs,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=jobmill.io,resources=streamjobs/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=core,resources=events,verbs=create;patch

// Reconcile is the main reconciliation loop for StreamJob resources
func (r *StreamJobReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	// Fetch the StreamJob instance
	job := &jobmilliov1alpha1.StreamJob{}
	err := r.Get(ctx, req.NamespacedName, job)
	if err != nil {
		if errors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	// Nothing to do for objects under deletion
	if !job.ObjectMeta.DeletionTimestamp.IsZero() {
		return ctrl.Result{}, nil
	}

	// Skip if this generation was already processed
	if job.Status.ObservedGeneration == job.Generation && job.Status.Phase != "" {
		return ctrl.Result{}, nil
	}

	settings, err := restoreSettingsForSpec(job.Spec.Restore)
	if err != nil {
		logger.Error(err, "Rejecting StreamJob with invalid restore settings")
		return ctrl.Result{}, r.markInvalid(ctx, job, err)
	}

	return ctrl.Result{}, r.markAccepted(ctx, job, settings)
}

// restoreSettingsForSpec normalizes the restore block of a StreamJob spec.
// A missing block means the job starts from empty state; omitted fields
// take the same defaults the option keys declare.
func restoreSettingsForSpec(spec *jobmilliov1alpha1.RestoreSpec) (recovery.Settings, error) {
	if spec == nil {
		return recovery.None(), nil
	}

	allowNonRestoredState := recovery.IgnoreUnclaimedStateOption.Default()
	if spec.AllowNonRestoredState != nil {
		allowNonRestoredState = *spec.AllowNonRestoredState
	}

	claimMode := recovery.ClaimModeOption.Default()
	if spec.ClaimMode != "" {
		mode, err := recovery.ParseClaimMode(spec.ClaimMode)
		if err != nil {
			return recovery.Settings{}, err
		}
		claimMode = mode
	}

	return recovery.ForPathWithClaimMode(spec.SavepointPath, allowNonRestoredState, claimMode)
}

// markAccepted records a valid submission on the status subresource
func (r *StreamJobReconciler) markAccepted(ctx context.Context, job *jobmilliov1alpha1.StreamJob, settings recovery.Settings) error {
	now := metav1.Now()
	job.Status.Phase = jobmilliov1alpha1.StreamJobPhaseAccepted
	job.Status.Message = "Submission accepted"
	job.Status.RestoreSettings = settings.String()
	job.Status.ObservedGeneration = job.Generation
	job.Status.AcceptedAt = &now

	meta.SetStatusCondition(&job.Status.Conditions, metav1.Condition{
		Type:               jobmilliov1alpha1.ConditionRestoreSettingsValid,
		Status:             metav1.ConditionTrue,
		ObservedGeneration: job.Generation,
		Reason:             "Valid",
		Message:            settings.String(),
	})

	return r.Status().Update(ctx, job)
}

// markInvalid records a rejected submission on the status subresource
func (r *StreamJobReconciler) markInvalid(ctx context.Context, job *jobmilliov1alpha1.StreamJob, cause error) error {
	job.Status.Phase = jobmilliov1alpha1.StreamJobPhaseInvalid
	job.Status.Message = fmt.Sprintf("Invalid restore settings: %v", cause)
	job.Status.RestoreSettings = ""
	job.Status.ObservedGeneration = job.Generation
	job.Status.AcceptedAt = nil

	meta.SetStatusCondition(&job.Status.Conditions, metav1.Condition{
		Type:               jobmilliov1alpha1.ConditionRestoreSettingsValid,
		Status:             metav1.ConditionFalse,
		ObservedGeneration: job.Generation,
		Reason:             "InvalidRestoreSettings",
		Message:            cause.Error(),
	})

	return r.Status().Update(ctx, job)
}

// SetupWithManager sets up the controller with the Manager
func (r *StreamJobReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&jobmilliov1alpha1.StreamJob{}).
		Complete(r)
}
