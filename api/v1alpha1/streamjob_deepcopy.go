package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

// DeepCopy implements the DeepCopy method for StreamJob
func (in *StreamJob) DeepCopy() *StreamJob {
	if in == nil {
		return nil
	}
	out := new(StreamJob)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto implements the DeepCopyInto method for StreamJob
func (in *StreamJob) DeepCopyInto(out *StreamJob) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
	in.Status.DeepCopyInto(&out.Status)
}

// DeepCopyObject implements the DeepCopyObject method for StreamJob
func (in *StreamJob) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

// DeepCopy implements the DeepCopy method for StreamJobList
func (in *StreamJobList) DeepCopy() *StreamJobList {
	if in == nil {
		return nil
	}
	out := new(StreamJobList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto implements the DeepCopyInto method for StreamJobList
func (in *StreamJobList) DeepCopyInto(out *StreamJobList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		in, out := &in.Items, &out.Items
		*out = make([]StreamJob, len(*in))
		for i := range *in {
			(*in)[i].DeepCopyInto(&(*out)[i])
		}
	}
}

// DeepCopyObject implements the DeepCopyObject method for StreamJobList
func (in *StreamJobList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

// DeepCopy implements the DeepCopy method for StreamJobSpec
func (in *StreamJobSpec) DeepCopy() *StreamJobSpec {
	if in == nil {
		return nil
	}
	out := new(StreamJobSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto implements the DeepCopyInto method for StreamJobSpec
func (in *StreamJobSpec) DeepCopyInto(out *StreamJobSpec) {
	*out = *in
	if in.Restore != nil {
		in, out := &in.Restore, &out.Restore
		*out = new(RestoreSpec)
		(*in).DeepCopyInto(*out)
	}
}

// DeepCopy implements the DeepCopy method for RestoreSpec
func (in *RestoreSpec) DeepCopy() *RestoreSpec {
	if in == nil {
		return nil
	}
	out := new(RestoreSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto implements the DeepCopyInto method for RestoreSpec
func (in *RestoreSpec) DeepCopyInto(out *RestoreSpec) {
	*out = *in
	if in.AllowNonRestoredState != nil {
		in, out := &in.AllowNonRestoredState, &out.AllowNonRestoredState
		*out = new(bool)
		**out = **in
	}
}

// DeepCopy implements the DeepCopy method for StreamJobStatus
func (in *StreamJobStatus) DeepCopy() *StreamJobStatus {
	if in == nil {
		return nil
	}
	out := new(StreamJobStatus)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto implements the DeepCopyInto method for StreamJobStatus
func (in *StreamJobStatus) DeepCopyInto(out *StreamJobStatus) {
	*out = *in
	if in.AcceptedAt != nil {
		in, out := &in.AcceptedAt, &out.AcceptedAt
		*out = (*in).DeepCopy()
	}
	if in.Conditions != nil {
		in, out := &in.Conditions, &out.Conditions
		*out = make([]metav1.Condition, len(*in))
		for i := range *in {
			(*in)[i].DeepCopyInto(&(*out)[i])
		}
	}
}
