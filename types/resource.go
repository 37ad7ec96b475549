package types

// Resource is one cloud resource as reported by a listing API. Adapters
// fill in only the fields the sweep filter needs; everything else stays
// behind in the API response.
type Resource struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Name      string            `json:"name"`
	Location  string            `json:"location,omitempty"`
	Labels    map[string]string `json:"labels,omitempty"`
	Timestamp string            `json:"timestamp"`
	InUseBy   []string          `json:"in_use_by,omitempty"`
}

// IsProtected checks if the resource carries the protection label.
// Any value counts; the label's presence is the opt-out.
func (r *Resource) IsProtected(label string) bool {
	if r.Labels == nil {
		return false
	}
	_, ok := r.Labels[label]
	return ok
}

// InUse checks if anything still references the resource.
func (r *Resource) InUse() bool {
	return len(r.InUseBy) > 0
}
