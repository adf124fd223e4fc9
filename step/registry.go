package step

import "fmt"

// Registry is an ordered mapping from step identifier to descriptor.
// Iteration order is registration order, which drives execution order.
// It is populated wholesale by the caller before a run begins and is not
// safe for concurrent mutation; the runner only reads it.
type Registry struct {
	ids     []string
	entries map[string]*Descriptor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Descriptor),
	}
}

// Register validates the descriptor and adds it under id. Registering the
// same identifier twice is an error.
func (r *Registry) Register(id string, d *Descriptor) error {
	if d == nil {
		return &InvalidDescriptorError{ID: id, Reason: "descriptor is nil"}
	}
	if err := d.Validate(id); err != nil {
		return err
	}
	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("step '%s' already registered", id)
	}
	r.ids = append(r.ids, id)
	r.entries[id] = d
	return nil
}

// Get looks up the descriptor for id.
func (r *Registry) Get(id string) (*Descriptor, error) {
	d, ok := r.entries[id]
	if !ok {
		return nil, &UnknownStepError{ID: id}
	}
	return d, nil
}

// IDs returns the registered identifiers in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}

// Len returns the number of registered steps.
func (r *Registry) Len() int {
	return len(r.ids)
}
