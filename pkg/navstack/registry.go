package navstack

import "reflect"

// Registry maps destination types to controller handles so descendant UI
// code can retrieve "the controller for flow type D" from ambient context
// instead of threading it through every constructor. One registry typically
// lives at the application shell; each independent flow registers its
// controller under its own destination type.
//
// The registry is deliberately external to the stack algorithm: a Lookup
// miss means "no controller mounted for this flow", and callers skip the
// navigation call rather than treating it as a failure.
type Registry struct {
	controllers map[reflect.Type]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		controllers: make(map[reflect.Type]any),
	}
}

// Register makes c retrievable via Lookup[D]. Registering a second
// controller for the same destination type replaces the first.
func Register[D comparable](r *Registry, c *Controller[D]) {
	r.controllers[destinationType[D]()] = c
}

// Unregister removes the controller for destination type D, if any.
// Call when the flow unmounts so stale handles cannot be resolved.
func Unregister[D comparable](r *Registry) {
	delete(r.controllers, destinationType[D]())
}

// Lookup retrieves the controller registered for destination type D.
// Returns (nil, false) when no controller of that type has been registered.
func Lookup[D comparable](r *Registry) (*Controller[D], bool) {
	h, ok := r.controllers[destinationType[D]()]
	if !ok {
		return nil, false
	}
	// Checked downcast of the erased handle. The key is derived from D, so
	// a mismatch would mean registry corruption; surface it as absence.
	c, ok := h.(*Controller[D])
	if !ok {
		return nil, false
	}
	return c, true
}

func destinationType[D comparable]() reflect.Type {
	return reflect.TypeOf((*D)(nil)).Elem()
}
