package navstack

import (
	"go.uber.org/atomic"

	"github.com/aviru02/navstack/pkg/navstack/internal"
)

// Controller owns a single navigation stack for one independent flow.
// It maintains the erased host-facing path and the typed history in
// lock-step: after every operation both hold the same entries in the same
// order. Create one Controller per navigable flow and keep all access to it
// on the flow's UI goroutine.
//
// No operation returns an error or panics; every edge case (empty stack,
// absent target, excessive pop count) has a defined no-op or clamped
// outcome documented on the operation.
type Controller[D comparable] struct {
	path    Path
	history []D

	revision atomic.Int64
	subs     []subscription
	nextSub  int
}

// New creates an empty Controller. The controller begins at an implicit
// root that is not itself a stack entry; the root view is supplied by the
// host layer.
func New[D comparable]() *Controller[D] {
	return &Controller[D]{
		history: make([]D, 0),
	}
}

// Push appends d to the stack and makes it the current top.
// Always succeeds; depth increases by exactly one.
func (c *Controller[D]) Push(d D) {
	c.appendEntry(d)
	c.changed("push")
}

// Pop removes the current top entry. Popping an empty stack is a no-op.
func (c *Controller[D]) Pop() {
	if len(c.history) == 0 {
		return
	}
	c.truncate(len(c.history) - 1)
	c.changed("pop")
}

// PopToRoot removes every entry, returning the flow to its root view.
// Idempotent: calling it on an empty stack is a no-op.
func (c *Controller[D]) PopToRoot() {
	if len(c.history) == 0 {
		return
	}
	c.truncate(0)
	c.changed("pop_to_root")
}

// PopTo truncates the stack so the most recent entry equal to target
// becomes the new top; target itself stays on the stack. The most recent
// match wins when the same destination occurs at several depths. If target
// is not on the stack, or is already the top, the stack is left untouched.
func (c *Controller[D]) PopTo(target D) {
	k := c.lastIndexOf(target)
	if k < 0 || k == len(c.history)-1 {
		return
	}
	c.truncate(k + 1)
	c.changed("pop_to")
}

// PopLast removes the n most recent entries, clamped to the current depth.
// Zero or negative n is a no-op. Asking for more pops than exist degrades
// to PopToRoot; callers that need exact-count semantics should check
// Depth first.
func (c *Controller[D]) PopLast(n int) {
	if n <= 0 || len(c.history) == 0 {
		return
	}
	if n > len(c.history) {
		n = len(c.history)
	}
	c.truncate(len(c.history) - n)
	c.changed("pop_last")
}

// Replace swaps the current top for d as a single observable transition;
// subscribers never see the intermediate stack with one fewer entry.
// On an empty stack Replace behaves as Push.
func (c *Controller[D]) Replace(d D) {
	if n := len(c.history); n > 0 {
		c.truncate(n - 1)
	}
	c.appendEntry(d)
	c.changed("replace")
}

// PopAndPush truncates back to the most recent entry equal to target, then
// pushes next on top. When target is not on the stack the truncation is
// skipped and next lands on the unchanged stack, so callers must not assume
// the stack was shortened.
func (c *Controller[D]) PopAndPush(target, next D) {
	if k := c.lastIndexOf(target); k >= 0 {
		c.truncate(k + 1)
	}
	c.appendEntry(next)
	c.changed("pop_and_push")
}

// Current returns the top destination.
// Returns false if the stack is empty.
func (c *Controller[D]) Current() (D, bool) {
	if len(c.history) == 0 {
		var zero D
		return zero, false
	}
	return c.history[len(c.history)-1], true
}

// History returns a copy of the typed history, root-adjacent first.
func (c *Controller[D]) History() []D {
	out := make([]D, len(c.history))
	copy(out, c.history)
	return out
}

// Depth returns the number of entries on the stack. Zero means the flow is
// at its root.
func (c *Controller[D]) Depth() int {
	return len(c.history)
}

// Contains reports whether d is anywhere on the stack.
func (c *Controller[D]) Contains(d D) bool {
	return c.lastIndexOf(d) >= 0
}

// IsEmpty returns true if the stack has no entries.
func (c *Controller[D]) IsEmpty() bool {
	return len(c.history) == 0
}

// CanPop reports whether there is anything to go back from. It is derived
// from the host-facing path rather than the typed history, mirroring the
// host framework's own notion of "can go back"; with the parity invariant
// the two always agree.
func (c *Controller[D]) CanPop() bool {
	return !c.path.IsEmpty()
}

// Path returns a snapshot of the host-facing path. The snapshot does not
// change when the controller does; hosts re-read it (or Subscribe) to stay
// current.
func (c *Controller[D]) Path() Path {
	elements := make([]Element, len(c.path.elements))
	copy(elements, c.path.elements)
	return Path{elements: elements}
}

// appendEntry adds d to the tail of both representations.
func (c *Controller[D]) appendEntry(d D) {
	c.path.elements = append(c.path.elements, Element{value: d})
	c.history = append(c.history, d)
}

// truncate drops every entry at index keep and above from both
// representations. Interior entries are never touched; all mutation is
// tail removal here plus tail append in appendEntry.
func (c *Controller[D]) truncate(keep int) {
	c.path.elements = c.path.elements[:keep]
	c.history = c.history[:keep]
}

// lastIndexOf returns the highest index whose entry equals d, or -1.
func (c *Controller[D]) lastIndexOf(d D) int {
	for i := len(c.history) - 1; i >= 0; i-- {
		if c.history[i] == d {
			return i
		}
	}
	return -1
}

// changed records a completed state-changing operation: bumps the revision,
// logs it, and notifies subscribers exactly once.
func (c *Controller[D]) changed(op string) {
	rev := c.revision.Inc()
	internal.GetInternalLogger().Debug("navigation stack changed",
		"op", op,
		"depth", len(c.history),
		"revision", rev)
	c.notify()
}
