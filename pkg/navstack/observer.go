package navstack

// subscription pairs a subscriber callback with its registration id.
type subscription struct {
	id int
	fn func(Path)
}

// Subscribe registers fn to be called synchronously, with a snapshot of the
// new path, after every operation that changed the stack. Operations that
// leave the stack untouched (popping an empty stack, a PopTo miss) do not
// fire, so notification order matches navigation intent. Compound
// operations (Replace, PopAndPush) fire once with their end state.
//
// Callbacks run on the goroutine that invoked the operation and are
// delivered in subscription order. The returned cancel function removes the
// subscription; calling it more than once is harmless.
func (c *Controller[D]) Subscribe(fn func(Path)) (cancel func()) {
	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Revision returns a counter that increases by one for every operation that
// changed the stack. Host code polling from a render goroutine may read it
// to detect staleness cheaply; all mutation still belongs on the owning
// goroutine.
func (c *Controller[D]) Revision() int64 {
	return c.revision.Load()
}

func (c *Controller[D]) notify() {
	if len(c.subs) == 0 {
		return
	}
	snapshot := c.Path()
	for _, s := range c.subs {
		s.fn(snapshot)
	}
}
