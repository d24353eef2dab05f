// Package navstack provides a typed navigation-stack controller for
// single-stack, push/pop-style UI navigation.
//
// A Controller owns two representations of the same stack: an opaque,
// type-erased Path that a host rendering layer consumes to decide what is
// on screen, and a typed history that application code queries to answer
// "where am I / where have I been". The controller keeps both in lock-step
// under every operation, including the compound ones (PopTo, PopLast,
// Replace, PopAndPush).
//
// # Basic Usage
//
//	// Define a destination type for the flow. Any comparable type works;
//	// the controller never inspects its payload.
//	type Screen struct {
//	    Name string
//	    ID   string
//	}
//
//	nav := navstack.New[Screen]()
//
//	nav.Push(Screen{Name: "home"})
//	nav.Push(Screen{Name: "detail", ID: "42"})
//
//	if current, ok := nav.Current(); ok {
//	    // current.Name == "detail"
//	}
//
//	nav.Pop() // back to home
//
// Every edge case is a defined no-op or clamp, never an error: popping an
// empty stack does nothing, PopTo with an absent target leaves the stack
// untouched, PopLast clamps to the current depth. Navigation requests are
// typically issued from UI event handlers with no error-handling path, so
// the contract favors silent, well-defined degradation over failure.
//
// # Host Consumption
//
// The host rendering layer reads the erased path rather than the typed
// history:
//
//	p := nav.Path()
//	if top, ok := p.Top(); ok {
//	    render(top.Value().(Screen))
//	}
//
// Hosts that re-render on change subscribe instead of polling:
//
//	cancel := nav.Subscribe(func(p navstack.Path) {
//	    // called once per state-changing operation, in operation order
//	})
//	defer cancel()
//
// # Ambient Controllers
//
// A Registry lets descendant UI code retrieve "the controller for flow
// type D" without threading it through every constructor:
//
//	reg := navstack.NewRegistry()
//	navstack.Register(reg, nav)
//
//	if nav, ok := navstack.Lookup[Screen](reg); ok {
//	    nav.Push(Screen{Name: "settings"})
//	}
//
// A Lookup miss means "no controller mounted for this flow"; callers skip
// the navigation call rather than treating it as a failure.
//
// # Concurrency
//
// A Controller instance is confined to one goroutine, normally the UI event
// loop that also drives the host layer. It takes no locks, performs no I/O
// and never blocks; every operation completes synchronously before
// returning. Independent controllers (one per flow) share no state.
package navstack
