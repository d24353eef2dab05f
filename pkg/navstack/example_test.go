package navstack_test

import (
	"fmt"

	"github.com/aviru02/navstack/pkg/navstack"
)

// Destination type for the example flow. Any comparable type works; the
// controller never inspects the payload.
type view struct {
	Name string
	ID   string
}

func (v view) String() string {
	if v.ID != "" {
		return v.Name + "(" + v.ID + ")"
	}
	return v.Name
}

// Example demonstrates pushing, compound pops, and the queries application
// code uses to answer "where am I".
func Example() {
	nav := navstack.New[view]()

	nav.Push(view{Name: "home"})
	nav.Push(view{Name: "detail", ID: "1"})
	nav.Push(view{Name: "settings"})

	fmt.Println("depth:", nav.Depth())

	// Back to home in one step; home stays on the stack.
	nav.PopTo(view{Name: "home"})

	current, _ := nav.Current()
	fmt.Println("current:", current)
	fmt.Println("contains detail:", nav.Contains(view{Name: "detail", ID: "1"}))

	// Output:
	// depth: 3
	// current: home
	// contains detail: false
}

// Example_hostConsumption shows how a rendering layer consumes the erased
// path: subscribe for changes, read entries, downcast to render.
func Example_hostConsumption() {
	nav := navstack.New[view]()

	cancel := nav.Subscribe(func(p navstack.Path) {
		if top, ok := p.Top(); ok {
			fmt.Println("render:", top.Value().(view))
		} else {
			fmt.Println("render: root")
		}
	})
	defer cancel()

	nav.Push(view{Name: "home"})
	nav.Push(view{Name: "detail", ID: "7"})
	nav.Replace(view{Name: "detail", ID: "8"}) // one transition, one render
	nav.PopToRoot()

	// Output:
	// render: home
	// render: detail(7)
	// render: detail(8)
	// render: root
}

// Example_registry shows retrieving a flow's controller from ambient
// context. A miss means "no controller mounted": skip the navigation call.
func Example_registry() {
	reg := navstack.NewRegistry()

	nav := navstack.New[view]()
	navstack.Register(reg, nav)

	if nav, ok := navstack.Lookup[view](reg); ok {
		nav.Push(view{Name: "home"})
	}

	type otherFlow struct{ Step int }
	if _, ok := navstack.Lookup[otherFlow](reg); !ok {
		fmt.Println("other flow not mounted")
	}

	fmt.Println("depth:", nav.Depth())

	// Output:
	// other flow not mounted
	// depth: 1
}
