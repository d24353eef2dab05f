// Package teahost mounts a navstack Controller into a Bubble Tea program.
//
// The host model owns no navigation state: every frame is rendered from the
// controller's published path, and every navigation key is forwarded to the
// controller. Applications supply one RenderFunc mapping a destination to
// its view body, and a RootView for the empty stack.
//
//	type Screen struct{ Name string }
//
//	nav := navstack.New[Screen]()
//
//	m := teahost.New(nav, func(s Screen) string {
//	    return "This is " + s.Name
//	})
//	m.RootView = "Welcome"
//
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	if _, err := p.Run(); err != nil {
//	    ...
//	}
//
// The controller must only ever be mutated from the Bubble Tea update loop;
// application messages that navigate should call controller operations from
// their Update handling, never from other goroutines.
//
// Colors come from a Theme, either DefaultTheme or one loaded from a TOML
// file via LoadTheme.
package teahost
