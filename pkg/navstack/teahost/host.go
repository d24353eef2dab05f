package teahost

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aviru02/navstack/pkg/navstack"
)

// RenderFunc maps one destination to its displayable view body.
// It must be a pure function of the destination value: the host calls it
// whenever the entry is newly on screen.
type RenderFunc[D comparable] func(d D) string

// KeyMap defines the navigation key bindings for a Model.
type KeyMap struct {
	Back key.Binding
	Root key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the standard bindings: esc goes back one entry,
// ctrl+r returns to the root, q or ctrl+c quits.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Root: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "root"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is a Bubble Tea model that renders the top of a navigation stack.
// It consumes the controller's erased path, never the typed history, and
// forwards navigation keys to the controller. Mutate the controller only
// from the Bubble Tea update loop.
type Model[D comparable] struct {
	nav    *navstack.Controller[D]
	render RenderFunc[D]

	// RootView is rendered when the stack is empty. The root is not itself
	// a stack entry.
	RootView string

	Keys   KeyMap
	Styles Styles

	width    int
	height   int
	quitting bool
}

var _ tea.Model = Model[int]{}

// New creates a host model for nav, rendering destinations through render.
func New[D comparable](nav *navstack.Controller[D], render RenderFunc[D]) Model[D] {
	return Model[D]{
		nav:    nav,
		render: render,
		Keys:   DefaultKeyMap(),
		Styles: DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model[D]) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Navigation keys act directly on the
// controller; the next View reads the updated path.
func (m Model[D]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Back):
			m.nav.Pop()
		case key.Matches(msg, m.Keys.Root):
			m.nav.PopToRoot()
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model[D]) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.breadcrumb())
	b.WriteString("\n\n")

	path := m.nav.Path()
	if top, ok := path.Top(); ok {
		b.WriteString(m.Styles.Body.Render(m.render(top.Value().(D))))
	} else {
		b.WriteString(m.Styles.Body.Render(m.RootView))
	}

	b.WriteString("\n\n")
	b.WriteString(m.Styles.Hint.Render(m.hints()))

	return b.String()
}

// breadcrumb renders the erased path as a trail, root first, with the
// current top in the accent style.
func (m Model[D]) breadcrumb() string {
	path := m.nav.Path()

	parts := make([]string, 0, path.Len()+1)
	parts = append(parts, m.Styles.Breadcrumb.Render("root"))
	for i := 0; i < path.Len(); i++ {
		label := fmt.Sprint(path.At(i).Value())
		if i == path.Len()-1 {
			parts = append(parts, m.Styles.Accent.Render(label))
		} else {
			parts = append(parts, m.Styles.Breadcrumb.Render(label))
		}
	}

	return strings.Join(parts, " › ")
}

// hints lists the active key bindings for the footer. Back and root hints
// only appear when there is somewhere to go back to.
func (m Model[D]) hints() string {
	var parts []string

	if m.nav.CanPop() {
		parts = append(parts,
			m.Keys.Back.Help().Key+" "+m.Keys.Back.Help().Desc,
			m.Keys.Root.Help().Key+" "+m.Keys.Root.Help().Desc,
		)
	}
	parts = append(parts, m.Keys.Quit.Help().Key+" "+m.Keys.Quit.Help().Desc)

	return strings.Join(parts, " │ ")
}
