package navstack

// Element is a single type-erased entry in a Path. It carries just enough
// for a host layer to render: the destination value with its static type
// removed.
type Element struct {
	value any
}

// Value returns the erased destination value.
func (e Element) Value() any {
	return e.value
}

// Path is the host-facing ordered sequence of erased destination entries,
// from root-adjacent (index 0) to most recent (last index). It mirrors the
// controller's typed history entry for entry; hosts only ever read it, all
// mutation happens through the Controller.
type Path struct {
	elements []Element
}

// Len returns the number of entries in the path.
func (p Path) Len() int {
	return len(p.elements)
}

// IsEmpty returns true if the path has no entries.
func (p Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// At returns the entry at index i. Indexing follows slice semantics:
// i must be in [0, Len()).
func (p Path) At(i int) Element {
	return p.elements[i]
}

// Top returns the most recent entry.
// Returns false if the path is empty.
func (p Path) Top() (Element, bool) {
	if len(p.elements) == 0 {
		return Element{}, false
	}
	return p.elements[len(p.elements)-1], true
}
