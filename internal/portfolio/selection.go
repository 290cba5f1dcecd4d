package portfolio

// Selection is the id of the expanded project card. The zero value means no
// card is expanded. Holding a single id makes at most one card expandable.
type Selection struct {
	id string
}

// Selected returns a selection with id expanded.
func Selected(id string) Selection {
	return Selection{id: id}
}

// Toggle collapses the card if id is already expanded and otherwise expands
// id in place of whatever was expanded before. Ids missing from the catalog
// are accepted; they simply match no card.
func (s Selection) Toggle(id string) Selection {
	if s.id == id {
		return Selection{}
	}
	return Selection{id: id}
}

// ID is the expanded project id, empty when none is.
func (s Selection) ID() string {
	return s.id
}

// IsEmpty reports whether no card is expanded.
func (s Selection) IsEmpty() bool {
	return s.id == ""
}

// IsExpanded reports whether the card with id is the expanded one.
func (s Selection) IsExpanded(id string) bool {
	return s.id != "" && s.id == id
}
