package portfolio

// Layout is the arrangement of the projects section.
type Layout string

const (
	LayoutGrid   Layout = "grid"
	LayoutDetail Layout = "detail"
)

const (
	LabelExpand   = "View Details"
	LabelCollapse = "Show Less"
	IconExpand    = "info"
	IconCollapse  = "chevron-up"
)

// GridBreakpoint is the column count applied from MinWidth pixels upward.
type GridBreakpoint struct {
	MinWidth int
	Columns  int
}

// GridColumns are the grid column counts by viewport width.
var GridColumns = []GridBreakpoint{
	{MinWidth: 0, Columns: 1},
	{MinWidth: 768, Columns: 2},
	{MinWidth: 1024, Columns: 3},
}

// ColumnsFor returns the grid column count for a viewport width.
func ColumnsFor(width int) int {
	cols := GridColumns[0].Columns
	for _, bp := range GridColumns {
		if width >= bp.MinWidth {
			cols = bp.Columns
		}
	}
	return cols
}

// CardView is one project card as the templates draw it.
type CardView struct {
	Project     ProjectRecord
	Expanded    bool
	ShowDetails bool
	ButtonLabel string
	ButtonIcon  string
}

// ProjectsView is the rendered state of the projects section.
type ProjectsView struct {
	Layout   Layout
	Selected string
	Cards    []CardView
}

// IsGrid reports whether every card is drawn in the summary grid.
func (v ProjectsView) IsGrid() bool {
	return v.Layout == LayoutGrid
}

// Render decides the layout for a selection. An empty selection shows every
// record as a summary card in the grid. Otherwise only the selected record
// is shown full width, with its details when it has any; a selection that
// matches no record yields the detail layout with no cards.
func Render(sel Selection, cat *Catalog) ProjectsView {
	if sel.IsEmpty() {
		projects := cat.Projects()
		cards := make([]CardView, 0, len(projects))
		for _, p := range projects {
			cards = append(cards, newCard(p, false))
		}
		return ProjectsView{Layout: LayoutGrid, Cards: cards}
	}

	view := ProjectsView{Layout: LayoutDetail, Selected: sel.ID()}
	if p, ok := cat.Lookup(sel.ID()); ok {
		view.Cards = []CardView{newCard(p, true)}
	}
	return view
}

func newCard(p ProjectRecord, expanded bool) CardView {
	card := CardView{
		Project:     p,
		Expanded:    expanded,
		ShowDetails: expanded && p.HasDetails(),
		ButtonLabel: LabelExpand,
		ButtonIcon:  IconExpand,
	}
	if expanded {
		card.ButtonLabel = LabelCollapse
		card.ButtonIcon = IconCollapse
	}
	return card
}
