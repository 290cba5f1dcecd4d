package portfolio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := NewCatalog(
		ProjectRecord{ID: "p1", Title: "One", Details: &ProjectDetails{Description: "first"}},
		ProjectRecord{ID: "p2", Title: "Two", Details: &ProjectDetails{Description: "second", KeyFeatures: []string{"a", "b"}}},
		ProjectRecord{ID: "p3", Title: "Three"},
	)
	require.NoError(t, err)
	return cat
}

func TestNewCatalogKeepsOrder(t *testing.T) {
	cat := testCatalog(t)

	require.Equal(t, 3, cat.Len())
	ids := []string{}
	for _, p := range cat.Projects() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids)

	p, ok := cat.Lookup("p2")
	require.True(t, ok)
	assert.Equal(t, "Two", p.Title)
	assert.False(t, cat.Has("missing"))
}

func TestNewCatalogRejectsBadIDs(t *testing.T) {
	_, err := NewCatalog(ProjectRecord{ID: " "})
	assert.True(t, errors.Is(err, ErrEmptyProjectID))

	_, err = NewCatalog(ProjectRecord{ID: "a"}, ProjectRecord{ID: "a"})
	assert.True(t, errors.Is(err, ErrDuplicateProjectID))

	for _, id := range []string{" p1", "p1 ", "\tp1\n"} {
		_, err = NewCatalog(ProjectRecord{ID: id})
		assert.True(t, errors.Is(err, ErrInvalidProjectID), "id %q", id)
	}
}

func TestProjectsReturnsCopy(t *testing.T) {
	cat := testCatalog(t)
	projects := cat.Projects()
	projects[0].Title = "changed"

	p, _ := cat.Lookup("p1")
	assert.Equal(t, "One", p.Title)
}

func TestProjectsCopiesDetails(t *testing.T) {
	features := []string{"fast"}
	cat, err := NewCatalog(ProjectRecord{ID: "d", Details: &ProjectDetails{Description: "orig", KeyFeatures: features}})
	require.NoError(t, err)

	features[0] = "changed by caller"
	projects := cat.Projects()
	projects[0].Details.Description = "changed"
	projects[0].Details.KeyFeatures[0] = "changed"

	looked, _ := cat.Lookup("d")
	looked.Details.KeyFeatures = append(looked.Details.KeyFeatures, "extra")

	p, ok := cat.Lookup("d")
	require.True(t, ok)
	assert.Equal(t, "orig", p.Details.Description)
	assert.Equal(t, []string{"fast"}, p.Details.KeyFeatures)
}

func TestToggle(t *testing.T) {
	var sel Selection
	assert.True(t, sel.IsEmpty())

	for _, id := range []string{"p1", "p2", "p3"} {
		once := Selection{}.Toggle(id)
		assert.Equal(t, id, once.ID(), "toggle from empty selects")
		assert.True(t, once.Toggle(id).IsEmpty(), "second toggle collapses")
	}

	sel = sel.Toggle("p1").Toggle("p2")
	assert.Equal(t, "p2", sel.ID())
	assert.True(t, sel.IsExpanded("p2"))
	assert.False(t, sel.IsExpanded("p1"))

	// unknown ids are not rejected by the state
	assert.Equal(t, "nope", Selection{}.Toggle("nope").ID())
}

func TestRenderEmptySelectionIsGrid(t *testing.T) {
	cat := testCatalog(t)

	view := Render(Selection{}, cat)

	assert.Equal(t, LayoutGrid, view.Layout)
	assert.True(t, view.IsGrid())
	require.Len(t, view.Cards, cat.Len())
	for _, c := range view.Cards {
		assert.False(t, c.Expanded)
		assert.False(t, c.ShowDetails)
		assert.Equal(t, LabelExpand, c.ButtonLabel)
		assert.Equal(t, IconExpand, c.ButtonIcon)
	}
}

func TestRenderSelectedWithDetails(t *testing.T) {
	view := Render(Selected("p2"), testCatalog(t))

	assert.Equal(t, LayoutDetail, view.Layout)
	assert.Equal(t, "p2", view.Selected)
	require.Len(t, view.Cards, 1)
	card := view.Cards[0]
	assert.Equal(t, "p2", card.Project.ID)
	assert.True(t, card.Expanded)
	assert.True(t, card.ShowDetails)
	assert.Equal(t, LabelCollapse, card.ButtonLabel)
	assert.Equal(t, IconCollapse, card.ButtonIcon)
}

func TestRenderSelectedWithoutDetails(t *testing.T) {
	view := Render(Selected("p3"), testCatalog(t))

	assert.Equal(t, LayoutDetail, view.Layout)
	require.Len(t, view.Cards, 1)
	assert.True(t, view.Cards[0].Expanded)
	assert.False(t, view.Cards[0].ShowDetails)
}

func TestRenderUnknownSelection(t *testing.T) {
	view := Render(Selected("ghost"), testCatalog(t))

	assert.Equal(t, LayoutDetail, view.Layout)
	assert.Empty(t, view.Cards)
}

func TestToggleRenderWalkthrough(t *testing.T) {
	cat := testCatalog(t)
	sel := Selection{}

	assert.Len(t, Render(sel, cat).Cards, 3)

	sel = sel.Toggle("p2")
	view := Render(sel, cat)
	require.Len(t, view.Cards, 1)
	assert.Equal(t, "p2", view.Cards[0].Project.ID)

	sel = sel.Toggle("p2")
	view = Render(sel, cat)
	assert.True(t, view.IsGrid())
	assert.Len(t, view.Cards, 3)
}

func TestColumnsFor(t *testing.T) {
	assert.Equal(t, 1, ColumnsFor(320))
	assert.Equal(t, 2, ColumnsFor(768))
	assert.Equal(t, 2, ColumnsFor(1000))
	assert.Equal(t, 3, ColumnsFor(1440))
}

func TestLinkDefault(t *testing.T) {
	assert.Equal(t, "GitHub Repository", ProjectRecord{}.Link())
	assert.Equal(t, "Docs", ProjectRecord{LinkText: "Docs"}.Link())
}
