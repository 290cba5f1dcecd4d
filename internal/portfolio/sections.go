package portfolio

import "strings"

// Section is an anchor on the page.
type Section string

const (
	SectionHome     Section = "home"
	SectionAbout    Section = "about"
	SectionProjects Section = "projects"
	SectionBlog     Section = "blog"
	SectionContact  Section = "contact"
)

var sectionOrder = []struct {
	section Section
	label   string
}{
	{SectionHome, "Home"},
	{SectionAbout, "About"},
	{SectionProjects, "Projects"},
	{SectionBlog, "Blog"},
	{SectionContact, "Contact"},
}

// ParseSection maps a raw value to a known section, defaulting to home.
func ParseSection(raw string) Section {
	s := Section(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range sectionOrder {
		if known.section == s {
			return s
		}
	}
	return SectionHome
}

// NavItem is one navigation link.
type NavItem struct {
	Section Section
	Label   string
	Active  bool
}

// Nav lists the navigation links with active marked.
func Nav(active Section) []NavItem {
	active = ParseSection(string(active))
	items := make([]NavItem, 0, len(sectionOrder))
	for _, s := range sectionOrder {
		items = append(items, NavItem{
			Section: s.section,
			Label:   s.label,
			Active:  s.section == active,
		})
	}
	return items
}
