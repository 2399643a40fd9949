package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"amphi/internal/domain"
)

// NavTargetKind identifies what a point in the navigation bar hits
type NavTargetKind int

const (
	NavNone NavTargetKind = iota
	NavToggle
	NavDoc
	NavAPI
	NavSearch
	NavLink
)

// NavTarget is the result of a hit test against the navigation bar
type NavTarget struct {
	Kind  NavTargetKind
	Group int
	Link  int
}

const (
	docLabel    = "[ Doc ]"
	apiLabel    = "API"
	searchLabel = "[ Search ^K ]"
	brandLabel  = "AMPHI"
)

// NavBar is a collapsible card navigation. Collapsed it is a single row;
// expanded it shows one card per group below that row.
type NavBar struct {
	// Highlight marks one of the top row items as keyboard focused
	Highlight NavTargetKind

	groups   []domain.NavGroup
	expanded bool
	group    int
	link     int
	api      ShinyText
}

func NewNavBar(groups []domain.NavGroup) *NavBar {
	return &NavBar{
		groups: groups,
		api:    NewShinyText(apiLabel, 2*time.Second),
	}
}

func (n *NavBar) Groups() []domain.NavGroup { return n.groups }
func (n *NavBar) Expanded() bool            { return n.expanded }

// Toggle expands or collapses the cards. Expanding focuses the first link.
func (n *NavBar) Toggle() {
	n.expanded = !n.expanded
	n.group, n.link = 0, 0
}

func (n *NavBar) Collapse() {
	n.expanded = false
}

// MoveFocus moves link focus by dx cards and dy links, clamping at the edges
func (n *NavBar) MoveFocus(dx, dy int) {
	if !n.expanded || len(n.groups) == 0 {
		return
	}
	n.group = clamp(n.group+dx, 0, len(n.groups)-1)
	links := len(n.groups[n.group].Links)
	if links == 0 {
		n.link = 0
		return
	}
	if dx != 0 {
		n.link = clamp(n.link, 0, links-1)
	}
	n.link = clamp(n.link+dy, 0, links-1)
}

// FocusedLink returns the link under focus while expanded
func (n *NavBar) FocusedLink() (domain.NavLink, bool) {
	if !n.expanded {
		return domain.NavLink{}, false
	}
	return n.linkAt(n.group, n.link)
}

// Focus returns the focused group and link indices
func (n *NavBar) Focus() (group, link int) {
	return n.group, n.link
}

func (n *NavBar) linkAt(group, link int) (domain.NavLink, bool) {
	if group < 0 || group >= len(n.groups) {
		return domain.NavLink{}, false
	}
	links := n.groups[group].Links
	if link < 0 || link >= len(links) {
		return domain.NavLink{}, false
	}
	return links[link], true
}

// LinkAt resolves a hit target to its link
func (n *NavBar) LinkAt(t NavTarget) (domain.NavLink, bool) {
	if t.Kind != NavLink {
		return domain.NavLink{}, false
	}
	return n.linkAt(t.Group, t.Link)
}

// Height returns the number of rows Render produces
func (n *NavBar) Height() int {
	if !n.expanded {
		return 1
	}
	return 1 + n.cardHeight()
}

func (n *NavBar) cardHeight() int {
	most := 0
	for _, g := range n.groups {
		if len(g.Links) > most {
			most = len(g.Links)
		}
	}
	// label row, links, bottom padding
	return most + 2
}

type navLayout struct {
	docX, apiX, searchX int
	cardW               int
}

func (n *NavBar) layout(width int) navLayout {
	var l navLayout
	l.searchX = width - 1 - lipgloss.Width(searchLabel)
	l.apiX = l.searchX - 2 - lipgloss.Width(apiLabel)
	l.docX = l.apiX - 2 - lipgloss.Width(docLabel)
	if len(n.groups) > 0 {
		l.cardW = (width - 1 - len(n.groups)) / len(n.groups)
	}
	return l
}

// HitTest maps a cell inside the bar to what it hits
func (n *NavBar) HitTest(x, y, width int) NavTarget {
	l := n.layout(width)
	if y == 0 {
		switch {
		case x >= 0 && x <= 2:
			return NavTarget{Kind: NavToggle}
		case within(x, l.docX, docLabel):
			return NavTarget{Kind: NavDoc}
		case within(x, l.apiX, apiLabel):
			return NavTarget{Kind: NavAPI}
		case within(x, l.searchX, searchLabel):
			return NavTarget{Kind: NavSearch}
		}
		return NavTarget{}
	}
	if !n.expanded || l.cardW <= 0 || y >= n.Height() {
		return NavTarget{}
	}
	if x < 1 {
		return NavTarget{}
	}
	g := (x - 1) / (l.cardW + 1)
	if g >= len(n.groups) || (x-1)%(l.cardW+1) == l.cardW {
		return NavTarget{}
	}
	link := y - 2
	if link < 0 || link >= len(n.groups[g].Links) {
		return NavTarget{}
	}
	return NavTarget{Kind: NavLink, Group: g, Link: link}
}

func within(x, start int, label string) bool {
	return x >= start && x < start+lipgloss.Width(label)
}

// Render draws the bar at the given width
func (n *NavBar) Render(width int, elapsed time.Duration) string {
	l := n.layout(width)

	toggle := "≡"
	if n.expanded {
		toggle = "✕"
	}
	brand := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231"))
	doc := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	search := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	api := n.api.Render(elapsed)
	focused := lipgloss.NewStyle().Reverse(true)
	switch n.Highlight {
	case NavDoc:
		doc = focused
	case NavSearch:
		search = focused
	case NavAPI:
		api = focused.Render(apiLabel)
	}

	var top strings.Builder
	top.WriteString(" " + toggle + "  " + brand.Render(brandLabel))
	col := 4 + lipgloss.Width(brandLabel)
	pad := func(to int) {
		if to > col {
			top.WriteString(strings.Repeat(" ", to-col))
			col = to
		}
	}
	pad(l.docX)
	top.WriteString(doc.Render(docLabel))
	col += lipgloss.Width(docLabel)
	pad(l.apiX)
	top.WriteString(api)
	col += lipgloss.Width(apiLabel)
	pad(l.searchX)
	top.WriteString(search.Render(searchLabel))

	if !n.expanded || l.cardW <= 0 {
		return top.String()
	}

	cards := make([]string, 0, 2*len(n.groups))
	for gi, g := range n.groups {
		cards = append(cards, " ")
		cards = append(cards, n.renderCard(gi, g, l.cardW))
	}
	return top.String() + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (n *NavBar) renderCard(gi int, g domain.NavGroup, w int) string {
	style := lipgloss.NewStyle().
		Width(w).
		Height(n.cardHeight()).
		Background(lipgloss.Color(g.BgColor)).
		Foreground(lipgloss.Color(g.TextColor))

	rows := []string{lipgloss.NewStyle().Bold(true).Render(" " + g.Label)}
	for li, link := range g.Links {
		row := "  ↗ " + link.Label
		if gi == n.group && li == n.link {
			row = lipgloss.NewStyle().Reverse(true).Render(row)
		}
		rows = append(rows, row)
	}
	return style.Render(strings.Join(rows, "\n"))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
