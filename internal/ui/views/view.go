package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"amphi/internal/domain"
	"amphi/internal/ui/components"
	inputtypes "amphi/internal/ui/input/types"
)

const (
	heading       = "What can I do for you today?"
	partnersLabel = "Partners"
	learnMore     = "Learn More"
	stripWidth    = 40
)

// MenuItems are the entries of the Get Started dropdown
var MenuItems = []string{"Sign In", "Login"}

// PageState contains all the state needed for rendering
type PageState struct {
	Width   int
	Height  int
	Elapsed time.Duration

	Nav        *components.NavBar
	Orb        *components.Orb
	Input      *components.GlassInput
	GetStarted components.StarBorder
	Strip      *components.LogoStrip

	Focus     inputtypes.Control
	MenuOpen  bool
	MenuIndex int

	Notice   *domain.Notice
	HelpLine string

	// Overlay is the rendered search box, empty while closed
	Overlay   string
	OverlayAt Rect
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
	zones       *Zones
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
		zones:       NewZones(),
	}
}

// Styles returns the shared style set
func (r *Renderer) Styles() *Styles { return r.styles }

// Zones returns the clickable regions of the last render
func (r *Renderer) Zones() *Zones { return r.zones }

// Render produces the complete view
func (r *Renderer) Render(state PageState) string {
	r.zones.Reset()
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}
	c := newCanvas(state.Width, state.Height)

	// Status line and logo strip along the bottom
	footerTop := state.Height - 1
	if state.Strip != nil && state.Height >= 12 {
		footerTop = r.renderStrip(c, state)
	}
	r.renderStatus(c, state)

	// Hero below the collapsed nav row
	r.renderHero(c, state, 2, footerTop-1)

	// Navigation last so expanded cards cover the hero
	if state.Nav != nil {
		c.place(0, 0, state.Nav.Render(state.Width, state.Elapsed))
		r.zones.Mark(ZoneNav, Rect{X: 0, Y: 0, W: state.Width, H: state.Nav.Height()})
	}

	base := c.String()
	if state.Overlay == "" {
		return base
	}
	r.zones.Mark(ZoneOverlay, state.OverlayAt)
	return r.popupRender.RenderPopupOverlay(base, state.Overlay, state.OverlayAt, state.Width, state.Height)
}

// renderHero stacks the orb, heading, input and buttons, centered in the
// rows [top, bottom). The orb is dropped when the rows run short.
func (r *Renderer) renderHero(c *canvas, state PageState, top, bottom int) {
	inputH := 3
	buttonsH := state.GetStarted.Height()
	blockH := 1 + 1 + inputH + 1 + buttonsH
	withOrb := state.Orb != nil && bottom-top >= blockH+state.Orb.Height()
	if withOrb {
		blockH += state.Orb.Height()
	}

	y := top + (bottom-top-blockH)/2
	if y < top {
		y = top
	}
	center := func(w int) int {
		x := (state.Width - w) / 2
		if x < 0 {
			return 0
		}
		return x
	}

	if withOrb {
		x := center(state.Orb.Width())
		c.place(x, y, state.Orb.Render(state.Elapsed))
		r.zones.Mark(ZoneOrb, Rect{X: x, Y: y, W: state.Orb.Width(), H: state.Orb.Height()})
		y += state.Orb.Height()
	}

	c.place(center(lipgloss.Width(heading)), y, r.styles.Heading.Render(heading))
	y += 2

	if state.Input != nil {
		w := state.Input.Width()
		x := center(w)
		c.place(x, y, state.Input.View())
		r.zones.Mark(ZoneHeroInput, Rect{X: x, Y: y, W: w, H: inputH})
	}
	y += inputH + 1

	gs := state.GetStarted
	gs.Focused = state.Focus == inputtypes.ControlGetStarted || state.MenuOpen
	lm := r.styles.Button
	if state.Focus == inputtypes.ControlLearnMore {
		lm = r.styles.ButtonFocused
	}
	learn := lm.Render(learnMore)
	rowW := gs.Width() + 2 + lipgloss.Width(learn)
	gx := center(rowW)
	c.place(gx, y, gs.Render(state.Elapsed))
	r.zones.Mark(ZoneGetStarted, Rect{X: gx, Y: y, W: gs.Width(), H: gs.Height()})

	lx := gx + gs.Width() + 2
	ly := y + gs.Height()/2
	c.place(lx, ly, learn)
	r.zones.Mark(ZoneLearnMore, Rect{X: lx, Y: ly, W: lipgloss.Width(learn), H: 1})

	if state.MenuOpen {
		r.renderMenu(c, state, gx, y+gs.Height())
	}
}

// renderMenu draws the Get Started dropdown with its top-left at (x, y)
func (r *Renderer) renderMenu(c *canvas, state PageState, x, y int) {
	w := 0
	for _, item := range MenuItems {
		if lw := lipgloss.Width(item); lw > w {
			w = lw
		}
	}
	rows := make([]string, len(MenuItems))
	for i, item := range MenuItems {
		style := r.styles.MenuItem
		if i == state.MenuIndex {
			style = r.styles.MenuSelected
		}
		rows[i] = style.Width(w + 2).Render(item)
	}
	c.place(x, y, r.styles.Menu.Render(strings.Join(rows, "\n")))

	zones := []Zone{ZoneSignIn, ZoneLogin}
	for i := range MenuItems {
		r.zones.Mark(zones[i], Rect{X: x + 1, Y: y + 1 + i, W: w + 2, H: 1})
	}
}

// renderStrip draws the partner label and marquee in the bottom-right
// corner and returns the first row it uses
func (r *Renderer) renderStrip(c *canvas, state PageState) int {
	w := stripWidth
	if w > state.Width-4 {
		w = state.Width - 4
	}
	x := state.Width - w - 2
	stripY := state.Height - 3
	labelY := stripY - 1

	label := r.styles.Label.Render(partnersLabel)
	c.place(x+(w-lipgloss.Width(label))/2, labelY, label)
	c.place(x, stripY, state.Strip.Render(w))
	r.zones.Mark(ZoneLogos, Rect{X: x, Y: stripY, W: w, H: 1})
	return labelY
}

func (r *Renderer) renderStatus(c *canvas, state PageState) {
	line := r.styles.Help.Render(state.HelpLine)
	if state.Notice != nil {
		line = r.styles.Notice.Render(state.Notice.Message)
		if state.Notice.Description != "" {
			line += r.styles.NoticeDetail.Render(" · " + state.Notice.Description)
		}
	}
	c.place(1, state.Height-1, line)
}
