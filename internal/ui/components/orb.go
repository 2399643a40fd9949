package components

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	orbCols = 23
	orbRows = 9
	// orbRing is the half thickness of the ring in normalized radius units
	orbRing = 0.22
)

var orbGlyphs = []rune(" .:-=+*#%@")

// Orb is a decorative glowing ring. A bright arc circles it; hovering
// speeds it up and brightens it.
type Orb struct {
	Hue            float64
	HoverIntensity float64
	RotateOnHover  bool
	ForceHover     bool

	hovered bool
}

func NewOrb() *Orb {
	return &Orb{Hue: 0, HoverIntensity: 1.2, RotateOnHover: true}
}

func (o *Orb) SetHovered(h bool) { o.hovered = h }

// Active reports whether the orb renders in its hover state
func (o *Orb) Active() bool { return o.hovered || o.ForceHover }

func (o *Orb) Width() int  { return orbCols }
func (o *Orb) Height() int { return orbRows }

// Contains reports whether (x, y), relative to the orb's top-left cell,
// lies within its bounds
func (o *Orb) Contains(x, y int) bool {
	return x >= 0 && x < orbCols && y >= 0 && y < orbRows
}

// Angle returns the position of the bright arc in radians at elapsed
func (o *Orb) Angle(elapsed time.Duration) float64 {
	speed := 0.6
	if o.Active() && o.RotateOnHover {
		speed = 1.8
	}
	return math.Mod(elapsed.Seconds()*speed, 2*math.Pi)
}

// Render draws the orb as it looks at elapsed
func (o *Orb) Render(elapsed time.Duration) string {
	rot := o.Angle(elapsed)
	boost := 1.0
	if o.Active() {
		boost += o.HoverIntensity
	}

	cx, cy := float64(orbCols-1)/2, float64(orbRows-1)/2
	var b strings.Builder
	for y := 0; y < orbRows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < orbCols; x++ {
			// both axes normalized so the ring fills the box
			dx := (float64(x) - cx) / cx
			dy := (float64(y) - cy) / cy
			d := math.Hypot(dx, dy)
			edge := math.Abs(d - 0.8)
			if edge > orbRing {
				b.WriteByte(' ')
				continue
			}
			theta := math.Atan2(dy, dx)
			light := (0.5 + 0.5*math.Cos(theta-rot)) * (1 - edge/orbRing) * boost
			if light > 1 {
				light = 1
			}
			g := orbGlyphs[int(light*float64(len(orbGlyphs)-1))]
			if g == ' ' {
				g = '.'
			}
			b.WriteString(o.style(theta, light).Render(string(g)))
		}
	}
	return b.String()
}

func (o *Orb) style(theta, light float64) lipgloss.Style {
	// hue drifts around the ring from violet towards cyan
	h := math.Mod(o.Hue+270+40*math.Sin(theta)+360, 360)
	c := colorful.Hsv(h, 0.7, 0.35+0.65*light)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}
