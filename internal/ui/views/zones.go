package views

// Rect is a rectangle of terminal cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Zone identifies a clickable region of the page
type Zone string

const (
	ZoneNav        Zone = "nav"
	ZoneOrb        Zone = "orb"
	ZoneHeroInput  Zone = "hero-input"
	ZoneGetStarted Zone = "get-started"
	ZoneSignIn     Zone = "sign-in"
	ZoneLogin      Zone = "login"
	ZoneLearnMore  Zone = "learn-more"
	ZoneLogos      Zone = "logos"
	ZoneOverlay    Zone = "overlay"
)

type mark struct {
	zone Zone
	rect Rect
}

// Zones records where each clickable region was drawn. Zones marked later
// sit on top of earlier ones.
type Zones struct {
	marks []mark
}

func NewZones() *Zones {
	return &Zones{}
}

// Reset forgets all regions; called at the start of every render
func (z *Zones) Reset() {
	z.marks = z.marks[:0]
}

// Mark records zone at r, replacing an earlier mark of the same zone
func (z *Zones) Mark(zone Zone, r Rect) {
	for i := range z.marks {
		if z.marks[i].zone == zone {
			z.marks = append(z.marks[:i], z.marks[i+1:]...)
			break
		}
	}
	z.marks = append(z.marks, mark{zone: zone, rect: r})
}

// Get returns the rectangle recorded for zone
func (z *Zones) Get(zone Zone) (Rect, bool) {
	for _, m := range z.marks {
		if m.zone == zone {
			return m.rect, true
		}
	}
	return Rect{}, false
}

// Hit returns the topmost zone containing (x, y)
func (z *Zones) Hit(x, y int) (Zone, Rect, bool) {
	for i := len(z.marks) - 1; i >= 0; i-- {
		if z.marks[i].rect.Contains(x, y) {
			return z.marks[i].zone, z.marks[i].rect, true
		}
	}
	return "", Rect{}, false
}
