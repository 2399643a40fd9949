package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Heading       lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Notice        lipgloss.Style
	NoticeDetail  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Menu          lipgloss.Style
	MenuItem      lipgloss.Style
	MenuSelected  lipgloss.Style
	Label         lipgloss.Style
	Backdrop      lipgloss.Style
	OverlayBox    lipgloss.Style
	Divider       lipgloss.Style
	Selected      lipgloss.Style
	Chip          lipgloss.Style
	Description   lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	Tip           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Heading:      lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Notice:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		NoticeDetail: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Button: lipgloss.NewStyle().
			Background(lipgloss.Color("231")).
			Foreground(lipgloss.Color("16")).
			Bold(true).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Background(lipgloss.Color("16")).
			Foreground(lipgloss.Color("231")).
			Bold(true).
			Padding(0, 2),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
		MenuItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		MenuSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("238")).Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Faint(true),
		Backdrop: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		OverlayBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Divider:       lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		Selected:      lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Chip:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")),
		Description:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Tip:           lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
	}
}
