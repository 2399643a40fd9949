package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"amphi/internal/ui/overlay"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	page    pageKeyMap
	overlay overlay.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(page pageKeyMap, ov overlay.KeyMap) *HelpRenderer {
	return &HelpRenderer{page: page, overlay: ov}
}

// RenderHelpContent renders the keyboard reference shown in the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	line := func(keys, desc string) {
		help.WriteString(fmt.Sprintf("  %-14s %s\n", keyStyle.Render(keys), descStyle.Render(desc)))
	}
	binding := func(b key.Binding) {
		line(strings.Join(b.Keys(), ", "), b.Help().Desc)
	}

	help.WriteString(titleStyle.Render("Amphi Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Page"))
	help.WriteString("\n")
	for _, b := range r.page.ShortHelp() {
		binding(b)
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation Cards"))
	help.WriteString("\n")
	line("m", "Open or close the cards")
	line("←/→, h/l", "Move between cards")
	line("↑/↓, j/k", "Move between links")
	line("enter", "Follow the focused link")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Get Started Menu"))
	help.WriteString("\n")
	line("↑/↓, j/k", "Choose Sign In or Login")
	line("enter", "Confirm")
	line("esc", "Close the menu")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	// the overlay bindings are disabled while it is closed, so list them by hand
	for _, b := range []key.Binding{r.overlay.Up, r.overlay.Down, r.overlay.Enter, r.overlay.Escape} {
		binding(b)
	}
	help.WriteString("\n")

	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Search matches titles, descriptions and categories, ignoring case"))
	help.WriteString("\n")

	return help.String()
}

// HelpOps runs the help pager outside of Bubble Tea
type HelpOps struct{}

// ShowHelpInPager displays the help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// fetchHelpPager hands the terminal to ov and resumes rendering when it exits
func (m *Model) fetchHelpPager() tea.Cmd {
	if m.program == nil {
		return nil
	}
	content := m.helpRenderer.RenderHelpContent()
	program := m.program

	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})

		if err := program.ReleaseTerminal(); err != nil {
			program.Send(resumeRenderingMsg{})
			return helpPagerMsg{err: err}
		}

		ops := &HelpOps{}
		err := ops.ShowHelpInPager(content)

		// Give ov time to restore the screen before Bubble Tea redraws
		time.Sleep(100 * time.Millisecond)

		if restoreErr := program.RestoreTerminal(); restoreErr != nil && err == nil {
			err = restoreErr
		}
		program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}
