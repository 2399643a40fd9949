package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"amphi/internal/config"
	"amphi/internal/domain"
	"amphi/internal/eventbus"
	"amphi/internal/search"
	"amphi/internal/ui/components"
	"amphi/internal/ui/input"
	inputtypes "amphi/internal/ui/input/types"
	"amphi/internal/ui/overlay"
	"amphi/internal/ui/views"
)

const (
	heroPlaceholder = "Type in anything you want to know..."
	heroInputWidth  = 44
	getStartedSpeed = 5 * time.Second
	noticeTimeout   = 3 * time.Second
	eventBuffer     = 32
)

// Model represents the landing page
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger

	width       int
	height      int
	elapsed     time.Duration
	inPagerMode bool

	// Page components
	nav        *components.NavBar
	orb        *components.Orb
	hero       *components.GlassInput
	getStarted components.StarBorder
	strip      *components.LogoStrip
	overlay    *overlay.Model

	// searchOpen is the overlay visibility owned by the page
	searchOpen bool
	focus      int // index into inputtypes.FocusOrder, -1 for none
	menuOpen   bool
	menuIndex  int
	orbHovered bool
	notice     *domain.Notice
	noticeGen  int

	keys         pageKeyMap
	help         help.Model
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler

	events      chan eventbus.DomainEvent
	done        chan struct{}
	unsubscribe []func()

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the page. Events published on bus that the page cares
// about are delivered back as EventMsg.
func NewModel(cfg *config.Config, bus eventbus.EventBus, backend search.Backend, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	hero := components.NewGlassInput(heroPlaceholder, heroInputWidth)
	getStarted := components.NewStarBorder("Get Started")
	getStarted.Speed = getStartedSpeed

	strip := components.NewLogoStrip(cfg.Logos, components.LogoStripOptions{
		Speed:        cfg.LogoStrip.Speed,
		Direction:    cfg.LogoStrip.Direction,
		Gap:          cfg.LogoStrip.Gap,
		PauseOnHover: cfg.LogoStrip.PauseOnHover,
		FadeOut:      cfg.LogoStrip.FadeOut,
	})

	m := &Model{
		bus:        bus,
		config:     cfg,
		logger:     logger.Named("page"),
		nav:        components.NewNavBar(cfg.Nav),
		orb:        components.NewOrb(),
		hero:       hero,
		getStarted: getStarted,
		strip:      strip,
		overlay:    overlay.New(backend, bus, logger),
		focus:      -1,
		keys:       newPageKeyMap(),
		help:       help.New(),
		renderer:   views.NewRenderer(),
		events:     make(chan eventbus.DomainEvent, eventBuffer),
		done:       make(chan struct{}),
	}
	m.helpRenderer = NewHelpRenderer(m.keys, m.overlay.Keys())
	m.inputHandler = input.New(hero)

	hero.OnChange = func(v string) {
		m.logger.Debug("hero input changed", zap.String("value", v))
	}

	if bus != nil {
		for _, t := range []eventbus.EventType{
			eventbus.EventResultActivated,
			eventbus.EventSearchFailed,
		} {
			m.unsubscribe = append(m.unsubscribe, bus.Subscribe(t, m.forward))
		}
	}
	return m
}

// forward hands a bus event to the update loop without blocking the bus
func (m *Model) forward(e eventbus.DomainEvent) {
	select {
	case <-m.done:
	case m.events <- e:
	default:
		m.logger.Warn("dropping event, UI is behind", zap.String("type", string(e.Type())))
	}
}

// waitForEvent delivers the next forwarded event as an EventMsg
func (m *Model) waitForEvent() tea.Cmd {
	events, done := m.events, m.done
	return func() tea.Msg {
		select {
		case e := <-events:
			return EventMsg{Event: e}
		case <-done:
			return nil
		}
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Close removes the bus subscriptions. It is safe to call more than once.
func (m *Model) Close() {
	select {
	case <-m.done:
		return
	default:
	}
	close(m.done)
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.waitForEvent())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.config.UI.Tick.Duration, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// SearchOpen reports whether the search overlay is visible
func (m *Model) SearchOpen() bool { return m.searchOpen }

// Notice returns the notice currently shown, or nil
func (m *Model) Notice() *domain.Notice { return m.notice }

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode { return m.inputHandler.CurrentMode() }

// Focused returns the control holding page focus
func (m *Model) Focused() inputtypes.Control {
	if m.focus < 0 || m.focus >= len(inputtypes.FocusOrder) {
		return inputtypes.ControlNone
	}
	return inputtypes.FocusOrder[m.focus]
}

// Overlay exposes the search overlay
func (m *Model) Overlay() *overlay.Model { return m.overlay }

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{Focus: m.Focused(), Text: m.hero.Value()}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.overlay.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())
		cmds := []tea.Cmd{cmd}
		cmds = append(cmds, m.processActions(actions)...)
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	return m.handleNonKeyboardMsg(msg)
}

func (m *Model) processActions(actions []inputtypes.Action) []tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// changeMode switches the input mode and applies the hook actions
func (m *Model) changeMode(mode inputtypes.Mode) tea.Cmd {
	actions, cmd := m.inputHandler.ChangeMode(mode, m.context())
	cmds := []tea.Cmd{cmd}
	cmds = append(cmds, m.processActions(actions)...)
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.FocusAction:
		m.moveFocus(a.Delta)

	case inputtypes.ActivateAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeNav {
			if link, ok := m.nav.FocusedLink(); ok {
				return m.followLink(link)
			}
			return nil
		}
		return m.activate(m.Focused())

	case inputtypes.NavigateAction:
		switch m.inputHandler.CurrentMode() {
		case inputtypes.ModeNav:
			switch a.Direction {
			case "up":
				m.nav.MoveFocus(0, -1)
			case "down":
				m.nav.MoveFocus(0, 1)
			case "left":
				m.nav.MoveFocus(-1, 0)
			case "right":
				m.nav.MoveFocus(1, 0)
			}
		case inputtypes.ModeMenu:
			n := len(views.MenuItems)
			switch a.Direction {
			case "up":
				m.menuIndex = (m.menuIndex - 1 + n) % n
			case "down":
				m.menuIndex = (m.menuIndex + 1) % n
			}
		}

	case inputtypes.ChooseMenuItemAction:
		return m.chooseMenuItem(m.menuIndex)

	case inputtypes.SetNavAction:
		if a.Expanded && !m.nav.Expanded() {
			m.nav.Toggle()
		} else if !a.Expanded {
			m.nav.Collapse()
		}

	case inputtypes.SetMenuAction:
		m.menuOpen = a.Open
		m.menuIndex = 0

	case inputtypes.SubmitTextAction:
		m.logger.Info("hero question submitted", zap.String("text", a.Text))
		return m.raise(domain.NoticeFor(domain.ActionSearch))

	case inputtypes.UpdateTextAction, inputtypes.CancelTextAction:
		// The hero input keeps its value; nothing else depends on it

	case inputtypes.OpenSearchAction:
		return m.openSearch()

	case inputtypes.OverlayKeyAction:
		return m.overlay.Update(a.Key)

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager()

	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}
	return nil
}

// moveFocus cycles page focus through FocusOrder
func (m *Model) moveFocus(delta int) {
	n := len(inputtypes.FocusOrder)
	switch {
	case m.focus < 0 && delta > 0:
		m.focus = 0
	case m.focus < 0:
		m.focus = n - 1
	default:
		m.focus = ((m.focus+delta)%n + n) % n
	}
	m.syncFocus()
}

func (m *Model) syncFocus() {
	switch m.Focused() {
	case inputtypes.ControlSearch:
		m.nav.Highlight = components.NavSearch
	case inputtypes.ControlDoc:
		m.nav.Highlight = components.NavDoc
	case inputtypes.ControlAPI:
		m.nav.Highlight = components.NavAPI
	default:
		m.nav.Highlight = components.NavNone
	}
	m.orb.ForceHover = m.Focused() == inputtypes.ControlOrb
}

// activate triggers a page control from the keyboard or a click
func (m *Model) activate(c inputtypes.Control) tea.Cmd {
	switch c {
	case inputtypes.ControlSearch:
		return m.openSearch()
	case inputtypes.ControlDoc:
		return m.raise(domain.NoticeFor(domain.ActionDoc))
	case inputtypes.ControlAPI:
		return m.raise(domain.NoticeFor(domain.ActionAPI))
	case inputtypes.ControlHeroInput:
		return m.changeMode(inputtypes.ModeHeroInput)
	case inputtypes.ControlGetStarted:
		m.logger.Debug("get started pressed")
		return m.changeMode(inputtypes.ModeMenu)
	case inputtypes.ControlLearnMore:
		return m.raise(domain.NoticeFor(domain.ActionLearnMore))
	case inputtypes.ControlOrb:
		return m.raise(domain.NoticeFor(domain.ActionOrbInteraction))
	}
	return nil
}

func (m *Model) chooseMenuItem(i int) tea.Cmd {
	if i < 0 || i >= len(views.MenuItems) {
		return nil
	}
	m.logger.Info("menu item chosen", zap.String("item", views.MenuItems[i]))
	return m.raise(domain.NoticeFor(domain.ActionSignIn))
}

func (m *Model) followLink(link domain.NavLink) tea.Cmd {
	m.logger.Info("navigation link", zap.String("label", link.Label), zap.String("href", link.Href))
	n := domain.NoticeFor(domain.ActionNavLink)
	if link.AriaLabel != "" {
		n.Description = link.AriaLabel
	}
	return m.raise(n)
}

// openSearch shows the overlay and routes keys to it
func (m *Model) openSearch() tea.Cmd {
	if m.searchOpen {
		return nil
	}
	m.searchOpen = true
	m.logger.Debug("search opened")
	cmds := []tea.Cmd{m.overlay.SetOpen(true)}
	if m.inputHandler.CurrentMode() != inputtypes.ModeOverlay {
		cmds = append(cmds, m.changeMode(inputtypes.ModeOverlay))
	}
	return tea.Batch(cmds...)
}

// closeSearch hides the overlay and returns keys to the page
func (m *Model) closeSearch() tea.Cmd {
	m.searchOpen = false
	m.overlay.SetOpen(false)
	return m.changeMode(inputtypes.ModePage)
}

// raise shows a notice in the status line and clears it after a while
func (m *Model) raise(n domain.Notice) tea.Cmd {
	m.logger.Info("placeholder action", zap.String("action", string(n.Action)), zap.String("message", n.Message))
	m.notice = &n
	m.noticeGen++
	if m.bus != nil {
		m.bus.Publish(eventbus.NoticeRaisedEvent{Notice: n})
	}
	gen := m.noticeGen
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{gen: gen}
	})
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.searchOpen {
		return m.overlay.Update(msg)
	}

	zones := m.renderer.Zones()
	zone, rect, hit := zones.Hit(msg.X, msg.Y)

	if msg.Action == tea.MouseActionMotion {
		m.orbHovered = hit && zone == views.ZoneOrb
		m.hero.SetHovered(hit && zone == views.ZoneHeroInput)
		m.getStarted.Hovered = hit && zone == views.ZoneGetStarted
		m.strip.SetHover(msg.X-rect.X, hit && zone == views.ZoneLogos)
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if !hit {
		// Clicking empty space dismisses whatever has focus
		if m.inputHandler.CurrentMode() != inputtypes.ModePage {
			return m.changeMode(inputtypes.ModePage)
		}
		return nil
	}

	// A click elsewhere closes the open cards or dropdown first
	var dismiss tea.Cmd
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeNav:
		if zone != views.ZoneNav {
			dismiss = m.changeMode(inputtypes.ModePage)
		}
	case inputtypes.ModeMenu:
		if zone != views.ZoneGetStarted && zone != views.ZoneSignIn && zone != views.ZoneLogin {
			dismiss = m.changeMode(inputtypes.ModePage)
		}
	}
	return tea.Batch(dismiss, m.click(zone, rect, msg.X, msg.Y))
}

func (m *Model) click(zone views.Zone, rect views.Rect, x, y int) tea.Cmd {
	switch zone {
	case views.ZoneNav:
		return m.clickNav(x-rect.X, y-rect.Y, rect.W)
	case views.ZoneOrb:
		return m.activate(inputtypes.ControlOrb)
	case views.ZoneHeroInput:
		return m.changeMode(inputtypes.ModeHeroInput)
	case views.ZoneGetStarted:
		if m.menuOpen {
			return m.changeMode(inputtypes.ModePage)
		}
		return m.changeMode(inputtypes.ModeMenu)
	case views.ZoneSignIn, views.ZoneLogin:
		i := 0
		if zone == views.ZoneLogin {
			i = 1
		}
		m.menuIndex = i
		return tea.Batch(m.chooseMenuItem(i), m.changeMode(inputtypes.ModePage))
	case views.ZoneLearnMore:
		return m.activate(inputtypes.ControlLearnMore)
	case views.ZoneLogos:
		if logo, ok := m.strip.LogoAt(x - rect.X); ok {
			m.logger.Info("partner logo", zap.String("title", logo.Title), zap.String("href", logo.Href))
			n := domain.NoticeFor(domain.ActionNavLink)
			n.Description = logo.Title
			return m.raise(n)
		}
	}
	return nil
}

func (m *Model) clickNav(x, y, width int) tea.Cmd {
	t := m.nav.HitTest(x, y, width)
	switch t.Kind {
	case components.NavToggle:
		if m.nav.Expanded() {
			return m.changeMode(inputtypes.ModePage)
		}
		return m.changeMode(inputtypes.ModeNav)
	case components.NavDoc:
		return m.activate(inputtypes.ControlDoc)
	case components.NavAPI:
		return m.activate(inputtypes.ControlAPI)
	case components.NavSearch:
		return m.openSearch()
	case components.NavLink:
		if link, ok := m.nav.LinkAt(t); ok {
			cmd := m.followLink(link)
			return tea.Batch(cmd, m.changeMode(inputtypes.ModePage))
		}
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, tea.Batch(m.handleEvent(msg.Event), m.waitForEvent())

	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode {
			return m, nil
		}
		step := m.config.UI.Tick.Duration
		m.elapsed += step
		m.strip.Advance(step)
		return m, m.tick()

	case overlay.SearchMsg:
		m.logger.Info("search submitted", zap.String("query", msg.Query))
		if m.bus != nil {
			m.bus.Publish(eventbus.SearchSubmittedEvent{Query: msg.Query})
		}
		return m, m.raise(domain.NoticeFor(domain.ActionGlobalSearch))

	case overlay.CloseMsg:
		return m, m.closeSearch()

	case clearNoticeMsg:
		if msg.gen == m.noticeGen {
			m.notice = nil
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			m.logger.Warn("help pager failed", zap.Error(msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.tick()
	}

	// Spinner, focus, query results and cursor blinks
	return m, tea.Batch(m.overlay.Update(msg), m.inputHandler.Update(msg))
}

// handleEvent reacts to bus events the page subscribed to
func (m *Model) handleEvent(e eventbus.DomainEvent) tea.Cmd {
	switch e := e.(type) {
	case eventbus.ResultActivatedEvent:
		n := domain.NoticeFor(domain.ActionNavLink)
		n.Description = e.Result.URL
		return m.raise(n)
	case eventbus.SearchFailedEvent:
		m.logger.Debug("search failure acknowledged", zap.String("query", e.Query))
	}
	return nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	m.orb.SetHovered(m.orbHovered)
	state := views.PageState{
		Width:      m.width,
		Height:     m.height,
		Elapsed:    m.elapsed,
		Nav:        m.nav,
		Orb:        m.orb,
		Input:      m.hero,
		GetStarted: m.getStarted,
		Strip:      m.strip,
		Focus:      m.Focused(),
		MenuOpen:   m.menuOpen,
		MenuIndex:  m.menuIndex,
		Notice:     m.notice,
		HelpLine:   m.help.ShortHelpView(m.keys.ShortHelp()),
	}
	if m.searchOpen {
		state.Overlay = m.overlay.View()
		state.OverlayAt = m.overlay.Bounds()
	}
	return m.renderer.Render(state)
}
