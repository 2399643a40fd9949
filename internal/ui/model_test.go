package ui

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"amphi/internal/config"
	"amphi/internal/domain"
	"amphi/internal/eventbus"
	"amphi/internal/search"
	inputtypes "amphi/internal/ui/input/types"
	"amphi/internal/ui/overlay"
	"amphi/internal/ui/views"
)

// settleWithin bounds how long a single command may run in tests; cursor
// blinks and long timers are dropped
const settleWithin = 250 * time.Millisecond

func newModel(t *testing.T) (*Model, eventbus.EventBus) {
	t.Helper()
	bus := eventbus.New(zap.NewNop())
	m := NewModel(config.DefaultConfig(), bus, search.NewStaticBackend(0), zap.NewNop())
	t.Cleanup(func() {
		m.Close()
		bus.Close()
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, bus
}

// collect runs cmd and flattens batches and sequences into their messages.
// Commands that do not finish within settleWithin are dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(settleWithin):
		return nil
	}
	if msg == nil {
		return nil
	}
	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Slice && v.Type().Elem() == reflect.TypeOf(tea.Cmd(nil)) {
		var out []tea.Msg
		for i := 0; i < v.Len(); i++ {
			sub, _ := v.Index(i).Interface().(tea.Cmd)
			out = append(out, collect(sub)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// drive feeds the messages produced by cmd back into m, a few rounds deep
func drive(m *Model, cmd tea.Cmd) []tea.Msg {
	var seen []tea.Msg
	pending := []tea.Cmd{cmd}
	for round := 0; round < 4 && len(pending) > 0; round++ {
		var next []tea.Cmd
		for _, c := range pending {
			for _, msg := range collect(c) {
				seen = append(seen, msg)
				switch msg.(type) {
				case tickMsg, clearNoticeMsg, tea.QuitMsg:
					continue
				}
				_, out := m.Update(msg)
				next = append(next, out)
			}
		}
		pending = next
	}
	return seen
}

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func zone(t *testing.T, m *Model, z views.Zone) views.Rect {
	t.Helper()
	m.View()
	r, ok := m.renderer.Zones().Get(z)
	require.True(t, ok, "zone %s not rendered", z)
	return r
}

func TestCtrlKOpensSearch(t *testing.T) {
	m, _ := newModel(t)

	_, cmd := m.Update(keyMsg(tea.KeyCtrlK))
	drive(m, cmd)

	assert.True(t, m.SearchOpen())
	assert.Equal(t, inputtypes.ModeOverlay, m.Mode())
	assert.Equal(t, overlay.StateEmpty, m.Overlay().State())
	assert.Contains(t, ansi.Strip(m.View()), "Search Scope: Site-wide")

	// A second Ctrl+K goes to the open overlay and keeps it open
	_, cmd = m.Update(keyMsg(tea.KeyCtrlK))
	drive(m, cmd)
	assert.True(t, m.SearchOpen())
}

func TestSlashOpensSearch(t *testing.T) {
	m, _ := newModel(t)

	m.Update(runes("/"))

	assert.True(t, m.SearchOpen())
	assert.Equal(t, inputtypes.ModeOverlay, m.Mode())
}

func TestEscapeClosesSearch(t *testing.T) {
	m, bus := newModel(t)
	closed := make(chan struct{}, 1)
	bus.Subscribe(eventbus.EventOverlayClosed, func(eventbus.DomainEvent) { closed <- struct{}{} })

	_, cmd := m.Update(keyMsg(tea.KeyCtrlK))
	drive(m, cmd)

	_, cmd = m.Update(keyMsg(tea.KeyEsc))
	msgs := drive(m, cmd)

	assert.Contains(t, msgs, tea.Msg(overlay.CloseMsg{}))
	assert.False(t, m.SearchOpen())
	assert.False(t, m.Overlay().IsOpen())
	assert.Equal(t, inputtypes.ModePage, m.Mode())
	assert.NotContains(t, ansi.Strip(m.View()), "Search Scope")

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("OverlayClosed was not published")
	}
}

func TestSearchAndActivateThroughPage(t *testing.T) {
	m, bus := newModel(t)
	submitted := make(chan string, 1)
	bus.Subscribe(eventbus.EventSearchSubmitted, func(e eventbus.DomainEvent) {
		submitted <- e.(eventbus.SearchSubmittedEvent).Query
	})

	_, cmd := m.Update(keyMsg(tea.KeyCtrlK))
	drive(m, cmd)

	_, cmd = m.Update(runes("api"))
	drive(m, cmd)

	require.Len(t, m.Overlay().Results(), 1)
	assert.Equal(t, "4", m.Overlay().Results()[0].ID)
	assert.Contains(t, ansi.Strip(m.View()), "User Authentication API")

	_, cmd = m.Update(keyMsg(tea.KeyDown))
	drive(m, cmd)
	assert.Equal(t, 0, m.Overlay().Selected())

	_, cmd = m.Update(keyMsg(tea.KeyEnter))
	drive(m, cmd)

	assert.False(t, m.SearchOpen())
	assert.Equal(t, inputtypes.ModePage, m.Mode())

	select {
	case q := <-submitted:
		assert.Equal(t, "User Authentication API", q)
	case <-time.After(time.Second):
		t.Fatal("SearchSubmitted was not published")
	}

	// The activation comes back from the bus and names the target
	drive(m, m.waitForEvent())
	require.NotNil(t, m.Notice())
	assert.Equal(t, domain.ActionNavLink, m.Notice().Action)
	assert.Equal(t, "/api/auth", m.Notice().Description)
}

func TestFocusCyclesAndActivates(t *testing.T) {
	m, _ := newModel(t)
	assert.Equal(t, inputtypes.ControlNone, m.Focused())

	m.Update(keyMsg(tea.KeyTab))
	assert.Equal(t, inputtypes.ControlSearch, m.Focused())

	m.Update(keyMsg(tea.KeyShiftTab))
	assert.Equal(t, inputtypes.ControlOrb, m.Focused(), "focus wraps backwards")
	assert.True(t, m.orb.Active())

	m.Update(keyMsg(tea.KeyShiftTab))
	assert.Equal(t, inputtypes.ControlLearnMore, m.Focused())
	assert.False(t, m.orb.Active())

	m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, m.Notice())
	assert.Equal(t, "Learn more functionality to be implemented", m.Notice().Message)
	assert.Contains(t, ansi.Strip(m.View()), "Learn more functionality to be implemented")
}

func TestFocusHighlightsNavControls(t *testing.T) {
	m, _ := newModel(t)

	m.Update(keyMsg(tea.KeyTab))
	m.Update(keyMsg(tea.KeyTab))
	assert.Equal(t, inputtypes.ControlDoc, m.Focused())

	m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, m.Notice())
	assert.Equal(t, domain.ActionDoc, m.Notice().Action)
}

func TestNoticeClears(t *testing.T) {
	m, _ := newModel(t)

	m.Update(keyMsg(tea.KeyTab))
	m.Update(keyMsg(tea.KeyTab))
	m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, m.Notice())
	first := m.noticeGen

	m.Update(keyMsg(tea.KeyEnter))
	m.Update(clearNoticeMsg{gen: first})
	assert.NotNil(t, m.Notice(), "a stale timer leaves the newer notice")

	m.Update(clearNoticeMsg{gen: m.noticeGen})
	assert.Nil(t, m.Notice())
}

func TestHeroInputSubmit(t *testing.T) {
	m, _ := newModel(t)

	m.Update(runes("i"))
	assert.Equal(t, inputtypes.ModeHeroInput, m.Mode())
	assert.True(t, m.hero.Focused())

	m.Update(runes("hello"))
	assert.Equal(t, "hello", m.hero.Value())

	m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, m.Notice())
	assert.Equal(t, domain.ActionSearch, m.Notice().Action)

	m.Update(keyMsg(tea.KeyEsc))
	assert.Equal(t, inputtypes.ModePage, m.Mode())
	assert.False(t, m.hero.Focused())
	assert.Equal(t, "hello", m.hero.Value(), "leaving the input keeps its text")
}

func TestNavCardsByKeyboard(t *testing.T) {
	m, _ := newModel(t)

	m.Update(runes("m"))
	assert.Equal(t, inputtypes.ModeNav, m.Mode())
	assert.True(t, m.nav.Expanded())

	m.Update(keyMsg(tea.KeyRight))
	m.Update(keyMsg(tea.KeyDown))
	g, l := m.nav.Focus()
	assert.Equal(t, 1, g)
	assert.Equal(t, 1, l)

	m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, m.Notice())
	assert.Equal(t, domain.ActionNavLink, m.Notice().Action)
	assert.Equal(t, "Project Case Studies", m.Notice().Description)

	m.Update(keyMsg(tea.KeyEsc))
	assert.Equal(t, inputtypes.ModePage, m.Mode())
	assert.False(t, m.nav.Expanded())
}

func TestNavCtrlKCollapsesCards(t *testing.T) {
	m, _ := newModel(t)

	m.Update(runes("m"))
	m.Update(keyMsg(tea.KeyCtrlK))

	assert.True(t, m.SearchOpen())
	assert.False(t, m.nav.Expanded())
}

func TestGetStartedMenuByMouse(t *testing.T) {
	m, _ := newModel(t)

	gs := zone(t, m, views.ZoneGetStarted)
	m.Update(click(gs.X+1, gs.Y+1))
	assert.Equal(t, inputtypes.ModeMenu, m.Mode())
	assert.True(t, m.menuOpen)

	login := zone(t, m, views.ZoneLogin)
	m.Update(click(login.X, login.Y))
	assert.Equal(t, inputtypes.ModePage, m.Mode())
	assert.False(t, m.menuOpen)
	require.NotNil(t, m.Notice())
	assert.Equal(t, domain.ActionSignIn, m.Notice().Action)
}

func TestGetStartedMenuByKeyboard(t *testing.T) {
	m, _ := newModel(t)

	for i := 0; i < 5; i++ {
		m.Update(keyMsg(tea.KeyTab))
	}
	require.Equal(t, inputtypes.ControlGetStarted, m.Focused())

	m.Update(keyMsg(tea.KeyEnter))
	assert.True(t, m.menuOpen)
	assert.Contains(t, ansi.Strip(m.View()), "Sign In")

	m.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, 1, m.menuIndex)

	m.Update(keyMsg(tea.KeyEnter))
	assert.False(t, m.menuOpen)
	assert.Equal(t, domain.ActionSignIn, m.Notice().Action)
}

func TestClickOutsideClosesMenu(t *testing.T) {
	m, _ := newModel(t)

	gs := zone(t, m, views.ZoneGetStarted)
	m.Update(click(gs.X+1, gs.Y+1))
	require.True(t, m.menuOpen)

	m.View()
	m.Update(click(0, 20))
	assert.False(t, m.menuOpen)
	assert.Equal(t, inputtypes.ModePage, m.Mode())
}

func TestOrbHoverAndClick(t *testing.T) {
	m, _ := newModel(t)

	orb := zone(t, m, views.ZoneOrb)
	m.Update(tea.MouseMsg{X: orb.X + 2, Y: orb.Y + 2, Action: tea.MouseActionMotion})
	m.View()
	assert.True(t, m.orb.Active())

	m.Update(click(orb.X+2, orb.Y+2))
	require.NotNil(t, m.Notice())
	assert.Equal(t, domain.ActionOrbInteraction, m.Notice().Action)
}

func TestNavSearchClickOpensOverlay(t *testing.T) {
	m, _ := newModel(t)
	m.View()

	// The search button sits at the right edge of the bar
	m.Update(click(100-5, 0))
	assert.True(t, m.SearchOpen())

	// Clicking the backdrop closes it through CloseMsg
	m.View()
	_, cmd := m.Update(click(0, 39))
	drive(m, cmd)
	assert.False(t, m.SearchOpen())
}

func TestTickAdvancesAnimation(t *testing.T) {
	m, _ := newModel(t)

	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, 80*time.Millisecond, m.elapsed)
	assert.Greater(t, m.strip.Offset(), 0.0)

	m.Update(pauseRenderingMsg{})
	_, cmd = m.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd, "the tick loop stops while the pager runs")
	assert.Empty(t, m.View())

	_, cmd = m.Update(resumeRenderingMsg{})
	assert.NotNil(t, cmd)
}

func TestHelpWithoutProgramIsNoop(t *testing.T) {
	m, _ := newModel(t)

	_, cmd := m.Update(runes("?"))
	assert.Nil(t, cmd)
}

func TestHelpContentListsKeys(t *testing.T) {
	m, _ := newModel(t)

	content := ansi.Strip(m.helpRenderer.RenderHelpContent())
	assert.Contains(t, content, "Amphi Help")
	assert.Contains(t, content, "ctrl+k")
	assert.Contains(t, content, "esc")
}

func TestQuitClosesSubscriptions(t *testing.T) {
	m, bus := newModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	bus.Publish(eventbus.ResultActivatedEvent{})
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, m.events)
	assert.Nil(t, m.waitForEvent()())
}

func TestLoadingBeforeSize(t *testing.T) {
	m := NewModel(config.DefaultConfig(), nil, search.NewStaticBackend(0), nil)
	defer m.Close()

	assert.Equal(t, "Loading...", m.View())
}
