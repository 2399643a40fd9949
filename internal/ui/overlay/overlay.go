package overlay

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"amphi/internal/domain"
	"amphi/internal/eventbus"
	"amphi/internal/search"
	"amphi/internal/ui/views"
)

// focusDelay is how long after opening the input receives focus
const focusDelay = 100 * time.Millisecond

// State is the externally observable phase of the overlay
type State int

const (
	StateClosed State = iota
	StateEmpty
	StateSearching
	StateResults
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateSearching:
		return "searching"
	case StateResults:
		return "results"
	default:
		return "closed"
	}
}

// SearchMsg reports a submitted query to the page. An activated result
// submits its title.
type SearchMsg struct {
	Query string
}

// CloseMsg asks the page to hide the overlay
type CloseMsg struct{}

// resultsMsg carries a settled backend query back into the update loop
type resultsMsg struct {
	token   uint64
	query   string
	results []domain.SearchResult
	err     error
}

// focusMsg focuses the input once the open animation has settled
type focusMsg struct {
	gen uint64
}

// Model is the global search overlay. It owns the query, results,
// selection and searching flag; visibility is set by the page.
type Model struct {
	backend search.Backend
	bus     eventbus.EventBus
	logger  *zap.Logger
	styles  *views.Styles

	keys    KeyMap
	help    help.Model
	input   textinput.Model
	spinner spinner.Model

	open      bool
	query     string
	results   []domain.SearchResult
	selected  int
	searching bool
	err       error

	// token identifies the latest issued query; older results are dropped
	token  uint64
	cancel context.CancelFunc
	// gen counts openings so a late focusMsg from a previous opening is ignored
	gen uint64

	width  int
	height int
}

// New creates a closed overlay. bus and logger may be nil.
func New(backend search.Backend, bus eventbus.EventBus, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "Search docs, components, APIs..."
	ti.Prompt = ""
	ti.CharLimit = 256

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return &Model{
		backend:  backend,
		bus:      bus,
		logger:   logger.Named("overlay"),
		styles:   views.NewStyles(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    ti,
		spinner:  sp,
		selected: -1,
	}
}

// IsOpen reports whether the overlay is visible
func (m *Model) IsOpen() bool { return m.open }

// Query returns the current query text
func (m *Model) Query() string { return m.query }

// Results returns the committed result list
func (m *Model) Results() []domain.SearchResult { return m.results }

// Selected returns the selected index, or -1
func (m *Model) Selected() int { return m.selected }

// Searching reports whether a query is in flight
func (m *Model) Searching() bool { return m.searching }

// Err returns the error of the last settled query, if any
func (m *Model) Err() error { return m.err }

// Keys returns the key bindings, enabled only while open
func (m *Model) Keys() KeyMap { return m.keys }

// State derives the phase from the current fields
func (m *Model) State() State {
	switch {
	case !m.open:
		return StateClosed
	case m.searching:
		return StateSearching
	case strings.TrimSpace(m.query) == "":
		return StateEmpty
	default:
		return StateResults
	}
}

// SetSize records the terminal size used for layout
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// SetOpen shows or hides the overlay. Opening clears any previous query,
// results and selection and schedules input focus.
func (m *Model) SetOpen(open bool) tea.Cmd {
	if open == m.open {
		return nil
	}
	if !open {
		m.close()
		return nil
	}

	m.open = true
	m.reset()
	m.keys.setEnabled(true)
	m.gen++
	m.publish(eventbus.OverlayOpenedEvent{})
	m.logger.Debug("overlay opened")

	gen := m.gen
	return tea.Tick(focusDelay, func(time.Time) tea.Msg {
		return focusMsg{gen: gen}
	})
}

func (m *Model) close() {
	m.open = false
	m.reset()
	m.input.Blur()
	m.keys.setEnabled(false)
	m.publish(eventbus.OverlayClosedEvent{})
	m.logger.Debug("overlay closed")
}

// reset invalidates any pending query and clears the session state
func (m *Model) reset() {
	m.invalidate()
	m.query = ""
	m.input.SetValue("")
	m.results = nil
	m.selected = -1
	m.searching = false
	m.err = nil
}

// invalidate bumps the token and cancels the in-flight query
func (m *Model) invalidate() {
	m.token++
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// SetQuery applies a query change: selection resets, the previous query is
// superseded and, unless the text is blank, a new one is issued.
func (m *Model) SetQuery(q string) tea.Cmd {
	if m.input.Value() != q {
		m.input.SetValue(q)
	}
	m.query = q
	m.selected = -1
	m.err = nil
	m.invalidate()

	if strings.TrimSpace(q) == "" {
		m.searching = false
		m.results = nil
		return nil
	}

	// The previous query's list must not stay selectable while hidden
	m.results = nil
	wasSearching := m.searching
	m.searching = true

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	token, backend := m.token, m.backend
	queryCmd := func() tea.Msg {
		results, err := backend.Query(ctx, q)
		return resultsMsg{token: token, query: q, results: results, err: err}
	}
	if wasSearching {
		return queryCmd
	}
	return tea.Batch(queryCmd, m.spinner.Tick)
}

// Update handles messages while the overlay is open
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case resultsMsg:
		return m.handleResults(msg)

	case focusMsg:
		if m.open && msg.gen == m.gen {
			return m.input.Focus()
		}
		return nil

	case spinner.TickMsg:
		if !m.searching {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if !m.open {
			return nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.open {
			return nil
		}
		return m.handleMouse(msg)
	}

	if !m.open {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleResults(msg resultsMsg) tea.Cmd {
	if msg.token != m.token {
		m.logger.Debug("dropping stale results", zap.String("query", msg.query))
		return nil
	}
	if errors.Is(msg.err, context.Canceled) {
		return nil
	}

	m.searching = false
	m.cancel = nil
	m.selected = -1

	if msg.err != nil {
		m.err = msg.err
		m.results = nil
		m.logger.Warn("search failed", zap.String("query", msg.query), zap.Error(msg.err))
		m.publish(eventbus.SearchFailedEvent{Query: msg.query, Err: msg.err})
		return nil
	}
	if strings.TrimSpace(m.query) == "" {
		m.results = nil
		return nil
	}
	m.results = msg.results
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := len(m.results)

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.close()
		return closeCmd

	case key.Matches(msg, m.keys.Down):
		if n > 0 {
			m.selected = (m.selected + 1) % n
		}
		return nil

	case key.Matches(msg, m.keys.Up):
		if n > 0 {
			if m.selected <= 0 {
				m.selected = n - 1
			} else {
				m.selected--
			}
		}
		return nil

	case key.Matches(msg, m.keys.Enter):
		if n == 0 {
			return nil
		}
		if m.selected >= 0 {
			return m.activate(m.results[m.selected])
		}
		if strings.TrimSpace(m.query) != "" {
			q := m.query
			return func() tea.Msg { return SearchMsg{Query: q} }
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.query {
		return tea.Batch(cmd, m.SetQuery(v))
	}
	return cmd
}

// activate submits the result's title and announces its target, then closes
func (m *Model) activate(r domain.SearchResult) tea.Cmd {
	m.logger.Info("navigate to result", zap.String("id", r.ID), zap.String("url", r.URL))
	m.publish(eventbus.ResultActivatedEvent{Result: r})
	m.close()

	title := r.Title
	return tea.Sequence(
		func() tea.Msg { return SearchMsg{Query: title} },
		closeCmd,
	)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	box := m.Bounds()
	if !box.Contains(msg.X, msg.Y) {
		m.close()
		return closeCmd
	}
	if i, ok := m.rowAt(msg.Y - box.Y); ok {
		m.selected = i
		return m.activate(m.results[i])
	}
	return nil
}

// rowAt maps a row inside the box to a result index. The list starts
// below the top border, the input line and the divider; each result
// takes two rows.
func (m *Model) rowAt(y int) (int, bool) {
	if !m.listVisible() {
		return 0, false
	}
	y -= listTop
	if y < 0 {
		return 0, false
	}
	i := y / rowsPerResult
	if i >= len(m.results) {
		return 0, false
	}
	return i, true
}

func (m *Model) listVisible() bool {
	return !m.searching && m.query != "" && len(m.results) > 0
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func closeCmd() tea.Msg { return CloseMsg{} }
