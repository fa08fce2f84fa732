package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"llmsbrowse/internal/ui/handlers"
	"llmsbrowse/internal/ui/input/types"
	"llmsbrowse/internal/ui/logic"
	"llmsbrowse/internal/ui/state"
	"llmsbrowse/internal/ui/views"
)

const (
	tabRows    = 2 // tab bar and a blank line
	footerRows = 2 // status and help bar
)

// Pane is one mounted browser
type Pane interface {
	Name() string
	Source() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, []types.Action)
	View() string
	SetSize(width, height int)
	Reload() tea.Cmd
	HelpKeys(tabs bool) help.KeyMap
	ModalOpen() bool
	Close()
}

// Model represents the UI state
type Model struct {
	state *state.AppState
	panes []Pane
	lock  *logic.ScrollLock // shared by every pane

	help         help.Model
	styles       *views.Styles
	helpRenderer *HelpRenderer
	eventHandler *handlers.EventHandler
	pager        *Pager

	closeOnce sync.Once
}

// NewModel creates the root model over the given panes
func NewModel(lock *logic.ScrollLock, panes ...Pane) *Model {
	names := make([]string, 0, len(panes))
	for _, p := range panes {
		names = append(names, p.Name())
	}

	m := &Model{
		state:        state.NewAppState(names),
		panes:        panes,
		lock:         lock,
		help:         help.New(),
		styles:       views.NewStyles(),
		helpRenderer: NewHelpRenderer(types.DefaultKeyMap()),
		pager:        NewPager(),
	}
	m.eventHandler = handlers.NewEventHandler(m.state, m.reloadSource)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// State exposes the root state
func (m *Model) State() *state.AppState { return m.state }

// ActivePane returns the focused pane
func (m *Model) ActivePane() Pane {
	if len(m.panes) == 0 {
		return nil
	}
	return m.panes[m.state.Active]
}

// Init starts loading every pane
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.panes))
	for _, p := range m.panes {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			return m, m.handleHelpKey(msg)
		}
		return m, m.updateActive(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.ClearStatusMsg:
		m.eventHandler.HandleClear(msg)
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			log.Error().Err(msg.err).Str("title", msg.title).Msg("pager failed")
			return m, m.eventHandler.Status(fmt.Sprintf("Pager failed: %v", msg.err), true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil
	}

	// Load results, copy results and timers carry their owner; every pane
	// sees them and ignores what is not its own.
	return m, m.broadcast(msg)
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	pane := m.ActivePane()
	if pane == nil {
		if k, ok := msg.(tea.KeyMsg); ok && (k.String() == "q" || k.String() == "ctrl+c") {
			return tea.Quit
		}
		return nil
	}
	cmd, actions := pane.Update(msg)
	return tea.Batch(cmd, m.processActions(actions))
}

func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.panes)*2)
	for _, p := range m.panes {
		cmd, actions := p.Update(msg)
		cmds = append(cmds, cmd, m.processActions(actions))
	}
	return tea.Batch(cmds...)
}

// processActions carries out what a pane cannot do on its own
func (m *Model) processActions(actions []types.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		switch a := action.(type) {
		case types.ToggleHelpAction:
			m.state.ToggleHelp()

		case types.SwitchPaneAction:
			m.switchPane(func() bool { return m.state.SwitchPane(a.Delta) })

		case types.PagerRequestAction:
			cmds = append(cmds, m.showInPager(a.Title, a.Content))

		case types.QuitAction:
			m.Close()
			return tea.Quit
		}
	}
	return tea.Batch(cmds...)
}

// switchPane changes the focused pane unless a modal holds the scroll lock
func (m *Model) switchPane(change func() bool) {
	if m.lock != nil && m.lock.Locked() {
		return
	}
	if change() {
		log.Debug().Str("pane", m.state.ActiveName()).Msg("pane switched")
	}
}

// showInPager returns a command that shows content using ov pager
func (m *Model) showInPager(title, content string) tea.Cmd {
	if !m.pager.Available() {
		return m.eventHandler.Status("Pager unavailable", true)
	}
	program := m.pager.program
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := m.pager.Show(title, content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerDoneMsg{title: title, err: err}
	}
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	page := VisibleLines(m.state.Height)
	switch msg.String() {
	case "ctrl+c":
		m.Close()
		return tea.Quit
	case "?", "esc", "q":
		m.state.ToggleHelp()
	case "down", "j":
		m.scrollHelp(1)
	case "up", "k":
		m.scrollHelp(-1)
	case "pgdown", " ":
		m.scrollHelp(page)
	case "pgup":
		m.scrollHelp(-page)
	}
	return nil
}

func (m *Model) scrollHelp(delta int) {
	maxOffset := m.helpRenderer.LineCount(m.tabs()) - VisibleLines(m.state.Height)
	m.state.ScrollHelp(delta, maxOffset)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state.ShowHelp {
		switch {
		case msg.Button == tea.MouseButtonWheelDown:
			m.scrollHelp(1)
		case msg.Button == tea.MouseButtonWheelUp:
			m.scrollHelp(-1)
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.state.ToggleHelp()
		}
		return nil
	}

	top := m.headerRows()
	if msg.Y < top {
		if msg.Y == 0 && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			for i, zone := range views.TabZones(m.state.Panes) {
				if zone.Contains(msg.X, msg.Y) {
					m.switchPane(func() bool { return m.state.SelectPane(i) })
				}
			}
		}
		return nil
	}

	msg.Y -= top
	return m.updateActive(msg)
}

// reloadSource reloads every pane that reads from path
func (m *Model) reloadSource(path string) tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.panes {
		if handlers.SamePath(p.Source(), path) {
			log.Info().Str("pane", p.Name()).Str("path", path).Msg("source changed, reloading")
			cmds = append(cmds, p.Reload())
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Close unmounts every pane. It is safe to call more than once.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		for _, p := range m.panes {
			p.Close()
		}
	})
}

func (m *Model) tabs() bool {
	return len(m.panes) > 1
}

func (m *Model) headerRows() int {
	if m.tabs() {
		return tabRows
	}
	return 0
}

func (m *Model) paneHeight() int {
	return max(m.state.Height-m.headerRows()-footerRows, 1)
}

func (m *Model) resize() {
	for _, p := range m.panes {
		p.SetSize(m.state.Width, m.paneHeight())
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}
	if m.state.InPagerMode {
		return ""
	}

	var b strings.Builder
	if m.tabs() {
		b.WriteString(views.RenderTabs(m.state.Panes, m.state.Active, m.styles))
		b.WriteString("\n\n")
	}

	pane := m.ActivePane()
	if pane != nil {
		h := m.paneHeight()
		b.WriteString(lipgloss.NewStyle().Height(h).MaxHeight(h).Render(pane.View()))
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	if pane != nil {
		b.WriteString(m.help.View(pane.HelpKeys(m.tabs())))
	}

	screen := b.String()
	if !m.state.ShowHelp {
		return screen
	}
	return m.renderHelp(screen)
}

func (m *Model) statusLine() string {
	if m.state.StatusMessage == "" {
		return ""
	}
	if m.state.StatusIsError {
		return m.styles.StatusError.Render(m.state.StatusMessage)
	}
	return m.styles.Copied.Render(m.state.StatusMessage)
}

// renderHelp draws the help popup over screen
func (m *Model) renderHelp(screen string) string {
	content := m.helpRenderer.Render(m.tabs(), m.state.Height, m.state.HelpScrollOffset)
	box := m.styles.InfoBox.Render(content)
	at := views.Center(lipgloss.Width(box), lipgloss.Height(box), m.state.Width, m.state.Height)
	return views.Overlay(screen, box, at, m.state.Width, m.state.Height, m.styles.Backdrop)
}
