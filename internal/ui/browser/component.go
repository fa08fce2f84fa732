package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	clip "llmsbrowse/internal/clipboard"
	"llmsbrowse/internal/domain"
	"llmsbrowse/internal/eventbus"
	"llmsbrowse/internal/ui/commands"
	"llmsbrowse/internal/ui/coordinator"
	"llmsbrowse/internal/ui/input"
	"llmsbrowse/internal/ui/input/modes"
	"llmsbrowse/internal/ui/input/types"
	"llmsbrowse/internal/ui/logic"
	"llmsbrowse/internal/ui/services/clipboard"
	"llmsbrowse/internal/ui/services/lightbox"
	"llmsbrowse/internal/ui/services/navigation"
	"llmsbrowse/internal/ui/views"
)

// Options are the settings shared by every browser pane
type Options struct {
	Context context.Context
	PerPage int
	Columns int
	Match   logic.MatchMode
	Lock    *logic.ScrollLock
	Writer  clip.Writer
	AckTTL  time.Duration
	Bus     eventbus.EventBus // domain bus; may be nil
}

// Component is a searchable, paginated grid of one collection with a
// lightbox modal on top. It is driven by the root model.
type Component[T domain.Item] struct {
	variant Variant[T]
	coord   *coordinator.Coordinator[T]
	input   *input.Handler
	styles  *views.Styles
	ctx     context.Context
	bus     eventbus.EventBus

	body    viewport.Model
	bodyKey string

	columns int // configured; the layout may show fewer
	width   int
	height  int
	loading bool
	loadErr error
	loadSeq uint64
}

// New creates a browser pane for a variant
func New[T domain.Item](v Variant[T], opts Options) *Component[T] {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.AckTTL <= 0 {
		opts.AckTTL = 2 * time.Second
	}
	return &Component[T]{
		variant: v,
		coord: coordinator.NewCoordinator[T](nil, coordinator.Options{
			Owner:   v.Name,
			PerPage: opts.PerPage,
			Columns: opts.Columns,
			Match:   opts.Match,
			Policy:  v.Policy,
			Lock:    opts.Lock,
			Writer:  opts.Writer,
			AckTTL:  opts.AckTTL,
			Domain:  opts.Bus,
		}),
		input:   input.New(),
		styles:  views.NewStyles(),
		ctx:     ctx,
		bus:     opts.Bus,
		body:    viewport.New(0, 0),
		columns: max(opts.Columns, 1),
		width:   80,
		height:  24,
	}
}

func (c *Component[T]) Name() string   { return c.variant.Name }
func (c *Component[T]) Source() string { return c.variant.Source }

// Coordinator exposes the pane's services
func (c *Component[T]) Coordinator() *coordinator.Coordinator[T] { return c.coord }

// Mode returns the active input mode
func (c *Component[T]) Mode() types.Mode { return c.input.CurrentMode() }

// Listener exposes the modal key listener
func (c *Component[T]) Listener() *modes.ModalMode { return c.input.Listener() }

func (c *Component[T]) Loading() bool     { return c.loading }
func (c *Component[T]) LoadErr() error    { return c.loadErr }
func (c *Component[T]) ModalOpen() bool   { return c.coord.Lightbox.IsOpen() }
func (c *Component[T]) Searching() bool   { return c.input.CurrentMode() == types.ModeSearch }
func (c *Component[T]) TextPayload() bool { return c.variant.TextPayload }

// Init starts the first load
func (c *Component[T]) Init() tea.Cmd {
	return c.Reload()
}

// Reload reads the collection again. Results of earlier loads are dropped.
func (c *Component[T]) Reload() tea.Cmd {
	if c.variant.Load == nil {
		return nil
	}
	c.loadSeq++
	c.loading = true
	return commands.NewLoadCommand(c.ctx, c.variant.Name, c.loadSeq, c.variant.Load, c.bus).Execute()
}

// SetSize resizes the pane
func (c *Component[T]) SetSize(width, height int) {
	c.width, c.height = width, height
	c.coord.Navigation.SetColumns(c.gridLayout().Columns)
	c.sync()
}

// Update handles messages addressed to this pane. It returns actions the
// root model has to carry out.
func (c *Component[T]) Update(msg tea.Msg) (tea.Cmd, []types.Action) {
	switch msg := msg.(type) {
	case commands.LoadedMsg[T]:
		if msg.Owner != c.variant.Name {
			return nil, nil
		}
		c.applyLoad(msg)
		return nil, nil

	case clipboard.CopyResultMsg:
		if msg.Owner != c.variant.Name {
			return nil, nil
		}
		cmd := c.coord.Clipboard.HandleResult(msg)
		c.sync()
		return cmd, nil

	case clipboard.AckExpiredMsg:
		if msg.Owner != c.variant.Name {
			return nil, nil
		}
		c.coord.Clipboard.HandleExpired(msg)
		return nil, nil

	case tea.KeyMsg:
		return c.HandleKey(msg)

	case tea.MouseMsg:
		return c.HandleMouse(msg), nil
	}

	return c.input.Update(msg), nil
}

func (c *Component[T]) applyLoad(msg commands.LoadedMsg[T]) {
	if msg.Seq != c.loadSeq {
		log.Debug().Str("owner", c.variant.Name).Uint64("seq", msg.Seq).Msg("dropping superseded load")
		return
	}
	c.loading = false
	c.loadErr = msg.Err
	if msg.Err != nil {
		// A failed load shows an empty collection; there is no retry
		c.coord.SetCollection(nil)
	} else {
		c.coord.SetCollection(msg.Items)
	}
	// The open item may keep its id but carry new text
	c.bodyKey = ""
	c.sync()
}

// HandleKey routes a key through the input modes and applies the actions
func (c *Component[T]) HandleKey(msg tea.KeyMsg) (tea.Cmd, []types.Action) {
	actions, cmd := c.input.HandleKey(msg, c.snapshot())

	cmds := []tea.Cmd{cmd}
	var up []types.Action
	for _, action := range actions {
		actionCmd, forward := c.apply(action)
		cmds = append(cmds, actionCmd)
		if forward != nil {
			up = append(up, forward)
		}
	}
	c.sync()
	return tea.Batch(cmds...), up
}

func (c *Component[T]) apply(action types.Action) (tea.Cmd, types.Action) {
	switch a := action.(type) {
	case types.NavigateAction:
		c.coord.Navigation.Navigate(navigation.Direction(a.Direction))

	case types.OpenItemAction:
		c.coord.OpenFocused()

	case types.CloseModalAction:
		c.coord.Lightbox.Close(lightbox.ReasonEscape)

	case types.ModalNextAction:
		c.coord.Next()

	case types.ModalPrevAction:
		c.coord.Prev()

	case types.ScrollModalAction:
		c.scrollBody(a.Key)

	case types.CopyAction:
		return c.copyActive(), nil

	case types.OpenPagerAction:
		if item, ok := c.coord.ActiveItem(); ok {
			return nil, types.PagerRequestAction{
				Title:   item.DisplayName(),
				Content: item.Payload(),
			}
		}

	case types.UpdateTextAction:
		c.coord.SetQuery(a.Text)

	case types.SubmitTextAction:
		c.coord.SetQuery(a.Text)

	case types.CancelTextAction, types.ClearQueryAction:
		c.coord.SetQuery("")

	case types.ReloadAction:
		return c.Reload(), nil

	case types.ToggleHelpAction, types.SwitchPaneAction, types.QuitAction:
		return nil, action
	}
	return nil, nil
}

func (c *Component[T]) copyActive() tea.Cmd {
	if !c.variant.TextPayload {
		return nil
	}
	item, ok := c.coord.ActiveItem()
	if !ok {
		return nil
	}
	return c.coord.Clipboard.Copy(item.ItemID(), item.Payload())
}

func (c *Component[T]) scrollBody(msg tea.KeyMsg) {
	switch msg.String() {
	case "home":
		c.body.GotoTop()
	case "end":
		c.body.GotoBottom()
	default:
		c.body, _ = c.body.Update(msg)
	}
}

// Close unmounts the pane: an open modal is closed and its listener and
// scroll lock hold are released.
func (c *Component[T]) Close() {
	c.coord.Lightbox.Close(lightbox.ReasonUnmount)
	c.input.Reset(c.snapshot())
	c.coord.Clipboard.Reset()
}

func (c *Component[T]) snapshot() input.Snapshot {
	return input.Snapshot{
		Len:     c.coord.Search.Count(),
		Focused: c.coord.Navigation.FocusIndex() >= 0,
		Text:    c.variant.TextPayload,
		Search:  c.coord.Search.Query(),
	}
}

// sync aligns the input mode with the modal and refreshes the modal body
func (c *Component[T]) sync() {
	open := c.coord.Lightbox.IsOpen()
	mode := c.input.CurrentMode()
	switch {
	case open && mode != types.ModeModal:
		c.input.SetMode(types.ModeModal, c.snapshot())
	case !open && mode == types.ModeModal:
		c.input.SetMode(types.ModeNormal, c.snapshot())
	}
	c.refreshBody()
}

func (c *Component[T]) refreshBody() {
	item, ok := c.coord.ModalItem()
	if !ok {
		c.bodyKey = ""
		return
	}
	m := views.NewModalLayout(c.width, c.height)
	w, h := m.InnerWidth(), m.BodyHeight()
	key := fmt.Sprintf("%s|%dx%d", item.ItemID(), w, h)
	if key == c.bodyKey {
		return
	}
	c.bodyKey = key
	c.body = viewport.New(w, h)
	c.body.SetContent(c.variant.Render.ModalBody(item, w))
}

// HelpKeys returns the bindings relevant to the current state
func (c *Component[T]) HelpKeys(tabs bool) help.KeyMap {
	keys := c.input.Keys()
	if c.coord.Lightbox.IsOpen() {
		return types.ModalHelp{Keys: keys, TextItem: c.variant.TextPayload, Multi: c.coord.Search.Count() > 1}
	}
	return types.GridHelp{Keys: keys, TextItem: c.variant.TextPayload, Tabs: tabs}
}
