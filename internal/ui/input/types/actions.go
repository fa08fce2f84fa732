package types

import tea "github.com/charmbracelet/bubbletea"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Modal actions
type OpenItemAction struct{}

func (a OpenItemAction) Type() string { return "open_item" }

type CloseModalAction struct{}

func (a CloseModalAction) Type() string { return "close_modal" }

type ModalNextAction struct{}

func (a ModalNextAction) Type() string { return "modal_next" }

type ModalPrevAction struct{}

func (a ModalPrevAction) Type() string { return "modal_prev" }

// ScrollModalAction forwards a key to the modal body viewport
type ScrollModalAction struct {
	Key tea.KeyMsg
}

func (a ScrollModalAction) Type() string { return "scroll_modal" }

// CopyAction copies the modal item, or the focused tile outside the modal
type CopyAction struct{}

func (a CopyAction) Type() string { return "copy" }

// OpenPagerAction shows the current item's text in the external pager
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// PagerRequestAction asks the root model to run the pager with content
type PagerRequestAction struct {
	Title   string
	Content string
}

func (a PagerRequestAction) Type() string { return "pager_request" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type SwitchPaneAction struct {
	Delta int // +1 next pane, -1 previous pane
}

func (a SwitchPaneAction) Type() string { return "switch_pane" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
