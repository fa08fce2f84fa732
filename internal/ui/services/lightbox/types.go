package lightbox

// CloseReason records which exit path closed the modal
type CloseReason string

const (
	ReasonEscape   CloseReason = "escape"
	ReasonBackdrop CloseReason = "backdrop"
	ReasonButton   CloseReason = "button"
	ReasonStale    CloseReason = "stale"
	ReasonUnmount  CloseReason = "unmount"
)

// Event types
type ModalOpenedEvent struct {
	Owner string
	ID    string
	Index int
}

type ModalClosedEvent struct {
	Owner  string
	ID     string
	Reason CloseReason
}

type ModalNavigatedEvent struct {
	Owner    string
	OldIndex int
	NewIndex int
}
