package clipboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	clip "llmsbrowse/internal/clipboard"
	"llmsbrowse/internal/eventbus"
	"llmsbrowse/internal/ui/logic"
)

// CopyResultMsg reports the outcome of an asynchronous clipboard write
type CopyResultMsg struct {
	Owner  string
	ItemID string
	Seq    uint64
	Err    error
}

// AckExpiredMsg fires when a copy acknowledgment's display time is over
type AckExpiredMsg struct {
	Owner  string
	ItemID string
	Seq    uint64
}

// Service copies item payloads and tracks the transient "copied" state
type Service struct {
	owner  string
	writer clip.Writer
	acks   logic.AckTracker
	ttl    time.Duration
	now    func() time.Time
	bus    eventbus.EventBus
}

// NewService creates a copy service for owner. bus may be nil.
func NewService(owner string, writer clip.Writer, ttl time.Duration, bus eventbus.EventBus) *Service {
	return &Service{
		owner:  owner,
		writer: writer,
		ttl:    ttl,
		now:    time.Now,
		bus:    bus,
	}
}

// SetClock replaces the time source
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Copy starts an asynchronous write of text for itemID
func (s *Service) Copy(itemID, text string) tea.Cmd {
	seq := s.acks.Begin()
	owner, writer := s.owner, s.writer
	return func() tea.Msg {
		var err error
		if writer == nil {
			err = clip.ErrUnavailable
		} else {
			err = writer.WriteText(text)
		}
		return CopyResultMsg{Owner: owner, ItemID: itemID, Seq: seq, Err: err}
	}
}

// HandleResult applies a write result. Failures are absorbed. On success the
// returned command fires the matching AckExpiredMsg after the ttl.
func (s *Service) HandleResult(msg CopyResultMsg) tea.Cmd {
	if msg.Err != nil {
		log.Debug().Err(msg.Err).Str("owner", s.owner).Str("id", msg.ItemID).Msg("copy failed")
		return nil
	}
	if !s.acks.Succeed(msg.ItemID, msg.Seq, s.now(), s.ttl) {
		log.Debug().Str("id", msg.ItemID).Uint64("seq", msg.Seq).Msg("dropping superseded copy result")
		return nil
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.ItemCopiedEvent{Owner: s.owner, ItemID: msg.ItemID})
	}

	owner, id, seq := s.owner, msg.ItemID, msg.Seq
	return tea.Tick(s.ttl, func(time.Time) tea.Msg {
		return AckExpiredMsg{Owner: owner, ItemID: id, Seq: seq}
	})
}

// HandleExpired clears the acknowledgment if the timer still matches it
func (s *Service) HandleExpired(msg AckExpiredMsg) bool {
	return s.acks.Expire(msg.ItemID, msg.Seq)
}

// IsCopied reports whether itemID shows the copied state
func (s *Service) IsCopied(itemID string) bool {
	return s.acks.IsCopied(itemID)
}

// Active returns the current acknowledgment
func (s *Service) Active() (logic.CopyAck, bool) {
	return s.acks.Active()
}

// Reset drops any acknowledgment; outstanding timers become no-ops
func (s *Service) Reset() {
	s.acks.Reset()
}

// Backend names the clipboard writer in use
func (s *Service) Backend() string {
	if s.writer == nil {
		return "none"
	}
	return s.writer.Name()
}
