package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSourceChanged EventType = "SourceChanged"
	EventItemCopied    EventType = "ItemCopied"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
)

// DomainEvent is the base interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SourceChangedEvent is published when a watched collection source is rewritten
type SourceChangedEvent struct {
	Path string
}

func (e SourceChangedEvent) Type() EventType { return EventSourceChanged }

// ItemCopiedEvent is published after an item payload reached the clipboard
type ItemCopiedEvent struct {
	Owner  string
	ItemID string
}

func (e ItemCopiedEvent) Type() EventType { return EventItemCopied }

// ErrorEvent carries a background failure
type ErrorEvent struct {
	Source  string
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is published when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	PageSize int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is published when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
