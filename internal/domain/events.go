package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventOverlayOpened   EventType = "OverlayOpened"
	EventOverlayClosed   EventType = "OverlayClosed"
	EventSearchSubmitted EventType = "SearchSubmitted"
	EventResultActivated EventType = "ResultActivated"
	EventSearchFailed    EventType = "SearchFailed"
	EventNoticeRaised    EventType = "NoticeRaised"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// OverlayOpenedEvent is emitted when the search overlay becomes visible
type OverlayOpenedEvent struct{}

func (e OverlayOpenedEvent) Type() EventType { return EventOverlayOpened }

// OverlayClosedEvent is emitted when the search overlay is dismissed
type OverlayClosedEvent struct{}

func (e OverlayClosedEvent) Type() EventType { return EventOverlayClosed }

// SearchSubmittedEvent carries the query handed to the search callback.
// For an activated result this is the result title.
type SearchSubmittedEvent struct {
	Query string
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// ResultActivatedEvent is emitted when a result is chosen. Navigating to
// Result.URL is left to whoever subscribes.
type ResultActivatedEvent struct {
	Result SearchResult
}

func (e ResultActivatedEvent) Type() EventType { return EventResultActivated }

// SearchFailedEvent is emitted when the backend returns an error
type SearchFailedEvent struct {
	Query string
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// NoticeRaisedEvent is emitted when a placeholder action is triggered
type NoticeRaisedEvent struct {
	Notice Notice
}

func (e NoticeRaisedEvent) Type() EventType { return EventNoticeRaised }
