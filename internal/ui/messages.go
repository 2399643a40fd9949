package ui

import (
	"time"

	"amphi/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// clearNoticeMsg hides the notice raised as generation gen
type clearNoticeMsg struct {
	gen int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
