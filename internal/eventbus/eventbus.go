package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"amphi/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventOverlayOpened   = domain.EventOverlayOpened
	EventOverlayClosed   = domain.EventOverlayClosed
	EventSearchSubmitted = domain.EventSearchSubmitted
	EventResultActivated = domain.EventResultActivated
	EventSearchFailed    = domain.EventSearchFailed
	EventNoticeRaised    = domain.EventNoticeRaised
)

// Re-export domain event types
type OverlayOpenedEvent = domain.OverlayOpenedEvent
type OverlayClosedEvent = domain.OverlayClosedEvent
type SearchSubmittedEvent = domain.SearchSubmittedEvent
type ResultActivatedEvent = domain.ResultActivatedEvent
type SearchFailedEvent = domain.SearchFailedEvent
type NoticeRaisedEvent = domain.NoticeRaisedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	// Subscribe registers handler and returns a function that removes it
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// New creates a new event bus
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		logger:    logger.Named("eventbus"),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers of its type. Events are
// dropped when the queue is full.
func (b *bus) Publish(event DomainEvent) {
	b.logger.Debug("publishing event", zap.String("type", string(event.Type())))

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		b.logger.Warn("event bus channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

// Close stops the dispatcher and waits for it to exit. Queued events that
// were not dispatched yet are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// copy so handlers run without the lock held
			handlers := make([]EventHandler, len(subs))
			for i, s := range subs {
				handlers[i] = s.handler
			}
			b.mu.RUnlock()

			for _, h := range handlers {
				b.call(h, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				zap.String("type", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	h(event)
}
