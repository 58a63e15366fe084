package events

import "time"

// Topic names a stream of events on the bus.
type Topic string

const (
	// TopicSectionChanged is published when a client navigates between a
	// trial's sub-views, for breadcrumb and highlight sync.
	TopicSectionChanged Topic = "section.changed"

	// TopicBoardChanged is published after a cross-column move is persisted.
	TopicBoardChanged Topic = "board.changed"

	// TopicBoardReloaded is published when a board is rebuilt from the store.
	TopicBoardReloaded Topic = "board.reloaded"
)

// Event is a notification delivered to bus subscribers.
type Event struct {
	ID        string    `json:"id"`
	Topic     Topic     `json:"topic"`
	TrialID   string    `json:"trial_id,omitempty"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler receives events. Handlers run on the publisher's goroutine and
// must not block.
type Handler func(Event)
