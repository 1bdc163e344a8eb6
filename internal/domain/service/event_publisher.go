package service

import (
	"context"
	"time"
)

// ModerationEvent is emitted after a moderation decision is committed.
type ModerationEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	PostID       string    `json:"post_id"`
	Status       string    `json:"status"`
	IsPremium    bool      `json:"is_premium"`
	RejectReason *string   `json:"reject_reason,omitempty"`
	ActorID      string    `json:"actor_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishModerationEvent publishes a moderation event for downstream consumers
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
