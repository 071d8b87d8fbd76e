package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRecompute EventType = "recompute"
	EventReset     EventType = "reset"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
}

// ResultEvent is emitted after every recompute.
type ResultEvent struct {
	EventBase
	Bill   Bill              `json:"bill"`
	Tip    TipSelection      `json:"tip"`
	Split  int               `json:"split"`
	Result CalculationResult `json:"result"`
}

// ResetEvent is emitted when a reset passes through the engine.
type ResetEvent struct {
	EventBase
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnResult func(context.Context, *ResultEvent)
	OnReset  func(context.Context, *ResetEvent)
}

// Merge returns hooks that call h first, then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnResult: func(ctx context.Context, e *ResultEvent) {
			if h.OnResult != nil {
				h.OnResult(ctx, e)
			}
			if other.OnResult != nil {
				other.OnResult(ctx, e)
			}
		},
		OnReset: func(ctx context.Context, e *ResetEvent) {
			if h.OnReset != nil {
				h.OnReset(ctx, e)
			}
			if other.OnReset != nil {
				other.OnReset(ctx, e)
			}
		},
	}
}
