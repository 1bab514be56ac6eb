package domain

import "time"

// EventType names a domain event; it is also the subject suffix on the broker
type EventType string

const (
	EventSwipeRecorded EventType = "swipes.recorded"
	EventBadgeUnlocked EventType = "badges.unlocked"
)

// Event is published after a swipe has been committed
type Event struct {
	Type       EventType `json:"type"`
	UserID     string    `json:"userId"`
	SwipeID    string    `json:"swipeId,omitempty"`
	CoinID     string    `json:"coinId,omitempty"`
	Action     Action    `json:"action,omitempty"`
	BadgeKey   string    `json:"badgeKey,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
