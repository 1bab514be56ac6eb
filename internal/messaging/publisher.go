package messaging

import (
	"context"

	"github.com/swipto/swipto-api/internal/domain"
)

// Publisher defines the interface for publishing domain events to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a swipe or badge event
	PublishEvent(ctx context.Context, event *domain.Event) error
	// Close closes the connection
	Close()
}
