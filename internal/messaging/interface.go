package messaging

import "context"

// PublisherInterface defines the contract for event publishing.
// This allows for easy mocking in tests.
type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, eventData interface{}) error
	Close() error
}

// Ensure implementations satisfy PublisherInterface
var (
	_ PublisherInterface = (*Publisher)(nil)
	_ PublisherInterface = (*NoopPublisher)(nil)
)

// NoopPublisher discards events. Wired when no broker is configured;
// the record services never treat publishing as request-critical.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, routingKey string, eventData interface{}) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
