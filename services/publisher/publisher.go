package publisher

// Publisher represents a service for publishing scraped records downstream
type Publisher interface {
	// Publish publishes a message to the stream
	Publish(message []byte) error

	// Close closes the publisher connection
	Close() error
}
