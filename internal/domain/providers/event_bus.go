package providers

import (
	"context"

	"github.com/circleage/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// alert events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.AlertEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.AlertEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannel constants
const (
	// EventChannelAlerts is the channel carrying every alert event
	EventChannelAlerts = "alerts:all"

	// EventChannelUserPrefix is the prefix for user-specific channels
	EventChannelUserPrefix = "alerts:user:"
)

// GetUserChannel returns the channel name for a specific user
func GetUserChannel(userID string) string {
	return EventChannelUserPrefix + userID
}
