package ports

import (
	"context"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

// EventPublisher delivers state-change events to notification channels.
// Delivery is best effort and never reported back to the caller.
type EventPublisher interface {
	Publish(ctx context.Context, e domain.Event)
}
