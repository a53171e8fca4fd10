package interfaces

import (
	"context"

	"print3d_quote/internal/domain/entities"
)

// INotificationPublisher hands quote records to the notification collaborator.
type INotificationPublisher interface {
	Publish(ctx context.Context, n entities.QuoteNotification) error
}
