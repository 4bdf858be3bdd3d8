package usecase

import (
	"context"

	"localmarket/pkg/logger"
)

type FirebaseAuthClient interface {
	VerifyToken(ctx context.Context, token string) (string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
}

// EventPublisher delivers domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload interface{}) error
}

const (
	EventOrderCreated  = "order.created"
	EventReviewCreated = "review.created"
	EventReviewUpdated = "review.updated"
	EventReviewDeleted = "review.deleted"
)

// publish is best effort: a broker failure never fails the request that
// produced the event.
func publish(ctx context.Context, publisher EventPublisher, event string, payload interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event, payload); err != nil {
		logger.Warn("Failed to publish %s: %v", event, err)
	}
}
