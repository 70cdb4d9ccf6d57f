package interfaces

import "context"

type SubscriptionRepository interface {
	// ListAuthorIDs returns the authors the given user subscribed to.
	ListAuthorIDs(ctx context.Context, subscriberID string) ([]string, error)
	// ListSubscriberIDs returns the users subscribed to the given author.
	ListSubscriberIDs(ctx context.Context, authorID string) ([]string, error)
	Create(ctx context.Context, subscriberID, authorID string) error
	// Delete fails with ErrSubscriptionNotFound when the edge does not exist.
	Delete(ctx context.Context, subscriberID, authorID string) error
}
