package subscriptions

import (
	"context"
)

type Repository interface {
	ListByUser(ctx context.Context, email string) ([]Subscription, error)
	Put(ctx context.Context, subscription *Subscription) error
	// Delete removes the row keyed by (email, uuid). Deleting a row that
	// does not exist is not an error.
	Delete(ctx context.Context, email, uuid string) error
}
