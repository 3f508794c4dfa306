package accounts

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, email string) (*Account, error)
	Create(ctx context.Context, account *Account) error
}
