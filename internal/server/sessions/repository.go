package sessions

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, token Token) (*Session, error)
	Create(ctx context.Context, session *Session) error
}
