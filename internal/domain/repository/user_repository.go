package repository

import (
	"context"

	"github.com/avisoslab/avisos-api/internal/domain/entity"
)

// UserRepository defines the interface for user persistence. The unique
// index on email is the store-level invariant; Create reports a duplicate
// as ErrDuplicateEmail regardless of any prior existence check.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
