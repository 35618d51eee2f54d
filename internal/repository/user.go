package repository

import (
	"context"

	"accounts-api/internal/domain"
)

// UserRepository defines persistence operations for User entities.
// Absent rows surface as domain.ErrNotFound, duplicate emails as
// domain.ErrEmailTaken, and pool/connection failures as
// domain.ErrStoreUnavailable.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}
