package ports

import (
	"context"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts a new user; ErrUserExists when the username is taken.
	Create(ctx context.Context, user domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	// Update applies fn to the user matching username and rewrites the
	// collection. An error returned by fn aborts the write and is passed
	// through. Returns the updated record.
	Update(ctx context.Context, username string, fn func(*domain.User) error) (*domain.User, error)
	// Delete removes the user; ErrUserNotFound when absent.
	Delete(ctx context.Context, username string) error
}
