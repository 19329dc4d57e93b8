package ports

import (
	"context"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

// ProjectRepository persists project records. Name matches are first-match in
// collection order; when owner is non-empty the match additionally requires
// the owning user.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Insert(ctx context.Context, project domain.Project) error
	// UpdateByName applies fn to the first matching project and rewrites the
	// collection. An error returned by fn aborts the write and is passed
	// through; ErrProjectNotFound when nothing matches. Returns the updated
	// record.
	UpdateByName(ctx context.Context, name, owner string, fn func(*domain.Project) error) (*domain.Project, error)
	// DeleteByName removes the first matching project and returns the removed
	// record; ErrProjectNotFound when nothing matches.
	DeleteByName(ctx context.Context, name, owner string) (*domain.Project, error)
}
