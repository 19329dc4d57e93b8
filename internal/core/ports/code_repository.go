package ports

import (
	"context"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

// CodeRepository persists code snippets.
type CodeRepository interface {
	Insert(ctx context.Context, snippet domain.CodeSnippet) error
	ListByOwner(ctx context.Context, owner string) ([]domain.CodeSnippet, error)
}
