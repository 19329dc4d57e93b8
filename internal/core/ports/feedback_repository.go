package ports

import (
	"context"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

// FeedbackRepository persists the append-only feedback log.
type FeedbackRepository interface {
	Append(ctx context.Context, entry domain.FeedbackEntry) error
	// List returns all entries in insertion order.
	List(ctx context.Context) ([]domain.FeedbackEntry, error)
}
