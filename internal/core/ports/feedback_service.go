package ports

import (
	"context"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

// FeedbackService manages the append-only feedback box.
type FeedbackService interface {
	// Submit appends an entry with a server-assigned timestamp.
	Submit(ctx context.Context, name, email, feedback string) error
	List(ctx context.Context) ([]domain.FeedbackEntry, error)
}
