package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/showcasehub/showcase-system/internal/core/domain"
	"github.com/showcasehub/showcase-system/internal/core/ports"
)

// FeedbackService manages the append-only feedback box.
type FeedbackService struct {
	repo   ports.FeedbackRepository
	now    func() time.Time
	logger zerolog.Logger
}

func NewFeedbackService(repo ports.FeedbackRepository, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, now: time.Now, logger: logger}
}

func (s *FeedbackService) Submit(ctx context.Context, name, email, feedback string) error {
	if name == "" || email == "" || feedback == "" {
		return domain.ErrMissingFields
	}

	entry := domain.FeedbackEntry{
		Name:     name,
		Email:    email,
		Feedback: feedback,
		Time:     s.now().UTC(),
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return err
	}

	s.logger.Info().Str("name", name).Msg("feedback submitted")
	return nil
}

func (s *FeedbackService) List(ctx context.Context) ([]domain.FeedbackEntry, error) {
	return s.repo.List(ctx)
}
