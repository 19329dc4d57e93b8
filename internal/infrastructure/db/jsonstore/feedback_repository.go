package jsonstore

import (
	"context"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

const feedbackFile = "feedback.json"

// FeedbackRepository stores the append-only feedback log in feedback.json.
type FeedbackRepository struct {
	coll *collection
}

func NewFeedbackRepository(s *Store) *FeedbackRepository {
	return &FeedbackRepository{coll: s.collection(feedbackFile)}
}

func (r *FeedbackRepository) Append(_ context.Context, entry domain.FeedbackEntry) error {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var entries []domain.FeedbackEntry
	if err := r.coll.load(&entries); err != nil {
		return err
	}
	entries = append(entries, entry)
	return r.coll.save(entries)
}

func (r *FeedbackRepository) List(_ context.Context) ([]domain.FeedbackEntry, error) {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var entries []domain.FeedbackEntry
	if err := r.coll.load(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}
