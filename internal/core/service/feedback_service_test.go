package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

type stubFeedbackRepo struct {
	entries []domain.FeedbackEntry
}

func (r *stubFeedbackRepo) Append(_ context.Context, entry domain.FeedbackEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubFeedbackRepo) List(_ context.Context) ([]domain.FeedbackEntry, error) {
	return r.entries, nil
}

func TestFeedbackService_SubmitStampsTime(t *testing.T) {
	repo := &stubFeedbackRepo{}
	svc := NewFeedbackService(repo, zerolog.Nop())
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	if err := svc.Submit(context.Background(), "alice", "alice@example.com", "nice site"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	e := repo.entries[0]
	if e.Name != "alice" || e.Email != "alice@example.com" || e.Feedback != "nice site" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if !e.Time.Equal(fixed) {
		t.Fatalf("time = %v, want %v", e.Time, fixed)
	}
}

func TestFeedbackService_SubmitMissingFields(t *testing.T) {
	svc := NewFeedbackService(&stubFeedbackRepo{}, zerolog.Nop())

	cases := []struct{ name, email, feedback string }{
		{"", "a@b.c", "text"},
		{"alice", "", "text"},
		{"alice", "a@b.c", ""},
	}
	for _, tc := range cases {
		if err := svc.Submit(context.Background(), tc.name, tc.email, tc.feedback); err != domain.ErrMissingFields {
			t.Errorf("Submit(%q,%q,%q) = %v, want ErrMissingFields", tc.name, tc.email, tc.feedback, err)
		}
	}
}

func TestFeedbackService_ListKeepsOrder(t *testing.T) {
	repo := &stubFeedbackRepo{}
	svc := NewFeedbackService(repo, zerolog.Nop())

	for _, text := range []string{"first", "second", "third"} {
		if err := svc.Submit(context.Background(), "alice", "a@b.c", text); err != nil {
			t.Fatalf("submit %q: %v", text, err)
		}
	}

	entries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if entries[i].Feedback != want {
			t.Fatalf("entries[%d] = %q, want %q", i, entries[i].Feedback, want)
		}
	}
}
