package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

type stubFeedbackService struct {
	entries   []domain.FeedbackEntry
	submitted []string
}

func (s *stubFeedbackService) Submit(_ context.Context, _, _, feedback string) error {
	s.submitted = append(s.submitted, feedback)
	return nil
}

func (s *stubFeedbackService) List(_ context.Context) ([]domain.FeedbackEntry, error) {
	return s.entries, nil
}

func TestFeedbackHandler_Submit(t *testing.T) {
	svc := &stubFeedbackService{}
	h := NewFeedbackHandler(svc)
	c, rec := newJSONContext(t, http.MethodPost, "/submit-feedback",
		`{"name":"alice","email":"a@b.c","feedback":"nice site"}`)

	if err := h.Submit(c); err != nil {
		t.Fatalf("submit: %v", err)
	}

	var resp successResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || !resp.Success {
		t.Fatalf("response = %s (%v)", rec.Body.String(), err)
	}
	if len(svc.submitted) != 1 || svc.submitted[0] != "nice site" {
		t.Fatalf("submitted = %v", svc.submitted)
	}
}

func TestFeedbackHandler_SubmitMissingEmail(t *testing.T) {
	h := NewFeedbackHandler(&stubFeedbackService{})
	c, _ := newJSONContext(t, http.MethodPost, "/submit-feedback", `{"name":"alice","feedback":"x"}`)

	err := h.Submit(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestFeedbackHandler_ListEmptyIsArray(t *testing.T) {
	h := NewFeedbackHandler(&stubFeedbackService{})
	c, rec := newJSONContext(t, http.MethodGet, "/feedback", "")

	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	// An empty log renders as [], never null.
	var entries []domain.FeedbackEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(rec.Body.Bytes()[0]) != "[" {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
