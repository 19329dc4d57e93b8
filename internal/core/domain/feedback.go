package domain

import "time"

// FeedbackEntry is a single submission in the append-only feedback log.
type FeedbackEntry struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Feedback string    `json:"feedback"`
	Time     time.Time `json:"time"`
}
