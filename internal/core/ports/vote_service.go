package ports

import (
	"context"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

// VoterStatus lists, per direction, the project names a voter has voted on.
type VoterStatus struct {
	Liked    []string
	Disliked []string
}

// VoteService tracks anonymous like/dislike votes keyed by voter identifier
// (the client's network address).
type VoteService interface {
	Like(ctx context.Context, voter, projectName string) (*domain.Project, error)
	Unlike(ctx context.Context, voter, projectName string) (*domain.Project, error)
	Dislike(ctx context.Context, voter, projectName string) (*domain.Project, error)
	Undislike(ctx context.Context, voter, projectName string) (*domain.Project, error)
	Status(ctx context.Context, voter string) (*VoterStatus, error)
}
