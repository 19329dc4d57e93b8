package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/showcasehub/showcase-system/internal/core/domain"
	"github.com/showcasehub/showcase-system/internal/core/ports"
)

// VoteService applies anonymous like/dislike votes. Like and dislike sets are
// independent: a voter can hold both on the same project by voting one way
// without undoing the other first. Only duplicate same-direction votes fail.
type VoteService struct {
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewVoteService(projects ports.ProjectRepository, logger zerolog.Logger) *VoteService {
	return &VoteService{projects: projects, logger: logger}
}

func (s *VoteService) Like(ctx context.Context, voter, projectName string) (*domain.Project, error) {
	return s.apply(ctx, voter, projectName, "like", (*domain.Project).AddLike)
}

func (s *VoteService) Unlike(ctx context.Context, voter, projectName string) (*domain.Project, error) {
	return s.apply(ctx, voter, projectName, "unlike", (*domain.Project).RemoveLike)
}

func (s *VoteService) Dislike(ctx context.Context, voter, projectName string) (*domain.Project, error) {
	return s.apply(ctx, voter, projectName, "dislike", (*domain.Project).AddDislike)
}

func (s *VoteService) Undislike(ctx context.Context, voter, projectName string) (*domain.Project, error) {
	return s.apply(ctx, voter, projectName, "undislike", (*domain.Project).RemoveDislike)
}

func (s *VoteService) apply(ctx context.Context, voter, projectName, action string, vote func(*domain.Project, string) error) (*domain.Project, error) {
	project, err := s.projects.UpdateByName(ctx, projectName, "", func(p *domain.Project) error {
		return vote(p, voter)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("project", projectName).Str("voter", voter).Str("action", action).Msg("vote applied")
	return project, nil
}

func (s *VoteService) Status(ctx context.Context, voter string) (*ports.VoterStatus, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}

	status := &ports.VoterStatus{Liked: []string{}, Disliked: []string{}}
	for i := range projects {
		if projects[i].LikedByVoter(voter) {
			status.Liked = append(status.Liked, projects[i].Name)
		}
		if projects[i].DislikedByVoter(voter) {
			status.Disliked = append(status.Disliked, projects[i].Name)
		}
	}
	return status, nil
}
