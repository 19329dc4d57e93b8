package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/showcasehub/showcase-system/internal/core/domain"
	"github.com/showcasehub/showcase-system/internal/core/ports"
)

// ProjectService implements owner-scoped project CRUD.
type ProjectService struct {
	projects ports.ProjectRepository
	uploads  ports.UploadStore
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, uploads ports.UploadStore, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, uploads: uploads, logger: logger}
}

// Add inserts a project owned by the caller. Name uniqueness is not enforced;
// sharedWith is seeded with the caller's mentor claim even when it is empty,
// so the list always starts with one element.
func (s *ProjectService) Add(ctx context.Context, identity ports.Identity, in ports.AddProjectInput) error {
	if in.Name == "" || in.Description == "" || in.FullDes == "" || in.Status == "" {
		return domain.ErrMissingFields
	}

	project := domain.Project{
		Name:        in.Name,
		Description: in.Description,
		FullDes:     in.FullDes,
		Status:      in.Status,
		Owner:       identity.Username,
		SharedWith:  []string{identity.Mentor},
		Adver:       in.Adver,
		ImageURL:    in.ImageURL,
	}

	if err := s.projects.Insert(ctx, project); err != nil {
		return err
	}

	s.logger.Info().Str("project", in.Name).Str("owner", identity.Username).Msg("project added")
	return nil
}

func (s *ProjectService) ListOwn(ctx context.Context, identity ports.Identity) ([]domain.Project, error) {
	return s.filter(ctx, func(p *domain.Project) bool {
		return p.Owner == identity.Username
	})
}

func (s *ProjectService) ListPublic(ctx context.Context) ([]domain.Project, error) {
	return s.filter(ctx, func(p *domain.Project) bool {
		return p.Adver
	})
}

func (s *ProjectService) ListSharedWithMe(ctx context.Context, identity ports.Identity) ([]domain.Project, error) {
	return s.filter(ctx, func(p *domain.Project) bool {
		return p.SharedWithUser(identity.Username)
	})
}

func (s *ProjectService) filter(ctx context.Context, keep func(*domain.Project) bool) ([]domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(projects))
	for i := range projects {
		if keep(&projects[i]) {
			out = append(out, projects[i])
		}
	}
	return out, nil
}

// Edit overwrites description, full description and status of the caller's
// project. Name, owner, votes and image stay untouched.
func (s *ProjectService) Edit(ctx context.Context, identity ports.Identity, in ports.EditProjectInput) error {
	_, err := s.projects.UpdateByName(ctx, in.Name, identity.Username, func(p *domain.Project) error {
		p.Description = in.Description
		p.FullDes = in.FullDes
		p.Status = in.Status
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("project", in.Name).Str("owner", identity.Username).Msg("project edited")
	return nil
}

// Delete removes the caller's project. The attached image is removed
// best-effort after the record: a failed unlink is logged, never surfaced.
func (s *ProjectService) Delete(ctx context.Context, identity ports.Identity, name string) error {
	deleted, err := s.projects.DeleteByName(ctx, name, identity.Username)
	if err != nil {
		return err
	}

	if deleted.ImageURL != "" {
		if err := s.uploads.Remove(deleted.ImageURL); err != nil {
			s.logger.Warn().Err(err).Str("image", deleted.ImageURL).Msg("failed to delete project image")
		}
	}

	s.logger.Info().Str("project", name).Str("owner", identity.Username).Msg("project deleted")
	return nil
}

// CodeService implements owner-scoped code snippet operations.
type CodeService struct {
	snippets ports.CodeRepository
	logger   zerolog.Logger
}

func NewCodeService(snippets ports.CodeRepository, logger zerolog.Logger) *CodeService {
	return &CodeService{snippets: snippets, logger: logger}
}

func (s *CodeService) Add(ctx context.Context, identity ports.Identity, in ports.AddCodeInput) error {
	if in.Name == "" || in.Description == "" || in.FullDes == "" || in.Status == "" {
		return domain.ErrMissingFields
	}

	snippet := domain.CodeSnippet{
		Name:        in.Name,
		Description: in.Description,
		FullDes:     in.FullDes,
		Status:      in.Status,
		Owner:       identity.Username,
		Adver:       in.Adver,
	}

	if err := s.snippets.Insert(ctx, snippet); err != nil {
		return err
	}

	s.logger.Info().Str("snippet", in.Name).Str("owner", identity.Username).Msg("code snippet added")
	return nil
}

func (s *CodeService) ListOwn(ctx context.Context, identity ports.Identity) ([]domain.CodeSnippet, error) {
	return s.snippets.ListByOwner(ctx, identity.Username)
}
