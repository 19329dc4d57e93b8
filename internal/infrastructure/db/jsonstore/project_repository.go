package jsonstore

import (
	"context"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

const projectsFile = "projects.json"

// ProjectRepository stores the project collection in projects.json. Name
// lookups take the first match in document order; an empty owner matches any
// owner.
type ProjectRepository struct {
	coll *collection
}

func NewProjectRepository(s *Store) *ProjectRepository {
	return &ProjectRepository{coll: s.collection(projectsFile)}
}

func (r *ProjectRepository) List(_ context.Context) ([]domain.Project, error) {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var projects []domain.Project
	if err := r.coll.load(&projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Insert(_ context.Context, project domain.Project) error {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var projects []domain.Project
	if err := r.coll.load(&projects); err != nil {
		return err
	}
	projects = append(projects, project)
	return r.coll.save(projects)
}

func (r *ProjectRepository) UpdateByName(_ context.Context, name, owner string, fn func(*domain.Project) error) (*domain.Project, error) {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var projects []domain.Project
	if err := r.coll.load(&projects); err != nil {
		return nil, err
	}
	for i := range projects {
		if !matches(&projects[i], name, owner) {
			continue
		}
		if err := fn(&projects[i]); err != nil {
			return nil, err
		}
		if err := r.coll.save(projects); err != nil {
			return nil, err
		}
		p := projects[i]
		return &p, nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *ProjectRepository) DeleteByName(_ context.Context, name, owner string) (*domain.Project, error) {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var projects []domain.Project
	if err := r.coll.load(&projects); err != nil {
		return nil, err
	}
	for i := range projects {
		if !matches(&projects[i], name, owner) {
			continue
		}
		deleted := projects[i]
		projects = append(projects[:i], projects[i+1:]...)
		if err := r.coll.save(projects); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, domain.ErrProjectNotFound
}

func matches(p *domain.Project, name, owner string) bool {
	if p.Name != name {
		return false
	}
	return owner == "" || p.Owner == owner
}
