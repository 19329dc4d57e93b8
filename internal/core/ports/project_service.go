package ports

import (
	"context"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

// AddProjectInput carries the fields accepted when creating a project.
type AddProjectInput struct {
	Name        string
	Description string
	FullDes     string
	Status      string
	Adver       bool
	ImageURL    string
}

// EditProjectInput overwrites the mutable fields of an owned project.
type EditProjectInput struct {
	Name        string
	Description string
	FullDes     string
	Status      string
}

// ProjectService implements owner-scoped project CRUD.
type ProjectService interface {
	Add(ctx context.Context, identity Identity, in AddProjectInput) error
	ListOwn(ctx context.Context, identity Identity) ([]domain.Project, error)
	ListPublic(ctx context.Context) ([]domain.Project, error)
	// ListSharedWithMe returns projects whose sharedWith contains the caller.
	ListSharedWithMe(ctx context.Context, identity Identity) ([]domain.Project, error)
	Edit(ctx context.Context, identity Identity, in EditProjectInput) error
	// Delete removes the owned project and best-effort deletes its image.
	Delete(ctx context.Context, identity Identity, name string) error
}

// AddCodeInput carries the fields accepted when creating a code snippet.
type AddCodeInput struct {
	Name        string
	Description string
	FullDes     string
	Status      string
	Adver       bool
}

// CodeService implements owner-scoped code snippet operations.
type CodeService interface {
	Add(ctx context.Context, identity Identity, in AddCodeInput) error
	ListOwn(ctx context.Context, identity Identity) ([]domain.CodeSnippet, error)
}
