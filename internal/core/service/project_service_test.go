package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/showcasehub/showcase-system/internal/core/domain"
	"github.com/showcasehub/showcase-system/internal/core/ports"
)

type stubUploadStore struct {
	removed   []string
	removeErr error
}

func (s *stubUploadStore) Save(originalName string, _ io.Reader) (string, error) {
	return "/uploads/" + originalName, nil
}

func (s *stubUploadStore) Remove(imageURL string) error {
	s.removed = append(s.removed, imageURL)
	return s.removeErr
}

func projectFixture(projects ...domain.Project) (*ProjectService, *stubProjectRepo, *stubUploadStore) {
	repo := &stubProjectRepo{projects: projects}
	uploads := &stubUploadStore{}
	return NewProjectService(repo, uploads, zerolog.Nop()), repo, uploads
}

func TestProjectService_AddSeedsSharedWithMentor(t *testing.T) {
	svc, repo, _ := projectFixture()
	identity := ports.Identity{Username: "alice", Mentor: "bob"}

	err := svc.Add(context.Background(), identity, ports.AddProjectInput{
		Name:        "P1",
		Description: "short",
		FullDes:     "long",
		Status:      "in progress",
		Adver:       true,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	p := repo.projects[0]
	if p.Owner != "alice" {
		t.Errorf("owner = %q, want alice", p.Owner)
	}
	if len(p.SharedWith) != 1 || p.SharedWith[0] != "bob" {
		t.Errorf("sharedWith = %v, want [bob]", p.SharedWith)
	}
}

func TestProjectService_AddSeedsEmptyMentor(t *testing.T) {
	svc, repo, _ := projectFixture()

	err := svc.Add(context.Background(), ports.Identity{Username: "alice"}, ports.AddProjectInput{
		Name: "P1", Description: "d", FullDes: "f", Status: "s",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := repo.projects[0].SharedWith; len(got) != 1 || got[0] != "" {
		t.Fatalf("sharedWith = %v, want one empty element", got)
	}
}

func TestProjectService_AddMissingFields(t *testing.T) {
	svc, _, _ := projectFixture()

	err := svc.Add(context.Background(), ports.Identity{Username: "alice"}, ports.AddProjectInput{
		Name: "P1", Description: "d",
	})
	if err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestProjectService_Listings(t *testing.T) {
	svc, _, _ := projectFixture(
		domain.Project{Name: "mine", Owner: "alice"},
		domain.Project{Name: "public", Owner: "bob", Adver: true},
		domain.Project{Name: "shared", Owner: "carol", SharedWith: []string{"alice"}},
	)
	identity := ports.Identity{Username: "alice"}

	own, err := svc.ListOwn(context.Background(), identity)
	if err != nil || len(own) != 1 || own[0].Name != "mine" {
		t.Fatalf("ListOwn = %v, %v", own, err)
	}

	public, err := svc.ListPublic(context.Background())
	if err != nil || len(public) != 1 || public[0].Name != "public" {
		t.Fatalf("ListPublic = %v, %v", public, err)
	}

	shared, err := svc.ListSharedWithMe(context.Background(), identity)
	if err != nil || len(shared) != 1 || shared[0].Name != "shared" {
		t.Fatalf("ListSharedWithMe = %v, %v", shared, err)
	}
}

func TestProjectService_EditTouchesThreeFieldsOnly(t *testing.T) {
	svc, repo, _ := projectFixture(domain.Project{
		Name: "P1", Owner: "alice", Description: "old", FullDes: "old",
		Status: "old", Likes: 3, ImageURL: "/uploads/a.png", Adver: true,
	})

	err := svc.Edit(context.Background(), ports.Identity{Username: "alice"}, ports.EditProjectInput{
		Name: "P1", Description: "new", FullDes: "newer", Status: "done",
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	p := repo.projects[0]
	if p.Description != "new" || p.FullDes != "newer" || p.Status != "done" {
		t.Fatalf("edit not applied: %+v", p)
	}
	if p.Likes != 3 || p.ImageURL != "/uploads/a.png" || !p.Adver {
		t.Fatalf("edit touched unrelated fields: %+v", p)
	}
}

func TestProjectService_EditOtherOwnersProject(t *testing.T) {
	svc, _, _ := projectFixture(domain.Project{Name: "P1", Owner: "bob"})

	err := svc.Edit(context.Background(), ports.Identity{Username: "alice"}, ports.EditProjectInput{Name: "P1"})
	if err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_DeleteRemovesImage(t *testing.T) {
	svc, repo, uploads := projectFixture(domain.Project{
		Name: "P1", Owner: "alice", ImageURL: "/uploads/a.png",
	})

	if err := svc.Delete(context.Background(), ports.Identity{Username: "alice"}, "P1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.projects) != 0 {
		t.Fatalf("project record still present")
	}
	if len(uploads.removed) != 1 || uploads.removed[0] != "/uploads/a.png" {
		t.Fatalf("image removal = %v", uploads.removed)
	}
}

func TestProjectService_DeleteSurvivesImageUnlinkFailure(t *testing.T) {
	svc, repo, uploads := projectFixture(domain.Project{
		Name: "P1", Owner: "alice", ImageURL: "/uploads/a.png",
	})
	uploads.removeErr = errors.New("disk gone")

	if err := svc.Delete(context.Background(), ports.Identity{Username: "alice"}, "P1"); err != nil {
		t.Fatalf("delete should not surface unlink failure: %v", err)
	}
	if len(repo.projects) != 0 {
		t.Fatalf("project record still present")
	}
}

type stubCodeRepo struct {
	snippets []domain.CodeSnippet
}

func (r *stubCodeRepo) Insert(_ context.Context, snippet domain.CodeSnippet) error {
	r.snippets = append(r.snippets, snippet)
	return nil
}

func (r *stubCodeRepo) ListByOwner(_ context.Context, owner string) ([]domain.CodeSnippet, error) {
	out := []domain.CodeSnippet{}
	for _, s := range r.snippets {
		if s.Owner == owner {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestCodeService_AddAndListOwn(t *testing.T) {
	repo := &stubCodeRepo{}
	svc := NewCodeService(repo, zerolog.Nop())
	identity := ports.Identity{Username: "alice"}

	err := svc.Add(context.Background(), identity, ports.AddCodeInput{
		Name: "snippet", Description: "d", FullDes: "f", Status: "s",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(context.Background(), identity, ports.AddCodeInput{Name: "x"}); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	own, err := svc.ListOwn(context.Background(), identity)
	if err != nil || len(own) != 1 || own[0].Name != "snippet" || own[0].Owner != "alice" {
		t.Fatalf("ListOwn = %v, %v", own, err)
	}
}
