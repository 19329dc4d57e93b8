package jsonstore

import (
	"context"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

const codeFile = "code.json"

// CodeRepository stores code snippets in code.json.
type CodeRepository struct {
	coll *collection
}

func NewCodeRepository(s *Store) *CodeRepository {
	return &CodeRepository{coll: s.collection(codeFile)}
}

func (r *CodeRepository) Insert(_ context.Context, snippet domain.CodeSnippet) error {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var snippets []domain.CodeSnippet
	if err := r.coll.load(&snippets); err != nil {
		return err
	}
	snippets = append(snippets, snippet)
	return r.coll.save(snippets)
}

func (r *CodeRepository) ListByOwner(_ context.Context, owner string) ([]domain.CodeSnippet, error) {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var snippets []domain.CodeSnippet
	if err := r.coll.load(&snippets); err != nil {
		return nil, err
	}
	out := make([]domain.CodeSnippet, 0, len(snippets))
	for i := range snippets {
		if snippets[i].Owner == owner {
			out = append(out, snippets[i])
		}
	}
	return out, nil
}
