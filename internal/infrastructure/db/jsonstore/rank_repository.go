package jsonstore

import (
	"context"
	"os"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

const ranksFile = "ranks.json"

// RankRepository reads the rank price table from ranks.json. The table is
// external configuration; the core never writes it.
type RankRepository struct {
	coll *collection
}

func NewRankRepository(s *Store) *RankRepository {
	return &RankRepository{coll: s.collection(ranksFile)}
}

func (r *RankRepository) Table(_ context.Context) (*domain.RankTable, error) {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	table := &domain.RankTable{}
	if err := r.coll.load(table); err != nil {
		return nil, err
	}
	return table, nil
}

// SeedDefault writes table to ranks.json when the file does not exist yet.
// Called once at startup so a fresh deployment has a usable progression.
func (r *RankRepository) SeedDefault(table *domain.RankTable) error {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	if _, err := os.Stat(r.coll.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return r.coll.save(table)
}
