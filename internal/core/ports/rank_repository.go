package ports

import (
	"context"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

// RankRepository reads the rank price table. The table is external
// configuration: read-only to the core, key order defines progression.
type RankRepository interface {
	Table(ctx context.Context) (*domain.RankTable, error)
}
