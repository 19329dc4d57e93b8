package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/showcasehub/showcase-system/internal/core/domain"
	"github.com/showcasehub/showcase-system/internal/core/ports"
)

// EconomyService implements the token ledger and rank progression rules.
type EconomyService struct {
	users  ports.UserRepository
	ranks  ports.RankRepository
	logger zerolog.Logger
}

func NewEconomyService(users ports.UserRepository, ranks ports.RankRepository, logger zerolog.Logger) *EconomyService {
	return &EconomyService{users: users, ranks: ranks, logger: logger}
}

func (s *EconomyService) BuyTokens(ctx context.Context, identity ports.Identity, amount int) (*ports.PurchaseResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	user, err := s.users.Update(ctx, identity.Username, func(u *domain.User) error {
		u.Tokens += domain.TokenBalance(amount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", identity.Username).Int("amount", amount).Int("tokens", int(user.Tokens)).Msg("tokens purchased")
	return &ports.PurchaseResult{Rank: user.Rank, Tokens: int(user.Tokens)}, nil
}

func (s *EconomyService) CheckTokens(ctx context.Context, identity ports.Identity) (int, error) {
	user, err := s.users.FindByUsername(ctx, identity.Username)
	if err != nil {
		return 0, err
	}
	return int(user.Tokens), nil
}

func (s *EconomyService) ShowRank(ctx context.Context, identity ports.Identity) (string, error) {
	user, err := s.users.FindByUsername(ctx, identity.Username)
	if err != nil {
		return "", err
	}
	return user.Rank, nil
}

// BuyRank spends tokens on newRank. Check order matches the original system:
// unknown rank, then affordability, then forward-only progression. An unknown
// current rank indexes at -1 and therefore passes the progression check for
// any listed rank; that asymmetry is inherited behavior and kept.
func (s *EconomyService) BuyRank(ctx context.Context, identity ports.Identity, newRank string) (*ports.PurchaseResult, error) {
	table, err := s.ranks.Table(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Update(ctx, identity.Username, func(u *domain.User) error {
		price, ok := table.Price(newRank)
		if !ok {
			return domain.ErrUnknownRank
		}
		if int(u.Tokens) < price {
			return domain.ErrInsufficientTokens
		}
		if table.IndexOf(newRank) <= table.IndexOf(u.Rank) {
			return domain.ErrNotHigherRank
		}
		u.Tokens -= domain.TokenBalance(price)
		u.Rank = newRank
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", identity.Username).Str("rank", newRank).Int("tokens", int(user.Tokens)).Msg("rank purchased")
	return &ports.PurchaseResult{Rank: user.Rank, Tokens: int(user.Tokens)}, nil
}

// AutoUpgrade walks the table strictly after the user's current position and
// buys the first tier the balance covers in table order, not the cheapest.
// An unknown current rank reports "at top", as the original did.
func (s *EconomyService) AutoUpgrade(ctx context.Context, identity ports.Identity) (*ports.UpgradeResult, error) {
	table, err := s.ranks.Table(ctx)
	if err != nil {
		return nil, err
	}

	result := &ports.UpgradeResult{}
	user, err := s.users.Update(ctx, identity.Username, func(u *domain.User) error {
		idx := table.IndexOf(u.Rank)
		if idx == -1 || idx >= table.Len()-1 {
			result.AtTop = true
			return nil
		}
		for _, next := range table.Names()[idx+1:] {
			price, _ := table.Price(next)
			if int(u.Tokens) >= price {
				u.Tokens -= domain.TokenBalance(price)
				u.Rank = next
				result.Upgraded = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Rank = user.Rank
	result.Tokens = int(user.Tokens)
	if result.Upgraded {
		s.logger.Info().Str("username", identity.Username).Str("rank", user.Rank).Int("tokens", result.Tokens).Msg("rank auto-upgraded")
	}
	return result, nil
}
