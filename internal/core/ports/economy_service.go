package ports

import "context"

// PurchaseResult reports the user's state after an economy operation.
type PurchaseResult struct {
	Rank   string
	Tokens int
}

// UpgradeResult reports the outcome of an automatic rank upgrade attempt.
type UpgradeResult struct {
	// Upgraded is true when a new rank was bought.
	Upgraded bool
	// AtTop is true when the user is already at (or beyond) the last tier.
	AtTop  bool
	Rank   string
	Tokens int
}

// EconomyService tracks token balances and rank progression.
type EconomyService interface {
	// BuyTokens increments the balance; ErrInvalidAmount unless amount > 0.
	BuyTokens(ctx context.Context, identity Identity, amount int) (*PurchaseResult, error)
	CheckTokens(ctx context.Context, identity Identity) (int, error)
	ShowRank(ctx context.Context, identity Identity) (string, error)
	// BuyRank spends tokens on newRank. The target must be a table key,
	// affordable, and strictly after the current rank in table order.
	BuyRank(ctx context.Context, identity Identity, newRank string) (*PurchaseResult, error)
	// AutoUpgrade buys the first affordable tier after the current position in
	// table order, if any. At most one upgrade per call.
	AutoUpgrade(ctx context.Context, identity Identity) (*UpgradeResult, error)
}
