package ports

import "context"

// Identity is the claim set carried by a verified session token. Claims are
// trusted as issued; a user's role or mentor can drift after issuance without
// invalidating outstanding tokens.
type Identity struct {
	Username string
	Role     string
	Mentor   string
}

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Username string
	Password string
	Role     string // defaults to "user" when empty
	Mentor   string // optional username of an assigned mentor
}

// AuthService implements registration, login and account deletion.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) error
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, error)
	// UsernameAvailable reports whether username is free; ErrUserExists when taken.
	UsernameAvailable(ctx context.Context, username string) error
	// DeleteSelf removes the account matching the authenticated username.
	DeleteSelf(ctx context.Context, identity Identity) error
}
