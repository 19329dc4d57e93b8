package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

const DefaultRole = "user"

// DefaultRank is the rank every account starts at.
const DefaultRank = "broke"

// StartingTokens is the balance assigned at registration. New accounts begin
// in debt, so the first rank purchase requires topping up.
const StartingTokens = -1000

// TokenBalance is the in-app currency balance. Documents written by earlier
// versions of the system occasionally carry the balance as a quoted string or
// as garbage; decoding coerces anything non-numeric to zero instead of
// rejecting the whole user collection.
type TokenBalance int

func (t *TokenBalance) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*t = TokenBalance(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, perr := strconv.Atoi(strings.TrimSpace(s)); perr == nil {
			*t = TokenBalance(parsed)
			return nil
		}
	}
	*t = 0
	return nil
}

// User is an account record. Password holds the bcrypt hash; the on-disk
// field name stays "password" for compatibility with existing documents.
type User struct {
	Username string       `json:"username"`
	Password string       `json:"password"`
	Rank     string       `json:"rank"`
	Role     string       `json:"role"`
	Tokens   TokenBalance `json:"tokens"`
	Mentor   string       `json:"mentor"`
}
