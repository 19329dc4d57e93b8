package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrProjectNotFound = errors.New("project not found")
	ErrMissingFields   = errors.New("all fields are required")

	ErrAlreadyVoted = errors.New("already voted on this project")
	ErrNotVoted     = errors.New("no active vote on this project")

	ErrInvalidAmount      = errors.New("invalid token amount")
	ErrUnknownRank        = errors.New("unknown rank")
	ErrInsufficientTokens = errors.New("not enough tokens")
	ErrNotHigherRank      = errors.New("only a higher rank can be bought")

	ErrNoFile = errors.New("no file received")
)
