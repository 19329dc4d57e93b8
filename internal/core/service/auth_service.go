package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/showcasehub/showcase-system/internal/core/domain"
	"github.com/showcasehub/showcase-system/internal/core/ports"
)

const bcryptCost = 10

// AuthService implements registration, login and account deletion.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) error {
	if in.Username == "" || in.Password == "" {
		return domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return err
	}

	role := in.Role
	if role == "" {
		role = domain.DefaultRole
	}

	user := domain.User{
		Username: in.Username,
		Password: string(hash),
		Rank:     domain.DefaultRank,
		Role:     role,
		Tokens:   domain.StartingTokens,
		Mentor:   in.Mentor,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("username", in.Username).Str("role", role).Msg("account registered")
	return nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", username).Msg("login")
	return token, nil
}

func (s *AuthService) UsernameAvailable(ctx context.Context, username string) error {
	if username == "" {
		return domain.ErrMissingFields
	}
	taken, err := s.repo.Exists(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrUserExists
	}
	return nil
}

func (s *AuthService) DeleteSelf(ctx context.Context, identity ports.Identity) error {
	if err := s.repo.Delete(ctx, identity.Username); err != nil {
		return err
	}
	s.logger.Info().Str("username", identity.Username).Msg("account deleted")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"mentor":   user.Mentor,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
