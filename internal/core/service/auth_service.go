package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mikelm2020/estatehub/internal/core/crypto"
	"github.com/mikelm2020/estatehub/internal/core/domain"
	"github.com/mikelm2020/estatehub/internal/core/ports"
	"github.com/mikelm2020/estatehub/internal/core/token"
)

// AuthService implements registration, login, and password rotation.
type AuthService struct {
	repo  ports.AgentRepository
	codec *token.Codec
	log   zerolog.Logger
}

func NewAuthService(repo ports.AgentRepository, codec *token.Codec, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, log: log}
}

// Register creates a new agent account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterAgentInput) (*domain.Agent, error) {
	role := domain.Role(input.Role)
	if input.Username == "" || input.Password == "" || !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	agent := &domain.Agent{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		Phone:        input.Phone,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, agent)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("agent registered")
	return created, nil
}

// authenticate verifies a credential pair against the store. An unknown
// username and a wrong password produce the same error so callers cannot
// enumerate accounts.
func (s *AuthService) authenticate(ctx context.Context, username, password string) (*domain.Agent, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	agent, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.VerifyPassword(password, agent.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return agent, nil
}

// Login authenticates the credential pair and mints a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	agent, err := s.authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	signed, err := s.codec.Encode(agent)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("token signing failed")
		return nil, err
	}

	s.log.Info().Str("username", agent.Username).Msg("agent logged in")
	return &ports.LoginResult{AccessToken: signed, TokenType: "bearer"}, nil
}

// CurrentAgent loads the full account record behind a resolved principal.
func (s *AuthService) CurrentAgent(ctx context.Context, principal domain.Principal) (*domain.Agent, error) {
	return s.repo.FindByID(ctx, principal.ID)
}

// ChangePassword rotates the caller's password hash after verifying the
// current password. A wrong current password fails exactly like a bad login.
func (s *AuthService) ChangePassword(ctx context.Context, principal domain.Principal, current, updated string) error {
	agent, err := s.repo.FindByID(ctx, principal.ID)
	if err != nil {
		return err
	}

	if !crypto.VerifyPassword(current, agent.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(updated)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, agent.ID, hash); err != nil {
		return err
	}

	s.log.Info().Str("username", agent.Username).Msg("password rotated")
	return nil
}
