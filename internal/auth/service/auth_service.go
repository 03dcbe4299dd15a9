package service

import (
	"context"
	"errors"
	"fmt"

	commoncrypto "github.com/AlibekovAA/feedboard/backend/internal/common/crypto"
	"github.com/AlibekovAA/feedboard/backend/internal/common/logger"
	userdomain "github.com/AlibekovAA/feedboard/backend/internal/user/domain"
	userrepo "github.com/AlibekovAA/feedboard/backend/internal/user/repository"
)

type AuthService struct {
	repo           userrepo.Repository
	tokens         *TokenStore
	hasher         commoncrypto.PasswordHasher
	tokenGenerator commoncrypto.TokenGenerator
	log            *logger.Logger
}

func NewAuthService(
	repo userrepo.Repository,
	tokens *TokenStore,
	hasher commoncrypto.PasswordHasher,
	tokenGenerator commoncrypto.TokenGenerator,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		repo:           repo,
		tokens:         tokens,
		hasher:         hasher,
		tokenGenerator: tokenGenerator,
		log:            log,
	}
}

type AuthenticateInput struct {
	Login    string
	Password string
}

// Authenticate verifies the credentials against the credential store and,
// on success, mints a fresh opaque token and records it. Re-authentication
// always issues a new token; previously issued tokens stay valid.
func (s *AuthService) Authenticate(ctx context.Context, input AuthenticateInput) (string, error) {
	user, err := s.repo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"login":  input.Login,
				"action": "login_unknown_user",
			}).Warn("login failed: unknown user")
			incrementLoginFailure("user_not_found")
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("credential lookup failed: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"login":  input.Login,
			"action": "login_invalid_password",
		}).Warn("login failed: invalid password")
		incrementLoginFailure("invalid_password")
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.NewToken()
	if err != nil {
		return "", fmt.Errorf("token generation failed: %w", err)
	}

	s.tokens.Put(token, user)

	incrementTokensIssued()
	setTokenStoreSize(s.tokens.Len())

	s.log.WithFields(ctx, logger.Fields{
		"login":  input.Login,
		"action": "login_success",
	}).Info("token issued")

	return token, nil
}

// Resolve answers whether a bearer token identifies an authenticated user.
// It never mutates the store. The bearer middleware consumes this through
// its TokenResolver interface.
func (s *AuthService) Resolve(token string) (userdomain.User, bool) {
	return s.tokens.Resolve(token)
}
