package service

import (
	"context"
	"testing"

	"github.com/AlibekovAA/feedboard/backend/internal/common/logger"
	userdomain "github.com/AlibekovAA/feedboard/backend/internal/user/domain"
	userrepo "github.com/AlibekovAA/feedboard/backend/internal/user/repository"
)

type mockUserRepo struct {
	findByLoginFunc func(ctx context.Context, login string) (userdomain.User, error)
}

func (m *mockUserRepo) FindByLogin(ctx context.Context, login string) (userdomain.User, error) {
	if m.findByLoginFunc != nil {
		return m.findByLoginFunc(ctx, login)
	}
	return userdomain.User{}, userrepo.ErrUserNotFound
}

type mockHasher struct {
	hashFunc    func(password string) (string, error)
	compareFunc func(hash string, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *mockHasher) Compare(hash string, password string) error {
	if m.compareFunc != nil {
		return m.compareFunc(hash, password)
	}
	return nil
}

type mockTokenGenerator struct {
	newTokenFunc func() (string, error)
}

func (m *mockTokenGenerator) NewToken() (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc()
	}
	return "token-1", nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(t.TempDir(), "test", "CRITICAL")
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return log
}

func setupAuthService(t *testing.T) (*AuthService, *TokenStore, *mockUserRepo, *mockHasher, *mockTokenGenerator) {
	t.Helper()

	repo := &mockUserRepo{}
	hasher := &mockHasher{}
	gen := &mockTokenGenerator{}
	tokens := NewTokenStore()
	svc := NewAuthService(repo, tokens, hasher, gen, newTestLogger(t))

	return svc, tokens, repo, hasher, gen
}
