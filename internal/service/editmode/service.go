// Package editmode checks the shared edit password that unlocks mutations in
// the client.
package editmode

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/filmlist-backend/internal/domain"
)

// Service verifies unlock attempts against the configured secret.
type Service struct {
	secret string
	log    *slog.Logger
}

// NewService creates a new edit-mode service. The secret is either plain text
// or a bcrypt hash.
func NewService(log *slog.Logger, secret string) *Service {
	return &Service{
		secret: secret,
		log:    log.With("service", "editmode"),
	}
}

// UnlockInput carries an unlock attempt.
type UnlockInput struct {
	Password string `field:"password" validate:"required"`
}

// Unlock succeeds when the password matches the configured secret.
func (s *Service) Unlock(ctx context.Context, in UnlockInput) error {
	if err := domain.ValidateStruct(ctx, in); err != nil {
		return err
	}
	if s.secret == "" {
		s.log.ErrorContext(ctx, "unlock attempted without a configured secret")
		return &domain.ConfigurationError{Setting: "EDIT_PASSWORD"}
	}

	if !s.matches(in.Password) {
		s.log.WarnContext(ctx, "unlock rejected")
		return domain.ErrUnauthorized
	}

	s.log.InfoContext(ctx, "edit mode unlocked")
	return nil
}

func (s *Service) matches(password string) bool {
	if isBcryptHash(s.secret) {
		err := bcrypt.CompareHashAndPassword([]byte(s.secret), []byte(password))
		if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.log.Error("stored edit password hash is malformed", slog.String("error", err.Error()))
		}
		return err == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.secret), []byte(password)) == 1
}

func isBcryptHash(s string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
