// Package services – AuthService
//
// This file implements the AuthService, which owns API credentials: user
// registration (storing only a one-way Argon2id hash) and login (hash
// verification followed by access-token issuance). Authentication gates
// access to mutating endpoints but does not scope data ownership.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mribeiro/go-vacina-backend/internal/auth"
	"github.com/mribeiro/go-vacina-backend/internal/repo"
)

// AuthService implements credential registration and authentication.
type AuthService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Tokens issues and verifies signed access tokens.
	Tokens *auth.Manager
}

// Register creates a credential for username. The plaintext password is
// hashed before the transaction opens and never persisted.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrCredentialsRequired
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := repo.UsernameExists(ctx, tx, username)
		if err != nil {
			return err
		}
		if taken {
			return ErrUsernameExists
		}
		if _, err := repo.CreateUser(ctx, tx, username, hash); err != nil {
			if isDuplicate(err) {
				return ErrUsernameExists
			}
			return err
		}
		return nil
	})
}

// Login verifies the credentials and returns a signed access token bound to
// the user's id. Unknown username and wrong password both yield
// ErrInvalidCredentials; callers must not be able to distinguish them.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := repo.GetUserByUsername(ctx, s.DB, username)
	if err != nil {
		if isNotFound(err) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", ErrInvalidCredentials
	}

	return s.Tokens.Issue(user.ID)
}
