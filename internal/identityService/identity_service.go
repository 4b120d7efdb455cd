package identity

import (
	"errors"
	"fmt"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/credentials"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// IdentityService owns the signup and signin flows
type IdentityService struct {
	users  repository.UserStore
	hasher *credentials.PasswordHasher
	tokens *credentials.TokenIssuer
}

// NewIdentityService creates a new IdentityService instance
func NewIdentityService(users repository.UserStore, hasher *credentials.PasswordHasher, tokens *credentials.TokenIssuer) *IdentityService {
	return &IdentityService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// SignUp registers a new user. The password is hashed before it is
// persisted; the plaintext is never stored or returned.
func (s *IdentityService) SignUp(username, email, password string) (model.User, error) {
	if username == "" || email == "" || password == "" {
		return model.User{}, fmt.Errorf("service: %w - missing username, email or password", auctionerrors.ErrInvalidInput)
	}

	if _, err := s.users.GetUserByEmail(email); err == nil {
		return model.User{}, fmt.Errorf("service: %w", auctionerrors.ErrUserExists)
	} else if !errors.Is(err, auctionerrors.ErrUserNotFound) {
		return model.User{}, fmt.Errorf("service: failed to check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := model.User{
		UserID:       utils.GenerateID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	// The store's unique index on email backs up the check above against
	// a concurrent signup with the same address.
	if err := s.users.CreateUser(user); err != nil {
		return model.User{}, fmt.Errorf("service: failed to create user: %w", err)
	}

	return user, nil
}

// SignIn verifies the supplied credentials and issues a signed token bound
// to the user's identifier.
func (s *IdentityService) SignIn(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("service: %w - missing email or password", auctionerrors.ErrInvalidInput)
	}

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("service: failed to look up user %s: %w", email, err)
	}

	if err := s.hasher.Verify(user.PasswordHash, password); err != nil {
		return "", fmt.Errorf("service: %w", err)
	}

	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return "", fmt.Errorf("service: failed to issue token: %w", err)
	}
	return token, nil
}
