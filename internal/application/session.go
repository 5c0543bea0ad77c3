// internal/application/session.go
package application

import (
	"context"
	"fmt"

	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"
)

// Login activates the first user whose username and password both match.
// A returning user keeps the cart they had. The session only switches once
// the user's cart has been prepared and rendered.
func (s *SessionCartStore) Login(ctx context.Context, username, password string) (*domain.Result, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username != username || !s.hasher.Compare(u.Password, password) {
			continue
		}
		if err := s.carts.EnsureCart(ctx, username); err != nil {
			return nil, err
		}
		cart, err := s.renderFor(ctx, username)
		if err != nil {
			return nil, err
		}
		s.active, s.loggedIn = username, true
		return &domain.Result{Message: "Logged in as " + username, Cart: cart}, nil
	}
	return nil, domain.ErrInvalidCredentials
}

// Register appends a credential unconditionally and resets the user's cart.
// It does not log the user in. The only error is an infrastructure one.
func (s *SessionCartStore) Register(ctx context.Context, username, password string) (*domain.Result, error) {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.AppendUser(ctx, domain.User{Username: username, Password: hashed}); err != nil {
		return nil, err
	}
	if err := s.carts.ResetCart(ctx, username); err != nil {
		return nil, err
	}
	return &domain.Result{Message: fmt.Sprintf("User %s registered successfully", username)}, nil
}
