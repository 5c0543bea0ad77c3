// internal/application/store.go
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/ports"
)

// SessionCartStore owns one kiosk's credentials, its single active session
// and the per-user carts. It is not safe for concurrent use: events are
// expected to run one at a time (see TerminalService).
type SessionCartStore struct {
	users  ports.CredentialRepositoryPort
	carts  ports.CartRepositoryPort
	hasher ports.PasswordHasherPort

	active   string
	loggedIn bool

	now func() time.Time
}

func NewSessionCartStore(users ports.CredentialRepositoryPort, carts ports.CartRepositoryPort, hasher ports.PasswordHasherPort) *SessionCartStore {
	return &SessionCartStore{
		users:  users,
		carts:  carts,
		hasher: hasher,
		now:    time.Now,
	}
}

// Seed appends credential records without creating carts; seeded users get
// their cart on first login.
func (s *SessionCartStore) Seed(ctx context.Context, seeds []domain.User) error {
	hashed, err := hashUsers(s.hasher, seeds)
	if err != nil {
		return err
	}
	return appendUsers(ctx, s.users, hashed)
}

func hashUsers(hasher ports.PasswordHasherPort, seeds []domain.User) ([]domain.User, error) {
	hashed := make([]domain.User, 0, len(seeds))
	for _, u := range seeds {
		h, err := hasher.Hash(u.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %q: %w", u.Username, err)
		}
		hashed = append(hashed, domain.User{Username: u.Username, Password: h})
	}
	return hashed, nil
}

func appendUsers(ctx context.Context, repo ports.CredentialRepositoryPort, users []domain.User) error {
	for _, u := range users {
		if err := repo.AppendUser(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

// ActiveUser reports the username of the active session, if any.
func (s *SessionCartStore) ActiveUser() (string, bool) {
	return s.active, s.loggedIn
}

func sumPrices(items []domain.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price
	}
	return sum
}

// StoreFactory builds a fresh store for a new terminal.
type StoreFactory func(ctx context.Context) (*SessionCartStore, error)

// NewStoreFactory hashes seeds once and returns a factory whose stores
// start with those users in the given order.
func NewStoreFactory(
	newUsers func() ports.CredentialRepositoryPort,
	newCarts func() ports.CartRepositoryPort,
	hasher ports.PasswordHasherPort,
	seeds []domain.User,
) (StoreFactory, error) {
	hashed, err := hashUsers(hasher, seeds)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) (*SessionCartStore, error) {
		users := newUsers()
		if err := appendUsers(ctx, users, hashed); err != nil {
			return nil, err
		}
		return NewSessionCartStore(users, newCarts(), hasher), nil
	}, nil
}
