// internal/adapters/repository/memory.go
package repository

import (
	"context"

	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/ports"
)

// MemoryCredentialRepository keeps users in registration order. Duplicate
// usernames are kept as separate records.
//
// Not safe for concurrent use; callers serialize access per store.
type MemoryCredentialRepository struct {
	users []domain.User
}

func NewMemoryCredentialRepository() ports.CredentialRepositoryPort {
	return &MemoryCredentialRepository{}
}

func (r *MemoryCredentialRepository) AppendUser(ctx context.Context, user domain.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *MemoryCredentialRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// MemoryCartRepository holds one cart and one cached total per username.
// Entries are emptied, never removed.
type MemoryCartRepository struct {
	carts  map[string][]domain.CartItem
	totals map[string]float64
}

func NewMemoryCartRepository() ports.CartRepositoryPort {
	return &MemoryCartRepository{
		carts:  make(map[string][]domain.CartItem),
		totals: make(map[string]float64),
	}
}

func (r *MemoryCartRepository) EnsureCart(ctx context.Context, username string) error {
	if _, ok := r.carts[username]; !ok {
		r.carts[username] = []domain.CartItem{}
	}
	if _, ok := r.totals[username]; !ok {
		r.totals[username] = 0
	}
	return nil
}

func (r *MemoryCartRepository) ResetCart(ctx context.Context, username string) error {
	r.carts[username] = []domain.CartItem{}
	r.totals[username] = 0
	return nil
}

func (r *MemoryCartRepository) Items(ctx context.Context, username string) ([]domain.CartItem, error) {
	items := r.carts[username]
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *MemoryCartRepository) AppendItem(ctx context.Context, username string, item domain.CartItem) error {
	r.carts[username] = append(r.carts[username], item)
	return nil
}

func (r *MemoryCartRepository) Total(ctx context.Context, username string) (float64, error) {
	return r.totals[username], nil
}

func (r *MemoryCartRepository) SetTotal(ctx context.Context, username string, total float64) error {
	r.totals[username] = total
	return nil
}
