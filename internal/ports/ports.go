// internal/ports/ports.go
package ports

import (
	"context"

	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

// CredentialRepositoryPort is an ordered, append-only credential sequence.
type CredentialRepositoryPort interface {
	AppendUser(ctx context.Context, user domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// CartRepositoryPort maps usernames to their cart and cached total.
type CartRepositoryPort interface {
	EnsureCart(ctx context.Context, username string) error
	ResetCart(ctx context.Context, username string) error
	Items(ctx context.Context, username string) ([]domain.CartItem, error)
	AppendItem(ctx context.Context, username string, item domain.CartItem) error
	Total(ctx context.Context, username string) (float64, error)
	SetTotal(ctx context.Context, username string, total float64) error
}

type PasswordHasherPort interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type PublisherPort interface {
	Publish(ctx context.Context, topic string, value interface{}) error
	Ping(ctx context.Context) error
}
