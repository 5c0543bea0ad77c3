// internal/application/helpers_test.go
package application

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/pkg/auth"
)

var defaultSeeds = []domain.User{
	{Username: "admin", Password: "1234"},
	{Username: "student", Password: "abcd"},
}

func newTestStore(t *testing.T) (*SessionCartStore, *repository.MemoryCartRepository) {
	t.Helper()
	carts := repository.NewMemoryCartRepository().(*repository.MemoryCartRepository)
	store := NewSessionCartStore(repository.NewMemoryCredentialRepository(), carts, auth.NewBcryptHasher(bcrypt.MinCost))
	if err := store.Seed(context.Background(), defaultSeeds); err != nil {
		t.Fatalf("Seed() unexpected error: %v", err)
	}
	return store, carts
}
