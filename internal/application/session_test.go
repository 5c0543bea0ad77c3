// internal/application/session_test.go
package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/ports"
)

func TestSessionCartStore_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := ports.NewMockCredentialRepositoryPort(ctrl)
	mockCarts := ports.NewMockCartRepositoryPort(ctrl)
	mockHasher := ports.NewMockPasswordHasherPort(ctrl)
	svc := NewSessionCartStore(mockUsers, mockCarts, mockHasher)

	users := []domain.User{{Username: "admin", Password: "hash-1234"}}

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func()
		wantErr   bool
		errMsg    string
	}{
		{
			name:     "Invalid password",
			username: "admin",
			password: "1235",
			mockSetup: func() {
				mockUsers.EXPECT().ListUsers(gomock.Any()).Return(users, nil)
				mockHasher.EXPECT().Compare("hash-1234", "1235").Return(false)
			},
			wantErr: true,
			errMsg:  "invalid credentials",
		},
		{
			name:     "Unknown user skips hashing",
			username: "x",
			password: "y",
			mockSetup: func() {
				mockUsers.EXPECT().ListUsers(gomock.Any()).Return(users, nil)
			},
			wantErr: true,
			errMsg:  "invalid credentials",
		},
		{
			name:     "Repository error",
			username: "admin",
			password: "1234",
			mockSetup: func() {
				mockUsers.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
			errMsg:  "db error",
		},
		{
			name:     "Successful login",
			username: "admin",
			password: "1234",
			mockSetup: func() {
				mockUsers.EXPECT().ListUsers(gomock.Any()).Return(users, nil)
				mockHasher.EXPECT().Compare("hash-1234", "1234").Return(true)
				mockCarts.EXPECT().EnsureCart(gomock.Any(), "admin").Return(nil)
				mockCarts.EXPECT().Items(gomock.Any(), "admin").Return([]domain.CartItem{{Name: "Book", Price: 10}}, nil)
				mockCarts.EXPECT().SetTotal(gomock.Any(), "admin", float64(10)).Return(nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			res, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr {
				if err == nil || err.Error() != tt.errMsg {
					t.Errorf("Login() error = %v, wantErr %v, errMsg %v", err, tt.wantErr, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("Login() unexpected error: %v", err)
			}
			if res == nil || res.Message != "Logged in as admin" || res.Cart.TotalLine != "Total: $10" {
				t.Errorf("Login() result = %+v, want admin session with Total: $10", res)
			}
		})
	}
}

func TestSessionCartStore_LoginFailureKeepsPreviousSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := ports.NewMockCredentialRepositoryPort(ctrl)
	mockCarts := ports.NewMockCartRepositoryPort(ctrl)
	mockHasher := ports.NewMockPasswordHasherPort(ctrl)
	svc := NewSessionCartStore(mockUsers, mockCarts, mockHasher)
	svc.active, svc.loggedIn = "student", true

	users := []domain.User{{Username: "admin", Password: "hash-1234"}}

	tests := []struct {
		name      string
		mockSetup func()
		errMsg    string
	}{
		{
			name: "EnsureCart error",
			mockSetup: func() {
				mockUsers.EXPECT().ListUsers(gomock.Any()).Return(users, nil)
				mockHasher.EXPECT().Compare("hash-1234", "1234").Return(true)
				mockCarts.EXPECT().EnsureCart(gomock.Any(), "admin").Return(errors.New("ensure failed"))
			},
			errMsg: "ensure failed",
		},
		{
			name: "Items error",
			mockSetup: func() {
				mockUsers.EXPECT().ListUsers(gomock.Any()).Return(users, nil)
				mockHasher.EXPECT().Compare("hash-1234", "1234").Return(true)
				mockCarts.EXPECT().EnsureCart(gomock.Any(), "admin").Return(nil)
				mockCarts.EXPECT().Items(gomock.Any(), "admin").Return(nil, errors.New("items failed"))
			},
			errMsg: "items failed",
		},
		{
			name: "SetTotal error",
			mockSetup: func() {
				mockUsers.EXPECT().ListUsers(gomock.Any()).Return(users, nil)
				mockHasher.EXPECT().Compare("hash-1234", "1234").Return(true)
				mockCarts.EXPECT().EnsureCart(gomock.Any(), "admin").Return(nil)
				mockCarts.EXPECT().Items(gomock.Any(), "admin").Return(nil, nil)
				mockCarts.EXPECT().SetTotal(gomock.Any(), "admin", float64(0)).Return(errors.New("total failed"))
			},
			errMsg: "total failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			_, err := svc.Login(context.Background(), "admin", "1234")
			if err == nil || err.Error() != tt.errMsg {
				t.Errorf("Login() error = %v, errMsg %v", err, tt.errMsg)
			}
			user, ok := svc.ActiveUser()
			if !ok || user != "student" {
				t.Errorf("ActiveUser() = %q, %v, want student session kept", user, ok)
			}
		})
	}
}

func TestSessionCartStore_LoginExactPairOnly(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	for _, seed := range defaultSeeds {
		t.Run(seed.Username, func(t *testing.T) {
			_, err := store.Login(ctx, seed.Username, seed.Password)
			require.NoError(t, err)

			for _, mutated := range singleCharMutations(seed.Username) {
				_, err := store.Login(ctx, mutated, seed.Password)
				assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "username %q", mutated)
			}
			for _, mutated := range singleCharMutations(seed.Password) {
				_, err := store.Login(ctx, seed.Username, mutated)
				assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "password %q", mutated)
			}
		})
	}
}

func TestSessionCartStore_FailedLoginKeepsSession(t *testing.T) {
	ctx := context.Background()
	store, carts := newTestStore(t)

	_, err := store.Login(ctx, "admin", "1234")
	require.NoError(t, err)
	_, err = store.AddToCart(ctx, "Book", 10)
	require.NoError(t, err)

	_, err = store.Login(ctx, "x", "y")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	user, ok := store.ActiveUser()
	assert.True(t, ok)
	assert.Equal(t, "admin", user)
	items, _ := carts.Items(ctx, "admin")
	assert.Equal(t, []domain.CartItem{{Name: "Book", Price: 10}}, items)
}

func TestSessionCartStore_ReturningUserKeepsCart(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.Login(ctx, "admin", "1234")
	require.NoError(t, err)
	_, err = store.AddToCart(ctx, "Book", 10)
	require.NoError(t, err)

	_, err = store.Login(ctx, "student", "abcd")
	require.NoError(t, err)
	res, err := store.Login(ctx, "admin", "1234")
	require.NoError(t, err)

	assert.Equal(t, []string{"Book - $10"}, res.Cart.Lines)
	assert.Equal(t, "Total: $10", res.Cart.TotalLine)
}

func TestSessionCartStore_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Does not log in", func(t *testing.T) {
		store, _ := newTestStore(t)
		res, err := store.Register(ctx, "newbie", "pw")
		require.NoError(t, err)
		assert.Equal(t, "User newbie registered successfully", res.Message)

		_, ok := store.ActiveUser()
		assert.False(t, ok)

		_, err = store.Login(ctx, "newbie", "pw")
		require.NoError(t, err)
	})

	t.Run("Resets an existing cart", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.Login(ctx, "admin", "1234")
		require.NoError(t, err)
		_, err = store.AddToCart(ctx, "Book", 10)
		require.NoError(t, err)

		_, err = store.Register(ctx, "admin", "new-pass")
		require.NoError(t, err)

		res, err := store.Login(ctx, "admin", "new-pass")
		require.NoError(t, err)
		assert.Empty(t, res.Cart.Lines)
		assert.Equal(t, float64(0), res.Cart.Total)
	})

	t.Run("Duplicate username keeps earliest record first", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.Register(ctx, "admin", "other")
		require.NoError(t, err)

		_, err = store.Login(ctx, "admin", "1234")
		require.NoError(t, err)
		_, err = store.Login(ctx, "admin", "other")
		require.NoError(t, err)
	})

	t.Run("Empty fields are accepted", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.Register(ctx, "", "")
		require.NoError(t, err)
		_, err = store.Login(ctx, "", "")
		require.NoError(t, err)
		_, err = store.AddToCart(ctx, "Pen", 2)
		require.NoError(t, err)
	})
}

func TestSessionCartStore_RegisterHashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := ports.NewMockCredentialRepositoryPort(ctrl)
	mockCarts := ports.NewMockCartRepositoryPort(ctrl)
	mockHasher := ports.NewMockPasswordHasherPort(ctrl)
	svc := NewSessionCartStore(mockUsers, mockCarts, mockHasher)

	mockHasher.EXPECT().Hash("pw").Return("", errors.New("entropy exhausted"))

	_, err := svc.Register(context.Background(), "u", "pw")
	if err == nil || err.Error() != "hash password: entropy exhausted" {
		t.Errorf("Register() error = %v, want wrapped hash error", err)
	}
}

func singleCharMutations(s string) []string {
	var out []string
	for i := range s {
		b := []byte(s)
		b[i]++
		out = append(out, string(b))
		out = append(out, s[:i]+s[i+1:])
	}
	return append(out, s+"x")
}
