// internal/application/cart.go
package application

import (
	"context"

	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"
)

const OrderConfirmation = "Order submitted successfully!"

func (s *SessionCartStore) AddToCart(ctx context.Context, item string, price float64) (*domain.Result, error) {
	if !s.loggedIn {
		return nil, domain.ErrNotLoggedIn
	}
	if err := s.carts.AppendItem(ctx, s.active, domain.CartItem{Name: item, Price: price}); err != nil {
		return nil, err
	}
	cart, err := s.Render(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Result{Cart: cart}, nil
}

// Render projects the active cart. The total is always recomputed from the
// items and written back as the user's cached total. Without a session it
// renders an empty cart.
func (s *SessionCartStore) Render(ctx context.Context) (*domain.RenderedCart, error) {
	if !s.loggedIn {
		return renderItems(nil), nil
	}
	return s.renderFor(ctx, s.active)
}

// renderFor renders username's cart and caches its total.
func (s *SessionCartStore) renderFor(ctx context.Context, username string) (*domain.RenderedCart, error) {
	items, err := s.carts.Items(ctx, username)
	if err != nil {
		return nil, err
	}
	out := renderItems(items)
	if err := s.carts.SetTotal(ctx, username, out.Total); err != nil {
		return nil, err
	}
	return out, nil
}

func renderItems(items []domain.CartItem) *domain.RenderedCart {
	out := &domain.RenderedCart{Lines: make([]string, 0, len(items))}
	for _, item := range items {
		out.Lines = append(out.Lines, domain.ItemLine(item))
	}
	out.Total = sumPrices(items)
	out.TotalLine = domain.TotalLine(out.Total)
	return out
}

func (s *SessionCartStore) PlaceOrder(ctx context.Context) (*domain.Result, error) {
	items, err := s.activeItems(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	order := &domain.Order{
		Username: s.active,
		Items:    items,
		Total:    sumPrices(items),
		PlacedAt: s.now(),
	}
	if s.loggedIn {
		if err := s.carts.ResetCart(ctx, s.active); err != nil {
			return nil, err
		}
	}

	cart, err := s.Render(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Result{
		Message:        OrderConfirmation,
		Cart:           cart,
		ResetOrderForm: true,
		Order:          order,
	}, nil
}

func (s *SessionCartStore) activeItems(ctx context.Context) ([]domain.CartItem, error) {
	if !s.loggedIn {
		return nil, nil
	}
	return s.carts.Items(ctx, s.active)
}
