// internal/application/events.go
package application

import (
	"context"
	"fmt"

	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"
)

// Event is a UI event with its form values already extracted.
type Event interface {
	isEvent()
}

type LoginSubmitted struct {
	Username string
	Password string
}

type RegisterClicked struct {
	Username string
	Password string
}

type AddToCartClicked struct {
	Item  string
	Price float64
}

type OrderSubmitted struct{}

type ContactSubmitted struct {
	Name    string
	Message string
}

type RenderRequested struct{}

func (LoginSubmitted) isEvent()   {}
func (RegisterClicked) isEvent()  {}
func (AddToCartClicked) isEvent() {}
func (OrderSubmitted) isEvent()   {}
func (ContactSubmitted) isEvent() {}
func (RenderRequested) isEvent()  {}

// Handle runs one event to completion. Results of cart-affecting events
// carry a freshly rendered cart.
func (s *SessionCartStore) Handle(ctx context.Context, ev Event) (*domain.Result, error) {
	switch e := ev.(type) {
	case LoginSubmitted:
		return s.Login(ctx, e.Username, e.Password)
	case RegisterClicked:
		res, err := s.Register(ctx, e.Username, e.Password)
		if err != nil {
			return nil, err
		}
		if res.Cart, err = s.Render(ctx); err != nil {
			return nil, err
		}
		return res, nil
	case AddToCartClicked:
		return s.AddToCart(ctx, e.Item, e.Price)
	case OrderSubmitted:
		return s.PlaceOrder(ctx)
	case ContactSubmitted:
		entry := FormatContactMessage(e.Name, e.Message)
		return &domain.Result{Contact: &entry}, nil
	case RenderRequested:
		cart, err := s.Render(ctx)
		if err != nil {
			return nil, err
		}
		return &domain.Result{Cart: cart}, nil
	default:
		return nil, fmt.Errorf("unsupported event %T", ev)
	}
}
