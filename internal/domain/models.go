// internal/domain/models.go
package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrEmptyCart          = errors.New("empty cart")
)

// User is a credential record. Once stored, Password holds the hash.
type User struct {
	Username string
	Password string
}

type CartItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// RenderedCart is the display projection of one cart.
type RenderedCart struct {
	Lines     []string `json:"lines"`
	Total     float64  `json:"total"`
	TotalLine string   `json:"total_line"`
}

// Order is the snapshot of a cart emptied by a successful order.
type Order struct {
	Username string     `json:"username"`
	Items    []CartItem `json:"items"`
	Total    float64    `json:"total"`
	PlacedAt time.Time  `json:"placed_at"`
}

type DisplayEntry struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Text    string `json:"text"`
}

type Result struct {
	Message        string
	Cart           *RenderedCart
	ResetOrderForm bool
	Order          *Order
	Contact        *DisplayEntry
}

// FormatAmount prints an amount in its shortest decimal form: 10, 2.5, 0.1.
// Non-finite totals print as Infinity, -Infinity and NaN.
func FormatAmount(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func ItemLine(item CartItem) string {
	return fmt.Sprintf("%s - $%s", item.Name, FormatAmount(item.Price))
}

func TotalLine(total float64) string {
	return "Total: $" + FormatAmount(total)
}
