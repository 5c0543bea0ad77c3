// internal/domain/amount.go
package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// encodeAmount writes finite amounts as JSON numbers and non-finite ones
// as their display string, which encoding/json cannot do on its own.
func encodeAmount(v float64) (json.RawMessage, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return json.RawMessage(strconv.Quote(FormatAmount(v))), nil
	}
	return json.Marshal(v)
}

func decodeAmount(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	if raw[0] != '"' {
		var v float64
		err := json.Unmarshal(raw, &v)
		return v, err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	switch s {
	case "Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	return 0, fmt.Errorf("invalid amount %q", s)
}

type renderedCartJSON struct {
	Lines     []string        `json:"lines"`
	Total     json.RawMessage `json:"total"`
	TotalLine string          `json:"total_line"`
}

func (c RenderedCart) MarshalJSON() ([]byte, error) {
	total, err := encodeAmount(c.Total)
	if err != nil {
		return nil, err
	}
	return json.Marshal(renderedCartJSON{Lines: c.Lines, Total: total, TotalLine: c.TotalLine})
}

func (c *RenderedCart) UnmarshalJSON(data []byte) error {
	var w renderedCartJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	total, err := decodeAmount(w.Total)
	if err != nil {
		return err
	}
	*c = RenderedCart{Lines: w.Lines, Total: total, TotalLine: w.TotalLine}
	return nil
}

type orderJSON struct {
	Username string          `json:"username"`
	Items    []CartItem      `json:"items"`
	Total    json.RawMessage `json:"total"`
	PlacedAt json.RawMessage `json:"placed_at"`
}

func (o Order) MarshalJSON() ([]byte, error) {
	total, err := encodeAmount(o.Total)
	if err != nil {
		return nil, err
	}
	placedAt, err := json.Marshal(o.PlacedAt)
	if err != nil {
		return nil, err
	}
	return json.Marshal(orderJSON{Username: o.Username, Items: o.Items, Total: total, PlacedAt: placedAt})
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var w orderJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	total, err := decodeAmount(w.Total)
	if err != nil {
		return err
	}
	*o = Order{Username: w.Username, Items: w.Items, Total: total}
	if len(w.PlacedAt) > 0 {
		return json.Unmarshal(w.PlacedAt, &o.PlacedAt)
	}
	return nil
}
