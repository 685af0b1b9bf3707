package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity is the amount carried by a movement. It is written as a bare JSON
// number and read from a number, a numeric string or null (zero).
type Quantity struct {
	decimal.Decimal
}

func NewQuantity(d decimal.Decimal) Quantity {
	return Quantity{Decimal: d}
}

func QuantityFromInt(n int64) Quantity {
	return Quantity{Decimal: decimal.NewFromInt(n)}
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.Decimal.String()), nil
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		q.Decimal = decimal.Zero
		return nil
	}

	var text string
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return fmt.Errorf("decode quantity: %w", err)
		}
	} else {
		text = string(raw)
	}

	if text == "" {
		q.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return fmt.Errorf("decode quantity %q: %w", text, err)
	}
	q.Decimal = d
	return nil
}
