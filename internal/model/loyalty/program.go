package loyalty

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Program struct {
	CreatedAt    time.Time
	MinSpending  *decimal.Decimal
	MaxSpending  *decimal.Decimal
	Name         string
	Description  string
	TierType     string
	Benefits     Benefits
	Requirements Requirements
	ID           int64
	IsActive     bool
}

type TierRequirement struct {
	Tier     string
	MinSpend decimal.Decimal
}

// Requirements keeps tiers in declaration order. It encodes as a JSON object.
type Requirements []TierRequirement

func (r Requirements) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(r), func(i int) (string, any) {
		return r[i].Tier, json.Number(r[i].MinSpend.String())
	})
}

func (r *Requirements) UnmarshalJSON(data []byte) error {
	out := Requirements{}
	err := unmarshalOrdered(data, func(key string, dec *json.Decoder) error {
		var v decimal.Decimal
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("requirement for tier %q: %w", key, err)
		}
		out = append(out, TierRequirement{Tier: key, MinSpend: v})
		return nil
	})
	if err != nil {
		return err
	}
	*r = out
	return nil
}

type TierBenefits struct {
	Tier  string
	Items []string
}

// Benefits keeps tiers in declaration order. It encodes as a JSON object.
type Benefits []TierBenefits

func (b Benefits) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(b), func(i int) (string, any) {
		items := b[i].Items
		if items == nil {
			items = []string{}
		}
		return b[i].Tier, items
	})
}

func (b *Benefits) UnmarshalJSON(data []byte) error {
	out := Benefits{}
	err := unmarshalOrdered(data, func(key string, dec *json.Decoder) error {
		var items []string
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("benefits for tier %q: %w", key, err)
		}
		out = append(out, TierBenefits{Tier: key, Items: items})
		return nil
	})
	if err != nil {
		return err
	}
	*b = out
	return nil
}

// For returns the benefits of a tier, never nil.
func (b Benefits) For(tier string) []string {
	for _, tb := range b {
		if tb.Tier == tier && tb.Items != nil {
			return tb.Items
		}
	}
	return []string{}
}

func marshalOrdered(n int, entry func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, value := entry(i)
		k, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", key, err)
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode value of %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func unmarshalOrdered(data []byte, value func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read JSON object: %w", err)
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("expected a JSON object keyed by tier name")
	}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read tier name: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		if err = value(key, dec); err != nil {
			return err
		}
	}
	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("failed to close JSON object: %w", err)
	}
	return nil
}
