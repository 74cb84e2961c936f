package cashback

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAll makes a campaign apply to every transaction category.
const CategoryAll = "all"

type Rules struct {
	Multiplier *decimal.Decimal `json:"multiplier,omitempty"`
	Category   string           `json:"category,omitempty"`
}

type Rewards struct {
	CashbackRate *decimal.Decimal `json:"cashback_rate,omitempty"`
}

type Campaign struct {
	StartDate      time.Time
	EndDate        time.Time
	MinTransaction *decimal.Decimal
	MaxCashback    *decimal.Decimal
	Name           string
	Description    string
	Rules          Rules
	Rewards        Rewards
	// UserEarned is the cashback already granted to the requesting user under this campaign.
	UserEarned decimal.Decimal
	ID         int64
	IsActive   bool
}

func (c *Campaign) appliesTo(category string) bool {
	return c.Rules.Category == "" ||
		c.Rules.Category == CategoryAll ||
		c.Rules.Category == category
}

func (c *Campaign) runningAt(now time.Time) bool {
	return c.IsActive && !now.Before(c.StartDate) && !now.After(c.EndDate)
}

func (c *Campaign) acceptsAmount(amount decimal.Decimal) bool {
	return c.MinTransaction == nil || amount.GreaterThanOrEqual(*c.MinTransaction)
}

func (c *Campaign) cappedOut() bool {
	return c.MaxCashback != nil && c.UserEarned.GreaterThanOrEqual(*c.MaxCashback)
}

// EffectiveRate is the campaign rate (or the base rate when unset) times its multiplier.
// A zero rate or multiplier counts as unset.
func (c *Campaign) EffectiveRate(baseRate decimal.Decimal) decimal.Decimal {
	rate := baseRate
	if c.Rewards.CashbackRate != nil && !c.Rewards.CashbackRate.IsZero() {
		rate = *c.Rewards.CashbackRate
	}
	multiplier := decimal.NewFromInt(1)
	if c.Rules.Multiplier != nil && !c.Rules.Multiplier.IsZero() {
		multiplier = *c.Rules.Multiplier
	}
	return rate.Mul(multiplier)
}

// RemainingCap is how much more cashback the user may earn; nil means unlimited.
func (c *Campaign) RemainingCap() *decimal.Decimal {
	if c.MaxCashback == nil {
		return nil
	}
	remaining := decimal.Max(c.MaxCashback.Sub(c.UserEarned), decimal.Zero)
	return &remaining
}
