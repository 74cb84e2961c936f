package cashback

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/talx-hub/gopher-rewards/internal/model"
)

// DefaultBaseRate applies when the tier benefits do not state a cashback percentage.
var DefaultBaseRate = decimal.RequireFromString("0.05")

var percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

// BaseRate reads the cashback percentage from the first benefit that mentions cashback.
func BaseRate(benefits []string) decimal.Decimal {
	for _, b := range benefits {
		if !strings.Contains(strings.ToLower(b), "cashback") {
			continue
		}
		m := percentPattern.FindStringSubmatch(b)
		if m == nil {
			return DefaultBaseRate
		}
		pct, err := decimal.NewFromString(m[1])
		if err != nil {
			return DefaultBaseRate
		}
		return model.PercentToRate(pct)
	}
	return DefaultBaseRate
}

type Input struct {
	Now          time.Time
	Category     string
	TierBenefits []string
	Campaigns    []Campaign
	Amount       decimal.Decimal
}

type Result struct {
	Campaign  *Campaign
	BaseRate  decimal.Decimal
	Rate      decimal.Decimal
	RawAmount decimal.Decimal
	Amount    decimal.Decimal
}

// Resolve picks the best eligible campaign and computes the cashback for a transaction.
//
// A campaign wins only when its effective rate is strictly above the tier rate.
// Among campaigns with the same effective rate the lowest id wins.
func Resolve(in Input) Result {
	base := BaseRate(in.TierBenefits)

	best := base
	var winner *Campaign
	for i := range in.Campaigns {
		c := &in.Campaigns[i]
		if !c.appliesTo(in.Category) || !c.runningAt(in.Now) ||
			!c.acceptsAmount(in.Amount) || c.cappedOut() {
			continue
		}
		rate := c.EffectiveRate(base)
		if rate.GreaterThan(best) ||
			(winner != nil && rate.Equal(best) && c.ID < winner.ID) {
			best = rate
			winner = c
		}
	}

	raw := in.Amount.Mul(best)
	res := Result{
		Campaign:  nil,
		BaseRate:  base,
		Rate:      best,
		RawAmount: model.RoundMoney(raw),
		Amount:    model.RoundMoney(raw),
	}
	if winner != nil {
		w := *winner
		res.Campaign = &w
		res.Amount = model.RoundMoney(applyCap(raw, w.RemainingCap()))
	}
	return res
}

// Refresh returns the earned total of a campaign as it stands under the caller's lock.
type Refresh func(campaignID int64) (decimal.Decimal, error)

// ResolveLocked resolves like Resolve, then confirms the winner's earned total with refresh.
// A winner that reached its cap meanwhile steps aside and the next best rate applies.
// Every campaign is refreshed at most once.
func ResolveLocked(in Input, refresh Refresh) (Result, error) {
	confirmed := make(map[int64]bool, len(in.Campaigns))
	for {
		res := Resolve(in)
		if res.Campaign == nil || confirmed[res.Campaign.ID] {
			return res, nil
		}
		id := res.Campaign.ID
		earned, err := refresh(id)
		if err != nil {
			return Result{}, err
		}
		confirmed[id] = true
		in = in.withEarned(id, earned)
	}
}

func (in Input) withEarned(campaignID int64, earned decimal.Decimal) Input {
	campaigns := make([]Campaign, len(in.Campaigns))
	copy(campaigns, in.Campaigns)
	for i := range campaigns {
		if campaigns[i].ID == campaignID {
			campaigns[i].UserEarned = earned
		}
	}
	in.Campaigns = campaigns
	return in
}

func applyCap(amount decimal.Decimal, remaining *decimal.Decimal) decimal.Decimal {
	if remaining == nil {
		return amount
	}
	return decimal.Min(amount, *remaining)
}
