package loyalty

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/talx-hub/gopher-rewards/internal/model"
)

var fullProgress = decimal.NewFromInt(100)

// Resolution describes the tier a spending figure qualifies for.
type Resolution struct {
	NextRequirement    *decimal.Decimal
	Tier               string
	NextTier           string
	ProgressPercentage decimal.Decimal
	Changed            bool
}

// Descending returns the tiers ordered from the highest requirement to the lowest.
// Tiers with equal requirements keep their declaration order.
func (r Requirements) Descending() []TierRequirement {
	out := make([]TierRequirement, len(r))
	copy(out, r)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MinSpend.GreaterThan(out[j].MinSpend)
	})
	return out
}

// Ascending is the rank order, lowest tier first.
// Among equal requirements the first declared tier ranks highest.
func (r Requirements) Ascending() []TierRequirement {
	desc := r.Descending()
	out := make([]TierRequirement, len(desc))
	for i := range desc {
		out[len(desc)-1-i] = desc[i]
	}
	return out
}

// Lowest returns the entry tier of the program: the first declared tier with the smallest requirement.
func (r Requirements) Lowest() (TierRequirement, bool) {
	if len(r) == 0 {
		return TierRequirement{}, false
	}
	lowest := r[0]
	for _, req := range r[1:] {
		if req.MinSpend.LessThan(lowest.MinSpend) {
			lowest = req
		}
	}
	return lowest, true
}

// ResolveTier picks the highest ranked tier whose requirement is covered by spending.
// When no tier qualifies the current tier is kept.
func ResolveTier(r Requirements, currentTier string, spending decimal.Decimal) Resolution {
	tier := currentTier
	for _, req := range r.Descending() {
		if spending.GreaterThanOrEqual(req.MinSpend) {
			tier = req.Tier
			break
		}
	}

	next, nextReq, pct := Progress(r, tier, spending)
	return Resolution{
		Tier:               tier,
		NextTier:           next,
		NextRequirement:    nextReq,
		ProgressPercentage: pct,
		Changed:            tier != currentTier,
	}
}

// Progress reports the tier ranked right above tier and how far spending is towards it.
func Progress(r Requirements, tier string, spending decimal.Decimal,
) (string, *decimal.Decimal, decimal.Decimal) {
	asc := r.Ascending()
	idx := -1
	for i, req := range asc {
		if req.Tier == tier {
			idx = i
			break
		}
	}
	if len(asc) == 0 || idx == len(asc)-1 {
		return "", nil, fullProgress
	}

	// an unranked tier is below every ranked one
	next := asc[idx+1]
	nextReq := next.MinSpend
	if !nextReq.IsPositive() {
		return next.Tier, &nextReq, fullProgress
	}
	pct := decimal.Min(model.PercentOf(spending, nextReq), fullProgress)
	return next.Tier, &nextReq, pct.Round(2)
}
