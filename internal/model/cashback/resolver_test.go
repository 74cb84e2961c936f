package cashback

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

var now = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func running(id int64) Campaign {
	return Campaign{
		ID:        id,
		Name:      "campaign",
		IsActive:  true,
		StartDate: now.Add(-24 * time.Hour),
		EndDate:   now.Add(24 * time.Hour),
	}
}

func TestBaseRate(t *testing.T) {
	tests := []struct {
		name     string
		benefits []string
		want     string
	}{
		{"integer percent", []string{"free shipping", "2% cashback"}, "0.02"},
		{"fractional percent", []string{"1.5% cashback on all purchases"}, "0.015"},
		{"case insensitive", []string{"Cashback of 3 %"}, "0.03"},
		{"no percent falls back", []string{"cashback on weekends"}, "0.05"},
		{"no cashback benefit", []string{"priority support", "10% off"}, "0.05"},
		{"first cashback benefit wins", []string{"4% cashback", "8% cashback"}, "0.04"},
		{"empty", nil, "0.05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseRate(tt.benefits)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	electronics := running(1)
	electronics.Rules = Rules{Category: "electronics"}
	electronics.Rewards = Rewards{CashbackRate: decPtr("0.08")}

	doubled := running(2)
	doubled.Rules = Rules{Category: CategoryAll, Multiplier: decPtr("2")}

	expired := running(3)
	expired.EndDate = now.Add(-time.Hour)
	expired.Rewards = Rewards{CashbackRate: decPtr("0.5")}

	inactive := running(4)
	inactive.IsActive = false
	inactive.Rewards = Rewards{CashbackRate: decPtr("0.5")}

	bigTicket := running(5)
	bigTicket.MinTransaction = decPtr("500")
	bigTicket.Rewards = Rewards{CashbackRate: decPtr("0.1")}

	capped := running(6)
	capped.Rewards = Rewards{CashbackRate: decPtr("0.2")}
	capped.MaxCashback = decPtr("50")
	capped.UserEarned = dec("45")

	cappedOut := running(7)
	cappedOut.Rewards = Rewards{CashbackRate: decPtr("0.3")}
	cappedOut.MaxCashback = decPtr("50")
	cappedOut.UserEarned = dec("50")

	lower := running(8)
	lower.Rewards = Rewards{CashbackRate: decPtr("0.01")}

	tests := []struct {
		name         string
		amount       string
		category     string
		benefits     []string
		campaigns    []Campaign
		wantRate     string
		wantRaw      string
		wantAmount   string
		wantCampaign int64
	}{
		{
			name:       "no campaigns uses tier rate",
			amount:     "199.99",
			benefits:   []string{"2% cashback"},
			wantRate:   "0.02",
			wantRaw:    "4",
			wantAmount: "4",
		},
		{
			name:       "no campaigns and no benefits uses fallback",
			amount:     "100",
			wantRate:   "0.05",
			wantRaw:    "5",
			wantAmount: "5",
		},
		{
			name:         "category campaign beats tier rate",
			amount:       "100",
			category:     "electronics",
			benefits:     []string{"2% cashback"},
			campaigns:    []Campaign{electronics},
			wantRate:     "0.08",
			wantRaw:      "8",
			wantAmount:   "8",
			wantCampaign: 1,
		},
		{
			name:       "category mismatch is skipped",
			amount:     "100",
			category:   "groceries",
			benefits:   []string{"2% cashback"},
			campaigns:  []Campaign{electronics},
			wantRate:   "0.02",
			wantRaw:    "2",
			wantAmount: "2",
		},
		{
			name:         "multiplier applies to base rate",
			amount:       "100",
			category:     "groceries",
			benefits:     []string{"3% cashback"},
			campaigns:    []Campaign{doubled},
			wantRate:     "0.06",
			wantRaw:      "6",
			wantAmount:   "6",
			wantCampaign: 2,
		},
		{
			name:       "expired and inactive campaigns are ignored",
			amount:     "100",
			benefits:   []string{"2% cashback"},
			campaigns:  []Campaign{expired, inactive},
			wantRate:   "0.02",
			wantRaw:    "2",
			wantAmount: "2",
		},
		{
			name:       "minimum transaction not met",
			amount:     "499.99",
			benefits:   []string{"2% cashback"},
			campaigns:  []Campaign{bigTicket},
			wantRate:   "0.02",
			wantRaw:    "10",
			wantAmount: "10",
		},
		{
			name:         "minimum transaction met exactly",
			amount:       "500",
			benefits:     []string{"2% cashback"},
			campaigns:    []Campaign{bigTicket},
			wantRate:     "0.1",
			wantRaw:      "50",
			wantAmount:   "50",
			wantCampaign: 5,
		},
		{
			name:         "cap limits the amount",
			amount:       "100",
			benefits:     []string{"2% cashback"},
			campaigns:    []Campaign{capped},
			wantRate:     "0.2",
			wantRaw:      "20",
			wantAmount:   "5",
			wantCampaign: 6,
		},
		{
			name:         "capped out campaign is not eligible",
			amount:       "100",
			benefits:     []string{"2% cashback"},
			campaigns:    []Campaign{cappedOut, capped},
			wantRate:     "0.2",
			wantRaw:      "20",
			wantAmount:   "5",
			wantCampaign: 6,
		},
		{
			name:       "campaign below tier rate is not applied",
			amount:     "100",
			benefits:   []string{"2% cashback"},
			campaigns:  []Campaign{lower},
			wantRate:   "0.02",
			wantRaw:    "2",
			wantAmount: "2",
		},
		{
			name:         "best rate wins regardless of order",
			amount:       "1000",
			category:     "electronics",
			benefits:     []string{"2% cashback"},
			campaigns:    []Campaign{bigTicket, electronics, lower},
			wantRate:     "0.1",
			wantRaw:      "100",
			wantAmount:   "100",
			wantCampaign: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(Input{
				Now:          now,
				Amount:       dec(tt.amount),
				Category:     tt.category,
				TierBenefits: tt.benefits,
				Campaigns:    tt.campaigns,
			})
			assert.True(t, dec(tt.wantRate).Equal(got.Rate), "rate %s", got.Rate)
			assert.True(t, dec(tt.wantRaw).Equal(got.RawAmount), "raw %s", got.RawAmount)
			assert.True(t, dec(tt.wantAmount).Equal(got.Amount), "amount %s", got.Amount)
			if tt.wantCampaign == 0 {
				assert.Nil(t, got.Campaign)
				return
			}
			require.NotNil(t, got.Campaign)
			assert.Equal(t, tt.wantCampaign, got.Campaign.ID)
		})
	}
}

func TestResolve_tieGoesToLowestID(t *testing.T) {
	a := running(42)
	a.Rewards = Rewards{CashbackRate: decPtr("0.1")}
	b := running(7)
	b.Rewards = Rewards{CashbackRate: decPtr("0.05")}
	b.Rules = Rules{Multiplier: decPtr("2")}

	for _, order := range [][]Campaign{{a, b}, {b, a}} {
		got := Resolve(Input{Now: now, Amount: dec("10"), Campaigns: order})
		require.NotNil(t, got.Campaign)
		assert.Equal(t, int64(7), got.Campaign.ID)
	}
}

func TestResolve_roundsToCents(t *testing.T) {
	got := Resolve(Input{
		Now:          now,
		Amount:       dec("33.33"),
		TierBenefits: []string{"3% cashback"},
	})
	assert.Equal(t, "1", got.Amount.String())

	got = Resolve(Input{Now: now, Amount: dec("10.10"), TierBenefits: []string{"5% cashback"}})
	assert.Equal(t, "0.51", got.Amount.String())
}

func TestResolve_windowIsInclusive(t *testing.T) {
	c := running(1)
	c.StartDate = now
	c.EndDate = now
	c.Rewards = Rewards{CashbackRate: decPtr("0.2")}

	got := Resolve(Input{Now: now, Amount: dec("10"), Campaigns: []Campaign{c}})
	require.NotNil(t, got.Campaign)
}

func TestResolveLocked(t *testing.T) {
	tierBenefits := []string{"2% cashback on all purchases"}

	capped := running(1)
	capped.Rewards = Rewards{CashbackRate: decPtr("0.1")}
	capped.MaxCashback = decPtr("20")
	capped.UserEarned = dec("15")

	runnerUp := running(2)
	runnerUp.Rewards = Rewards{CashbackRate: decPtr("0.04")}

	tests := []struct {
		earned       map[int64]string
		name         string
		campaigns    []Campaign
		wantAmount   string
		wantRate     string
		wantRefresh  []int64
		wantCampaign int64
	}{
		{
			name:         "earnings unchanged",
			campaigns:    []Campaign{capped},
			earned:       map[int64]string{1: "15"},
			wantCampaign: 1,
			wantRate:     "0.1",
			wantAmount:   "5",
			wantRefresh:  []int64{1},
		},
		{
			name:         "cap shrank meanwhile",
			campaigns:    []Campaign{capped},
			earned:       map[int64]string{1: "18"},
			wantCampaign: 1,
			wantRate:     "0.1",
			wantAmount:   "2",
			wantRefresh:  []int64{1},
		},
		{
			name:        "cap filled meanwhile falls back to the tier",
			campaigns:   []Campaign{capped},
			earned:      map[int64]string{1: "20"},
			wantRate:    "0.02",
			wantAmount:  "2",
			wantRefresh: []int64{1},
		},
		{
			name:         "cap filled meanwhile falls back to the next campaign",
			campaigns:    []Campaign{capped, runnerUp},
			earned:       map[int64]string{1: "20", 2: "0"},
			wantCampaign: 2,
			wantRate:     "0.04",
			wantAmount:   "4",
			wantRefresh:  []int64{1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var refreshed []int64
			refresh := func(id int64) (decimal.Decimal, error) {
				refreshed = append(refreshed, id)
				return dec(tt.earned[id]), nil
			}

			got, err := ResolveLocked(Input{
				Now:          now,
				TierBenefits: tierBenefits,
				Campaigns:    tt.campaigns,
				Amount:       dec("100"),
			}, refresh)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRefresh, refreshed)
			assert.True(t, dec(tt.wantRate).Equal(got.Rate), "rate %s", got.Rate)
			assert.True(t, dec(tt.wantAmount).Equal(got.Amount), "amount %s", got.Amount)
			if tt.wantCampaign == 0 {
				assert.Nil(t, got.Campaign)
				return
			}
			require.NotNil(t, got.Campaign)
			assert.Equal(t, tt.wantCampaign, got.Campaign.ID)
		})
	}

	assert.True(t, dec("15").Equal(capped.UserEarned))
}

func TestResolveLocked_refreshError(t *testing.T) {
	c := running(1)
	c.Rewards = Rewards{CashbackRate: decPtr("0.2")}
	lockErr := errors.New("lock timeout")

	_, err := ResolveLocked(Input{Now: now, Amount: dec("10"), Campaigns: []Campaign{c}},
		func(int64) (decimal.Decimal, error) { return decimal.Zero, lockErr })
	assert.ErrorIs(t, err, lockErr)

	plain, err := ResolveLocked(Input{Now: now, Amount: dec("10")},
		func(int64) (decimal.Decimal, error) { return decimal.Zero, lockErr })
	require.NoError(t, err)
	assert.Nil(t, plain.Campaign)
}

func TestCampaign_EffectiveRate(t *testing.T) {
	base := dec("0.02")
	tests := []struct {
		name    string
		rewards Rewards
		rules   Rules
		want    string
	}{
		{name: "nothing set", want: "0.02"},
		{name: "own rate", rewards: Rewards{CashbackRate: decPtr("0.07")}, want: "0.07"},
		{name: "multiplier on base", rules: Rules{Multiplier: decPtr("3")}, want: "0.06"},
		{
			name:    "rate and multiplier",
			rewards: Rewards{CashbackRate: decPtr("0.05")},
			rules:   Rules{Multiplier: decPtr("2")},
			want:    "0.1",
		},
		{name: "zero rate falls back to base", rewards: Rewards{CashbackRate: decPtr("0")}, want: "0.02"},
		{name: "zero multiplier counts as one", rules: Rules{Multiplier: decPtr("0")}, want: "0.02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := running(1)
			c.Rewards = tt.rewards
			c.Rules = tt.rules
			got := c.EffectiveRate(base)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
