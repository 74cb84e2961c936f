package loyalty

import (
	"time"

	"github.com/shopspring/decimal"
)

// TierValidity is how long an achieved tier is kept.
const TierValidity = 365 * 24 * time.Hour

type Status struct {
	TierAchievedDate *time.Time
	TierExpiryDate   *time.Time
	LastUpdated      time.Time
	UserID           string
	CurrentTier      string
	TotalSpending    decimal.Decimal
	TierProgress     decimal.Decimal
	Program          Program
	ID               int64
}

// Upgrade is the outcome of re-evaluating a user's tier.
type Upgrade struct {
	Status        Status
	PreviousTier  string
	NewTier       string
	TotalSpending decimal.Decimal
	Upgraded      bool
}

// Snapshot is the loyalty part of the rewards summary.
type Snapshot struct {
	TierExpiryDate *time.Time
	CurrentTier    string
	ProgramName    string
	TierProgress   decimal.Decimal
}
