package reward

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/talx-hub/gopher-rewards/internal/model/loyalty"
	"github.com/talx-hub/gopher-rewards/internal/serviceerrs"
)

// DefaultLotValidity is the lifetime of a point lot when the caller does not set one.
const DefaultLotValidity = 365 * 24 * time.Hour

// ExpiringSoonWindow is how far ahead the summary looks for expiring lots.
const ExpiringSoonWindow = 30 * 24 * time.Hour

// Lot is a batch of points with its own counters.
// Available + Redeemed + Expired never exceeds Earned.
type Lot struct {
	CreatedAt  time.Time
	ExpiryDate *time.Time
	UserID     string
	ID         int64
	Earned     int64
	Available  int64
	Redeemed   int64
	Expired    int64
}

type Deduction struct {
	LotID  int64
	Points int64
}

// AllocateFIFO plans how points are taken from lots. Lots must be ordered oldest first.
func AllocateFIFO(lots []Lot, points int64) ([]Deduction, error) {
	if points <= 0 {
		return nil, nil
	}

	var available int64
	for _, l := range lots {
		if l.Available > 0 {
			available += l.Available
		}
	}
	if available < points {
		return nil, &serviceerrs.InsufficientPointsError{
			Available: available,
			Requested: points,
		}
	}

	remaining := points
	plan := make([]Deduction, 0, len(lots))
	for _, l := range lots {
		if remaining == 0 {
			break
		}
		if l.Available <= 0 {
			continue
		}
		take := min(l.Available, remaining)
		plan = append(plan, Deduction{LotID: l.ID, Points: take})
		remaining -= take
	}
	return plan, nil
}

type RedemptionStatus string

const (
	RedemptionCompleted RedemptionStatus = "COMPLETED"
)

type Redemption struct {
	CreatedAt   time.Time
	ProcessedAt time.Time
	Details     map[string]any
	ID          string
	UserID      string
	Type        string
	Status      RedemptionStatus
	CashValue   decimal.Decimal
	PointsUsed  int64
}

type RedeemRequest struct {
	Details map[string]any
	UserID  string
	Type    string
	Points  int64
}

type EarnRequest struct {
	ExpiryDate  *time.Time
	UserID      string
	Description string
	Points      int64
}

type Summary struct {
	Loyalty       *loyalty.Snapshot
	UserID        string
	TotalEarned   int64
	Available     int64
	TotalRedeemed int64
	Expired       int64
	ExpiringSoon  int64
}
