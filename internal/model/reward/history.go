package reward

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/talx-hub/gopher-rewards/internal/model"
)

type ActionType string

const (
	ActionTierUpgrade    ActionType = "TIER_UPGRADE"
	ActionPointsRedeemed ActionType = "POINTS_REDEEMED"
	ActionPointsEarned   ActionType = "POINTS_EARNED"
	ActionCashbackEarned ActionType = "CASHBACK_EARNED"
)

// HistoryEntry is a row of the append-only audit trail.
type HistoryEntry struct {
	CreatedAt      time.Time
	Metadata       map[string]any
	ID             string
	UserID         string
	ActionType     ActionType
	Description    string
	CashbackChange decimal.Decimal
	PointsChange   int64
}

// HistoryFilter narrows a history listing. Zero fields are not applied.
type HistoryFilter struct {
	From       *time.Time
	To         *time.Time
	UserID     string
	ActionType ActionType
	Page       model.Page
}

type HistoryPage struct {
	Entries []HistoryEntry
	Total   int64
}
