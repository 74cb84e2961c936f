package cashback

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/talx-hub/gopher-rewards/internal/model"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

type Type string

const (
	TypeTier     Type = "TIER"
	TypeCampaign Type = "CAMPAIGN"
)

// Request describes a purchase cashback is computed for.
type Request struct {
	UserID        string
	TransactionID string
	Category      string
	Amount        decimal.Decimal
}

// Calculation is a resolved cashback together with the tier it was based on.
type Calculation struct {
	Request Request
	Tier    string
	Result  Result
}

type CampaignRef struct {
	Name        string
	Description string
	ID          int64
}

type Transaction struct {
	CreatedAt     time.Time
	ProcessedAt   *time.Time
	Campaign      *CampaignRef
	ID            string
	UserID        string
	TransactionID string
	Type          Type
	Status        Status
	Amount        decimal.Decimal
	// Percentage is the applied rate times 100.
	Percentage     decimal.Decimal
	CashbackAmount decimal.Decimal
}

type Summary struct {
	LastCashbackDate   *time.Time
	UserID             string
	TotalEarned        decimal.Decimal
	Received           decimal.Decimal
	Pending            decimal.Decimal
	AverageRate        decimal.Decimal
	CurrentMonthEarned decimal.Decimal
	TotalTransactions  int64
	CampaignsUsed      int64
}

// TransactionFilter narrows a cashback listing. Zero fields are not applied.
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	CampaignID *int64
	UserID     string
	Status     Status
	Page       model.Page
}

type TransactionPage struct {
	Transactions []Transaction
	Total        int64
}

// MonthStart is the first instant of the UTC month containing t.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
