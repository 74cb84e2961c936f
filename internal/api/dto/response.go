package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/talx-hub/gopher-rewards/internal/model"
	"github.com/talx-hub/gopher-rewards/internal/model/cashback"
	"github.com/talx-hub/gopher-rewards/internal/model/loyalty"
	"github.com/talx-hub/gopher-rewards/internal/model/reward"
)

const MessageNoUpgrade = "No tier upgrade available"

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func nullableNumber(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := number(*d)
	return &n
}

type PointsSummary struct {
	TotalEarned   int64 `json:"totalEarned"`
	Available     int64 `json:"available"`
	TotalRedeemed int64 `json:"totalRedeemed"`
	Expired       int64 `json:"expired"`
	ExpiringSoon  int64 `json:"expiringSoon"`
}

type LoyaltySnapshot struct {
	TierExpiryDate *time.Time  `json:"tierExpiryDate"`
	CurrentTier    string      `json:"currentTier"`
	TierProgress   json.Number `json:"tierProgress"`
	ProgramName    string      `json:"programName"`
}

type RewardSummaryResponse struct {
	LoyaltyStatus *LoyaltySnapshot `json:"loyaltyStatus"`
	UserID        string           `json:"userId"`
	Points        PointsSummary    `json:"points"`
}

func NewRewardSummaryResponse(s reward.Summary) RewardSummaryResponse {
	resp := RewardSummaryResponse{
		UserID: s.UserID,
		Points: PointsSummary{
			TotalEarned:   s.TotalEarned,
			Available:     s.Available,
			TotalRedeemed: s.TotalRedeemed,
			Expired:       s.Expired,
			ExpiringSoon:  s.ExpiringSoon,
		},
	}
	if s.Loyalty != nil {
		resp.LoyaltyStatus = &LoyaltySnapshot{
			CurrentTier:    s.Loyalty.CurrentTier,
			TierProgress:   number(s.Loyalty.TierProgress),
			TierExpiryDate: s.Loyalty.TierExpiryDate,
			ProgramName:    s.Loyalty.ProgramName,
		}
	}
	return resp
}

type RedeemResponse struct {
	ProcessedAt    time.Time   `json:"processedAt"`
	RedemptionID   string      `json:"redemptionId"`
	Status         string      `json:"status"`
	CashValue      json.Number `json:"cashValue"`
	RedemptionType string      `json:"redemptionType"`
	PointsRedeemed int64       `json:"pointsRedeemed"`
}

func NewRedeemResponse(r reward.Redemption) RedeemResponse {
	return RedeemResponse{
		RedemptionID:   r.ID,
		Status:         "success",
		PointsRedeemed: r.PointsUsed,
		CashValue:      number(r.CashValue),
		RedemptionType: r.Type,
		ProcessedAt:    r.ProcessedAt,
	}
}

type EarnResponse struct {
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiryDate *time.Time `json:"expiryDate"`
	UserID     string     `json:"userId"`
	LotID      int64      `json:"lotId"`
	Points     int64      `json:"points"`
}

func NewEarnResponse(l reward.Lot) EarnResponse {
	return EarnResponse{
		LotID:      l.ID,
		UserID:     l.UserID,
		Points:     l.Earned,
		ExpiryDate: l.ExpiryDate,
		CreatedAt:  l.CreatedAt,
	}
}

type HistoryItem struct {
	CreatedAt      time.Time      `json:"createdAt"`
	Metadata       map[string]any `json:"metadata"`
	ID             string         `json:"id"`
	ActionType     string         `json:"actionType"`
	CashbackChange json.Number    `json:"cashbackChange"`
	Description    string         `json:"description"`
	PointsChange   int64          `json:"pointsChange"`
}

type HistoryResponse struct {
	Transactions []HistoryItem    `json:"transactions"`
	Pagination   model.Pagination `json:"pagination"`
}

func NewHistoryResponse(p reward.HistoryPage, page model.Page) HistoryResponse {
	items := make([]HistoryItem, 0, len(p.Entries))
	for _, e := range p.Entries {
		items = append(items, HistoryItem{
			ID:             e.ID,
			ActionType:     string(e.ActionType),
			PointsChange:   e.PointsChange,
			CashbackChange: number(e.CashbackChange),
			Description:    e.Description,
			Metadata:       e.Metadata,
			CreatedAt:      e.CreatedAt,
		})
	}
	return HistoryResponse{
		Transactions: items,
		Pagination:   model.NewPagination(page, p.Total),
	}
}

type CashbackDetails struct {
	CampaignID   *int64      `json:"campaignId"`
	CampaignName *string     `json:"campaignName"`
	Rate         json.Number `json:"rate"`
	Amount       json.Number `json:"amount"`
	Tier         string      `json:"tier"`
}

type CalculationDetails struct {
	BaseTierRate json.Number `json:"baseTierRate"`
	FinalRate    json.Number `json:"finalRate"`
	RawAmount    json.Number `json:"rawAmount"`
	CappedAmount json.Number `json:"cappedAmount"`
}

type CalculateResponse struct {
	UserID            string             `json:"userId"`
	TransactionID     string             `json:"transactionId"`
	TransactionAmount json.Number        `json:"transactionAmount"`
	Cashback          CashbackDetails    `json:"cashback"`
	Calculation       CalculationDetails `json:"calculation"`
}

func NewCalculateResponse(c cashback.Calculation) CalculateResponse {
	res := c.Result
	details := CashbackDetails{
		Rate:   number(res.Rate),
		Amount: number(res.Amount),
		Tier:   c.Tier,
	}
	if res.Campaign != nil {
		id, name := res.Campaign.ID, res.Campaign.Name
		details.CampaignID = &id
		details.CampaignName = &name
	}
	return CalculateResponse{
		UserID:            c.Request.UserID,
		TransactionID:     c.Request.TransactionID,
		TransactionAmount: number(c.Request.Amount),
		Cashback:          details,
		Calculation: CalculationDetails{
			BaseTierRate: number(res.BaseRate),
			FinalRate:    number(res.Rate),
			RawAmount:    number(res.RawAmount),
			CappedAmount: number(res.Amount),
		},
	}
}

type CampaignInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ID          int64  `json:"id"`
}

type CashbackTransaction struct {
	CreatedAt          time.Time     `json:"createdAt"`
	ProcessedAt        *time.Time    `json:"processedAt"`
	Campaign           *CampaignInfo `json:"campaign"`
	ID                 string        `json:"id"`
	TransactionID      string        `json:"transactionId"`
	TransactionAmount  json.Number   `json:"transactionAmount"`
	CashbackPercentage json.Number   `json:"cashbackPercentage"`
	CashbackAmount     json.Number   `json:"cashbackAmount"`
	CashbackType       string        `json:"cashbackType"`
	Status             string        `json:"status"`
}

func NewCashbackTransaction(t cashback.Transaction) CashbackTransaction {
	out := CashbackTransaction{
		ID:                 t.ID,
		TransactionID:      t.TransactionID,
		TransactionAmount:  number(t.Amount),
		CashbackPercentage: number(t.Percentage),
		CashbackAmount:     number(t.CashbackAmount),
		CashbackType:       string(t.Type),
		Status:             string(t.Status),
		ProcessedAt:        t.ProcessedAt,
		CreatedAt:          t.CreatedAt,
	}
	if t.Campaign != nil {
		out.Campaign = &CampaignInfo{
			ID:          t.Campaign.ID,
			Name:        t.Campaign.Name,
			Description: t.Campaign.Description,
		}
	}
	return out
}

type CashbackTransactionsResponse struct {
	Transactions []CashbackTransaction `json:"transactions"`
	Pagination   model.Pagination      `json:"pagination"`
}

func NewCashbackTransactionsResponse(p cashback.TransactionPage, page model.Page,
) CashbackTransactionsResponse {
	items := make([]CashbackTransaction, 0, len(p.Transactions))
	for _, t := range p.Transactions {
		items = append(items, NewCashbackTransaction(t))
	}
	return CashbackTransactionsResponse{
		Transactions: items,
		Pagination:   model.NewPagination(page, p.Total),
	}
}

type CashbackSummary struct {
	LastCashbackDate   *time.Time  `json:"lastCashbackDate"`
	TotalEarned        json.Number `json:"totalEarned"`
	Received           json.Number `json:"received"`
	Pending            json.Number `json:"pending"`
	AverageRate        json.Number `json:"averageRate"`
	CurrentMonthEarned json.Number `json:"currentMonthEarned"`
	TotalTransactions  int64       `json:"totalTransactions"`
	CampaignsUsed      int64       `json:"campaignsUsed"`
}

type CashbackSummaryResponse struct {
	UserID  string          `json:"userId"`
	Summary CashbackSummary `json:"summary"`
}

func NewCashbackSummaryResponse(s cashback.Summary) CashbackSummaryResponse {
	return CashbackSummaryResponse{
		UserID: s.UserID,
		Summary: CashbackSummary{
			TotalTransactions:  s.TotalTransactions,
			TotalEarned:        number(s.TotalEarned),
			Received:           number(s.Received),
			Pending:            number(s.Pending),
			AverageRate:        number(s.AverageRate),
			CurrentMonthEarned: number(s.CurrentMonthEarned),
			CampaignsUsed:      s.CampaignsUsed,
			LastCashbackDate:   s.LastCashbackDate,
		},
	}
}

type SpendingRange struct {
	Max *json.Number `json:"max"`
	Min json.Number  `json:"min"`
}

type ProgramResponse struct {
	CreatedAt     time.Time            `json:"createdAt"`
	Benefits      loyalty.Benefits     `json:"benefits"`
	Requirements  loyalty.Requirements `json:"requirements"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	TierType      string               `json:"tierType"`
	SpendingRange SpendingRange        `json:"spendingRange"`
	ID            int64                `json:"id"`
}

func NewProgramResponse(p loyalty.Program) ProgramResponse {
	minSpend := decimal.Zero
	if p.MinSpending != nil {
		minSpend = *p.MinSpending
	}
	return ProgramResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		TierType:     p.TierType,
		Benefits:     p.Benefits,
		Requirements: p.Requirements,
		SpendingRange: SpendingRange{
			Min: number(minSpend),
			Max: nullableNumber(p.MaxSpending),
		},
		CreatedAt: p.CreatedAt,
	}
}

func NewProgramsResponse(programs []loyalty.Program) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(programs))
	for _, p := range programs {
		out = append(out, NewProgramResponse(p))
	}
	return out
}

type ProgramInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TierType    string `json:"tierType"`
	ID          int64  `json:"id"`
}

type CurrentTier struct {
	AchievedDate *time.Time `json:"achievedDate"`
	ExpiryDate   *time.Time `json:"expiryDate"`
	Name         string     `json:"name"`
	Benefits     []string   `json:"benefits"`
}

type TierProgress struct {
	NextTierRequirement *json.Number `json:"nextTierRequirement"`
	NextTier            *string      `json:"nextTier"`
	TotalSpending       json.Number  `json:"totalSpending"`
	TierProgress        json.Number  `json:"tierProgress"`
	ProgressPercentage  json.Number  `json:"progressPercentage"`
}

type StatusResponse struct {
	LastUpdated time.Time    `json:"lastUpdated"`
	UserID      string       `json:"userId"`
	Program     ProgramInfo  `json:"program"`
	CurrentTier CurrentTier  `json:"currentTier"`
	Progress    TierProgress `json:"progress"`
}

func NewStatusResponse(s loyalty.Status) StatusResponse {
	next, nextReq, pct := loyalty.Progress(s.Program.Requirements, s.CurrentTier, s.TotalSpending)
	progress := TierProgress{
		TotalSpending:       number(s.TotalSpending),
		TierProgress:        number(s.TierProgress),
		NextTierRequirement: nullableNumber(nextReq),
		ProgressPercentage:  number(pct),
	}
	if next != "" {
		progress.NextTier = &next
	}
	return StatusResponse{
		UserID: s.UserID,
		Program: ProgramInfo{
			ID:          s.Program.ID,
			Name:        s.Program.Name,
			Description: s.Program.Description,
			TierType:    s.Program.TierType,
		},
		CurrentTier: CurrentTier{
			Name:         s.CurrentTier,
			Benefits:     s.Program.Benefits.For(s.CurrentTier),
			AchievedDate: s.TierAchievedDate,
			ExpiryDate:   s.TierExpiryDate,
		},
		Progress:    progress,
		LastUpdated: s.LastUpdated,
	}
}

// UpgradeResponse covers both outcomes of a tier re-evaluation.
type UpgradeResponse struct {
	UpdatedStatus *StatusResponse `json:"updatedStatus,omitempty"`
	CurrentTier   string          `json:"currentTier,omitempty"`
	PreviousTier  string          `json:"previousTier,omitempty"`
	NewTier       string          `json:"newTier,omitempty"`
	TotalSpending json.Number     `json:"totalSpending"`
	Message       string          `json:"message"`
	Upgraded      bool            `json:"upgraded"`
}

func NewUpgradeResponse(u loyalty.Upgrade) UpgradeResponse {
	if !u.Upgraded {
		return UpgradeResponse{
			CurrentTier:   u.Status.CurrentTier,
			TotalSpending: number(u.TotalSpending),
			Message:       MessageNoUpgrade,
		}
	}
	status := NewStatusResponse(u.Status)
	return UpgradeResponse{
		Upgraded:      true,
		PreviousTier:  u.PreviousTier,
		NewTier:       u.NewTier,
		TotalSpending: number(u.TotalSpending),
		UpdatedStatus: &status,
		Message:       fmt.Sprintf("User upgraded from %s to %s", u.PreviousTier, u.NewTier),
	}
}
