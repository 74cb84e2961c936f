package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/talx-hub/gopher-rewards/internal/model"
	"github.com/talx-hub/gopher-rewards/internal/model/cashback"
	"github.com/talx-hub/gopher-rewards/internal/model/reward"
	"github.com/talx-hub/gopher-rewards/internal/repo/internal/db"
)

type CashbackRepository struct {
	DB
}

func NewCashbackRepository(pool connectionPool, log *slog.Logger) *CashbackRepository {
	return &CashbackRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// Calculate resolves the cashback of a purchase without recording anything.
func (r *CashbackRepository) Calculate(ctx context.Context, req cashback.Request,
) (cashback.Calculation, error) {
	calculate := func() (cashback.Calculation, error) {
		in, tier, err := loadCashbackInput(ctx, db.New(r.pool), req, time.Now().UTC())
		if err != nil {
			return cashback.Calculation{}, err
		}
		return cashback.Calculation{Request: req, Tier: tier, Result: cashback.Resolve(in)}, nil
	}
	return WithRetry[cashback.Calculation](calculate, 0) //nolint: wrapcheck // error from wrapped function
}

// Grant resolves the cashback of a purchase and records it as a pending transaction.
// The winning campaign is confirmed under the user's campaign row lock.
func (r *CashbackRepository) Grant(ctx context.Context, req cashback.Request,
) (cashback.Transaction, error) {
	grant := func(ctx context.Context, tx connectionPool) (any, error) {
		queries := db.New(tx)
		now := time.Now().UTC()
		in, _, err := loadCashbackInput(ctx, queries, req, now)
		if err != nil {
			return cashback.Transaction{}, err
		}

		lockEarned := func(campaignID int64) (decimal.Decimal, error) {
			key := db.EnsureUserCampaignParams{CampaignID: campaignID, UserID: req.UserID}
			if err := queries.EnsureUserCampaign(ctx, key); err != nil {
				return decimal.Zero, fmt.Errorf("failed to track campaign %d for %s: %w",
					campaignID, req.UserID, err)
			}
			earnedRaw, err := queries.LockUserCampaign(ctx, db.LockUserCampaignParams(key))
			if err != nil {
				return decimal.Zero, fmt.Errorf("failed to lock campaign %d for %s: %w",
					campaignID, req.UserID, err)
			}
			earned, err := model.FromPGNumeric(earnedRaw)
			if err != nil {
				return decimal.Zero, fmt.Errorf("invalid campaign earnings: %w", err)
			}
			return earned, nil
		}
		res, err := cashback.ResolveLocked(in, lockEarned)
		if err != nil {
			return cashback.Transaction{}, err //nolint: wrapcheck // error from wrapped function
		}

		var campaignID pgtype.Int8
		var ref *cashback.CampaignRef
		if res.Campaign != nil {
			c := res.Campaign
			campaignID = pgtype.Int8{Int64: c.ID, Valid: true}
			ref = &cashback.CampaignRef{ID: c.ID, Name: c.Name, Description: c.Description}
			if err = queries.AddCampaignEarnings(ctx, db.AddCampaignEarningsParams{
				CampaignID: c.ID,
				UserID:     req.UserID,
				Amount:     model.ToPGNumeric(res.Amount),
			}); err != nil {
				return cashback.Transaction{}, fmt.Errorf("failed to add campaign earnings: %w", err)
			}
		}

		t := cashback.Transaction{
			CreatedAt:      now,
			Campaign:       ref,
			ID:             uuid.NewString(),
			UserID:         req.UserID,
			TransactionID:  req.TransactionID,
			Type:           cashback.TypeTier,
			Status:         cashback.StatusPending,
			Amount:         model.RoundMoney(req.Amount),
			Percentage:     model.RateToPercent(res.Rate).Round(4),
			CashbackAmount: res.Amount,
		}
		if ref != nil {
			t.Type = cashback.TypeCampaign
		}
		if err = queries.CreateCashbackTransaction(ctx, db.CreateCashbackTransactionParams{
			ID:                 uuid.MustParse(t.ID),
			UserID:             t.UserID,
			TransactionID:      t.TransactionID,
			TransactionAmount:  model.ToPGNumeric(t.Amount),
			CashbackPercentage: model.ToPGNumeric(t.Percentage),
			CashbackAmount:     model.ToPGNumeric(t.CashbackAmount),
			CashbackType:       string(t.Type),
			Status:             string(t.Status),
			CampaignID:         campaignID,
			CreatedAt:          toTimestamptz(now),
		}); err != nil {
			return cashback.Transaction{}, fmt.Errorf("failed to record cashback for %s: %w", req.UserID, err)
		}

		metadata := map[string]any{
			"cashbackTransactionId": t.ID,
			"transactionId":         t.TransactionID,
		}
		if ref != nil {
			metadata["campaignId"] = ref.ID
		}
		if err = appendHistory(ctx, queries, reward.HistoryEntry{
			UserID:         req.UserID,
			ActionType:     reward.ActionCashbackEarned,
			CashbackChange: t.CashbackAmount,
			Description:    fmt.Sprintf("Cashback for transaction %s", t.TransactionID),
			Metadata:       metadata,
			CreatedAt:      now,
		}); err != nil {
			return cashback.Transaction{}, err
		}
		return t, nil
	}

	runWithTX := func() (cashback.Transaction, error) {
		return WithTX[cashback.Transaction](ctx, r.pool, r.log, grant)
	}
	return WithRetry[cashback.Transaction](runWithTX, 0) //nolint: wrapcheck // error from wrapped function
}

func (r *CashbackRepository) Summary(ctx context.Context, userID string) (cashback.Summary, error) {
	summarize := func() (cashback.Summary, error) {
		row, err := db.New(r.pool).CashbackSummary(ctx, db.CashbackSummaryParams{
			UserID:     userID,
			MonthStart: toTimestamptz(cashback.MonthStart(time.Now())),
		})
		if err != nil {
			return cashback.Summary{}, fmt.Errorf("failed to summarize cashback of %s: %w", userID, err)
		}

		s := cashback.Summary{
			LastCashbackDate:  fromNullableTimestamptz(row.LastCashbackDate),
			UserID:            userID,
			TotalTransactions: row.TotalTransactions,
			CampaignsUsed:     row.CampaignsUsed,
		}
		for _, f := range []numericField{
			{"total earned", &s.TotalEarned, row.TotalEarned},
			{"received", &s.Received, row.Received},
			{"pending", &s.Pending, row.Pending},
			{"average rate", &s.AverageRate, row.AverageRate},
			{"current month earned", &s.CurrentMonthEarned, row.CurrentMonthEarned},
		} {
			if err = f.scan(); err != nil {
				return cashback.Summary{}, fmt.Errorf("cashback summary of %s: %w", userID, err)
			}
		}
		s.AverageRate = model.RoundMoney(s.AverageRate)
		return s, nil
	}

	return WithRetry[cashback.Summary](summarize, 0) //nolint: wrapcheck // error from wrapped function
}

func (r *CashbackRepository) ListTransactions(ctx context.Context, f cashback.TransactionFilter,
) (cashback.TransactionPage, error) {
	var campaignID pgtype.Int8
	if f.CampaignID != nil {
		campaignID = pgtype.Int8{Int64: *f.CampaignID, Valid: true}
	}

	list := func(ctx context.Context, tx connectionPool) (any, error) {
		queries := db.New(tx)
		total, err := queries.CountCashbackTransactions(ctx, db.CountCashbackTransactionsParams{
			UserID:     f.UserID,
			Status:     toNullableText(string(f.Status)),
			CampaignID: campaignID,
			FromDate:   toNullableTimestamptz(f.From),
			ToDate:     toNullableTimestamptz(f.To),
		})
		if err != nil {
			return cashback.TransactionPage{}, fmt.Errorf("failed to count cashback of %s: %w", f.UserID, err)
		}

		rows, err := queries.ListCashbackTransactions(ctx, db.ListCashbackTransactionsParams{
			UserID:     f.UserID,
			Status:     toNullableText(string(f.Status)),
			CampaignID: campaignID,
			FromDate:   toNullableTimestamptz(f.From),
			ToDate:     toNullableTimestamptz(f.To),
			RowLimit:   int32(f.Page.Limit),    //nolint:gosec // limit is capped by the caller
			RowOffset:  int32(f.Page.Offset()), //nolint:gosec // pages are checked with Page.InRange
		})
		if err != nil {
			return cashback.TransactionPage{}, fmt.Errorf("failed to list cashback of %s: %w", f.UserID, err)
		}

		transactions := make([]cashback.Transaction, 0, len(rows))
		for _, row := range rows {
			t, err := toCashbackTransaction(row)
			if err != nil {
				return cashback.TransactionPage{}, err
			}
			transactions = append(transactions, t)
		}
		return cashback.TransactionPage{Transactions: transactions, Total: total}, nil
	}

	runWithTX := func() (cashback.TransactionPage, error) {
		return WithTX[cashback.TransactionPage](ctx, r.pool, r.log, list)
	}
	return WithRetry[cashback.TransactionPage](runWithTX, 0) //nolint: wrapcheck // error from wrapped function
}

func loadCashbackInput(ctx context.Context, queries *db.Queries, req cashback.Request, now time.Time,
) (cashback.Input, string, error) {
	status, err := findActiveStatus(ctx, queries, req.UserID)
	if err != nil {
		return cashback.Input{}, "", err
	}

	rows, err := queries.ListRunningCampaigns(ctx, db.ListRunningCampaignsParams{
		UserID: req.UserID,
		AtTime: toTimestamptz(now),
	})
	if err != nil {
		return cashback.Input{}, "", fmt.Errorf("failed to list running campaigns: %w", err)
	}
	campaigns := make([]cashback.Campaign, 0, len(rows))
	for _, row := range rows {
		c, err := toCampaign(row)
		if err != nil {
			return cashback.Input{}, "", err
		}
		campaigns = append(campaigns, c)
	}

	return cashback.Input{
		Now:          now,
		Category:     req.Category,
		TierBenefits: status.Program.Benefits.For(status.CurrentTier),
		Campaigns:    campaigns,
		Amount:       req.Amount,
	}, status.CurrentTier, nil
}

func toCampaign(row db.ListRunningCampaignsRow) (cashback.Campaign, error) {
	c := row.Campaign
	out := cashback.Campaign{
		StartDate:   c.StartDate.Time,
		EndDate:     c.EndDate.Time,
		Name:        c.Name,
		Description: c.Description,
		ID:          c.ID,
		IsActive:    c.IsActive,
	}
	if err := json.Unmarshal(c.Rules, &out.Rules); err != nil {
		return cashback.Campaign{}, fmt.Errorf("invalid rules of campaign %d: %w", c.ID, err)
	}
	if err := json.Unmarshal(c.Rewards, &out.Rewards); err != nil {
		return cashback.Campaign{}, fmt.Errorf("invalid rewards of campaign %d: %w", c.ID, err)
	}

	var err error
	if out.MinTransaction, err = model.NullableFromPGNumeric(c.MinTransaction); err != nil {
		return cashback.Campaign{}, fmt.Errorf("invalid min transaction of campaign %d: %w", c.ID, err)
	}
	if out.MaxCashback, err = model.NullableFromPGNumeric(c.MaxCashback); err != nil {
		return cashback.Campaign{}, fmt.Errorf("invalid max cashback of campaign %d: %w", c.ID, err)
	}
	if out.UserEarned, err = model.FromPGNumeric(row.UserEarned); err != nil {
		return cashback.Campaign{}, fmt.Errorf("invalid earnings under campaign %d: %w", c.ID, err)
	}
	return out, nil
}

func toCashbackTransaction(row db.ListCashbackTransactionsRow) (cashback.Transaction, error) {
	t := row.CashbackTransaction
	out := cashback.Transaction{
		CreatedAt:     t.CreatedAt.Time,
		ProcessedAt:   fromNullableTimestamptz(t.ProcessedAt),
		ID:            t.ID.String(),
		UserID:        t.UserID,
		TransactionID: t.TransactionID,
		Type:          cashback.Type(t.CashbackType),
		Status:        cashback.Status(t.Status),
	}
	if t.CampaignID.Valid {
		out.Campaign = &cashback.CampaignRef{
			Name:        row.CampaignName.String,
			Description: row.CampaignDescription.String,
			ID:          t.CampaignID.Int64,
		}
	}

	for _, f := range []numericField{
		{"transaction amount", &out.Amount, t.TransactionAmount},
		{"cashback percentage", &out.Percentage, t.CashbackPercentage},
		{"cashback amount", &out.CashbackAmount, t.CashbackAmount},
	} {
		if err := f.scan(); err != nil {
			return cashback.Transaction{}, fmt.Errorf("cashback transaction %s: %w", out.ID, err)
		}
	}
	return out, nil
}

type numericField struct {
	name string
	dst  *decimal.Decimal
	src  pgtype.Numeric
}

func (f numericField) scan() error {
	v, err := model.FromPGNumeric(f.src)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", f.name, err)
	}
	*f.dst = v
	return nil
}
