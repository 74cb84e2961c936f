package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/talx-hub/gopher-rewards/internal/model"
	"github.com/talx-hub/gopher-rewards/internal/model/loyalty"
	"github.com/talx-hub/gopher-rewards/internal/model/reward"
	"github.com/talx-hub/gopher-rewards/internal/repo/internal/db"
	"github.com/talx-hub/gopher-rewards/internal/serviceerrs"
)

type RewardRepository struct {
	DB
}

func NewRewardRepository(pool connectionPool, log *slog.Logger) *RewardRepository {
	return &RewardRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

func (r *RewardRepository) Summary(ctx context.Context, userID string) (reward.Summary, error) {
	summarize := func(ctx context.Context, tx connectionPool) (any, error) {
		queries := db.New(tx)
		sums, err := queries.SumPoints(ctx, userID)
		if err != nil {
			return reward.Summary{}, fmt.Errorf("failed to sum points of %s: %w", userID, err)
		}

		now := time.Now().UTC()
		expiring, err := queries.CountExpiringSoon(ctx, db.CountExpiringSoonParams{
			UserID:   userID,
			FromDate: toTimestamptz(now),
			ToDate:   toTimestamptz(now.Add(reward.ExpiringSoonWindow)),
		})
		if err != nil {
			return reward.Summary{}, fmt.Errorf("failed to count expiring lots of %s: %w", userID, err)
		}

		summary := reward.Summary{
			UserID:        userID,
			TotalEarned:   sums.TotalEarned,
			Available:     sums.Available,
			TotalRedeemed: sums.TotalRedeemed,
			Expired:       sums.Expired,
			ExpiringSoon:  expiring,
		}

		status, err := findActiveStatus(ctx, queries, userID)
		switch {
		case err == nil:
			summary.Loyalty = &loyalty.Snapshot{
				TierExpiryDate: status.TierExpiryDate,
				CurrentTier:    status.CurrentTier,
				ProgramName:    status.Program.Name,
				TierProgress:   status.TierProgress,
			}
		case !errors.Is(err, serviceerrs.ErrNotEnrolled):
			return reward.Summary{}, err
		}
		return summary, nil
	}

	runWithTX := func() (reward.Summary, error) {
		return WithTX[reward.Summary](ctx, r.pool, r.log, summarize)
	}
	return WithRetry[reward.Summary](runWithTX, 0) //nolint: wrapcheck // error from wrapped function
}

// Redeem takes points from the user's lots oldest first and records the redemption.
// Nothing is written when the lots cannot cover the request.
func (r *RewardRepository) Redeem(ctx context.Context, req reward.RedeemRequest,
) (reward.Redemption, error) {
	redeem := func(ctx context.Context, tx connectionPool) (any, error) {
		queries := db.New(tx)
		rows, err := queries.LockAvailableLots(ctx, req.UserID)
		if err != nil {
			return reward.Redemption{}, fmt.Errorf("failed to lock point lots of %s: %w", req.UserID, err)
		}

		lots := make([]reward.Lot, len(rows))
		for i, row := range rows {
			lots[i] = toLot(row)
		}
		plan, err := reward.AllocateFIFO(lots, req.Points)
		if err != nil {
			return reward.Redemption{}, err
		}

		now := time.Now().UTC()
		details := req.Details
		if details == nil {
			details = map[string]any{}
		}
		rawDetails, err := json.Marshal(details)
		if err != nil {
			return reward.Redemption{}, fmt.Errorf("failed to encode redemption details: %w", err)
		}

		id := uuid.New()
		redemption := reward.Redemption{
			CreatedAt:   now,
			ProcessedAt: now,
			Details:     details,
			ID:          id.String(),
			UserID:      req.UserID,
			Type:        req.Type,
			Status:      reward.RedemptionCompleted,
			CashValue:   model.CashValue(req.Points),
			PointsUsed:  req.Points,
		}
		if err = queries.CreateRedemption(ctx, db.CreateRedemptionParams{
			ID:                id,
			UserID:            redemption.UserID,
			PointsUsed:        redemption.PointsUsed,
			RedemptionType:    redemption.Type,
			RedemptionDetails: rawDetails,
			CashValue:         model.ToPGNumeric(redemption.CashValue),
			Status:            string(redemption.Status),
			ProcessedAt:       toTimestamptz(now),
			CreatedAt:         toTimestamptz(now),
		}); err != nil {
			return reward.Redemption{}, fmt.Errorf("failed to create redemption for %s: %w", req.UserID, err)
		}

		for _, d := range plan {
			affected, err := queries.DeductLot(ctx, db.DeductLotParams{ID: d.LotID, Points: d.Points})
			if err != nil {
				return reward.Redemption{}, fmt.Errorf("failed to deduct %d points from lot %d: %w",
					d.Points, d.LotID, err)
			}
			if affected == 0 {
				return reward.Redemption{}, fmt.Errorf("lot %d changed while locked: %w",
					d.LotID, serviceerrs.ErrUnexpected)
			}
		}

		if err = appendHistory(ctx, queries, reward.HistoryEntry{
			UserID:       req.UserID,
			ActionType:   reward.ActionPointsRedeemed,
			PointsChange: -req.Points,
			Description:  "Points redeemed for " + req.Type,
			Metadata: map[string]any{
				"redemptionId":      redemption.ID,
				"redemptionDetails": details,
			},
			CreatedAt: now,
		}); err != nil {
			return reward.Redemption{}, err
		}
		return redemption, nil
	}

	runWithTX := func() (reward.Redemption, error) {
		return WithTX[reward.Redemption](ctx, r.pool, r.log, redeem)
	}
	return WithRetry[reward.Redemption](runWithTX, 0) //nolint: wrapcheck // error from wrapped function
}

// Earn adds a new lot of points.
func (r *RewardRepository) Earn(ctx context.Context, req reward.EarnRequest) (reward.Lot, error) {
	earn := func(ctx context.Context, tx connectionPool) (any, error) {
		queries := db.New(tx)
		now := time.Now().UTC()
		expiry := req.ExpiryDate
		if expiry == nil {
			e := now.Add(reward.DefaultLotValidity)
			expiry = &e
		}

		row, err := queries.CreateLot(ctx, db.CreateLotParams{
			UserID:       req.UserID,
			PointsEarned: req.Points,
			ExpiryDate:   toNullableTimestamptz(expiry),
			CreatedAt:    toTimestamptz(now),
		})
		if err != nil {
			return reward.Lot{}, fmt.Errorf("failed to create point lot for %s: %w", req.UserID, err)
		}

		description := req.Description
		if description == "" {
			description = fmt.Sprintf("Earned %d points", req.Points)
		}
		if err = appendHistory(ctx, queries, reward.HistoryEntry{
			UserID:       req.UserID,
			ActionType:   reward.ActionPointsEarned,
			PointsChange: req.Points,
			Description:  description,
			Metadata:     map[string]any{"lotId": row.ID},
			CreatedAt:    now,
		}); err != nil {
			return reward.Lot{}, err
		}
		return toLot(row), nil
	}

	runWithTX := func() (reward.Lot, error) {
		return WithTX[reward.Lot](ctx, r.pool, r.log, earn)
	}
	return WithRetry[reward.Lot](runWithTX, 0) //nolint: wrapcheck // error from wrapped function
}

func (r *RewardRepository) History(ctx context.Context, f reward.HistoryFilter,
) (reward.HistoryPage, error) {
	list := func(ctx context.Context, tx connectionPool) (any, error) {
		queries := db.New(tx)
		total, err := queries.CountHistory(ctx, db.CountHistoryParams{
			UserID:     f.UserID,
			ActionType: toNullableText(string(f.ActionType)),
			FromDate:   toNullableTimestamptz(f.From),
			ToDate:     toNullableTimestamptz(f.To),
		})
		if err != nil {
			return reward.HistoryPage{}, fmt.Errorf("failed to count history of %s: %w", f.UserID, err)
		}

		rows, err := queries.ListHistory(ctx, db.ListHistoryParams{
			UserID:     f.UserID,
			ActionType: toNullableText(string(f.ActionType)),
			FromDate:   toNullableTimestamptz(f.From),
			ToDate:     toNullableTimestamptz(f.To),
			RowLimit:   int32(f.Page.Limit),    //nolint:gosec // limit is capped by the caller
			RowOffset:  int32(f.Page.Offset()), //nolint:gosec // pages are checked with Page.InRange
		})
		if err != nil {
			return reward.HistoryPage{}, fmt.Errorf("failed to list history of %s: %w", f.UserID, err)
		}

		entries := make([]reward.HistoryEntry, len(rows))
		for i, row := range rows {
			entries[i] = r.toHistoryEntry(ctx, row)
		}
		return reward.HistoryPage{Entries: entries, Total: total}, nil
	}

	runWithTX := func() (reward.HistoryPage, error) {
		return WithTX[reward.HistoryPage](ctx, r.pool, r.log, list)
	}
	return WithRetry[reward.HistoryPage](runWithTX, 0) //nolint: wrapcheck // error from wrapped function
}

func (r *RewardRepository) toHistoryEntry(ctx context.Context, row db.RewardHistory) reward.HistoryEntry {
	cashback, err := model.FromPGNumeric(row.CashbackChange)
	if err != nil {
		r.log.LogAttrs(ctx,
			slog.LevelError,
			"invalid cashback change from DB",
			slog.Any("cashback_change", row.CashbackChange),
			slog.Any(model.KeyLoggerError, err),
		)
	}
	var metadata map[string]any
	if err = json.Unmarshal(row.Metadata, &metadata); err != nil {
		r.log.LogAttrs(ctx,
			slog.LevelError,
			"invalid history metadata from DB",
			slog.String("id", row.ID.String()),
			slog.Any(model.KeyLoggerError, err),
		)
	}

	return reward.HistoryEntry{
		CreatedAt:      row.CreatedAt.Time,
		Metadata:       metadata,
		ID:             row.ID.String(),
		UserID:         row.UserID,
		ActionType:     reward.ActionType(row.ActionType),
		Description:    row.Description,
		CashbackChange: cashback,
		PointsChange:   row.PointsChange,
	}
}

func toLot(row db.RewardPoint) reward.Lot {
	return reward.Lot{
		CreatedAt:  row.CreatedAt.Time,
		ExpiryDate: fromNullableTimestamptz(row.ExpiryDate),
		UserID:     row.UserID,
		ID:         row.ID,
		Earned:     row.PointsEarned,
		Available:  row.PointsAvailable,
		Redeemed:   row.PointsRedeemed,
		Expired:    row.PointsExpired,
	}
}
