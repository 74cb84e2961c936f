package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/talx-hub/gopher-rewards/internal/model"
	"github.com/talx-hub/gopher-rewards/internal/model/loyalty"
	"github.com/talx-hub/gopher-rewards/internal/model/reward"
	"github.com/talx-hub/gopher-rewards/internal/repo/internal/db"
	"github.com/talx-hub/gopher-rewards/internal/serviceerrs"
)

type LoyaltyRepository struct {
	DB
}

func NewLoyaltyRepository(pool connectionPool, log *slog.Logger) *LoyaltyRepository {
	return &LoyaltyRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

func (r *LoyaltyRepository) ListActivePrograms(ctx context.Context) ([]loyalty.Program, error) {
	listLogic := func() ([]loyalty.Program, error) {
		rows, err := db.New(r.pool).ListActivePrograms(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list active programs: %w", err)
		}

		programs := make([]loyalty.Program, 0, len(rows))
		for _, row := range rows {
			p, err := toProgram(row)
			if err != nil {
				return nil, err
			}
			programs = append(programs, p)
		}
		return programs, nil
	}

	return WithRetry[[]loyalty.Program](listLogic, 0) //nolint: wrapcheck // error from wrapped function
}

func (r *LoyaltyRepository) FindActiveStatus(ctx context.Context, userID string,
) (loyalty.Status, error) {
	findLogic := func() (loyalty.Status, error) {
		return findActiveStatus(ctx, db.New(r.pool), userID)
	}

	return WithRetry[loyalty.Status](findLogic, 0) //nolint: wrapcheck // error from wrapped function
}

// UpgradeTier re-evaluates the user's tier against totalSpending.
// The status row stays untouched when the tier does not change.
func (r *LoyaltyRepository) UpgradeTier(ctx context.Context,
	userID string, totalSpending decimal.Decimal,
) (loyalty.Upgrade, error) {
	upgrade := func(ctx context.Context, tx connectionPool) (any, error) {
		queries := db.New(tx)
		row, err := queries.LockActiveStatus(ctx, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return loyalty.Upgrade{}, serviceerrs.ErrNotEnrolled
			}
			return loyalty.Upgrade{}, fmt.Errorf("failed to lock loyalty status of %s: %w", userID, err)
		}
		status, err := toStatus(row.UserLoyaltyStatus, row.LoyaltyProgram)
		if err != nil {
			return loyalty.Upgrade{}, err
		}

		previous := status.CurrentTier
		res := loyalty.ResolveTier(status.Program.Requirements, previous, totalSpending)
		if !res.Changed {
			return loyalty.Upgrade{
				Status:        status,
				PreviousTier:  previous,
				NewTier:       previous,
				TotalSpending: totalSpending,
			}, nil
		}

		now := time.Now().UTC()
		expiry := now.Add(loyalty.TierValidity)
		progress := model.RoundMoney(totalSpending)
		if err = queries.UpdateTier(ctx, db.UpdateTierParams{
			ID:               status.ID,
			CurrentTier:      res.Tier,
			TotalSpending:    model.ToPGNumeric(model.RoundMoney(totalSpending)),
			TierProgress:     model.ToPGNumeric(progress),
			TierAchievedDate: toTimestamptz(now),
			TierExpiryDate:   toTimestamptz(expiry),
		}); err != nil {
			return loyalty.Upgrade{}, fmt.Errorf("failed to update tier of %s: %w", userID, err)
		}

		if err = appendHistory(ctx, queries, reward.HistoryEntry{
			UserID:      userID,
			ActionType:  reward.ActionTierUpgrade,
			Description: fmt.Sprintf("Upgraded from %s to %s tier", previous, res.Tier),
			Metadata: map[string]any{
				"previousTier":   previous,
				"newTier":        res.Tier,
				"spendingAmount": json.Number(totalSpending.String()),
			},
			CreatedAt: now,
		}); err != nil {
			return loyalty.Upgrade{}, err
		}

		status.CurrentTier = res.Tier
		status.TotalSpending = model.RoundMoney(totalSpending)
		status.TierProgress = progress
		status.TierAchievedDate = &now
		status.TierExpiryDate = &expiry
		status.LastUpdated = now
		return loyalty.Upgrade{
			Status:        status,
			PreviousTier:  previous,
			NewTier:       res.Tier,
			TotalSpending: totalSpending,
			Upgraded:      true,
		}, nil
	}

	runWithTX := func() (loyalty.Upgrade, error) {
		return WithTX[loyalty.Upgrade](ctx, r.pool, r.log, upgrade)
	}
	return WithRetry[loyalty.Upgrade](runWithTX, 0) //nolint: wrapcheck // error from wrapped function
}

// Enroll puts the user into an active program at its entry tier.
func (r *LoyaltyRepository) Enroll(ctx context.Context, userID string, programID int64,
) (loyalty.Status, error) {
	enroll := func(ctx context.Context, tx connectionPool) (any, error) {
		queries := db.New(tx)
		if err := queries.LockUser(ctx, userID); err != nil {
			return loyalty.Status{}, fmt.Errorf("failed to lock user %s: %w", userID, err)
		}

		programRow, err := queries.GetActiveProgram(ctx, programID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return loyalty.Status{}, serviceerrs.ErrProgramNotFound
			}
			return loyalty.Status{}, fmt.Errorf("failed to find program %d: %w", programID, err)
		}
		program, err := toProgram(programRow)
		if err != nil {
			return loyalty.Status{}, err
		}

		_, err = findActiveStatus(ctx, queries, userID)
		switch {
		case err == nil:
			return loyalty.Status{}, serviceerrs.ErrAlreadyEnrolled
		case !errors.Is(err, serviceerrs.ErrNotEnrolled):
			return loyalty.Status{}, err
		}

		entry, ok := program.Requirements.Lowest()
		if !ok {
			return loyalty.Status{}, fmt.Errorf("program %d defines no tiers", programID)
		}

		now := time.Now().UTC()
		created, err := queries.CreateStatus(ctx, db.CreateStatusParams{
			UserID:           userID,
			LoyaltyProgramID: program.ID,
			CurrentTier:      entry.Tier,
			TierAchievedDate: toTimestamptz(now),
			TierExpiryDate:   toTimestamptz(now.Add(loyalty.TierValidity)),
		})
		if err != nil {
			if isUniqueViolation(err) {
				return loyalty.Status{}, serviceerrs.ErrAlreadyEnrolled
			}
			return loyalty.Status{}, fmt.Errorf("failed to enroll %s: %w", userID, err)
		}
		return toStatus(created, programRow)
	}

	runWithTX := func() (loyalty.Status, error) {
		return WithTX[loyalty.Status](ctx, r.pool, r.log, enroll)
	}
	return WithRetry[loyalty.Status](runWithTX, 0) //nolint: wrapcheck // error from wrapped function
}

func findActiveStatus(ctx context.Context, queries *db.Queries, userID string,
) (loyalty.Status, error) {
	row, err := queries.FindActiveStatus(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return loyalty.Status{}, serviceerrs.ErrNotEnrolled
		}
		return loyalty.Status{}, fmt.Errorf("failed to find loyalty status of %s: %w", userID, err)
	}
	return toStatus(row.UserLoyaltyStatus, row.LoyaltyProgram)
}

func toProgram(row db.LoyaltyProgram) (loyalty.Program, error) {
	p := loyalty.Program{
		CreatedAt:   row.CreatedAt.Time,
		Name:        row.Name,
		Description: row.Description,
		TierType:    row.TierType,
		ID:          row.ID,
		IsActive:    row.IsActive,
	}

	if err := json.Unmarshal(row.Benefits, &p.Benefits); err != nil {
		return loyalty.Program{}, fmt.Errorf("invalid benefits of program %d: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.Requirements, &p.Requirements); err != nil {
		return loyalty.Program{}, fmt.Errorf("invalid requirements of program %d: %w", row.ID, err)
	}

	var err error
	if p.MinSpending, err = model.NullableFromPGNumeric(row.MinSpending); err != nil {
		return loyalty.Program{}, fmt.Errorf("invalid min spending of program %d: %w", row.ID, err)
	}
	if p.MaxSpending, err = model.NullableFromPGNumeric(row.MaxSpending); err != nil {
		return loyalty.Program{}, fmt.Errorf("invalid max spending of program %d: %w", row.ID, err)
	}
	return p, nil
}

func toStatus(row db.UserLoyaltyStatus, programRow db.LoyaltyProgram) (loyalty.Status, error) {
	program, err := toProgram(programRow)
	if err != nil {
		return loyalty.Status{}, err
	}
	spending, err := model.FromPGNumeric(row.TotalSpending)
	if err != nil {
		return loyalty.Status{}, fmt.Errorf("invalid total spending of status %d: %w", row.ID, err)
	}
	progress, err := model.FromPGNumeric(row.TierProgress)
	if err != nil {
		return loyalty.Status{}, fmt.Errorf("invalid tier progress of status %d: %w", row.ID, err)
	}

	return loyalty.Status{
		TierAchievedDate: fromNullableTimestamptz(row.TierAchievedDate),
		TierExpiryDate:   fromNullableTimestamptz(row.TierExpiryDate),
		LastUpdated:      row.LastUpdated.Time,
		UserID:           row.UserID,
		CurrentTier:      row.CurrentTier,
		TotalSpending:    spending,
		TierProgress:     progress,
		Program:          program,
		ID:               row.ID,
	}, nil
}

func appendHistory(ctx context.Context, queries *db.Queries, e reward.HistoryEntry) error {
	metadata := e.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode history metadata: %w", err)
	}

	if err = queries.CreateHistory(ctx, db.CreateHistoryParams{
		ID:             uuid.New(),
		UserID:         e.UserID,
		ActionType:     string(e.ActionType),
		PointsChange:   e.PointsChange,
		CashbackChange: model.ToPGNumeric(e.CashbackChange),
		Description:    e.Description,
		Metadata:       raw,
		CreatedAt:      toTimestamptz(e.CreatedAt),
	}); err != nil {
		return fmt.Errorf("failed to append %s history for %s: %w", e.ActionType, e.UserID, err)
	}
	return nil
}
