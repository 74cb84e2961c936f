package repo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-rewards/internal/model"
	"github.com/talx-hub/gopher-rewards/internal/model/reward"
	"github.com/talx-hub/gopher-rewards/internal/serviceerrs"
)

func TestLoyaltyRepository_ListActivePrograms(t *testing.T) {
	repo, ctx, cancel, pool := setupRepo(t, NewLoyaltyRepository)
	defer cancel()
	require.NoError(t, loadFixtureFile(pool, "./fixtures/loyalty_programs.sql"))

	programs, err := repo.ListActivePrograms(ctx)
	require.NoError(t, err)

	names := make(map[int64]string, len(programs))
	for _, p := range programs {
		assert.True(t, p.IsActive)
		names[p.ID] = p.Name
	}
	assert.Equal(t, "Gold Rewards", names[1])
	assert.Equal(t, "Empty Program", names[3])
	assert.NotContains(t, names, int64(2))

	for _, p := range programs {
		if p.ID != 1 {
			continue
		}
		require.Len(t, p.Requirements, 3)
		assert.Equal(t, "bronze", p.Requirements[0].Tier)
		assert.Equal(t, "gold", p.Requirements[2].Tier)
		assert.Equal(t, []string{"5% cashback on all purchases", "Priority support"},
			p.Benefits.For("gold"))
		require.NotNil(t, p.MinSpending)
		assert.True(t, p.MinSpending.IsZero())
		assert.Nil(t, p.MaxSpending)
	}
}

func TestLoyaltyRepository_FindActiveStatus(t *testing.T) {
	repo, ctx, cancel, pool := setupRepo(t, NewLoyaltyRepository)
	defer cancel()
	require.NoError(t, loadFixtureFile(pool, "./fixtures/loyalty_programs.sql"))
	require.NoError(t, loadFixtureFile(pool, "./fixtures/loyalty_status.sql"))

	tests := []struct {
		wantErr error
		name    string
		userID  string
		tier    string
	}{
		{
			name:   "enrolled user",
			userID: "loyal-1",
			tier:   "silver",
		},
		{
			name:    "unknown user",
			userID:  "stranger",
			wantErr: serviceerrs.ErrNotEnrolled,
		},
		{
			name:    "program was switched off",
			userID:  "retired-1",
			wantErr: serviceerrs.ErrNotEnrolled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := repo.FindActiveStatus(ctx, tt.userID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, serviceerrs.ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tier, status.CurrentTier)
			assert.Equal(t, "Gold Rewards", status.Program.Name)
			assert.Equal(t, "1200", status.TotalSpending.String())
			require.NotNil(t, status.TierExpiryDate)
		})
	}
}

func TestLoyaltyRepository_UpgradeTier(t *testing.T) {
	repo, ctx, cancel, pool := setupRepo(t, NewLoyaltyRepository)
	defer cancel()
	require.NoError(t, loadFixtureFile(pool, "./fixtures/loyalty_programs.sql"))
	require.NoError(t, loadFixtureFile(pool, "./fixtures/loyalty_status.sql"))

	steps := []struct {
		name     string
		spending string
		previous string
		tier     string
		upgraded bool
	}{
		{name: "not enough for silver", spending: "500", previous: "bronze", tier: "bronze"},
		{name: "reaches silver", spending: "1500", previous: "bronze", tier: "silver", upgraded: true},
		{name: "same spending again", spending: "1500", previous: "silver", tier: "silver"},
		{name: "jumps to gold", spending: "6000.50", previous: "silver", tier: "gold", upgraded: true},
		{name: "falls back to bronze", spending: "200", previous: "gold", tier: "bronze", upgraded: true},
	}
	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			spending := decimal.RequireFromString(step.spending)
			res, err := repo.UpgradeTier(ctx, "upgrade-1", spending)
			require.NoError(t, err)
			assert.Equal(t, step.upgraded, res.Upgraded)
			assert.Equal(t, step.previous, res.PreviousTier)
			assert.Equal(t, step.tier, res.NewTier)
			assert.Equal(t, step.tier, res.Status.CurrentTier)

			stored, err := repo.FindActiveStatus(ctx, "upgrade-1")
			require.NoError(t, err)
			assert.Equal(t, step.tier, stored.CurrentTier)
			if step.upgraded {
				assert.Equal(t, model.RoundMoney(spending).String(), stored.TotalSpending.String())
				assert.Equal(t, model.RoundMoney(spending).String(), stored.TierProgress.String())
			}
		})
	}

	rewards := NewRewardRepository(pool, repo.log)
	page, err := rewards.History(ctx, reward.HistoryFilter{
		UserID:     "upgrade-1",
		ActionType: reward.ActionTierUpgrade,
		Page:       model.Page{Number: 1, Limit: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Entries, 3)
	assert.Equal(t, "gold", page.Entries[0].Metadata["previousTier"])
	assert.Equal(t, "bronze", page.Entries[0].Metadata["newTier"])

	_, err = repo.UpgradeTier(ctx, "stranger", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, serviceerrs.ErrNotEnrolled)
}

func TestLoyaltyRepository_Enroll(t *testing.T) {
	repo, ctx, cancel, pool := setupRepo(t, NewLoyaltyRepository)
	defer cancel()
	require.NoError(t, loadFixtureFile(pool, "./fixtures/loyalty_programs.sql"))

	tests := []struct {
		wantErr   error
		name      string
		userID    string
		tier      string
		programID int64
		anyErr    bool
	}{
		{
			name:      "enters at the lowest tier",
			userID:    "newcomer-1",
			programID: 1,
			tier:      "bronze",
		},
		{
			name:      "second enrollment",
			userID:    "newcomer-1",
			programID: 1,
			wantErr:   serviceerrs.ErrAlreadyEnrolled,
		},
		{
			name:      "inactive program",
			userID:    "newcomer-2",
			programID: 2,
			wantErr:   serviceerrs.ErrProgramNotFound,
		},
		{
			name:      "unknown program",
			userID:    "newcomer-2",
			programID: 999,
			wantErr:   serviceerrs.ErrProgramNotFound,
		},
		{
			name:      "program without tiers",
			userID:    "newcomer-3",
			programID: 3,
			anyErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := repo.Enroll(ctx, tt.userID, tt.programID)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.tier, status.CurrentTier)
				assert.Equal(t, tt.userID, status.UserID)
				assert.Equal(t, tt.programID, status.Program.ID)
				assert.True(t, status.TotalSpending.IsZero())
				assert.NotNil(t, status.TierAchievedDate)
			}
		})
	}
}
