package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/talx-hub/gopher-rewards/internal/api/handlers/mocks"
	"github.com/talx-hub/gopher-rewards/internal/model"
	"github.com/talx-hub/gopher-rewards/internal/model/loyalty"
	"github.com/talx-hub/gopher-rewards/internal/model/reward"
	"github.com/talx-hub/gopher-rewards/internal/serviceerrs"
)

var (
	processedAt = time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	tierExpiry  = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
)

const redemptionID = "0d4a4c5e-3f3c-4c55-9a57-8d2c0c7d2a11"

func TestRewardHandler_GetRewardSummary(t *testing.T) {
	fixtures := loadResponseFixtures(t, "testdata/reward.json")

	repo := mocks.NewMockRewardRepository(t)
	repo.EXPECT().
		Summary(mock.Anything, "user-1").
		Return(reward.Summary{
			UserID:        "user-1",
			TotalEarned:   1000,
			Available:     600,
			TotalRedeemed: 300,
			Expired:       100,
			ExpiringSoon:  1,
			Loyalty: &loyalty.Snapshot{
				CurrentTier:    "silver",
				TierProgress:   decimal.NewFromInt(1200),
				TierExpiryDate: &tierExpiry,
				ProgramName:    "Gold Rewards",
			},
		}, nil)
	repo.EXPECT().
		Summary(mock.Anything, "user-2").
		Return(reward.Summary{UserID: "user-2"}, nil)
	repo.EXPECT().
		Summary(mock.Anything, "user-3").
		Return(reward.Summary{}, errors.New("connection reset"))

	h := NewRewardHandler(repo, testLogger())

	tests := []struct {
		name     string
		req      testRequest
		fixture  string
		wantCode int
	}{
		{
			name:     "path user",
			req:      testRequest{urlParams: map[string]string{"userId": "user-1"}},
			fixture:  "summary",
			wantCode: http.StatusOK,
		},
		{
			name:     "authenticated user",
			req:      testRequest{userID: "user-2"},
			fixture:  "summary without enrollment",
			wantCode: http.StatusOK,
		},
		{
			name:     "no identity",
			req:      testRequest{},
			fixture:  "unauthorized",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "store failure",
			req:      testRequest{urlParams: map[string]string{"userId": "user-3"}},
			fixture:  "summary failure",
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.method = http.MethodGet
			tt.req.target = "/api/v1/rewards/x"
			serveAndCheck(t, h.GetRewardSummary, tt.req.build(), fixtures, tt.fixture, tt.wantCode)
		})
	}
}

func TestRewardHandler_Redeem(t *testing.T) {
	fixtures := loadResponseFixtures(t, "testdata/reward.json")

	repo := mocks.NewMockRewardRepository(t)
	repo.EXPECT().
		Redeem(mock.Anything, mock.MatchedBy(func(req reward.RedeemRequest) bool {
			return req.UserID == "user-1" && req.Points == 250
		})).
		Return(reward.Redemption{
			ID:          redemptionID,
			UserID:      "user-1",
			Type:        "CASH",
			Status:      reward.RedemptionCompleted,
			PointsUsed:  250,
			CashValue:   model.CashValue(250),
			ProcessedAt: processedAt,
			CreatedAt:   processedAt,
		}, nil)
	repo.EXPECT().
		Redeem(mock.Anything, mock.MatchedBy(func(req reward.RedeemRequest) bool {
			return req.UserID == "user-poor"
		})).
		Return(reward.Redemption{}, &serviceerrs.InsufficientPointsError{Available: 100, Requested: 250})

	h := NewRewardHandler(repo, testLogger())

	tests := []struct {
		name     string
		req      testRequest
		fixture  string
		wantCode int
	}{
		{
			name: "user in body",
			req: testRequest{
				body: `{"userId":"user-1","pointsToRedeem":250,"redemptionType":"CASH"}`,
			},
			fixture:  "redeemed",
			wantCode: http.StatusCreated,
		},
		{
			name: "authenticated user",
			req: testRequest{
				body:   `{"pointsToRedeem":250,"redemptionType":"CASH","redemptionDetails":{"iban":"DE00"}}`,
				userID: "user-1",
			},
			fixture:  "redeemed",
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing type",
			req:      testRequest{body: `{"userId":"user-1","pointsToRedeem":250}`},
			fixture:  "missing fields",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no identity",
			req:      testRequest{body: `{"pointsToRedeem":250,"redemptionType":"CASH"}`},
			fixture:  "unauthorized",
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "insufficient points",
			req: testRequest{
				body: `{"userId":"user-poor","pointsToRedeem":250,"redemptionType":"CASH"}`,
			},
			fixture:  "insufficient points",
			wantCode: http.StatusPaymentRequired,
		},
		{
			name:     "empty body",
			req:      testRequest{userID: "user-1"},
			fixture:  "empty body",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "wrong types",
			req:      testRequest{body: `{"pointsToRedeem":"many","redemptionType":"CASH"}`},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "body too large",
			req: testRequest{
				body: `{"redemptionType":"` + strings.Repeat("x", 17<<10) + `"}`,
			},
			fixture:  "body too large",
			wantCode: http.StatusRequestEntityTooLarge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.method = http.MethodPost
			tt.req.target = "/api/v1/rewards/redeem"
			serveAndCheck(t, h.Redeem, tt.req.build(), fixtures, tt.fixture, tt.wantCode)
		})
	}
}

func TestRewardHandler_Earn(t *testing.T) {
	fixtures := loadResponseFixtures(t, "testdata/reward.json")
	expiry := processedAt.AddDate(1, 0, 0)

	repo := mocks.NewMockRewardRepository(t)
	repo.EXPECT().
		Earn(mock.Anything, mock.MatchedBy(func(req reward.EarnRequest) bool {
			return req.UserID == "user-1" && req.Points == 500 && req.ExpiryDate == nil
		})).
		Return(reward.Lot{
			ID:         7,
			UserID:     "user-1",
			Earned:     500,
			Available:  500,
			ExpiryDate: &expiry,
			CreatedAt:  processedAt,
		}, nil).
		Once()

	h := NewRewardHandler(repo, testLogger())

	tests := []struct {
		name     string
		req      testRequest
		fixture  string
		wantCode int
	}{
		{
			name:     "default expiry",
			req:      testRequest{body: `{"points":500}`, userID: "user-1"},
			fixture:  "earned",
			wantCode: http.StatusCreated,
		},
		{
			name:     "no points",
			req:      testRequest{body: `{"points":0}`, userID: "user-1"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no identity",
			req:      testRequest{body: `{"points":10}`},
			fixture:  "unauthorized",
			wantCode: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.method = http.MethodPost
			tt.req.target = "/api/v1/rewards/earn"
			serveAndCheck(t, h.Earn, tt.req.build(), fixtures, tt.fixture, tt.wantCode)
		})
	}
}

func TestRewardHandler_GetRewardHistory(t *testing.T) {
	fixtures := loadResponseFixtures(t, "testdata/reward.json")
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	repo := mocks.NewMockRewardRepository(t)
	repo.EXPECT().
		History(mock.Anything, mock.MatchedBy(func(f reward.HistoryFilter) bool {
			return f.UserID == "user-1" &&
				f.ActionType == reward.ActionPointsRedeemed &&
				f.Page == model.Page{Number: 2, Limit: 2} &&
				f.From != nil && f.From.Equal(from) &&
				f.To == nil
		})).
		Return(reward.HistoryPage{
			Total: 5,
			Entries: []reward.HistoryEntry{
				{
					ID:             "6c0f1d8e-1d7c-4b0e-9b4b-3c1e9f0a5b21",
					UserID:         "user-1",
					ActionType:     reward.ActionPointsRedeemed,
					PointsChange:   -250,
					CashbackChange: decimal.Zero,
					Description:    "Redeemed 250 points for CASH",
					Metadata:       map[string]any{"redemptionId": redemptionID},
					CreatedAt:      processedAt,
				},
			},
		}, nil)

	h := NewRewardHandler(repo, testLogger())

	tests := []struct {
		name     string
		target   string
		fixture  string
		wantCode int
	}{
		{
			name:     "filtered page",
			target:   "/api/v1/rewards/user-1/history?page=2&limit=2&action_type=POINTS_REDEEMED&start_date=2025-01-01",
			fixture:  "history",
			wantCode: http.StatusOK,
		},
		{
			name:     "invalid page",
			target:   "/api/v1/rewards/user-1/history?page=0",
			fixture:  "invalid page",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "page past the last addressable row",
			target:   "/api/v1/rewards/user-1/history?page=30000000&limit=100",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid date",
			target:   "/api/v1/rewards/user-1/history?end_date=soon",
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest{
				method:    http.MethodGet,
				target:    tt.target,
				urlParams: map[string]string{"userId": "user-1"},
			}
			serveAndCheck(t, h.GetRewardHistory, req.build(), fixtures, tt.fixture, tt.wantCode)
		})
	}
}
