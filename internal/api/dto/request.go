package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/talx-hub/gopher-rewards/internal/model"
	"github.com/talx-hub/gopher-rewards/internal/model/cashback"
	"github.com/talx-hub/gopher-rewards/internal/model/reward"
)

// MaxBodyBytes bounds every JSON request body.
const MaxBodyBytes = 16 << 10

type RedeemRequest struct {
	RedemptionDetails map[string]any `json:"redemptionDetails,omitempty"`
	UserID            string         `json:"userId,omitempty"`
	RedemptionType    string         `json:"redemptionType"`
	PointsToRedeem    int64          `json:"pointsToRedeem"`
}

func (r *RedeemRequest) IsValid() error {
	if r.PointsToRedeem == 0 || r.RedemptionType == "" {
		return errors.New("missing required fields: pointsToRedeem, redemptionType")
	}
	if r.PointsToRedeem < 0 {
		return errors.New("pointsToRedeem must be a positive integer")
	}
	return nil
}

func (r *RedeemRequest) ToModel(userID string) reward.RedeemRequest {
	return reward.RedeemRequest{
		Details: r.RedemptionDetails,
		UserID:  userID,
		Type:    r.RedemptionType,
		Points:  r.PointsToRedeem,
	}
}

type EarnRequest struct {
	ExpiryDays  *int   `json:"expiryDays,omitempty"`
	UserID      string `json:"userId,omitempty"`
	Description string `json:"description,omitempty"`
	Points      int64  `json:"points"`
}

func (r *EarnRequest) IsValid() error {
	var pointsErr, expiryErr error
	if r.Points < 1 {
		pointsErr = errors.New("points must be a positive integer")
	}
	if r.ExpiryDays != nil && *r.ExpiryDays < 1 {
		expiryErr = errors.New("expiryDays must be a positive integer")
	}
	return errors.Join(pointsErr, expiryErr)
}

func (r *EarnRequest) ToModel(userID string, now time.Time) reward.EarnRequest {
	req := reward.EarnRequest{
		UserID:      userID,
		Description: r.Description,
		Points:      r.Points,
	}
	if r.ExpiryDays != nil {
		expiry := now.AddDate(0, 0, *r.ExpiryDays)
		req.ExpiryDate = &expiry
	}
	return req
}

type CalculateRequest struct {
	UserID            string      `json:"userId,omitempty"`
	TransactionID     string      `json:"transactionId"`
	Category          string      `json:"category"`
	TransactionAmount json.Number `json:"transactionAmount"`
}

func (r *CalculateRequest) amount() (decimal.Decimal, error) {
	if r.TransactionAmount == "" {
		return decimal.Zero, errors.New("missing required field: transactionAmount")
	}
	amount, err := model.ParseMoney(r.TransactionAmount.String())
	if err != nil {
		return decimal.Zero, err //nolint: wrapcheck // message is shown to the client as is
	}
	if !amount.IsPositive() {
		return decimal.Zero, errors.New("transactionAmount must be positive")
	}
	return amount, nil
}

// ToModel validates the request. A persisted grant also needs the transaction id.
func (r *CalculateRequest) ToModel(userID string, forGrant bool) (cashback.Request, error) {
	amount, err := r.amount()
	if err != nil {
		return cashback.Request{}, err
	}
	if forGrant && r.TransactionID == "" {
		return cashback.Request{}, errors.New("missing required field: transactionId")
	}
	return cashback.Request{
		UserID:        userID,
		TransactionID: r.TransactionID,
		Category:      r.Category,
		Amount:        amount,
	}, nil
}

type UpgradeRequest struct {
	TotalSpending json.Number `json:"totalSpending"`
}

func (r *UpgradeRequest) Spending() (decimal.Decimal, error) {
	if r.TotalSpending == "" {
		return decimal.Zero, errors.New("total spending amount required")
	}
	spending, err := model.ParseMoney(r.TotalSpending.String())
	if err != nil {
		return decimal.Zero, err //nolint: wrapcheck // message is shown to the client as is
	}
	if spending.IsNegative() {
		return decimal.Zero, fmt.Errorf("total spending must not be negative, got %s", spending)
	}
	return spending, nil
}

type EnrollRequest struct {
	ProgramID int64 `json:"programId"`
}

func (r *EnrollRequest) IsValid() error {
	if r.ProgramID < 1 {
		return errors.New("missing required field: programId")
	}
	return nil
}
