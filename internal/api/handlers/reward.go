package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/talx-hub/gopher-rewards/internal/api/dto"
	"github.com/talx-hub/gopher-rewards/internal/model/reward"
)

type RewardRepository interface {
	Summary(ctx context.Context, userID string) (reward.Summary, error)
	Redeem(ctx context.Context, req reward.RedeemRequest) (reward.Redemption, error)
	Earn(ctx context.Context, req reward.EarnRequest) (reward.Lot, error)
	History(ctx context.Context, f reward.HistoryFilter) (reward.HistoryPage, error)
}

type RewardHandler struct {
	repo RewardRepository
	baseHandler
}

func NewRewardHandler(repo RewardRepository, log *slog.Logger) *RewardHandler {
	return &RewardHandler{
		baseHandler: baseHandler{logger: log},
		repo:        repo,
	}
}

func (h *RewardHandler) GetRewardSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := resolveUserID(r, chi.URLParam(r, "userId"))
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}

	summary, err := h.repo.Summary(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err, "Internal server error while getting reward summary")
		return
	}
	dto.WriteData(r.Context(), h.log(r), w, http.StatusOK, dto.NewRewardSummaryResponse(summary))
}

func (h *RewardHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req dto.RedeemRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeDecodeError(w, r, err)
		return
	}
	if err := req.IsValid(); err != nil {
		h.writeValidationError(w, r, err)
		return
	}
	userID, err := resolveUserID(r, req.UserID)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}

	redemption, err := h.repo.Redeem(r.Context(), req.ToModel(userID))
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to process redemption")
		return
	}
	dto.WriteData(r.Context(), h.log(r), w, http.StatusCreated, dto.NewRedeemResponse(redemption))
}

func (h *RewardHandler) Earn(w http.ResponseWriter, r *http.Request) {
	var req dto.EarnRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeDecodeError(w, r, err)
		return
	}
	if err := req.IsValid(); err != nil {
		h.writeValidationError(w, r, err)
		return
	}
	userID, err := resolveUserID(r, req.UserID)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}

	lot, err := h.repo.Earn(r.Context(), req.ToModel(userID, time.Now().UTC()))
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to credit points")
		return
	}
	dto.WriteData(r.Context(), h.log(r), w, http.StatusCreated, dto.NewEarnResponse(lot))
}

func (h *RewardHandler) GetRewardHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := resolveUserID(r, chi.URLParam(r, "userId"))
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}

	q := r.URL.Query()
	page, err := dto.ParsePage(q)
	if err != nil {
		h.writeValidationError(w, r, err)
		return
	}
	from, to, err := dto.ParseDateRange(q)
	if err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	history, err := h.repo.History(r.Context(), reward.HistoryFilter{
		UserID:     userID,
		ActionType: reward.ActionType(q.Get("action_type")),
		From:       from,
		To:         to,
		Page:       page,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "Internal server error while getting reward history")
		return
	}
	dto.WriteData(r.Context(), h.log(r), w, http.StatusOK, dto.NewHistoryResponse(history, page))
}
