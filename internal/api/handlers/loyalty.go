package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/talx-hub/gopher-rewards/internal/api/dto"
	"github.com/talx-hub/gopher-rewards/internal/model/loyalty"
)

type LoyaltyRepository interface {
	ListActivePrograms(ctx context.Context) ([]loyalty.Program, error)
	FindActiveStatus(ctx context.Context, userID string) (loyalty.Status, error)
	UpgradeTier(ctx context.Context, userID string, totalSpending decimal.Decimal) (loyalty.Upgrade, error)
	Enroll(ctx context.Context, userID string, programID int64) (loyalty.Status, error)
}

type LoyaltyHandler struct {
	repo LoyaltyRepository
	baseHandler
}

func NewLoyaltyHandler(repo LoyaltyRepository, log *slog.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		baseHandler: baseHandler{logger: log},
		repo:        repo,
	}
}

func (h *LoyaltyHandler) GetLoyaltyPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.repo.ListActivePrograms(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "Internal server error while getting loyalty program")
		return
	}
	dto.WriteData(r.Context(), h.log(r), w, http.StatusOK, dto.NewProgramsResponse(programs))
}

func (h *LoyaltyHandler) GetLoyaltyStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := resolveUserID(r, chi.URLParam(r, "userId"))
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}

	status, err := h.repo.FindActiveStatus(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err, "Internal server error in getLoyaltyStatus")
		return
	}
	dto.WriteData(r.Context(), h.log(r), w, http.StatusOK, dto.NewStatusResponse(status))
}

func (h *LoyaltyHandler) UpgradeTier(w http.ResponseWriter, r *http.Request) {
	userID, err := resolveUserID(r, chi.URLParam(r, "userId"))
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	var req dto.UpgradeRequest
	if err = decodeBody(w, r, &req); err != nil {
		h.writeDecodeError(w, r, err)
		return
	}
	spending, err := req.Spending()
	if err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	upgrade, err := h.repo.UpgradeTier(r.Context(), userID, spending)
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to upgrade tier")
		return
	}
	dto.WriteData(r.Context(), h.log(r), w, http.StatusOK, dto.NewUpgradeResponse(upgrade))
}

func (h *LoyaltyHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	userID, err := resolveUserID(r, chi.URLParam(r, "userId"))
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	var req dto.EnrollRequest
	if err = decodeBody(w, r, &req); err != nil {
		h.writeDecodeError(w, r, err)
		return
	}
	if err = req.IsValid(); err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	status, err := h.repo.Enroll(r.Context(), userID, req.ProgramID)
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to enroll user")
		return
	}
	dto.WriteData(r.Context(), h.log(r), w, http.StatusCreated, dto.NewStatusResponse(status))
}
