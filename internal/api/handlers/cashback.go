package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/talx-hub/gopher-rewards/internal/api/dto"
	"github.com/talx-hub/gopher-rewards/internal/model/cashback"
)

type CashbackRepository interface {
	Calculate(ctx context.Context, req cashback.Request) (cashback.Calculation, error)
	Grant(ctx context.Context, req cashback.Request) (cashback.Transaction, error)
	Summary(ctx context.Context, userID string) (cashback.Summary, error)
	ListTransactions(ctx context.Context, f cashback.TransactionFilter) (cashback.TransactionPage, error)
}

type CashbackHandler struct {
	repo CashbackRepository
	baseHandler
}

func NewCashbackHandler(repo CashbackRepository, log *slog.Logger) *CashbackHandler {
	return &CashbackHandler{
		baseHandler: baseHandler{logger: log},
		repo:        repo,
	}
}

func (h *CashbackHandler) decodeRequest(w http.ResponseWriter, r *http.Request, forGrant bool,
) (cashback.Request, bool) {
	var req dto.CalculateRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeDecodeError(w, r, err)
		return cashback.Request{}, false
	}
	userID, err := resolveUserID(r, req.UserID)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return cashback.Request{}, false
	}
	m, err := req.ToModel(userID, forGrant)
	if err != nil {
		h.writeValidationError(w, r, err)
		return cashback.Request{}, false
	}
	return m, true
}

func (h *CashbackHandler) CalculateCashback(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r, false)
	if !ok {
		return
	}

	calc, err := h.repo.Calculate(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to calculate cashback")
		return
	}
	dto.WriteData(r.Context(), h.log(r), w, http.StatusOK, dto.NewCalculateResponse(calc))
}

func (h *CashbackHandler) GrantCashback(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r, true)
	if !ok {
		return
	}

	tr, err := h.repo.Grant(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to grant cashback")
		return
	}
	dto.WriteData(r.Context(), h.log(r), w, http.StatusCreated, dto.NewCashbackTransaction(tr))
}

func (h *CashbackHandler) GetCashbackSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := resolveUserID(r, chi.URLParam(r, "userId"))
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}

	summary, err := h.repo.Summary(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err, "Internal server error while getting cashback summary")
		return
	}
	dto.WriteData(r.Context(), h.log(r), w, http.StatusOK, dto.NewCashbackSummaryResponse(summary))
}

func (h *CashbackHandler) GetCashbackTransactions(w http.ResponseWriter, r *http.Request) {
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
	campaignID, err := dto.ParseCampaignID(q)
	if err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	transactions, err := h.repo.ListTransactions(r.Context(), cashback.TransactionFilter{
		UserID:     userID,
		Status:     cashback.Status(q.Get("status")),
		CampaignID: campaignID,
		From:       from,
		To:         to,
		Page:       page,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "Internal server error while getting cashback history")
		return
	}
	dto.WriteData(r.Context(), h.log(r), w, http.StatusOK,
		dto.NewCashbackTransactionsResponse(transactions, page))
}
