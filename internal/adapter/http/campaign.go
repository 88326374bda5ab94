package httpadapter

import (
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
)

type createCampaignRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	TimeGoal    time.Time       `json:"time_goal"`
	MoneyGoal   decimal.Decimal `json:"money_goal"`
	MetadataURI string          `json:"metadata_uri"`
	// Manager defaults to the caller when omitted.
	Manager *common.Address `json:"manager,omitempty"`
}

type createCampaignResponse struct {
	ID int64 `json:"id"`
}

type campaignResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	TimeGoal    time.Time       `json:"time_goal"`
	MoneyGoal   decimal.Decimal `json:"money_goal"`
	Balance     decimal.Decimal `json:"balance"`
	Manager     common.Address  `json:"manager"`
	MetadataURI string          `json:"metadata_uri"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		TimeGoal:    c.TimeGoal,
		MoneyGoal:   c.MoneyGoal,
		Balance:     c.Balance,
		Manager:     c.Manager,
		MetadataURI: c.MetadataURI,
		Status:      c.Status.String(),
		CreatedAt:   c.CreatedAt,
	}
}

type archivedCampaignResponse struct {
	ArchiveID  int64            `json:"archive_id"`
	Campaign   campaignResponse `json:"campaign"`
	ArchivedAt time.Time        `json:"archived_at"`
}

type statusResponse struct {
	ID     int64         `json:"id"`
	Status string        `json:"status"`
	Code   domain.Status `json:"code"`
}

// donateRequest carries an amount in wei. Fractional amounts are rejected.
type donateRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type donationResponse struct {
	CampaignID int64           `json:"campaign_id"`
	Balance    decimal.Decimal `json:"balance"`
	Status     string          `json:"status"`
	Awarded    bool            `json:"awarded"`
	TokenID    int64           `json:"token_id,omitempty"`
}

type withdrawalResponse struct {
	CampaignID int64           `json:"campaign_id"`
	ArchiveID  int64           `json:"archive_id"`
	Recipient  common.Address  `json:"recipient"`
	Amount     decimal.Decimal `json:"amount"`
}

// handleCreateCampaign decodes a createCampaignRequest and registers the
// campaign on behalf of the caller. It answers 201 with the new id.
// Malformed bodies give 400; ledger rejections are mapped by kind.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	caller := callerFrom(r.Context())
	manager := caller
	if req.Manager != nil {
		manager = *req.Manager
	}
	id, err := h.svc.CreateCampaign(r.Context(), caller, domain.NewCampaign{
		Name:        req.Name,
		Description: req.Description,
		TimeGoal:    req.TimeGoal,
		MoneyGoal:   req.MoneyGoal,
		MetadataURI: req.MetadataURI,
		Manager:     manager,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createCampaignResponse{ID: id})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	c, err := h.svc.Campaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(c))
}

// handleCampaignStatus never answers 404: ids without a live campaign
// report NOT_FOUND.
func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	status, err := h.svc.CampaignStatus(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{ID: id, Status: status.String(), Code: status})
}

func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	var req donateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	if !req.Amount.IsInteger() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "amount must be a whole number of wei"})
		return
	}
	receipt, err := h.svc.Donate(r.Context(), callerFrom(r.Context()), id, req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, donationResponse{
		CampaignID: receipt.CampaignID,
		Balance:    receipt.Balance,
		Status:     receipt.Status.String(),
		Awarded:    receipt.Awarded,
		TokenID:    receipt.TokenID,
	})
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	receipt, err := h.svc.WithdrawFunds(r.Context(), callerFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, withdrawalResponse{
		CampaignID: receipt.CampaignID,
		ArchiveID:  receipt.ArchiveID,
		Recipient:  receipt.Recipient,
		Amount:     receipt.Amount,
	})
}

func (h *Handler) handleGetArchived(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	a, err := h.svc.ArchivedCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, archivedCampaignResponse{
		ArchiveID:  a.ArchiveID,
		Campaign:   newCampaignResponse(&a.Campaign),
		ArchivedAt: a.ArchivedAt,
	})
}
