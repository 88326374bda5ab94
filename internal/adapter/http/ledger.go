package httpadapter

import (
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type overviewResponse struct {
	Address         common.Address  `json:"address"`
	Owner           common.Address  `json:"owner"`
	Registry        common.Address  `json:"registry"`
	CampaignCounter int64           `json:"campaign_counter"`
	ArchiveCounter  int64           `json:"archive_counter"`
	HighestDonor    *common.Address `json:"highest_donor,omitempty"`
	HighestDonation decimal.Decimal `json:"highest_donation"`
}

type payoutResponse struct {
	ID         int64           `json:"id"`
	CampaignID int64           `json:"campaign_id"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}

// handleOverview returns the ledger configuration, its id counters and the
// highest donation seen so far. highest_donor is omitted until a donation
// has been accepted.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Overview(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := overviewResponse{
		Address:         o.State.Address,
		Owner:           o.State.Owner,
		Registry:        o.State.Registry,
		CampaignCounter: o.Counters.CampaignID,
		ArchiveCounter:  o.Counters.ArchiveID,
		HighestDonation: o.Highest.Amount,
	}
	if o.Highest.Amount.IsPositive() {
		donor := o.Highest.Donor
		resp.HighestDonor = &donor
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePayouts(w http.ResponseWriter, r *http.Request) {
	account, ok := accountParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid account"})
		return
	}
	payouts, err := h.svc.Payouts(r.Context(), account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]payoutResponse, 0, len(payouts))
	for _, p := range payouts {
		resp = append(resp, payoutResponse{
			ID:         p.ID,
			CampaignID: p.CampaignID,
			Amount:     p.Amount,
			CreatedAt:  p.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
