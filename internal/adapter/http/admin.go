package httpadapter

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
)

type adminResponse struct {
	Account common.Address `json:"account"`
	Admin   bool           `json:"admin"`
}

// handleAssignAdmin adds the {account} path parameter to the admin set on
// behalf of the caller. Only the owner succeeds; anyone else gets 403.
func (h *Handler) handleAssignAdmin(w http.ResponseWriter, r *http.Request) {
	account, ok := accountParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid account"})
		return
	}
	if err := h.svc.AssignAdmin(r.Context(), callerFrom(r.Context()), account); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, adminResponse{Account: account, Admin: true})
}

func (h *Handler) handleRevokeAdmin(w http.ResponseWriter, r *http.Request) {
	account, ok := accountParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid account"})
		return
	}
	if err := h.svc.RevokeAdmin(r.Context(), callerFrom(r.Context()), account); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, adminResponse{Account: account, Admin: false})
}

func (h *Handler) handleIsAdmin(w http.ResponseWriter, r *http.Request) {
	account, ok := accountParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid account"})
		return
	}
	admin, err := h.svc.IsAdmin(r.Context(), account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, adminResponse{Account: account, Admin: admin})
}
