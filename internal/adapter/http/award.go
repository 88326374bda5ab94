package httpadapter

import (
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type registryResponse struct {
	Address common.Address `json:"address"`
	Name    string         `json:"name"`
	Symbol  string         `json:"symbol"`
	Owner   common.Address `json:"owner"`
	Tokens  int64          `json:"tokens"`
}

type tokenResponse struct {
	ID          int64          `json:"id"`
	Owner       common.Address `json:"owner"`
	MetadataURI string         `json:"metadata_uri"`
	MintedAt    time.Time      `json:"minted_at"`
}

func (h *Handler) handleAwards(w http.ResponseWriter, r *http.Request) {
	st, err := h.registry.State(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	count, err := h.registry.TokenCount(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, registryResponse{
		Address: st.Address,
		Name:    st.Name,
		Symbol:  st.Symbol,
		Owner:   st.Owner,
		Tokens:  count,
	})
}

func (h *Handler) handleAward(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	tok, err := h.registry.Token(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{
		ID:          tok.ID,
		Owner:       tok.Owner,
		MetadataURI: tok.MetadataURI,
		MintedAt:    tok.MintedAt,
	})
}
