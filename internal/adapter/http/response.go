package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

// AccountHeader carries the account a request acts for. Authenticating it
// is left to whatever sits in front of the service.
const AccountHeader = "X-Account"

type callerKey struct{}

type errorResponse struct {
	Error string `json:"error"`
}

// requireCaller rejects requests without a valid AccountHeader and stores the
// parsed account in the request context.
func (h *Handler) requireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(AccountHeader)
		if !common.IsHexAddress(raw) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing or invalid " + AccountHeader + " header"})
			return
		}
		ctx := context.WithValue(r.Context(), callerKey{}, common.HexToAddress(raw))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerFrom(ctx context.Context) common.Address {
	caller, _ := ctx.Value(callerKey{}).(common.Address)
	return caller
}

func accountParam(r *http.Request) (common.Address, bool) {
	raw := chi.URLParam(r, "account")
	if !common.IsHexAddress(raw) {
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// statusFor maps a ledger rejection onto an HTTP status.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindState:
		return http.StatusConflict
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports err to the client. Ledger rejections are exposed by
// code; anything else is logged and hidden behind a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		writeJSON(w, statusFor(de.Kind), errorResponse{Error: de.Code})
		return
	}
	h.logger.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// encoding should rarely fail and the status line is already out
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
