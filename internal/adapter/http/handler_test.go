package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/core/port"
)

var (
	owner   = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	vitalik = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	joe     = common.HexToAddress("0x00000000000000000000000000000000000000b2")

	ledgerAddress   = common.HexToAddress("0x0000000000000000000000000000000000001001")
	registryAddress = common.HexToAddress("0x0000000000000000000000000000000000001002")
)

const fiveEth = "5000000000000000000"

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	store := memory.NewStore()
	registry := usecase.NewAwardRegistry(usecase.RegistryIdentity{
		Address: registryAddress,
		Name:    "DonationAwardContract",
		Symbol:  "DWNFT",
	}, memory.NewAwardRepository(store), store, nil, nil)
	ledger := usecase.NewLedger(ledgerAddress, usecase.LedgerDeps{
		Repo:            memory.NewLedgerRepository(store),
		Payouts:         memory.NewPayoutRepository(store),
		Registry:        registry,
		RegistryAddress: registryAddress,
		Tx:              store,
	})
	_, err := usecase.Deploy(context.Background(), registry, ledger, owner)
	require.NoError(t, err)
	return NewHandler(ledger, registry, prometheus.NewRegistry(), nil)
}

func do(t *testing.T, h *Handler, method, path string, caller *common.Address, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if caller != nil {
		req.Header.Set(AccountHeader, caller.Hex())
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}

func campaignBody() map[string]any {
	return map[string]any{
		"name":         "New Campaign",
		"description":  "Campaign to help all kids across the world",
		"time_goal":    time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
		"money_goal":   "3000000000000000000",
		"metadata_uri": "ipfs://award",
		"manager":      joe.Hex(),
	}
}

func TestCampaignLifecycle(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns", &owner, campaignBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, int64(1), decode[createCampaignResponse](t, rec).ID)

	rec = do(t, h, http.MethodGet, "/api/v1/campaigns/1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	c := decode[campaignResponse](t, rec)
	assert.Equal(t, "IN_PROGRESS", c.Status)
	assert.Equal(t, joe, c.Manager)
	assert.True(t, c.Balance.IsZero())

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/1/donations", &vitalik, map[string]string{"amount": fiveEth})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	d := decode[donationResponse](t, rec)
	assert.Equal(t, "COMPLETED", d.Status)
	assert.True(t, d.Awarded)
	assert.Equal(t, int64(1), d.TokenID)

	rec = do(t, h, http.MethodGet, "/api/v1/awards/1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tok := decode[tokenResponse](t, rec)
	assert.Equal(t, vitalik, tok.Owner)
	assert.Equal(t, "ipfs://award", tok.MetadataURI)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/1/withdrawal", &joe, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	wd := decode[withdrawalResponse](t, rec)
	assert.Equal(t, int64(1), wd.ArchiveID)
	assert.Equal(t, joe, wd.Recipient)
	assert.Equal(t, fiveEth, wd.Amount.String())

	rec = do(t, h, http.MethodGet, "/api/v1/campaigns/1", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CampaignNotFound", decode[errorResponse](t, rec).Error)

	rec = do(t, h, http.MethodGet, "/api/v1/campaigns/1/status", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[statusResponse](t, rec)
	assert.Equal(t, "NOT_FOUND", st.Status)
	assert.Zero(t, st.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/archive/1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	a := decode[archivedCampaignResponse](t, rec)
	assert.Equal(t, "ARCHIVED", a.Campaign.Status)
	assert.Equal(t, "New Campaign", a.Campaign.Name)

	rec = do(t, h, http.MethodGet, "/api/v1/accounts/"+joe.Hex()+"/payouts", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	payouts := decode[[]payoutResponse](t, rec)
	require.Len(t, payouts, 1)
	assert.Equal(t, fiveEth, payouts[0].Amount.String())

	rec = do(t, h, http.MethodGet, "/api/v1/ledger", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	o := decode[overviewResponse](t, rec)
	assert.Equal(t, owner, o.Owner)
	assert.Equal(t, registryAddress, o.Registry)
	assert.Equal(t, int64(1), o.CampaignCounter)
	assert.Equal(t, int64(1), o.ArchiveCounter)
	require.NotNil(t, o.HighestDonor)
	assert.Equal(t, vitalik, *o.HighestDonor)

	rec = do(t, h, http.MethodGet, "/api/v1/awards", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	reg := decode[registryResponse](t, rec)
	assert.Equal(t, "DWNFT", reg.Symbol)
	assert.Equal(t, ledgerAddress, reg.Owner)
	assert.Equal(t, int64(1), reg.Tokens)
}

func TestManagerDefaultsToCaller(t *testing.T) {
	h := newTestHandler(t)
	body := campaignBody()
	delete(body, "manager")

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns", &owner, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/v1/campaigns/1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, owner, decode[campaignResponse](t, rec).Manager)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		caller   *common.Address
		body     any
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing caller",
			method:   http.MethodPost,
			path:     "/api/v1/campaigns",
			body:     campaignBody(),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "caller not admin",
			method:   http.MethodPost,
			path:     "/api/v1/campaigns",
			caller:   &vitalik,
			body:     campaignBody(),
			wantCode: http.StatusForbidden,
			wantErr:  "CallerNotAdmin",
		},
		{
			name:     "invalid money goal",
			method:   http.MethodPost,
			path:     "/api/v1/campaigns",
			caller:   &owner,
			body:     func() map[string]any { b := campaignBody(); b["money_goal"] = "0"; return b }(),
			wantCode: http.StatusBadRequest,
			wantErr:  "InvalidMoneyGoal",
		},
		{
			name:     "zero manager",
			method:   http.MethodPost,
			path:     "/api/v1/campaigns",
			caller:   &owner,
			body:     func() map[string]any { b := campaignBody(); b["manager"] = common.Address{}.Hex(); return b }(),
			wantCode: http.StatusBadRequest,
			wantErr:  "InvalidAccount",
		},
		{
			name:     "fractional donation",
			method:   http.MethodPost,
			path:     "/api/v1/campaigns/98765/donations",
			caller:   &vitalik,
			body:     map[string]string{"amount": "0.5"},
			wantCode: http.StatusBadRequest,
			wantErr:  "amount must be a whole number of wei",
		},
		{
			name:     "malformed body",
			method:   http.MethodPost,
			path:     "/api/v1/campaigns",
			caller:   &owner,
			body:     map[string]any{"unknown": true},
			wantCode: http.StatusBadRequest,
			wantErr:  "invalid JSON",
		},
		{
			name:     "donation to unknown campaign",
			method:   http.MethodPost,
			path:     "/api/v1/campaigns/98765/donations",
			caller:   &vitalik,
			body:     map[string]string{"amount": "1"},
			wantCode: http.StatusNotFound,
			wantErr:  "CampaignNotFound",
		},
		{
			name:     "invalid id",
			method:   http.MethodGet,
			path:     "/api/v1/campaigns/abc",
			wantCode: http.StatusBadRequest,
			wantErr:  "invalid id",
		},
		{
			name:     "revoke by non-owner",
			method:   http.MethodDelete,
			path:     "/api/v1/admins/" + joe.Hex(),
			caller:   &vitalik,
			wantCode: http.StatusForbidden,
			wantErr:  "CallerNotOwner",
		},
		{
			name:     "owner cannot be revoked",
			method:   http.MethodDelete,
			path:     "/api/v1/admins/" + owner.Hex(),
			caller:   &owner,
			wantCode: http.StatusConflict,
			wantErr:  "OwnerCannotBeRevoked",
		},
		{
			name:     "unknown token",
			method:   http.MethodGet,
			path:     "/api/v1/awards/7",
			wantCode: http.StatusNotFound,
			wantErr:  "TokenNotFound",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler(t)
			rec := do(t, h, tc.method, tc.path, tc.caller, tc.body)
			require.Equal(t, tc.wantCode, rec.Code, rec.Body.String())
			if tc.wantErr != "" {
				assert.Equal(t, tc.wantErr, decode[errorResponse](t, rec).Error)
			}
		})
	}
}

func TestWithdrawInProgressConflicts(t *testing.T) {
	h := newTestHandler(t)
	rec := do(t, h, http.MethodPost, "/api/v1/campaigns", &owner, campaignBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/1/withdrawal", &joe, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CampaignInProgress", decode[errorResponse](t, rec).Error)
}

func TestAdminRoutes(t *testing.T) {
	h := newTestHandler(t)
	path := "/api/v1/admins/" + vitalik.Hex()

	rec := do(t, h, http.MethodPut, path, &owner, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, path, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[adminResponse](t, rec).Admin)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns", &vitalik, campaignBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodDelete, path, &owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, path, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[adminResponse](t, rec).Admin)

	rec = do(t, h, http.MethodGet, "/api/v1/admins/not-an-address", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// failingLedger fails every overview with an unexpected error.
type failingLedger struct {
	port.LedgerUseCase
}

func (failingLedger) Overview(context.Context) (*port.LedgerOverview, error) {
	return nil, errors.New("connection reset")
}

func TestInternalErrorsAreHidden(t *testing.T) {
	h := NewHandler(failingLedger{}, nil, nil, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/ledger", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", decode[errorResponse](t, rec).Error)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodGet, "/api/v1/campaigns/1/status", nil, nil)

	rec := do(t, h, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `crowdfund_http_requests_total{code="200",method="GET",route="/api/v1/campaigns/{id}/status"} 1`), body)
}

func TestDonationAmountAcceptsNumbers(t *testing.T) {
	h := newTestHandler(t)
	rec := do(t, h, http.MethodPost, "/api/v1/campaigns", &owner, campaignBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/1/donations", &vitalik, map[string]any{"amount": 1000})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decimal.NewFromInt(1000).Equal(decode[donationResponse](t, rec).Balance))
}
