package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"affiliate-escrow/internal/config/configs"
	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"
	"affiliate-escrow/internal/core/port/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	owner      = domain.DeriveAddress([]byte("owner"))
	influencer = domain.DeriveAddress([]byte("influencer"))
	buyer      = domain.DeriveAddress([]byte("buyer"))
	nft        = domain.DeriveAddress([]byte("nft"))
	campaignID = domain.CampaignAddress("drop")
	linkID     = domain.AffiliateLinkAddress(influencer, "drop")
)

func newTestHandler(t *testing.T, opts ...HandlerOption) (*mocks.MockEscrowUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockEscrowUseCase(t)
	h := NewHandler(svc, slog.New(slog.DiscardHandler), opts...)
	return svc, h.Router()
}

func do(t *testing.T, h http.Handler, method, path string, signer *domain.Address, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if signer != nil {
		req.Header.Set(SignerHeader, signer.String())
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateCampaign(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().CreateCampaign(mock.Anything, port.CreateCampaignReq{
		Name:                 "drop",
		MintPrice:            1_000_000,
		CommissionPercentage: 10,
		Details:              "limited",
		Owner:                owner,
		Asset:                nft,
	}).Return(&port.CampaignCreated{CampaignID: campaignID, VaultID: domain.EscrowAddress(campaignID)}, nil).Once()

	body := fmt.Sprintf(`{"name":"drop","mint_price":1000000,"commission_percentage":10,"details":"limited","asset":%q}`, nft)
	rec := do(t, h, http.MethodPost, "/api/v1/campaigns", &owner, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, campaignID.String(), out["campaign_id"])
	assert.Equal(t, domain.EscrowAddress(campaignID).String(), out["vault_id"])
}

func TestCreateCampaignBadRequests(t *testing.T) {
	_, h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns", nil, `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns", &owner, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_input", decode(t, rec)["error"])

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns", &owner, `{"name":"a","surprise":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns", &owner, `{"name":"a","asset":"xyz"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(`{}`))
	req.Header.Set(SignerHeader, "not-hex")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAffiliateLink(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().CreateAffiliateLink(mock.Anything, port.CreateAffiliateLinkReq{CampaignID: campaignID, Influencer: influencer}).
		Return(&port.LinkCreated{LinkID: linkID}, nil).Once()

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/"+campaignID.String()+"/links", &influencer, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, linkID.String(), decode(t, rec)["link_id"])
}

func TestProcessAffiliateMint(t *testing.T) {
	svc, h := newTestHandler(t, WithCurrency(configs.Currency{Decimals: 9, Symbol: "SOL"}))
	svc.EXPECT().ProcessAffiliateMint(mock.Anything, port.ProcessAffiliateMintReq{
		CampaignID: campaignID,
		LinkID:     linkID,
		Buyer:      buyer,
		Influencer: influencer,
		Owner:      owner,
	}).Return(&port.Settled{Commission: 100_000, Proceeds: 900_000}, nil).Once()

	body := fmt.Sprintf(`{"campaign_id":%q,"link_id":%q,"influencer":%q,"owner":%q}`, campaignID, linkID, influencer, owner)
	rec := do(t, h, http.MethodPost, "/api/v1/settlements", &buyer, body)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	commission := out["commission"].(map[string]any)
	assert.Equal(t, float64(100_000), commission["value"])
	assert.Equal(t, "0.000100000 SOL", commission["display"])
	proceeds := out["proceeds"].(map[string]any)
	assert.Equal(t, "0.000900000 SOL", proceeds["display"])
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{err: domain.ErrInvalidInput, status: http.StatusBadRequest, code: "invalid_input"},
		{err: errMissingSigner, status: http.StatusUnauthorized, code: "unauthorized"},
		{err: fmt.Errorf("%w: someone else", domain.ErrUnauthorized), status: http.StatusForbidden, code: "unauthorized"},
		{err: domain.ErrLinkCampaignMismatch, status: http.StatusUnprocessableEntity, code: "link_campaign_mismatch"},
		{err: domain.ErrCampaignInactive, status: http.StatusConflict, code: "campaign_inactive"},
		{err: domain.ErrEscrowEmpty, status: http.StatusConflict, code: "escrow_empty"},
		{err: domain.ErrAlreadyExists, status: http.StatusConflict, code: "already_exists"},
		{err: domain.ErrInsufficientFunds, status: http.StatusPaymentRequired, code: "insufficient_funds"},
		{err: domain.ErrNotFound, status: http.StatusNotFound, code: "not_found"},
		{err: port.ErrConflict, status: http.StatusServiceUnavailable, code: "conflict"},
		{err: domain.ErrOverflow, status: http.StatusInternalServerError, code: "internal"},
		{err: errors.New("disk on fire"), status: http.StatusInternalServerError, code: "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, code := errorStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestSettlementErrorsAreRendered(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().ProcessAffiliateMint(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: vault", domain.ErrEscrowEmpty)).Once()
	svc.EXPECT().ProcessAffiliateMint(mock.Anything, mock.Anything).
		Return(nil, errors.New("secret backend detail")).Once()

	body := fmt.Sprintf(`{"campaign_id":%q,"link_id":%q,"influencer":%q,"owner":%q}`, campaignID, linkID, influencer, owner)

	rec := do(t, h, http.MethodPost, "/api/v1/settlements", &buyer, body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "escrow_empty", decode(t, rec)["error"])

	rec = do(t, h, http.MethodPost, "/api/v1/settlements", &buyer, body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "internal", out["error"])
	assert.NotContains(t, out["message"], "secret")
}

func TestGetCampaign(t *testing.T) {
	svc, h := newTestHandler(t)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().GetCampaign(mock.Anything, campaignID).Return(&domain.Campaign{
		Address:              campaignID,
		Name:                 "drop",
		Owner:                owner,
		Asset:                nft,
		MintPrice:            1_500_000_000,
		CommissionPercentage: 10,
		Active:               true,
		AffiliatesCount:      2,
		CreatedAt:            created,
	}, nil).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/"+campaignID.String(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "drop", out["name"])
	assert.Equal(t, domain.EscrowAddress(campaignID).String(), out["vault_id"])
	assert.Equal(t, "1.500000000 SOL", out["mint_price"].(map[string]any)["display"])
	assert.Equal(t, float64(2), out["affiliates_count"])
	assert.Equal(t, true, out["active"])
}

func TestGetUnknownCampaign(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetCampaign(mock.Anything, campaignID).Return(nil, domain.ErrNotFound).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/"+campaignID.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/campaigns/short", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEvents(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().ListEvents(mock.Anything, campaignID).Return([]domain.Event{
		{Kind: domain.EventCampaignCreated, Campaign: campaignID, Actor: owner, Amount: 1_000},
		{Kind: domain.EventMintSettled, Campaign: campaignID, Actor: buyer, Amount: 100, Proceeds: 900},
	}, nil).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/"+campaignID.String()+"/events", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	events := decode(t, rec)["events"].([]any)
	require.Len(t, events, 2)
	first := events[0].(map[string]any)
	assert.Equal(t, "campaign_created", first["kind"])
	assert.NotContains(t, first, "proceeds")
	second := events[1].(map[string]any)
	assert.Equal(t, float64(900), second["proceeds"].(map[string]any)["value"])
}

func TestGetAccountAndHolding(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetAccount(mock.Anything, buyer).Return(&domain.Account{Address: buyer, Lamports: 42}, nil).Once()
	svc.EXPECT().GetHolding(mock.Anything, nft, buyer).Return(&domain.Holding{
		Address: domain.HoldingAddress(nft, buyer), Asset: nft, Holder: buyer, Amount: 1,
	}, nil).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/accounts/"+buyer.String(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(42), decode(t, rec)["lamports"].(map[string]any)["value"])

	rec = do(t, h, http.MethodGet, "/api/v1/assets/"+nft.String()+"/holders/"+buyer.String(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["amount"])
}

func TestGetVaultAndLink(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetVault(mock.Anything, campaignID).Return(&domain.Vault{
		Address: domain.EscrowAddress(campaignID), Campaign: campaignID, Asset: nft, Amount: 1,
	}, nil).Once()
	svc.EXPECT().GetAffiliateLink(mock.Anything, linkID).Return(&domain.AffiliateLink{
		Address: linkID, Campaign: campaignID, Influencer: influencer, MintsCount: 1, Earnings: 100,
	}, nil).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/"+campaignID.String()+"/vault", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["amount"])

	rec = do(t, h, http.MethodGet, "/api/v1/links/"+linkID.String(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, campaignID.String(), out["campaign_id"])
	assert.Equal(t, float64(1), out["mints_count"])
}

func TestHealthAndMetrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("metrics"))
	})
	_, h := newTestHandler(t, WithMetrics("/metrics", metrics))

	rec := do(t, h, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "metrics", rec.Body.String())
}
