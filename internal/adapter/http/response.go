package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"

	"github.com/shopspring/decimal"
)

// amount renders an integer ledger amount together with its display form,
// e.g. {"value":1000000,"display":"0.001000000 SOL"}.
type amount struct {
	Value   uint64 `json:"value"`
	Display string `json:"display"`
}

func (h *Handler) amount(v uint64) amount {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(v), -h.currency.Decimals)
	display := d.StringFixed(h.currency.Decimals)
	if h.currency.Symbol != "" {
		display += " " + h.currency.Symbol
	}
	return amount{Value: v, Display: display}
}

type campaignResponse struct {
	ID                   domain.Address `json:"id"`
	Name                 string         `json:"name"`
	Owner                domain.Address `json:"owner"`
	Asset                domain.Address `json:"asset"`
	VaultID              domain.Address `json:"vault_id"`
	MintPrice            amount         `json:"mint_price"`
	CommissionPercentage uint8          `json:"commission_percentage"`
	Details              string         `json:"details"`
	Active               bool           `json:"active"`
	AffiliatesCount      uint64         `json:"affiliates_count"`
	TotalMints           uint64         `json:"total_mints"`
	CreatedAt            time.Time      `json:"created_at"`
}

func (h *Handler) campaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:                   c.Address,
		Name:                 c.Name,
		Owner:                c.Owner,
		Asset:                c.Asset,
		VaultID:              c.VaultAddress(),
		MintPrice:            h.amount(c.MintPrice),
		CommissionPercentage: c.CommissionPercentage,
		Details:              c.Details,
		Active:               c.Active,
		AffiliatesCount:      c.AffiliatesCount,
		TotalMints:           c.TotalMints,
		CreatedAt:            c.CreatedAt,
	}
}

type affiliateLinkResponse struct {
	ID         domain.Address `json:"id"`
	Campaign   domain.Address `json:"campaign_id"`
	Influencer domain.Address `json:"influencer"`
	MintsCount uint64         `json:"mints_count"`
	Earnings   amount         `json:"earnings"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (h *Handler) affiliateLinkResponse(l *domain.AffiliateLink) affiliateLinkResponse {
	return affiliateLinkResponse{
		ID:         l.Address,
		Campaign:   l.Campaign,
		Influencer: l.Influencer,
		MintsCount: l.MintsCount,
		Earnings:   h.amount(l.Earnings),
		CreatedAt:  l.CreatedAt,
	}
}

type vaultResponse struct {
	ID       domain.Address `json:"id"`
	Campaign domain.Address `json:"campaign_id"`
	Asset    domain.Address `json:"asset"`
	Amount   uint64         `json:"amount"`
}

type eventResponse struct {
	ID           string         `json:"id"`
	Kind         string         `json:"kind"`
	Actor        domain.Address `json:"actor"`
	Counterparty domain.Address `json:"counterparty"`
	Amount       amount         `json:"amount"`
	Proceeds     *amount        `json:"proceeds,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (h *Handler) eventResponse(e domain.Event) eventResponse {
	resp := eventResponse{
		ID:           e.ID.String(),
		Kind:         string(e.Kind),
		Actor:        e.Actor,
		Counterparty: e.Counterparty,
		Amount:       h.amount(e.Amount),
		CreatedAt:    e.CreatedAt,
	}
	if e.Kind == domain.EventMintSettled {
		p := h.amount(e.Proceeds)
		resp.Proceeds = &p
	}
	return resp
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errorStatus maps an error to its HTTP status and machine code.
func errorStatus(err error) (int, string) {
	if errors.Is(err, port.ErrConflict) {
		return http.StatusServiceUnavailable, "conflict"
	}
	code := domain.ErrorCode(err)
	switch code {
	case "invalid_input":
		return http.StatusBadRequest, code
	case "unauthorized":
		if errors.Is(err, errMissingSigner) {
			return http.StatusUnauthorized, code
		}
		return http.StatusForbidden, code
	case "link_campaign_mismatch":
		return http.StatusUnprocessableEntity, code
	case "campaign_inactive", "escrow_empty", "already_exists":
		return http.StatusConflict, code
	case "insufficient_funds":
		return http.StatusPaymentRequired, code
	case "not_found":
		return http.StatusNotFound, code
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		msg = "internal error"
	}
	h.writeJSON(w, status, errorResponse{Error: code, Message: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
