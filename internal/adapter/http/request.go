package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"affiliate-escrow/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

var errMissingSigner = fmt.Errorf("%w: missing %s header", domain.ErrUnauthorized, SignerHeader)

// createCampaignRequest is the body of POST /campaigns. The owner is the
// signer.
type createCampaignRequest struct {
	Name                 string         `json:"name"`
	MintPrice            uint64         `json:"mint_price"`
	CommissionPercentage uint8          `json:"commission_percentage"`
	Details              string         `json:"details"`
	Asset                domain.Address `json:"asset"`
}

// processAffiliateMintRequest is the body of POST /settlements. The buyer
// is the signer.
type processAffiliateMintRequest struct {
	CampaignID domain.Address `json:"campaign_id"`
	LinkID     domain.Address `json:"link_id"`
	Influencer domain.Address `json:"influencer"`
	Owner      domain.Address `json:"owner"`
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return fmt.Errorf("%w: invalid JSON at offset %d", domain.ErrInvalidInput, syntaxErr.Offset)
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func signer(r *http.Request) (domain.Address, error) {
	v := r.Header.Get(SignerHeader)
	if v == "" {
		return domain.Address{}, errMissingSigner
	}
	addr, err := domain.ParseAddress(v)
	if err != nil {
		return domain.Address{}, fmt.Errorf("%s: %w", SignerHeader, err)
	}
	return addr, nil
}

func addressParam(r *http.Request, name string) (domain.Address, error) {
	addr, err := domain.ParseAddress(chi.URLParam(r, name))
	if err != nil {
		return domain.Address{}, fmt.Errorf("%s: %w", name, err)
	}
	return addr, nil
}
