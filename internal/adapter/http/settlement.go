package httpadapter

import (
	"net/http"

	"affiliate-escrow/internal/core/port"
)

// handleProcessAffiliateMint settles a sale for the signing buyer. On
// success it reports the commission and proceeds; every failure leaves
// the ledger untouched.
func (h *Handler) handleProcessAffiliateMint(w http.ResponseWriter, r *http.Request) {
	buyer, err := signer(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body processAffiliateMintRequest
	if err = decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	settled, err := h.svc.ProcessAffiliateMint(r.Context(), port.ProcessAffiliateMintReq{
		CampaignID: body.CampaignID,
		LinkID:     body.LinkID,
		Buyer:      buyer,
		Influencer: body.Influencer,
		Owner:      body.Owner,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"commission": h.amount(settled.Commission),
		"proceeds":   h.amount(settled.Proceeds),
	})
}
