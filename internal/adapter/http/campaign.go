package httpadapter

import (
	"net/http"

	"affiliate-escrow/internal/core/port"
)

// handleCreateCampaign registers a campaign for the signer and escrows the
// asset named in the body. It answers 201 with the campaign and vault
// addresses.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	owner, err := signer(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body createCampaignRequest
	if err = decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Name:                 body.Name,
		MintPrice:            body.MintPrice,
		CommissionPercentage: body.CommissionPercentage,
		Details:              body.Details,
		Owner:                owner,
		Asset:                body.Asset,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{
		"campaign_id": created.CampaignID,
		"vault_id":    created.VaultID,
	})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := addressParam(r, "campaignID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.campaignResponse(c))
}

func (h *Handler) handleGetVault(w http.ResponseWriter, r *http.Request) {
	id, err := addressParam(r, "campaignID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	v, err := h.svc.GetVault(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, vaultResponse{
		ID:       v.Address,
		Campaign: v.Campaign,
		Asset:    v.Asset,
		Amount:   v.Amount,
	})
}

// handleListEvents returns the campaign's audit log, oldest first.
func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	id, err := addressParam(r, "campaignID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	events, err := h.svc.ListEvents(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]eventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, h.eventResponse(e))
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"events": resp})
}
