package httpadapter

import (
	"net/http"

	"affiliate-escrow/internal/core/port"
)

// handleCreateAffiliateLink registers the signer as an influencer of the
// campaign in the path. The request has no body.
func (h *Handler) handleCreateAffiliateLink(w http.ResponseWriter, r *http.Request) {
	influencer, err := signer(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	campaignID, err := addressParam(r, "campaignID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.svc.CreateAffiliateLink(r.Context(), port.CreateAffiliateLinkReq{
		CampaignID: campaignID,
		Influencer: influencer,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"link_id": created.LinkID})
}

func (h *Handler) handleGetAffiliateLink(w http.ResponseWriter, r *http.Request) {
	id, err := addressParam(r, "linkID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	l, err := h.svc.GetAffiliateLink(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.affiliateLinkResponse(l))
}
