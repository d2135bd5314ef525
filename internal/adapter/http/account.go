package httpadapter

import "net/http"

func (h *Handler) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	addr, err := addressParam(r, "address")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.svc.GetAccount(r.Context(), addr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"address":  a.Address,
		"lamports": h.amount(a.Lamports),
	})
}

func (h *Handler) handleGetHolding(w http.ResponseWriter, r *http.Request) {
	asset, err := addressParam(r, "asset")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	holder, err := addressParam(r, "holder")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	hd, err := h.svc.GetHolding(r.Context(), asset, holder)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"address": hd.Address,
		"asset":   hd.Asset,
		"holder":  hd.Holder,
		"amount":  hd.Amount,
	})
}
