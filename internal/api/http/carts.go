package httpapi

import (
	"net/http"

	"campus-cafeteria/internal/domain"
)

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.GetOrCreate(r.Context(), pathVar(r, "userId"), pathVar(r, "tableId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "cart retrieved", cart)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req domain.AddToCartRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	cart, err := h.Carts.AddItems(r.Context(), pathVar(r, "userId"), req.TableID, req.Items)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "items added to cart", cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Clear(r.Context(), pathVar(r, "userId"), pathVar(r, "tableId")); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "cart cleared", nil)
}
