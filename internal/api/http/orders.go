package httpapi

import (
	"net/http"

	"campus-cafeteria/internal/domain"
)

func (h *Handler) createOrderFromCart(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.CreateFromCart(r.Context(), pathVar(r, "userId"), pathVar(r, "tableId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, "order created", order)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	order, err := h.Orders.Create(r.Context(), pathVar(r, "userId"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, "order created", order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), pathVar(r, "orderId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "order retrieved", order)
}

func (h *Handler) listUserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListByUser(r.Context(), pathVar(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "orders retrieved", orders)
}

func (h *Handler) readyOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Ready(r.Context(), pathVar(r, "orderId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "order is ready", order)
}

func (h *Handler) completeOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Complete(r.Context(), pathVar(r, "orderId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "order completed", order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Cancel(r.Context(), pathVar(r, "orderId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "order cancelled", order)
}
