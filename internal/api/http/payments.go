package httpapi

import (
	"net/http"

	"campus-cafeteria/internal/domain"
)

func (h *Handler) processPayment(w http.ResponseWriter, r *http.Request) {
	var req domain.PaymentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	payment, err := h.Payments.Process(r.Context(), pathVar(r, "userId"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, "payment completed", payment)
}

func (h *Handler) getOrderPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.Payments.GetByOrderID(r.Context(), pathVar(r, "orderId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "payment retrieved", payment)
}

func (h *Handler) listUserPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Payments.ListByUser(r.Context(), pathVar(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "payments retrieved", payments)
}
