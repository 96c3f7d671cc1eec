package httpapi

import (
	"net/http"

	"campus-cafeteria/internal/domain"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.Get(r.Context(), pathVar(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "user retrieved", user)
}

func (h *Handler) saveUser(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := decode(r, &user); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Users.Save(r.Context(), &user); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "user saved", user)
}

func (h *Handler) updateAllergies(w http.ResponseWriter, r *http.Request) {
	var req domain.AllergiesRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.Users.UpdateAllergies(r.Context(), pathVar(r, "userId"), req.Allergies)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "allergies updated", user)
}
