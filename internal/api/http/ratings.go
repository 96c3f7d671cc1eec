package httpapi

import (
	"net/http"

	"campus-cafeteria/internal/domain"
)

func (h *Handler) upsertRating(w http.ResponseWriter, r *http.Request) {
	var req domain.RatingRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	rating, err := h.Ratings.Upsert(r.Context(), pathVar(r, "menuId"), pathVar(r, "userId"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "rating saved", rating)
}

func (h *Handler) listMenuRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.Ratings.ListByMenu(r.Context(), pathVar(r, "menuId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "ratings retrieved", ratings)
}

func (h *Handler) listUserRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.Ratings.ListByUser(r.Context(), pathVar(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "ratings retrieved", ratings)
}

func (h *Handler) deleteRating(w http.ResponseWriter, r *http.Request) {
	if err := h.Ratings.Delete(r.Context(), pathVar(r, "ratingId")); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "rating deleted", nil)
}
