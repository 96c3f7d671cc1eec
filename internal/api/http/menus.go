package httpapi

import (
	"net/http"
	"strconv"

	"campus-cafeteria/internal/domain"
)

const defaultPopularLimit = 10

func (h *Handler) listMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.Menus.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "menus retrieved", menus)
}

func (h *Handler) menuPage(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, r, domain.InvalidStatef("userId is required"))
		return
	}
	page, err := h.Menus.Page(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "menu page retrieved", page)
}

func (h *Handler) popularMenus(w http.ResponseWriter, r *http.Request) {
	limit := defaultPopularLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, r, domain.InvalidStatef("limit must be a positive integer"))
			return
		}
		limit = n
	}
	menus, err := h.Menus.Popular(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "popular menus retrieved", menus)
}

func (h *Handler) userPopularMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.Menus.PopularForUser(r.Context(), pathVar(r, "userId"), 3)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "popular menus retrieved", menus)
}

func (h *Handler) listRestaurantMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.Menus.ListByRestaurant(r.Context(), pathVar(r, "restaurantName"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "menus retrieved", menus)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menus.Get(r.Context(), pathVar(r, "menuId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "menu retrieved", menu)
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	var menu domain.Menu
	if err := decode(r, &menu); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Menus.Create(r.Context(), &menu); err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, "menu created", menu)
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	var menu domain.Menu
	if err := decode(r, &menu); err != nil {
		writeError(w, r, err)
		return
	}
	menu.ID = pathVar(r, "menuId")
	if err := h.Menus.Update(r.Context(), &menu); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "menu updated", menu)
}

func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request) {
	if err := h.Menus.Delete(r.Context(), pathVar(r, "menuId")); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "menu deleted", nil)
}
