package httpapi

import (
	"net/http"

	"campus-cafeteria/internal/domain"
)

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "tables retrieved", tables)
}

func (h *Handler) listAvailableTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.ListAvailable(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "available tables retrieved", tables)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var table domain.Table
	if err := decode(r, &table); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Tables.Create(r.Context(), &table); err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, "table created", table)
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.Tables.Get(r.Context(), pathVar(r, "tableId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "table retrieved", table)
}

func (h *Handler) getTableByQRCode(w http.ResponseWriter, r *http.Request) {
	table, err := h.Tables.GetByQRCode(r.Context(), pathVar(r, "qrCode"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "table retrieved", table)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Tables.QRCodePNG(r.Context(), pathVar(r, "tableId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) releaseTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.Tables.Release(r.Context(), pathVar(r, "tableId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "table released", table)
}

func (h *Handler) releaseTableByQRCode(w http.ResponseWriter, r *http.Request) {
	table, err := h.Tables.ReleaseByQRCode(r.Context(), pathVar(r, "qrCode"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "table released", table)
}
