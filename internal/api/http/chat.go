package httpapi

import (
	"net/http"

	"campus-cafeteria/internal/domain"
)

func (h *Handler) sendChat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	reply, err := h.Chat.Send(r.Context(), pathVar(r, "userId"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "message sent", reply)
}

func (h *Handler) sessionChatHistory(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Chat.History(r.Context(), pathVar(r, "sessionId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "chat history retrieved", messages)
}

func (h *Handler) userChatHistory(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Chat.UserHistory(r.Context(), pathVar(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "chat history retrieved", messages)
}
