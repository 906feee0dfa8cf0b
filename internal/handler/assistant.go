package handler

import "net/http"

func (h *Handler) AssistantMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	reply := h.assistant.Reply(req.Message)

	h.successResponse(w, r, "asistan yanıtladı", struct {
		Reply string `json:"reply"`
	}{Reply: reply})
}
