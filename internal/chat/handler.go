package chat

import (
	"encoding/json"
	"net/http"

	"studymentor/internal/apperror"
	"studymentor/internal/auth"
	"studymentor/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	materialID := r.FormValue("material_id")
	question := r.FormValue("question")
	if materialID == "" || question == "" {
		http.Error(w, "material_id and question are required", http.StatusBadRequest)
		return
	}

	answer, err := h.service.Ask(r.Context(), materialID, question, user)
	if err != nil {
		apperror.Write(w, err)
		return
	}

	json.NewEncoder(w).Encode(models.ChatResponse{Question: question, Answer: answer})
}
