package flashcard

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"studymentor/internal/apperror"
	"studymentor/internal/auth"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cards, err := h.service.Generate(r.Context(), r.FormValue("material_id"), user)
	if err != nil {
		apperror.Write(w, err)
		return
	}

	json.NewEncoder(w).Encode(cards)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cards, err := h.service.List(mux.Vars(r)["material_id"], user)
	if err != nil {
		apperror.Write(w, err)
		return
	}

	json.NewEncoder(w).Encode(cards)
}
