package material

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

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

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	title := r.FormValue("title")
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "A file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	material, err := h.service.Upload(r.Context(), user, title, header.Filename, file)
	if err != nil {
		apperror.Write(w, err)
		return
	}

	json.NewEncoder(w).Encode(models.UploadResponse{
		Message:    "Material uploaded successfully",
		MaterialID: material.ID,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	materials, err := h.service.List(user)
	if err != nil {
		apperror.Write(w, err)
		return
	}

	json.NewEncoder(w).Encode(materials)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	material, err := h.service.Get(mux.Vars(r)["id"], user)
	if err != nil {
		apperror.Write(w, err)
		return
	}

	json.NewEncoder(w).Encode(material)
}
