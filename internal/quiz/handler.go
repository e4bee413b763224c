package quiz

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

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	materialID := r.FormValue("material_id")
	quizType := models.QuizType(r.FormValue("quiz_type"))
	questionType := models.QuestionType(r.FormValue("question_type"))

	if !quizType.Valid() {
		http.Error(w, "Invalid quiz type", http.StatusBadRequest)
		return
	}
	if !questionType.Valid() {
		http.Error(w, "Invalid question type", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.Generate(r.Context(), materialID, quizType, questionType, user)
	if err != nil {
		apperror.Write(w, err)
		return
	}

	json.NewEncoder(w).Encode(quiz)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.service.Submit(mux.Vars(r)["id"], req.Answers, user)
	if err != nil {
		apperror.Write(w, err)
		return
	}

	json.NewEncoder(w).Encode(result)
}
