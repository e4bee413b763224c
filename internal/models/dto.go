package models

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UploadResponse struct {
	Message    string `json:"message"`
	MaterialID string `json:"material_id"`
}

// SubmitQuizRequest is the submit body. Clients also send a body-level
// quiz_id; the path parameter is authoritative and the field is ignored.
type SubmitQuizRequest struct {
	Answers []SubmittedAnswer `json:"user_answers"`
}

type QuizResultResponse struct {
	Score          int `json:"score"`
	CorrectAnswers int `json:"correct_answers"`
	TotalQuestions int `json:"total_questions"`
}

type ChatResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
