// Package ai is the single adapter to the external language model. Every
// AI-backed feature (text extraction, quiz and flashcard generation, tutor
// answers) goes through it. All calls are single-shot: no retry, no
// backoff, no caching of results.
package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"studymentor/internal/models"
)

const (
	quizQuestionCount  = 10
	flashcardCount     = 15
	generateTextBudget = 8000
	chatTextBudget     = 6000
)

var mimeTypes = map[string]string{
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"txt":  "text/plain",
}

// MimeType maps a file extension to the MIME type declared to the model.
func MimeType(fileType string) string {
	if mime, ok := mimeTypes[fileType]; ok {
		return mime
	}
	return "application/octet-stream"
}

// GeneratedQuestion is one question as returned by the model, before it is
// given an id and attached to a quiz.
type GeneratedQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// GeneratedCard is one flashcard as returned by the model.
type GeneratedCard struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

type Client struct {
	api   *openai.Client
	model string
}

func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// ExtractText asks the model for the full textual content of the stored
// file. Plain text files are inlined; everything else is attached as a
// base64 data URI with its declared MIME type.
func (c *Client) ExtractText(ctx context.Context, path, fileType string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	instruction := "Please extract all text content from this document. Preserve the structure, headings, and important formatting. Return only the extracted text content."

	var userMessage openai.ChatCompletionMessage
	if fileType == "txt" {
		userMessage = openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: instruction + "\n\n" + string(data),
		}
	} else {
		uri := "data:" + MimeType(fileType) + ";base64," + base64.StdEncoding.EncodeToString(data)
		userMessage = openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: instruction,
				},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: uri},
				},
			},
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert at extracting and understanding text from documents. Extract all text content accurately while preserving the structure and meaning.",
			},
			userMessage,
		},
	})
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("extract text: model returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerateQuiz turns source text into a fixed batch of structured
// questions of the requested type.
func (c *Client) GenerateQuiz(ctx context.Context, text string, quizType models.QuizType, questionType models.QuestionType) ([]GeneratedQuestion, error) {
	prompt := fmt.Sprintf(`Based on the following educational content, create %d %s questions for a %s.

Content: %s

Requirements:
- Question type: %s
- Quiz type: %s
- Time limit: %d minutes

For MCQ questions, provide 4 options (A, B, C, D) with only one correct answer.
For short answer questions, provide expected key points in the answer.

Please provide detailed explanations for each answer, referencing the source material.

Return the response in this exact JSON format:
{
    "questions": [
        {
            "question": "Your question here",
            "options": ["A. Option 1", "B. Option 2", "C. Option 3", "D. Option 4"],
            "answer": "Correct answer",
            "explanation": "Detailed explanation with reference to source material",
            "question_type": "%s"
        }
    ]
}`,
		quizQuestionCount, questionType, quizType,
		truncate(text, generateTextBudget),
		questionType, quizType, questionType.TimeLimit(), questionType)

	raw, err := c.complete(ctx, "You are an expert educational content creator. Generate high-quality quiz questions based on the provided text.", prompt, "")
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	var payload struct {
		Questions []GeneratedQuestion `json:"questions"`
	}
	if err := decodeResponse(raw, &payload); err != nil {
		log.Printf("Could not parse quiz response as JSON: %.500s", raw)
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	return payload.Questions, nil
}

// GenerateFlashcards turns source text into a fixed batch of flashcards.
func (c *Client) GenerateFlashcards(ctx context.Context, text string) ([]GeneratedCard, error) {
	prompt := fmt.Sprintf(`Based on the following educational content, create %d flashcards for effective studying.

Content: %s

Create flashcards that cover:
- Key concepts and definitions
- Important facts and figures
- Cause and effect relationships
- Problem-solving examples

Return the response in this exact JSON format:
{
    "flashcards": [
        {
            "question": "Front of the card - question or concept",
            "answer": "Back of the card - clear, concise answer",
            "explanation": "Additional context or explanation to aid understanding"
        }
    ]
}`,
		flashcardCount, truncate(text, generateTextBudget))

	raw, err := c.complete(ctx, "You are an expert at creating educational flashcards that aid in learning and retention.", prompt, "")
	if err != nil {
		return nil, fmt.Errorf("generate flashcards: %w", err)
	}

	var payload struct {
		Flashcards []GeneratedCard `json:"flashcards"`
	}
	if err := decodeResponse(raw, &payload); err != nil {
		log.Printf("Could not parse flashcard response as JSON: %.500s", raw)
		return nil, fmt.Errorf("generate flashcards: %w", err)
	}

	return payload.Flashcards, nil
}

// Ask answers a single free-text question about the given material text.
// sessionID is forwarded to the provider for its own bookkeeping only; no
// conversation state is kept here.
func (c *Client) Ask(ctx context.Context, text, question, sessionID string) (string, error) {
	prompt := fmt.Sprintf(`Based on this educational material, please answer the student's question in simple, easy-to-understand language:

Material Content: %s

Student's Question: %s

Please provide:
1. A clear, simple explanation
2. Examples or analogies if helpful
3. Key points to remember

Keep your response educational and encouraging.`,
		truncate(text, chatTextBudget), question)

	answer, err := c.complete(ctx, "You are StudyMentor, a helpful educational assistant. Explain concepts in simple, easy-to-understand language with examples and analogies when helpful.", prompt, sessionID)
	if err != nil {
		return "", fmt.Errorf("answer question: %w", err)
	}
	return answer, nil
}

func (c *Client) complete(ctx context.Context, system, prompt, sessionID string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		User:  sessionID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
