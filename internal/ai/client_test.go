package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studymentor/internal/models"
)

// fakeProvider stands in for the model API and replies to every chat
// completion with the configured content.
func fakeProvider(t *testing.T, content string, lastReq *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastReq != nil {
			var body map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("bad request body: %v", err)
			}
			*lastReq = body
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		})
	}))
}

func TestGenerateQuizParsesWrappedResponse(t *testing.T) {
	content := "Here you go:\n{\"questions\":[{\"question\":\"What is 2+2?\",\"options\":[\"A. 3\",\"B. 4\",\"C. 5\",\"D. 6\"],\"answer\":\"B. 4\",\"explanation\":\"Basic arithmetic\"}]}"
	srv := fakeProvider(t, content, nil)
	defer srv.Close()

	client := NewClient("test-key", srv.URL+"/v1", "gpt-4o")
	questions, err := client.GenerateQuiz(context.Background(), "some text", models.QuizPractice, models.QuestionMCQ)
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].Answer != "B. 4" || len(questions[0].Options) != 4 {
		t.Fatalf("unexpected question: %+v", questions[0])
	}
}

func TestGenerateFlashcardsUnparseableFails(t *testing.T) {
	srv := fakeProvider(t, "no structured output here", nil)
	defer srv.Close()

	client := NewClient("test-key", srv.URL+"/v1", "gpt-4o")
	if _, err := client.GenerateFlashcards(context.Background(), "some text"); err == nil {
		t.Fatal("expected decode failure")
	}
}

func TestAskForwardsSessionTag(t *testing.T) {
	var lastReq map[string]interface{}
	srv := fakeProvider(t, "Photosynthesis converts light into chemical energy.", &lastReq)
	defer srv.Close()

	client := NewClient("test-key", srv.URL+"/v1", "gpt-4o")
	answer, err := client.Ask(context.Background(), "material text", "What is photosynthesis?", "chat_m1_u1")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer == "" {
		t.Fatal("empty answer")
	}
	if lastReq["user"] != "chat_m1_u1" {
		t.Fatalf("session tag not forwarded: %v", lastReq["user"])
	}
}

func TestMimeType(t *testing.T) {
	if got := MimeType("pdf"); got != "application/pdf" {
		t.Fatalf("pdf: %s", got)
	}
	if got := MimeType("weird"); got != "application/octet-stream" {
		t.Fatalf("fallback: %s", got)
	}
}
