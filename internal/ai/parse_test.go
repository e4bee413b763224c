package ai

import (
	"errors"
	"strings"
	"testing"
)

type quizPayload struct {
	Questions []GeneratedQuestion `json:"questions"`
}

func TestDecodeResponseCleanJSON(t *testing.T) {
	raw := `{"questions":[{"question":"What is Go?","answer":"A language","explanation":"..."}]}`

	var payload quizPayload
	if err := decodeResponse(raw, &payload); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(payload.Questions) != 1 || payload.Questions[0].Answer != "A language" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestDecodeResponseFencedJSON(t *testing.T) {
	raw := "Here is your quiz:\n```json\n{\"questions\":[{\"question\":\"Q1\",\"answer\":\"A1\",\"explanation\":\"E1\"}]}\n```\nGood luck!"

	var payload quizPayload
	if err := decodeResponse(raw, &payload); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(payload.Questions) != 1 || payload.Questions[0].Question != "Q1" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestDecodeResponseProseWrappedJSON(t *testing.T) {
	raw := `Sure! {"questions":[{"question":"Q1","options":["A. x","B. y"],"answer":"A. x","explanation":"E"}]} Hope this helps.`

	var payload quizPayload
	if err := decodeResponse(raw, &payload); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(payload.Questions[0].Options) != 2 {
		t.Fatalf("options lost in recovery: %+v", payload)
	}
}

func TestDecodeResponseUnparseable(t *testing.T) {
	raw := "I could not generate a quiz for this material."

	var payload quizPayload
	err := decodeResponse(raw, &payload)

	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if formatErr.Raw != raw {
		t.Fatalf("raw response not preserved")
	}
}

func TestDecodeResponseBrokenBraceBlock(t *testing.T) {
	raw := `prefix {"questions": [unclosed`

	var payload quizPayload
	var formatErr *FormatError
	if err := decodeResponse(raw, &payload); !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 100); got != "short" {
		t.Fatalf("short text mangled: %q", got)
	}

	long := strings.Repeat("é", 200)
	got := truncate(long, 50)
	if len([]rune(got)) != 50 {
		t.Fatalf("expected 50 runes, got %d", len([]rune(got)))
	}
}
