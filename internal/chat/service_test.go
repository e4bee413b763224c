package chat

import (
	"context"
	"errors"
	"testing"

	"studymentor/internal/apperror"
	"studymentor/internal/models"
)

type fakeMaterials struct {
	material *models.Material
}

func (f *fakeMaterials) Get(id string, owner *models.User) (*models.Material, error) {
	if f.material == nil || f.material.ID != id || f.material.UserID != owner.ID {
		return nil, apperror.NotFound("Material not found")
	}
	return f.material, nil
}

type fakeAsker struct {
	answer      string
	err         error
	lastSession string
	lastText    string
}

func (f *fakeAsker) Ask(ctx context.Context, text, question, sessionID string) (string, error) {
	f.lastText = text
	f.lastSession = sessionID
	return f.answer, f.err
}

func TestAskReturnsAnswerWithSessionTag(t *testing.T) {
	materials := &fakeMaterials{material: &models.Material{
		ID:            "m1",
		UserID:        "u1",
		ExtractedText: "the krebs cycle",
	}}
	asker := &fakeAsker{answer: "It produces ATP."}
	service := NewService(materials, asker)

	answer, err := service.Ask(context.Background(), "m1", "What does it produce?", &models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if answer != "It produces ATP." {
		t.Fatalf("unexpected answer: %q", answer)
	}
	if asker.lastSession != "chat_m1_u1" {
		t.Fatalf("session tag: %q", asker.lastSession)
	}
	if asker.lastText != "the krebs cycle" {
		t.Fatalf("material text not forwarded: %q", asker.lastText)
	}
}

func TestAskForeignMaterialNotFound(t *testing.T) {
	materials := &fakeMaterials{material: &models.Material{ID: "m1", UserID: "owner"}}
	service := NewService(materials, &fakeAsker{})

	_, err := service.Ask(context.Background(), "m1", "q", &models.User{ID: "intruder"})
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Code != 404 {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestAskUpstreamFailure(t *testing.T) {
	materials := &fakeMaterials{material: &models.Material{ID: "m1", UserID: "u1"}}
	service := NewService(materials, &fakeAsker{err: errors.New("model unavailable")})

	_, err := service.Ask(context.Background(), "m1", "q", &models.User{ID: "u1"})
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Code != 500 {
		t.Fatalf("expected 500, got %v", err)
	}
}
