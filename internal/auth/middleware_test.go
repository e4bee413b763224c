package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := CurrentUser(r)
		if !ok {
			t.Error("no user in context behind middleware")
			return
		}
		w.Write([]byte(user.Email))
	})
}

func TestMiddlewareRejectsMissingAndMalformedHeaders(t *testing.T) {
	service := NewService(newFakeStore(), "secret")
	handler := Middleware(service)(protectedEcho(t))

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Basic abc123"},
		{"no token", "Bearer"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/api/materials", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, rec.Code)
		}
	}
}

func TestMiddlewarePassesAuthenticatedUser(t *testing.T) {
	service := NewService(newFakeStore(), "secret")
	token, err := service.Register("frank@example.com", "pw", "Frank")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	handler := Middleware(service)(protectedEcho(t))

	req := httptest.NewRequest("GET", "/api/materials", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "frank@example.com" {
		t.Fatalf("wrong user propagated: %s", rec.Body.String())
	}
}
