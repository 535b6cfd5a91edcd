package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lostfound/internal/models"
	"lostfound/utils"
)

type stubUserStore struct {
	users map[string]models.User
	err   error
}

func (s stubUserStore) GetUserByID(ctx context.Context, id string) (models.User, error) {
	if s.err != nil {
		return models.User{}, s.err
	}
	user, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

func newTestApplication(t *testing.T, users map[string]models.User) *application {
	t.Helper()
	tokenManager, err := utils.NewTokenManager("test-signing-key", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return &application{
		errorLog:     log.New(io.Discard, "", 0),
		infoLog:      log.New(io.Discard, "", 0),
		tokenManager: tokenManager,
		users:        stubUserStore{users: users},
	}
}

func TestRequireAuth(t *testing.T) {
	verified := models.User{ID: "user-1", Email: "a@example.com", FullName: "User One", EmailVerified: true}
	unverified := models.User{ID: "user-2", Email: "b@example.com", EmailVerified: false}
	app := newTestApplication(t, map[string]models.User{
		verified.ID:   verified,
		unverified.ID: unverified,
	})

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value("user_id").(string)
	})
	handler := app.requireAuth(next)

	token := func(u models.User) string {
		t.Helper()
		tok, err := app.tokenManager.NewJWT(u)
		if err != nil {
			t.Fatal(err)
		}
		return tok
	}

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"unknown user", "Bearer " + token(models.User{ID: "ghost"}), http.StatusUnauthorized},
		{"unverified email", "Bearer " + token(unverified), http.StatusForbidden},
		{"verified user", "Bearer " + token(verified), http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotUserID = ""
			req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			if tc.wantStatus == http.StatusOK && gotUserID != verified.ID {
				t.Fatalf("expected user id %q in context, got %q", verified.ID, gotUserID)
			}
			if tc.wantStatus != http.StatusOK && gotUserID != "" {
				t.Fatal("next handler ran for a rejected request")
			}
		})
	}
}

func TestRequireAuthStoreFailure(t *testing.T) {
	user := models.User{ID: "user-1", Email: "a@example.com", EmailVerified: true}
	app := newTestApplication(t, map[string]models.User{user.ID: user})
	app.users = stubUserStore{err: errors.New("connection refused")}

	token, err := app.tokenManager.NewJWT(user)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.requireAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler ran despite store failure")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("internal error leaked to client: %s", rec.Body.String())
	}
}

func TestRequireAuthUnverifiedBody(t *testing.T) {
	unverified := models.User{ID: "user-2", Email: "b@example.com"}
	app := newTestApplication(t, map[string]models.User{unverified.ID: unverified})

	token, err := app.tokenManager.NewJWT(unverified)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.requireAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "Email not verified") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
