package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lostfound/internal/handlers"
	"lostfound/internal/models"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	app := newTestApplication(t, map[string]models.User{})
	app.userHandler = &handlers.UserHandler{}
	app.itemHandler = &handlers.ItemHandler{}
	app.claimHandler = &handlers.ClaimHandler{}
	app.notificationHandler = &handlers.NotificationHandler{}
	return app.routes()
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "OK" {
		t.Fatalf("expected status OK, got %q", body["status"])
	}
}

func TestUnmatchedRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter(t)
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nope"},
		{http.MethodPost, "/api/unknown"},
		{http.MethodDelete, "/api/items"},
		{http.MethodPatch, "/whatever/deep/path"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("expected JSON body, got %q", rec.Body.String())
			}
			if body["error"] != "Endpoint not found" {
				t.Fatalf("unexpected error message %q", body["error"])
			}
		})
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	router := newTestRouter(t)
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/items"},
		{http.MethodGet, "/api/items/my-items"},
		{http.MethodGet, "/api/claims/received"},
		{http.MethodPost, "/api/claims"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
			}
		})
	}
}
