package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lostfound/internal/models"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requireAuth resolves the bearer token to a verified user and attaches the
// principal to the request context. The user row is loaded on every request
// so a verification done after sign-in takes effect immediately.
func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			app.errorResponse(w, http.StatusUnauthorized, "Authorization header missing or invalid")
			return
		}
		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := app.tokenManager.Parse(accessToken)
		if err != nil {
			app.errorResponse(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		user, err := app.users.GetUserByID(r.Context(), claims.UserID)
		if errors.Is(err, models.ErrUserNotFound) {
			app.errorResponse(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		if err != nil {
			app.serverError(w, err)
			return
		}
		if !user.EmailVerified {
			app.errorResponse(w, http.StatusForbidden, "Email not verified")
			return
		}

		ctx := context.WithValue(r.Context(), "user_id", user.ID)
		ctx = context.WithValue(ctx, "user_email", user.Email)
		ctx = context.WithValue(ctx, "user_name", user.FullName)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
