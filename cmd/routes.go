package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := alice.New(app.requireAuth)

	mux := pat.New()

	// System
	mux.Get("/health", http.HandlerFunc(app.healthCheck))
	mux.Get("/api", http.HandlerFunc(app.apiInfo))

	// Auth
	mux.Post("/api/auth/signup", http.HandlerFunc(app.userHandler.SignUp))
	mux.Post("/api/auth/signin", http.HandlerFunc(app.userHandler.SignIn))
	mux.Post("/api/auth/verify-email", http.HandlerFunc(app.userHandler.VerifyEmail))
	mux.Post("/api/auth/resend-verification", http.HandlerFunc(app.userHandler.ResendVerification))
	mux.Post("/api/auth/refresh", http.HandlerFunc(app.userHandler.Refresh))
	mux.Post("/api/auth/request-reset", http.HandlerFunc(app.userHandler.RequestPasswordReset))
	mux.Post("/api/auth/reset-password", http.HandlerFunc(app.userHandler.ResetPassword))

	// Items. Fixed paths are registered before /api/items/:id so the pattern
	// match does not swallow them.
	mux.Get("/api/items/my-items", authMiddleware.ThenFunc(app.itemHandler.GetMyItems))
	mux.Get("/api/items/search", authMiddleware.ThenFunc(app.itemHandler.SearchItems))
	mux.Get("/api/items/:id", authMiddleware.ThenFunc(app.itemHandler.GetItemByID))
	mux.Get("/api/items", authMiddleware.ThenFunc(app.itemHandler.GetItems))
	mux.Post("/api/items/upload", authMiddleware.ThenFunc(app.itemHandler.UploadImage))
	mux.Post("/api/items", authMiddleware.ThenFunc(app.itemHandler.CreateItem))
	mux.Add("PATCH", "/api/items/:id/status", authMiddleware.ThenFunc(app.itemHandler.UpdateItemStatus))
	mux.Del("/api/items/:id", authMiddleware.ThenFunc(app.itemHandler.DeleteItem))

	// Claims
	mux.Get("/api/claims/received", authMiddleware.ThenFunc(app.claimHandler.GetReceivedClaims))
	mux.Get("/api/claims/sent", authMiddleware.ThenFunc(app.claimHandler.GetSentClaims))
	mux.Post("/api/claims", authMiddleware.ThenFunc(app.claimHandler.CreateClaim))
	mux.Add("PATCH", "/api/claims/:id", authMiddleware.ThenFunc(app.claimHandler.UpdateClaimStatus))

	// Notifications
	mux.Post("/api/notifications/token", authMiddleware.ThenFunc(app.notificationHandler.RegisterToken))

	// Trailing-slash patterns prefix-match in pat, so a "/" route registered
	// last per method is the catch-all for everything unmatched above.
	for _, method := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
		mux.Add(method, "/", http.HandlerFunc(app.notFound))
	}

	return standardMiddleware.Then(mux)
}
