package main

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"time"
)

func (app *application) serverError(w http.ResponseWriter, err error) {
	app.errorLog.Printf("%s\n%s", err.Error(), debug.Stack())
	app.errorResponse(w, http.StatusInternalServerError, "Internal server error")
}

func (app *application) errorResponse(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (app *application) healthCheck(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{
		"status":    "OK",
		"message":   "Lost & Found API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (app *application) apiInfo(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{
		"name":    "Lost & Found API",
		"version": "1.0.0",
	})
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, http.StatusNotFound, "Endpoint not found")
}
