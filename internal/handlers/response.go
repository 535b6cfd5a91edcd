package handlers

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// callerID returns the authenticated user id placed in the request context
// by the auth middleware.
func callerID(r *http.Request) string {
	id, _ := r.Context().Value("user_id").(string)
	return id
}

func callerName(r *http.Request) string {
	name, _ := r.Context().Value("user_name").(string)
	return name
}
