package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"lostfound/internal/services"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func (h *NotificationHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(body.Token) == "" {
		writeError(w, http.StatusBadRequest, "Missing token")
		return
	}

	if err := h.Service.RegisterToken(r.Context(), callerID(r), body.Token); err != nil {
		log.Printf("RegisterToken error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to register token")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Token registered"})
}
