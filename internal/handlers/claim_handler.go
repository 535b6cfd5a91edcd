package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"lostfound/internal/lifecycle"
	"lostfound/internal/models"
	"lostfound/internal/services"
)

type ClaimHandler struct {
	Service *services.ClaimService
}

func (h *ClaimHandler) GetReceivedClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.Service.GetClaimsReceived(r.Context(), callerID(r))
	if err != nil {
		log.Printf("GetReceivedClaims error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch claims")
		return
	}
	json.NewEncoder(w).Encode(claims)
}

func (h *ClaimHandler) GetSentClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.Service.GetClaimsSent(r.Context(), callerID(r))
	if err != nil {
		log.Printf("GetSentClaims error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch claims")
		return
	}
	json.NewEncoder(w).Encode(claims)
}

func (h *ClaimHandler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ItemID  string `json:"item_id"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(body.ItemID) == "" || strings.TrimSpace(body.Message) == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	claim, err := h.Service.CreateClaim(r.Context(), body.ItemID, callerID(r), callerName(r), body.Message)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrItemNotFound):
			writeError(w, http.StatusNotFound, "Item not found")
		case errors.Is(err, models.ErrSelfClaim):
			writeError(w, http.StatusBadRequest, "Cannot claim your own item")
		default:
			log.Printf("CreateClaim error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to create claim")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Claim submitted",
		"data":    claim,
	})
}

func (h *ClaimHandler) UpdateClaimStatus(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claim, err := h.Service.UpdateClaimStatus(r.Context(), id, callerID(r), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":         "Invalid status",
				"validStatuses": lifecycle.ClaimStatuses(),
			})
		case errors.Is(err, models.ErrInvalidTransition):
			writeError(w, http.StatusBadRequest, "Invalid status transition")
		case errors.Is(err, models.ErrClaimNotFound), errors.Is(err, models.ErrNotOwner):
			writeError(w, http.StatusForbidden, "Not authorized")
		default:
			log.Printf("UpdateClaimStatus error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to update claim")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Claim updated",
		"data":    claim,
	})
}
