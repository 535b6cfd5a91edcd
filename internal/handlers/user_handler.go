package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"lostfound/internal/models"
	"lostfound/internal/services"
)

const minPasswordLength = 6

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	body.Email = strings.TrimSpace(strings.ToLower(body.Email))
	if body.Email == "" || !strings.Contains(body.Email, "@") {
		writeError(w, http.StatusBadRequest, "Invalid email")
		return
	}
	if strings.TrimSpace(body.FullName) == "" {
		writeError(w, http.StatusBadRequest, "Missing full name")
		return
	}
	if len(body.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	user, err := h.Service.SignUp(r.Context(), body.Email, body.FullName, body.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "Email already registered")
			return
		}
		log.Printf("SignUp error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to sign up")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Verification code sent",
		"data":    user,
	})
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tokens, err := h.Service.SignIn(r.Context(), strings.TrimSpace(strings.ToLower(body.Email)), body.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("SignIn error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}
	json.NewEncoder(w).Encode(tokens)
}

func (h *UserHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.Service.VerifyEmail(r.Context(), strings.TrimSpace(strings.ToLower(body.Email)), body.Code)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCode):
			writeError(w, http.StatusBadRequest, "Invalid or expired code")
		case errors.Is(err, models.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			log.Printf("VerifyEmail error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to verify email")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Email verified"})
}

func (h *UserHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.Service.ResendVerification(r.Context(), strings.TrimSpace(strings.ToLower(body.Email)))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ResendVerification error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to resend code")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Verification code sent"})
}

func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tokens, err := h.Service.Refresh(r.Context(), body.RefreshToken)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) || errors.Is(err, models.ErrSessionExpired) {
			writeError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
			return
		}
		log.Printf("Refresh error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to refresh token")
		return
	}
	json.NewEncoder(w).Encode(tokens)
}

func (h *UserHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.Service.RequestPasswordReset(r.Context(), strings.TrimSpace(strings.ToLower(body.Email)))
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		log.Printf("RequestPasswordReset error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to request reset")
		return
	}
	// Unknown emails get the same answer so the endpoint cannot be used to
	// probe for accounts.
	writeJSON(w, http.StatusOK, map[string]string{"message": "If the email exists, a reset code was sent"})
}

func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(body.NewPassword) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	err := h.Service.ResetPassword(r.Context(), strings.TrimSpace(strings.ToLower(body.Email)), body.Code, body.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCode):
			writeError(w, http.StatusBadRequest, "Invalid or expired code")
		case errors.Is(err, models.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			log.Printf("ResetPassword error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to reset password")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}
