package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"weekupAPI/internal/supabase"
	"weekupAPI/services"
)

type AuthHandler struct {
	auth           *supabase.Client
	profileService *services.ProfileService
}

func NewAuthHandler(auth *supabase.Client, profileService *services.ProfileService) *AuthHandler {
	return &AuthHandler{
		auth:           auth,
		profileService: profileService,
	}
}

type signupRequest struct {
	Email string `json:"email"`
}

// Signup triggers a magic-link send. The response is the same whether or not
// the email is registered.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	if err := h.auth.SignInWithOTP(ctx, req.Email); err != nil {
		log.Printf("Signup Handler: OTP send failed: %v", err)
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"msg": "Magic link sent to email if it exists."})
}

// Me validates the bearer token and lazily provisions a profile row with
// default settings on first access.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		respondWithError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
		return
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		respondWithError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
		return
	}

	user, err := h.auth.GetUser(ctx, token)
	if err != nil {
		log.Printf("Me Handler: token validation failed: %v", err)
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	// A store failure here is not an auth failure.
	if _, err := h.profileService.EnsureProfile(ctx, user.ID, user.Email); err != nil {
		log.Printf("Me Handler: failed to provision profile for %s: %v", user.ID, err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}
