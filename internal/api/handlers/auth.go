package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/teamdebug/quizard/internal/api/middleware"
	"github.com/teamdebug/quizard/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondResult(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	_, err := h.authService.Signup(r.Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired),
			errors.Is(err, service.ErrPasswordTooShort),
			errors.Is(err, service.ErrEmailExists):
			respondResult(w, http.StatusOK, false, signupMessage(err))
		default:
			log.Printf("ERROR [auth.Signup] %v", err)
			respondResult(w, http.StatusInternalServerError, false, serverErrorMessage)
		}
		return
	}

	respondResult(w, http.StatusOK, true, "Account created successfully")
}

func signupMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrFieldsRequired):
		return "All fields are required"
	case errors.Is(err, service.ErrPasswordTooShort):
		return "Password must be at least 6 characters long"
	case errors.Is(err, service.ErrEmailExists):
		return "Email already registered"
	}
	return serverErrorMessage
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondResult(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondResult(w, http.StatusOK, false, "Email and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondResult(w, http.StatusOK, false, "Invalid email or password")
		case errors.Is(err, service.ErrAccountDisabled):
			respondResult(w, http.StatusOK, false, "Account is disabled")
		default:
			log.Printf("ERROR [auth.Login] %v", err)
			respondResult(w, http.StatusInternalServerError, false, serverErrorMessage)
		}
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Token:   result.Token,
		Name:    result.User.Name,
		Email:   result.User.Email,
		Message: "Login successful",
	})
}

// Logout revokes the presented session if there is one. It is idempotent
// and succeeds even without a token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.BearerToken(r); ok {
		if err := h.authService.Logout(r.Context(), token); err != nil {
			log.Printf("ERROR [auth.Logout] %v", err)
			respondResult(w, http.StatusInternalServerError, false, "Logout failed")
			return
		}
	}

	respondResult(w, http.StatusOK, true, "Logged out successfully")
}
