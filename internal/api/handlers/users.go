package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/teamdebug/quizard/internal/api/middleware"
	"github.com/teamdebug/quizard/internal/service"
)

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// UserSummary is the public listing shape; field names follow the API the
// client already consumes.
type UserSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileUser struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

type ProfileResponse struct {
	Success bool        `json:"success"`
	User    ProfileUser `json:"user"`
}

// List returns all active users, newest first, as a bare array.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListActiveUsers(r.Context())
	if err != nil {
		log.Printf("ERROR [users.List] %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch users"})
		return
	}

	resp := make([]UserSummary, 0, len(users))
	for _, u := range users {
		resp = append(resp, UserSummary{
			ID:        u.ID.String(),
			Name:      u.Name,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondResult(w, http.StatusUnauthorized, false, "Unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondResult(w, http.StatusNotFound, false, "User not found")
			return
		}
		log.Printf("ERROR [users.Profile] %v", err)
		respondResult(w, http.StatusInternalServerError, false, serverErrorMessage)
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{
		Success: true,
		User: ProfileUser{
			ID:        user.ID.String(),
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			LastLogin: user.LastLoginAt,
		},
	})
}
