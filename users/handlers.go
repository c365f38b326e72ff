package users

import (
	"encoding/json"
	"net/http"

	"github.com/user/articlehub-go/apperror"
	"github.com/user/articlehub-go/auth"
)

// UserHandlers exposes the UserService over HTTP.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleGetProfile godoc
// @Summary Get current user's profile
// @Description Retrieves the public profile of the authenticated user.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.UserResponse "User profile"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - User no longer exists"
// @Router /users/me [get]
func (h *UserHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("User not authenticated", nil))
			return
		}

		profile, err := h.service.FindByID(r.Context(), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
