package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/articlehub-go/apperror"
	"github.com/user/articlehub-go/validate"
)

// Handlers exposes the AuthService over HTTP.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleSignUp godoc
// @Summary Sign up a new user
// @Description Registers a new user and returns the public profile with an access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signUpBody body auth.SignUpRequest true "User registration details"
// @Success 201 {object} auth.AuthResponse "User registered successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input"
// @Failure 409 {object} apperror.ErrorResponse "Conflict - Email already in use"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/sign-up [post]
func (h *Handlers) HandleSignUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := validate.Struct(req); err != nil {
			WriteError(w, r, err)
			return
		}

		resp, err := h.service.SignUp(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

// HandleSignIn godoc
// @Summary Sign in a user
// @Description Authenticates a user and returns the public profile with an access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signInBody body auth.SignInRequest true "User credentials"
// @Success 200 {object} auth.AuthResponse "User signed in successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid credentials or input"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/sign-in [post]
func (h *Handlers) HandleSignIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := validate.Struct(req); err != nil {
			WriteError(w, r, err)
			return
		}

		resp, err := h.service.SignIn(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// writeJSON serializes data as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError writes any error as a standardized JSON error response. Errors
// that are not *AppError are wrapped as internal errors, so repository and
// cache connectivity failures surface as 500s without translation.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred: "+err.Error(), err)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
