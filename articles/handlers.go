package articles

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/articlehub-go/apperror"
	"github.com/user/articlehub-go/auth"
	"github.com/user/articlehub-go/validate"
)

// Handler exposes the article Service over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the article endpoints. List and get are public;
// create, update, and delete sit behind the supplied auth middleware.
func (h *Handler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Get("/", h.handleList)
	r.Get("/{id}", h.handleGet)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", h.handleCreate)
		r.Patch("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

// handleCreate godoc
// @Summary Create a new article
// @Tags Articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param articleBody body articles.CreateArticleRequest true "Article details"
// @Success 201 {object} articles.Article "Article created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Missing or invalid token"
// @Router /article [post]
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("User not authenticated", nil))
		return
	}

	var req CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
		return
	}
	defer r.Body.Close()

	if err := validate.Struct(req); err != nil {
		auth.WriteError(w, r, err)
		return
	}

	article, err := h.service.Create(r.Context(), req, userID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, article)
}

// handleList godoc
// @Summary Get all articles
// @Tags Articles
// @Produce json
// @Param page query int false "Page number for pagination"
// @Param limit query int false "Number of articles per page"
// @Param start_date query string false "Start date for filtering articles"
// @Param end_date query string false "End date for filtering articles"
// @Param user_id query int false "User ID to filter articles by owner"
// @Success 200 {object} articles.ListResponse "Articles fetched successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid filter parameters"
// @Router /article [get]
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	q := ListQuery{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	var err error
	if q.Page, err = queryInt(r, "page"); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("Invalid page parameter", nil))
		return
	}
	if q.Limit, err = queryInt(r, "limit"); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("Invalid limit parameter", nil))
		return
	}
	if q.UserID, err = queryInt(r, "user_id"); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("Invalid user_id parameter", nil))
		return
	}

	resp, err := h.service.List(r.Context(), q)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleGet godoc
// @Summary Get article by ID
// @Tags Articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} articles.Article "Article fetched successfully"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Article does not exist"
// @Router /article/{id} [get]
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	article, err := h.service.FindOne(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

// handleUpdate godoc
// @Summary Update an article
// @Tags Articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param patchBody body articles.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} articles.Article "Article updated successfully"
// @Failure 403 {object} apperror.ErrorResponse "Forbidden - Not the article's owner"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Article does not exist"
// @Router /article/{id} [patch]
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("User not authenticated", nil))
		return
	}

	id, err := pathID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	var patch UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
		return
	}
	defer r.Body.Close()

	article, err := h.service.Update(r.Context(), id, patch, userID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

// handleDelete godoc
// @Summary Delete an article
// @Tags Articles
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 204 "Article deleted successfully"
// @Failure 403 {object} apperror.ErrorResponse "Forbidden - Not the article's owner"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Article does not exist"
// @Router /article/{id} [delete]
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("User not authenticated", nil))
		return
	}

	id, err := pathID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	if _, err := h.service.Remove(r.Context(), id, userID); err != nil {
		auth.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, apperror.NewBadRequestError("Invalid article ID", nil)
	}
	return id, nil
}

// queryInt parses an optional integer query parameter, returning 0 when absent.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}
