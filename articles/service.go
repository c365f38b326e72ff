package articles

import (
	"context"
	"fmt"
	"time"

	"github.com/user/articlehub-go/apperror"
)

// Service implements the article business rules over a Repository. Mutations
// run an ownership check first: the acting user must be the article's owner.
type Service struct {
	repo Repository
}

// NewService creates a Service with its repository injected.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new article owned by ownerID and returns the persisted
// form, including the generated id and timestamps.
func (s *Service) Create(ctx context.Context, req CreateArticleRequest, ownerID int) (*Article, error) {
	article := &Article{
		Title:       req.Title,
		Description: req.Description,
		UserID:      ownerID,
	}
	created, err := s.repo.Create(ctx, article)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create article", err)
	}
	return created, nil
}

// List returns one page of articles matching the query's filter, with each
// owner's public profile joined in and the total pre-pagination count.
// A supplied date that fails strict ISO-8601 validation is rejected before
// any query runs.
func (s *Service) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	var f Filter
	if q.StartDate != "" {
		if !IsValidDate(q.StartDate) {
			return nil, apperror.NewBadRequestError("Invalid start_date format", nil)
		}
		t, err := time.Parse(time.RFC3339, q.StartDate)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid start_date format", nil)
		}
		f.StartDate = &t
	}
	if q.EndDate != "" {
		if !IsValidDate(q.EndDate) {
			return nil, apperror.NewBadRequestError("Invalid end_date format", nil)
		}
		t, err := time.Parse(time.RFC3339, q.EndDate)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid end_date format", nil)
		}
		f.EndDate = &t
	}
	f.UserID = q.UserID

	skip := (page - 1) * limit
	items, total, err := s.repo.FindPaged(ctx, f, skip, limit)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list articles", err)
	}

	return &ListResponse{
		Data:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// FindOne loads an article by id with its owner's public profile.
func (s *Service) FindOne(ctx context.Context, id int) (*Article, error) {
	article, err := s.repo.FindByID(ctx, id, true)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to load article", err)
	}
	if article == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Article with ID %d not found", id), nil)
	}
	return article, nil
}

// loadOwned is the ownership check shared by Update and Remove: the article
// must exist, and its owner must be the acting user. A missing article is
// NotFound; a foreign owner is Unauthorized. Order matters — existence is
// checked before ownership.
func (s *Service) loadOwned(ctx context.Context, id, actingUserID int, action string) (*Article, error) {
	article, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to load article", err)
	}
	if article == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Article with ID %d not found", id), nil)
	}
	if article.UserID != actingUserID {
		return nil, apperror.NewUnauthorizedError(
			fmt.Sprintf("You are not authorized to %s this article", action), nil)
	}
	return article, nil
}

// Update applies the patch to an article the acting user owns. Only fields
// actually present in the patch are written; an empty patch returns the
// existing article without touching the database.
func (s *Service) Update(ctx context.Context, id int, patch UpdateArticleRequest, actingUserID int) (*Article, error) {
	existing, err := s.loadOwned(ctx, id, actingUserID, "update")
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Title != nil && *patch.Title != "" {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil && *patch.Description != "" {
		fields["description"] = *patch.Description
	}
	if len(fields) == 0 {
		return existing, nil
	}

	if _, err := s.repo.UpdateByID(ctx, id, fields); err != nil {
		return nil, apperror.NewDatabaseError("failed to update article", err)
	}
	return s.FindOne(ctx, id)
}

// Remove deletes an article the acting user owns. It reports whether exactly
// one record was removed.
func (s *Service) Remove(ctx context.Context, id, actingUserID int) (bool, error) {
	if _, err := s.loadOwned(ctx, id, actingUserID, "delete"); err != nil {
		return false, err
	}
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, apperror.NewDatabaseError("failed to delete article", err)
	}
	return affected == 1, nil
}
