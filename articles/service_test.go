package articles

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/user/articlehub-go/apperror"
	"github.com/user/articlehub-go/auth"
)

// fakeRepo is an in-memory Repository. It applies the filter and pagination
// itself so List tests exercise real windows, and records calls so tests can
// assert what the service asked for.
type fakeRepo struct {
	items       map[int]Article
	nextID      int
	updateCalls int
	lastSkip    int
	lastTake    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[int]Article{}, nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, article *Article) (*Article, error) {
	a := *article
	a.ID = f.nextID
	f.nextID++
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	f.items[a.ID] = a
	return &a, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int, withOwner bool) (*Article, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	if withOwner {
		a.Owner = &auth.UserResponse{ID: a.UserID}
	}
	return &a, nil
}

func (f *fakeRepo) FindPaged(_ context.Context, flt Filter, skip, take int) ([]Article, int, error) {
	f.lastSkip, f.lastTake = skip, take

	var matched []Article
	for _, a := range f.items {
		if flt.StartDate != nil && a.CreatedAt.Before(*flt.StartDate) {
			continue
		}
		if flt.EndDate != nil && a.CreatedAt.After(*flt.EndDate) {
			continue
		}
		if flt.UserID != 0 && a.UserID != flt.UserID {
			continue
		}
		a.Owner = &auth.UserResponse{ID: a.UserID}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	if skip >= total {
		return []Article{}, total, nil
	}
	end := skip + take
	if end > total {
		end = total
	}
	return matched[skip:end], total, nil
}

func (f *fakeRepo) UpdateByID(_ context.Context, id int, fields map[string]interface{}) (int64, error) {
	f.updateCalls++
	a, ok := f.items[id]
	if !ok {
		return 0, nil
	}
	if title, ok := fields["title"]; ok {
		a.Title = title.(string)
	}
	if description, ok := fields["description"]; ok {
		a.Description = description.(string)
	}
	a.UpdatedAt = time.Now()
	f.items[id] = a
	return 1, nil
}

func (f *fakeRepo) DeleteByID(_ context.Context, id int) (int64, error) {
	if _, ok := f.items[id]; !ok {
		return 0, nil
	}
	delete(f.items, id)
	return 1, nil
}

// seed inserts an article owned by ownerID created at the given time.
func (f *fakeRepo) seed(ownerID int, title string, createdAt time.Time) int {
	id := f.nextID
	f.nextID++
	f.items[id] = Article{
		ID:          id,
		Title:       title,
		Description: "seeded",
		UserID:      ownerID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	return id
}

func strptr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	article, err := svc.Create(context.Background(), CreateArticleRequest{
		Title:       "Hello",
		Description: "World",
	}, 9)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if article.ID == 0 {
		t.Error("Create() did not assign an id")
	}
	if article.UserID != 9 {
		t.Errorf("owner = %d, want 9", article.UserID)
	}
	if article.CreatedAt.IsZero() || article.UpdatedAt.IsZero() {
		t.Error("Create() did not set timestamps")
	}
}

func TestService_FindOne(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	id := repo.seed(1, "first", time.Now())

	article, err := svc.FindOne(context.Background(), id)
	if err != nil {
		t.Fatalf("FindOne() error: %v", err)
	}
	if article.Owner == nil {
		t.Error("FindOne() did not include the owner profile")
	}

	_, err = svc.FindOne(context.Background(), 999)
	if !apperror.IsNotFound(err) {
		t.Errorf("FindOne(missing) error = %v, want NotFound", err)
	}
}

func TestService_Update_OwnershipCheck(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	id := repo.seed(1, "original", time.Now())

	// Missing article: NotFound regardless of who asks.
	_, err := svc.Update(context.Background(), 999, UpdateArticleRequest{Title: strptr("x")}, 1)
	if !apperror.IsNotFound(err) {
		t.Errorf("Update(missing) error = %v, want NotFound", err)
	}

	// Acting user is not the owner.
	_, err = svc.Update(context.Background(), id, UpdateArticleRequest{Title: strptr("x")}, 2)
	if !apperror.IsUnauthorized(err) {
		t.Errorf("Update(foreign owner) error = %v, want Unauthorized", err)
	}
	if repo.items[id].Title != "original" {
		t.Error("rejected update still modified the record")
	}

	// Owner succeeds.
	updated, err := svc.Update(context.Background(), id, UpdateArticleRequest{Title: strptr("changed")}, 1)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Title != "changed" {
		t.Errorf("title = %q, want %q", updated.Title, "changed")
	}
}

func TestService_Update_EmptyPatchDoesNotWrite(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	id := repo.seed(1, "untouched", time.Now())

	tests := []struct {
		name  string
		patch UpdateArticleRequest
	}{
		{"no fields", UpdateArticleRequest{}},
		{"empty strings", UpdateArticleRequest{Title: strptr(""), Description: strptr("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, err := svc.Update(context.Background(), id, tt.patch, 1)
			if err != nil {
				t.Fatalf("Update() error: %v", err)
			}
			if article.Title != "untouched" {
				t.Errorf("title = %q, want %q", article.Title, "untouched")
			}
			if repo.updateCalls != 0 {
				t.Errorf("repository UpdateByID was called %d times, want 0", repo.updateCalls)
			}
		})
	}
}

func TestService_Remove(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	id := repo.seed(1, "doomed", time.Now())

	// Missing article.
	_, err := svc.Remove(context.Background(), 999, 1)
	if !apperror.IsNotFound(err) {
		t.Errorf("Remove(missing) error = %v, want NotFound", err)
	}

	// Foreign owner.
	_, err = svc.Remove(context.Background(), id, 2)
	if !apperror.IsUnauthorized(err) {
		t.Errorf("Remove(foreign owner) error = %v, want Unauthorized", err)
	}

	// Owner removes exactly once.
	ok, err := svc.Remove(context.Background(), id, 1)
	if err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if !ok {
		t.Error("Remove() = false, want true")
	}

	// A second call finds nothing.
	_, err = svc.Remove(context.Background(), id, 1)
	if !apperror.IsNotFound(err) {
		t.Errorf("second Remove() error = %v, want NotFound", err)
	}
}

func TestService_List_DateValidation(t *testing.T) {
	svc := NewService(newFakeRepo())

	tests := []struct {
		name    string
		query   ListQuery
		wantMsg string
	}{
		{
			name:    "invalid start_date",
			query:   ListQuery{Page: 1, Limit: 10, StartDate: "bad", EndDate: ""},
			wantMsg: "Invalid start_date format",
		},
		{
			name:    "invalid end_date",
			query:   ListQuery{Page: 1, Limit: 10, EndDate: "2024-09-10"},
			wantMsg: "Invalid end_date format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.List(context.Background(), tt.query)
			if !apperror.IsBadRequest(err) {
				t.Fatalf("List() error = %v, want BadRequest", err)
			}
			appErr, _ := apperror.FromError(err)
			if appErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", appErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestService_List_WindowAndOwnerFilter(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	inWindow := time.Date(2024, 9, 5, 12, 0, 0, 0, time.UTC)
	beforeWindow := time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)
	afterWindow := time.Date(2024, 9, 20, 12, 0, 0, 0, time.UTC)

	wantID := repo.seed(1, "match", inWindow)
	repo.seed(1, "too early", beforeWindow)
	repo.seed(1, "too late", afterWindow)
	repo.seed(2, "wrong owner", inWindow)

	resp, err := svc.List(context.Background(), ListQuery{
		Page:      1,
		Limit:     10,
		StartDate: "2024-09-01T00:00:00.000Z",
		EndDate:   "2024-09-10T23:59:59.999Z",
		UserID:    1,
	})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("total = %d, want 1", resp.Total)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != wantID {
		t.Fatalf("data = %+v, want the single in-window article %d", resp.Data, wantID)
	}
	if repo.lastSkip != 0 || repo.lastTake != 10 {
		t.Errorf("skip/take = %d/%d, want 0/10", repo.lastSkip, repo.lastTake)
	}
}

func TestService_List_OneSidedWindows(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	early := repo.seed(1, "early", time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))
	late := repo.seed(1, "late", time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))

	// start_date only: greater-than-or-equal match.
	resp, err := svc.List(context.Background(), ListQuery{StartDate: "2024-09-01T00:00:00Z"})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != late {
		t.Errorf("start-only window returned %+v, want article %d", resp.Data, late)
	}

	// end_date only: less-than-or-equal match.
	resp, err = svc.List(context.Background(), ListQuery{EndDate: "2024-09-01T00:00:00Z"})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != early {
		t.Errorf("end-only window returned %+v, want article %d", resp.Data, early)
	}
}

func TestService_List_PaginationDefaults(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	for i := 0; i < 25; i++ {
		repo.seed(1, "bulk", time.Now())
	}

	tests := []struct {
		name               string
		page, limit        int
		wantSkip, wantTake int
		wantPage, wantLen  int
	}{
		{"zero values fall back to defaults", 0, 0, 0, 10, 1, 10},
		{"explicit page and limit", 3, 5, 10, 5, 3, 5},
		{"past the end", 10, 10, 90, 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.List(context.Background(), ListQuery{Page: tt.page, Limit: tt.limit})
			if err != nil {
				t.Fatalf("List() error: %v", err)
			}
			if repo.lastSkip != tt.wantSkip || repo.lastTake != tt.wantTake {
				t.Errorf("skip/take = %d/%d, want %d/%d", repo.lastSkip, repo.lastTake, tt.wantSkip, tt.wantTake)
			}
			if resp.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", resp.Page, tt.wantPage)
			}
			if len(resp.Data) != tt.wantLen {
				t.Errorf("len(data) = %d, want %d", len(resp.Data), tt.wantLen)
			}
			if resp.Total != 25 {
				t.Errorf("total = %d, want 25", resp.Total)
			}
		})
	}
}
