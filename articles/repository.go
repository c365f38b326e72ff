package articles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/articlehub-go/auth"
)

// Filter restricts FindPaged to a creation-date window and/or an owner.
// Nil date bounds and a zero UserID mean "no restriction".
type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	UserID    int
}

// Repository is the persistence contract the Service depends on. FindByID
// returns (nil, nil) for an absent row; the caller decides the error class.
type Repository interface {
	Create(ctx context.Context, article *Article) (*Article, error)
	FindByID(ctx context.Context, id int, withOwner bool) (*Article, error)
	FindPaged(ctx context.Context, f Filter, skip, take int) ([]Article, int, error)
	UpdateByID(ctx context.Context, id int, fields map[string]interface{}) (int64, error)
	DeleteByID(ctx context.Context, id int) (int64, error)
}

// PgxRepository is the PostgreSQL implementation of Repository.
type PgxRepository struct {
	db *pgxpool.Pool
}

// NewPgxRepository creates a PgxRepository backed by the given pool.
func NewPgxRepository(db *pgxpool.Pool) *PgxRepository {
	return &PgxRepository{db: db}
}

// Create inserts the article and fills in its generated id and timestamps.
func (r *PgxRepository) Create(ctx context.Context, article *Article) (*Article, error) {
	query := `INSERT INTO articles (title, description, user_id)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, article.Title, article.Description, article.UserID).
		Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return article, nil
}

// FindByID loads one article, optionally joining the owner's public profile.
func (r *PgxRepository) FindByID(ctx context.Context, id int, withOwner bool) (*Article, error) {
	if !withOwner {
		var a Article
		query := `SELECT id, title, description, user_id, created_at, updated_at
		          FROM articles WHERE id = $1`
		err := r.db.QueryRow(ctx, query, id).Scan(
			&a.ID, &a.Title, &a.Description, &a.UserID, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil
			}
			return nil, err
		}
		return &a, nil
	}

	var a Article
	var owner auth.UserResponse
	query := `SELECT a.id, a.title, a.description, a.user_id, a.created_at, a.updated_at,
	                 u.id, u.first_name, u.last_name, u.email
	          FROM articles a
	          JOIN users u ON u.id = a.user_id
	          WHERE a.id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Description, &a.UserID, &a.CreatedAt, &a.UpdatedAt,
		&owner.ID, &owner.FirstName, &owner.LastName, &owner.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	a.Owner = &owner
	return &a, nil
}

// whereClause renders the filter as SQL. Both bounds present means an
// inclusive range; a single bound is a one-sided comparison.
func whereClause(f Filter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	n := 1

	switch {
	case f.StartDate != nil && f.EndDate != nil:
		conds = append(conds, fmt.Sprintf("a.created_at BETWEEN $%d AND $%d", n, n+1))
		args = append(args, *f.StartDate, *f.EndDate)
		n += 2
	case f.StartDate != nil:
		conds = append(conds, fmt.Sprintf("a.created_at >= $%d", n))
		args = append(args, *f.StartDate)
		n++
	case f.EndDate != nil:
		conds = append(conds, fmt.Sprintf("a.created_at <= $%d", n))
		args = append(args, *f.EndDate)
		n++
	}

	if f.UserID != 0 {
		conds = append(conds, fmt.Sprintf("a.user_id = $%d", n))
		args = append(args, f.UserID)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// FindPaged returns one page of articles matching the filter, each with the
// owner's public profile joined in, plus the total pre-pagination count.
func (r *PgxRepository) FindPaged(ctx context.Context, f Filter, skip, take int) ([]Article, int, error) {
	where, args := whereClause(f)

	var total int
	countQuery := "SELECT count(*) FROM articles a" + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT a.id, a.title, a.description, a.user_id, a.created_at, a.updated_at,
	                 u.id, u.first_name, u.last_name, u.email
	          FROM articles a
	          JOIN users u ON u.id = a.user_id%s
	          ORDER BY a.id
	          LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, take, skip)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []Article{}
	for rows.Next() {
		var a Article
		var owner auth.UserResponse
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Description, &a.UserID, &a.CreatedAt, &a.UpdatedAt,
			&owner.ID, &owner.FirstName, &owner.LastName, &owner.Email,
		); err != nil {
			return nil, 0, err
		}
		a.Owner = &owner
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// UpdateByID applies the given column values to one row and bumps updated_at.
// It reports the number of rows affected.
func (r *PgxRepository) UpdateByID(ctx context.Context, id int, fields map[string]interface{}) (int64, error) {
	var setClauses []string
	var args []interface{}
	argID := 1
	for col, val := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argID))
		args = append(args, val)
		argID++
	}
	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE articles SET %s WHERE id = $%d`,
		strings.Join(setClauses, ", "), argID)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteByID removes one row, reporting the number of rows affected.
func (r *PgxRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
