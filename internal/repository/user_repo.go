package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"portfolio_backend/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of the Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (email, password_hash, name, job_title, bio)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	selectUserColumns = `id, email, password_hash, name, job_title, bio, profile_image`

	selectUserByEmailSQL = `SELECT ` + selectUserColumns + ` FROM users WHERE email = $1`
	selectUserByIDSQL    = `SELECT ` + selectUserColumns + ` FROM users WHERE id = $1`
)

const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// Create inserts a new user. A duplicate email yields ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash, name, jobTitle, bio string) (*models.User, error) {
	u := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		JobTitle:     jobTitle,
		Bio:          bio,
	}
	err := r.db.QueryRowContext(ctx, insertUserSQL, email, passwordHash, name, jobTitle, bio).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user %q: %w", email, err)
	}
	return &u, nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return u, nil
}

// UpdateProfile applies only the fields present in upd and returns the
// resulting row. An empty update degenerates to a plain fetch.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int, upd ProfileUpdate) (*models.User, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	appendSet := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	appendSet("name", upd.Name)
	appendSet("job_title", upd.JobTitle)
	appendSet("bio", upd.Bio)
	appendSet("profile_image", upd.ProfileImage)

	if len(sets) == 0 {
		u, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, ErrNotFound
		}
		return u, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d RETURNING `+selectUserColumns,
		strings.Join(sets, ", "), len(args),
	)

	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("update user id=%d: %w", id, err)
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// scanUser builds a user from a single row, mapping ErrNoRows to (nil, nil).
func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.JobTitle, &u.Bio, &u.ProfileImage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
