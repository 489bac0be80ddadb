package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfolio_backend/internal/models"
)

type ResetTokenRepository struct {
	db *sql.DB
}

func NewResetTokenRepository(db *sql.DB) *ResetTokenRepository {
	return &ResetTokenRepository{db: db}
}

var _ ResetTokens = (*ResetTokenRepository)(nil)

const (
	insertResetSQL = `INSERT INTO password_resets (user_id, token, expires_at)
		VALUES ($1, $2, $3)`

	selectResetByTokenSQL = `SELECT id, user_id, token, expires_at
		FROM password_resets WHERE token = $1`

	updatePasswordSQL   = `UPDATE users SET password_hash = $1 WHERE id = $2`
	deleteUserResetsSQL = `DELETE FROM password_resets WHERE user_id = $1`
)

// Create stores a freshly issued reset token.
func (r *ResetTokenRepository) Create(ctx context.Context, userID int, token string, expiresAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, insertResetSQL, userID, token, expiresAt.UTC()); err != nil {
		return fmt.Errorf("insert reset token for user %d: %w", userID, err)
	}
	return nil
}

// GetByToken fetches a stored token. Returns (nil, nil) if not found.
func (r *ResetTokenRepository) GetByToken(ctx context.Context, token string) (*models.PasswordReset, error) {
	var p models.PasswordReset
	err := r.db.QueryRowContext(ctx, selectResetByTokenSQL, token).
		Scan(&p.ID, &p.UserID, &p.Token, &p.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select reset token: %w", err)
	}
	p.ExpiresAt = p.ExpiresAt.UTC()
	return &p, nil
}

// ResetPassword rewrites the user's password hash and deletes every
// outstanding reset token for that user. Both statements run in one
// transaction; a failure rolls the whole redeem back.
func (r *ResetTokenRepository) ResetPassword(ctx context.Context, userID int, newHash string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset transaction: %w", err)
	}
	defer func() {
		// No-op after a successful commit.
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, updatePasswordSQL, newHash, userID); err != nil {
		return fmt.Errorf("update password for user %d: %w", userID, err)
	}
	if _, err := tx.ExecContext(ctx, deleteUserResetsSQL, userID); err != nil {
		return fmt.Errorf("delete reset tokens for user %d: %w", userID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset transaction: %w", err)
	}
	return nil
}
