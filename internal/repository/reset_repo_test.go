package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockResetRepo(t *testing.T) (*ResetTokenRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewResetTokenRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestResetTokenRepository_Create(t *testing.T) {
	repo, mock, cleanup := newMockResetRepo(t)
	defer cleanup()

	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(insertResetSQL)).
		WithArgs(7, "tok-abc", expires).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), 7, "tok-abc", expires); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResetTokenRepository_GetByToken(t *testing.T) {
	repo, mock, cleanup := newMockResetRepo(t)
	defer cleanup()

	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "token", "expires_at"}).
		AddRow(1, 7, "tok-abc", expires)
	mock.ExpectQuery(regexp.QuoteMeta(selectResetByTokenSQL)).
		WithArgs("tok-abc").
		WillReturnRows(rows)

	p, err := repo.GetByToken(context.Background(), "tok-abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || p.UserID != 7 || !p.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected token: %+v", p)
	}
}

func TestResetTokenRepository_GetByToken_NotFound(t *testing.T) {
	repo, mock, cleanup := newMockResetRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectResetByTokenSQL)).
		WithArgs("never-issued").
		WillReturnError(sql.ErrNoRows)

	p, err := repo.GetByToken(context.Background(), "never-issued")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil token, got %+v", p)
	}
}

func TestResetTokenRepository_ResetPassword_CommitsBothStatements(t *testing.T) {
	repo, mock, cleanup := newMockResetRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(updatePasswordSQL)).
		WithArgs("newhash", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserResetsSQL)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := repo.ResetPassword(context.Background(), 7, "newhash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResetTokenRepository_ResetPassword_RollsBackOnFailure(t *testing.T) {
	repo, mock, cleanup := newMockResetRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(updatePasswordSQL)).
		WithArgs("newhash", 7).
		WillReturnError(errors.New("write failed"))
	mock.ExpectRollback()

	err := repo.ResetPassword(context.Background(), 7, "newhash")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}
