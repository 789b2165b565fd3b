package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
)

const userColumns = `user_id, phone, status, created_at, activated_at, expires_at, updated_at`

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByPhone returns the user with the given phone, or nil when there is none.
func (r *UserReadRepository) GetByPhone(ctx context.Context, phone string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE phone = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, phone)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{phone},
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users, newest first.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
	`

	users := []models.UserDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a trial user. When the phone already exists the stored row is
// returned unchanged, so concurrent first messages end up with the same user.
func (r *UserWriteRepository) Create(ctx context.Context, phone string, expiresAt time.Time) (*models.UserDB, error) {
	query := `
		INSERT INTO users (user_id, phone, status, created_at, expires_at, updated_at)
		VALUES ($1, $2, $3, NOW(), $4, NOW())
		ON CONFLICT (phone) DO UPDATE
		SET phone = EXCLUDED.phone
		RETURNING ` + userColumns
	args := []any{uuid.New(), phone, string(models.StatusTrial), expiresAt}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateStatus changes the status of a user. Nil activatedAt or expiresAt keep
// the stored values. Returns sql.ErrNoRows when the user does not exist.
func (r *UserWriteRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, status models.UserStatus, activatedAt, expiresAt *time.Time) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET status = $2,
		    activated_at = COALESCE($3, activated_at),
		    expires_at = COALESCE($4, expires_at),
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns
	args := []any{userID, string(status), activatedAt, expiresAt}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExpireOverdue marks trial and active users whose period ended before now as expired.
func (r *UserWriteRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	const query = `
		UPDATE users
		SET status = $1, updated_at = NOW()
		WHERE status IN ($2, $3)
		  AND expires_at < $4
	`
	args := []any{string(models.StatusExpired), string(models.StatusTrial), string(models.StatusActive), now}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
