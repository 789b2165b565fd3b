package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
)

// TransactionWriteRepository stores new transactions.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter TxGetter) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts txn for the user identified by phone and returns the stored row.
func (r *TransactionWriteRepository) Save(ctx context.Context, phone string, txn models.NewTransaction) (*models.Transaction, error) {
	const query = `
		INSERT INTO transactions (id, user_phone, type, value, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_phone, type, value, description, created_at
	`
	args := []any{uuid.New(), phone, string(txn.Type), txn.Value, txn.Description, txn.Timestamp}

	var stored models.Transaction
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &stored, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", stored,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// TransactionReadRepository reads a user's transactions, newest first.
type TransactionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionReadRepository(db *sqlx.DB, txGetter TxGetter) *TransactionReadRepository {
	return &TransactionReadRepository{db: db, txGetter: txGetter}
}

// ListByUser returns every transaction of the user.
func (r *TransactionReadRepository) ListByUser(ctx context.Context, phone string) ([]models.Transaction, error) {
	const query = `
		SELECT id, user_phone, type, value, description, created_at
		FROM transactions
		WHERE user_phone = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, phone)
}

// ListByUserInRange returns the user's transactions with from <= created_at <= to.
func (r *TransactionReadRepository) ListByUserInRange(ctx context.Context, phone string, from, to time.Time) ([]models.Transaction, error) {
	const query = `
		SELECT id, user_phone, type, value, description, created_at
		FROM transactions
		WHERE user_phone = $1
		  AND created_at BETWEEN $2 AND $3
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, phone, from, to)
}

func (r *TransactionReadRepository) list(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	txns := []models.Transaction{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &txns, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(txns),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return txns, nil
}
