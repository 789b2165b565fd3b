package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
)

// TransactionMemoryRepository keeps transactions in process memory.
// It implements the same read and write methods as the Postgres repositories.
type TransactionMemoryRepository struct {
	mu     sync.RWMutex
	byUser map[string][]models.Transaction
}

func NewTransactionMemoryRepository() *TransactionMemoryRepository {
	return &TransactionMemoryRepository{byUser: make(map[string][]models.Transaction)}
}

func (r *TransactionMemoryRepository) Save(_ context.Context, phone string, txn models.NewTransaction) (*models.Transaction, error) {
	stored := models.Transaction{
		ID:          uuid.New(),
		Type:        txn.Type,
		Value:       txn.Value,
		Description: txn.Description,
		Timestamp:   txn.Timestamp,
		UserPhone:   phone,
	}

	r.mu.Lock()
	r.byUser[phone] = append(r.byUser[phone], stored)
	r.mu.Unlock()

	return &stored, nil
}

func (r *TransactionMemoryRepository) ListByUser(_ context.Context, phone string) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return newestFirst(r.byUser[phone]), nil
}

func (r *TransactionMemoryRepository) ListByUserInRange(_ context.Context, phone string, from, to time.Time) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var in []models.Transaction
	for _, txn := range r.byUser[phone] {
		if txn.Timestamp.Before(from) || txn.Timestamp.After(to) {
			continue
		}
		in = append(in, txn)
	}
	return newestFirst(in), nil
}

func newestFirst(txns []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
