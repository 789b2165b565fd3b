package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
	"github.com/sbilibin2017/gw-finance-assistant/internal/phone"
	"github.com/sbilibin2017/gw-finance-assistant/internal/processor"
)

//go:generate mockgen -source=chat.go -destination=chat_mock.go -package=services

var (
	// ErrInvalidPhone is returned when a phone number has no digits.
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrSubscriptionInactive is returned for users whose subscription was canceled or has expired.
	ErrSubscriptionInactive = errors.New("subscription inactive")
)

// InactiveNotice is the reply sent to users whose subscription is not active.
const InactiveNotice = "⚠️ Sua assinatura não está ativa. Fale com o suporte para reativar o seu acesso."

// UserReader loads users by phone.
type UserReader interface {
	GetByPhone(ctx context.Context, phone string) (*models.UserDB, error) // Returns nil when the user does not exist
}

// UserWriter provisions users.
type UserWriter interface {
	Create(ctx context.Context, phone string, expiresAt time.Time) (*models.UserDB, error) // Creates a trial user or returns the existing one
}

// TransactionReader lists a user's transactions.
type TransactionReader interface {
	ListByUser(ctx context.Context, phone string) ([]models.Transaction, error) // Newest first
}

// TransactionWriter stores transactions.
type TransactionWriter interface {
	Save(ctx context.Context, phone string, txn models.NewTransaction) (*models.Transaction, error) // Assigns ID and owner
}

// SummaryInvalidator drops cached daily summaries.
type SummaryInvalidator interface {
	Delete(ctx context.Context, phone, day string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AfterCommitFunc defers fn until the database transaction bound to ctx is
// committed. It runs fn immediately when ctx carries no transaction.
type AfterCommitFunc func(ctx context.Context, fn func())

// MessageProcessor interprets one chat message.
type MessageProcessor interface {
	Process(text string, txns []models.Transaction, onCreate processor.CreateFunc) (string, error)
}

// ChatService answers chat messages on behalf of a user.
type ChatService struct {
	userReader  UserReader
	userWriter  UserWriter
	txnReader   TransactionReader
	txnWriter   TransactionWriter
	summaries   SummaryInvalidator
	kafkaWriter KafkaWriter
	processor   MessageProcessor
	location    *time.Location
	afterCommit AfterCommitFunc
	now         func() time.Time
}

// NewChatService creates a new ChatService. summaries and kafkaWriter may be nil.
// Cache invalidation and events for a stored transaction wait for afterCommit;
// a nil afterCommit runs them as soon as the transaction is saved.
func NewChatService(
	userReader UserReader,
	userWriter UserWriter,
	txnReader TransactionReader,
	txnWriter TransactionWriter,
	summaries SummaryInvalidator,
	kafkaWriter KafkaWriter,
	processor MessageProcessor,
	location *time.Location,
	afterCommit AfterCommitFunc,
) *ChatService {
	if location == nil {
		location = time.Local
	}
	if afterCommit == nil {
		afterCommit = func(_ context.Context, fn func()) { fn() }
	}
	return &ChatService{
		userReader:  userReader,
		userWriter:  userWriter,
		txnReader:   txnReader,
		txnWriter:   txnWriter,
		summaries:   summaries,
		kafkaWriter: kafkaWriter,
		processor:   processor,
		location:    location,
		afterCommit: afterCommit,
		now:         time.Now,
	}
}

// Greeting returns the first message of a chat.
func (s *ChatService) Greeting() string {
	return processor.HelpText
}

// HandleMessage answers text sent by the user identified by rawPhone. Unknown
// users are provisioned on a trial. Users without an active subscription get
// InactiveNotice and their message is not interpreted.
func (s *ChatService) HandleMessage(ctx context.Context, rawPhone, text string) (string, error) {
	userPhone := phone.Normalize(rawPhone)
	if userPhone == "" {
		return "", ErrInvalidPhone
	}

	user, err := s.loadUser(ctx, userPhone)
	if err != nil {
		return "", err
	}

	if err := s.ensureActive(user); err != nil {
		if errors.Is(err, ErrSubscriptionInactive) {
			logger.Log.Infow("message from inactive user", "phone", userPhone, "status", user.Status)
			return InactiveNotice, nil
		}
		return "", err
	}

	txns, err := s.txnReader.ListByUser(ctx, userPhone)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "phone", userPhone, "error", err)
		return "", err
	}

	reply, err := s.processor.Process(text, txns, func(txn models.NewTransaction) error {
		stored, err := s.txnWriter.Save(ctx, userPhone, txn)
		if err != nil {
			logger.Log.Errorw("failed to save transaction", "phone", userPhone, "error", err)
			return fmt.Errorf("save transaction: %w", err)
		}
		s.afterCommit(ctx, func() {
			s.invalidateSummary(ctx, userPhone, stored.Timestamp)
			s.publishTransaction(ctx, *stored)
		})
		return nil
	})
	if err != nil {
		return "", err
	}

	return reply, nil
}

func (s *ChatService) loadUser(ctx context.Context, userPhone string) (*models.UserDB, error) {
	user, err := s.userReader.GetByPhone(ctx, userPhone)
	if err != nil {
		logger.Log.Errorw("failed to get user", "phone", userPhone, "error", err)
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = s.userWriter.Create(ctx, userPhone, s.now().Add(models.TrialPeriod))
	if err != nil {
		logger.Log.Errorw("failed to create user", "phone", userPhone, "error", err)
		return nil, err
	}
	logger.Log.Infow("user provisioned", "phone", userPhone, "user_id", user.UserID)
	return user, nil
}

// ensureActive also catches periods that ended before ExpireOverdue ran.
func (s *ChatService) ensureActive(user *models.UserDB) error {
	if !user.Status.CanChat() {
		return ErrSubscriptionInactive
	}
	if user.ExpiresAt != nil && user.ExpiresAt.Before(s.now()) {
		return ErrSubscriptionInactive
	}
	return nil
}

func (s *ChatService) invalidateSummary(ctx context.Context, userPhone string, ts time.Time) {
	if s.summaries == nil {
		return
	}
	day := ts.In(s.location).Format(time.DateOnly)
	if err := s.summaries.Delete(ctx, userPhone, day); err != nil {
		logger.Log.Warnw("failed to invalidate daily summary", "phone", userPhone, "day", day, "error", err)
	}
}

// publishTransaction publishes a stored transaction to Kafka.
func (s *ChatService) publishTransaction(ctx context.Context, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.ID)
		return
	}

	data, err := json.Marshal(models.NewTransactionEvent(txn))
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.UserPhone),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.ID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.ID, "value", txn.Value)
	}
}
