package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
	"github.com/sbilibin2017/gw-finance-assistant/internal/processor"
)

type chatMocks struct {
	userReader *MockUserReader
	userWriter *MockUserWriter
	txnReader  *MockTransactionReader
	txnWriter  *MockTransactionWriter
	summaries  *MockSummaryInvalidator
	kafka      *MockKafkaWriter
}

var chatNow = time.Date(2025, 6, 15, 15, 0, 0, 0, time.UTC)

func newChatService(ctrl *gomock.Controller) (*ChatService, chatMocks) {
	m := chatMocks{
		userReader: NewMockUserReader(ctrl),
		userWriter: NewMockUserWriter(ctrl),
		txnReader:  NewMockTransactionReader(ctrl),
		txnWriter:  NewMockTransactionWriter(ctrl),
		summaries:  NewMockSummaryInvalidator(ctrl),
		kafka:      NewMockKafkaWriter(ctrl),
	}
	proc := processor.New(
		processor.WithClock(func() time.Time { return chatNow }),
		processor.WithLocation(time.UTC),
	)
	svc := NewChatService(m.userReader, m.userWriter, m.txnReader, m.txnWriter, m.summaries, m.kafka, proc, time.UTC, nil)
	svc.now = func() time.Time { return chatNow }
	return svc, m
}

func activeUser(phone string) *models.UserDB {
	expires := chatNow.Add(24 * time.Hour)
	return &models.UserDB{
		UserID:    uuid.New(),
		Phone:     phone,
		Status:    models.StatusTrial,
		ExpiresAt: &expires,
	}
}

func TestChatService_HandleMessage_RecordsExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newChatService(ctrl)
	ctx := context.Background()
	phone := "5511999990000"

	m.userReader.EXPECT().GetByPhone(ctx, phone).Return(activeUser(phone), nil)
	m.txnReader.EXPECT().ListByUser(ctx, phone).Return(nil, nil)

	stored := &models.Transaction{
		ID:          uuid.New(),
		Type:        models.TypeExpense,
		Value:       decimal.NewFromInt(20),
		Description: "marmita",
		Timestamp:   chatNow,
		UserPhone:   phone,
	}
	m.txnWriter.EXPECT().
		Save(ctx, phone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, txn models.NewTransaction) (*models.Transaction, error) {
			assert.Equal(t, models.TypeExpense, txn.Type)
			assert.True(t, txn.Value.Equal(decimal.NewFromInt(20)))
			assert.Equal(t, "marmita", txn.Description)
			return stored, nil
		})
	m.summaries.EXPECT().Delete(ctx, phone, "2025-06-15").Return(nil)
	m.kafka.EXPECT().
		WriteMessages(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, phone, string(msgs[0].Key))

			var event models.TransactionEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, stored.ID.String(), event.TransactionID)
			assert.Equal(t, models.TypeExpense, event.Type)
			return nil
		})

	reply, err := svc.HandleMessage(ctx, "(11) 99999-0000", "gastei 20 com marmita")
	require.NoError(t, err)
	assert.Equal(t, "💸 Gasto registrado!\nValor: R$ 20,00\nDescrição: marmita", reply)
}

func TestChatService_HandleMessage_ProvisionsNewUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newChatService(ctrl)
	ctx := context.Background()
	phone := "5521988887777"

	m.userReader.EXPECT().GetByPhone(ctx, phone).Return(nil, nil)
	m.userWriter.EXPECT().Create(ctx, phone, chatNow.Add(models.TrialPeriod)).Return(activeUser(phone), nil)
	m.txnReader.EXPECT().ListByUser(ctx, phone).Return(nil, nil)

	reply, err := svc.HandleMessage(ctx, phone, "oi")
	require.NoError(t, err)
	assert.Equal(t, processor.HelpText, reply)
}

func TestChatService_HandleMessage_Query(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newChatService(ctrl)
	ctx := context.Background()
	phone := "5511999990000"

	m.userReader.EXPECT().GetByPhone(ctx, phone).Return(activeUser(phone), nil)
	m.txnReader.EXPECT().ListByUser(ctx, phone).Return([]models.Transaction{
		{Type: models.TypeExpense, Value: decimal.NewFromInt(20), Timestamp: chatNow.Add(-time.Hour)},
		{Type: models.TypeIncome, Value: decimal.NewFromInt(100), Timestamp: chatNow.Add(-2 * time.Hour)},
	}, nil)

	reply, err := svc.HandleMessage(ctx, phone, "saldo do dia")
	require.NoError(t, err)
	assert.Equal(t, "📊 Saldo do dia: R$ 80,00\n💰 Ganhos: R$ 100,00\n💸 Gastos: R$ 20,00", reply)
}

func TestChatService_HandleMessage_InactiveUsers(t *testing.T) {
	past := chatNow.Add(-time.Hour)

	tests := []struct {
		name string
		user *models.UserDB
	}{
		{"canceled", &models.UserDB{Phone: "5511999990000", Status: models.StatusCanceled}},
		{"expired", &models.UserDB{Phone: "5511999990000", Status: models.StatusExpired}},
		{"trial ended", &models.UserDB{Phone: "5511999990000", Status: models.StatusTrial, ExpiresAt: &past}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newChatService(ctrl)
			ctx := context.Background()
			m.userReader.EXPECT().GetByPhone(ctx, "5511999990000").Return(tt.user, nil)

			reply, err := svc.HandleMessage(ctx, "5511999990000", "gastei 20 com marmita")
			require.NoError(t, err)
			assert.Equal(t, InactiveNotice, reply)
		})
	}
}

func TestChatService_HandleMessage_Errors(t *testing.T) {
	dbErr := errors.New("db down")

	tests := []struct {
		name      string
		phone     string
		setup     func(m chatMocks)
		wantErrIs error
	}{
		{
			name:      "invalid phone",
			phone:     "abc",
			setup:     func(m chatMocks) {},
			wantErrIs: ErrInvalidPhone,
		},
		{
			name:  "user lookup fails",
			phone: "5511999990000",
			setup: func(m chatMocks) {
				m.userReader.EXPECT().GetByPhone(gomock.Any(), "5511999990000").Return(nil, dbErr)
			},
			wantErrIs: dbErr,
		},
		{
			name:  "provisioning fails",
			phone: "5511999990000",
			setup: func(m chatMocks) {
				m.userReader.EXPECT().GetByPhone(gomock.Any(), "5511999990000").Return(nil, nil)
				m.userWriter.EXPECT().Create(gomock.Any(), "5511999990000", gomock.Any()).Return(nil, dbErr)
			},
			wantErrIs: dbErr,
		},
		{
			name:  "listing transactions fails",
			phone: "5511999990000",
			setup: func(m chatMocks) {
				m.userReader.EXPECT().GetByPhone(gomock.Any(), "5511999990000").Return(activeUser("5511999990000"), nil)
				m.txnReader.EXPECT().ListByUser(gomock.Any(), "5511999990000").Return(nil, dbErr)
			},
			wantErrIs: dbErr,
		},
		{
			name:  "saving fails",
			phone: "5511999990000",
			setup: func(m chatMocks) {
				m.userReader.EXPECT().GetByPhone(gomock.Any(), "5511999990000").Return(activeUser("5511999990000"), nil)
				m.txnReader.EXPECT().ListByUser(gomock.Any(), "5511999990000").Return(nil, nil)
				m.txnWriter.EXPECT().Save(gomock.Any(), "5511999990000", gomock.Any()).Return(nil, dbErr)
			},
			wantErrIs: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newChatService(ctrl)
			tt.setup(m)

			reply, err := svc.HandleMessage(context.Background(), tt.phone, "gastei 20 com marmita")
			assert.ErrorIs(t, err, tt.wantErrIs)
			assert.Empty(t, reply)
		})
	}
}

func TestChatService_HandleMessage_SideEffectFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newChatService(ctrl)
	ctx := context.Background()
	phone := "5511999990000"

	m.userReader.EXPECT().GetByPhone(ctx, phone).Return(activeUser(phone), nil)
	m.txnReader.EXPECT().ListByUser(ctx, phone).Return(nil, nil)
	m.txnWriter.EXPECT().Save(ctx, phone, gomock.Any()).Return(&models.Transaction{
		ID:        uuid.New(),
		Type:      models.TypeIncome,
		Value:     decimal.NewFromInt(50),
		Timestamp: chatNow,
		UserPhone: phone,
	}, nil)
	m.summaries.EXPECT().Delete(ctx, phone, "2025-06-15").Return(errors.New("redis down"))
	m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("kafka down"))

	reply, err := svc.HandleMessage(ctx, phone, "ganhei 50 do freelance")
	require.NoError(t, err)
	assert.Contains(t, reply, "Ganho registrado")
}

func TestChatService_HandleMessage_WithoutOptionalDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userReader := NewMockUserReader(ctrl)
	txnReader := NewMockTransactionReader(ctrl)
	txnWriter := NewMockTransactionWriter(ctrl)
	proc := NewMockMessageProcessor(ctrl)

	svc := NewChatService(userReader, nil, txnReader, txnWriter, nil, nil, proc, nil, nil)
	svc.now = func() time.Time { return chatNow }

	ctx := context.Background()
	phone := "5511999990000"

	userReader.EXPECT().GetByPhone(ctx, phone).Return(activeUser(phone), nil)
	txnReader.EXPECT().ListByUser(ctx, phone).Return(nil, nil)
	txnWriter.EXPECT().Save(ctx, phone, gomock.Any()).Return(&models.Transaction{ID: uuid.New(), Timestamp: chatNow}, nil)
	proc.EXPECT().
		Process("anything", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ string, _ []models.Transaction, onCreate processor.CreateFunc) (string, error) {
			if err := onCreate(models.NewTransaction{Type: models.TypeIncome, Value: decimal.NewFromInt(1)}); err != nil {
				return "", err
			}
			return "ok", nil
		})

	reply, err := svc.HandleMessage(ctx, phone, "anything")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
}

func TestChatService_Greeting(t *testing.T) {
	svc := NewChatService(nil, nil, nil, nil, nil, nil, nil, nil, nil)
	assert.Equal(t, processor.HelpText, svc.Greeting())
}

func TestChatService_HandleMessage_InvalidatesAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newChatService(ctrl)
	var pending []func()
	svc.afterCommit = func(_ context.Context, fn func()) { pending = append(pending, fn) }

	ctx := context.Background()
	phone := "5511999990000"

	m.userReader.EXPECT().GetByPhone(ctx, phone).Return(activeUser(phone), nil)
	m.txnReader.EXPECT().ListByUser(ctx, phone).Return(nil, nil)
	m.txnWriter.EXPECT().Save(ctx, phone, gomock.Any()).Return(&models.Transaction{
		ID:        uuid.New(),
		Type:      models.TypeExpense,
		Value:     decimal.NewFromInt(20),
		Timestamp: chatNow,
		UserPhone: phone,
	}, nil)

	reply, err := svc.HandleMessage(ctx, phone, "gastei 20 com marmita")
	require.NoError(t, err)
	assert.Contains(t, reply, "Gasto registrado")

	// Nothing reaches Redis or Kafka until the transaction is committed.
	require.Len(t, pending, 1)
	m.summaries.EXPECT().Delete(ctx, phone, "2025-06-15").Return(nil)
	m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)
	pending[0]()
}

func TestChatService_HandleMessage_SaveErrorSkipsCommitHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newChatService(ctrl)
	hooked := false
	svc.afterCommit = func(_ context.Context, fn func()) { hooked = true }

	ctx := context.Background()
	phone := "5511999990000"

	m.userReader.EXPECT().GetByPhone(ctx, phone).Return(activeUser(phone), nil)
	m.txnReader.EXPECT().ListByUser(ctx, phone).Return(nil, nil)
	m.txnWriter.EXPECT().Save(ctx, phone, gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.HandleMessage(ctx, phone, "gastei 20 com marmita")
	require.Error(t, err)
	assert.False(t, hooked)
}
