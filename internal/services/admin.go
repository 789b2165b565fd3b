package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=services

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidStatus      = errors.New("invalid user status")
)

// UserLister lists users for the admin panel.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserStatusWriter changes subscription states.
type UserStatusWriter interface {
	UpdateStatus(ctx context.Context, userID uuid.UUID, status models.UserStatus, activatedAt, expiresAt *time.Time) (*models.UserDB, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, subject string) (string, error)
}

// AdminService handles admin login and user management.
type AdminService struct {
	lister       UserLister
	writer       UserStatusWriter
	jwt          JWTGenerator
	email        string
	passwordHash string
	now          func() time.Time
}

// NewAdminService creates a new AdminService. email and passwordHash (bcrypt)
// are the only accepted admin credentials.
func NewAdminService(lister UserLister, writer UserStatusWriter, jwt JWTGenerator, email, passwordHash string) *AdminService {
	return &AdminService{
		lister:       lister,
		writer:       writer,
		jwt:          jwt,
		email:        email,
		passwordHash: passwordHash,
		now:          time.Now,
	}
}

// Login authenticates the admin and returns a JWT token.
func (svc *AdminService) Login(ctx context.Context, email, password string) (string, error) {
	if svc.email == "" || svc.passwordHash == "" {
		logger.Log.Errorw("admin credentials not configured")
		return "", ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(email), svc.email) {
		logger.Log.Errorw("admin login with unknown email", "email", email)
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(svc.passwordHash), []byte(password)); err != nil {
		logger.Log.Errorw("admin login with wrong password", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, svc.email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}
	return token, nil
}

// ListUsers expires overdue subscriptions and returns all users, newest first.
func (svc *AdminService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	expired, err := svc.writer.ExpireOverdue(ctx, svc.now())
	if err != nil {
		logger.Log.Errorw("failed to expire overdue users", "err", err)
		return nil, err
	}
	if expired > 0 {
		logger.Log.Infow("expired overdue users", "count", expired)
	}

	users, err := svc.lister.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// UpdateUserStatus sets the status of a user. Activating starts a new 30 day period.
func (svc *AdminService) UpdateUserStatus(ctx context.Context, userID uuid.UUID, status models.UserStatus) (*models.UserDB, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var activatedAt, expiresAt *time.Time
	if status == models.StatusActive {
		now := svc.now()
		until := now.Add(models.ActivationPeriod)
		activatedAt, expiresAt = &now, &until
	}

	user, err := svc.writer.UpdateStatus(ctx, userID, status, activatedAt, expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update user status", "user_id", userID, "status", status, "err", err)
		return nil, err
	}

	logger.Log.Infow("user status updated", "user_id", userID, "status", status)
	return user, nil
}
