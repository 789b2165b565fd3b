package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/middlewares"
	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
	"github.com/sbilibin2017/gw-finance-assistant/internal/services"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserLister lists users for the admin panel.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// UserStatusUpdater changes the subscription state of a user.
type UserStatusUpdater interface {
	UpdateUserStatus(ctx context.Context, userID uuid.UUID, status models.UserStatus) (*models.UserDB, error)
}

// UsersResponse represents the list of users
// swagger:model UsersResponse
type UsersResponse struct {
	Users []models.UserDB `json:"users"`
}

// UpdateStatusRequest represents the JSON body for changing a user status
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	// New status: Teste 7 dias, Ativado, Cancelado or Vencido
	// required: true
	// default: Ativado
	Status models.UserStatus `json:"status"`
}

// UsersErrorResponse represents an error response for user management
// swagger:model UsersErrorResponse
type UsersErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Expire overdue subscriptions and list all users, newest first
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.UsersResponse "Users"
// @Failure 401 {object} handlers.UsersErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.UsersErrorResponse "Internal server error"
// @Router /admin/users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "admin", middlewares.AdminFromContext(r.Context()), "error", err)
			writeJSON(w, http.StatusInternalServerError, UsersErrorResponse{Error: "Internal server error"})
			return
		}
		if users == nil {
			users = []models.UserDB{}
		}

		writeJSON(w, http.StatusOK, UsersResponse{Users: users})
	}
}

// NewUpdateUserStatusHandler returns an HTTP handler changing the status of a user.
// @Summary Update user status
// @Description Set the subscription status of a user. Ativado starts a new 30 day period.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body handlers.UpdateStatusRequest true "New status"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} handlers.UsersErrorResponse "Invalid id, body or status"
// @Failure 401 {object} handlers.UsersErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UsersErrorResponse "User not found"
// @Failure 500 {object} handlers.UsersErrorResponse "Internal server error"
// @Router /admin/users/{id}/status [patch]
// @Security BearerAuth
func NewUpdateUserStatusHandler(svc UserStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, UsersErrorResponse{Error: "Invalid user id"})
			return
		}

		var req UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode status request", "error", err)
			writeJSON(w, http.StatusBadRequest, UsersErrorResponse{Error: "Invalid request body"})
			return
		}

		user, err := svc.UpdateUserStatus(r.Context(), userID, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStatus):
				writeJSON(w, http.StatusBadRequest, UsersErrorResponse{Error: "Invalid status"})
			case errors.Is(err, services.ErrUserNotFound):
				writeJSON(w, http.StatusNotFound, UsersErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to update user status", "user_id", userID, "error", err)
				writeJSON(w, http.StatusInternalServerError, UsersErrorResponse{Error: "Internal server error"})
			}
			return
		}

		logger.Log.Infow("admin changed user status",
			"admin", middlewares.AdminFromContext(r.Context()),
			"user_id", userID,
			"status", user.Status,
		)
		writeJSON(w, http.StatusOK, user)
	}
}
