package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/services"
)

//go:generate mockgen -source=message.go -destination=message_mock.go -package=handlers

// MessageHandler defines the chat service method needed by the message handlers.
type MessageHandler interface {
	HandleMessage(ctx context.Context, phone, text string) (string, error)
}

// Greeter returns the first bot message of a chat.
type Greeter interface {
	Greeting() string
}

// MessageRequest represents the JSON body of a chat message
// swagger:model MessageRequest
type MessageRequest struct {
	// Phone number of the user
	// required: true
	// default: 5511999990000
	Phone string `json:"phone"`

	// Message text
	// required: true
	// default: gastei 20 no almoço
	Text string `json:"text"`
}

// MessageResponse represents the bot reply
// swagger:model MessageResponse
type MessageResponse struct {
	// Reply text
	// default: 💸 Gasto registrado!
	Reply string `json:"reply"`
}

// MessageErrorResponse represents an error response for chat endpoints
// swagger:model MessageErrorResponse
type MessageErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewMessageHandler returns an HTTP handler that answers a chat message.
// @Summary Send chat message
// @Description Interpret a message from a user. Expenses and income are recorded, balance queries are answered and anything else gets the help text.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body handlers.MessageRequest true "Message"
// @Param Idempotency-Key header string false "Idempotency key"
// @Success 200 {object} handlers.MessageResponse "Bot reply"
// @Failure 400 {object} handlers.MessageErrorResponse "Invalid phone or text"
// @Failure 401 {object} handlers.MessageErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.MessageErrorResponse "Request with the same idempotency key in progress"
// @Failure 500 {object} handlers.MessageErrorResponse "Internal server error"
// @Router /messages [post]
// @Security ApiKeyAuth
func NewMessageHandler(svc MessageHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode message request", "error", err)
			writeJSON(w, http.StatusBadRequest, MessageErrorResponse{Error: "Invalid request body"})
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			writeJSON(w, http.StatusBadRequest, MessageErrorResponse{Error: "Text is required"})
			return
		}

		reply, err := svc.HandleMessage(r.Context(), req.Phone, req.Text)
		if err != nil {
			if errors.Is(err, services.ErrInvalidPhone) {
				writeJSON(w, http.StatusBadRequest, MessageErrorResponse{Error: "Invalid phone number"})
				return
			}
			logger.Log.Errorw("failed to handle message", "phone", req.Phone, "error", err)
			writeJSON(w, http.StatusInternalServerError, MessageErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Reply: reply})
	}
}

// NewGreetingHandler returns an HTTP handler with the greeting shown when a chat opens.
// @Summary Chat greeting
// @Description First bot message of a chat, the same text sent for unrecognised messages
// @Tags chat
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Greeting"
// @Failure 401 {object} handlers.MessageErrorResponse "Unauthorized"
// @Router /messages/greeting [get]
// @Security ApiKeyAuth
func NewGreetingHandler(svc Greeter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Reply: svc.Greeting()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
