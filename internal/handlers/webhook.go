package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-finance-assistant/internal/gateway"
	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/services"
)

//go:generate mockgen -source=webhook.go -destination=webhook_mock.go -package=handlers

const upsertEvent = "messages.upsert"

// Webhook outcomes reported back to the gateway.
const (
	WebhookProcessed   = "processed"
	WebhookIgnored     = "ignored"
	WebhookDuplicate   = "duplicate"
	WebhookUndelivered = "undelivered"
)

// MessageDeduper remembers gateway message ids.
type MessageDeduper interface {
	MarkSeen(ctx context.Context, key string) (bool, error) // Reports true the first time key is seen
	Forget(ctx context.Context, key string) error           // Makes key new again
}

// TextSender sends a reply through the messaging gateway.
type TextSender interface {
	SendText(ctx context.Context, phone, text string) error
}

// WebhookKey identifies a gateway message
// swagger:model WebhookKey
type WebhookKey struct {
	// Chat id, phone number followed by the WhatsApp domain
	// default: 5511999990000@s.whatsapp.net
	RemoteJID string `json:"remoteJid"`

	// True for messages sent by the bot itself
	FromMe bool `json:"fromMe"`

	// Gateway message id
	// default: 3EB0C767D26B8A1F
	ID string `json:"id"`
}

// WebhookText is the text of a long or quoted message
// swagger:model WebhookText
type WebhookText struct {
	Text string `json:"text"`
}

// WebhookMessage is the content of a gateway message
// swagger:model WebhookMessage
type WebhookMessage struct {
	// Plain text
	// default: gastei 20 no almoço
	Conversation string `json:"conversation"`

	ExtendedTextMessage *WebhookText `json:"extendedTextMessage,omitempty"`
}

// WebhookData is the message carried by an event
// swagger:model WebhookData
type WebhookData struct {
	Key      WebhookKey      `json:"key"`
	PushName string          `json:"pushName"`
	Message  *WebhookMessage `json:"message"`
}

// WebhookRequest represents a gateway event
// swagger:model WebhookRequest
type WebhookRequest struct {
	// Event name
	// default: messages.upsert
	Event string `json:"event"`

	// Gateway instance name
	Instance string `json:"instance"`

	Data WebhookData `json:"data"`
}

// WebhookResponse tells the gateway what happened to the event
// swagger:model WebhookResponse
type WebhookResponse struct {
	// One of processed, ignored, duplicate, undelivered
	// default: processed
	Status string `json:"status"`
}

// text returns the message text, or "" when the event carries none.
func (req WebhookRequest) text() string {
	m := req.Data.Message
	if m == nil {
		return ""
	}
	if m.Conversation != "" {
		return m.Conversation
	}
	if m.ExtendedTextMessage != nil {
		return m.ExtendedTextMessage.Text
	}
	return ""
}

func isUpsert(event string) bool {
	return event == "" || strings.EqualFold(strings.ReplaceAll(event, "_", "."), upsertEvent)
}

// NewWebhookHandler returns an HTTP handler for incoming WhatsApp messages.
// @Summary WhatsApp webhook
// @Description Receives messages.upsert events from the messaging gateway, answers the message and sends the reply back through the gateway. Own messages, group chats and events without text are ignored. Each gateway message id is processed once; a message that failed with 500 is processed again when the gateway retries it.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body handlers.WebhookRequest true "Gateway event"
// @Success 200 {object} handlers.WebhookResponse "Event handled"
// @Failure 400 {object} handlers.MessageErrorResponse "Invalid request body or phone"
// @Failure 401 {object} handlers.MessageErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.MessageErrorResponse "Internal server error"
// @Router /webhook/whatsapp [post]
// @Security ApiKeyAuth
func NewWebhookHandler(
	chat MessageHandler,
	deduper MessageDeduper,
	sender TextSender,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req WebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode webhook request", "error", err)
			writeJSON(w, http.StatusBadRequest, MessageErrorResponse{Error: "Invalid request body"})
			return
		}

		key := req.Data.Key
		text := strings.TrimSpace(req.text())
		if !isUpsert(req.Event) || key.FromMe || text == "" || strings.HasSuffix(key.RemoteJID, "@g.us") {
			writeJSON(w, http.StatusOK, WebhookResponse{Status: WebhookIgnored})
			return
		}

		dedupeKey := "webhook:" + key.ID
		if key.ID != "" {
			first, err := deduper.MarkSeen(ctx, dedupeKey)
			if err != nil {
				logger.Log.Errorw("failed to mark webhook message", "id", key.ID, "error", err)
				writeJSON(w, http.StatusInternalServerError, MessageErrorResponse{Error: "Internal server error"})
				return
			}
			if !first {
				logger.Log.Infow("duplicate webhook message", "id", key.ID)
				writeJSON(w, http.StatusOK, WebhookResponse{Status: WebhookDuplicate})
				return
			}
		}

		reply, err := chat.HandleMessage(ctx, key.RemoteJID, text)
		if err != nil {
			// Nothing was recorded, so a retry of this message must be processed.
			if key.ID != "" {
				if err := deduper.Forget(ctx, dedupeKey); err != nil {
					logger.Log.Errorw("failed to forget webhook message", "id", key.ID, "error", err)
				}
			}
			if errors.Is(err, services.ErrInvalidPhone) {
				writeJSON(w, http.StatusBadRequest, MessageErrorResponse{Error: "Invalid phone number"})
				return
			}
			logger.Log.Errorw("failed to handle webhook message", "id", key.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, MessageErrorResponse{Error: "Internal server error"})
			return
		}

		// The route runs without TxMiddleware: anything HandleMessage stored is
		// committed by now, so the reply never confirms a row that may roll back.
		if err := sender.SendText(ctx, key.RemoteJID, reply); err != nil {
			kind, _ := gateway.KindOf(err)
			logger.Log.Errorw("failed to send reply", "id", key.ID, "kind", kind.String(), "error", err)
			writeJSON(w, http.StatusOK, WebhookResponse{Status: WebhookUndelivered})
			return
		}

		writeJSON(w, http.StatusOK, WebhookResponse{Status: WebhookProcessed})
	}
}
