// Package gateway sends chat replies through a WhatsApp gateway (Evolution API).
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/phone"
)

const maxErrorBody = 512

// Client calls the gateway instance configured for this service.
type Client struct {
	baseURL    string
	instance   string
	apiKey     string
	httpClient *http.Client
}

// Opt configures a Client.
type Opt func(*Client)

// WithHTTPClient replaces the default client, which times out after 15 seconds.
func WithHTTPClient(c *http.Client) Opt {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// New creates a client for instance at baseURL authenticated with apiKey.
func New(baseURL, instance, apiKey string, opts ...Opt) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		instance:   instance,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sendTextRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// SendText delivers text to the WhatsApp number identified by rawPhone.
func (c *Client) SendText(ctx context.Context, rawPhone, text string) error {
	number := phone.Normalize(rawPhone)
	if number == "" {
		return &Error{Kind: KindRejected, Body: "empty phone number"}
	}

	payload, err := json.Marshal(sendTextRequest{Number: number, Text: text})
	if err != nil {
		return err
	}

	endpoint := c.baseURL + "/message/sendText/" + url.PathEscape(c.instance)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("gateway request failed", "endpoint", endpoint, "error", err)
		return &Error{Kind: KindUnavailable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		io.Copy(io.Discard, resp.Body)
		logger.Log.Infow("gateway message sent", "number", number, "status", resp.StatusCode)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	gwErr := &Error{
		Kind:   kindForStatus(resp.StatusCode),
		Status: resp.StatusCode,
		Body:   string(body),
	}
	logger.Log.Errorw("gateway rejected message", "number", number, "status", resp.StatusCode, "kind", gwErr.Kind.String(), "body", gwErr.Body)
	return gwErr
}
