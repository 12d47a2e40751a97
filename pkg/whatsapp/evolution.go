// Package whatsapp sends messages through the Evolution API gateway.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/metrics"
	"github.com/jordanlanch/salesagent/pkg/phone"
	"github.com/jordanlanch/salesagent/pkg/product"
)

var (
	// ErrInstanceNotConfigured is returned when a product line has no gateway instance
	ErrInstanceNotConfigured = errors.New("evolution instance not configured")
)

// Sender delivers a text message to a phone on the line's WhatsApp number.
// It never fails loudly: a false return means the message was not delivered.
type Sender interface {
	Send(ctx context.Context, phone, content string, line product.Line) bool
}

// MediaSender also delivers images, videos and documents.
type MediaSender interface {
	Sender
	SendMedia(ctx context.Context, phone string, media Media, line product.Line) bool
}

// Media is an attachment referenced by URL.
type Media struct {
	Kind    string `json:"mediatype"` // image, video, audio, document
	URL     string `json:"media"`
	Caption string `json:"caption,omitempty"`
}

// Instance is one Evolution API instance bound to a product line.
type Instance struct {
	BaseURL string
	APIKey  string
	Name    string
}

// ConnectionState reports whether an instance is paired with WhatsApp.
type ConnectionState struct {
	Line      product.Line `json:"product"`
	Instance  string       `json:"instance"`
	State     string       `json:"state"`
	Connected bool         `json:"connected"`
}

// EvolutionClient implements MediaSender over the Evolution HTTP API.
type EvolutionClient struct {
	instances  map[product.Line]Instance
	httpClient *http.Client
	log        logger.Logger
	metrics    *metrics.Metrics
}

// NewEvolutionClient creates a client for the given per-line instances.
func NewEvolutionClient(instances map[product.Line]Instance, log logger.Logger, m *metrics.Metrics) *EvolutionClient {
	return &EvolutionClient{
		instances: instances,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log:     log,
		metrics: m,
	}
}

type sendTextPayload struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

type sendMediaPayload struct {
	Number string `json:"number"`
	Media  Media  `json:"media"`
}

type sendResponse struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

// Send implements Sender.
func (c *EvolutionClient) Send(ctx context.Context, to, content string, line product.Line) bool {
	jid, err := phone.JID(to)
	if err != nil {
		c.log.Warn("Invalid WhatsApp recipient", "phone", to, "error", err)
		return false
	}

	err = c.post(ctx, line, "/message/sendText/", sendTextPayload{Number: jid, Text: FormatMessage(content)})
	c.metrics.RecordMessage(string(line), "outbound", err == nil)
	if err != nil {
		c.log.Error("WhatsApp send failed", "phone", to, "product", line, "error", err)
		return false
	}

	c.log.Debug("WhatsApp message sent", "phone", to, "product", line)
	return true
}

// SendMedia implements MediaSender.
func (c *EvolutionClient) SendMedia(ctx context.Context, to string, media Media, line product.Line) bool {
	jid, err := phone.JID(to)
	if err != nil {
		c.log.Warn("Invalid WhatsApp recipient", "phone", to, "error", err)
		return false
	}

	media.Caption = FormatMessage(media.Caption)
	err = c.post(ctx, line, "/message/sendMedia/", sendMediaPayload{Number: jid, Media: media})
	c.metrics.RecordMessage(string(line), "outbound", err == nil)
	if err != nil {
		c.log.Error("WhatsApp media send failed", "phone", to, "product", line, "kind", media.Kind, "error", err)
		return false
	}
	return true
}

// ConnectionState queries the pairing state of the line's instance.
func (c *EvolutionClient) ConnectionState(ctx context.Context, line product.Line) (ConnectionState, error) {
	inst, ok := c.instances[line]
	if !ok || inst.BaseURL == "" {
		return ConnectionState{Line: line}, ErrInstanceNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint(inst, "/instance/connectionState/"), nil)
	if err != nil {
		return ConnectionState{Line: line}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", inst.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ConnectionState{Line: line, Instance: inst.Name}, fmt.Errorf("connection state: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		State    string `json:"state"`
		Instance struct {
			State string `json:"state"`
		} `json:"instance"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ConnectionState{Line: line, Instance: inst.Name}, fmt.Errorf("decode connection state: %w", err)
	}

	state := body.State
	if state == "" {
		state = body.Instance.State
	}
	return ConnectionState{
		Line:      line,
		Instance:  inst.Name,
		State:     state,
		Connected: state == "open",
	}, nil
}

func (c *EvolutionClient) post(ctx context.Context, line product.Line, path string, payload any) error {
	inst, ok := c.instances[line]
	if !ok || inst.BaseURL == "" {
		return fmt.Errorf("%w: %s", ErrInstanceNotConfigured, line)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint(inst, path), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", inst.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("evolution request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("evolution returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	// Evolution omits "success" on most successful replies.
	var result sendResponse
	if json.Unmarshal(raw, &result) == nil && result.Success != nil && !*result.Success {
		return fmt.Errorf("evolution rejected message: %s", result.Error)
	}
	return nil
}

func endpoint(inst Instance, path string) string {
	return strings.TrimRight(inst.BaseURL, "/") + path + inst.Name
}
