package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jordanlanch/salesagent/pkg/domain"
)

// ErrSlackSendFailed wraps any non-200 or transport failure from Slack.
var ErrSlackSendFailed = errors.New("failed to send Slack notification")

// SlackClient posts escalation alerts to a Slack channel.
type SlackClient interface {
	PostEscalation(ctx context.Context, alert domain.EscalationAlert) error
}

var priorityStyle = map[string]struct{ icon, color string }{
	"high":   {"🚨", "#d9534f"},
	"medium": {"⏰", "#f0ad4e"},
	"low":    {"✅", "#5cb85c"},
}

// Incoming-webhook payload. Text is the notification fallback; the card
// itself lives in a colored attachment so the priority shows as a side bar.
type slackPayload struct {
	Text        string            `json:"text"`
	Attachments []slackAttachment `json:"attachments"`
}

type slackAttachment struct {
	Color  string       `json:"color"`
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type     string       `json:"type"`
	Text     *slackText   `json:"text,omitempty"`
	Fields   []*slackText `json:"fields,omitempty"`
	Elements []*slackText `json:"elements,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func mrkdwn(format string, args ...any) *slackText {
	return &slackText{Type: "mrkdwn", Text: fmt.Sprintf(format, args...)}
}

// WebhookClient posts to a Slack incoming webhook.
type WebhookClient struct {
	url  string
	http *http.Client
}

func NewWebhookClient(url string) *WebhookClient {
	return &WebhookClient{url: url, http: &http.Client{Timeout: 10 * time.Second}}
}

// PostEscalation renders alert as a Block Kit card and posts it.
func (c *WebhookClient) PostEscalation(ctx context.Context, alert domain.EscalationAlert) error {
	if c.url == "" {
		return fmt.Errorf("%w: webhook URL not configured", ErrSlackSendFailed)
	}
	body, err := json.Marshal(escalationPayload(alert))
	if err != nil {
		return fmt.Errorf("encode slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSlackSendFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: lead %d: status %d", ErrSlackSendFailed, alert.LeadID, resp.StatusCode)
	}
	return nil
}

func escalationPayload(a domain.EscalationAlert) slackPayload {
	style, ok := priorityStyle[a.Priority]
	if !ok {
		style = priorityStyle["medium"]
		style.icon = "⚠️"
	}
	priority := strings.ToUpper(firstNonEmpty(a.Priority, "medium"))
	line := displayName(a.Product)
	name := firstNonEmpty(a.Name, "N/A")

	return slackPayload{
		Text: fmt.Sprintf("%s Escalação %s (%s): lead #%d %s", style.icon, priority, line, a.LeadID, name),
		Attachments: []slackAttachment{{
			Color: style.color,
			Blocks: []slackBlock{
				{Type: "section", Text: mrkdwn("%s *Escalação - prioridade %s* (%s)", style.icon, priority, line)},
				{Type: "section", Fields: []*slackText{
					mrkdwn("*Lead*\n#%d: %s (%s)", a.LeadID, name, a.Phone),
					mrkdwn("*Empresa*\n%s", firstNonEmpty(a.Company, "N/A")),
					mrkdwn("*Agente*\n%s", firstNonEmpty(a.Agent, "N/A")),
					mrkdwn("*Prioridade*\n%s", priority),
				}},
				{Type: "section", Text: mrkdwn("*Motivo*\n%s", a.Reason)},
				{Type: "context", Elements: []*slackText{
					mrkdwn("<!date^%d^{date_short_pretty} {time}|%s>", a.At.Unix(), a.At.Format(time.RFC3339)),
				}},
			},
		}},
	}
}
