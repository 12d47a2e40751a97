package whatsapp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jordanlanch/salesagent/pkg/phone"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// EventMessagesUpsert is the only webhook event that carries inbound messages.
const EventMessagesUpsert = "messages.upsert"

// WebhookEvent is the subset of an Evolution webhook the service reads.
type WebhookEvent struct {
	Event    string      `json:"event"`
	Instance string      `json:"instance"`
	Data     webhookData `json:"data"`
}

type webhookData struct {
	Key struct {
		RemoteJID string `json:"remoteJid"`
		FromMe    bool   `json:"fromMe"`
		ID        string `json:"id"`
	} `json:"key"`
	PushName string `json:"pushName"`
	Message  struct {
		Conversation        string `json:"conversation"`
		ExtendedTextMessage struct {
			Text string `json:"text"`
		} `json:"extendedTextMessage"`
		ImageMessage struct {
			Caption string `json:"caption"`
		} `json:"imageMessage"`
		VideoMessage struct {
			Caption string `json:"caption"`
		} `json:"videoMessage"`
	} `json:"message"`
}

// InboundMessage is a text message received on one of the lines.
type InboundMessage struct {
	Phone     string
	Text      string
	Line      product.Line
	PushName  string
	MessageID string
}

// ParseWebhook decodes an Evolution webhook body. It returns nil without
// error for events that carry nothing to process: other event types, our
// own messages, and messages without phone or text.
func ParseWebhook(body []byte) (*InboundMessage, error) {
	var ev WebhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, fmt.Errorf("failed to decode webhook: %w", err)
	}
	return ev.Inbound(), nil
}

// Inbound extracts the message, or nil when the event is not processable.
func (ev WebhookEvent) Inbound() *InboundMessage {
	if ev.Event != EventMessagesUpsert || ev.Data.Key.FromMe {
		return nil
	}
	// group chats and broadcasts are not leads
	jid := ev.Data.Key.RemoteJID
	if strings.HasSuffix(jid, "@g.us") || strings.HasSuffix(jid, "@broadcast") {
		return nil
	}

	number := phone.FromJID(jid)
	text := strings.TrimSpace(ev.Data.text())
	if number == "" || text == "" {
		return nil
	}
	return &InboundMessage{
		Phone:     number,
		Text:      text,
		Line:      product.LineFromInstance(ev.Instance),
		PushName:  ev.Data.PushName,
		MessageID: ev.Data.Key.ID,
	}
}

func (d webhookData) text() string {
	m := d.Message
	for _, s := range []string{
		m.Conversation,
		m.ExtendedTextMessage.Text,
		m.ImageMessage.Caption,
		m.VideoMessage.Caption,
	} {
		if s != "" {
			return s
		}
	}
	return ""
}
