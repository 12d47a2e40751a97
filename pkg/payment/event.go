package payment

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jordanlanch/salesagent/pkg/product"
)

// Kind is the normalized outcome a gateway event reports.
type Kind string

const (
	KindPaid     Kind = "paid"
	KindFailed   Kind = "failed"
	KindCanceled Kind = "canceled"
	KindRefunded Kind = "refunded"
	KindOther    Kind = "other"
)

var pagarmeKinds = map[string]Kind{
	"order.paid":            KindPaid,
	"charge.paid":           KindPaid,
	"order.payment_failed":  KindFailed,
	"charge.payment_failed": KindFailed,
	"order.canceled":        KindCanceled,
	"charge.refunded":       KindRefunded,
}

// Event is a gateway notification reduced to what the lead needs.
type Event struct {
	Provider    string
	Type        string
	Kind        Kind
	LeadID      int
	Product     product.Line
	Plan        string
	OrderID     string
	AmountCents int
	Method      string
	Reason      string
}

type pagarmeTransaction struct {
	PaymentMethod   string `json:"payment_method"`
	GatewayResponse struct {
		Message string `json:"message"`
	} `json:"gateway_response"`
	AcquirerMessage string `json:"acquirer_message"`
}

type pagarmeCharge struct {
	ID              string             `json:"id"`
	Amount          int                `json:"amount"`
	PaymentMethod   string             `json:"payment_method"`
	LastTransaction pagarmeTransaction `json:"last_transaction"`
}

type pagarmeData struct {
	ID            string             `json:"id"`
	Amount        int                `json:"amount"`
	PaymentMethod string             `json:"payment_method"`
	Metadata      map[string]any     `json:"metadata"`
	Charges       []pagarmeCharge    `json:"charges"`
	Charge        *pagarmeCharge     `json:"charge"`
	Order         *pagarmeOrderRef   `json:"order"`
	LastTx        pagarmeTransaction `json:"last_transaction"`
}

type pagarmeOrderRef struct {
	ID       string         `json:"id"`
	Metadata map[string]any `json:"metadata"`
}

type pagarmeHook struct {
	Type  string       `json:"type"`
	Event string       `json:"event"`
	Data  *pagarmeData `json:"data"`
}

// ParsePagarme decodes a Pagar.me webhook body. Order events carry the
// order in data; charge events carry the charge with its order nested.
func ParsePagarme(body []byte) (Event, error) {
	var hook pagarmeHook
	if err := json.Unmarshal(body, &hook); err != nil {
		return Event{}, fmt.Errorf("invalid pagarme payload: %w", err)
	}
	data := hook.Data
	if data == nil {
		// some deliveries send the object at the top level
		data = &pagarmeData{}
		if err := json.Unmarshal(body, data); err != nil {
			return Event{}, fmt.Errorf("invalid pagarme payload: %w", err)
		}
	}

	ev := Event{
		Provider:    "pagarme",
		Type:        firstNonEmpty(hook.Type, hook.Event),
		OrderID:     data.ID,
		AmountCents: data.Amount,
		Method:      data.PaymentMethod,
		Reason:      transactionReason(data.LastTx),
	}
	ev.Kind = kindOf(ev.Type)

	meta := data.Metadata
	if data.Order != nil {
		if len(meta) == 0 {
			meta = data.Order.Metadata
		}
		if data.Order.ID != "" {
			ev.OrderID = data.Order.ID
		}
	}

	charge := data.Charge
	if charge == nil && len(data.Charges) > 0 {
		charge = &data.Charges[0]
	}
	if charge != nil {
		if ev.AmountCents == 0 {
			ev.AmountCents = charge.Amount
		}
		ev.Method = firstNonEmpty(ev.Method, charge.PaymentMethod, charge.LastTransaction.PaymentMethod)
		ev.Reason = firstNonEmpty(ev.Reason, transactionReason(charge.LastTransaction))
	}

	applyMetadata(&ev, meta)
	return ev, nil
}

func applyMetadata(ev *Event, meta map[string]any) {
	if id, err := strconv.Atoi(metaString(meta, MetaLeadID)); err == nil {
		ev.LeadID = id
	}
	if line, err := product.ParseLine(metaString(meta, MetaProduct)); err == nil {
		ev.Product = line
	}
	ev.Plan = metaString(meta, MetaPlan)
}

// metaString reads a metadata value that may arrive as a string or a number.
func metaString(meta map[string]any, key string) string {
	switch v := meta[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func kindOf(eventType string) Kind {
	if k, ok := pagarmeKinds[eventType]; ok {
		return k
	}
	return KindOther
}

func transactionReason(tx pagarmeTransaction) string {
	return firstNonEmpty(tx.GatewayResponse.Message, tx.AcquirerMessage)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
