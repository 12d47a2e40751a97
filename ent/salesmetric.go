// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/salesagent/ent/salesmetric"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// SalesMetric is the model entity for the SalesMetric schema.
type SalesMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Local day, YYYY-MM-DD (America/Sao_Paulo)
	Date string `json:"date,omitempty"`
	// Product holds the value of the "product" field.
	Product product.Line `json:"product,omitempty"`
	// LeadsCreated holds the value of the "leads_created" field.
	LeadsCreated int `json:"leads_created,omitempty"`
	// MessagesSent holds the value of the "messages_sent" field.
	MessagesSent int `json:"messages_sent,omitempty"`
	// DealsWon holds the value of the "deals_won" field.
	DealsWon int `json:"deals_won,omitempty"`
	// RevenueCents holds the value of the "revenue_cents" field.
	RevenueCents int `json:"revenue_cents,omitempty"`
	// AiCostCents holds the value of the "ai_cost_cents" field.
	AiCostCents float64 `json:"ai_cost_cents,omitempty"`
	// Escalations holds the value of the "escalations" field.
	Escalations int `json:"escalations,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SalesMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case salesmetric.FieldAiCostCents:
			values[i] = new(sql.NullFloat64)
		case salesmetric.FieldID, salesmetric.FieldLeadsCreated, salesmetric.FieldMessagesSent, salesmetric.FieldDealsWon, salesmetric.FieldRevenueCents, salesmetric.FieldEscalations:
			values[i] = new(sql.NullInt64)
		case salesmetric.FieldDate, salesmetric.FieldProduct:
			values[i] = new(sql.NullString)
		case salesmetric.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SalesMetric fields.
func (_m *SalesMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case salesmetric.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case salesmetric.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case salesmetric.FieldProduct:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product", values[i])
			} else if value.Valid {
				_m.Product = product.Line(value.String)
			}
		case salesmetric.FieldLeadsCreated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field leads_created", values[i])
			} else if value.Valid {
				_m.LeadsCreated = int(value.Int64)
			}
		case salesmetric.FieldMessagesSent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field messages_sent", values[i])
			} else if value.Valid {
				_m.MessagesSent = int(value.Int64)
			}
		case salesmetric.FieldDealsWon:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field deals_won", values[i])
			} else if value.Valid {
				_m.DealsWon = int(value.Int64)
			}
		case salesmetric.FieldRevenueCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field revenue_cents", values[i])
			} else if value.Valid {
				_m.RevenueCents = int(value.Int64)
			}
		case salesmetric.FieldAiCostCents:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_cost_cents", values[i])
			} else if value.Valid {
				_m.AiCostCents = value.Float64
			}
		case salesmetric.FieldEscalations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field escalations", values[i])
			} else if value.Valid {
				_m.Escalations = int(value.Int64)
			}
		case salesmetric.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SalesMetric.
// This includes values selected through modifiers, order, etc.
func (_m *SalesMetric) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SalesMetric.
// Note that you need to call SalesMetric.Unwrap() before calling this method if this SalesMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SalesMetric) Update() *SalesMetricUpdateOne {
	return NewSalesMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SalesMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SalesMetric) Unwrap() *SalesMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SalesMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SalesMetric) String() string {
	var builder strings.Builder
	builder.WriteString("SalesMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("product=")
	builder.WriteString(fmt.Sprintf("%v", _m.Product))
	builder.WriteString(", ")
	builder.WriteString("leads_created=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadsCreated))
	builder.WriteString(", ")
	builder.WriteString("messages_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessagesSent))
	builder.WriteString(", ")
	builder.WriteString("deals_won=")
	builder.WriteString(fmt.Sprintf("%v", _m.DealsWon))
	builder.WriteString(", ")
	builder.WriteString("revenue_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.RevenueCents))
	builder.WriteString(", ")
	builder.WriteString("ai_cost_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiCostCents))
	builder.WriteString(", ")
	builder.WriteString("escalations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Escalations))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SalesMetrics is a parsable slice of SalesMetric.
type SalesMetrics []*SalesMetric
