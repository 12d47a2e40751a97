// Code generated by ent, DO NOT EDIT.

package salesmetric

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/salesagent/pkg/product"
)

const (
	// Label holds the string label denoting the salesmetric type in the database.
	Label = "sales_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldProduct holds the string denoting the product field in the database.
	FieldProduct = "product"
	// FieldLeadsCreated holds the string denoting the leads_created field in the database.
	FieldLeadsCreated = "leads_created"
	// FieldMessagesSent holds the string denoting the messages_sent field in the database.
	FieldMessagesSent = "messages_sent"
	// FieldDealsWon holds the string denoting the deals_won field in the database.
	FieldDealsWon = "deals_won"
	// FieldRevenueCents holds the string denoting the revenue_cents field in the database.
	FieldRevenueCents = "revenue_cents"
	// FieldAiCostCents holds the string denoting the ai_cost_cents field in the database.
	FieldAiCostCents = "ai_cost_cents"
	// FieldEscalations holds the string denoting the escalations field in the database.
	FieldEscalations = "escalations"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the salesmetric in the database.
	Table = "sales_metrics"
)

// Columns holds all SQL columns for salesmetric fields.
var Columns = []string{
	FieldID,
	FieldDate,
	FieldProduct,
	FieldLeadsCreated,
	FieldMessagesSent,
	FieldDealsWon,
	FieldRevenueCents,
	FieldAiCostCents,
	FieldEscalations,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// DefaultLeadsCreated holds the default value on creation for the "leads_created" field.
	DefaultLeadsCreated int
	// DefaultMessagesSent holds the default value on creation for the "messages_sent" field.
	DefaultMessagesSent int
	// DefaultDealsWon holds the default value on creation for the "deals_won" field.
	DefaultDealsWon int
	// DefaultRevenueCents holds the default value on creation for the "revenue_cents" field.
	DefaultRevenueCents int
	// DefaultAiCostCents holds the default value on creation for the "ai_cost_cents" field.
	DefaultAiCostCents float64
	// DefaultEscalations holds the default value on creation for the "escalations" field.
	DefaultEscalations int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ProductValidator is a validator for the "product" field enum values. It is called by the builders before save.
func ProductValidator(pr product.Line) error {
	switch pr {
	case "occhiale", "ekkle":
		return nil
	default:
		return fmt.Errorf("salesmetric: invalid enum value for product field: %q", pr)
	}
}

// OrderOption defines the ordering options for the SalesMetric queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByProduct orders the results by the product field.
func ByProduct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProduct, opts...).ToFunc()
}

// ByLeadsCreated orders the results by the leads_created field.
func ByLeadsCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadsCreated, opts...).ToFunc()
}

// ByMessagesSent orders the results by the messages_sent field.
func ByMessagesSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessagesSent, opts...).ToFunc()
}

// ByDealsWon orders the results by the deals_won field.
func ByDealsWon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDealsWon, opts...).ToFunc()
}

// ByRevenueCents orders the results by the revenue_cents field.
func ByRevenueCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevenueCents, opts...).ToFunc()
}

// ByAiCostCents orders the results by the ai_cost_cents field.
func ByAiCostCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiCostCents, opts...).ToFunc()
}

// ByEscalations orders the results by the escalations field.
func ByEscalations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalations, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
