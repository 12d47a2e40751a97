// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/salesagent/pkg/product"
)

const (
	// Label holds the string label denoting the conversation type in the database.
	Label = "conversation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldProduct holds the string denoting the product field in the database.
	FieldProduct = "product"
	// FieldDirection holds the string denoting the direction field in the database.
	FieldDirection = "direction"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldAgent holds the string denoting the agent field in the database.
	FieldAgent = "agent"
	// FieldToolsCalled holds the string denoting the tools_called field in the database.
	FieldToolsCalled = "tools_called"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldObjection holds the string denoting the objection field in the database.
	FieldObjection = "objection"
	// FieldTokensInput holds the string denoting the tokens_input field in the database.
	FieldTokensInput = "tokens_input"
	// FieldTokensOutput holds the string denoting the tokens_output field in the database.
	FieldTokensOutput = "tokens_output"
	// FieldCostCents holds the string denoting the cost_cents field in the database.
	FieldCostCents = "cost_cents"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLead holds the string denoting the lead edge name in mutations.
	EdgeLead = "lead"
	// Table holds the table name of the conversation in the database.
	Table = "conversations"
	// LeadTable is the table that holds the lead relation/edge.
	LeadTable = "conversations"
	// LeadInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadInverseTable = "leads"
	// LeadColumn is the table column denoting the lead relation/edge.
	LeadColumn = "lead_id"
)

// Columns holds all SQL columns for conversation fields.
var Columns = []string{
	FieldID,
	FieldLeadID,
	FieldProduct,
	FieldDirection,
	FieldKind,
	FieldContent,
	FieldAgent,
	FieldToolsCalled,
	FieldIntent,
	FieldObjection,
	FieldTokensInput,
	FieldTokensOutput,
	FieldCostCents,
	FieldCreatedAt,
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
	// DefaultAgent holds the default value on creation for the "agent" field.
	DefaultAgent string
	// DefaultTokensInput holds the default value on creation for the "tokens_input" field.
	DefaultTokensInput int
	// DefaultTokensOutput holds the default value on creation for the "tokens_output" field.
	DefaultTokensOutput int
	// DefaultCostCents holds the default value on creation for the "cost_cents" field.
	DefaultCostCents float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ProductValidator is a validator for the "product" field enum values. It is called by the builders before save.
func ProductValidator(pr product.Line) error {
	switch pr {
	case "occhiale", "ekkle":
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for product field: %q", pr)
	}
}

// Direction defines the type for the "direction" enum field.
type Direction string

// Direction values.
const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

func (d Direction) String() string {
	return string(d)
}

// DirectionValidator is a validator for the "direction" field enum values. It is called by the builders before save.
func DirectionValidator(d Direction) error {
	switch d {
	case DirectionInbound, DirectionOutbound:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for direction field: %q", d)
	}
}

// Kind defines the type for the "kind" enum field.
type Kind string

// KindMessage is the default value of the Kind enum.
const DefaultKind = KindMessage

// Kind values.
const (
	KindMessage Kind = "message"
	KindAudit   Kind = "audit"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindMessage, KindAudit:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the Conversation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByProduct orders the results by the product field.
func ByProduct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProduct, opts...).ToFunc()
}

// ByDirection orders the results by the direction field.
func ByDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirection, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByAgent orders the results by the agent field.
func ByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgent, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByObjection orders the results by the objection field.
func ByObjection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjection, opts...).ToFunc()
}

// ByTokensInput orders the results by the tokens_input field.
func ByTokensInput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensInput, opts...).ToFunc()
}

// ByTokensOutput orders the results by the tokens_output field.
func ByTokensOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOutput, opts...).ToFunc()
}

// ByCostCents orders the results by the cost_cents field.
func ByCostCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostCents, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLeadField orders the results by lead field.
func ByLeadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadStep(), sql.OrderByField(field, opts...))
	}
}
func newLeadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
	)
}
