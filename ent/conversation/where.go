// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/salesagent/ent/predicate"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldID, id))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLeadID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldContent, v))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldAgent, v))
}

// Intent applies equality check predicate on the "intent" field. It's identical to IntentEQ.
func Intent(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldIntent, v))
}

// Objection applies equality check predicate on the "objection" field. It's identical to ObjectionEQ.
func Objection(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldObjection, v))
}

// TokensInput applies equality check predicate on the "tokens_input" field. It's identical to TokensInputEQ.
func TokensInput(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTokensInput, v))
}

// TokensOutput applies equality check predicate on the "tokens_output" field. It's identical to TokensOutputEQ.
func TokensOutput(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTokensOutput, v))
}

// CostCents applies equality check predicate on the "cost_cents" field. It's identical to CostCentsEQ.
func CostCents(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCostCents, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLeadID, vs...))
}

// ProductEQ applies the EQ predicate on the "product" field.
func ProductEQ(v product.Line) predicate.Conversation {
	vc := v
	return predicate.Conversation(sql.FieldEQ(FieldProduct, vc))
}

// ProductNEQ applies the NEQ predicate on the "product" field.
func ProductNEQ(v product.Line) predicate.Conversation {
	vc := v
	return predicate.Conversation(sql.FieldNEQ(FieldProduct, vc))
}

// ProductIn applies the In predicate on the "product" field.
func ProductIn(vs ...product.Line) predicate.Conversation {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Conversation(sql.FieldIn(FieldProduct, v...))
}

// ProductNotIn applies the NotIn predicate on the "product" field.
func ProductNotIn(vs ...product.Line) predicate.Conversation {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Conversation(sql.FieldNotIn(FieldProduct, v...))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldDirection, vs...))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldKind, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldContent, v))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldAgent, v))
}

// ToolsCalledIsNil applies the IsNil predicate on the "tools_called" field.
func ToolsCalledIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldToolsCalled))
}

// ToolsCalledNotNil applies the NotNil predicate on the "tools_called" field.
func ToolsCalledNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldToolsCalled))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldIntent, vs...))
}

// IntentGT applies the GT predicate on the "intent" field.
func IntentGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldIntent, v))
}

// IntentGTE applies the GTE predicate on the "intent" field.
func IntentGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldIntent, v))
}

// IntentLT applies the LT predicate on the "intent" field.
func IntentLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldIntent, v))
}

// IntentLTE applies the LTE predicate on the "intent" field.
func IntentLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldIntent, v))
}

// IntentContains applies the Contains predicate on the "intent" field.
func IntentContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldIntent, v))
}

// IntentHasPrefix applies the HasPrefix predicate on the "intent" field.
func IntentHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldIntent, v))
}

// IntentHasSuffix applies the HasSuffix predicate on the "intent" field.
func IntentHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldIntent, v))
}

// IntentIsNil applies the IsNil predicate on the "intent" field.
func IntentIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldIntent))
}

// IntentNotNil applies the NotNil predicate on the "intent" field.
func IntentNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldIntent))
}

// IntentEqualFold applies the EqualFold predicate on the "intent" field.
func IntentEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldIntent, v))
}

// IntentContainsFold applies the ContainsFold predicate on the "intent" field.
func IntentContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldIntent, v))
}

// ObjectionEQ applies the EQ predicate on the "objection" field.
func ObjectionEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldObjection, v))
}

// ObjectionNEQ applies the NEQ predicate on the "objection" field.
func ObjectionNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldObjection, v))
}

// ObjectionIn applies the In predicate on the "objection" field.
func ObjectionIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldObjection, vs...))
}

// ObjectionNotIn applies the NotIn predicate on the "objection" field.
func ObjectionNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldObjection, vs...))
}

// ObjectionGT applies the GT predicate on the "objection" field.
func ObjectionGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldObjection, v))
}

// ObjectionGTE applies the GTE predicate on the "objection" field.
func ObjectionGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldObjection, v))
}

// ObjectionLT applies the LT predicate on the "objection" field.
func ObjectionLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldObjection, v))
}

// ObjectionLTE applies the LTE predicate on the "objection" field.
func ObjectionLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldObjection, v))
}

// ObjectionContains applies the Contains predicate on the "objection" field.
func ObjectionContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldObjection, v))
}

// ObjectionHasPrefix applies the HasPrefix predicate on the "objection" field.
func ObjectionHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldObjection, v))
}

// ObjectionHasSuffix applies the HasSuffix predicate on the "objection" field.
func ObjectionHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldObjection, v))
}

// ObjectionIsNil applies the IsNil predicate on the "objection" field.
func ObjectionIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldObjection))
}

// ObjectionNotNil applies the NotNil predicate on the "objection" field.
func ObjectionNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldObjection))
}

// ObjectionEqualFold applies the EqualFold predicate on the "objection" field.
func ObjectionEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldObjection, v))
}

// ObjectionContainsFold applies the ContainsFold predicate on the "objection" field.
func ObjectionContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldObjection, v))
}

// TokensInputEQ applies the EQ predicate on the "tokens_input" field.
func TokensInputEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTokensInput, v))
}

// TokensInputNEQ applies the NEQ predicate on the "tokens_input" field.
func TokensInputNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTokensInput, v))
}

// TokensInputIn applies the In predicate on the "tokens_input" field.
func TokensInputIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTokensInput, vs...))
}

// TokensInputNotIn applies the NotIn predicate on the "tokens_input" field.
func TokensInputNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTokensInput, vs...))
}

// TokensInputGT applies the GT predicate on the "tokens_input" field.
func TokensInputGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTokensInput, v))
}

// TokensInputGTE applies the GTE predicate on the "tokens_input" field.
func TokensInputGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTokensInput, v))
}

// TokensInputLT applies the LT predicate on the "tokens_input" field.
func TokensInputLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTokensInput, v))
}

// TokensInputLTE applies the LTE predicate on the "tokens_input" field.
func TokensInputLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTokensInput, v))
}

// TokensOutputEQ applies the EQ predicate on the "tokens_output" field.
func TokensOutputEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTokensOutput, v))
}

// TokensOutputNEQ applies the NEQ predicate on the "tokens_output" field.
func TokensOutputNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTokensOutput, v))
}

// TokensOutputIn applies the In predicate on the "tokens_output" field.
func TokensOutputIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTokensOutput, vs...))
}

// TokensOutputNotIn applies the NotIn predicate on the "tokens_output" field.
func TokensOutputNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTokensOutput, vs...))
}

// TokensOutputGT applies the GT predicate on the "tokens_output" field.
func TokensOutputGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTokensOutput, v))
}

// TokensOutputGTE applies the GTE predicate on the "tokens_output" field.
func TokensOutputGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTokensOutput, v))
}

// TokensOutputLT applies the LT predicate on the "tokens_output" field.
func TokensOutputLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTokensOutput, v))
}

// TokensOutputLTE applies the LTE predicate on the "tokens_output" field.
func TokensOutputLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTokensOutput, v))
}

// CostCentsEQ applies the EQ predicate on the "cost_cents" field.
func CostCentsEQ(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCostCents, v))
}

// CostCentsNEQ applies the NEQ predicate on the "cost_cents" field.
func CostCentsNEQ(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCostCents, v))
}

// CostCentsIn applies the In predicate on the "cost_cents" field.
func CostCentsIn(vs ...float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCostCents, vs...))
}

// CostCentsNotIn applies the NotIn predicate on the "cost_cents" field.
func CostCentsNotIn(vs ...float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCostCents, vs...))
}

// CostCentsGT applies the GT predicate on the "cost_cents" field.
func CostCentsGT(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCostCents, v))
}

// CostCentsGTE applies the GTE predicate on the "cost_cents" field.
func CostCentsGTE(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCostCents, v))
}

// CostCentsLT applies the LT predicate on the "cost_cents" field.
func CostCentsLT(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCostCents, v))
}

// CostCentsLTE applies the LTE predicate on the "cost_cents" field.
func CostCentsLTE(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCostCents, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCreatedAt, v))
}

// HasLead applies the HasEdge predicate on the "lead" edge.
func HasLead() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadWith applies the HasEdge predicate on the "lead" edge with a given conditions (other predicates).
func HasLeadWith(preds ...predicate.Lead) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newLeadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.NotPredicates(p))
}
