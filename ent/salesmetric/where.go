// Code generated by ent, DO NOT EDIT.

package salesmetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/salesagent/ent/predicate"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLTE(FieldID, id))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldDate, v))
}

// LeadsCreated applies equality check predicate on the "leads_created" field. It's identical to LeadsCreatedEQ.
func LeadsCreated(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldLeadsCreated, v))
}

// MessagesSent applies equality check predicate on the "messages_sent" field. It's identical to MessagesSentEQ.
func MessagesSent(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldMessagesSent, v))
}

// DealsWon applies equality check predicate on the "deals_won" field. It's identical to DealsWonEQ.
func DealsWon(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldDealsWon, v))
}

// RevenueCents applies equality check predicate on the "revenue_cents" field. It's identical to RevenueCentsEQ.
func RevenueCents(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldRevenueCents, v))
}

// AiCostCents applies equality check predicate on the "ai_cost_cents" field. It's identical to AiCostCentsEQ.
func AiCostCents(v float64) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldAiCostCents, v))
}

// Escalations applies equality check predicate on the "escalations" field. It's identical to EscalationsEQ.
func Escalations(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldEscalations, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldUpdatedAt, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldContainsFold(FieldDate, v))
}

// ProductEQ applies the EQ predicate on the "product" field.
func ProductEQ(v product.Line) predicate.SalesMetric {
	vc := v
	return predicate.SalesMetric(sql.FieldEQ(FieldProduct, vc))
}

// ProductNEQ applies the NEQ predicate on the "product" field.
func ProductNEQ(v product.Line) predicate.SalesMetric {
	vc := v
	return predicate.SalesMetric(sql.FieldNEQ(FieldProduct, vc))
}

// ProductIn applies the In predicate on the "product" field.
func ProductIn(vs ...product.Line) predicate.SalesMetric {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.SalesMetric(sql.FieldIn(FieldProduct, v...))
}

// ProductNotIn applies the NotIn predicate on the "product" field.
func ProductNotIn(vs ...product.Line) predicate.SalesMetric {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.SalesMetric(sql.FieldNotIn(FieldProduct, v...))
}

// LeadsCreatedEQ applies the EQ predicate on the "leads_created" field.
func LeadsCreatedEQ(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldLeadsCreated, v))
}

// LeadsCreatedNEQ applies the NEQ predicate on the "leads_created" field.
func LeadsCreatedNEQ(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNEQ(FieldLeadsCreated, v))
}

// LeadsCreatedIn applies the In predicate on the "leads_created" field.
func LeadsCreatedIn(vs ...int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldIn(FieldLeadsCreated, vs...))
}

// LeadsCreatedNotIn applies the NotIn predicate on the "leads_created" field.
func LeadsCreatedNotIn(vs ...int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNotIn(FieldLeadsCreated, vs...))
}

// LeadsCreatedGT applies the GT predicate on the "leads_created" field.
func LeadsCreatedGT(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGT(FieldLeadsCreated, v))
}

// LeadsCreatedGTE applies the GTE predicate on the "leads_created" field.
func LeadsCreatedGTE(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGTE(FieldLeadsCreated, v))
}

// LeadsCreatedLT applies the LT predicate on the "leads_created" field.
func LeadsCreatedLT(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLT(FieldLeadsCreated, v))
}

// LeadsCreatedLTE applies the LTE predicate on the "leads_created" field.
func LeadsCreatedLTE(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLTE(FieldLeadsCreated, v))
}

// MessagesSentEQ applies the EQ predicate on the "messages_sent" field.
func MessagesSentEQ(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldMessagesSent, v))
}

// MessagesSentNEQ applies the NEQ predicate on the "messages_sent" field.
func MessagesSentNEQ(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNEQ(FieldMessagesSent, v))
}

// MessagesSentIn applies the In predicate on the "messages_sent" field.
func MessagesSentIn(vs ...int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldIn(FieldMessagesSent, vs...))
}

// MessagesSentNotIn applies the NotIn predicate on the "messages_sent" field.
func MessagesSentNotIn(vs ...int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNotIn(FieldMessagesSent, vs...))
}

// MessagesSentGT applies the GT predicate on the "messages_sent" field.
func MessagesSentGT(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGT(FieldMessagesSent, v))
}

// MessagesSentGTE applies the GTE predicate on the "messages_sent" field.
func MessagesSentGTE(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGTE(FieldMessagesSent, v))
}

// MessagesSentLT applies the LT predicate on the "messages_sent" field.
func MessagesSentLT(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLT(FieldMessagesSent, v))
}

// MessagesSentLTE applies the LTE predicate on the "messages_sent" field.
func MessagesSentLTE(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLTE(FieldMessagesSent, v))
}

// DealsWonEQ applies the EQ predicate on the "deals_won" field.
func DealsWonEQ(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldDealsWon, v))
}

// DealsWonNEQ applies the NEQ predicate on the "deals_won" field.
func DealsWonNEQ(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNEQ(FieldDealsWon, v))
}

// DealsWonIn applies the In predicate on the "deals_won" field.
func DealsWonIn(vs ...int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldIn(FieldDealsWon, vs...))
}

// DealsWonNotIn applies the NotIn predicate on the "deals_won" field.
func DealsWonNotIn(vs ...int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNotIn(FieldDealsWon, vs...))
}

// DealsWonGT applies the GT predicate on the "deals_won" field.
func DealsWonGT(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGT(FieldDealsWon, v))
}

// DealsWonGTE applies the GTE predicate on the "deals_won" field.
func DealsWonGTE(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGTE(FieldDealsWon, v))
}

// DealsWonLT applies the LT predicate on the "deals_won" field.
func DealsWonLT(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLT(FieldDealsWon, v))
}

// DealsWonLTE applies the LTE predicate on the "deals_won" field.
func DealsWonLTE(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLTE(FieldDealsWon, v))
}

// RevenueCentsEQ applies the EQ predicate on the "revenue_cents" field.
func RevenueCentsEQ(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldRevenueCents, v))
}

// RevenueCentsNEQ applies the NEQ predicate on the "revenue_cents" field.
func RevenueCentsNEQ(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNEQ(FieldRevenueCents, v))
}

// RevenueCentsIn applies the In predicate on the "revenue_cents" field.
func RevenueCentsIn(vs ...int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldIn(FieldRevenueCents, vs...))
}

// RevenueCentsNotIn applies the NotIn predicate on the "revenue_cents" field.
func RevenueCentsNotIn(vs ...int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNotIn(FieldRevenueCents, vs...))
}

// RevenueCentsGT applies the GT predicate on the "revenue_cents" field.
func RevenueCentsGT(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGT(FieldRevenueCents, v))
}

// RevenueCentsGTE applies the GTE predicate on the "revenue_cents" field.
func RevenueCentsGTE(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGTE(FieldRevenueCents, v))
}

// RevenueCentsLT applies the LT predicate on the "revenue_cents" field.
func RevenueCentsLT(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLT(FieldRevenueCents, v))
}

// RevenueCentsLTE applies the LTE predicate on the "revenue_cents" field.
func RevenueCentsLTE(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLTE(FieldRevenueCents, v))
}

// AiCostCentsEQ applies the EQ predicate on the "ai_cost_cents" field.
func AiCostCentsEQ(v float64) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldAiCostCents, v))
}

// AiCostCentsNEQ applies the NEQ predicate on the "ai_cost_cents" field.
func AiCostCentsNEQ(v float64) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNEQ(FieldAiCostCents, v))
}

// AiCostCentsIn applies the In predicate on the "ai_cost_cents" field.
func AiCostCentsIn(vs ...float64) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldIn(FieldAiCostCents, vs...))
}

// AiCostCentsNotIn applies the NotIn predicate on the "ai_cost_cents" field.
func AiCostCentsNotIn(vs ...float64) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNotIn(FieldAiCostCents, vs...))
}

// AiCostCentsGT applies the GT predicate on the "ai_cost_cents" field.
func AiCostCentsGT(v float64) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGT(FieldAiCostCents, v))
}

// AiCostCentsGTE applies the GTE predicate on the "ai_cost_cents" field.
func AiCostCentsGTE(v float64) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGTE(FieldAiCostCents, v))
}

// AiCostCentsLT applies the LT predicate on the "ai_cost_cents" field.
func AiCostCentsLT(v float64) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLT(FieldAiCostCents, v))
}

// AiCostCentsLTE applies the LTE predicate on the "ai_cost_cents" field.
func AiCostCentsLTE(v float64) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLTE(FieldAiCostCents, v))
}

// EscalationsEQ applies the EQ predicate on the "escalations" field.
func EscalationsEQ(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldEscalations, v))
}

// EscalationsNEQ applies the NEQ predicate on the "escalations" field.
func EscalationsNEQ(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNEQ(FieldEscalations, v))
}

// EscalationsIn applies the In predicate on the "escalations" field.
func EscalationsIn(vs ...int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldIn(FieldEscalations, vs...))
}

// EscalationsNotIn applies the NotIn predicate on the "escalations" field.
func EscalationsNotIn(vs ...int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNotIn(FieldEscalations, vs...))
}

// EscalationsGT applies the GT predicate on the "escalations" field.
func EscalationsGT(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGT(FieldEscalations, v))
}

// EscalationsGTE applies the GTE predicate on the "escalations" field.
func EscalationsGTE(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGTE(FieldEscalations, v))
}

// EscalationsLT applies the LT predicate on the "escalations" field.
func EscalationsLT(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLT(FieldEscalations, v))
}

// EscalationsLTE applies the LTE predicate on the "escalations" field.
func EscalationsLTE(v int) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLTE(FieldEscalations, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SalesMetric {
	return predicate.SalesMetric(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SalesMetric) predicate.SalesMetric {
	return predicate.SalesMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SalesMetric) predicate.SalesMetric {
	return predicate.SalesMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SalesMetric) predicate.SalesMetric {
	return predicate.SalesMetric(sql.NotPredicates(p))
}
