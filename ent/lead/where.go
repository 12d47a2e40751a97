// Code generated by ent, DO NOT EDIT.

package lead

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/salesagent/ent/predicate"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/scoring"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldID, id))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPhone, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldName, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompanyName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCity, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldState, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldScore, v))
}

// GooglePlaceID applies equality check predicate on the "google_place_id" field. It's identical to GooglePlaceIDEQ.
func GooglePlaceID(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldGooglePlaceID, v))
}

// LastContactAt applies equality check predicate on the "last_contact_at" field. It's identical to LastContactAtEQ.
func LastContactAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLastContactAt, v))
}

// NextFollowupAt applies equality check predicate on the "next_followup_at" field. It's identical to NextFollowupAtEQ.
func NextFollowupAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldNextFollowupAt, v))
}

// FollowupCount applies equality check predicate on the "followup_count" field. It's identical to FollowupCountEQ.
func FollowupCount(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFollowupCount, v))
}

// WonPlan applies equality check predicate on the "won_plan" field. It's identical to WonPlanEQ.
func WonPlan(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldWonPlan, v))
}

// WonAmountCents applies equality check predicate on the "won_amount_cents" field. It's identical to WonAmountCentsEQ.
func WonAmountCents(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldWonAmountCents, v))
}

// WonAt applies equality check predicate on the "won_at" field. It's identical to WonAtEQ.
func WonAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldWonAt, v))
}

// LostAt applies equality check predicate on the "lost_at" field. It's identical to LostAtEQ.
func LostAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLostAt, v))
}

// LostReason applies equality check predicate on the "lost_reason" field. It's identical to LostReasonEQ.
func LostReason(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLostReason, v))
}

// AiCostCents applies equality check predicate on the "ai_cost_cents" field. It's identical to AiCostCentsEQ.
func AiCostCents(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAiCostCents, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUpdatedAt, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldPhone, v))
}

// ProductEQ applies the EQ predicate on the "product" field.
func ProductEQ(v product.Line) predicate.Lead {
	vc := v
	return predicate.Lead(sql.FieldEQ(FieldProduct, vc))
}

// ProductNEQ applies the NEQ predicate on the "product" field.
func ProductNEQ(v product.Line) predicate.Lead {
	vc := v
	return predicate.Lead(sql.FieldNEQ(FieldProduct, vc))
}

// ProductIn applies the In predicate on the "product" field.
func ProductIn(vs ...product.Line) predicate.Lead {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Lead(sql.FieldIn(FieldProduct, v...))
}

// ProductNotIn applies the NotIn predicate on the "product" field.
func ProductNotIn(vs ...product.Line) predicate.Lead {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Lead(sql.FieldNotIn(FieldProduct, v...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldName, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameIsNil applies the IsNil predicate on the "company_name" field.
func CompanyNameIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldCompanyName))
}

// CompanyNameNotNil applies the NotNil predicate on the "company_name" field.
func CompanyNameNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldCompanyName))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldCompanyName, v))
}

// CompanySizeEQ applies the EQ predicate on the "company_size" field.
func CompanySizeEQ(v scoring.Size) predicate.Lead {
	vc := v
	return predicate.Lead(sql.FieldEQ(FieldCompanySize, vc))
}

// CompanySizeNEQ applies the NEQ predicate on the "company_size" field.
func CompanySizeNEQ(v scoring.Size) predicate.Lead {
	vc := v
	return predicate.Lead(sql.FieldNEQ(FieldCompanySize, vc))
}

// CompanySizeIn applies the In predicate on the "company_size" field.
func CompanySizeIn(vs ...scoring.Size) predicate.Lead {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Lead(sql.FieldIn(FieldCompanySize, v...))
}

// CompanySizeNotIn applies the NotIn predicate on the "company_size" field.
func CompanySizeNotIn(vs ...scoring.Size) predicate.Lead {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Lead(sql.FieldNotIn(FieldCompanySize, v...))
}

// CompanySizeIsNil applies the IsNil predicate on the "company_size" field.
func CompanySizeIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldCompanySize))
}

// CompanySizeNotNil applies the NotNil predicate on the "company_size" field.
func CompanySizeNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldCompanySize))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldEmail, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldCity, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldState, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldState))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldState, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v pipeline.Stage) predicate.Lead {
	vc := v
	return predicate.Lead(sql.FieldEQ(FieldStage, vc))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v pipeline.Stage) predicate.Lead {
	vc := v
	return predicate.Lead(sql.FieldNEQ(FieldStage, vc))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...pipeline.Stage) predicate.Lead {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Lead(sql.FieldIn(FieldStage, v...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...pipeline.Stage) predicate.Lead {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Lead(sql.FieldNotIn(FieldStage, v...))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldScore, v))
}

// AssignedAgentEQ applies the EQ predicate on the "assigned_agent" field.
func AssignedAgentEQ(v pipeline.Role) predicate.Lead {
	vc := v
	return predicate.Lead(sql.FieldEQ(FieldAssignedAgent, vc))
}

// AssignedAgentNEQ applies the NEQ predicate on the "assigned_agent" field.
func AssignedAgentNEQ(v pipeline.Role) predicate.Lead {
	vc := v
	return predicate.Lead(sql.FieldNEQ(FieldAssignedAgent, vc))
}

// AssignedAgentIn applies the In predicate on the "assigned_agent" field.
func AssignedAgentIn(vs ...pipeline.Role) predicate.Lead {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Lead(sql.FieldIn(FieldAssignedAgent, v...))
}

// AssignedAgentNotIn applies the NotIn predicate on the "assigned_agent" field.
func AssignedAgentNotIn(vs ...pipeline.Role) predicate.Lead {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Lead(sql.FieldNotIn(FieldAssignedAgent, v...))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldSource, vs...))
}

// GooglePlaceIDEQ applies the EQ predicate on the "google_place_id" field.
func GooglePlaceIDEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldGooglePlaceID, v))
}

// GooglePlaceIDNEQ applies the NEQ predicate on the "google_place_id" field.
func GooglePlaceIDNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldGooglePlaceID, v))
}

// GooglePlaceIDIn applies the In predicate on the "google_place_id" field.
func GooglePlaceIDIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldGooglePlaceID, vs...))
}

// GooglePlaceIDNotIn applies the NotIn predicate on the "google_place_id" field.
func GooglePlaceIDNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldGooglePlaceID, vs...))
}

// GooglePlaceIDGT applies the GT predicate on the "google_place_id" field.
func GooglePlaceIDGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldGooglePlaceID, v))
}

// GooglePlaceIDGTE applies the GTE predicate on the "google_place_id" field.
func GooglePlaceIDGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldGooglePlaceID, v))
}

// GooglePlaceIDLT applies the LT predicate on the "google_place_id" field.
func GooglePlaceIDLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldGooglePlaceID, v))
}

// GooglePlaceIDLTE applies the LTE predicate on the "google_place_id" field.
func GooglePlaceIDLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldGooglePlaceID, v))
}

// GooglePlaceIDContains applies the Contains predicate on the "google_place_id" field.
func GooglePlaceIDContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldGooglePlaceID, v))
}

// GooglePlaceIDHasPrefix applies the HasPrefix predicate on the "google_place_id" field.
func GooglePlaceIDHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldGooglePlaceID, v))
}

// GooglePlaceIDHasSuffix applies the HasSuffix predicate on the "google_place_id" field.
func GooglePlaceIDHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldGooglePlaceID, v))
}

// GooglePlaceIDIsNil applies the IsNil predicate on the "google_place_id" field.
func GooglePlaceIDIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldGooglePlaceID))
}

// GooglePlaceIDNotNil applies the NotNil predicate on the "google_place_id" field.
func GooglePlaceIDNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldGooglePlaceID))
}

// GooglePlaceIDEqualFold applies the EqualFold predicate on the "google_place_id" field.
func GooglePlaceIDEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldGooglePlaceID, v))
}

// GooglePlaceIDContainsFold applies the ContainsFold predicate on the "google_place_id" field.
func GooglePlaceIDContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldGooglePlaceID, v))
}

// PainPointsIsNil applies the IsNil predicate on the "pain_points" field.
func PainPointsIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldPainPoints))
}

// PainPointsNotNil applies the NotNil predicate on the "pain_points" field.
func PainPointsNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldPainPoints))
}

// ObjectionsIsNil applies the IsNil predicate on the "objections" field.
func ObjectionsIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldObjections))
}

// ObjectionsNotNil applies the NotNil predicate on the "objections" field.
func ObjectionsNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldObjections))
}

// LastContactAtEQ applies the EQ predicate on the "last_contact_at" field.
func LastContactAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLastContactAt, v))
}

// LastContactAtNEQ applies the NEQ predicate on the "last_contact_at" field.
func LastContactAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldLastContactAt, v))
}

// LastContactAtIn applies the In predicate on the "last_contact_at" field.
func LastContactAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldLastContactAt, vs...))
}

// LastContactAtNotIn applies the NotIn predicate on the "last_contact_at" field.
func LastContactAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldLastContactAt, vs...))
}

// LastContactAtGT applies the GT predicate on the "last_contact_at" field.
func LastContactAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldLastContactAt, v))
}

// LastContactAtGTE applies the GTE predicate on the "last_contact_at" field.
func LastContactAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldLastContactAt, v))
}

// LastContactAtLT applies the LT predicate on the "last_contact_at" field.
func LastContactAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldLastContactAt, v))
}

// LastContactAtLTE applies the LTE predicate on the "last_contact_at" field.
func LastContactAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldLastContactAt, v))
}

// LastContactAtIsNil applies the IsNil predicate on the "last_contact_at" field.
func LastContactAtIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldLastContactAt))
}

// LastContactAtNotNil applies the NotNil predicate on the "last_contact_at" field.
func LastContactAtNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldLastContactAt))
}

// NextFollowupAtEQ applies the EQ predicate on the "next_followup_at" field.
func NextFollowupAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldNextFollowupAt, v))
}

// NextFollowupAtNEQ applies the NEQ predicate on the "next_followup_at" field.
func NextFollowupAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldNextFollowupAt, v))
}

// NextFollowupAtIn applies the In predicate on the "next_followup_at" field.
func NextFollowupAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldNextFollowupAt, vs...))
}

// NextFollowupAtNotIn applies the NotIn predicate on the "next_followup_at" field.
func NextFollowupAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldNextFollowupAt, vs...))
}

// NextFollowupAtGT applies the GT predicate on the "next_followup_at" field.
func NextFollowupAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldNextFollowupAt, v))
}

// NextFollowupAtGTE applies the GTE predicate on the "next_followup_at" field.
func NextFollowupAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldNextFollowupAt, v))
}

// NextFollowupAtLT applies the LT predicate on the "next_followup_at" field.
func NextFollowupAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldNextFollowupAt, v))
}

// NextFollowupAtLTE applies the LTE predicate on the "next_followup_at" field.
func NextFollowupAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldNextFollowupAt, v))
}

// NextFollowupAtIsNil applies the IsNil predicate on the "next_followup_at" field.
func NextFollowupAtIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldNextFollowupAt))
}

// NextFollowupAtNotNil applies the NotNil predicate on the "next_followup_at" field.
func NextFollowupAtNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldNextFollowupAt))
}

// FollowupCountEQ applies the EQ predicate on the "followup_count" field.
func FollowupCountEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFollowupCount, v))
}

// FollowupCountNEQ applies the NEQ predicate on the "followup_count" field.
func FollowupCountNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldFollowupCount, v))
}

// FollowupCountIn applies the In predicate on the "followup_count" field.
func FollowupCountIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldFollowupCount, vs...))
}

// FollowupCountNotIn applies the NotIn predicate on the "followup_count" field.
func FollowupCountNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldFollowupCount, vs...))
}

// FollowupCountGT applies the GT predicate on the "followup_count" field.
func FollowupCountGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldFollowupCount, v))
}

// FollowupCountGTE applies the GTE predicate on the "followup_count" field.
func FollowupCountGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldFollowupCount, v))
}

// FollowupCountLT applies the LT predicate on the "followup_count" field.
func FollowupCountLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldFollowupCount, v))
}

// FollowupCountLTE applies the LTE predicate on the "followup_count" field.
func FollowupCountLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldFollowupCount, v))
}

// WonPlanEQ applies the EQ predicate on the "won_plan" field.
func WonPlanEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldWonPlan, v))
}

// WonPlanNEQ applies the NEQ predicate on the "won_plan" field.
func WonPlanNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldWonPlan, v))
}

// WonPlanIn applies the In predicate on the "won_plan" field.
func WonPlanIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldWonPlan, vs...))
}

// WonPlanNotIn applies the NotIn predicate on the "won_plan" field.
func WonPlanNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldWonPlan, vs...))
}

// WonPlanGT applies the GT predicate on the "won_plan" field.
func WonPlanGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldWonPlan, v))
}

// WonPlanGTE applies the GTE predicate on the "won_plan" field.
func WonPlanGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldWonPlan, v))
}

// WonPlanLT applies the LT predicate on the "won_plan" field.
func WonPlanLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldWonPlan, v))
}

// WonPlanLTE applies the LTE predicate on the "won_plan" field.
func WonPlanLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldWonPlan, v))
}

// WonPlanContains applies the Contains predicate on the "won_plan" field.
func WonPlanContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldWonPlan, v))
}

// WonPlanHasPrefix applies the HasPrefix predicate on the "won_plan" field.
func WonPlanHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldWonPlan, v))
}

// WonPlanHasSuffix applies the HasSuffix predicate on the "won_plan" field.
func WonPlanHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldWonPlan, v))
}

// WonPlanIsNil applies the IsNil predicate on the "won_plan" field.
func WonPlanIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldWonPlan))
}

// WonPlanNotNil applies the NotNil predicate on the "won_plan" field.
func WonPlanNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldWonPlan))
}

// WonPlanEqualFold applies the EqualFold predicate on the "won_plan" field.
func WonPlanEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldWonPlan, v))
}

// WonPlanContainsFold applies the ContainsFold predicate on the "won_plan" field.
func WonPlanContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldWonPlan, v))
}

// WonAmountCentsEQ applies the EQ predicate on the "won_amount_cents" field.
func WonAmountCentsEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldWonAmountCents, v))
}

// WonAmountCentsNEQ applies the NEQ predicate on the "won_amount_cents" field.
func WonAmountCentsNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldWonAmountCents, v))
}

// WonAmountCentsIn applies the In predicate on the "won_amount_cents" field.
func WonAmountCentsIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldWonAmountCents, vs...))
}

// WonAmountCentsNotIn applies the NotIn predicate on the "won_amount_cents" field.
func WonAmountCentsNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldWonAmountCents, vs...))
}

// WonAmountCentsGT applies the GT predicate on the "won_amount_cents" field.
func WonAmountCentsGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldWonAmountCents, v))
}

// WonAmountCentsGTE applies the GTE predicate on the "won_amount_cents" field.
func WonAmountCentsGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldWonAmountCents, v))
}

// WonAmountCentsLT applies the LT predicate on the "won_amount_cents" field.
func WonAmountCentsLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldWonAmountCents, v))
}

// WonAmountCentsLTE applies the LTE predicate on the "won_amount_cents" field.
func WonAmountCentsLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldWonAmountCents, v))
}

// WonAmountCentsIsNil applies the IsNil predicate on the "won_amount_cents" field.
func WonAmountCentsIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldWonAmountCents))
}

// WonAmountCentsNotNil applies the NotNil predicate on the "won_amount_cents" field.
func WonAmountCentsNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldWonAmountCents))
}

// WonAtEQ applies the EQ predicate on the "won_at" field.
func WonAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldWonAt, v))
}

// WonAtNEQ applies the NEQ predicate on the "won_at" field.
func WonAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldWonAt, v))
}

// WonAtIn applies the In predicate on the "won_at" field.
func WonAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldWonAt, vs...))
}

// WonAtNotIn applies the NotIn predicate on the "won_at" field.
func WonAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldWonAt, vs...))
}

// WonAtGT applies the GT predicate on the "won_at" field.
func WonAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldWonAt, v))
}

// WonAtGTE applies the GTE predicate on the "won_at" field.
func WonAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldWonAt, v))
}

// WonAtLT applies the LT predicate on the "won_at" field.
func WonAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldWonAt, v))
}

// WonAtLTE applies the LTE predicate on the "won_at" field.
func WonAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldWonAt, v))
}

// WonAtIsNil applies the IsNil predicate on the "won_at" field.
func WonAtIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldWonAt))
}

// WonAtNotNil applies the NotNil predicate on the "won_at" field.
func WonAtNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldWonAt))
}

// LostAtEQ applies the EQ predicate on the "lost_at" field.
func LostAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLostAt, v))
}

// LostAtNEQ applies the NEQ predicate on the "lost_at" field.
func LostAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldLostAt, v))
}

// LostAtIn applies the In predicate on the "lost_at" field.
func LostAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldLostAt, vs...))
}

// LostAtNotIn applies the NotIn predicate on the "lost_at" field.
func LostAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldLostAt, vs...))
}

// LostAtGT applies the GT predicate on the "lost_at" field.
func LostAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldLostAt, v))
}

// LostAtGTE applies the GTE predicate on the "lost_at" field.
func LostAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldLostAt, v))
}

// LostAtLT applies the LT predicate on the "lost_at" field.
func LostAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldLostAt, v))
}

// LostAtLTE applies the LTE predicate on the "lost_at" field.
func LostAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldLostAt, v))
}

// LostAtIsNil applies the IsNil predicate on the "lost_at" field.
func LostAtIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldLostAt))
}

// LostAtNotNil applies the NotNil predicate on the "lost_at" field.
func LostAtNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldLostAt))
}

// LostReasonEQ applies the EQ predicate on the "lost_reason" field.
func LostReasonEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLostReason, v))
}

// LostReasonNEQ applies the NEQ predicate on the "lost_reason" field.
func LostReasonNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldLostReason, v))
}

// LostReasonIn applies the In predicate on the "lost_reason" field.
func LostReasonIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldLostReason, vs...))
}

// LostReasonNotIn applies the NotIn predicate on the "lost_reason" field.
func LostReasonNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldLostReason, vs...))
}

// LostReasonGT applies the GT predicate on the "lost_reason" field.
func LostReasonGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldLostReason, v))
}

// LostReasonGTE applies the GTE predicate on the "lost_reason" field.
func LostReasonGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldLostReason, v))
}

// LostReasonLT applies the LT predicate on the "lost_reason" field.
func LostReasonLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldLostReason, v))
}

// LostReasonLTE applies the LTE predicate on the "lost_reason" field.
func LostReasonLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldLostReason, v))
}

// LostReasonContains applies the Contains predicate on the "lost_reason" field.
func LostReasonContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldLostReason, v))
}

// LostReasonHasPrefix applies the HasPrefix predicate on the "lost_reason" field.
func LostReasonHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldLostReason, v))
}

// LostReasonHasSuffix applies the HasSuffix predicate on the "lost_reason" field.
func LostReasonHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldLostReason, v))
}

// LostReasonIsNil applies the IsNil predicate on the "lost_reason" field.
func LostReasonIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldLostReason))
}

// LostReasonNotNil applies the NotNil predicate on the "lost_reason" field.
func LostReasonNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldLostReason))
}

// LostReasonEqualFold applies the EqualFold predicate on the "lost_reason" field.
func LostReasonEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldLostReason, v))
}

// LostReasonContainsFold applies the ContainsFold predicate on the "lost_reason" field.
func LostReasonContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldLostReason, v))
}

// AiCostCentsEQ applies the EQ predicate on the "ai_cost_cents" field.
func AiCostCentsEQ(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAiCostCents, v))
}

// AiCostCentsNEQ applies the NEQ predicate on the "ai_cost_cents" field.
func AiCostCentsNEQ(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldAiCostCents, v))
}

// AiCostCentsIn applies the In predicate on the "ai_cost_cents" field.
func AiCostCentsIn(vs ...float64) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldAiCostCents, vs...))
}

// AiCostCentsNotIn applies the NotIn predicate on the "ai_cost_cents" field.
func AiCostCentsNotIn(vs ...float64) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldAiCostCents, vs...))
}

// AiCostCentsGT applies the GT predicate on the "ai_cost_cents" field.
func AiCostCentsGT(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldAiCostCents, v))
}

// AiCostCentsGTE applies the GTE predicate on the "ai_cost_cents" field.
func AiCostCentsGTE(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldAiCostCents, v))
}

// AiCostCentsLT applies the LT predicate on the "ai_cost_cents" field.
func AiCostCentsLT(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldAiCostCents, v))
}

// AiCostCentsLTE applies the LTE predicate on the "ai_cost_cents" field.
func AiCostCentsLTE(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldAiCostCents, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldMetadata))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasConversations applies the HasEdge predicate on the "conversations" edge.
func HasConversations() predicate.Lead {
	return predicate.Lead(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationsWith applies the HasEdge predicate on the "conversations" edge with a given conditions (other predicates).
func HasConversationsWith(preds ...predicate.Conversation) predicate.Lead {
	return predicate.Lead(func(s *sql.Selector) {
		step := newConversationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.NotPredicates(p))
}
