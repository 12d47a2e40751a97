// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/ent/predicate"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/scoring"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks    []Hook
	mutation *LeadMutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdate) SetPhone(v string) *LeadUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePhone(v *string) *LeadUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetProduct sets the "product" field.
func (_u *LeadUpdate) SetProduct(v product.Line) *LeadUpdate {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableProduct(v *product.Line) *LeadUpdate {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *LeadUpdate) SetName(v string) *LeadUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *LeadUpdate) ClearName() *LeadUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *LeadUpdate) SetCompanyName(v string) *LeadUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompanyName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *LeadUpdate) ClearCompanyName() *LeadUpdate {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetCompanySize sets the "company_size" field.
func (_u *LeadUpdate) SetCompanySize(v scoring.Size) *LeadUpdate {
	_u.mutation.SetCompanySize(v)
	return _u
}

// SetNillableCompanySize sets the "company_size" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompanySize(v *scoring.Size) *LeadUpdate {
	if v != nil {
		_u.SetCompanySize(*v)
	}
	return _u
}

// ClearCompanySize clears the value of the "company_size" field.
func (_u *LeadUpdate) ClearCompanySize() *LeadUpdate {
	_u.mutation.ClearCompanySize()
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdate) SetEmail(v string) *LeadUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmail(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdate) ClearEmail() *LeadUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetCity sets the "city" field.
func (_u *LeadUpdate) SetCity(v string) *LeadUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCity(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *LeadUpdate) ClearCity() *LeadUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *LeadUpdate) SetState(v string) *LeadUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableState(v *string) *LeadUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *LeadUpdate) ClearState() *LeadUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetStage sets the "stage" field.
func (_u *LeadUpdate) SetStage(v pipeline.Stage) *LeadUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableStage(v *pipeline.Stage) *LeadUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LeadUpdate) SetScore(v int) *LeadUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableScore(v *int) *LeadUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LeadUpdate) AddScore(v int) *LeadUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAssignedAgent sets the "assigned_agent" field.
func (_u *LeadUpdate) SetAssignedAgent(v pipeline.Role) *LeadUpdate {
	_u.mutation.SetAssignedAgent(v)
	return _u
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableAssignedAgent(v *pipeline.Role) *LeadUpdate {
	if v != nil {
		_u.SetAssignedAgent(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdate) SetSource(v lead.Source) *LeadUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableSource(v *lead.Source) *LeadUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetGooglePlaceID sets the "google_place_id" field.
func (_u *LeadUpdate) SetGooglePlaceID(v string) *LeadUpdate {
	_u.mutation.SetGooglePlaceID(v)
	return _u
}

// SetNillableGooglePlaceID sets the "google_place_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableGooglePlaceID(v *string) *LeadUpdate {
	if v != nil {
		_u.SetGooglePlaceID(*v)
	}
	return _u
}

// ClearGooglePlaceID clears the value of the "google_place_id" field.
func (_u *LeadUpdate) ClearGooglePlaceID() *LeadUpdate {
	_u.mutation.ClearGooglePlaceID()
	return _u
}

// SetPainPoints sets the "pain_points" field.
func (_u *LeadUpdate) SetPainPoints(v []string) *LeadUpdate {
	_u.mutation.SetPainPoints(v)
	return _u
}

// AppendPainPoints appends value to the "pain_points" field.
func (_u *LeadUpdate) AppendPainPoints(v []string) *LeadUpdate {
	_u.mutation.AppendPainPoints(v)
	return _u
}

// ClearPainPoints clears the value of the "pain_points" field.
func (_u *LeadUpdate) ClearPainPoints() *LeadUpdate {
	_u.mutation.ClearPainPoints()
	return _u
}

// SetObjections sets the "objections" field.
func (_u *LeadUpdate) SetObjections(v []string) *LeadUpdate {
	_u.mutation.SetObjections(v)
	return _u
}

// AppendObjections appends value to the "objections" field.
func (_u *LeadUpdate) AppendObjections(v []string) *LeadUpdate {
	_u.mutation.AppendObjections(v)
	return _u
}

// ClearObjections clears the value of the "objections" field.
func (_u *LeadUpdate) ClearObjections() *LeadUpdate {
	_u.mutation.ClearObjections()
	return _u
}

// SetLastContactAt sets the "last_contact_at" field.
func (_u *LeadUpdate) SetLastContactAt(v time.Time) *LeadUpdate {
	_u.mutation.SetLastContactAt(v)
	return _u
}

// SetNillableLastContactAt sets the "last_contact_at" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLastContactAt(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetLastContactAt(*v)
	}
	return _u
}

// ClearLastContactAt clears the value of the "last_contact_at" field.
func (_u *LeadUpdate) ClearLastContactAt() *LeadUpdate {
	_u.mutation.ClearLastContactAt()
	return _u
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (_u *LeadUpdate) SetNextFollowupAt(v time.Time) *LeadUpdate {
	_u.mutation.SetNextFollowupAt(v)
	return _u
}

// SetNillableNextFollowupAt sets the "next_followup_at" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableNextFollowupAt(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetNextFollowupAt(*v)
	}
	return _u
}

// ClearNextFollowupAt clears the value of the "next_followup_at" field.
func (_u *LeadUpdate) ClearNextFollowupAt() *LeadUpdate {
	_u.mutation.ClearNextFollowupAt()
	return _u
}

// SetFollowupCount sets the "followup_count" field.
func (_u *LeadUpdate) SetFollowupCount(v int) *LeadUpdate {
	_u.mutation.ResetFollowupCount()
	_u.mutation.SetFollowupCount(v)
	return _u
}

// SetNillableFollowupCount sets the "followup_count" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableFollowupCount(v *int) *LeadUpdate {
	if v != nil {
		_u.SetFollowupCount(*v)
	}
	return _u
}

// AddFollowupCount adds value to the "followup_count" field.
func (_u *LeadUpdate) AddFollowupCount(v int) *LeadUpdate {
	_u.mutation.AddFollowupCount(v)
	return _u
}

// SetWonPlan sets the "won_plan" field.
func (_u *LeadUpdate) SetWonPlan(v string) *LeadUpdate {
	_u.mutation.SetWonPlan(v)
	return _u
}

// SetNillableWonPlan sets the "won_plan" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableWonPlan(v *string) *LeadUpdate {
	if v != nil {
		_u.SetWonPlan(*v)
	}
	return _u
}

// ClearWonPlan clears the value of the "won_plan" field.
func (_u *LeadUpdate) ClearWonPlan() *LeadUpdate {
	_u.mutation.ClearWonPlan()
	return _u
}

// SetWonAmountCents sets the "won_amount_cents" field.
func (_u *LeadUpdate) SetWonAmountCents(v int) *LeadUpdate {
	_u.mutation.ResetWonAmountCents()
	_u.mutation.SetWonAmountCents(v)
	return _u
}

// SetNillableWonAmountCents sets the "won_amount_cents" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableWonAmountCents(v *int) *LeadUpdate {
	if v != nil {
		_u.SetWonAmountCents(*v)
	}
	return _u
}

// AddWonAmountCents adds value to the "won_amount_cents" field.
func (_u *LeadUpdate) AddWonAmountCents(v int) *LeadUpdate {
	_u.mutation.AddWonAmountCents(v)
	return _u
}

// ClearWonAmountCents clears the value of the "won_amount_cents" field.
func (_u *LeadUpdate) ClearWonAmountCents() *LeadUpdate {
	_u.mutation.ClearWonAmountCents()
	return _u
}

// SetWonAt sets the "won_at" field.
func (_u *LeadUpdate) SetWonAt(v time.Time) *LeadUpdate {
	_u.mutation.SetWonAt(v)
	return _u
}

// SetNillableWonAt sets the "won_at" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableWonAt(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetWonAt(*v)
	}
	return _u
}

// ClearWonAt clears the value of the "won_at" field.
func (_u *LeadUpdate) ClearWonAt() *LeadUpdate {
	_u.mutation.ClearWonAt()
	return _u
}

// SetLostAt sets the "lost_at" field.
func (_u *LeadUpdate) SetLostAt(v time.Time) *LeadUpdate {
	_u.mutation.SetLostAt(v)
	return _u
}

// SetNillableLostAt sets the "lost_at" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLostAt(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetLostAt(*v)
	}
	return _u
}

// ClearLostAt clears the value of the "lost_at" field.
func (_u *LeadUpdate) ClearLostAt() *LeadUpdate {
	_u.mutation.ClearLostAt()
	return _u
}

// SetLostReason sets the "lost_reason" field.
func (_u *LeadUpdate) SetLostReason(v string) *LeadUpdate {
	_u.mutation.SetLostReason(v)
	return _u
}

// SetNillableLostReason sets the "lost_reason" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLostReason(v *string) *LeadUpdate {
	if v != nil {
		_u.SetLostReason(*v)
	}
	return _u
}

// ClearLostReason clears the value of the "lost_reason" field.
func (_u *LeadUpdate) ClearLostReason() *LeadUpdate {
	_u.mutation.ClearLostReason()
	return _u
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (_u *LeadUpdate) SetAiCostCents(v float64) *LeadUpdate {
	_u.mutation.ResetAiCostCents()
	_u.mutation.SetAiCostCents(v)
	return _u
}

// SetNillableAiCostCents sets the "ai_cost_cents" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableAiCostCents(v *float64) *LeadUpdate {
	if v != nil {
		_u.SetAiCostCents(*v)
	}
	return _u
}

// AddAiCostCents adds value to the "ai_cost_cents" field.
func (_u *LeadUpdate) AddAiCostCents(v float64) *LeadUpdate {
	_u.mutation.AddAiCostCents(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *LeadUpdate) SetMetadata(v models.LeadMetadata) *LeadUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableMetadata(v *models.LeadMetadata) *LeadUpdate {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *LeadUpdate) ClearMetadata() *LeadUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetVersion sets the "version" field.
func (_u *LeadUpdate) SetVersion(v int) *LeadUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableVersion(v *int) *LeadUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *LeadUpdate) AddVersion(v int) *LeadUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdate) SetUpdatedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *LeadUpdate) AddConversationIDs(ids ...int) *LeadUpdate {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *LeadUpdate) AddConversations(v ...*Conversation) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *LeadUpdate) ClearConversations() *LeadUpdate {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *LeadUpdate) RemoveConversationIDs(ids ...int) *LeadUpdate {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *LeadUpdate) RemoveConversations(v ...*Conversation) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdate) check() error {
	if v, ok := _u.mutation.Phone(); ok {
		if err := lead.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Lead.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Product(); ok {
		if err := lead.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "Lead.product": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanySize(); ok {
		if err := lead.CompanySizeValidator(v); err != nil {
			return &ValidationError{Name: "company_size", err: fmt.Errorf(`ent: validator failed for field "Lead.company_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := lead.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Lead.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := lead.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Lead.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := lead.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Lead.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedAgent(); ok {
		if err := lead.AssignedAgentValidator(v); err != nil {
			return &ValidationError{Name: "assigned_agent", err: fmt.Errorf(`ent: validator failed for field "Lead.assigned_agent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FollowupCount(); ok {
		if err := lead.FollowupCountValidator(v); err != nil {
			return &ValidationError{Name: "followup_count", err: fmt.Errorf(`ent: validator failed for field "Lead.followup_count": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(lead.FieldProduct, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(lead.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(lead.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.CompanySize(); ok {
		_spec.SetField(lead.FieldCompanySize, field.TypeEnum, value)
	}
	if _u.mutation.CompanySizeCleared() {
		_spec.ClearField(lead.FieldCompanySize, field.TypeEnum)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(lead.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(lead.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(lead.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(lead.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(lead.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedAgent(); ok {
		_spec.SetField(lead.FieldAssignedAgent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GooglePlaceID(); ok {
		_spec.SetField(lead.FieldGooglePlaceID, field.TypeString, value)
	}
	if _u.mutation.GooglePlaceIDCleared() {
		_spec.ClearField(lead.FieldGooglePlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.PainPoints(); ok {
		_spec.SetField(lead.FieldPainPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPainPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldPainPoints, value)
		})
	}
	if _u.mutation.PainPointsCleared() {
		_spec.ClearField(lead.FieldPainPoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Objections(); ok {
		_spec.SetField(lead.FieldObjections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldObjections, value)
		})
	}
	if _u.mutation.ObjectionsCleared() {
		_spec.ClearField(lead.FieldObjections, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastContactAt(); ok {
		_spec.SetField(lead.FieldLastContactAt, field.TypeTime, value)
	}
	if _u.mutation.LastContactAtCleared() {
		_spec.ClearField(lead.FieldLastContactAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextFollowupAt(); ok {
		_spec.SetField(lead.FieldNextFollowupAt, field.TypeTime, value)
	}
	if _u.mutation.NextFollowupAtCleared() {
		_spec.ClearField(lead.FieldNextFollowupAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FollowupCount(); ok {
		_spec.SetField(lead.FieldFollowupCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFollowupCount(); ok {
		_spec.AddField(lead.FieldFollowupCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WonPlan(); ok {
		_spec.SetField(lead.FieldWonPlan, field.TypeString, value)
	}
	if _u.mutation.WonPlanCleared() {
		_spec.ClearField(lead.FieldWonPlan, field.TypeString)
	}
	if value, ok := _u.mutation.WonAmountCents(); ok {
		_spec.SetField(lead.FieldWonAmountCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWonAmountCents(); ok {
		_spec.AddField(lead.FieldWonAmountCents, field.TypeInt, value)
	}
	if _u.mutation.WonAmountCentsCleared() {
		_spec.ClearField(lead.FieldWonAmountCents, field.TypeInt)
	}
	if value, ok := _u.mutation.WonAt(); ok {
		_spec.SetField(lead.FieldWonAt, field.TypeTime, value)
	}
	if _u.mutation.WonAtCleared() {
		_spec.ClearField(lead.FieldWonAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LostAt(); ok {
		_spec.SetField(lead.FieldLostAt, field.TypeTime, value)
	}
	if _u.mutation.LostAtCleared() {
		_spec.ClearField(lead.FieldLostAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LostReason(); ok {
		_spec.SetField(lead.FieldLostReason, field.TypeString, value)
	}
	if _u.mutation.LostReasonCleared() {
		_spec.ClearField(lead.FieldLostReason, field.TypeString)
	}
	if value, ok := _u.mutation.AiCostCents(); ok {
		_spec.SetField(lead.FieldAiCostCents, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAiCostCents(); ok {
		_spec.AddField(lead.FieldAiCostCents, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(lead.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(lead.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(lead.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(lead.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ConversationsTable,
			Columns: []string{lead.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ConversationsTable,
			Columns: []string{lead.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ConversationsTable,
			Columns: []string{lead.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadMutation
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdateOne) SetPhone(v string) *LeadUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePhone(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetProduct sets the "product" field.
func (_u *LeadUpdateOne) SetProduct(v product.Line) *LeadUpdateOne {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableProduct(v *product.Line) *LeadUpdateOne {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *LeadUpdateOne) SetName(v string) *LeadUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *LeadUpdateOne) ClearName() *LeadUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *LeadUpdateOne) SetCompanyName(v string) *LeadUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompanyName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *LeadUpdateOne) ClearCompanyName() *LeadUpdateOne {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetCompanySize sets the "company_size" field.
func (_u *LeadUpdateOne) SetCompanySize(v scoring.Size) *LeadUpdateOne {
	_u.mutation.SetCompanySize(v)
	return _u
}

// SetNillableCompanySize sets the "company_size" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompanySize(v *scoring.Size) *LeadUpdateOne {
	if v != nil {
		_u.SetCompanySize(*v)
	}
	return _u
}

// ClearCompanySize clears the value of the "company_size" field.
func (_u *LeadUpdateOne) ClearCompanySize() *LeadUpdateOne {
	_u.mutation.ClearCompanySize()
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdateOne) SetEmail(v string) *LeadUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmail(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdateOne) ClearEmail() *LeadUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetCity sets the "city" field.
func (_u *LeadUpdateOne) SetCity(v string) *LeadUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCity(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *LeadUpdateOne) ClearCity() *LeadUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *LeadUpdateOne) SetState(v string) *LeadUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableState(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *LeadUpdateOne) ClearState() *LeadUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetStage sets the "stage" field.
func (_u *LeadUpdateOne) SetStage(v pipeline.Stage) *LeadUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableStage(v *pipeline.Stage) *LeadUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LeadUpdateOne) SetScore(v int) *LeadUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableScore(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LeadUpdateOne) AddScore(v int) *LeadUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAssignedAgent sets the "assigned_agent" field.
func (_u *LeadUpdateOne) SetAssignedAgent(v pipeline.Role) *LeadUpdateOne {
	_u.mutation.SetAssignedAgent(v)
	return _u
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableAssignedAgent(v *pipeline.Role) *LeadUpdateOne {
	if v != nil {
		_u.SetAssignedAgent(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdateOne) SetSource(v lead.Source) *LeadUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableSource(v *lead.Source) *LeadUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetGooglePlaceID sets the "google_place_id" field.
func (_u *LeadUpdateOne) SetGooglePlaceID(v string) *LeadUpdateOne {
	_u.mutation.SetGooglePlaceID(v)
	return _u
}

// SetNillableGooglePlaceID sets the "google_place_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableGooglePlaceID(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetGooglePlaceID(*v)
	}
	return _u
}

// ClearGooglePlaceID clears the value of the "google_place_id" field.
func (_u *LeadUpdateOne) ClearGooglePlaceID() *LeadUpdateOne {
	_u.mutation.ClearGooglePlaceID()
	return _u
}

// SetPainPoints sets the "pain_points" field.
func (_u *LeadUpdateOne) SetPainPoints(v []string) *LeadUpdateOne {
	_u.mutation.SetPainPoints(v)
	return _u
}

// AppendPainPoints appends value to the "pain_points" field.
func (_u *LeadUpdateOne) AppendPainPoints(v []string) *LeadUpdateOne {
	_u.mutation.AppendPainPoints(v)
	return _u
}

// ClearPainPoints clears the value of the "pain_points" field.
func (_u *LeadUpdateOne) ClearPainPoints() *LeadUpdateOne {
	_u.mutation.ClearPainPoints()
	return _u
}

// SetObjections sets the "objections" field.
func (_u *LeadUpdateOne) SetObjections(v []string) *LeadUpdateOne {
	_u.mutation.SetObjections(v)
	return _u
}

// AppendObjections appends value to the "objections" field.
func (_u *LeadUpdateOne) AppendObjections(v []string) *LeadUpdateOne {
	_u.mutation.AppendObjections(v)
	return _u
}

// ClearObjections clears the value of the "objections" field.
func (_u *LeadUpdateOne) ClearObjections() *LeadUpdateOne {
	_u.mutation.ClearObjections()
	return _u
}

// SetLastContactAt sets the "last_contact_at" field.
func (_u *LeadUpdateOne) SetLastContactAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetLastContactAt(v)
	return _u
}

// SetNillableLastContactAt sets the "last_contact_at" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLastContactAt(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetLastContactAt(*v)
	}
	return _u
}

// ClearLastContactAt clears the value of the "last_contact_at" field.
func (_u *LeadUpdateOne) ClearLastContactAt() *LeadUpdateOne {
	_u.mutation.ClearLastContactAt()
	return _u
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (_u *LeadUpdateOne) SetNextFollowupAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetNextFollowupAt(v)
	return _u
}

// SetNillableNextFollowupAt sets the "next_followup_at" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableNextFollowupAt(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetNextFollowupAt(*v)
	}
	return _u
}

// ClearNextFollowupAt clears the value of the "next_followup_at" field.
func (_u *LeadUpdateOne) ClearNextFollowupAt() *LeadUpdateOne {
	_u.mutation.ClearNextFollowupAt()
	return _u
}

// SetFollowupCount sets the "followup_count" field.
func (_u *LeadUpdateOne) SetFollowupCount(v int) *LeadUpdateOne {
	_u.mutation.ResetFollowupCount()
	_u.mutation.SetFollowupCount(v)
	return _u
}

// SetNillableFollowupCount sets the "followup_count" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableFollowupCount(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetFollowupCount(*v)
	}
	return _u
}

// AddFollowupCount adds value to the "followup_count" field.
func (_u *LeadUpdateOne) AddFollowupCount(v int) *LeadUpdateOne {
	_u.mutation.AddFollowupCount(v)
	return _u
}

// SetWonPlan sets the "won_plan" field.
func (_u *LeadUpdateOne) SetWonPlan(v string) *LeadUpdateOne {
	_u.mutation.SetWonPlan(v)
	return _u
}

// SetNillableWonPlan sets the "won_plan" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableWonPlan(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetWonPlan(*v)
	}
	return _u
}

// ClearWonPlan clears the value of the "won_plan" field.
func (_u *LeadUpdateOne) ClearWonPlan() *LeadUpdateOne {
	_u.mutation.ClearWonPlan()
	return _u
}

// SetWonAmountCents sets the "won_amount_cents" field.
func (_u *LeadUpdateOne) SetWonAmountCents(v int) *LeadUpdateOne {
	_u.mutation.ResetWonAmountCents()
	_u.mutation.SetWonAmountCents(v)
	return _u
}

// SetNillableWonAmountCents sets the "won_amount_cents" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableWonAmountCents(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetWonAmountCents(*v)
	}
	return _u
}

// AddWonAmountCents adds value to the "won_amount_cents" field.
func (_u *LeadUpdateOne) AddWonAmountCents(v int) *LeadUpdateOne {
	_u.mutation.AddWonAmountCents(v)
	return _u
}

// ClearWonAmountCents clears the value of the "won_amount_cents" field.
func (_u *LeadUpdateOne) ClearWonAmountCents() *LeadUpdateOne {
	_u.mutation.ClearWonAmountCents()
	return _u
}

// SetWonAt sets the "won_at" field.
func (_u *LeadUpdateOne) SetWonAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetWonAt(v)
	return _u
}

// SetNillableWonAt sets the "won_at" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableWonAt(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetWonAt(*v)
	}
	return _u
}

// ClearWonAt clears the value of the "won_at" field.
func (_u *LeadUpdateOne) ClearWonAt() *LeadUpdateOne {
	_u.mutation.ClearWonAt()
	return _u
}

// SetLostAt sets the "lost_at" field.
func (_u *LeadUpdateOne) SetLostAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetLostAt(v)
	return _u
}

// SetNillableLostAt sets the "lost_at" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLostAt(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetLostAt(*v)
	}
	return _u
}

// ClearLostAt clears the value of the "lost_at" field.
func (_u *LeadUpdateOne) ClearLostAt() *LeadUpdateOne {
	_u.mutation.ClearLostAt()
	return _u
}

// SetLostReason sets the "lost_reason" field.
func (_u *LeadUpdateOne) SetLostReason(v string) *LeadUpdateOne {
	_u.mutation.SetLostReason(v)
	return _u
}

// SetNillableLostReason sets the "lost_reason" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLostReason(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetLostReason(*v)
	}
	return _u
}

// ClearLostReason clears the value of the "lost_reason" field.
func (_u *LeadUpdateOne) ClearLostReason() *LeadUpdateOne {
	_u.mutation.ClearLostReason()
	return _u
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (_u *LeadUpdateOne) SetAiCostCents(v float64) *LeadUpdateOne {
	_u.mutation.ResetAiCostCents()
	_u.mutation.SetAiCostCents(v)
	return _u
}

// SetNillableAiCostCents sets the "ai_cost_cents" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableAiCostCents(v *float64) *LeadUpdateOne {
	if v != nil {
		_u.SetAiCostCents(*v)
	}
	return _u
}

// AddAiCostCents adds value to the "ai_cost_cents" field.
func (_u *LeadUpdateOne) AddAiCostCents(v float64) *LeadUpdateOne {
	_u.mutation.AddAiCostCents(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *LeadUpdateOne) SetMetadata(v models.LeadMetadata) *LeadUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableMetadata(v *models.LeadMetadata) *LeadUpdateOne {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *LeadUpdateOne) ClearMetadata() *LeadUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetVersion sets the "version" field.
func (_u *LeadUpdateOne) SetVersion(v int) *LeadUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableVersion(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *LeadUpdateOne) AddVersion(v int) *LeadUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdateOne) SetUpdatedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *LeadUpdateOne) AddConversationIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *LeadUpdateOne) AddConversations(v ...*Conversation) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *LeadUpdateOne) ClearConversations() *LeadUpdateOne {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *LeadUpdateOne) RemoveConversationIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *LeadUpdateOne) RemoveConversations(v ...*Conversation) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdateOne) check() error {
	if v, ok := _u.mutation.Phone(); ok {
		if err := lead.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Lead.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Product(); ok {
		if err := lead.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "Lead.product": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanySize(); ok {
		if err := lead.CompanySizeValidator(v); err != nil {
			return &ValidationError{Name: "company_size", err: fmt.Errorf(`ent: validator failed for field "Lead.company_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := lead.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Lead.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := lead.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Lead.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := lead.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Lead.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedAgent(); ok {
		if err := lead.AssignedAgentValidator(v); err != nil {
			return &ValidationError{Name: "assigned_agent", err: fmt.Errorf(`ent: validator failed for field "Lead.assigned_agent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FollowupCount(); ok {
		if err := lead.FollowupCountValidator(v); err != nil {
			return &ValidationError{Name: "followup_count", err: fmt.Errorf(`ent: validator failed for field "Lead.followup_count": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(lead.FieldProduct, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(lead.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(lead.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.CompanySize(); ok {
		_spec.SetField(lead.FieldCompanySize, field.TypeEnum, value)
	}
	if _u.mutation.CompanySizeCleared() {
		_spec.ClearField(lead.FieldCompanySize, field.TypeEnum)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(lead.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(lead.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(lead.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(lead.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(lead.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedAgent(); ok {
		_spec.SetField(lead.FieldAssignedAgent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GooglePlaceID(); ok {
		_spec.SetField(lead.FieldGooglePlaceID, field.TypeString, value)
	}
	if _u.mutation.GooglePlaceIDCleared() {
		_spec.ClearField(lead.FieldGooglePlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.PainPoints(); ok {
		_spec.SetField(lead.FieldPainPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPainPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldPainPoints, value)
		})
	}
	if _u.mutation.PainPointsCleared() {
		_spec.ClearField(lead.FieldPainPoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Objections(); ok {
		_spec.SetField(lead.FieldObjections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldObjections, value)
		})
	}
	if _u.mutation.ObjectionsCleared() {
		_spec.ClearField(lead.FieldObjections, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastContactAt(); ok {
		_spec.SetField(lead.FieldLastContactAt, field.TypeTime, value)
	}
	if _u.mutation.LastContactAtCleared() {
		_spec.ClearField(lead.FieldLastContactAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextFollowupAt(); ok {
		_spec.SetField(lead.FieldNextFollowupAt, field.TypeTime, value)
	}
	if _u.mutation.NextFollowupAtCleared() {
		_spec.ClearField(lead.FieldNextFollowupAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FollowupCount(); ok {
		_spec.SetField(lead.FieldFollowupCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFollowupCount(); ok {
		_spec.AddField(lead.FieldFollowupCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WonPlan(); ok {
		_spec.SetField(lead.FieldWonPlan, field.TypeString, value)
	}
	if _u.mutation.WonPlanCleared() {
		_spec.ClearField(lead.FieldWonPlan, field.TypeString)
	}
	if value, ok := _u.mutation.WonAmountCents(); ok {
		_spec.SetField(lead.FieldWonAmountCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWonAmountCents(); ok {
		_spec.AddField(lead.FieldWonAmountCents, field.TypeInt, value)
	}
	if _u.mutation.WonAmountCentsCleared() {
		_spec.ClearField(lead.FieldWonAmountCents, field.TypeInt)
	}
	if value, ok := _u.mutation.WonAt(); ok {
		_spec.SetField(lead.FieldWonAt, field.TypeTime, value)
	}
	if _u.mutation.WonAtCleared() {
		_spec.ClearField(lead.FieldWonAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LostAt(); ok {
		_spec.SetField(lead.FieldLostAt, field.TypeTime, value)
	}
	if _u.mutation.LostAtCleared() {
		_spec.ClearField(lead.FieldLostAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LostReason(); ok {
		_spec.SetField(lead.FieldLostReason, field.TypeString, value)
	}
	if _u.mutation.LostReasonCleared() {
		_spec.ClearField(lead.FieldLostReason, field.TypeString)
	}
	if value, ok := _u.mutation.AiCostCents(); ok {
		_spec.SetField(lead.FieldAiCostCents, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAiCostCents(); ok {
		_spec.AddField(lead.FieldAiCostCents, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(lead.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(lead.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(lead.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(lead.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ConversationsTable,
			Columns: []string{lead.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ConversationsTable,
			Columns: []string{lead.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ConversationsTable,
			Columns: []string{lead.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
