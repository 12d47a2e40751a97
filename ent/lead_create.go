// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/scoring"
)

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPhone sets the "phone" field.
func (_c *LeadCreate) SetPhone(v string) *LeadCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetProduct sets the "product" field.
func (_c *LeadCreate) SetProduct(v product.Line) *LeadCreate {
	_c.mutation.SetProduct(v)
	return _c
}

// SetName sets the "name" field.
func (_c *LeadCreate) SetName(v string) *LeadCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *LeadCreate) SetNillableName(v *string) *LeadCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *LeadCreate) SetCompanyName(v string) *LeadCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompanyName(v *string) *LeadCreate {
	if v != nil {
		_c.SetCompanyName(*v)
	}
	return _c
}

// SetCompanySize sets the "company_size" field.
func (_c *LeadCreate) SetCompanySize(v scoring.Size) *LeadCreate {
	_c.mutation.SetCompanySize(v)
	return _c
}

// SetNillableCompanySize sets the "company_size" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompanySize(v *scoring.Size) *LeadCreate {
	if v != nil {
		_c.SetCompanySize(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *LeadCreate) SetEmail(v string) *LeadCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEmail(v *string) *LeadCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *LeadCreate) SetCity(v string) *LeadCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCity(v *string) *LeadCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *LeadCreate) SetState(v string) *LeadCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *LeadCreate) SetNillableState(v *string) *LeadCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *LeadCreate) SetStage(v pipeline.Stage) *LeadCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStage(v *pipeline.Stage) *LeadCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *LeadCreate) SetScore(v int) *LeadCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *LeadCreate) SetNillableScore(v *int) *LeadCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetAssignedAgent sets the "assigned_agent" field.
func (_c *LeadCreate) SetAssignedAgent(v pipeline.Role) *LeadCreate {
	_c.mutation.SetAssignedAgent(v)
	return _c
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (_c *LeadCreate) SetNillableAssignedAgent(v *pipeline.Role) *LeadCreate {
	if v != nil {
		_c.SetAssignedAgent(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *LeadCreate) SetSource(v lead.Source) *LeadCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *LeadCreate) SetNillableSource(v *lead.Source) *LeadCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetGooglePlaceID sets the "google_place_id" field.
func (_c *LeadCreate) SetGooglePlaceID(v string) *LeadCreate {
	_c.mutation.SetGooglePlaceID(v)
	return _c
}

// SetNillableGooglePlaceID sets the "google_place_id" field if the given value is not nil.
func (_c *LeadCreate) SetNillableGooglePlaceID(v *string) *LeadCreate {
	if v != nil {
		_c.SetGooglePlaceID(*v)
	}
	return _c
}

// SetPainPoints sets the "pain_points" field.
func (_c *LeadCreate) SetPainPoints(v []string) *LeadCreate {
	_c.mutation.SetPainPoints(v)
	return _c
}

// SetObjections sets the "objections" field.
func (_c *LeadCreate) SetObjections(v []string) *LeadCreate {
	_c.mutation.SetObjections(v)
	return _c
}

// SetLastContactAt sets the "last_contact_at" field.
func (_c *LeadCreate) SetLastContactAt(v time.Time) *LeadCreate {
	_c.mutation.SetLastContactAt(v)
	return _c
}

// SetNillableLastContactAt sets the "last_contact_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableLastContactAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetLastContactAt(*v)
	}
	return _c
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (_c *LeadCreate) SetNextFollowupAt(v time.Time) *LeadCreate {
	_c.mutation.SetNextFollowupAt(v)
	return _c
}

// SetNillableNextFollowupAt sets the "next_followup_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableNextFollowupAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetNextFollowupAt(*v)
	}
	return _c
}

// SetFollowupCount sets the "followup_count" field.
func (_c *LeadCreate) SetFollowupCount(v int) *LeadCreate {
	_c.mutation.SetFollowupCount(v)
	return _c
}

// SetNillableFollowupCount sets the "followup_count" field if the given value is not nil.
func (_c *LeadCreate) SetNillableFollowupCount(v *int) *LeadCreate {
	if v != nil {
		_c.SetFollowupCount(*v)
	}
	return _c
}

// SetWonPlan sets the "won_plan" field.
func (_c *LeadCreate) SetWonPlan(v string) *LeadCreate {
	_c.mutation.SetWonPlan(v)
	return _c
}

// SetNillableWonPlan sets the "won_plan" field if the given value is not nil.
func (_c *LeadCreate) SetNillableWonPlan(v *string) *LeadCreate {
	if v != nil {
		_c.SetWonPlan(*v)
	}
	return _c
}

// SetWonAmountCents sets the "won_amount_cents" field.
func (_c *LeadCreate) SetWonAmountCents(v int) *LeadCreate {
	_c.mutation.SetWonAmountCents(v)
	return _c
}

// SetNillableWonAmountCents sets the "won_amount_cents" field if the given value is not nil.
func (_c *LeadCreate) SetNillableWonAmountCents(v *int) *LeadCreate {
	if v != nil {
		_c.SetWonAmountCents(*v)
	}
	return _c
}

// SetWonAt sets the "won_at" field.
func (_c *LeadCreate) SetWonAt(v time.Time) *LeadCreate {
	_c.mutation.SetWonAt(v)
	return _c
}

// SetNillableWonAt sets the "won_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableWonAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetWonAt(*v)
	}
	return _c
}

// SetLostAt sets the "lost_at" field.
func (_c *LeadCreate) SetLostAt(v time.Time) *LeadCreate {
	_c.mutation.SetLostAt(v)
	return _c
}

// SetNillableLostAt sets the "lost_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableLostAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetLostAt(*v)
	}
	return _c
}

// SetLostReason sets the "lost_reason" field.
func (_c *LeadCreate) SetLostReason(v string) *LeadCreate {
	_c.mutation.SetLostReason(v)
	return _c
}

// SetNillableLostReason sets the "lost_reason" field if the given value is not nil.
func (_c *LeadCreate) SetNillableLostReason(v *string) *LeadCreate {
	if v != nil {
		_c.SetLostReason(*v)
	}
	return _c
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (_c *LeadCreate) SetAiCostCents(v float64) *LeadCreate {
	_c.mutation.SetAiCostCents(v)
	return _c
}

// SetNillableAiCostCents sets the "ai_cost_cents" field if the given value is not nil.
func (_c *LeadCreate) SetNillableAiCostCents(v *float64) *LeadCreate {
	if v != nil {
		_c.SetAiCostCents(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *LeadCreate) SetMetadata(v models.LeadMetadata) *LeadCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_c *LeadCreate) SetNillableMetadata(v *models.LeadMetadata) *LeadCreate {
	if v != nil {
		_c.SetMetadata(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *LeadCreate) SetVersion(v int) *LeadCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *LeadCreate) SetNillableVersion(v *int) *LeadCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadCreate) SetCreatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeadCreate) SetUpdatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUpdatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_c *LeadCreate) AddConversationIDs(ids ...int) *LeadCreate {
	_c.mutation.AddConversationIDs(ids...)
	return _c
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_c *LeadCreate) AddConversations(v ...*Conversation) *LeadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversationIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_c *LeadCreate) Mutation() *LeadMutation {
	return _c.mutation
}

// Save creates the Lead in the database.
func (_c *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := lead.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := lead.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.AssignedAgent(); !ok {
		v := lead.DefaultAssignedAgent
		_c.mutation.SetAssignedAgent(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := lead.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.FollowupCount(); !ok {
		v := lead.DefaultFollowupCount
		_c.mutation.SetFollowupCount(v)
	}
	if _, ok := _c.mutation.AiCostCents(); !ok {
		v := lead.DefaultAiCostCents
		_c.mutation.SetAiCostCents(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := lead.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lead.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadCreate) check() error {
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "Lead.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := lead.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Lead.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Product(); !ok {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required field "Lead.product"`)}
	}
	if v, ok := _c.mutation.Product(); ok {
		if err := lead.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "Lead.product": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CompanySize(); ok {
		if err := lead.CompanySizeValidator(v); err != nil {
			return &ValidationError{Name: "company_size", err: fmt.Errorf(`ent: validator failed for field "Lead.company_size": %w`, err)}
		}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := lead.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Lead.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Lead.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := lead.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Lead.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Lead.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := lead.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Lead.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignedAgent(); !ok {
		return &ValidationError{Name: "assigned_agent", err: errors.New(`ent: missing required field "Lead.assigned_agent"`)}
	}
	if v, ok := _c.mutation.AssignedAgent(); ok {
		if err := lead.AssignedAgentValidator(v); err != nil {
			return &ValidationError{Name: "assigned_agent", err: fmt.Errorf(`ent: validator failed for field "Lead.assigned_agent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Lead.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FollowupCount(); !ok {
		return &ValidationError{Name: "followup_count", err: errors.New(`ent: missing required field "Lead.followup_count"`)}
	}
	if v, ok := _c.mutation.FollowupCount(); ok {
		if err := lead.FollowupCountValidator(v); err != nil {
			return &ValidationError{Name: "followup_count", err: fmt.Errorf(`ent: validator failed for field "Lead.followup_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AiCostCents(); !ok {
		return &ValidationError{Name: "ai_cost_cents", err: errors.New(`ent: missing required field "Lead.ai_cost_cents"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Lead.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Lead.updated_at"`)}
	}
	return nil
}

func (_c *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Product(); ok {
		_spec.SetField(lead.FieldProduct, field.TypeEnum, value)
		_node.Product = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.CompanySize(); ok {
		_spec.SetField(lead.FieldCompanySize, field.TypeEnum, value)
		_node.CompanySize = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(lead.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(lead.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(lead.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(lead.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.AssignedAgent(); ok {
		_spec.SetField(lead.FieldAssignedAgent, field.TypeEnum, value)
		_node.AssignedAgent = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.GooglePlaceID(); ok {
		_spec.SetField(lead.FieldGooglePlaceID, field.TypeString, value)
		_node.GooglePlaceID = value
	}
	if value, ok := _c.mutation.PainPoints(); ok {
		_spec.SetField(lead.FieldPainPoints, field.TypeJSON, value)
		_node.PainPoints = value
	}
	if value, ok := _c.mutation.Objections(); ok {
		_spec.SetField(lead.FieldObjections, field.TypeJSON, value)
		_node.Objections = value
	}
	if value, ok := _c.mutation.LastContactAt(); ok {
		_spec.SetField(lead.FieldLastContactAt, field.TypeTime, value)
		_node.LastContactAt = &value
	}
	if value, ok := _c.mutation.NextFollowupAt(); ok {
		_spec.SetField(lead.FieldNextFollowupAt, field.TypeTime, value)
		_node.NextFollowupAt = &value
	}
	if value, ok := _c.mutation.FollowupCount(); ok {
		_spec.SetField(lead.FieldFollowupCount, field.TypeInt, value)
		_node.FollowupCount = value
	}
	if value, ok := _c.mutation.WonPlan(); ok {
		_spec.SetField(lead.FieldWonPlan, field.TypeString, value)
		_node.WonPlan = value
	}
	if value, ok := _c.mutation.WonAmountCents(); ok {
		_spec.SetField(lead.FieldWonAmountCents, field.TypeInt, value)
		_node.WonAmountCents = &value
	}
	if value, ok := _c.mutation.WonAt(); ok {
		_spec.SetField(lead.FieldWonAt, field.TypeTime, value)
		_node.WonAt = &value
	}
	if value, ok := _c.mutation.LostAt(); ok {
		_spec.SetField(lead.FieldLostAt, field.TypeTime, value)
		_node.LostAt = &value
	}
	if value, ok := _c.mutation.LostReason(); ok {
		_spec.SetField(lead.FieldLostReason, field.TypeString, value)
		_node.LostReason = value
	}
	if value, ok := _c.mutation.AiCostCents(); ok {
		_spec.SetField(lead.FieldAiCostCents, field.TypeFloat64, value)
		_node.AiCostCents = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(lead.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(lead.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lead.Create().
//		SetPhone(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadUpsert) {
//			SetPhone(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadCreate) OnConflict(opts ...sql.ConflictOption) *LeadUpsertOne {
	_c.conflict = opts
	return &LeadUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadCreate) OnConflictColumns(columns ...string) *LeadUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadUpsertOne{
		create: _c,
	}
}

type (
	// LeadUpsertOne is the builder for "upsert"-ing
	//  one Lead node.
	LeadUpsertOne struct {
		create *LeadCreate
	}

	// LeadUpsert is the "OnConflict" setter.
	LeadUpsert struct {
		*sql.UpdateSet
	}
)

// SetPhone sets the "phone" field.
func (u *LeadUpsert) SetPhone(v string) *LeadUpsert {
	u.Set(lead.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *LeadUpsert) UpdatePhone() *LeadUpsert {
	u.SetExcluded(lead.FieldPhone)
	return u
}

// SetProduct sets the "product" field.
func (u *LeadUpsert) SetProduct(v product.Line) *LeadUpsert {
	u.Set(lead.FieldProduct, v)
	return u
}

// UpdateProduct sets the "product" field to the value that was provided on create.
func (u *LeadUpsert) UpdateProduct() *LeadUpsert {
	u.SetExcluded(lead.FieldProduct)
	return u
}

// SetName sets the "name" field.
func (u *LeadUpsert) SetName(v string) *LeadUpsert {
	u.Set(lead.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LeadUpsert) UpdateName() *LeadUpsert {
	u.SetExcluded(lead.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *LeadUpsert) ClearName() *LeadUpsert {
	u.SetNull(lead.FieldName)
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *LeadUpsert) SetCompanyName(v string) *LeadUpsert {
	u.Set(lead.FieldCompanyName, v)
	return u
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *LeadUpsert) UpdateCompanyName() *LeadUpsert {
	u.SetExcluded(lead.FieldCompanyName)
	return u
}

// ClearCompanyName clears the value of the "company_name" field.
func (u *LeadUpsert) ClearCompanyName() *LeadUpsert {
	u.SetNull(lead.FieldCompanyName)
	return u
}

// SetCompanySize sets the "company_size" field.
func (u *LeadUpsert) SetCompanySize(v scoring.Size) *LeadUpsert {
	u.Set(lead.FieldCompanySize, v)
	return u
}

// UpdateCompanySize sets the "company_size" field to the value that was provided on create.
func (u *LeadUpsert) UpdateCompanySize() *LeadUpsert {
	u.SetExcluded(lead.FieldCompanySize)
	return u
}

// ClearCompanySize clears the value of the "company_size" field.
func (u *LeadUpsert) ClearCompanySize() *LeadUpsert {
	u.SetNull(lead.FieldCompanySize)
	return u
}

// SetEmail sets the "email" field.
func (u *LeadUpsert) SetEmail(v string) *LeadUpsert {
	u.Set(lead.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *LeadUpsert) UpdateEmail() *LeadUpsert {
	u.SetExcluded(lead.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *LeadUpsert) ClearEmail() *LeadUpsert {
	u.SetNull(lead.FieldEmail)
	return u
}

// SetCity sets the "city" field.
func (u *LeadUpsert) SetCity(v string) *LeadUpsert {
	u.Set(lead.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *LeadUpsert) UpdateCity() *LeadUpsert {
	u.SetExcluded(lead.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *LeadUpsert) ClearCity() *LeadUpsert {
	u.SetNull(lead.FieldCity)
	return u
}

// SetState sets the "state" field.
func (u *LeadUpsert) SetState(v string) *LeadUpsert {
	u.Set(lead.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *LeadUpsert) UpdateState() *LeadUpsert {
	u.SetExcluded(lead.FieldState)
	return u
}

// ClearState clears the value of the "state" field.
func (u *LeadUpsert) ClearState() *LeadUpsert {
	u.SetNull(lead.FieldState)
	return u
}

// SetStage sets the "stage" field.
func (u *LeadUpsert) SetStage(v pipeline.Stage) *LeadUpsert {
	u.Set(lead.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *LeadUpsert) UpdateStage() *LeadUpsert {
	u.SetExcluded(lead.FieldStage)
	return u
}

// SetScore sets the "score" field.
func (u *LeadUpsert) SetScore(v int) *LeadUpsert {
	u.Set(lead.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *LeadUpsert) UpdateScore() *LeadUpsert {
	u.SetExcluded(lead.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *LeadUpsert) AddScore(v int) *LeadUpsert {
	u.Add(lead.FieldScore, v)
	return u
}

// SetAssignedAgent sets the "assigned_agent" field.
func (u *LeadUpsert) SetAssignedAgent(v pipeline.Role) *LeadUpsert {
	u.Set(lead.FieldAssignedAgent, v)
	return u
}

// UpdateAssignedAgent sets the "assigned_agent" field to the value that was provided on create.
func (u *LeadUpsert) UpdateAssignedAgent() *LeadUpsert {
	u.SetExcluded(lead.FieldAssignedAgent)
	return u
}

// SetSource sets the "source" field.
func (u *LeadUpsert) SetSource(v lead.Source) *LeadUpsert {
	u.Set(lead.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *LeadUpsert) UpdateSource() *LeadUpsert {
	u.SetExcluded(lead.FieldSource)
	return u
}

// SetGooglePlaceID sets the "google_place_id" field.
func (u *LeadUpsert) SetGooglePlaceID(v string) *LeadUpsert {
	u.Set(lead.FieldGooglePlaceID, v)
	return u
}

// UpdateGooglePlaceID sets the "google_place_id" field to the value that was provided on create.
func (u *LeadUpsert) UpdateGooglePlaceID() *LeadUpsert {
	u.SetExcluded(lead.FieldGooglePlaceID)
	return u
}

// ClearGooglePlaceID clears the value of the "google_place_id" field.
func (u *LeadUpsert) ClearGooglePlaceID() *LeadUpsert {
	u.SetNull(lead.FieldGooglePlaceID)
	return u
}

// SetPainPoints sets the "pain_points" field.
func (u *LeadUpsert) SetPainPoints(v []string) *LeadUpsert {
	u.Set(lead.FieldPainPoints, v)
	return u
}

// UpdatePainPoints sets the "pain_points" field to the value that was provided on create.
func (u *LeadUpsert) UpdatePainPoints() *LeadUpsert {
	u.SetExcluded(lead.FieldPainPoints)
	return u
}

// ClearPainPoints clears the value of the "pain_points" field.
func (u *LeadUpsert) ClearPainPoints() *LeadUpsert {
	u.SetNull(lead.FieldPainPoints)
	return u
}

// SetObjections sets the "objections" field.
func (u *LeadUpsert) SetObjections(v []string) *LeadUpsert {
	u.Set(lead.FieldObjections, v)
	return u
}

// UpdateObjections sets the "objections" field to the value that was provided on create.
func (u *LeadUpsert) UpdateObjections() *LeadUpsert {
	u.SetExcluded(lead.FieldObjections)
	return u
}

// ClearObjections clears the value of the "objections" field.
func (u *LeadUpsert) ClearObjections() *LeadUpsert {
	u.SetNull(lead.FieldObjections)
	return u
}

// SetLastContactAt sets the "last_contact_at" field.
func (u *LeadUpsert) SetLastContactAt(v time.Time) *LeadUpsert {
	u.Set(lead.FieldLastContactAt, v)
	return u
}

// UpdateLastContactAt sets the "last_contact_at" field to the value that was provided on create.
func (u *LeadUpsert) UpdateLastContactAt() *LeadUpsert {
	u.SetExcluded(lead.FieldLastContactAt)
	return u
}

// ClearLastContactAt clears the value of the "last_contact_at" field.
func (u *LeadUpsert) ClearLastContactAt() *LeadUpsert {
	u.SetNull(lead.FieldLastContactAt)
	return u
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (u *LeadUpsert) SetNextFollowupAt(v time.Time) *LeadUpsert {
	u.Set(lead.FieldNextFollowupAt, v)
	return u
}

// UpdateNextFollowupAt sets the "next_followup_at" field to the value that was provided on create.
func (u *LeadUpsert) UpdateNextFollowupAt() *LeadUpsert {
	u.SetExcluded(lead.FieldNextFollowupAt)
	return u
}

// ClearNextFollowupAt clears the value of the "next_followup_at" field.
func (u *LeadUpsert) ClearNextFollowupAt() *LeadUpsert {
	u.SetNull(lead.FieldNextFollowupAt)
	return u
}

// SetFollowupCount sets the "followup_count" field.
func (u *LeadUpsert) SetFollowupCount(v int) *LeadUpsert {
	u.Set(lead.FieldFollowupCount, v)
	return u
}

// UpdateFollowupCount sets the "followup_count" field to the value that was provided on create.
func (u *LeadUpsert) UpdateFollowupCount() *LeadUpsert {
	u.SetExcluded(lead.FieldFollowupCount)
	return u
}

// AddFollowupCount adds v to the "followup_count" field.
func (u *LeadUpsert) AddFollowupCount(v int) *LeadUpsert {
	u.Add(lead.FieldFollowupCount, v)
	return u
}

// SetWonPlan sets the "won_plan" field.
func (u *LeadUpsert) SetWonPlan(v string) *LeadUpsert {
	u.Set(lead.FieldWonPlan, v)
	return u
}

// UpdateWonPlan sets the "won_plan" field to the value that was provided on create.
func (u *LeadUpsert) UpdateWonPlan() *LeadUpsert {
	u.SetExcluded(lead.FieldWonPlan)
	return u
}

// ClearWonPlan clears the value of the "won_plan" field.
func (u *LeadUpsert) ClearWonPlan() *LeadUpsert {
	u.SetNull(lead.FieldWonPlan)
	return u
}

// SetWonAmountCents sets the "won_amount_cents" field.
func (u *LeadUpsert) SetWonAmountCents(v int) *LeadUpsert {
	u.Set(lead.FieldWonAmountCents, v)
	return u
}

// UpdateWonAmountCents sets the "won_amount_cents" field to the value that was provided on create.
func (u *LeadUpsert) UpdateWonAmountCents() *LeadUpsert {
	u.SetExcluded(lead.FieldWonAmountCents)
	return u
}

// AddWonAmountCents adds v to the "won_amount_cents" field.
func (u *LeadUpsert) AddWonAmountCents(v int) *LeadUpsert {
	u.Add(lead.FieldWonAmountCents, v)
	return u
}

// ClearWonAmountCents clears the value of the "won_amount_cents" field.
func (u *LeadUpsert) ClearWonAmountCents() *LeadUpsert {
	u.SetNull(lead.FieldWonAmountCents)
	return u
}

// SetWonAt sets the "won_at" field.
func (u *LeadUpsert) SetWonAt(v time.Time) *LeadUpsert {
	u.Set(lead.FieldWonAt, v)
	return u
}

// UpdateWonAt sets the "won_at" field to the value that was provided on create.
func (u *LeadUpsert) UpdateWonAt() *LeadUpsert {
	u.SetExcluded(lead.FieldWonAt)
	return u
}

// ClearWonAt clears the value of the "won_at" field.
func (u *LeadUpsert) ClearWonAt() *LeadUpsert {
	u.SetNull(lead.FieldWonAt)
	return u
}

// SetLostAt sets the "lost_at" field.
func (u *LeadUpsert) SetLostAt(v time.Time) *LeadUpsert {
	u.Set(lead.FieldLostAt, v)
	return u
}

// UpdateLostAt sets the "lost_at" field to the value that was provided on create.
func (u *LeadUpsert) UpdateLostAt() *LeadUpsert {
	u.SetExcluded(lead.FieldLostAt)
	return u
}

// ClearLostAt clears the value of the "lost_at" field.
func (u *LeadUpsert) ClearLostAt() *LeadUpsert {
	u.SetNull(lead.FieldLostAt)
	return u
}

// SetLostReason sets the "lost_reason" field.
func (u *LeadUpsert) SetLostReason(v string) *LeadUpsert {
	u.Set(lead.FieldLostReason, v)
	return u
}

// UpdateLostReason sets the "lost_reason" field to the value that was provided on create.
func (u *LeadUpsert) UpdateLostReason() *LeadUpsert {
	u.SetExcluded(lead.FieldLostReason)
	return u
}

// ClearLostReason clears the value of the "lost_reason" field.
func (u *LeadUpsert) ClearLostReason() *LeadUpsert {
	u.SetNull(lead.FieldLostReason)
	return u
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (u *LeadUpsert) SetAiCostCents(v float64) *LeadUpsert {
	u.Set(lead.FieldAiCostCents, v)
	return u
}

// UpdateAiCostCents sets the "ai_cost_cents" field to the value that was provided on create.
func (u *LeadUpsert) UpdateAiCostCents() *LeadUpsert {
	u.SetExcluded(lead.FieldAiCostCents)
	return u
}

// AddAiCostCents adds v to the "ai_cost_cents" field.
func (u *LeadUpsert) AddAiCostCents(v float64) *LeadUpsert {
	u.Add(lead.FieldAiCostCents, v)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *LeadUpsert) SetMetadata(v models.LeadMetadata) *LeadUpsert {
	u.Set(lead.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *LeadUpsert) UpdateMetadata() *LeadUpsert {
	u.SetExcluded(lead.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *LeadUpsert) ClearMetadata() *LeadUpsert {
	u.SetNull(lead.FieldMetadata)
	return u
}

// SetVersion sets the "version" field.
func (u *LeadUpsert) SetVersion(v int) *LeadUpsert {
	u.Set(lead.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *LeadUpsert) UpdateVersion() *LeadUpsert {
	u.SetExcluded(lead.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *LeadUpsert) AddVersion(v int) *LeadUpsert {
	u.Add(lead.FieldVersion, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadUpsert) SetUpdatedAt(v time.Time) *LeadUpsert {
	u.Set(lead.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadUpsert) UpdateUpdatedAt() *LeadUpsert {
	u.SetExcluded(lead.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LeadUpsertOne) UpdateNewValues() *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(lead.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lead.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LeadUpsertOne) Ignore() *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadUpsertOne) DoNothing() *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadCreate.OnConflict
// documentation for more info.
func (u *LeadUpsertOne) Update(set func(*LeadUpsert)) *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhone sets the "phone" field.
func (u *LeadUpsertOne) SetPhone(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdatePhone() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdatePhone()
	})
}

// SetProduct sets the "product" field.
func (u *LeadUpsertOne) SetProduct(v product.Line) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetProduct(v)
	})
}

// UpdateProduct sets the "product" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateProduct() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateProduct()
	})
}

// SetName sets the "name" field.
func (u *LeadUpsertOne) SetName(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateName() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *LeadUpsertOne) ClearName() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearName()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *LeadUpsertOne) SetCompanyName(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateCompanyName() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompanyName()
	})
}

// ClearCompanyName clears the value of the "company_name" field.
func (u *LeadUpsertOne) ClearCompanyName() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCompanyName()
	})
}

// SetCompanySize sets the "company_size" field.
func (u *LeadUpsertOne) SetCompanySize(v scoring.Size) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompanySize(v)
	})
}

// UpdateCompanySize sets the "company_size" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateCompanySize() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompanySize()
	})
}

// ClearCompanySize clears the value of the "company_size" field.
func (u *LeadUpsertOne) ClearCompanySize() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCompanySize()
	})
}

// SetEmail sets the "email" field.
func (u *LeadUpsertOne) SetEmail(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateEmail() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *LeadUpsertOne) ClearEmail() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearEmail()
	})
}

// SetCity sets the "city" field.
func (u *LeadUpsertOne) SetCity(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateCity() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *LeadUpsertOne) ClearCity() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCity()
	})
}

// SetState sets the "state" field.
func (u *LeadUpsertOne) SetState(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateState() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *LeadUpsertOne) ClearState() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearState()
	})
}

// SetStage sets the "stage" field.
func (u *LeadUpsertOne) SetStage(v pipeline.Stage) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateStage() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateStage()
	})
}

// SetScore sets the "score" field.
func (u *LeadUpsertOne) SetScore(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *LeadUpsertOne) AddScore(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateScore() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateScore()
	})
}

// SetAssignedAgent sets the "assigned_agent" field.
func (u *LeadUpsertOne) SetAssignedAgent(v pipeline.Role) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetAssignedAgent(v)
	})
}

// UpdateAssignedAgent sets the "assigned_agent" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateAssignedAgent() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateAssignedAgent()
	})
}

// SetSource sets the "source" field.
func (u *LeadUpsertOne) SetSource(v lead.Source) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateSource() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateSource()
	})
}

// SetGooglePlaceID sets the "google_place_id" field.
func (u *LeadUpsertOne) SetGooglePlaceID(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetGooglePlaceID(v)
	})
}

// UpdateGooglePlaceID sets the "google_place_id" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateGooglePlaceID() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateGooglePlaceID()
	})
}

// ClearGooglePlaceID clears the value of the "google_place_id" field.
func (u *LeadUpsertOne) ClearGooglePlaceID() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearGooglePlaceID()
	})
}

// SetPainPoints sets the "pain_points" field.
func (u *LeadUpsertOne) SetPainPoints(v []string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetPainPoints(v)
	})
}

// UpdatePainPoints sets the "pain_points" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdatePainPoints() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdatePainPoints()
	})
}

// ClearPainPoints clears the value of the "pain_points" field.
func (u *LeadUpsertOne) ClearPainPoints() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearPainPoints()
	})
}

// SetObjections sets the "objections" field.
func (u *LeadUpsertOne) SetObjections(v []string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetObjections(v)
	})
}

// UpdateObjections sets the "objections" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateObjections() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateObjections()
	})
}

// ClearObjections clears the value of the "objections" field.
func (u *LeadUpsertOne) ClearObjections() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearObjections()
	})
}

// SetLastContactAt sets the "last_contact_at" field.
func (u *LeadUpsertOne) SetLastContactAt(v time.Time) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetLastContactAt(v)
	})
}

// UpdateLastContactAt sets the "last_contact_at" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateLastContactAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateLastContactAt()
	})
}

// ClearLastContactAt clears the value of the "last_contact_at" field.
func (u *LeadUpsertOne) ClearLastContactAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearLastContactAt()
	})
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (u *LeadUpsertOne) SetNextFollowupAt(v time.Time) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetNextFollowupAt(v)
	})
}

// UpdateNextFollowupAt sets the "next_followup_at" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateNextFollowupAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateNextFollowupAt()
	})
}

// ClearNextFollowupAt clears the value of the "next_followup_at" field.
func (u *LeadUpsertOne) ClearNextFollowupAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearNextFollowupAt()
	})
}

// SetFollowupCount sets the "followup_count" field.
func (u *LeadUpsertOne) SetFollowupCount(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetFollowupCount(v)
	})
}

// AddFollowupCount adds v to the "followup_count" field.
func (u *LeadUpsertOne) AddFollowupCount(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.AddFollowupCount(v)
	})
}

// UpdateFollowupCount sets the "followup_count" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateFollowupCount() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateFollowupCount()
	})
}

// SetWonPlan sets the "won_plan" field.
func (u *LeadUpsertOne) SetWonPlan(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetWonPlan(v)
	})
}

// UpdateWonPlan sets the "won_plan" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateWonPlan() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateWonPlan()
	})
}

// ClearWonPlan clears the value of the "won_plan" field.
func (u *LeadUpsertOne) ClearWonPlan() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearWonPlan()
	})
}

// SetWonAmountCents sets the "won_amount_cents" field.
func (u *LeadUpsertOne) SetWonAmountCents(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetWonAmountCents(v)
	})
}

// AddWonAmountCents adds v to the "won_amount_cents" field.
func (u *LeadUpsertOne) AddWonAmountCents(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.AddWonAmountCents(v)
	})
}

// UpdateWonAmountCents sets the "won_amount_cents" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateWonAmountCents() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateWonAmountCents()
	})
}

// ClearWonAmountCents clears the value of the "won_amount_cents" field.
func (u *LeadUpsertOne) ClearWonAmountCents() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearWonAmountCents()
	})
}

// SetWonAt sets the "won_at" field.
func (u *LeadUpsertOne) SetWonAt(v time.Time) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetWonAt(v)
	})
}

// UpdateWonAt sets the "won_at" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateWonAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateWonAt()
	})
}

// ClearWonAt clears the value of the "won_at" field.
func (u *LeadUpsertOne) ClearWonAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearWonAt()
	})
}

// SetLostAt sets the "lost_at" field.
func (u *LeadUpsertOne) SetLostAt(v time.Time) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetLostAt(v)
	})
}

// UpdateLostAt sets the "lost_at" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateLostAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateLostAt()
	})
}

// ClearLostAt clears the value of the "lost_at" field.
func (u *LeadUpsertOne) ClearLostAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearLostAt()
	})
}

// SetLostReason sets the "lost_reason" field.
func (u *LeadUpsertOne) SetLostReason(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetLostReason(v)
	})
}

// UpdateLostReason sets the "lost_reason" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateLostReason() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateLostReason()
	})
}

// ClearLostReason clears the value of the "lost_reason" field.
func (u *LeadUpsertOne) ClearLostReason() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearLostReason()
	})
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (u *LeadUpsertOne) SetAiCostCents(v float64) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetAiCostCents(v)
	})
}

// AddAiCostCents adds v to the "ai_cost_cents" field.
func (u *LeadUpsertOne) AddAiCostCents(v float64) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.AddAiCostCents(v)
	})
}

// UpdateAiCostCents sets the "ai_cost_cents" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateAiCostCents() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateAiCostCents()
	})
}

// SetMetadata sets the "metadata" field.
func (u *LeadUpsertOne) SetMetadata(v models.LeadMetadata) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateMetadata() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *LeadUpsertOne) ClearMetadata() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearMetadata()
	})
}

// SetVersion sets the "version" field.
func (u *LeadUpsertOne) SetVersion(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *LeadUpsertOne) AddVersion(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateVersion() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadUpsertOne) SetUpdatedAt(v time.Time) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateUpdatedAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LeadUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LeadUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LeadUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
	conflict []sql.ConflictOption
}

// Save creates the Lead entities in the database.
func (_c *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lead.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadUpsert) {
//			SetPhone(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadCreateBulk) OnConflict(opts ...sql.ConflictOption) *LeadUpsertBulk {
	_c.conflict = opts
	return &LeadUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadCreateBulk) OnConflictColumns(columns ...string) *LeadUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadUpsertBulk{
		create: _c,
	}
}

// LeadUpsertBulk is the builder for "upsert"-ing
// a bulk of Lead nodes.
type LeadUpsertBulk struct {
	create *LeadCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LeadUpsertBulk) UpdateNewValues() *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(lead.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LeadUpsertBulk) Ignore() *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadUpsertBulk) DoNothing() *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadCreateBulk.OnConflict
// documentation for more info.
func (u *LeadUpsertBulk) Update(set func(*LeadUpsert)) *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhone sets the "phone" field.
func (u *LeadUpsertBulk) SetPhone(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdatePhone() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdatePhone()
	})
}

// SetProduct sets the "product" field.
func (u *LeadUpsertBulk) SetProduct(v product.Line) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetProduct(v)
	})
}

// UpdateProduct sets the "product" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateProduct() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateProduct()
	})
}

// SetName sets the "name" field.
func (u *LeadUpsertBulk) SetName(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateName() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *LeadUpsertBulk) ClearName() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearName()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *LeadUpsertBulk) SetCompanyName(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateCompanyName() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompanyName()
	})
}

// ClearCompanyName clears the value of the "company_name" field.
func (u *LeadUpsertBulk) ClearCompanyName() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCompanyName()
	})
}

// SetCompanySize sets the "company_size" field.
func (u *LeadUpsertBulk) SetCompanySize(v scoring.Size) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompanySize(v)
	})
}

// UpdateCompanySize sets the "company_size" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateCompanySize() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompanySize()
	})
}

// ClearCompanySize clears the value of the "company_size" field.
func (u *LeadUpsertBulk) ClearCompanySize() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCompanySize()
	})
}

// SetEmail sets the "email" field.
func (u *LeadUpsertBulk) SetEmail(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateEmail() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *LeadUpsertBulk) ClearEmail() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearEmail()
	})
}

// SetCity sets the "city" field.
func (u *LeadUpsertBulk) SetCity(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateCity() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *LeadUpsertBulk) ClearCity() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCity()
	})
}

// SetState sets the "state" field.
func (u *LeadUpsertBulk) SetState(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateState() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *LeadUpsertBulk) ClearState() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearState()
	})
}

// SetStage sets the "stage" field.
func (u *LeadUpsertBulk) SetStage(v pipeline.Stage) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateStage() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateStage()
	})
}

// SetScore sets the "score" field.
func (u *LeadUpsertBulk) SetScore(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *LeadUpsertBulk) AddScore(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateScore() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateScore()
	})
}

// SetAssignedAgent sets the "assigned_agent" field.
func (u *LeadUpsertBulk) SetAssignedAgent(v pipeline.Role) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetAssignedAgent(v)
	})
}

// UpdateAssignedAgent sets the "assigned_agent" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateAssignedAgent() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateAssignedAgent()
	})
}

// SetSource sets the "source" field.
func (u *LeadUpsertBulk) SetSource(v lead.Source) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateSource() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateSource()
	})
}

// SetGooglePlaceID sets the "google_place_id" field.
func (u *LeadUpsertBulk) SetGooglePlaceID(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetGooglePlaceID(v)
	})
}

// UpdateGooglePlaceID sets the "google_place_id" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateGooglePlaceID() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateGooglePlaceID()
	})
}

// ClearGooglePlaceID clears the value of the "google_place_id" field.
func (u *LeadUpsertBulk) ClearGooglePlaceID() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearGooglePlaceID()
	})
}

// SetPainPoints sets the "pain_points" field.
func (u *LeadUpsertBulk) SetPainPoints(v []string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetPainPoints(v)
	})
}

// UpdatePainPoints sets the "pain_points" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdatePainPoints() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdatePainPoints()
	})
}

// ClearPainPoints clears the value of the "pain_points" field.
func (u *LeadUpsertBulk) ClearPainPoints() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearPainPoints()
	})
}

// SetObjections sets the "objections" field.
func (u *LeadUpsertBulk) SetObjections(v []string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetObjections(v)
	})
}

// UpdateObjections sets the "objections" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateObjections() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateObjections()
	})
}

// ClearObjections clears the value of the "objections" field.
func (u *LeadUpsertBulk) ClearObjections() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearObjections()
	})
}

// SetLastContactAt sets the "last_contact_at" field.
func (u *LeadUpsertBulk) SetLastContactAt(v time.Time) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetLastContactAt(v)
	})
}

// UpdateLastContactAt sets the "last_contact_at" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateLastContactAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateLastContactAt()
	})
}

// ClearLastContactAt clears the value of the "last_contact_at" field.
func (u *LeadUpsertBulk) ClearLastContactAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearLastContactAt()
	})
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (u *LeadUpsertBulk) SetNextFollowupAt(v time.Time) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetNextFollowupAt(v)
	})
}

// UpdateNextFollowupAt sets the "next_followup_at" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateNextFollowupAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateNextFollowupAt()
	})
}

// ClearNextFollowupAt clears the value of the "next_followup_at" field.
func (u *LeadUpsertBulk) ClearNextFollowupAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearNextFollowupAt()
	})
}

// SetFollowupCount sets the "followup_count" field.
func (u *LeadUpsertBulk) SetFollowupCount(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetFollowupCount(v)
	})
}

// AddFollowupCount adds v to the "followup_count" field.
func (u *LeadUpsertBulk) AddFollowupCount(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.AddFollowupCount(v)
	})
}

// UpdateFollowupCount sets the "followup_count" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateFollowupCount() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateFollowupCount()
	})
}

// SetWonPlan sets the "won_plan" field.
func (u *LeadUpsertBulk) SetWonPlan(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetWonPlan(v)
	})
}

// UpdateWonPlan sets the "won_plan" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateWonPlan() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateWonPlan()
	})
}

// ClearWonPlan clears the value of the "won_plan" field.
func (u *LeadUpsertBulk) ClearWonPlan() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearWonPlan()
	})
}

// SetWonAmountCents sets the "won_amount_cents" field.
func (u *LeadUpsertBulk) SetWonAmountCents(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetWonAmountCents(v)
	})
}

// AddWonAmountCents adds v to the "won_amount_cents" field.
func (u *LeadUpsertBulk) AddWonAmountCents(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.AddWonAmountCents(v)
	})
}

// UpdateWonAmountCents sets the "won_amount_cents" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateWonAmountCents() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateWonAmountCents()
	})
}

// ClearWonAmountCents clears the value of the "won_amount_cents" field.
func (u *LeadUpsertBulk) ClearWonAmountCents() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearWonAmountCents()
	})
}

// SetWonAt sets the "won_at" field.
func (u *LeadUpsertBulk) SetWonAt(v time.Time) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetWonAt(v)
	})
}

// UpdateWonAt sets the "won_at" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateWonAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateWonAt()
	})
}

// ClearWonAt clears the value of the "won_at" field.
func (u *LeadUpsertBulk) ClearWonAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearWonAt()
	})
}

// SetLostAt sets the "lost_at" field.
func (u *LeadUpsertBulk) SetLostAt(v time.Time) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetLostAt(v)
	})
}

// UpdateLostAt sets the "lost_at" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateLostAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateLostAt()
	})
}

// ClearLostAt clears the value of the "lost_at" field.
func (u *LeadUpsertBulk) ClearLostAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearLostAt()
	})
}

// SetLostReason sets the "lost_reason" field.
func (u *LeadUpsertBulk) SetLostReason(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetLostReason(v)
	})
}

// UpdateLostReason sets the "lost_reason" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateLostReason() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateLostReason()
	})
}

// ClearLostReason clears the value of the "lost_reason" field.
func (u *LeadUpsertBulk) ClearLostReason() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearLostReason()
	})
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (u *LeadUpsertBulk) SetAiCostCents(v float64) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetAiCostCents(v)
	})
}

// AddAiCostCents adds v to the "ai_cost_cents" field.
func (u *LeadUpsertBulk) AddAiCostCents(v float64) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.AddAiCostCents(v)
	})
}

// UpdateAiCostCents sets the "ai_cost_cents" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateAiCostCents() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateAiCostCents()
	})
}

// SetMetadata sets the "metadata" field.
func (u *LeadUpsertBulk) SetMetadata(v models.LeadMetadata) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateMetadata() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *LeadUpsertBulk) ClearMetadata() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearMetadata()
	})
}

// SetVersion sets the "version" field.
func (u *LeadUpsertBulk) SetVersion(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *LeadUpsertBulk) AddVersion(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateVersion() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadUpsertBulk) SetUpdatedAt(v time.Time) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateUpdatedAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LeadUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LeadCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
