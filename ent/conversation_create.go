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
	"github.com/jordanlanch/salesagent/pkg/product"
)

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLeadID sets the "lead_id" field.
func (_c *ConversationCreate) SetLeadID(v int) *ConversationCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetProduct sets the "product" field.
func (_c *ConversationCreate) SetProduct(v product.Line) *ConversationCreate {
	_c.mutation.SetProduct(v)
	return _c
}

// SetDirection sets the "direction" field.
func (_c *ConversationCreate) SetDirection(v conversation.Direction) *ConversationCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ConversationCreate) SetKind(v conversation.Kind) *ConversationCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableKind(v *conversation.Kind) *ConversationCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *ConversationCreate) SetContent(v string) *ConversationCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetAgent sets the "agent" field.
func (_c *ConversationCreate) SetAgent(v string) *ConversationCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableAgent(v *string) *ConversationCreate {
	if v != nil {
		_c.SetAgent(*v)
	}
	return _c
}

// SetToolsCalled sets the "tools_called" field.
func (_c *ConversationCreate) SetToolsCalled(v []string) *ConversationCreate {
	_c.mutation.SetToolsCalled(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *ConversationCreate) SetIntent(v string) *ConversationCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableIntent(v *string) *ConversationCreate {
	if v != nil {
		_c.SetIntent(*v)
	}
	return _c
}

// SetObjection sets the "objection" field.
func (_c *ConversationCreate) SetObjection(v string) *ConversationCreate {
	_c.mutation.SetObjection(v)
	return _c
}

// SetNillableObjection sets the "objection" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableObjection(v *string) *ConversationCreate {
	if v != nil {
		_c.SetObjection(*v)
	}
	return _c
}

// SetTokensInput sets the "tokens_input" field.
func (_c *ConversationCreate) SetTokensInput(v int) *ConversationCreate {
	_c.mutation.SetTokensInput(v)
	return _c
}

// SetNillableTokensInput sets the "tokens_input" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTokensInput(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTokensInput(*v)
	}
	return _c
}

// SetTokensOutput sets the "tokens_output" field.
func (_c *ConversationCreate) SetTokensOutput(v int) *ConversationCreate {
	_c.mutation.SetTokensOutput(v)
	return _c
}

// SetNillableTokensOutput sets the "tokens_output" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTokensOutput(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTokensOutput(*v)
	}
	return _c
}

// SetCostCents sets the "cost_cents" field.
func (_c *ConversationCreate) SetCostCents(v float64) *ConversationCreate {
	_c.mutation.SetCostCents(v)
	return _c
}

// SetNillableCostCents sets the "cost_cents" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCostCents(v *float64) *ConversationCreate {
	if v != nil {
		_c.SetCostCents(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *ConversationCreate) SetLead(v *Lead) *ConversationCreate {
	return _c.SetLeadID(v.ID)
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := conversation.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Agent(); !ok {
		v := conversation.DefaultAgent
		_c.mutation.SetAgent(v)
	}
	if _, ok := _c.mutation.TokensInput(); !ok {
		v := conversation.DefaultTokensInput
		_c.mutation.SetTokensInput(v)
	}
	if _, ok := _c.mutation.TokensOutput(); !ok {
		v := conversation.DefaultTokensOutput
		_c.mutation.SetTokensOutput(v)
	}
	if _, ok := _c.mutation.CostCents(); !ok {
		v := conversation.DefaultCostCents
		_c.mutation.SetCostCents(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "Conversation.lead_id"`)}
	}
	if _, ok := _c.mutation.Product(); !ok {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required field "Conversation.product"`)}
	}
	if v, ok := _c.mutation.Product(); ok {
		if err := conversation.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "Conversation.product": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "Conversation.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := conversation.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Conversation.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Conversation.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := conversation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Conversation.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Conversation.content"`)}
	}
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "Conversation.agent"`)}
	}
	if _, ok := _c.mutation.TokensInput(); !ok {
		return &ValidationError{Name: "tokens_input", err: errors.New(`ent: missing required field "Conversation.tokens_input"`)}
	}
	if _, ok := _c.mutation.TokensOutput(); !ok {
		return &ValidationError{Name: "tokens_output", err: errors.New(`ent: missing required field "Conversation.tokens_output"`)}
	}
	if _, ok := _c.mutation.CostCents(); !ok {
		return &ValidationError{Name: "cost_cents", err: errors.New(`ent: missing required field "Conversation.cost_cents"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conversation.created_at"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "Conversation.lead"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
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

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Product(); ok {
		_spec.SetField(conversation.FieldProduct, field.TypeEnum, value)
		_node.Product = value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(conversation.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(conversation.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(conversation.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(conversation.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.ToolsCalled(); ok {
		_spec.SetField(conversation.FieldToolsCalled, field.TypeJSON, value)
		_node.ToolsCalled = value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(conversation.FieldIntent, field.TypeString, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.Objection(); ok {
		_spec.SetField(conversation.FieldObjection, field.TypeString, value)
		_node.Objection = value
	}
	if value, ok := _c.mutation.TokensInput(); ok {
		_spec.SetField(conversation.FieldTokensInput, field.TypeInt, value)
		_node.TokensInput = value
	}
	if value, ok := _c.mutation.TokensOutput(); ok {
		_spec.SetField(conversation.FieldTokensOutput, field.TypeInt, value)
		_node.TokensOutput = value
	}
	if value, ok := _c.mutation.CostCents(); ok {
		_spec.SetField(conversation.FieldCostCents, field.TypeFloat64, value)
		_node.CostCents = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversation.LeadTable,
			Columns: []string{conversation.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.Create().
//		SetLeadID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetLeadID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertOne {
	_c.conflict = opts
	return &ConversationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflictColumns(columns ...string) *ConversationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertOne{
		create: _c,
	}
}

type (
	// ConversationUpsertOne is the builder for "upsert"-ing
	//  one Conversation node.
	ConversationUpsertOne struct {
		create *ConversationCreate
	}

	// ConversationUpsert is the "OnConflict" setter.
	ConversationUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ConversationUpsertOne) UpdateNewValues() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.LeadID(); exists {
			s.SetIgnore(conversation.FieldLeadID)
		}
		if _, exists := u.create.mutation.Product(); exists {
			s.SetIgnore(conversation.FieldProduct)
		}
		if _, exists := u.create.mutation.Direction(); exists {
			s.SetIgnore(conversation.FieldDirection)
		}
		if _, exists := u.create.mutation.Kind(); exists {
			s.SetIgnore(conversation.FieldKind)
		}
		if _, exists := u.create.mutation.Content(); exists {
			s.SetIgnore(conversation.FieldContent)
		}
		if _, exists := u.create.mutation.Agent(); exists {
			s.SetIgnore(conversation.FieldAgent)
		}
		if _, exists := u.create.mutation.ToolsCalled(); exists {
			s.SetIgnore(conversation.FieldToolsCalled)
		}
		if _, exists := u.create.mutation.Intent(); exists {
			s.SetIgnore(conversation.FieldIntent)
		}
		if _, exists := u.create.mutation.Objection(); exists {
			s.SetIgnore(conversation.FieldObjection)
		}
		if _, exists := u.create.mutation.TokensInput(); exists {
			s.SetIgnore(conversation.FieldTokensInput)
		}
		if _, exists := u.create.mutation.TokensOutput(); exists {
			s.SetIgnore(conversation.FieldTokensOutput)
		}
		if _, exists := u.create.mutation.CostCents(); exists {
			s.SetIgnore(conversation.FieldCostCents)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(conversation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConversationUpsertOne) Ignore() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertOne) DoNothing() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreate.OnConflict
// documentation for more info.
func (u *ConversationUpsertOne) Update(set func(*ConversationUpsert)) *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ConversationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConversationUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConversationUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
	conflict []sql.ConflictOption
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
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
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetLeadID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertBulk {
	_c.conflict = opts
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflictColumns(columns ...string) *ConversationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// ConversationUpsertBulk is the builder for "upsert"-ing
// a bulk of Conversation nodes.
type ConversationUpsertBulk struct {
	create *ConversationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ConversationUpsertBulk) UpdateNewValues() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.LeadID(); exists {
				s.SetIgnore(conversation.FieldLeadID)
			}
			if _, exists := b.mutation.Product(); exists {
				s.SetIgnore(conversation.FieldProduct)
			}
			if _, exists := b.mutation.Direction(); exists {
				s.SetIgnore(conversation.FieldDirection)
			}
			if _, exists := b.mutation.Kind(); exists {
				s.SetIgnore(conversation.FieldKind)
			}
			if _, exists := b.mutation.Content(); exists {
				s.SetIgnore(conversation.FieldContent)
			}
			if _, exists := b.mutation.Agent(); exists {
				s.SetIgnore(conversation.FieldAgent)
			}
			if _, exists := b.mutation.ToolsCalled(); exists {
				s.SetIgnore(conversation.FieldToolsCalled)
			}
			if _, exists := b.mutation.Intent(); exists {
				s.SetIgnore(conversation.FieldIntent)
			}
			if _, exists := b.mutation.Objection(); exists {
				s.SetIgnore(conversation.FieldObjection)
			}
			if _, exists := b.mutation.TokensInput(); exists {
				s.SetIgnore(conversation.FieldTokensInput)
			}
			if _, exists := b.mutation.TokensOutput(); exists {
				s.SetIgnore(conversation.FieldTokensOutput)
			}
			if _, exists := b.mutation.CostCents(); exists {
				s.SetIgnore(conversation.FieldCostCents)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(conversation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConversationUpsertBulk) Ignore() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertBulk) DoNothing() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreateBulk.OnConflict
// documentation for more info.
func (u *ConversationUpsertBulk) Update(set func(*ConversationUpsert)) *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ConversationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConversationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
