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
	"github.com/jordanlanch/salesagent/ent/salesmetric"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// SalesMetricCreate is the builder for creating a SalesMetric entity.
type SalesMetricCreate struct {
	config
	mutation *SalesMetricMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDate sets the "date" field.
func (_c *SalesMetricCreate) SetDate(v string) *SalesMetricCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetProduct sets the "product" field.
func (_c *SalesMetricCreate) SetProduct(v product.Line) *SalesMetricCreate {
	_c.mutation.SetProduct(v)
	return _c
}

// SetLeadsCreated sets the "leads_created" field.
func (_c *SalesMetricCreate) SetLeadsCreated(v int) *SalesMetricCreate {
	_c.mutation.SetLeadsCreated(v)
	return _c
}

// SetNillableLeadsCreated sets the "leads_created" field if the given value is not nil.
func (_c *SalesMetricCreate) SetNillableLeadsCreated(v *int) *SalesMetricCreate {
	if v != nil {
		_c.SetLeadsCreated(*v)
	}
	return _c
}

// SetMessagesSent sets the "messages_sent" field.
func (_c *SalesMetricCreate) SetMessagesSent(v int) *SalesMetricCreate {
	_c.mutation.SetMessagesSent(v)
	return _c
}

// SetNillableMessagesSent sets the "messages_sent" field if the given value is not nil.
func (_c *SalesMetricCreate) SetNillableMessagesSent(v *int) *SalesMetricCreate {
	if v != nil {
		_c.SetMessagesSent(*v)
	}
	return _c
}

// SetDealsWon sets the "deals_won" field.
func (_c *SalesMetricCreate) SetDealsWon(v int) *SalesMetricCreate {
	_c.mutation.SetDealsWon(v)
	return _c
}

// SetNillableDealsWon sets the "deals_won" field if the given value is not nil.
func (_c *SalesMetricCreate) SetNillableDealsWon(v *int) *SalesMetricCreate {
	if v != nil {
		_c.SetDealsWon(*v)
	}
	return _c
}

// SetRevenueCents sets the "revenue_cents" field.
func (_c *SalesMetricCreate) SetRevenueCents(v int) *SalesMetricCreate {
	_c.mutation.SetRevenueCents(v)
	return _c
}

// SetNillableRevenueCents sets the "revenue_cents" field if the given value is not nil.
func (_c *SalesMetricCreate) SetNillableRevenueCents(v *int) *SalesMetricCreate {
	if v != nil {
		_c.SetRevenueCents(*v)
	}
	return _c
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (_c *SalesMetricCreate) SetAiCostCents(v float64) *SalesMetricCreate {
	_c.mutation.SetAiCostCents(v)
	return _c
}

// SetNillableAiCostCents sets the "ai_cost_cents" field if the given value is not nil.
func (_c *SalesMetricCreate) SetNillableAiCostCents(v *float64) *SalesMetricCreate {
	if v != nil {
		_c.SetAiCostCents(*v)
	}
	return _c
}

// SetEscalations sets the "escalations" field.
func (_c *SalesMetricCreate) SetEscalations(v int) *SalesMetricCreate {
	_c.mutation.SetEscalations(v)
	return _c
}

// SetNillableEscalations sets the "escalations" field if the given value is not nil.
func (_c *SalesMetricCreate) SetNillableEscalations(v *int) *SalesMetricCreate {
	if v != nil {
		_c.SetEscalations(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SalesMetricCreate) SetUpdatedAt(v time.Time) *SalesMetricCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SalesMetricCreate) SetNillableUpdatedAt(v *time.Time) *SalesMetricCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SalesMetricMutation object of the builder.
func (_c *SalesMetricCreate) Mutation() *SalesMetricMutation {
	return _c.mutation
}

// Save creates the SalesMetric in the database.
func (_c *SalesMetricCreate) Save(ctx context.Context) (*SalesMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SalesMetricCreate) SaveX(ctx context.Context) *SalesMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SalesMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SalesMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SalesMetricCreate) defaults() {
	if _, ok := _c.mutation.LeadsCreated(); !ok {
		v := salesmetric.DefaultLeadsCreated
		_c.mutation.SetLeadsCreated(v)
	}
	if _, ok := _c.mutation.MessagesSent(); !ok {
		v := salesmetric.DefaultMessagesSent
		_c.mutation.SetMessagesSent(v)
	}
	if _, ok := _c.mutation.DealsWon(); !ok {
		v := salesmetric.DefaultDealsWon
		_c.mutation.SetDealsWon(v)
	}
	if _, ok := _c.mutation.RevenueCents(); !ok {
		v := salesmetric.DefaultRevenueCents
		_c.mutation.SetRevenueCents(v)
	}
	if _, ok := _c.mutation.AiCostCents(); !ok {
		v := salesmetric.DefaultAiCostCents
		_c.mutation.SetAiCostCents(v)
	}
	if _, ok := _c.mutation.Escalations(); !ok {
		v := salesmetric.DefaultEscalations
		_c.mutation.SetEscalations(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := salesmetric.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SalesMetricCreate) check() error {
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "SalesMetric.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := salesmetric.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "SalesMetric.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Product(); !ok {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required field "SalesMetric.product"`)}
	}
	if v, ok := _c.mutation.Product(); ok {
		if err := salesmetric.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "SalesMetric.product": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LeadsCreated(); !ok {
		return &ValidationError{Name: "leads_created", err: errors.New(`ent: missing required field "SalesMetric.leads_created"`)}
	}
	if _, ok := _c.mutation.MessagesSent(); !ok {
		return &ValidationError{Name: "messages_sent", err: errors.New(`ent: missing required field "SalesMetric.messages_sent"`)}
	}
	if _, ok := _c.mutation.DealsWon(); !ok {
		return &ValidationError{Name: "deals_won", err: errors.New(`ent: missing required field "SalesMetric.deals_won"`)}
	}
	if _, ok := _c.mutation.RevenueCents(); !ok {
		return &ValidationError{Name: "revenue_cents", err: errors.New(`ent: missing required field "SalesMetric.revenue_cents"`)}
	}
	if _, ok := _c.mutation.AiCostCents(); !ok {
		return &ValidationError{Name: "ai_cost_cents", err: errors.New(`ent: missing required field "SalesMetric.ai_cost_cents"`)}
	}
	if _, ok := _c.mutation.Escalations(); !ok {
		return &ValidationError{Name: "escalations", err: errors.New(`ent: missing required field "SalesMetric.escalations"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SalesMetric.updated_at"`)}
	}
	return nil
}

func (_c *SalesMetricCreate) sqlSave(ctx context.Context) (*SalesMetric, error) {
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

func (_c *SalesMetricCreate) createSpec() (*SalesMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &SalesMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(salesmetric.Table, sqlgraph.NewFieldSpec(salesmetric.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(salesmetric.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Product(); ok {
		_spec.SetField(salesmetric.FieldProduct, field.TypeEnum, value)
		_node.Product = value
	}
	if value, ok := _c.mutation.LeadsCreated(); ok {
		_spec.SetField(salesmetric.FieldLeadsCreated, field.TypeInt, value)
		_node.LeadsCreated = value
	}
	if value, ok := _c.mutation.MessagesSent(); ok {
		_spec.SetField(salesmetric.FieldMessagesSent, field.TypeInt, value)
		_node.MessagesSent = value
	}
	if value, ok := _c.mutation.DealsWon(); ok {
		_spec.SetField(salesmetric.FieldDealsWon, field.TypeInt, value)
		_node.DealsWon = value
	}
	if value, ok := _c.mutation.RevenueCents(); ok {
		_spec.SetField(salesmetric.FieldRevenueCents, field.TypeInt, value)
		_node.RevenueCents = value
	}
	if value, ok := _c.mutation.AiCostCents(); ok {
		_spec.SetField(salesmetric.FieldAiCostCents, field.TypeFloat64, value)
		_node.AiCostCents = value
	}
	if value, ok := _c.mutation.Escalations(); ok {
		_spec.SetField(salesmetric.FieldEscalations, field.TypeInt, value)
		_node.Escalations = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(salesmetric.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SalesMetric.Create().
//		SetDate(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SalesMetricUpsert) {
//			SetDate(v+v).
//		}).
//		Exec(ctx)
func (_c *SalesMetricCreate) OnConflict(opts ...sql.ConflictOption) *SalesMetricUpsertOne {
	_c.conflict = opts
	return &SalesMetricUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SalesMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SalesMetricCreate) OnConflictColumns(columns ...string) *SalesMetricUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SalesMetricUpsertOne{
		create: _c,
	}
}

type (
	// SalesMetricUpsertOne is the builder for "upsert"-ing
	//  one SalesMetric node.
	SalesMetricUpsertOne struct {
		create *SalesMetricCreate
	}

	// SalesMetricUpsert is the "OnConflict" setter.
	SalesMetricUpsert struct {
		*sql.UpdateSet
	}
)

// SetDate sets the "date" field.
func (u *SalesMetricUpsert) SetDate(v string) *SalesMetricUpsert {
	u.Set(salesmetric.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *SalesMetricUpsert) UpdateDate() *SalesMetricUpsert {
	u.SetExcluded(salesmetric.FieldDate)
	return u
}

// SetProduct sets the "product" field.
func (u *SalesMetricUpsert) SetProduct(v product.Line) *SalesMetricUpsert {
	u.Set(salesmetric.FieldProduct, v)
	return u
}

// UpdateProduct sets the "product" field to the value that was provided on create.
func (u *SalesMetricUpsert) UpdateProduct() *SalesMetricUpsert {
	u.SetExcluded(salesmetric.FieldProduct)
	return u
}

// SetLeadsCreated sets the "leads_created" field.
func (u *SalesMetricUpsert) SetLeadsCreated(v int) *SalesMetricUpsert {
	u.Set(salesmetric.FieldLeadsCreated, v)
	return u
}

// UpdateLeadsCreated sets the "leads_created" field to the value that was provided on create.
func (u *SalesMetricUpsert) UpdateLeadsCreated() *SalesMetricUpsert {
	u.SetExcluded(salesmetric.FieldLeadsCreated)
	return u
}

// AddLeadsCreated adds v to the "leads_created" field.
func (u *SalesMetricUpsert) AddLeadsCreated(v int) *SalesMetricUpsert {
	u.Add(salesmetric.FieldLeadsCreated, v)
	return u
}

// SetMessagesSent sets the "messages_sent" field.
func (u *SalesMetricUpsert) SetMessagesSent(v int) *SalesMetricUpsert {
	u.Set(salesmetric.FieldMessagesSent, v)
	return u
}

// UpdateMessagesSent sets the "messages_sent" field to the value that was provided on create.
func (u *SalesMetricUpsert) UpdateMessagesSent() *SalesMetricUpsert {
	u.SetExcluded(salesmetric.FieldMessagesSent)
	return u
}

// AddMessagesSent adds v to the "messages_sent" field.
func (u *SalesMetricUpsert) AddMessagesSent(v int) *SalesMetricUpsert {
	u.Add(salesmetric.FieldMessagesSent, v)
	return u
}

// SetDealsWon sets the "deals_won" field.
func (u *SalesMetricUpsert) SetDealsWon(v int) *SalesMetricUpsert {
	u.Set(salesmetric.FieldDealsWon, v)
	return u
}

// UpdateDealsWon sets the "deals_won" field to the value that was provided on create.
func (u *SalesMetricUpsert) UpdateDealsWon() *SalesMetricUpsert {
	u.SetExcluded(salesmetric.FieldDealsWon)
	return u
}

// AddDealsWon adds v to the "deals_won" field.
func (u *SalesMetricUpsert) AddDealsWon(v int) *SalesMetricUpsert {
	u.Add(salesmetric.FieldDealsWon, v)
	return u
}

// SetRevenueCents sets the "revenue_cents" field.
func (u *SalesMetricUpsert) SetRevenueCents(v int) *SalesMetricUpsert {
	u.Set(salesmetric.FieldRevenueCents, v)
	return u
}

// UpdateRevenueCents sets the "revenue_cents" field to the value that was provided on create.
func (u *SalesMetricUpsert) UpdateRevenueCents() *SalesMetricUpsert {
	u.SetExcluded(salesmetric.FieldRevenueCents)
	return u
}

// AddRevenueCents adds v to the "revenue_cents" field.
func (u *SalesMetricUpsert) AddRevenueCents(v int) *SalesMetricUpsert {
	u.Add(salesmetric.FieldRevenueCents, v)
	return u
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (u *SalesMetricUpsert) SetAiCostCents(v float64) *SalesMetricUpsert {
	u.Set(salesmetric.FieldAiCostCents, v)
	return u
}

// UpdateAiCostCents sets the "ai_cost_cents" field to the value that was provided on create.
func (u *SalesMetricUpsert) UpdateAiCostCents() *SalesMetricUpsert {
	u.SetExcluded(salesmetric.FieldAiCostCents)
	return u
}

// AddAiCostCents adds v to the "ai_cost_cents" field.
func (u *SalesMetricUpsert) AddAiCostCents(v float64) *SalesMetricUpsert {
	u.Add(salesmetric.FieldAiCostCents, v)
	return u
}

// SetEscalations sets the "escalations" field.
func (u *SalesMetricUpsert) SetEscalations(v int) *SalesMetricUpsert {
	u.Set(salesmetric.FieldEscalations, v)
	return u
}

// UpdateEscalations sets the "escalations" field to the value that was provided on create.
func (u *SalesMetricUpsert) UpdateEscalations() *SalesMetricUpsert {
	u.SetExcluded(salesmetric.FieldEscalations)
	return u
}

// AddEscalations adds v to the "escalations" field.
func (u *SalesMetricUpsert) AddEscalations(v int) *SalesMetricUpsert {
	u.Add(salesmetric.FieldEscalations, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SalesMetricUpsert) SetUpdatedAt(v time.Time) *SalesMetricUpsert {
	u.Set(salesmetric.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SalesMetricUpsert) UpdateUpdatedAt() *SalesMetricUpsert {
	u.SetExcluded(salesmetric.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SalesMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SalesMetricUpsertOne) UpdateNewValues() *SalesMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SalesMetric.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SalesMetricUpsertOne) Ignore() *SalesMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SalesMetricUpsertOne) DoNothing() *SalesMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SalesMetricCreate.OnConflict
// documentation for more info.
func (u *SalesMetricUpsertOne) Update(set func(*SalesMetricUpsert)) *SalesMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SalesMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetDate sets the "date" field.
func (u *SalesMetricUpsertOne) SetDate(v string) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *SalesMetricUpsertOne) UpdateDate() *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateDate()
	})
}

// SetProduct sets the "product" field.
func (u *SalesMetricUpsertOne) SetProduct(v product.Line) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetProduct(v)
	})
}

// UpdateProduct sets the "product" field to the value that was provided on create.
func (u *SalesMetricUpsertOne) UpdateProduct() *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateProduct()
	})
}

// SetLeadsCreated sets the "leads_created" field.
func (u *SalesMetricUpsertOne) SetLeadsCreated(v int) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetLeadsCreated(v)
	})
}

// AddLeadsCreated adds v to the "leads_created" field.
func (u *SalesMetricUpsertOne) AddLeadsCreated(v int) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.AddLeadsCreated(v)
	})
}

// UpdateLeadsCreated sets the "leads_created" field to the value that was provided on create.
func (u *SalesMetricUpsertOne) UpdateLeadsCreated() *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateLeadsCreated()
	})
}

// SetMessagesSent sets the "messages_sent" field.
func (u *SalesMetricUpsertOne) SetMessagesSent(v int) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetMessagesSent(v)
	})
}

// AddMessagesSent adds v to the "messages_sent" field.
func (u *SalesMetricUpsertOne) AddMessagesSent(v int) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.AddMessagesSent(v)
	})
}

// UpdateMessagesSent sets the "messages_sent" field to the value that was provided on create.
func (u *SalesMetricUpsertOne) UpdateMessagesSent() *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateMessagesSent()
	})
}

// SetDealsWon sets the "deals_won" field.
func (u *SalesMetricUpsertOne) SetDealsWon(v int) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetDealsWon(v)
	})
}

// AddDealsWon adds v to the "deals_won" field.
func (u *SalesMetricUpsertOne) AddDealsWon(v int) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.AddDealsWon(v)
	})
}

// UpdateDealsWon sets the "deals_won" field to the value that was provided on create.
func (u *SalesMetricUpsertOne) UpdateDealsWon() *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateDealsWon()
	})
}

// SetRevenueCents sets the "revenue_cents" field.
func (u *SalesMetricUpsertOne) SetRevenueCents(v int) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetRevenueCents(v)
	})
}

// AddRevenueCents adds v to the "revenue_cents" field.
func (u *SalesMetricUpsertOne) AddRevenueCents(v int) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.AddRevenueCents(v)
	})
}

// UpdateRevenueCents sets the "revenue_cents" field to the value that was provided on create.
func (u *SalesMetricUpsertOne) UpdateRevenueCents() *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateRevenueCents()
	})
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (u *SalesMetricUpsertOne) SetAiCostCents(v float64) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetAiCostCents(v)
	})
}

// AddAiCostCents adds v to the "ai_cost_cents" field.
func (u *SalesMetricUpsertOne) AddAiCostCents(v float64) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.AddAiCostCents(v)
	})
}

// UpdateAiCostCents sets the "ai_cost_cents" field to the value that was provided on create.
func (u *SalesMetricUpsertOne) UpdateAiCostCents() *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateAiCostCents()
	})
}

// SetEscalations sets the "escalations" field.
func (u *SalesMetricUpsertOne) SetEscalations(v int) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetEscalations(v)
	})
}

// AddEscalations adds v to the "escalations" field.
func (u *SalesMetricUpsertOne) AddEscalations(v int) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.AddEscalations(v)
	})
}

// UpdateEscalations sets the "escalations" field to the value that was provided on create.
func (u *SalesMetricUpsertOne) UpdateEscalations() *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateEscalations()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SalesMetricUpsertOne) SetUpdatedAt(v time.Time) *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SalesMetricUpsertOne) UpdateUpdatedAt() *SalesMetricUpsertOne {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SalesMetricUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SalesMetricCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SalesMetricUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SalesMetricUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SalesMetricUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SalesMetricCreateBulk is the builder for creating many SalesMetric entities in bulk.
type SalesMetricCreateBulk struct {
	config
	err      error
	builders []*SalesMetricCreate
	conflict []sql.ConflictOption
}

// Save creates the SalesMetric entities in the database.
func (_c *SalesMetricCreateBulk) Save(ctx context.Context) ([]*SalesMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SalesMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SalesMetricMutation)
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
func (_c *SalesMetricCreateBulk) SaveX(ctx context.Context) []*SalesMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SalesMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SalesMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SalesMetric.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SalesMetricUpsert) {
//			SetDate(v+v).
//		}).
//		Exec(ctx)
func (_c *SalesMetricCreateBulk) OnConflict(opts ...sql.ConflictOption) *SalesMetricUpsertBulk {
	_c.conflict = opts
	return &SalesMetricUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SalesMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SalesMetricCreateBulk) OnConflictColumns(columns ...string) *SalesMetricUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SalesMetricUpsertBulk{
		create: _c,
	}
}

// SalesMetricUpsertBulk is the builder for "upsert"-ing
// a bulk of SalesMetric nodes.
type SalesMetricUpsertBulk struct {
	create *SalesMetricCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SalesMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SalesMetricUpsertBulk) UpdateNewValues() *SalesMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SalesMetric.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SalesMetricUpsertBulk) Ignore() *SalesMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SalesMetricUpsertBulk) DoNothing() *SalesMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SalesMetricCreateBulk.OnConflict
// documentation for more info.
func (u *SalesMetricUpsertBulk) Update(set func(*SalesMetricUpsert)) *SalesMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SalesMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetDate sets the "date" field.
func (u *SalesMetricUpsertBulk) SetDate(v string) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *SalesMetricUpsertBulk) UpdateDate() *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateDate()
	})
}

// SetProduct sets the "product" field.
func (u *SalesMetricUpsertBulk) SetProduct(v product.Line) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetProduct(v)
	})
}

// UpdateProduct sets the "product" field to the value that was provided on create.
func (u *SalesMetricUpsertBulk) UpdateProduct() *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateProduct()
	})
}

// SetLeadsCreated sets the "leads_created" field.
func (u *SalesMetricUpsertBulk) SetLeadsCreated(v int) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetLeadsCreated(v)
	})
}

// AddLeadsCreated adds v to the "leads_created" field.
func (u *SalesMetricUpsertBulk) AddLeadsCreated(v int) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.AddLeadsCreated(v)
	})
}

// UpdateLeadsCreated sets the "leads_created" field to the value that was provided on create.
func (u *SalesMetricUpsertBulk) UpdateLeadsCreated() *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateLeadsCreated()
	})
}

// SetMessagesSent sets the "messages_sent" field.
func (u *SalesMetricUpsertBulk) SetMessagesSent(v int) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetMessagesSent(v)
	})
}

// AddMessagesSent adds v to the "messages_sent" field.
func (u *SalesMetricUpsertBulk) AddMessagesSent(v int) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.AddMessagesSent(v)
	})
}

// UpdateMessagesSent sets the "messages_sent" field to the value that was provided on create.
func (u *SalesMetricUpsertBulk) UpdateMessagesSent() *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateMessagesSent()
	})
}

// SetDealsWon sets the "deals_won" field.
func (u *SalesMetricUpsertBulk) SetDealsWon(v int) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetDealsWon(v)
	})
}

// AddDealsWon adds v to the "deals_won" field.
func (u *SalesMetricUpsertBulk) AddDealsWon(v int) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.AddDealsWon(v)
	})
}

// UpdateDealsWon sets the "deals_won" field to the value that was provided on create.
func (u *SalesMetricUpsertBulk) UpdateDealsWon() *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateDealsWon()
	})
}

// SetRevenueCents sets the "revenue_cents" field.
func (u *SalesMetricUpsertBulk) SetRevenueCents(v int) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetRevenueCents(v)
	})
}

// AddRevenueCents adds v to the "revenue_cents" field.
func (u *SalesMetricUpsertBulk) AddRevenueCents(v int) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.AddRevenueCents(v)
	})
}

// UpdateRevenueCents sets the "revenue_cents" field to the value that was provided on create.
func (u *SalesMetricUpsertBulk) UpdateRevenueCents() *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateRevenueCents()
	})
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (u *SalesMetricUpsertBulk) SetAiCostCents(v float64) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetAiCostCents(v)
	})
}

// AddAiCostCents adds v to the "ai_cost_cents" field.
func (u *SalesMetricUpsertBulk) AddAiCostCents(v float64) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.AddAiCostCents(v)
	})
}

// UpdateAiCostCents sets the "ai_cost_cents" field to the value that was provided on create.
func (u *SalesMetricUpsertBulk) UpdateAiCostCents() *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateAiCostCents()
	})
}

// SetEscalations sets the "escalations" field.
func (u *SalesMetricUpsertBulk) SetEscalations(v int) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetEscalations(v)
	})
}

// AddEscalations adds v to the "escalations" field.
func (u *SalesMetricUpsertBulk) AddEscalations(v int) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.AddEscalations(v)
	})
}

// UpdateEscalations sets the "escalations" field to the value that was provided on create.
func (u *SalesMetricUpsertBulk) UpdateEscalations() *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateEscalations()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SalesMetricUpsertBulk) SetUpdatedAt(v time.Time) *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SalesMetricUpsertBulk) UpdateUpdatedAt() *SalesMetricUpsertBulk {
	return u.Update(func(s *SalesMetricUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SalesMetricUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SalesMetricCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SalesMetricCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SalesMetricUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
