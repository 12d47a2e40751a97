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
	"github.com/jordanlanch/salesagent/ent/predicate"
	"github.com/jordanlanch/salesagent/ent/salesmetric"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// SalesMetricUpdate is the builder for updating SalesMetric entities.
type SalesMetricUpdate struct {
	config
	hooks    []Hook
	mutation *SalesMetricMutation
}

// Where appends a list predicates to the SalesMetricUpdate builder.
func (_u *SalesMetricUpdate) Where(ps ...predicate.SalesMetric) *SalesMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDate sets the "date" field.
func (_u *SalesMetricUpdate) SetDate(v string) *SalesMetricUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *SalesMetricUpdate) SetNillableDate(v *string) *SalesMetricUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetProduct sets the "product" field.
func (_u *SalesMetricUpdate) SetProduct(v product.Line) *SalesMetricUpdate {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *SalesMetricUpdate) SetNillableProduct(v *product.Line) *SalesMetricUpdate {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// SetLeadsCreated sets the "leads_created" field.
func (_u *SalesMetricUpdate) SetLeadsCreated(v int) *SalesMetricUpdate {
	_u.mutation.ResetLeadsCreated()
	_u.mutation.SetLeadsCreated(v)
	return _u
}

// SetNillableLeadsCreated sets the "leads_created" field if the given value is not nil.
func (_u *SalesMetricUpdate) SetNillableLeadsCreated(v *int) *SalesMetricUpdate {
	if v != nil {
		_u.SetLeadsCreated(*v)
	}
	return _u
}

// AddLeadsCreated adds value to the "leads_created" field.
func (_u *SalesMetricUpdate) AddLeadsCreated(v int) *SalesMetricUpdate {
	_u.mutation.AddLeadsCreated(v)
	return _u
}

// SetMessagesSent sets the "messages_sent" field.
func (_u *SalesMetricUpdate) SetMessagesSent(v int) *SalesMetricUpdate {
	_u.mutation.ResetMessagesSent()
	_u.mutation.SetMessagesSent(v)
	return _u
}

// SetNillableMessagesSent sets the "messages_sent" field if the given value is not nil.
func (_u *SalesMetricUpdate) SetNillableMessagesSent(v *int) *SalesMetricUpdate {
	if v != nil {
		_u.SetMessagesSent(*v)
	}
	return _u
}

// AddMessagesSent adds value to the "messages_sent" field.
func (_u *SalesMetricUpdate) AddMessagesSent(v int) *SalesMetricUpdate {
	_u.mutation.AddMessagesSent(v)
	return _u
}

// SetDealsWon sets the "deals_won" field.
func (_u *SalesMetricUpdate) SetDealsWon(v int) *SalesMetricUpdate {
	_u.mutation.ResetDealsWon()
	_u.mutation.SetDealsWon(v)
	return _u
}

// SetNillableDealsWon sets the "deals_won" field if the given value is not nil.
func (_u *SalesMetricUpdate) SetNillableDealsWon(v *int) *SalesMetricUpdate {
	if v != nil {
		_u.SetDealsWon(*v)
	}
	return _u
}

// AddDealsWon adds value to the "deals_won" field.
func (_u *SalesMetricUpdate) AddDealsWon(v int) *SalesMetricUpdate {
	_u.mutation.AddDealsWon(v)
	return _u
}

// SetRevenueCents sets the "revenue_cents" field.
func (_u *SalesMetricUpdate) SetRevenueCents(v int) *SalesMetricUpdate {
	_u.mutation.ResetRevenueCents()
	_u.mutation.SetRevenueCents(v)
	return _u
}

// SetNillableRevenueCents sets the "revenue_cents" field if the given value is not nil.
func (_u *SalesMetricUpdate) SetNillableRevenueCents(v *int) *SalesMetricUpdate {
	if v != nil {
		_u.SetRevenueCents(*v)
	}
	return _u
}

// AddRevenueCents adds value to the "revenue_cents" field.
func (_u *SalesMetricUpdate) AddRevenueCents(v int) *SalesMetricUpdate {
	_u.mutation.AddRevenueCents(v)
	return _u
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (_u *SalesMetricUpdate) SetAiCostCents(v float64) *SalesMetricUpdate {
	_u.mutation.ResetAiCostCents()
	_u.mutation.SetAiCostCents(v)
	return _u
}

// SetNillableAiCostCents sets the "ai_cost_cents" field if the given value is not nil.
func (_u *SalesMetricUpdate) SetNillableAiCostCents(v *float64) *SalesMetricUpdate {
	if v != nil {
		_u.SetAiCostCents(*v)
	}
	return _u
}

// AddAiCostCents adds value to the "ai_cost_cents" field.
func (_u *SalesMetricUpdate) AddAiCostCents(v float64) *SalesMetricUpdate {
	_u.mutation.AddAiCostCents(v)
	return _u
}

// SetEscalations sets the "escalations" field.
func (_u *SalesMetricUpdate) SetEscalations(v int) *SalesMetricUpdate {
	_u.mutation.ResetEscalations()
	_u.mutation.SetEscalations(v)
	return _u
}

// SetNillableEscalations sets the "escalations" field if the given value is not nil.
func (_u *SalesMetricUpdate) SetNillableEscalations(v *int) *SalesMetricUpdate {
	if v != nil {
		_u.SetEscalations(*v)
	}
	return _u
}

// AddEscalations adds value to the "escalations" field.
func (_u *SalesMetricUpdate) AddEscalations(v int) *SalesMetricUpdate {
	_u.mutation.AddEscalations(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SalesMetricUpdate) SetUpdatedAt(v time.Time) *SalesMetricUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SalesMetricMutation object of the builder.
func (_u *SalesMetricUpdate) Mutation() *SalesMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SalesMetricUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SalesMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SalesMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SalesMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SalesMetricUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := salesmetric.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SalesMetricUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := salesmetric.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "SalesMetric.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Product(); ok {
		if err := salesmetric.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "SalesMetric.product": %w`, err)}
		}
	}
	return nil
}

func (_u *SalesMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(salesmetric.Table, salesmetric.Columns, sqlgraph.NewFieldSpec(salesmetric.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(salesmetric.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(salesmetric.FieldProduct, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeadsCreated(); ok {
		_spec.SetField(salesmetric.FieldLeadsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadsCreated(); ok {
		_spec.AddField(salesmetric.FieldLeadsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessagesSent(); ok {
		_spec.SetField(salesmetric.FieldMessagesSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessagesSent(); ok {
		_spec.AddField(salesmetric.FieldMessagesSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DealsWon(); ok {
		_spec.SetField(salesmetric.FieldDealsWon, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDealsWon(); ok {
		_spec.AddField(salesmetric.FieldDealsWon, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RevenueCents(); ok {
		_spec.SetField(salesmetric.FieldRevenueCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRevenueCents(); ok {
		_spec.AddField(salesmetric.FieldRevenueCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AiCostCents(); ok {
		_spec.SetField(salesmetric.FieldAiCostCents, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAiCostCents(); ok {
		_spec.AddField(salesmetric.FieldAiCostCents, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Escalations(); ok {
		_spec.SetField(salesmetric.FieldEscalations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalations(); ok {
		_spec.AddField(salesmetric.FieldEscalations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(salesmetric.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{salesmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SalesMetricUpdateOne is the builder for updating a single SalesMetric entity.
type SalesMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SalesMetricMutation
}

// SetDate sets the "date" field.
func (_u *SalesMetricUpdateOne) SetDate(v string) *SalesMetricUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *SalesMetricUpdateOne) SetNillableDate(v *string) *SalesMetricUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetProduct sets the "product" field.
func (_u *SalesMetricUpdateOne) SetProduct(v product.Line) *SalesMetricUpdateOne {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *SalesMetricUpdateOne) SetNillableProduct(v *product.Line) *SalesMetricUpdateOne {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// SetLeadsCreated sets the "leads_created" field.
func (_u *SalesMetricUpdateOne) SetLeadsCreated(v int) *SalesMetricUpdateOne {
	_u.mutation.ResetLeadsCreated()
	_u.mutation.SetLeadsCreated(v)
	return _u
}

// SetNillableLeadsCreated sets the "leads_created" field if the given value is not nil.
func (_u *SalesMetricUpdateOne) SetNillableLeadsCreated(v *int) *SalesMetricUpdateOne {
	if v != nil {
		_u.SetLeadsCreated(*v)
	}
	return _u
}

// AddLeadsCreated adds value to the "leads_created" field.
func (_u *SalesMetricUpdateOne) AddLeadsCreated(v int) *SalesMetricUpdateOne {
	_u.mutation.AddLeadsCreated(v)
	return _u
}

// SetMessagesSent sets the "messages_sent" field.
func (_u *SalesMetricUpdateOne) SetMessagesSent(v int) *SalesMetricUpdateOne {
	_u.mutation.ResetMessagesSent()
	_u.mutation.SetMessagesSent(v)
	return _u
}

// SetNillableMessagesSent sets the "messages_sent" field if the given value is not nil.
func (_u *SalesMetricUpdateOne) SetNillableMessagesSent(v *int) *SalesMetricUpdateOne {
	if v != nil {
		_u.SetMessagesSent(*v)
	}
	return _u
}

// AddMessagesSent adds value to the "messages_sent" field.
func (_u *SalesMetricUpdateOne) AddMessagesSent(v int) *SalesMetricUpdateOne {
	_u.mutation.AddMessagesSent(v)
	return _u
}

// SetDealsWon sets the "deals_won" field.
func (_u *SalesMetricUpdateOne) SetDealsWon(v int) *SalesMetricUpdateOne {
	_u.mutation.ResetDealsWon()
	_u.mutation.SetDealsWon(v)
	return _u
}

// SetNillableDealsWon sets the "deals_won" field if the given value is not nil.
func (_u *SalesMetricUpdateOne) SetNillableDealsWon(v *int) *SalesMetricUpdateOne {
	if v != nil {
		_u.SetDealsWon(*v)
	}
	return _u
}

// AddDealsWon adds value to the "deals_won" field.
func (_u *SalesMetricUpdateOne) AddDealsWon(v int) *SalesMetricUpdateOne {
	_u.mutation.AddDealsWon(v)
	return _u
}

// SetRevenueCents sets the "revenue_cents" field.
func (_u *SalesMetricUpdateOne) SetRevenueCents(v int) *SalesMetricUpdateOne {
	_u.mutation.ResetRevenueCents()
	_u.mutation.SetRevenueCents(v)
	return _u
}

// SetNillableRevenueCents sets the "revenue_cents" field if the given value is not nil.
func (_u *SalesMetricUpdateOne) SetNillableRevenueCents(v *int) *SalesMetricUpdateOne {
	if v != nil {
		_u.SetRevenueCents(*v)
	}
	return _u
}

// AddRevenueCents adds value to the "revenue_cents" field.
func (_u *SalesMetricUpdateOne) AddRevenueCents(v int) *SalesMetricUpdateOne {
	_u.mutation.AddRevenueCents(v)
	return _u
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (_u *SalesMetricUpdateOne) SetAiCostCents(v float64) *SalesMetricUpdateOne {
	_u.mutation.ResetAiCostCents()
	_u.mutation.SetAiCostCents(v)
	return _u
}

// SetNillableAiCostCents sets the "ai_cost_cents" field if the given value is not nil.
func (_u *SalesMetricUpdateOne) SetNillableAiCostCents(v *float64) *SalesMetricUpdateOne {
	if v != nil {
		_u.SetAiCostCents(*v)
	}
	return _u
}

// AddAiCostCents adds value to the "ai_cost_cents" field.
func (_u *SalesMetricUpdateOne) AddAiCostCents(v float64) *SalesMetricUpdateOne {
	_u.mutation.AddAiCostCents(v)
	return _u
}

// SetEscalations sets the "escalations" field.
func (_u *SalesMetricUpdateOne) SetEscalations(v int) *SalesMetricUpdateOne {
	_u.mutation.ResetEscalations()
	_u.mutation.SetEscalations(v)
	return _u
}

// SetNillableEscalations sets the "escalations" field if the given value is not nil.
func (_u *SalesMetricUpdateOne) SetNillableEscalations(v *int) *SalesMetricUpdateOne {
	if v != nil {
		_u.SetEscalations(*v)
	}
	return _u
}

// AddEscalations adds value to the "escalations" field.
func (_u *SalesMetricUpdateOne) AddEscalations(v int) *SalesMetricUpdateOne {
	_u.mutation.AddEscalations(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SalesMetricUpdateOne) SetUpdatedAt(v time.Time) *SalesMetricUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SalesMetricMutation object of the builder.
func (_u *SalesMetricUpdateOne) Mutation() *SalesMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the SalesMetricUpdate builder.
func (_u *SalesMetricUpdateOne) Where(ps ...predicate.SalesMetric) *SalesMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SalesMetricUpdateOne) Select(field string, fields ...string) *SalesMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SalesMetric entity.
func (_u *SalesMetricUpdateOne) Save(ctx context.Context) (*SalesMetric, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SalesMetricUpdateOne) SaveX(ctx context.Context) *SalesMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SalesMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SalesMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SalesMetricUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := salesmetric.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SalesMetricUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := salesmetric.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "SalesMetric.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Product(); ok {
		if err := salesmetric.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "SalesMetric.product": %w`, err)}
		}
	}
	return nil
}

func (_u *SalesMetricUpdateOne) sqlSave(ctx context.Context) (_node *SalesMetric, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(salesmetric.Table, salesmetric.Columns, sqlgraph.NewFieldSpec(salesmetric.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SalesMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, salesmetric.FieldID)
		for _, f := range fields {
			if !salesmetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != salesmetric.FieldID {
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
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(salesmetric.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(salesmetric.FieldProduct, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeadsCreated(); ok {
		_spec.SetField(salesmetric.FieldLeadsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadsCreated(); ok {
		_spec.AddField(salesmetric.FieldLeadsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessagesSent(); ok {
		_spec.SetField(salesmetric.FieldMessagesSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessagesSent(); ok {
		_spec.AddField(salesmetric.FieldMessagesSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DealsWon(); ok {
		_spec.SetField(salesmetric.FieldDealsWon, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDealsWon(); ok {
		_spec.AddField(salesmetric.FieldDealsWon, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RevenueCents(); ok {
		_spec.SetField(salesmetric.FieldRevenueCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRevenueCents(); ok {
		_spec.AddField(salesmetric.FieldRevenueCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AiCostCents(); ok {
		_spec.SetField(salesmetric.FieldAiCostCents, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAiCostCents(); ok {
		_spec.AddField(salesmetric.FieldAiCostCents, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Escalations(); ok {
		_spec.SetField(salesmetric.FieldEscalations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalations(); ok {
		_spec.AddField(salesmetric.FieldEscalations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(salesmetric.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SalesMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{salesmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
