// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/salesagent/ent/predicate"
	"github.com/jordanlanch/salesagent/ent/scrapingqueue"
)

// ScrapingQueueDelete is the builder for deleting a ScrapingQueue entity.
type ScrapingQueueDelete struct {
	config
	hooks    []Hook
	mutation *ScrapingQueueMutation
}

// Where appends a list predicates to the ScrapingQueueDelete builder.
func (_d *ScrapingQueueDelete) Where(ps ...predicate.ScrapingQueue) *ScrapingQueueDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScrapingQueueDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScrapingQueueDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScrapingQueueDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scrapingqueue.Table, sqlgraph.NewFieldSpec(scrapingqueue.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ScrapingQueueDeleteOne is the builder for deleting a single ScrapingQueue entity.
type ScrapingQueueDeleteOne struct {
	_d *ScrapingQueueDelete
}

// Where appends a list predicates to the ScrapingQueueDelete builder.
func (_d *ScrapingQueueDeleteOne) Where(ps ...predicate.ScrapingQueue) *ScrapingQueueDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScrapingQueueDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scrapingqueue.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScrapingQueueDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
