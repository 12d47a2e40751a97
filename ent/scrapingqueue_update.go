// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/salesagent/ent/predicate"
	"github.com/jordanlanch/salesagent/ent/scrapingqueue"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// ScrapingQueueUpdate is the builder for updating ScrapingQueue entities.
type ScrapingQueueUpdate struct {
	config
	hooks    []Hook
	mutation *ScrapingQueueMutation
}

// Where appends a list predicates to the ScrapingQueueUpdate builder.
func (_u *ScrapingQueueUpdate) Where(ps ...predicate.ScrapingQueue) *ScrapingQueueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGooglePlaceID sets the "google_place_id" field.
func (_u *ScrapingQueueUpdate) SetGooglePlaceID(v string) *ScrapingQueueUpdate {
	_u.mutation.SetGooglePlaceID(v)
	return _u
}

// SetNillableGooglePlaceID sets the "google_place_id" field if the given value is not nil.
func (_u *ScrapingQueueUpdate) SetNillableGooglePlaceID(v *string) *ScrapingQueueUpdate {
	if v != nil {
		_u.SetGooglePlaceID(*v)
	}
	return _u
}

// SetProduct sets the "product" field.
func (_u *ScrapingQueueUpdate) SetProduct(v product.Line) *ScrapingQueueUpdate {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *ScrapingQueueUpdate) SetNillableProduct(v *product.Line) *ScrapingQueueUpdate {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *ScrapingQueueUpdate) SetBusinessName(v string) *ScrapingQueueUpdate {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *ScrapingQueueUpdate) SetNillableBusinessName(v *string) *ScrapingQueueUpdate {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ScrapingQueueUpdate) SetPhone(v string) *ScrapingQueueUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ScrapingQueueUpdate) SetNillablePhone(v *string) *ScrapingQueueUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ScrapingQueueUpdate) ClearPhone() *ScrapingQueueUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ScrapingQueueUpdate) SetAddress(v string) *ScrapingQueueUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ScrapingQueueUpdate) SetNillableAddress(v *string) *ScrapingQueueUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ScrapingQueueUpdate) ClearAddress() *ScrapingQueueUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *ScrapingQueueUpdate) SetCity(v string) *ScrapingQueueUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ScrapingQueueUpdate) SetNillableCity(v *string) *ScrapingQueueUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ScrapingQueueUpdate) ClearCity() *ScrapingQueueUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *ScrapingQueueUpdate) SetState(v string) *ScrapingQueueUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ScrapingQueueUpdate) SetNillableState(v *string) *ScrapingQueueUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ScrapingQueueUpdate) ClearState() *ScrapingQueueUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetRating sets the "rating" field.
func (_u *ScrapingQueueUpdate) SetRating(v float64) *ScrapingQueueUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ScrapingQueueUpdate) SetNillableRating(v *float64) *ScrapingQueueUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ScrapingQueueUpdate) AddRating(v float64) *ScrapingQueueUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *ScrapingQueueUpdate) ClearRating() *ScrapingQueueUpdate {
	_u.mutation.ClearRating()
	return _u
}

// SetReviewsCount sets the "reviews_count" field.
func (_u *ScrapingQueueUpdate) SetReviewsCount(v int) *ScrapingQueueUpdate {
	_u.mutation.ResetReviewsCount()
	_u.mutation.SetReviewsCount(v)
	return _u
}

// SetNillableReviewsCount sets the "reviews_count" field if the given value is not nil.
func (_u *ScrapingQueueUpdate) SetNillableReviewsCount(v *int) *ScrapingQueueUpdate {
	if v != nil {
		_u.SetReviewsCount(*v)
	}
	return _u
}

// AddReviewsCount adds value to the "reviews_count" field.
func (_u *ScrapingQueueUpdate) AddReviewsCount(v int) *ScrapingQueueUpdate {
	_u.mutation.AddReviewsCount(v)
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ScrapingQueueUpdate) SetWebsite(v string) *ScrapingQueueUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ScrapingQueueUpdate) SetNillableWebsite(v *string) *ScrapingQueueUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ScrapingQueueUpdate) ClearWebsite() *ScrapingQueueUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScrapingQueueUpdate) SetStatus(v scrapingqueue.Status) *ScrapingQueueUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScrapingQueueUpdate) SetNillableStatus(v *scrapingqueue.Status) *ScrapingQueueUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the ScrapingQueueMutation object of the builder.
func (_u *ScrapingQueueUpdate) Mutation() *ScrapingQueueMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScrapingQueueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScrapingQueueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScrapingQueueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScrapingQueueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScrapingQueueUpdate) check() error {
	if v, ok := _u.mutation.GooglePlaceID(); ok {
		if err := scrapingqueue.GooglePlaceIDValidator(v); err != nil {
			return &ValidationError{Name: "google_place_id", err: fmt.Errorf(`ent: validator failed for field "ScrapingQueue.google_place_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Product(); ok {
		if err := scrapingqueue.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "ScrapingQueue.product": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scrapingqueue.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScrapingQueue.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScrapingQueueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scrapingqueue.Table, scrapingqueue.Columns, sqlgraph.NewFieldSpec(scrapingqueue.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GooglePlaceID(); ok {
		_spec.SetField(scrapingqueue.FieldGooglePlaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(scrapingqueue.FieldProduct, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(scrapingqueue.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(scrapingqueue.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(scrapingqueue.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(scrapingqueue.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(scrapingqueue.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(scrapingqueue.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(scrapingqueue.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(scrapingqueue.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(scrapingqueue.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(scrapingqueue.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(scrapingqueue.FieldRating, field.TypeFloat64, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(scrapingqueue.FieldRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReviewsCount(); ok {
		_spec.SetField(scrapingqueue.FieldReviewsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewsCount(); ok {
		_spec.AddField(scrapingqueue.FieldReviewsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(scrapingqueue.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(scrapingqueue.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scrapingqueue.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scrapingqueue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScrapingQueueUpdateOne is the builder for updating a single ScrapingQueue entity.
type ScrapingQueueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScrapingQueueMutation
}

// SetGooglePlaceID sets the "google_place_id" field.
func (_u *ScrapingQueueUpdateOne) SetGooglePlaceID(v string) *ScrapingQueueUpdateOne {
	_u.mutation.SetGooglePlaceID(v)
	return _u
}

// SetNillableGooglePlaceID sets the "google_place_id" field if the given value is not nil.
func (_u *ScrapingQueueUpdateOne) SetNillableGooglePlaceID(v *string) *ScrapingQueueUpdateOne {
	if v != nil {
		_u.SetGooglePlaceID(*v)
	}
	return _u
}

// SetProduct sets the "product" field.
func (_u *ScrapingQueueUpdateOne) SetProduct(v product.Line) *ScrapingQueueUpdateOne {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *ScrapingQueueUpdateOne) SetNillableProduct(v *product.Line) *ScrapingQueueUpdateOne {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *ScrapingQueueUpdateOne) SetBusinessName(v string) *ScrapingQueueUpdateOne {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *ScrapingQueueUpdateOne) SetNillableBusinessName(v *string) *ScrapingQueueUpdateOne {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ScrapingQueueUpdateOne) SetPhone(v string) *ScrapingQueueUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ScrapingQueueUpdateOne) SetNillablePhone(v *string) *ScrapingQueueUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ScrapingQueueUpdateOne) ClearPhone() *ScrapingQueueUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ScrapingQueueUpdateOne) SetAddress(v string) *ScrapingQueueUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ScrapingQueueUpdateOne) SetNillableAddress(v *string) *ScrapingQueueUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ScrapingQueueUpdateOne) ClearAddress() *ScrapingQueueUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *ScrapingQueueUpdateOne) SetCity(v string) *ScrapingQueueUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ScrapingQueueUpdateOne) SetNillableCity(v *string) *ScrapingQueueUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ScrapingQueueUpdateOne) ClearCity() *ScrapingQueueUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *ScrapingQueueUpdateOne) SetState(v string) *ScrapingQueueUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ScrapingQueueUpdateOne) SetNillableState(v *string) *ScrapingQueueUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ScrapingQueueUpdateOne) ClearState() *ScrapingQueueUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetRating sets the "rating" field.
func (_u *ScrapingQueueUpdateOne) SetRating(v float64) *ScrapingQueueUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ScrapingQueueUpdateOne) SetNillableRating(v *float64) *ScrapingQueueUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ScrapingQueueUpdateOne) AddRating(v float64) *ScrapingQueueUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *ScrapingQueueUpdateOne) ClearRating() *ScrapingQueueUpdateOne {
	_u.mutation.ClearRating()
	return _u
}

// SetReviewsCount sets the "reviews_count" field.
func (_u *ScrapingQueueUpdateOne) SetReviewsCount(v int) *ScrapingQueueUpdateOne {
	_u.mutation.ResetReviewsCount()
	_u.mutation.SetReviewsCount(v)
	return _u
}

// SetNillableReviewsCount sets the "reviews_count" field if the given value is not nil.
func (_u *ScrapingQueueUpdateOne) SetNillableReviewsCount(v *int) *ScrapingQueueUpdateOne {
	if v != nil {
		_u.SetReviewsCount(*v)
	}
	return _u
}

// AddReviewsCount adds value to the "reviews_count" field.
func (_u *ScrapingQueueUpdateOne) AddReviewsCount(v int) *ScrapingQueueUpdateOne {
	_u.mutation.AddReviewsCount(v)
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ScrapingQueueUpdateOne) SetWebsite(v string) *ScrapingQueueUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ScrapingQueueUpdateOne) SetNillableWebsite(v *string) *ScrapingQueueUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ScrapingQueueUpdateOne) ClearWebsite() *ScrapingQueueUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScrapingQueueUpdateOne) SetStatus(v scrapingqueue.Status) *ScrapingQueueUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScrapingQueueUpdateOne) SetNillableStatus(v *scrapingqueue.Status) *ScrapingQueueUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the ScrapingQueueMutation object of the builder.
func (_u *ScrapingQueueUpdateOne) Mutation() *ScrapingQueueMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScrapingQueueUpdate builder.
func (_u *ScrapingQueueUpdateOne) Where(ps ...predicate.ScrapingQueue) *ScrapingQueueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScrapingQueueUpdateOne) Select(field string, fields ...string) *ScrapingQueueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScrapingQueue entity.
func (_u *ScrapingQueueUpdateOne) Save(ctx context.Context) (*ScrapingQueue, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScrapingQueueUpdateOne) SaveX(ctx context.Context) *ScrapingQueue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScrapingQueueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScrapingQueueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScrapingQueueUpdateOne) check() error {
	if v, ok := _u.mutation.GooglePlaceID(); ok {
		if err := scrapingqueue.GooglePlaceIDValidator(v); err != nil {
			return &ValidationError{Name: "google_place_id", err: fmt.Errorf(`ent: validator failed for field "ScrapingQueue.google_place_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Product(); ok {
		if err := scrapingqueue.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "ScrapingQueue.product": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scrapingqueue.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScrapingQueue.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScrapingQueueUpdateOne) sqlSave(ctx context.Context) (_node *ScrapingQueue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scrapingqueue.Table, scrapingqueue.Columns, sqlgraph.NewFieldSpec(scrapingqueue.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScrapingQueue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scrapingqueue.FieldID)
		for _, f := range fields {
			if !scrapingqueue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scrapingqueue.FieldID {
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
	if value, ok := _u.mutation.GooglePlaceID(); ok {
		_spec.SetField(scrapingqueue.FieldGooglePlaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(scrapingqueue.FieldProduct, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(scrapingqueue.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(scrapingqueue.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(scrapingqueue.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(scrapingqueue.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(scrapingqueue.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(scrapingqueue.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(scrapingqueue.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(scrapingqueue.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(scrapingqueue.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(scrapingqueue.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(scrapingqueue.FieldRating, field.TypeFloat64, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(scrapingqueue.FieldRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReviewsCount(); ok {
		_spec.SetField(scrapingqueue.FieldReviewsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewsCount(); ok {
		_spec.AddField(scrapingqueue.FieldReviewsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(scrapingqueue.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(scrapingqueue.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scrapingqueue.FieldStatus, field.TypeEnum, value)
	}
	_node = &ScrapingQueue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scrapingqueue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
