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
	"github.com/jordanlanch/salesagent/ent/scrapingqueue"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// ScrapingQueueCreate is the builder for creating a ScrapingQueue entity.
type ScrapingQueueCreate struct {
	config
	mutation *ScrapingQueueMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGooglePlaceID sets the "google_place_id" field.
func (_c *ScrapingQueueCreate) SetGooglePlaceID(v string) *ScrapingQueueCreate {
	_c.mutation.SetGooglePlaceID(v)
	return _c
}

// SetProduct sets the "product" field.
func (_c *ScrapingQueueCreate) SetProduct(v product.Line) *ScrapingQueueCreate {
	_c.mutation.SetProduct(v)
	return _c
}

// SetBusinessName sets the "business_name" field.
func (_c *ScrapingQueueCreate) SetBusinessName(v string) *ScrapingQueueCreate {
	_c.mutation.SetBusinessName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ScrapingQueueCreate) SetPhone(v string) *ScrapingQueueCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ScrapingQueueCreate) SetNillablePhone(v *string) *ScrapingQueueCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *ScrapingQueueCreate) SetAddress(v string) *ScrapingQueueCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *ScrapingQueueCreate) SetNillableAddress(v *string) *ScrapingQueueCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *ScrapingQueueCreate) SetCity(v string) *ScrapingQueueCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *ScrapingQueueCreate) SetNillableCity(v *string) *ScrapingQueueCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ScrapingQueueCreate) SetState(v string) *ScrapingQueueCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ScrapingQueueCreate) SetNillableState(v *string) *ScrapingQueueCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *ScrapingQueueCreate) SetRating(v float64) *ScrapingQueueCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *ScrapingQueueCreate) SetNillableRating(v *float64) *ScrapingQueueCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetReviewsCount sets the "reviews_count" field.
func (_c *ScrapingQueueCreate) SetReviewsCount(v int) *ScrapingQueueCreate {
	_c.mutation.SetReviewsCount(v)
	return _c
}

// SetNillableReviewsCount sets the "reviews_count" field if the given value is not nil.
func (_c *ScrapingQueueCreate) SetNillableReviewsCount(v *int) *ScrapingQueueCreate {
	if v != nil {
		_c.SetReviewsCount(*v)
	}
	return _c
}

// SetWebsite sets the "website" field.
func (_c *ScrapingQueueCreate) SetWebsite(v string) *ScrapingQueueCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *ScrapingQueueCreate) SetNillableWebsite(v *string) *ScrapingQueueCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScrapingQueueCreate) SetStatus(v scrapingqueue.Status) *ScrapingQueueCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScrapingQueueCreate) SetNillableStatus(v *scrapingqueue.Status) *ScrapingQueueCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScrapingQueueCreate) SetCreatedAt(v time.Time) *ScrapingQueueCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScrapingQueueCreate) SetNillableCreatedAt(v *time.Time) *ScrapingQueueCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ScrapingQueueMutation object of the builder.
func (_c *ScrapingQueueCreate) Mutation() *ScrapingQueueMutation {
	return _c.mutation
}

// Save creates the ScrapingQueue in the database.
func (_c *ScrapingQueueCreate) Save(ctx context.Context) (*ScrapingQueue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScrapingQueueCreate) SaveX(ctx context.Context) *ScrapingQueue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScrapingQueueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScrapingQueueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScrapingQueueCreate) defaults() {
	if _, ok := _c.mutation.ReviewsCount(); !ok {
		v := scrapingqueue.DefaultReviewsCount
		_c.mutation.SetReviewsCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := scrapingqueue.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scrapingqueue.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScrapingQueueCreate) check() error {
	if _, ok := _c.mutation.GooglePlaceID(); !ok {
		return &ValidationError{Name: "google_place_id", err: errors.New(`ent: missing required field "ScrapingQueue.google_place_id"`)}
	}
	if v, ok := _c.mutation.GooglePlaceID(); ok {
		if err := scrapingqueue.GooglePlaceIDValidator(v); err != nil {
			return &ValidationError{Name: "google_place_id", err: fmt.Errorf(`ent: validator failed for field "ScrapingQueue.google_place_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Product(); !ok {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required field "ScrapingQueue.product"`)}
	}
	if v, ok := _c.mutation.Product(); ok {
		if err := scrapingqueue.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "ScrapingQueue.product": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BusinessName(); !ok {
		return &ValidationError{Name: "business_name", err: errors.New(`ent: missing required field "ScrapingQueue.business_name"`)}
	}
	if _, ok := _c.mutation.ReviewsCount(); !ok {
		return &ValidationError{Name: "reviews_count", err: errors.New(`ent: missing required field "ScrapingQueue.reviews_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScrapingQueue.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scrapingqueue.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScrapingQueue.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScrapingQueue.created_at"`)}
	}
	return nil
}

func (_c *ScrapingQueueCreate) sqlSave(ctx context.Context) (*ScrapingQueue, error) {
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

func (_c *ScrapingQueueCreate) createSpec() (*ScrapingQueue, *sqlgraph.CreateSpec) {
	var (
		_node = &ScrapingQueue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scrapingqueue.Table, sqlgraph.NewFieldSpec(scrapingqueue.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.GooglePlaceID(); ok {
		_spec.SetField(scrapingqueue.FieldGooglePlaceID, field.TypeString, value)
		_node.GooglePlaceID = value
	}
	if value, ok := _c.mutation.Product(); ok {
		_spec.SetField(scrapingqueue.FieldProduct, field.TypeEnum, value)
		_node.Product = value
	}
	if value, ok := _c.mutation.BusinessName(); ok {
		_spec.SetField(scrapingqueue.FieldBusinessName, field.TypeString, value)
		_node.BusinessName = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(scrapingqueue.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(scrapingqueue.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(scrapingqueue.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(scrapingqueue.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(scrapingqueue.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.ReviewsCount(); ok {
		_spec.SetField(scrapingqueue.FieldReviewsCount, field.TypeInt, value)
		_node.ReviewsCount = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(scrapingqueue.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scrapingqueue.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scrapingqueue.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScrapingQueue.Create().
//		SetGooglePlaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScrapingQueueUpsert) {
//			SetGooglePlaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScrapingQueueCreate) OnConflict(opts ...sql.ConflictOption) *ScrapingQueueUpsertOne {
	_c.conflict = opts
	return &ScrapingQueueUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScrapingQueue.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScrapingQueueCreate) OnConflictColumns(columns ...string) *ScrapingQueueUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScrapingQueueUpsertOne{
		create: _c,
	}
}

type (
	// ScrapingQueueUpsertOne is the builder for "upsert"-ing
	//  one ScrapingQueue node.
	ScrapingQueueUpsertOne struct {
		create *ScrapingQueueCreate
	}

	// ScrapingQueueUpsert is the "OnConflict" setter.
	ScrapingQueueUpsert struct {
		*sql.UpdateSet
	}
)

// SetGooglePlaceID sets the "google_place_id" field.
func (u *ScrapingQueueUpsert) SetGooglePlaceID(v string) *ScrapingQueueUpsert {
	u.Set(scrapingqueue.FieldGooglePlaceID, v)
	return u
}

// UpdateGooglePlaceID sets the "google_place_id" field to the value that was provided on create.
func (u *ScrapingQueueUpsert) UpdateGooglePlaceID() *ScrapingQueueUpsert {
	u.SetExcluded(scrapingqueue.FieldGooglePlaceID)
	return u
}

// SetProduct sets the "product" field.
func (u *ScrapingQueueUpsert) SetProduct(v product.Line) *ScrapingQueueUpsert {
	u.Set(scrapingqueue.FieldProduct, v)
	return u
}

// UpdateProduct sets the "product" field to the value that was provided on create.
func (u *ScrapingQueueUpsert) UpdateProduct() *ScrapingQueueUpsert {
	u.SetExcluded(scrapingqueue.FieldProduct)
	return u
}

// SetBusinessName sets the "business_name" field.
func (u *ScrapingQueueUpsert) SetBusinessName(v string) *ScrapingQueueUpsert {
	u.Set(scrapingqueue.FieldBusinessName, v)
	return u
}

// UpdateBusinessName sets the "business_name" field to the value that was provided on create.
func (u *ScrapingQueueUpsert) UpdateBusinessName() *ScrapingQueueUpsert {
	u.SetExcluded(scrapingqueue.FieldBusinessName)
	return u
}

// SetPhone sets the "phone" field.
func (u *ScrapingQueueUpsert) SetPhone(v string) *ScrapingQueueUpsert {
	u.Set(scrapingqueue.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ScrapingQueueUpsert) UpdatePhone() *ScrapingQueueUpsert {
	u.SetExcluded(scrapingqueue.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *ScrapingQueueUpsert) ClearPhone() *ScrapingQueueUpsert {
	u.SetNull(scrapingqueue.FieldPhone)
	return u
}

// SetAddress sets the "address" field.
func (u *ScrapingQueueUpsert) SetAddress(v string) *ScrapingQueueUpsert {
	u.Set(scrapingqueue.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *ScrapingQueueUpsert) UpdateAddress() *ScrapingQueueUpsert {
	u.SetExcluded(scrapingqueue.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *ScrapingQueueUpsert) ClearAddress() *ScrapingQueueUpsert {
	u.SetNull(scrapingqueue.FieldAddress)
	return u
}

// SetCity sets the "city" field.
func (u *ScrapingQueueUpsert) SetCity(v string) *ScrapingQueueUpsert {
	u.Set(scrapingqueue.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ScrapingQueueUpsert) UpdateCity() *ScrapingQueueUpsert {
	u.SetExcluded(scrapingqueue.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *ScrapingQueueUpsert) ClearCity() *ScrapingQueueUpsert {
	u.SetNull(scrapingqueue.FieldCity)
	return u
}

// SetState sets the "state" field.
func (u *ScrapingQueueUpsert) SetState(v string) *ScrapingQueueUpsert {
	u.Set(scrapingqueue.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ScrapingQueueUpsert) UpdateState() *ScrapingQueueUpsert {
	u.SetExcluded(scrapingqueue.FieldState)
	return u
}

// ClearState clears the value of the "state" field.
func (u *ScrapingQueueUpsert) ClearState() *ScrapingQueueUpsert {
	u.SetNull(scrapingqueue.FieldState)
	return u
}

// SetRating sets the "rating" field.
func (u *ScrapingQueueUpsert) SetRating(v float64) *ScrapingQueueUpsert {
	u.Set(scrapingqueue.FieldRating, v)
	return u
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *ScrapingQueueUpsert) UpdateRating() *ScrapingQueueUpsert {
	u.SetExcluded(scrapingqueue.FieldRating)
	return u
}

// AddRating adds v to the "rating" field.
func (u *ScrapingQueueUpsert) AddRating(v float64) *ScrapingQueueUpsert {
	u.Add(scrapingqueue.FieldRating, v)
	return u
}

// ClearRating clears the value of the "rating" field.
func (u *ScrapingQueueUpsert) ClearRating() *ScrapingQueueUpsert {
	u.SetNull(scrapingqueue.FieldRating)
	return u
}

// SetReviewsCount sets the "reviews_count" field.
func (u *ScrapingQueueUpsert) SetReviewsCount(v int) *ScrapingQueueUpsert {
	u.Set(scrapingqueue.FieldReviewsCount, v)
	return u
}

// UpdateReviewsCount sets the "reviews_count" field to the value that was provided on create.
func (u *ScrapingQueueUpsert) UpdateReviewsCount() *ScrapingQueueUpsert {
	u.SetExcluded(scrapingqueue.FieldReviewsCount)
	return u
}

// AddReviewsCount adds v to the "reviews_count" field.
func (u *ScrapingQueueUpsert) AddReviewsCount(v int) *ScrapingQueueUpsert {
	u.Add(scrapingqueue.FieldReviewsCount, v)
	return u
}

// SetWebsite sets the "website" field.
func (u *ScrapingQueueUpsert) SetWebsite(v string) *ScrapingQueueUpsert {
	u.Set(scrapingqueue.FieldWebsite, v)
	return u
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *ScrapingQueueUpsert) UpdateWebsite() *ScrapingQueueUpsert {
	u.SetExcluded(scrapingqueue.FieldWebsite)
	return u
}

// ClearWebsite clears the value of the "website" field.
func (u *ScrapingQueueUpsert) ClearWebsite() *ScrapingQueueUpsert {
	u.SetNull(scrapingqueue.FieldWebsite)
	return u
}

// SetStatus sets the "status" field.
func (u *ScrapingQueueUpsert) SetStatus(v scrapingqueue.Status) *ScrapingQueueUpsert {
	u.Set(scrapingqueue.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScrapingQueueUpsert) UpdateStatus() *ScrapingQueueUpsert {
	u.SetExcluded(scrapingqueue.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ScrapingQueue.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ScrapingQueueUpsertOne) UpdateNewValues() *ScrapingQueueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(scrapingqueue.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScrapingQueue.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScrapingQueueUpsertOne) Ignore() *ScrapingQueueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScrapingQueueUpsertOne) DoNothing() *ScrapingQueueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScrapingQueueCreate.OnConflict
// documentation for more info.
func (u *ScrapingQueueUpsertOne) Update(set func(*ScrapingQueueUpsert)) *ScrapingQueueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScrapingQueueUpsert{UpdateSet: update})
	}))
	return u
}

// SetGooglePlaceID sets the "google_place_id" field.
func (u *ScrapingQueueUpsertOne) SetGooglePlaceID(v string) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetGooglePlaceID(v)
	})
}

// UpdateGooglePlaceID sets the "google_place_id" field to the value that was provided on create.
func (u *ScrapingQueueUpsertOne) UpdateGooglePlaceID() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateGooglePlaceID()
	})
}

// SetProduct sets the "product" field.
func (u *ScrapingQueueUpsertOne) SetProduct(v product.Line) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetProduct(v)
	})
}

// UpdateProduct sets the "product" field to the value that was provided on create.
func (u *ScrapingQueueUpsertOne) UpdateProduct() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateProduct()
	})
}

// SetBusinessName sets the "business_name" field.
func (u *ScrapingQueueUpsertOne) SetBusinessName(v string) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetBusinessName(v)
	})
}

// UpdateBusinessName sets the "business_name" field to the value that was provided on create.
func (u *ScrapingQueueUpsertOne) UpdateBusinessName() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateBusinessName()
	})
}

// SetPhone sets the "phone" field.
func (u *ScrapingQueueUpsertOne) SetPhone(v string) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ScrapingQueueUpsertOne) UpdatePhone() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *ScrapingQueueUpsertOne) ClearPhone() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *ScrapingQueueUpsertOne) SetAddress(v string) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *ScrapingQueueUpsertOne) UpdateAddress() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *ScrapingQueueUpsertOne) ClearAddress() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.ClearAddress()
	})
}

// SetCity sets the "city" field.
func (u *ScrapingQueueUpsertOne) SetCity(v string) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ScrapingQueueUpsertOne) UpdateCity() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *ScrapingQueueUpsertOne) ClearCity() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.ClearCity()
	})
}

// SetState sets the "state" field.
func (u *ScrapingQueueUpsertOne) SetState(v string) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ScrapingQueueUpsertOne) UpdateState() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *ScrapingQueueUpsertOne) ClearState() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.ClearState()
	})
}

// SetRating sets the "rating" field.
func (u *ScrapingQueueUpsertOne) SetRating(v float64) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *ScrapingQueueUpsertOne) AddRating(v float64) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *ScrapingQueueUpsertOne) UpdateRating() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateRating()
	})
}

// ClearRating clears the value of the "rating" field.
func (u *ScrapingQueueUpsertOne) ClearRating() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.ClearRating()
	})
}

// SetReviewsCount sets the "reviews_count" field.
func (u *ScrapingQueueUpsertOne) SetReviewsCount(v int) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetReviewsCount(v)
	})
}

// AddReviewsCount adds v to the "reviews_count" field.
func (u *ScrapingQueueUpsertOne) AddReviewsCount(v int) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.AddReviewsCount(v)
	})
}

// UpdateReviewsCount sets the "reviews_count" field to the value that was provided on create.
func (u *ScrapingQueueUpsertOne) UpdateReviewsCount() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateReviewsCount()
	})
}

// SetWebsite sets the "website" field.
func (u *ScrapingQueueUpsertOne) SetWebsite(v string) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *ScrapingQueueUpsertOne) UpdateWebsite() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateWebsite()
	})
}

// ClearWebsite clears the value of the "website" field.
func (u *ScrapingQueueUpsertOne) ClearWebsite() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.ClearWebsite()
	})
}

// SetStatus sets the "status" field.
func (u *ScrapingQueueUpsertOne) SetStatus(v scrapingqueue.Status) *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScrapingQueueUpsertOne) UpdateStatus() *ScrapingQueueUpsertOne {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *ScrapingQueueUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScrapingQueueCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScrapingQueueUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScrapingQueueUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScrapingQueueUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScrapingQueueCreateBulk is the builder for creating many ScrapingQueue entities in bulk.
type ScrapingQueueCreateBulk struct {
	config
	err      error
	builders []*ScrapingQueueCreate
	conflict []sql.ConflictOption
}

// Save creates the ScrapingQueue entities in the database.
func (_c *ScrapingQueueCreateBulk) Save(ctx context.Context) ([]*ScrapingQueue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScrapingQueue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScrapingQueueMutation)
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
func (_c *ScrapingQueueCreateBulk) SaveX(ctx context.Context) []*ScrapingQueue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScrapingQueueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScrapingQueueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScrapingQueue.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScrapingQueueUpsert) {
//			SetGooglePlaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScrapingQueueCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScrapingQueueUpsertBulk {
	_c.conflict = opts
	return &ScrapingQueueUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScrapingQueue.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScrapingQueueCreateBulk) OnConflictColumns(columns ...string) *ScrapingQueueUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScrapingQueueUpsertBulk{
		create: _c,
	}
}

// ScrapingQueueUpsertBulk is the builder for "upsert"-ing
// a bulk of ScrapingQueue nodes.
type ScrapingQueueUpsertBulk struct {
	create *ScrapingQueueCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScrapingQueue.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ScrapingQueueUpsertBulk) UpdateNewValues() *ScrapingQueueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(scrapingqueue.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScrapingQueue.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScrapingQueueUpsertBulk) Ignore() *ScrapingQueueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScrapingQueueUpsertBulk) DoNothing() *ScrapingQueueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScrapingQueueCreateBulk.OnConflict
// documentation for more info.
func (u *ScrapingQueueUpsertBulk) Update(set func(*ScrapingQueueUpsert)) *ScrapingQueueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScrapingQueueUpsert{UpdateSet: update})
	}))
	return u
}

// SetGooglePlaceID sets the "google_place_id" field.
func (u *ScrapingQueueUpsertBulk) SetGooglePlaceID(v string) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetGooglePlaceID(v)
	})
}

// UpdateGooglePlaceID sets the "google_place_id" field to the value that was provided on create.
func (u *ScrapingQueueUpsertBulk) UpdateGooglePlaceID() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateGooglePlaceID()
	})
}

// SetProduct sets the "product" field.
func (u *ScrapingQueueUpsertBulk) SetProduct(v product.Line) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetProduct(v)
	})
}

// UpdateProduct sets the "product" field to the value that was provided on create.
func (u *ScrapingQueueUpsertBulk) UpdateProduct() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateProduct()
	})
}

// SetBusinessName sets the "business_name" field.
func (u *ScrapingQueueUpsertBulk) SetBusinessName(v string) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetBusinessName(v)
	})
}

// UpdateBusinessName sets the "business_name" field to the value that was provided on create.
func (u *ScrapingQueueUpsertBulk) UpdateBusinessName() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateBusinessName()
	})
}

// SetPhone sets the "phone" field.
func (u *ScrapingQueueUpsertBulk) SetPhone(v string) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ScrapingQueueUpsertBulk) UpdatePhone() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *ScrapingQueueUpsertBulk) ClearPhone() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *ScrapingQueueUpsertBulk) SetAddress(v string) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *ScrapingQueueUpsertBulk) UpdateAddress() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *ScrapingQueueUpsertBulk) ClearAddress() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.ClearAddress()
	})
}

// SetCity sets the "city" field.
func (u *ScrapingQueueUpsertBulk) SetCity(v string) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ScrapingQueueUpsertBulk) UpdateCity() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *ScrapingQueueUpsertBulk) ClearCity() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.ClearCity()
	})
}

// SetState sets the "state" field.
func (u *ScrapingQueueUpsertBulk) SetState(v string) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ScrapingQueueUpsertBulk) UpdateState() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *ScrapingQueueUpsertBulk) ClearState() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.ClearState()
	})
}

// SetRating sets the "rating" field.
func (u *ScrapingQueueUpsertBulk) SetRating(v float64) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *ScrapingQueueUpsertBulk) AddRating(v float64) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *ScrapingQueueUpsertBulk) UpdateRating() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateRating()
	})
}

// ClearRating clears the value of the "rating" field.
func (u *ScrapingQueueUpsertBulk) ClearRating() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.ClearRating()
	})
}

// SetReviewsCount sets the "reviews_count" field.
func (u *ScrapingQueueUpsertBulk) SetReviewsCount(v int) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetReviewsCount(v)
	})
}

// AddReviewsCount adds v to the "reviews_count" field.
func (u *ScrapingQueueUpsertBulk) AddReviewsCount(v int) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.AddReviewsCount(v)
	})
}

// UpdateReviewsCount sets the "reviews_count" field to the value that was provided on create.
func (u *ScrapingQueueUpsertBulk) UpdateReviewsCount() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateReviewsCount()
	})
}

// SetWebsite sets the "website" field.
func (u *ScrapingQueueUpsertBulk) SetWebsite(v string) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *ScrapingQueueUpsertBulk) UpdateWebsite() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateWebsite()
	})
}

// ClearWebsite clears the value of the "website" field.
func (u *ScrapingQueueUpsertBulk) ClearWebsite() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.ClearWebsite()
	})
}

// SetStatus sets the "status" field.
func (u *ScrapingQueueUpsertBulk) SetStatus(v scrapingqueue.Status) *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScrapingQueueUpsertBulk) UpdateStatus() *ScrapingQueueUpsertBulk {
	return u.Update(func(s *ScrapingQueueUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *ScrapingQueueUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScrapingQueueCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScrapingQueueCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScrapingQueueUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
