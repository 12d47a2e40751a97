// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/salesagent/ent/scrapingqueue"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// ScrapingQueue is the model entity for the ScrapingQueue schema.
type ScrapingQueue struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// GooglePlaceID holds the value of the "google_place_id" field.
	GooglePlaceID string `json:"google_place_id,omitempty"`
	// Product holds the value of the "product" field.
	Product product.Line `json:"product,omitempty"`
	// BusinessName holds the value of the "business_name" field.
	BusinessName string `json:"business_name,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating float64 `json:"rating,omitempty"`
	// ReviewsCount holds the value of the "reviews_count" field.
	ReviewsCount int `json:"reviews_count,omitempty"`
	// Website holds the value of the "website" field.
	Website string `json:"website,omitempty"`
	// Status holds the value of the "status" field.
	Status scrapingqueue.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScrapingQueue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scrapingqueue.FieldRating:
			values[i] = new(sql.NullFloat64)
		case scrapingqueue.FieldID, scrapingqueue.FieldReviewsCount:
			values[i] = new(sql.NullInt64)
		case scrapingqueue.FieldGooglePlaceID, scrapingqueue.FieldProduct, scrapingqueue.FieldBusinessName, scrapingqueue.FieldPhone, scrapingqueue.FieldAddress, scrapingqueue.FieldCity, scrapingqueue.FieldState, scrapingqueue.FieldWebsite, scrapingqueue.FieldStatus:
			values[i] = new(sql.NullString)
		case scrapingqueue.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScrapingQueue fields.
func (_m *ScrapingQueue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scrapingqueue.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scrapingqueue.FieldGooglePlaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field google_place_id", values[i])
			} else if value.Valid {
				_m.GooglePlaceID = value.String
			}
		case scrapingqueue.FieldProduct:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product", values[i])
			} else if value.Valid {
				_m.Product = product.Line(value.String)
			}
		case scrapingqueue.FieldBusinessName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_name", values[i])
			} else if value.Valid {
				_m.BusinessName = value.String
			}
		case scrapingqueue.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case scrapingqueue.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case scrapingqueue.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case scrapingqueue.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case scrapingqueue.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = value.Float64
			}
		case scrapingqueue.FieldReviewsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reviews_count", values[i])
			} else if value.Valid {
				_m.ReviewsCount = int(value.Int64)
			}
		case scrapingqueue.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = value.String
			}
		case scrapingqueue.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scrapingqueue.Status(value.String)
			}
		case scrapingqueue.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScrapingQueue.
// This includes values selected through modifiers, order, etc.
func (_m *ScrapingQueue) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScrapingQueue.
// Note that you need to call ScrapingQueue.Unwrap() before calling this method if this ScrapingQueue
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScrapingQueue) Update() *ScrapingQueueUpdateOne {
	return NewScrapingQueueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScrapingQueue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScrapingQueue) Unwrap() *ScrapingQueue {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScrapingQueue is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScrapingQueue) String() string {
	var builder strings.Builder
	builder.WriteString("ScrapingQueue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("google_place_id=")
	builder.WriteString(_m.GooglePlaceID)
	builder.WriteString(", ")
	builder.WriteString("product=")
	builder.WriteString(fmt.Sprintf("%v", _m.Product))
	builder.WriteString(", ")
	builder.WriteString("business_name=")
	builder.WriteString(_m.BusinessName)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("reviews_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewsCount))
	builder.WriteString(", ")
	builder.WriteString("website=")
	builder.WriteString(_m.Website)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScrapingQueues is a parsable slice of ScrapingQueue.
type ScrapingQueues []*ScrapingQueue
