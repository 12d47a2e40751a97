// Code generated by ent, DO NOT EDIT.

package scrapingqueue

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/salesagent/pkg/product"
)

const (
	// Label holds the string label denoting the scrapingqueue type in the database.
	Label = "scraping_queue"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGooglePlaceID holds the string denoting the google_place_id field in the database.
	FieldGooglePlaceID = "google_place_id"
	// FieldProduct holds the string denoting the product field in the database.
	FieldProduct = "product"
	// FieldBusinessName holds the string denoting the business_name field in the database.
	FieldBusinessName = "business_name"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldReviewsCount holds the string denoting the reviews_count field in the database.
	FieldReviewsCount = "reviews_count"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the scrapingqueue in the database.
	Table = "scraping_queues"
)

// Columns holds all SQL columns for scrapingqueue fields.
var Columns = []string{
	FieldID,
	FieldGooglePlaceID,
	FieldProduct,
	FieldBusinessName,
	FieldPhone,
	FieldAddress,
	FieldCity,
	FieldState,
	FieldRating,
	FieldReviewsCount,
	FieldWebsite,
	FieldStatus,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// GooglePlaceIDValidator is a validator for the "google_place_id" field. It is called by the builders before save.
	GooglePlaceIDValidator func(string) error
	// DefaultReviewsCount holds the default value on creation for the "reviews_count" field.
	DefaultReviewsCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ProductValidator is a validator for the "product" field enum values. It is called by the builders before save.
func ProductValidator(pr product.Line) error {
	switch pr {
	case "occhiale", "ekkle":
		return nil
	default:
		return fmt.Errorf("scrapingqueue: invalid enum value for product field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusReady is the default value of the Status enum.
const DefaultStatus = StatusReady

// Status values.
const (
	StatusReady    Status = "ready"
	StatusNoPhone  Status = "no_phone"
	StatusImported Status = "imported"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusReady, StatusNoPhone, StatusImported:
		return nil
	default:
		return fmt.Errorf("scrapingqueue: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ScrapingQueue queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGooglePlaceID orders the results by the google_place_id field.
func ByGooglePlaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGooglePlaceID, opts...).ToFunc()
}

// ByProduct orders the results by the product field.
func ByProduct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProduct, opts...).ToFunc()
}

// ByBusinessName orders the results by the business_name field.
func ByBusinessName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessName, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByReviewsCount orders the results by the reviews_count field.
func ByReviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewsCount, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
