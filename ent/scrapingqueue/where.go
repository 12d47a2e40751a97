// Code generated by ent, DO NOT EDIT.

package scrapingqueue

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/salesagent/ent/predicate"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLTE(FieldID, id))
}

// GooglePlaceID applies equality check predicate on the "google_place_id" field. It's identical to GooglePlaceIDEQ.
func GooglePlaceID(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldGooglePlaceID, v))
}

// BusinessName applies equality check predicate on the "business_name" field. It's identical to BusinessNameEQ.
func BusinessName(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldBusinessName, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldPhone, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldAddress, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldCity, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldState, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v float64) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldRating, v))
}

// ReviewsCount applies equality check predicate on the "reviews_count" field. It's identical to ReviewsCountEQ.
func ReviewsCount(v int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldReviewsCount, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldWebsite, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldCreatedAt, v))
}

// GooglePlaceIDEQ applies the EQ predicate on the "google_place_id" field.
func GooglePlaceIDEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldGooglePlaceID, v))
}

// GooglePlaceIDNEQ applies the NEQ predicate on the "google_place_id" field.
func GooglePlaceIDNEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldGooglePlaceID, v))
}

// GooglePlaceIDIn applies the In predicate on the "google_place_id" field.
func GooglePlaceIDIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIn(FieldGooglePlaceID, vs...))
}

// GooglePlaceIDNotIn applies the NotIn predicate on the "google_place_id" field.
func GooglePlaceIDNotIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldGooglePlaceID, vs...))
}

// GooglePlaceIDGT applies the GT predicate on the "google_place_id" field.
func GooglePlaceIDGT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGT(FieldGooglePlaceID, v))
}

// GooglePlaceIDGTE applies the GTE predicate on the "google_place_id" field.
func GooglePlaceIDGTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGTE(FieldGooglePlaceID, v))
}

// GooglePlaceIDLT applies the LT predicate on the "google_place_id" field.
func GooglePlaceIDLT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLT(FieldGooglePlaceID, v))
}

// GooglePlaceIDLTE applies the LTE predicate on the "google_place_id" field.
func GooglePlaceIDLTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLTE(FieldGooglePlaceID, v))
}

// GooglePlaceIDContains applies the Contains predicate on the "google_place_id" field.
func GooglePlaceIDContains(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContains(FieldGooglePlaceID, v))
}

// GooglePlaceIDHasPrefix applies the HasPrefix predicate on the "google_place_id" field.
func GooglePlaceIDHasPrefix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasPrefix(FieldGooglePlaceID, v))
}

// GooglePlaceIDHasSuffix applies the HasSuffix predicate on the "google_place_id" field.
func GooglePlaceIDHasSuffix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasSuffix(FieldGooglePlaceID, v))
}

// GooglePlaceIDEqualFold applies the EqualFold predicate on the "google_place_id" field.
func GooglePlaceIDEqualFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEqualFold(FieldGooglePlaceID, v))
}

// GooglePlaceIDContainsFold applies the ContainsFold predicate on the "google_place_id" field.
func GooglePlaceIDContainsFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContainsFold(FieldGooglePlaceID, v))
}

// ProductEQ applies the EQ predicate on the "product" field.
func ProductEQ(v product.Line) predicate.ScrapingQueue {
	vc := v
	return predicate.ScrapingQueue(sql.FieldEQ(FieldProduct, vc))
}

// ProductNEQ applies the NEQ predicate on the "product" field.
func ProductNEQ(v product.Line) predicate.ScrapingQueue {
	vc := v
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldProduct, vc))
}

// ProductIn applies the In predicate on the "product" field.
func ProductIn(vs ...product.Line) predicate.ScrapingQueue {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ScrapingQueue(sql.FieldIn(FieldProduct, v...))
}

// ProductNotIn applies the NotIn predicate on the "product" field.
func ProductNotIn(vs ...product.Line) predicate.ScrapingQueue {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldProduct, v...))
}

// BusinessNameEQ applies the EQ predicate on the "business_name" field.
func BusinessNameEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldBusinessName, v))
}

// BusinessNameNEQ applies the NEQ predicate on the "business_name" field.
func BusinessNameNEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldBusinessName, v))
}

// BusinessNameIn applies the In predicate on the "business_name" field.
func BusinessNameIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIn(FieldBusinessName, vs...))
}

// BusinessNameNotIn applies the NotIn predicate on the "business_name" field.
func BusinessNameNotIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldBusinessName, vs...))
}

// BusinessNameGT applies the GT predicate on the "business_name" field.
func BusinessNameGT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGT(FieldBusinessName, v))
}

// BusinessNameGTE applies the GTE predicate on the "business_name" field.
func BusinessNameGTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGTE(FieldBusinessName, v))
}

// BusinessNameLT applies the LT predicate on the "business_name" field.
func BusinessNameLT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLT(FieldBusinessName, v))
}

// BusinessNameLTE applies the LTE predicate on the "business_name" field.
func BusinessNameLTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLTE(FieldBusinessName, v))
}

// BusinessNameContains applies the Contains predicate on the "business_name" field.
func BusinessNameContains(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContains(FieldBusinessName, v))
}

// BusinessNameHasPrefix applies the HasPrefix predicate on the "business_name" field.
func BusinessNameHasPrefix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasPrefix(FieldBusinessName, v))
}

// BusinessNameHasSuffix applies the HasSuffix predicate on the "business_name" field.
func BusinessNameHasSuffix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasSuffix(FieldBusinessName, v))
}

// BusinessNameEqualFold applies the EqualFold predicate on the "business_name" field.
func BusinessNameEqualFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEqualFold(FieldBusinessName, v))
}

// BusinessNameContainsFold applies the ContainsFold predicate on the "business_name" field.
func BusinessNameContainsFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContainsFold(FieldBusinessName, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContainsFold(FieldPhone, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContainsFold(FieldAddress, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContainsFold(FieldCity, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasSuffix(FieldState, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotNull(FieldState))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContainsFold(FieldState, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v float64) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v float64) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...float64) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...float64) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v float64) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v float64) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v float64) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v float64) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLTE(FieldRating, v))
}

// RatingIsNil applies the IsNil predicate on the "rating" field.
func RatingIsNil() predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIsNull(FieldRating))
}

// RatingNotNil applies the NotNil predicate on the "rating" field.
func RatingNotNil() predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotNull(FieldRating))
}

// ReviewsCountEQ applies the EQ predicate on the "reviews_count" field.
func ReviewsCountEQ(v int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldReviewsCount, v))
}

// ReviewsCountNEQ applies the NEQ predicate on the "reviews_count" field.
func ReviewsCountNEQ(v int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldReviewsCount, v))
}

// ReviewsCountIn applies the In predicate on the "reviews_count" field.
func ReviewsCountIn(vs ...int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIn(FieldReviewsCount, vs...))
}

// ReviewsCountNotIn applies the NotIn predicate on the "reviews_count" field.
func ReviewsCountNotIn(vs ...int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldReviewsCount, vs...))
}

// ReviewsCountGT applies the GT predicate on the "reviews_count" field.
func ReviewsCountGT(v int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGT(FieldReviewsCount, v))
}

// ReviewsCountGTE applies the GTE predicate on the "reviews_count" field.
func ReviewsCountGTE(v int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGTE(FieldReviewsCount, v))
}

// ReviewsCountLT applies the LT predicate on the "reviews_count" field.
func ReviewsCountLT(v int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLT(FieldReviewsCount, v))
}

// ReviewsCountLTE applies the LTE predicate on the "reviews_count" field.
func ReviewsCountLTE(v int) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLTE(FieldReviewsCount, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteIsNil applies the IsNil predicate on the "website" field.
func WebsiteIsNil() predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIsNull(FieldWebsite))
}

// WebsiteNotNil applies the NotNil predicate on the "website" field.
func WebsiteNotNil() predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotNull(FieldWebsite))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldContainsFold(FieldWebsite, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScrapingQueue) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScrapingQueue) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScrapingQueue) predicate.ScrapingQueue {
	return predicate.ScrapingQueue(sql.NotPredicates(p))
}
