package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// ScrapingQueue records every place returned by the Places API so the same
// business is never ingested twice.
type ScrapingQueue struct {
	ent.Schema
}

// Fields of the ScrapingQueue.
func (ScrapingQueue) Fields() []ent.Field {
	return []ent.Field{
		field.String("google_place_id").
			NotEmpty().
			Unique(),
		field.Enum("product").
			GoType(product.Line("")),
		field.String("business_name"),
		field.String("phone").
			Optional(),
		field.String("address").
			Optional(),
		field.String("city").
			Optional(),
		field.String("state").
			Optional(),
		field.Float("rating").
			Optional(),
		field.Int("reviews_count").
			Default(0),
		field.String("website").
			Optional(),
		field.Enum("status").
			Values("ready", "no_phone", "imported").
			Default("ready"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ScrapingQueue.
func (ScrapingQueue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("product", "status"),
	}
}
