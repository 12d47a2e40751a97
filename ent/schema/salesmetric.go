package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// SalesMetric is the daily aggregate per product line.
type SalesMetric struct {
	ent.Schema
}

// Fields of the SalesMetric.
func (SalesMetric) Fields() []ent.Field {
	return []ent.Field{
		field.String("date").
			NotEmpty().
			Comment("Local day, YYYY-MM-DD (America/Sao_Paulo)"),
		field.Enum("product").
			GoType(product.Line("")),
		field.Int("leads_created").
			Default(0),
		field.Int("messages_sent").
			Default(0),
		field.Int("deals_won").
			Default(0),
		field.Int("revenue_cents").
			Default(0),
		field.Float("ai_cost_cents").
			Default(0),
		field.Int("escalations").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SalesMetric.
func (SalesMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date", "product").Unique(),
	}
}
