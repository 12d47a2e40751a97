package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/scoring"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("phone").
			NotEmpty().
			Comment("Digits only, international form (55...)"),
		field.Enum("product").
			GoType(product.Line("")).
			Comment("Product line the lead belongs to"),
		field.String("name").
			Optional(),
		field.String("company_name").
			Optional(),
		field.Enum("company_size").
			GoType(scoring.Size("")).
			Optional(),
		field.String("email").
			Optional(),
		field.String("city").
			Optional(),
		field.String("state").
			Optional().
			MaxLen(2),
		field.Enum("stage").
			GoType(pipeline.Stage("")).
			Default(string(pipeline.StageNew)).
			Comment("Pipeline position"),
		field.Int("score").
			Default(0).
			Min(0).
			Max(100),
		field.Enum("assigned_agent").
			GoType(pipeline.Role("")).
			Default(string(pipeline.RoleHunter)),
		field.Enum("source").
			Values("inbound_whatsapp", "scraper", "manual").
			Default("inbound_whatsapp"),
		field.String("google_place_id").
			Optional(),
		field.Strings("pain_points").
			Optional(),
		field.Strings("objections").
			Optional(),
		field.Time("last_contact_at").
			Optional().
			Nillable(),
		field.Time("next_followup_at").
			Optional().
			Nillable(),
		field.Int("followup_count").
			Default(0).
			NonNegative(),
		field.String("won_plan").
			Optional(),
		field.Int("won_amount_cents").
			Optional().
			Nillable(),
		field.Time("won_at").
			Optional().
			Nillable(),
		field.Time("lost_at").
			Optional().
			Nillable(),
		field.String("lost_reason").
			Optional(),
		field.Float("ai_cost_cents").
			Default(0).
			Comment("Accumulated LLM cost for this lead"),
		field.JSON("metadata", models.LeadMetadata{}).
			Optional().
			Comment("Typed sub-records: onboarding, NPS, nurture, payment..."),
		field.Int("version").
			Default(1).
			Comment("Optimistic concurrency token, incremented on every update"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("conversations", Conversation.Type).
			Comment("Inbound, outbound and audit rows for this lead"),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		// One lead per phone per product line
		index.Fields("phone", "product").Unique(),

		// Cron scans
		index.Fields("stage", "next_followup_at"),
		index.Fields("product", "stage"),
		index.Fields("stage", "last_contact_at"),
	}
}
