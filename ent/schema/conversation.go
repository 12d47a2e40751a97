package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// Conversation holds one append-only message or audit row of a lead.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Immutable(),
		field.Enum("product").
			GoType(product.Line("")).
			Immutable(),
		field.Enum("direction").
			Values("inbound", "outbound").
			Immutable(),
		field.Enum("kind").
			Values("message", "audit").
			Default("message").
			Immutable().
			Comment("audit rows record tool executions and are not sent to the LLM"),
		field.Text("content").
			Immutable(),
		field.String("agent").
			Default("system").
			Immutable(),
		field.Strings("tools_called").
			Optional().
			Immutable(),
		field.String("intent").
			Optional().
			Immutable(),
		field.String("objection").
			Optional().
			Immutable(),
		field.Int("tokens_input").
			Default(0).
			Immutable(),
		field.Int("tokens_output").
			Default(0).
			Immutable(),
		field.Float("cost_cents").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("conversations").
			Field("lead_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "created_at"),
		index.Fields("product", "created_at"),
	}
}
