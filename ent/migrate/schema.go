// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "product", Type: field.TypeEnum, Enums: []string{"occhiale", "ekkle"}},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"inbound", "outbound"}},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"message", "audit"}, Default: "message"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "agent", Type: field.TypeString, Default: "system"},
		{Name: "tools_called", Type: field.TypeJSON, Nullable: true},
		{Name: "intent", Type: field.TypeString, Nullable: true},
		{Name: "objection", Type: field.TypeString, Nullable: true},
		{Name: "tokens_input", Type: field.TypeInt, Default: 0},
		{Name: "tokens_output", Type: field.TypeInt, Default: 0},
		{Name: "cost_cents", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_leads_conversations",
				Columns:    []*schema.Column{ConversationsColumns[13]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_lead_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[13], ConversationsColumns[12]},
			},
			{
				Name:    "conversation_product_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[12]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "phone", Type: field.TypeString},
		{Name: "product", Type: field.TypeEnum, Enums: []string{"occhiale", "ekkle"}},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "company_size", Type: field.TypeEnum, Nullable: true, Enums: []string{"micro", "small", "medium", "large"}},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true, Size: 2},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"scraped", "new", "contacted", "qualifying", "qualified", "presenting", "negotiating", "won", "lost", "active", "churned", "nurturing"}, Default: "new"},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "assigned_agent", Type: field.TypeEnum, Enums: []string{"hunter", "closer", "onboarding", "cs", "human"}, Default: "hunter"},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"inbound_whatsapp", "scraper", "manual"}, Default: "inbound_whatsapp"},
		{Name: "google_place_id", Type: field.TypeString, Nullable: true},
		{Name: "pain_points", Type: field.TypeJSON, Nullable: true},
		{Name: "objections", Type: field.TypeJSON, Nullable: true},
		{Name: "last_contact_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_followup_at", Type: field.TypeTime, Nullable: true},
		{Name: "followup_count", Type: field.TypeInt, Default: 0},
		{Name: "won_plan", Type: field.TypeString, Nullable: true},
		{Name: "won_amount_cents", Type: field.TypeInt, Nullable: true},
		{Name: "won_at", Type: field.TypeTime, Nullable: true},
		{Name: "lost_at", Type: field.TypeTime, Nullable: true},
		{Name: "lost_reason", Type: field.TypeString, Nullable: true},
		{Name: "ai_cost_cents", Type: field.TypeFloat64, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_phone_product",
				Unique:  true,
				Columns: []*schema.Column{LeadsColumns[1], LeadsColumns[2]},
			},
			{
				Name:    "lead_stage_next_followup_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[9], LeadsColumns[17]},
			},
			{
				Name:    "lead_product_stage",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[2], LeadsColumns[9]},
			},
			{
				Name:    "lead_stage_last_contact_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[9], LeadsColumns[16]},
			},
		},
	}
	// SalesMetricsColumns holds the columns for the "sales_metrics" table.
	SalesMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "date", Type: field.TypeString},
		{Name: "product", Type: field.TypeEnum, Enums: []string{"occhiale", "ekkle"}},
		{Name: "leads_created", Type: field.TypeInt, Default: 0},
		{Name: "messages_sent", Type: field.TypeInt, Default: 0},
		{Name: "deals_won", Type: field.TypeInt, Default: 0},
		{Name: "revenue_cents", Type: field.TypeInt, Default: 0},
		{Name: "ai_cost_cents", Type: field.TypeFloat64, Default: 0},
		{Name: "escalations", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SalesMetricsTable holds the schema information for the "sales_metrics" table.
	SalesMetricsTable = &schema.Table{
		Name:       "sales_metrics",
		Columns:    SalesMetricsColumns,
		PrimaryKey: []*schema.Column{SalesMetricsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "salesmetric_date_product",
				Unique:  true,
				Columns: []*schema.Column{SalesMetricsColumns[1], SalesMetricsColumns[2]},
			},
		},
	}
	// ScrapingQueuesColumns holds the columns for the "scraping_queues" table.
	ScrapingQueuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "google_place_id", Type: field.TypeString, Unique: true},
		{Name: "product", Type: field.TypeEnum, Enums: []string{"occhiale", "ekkle"}},
		{Name: "business_name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "rating", Type: field.TypeFloat64, Nullable: true},
		{Name: "reviews_count", Type: field.TypeInt, Default: 0},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ready", "no_phone", "imported"}, Default: "ready"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ScrapingQueuesTable holds the schema information for the "scraping_queues" table.
	ScrapingQueuesTable = &schema.Table{
		Name:       "scraping_queues",
		Columns:    ScrapingQueuesColumns,
		PrimaryKey: []*schema.Column{ScrapingQueuesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scrapingqueue_product_status",
				Unique:  false,
				Columns: []*schema.Column{ScrapingQueuesColumns[2], ScrapingQueuesColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConversationsTable,
		LeadsTable,
		SalesMetricsTable,
		ScrapingQueuesTable,
	}
)

func init() {
	ConversationsTable.ForeignKeys[0].RefTable = LeadsTable
}
