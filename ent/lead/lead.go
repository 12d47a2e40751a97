// Code generated by ent, DO NOT EDIT.

package lead

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/scoring"
)

const (
	// Label holds the string label denoting the lead type in the database.
	Label = "lead"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldProduct holds the string denoting the product field in the database.
	FieldProduct = "product"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldCompanySize holds the string denoting the company_size field in the database.
	FieldCompanySize = "company_size"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldAssignedAgent holds the string denoting the assigned_agent field in the database.
	FieldAssignedAgent = "assigned_agent"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldGooglePlaceID holds the string denoting the google_place_id field in the database.
	FieldGooglePlaceID = "google_place_id"
	// FieldPainPoints holds the string denoting the pain_points field in the database.
	FieldPainPoints = "pain_points"
	// FieldObjections holds the string denoting the objections field in the database.
	FieldObjections = "objections"
	// FieldLastContactAt holds the string denoting the last_contact_at field in the database.
	FieldLastContactAt = "last_contact_at"
	// FieldNextFollowupAt holds the string denoting the next_followup_at field in the database.
	FieldNextFollowupAt = "next_followup_at"
	// FieldFollowupCount holds the string denoting the followup_count field in the database.
	FieldFollowupCount = "followup_count"
	// FieldWonPlan holds the string denoting the won_plan field in the database.
	FieldWonPlan = "won_plan"
	// FieldWonAmountCents holds the string denoting the won_amount_cents field in the database.
	FieldWonAmountCents = "won_amount_cents"
	// FieldWonAt holds the string denoting the won_at field in the database.
	FieldWonAt = "won_at"
	// FieldLostAt holds the string denoting the lost_at field in the database.
	FieldLostAt = "lost_at"
	// FieldLostReason holds the string denoting the lost_reason field in the database.
	FieldLostReason = "lost_reason"
	// FieldAiCostCents holds the string denoting the ai_cost_cents field in the database.
	FieldAiCostCents = "ai_cost_cents"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeConversations holds the string denoting the conversations edge name in mutations.
	EdgeConversations = "conversations"
	// Table holds the table name of the lead in the database.
	Table = "leads"
	// ConversationsTable is the table that holds the conversations relation/edge.
	ConversationsTable = "conversations"
	// ConversationsInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationsInverseTable = "conversations"
	// ConversationsColumn is the table column denoting the conversations relation/edge.
	ConversationsColumn = "lead_id"
)

// Columns holds all SQL columns for lead fields.
var Columns = []string{
	FieldID,
	FieldPhone,
	FieldProduct,
	FieldName,
	FieldCompanyName,
	FieldCompanySize,
	FieldEmail,
	FieldCity,
	FieldState,
	FieldStage,
	FieldScore,
	FieldAssignedAgent,
	FieldSource,
	FieldGooglePlaceID,
	FieldPainPoints,
	FieldObjections,
	FieldLastContactAt,
	FieldNextFollowupAt,
	FieldFollowupCount,
	FieldWonPlan,
	FieldWonAmountCents,
	FieldWonAt,
	FieldLostAt,
	FieldLostReason,
	FieldAiCostCents,
	FieldMetadata,
	FieldVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
	// DefaultFollowupCount holds the default value on creation for the "followup_count" field.
	DefaultFollowupCount int
	// FollowupCountValidator is a validator for the "followup_count" field. It is called by the builders before save.
	FollowupCountValidator func(int) error
	// DefaultAiCostCents holds the default value on creation for the "ai_cost_cents" field.
	DefaultAiCostCents float64
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ProductValidator is a validator for the "product" field enum values. It is called by the builders before save.
func ProductValidator(pr product.Line) error {
	switch pr {
	case "occhiale", "ekkle":
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for product field: %q", pr)
	}
}

// CompanySizeValidator is a validator for the "company_size" field enum values. It is called by the builders before save.
func CompanySizeValidator(cs scoring.Size) error {
	switch cs {
	case "micro", "small", "medium", "large":
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for company_size field: %q", cs)
	}
}

const DefaultStage pipeline.Stage = "new"

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s pipeline.Stage) error {
	switch s {
	case "scraped", "new", "contacted", "qualifying", "qualified", "presenting", "negotiating", "won", "lost", "active", "churned", "nurturing":
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for stage field: %q", s)
	}
}

const DefaultAssignedAgent pipeline.Role = "hunter"

// AssignedAgentValidator is a validator for the "assigned_agent" field enum values. It is called by the builders before save.
func AssignedAgentValidator(aa pipeline.Role) error {
	switch aa {
	case "hunter", "closer", "onboarding", "cs", "human":
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for assigned_agent field: %q", aa)
	}
}

// Source defines the type for the "source" enum field.
type Source string

// SourceInboundWhatsapp is the default value of the Source enum.
const DefaultSource = SourceInboundWhatsapp

// Source values.
const (
	SourceInboundWhatsapp Source = "inbound_whatsapp"
	SourceScraper         Source = "scraper"
	SourceManual          Source = "manual"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceInboundWhatsapp, SourceScraper, SourceManual:
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the Lead queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByProduct orders the results by the product field.
func ByProduct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProduct, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByCompanySize orders the results by the company_size field.
func ByCompanySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanySize, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByAssignedAgent orders the results by the assigned_agent field.
func ByAssignedAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAgent, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByGooglePlaceID orders the results by the google_place_id field.
func ByGooglePlaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGooglePlaceID, opts...).ToFunc()
}

// ByLastContactAt orders the results by the last_contact_at field.
func ByLastContactAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastContactAt, opts...).ToFunc()
}

// ByNextFollowupAt orders the results by the next_followup_at field.
func ByNextFollowupAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextFollowupAt, opts...).ToFunc()
}

// ByFollowupCount orders the results by the followup_count field.
func ByFollowupCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowupCount, opts...).ToFunc()
}

// ByWonPlan orders the results by the won_plan field.
func ByWonPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWonPlan, opts...).ToFunc()
}

// ByWonAmountCents orders the results by the won_amount_cents field.
func ByWonAmountCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWonAmountCents, opts...).ToFunc()
}

// ByWonAt orders the results by the won_at field.
func ByWonAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWonAt, opts...).ToFunc()
}

// ByLostAt orders the results by the lost_at field.
func ByLostAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLostAt, opts...).ToFunc()
}

// ByLostReason orders the results by the lost_reason field.
func ByLostReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLostReason, opts...).ToFunc()
}

// ByAiCostCents orders the results by the ai_cost_cents field.
func ByAiCostCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiCostCents, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByConversationsCount orders the results by conversations count.
func ByConversationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConversationsStep(), opts...)
	}
}

// ByConversations orders the results by conversations terms.
func ByConversations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newConversationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
	)
}
