// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/scoring"
)

// Lead is the model entity for the Lead schema.
type Lead struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Digits only, international form (55...)
	Phone string `json:"phone,omitempty"`
	// Product line the lead belongs to
	Product product.Line `json:"product,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CompanyName holds the value of the "company_name" field.
	CompanyName string `json:"company_name,omitempty"`
	// CompanySize holds the value of the "company_size" field.
	CompanySize scoring.Size `json:"company_size,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// Pipeline position
	Stage pipeline.Stage `json:"stage,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// AssignedAgent holds the value of the "assigned_agent" field.
	AssignedAgent pipeline.Role `json:"assigned_agent,omitempty"`
	// Source holds the value of the "source" field.
	Source lead.Source `json:"source,omitempty"`
	// GooglePlaceID holds the value of the "google_place_id" field.
	GooglePlaceID string `json:"google_place_id,omitempty"`
	// PainPoints holds the value of the "pain_points" field.
	PainPoints []string `json:"pain_points,omitempty"`
	// Objections holds the value of the "objections" field.
	Objections []string `json:"objections,omitempty"`
	// LastContactAt holds the value of the "last_contact_at" field.
	LastContactAt *time.Time `json:"last_contact_at,omitempty"`
	// NextFollowupAt holds the value of the "next_followup_at" field.
	NextFollowupAt *time.Time `json:"next_followup_at,omitempty"`
	// FollowupCount holds the value of the "followup_count" field.
	FollowupCount int `json:"followup_count,omitempty"`
	// WonPlan holds the value of the "won_plan" field.
	WonPlan string `json:"won_plan,omitempty"`
	// WonAmountCents holds the value of the "won_amount_cents" field.
	WonAmountCents *int `json:"won_amount_cents,omitempty"`
	// WonAt holds the value of the "won_at" field.
	WonAt *time.Time `json:"won_at,omitempty"`
	// LostAt holds the value of the "lost_at" field.
	LostAt *time.Time `json:"lost_at,omitempty"`
	// LostReason holds the value of the "lost_reason" field.
	LostReason string `json:"lost_reason,omitempty"`
	// Accumulated LLM cost for this lead
	AiCostCents float64 `json:"ai_cost_cents,omitempty"`
	// Typed sub-records: onboarding, NPS, nurture, payment...
	Metadata models.LeadMetadata `json:"metadata,omitempty"`
	// Optimistic concurrency token, incremented on every update
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeadQuery when eager-loading is set.
	Edges        LeadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeadEdges holds the relations/edges for other nodes in the graph.
type LeadEdges struct {
	// Inbound, outbound and audit rows for this lead
	Conversations []*Conversation `json:"conversations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e LeadEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[0] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lead) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lead.FieldPainPoints, lead.FieldObjections, lead.FieldMetadata:
			values[i] = new([]byte)
		case lead.FieldAiCostCents:
			values[i] = new(sql.NullFloat64)
		case lead.FieldID, lead.FieldScore, lead.FieldFollowupCount, lead.FieldWonAmountCents, lead.FieldVersion:
			values[i] = new(sql.NullInt64)
		case lead.FieldPhone, lead.FieldProduct, lead.FieldName, lead.FieldCompanyName, lead.FieldCompanySize, lead.FieldEmail, lead.FieldCity, lead.FieldState, lead.FieldStage, lead.FieldAssignedAgent, lead.FieldSource, lead.FieldGooglePlaceID, lead.FieldWonPlan, lead.FieldLostReason:
			values[i] = new(sql.NullString)
		case lead.FieldLastContactAt, lead.FieldNextFollowupAt, lead.FieldWonAt, lead.FieldLostAt, lead.FieldCreatedAt, lead.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lead fields.
func (_m *Lead) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lead.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lead.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case lead.FieldProduct:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product", values[i])
			} else if value.Valid {
				_m.Product = product.Line(value.String)
			}
		case lead.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case lead.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case lead.FieldCompanySize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_size", values[i])
			} else if value.Valid {
				_m.CompanySize = scoring.Size(value.String)
			}
		case lead.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case lead.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case lead.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case lead.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = pipeline.Stage(value.String)
			}
		case lead.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case lead.FieldAssignedAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_agent", values[i])
			} else if value.Valid {
				_m.AssignedAgent = pipeline.Role(value.String)
			}
		case lead.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = lead.Source(value.String)
			}
		case lead.FieldGooglePlaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field google_place_id", values[i])
			} else if value.Valid {
				_m.GooglePlaceID = value.String
			}
		case lead.FieldPainPoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pain_points", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PainPoints); err != nil {
					return fmt.Errorf("unmarshal field pain_points: %w", err)
				}
			}
		case lead.FieldObjections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field objections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Objections); err != nil {
					return fmt.Errorf("unmarshal field objections: %w", err)
				}
			}
		case lead.FieldLastContactAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_contact_at", values[i])
			} else if value.Valid {
				_m.LastContactAt = new(time.Time)
				*_m.LastContactAt = value.Time
			}
		case lead.FieldNextFollowupAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_followup_at", values[i])
			} else if value.Valid {
				_m.NextFollowupAt = new(time.Time)
				*_m.NextFollowupAt = value.Time
			}
		case lead.FieldFollowupCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field followup_count", values[i])
			} else if value.Valid {
				_m.FollowupCount = int(value.Int64)
			}
		case lead.FieldWonPlan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field won_plan", values[i])
			} else if value.Valid {
				_m.WonPlan = value.String
			}
		case lead.FieldWonAmountCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field won_amount_cents", values[i])
			} else if value.Valid {
				_m.WonAmountCents = new(int)
				*_m.WonAmountCents = int(value.Int64)
			}
		case lead.FieldWonAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field won_at", values[i])
			} else if value.Valid {
				_m.WonAt = new(time.Time)
				*_m.WonAt = value.Time
			}
		case lead.FieldLostAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lost_at", values[i])
			} else if value.Valid {
				_m.LostAt = new(time.Time)
				*_m.LostAt = value.Time
			}
		case lead.FieldLostReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lost_reason", values[i])
			} else if value.Valid {
				_m.LostReason = value.String
			}
		case lead.FieldAiCostCents:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_cost_cents", values[i])
			} else if value.Valid {
				_m.AiCostCents = value.Float64
			}
		case lead.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case lead.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case lead.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lead.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lead.
// This includes values selected through modifiers, order, etc.
func (_m *Lead) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversations queries the "conversations" edge of the Lead entity.
func (_m *Lead) QueryConversations() *ConversationQuery {
	return NewLeadClient(_m.config).QueryConversations(_m)
}

// Update returns a builder for updating this Lead.
// Note that you need to call Lead.Unwrap() before calling this method if this Lead
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lead) Update() *LeadUpdateOne {
	return NewLeadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lead entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lead) Unwrap() *Lead {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lead is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lead) String() string {
	var builder strings.Builder
	builder.WriteString("Lead(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("product=")
	builder.WriteString(fmt.Sprintf("%v", _m.Product))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("company_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanySize))
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("assigned_agent=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignedAgent))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("google_place_id=")
	builder.WriteString(_m.GooglePlaceID)
	builder.WriteString(", ")
	builder.WriteString("pain_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.PainPoints))
	builder.WriteString(", ")
	builder.WriteString("objections=")
	builder.WriteString(fmt.Sprintf("%v", _m.Objections))
	builder.WriteString(", ")
	if v := _m.LastContactAt; v != nil {
		builder.WriteString("last_contact_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextFollowupAt; v != nil {
		builder.WriteString("next_followup_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("followup_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowupCount))
	builder.WriteString(", ")
	builder.WriteString("won_plan=")
	builder.WriteString(_m.WonPlan)
	builder.WriteString(", ")
	if v := _m.WonAmountCents; v != nil {
		builder.WriteString("won_amount_cents=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.WonAt; v != nil {
		builder.WriteString("won_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LostAt; v != nil {
		builder.WriteString("lost_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("lost_reason=")
	builder.WriteString(_m.LostReason)
	builder.WriteString(", ")
	builder.WriteString("ai_cost_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiCostCents))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Leads is a parsable slice of Lead.
type Leads []*Lead
