// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/ent/predicate"
	"github.com/jordanlanch/salesagent/ent/salesmetric"
	"github.com/jordanlanch/salesagent/ent/scrapingqueue"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/scoring"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConversation  = "Conversation"
	TypeLead          = "Lead"
	TypeSalesMetric   = "SalesMetric"
	TypeScrapingQueue = "ScrapingQueue"
)

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	product            *product.Line
	direction          *conversation.Direction
	kind               *conversation.Kind
	content            *string
	agent              *string
	tools_called       *[]string
	appendtools_called []string
	intent             *string
	objection          *string
	tokens_input       *int
	addtokens_input    *int
	tokens_output      *int
	addtokens_output   *int
	cost_cents         *float64
	addcost_cents      *float64
	created_at         *time.Time
	clearedFields      map[string]struct{}
	lead               *int
	clearedlead        bool
	done               bool
	oldValue           func(context.Context) (*Conversation, error)
	predicates         []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id int) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *ConversationMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *ConversationMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *ConversationMutation) ResetLeadID() {
	m.lead = nil
}

// SetProduct sets the "product" field.
func (m *ConversationMutation) SetProduct(pr product.Line) {
	m.product = &pr
}

// Product returns the value of the "product" field in the mutation.
func (m *ConversationMutation) Product() (r product.Line, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProduct returns the old "product" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldProduct(ctx context.Context) (v product.Line, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProduct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProduct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProduct: %w", err)
	}
	return oldValue.Product, nil
}

// ResetProduct resets all changes to the "product" field.
func (m *ConversationMutation) ResetProduct() {
	m.product = nil
}

// SetDirection sets the "direction" field.
func (m *ConversationMutation) SetDirection(c conversation.Direction) {
	m.direction = &c
}

// Direction returns the value of the "direction" field in the mutation.
func (m *ConversationMutation) Direction() (r conversation.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldDirection(ctx context.Context) (v conversation.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *ConversationMutation) ResetDirection() {
	m.direction = nil
}

// SetKind sets the "kind" field.
func (m *ConversationMutation) SetKind(c conversation.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ConversationMutation) Kind() (r conversation.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldKind(ctx context.Context) (v conversation.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ConversationMutation) ResetKind() {
	m.kind = nil
}

// SetContent sets the "content" field.
func (m *ConversationMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ConversationMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ConversationMutation) ResetContent() {
	m.content = nil
}

// SetAgent sets the "agent" field.
func (m *ConversationMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *ConversationMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *ConversationMutation) ResetAgent() {
	m.agent = nil
}

// SetToolsCalled sets the "tools_called" field.
func (m *ConversationMutation) SetToolsCalled(s []string) {
	m.tools_called = &s
	m.appendtools_called = nil
}

// ToolsCalled returns the value of the "tools_called" field in the mutation.
func (m *ConversationMutation) ToolsCalled() (r []string, exists bool) {
	v := m.tools_called
	if v == nil {
		return
	}
	return *v, true
}

// OldToolsCalled returns the old "tools_called" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldToolsCalled(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolsCalled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolsCalled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolsCalled: %w", err)
	}
	return oldValue.ToolsCalled, nil
}

// AppendToolsCalled adds s to the "tools_called" field.
func (m *ConversationMutation) AppendToolsCalled(s []string) {
	m.appendtools_called = append(m.appendtools_called, s...)
}

// AppendedToolsCalled returns the list of values that were appended to the "tools_called" field in this mutation.
func (m *ConversationMutation) AppendedToolsCalled() ([]string, bool) {
	if len(m.appendtools_called) == 0 {
		return nil, false
	}
	return m.appendtools_called, true
}

// ClearToolsCalled clears the value of the "tools_called" field.
func (m *ConversationMutation) ClearToolsCalled() {
	m.tools_called = nil
	m.appendtools_called = nil
	m.clearedFields[conversation.FieldToolsCalled] = struct{}{}
}

// ToolsCalledCleared returns if the "tools_called" field was cleared in this mutation.
func (m *ConversationMutation) ToolsCalledCleared() bool {
	_, ok := m.clearedFields[conversation.FieldToolsCalled]
	return ok
}

// ResetToolsCalled resets all changes to the "tools_called" field.
func (m *ConversationMutation) ResetToolsCalled() {
	m.tools_called = nil
	m.appendtools_called = nil
	delete(m.clearedFields, conversation.FieldToolsCalled)
}

// SetIntent sets the "intent" field.
func (m *ConversationMutation) SetIntent(s string) {
	m.intent = &s
}

// Intent returns the value of the "intent" field in the mutation.
func (m *ConversationMutation) Intent() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ClearIntent clears the value of the "intent" field.
func (m *ConversationMutation) ClearIntent() {
	m.intent = nil
	m.clearedFields[conversation.FieldIntent] = struct{}{}
}

// IntentCleared returns if the "intent" field was cleared in this mutation.
func (m *ConversationMutation) IntentCleared() bool {
	_, ok := m.clearedFields[conversation.FieldIntent]
	return ok
}

// ResetIntent resets all changes to the "intent" field.
func (m *ConversationMutation) ResetIntent() {
	m.intent = nil
	delete(m.clearedFields, conversation.FieldIntent)
}

// SetObjection sets the "objection" field.
func (m *ConversationMutation) SetObjection(s string) {
	m.objection = &s
}

// Objection returns the value of the "objection" field in the mutation.
func (m *ConversationMutation) Objection() (r string, exists bool) {
	v := m.objection
	if v == nil {
		return
	}
	return *v, true
}

// OldObjection returns the old "objection" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldObjection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjection: %w", err)
	}
	return oldValue.Objection, nil
}

// ClearObjection clears the value of the "objection" field.
func (m *ConversationMutation) ClearObjection() {
	m.objection = nil
	m.clearedFields[conversation.FieldObjection] = struct{}{}
}

// ObjectionCleared returns if the "objection" field was cleared in this mutation.
func (m *ConversationMutation) ObjectionCleared() bool {
	_, ok := m.clearedFields[conversation.FieldObjection]
	return ok
}

// ResetObjection resets all changes to the "objection" field.
func (m *ConversationMutation) ResetObjection() {
	m.objection = nil
	delete(m.clearedFields, conversation.FieldObjection)
}

// SetTokensInput sets the "tokens_input" field.
func (m *ConversationMutation) SetTokensInput(i int) {
	m.tokens_input = &i
	m.addtokens_input = nil
}

// TokensInput returns the value of the "tokens_input" field in the mutation.
func (m *ConversationMutation) TokensInput() (r int, exists bool) {
	v := m.tokens_input
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensInput returns the old "tokens_input" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTokensInput(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensInput: %w", err)
	}
	return oldValue.TokensInput, nil
}

// AddTokensInput adds i to the "tokens_input" field.
func (m *ConversationMutation) AddTokensInput(i int) {
	if m.addtokens_input != nil {
		*m.addtokens_input += i
	} else {
		m.addtokens_input = &i
	}
}

// AddedTokensInput returns the value that was added to the "tokens_input" field in this mutation.
func (m *ConversationMutation) AddedTokensInput() (r int, exists bool) {
	v := m.addtokens_input
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensInput resets all changes to the "tokens_input" field.
func (m *ConversationMutation) ResetTokensInput() {
	m.tokens_input = nil
	m.addtokens_input = nil
}

// SetTokensOutput sets the "tokens_output" field.
func (m *ConversationMutation) SetTokensOutput(i int) {
	m.tokens_output = &i
	m.addtokens_output = nil
}

// TokensOutput returns the value of the "tokens_output" field in the mutation.
func (m *ConversationMutation) TokensOutput() (r int, exists bool) {
	v := m.tokens_output
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOutput returns the old "tokens_output" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTokensOutput(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOutput: %w", err)
	}
	return oldValue.TokensOutput, nil
}

// AddTokensOutput adds i to the "tokens_output" field.
func (m *ConversationMutation) AddTokensOutput(i int) {
	if m.addtokens_output != nil {
		*m.addtokens_output += i
	} else {
		m.addtokens_output = &i
	}
}

// AddedTokensOutput returns the value that was added to the "tokens_output" field in this mutation.
func (m *ConversationMutation) AddedTokensOutput() (r int, exists bool) {
	v := m.addtokens_output
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensOutput resets all changes to the "tokens_output" field.
func (m *ConversationMutation) ResetTokensOutput() {
	m.tokens_output = nil
	m.addtokens_output = nil
}

// SetCostCents sets the "cost_cents" field.
func (m *ConversationMutation) SetCostCents(f float64) {
	m.cost_cents = &f
	m.addcost_cents = nil
}

// CostCents returns the value of the "cost_cents" field in the mutation.
func (m *ConversationMutation) CostCents() (r float64, exists bool) {
	v := m.cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldCostCents returns the old "cost_cents" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCostCents(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostCents: %w", err)
	}
	return oldValue.CostCents, nil
}

// AddCostCents adds f to the "cost_cents" field.
func (m *ConversationMutation) AddCostCents(f float64) {
	if m.addcost_cents != nil {
		*m.addcost_cents += f
	} else {
		m.addcost_cents = &f
	}
}

// AddedCostCents returns the value that was added to the "cost_cents" field in this mutation.
func (m *ConversationMutation) AddedCostCents() (r float64, exists bool) {
	v := m.addcost_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostCents resets all changes to the "cost_cents" field.
func (m *ConversationMutation) ResetCostCents() {
	m.cost_cents = nil
	m.addcost_cents = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *ConversationMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[conversation.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *ConversationMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *ConversationMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.lead != nil {
		fields = append(fields, conversation.FieldLeadID)
	}
	if m.product != nil {
		fields = append(fields, conversation.FieldProduct)
	}
	if m.direction != nil {
		fields = append(fields, conversation.FieldDirection)
	}
	if m.kind != nil {
		fields = append(fields, conversation.FieldKind)
	}
	if m.content != nil {
		fields = append(fields, conversation.FieldContent)
	}
	if m.agent != nil {
		fields = append(fields, conversation.FieldAgent)
	}
	if m.tools_called != nil {
		fields = append(fields, conversation.FieldToolsCalled)
	}
	if m.intent != nil {
		fields = append(fields, conversation.FieldIntent)
	}
	if m.objection != nil {
		fields = append(fields, conversation.FieldObjection)
	}
	if m.tokens_input != nil {
		fields = append(fields, conversation.FieldTokensInput)
	}
	if m.tokens_output != nil {
		fields = append(fields, conversation.FieldTokensOutput)
	}
	if m.cost_cents != nil {
		fields = append(fields, conversation.FieldCostCents)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldLeadID:
		return m.LeadID()
	case conversation.FieldProduct:
		return m.Product()
	case conversation.FieldDirection:
		return m.Direction()
	case conversation.FieldKind:
		return m.Kind()
	case conversation.FieldContent:
		return m.Content()
	case conversation.FieldAgent:
		return m.Agent()
	case conversation.FieldToolsCalled:
		return m.ToolsCalled()
	case conversation.FieldIntent:
		return m.Intent()
	case conversation.FieldObjection:
		return m.Objection()
	case conversation.FieldTokensInput:
		return m.TokensInput()
	case conversation.FieldTokensOutput:
		return m.TokensOutput()
	case conversation.FieldCostCents:
		return m.CostCents()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldLeadID:
		return m.OldLeadID(ctx)
	case conversation.FieldProduct:
		return m.OldProduct(ctx)
	case conversation.FieldDirection:
		return m.OldDirection(ctx)
	case conversation.FieldKind:
		return m.OldKind(ctx)
	case conversation.FieldContent:
		return m.OldContent(ctx)
	case conversation.FieldAgent:
		return m.OldAgent(ctx)
	case conversation.FieldToolsCalled:
		return m.OldToolsCalled(ctx)
	case conversation.FieldIntent:
		return m.OldIntent(ctx)
	case conversation.FieldObjection:
		return m.OldObjection(ctx)
	case conversation.FieldTokensInput:
		return m.OldTokensInput(ctx)
	case conversation.FieldTokensOutput:
		return m.OldTokensOutput(ctx)
	case conversation.FieldCostCents:
		return m.OldCostCents(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case conversation.FieldProduct:
		v, ok := value.(product.Line)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProduct(v)
		return nil
	case conversation.FieldDirection:
		v, ok := value.(conversation.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case conversation.FieldKind:
		v, ok := value.(conversation.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case conversation.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case conversation.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case conversation.FieldToolsCalled:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolsCalled(v)
		return nil
	case conversation.FieldIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case conversation.FieldObjection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjection(v)
		return nil
	case conversation.FieldTokensInput:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensInput(v)
		return nil
	case conversation.FieldTokensOutput:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOutput(v)
		return nil
	case conversation.FieldCostCents:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostCents(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_input != nil {
		fields = append(fields, conversation.FieldTokensInput)
	}
	if m.addtokens_output != nil {
		fields = append(fields, conversation.FieldTokensOutput)
	}
	if m.addcost_cents != nil {
		fields = append(fields, conversation.FieldCostCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldTokensInput:
		return m.AddedTokensInput()
	case conversation.FieldTokensOutput:
		return m.AddedTokensOutput()
	case conversation.FieldCostCents:
		return m.AddedCostCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldTokensInput:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensInput(v)
		return nil
	case conversation.FieldTokensOutput:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOutput(v)
		return nil
	case conversation.FieldCostCents:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostCents(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldToolsCalled) {
		fields = append(fields, conversation.FieldToolsCalled)
	}
	if m.FieldCleared(conversation.FieldIntent) {
		fields = append(fields, conversation.FieldIntent)
	}
	if m.FieldCleared(conversation.FieldObjection) {
		fields = append(fields, conversation.FieldObjection)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldToolsCalled:
		m.ClearToolsCalled()
		return nil
	case conversation.FieldIntent:
		m.ClearIntent()
		return nil
	case conversation.FieldObjection:
		m.ClearObjection()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldLeadID:
		m.ResetLeadID()
		return nil
	case conversation.FieldProduct:
		m.ResetProduct()
		return nil
	case conversation.FieldDirection:
		m.ResetDirection()
		return nil
	case conversation.FieldKind:
		m.ResetKind()
		return nil
	case conversation.FieldContent:
		m.ResetContent()
		return nil
	case conversation.FieldAgent:
		m.ResetAgent()
		return nil
	case conversation.FieldToolsCalled:
		m.ResetToolsCalled()
		return nil
	case conversation.FieldIntent:
		m.ResetIntent()
		return nil
	case conversation.FieldObjection:
		m.ResetObjection()
		return nil
	case conversation.FieldTokensInput:
		m.ResetTokensInput()
		return nil
	case conversation.FieldTokensOutput:
		m.ResetTokensOutput()
		return nil
	case conversation.FieldCostCents:
		m.ResetCostCents()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.lead != nil {
		edges = append(edges, conversation.EdgeLead)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlead {
		edges = append(edges, conversation.EdgeLead)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeLead:
		return m.clearedlead
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	case conversation.EdgeLead:
		m.ClearLead()
		return nil
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeLead:
		m.ResetLead()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	phone                *string
	product              *product.Line
	name                 *string
	company_name         *string
	company_size         *scoring.Size
	email                *string
	city                 *string
	state                *string
	stage                *pipeline.Stage
	score                *int
	addscore             *int
	assigned_agent       *pipeline.Role
	source               *lead.Source
	google_place_id      *string
	pain_points          *[]string
	appendpain_points    []string
	objections           *[]string
	appendobjections     []string
	last_contact_at      *time.Time
	next_followup_at     *time.Time
	followup_count       *int
	addfollowup_count    *int
	won_plan             *string
	won_amount_cents     *int
	addwon_amount_cents  *int
	won_at               *time.Time
	lost_at              *time.Time
	lost_reason          *string
	ai_cost_cents        *float64
	addai_cost_cents     *float64
	metadata             *models.LeadMetadata
	version              *int
	addversion           *int
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	conversations        map[int]struct{}
	removedconversations map[int]struct{}
	clearedconversations bool
	done                 bool
	oldValue             func(context.Context) (*Lead, error)
	predicates           []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id int) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPhone sets the "phone" field.
func (m *LeadMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadMutation) ResetPhone() {
	m.phone = nil
}

// SetProduct sets the "product" field.
func (m *LeadMutation) SetProduct(pr product.Line) {
	m.product = &pr
}

// Product returns the value of the "product" field in the mutation.
func (m *LeadMutation) Product() (r product.Line, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProduct returns the old "product" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldProduct(ctx context.Context) (v product.Line, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProduct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProduct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProduct: %w", err)
	}
	return oldValue.Product, nil
}

// ResetProduct resets all changes to the "product" field.
func (m *LeadMutation) ResetProduct() {
	m.product = nil
}

// SetName sets the "name" field.
func (m *LeadMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LeadMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *LeadMutation) ClearName() {
	m.name = nil
	m.clearedFields[lead.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *LeadMutation) NameCleared() bool {
	_, ok := m.clearedFields[lead.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *LeadMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, lead.FieldName)
}

// SetCompanyName sets the "company_name" field.
func (m *LeadMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *LeadMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ClearCompanyName clears the value of the "company_name" field.
func (m *LeadMutation) ClearCompanyName() {
	m.company_name = nil
	m.clearedFields[lead.FieldCompanyName] = struct{}{}
}

// CompanyNameCleared returns if the "company_name" field was cleared in this mutation.
func (m *LeadMutation) CompanyNameCleared() bool {
	_, ok := m.clearedFields[lead.FieldCompanyName]
	return ok
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *LeadMutation) ResetCompanyName() {
	m.company_name = nil
	delete(m.clearedFields, lead.FieldCompanyName)
}

// SetCompanySize sets the "company_size" field.
func (m *LeadMutation) SetCompanySize(s scoring.Size) {
	m.company_size = &s
}

// CompanySize returns the value of the "company_size" field in the mutation.
func (m *LeadMutation) CompanySize() (r scoring.Size, exists bool) {
	v := m.company_size
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanySize returns the old "company_size" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompanySize(ctx context.Context) (v scoring.Size, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanySize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanySize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanySize: %w", err)
	}
	return oldValue.CompanySize, nil
}

// ClearCompanySize clears the value of the "company_size" field.
func (m *LeadMutation) ClearCompanySize() {
	m.company_size = nil
	m.clearedFields[lead.FieldCompanySize] = struct{}{}
}

// CompanySizeCleared returns if the "company_size" field was cleared in this mutation.
func (m *LeadMutation) CompanySizeCleared() bool {
	_, ok := m.clearedFields[lead.FieldCompanySize]
	return ok
}

// ResetCompanySize resets all changes to the "company_size" field.
func (m *LeadMutation) ResetCompanySize() {
	m.company_size = nil
	delete(m.clearedFields, lead.FieldCompanySize)
}

// SetEmail sets the "email" field.
func (m *LeadMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LeadMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *LeadMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[lead.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *LeadMutation) EmailCleared() bool {
	_, ok := m.clearedFields[lead.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *LeadMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, lead.FieldEmail)
}

// SetCity sets the "city" field.
func (m *LeadMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *LeadMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *LeadMutation) ClearCity() {
	m.city = nil
	m.clearedFields[lead.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *LeadMutation) CityCleared() bool {
	_, ok := m.clearedFields[lead.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *LeadMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, lead.FieldCity)
}

// SetState sets the "state" field.
func (m *LeadMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *LeadMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *LeadMutation) ClearState() {
	m.state = nil
	m.clearedFields[lead.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *LeadMutation) StateCleared() bool {
	_, ok := m.clearedFields[lead.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *LeadMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, lead.FieldState)
}

// SetStage sets the "stage" field.
func (m *LeadMutation) SetStage(pi pipeline.Stage) {
	m.stage = &pi
}

// Stage returns the value of the "stage" field in the mutation.
func (m *LeadMutation) Stage() (r pipeline.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStage(ctx context.Context) (v pipeline.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *LeadMutation) ResetStage() {
	m.stage = nil
}

// SetScore sets the "score" field.
func (m *LeadMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *LeadMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *LeadMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *LeadMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *LeadMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetAssignedAgent sets the "assigned_agent" field.
func (m *LeadMutation) SetAssignedAgent(pi pipeline.Role) {
	m.assigned_agent = &pi
}

// AssignedAgent returns the value of the "assigned_agent" field in the mutation.
func (m *LeadMutation) AssignedAgent() (r pipeline.Role, exists bool) {
	v := m.assigned_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgent returns the old "assigned_agent" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAssignedAgent(ctx context.Context) (v pipeline.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgent: %w", err)
	}
	return oldValue.AssignedAgent, nil
}

// ResetAssignedAgent resets all changes to the "assigned_agent" field.
func (m *LeadMutation) ResetAssignedAgent() {
	m.assigned_agent = nil
}

// SetSource sets the "source" field.
func (m *LeadMutation) SetSource(l lead.Source) {
	m.source = &l
}

// Source returns the value of the "source" field in the mutation.
func (m *LeadMutation) Source() (r lead.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSource(ctx context.Context) (v lead.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *LeadMutation) ResetSource() {
	m.source = nil
}

// SetGooglePlaceID sets the "google_place_id" field.
func (m *LeadMutation) SetGooglePlaceID(s string) {
	m.google_place_id = &s
}

// GooglePlaceID returns the value of the "google_place_id" field in the mutation.
func (m *LeadMutation) GooglePlaceID() (r string, exists bool) {
	v := m.google_place_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGooglePlaceID returns the old "google_place_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldGooglePlaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGooglePlaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGooglePlaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGooglePlaceID: %w", err)
	}
	return oldValue.GooglePlaceID, nil
}

// ClearGooglePlaceID clears the value of the "google_place_id" field.
func (m *LeadMutation) ClearGooglePlaceID() {
	m.google_place_id = nil
	m.clearedFields[lead.FieldGooglePlaceID] = struct{}{}
}

// GooglePlaceIDCleared returns if the "google_place_id" field was cleared in this mutation.
func (m *LeadMutation) GooglePlaceIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldGooglePlaceID]
	return ok
}

// ResetGooglePlaceID resets all changes to the "google_place_id" field.
func (m *LeadMutation) ResetGooglePlaceID() {
	m.google_place_id = nil
	delete(m.clearedFields, lead.FieldGooglePlaceID)
}

// SetPainPoints sets the "pain_points" field.
func (m *LeadMutation) SetPainPoints(s []string) {
	m.pain_points = &s
	m.appendpain_points = nil
}

// PainPoints returns the value of the "pain_points" field in the mutation.
func (m *LeadMutation) PainPoints() (r []string, exists bool) {
	v := m.pain_points
	if v == nil {
		return
	}
	return *v, true
}

// OldPainPoints returns the old "pain_points" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPainPoints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPainPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPainPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPainPoints: %w", err)
	}
	return oldValue.PainPoints, nil
}

// AppendPainPoints adds s to the "pain_points" field.
func (m *LeadMutation) AppendPainPoints(s []string) {
	m.appendpain_points = append(m.appendpain_points, s...)
}

// AppendedPainPoints returns the list of values that were appended to the "pain_points" field in this mutation.
func (m *LeadMutation) AppendedPainPoints() ([]string, bool) {
	if len(m.appendpain_points) == 0 {
		return nil, false
	}
	return m.appendpain_points, true
}

// ClearPainPoints clears the value of the "pain_points" field.
func (m *LeadMutation) ClearPainPoints() {
	m.pain_points = nil
	m.appendpain_points = nil
	m.clearedFields[lead.FieldPainPoints] = struct{}{}
}

// PainPointsCleared returns if the "pain_points" field was cleared in this mutation.
func (m *LeadMutation) PainPointsCleared() bool {
	_, ok := m.clearedFields[lead.FieldPainPoints]
	return ok
}

// ResetPainPoints resets all changes to the "pain_points" field.
func (m *LeadMutation) ResetPainPoints() {
	m.pain_points = nil
	m.appendpain_points = nil
	delete(m.clearedFields, lead.FieldPainPoints)
}

// SetObjections sets the "objections" field.
func (m *LeadMutation) SetObjections(s []string) {
	m.objections = &s
	m.appendobjections = nil
}

// Objections returns the value of the "objections" field in the mutation.
func (m *LeadMutation) Objections() (r []string, exists bool) {
	v := m.objections
	if v == nil {
		return
	}
	return *v, true
}

// OldObjections returns the old "objections" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldObjections(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjections: %w", err)
	}
	return oldValue.Objections, nil
}

// AppendObjections adds s to the "objections" field.
func (m *LeadMutation) AppendObjections(s []string) {
	m.appendobjections = append(m.appendobjections, s...)
}

// AppendedObjections returns the list of values that were appended to the "objections" field in this mutation.
func (m *LeadMutation) AppendedObjections() ([]string, bool) {
	if len(m.appendobjections) == 0 {
		return nil, false
	}
	return m.appendobjections, true
}

// ClearObjections clears the value of the "objections" field.
func (m *LeadMutation) ClearObjections() {
	m.objections = nil
	m.appendobjections = nil
	m.clearedFields[lead.FieldObjections] = struct{}{}
}

// ObjectionsCleared returns if the "objections" field was cleared in this mutation.
func (m *LeadMutation) ObjectionsCleared() bool {
	_, ok := m.clearedFields[lead.FieldObjections]
	return ok
}

// ResetObjections resets all changes to the "objections" field.
func (m *LeadMutation) ResetObjections() {
	m.objections = nil
	m.appendobjections = nil
	delete(m.clearedFields, lead.FieldObjections)
}

// SetLastContactAt sets the "last_contact_at" field.
func (m *LeadMutation) SetLastContactAt(t time.Time) {
	m.last_contact_at = &t
}

// LastContactAt returns the value of the "last_contact_at" field in the mutation.
func (m *LeadMutation) LastContactAt() (r time.Time, exists bool) {
	v := m.last_contact_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastContactAt returns the old "last_contact_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldLastContactAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastContactAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastContactAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastContactAt: %w", err)
	}
	return oldValue.LastContactAt, nil
}

// ClearLastContactAt clears the value of the "last_contact_at" field.
func (m *LeadMutation) ClearLastContactAt() {
	m.last_contact_at = nil
	m.clearedFields[lead.FieldLastContactAt] = struct{}{}
}

// LastContactAtCleared returns if the "last_contact_at" field was cleared in this mutation.
func (m *LeadMutation) LastContactAtCleared() bool {
	_, ok := m.clearedFields[lead.FieldLastContactAt]
	return ok
}

// ResetLastContactAt resets all changes to the "last_contact_at" field.
func (m *LeadMutation) ResetLastContactAt() {
	m.last_contact_at = nil
	delete(m.clearedFields, lead.FieldLastContactAt)
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (m *LeadMutation) SetNextFollowupAt(t time.Time) {
	m.next_followup_at = &t
}

// NextFollowupAt returns the value of the "next_followup_at" field in the mutation.
func (m *LeadMutation) NextFollowupAt() (r time.Time, exists bool) {
	v := m.next_followup_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextFollowupAt returns the old "next_followup_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldNextFollowupAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextFollowupAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextFollowupAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextFollowupAt: %w", err)
	}
	return oldValue.NextFollowupAt, nil
}

// ClearNextFollowupAt clears the value of the "next_followup_at" field.
func (m *LeadMutation) ClearNextFollowupAt() {
	m.next_followup_at = nil
	m.clearedFields[lead.FieldNextFollowupAt] = struct{}{}
}

// NextFollowupAtCleared returns if the "next_followup_at" field was cleared in this mutation.
func (m *LeadMutation) NextFollowupAtCleared() bool {
	_, ok := m.clearedFields[lead.FieldNextFollowupAt]
	return ok
}

// ResetNextFollowupAt resets all changes to the "next_followup_at" field.
func (m *LeadMutation) ResetNextFollowupAt() {
	m.next_followup_at = nil
	delete(m.clearedFields, lead.FieldNextFollowupAt)
}

// SetFollowupCount sets the "followup_count" field.
func (m *LeadMutation) SetFollowupCount(i int) {
	m.followup_count = &i
	m.addfollowup_count = nil
}

// FollowupCount returns the value of the "followup_count" field in the mutation.
func (m *LeadMutation) FollowupCount() (r int, exists bool) {
	v := m.followup_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowupCount returns the old "followup_count" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldFollowupCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowupCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowupCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowupCount: %w", err)
	}
	return oldValue.FollowupCount, nil
}

// AddFollowupCount adds i to the "followup_count" field.
func (m *LeadMutation) AddFollowupCount(i int) {
	if m.addfollowup_count != nil {
		*m.addfollowup_count += i
	} else {
		m.addfollowup_count = &i
	}
}

// AddedFollowupCount returns the value that was added to the "followup_count" field in this mutation.
func (m *LeadMutation) AddedFollowupCount() (r int, exists bool) {
	v := m.addfollowup_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFollowupCount resets all changes to the "followup_count" field.
func (m *LeadMutation) ResetFollowupCount() {
	m.followup_count = nil
	m.addfollowup_count = nil
}

// SetWonPlan sets the "won_plan" field.
func (m *LeadMutation) SetWonPlan(s string) {
	m.won_plan = &s
}

// WonPlan returns the value of the "won_plan" field in the mutation.
func (m *LeadMutation) WonPlan() (r string, exists bool) {
	v := m.won_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldWonPlan returns the old "won_plan" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldWonPlan(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWonPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWonPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWonPlan: %w", err)
	}
	return oldValue.WonPlan, nil
}

// ClearWonPlan clears the value of the "won_plan" field.
func (m *LeadMutation) ClearWonPlan() {
	m.won_plan = nil
	m.clearedFields[lead.FieldWonPlan] = struct{}{}
}

// WonPlanCleared returns if the "won_plan" field was cleared in this mutation.
func (m *LeadMutation) WonPlanCleared() bool {
	_, ok := m.clearedFields[lead.FieldWonPlan]
	return ok
}

// ResetWonPlan resets all changes to the "won_plan" field.
func (m *LeadMutation) ResetWonPlan() {
	m.won_plan = nil
	delete(m.clearedFields, lead.FieldWonPlan)
}

// SetWonAmountCents sets the "won_amount_cents" field.
func (m *LeadMutation) SetWonAmountCents(i int) {
	m.won_amount_cents = &i
	m.addwon_amount_cents = nil
}

// WonAmountCents returns the value of the "won_amount_cents" field in the mutation.
func (m *LeadMutation) WonAmountCents() (r int, exists bool) {
	v := m.won_amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldWonAmountCents returns the old "won_amount_cents" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldWonAmountCents(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWonAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWonAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWonAmountCents: %w", err)
	}
	return oldValue.WonAmountCents, nil
}

// AddWonAmountCents adds i to the "won_amount_cents" field.
func (m *LeadMutation) AddWonAmountCents(i int) {
	if m.addwon_amount_cents != nil {
		*m.addwon_amount_cents += i
	} else {
		m.addwon_amount_cents = &i
	}
}

// AddedWonAmountCents returns the value that was added to the "won_amount_cents" field in this mutation.
func (m *LeadMutation) AddedWonAmountCents() (r int, exists bool) {
	v := m.addwon_amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ClearWonAmountCents clears the value of the "won_amount_cents" field.
func (m *LeadMutation) ClearWonAmountCents() {
	m.won_amount_cents = nil
	m.addwon_amount_cents = nil
	m.clearedFields[lead.FieldWonAmountCents] = struct{}{}
}

// WonAmountCentsCleared returns if the "won_amount_cents" field was cleared in this mutation.
func (m *LeadMutation) WonAmountCentsCleared() bool {
	_, ok := m.clearedFields[lead.FieldWonAmountCents]
	return ok
}

// ResetWonAmountCents resets all changes to the "won_amount_cents" field.
func (m *LeadMutation) ResetWonAmountCents() {
	m.won_amount_cents = nil
	m.addwon_amount_cents = nil
	delete(m.clearedFields, lead.FieldWonAmountCents)
}

// SetWonAt sets the "won_at" field.
func (m *LeadMutation) SetWonAt(t time.Time) {
	m.won_at = &t
}

// WonAt returns the value of the "won_at" field in the mutation.
func (m *LeadMutation) WonAt() (r time.Time, exists bool) {
	v := m.won_at
	if v == nil {
		return
	}
	return *v, true
}

// OldWonAt returns the old "won_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldWonAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWonAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWonAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWonAt: %w", err)
	}
	return oldValue.WonAt, nil
}

// ClearWonAt clears the value of the "won_at" field.
func (m *LeadMutation) ClearWonAt() {
	m.won_at = nil
	m.clearedFields[lead.FieldWonAt] = struct{}{}
}

// WonAtCleared returns if the "won_at" field was cleared in this mutation.
func (m *LeadMutation) WonAtCleared() bool {
	_, ok := m.clearedFields[lead.FieldWonAt]
	return ok
}

// ResetWonAt resets all changes to the "won_at" field.
func (m *LeadMutation) ResetWonAt() {
	m.won_at = nil
	delete(m.clearedFields, lead.FieldWonAt)
}

// SetLostAt sets the "lost_at" field.
func (m *LeadMutation) SetLostAt(t time.Time) {
	m.lost_at = &t
}

// LostAt returns the value of the "lost_at" field in the mutation.
func (m *LeadMutation) LostAt() (r time.Time, exists bool) {
	v := m.lost_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLostAt returns the old "lost_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldLostAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLostAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLostAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLostAt: %w", err)
	}
	return oldValue.LostAt, nil
}

// ClearLostAt clears the value of the "lost_at" field.
func (m *LeadMutation) ClearLostAt() {
	m.lost_at = nil
	m.clearedFields[lead.FieldLostAt] = struct{}{}
}

// LostAtCleared returns if the "lost_at" field was cleared in this mutation.
func (m *LeadMutation) LostAtCleared() bool {
	_, ok := m.clearedFields[lead.FieldLostAt]
	return ok
}

// ResetLostAt resets all changes to the "lost_at" field.
func (m *LeadMutation) ResetLostAt() {
	m.lost_at = nil
	delete(m.clearedFields, lead.FieldLostAt)
}

// SetLostReason sets the "lost_reason" field.
func (m *LeadMutation) SetLostReason(s string) {
	m.lost_reason = &s
}

// LostReason returns the value of the "lost_reason" field in the mutation.
func (m *LeadMutation) LostReason() (r string, exists bool) {
	v := m.lost_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldLostReason returns the old "lost_reason" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldLostReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLostReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLostReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLostReason: %w", err)
	}
	return oldValue.LostReason, nil
}

// ClearLostReason clears the value of the "lost_reason" field.
func (m *LeadMutation) ClearLostReason() {
	m.lost_reason = nil
	m.clearedFields[lead.FieldLostReason] = struct{}{}
}

// LostReasonCleared returns if the "lost_reason" field was cleared in this mutation.
func (m *LeadMutation) LostReasonCleared() bool {
	_, ok := m.clearedFields[lead.FieldLostReason]
	return ok
}

// ResetLostReason resets all changes to the "lost_reason" field.
func (m *LeadMutation) ResetLostReason() {
	m.lost_reason = nil
	delete(m.clearedFields, lead.FieldLostReason)
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (m *LeadMutation) SetAiCostCents(f float64) {
	m.ai_cost_cents = &f
	m.addai_cost_cents = nil
}

// AiCostCents returns the value of the "ai_cost_cents" field in the mutation.
func (m *LeadMutation) AiCostCents() (r float64, exists bool) {
	v := m.ai_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldAiCostCents returns the old "ai_cost_cents" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAiCostCents(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiCostCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiCostCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiCostCents: %w", err)
	}
	return oldValue.AiCostCents, nil
}

// AddAiCostCents adds f to the "ai_cost_cents" field.
func (m *LeadMutation) AddAiCostCents(f float64) {
	if m.addai_cost_cents != nil {
		*m.addai_cost_cents += f
	} else {
		m.addai_cost_cents = &f
	}
}

// AddedAiCostCents returns the value that was added to the "ai_cost_cents" field in this mutation.
func (m *LeadMutation) AddedAiCostCents() (r float64, exists bool) {
	v := m.addai_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetAiCostCents resets all changes to the "ai_cost_cents" field.
func (m *LeadMutation) ResetAiCostCents() {
	m.ai_cost_cents = nil
	m.addai_cost_cents = nil
}

// SetMetadata sets the "metadata" field.
func (m *LeadMutation) SetMetadata(mm models.LeadMetadata) {
	m.metadata = &mm
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *LeadMutation) Metadata() (r models.LeadMetadata, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldMetadata(ctx context.Context) (v models.LeadMetadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *LeadMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[lead.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *LeadMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[lead.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *LeadMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, lead.FieldMetadata)
}

// SetVersion sets the "version" field.
func (m *LeadMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *LeadMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *LeadMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *LeadMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *LeadMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by ids.
func (m *LeadMutation) AddConversationIDs(ids ...int) {
	if m.conversations == nil {
		m.conversations = make(map[int]struct{})
	}
	for i := range ids {
		m.conversations[ids[i]] = struct{}{}
	}
}

// ClearConversations clears the "conversations" edge to the Conversation entity.
func (m *LeadMutation) ClearConversations() {
	m.clearedconversations = true
}

// ConversationsCleared reports if the "conversations" edge to the Conversation entity was cleared.
func (m *LeadMutation) ConversationsCleared() bool {
	return m.clearedconversations
}

// RemoveConversationIDs removes the "conversations" edge to the Conversation entity by IDs.
func (m *LeadMutation) RemoveConversationIDs(ids ...int) {
	if m.removedconversations == nil {
		m.removedconversations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.conversations, ids[i])
		m.removedconversations[ids[i]] = struct{}{}
	}
}

// RemovedConversations returns the removed IDs of the "conversations" edge to the Conversation entity.
func (m *LeadMutation) RemovedConversationsIDs() (ids []int) {
	for id := range m.removedconversations {
		ids = append(ids, id)
	}
	return
}

// ConversationsIDs returns the "conversations" edge IDs in the mutation.
func (m *LeadMutation) ConversationsIDs() (ids []int) {
	for id := range m.conversations {
		ids = append(ids, id)
	}
	return
}

// ResetConversations resets all changes to the "conversations" edge.
func (m *LeadMutation) ResetConversations() {
	m.conversations = nil
	m.clearedconversations = false
	m.removedconversations = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.phone != nil {
		fields = append(fields, lead.FieldPhone)
	}
	if m.product != nil {
		fields = append(fields, lead.FieldProduct)
	}
	if m.name != nil {
		fields = append(fields, lead.FieldName)
	}
	if m.company_name != nil {
		fields = append(fields, lead.FieldCompanyName)
	}
	if m.company_size != nil {
		fields = append(fields, lead.FieldCompanySize)
	}
	if m.email != nil {
		fields = append(fields, lead.FieldEmail)
	}
	if m.city != nil {
		fields = append(fields, lead.FieldCity)
	}
	if m.state != nil {
		fields = append(fields, lead.FieldState)
	}
	if m.stage != nil {
		fields = append(fields, lead.FieldStage)
	}
	if m.score != nil {
		fields = append(fields, lead.FieldScore)
	}
	if m.assigned_agent != nil {
		fields = append(fields, lead.FieldAssignedAgent)
	}
	if m.source != nil {
		fields = append(fields, lead.FieldSource)
	}
	if m.google_place_id != nil {
		fields = append(fields, lead.FieldGooglePlaceID)
	}
	if m.pain_points != nil {
		fields = append(fields, lead.FieldPainPoints)
	}
	if m.objections != nil {
		fields = append(fields, lead.FieldObjections)
	}
	if m.last_contact_at != nil {
		fields = append(fields, lead.FieldLastContactAt)
	}
	if m.next_followup_at != nil {
		fields = append(fields, lead.FieldNextFollowupAt)
	}
	if m.followup_count != nil {
		fields = append(fields, lead.FieldFollowupCount)
	}
	if m.won_plan != nil {
		fields = append(fields, lead.FieldWonPlan)
	}
	if m.won_amount_cents != nil {
		fields = append(fields, lead.FieldWonAmountCents)
	}
	if m.won_at != nil {
		fields = append(fields, lead.FieldWonAt)
	}
	if m.lost_at != nil {
		fields = append(fields, lead.FieldLostAt)
	}
	if m.lost_reason != nil {
		fields = append(fields, lead.FieldLostReason)
	}
	if m.ai_cost_cents != nil {
		fields = append(fields, lead.FieldAiCostCents)
	}
	if m.metadata != nil {
		fields = append(fields, lead.FieldMetadata)
	}
	if m.version != nil {
		fields = append(fields, lead.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldPhone:
		return m.Phone()
	case lead.FieldProduct:
		return m.Product()
	case lead.FieldName:
		return m.Name()
	case lead.FieldCompanyName:
		return m.CompanyName()
	case lead.FieldCompanySize:
		return m.CompanySize()
	case lead.FieldEmail:
		return m.Email()
	case lead.FieldCity:
		return m.City()
	case lead.FieldState:
		return m.State()
	case lead.FieldStage:
		return m.Stage()
	case lead.FieldScore:
		return m.Score()
	case lead.FieldAssignedAgent:
		return m.AssignedAgent()
	case lead.FieldSource:
		return m.Source()
	case lead.FieldGooglePlaceID:
		return m.GooglePlaceID()
	case lead.FieldPainPoints:
		return m.PainPoints()
	case lead.FieldObjections:
		return m.Objections()
	case lead.FieldLastContactAt:
		return m.LastContactAt()
	case lead.FieldNextFollowupAt:
		return m.NextFollowupAt()
	case lead.FieldFollowupCount:
		return m.FollowupCount()
	case lead.FieldWonPlan:
		return m.WonPlan()
	case lead.FieldWonAmountCents:
		return m.WonAmountCents()
	case lead.FieldWonAt:
		return m.WonAt()
	case lead.FieldLostAt:
		return m.LostAt()
	case lead.FieldLostReason:
		return m.LostReason()
	case lead.FieldAiCostCents:
		return m.AiCostCents()
	case lead.FieldMetadata:
		return m.Metadata()
	case lead.FieldVersion:
		return m.Version()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldPhone:
		return m.OldPhone(ctx)
	case lead.FieldProduct:
		return m.OldProduct(ctx)
	case lead.FieldName:
		return m.OldName(ctx)
	case lead.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case lead.FieldCompanySize:
		return m.OldCompanySize(ctx)
	case lead.FieldEmail:
		return m.OldEmail(ctx)
	case lead.FieldCity:
		return m.OldCity(ctx)
	case lead.FieldState:
		return m.OldState(ctx)
	case lead.FieldStage:
		return m.OldStage(ctx)
	case lead.FieldScore:
		return m.OldScore(ctx)
	case lead.FieldAssignedAgent:
		return m.OldAssignedAgent(ctx)
	case lead.FieldSource:
		return m.OldSource(ctx)
	case lead.FieldGooglePlaceID:
		return m.OldGooglePlaceID(ctx)
	case lead.FieldPainPoints:
		return m.OldPainPoints(ctx)
	case lead.FieldObjections:
		return m.OldObjections(ctx)
	case lead.FieldLastContactAt:
		return m.OldLastContactAt(ctx)
	case lead.FieldNextFollowupAt:
		return m.OldNextFollowupAt(ctx)
	case lead.FieldFollowupCount:
		return m.OldFollowupCount(ctx)
	case lead.FieldWonPlan:
		return m.OldWonPlan(ctx)
	case lead.FieldWonAmountCents:
		return m.OldWonAmountCents(ctx)
	case lead.FieldWonAt:
		return m.OldWonAt(ctx)
	case lead.FieldLostAt:
		return m.OldLostAt(ctx)
	case lead.FieldLostReason:
		return m.OldLostReason(ctx)
	case lead.FieldAiCostCents:
		return m.OldAiCostCents(ctx)
	case lead.FieldMetadata:
		return m.OldMetadata(ctx)
	case lead.FieldVersion:
		return m.OldVersion(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case lead.FieldProduct:
		v, ok := value.(product.Line)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProduct(v)
		return nil
	case lead.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case lead.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case lead.FieldCompanySize:
		v, ok := value.(scoring.Size)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanySize(v)
		return nil
	case lead.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case lead.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case lead.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case lead.FieldStage:
		v, ok := value.(pipeline.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case lead.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case lead.FieldAssignedAgent:
		v, ok := value.(pipeline.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgent(v)
		return nil
	case lead.FieldSource:
		v, ok := value.(lead.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case lead.FieldGooglePlaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGooglePlaceID(v)
		return nil
	case lead.FieldPainPoints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPainPoints(v)
		return nil
	case lead.FieldObjections:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjections(v)
		return nil
	case lead.FieldLastContactAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastContactAt(v)
		return nil
	case lead.FieldNextFollowupAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextFollowupAt(v)
		return nil
	case lead.FieldFollowupCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowupCount(v)
		return nil
	case lead.FieldWonPlan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWonPlan(v)
		return nil
	case lead.FieldWonAmountCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWonAmountCents(v)
		return nil
	case lead.FieldWonAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWonAt(v)
		return nil
	case lead.FieldLostAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLostAt(v)
		return nil
	case lead.FieldLostReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLostReason(v)
		return nil
	case lead.FieldAiCostCents:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiCostCents(v)
		return nil
	case lead.FieldMetadata:
		v, ok := value.(models.LeadMetadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case lead.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, lead.FieldScore)
	}
	if m.addfollowup_count != nil {
		fields = append(fields, lead.FieldFollowupCount)
	}
	if m.addwon_amount_cents != nil {
		fields = append(fields, lead.FieldWonAmountCents)
	}
	if m.addai_cost_cents != nil {
		fields = append(fields, lead.FieldAiCostCents)
	}
	if m.addversion != nil {
		fields = append(fields, lead.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldScore:
		return m.AddedScore()
	case lead.FieldFollowupCount:
		return m.AddedFollowupCount()
	case lead.FieldWonAmountCents:
		return m.AddedWonAmountCents()
	case lead.FieldAiCostCents:
		return m.AddedAiCostCents()
	case lead.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lead.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case lead.FieldFollowupCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFollowupCount(v)
		return nil
	case lead.FieldWonAmountCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWonAmountCents(v)
		return nil
	case lead.FieldAiCostCents:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAiCostCents(v)
		return nil
	case lead.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldName) {
		fields = append(fields, lead.FieldName)
	}
	if m.FieldCleared(lead.FieldCompanyName) {
		fields = append(fields, lead.FieldCompanyName)
	}
	if m.FieldCleared(lead.FieldCompanySize) {
		fields = append(fields, lead.FieldCompanySize)
	}
	if m.FieldCleared(lead.FieldEmail) {
		fields = append(fields, lead.FieldEmail)
	}
	if m.FieldCleared(lead.FieldCity) {
		fields = append(fields, lead.FieldCity)
	}
	if m.FieldCleared(lead.FieldState) {
		fields = append(fields, lead.FieldState)
	}
	if m.FieldCleared(lead.FieldGooglePlaceID) {
		fields = append(fields, lead.FieldGooglePlaceID)
	}
	if m.FieldCleared(lead.FieldPainPoints) {
		fields = append(fields, lead.FieldPainPoints)
	}
	if m.FieldCleared(lead.FieldObjections) {
		fields = append(fields, lead.FieldObjections)
	}
	if m.FieldCleared(lead.FieldLastContactAt) {
		fields = append(fields, lead.FieldLastContactAt)
	}
	if m.FieldCleared(lead.FieldNextFollowupAt) {
		fields = append(fields, lead.FieldNextFollowupAt)
	}
	if m.FieldCleared(lead.FieldWonPlan) {
		fields = append(fields, lead.FieldWonPlan)
	}
	if m.FieldCleared(lead.FieldWonAmountCents) {
		fields = append(fields, lead.FieldWonAmountCents)
	}
	if m.FieldCleared(lead.FieldWonAt) {
		fields = append(fields, lead.FieldWonAt)
	}
	if m.FieldCleared(lead.FieldLostAt) {
		fields = append(fields, lead.FieldLostAt)
	}
	if m.FieldCleared(lead.FieldLostReason) {
		fields = append(fields, lead.FieldLostReason)
	}
	if m.FieldCleared(lead.FieldMetadata) {
		fields = append(fields, lead.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldName:
		m.ClearName()
		return nil
	case lead.FieldCompanyName:
		m.ClearCompanyName()
		return nil
	case lead.FieldCompanySize:
		m.ClearCompanySize()
		return nil
	case lead.FieldEmail:
		m.ClearEmail()
		return nil
	case lead.FieldCity:
		m.ClearCity()
		return nil
	case lead.FieldState:
		m.ClearState()
		return nil
	case lead.FieldGooglePlaceID:
		m.ClearGooglePlaceID()
		return nil
	case lead.FieldPainPoints:
		m.ClearPainPoints()
		return nil
	case lead.FieldObjections:
		m.ClearObjections()
		return nil
	case lead.FieldLastContactAt:
		m.ClearLastContactAt()
		return nil
	case lead.FieldNextFollowupAt:
		m.ClearNextFollowupAt()
		return nil
	case lead.FieldWonPlan:
		m.ClearWonPlan()
		return nil
	case lead.FieldWonAmountCents:
		m.ClearWonAmountCents()
		return nil
	case lead.FieldWonAt:
		m.ClearWonAt()
		return nil
	case lead.FieldLostAt:
		m.ClearLostAt()
		return nil
	case lead.FieldLostReason:
		m.ClearLostReason()
		return nil
	case lead.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldPhone:
		m.ResetPhone()
		return nil
	case lead.FieldProduct:
		m.ResetProduct()
		return nil
	case lead.FieldName:
		m.ResetName()
		return nil
	case lead.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case lead.FieldCompanySize:
		m.ResetCompanySize()
		return nil
	case lead.FieldEmail:
		m.ResetEmail()
		return nil
	case lead.FieldCity:
		m.ResetCity()
		return nil
	case lead.FieldState:
		m.ResetState()
		return nil
	case lead.FieldStage:
		m.ResetStage()
		return nil
	case lead.FieldScore:
		m.ResetScore()
		return nil
	case lead.FieldAssignedAgent:
		m.ResetAssignedAgent()
		return nil
	case lead.FieldSource:
		m.ResetSource()
		return nil
	case lead.FieldGooglePlaceID:
		m.ResetGooglePlaceID()
		return nil
	case lead.FieldPainPoints:
		m.ResetPainPoints()
		return nil
	case lead.FieldObjections:
		m.ResetObjections()
		return nil
	case lead.FieldLastContactAt:
		m.ResetLastContactAt()
		return nil
	case lead.FieldNextFollowupAt:
		m.ResetNextFollowupAt()
		return nil
	case lead.FieldFollowupCount:
		m.ResetFollowupCount()
		return nil
	case lead.FieldWonPlan:
		m.ResetWonPlan()
		return nil
	case lead.FieldWonAmountCents:
		m.ResetWonAmountCents()
		return nil
	case lead.FieldWonAt:
		m.ResetWonAt()
		return nil
	case lead.FieldLostAt:
		m.ResetLostAt()
		return nil
	case lead.FieldLostReason:
		m.ResetLostReason()
		return nil
	case lead.FieldAiCostCents:
		m.ResetAiCostCents()
		return nil
	case lead.FieldMetadata:
		m.ResetMetadata()
		return nil
	case lead.FieldVersion:
		m.ResetVersion()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversations != nil {
		edges = append(edges, lead.EdgeConversations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.conversations))
		for id := range m.conversations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedconversations != nil {
		edges = append(edges, lead.EdgeConversations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.removedconversations))
		for id := range m.removedconversations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversations {
		edges = append(edges, lead.EdgeConversations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	switch name {
	case lead.EdgeConversations:
		return m.clearedconversations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	switch name {
	case lead.EdgeConversations:
		m.ResetConversations()
		return nil
	}
	return fmt.Errorf("unknown Lead edge %s", name)
}

// SalesMetricMutation represents an operation that mutates the SalesMetric nodes in the graph.
type SalesMetricMutation struct {
	config
	op               Op
	typ              string
	id               *int
	date             *string
	product          *product.Line
	leads_created    *int
	addleads_created *int
	messages_sent    *int
	addmessages_sent *int
	deals_won        *int
	adddeals_won     *int
	revenue_cents    *int
	addrevenue_cents *int
	ai_cost_cents    *float64
	addai_cost_cents *float64
	escalations      *int
	addescalations   *int
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SalesMetric, error)
	predicates       []predicate.SalesMetric
}

var _ ent.Mutation = (*SalesMetricMutation)(nil)

// salesmetricOption allows management of the mutation configuration using functional options.
type salesmetricOption func(*SalesMetricMutation)

// newSalesMetricMutation creates new mutation for the SalesMetric entity.
func newSalesMetricMutation(c config, op Op, opts ...salesmetricOption) *SalesMetricMutation {
	m := &SalesMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeSalesMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSalesMetricID sets the ID field of the mutation.
func withSalesMetricID(id int) salesmetricOption {
	return func(m *SalesMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *SalesMetric
		)
		m.oldValue = func(ctx context.Context) (*SalesMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SalesMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSalesMetric sets the old SalesMetric of the mutation.
func withSalesMetric(node *SalesMetric) salesmetricOption {
	return func(m *SalesMetricMutation) {
		m.oldValue = func(context.Context) (*SalesMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SalesMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SalesMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SalesMetricMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SalesMetricMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SalesMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDate sets the "date" field.
func (m *SalesMetricMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *SalesMetricMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the SalesMetric entity.
// If the SalesMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesMetricMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *SalesMetricMutation) ResetDate() {
	m.date = nil
}

// SetProduct sets the "product" field.
func (m *SalesMetricMutation) SetProduct(pr product.Line) {
	m.product = &pr
}

// Product returns the value of the "product" field in the mutation.
func (m *SalesMetricMutation) Product() (r product.Line, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProduct returns the old "product" field's value of the SalesMetric entity.
// If the SalesMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesMetricMutation) OldProduct(ctx context.Context) (v product.Line, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProduct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProduct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProduct: %w", err)
	}
	return oldValue.Product, nil
}

// ResetProduct resets all changes to the "product" field.
func (m *SalesMetricMutation) ResetProduct() {
	m.product = nil
}

// SetLeadsCreated sets the "leads_created" field.
func (m *SalesMetricMutation) SetLeadsCreated(i int) {
	m.leads_created = &i
	m.addleads_created = nil
}

// LeadsCreated returns the value of the "leads_created" field in the mutation.
func (m *SalesMetricMutation) LeadsCreated() (r int, exists bool) {
	v := m.leads_created
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadsCreated returns the old "leads_created" field's value of the SalesMetric entity.
// If the SalesMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesMetricMutation) OldLeadsCreated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadsCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadsCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadsCreated: %w", err)
	}
	return oldValue.LeadsCreated, nil
}

// AddLeadsCreated adds i to the "leads_created" field.
func (m *SalesMetricMutation) AddLeadsCreated(i int) {
	if m.addleads_created != nil {
		*m.addleads_created += i
	} else {
		m.addleads_created = &i
	}
}

// AddedLeadsCreated returns the value that was added to the "leads_created" field in this mutation.
func (m *SalesMetricMutation) AddedLeadsCreated() (r int, exists bool) {
	v := m.addleads_created
	if v == nil {
		return
	}
	return *v, true
}

// ResetLeadsCreated resets all changes to the "leads_created" field.
func (m *SalesMetricMutation) ResetLeadsCreated() {
	m.leads_created = nil
	m.addleads_created = nil
}

// SetMessagesSent sets the "messages_sent" field.
func (m *SalesMetricMutation) SetMessagesSent(i int) {
	m.messages_sent = &i
	m.addmessages_sent = nil
}

// MessagesSent returns the value of the "messages_sent" field in the mutation.
func (m *SalesMetricMutation) MessagesSent() (r int, exists bool) {
	v := m.messages_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldMessagesSent returns the old "messages_sent" field's value of the SalesMetric entity.
// If the SalesMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesMetricMutation) OldMessagesSent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessagesSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessagesSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessagesSent: %w", err)
	}
	return oldValue.MessagesSent, nil
}

// AddMessagesSent adds i to the "messages_sent" field.
func (m *SalesMetricMutation) AddMessagesSent(i int) {
	if m.addmessages_sent != nil {
		*m.addmessages_sent += i
	} else {
		m.addmessages_sent = &i
	}
}

// AddedMessagesSent returns the value that was added to the "messages_sent" field in this mutation.
func (m *SalesMetricMutation) AddedMessagesSent() (r int, exists bool) {
	v := m.addmessages_sent
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessagesSent resets all changes to the "messages_sent" field.
func (m *SalesMetricMutation) ResetMessagesSent() {
	m.messages_sent = nil
	m.addmessages_sent = nil
}

// SetDealsWon sets the "deals_won" field.
func (m *SalesMetricMutation) SetDealsWon(i int) {
	m.deals_won = &i
	m.adddeals_won = nil
}

// DealsWon returns the value of the "deals_won" field in the mutation.
func (m *SalesMetricMutation) DealsWon() (r int, exists bool) {
	v := m.deals_won
	if v == nil {
		return
	}
	return *v, true
}

// OldDealsWon returns the old "deals_won" field's value of the SalesMetric entity.
// If the SalesMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesMetricMutation) OldDealsWon(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDealsWon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDealsWon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDealsWon: %w", err)
	}
	return oldValue.DealsWon, nil
}

// AddDealsWon adds i to the "deals_won" field.
func (m *SalesMetricMutation) AddDealsWon(i int) {
	if m.adddeals_won != nil {
		*m.adddeals_won += i
	} else {
		m.adddeals_won = &i
	}
}

// AddedDealsWon returns the value that was added to the "deals_won" field in this mutation.
func (m *SalesMetricMutation) AddedDealsWon() (r int, exists bool) {
	v := m.adddeals_won
	if v == nil {
		return
	}
	return *v, true
}

// ResetDealsWon resets all changes to the "deals_won" field.
func (m *SalesMetricMutation) ResetDealsWon() {
	m.deals_won = nil
	m.adddeals_won = nil
}

// SetRevenueCents sets the "revenue_cents" field.
func (m *SalesMetricMutation) SetRevenueCents(i int) {
	m.revenue_cents = &i
	m.addrevenue_cents = nil
}

// RevenueCents returns the value of the "revenue_cents" field in the mutation.
func (m *SalesMetricMutation) RevenueCents() (r int, exists bool) {
	v := m.revenue_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldRevenueCents returns the old "revenue_cents" field's value of the SalesMetric entity.
// If the SalesMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesMetricMutation) OldRevenueCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevenueCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevenueCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevenueCents: %w", err)
	}
	return oldValue.RevenueCents, nil
}

// AddRevenueCents adds i to the "revenue_cents" field.
func (m *SalesMetricMutation) AddRevenueCents(i int) {
	if m.addrevenue_cents != nil {
		*m.addrevenue_cents += i
	} else {
		m.addrevenue_cents = &i
	}
}

// AddedRevenueCents returns the value that was added to the "revenue_cents" field in this mutation.
func (m *SalesMetricMutation) AddedRevenueCents() (r int, exists bool) {
	v := m.addrevenue_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetRevenueCents resets all changes to the "revenue_cents" field.
func (m *SalesMetricMutation) ResetRevenueCents() {
	m.revenue_cents = nil
	m.addrevenue_cents = nil
}

// SetAiCostCents sets the "ai_cost_cents" field.
func (m *SalesMetricMutation) SetAiCostCents(f float64) {
	m.ai_cost_cents = &f
	m.addai_cost_cents = nil
}

// AiCostCents returns the value of the "ai_cost_cents" field in the mutation.
func (m *SalesMetricMutation) AiCostCents() (r float64, exists bool) {
	v := m.ai_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldAiCostCents returns the old "ai_cost_cents" field's value of the SalesMetric entity.
// If the SalesMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesMetricMutation) OldAiCostCents(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiCostCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiCostCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiCostCents: %w", err)
	}
	return oldValue.AiCostCents, nil
}

// AddAiCostCents adds f to the "ai_cost_cents" field.
func (m *SalesMetricMutation) AddAiCostCents(f float64) {
	if m.addai_cost_cents != nil {
		*m.addai_cost_cents += f
	} else {
		m.addai_cost_cents = &f
	}
}

// AddedAiCostCents returns the value that was added to the "ai_cost_cents" field in this mutation.
func (m *SalesMetricMutation) AddedAiCostCents() (r float64, exists bool) {
	v := m.addai_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetAiCostCents resets all changes to the "ai_cost_cents" field.
func (m *SalesMetricMutation) ResetAiCostCents() {
	m.ai_cost_cents = nil
	m.addai_cost_cents = nil
}

// SetEscalations sets the "escalations" field.
func (m *SalesMetricMutation) SetEscalations(i int) {
	m.escalations = &i
	m.addescalations = nil
}

// Escalations returns the value of the "escalations" field in the mutation.
func (m *SalesMetricMutation) Escalations() (r int, exists bool) {
	v := m.escalations
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalations returns the old "escalations" field's value of the SalesMetric entity.
// If the SalesMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesMetricMutation) OldEscalations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalations: %w", err)
	}
	return oldValue.Escalations, nil
}

// AddEscalations adds i to the "escalations" field.
func (m *SalesMetricMutation) AddEscalations(i int) {
	if m.addescalations != nil {
		*m.addescalations += i
	} else {
		m.addescalations = &i
	}
}

// AddedEscalations returns the value that was added to the "escalations" field in this mutation.
func (m *SalesMetricMutation) AddedEscalations() (r int, exists bool) {
	v := m.addescalations
	if v == nil {
		return
	}
	return *v, true
}

// ResetEscalations resets all changes to the "escalations" field.
func (m *SalesMetricMutation) ResetEscalations() {
	m.escalations = nil
	m.addescalations = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SalesMetricMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SalesMetricMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SalesMetric entity.
// If the SalesMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesMetricMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SalesMetricMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SalesMetricMutation builder.
func (m *SalesMetricMutation) Where(ps ...predicate.SalesMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SalesMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SalesMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SalesMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SalesMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SalesMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SalesMetric).
func (m *SalesMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SalesMetricMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.date != nil {
		fields = append(fields, salesmetric.FieldDate)
	}
	if m.product != nil {
		fields = append(fields, salesmetric.FieldProduct)
	}
	if m.leads_created != nil {
		fields = append(fields, salesmetric.FieldLeadsCreated)
	}
	if m.messages_sent != nil {
		fields = append(fields, salesmetric.FieldMessagesSent)
	}
	if m.deals_won != nil {
		fields = append(fields, salesmetric.FieldDealsWon)
	}
	if m.revenue_cents != nil {
		fields = append(fields, salesmetric.FieldRevenueCents)
	}
	if m.ai_cost_cents != nil {
		fields = append(fields, salesmetric.FieldAiCostCents)
	}
	if m.escalations != nil {
		fields = append(fields, salesmetric.FieldEscalations)
	}
	if m.updated_at != nil {
		fields = append(fields, salesmetric.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SalesMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case salesmetric.FieldDate:
		return m.Date()
	case salesmetric.FieldProduct:
		return m.Product()
	case salesmetric.FieldLeadsCreated:
		return m.LeadsCreated()
	case salesmetric.FieldMessagesSent:
		return m.MessagesSent()
	case salesmetric.FieldDealsWon:
		return m.DealsWon()
	case salesmetric.FieldRevenueCents:
		return m.RevenueCents()
	case salesmetric.FieldAiCostCents:
		return m.AiCostCents()
	case salesmetric.FieldEscalations:
		return m.Escalations()
	case salesmetric.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SalesMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case salesmetric.FieldDate:
		return m.OldDate(ctx)
	case salesmetric.FieldProduct:
		return m.OldProduct(ctx)
	case salesmetric.FieldLeadsCreated:
		return m.OldLeadsCreated(ctx)
	case salesmetric.FieldMessagesSent:
		return m.OldMessagesSent(ctx)
	case salesmetric.FieldDealsWon:
		return m.OldDealsWon(ctx)
	case salesmetric.FieldRevenueCents:
		return m.OldRevenueCents(ctx)
	case salesmetric.FieldAiCostCents:
		return m.OldAiCostCents(ctx)
	case salesmetric.FieldEscalations:
		return m.OldEscalations(ctx)
	case salesmetric.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SalesMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SalesMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case salesmetric.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case salesmetric.FieldProduct:
		v, ok := value.(product.Line)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProduct(v)
		return nil
	case salesmetric.FieldLeadsCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadsCreated(v)
		return nil
	case salesmetric.FieldMessagesSent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessagesSent(v)
		return nil
	case salesmetric.FieldDealsWon:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDealsWon(v)
		return nil
	case salesmetric.FieldRevenueCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevenueCents(v)
		return nil
	case salesmetric.FieldAiCostCents:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiCostCents(v)
		return nil
	case salesmetric.FieldEscalations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalations(v)
		return nil
	case salesmetric.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SalesMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SalesMetricMutation) AddedFields() []string {
	var fields []string
	if m.addleads_created != nil {
		fields = append(fields, salesmetric.FieldLeadsCreated)
	}
	if m.addmessages_sent != nil {
		fields = append(fields, salesmetric.FieldMessagesSent)
	}
	if m.adddeals_won != nil {
		fields = append(fields, salesmetric.FieldDealsWon)
	}
	if m.addrevenue_cents != nil {
		fields = append(fields, salesmetric.FieldRevenueCents)
	}
	if m.addai_cost_cents != nil {
		fields = append(fields, salesmetric.FieldAiCostCents)
	}
	if m.addescalations != nil {
		fields = append(fields, salesmetric.FieldEscalations)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SalesMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case salesmetric.FieldLeadsCreated:
		return m.AddedLeadsCreated()
	case salesmetric.FieldMessagesSent:
		return m.AddedMessagesSent()
	case salesmetric.FieldDealsWon:
		return m.AddedDealsWon()
	case salesmetric.FieldRevenueCents:
		return m.AddedRevenueCents()
	case salesmetric.FieldAiCostCents:
		return m.AddedAiCostCents()
	case salesmetric.FieldEscalations:
		return m.AddedEscalations()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SalesMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case salesmetric.FieldLeadsCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeadsCreated(v)
		return nil
	case salesmetric.FieldMessagesSent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessagesSent(v)
		return nil
	case salesmetric.FieldDealsWon:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDealsWon(v)
		return nil
	case salesmetric.FieldRevenueCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevenueCents(v)
		return nil
	case salesmetric.FieldAiCostCents:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAiCostCents(v)
		return nil
	case salesmetric.FieldEscalations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEscalations(v)
		return nil
	}
	return fmt.Errorf("unknown SalesMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SalesMetricMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SalesMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SalesMetricMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SalesMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SalesMetricMutation) ResetField(name string) error {
	switch name {
	case salesmetric.FieldDate:
		m.ResetDate()
		return nil
	case salesmetric.FieldProduct:
		m.ResetProduct()
		return nil
	case salesmetric.FieldLeadsCreated:
		m.ResetLeadsCreated()
		return nil
	case salesmetric.FieldMessagesSent:
		m.ResetMessagesSent()
		return nil
	case salesmetric.FieldDealsWon:
		m.ResetDealsWon()
		return nil
	case salesmetric.FieldRevenueCents:
		m.ResetRevenueCents()
		return nil
	case salesmetric.FieldAiCostCents:
		m.ResetAiCostCents()
		return nil
	case salesmetric.FieldEscalations:
		m.ResetEscalations()
		return nil
	case salesmetric.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SalesMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SalesMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SalesMetricMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SalesMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SalesMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SalesMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SalesMetricMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SalesMetricMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SalesMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SalesMetricMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SalesMetric edge %s", name)
}

// ScrapingQueueMutation represents an operation that mutates the ScrapingQueue nodes in the graph.
type ScrapingQueueMutation struct {
	config
	op               Op
	typ              string
	id               *int
	google_place_id  *string
	product          *product.Line
	business_name    *string
	phone            *string
	address          *string
	city             *string
	state            *string
	rating           *float64
	addrating        *float64
	reviews_count    *int
	addreviews_count *int
	website          *string
	status           *scrapingqueue.Status
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ScrapingQueue, error)
	predicates       []predicate.ScrapingQueue
}

var _ ent.Mutation = (*ScrapingQueueMutation)(nil)

// scrapingqueueOption allows management of the mutation configuration using functional options.
type scrapingqueueOption func(*ScrapingQueueMutation)

// newScrapingQueueMutation creates new mutation for the ScrapingQueue entity.
func newScrapingQueueMutation(c config, op Op, opts ...scrapingqueueOption) *ScrapingQueueMutation {
	m := &ScrapingQueueMutation{
		config:        c,
		op:            op,
		typ:           TypeScrapingQueue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScrapingQueueID sets the ID field of the mutation.
func withScrapingQueueID(id int) scrapingqueueOption {
	return func(m *ScrapingQueueMutation) {
		var (
			err   error
			once  sync.Once
			value *ScrapingQueue
		)
		m.oldValue = func(ctx context.Context) (*ScrapingQueue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScrapingQueue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScrapingQueue sets the old ScrapingQueue of the mutation.
func withScrapingQueue(node *ScrapingQueue) scrapingqueueOption {
	return func(m *ScrapingQueueMutation) {
		m.oldValue = func(context.Context) (*ScrapingQueue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScrapingQueueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScrapingQueueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScrapingQueueMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScrapingQueueMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScrapingQueue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGooglePlaceID sets the "google_place_id" field.
func (m *ScrapingQueueMutation) SetGooglePlaceID(s string) {
	m.google_place_id = &s
}

// GooglePlaceID returns the value of the "google_place_id" field in the mutation.
func (m *ScrapingQueueMutation) GooglePlaceID() (r string, exists bool) {
	v := m.google_place_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGooglePlaceID returns the old "google_place_id" field's value of the ScrapingQueue entity.
// If the ScrapingQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapingQueueMutation) OldGooglePlaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGooglePlaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGooglePlaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGooglePlaceID: %w", err)
	}
	return oldValue.GooglePlaceID, nil
}

// ResetGooglePlaceID resets all changes to the "google_place_id" field.
func (m *ScrapingQueueMutation) ResetGooglePlaceID() {
	m.google_place_id = nil
}

// SetProduct sets the "product" field.
func (m *ScrapingQueueMutation) SetProduct(pr product.Line) {
	m.product = &pr
}

// Product returns the value of the "product" field in the mutation.
func (m *ScrapingQueueMutation) Product() (r product.Line, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProduct returns the old "product" field's value of the ScrapingQueue entity.
// If the ScrapingQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapingQueueMutation) OldProduct(ctx context.Context) (v product.Line, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProduct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProduct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProduct: %w", err)
	}
	return oldValue.Product, nil
}

// ResetProduct resets all changes to the "product" field.
func (m *ScrapingQueueMutation) ResetProduct() {
	m.product = nil
}

// SetBusinessName sets the "business_name" field.
func (m *ScrapingQueueMutation) SetBusinessName(s string) {
	m.business_name = &s
}

// BusinessName returns the value of the "business_name" field in the mutation.
func (m *ScrapingQueueMutation) BusinessName() (r string, exists bool) {
	v := m.business_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessName returns the old "business_name" field's value of the ScrapingQueue entity.
// If the ScrapingQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapingQueueMutation) OldBusinessName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessName: %w", err)
	}
	return oldValue.BusinessName, nil
}

// ResetBusinessName resets all changes to the "business_name" field.
func (m *ScrapingQueueMutation) ResetBusinessName() {
	m.business_name = nil
}

// SetPhone sets the "phone" field.
func (m *ScrapingQueueMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ScrapingQueueMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the ScrapingQueue entity.
// If the ScrapingQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapingQueueMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ScrapingQueueMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[scrapingqueue.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ScrapingQueueMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[scrapingqueue.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ScrapingQueueMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, scrapingqueue.FieldPhone)
}

// SetAddress sets the "address" field.
func (m *ScrapingQueueMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ScrapingQueueMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the ScrapingQueue entity.
// If the ScrapingQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapingQueueMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *ScrapingQueueMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[scrapingqueue.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *ScrapingQueueMutation) AddressCleared() bool {
	_, ok := m.clearedFields[scrapingqueue.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *ScrapingQueueMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, scrapingqueue.FieldAddress)
}

// SetCity sets the "city" field.
func (m *ScrapingQueueMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ScrapingQueueMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the ScrapingQueue entity.
// If the ScrapingQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapingQueueMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *ScrapingQueueMutation) ClearCity() {
	m.city = nil
	m.clearedFields[scrapingqueue.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *ScrapingQueueMutation) CityCleared() bool {
	_, ok := m.clearedFields[scrapingqueue.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *ScrapingQueueMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, scrapingqueue.FieldCity)
}

// SetState sets the "state" field.
func (m *ScrapingQueueMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ScrapingQueueMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ScrapingQueue entity.
// If the ScrapingQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapingQueueMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *ScrapingQueueMutation) ClearState() {
	m.state = nil
	m.clearedFields[scrapingqueue.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *ScrapingQueueMutation) StateCleared() bool {
	_, ok := m.clearedFields[scrapingqueue.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *ScrapingQueueMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, scrapingqueue.FieldState)
}

// SetRating sets the "rating" field.
func (m *ScrapingQueueMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ScrapingQueueMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the ScrapingQueue entity.
// If the ScrapingQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapingQueueMutation) OldRating(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *ScrapingQueueMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *ScrapingQueueMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ClearRating clears the value of the "rating" field.
func (m *ScrapingQueueMutation) ClearRating() {
	m.rating = nil
	m.addrating = nil
	m.clearedFields[scrapingqueue.FieldRating] = struct{}{}
}

// RatingCleared returns if the "rating" field was cleared in this mutation.
func (m *ScrapingQueueMutation) RatingCleared() bool {
	_, ok := m.clearedFields[scrapingqueue.FieldRating]
	return ok
}

// ResetRating resets all changes to the "rating" field.
func (m *ScrapingQueueMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
	delete(m.clearedFields, scrapingqueue.FieldRating)
}

// SetReviewsCount sets the "reviews_count" field.
func (m *ScrapingQueueMutation) SetReviewsCount(i int) {
	m.reviews_count = &i
	m.addreviews_count = nil
}

// ReviewsCount returns the value of the "reviews_count" field in the mutation.
func (m *ScrapingQueueMutation) ReviewsCount() (r int, exists bool) {
	v := m.reviews_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewsCount returns the old "reviews_count" field's value of the ScrapingQueue entity.
// If the ScrapingQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapingQueueMutation) OldReviewsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewsCount: %w", err)
	}
	return oldValue.ReviewsCount, nil
}

// AddReviewsCount adds i to the "reviews_count" field.
func (m *ScrapingQueueMutation) AddReviewsCount(i int) {
	if m.addreviews_count != nil {
		*m.addreviews_count += i
	} else {
		m.addreviews_count = &i
	}
}

// AddedReviewsCount returns the value that was added to the "reviews_count" field in this mutation.
func (m *ScrapingQueueMutation) AddedReviewsCount() (r int, exists bool) {
	v := m.addreviews_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewsCount resets all changes to the "reviews_count" field.
func (m *ScrapingQueueMutation) ResetReviewsCount() {
	m.reviews_count = nil
	m.addreviews_count = nil
}

// SetWebsite sets the "website" field.
func (m *ScrapingQueueMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *ScrapingQueueMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the ScrapingQueue entity.
// If the ScrapingQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapingQueueMutation) OldWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *ScrapingQueueMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[scrapingqueue.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *ScrapingQueueMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[scrapingqueue.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *ScrapingQueueMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, scrapingqueue.FieldWebsite)
}

// SetStatus sets the "status" field.
func (m *ScrapingQueueMutation) SetStatus(s scrapingqueue.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScrapingQueueMutation) Status() (r scrapingqueue.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScrapingQueue entity.
// If the ScrapingQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapingQueueMutation) OldStatus(ctx context.Context) (v scrapingqueue.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScrapingQueueMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScrapingQueueMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScrapingQueueMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScrapingQueue entity.
// If the ScrapingQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapingQueueMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScrapingQueueMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ScrapingQueueMutation builder.
func (m *ScrapingQueueMutation) Where(ps ...predicate.ScrapingQueue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScrapingQueueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScrapingQueueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScrapingQueue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScrapingQueueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScrapingQueueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScrapingQueue).
func (m *ScrapingQueueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScrapingQueueMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.google_place_id != nil {
		fields = append(fields, scrapingqueue.FieldGooglePlaceID)
	}
	if m.product != nil {
		fields = append(fields, scrapingqueue.FieldProduct)
	}
	if m.business_name != nil {
		fields = append(fields, scrapingqueue.FieldBusinessName)
	}
	if m.phone != nil {
		fields = append(fields, scrapingqueue.FieldPhone)
	}
	if m.address != nil {
		fields = append(fields, scrapingqueue.FieldAddress)
	}
	if m.city != nil {
		fields = append(fields, scrapingqueue.FieldCity)
	}
	if m.state != nil {
		fields = append(fields, scrapingqueue.FieldState)
	}
	if m.rating != nil {
		fields = append(fields, scrapingqueue.FieldRating)
	}
	if m.reviews_count != nil {
		fields = append(fields, scrapingqueue.FieldReviewsCount)
	}
	if m.website != nil {
		fields = append(fields, scrapingqueue.FieldWebsite)
	}
	if m.status != nil {
		fields = append(fields, scrapingqueue.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, scrapingqueue.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScrapingQueueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scrapingqueue.FieldGooglePlaceID:
		return m.GooglePlaceID()
	case scrapingqueue.FieldProduct:
		return m.Product()
	case scrapingqueue.FieldBusinessName:
		return m.BusinessName()
	case scrapingqueue.FieldPhone:
		return m.Phone()
	case scrapingqueue.FieldAddress:
		return m.Address()
	case scrapingqueue.FieldCity:
		return m.City()
	case scrapingqueue.FieldState:
		return m.State()
	case scrapingqueue.FieldRating:
		return m.Rating()
	case scrapingqueue.FieldReviewsCount:
		return m.ReviewsCount()
	case scrapingqueue.FieldWebsite:
		return m.Website()
	case scrapingqueue.FieldStatus:
		return m.Status()
	case scrapingqueue.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScrapingQueueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scrapingqueue.FieldGooglePlaceID:
		return m.OldGooglePlaceID(ctx)
	case scrapingqueue.FieldProduct:
		return m.OldProduct(ctx)
	case scrapingqueue.FieldBusinessName:
		return m.OldBusinessName(ctx)
	case scrapingqueue.FieldPhone:
		return m.OldPhone(ctx)
	case scrapingqueue.FieldAddress:
		return m.OldAddress(ctx)
	case scrapingqueue.FieldCity:
		return m.OldCity(ctx)
	case scrapingqueue.FieldState:
		return m.OldState(ctx)
	case scrapingqueue.FieldRating:
		return m.OldRating(ctx)
	case scrapingqueue.FieldReviewsCount:
		return m.OldReviewsCount(ctx)
	case scrapingqueue.FieldWebsite:
		return m.OldWebsite(ctx)
	case scrapingqueue.FieldStatus:
		return m.OldStatus(ctx)
	case scrapingqueue.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScrapingQueue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScrapingQueueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scrapingqueue.FieldGooglePlaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGooglePlaceID(v)
		return nil
	case scrapingqueue.FieldProduct:
		v, ok := value.(product.Line)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProduct(v)
		return nil
	case scrapingqueue.FieldBusinessName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessName(v)
		return nil
	case scrapingqueue.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case scrapingqueue.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case scrapingqueue.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case scrapingqueue.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case scrapingqueue.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case scrapingqueue.FieldReviewsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewsCount(v)
		return nil
	case scrapingqueue.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case scrapingqueue.FieldStatus:
		v, ok := value.(scrapingqueue.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scrapingqueue.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScrapingQueue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScrapingQueueMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, scrapingqueue.FieldRating)
	}
	if m.addreviews_count != nil {
		fields = append(fields, scrapingqueue.FieldReviewsCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScrapingQueueMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scrapingqueue.FieldRating:
		return m.AddedRating()
	case scrapingqueue.FieldReviewsCount:
		return m.AddedReviewsCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScrapingQueueMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scrapingqueue.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case scrapingqueue.FieldReviewsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewsCount(v)
		return nil
	}
	return fmt.Errorf("unknown ScrapingQueue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScrapingQueueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scrapingqueue.FieldPhone) {
		fields = append(fields, scrapingqueue.FieldPhone)
	}
	if m.FieldCleared(scrapingqueue.FieldAddress) {
		fields = append(fields, scrapingqueue.FieldAddress)
	}
	if m.FieldCleared(scrapingqueue.FieldCity) {
		fields = append(fields, scrapingqueue.FieldCity)
	}
	if m.FieldCleared(scrapingqueue.FieldState) {
		fields = append(fields, scrapingqueue.FieldState)
	}
	if m.FieldCleared(scrapingqueue.FieldRating) {
		fields = append(fields, scrapingqueue.FieldRating)
	}
	if m.FieldCleared(scrapingqueue.FieldWebsite) {
		fields = append(fields, scrapingqueue.FieldWebsite)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScrapingQueueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScrapingQueueMutation) ClearField(name string) error {
	switch name {
	case scrapingqueue.FieldPhone:
		m.ClearPhone()
		return nil
	case scrapingqueue.FieldAddress:
		m.ClearAddress()
		return nil
	case scrapingqueue.FieldCity:
		m.ClearCity()
		return nil
	case scrapingqueue.FieldState:
		m.ClearState()
		return nil
	case scrapingqueue.FieldRating:
		m.ClearRating()
		return nil
	case scrapingqueue.FieldWebsite:
		m.ClearWebsite()
		return nil
	}
	return fmt.Errorf("unknown ScrapingQueue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScrapingQueueMutation) ResetField(name string) error {
	switch name {
	case scrapingqueue.FieldGooglePlaceID:
		m.ResetGooglePlaceID()
		return nil
	case scrapingqueue.FieldProduct:
		m.ResetProduct()
		return nil
	case scrapingqueue.FieldBusinessName:
		m.ResetBusinessName()
		return nil
	case scrapingqueue.FieldPhone:
		m.ResetPhone()
		return nil
	case scrapingqueue.FieldAddress:
		m.ResetAddress()
		return nil
	case scrapingqueue.FieldCity:
		m.ResetCity()
		return nil
	case scrapingqueue.FieldState:
		m.ResetState()
		return nil
	case scrapingqueue.FieldRating:
		m.ResetRating()
		return nil
	case scrapingqueue.FieldReviewsCount:
		m.ResetReviewsCount()
		return nil
	case scrapingqueue.FieldWebsite:
		m.ResetWebsite()
		return nil
	case scrapingqueue.FieldStatus:
		m.ResetStatus()
		return nil
	case scrapingqueue.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScrapingQueue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScrapingQueueMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScrapingQueueMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScrapingQueueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScrapingQueueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScrapingQueueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScrapingQueueMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScrapingQueueMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScrapingQueue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScrapingQueueMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScrapingQueue edge %s", name)
}
