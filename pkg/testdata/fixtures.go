// Package testdata builds in-memory databases and fake leads for tests.
package testdata

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/enttest"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

var dbSeq atomic.Int64

// OpenDB returns a migrated ent client on a private in-memory SQLite
// database, closed when the test ends.
func OpenDB(t testing.TB) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:salesagent_%d?mode=memory&cache=shared&_fk=1", dbSeq.Add(1))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

// LeadOption customizes a generated lead.
type LeadOption func(*ent.LeadCreate)

// WithStage sets the stage and the matching agent.
func WithStage(s pipeline.Stage) LeadOption {
	return func(c *ent.LeadCreate) {
		c.SetStage(s).SetAssignedAgent(pipeline.AgentFor(s))
	}
}

// WithProduct sets the product line.
func WithProduct(l product.Line) LeadOption {
	return func(c *ent.LeadCreate) { c.SetProduct(l) }
}

// WithPhone sets the phone number.
func WithPhone(p string) LeadOption {
	return func(c *ent.LeadCreate) { c.SetPhone(p) }
}

// WithAgent overrides the assigned agent.
func WithAgent(r pipeline.Role) LeadOption {
	return func(c *ent.LeadCreate) { c.SetAssignedAgent(r) }
}

// WithNextFollowup schedules the next contact.
func WithNextFollowup(at time.Time) LeadOption {
	return func(c *ent.LeadCreate) { c.SetNextFollowupAt(at) }
}

// WithLastContact sets the last contact time.
func WithLastContact(at time.Time) LeadOption {
	return func(c *ent.LeadCreate) { c.SetLastContactAt(at) }
}

// WithMetadata sets the typed metadata.
func WithMetadata(md models.LeadMetadata) LeadOption {
	return func(c *ent.LeadCreate) { c.SetMetadata(md) }
}

// WithFollowupCount sets the follow-up counter.
func WithFollowupCount(n int) LeadOption {
	return func(c *ent.LeadCreate) { c.SetFollowupCount(n) }
}

// Phone returns a random Brazilian mobile number in canonical form.
func Phone() string {
	return "55" + gofakeit.Numerify("119########")
}

// NewLead inserts a lead with fake profile data.
func NewLead(t testing.TB, client *ent.Client, opts ...LeadOption) *ent.Lead {
	t.Helper()
	c := client.Lead.Create().
		SetPhone(Phone()).
		SetProduct(product.Occhiale).
		SetName(gofakeit.FirstName()).
		SetCompanyName(gofakeit.Company()).
		SetEmail(gofakeit.Email()).
		SetCity(gofakeit.RandomString([]string{"São Paulo", "Curitiba", "Recife", "Belo Horizonte"})).
		SetState("SP").
		SetSource(lead.SourceInboundWhatsapp).
		SetMetadata(models.LeadMetadata{Version: models.MetadataVersion})
	for _, opt := range opts {
		opt(c)
	}

	l, err := c.Save(context.Background())
	require.NoError(t, err)
	return l
}
