// Package leads persists leads and their conversations.
package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/metrics"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
)

// MaxMutateAttempts bounds optimistic-concurrency retries.
const MaxMutateAttempts = 3

// Counter receives increments of the daily sales aggregate.
type Counter interface {
	Add(ctx context.Context, line product.Line, d models.MetricDelta) error
}

// Service handles lead persistence
type Service struct {
	db      *ent.Client
	log     logger.Logger
	metrics *metrics.Metrics
	counter Counter
	now     func() time.Time
}

// NewService creates a new lead service. counter may be nil.
func NewService(db *ent.Client, counter Counter, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		db:      db,
		log:     log,
		metrics: m,
		counter: counter,
		now:     time.Now,
	}
}

// Client exposes the ent client for read-only reporting queries.
func (s *Service) Client() *ent.Client {
	return s.db
}

// NewLead holds the initial values of a created lead.
type NewLead struct {
	Name           string
	CompanyName    string
	Email          string
	City           string
	State          string
	Stage          pipeline.Stage
	Source         lead.Source
	GooglePlaceID  string
	NextFollowupAt *time.Time
}

// FindOrCreate returns the lead for (phone, line), creating it with init when
// missing. Concurrent callers racing on the unique index converge on the
// same row.
func (s *Service) FindOrCreate(ctx context.Context, phone string, line product.Line, init NewLead) (*ent.Lead, bool, error) {
	existing, err := s.GetByPhone(ctx, phone, line)
	if err == nil {
		return existing, false, nil
	}
	if !domain.IsNotFound(err) {
		return nil, false, err
	}

	created, err := s.create(ctx, phone, line, init)
	if err == nil {
		return created, true, nil
	}
	if ent.IsConstraintError(err) {
		existing, err := s.GetByPhone(ctx, phone, line)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	return nil, false, err
}

// Create inserts a lead and fails with a conflict when (phone, line) exists.
func (s *Service) Create(ctx context.Context, phone string, line product.Line, init NewLead) (*ent.Lead, error) {
	l, err := s.create(ctx, phone, line, init)
	if ent.IsConstraintError(err) {
		return nil, domain.NewConflictError(fmt.Sprintf("lead %s already exists for %s", phone, line))
	}
	return l, err
}

func (s *Service) create(ctx context.Context, phone string, line product.Line, init NewLead) (*ent.Lead, error) {
	if init.Stage == "" {
		init.Stage = pipeline.StageNew
	}
	if init.Source == "" {
		init.Source = lead.SourceInboundWhatsapp
	}

	l, err := s.db.Lead.Create().
		SetPhone(phone).
		SetProduct(line).
		SetName(init.Name).
		SetCompanyName(init.CompanyName).
		SetEmail(init.Email).
		SetCity(init.City).
		SetState(init.State).
		SetStage(init.Stage).
		SetAssignedAgent(pipeline.AgentFor(init.Stage)).
		SetSource(init.Source).
		SetGooglePlaceID(init.GooglePlaceID).
		SetNillableNextFollowupAt(init.NextFollowupAt).
		SetMetadata(models.LeadMetadata{Version: models.MetadataVersion}).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	s.log.Info("Lead created", "lead_id", l.ID, "product", line, "source", init.Source, "stage", init.Stage)
	s.metrics.RecordLeadCreated(string(line), string(init.Source))
	s.count(ctx, line, models.MetricDelta{LeadsCreated: 1})
	return l, nil
}

// Get returns a lead by id.
func (s *Service) Get(ctx context.Context, id int) (*ent.Lead, error) {
	l, err := s.db.Lead.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return l, nil
}

// GetByPhone returns the lead of a phone on a product line.
func (s *Service) GetByPhone(ctx context.Context, phone string, line product.Line) (*ent.Lead, error) {
	l, err := s.db.Lead.Query().
		Where(lead.Phone(phone), lead.ProductEQ(line)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, fmt.Errorf("failed to get lead by phone: %w", err)
	}
	return l, nil
}

// MutateFunc stages changes for the current snapshot of a lead. Returning an
// error aborts the mutation without writing.
type MutateFunc func(current *ent.Lead, u *ent.LeadUpdate) error

// Mutate applies fn as a conditional update on the lead's version. When
// another writer got there first the lead is re-read and fn runs again, up
// to MaxMutateAttempts times.
func (s *Service) Mutate(ctx context.Context, id int, fn MutateFunc) (*ent.Lead, error) {
	for attempt := 1; attempt <= MaxMutateAttempts; attempt++ {
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		u := s.db.Lead.Update().
			Where(lead.ID(id), lead.Version(current.Version)).
			AddVersion(1)
		if err := fn(current, u); err != nil {
			return nil, err
		}

		n, err := u.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update lead: %w", err)
		}
		if n == 1 {
			updated, err := s.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			if updated.Stage != current.Stage {
				s.metrics.RecordStageTransition(string(updated.Product), string(current.Stage), string(updated.Stage))
				s.log.Info("Lead stage changed", "lead_id", id, "from", current.Stage, "to", updated.Stage)
			}
			return updated, nil
		}

		s.log.Debug("Lead version conflict, retrying", "lead_id", id, "attempt", attempt)
	}
	return nil, domain.NewConflictError(fmt.Sprintf("lead %d was modified concurrently", id))
}

// Transition moves a lead to stage `to` when the pipeline allows it.
// Side fields (agent, timestamps) are set by extra.
func (s *Service) Transition(ctx context.Context, id int, to pipeline.Stage, extra MutateFunc) (*ent.Lead, error) {
	return s.Mutate(ctx, id, func(current *ent.Lead, u *ent.LeadUpdate) error {
		if err := CheckTransition(current.Stage, to); err != nil {
			return err
		}
		u.SetStage(to)
		if extra != nil {
			return extra(current, u)
		}
		return nil
	})
}

// CheckTransition returns a transition error for moves outside the pipeline.
func CheckTransition(from, to pipeline.Stage) error {
	if !pipeline.CanTransition(from, to) {
		return domain.NewTransitionError(string(from), string(to))
	}
	return nil
}

// Delete removes a lead and its conversations. Only the dashboard deletes.
func (s *Service) Delete(ctx context.Context, id int) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if _, err := tx.Conversation.Delete().Where(conversationOf(id)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to delete conversations: %w", err)
	}
	if err := tx.Lead.DeleteOneID(id).Exec(ctx); err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("lead")
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return tx.Commit()
}

// Due returns up to limit leads in one of stages whose next follow-up is
// before now, oldest first.
func (s *Service) Due(ctx context.Context, stages []pipeline.Stage, now time.Time, limit int) ([]*ent.Lead, error) {
	return s.db.Lead.Query().
		Where(
			lead.StageIn(stages...),
			lead.NextFollowupAtNotNil(),
			lead.NextFollowupAtLTE(now),
		).
		Order(ent.Asc(lead.FieldNextFollowupAt)).
		Limit(limit).
		All(ctx)
}

func (s *Service) count(ctx context.Context, line product.Line, d models.MetricDelta) {
	if s.counter == nil || d.IsZero() {
		return
	}
	if err := s.counter.Add(ctx, line, d); err != nil {
		s.log.Warn("Failed to update daily sales metrics", "product", line, "error", err)
	}
}

// Count forwards a delta to the daily aggregate. Failures are logged.
func (s *Service) Count(ctx context.Context, line product.Line, d models.MetricDelta) {
	s.count(ctx, line, d)
}
