// Package analytics maintains the daily sales aggregate and computes the
// dashboard metrics.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/salesmetric"
	"github.com/jordanlanch/salesagent/pkg/cache"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/metrics"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/product"
)

const dateLayout = "2006-01-02"

// Location is the business day boundary used for the daily aggregate.
var Location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

// Day formats t as the aggregate key.
func Day(t time.Time) string {
	return t.In(Location).Format(dateLayout)
}

// Service handles sales analytics
type Service struct {
	db       *ent.Client
	cache    *cache.Client
	log      logger.Logger
	metrics  *metrics.Metrics
	cacheTTL time.Duration
	now      func() time.Time
}

// NewService creates a new analytics service. cache may be nil.
func NewService(db *ent.Client, c *cache.Client, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		db:       db,
		cache:    c,
		log:      log,
		metrics:  m,
		cacheTTL: 60 * time.Second,
		now:      time.Now,
	}
}

// Add increments today's aggregate row of a product line.
func (s *Service) Add(ctx context.Context, line product.Line, d models.MetricDelta) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := s.db.SalesMetric.Create().
		SetDate(Day(s.now())).
		SetProduct(line).
		SetLeadsCreated(d.LeadsCreated).
		SetMessagesSent(d.MessagesSent).
		SetDealsWon(d.DealsWon).
		SetRevenueCents(d.RevenueCents).
		SetAiCostCents(d.AICostCents).
		SetEscalations(d.Escalations).
		OnConflictColumns(salesmetric.FieldDate, salesmetric.FieldProduct).
		Update(func(u *ent.SalesMetricUpsert) {
			u.AddLeadsCreated(d.LeadsCreated)
			u.AddMessagesSent(d.MessagesSent)
			u.AddDealsWon(d.DealsWon)
			u.AddRevenueCents(d.RevenueCents)
			u.AddAiCostCents(d.AICostCents)
			u.AddEscalations(d.Escalations)
			u.UpdateUpdatedAt()
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert sales metric: %w", err)
	}
	return nil
}

// Daily returns the aggregate rows of the last days, oldest first.
func (s *Service) Daily(ctx context.Context, line string, days int) ([]models.DailyMetric, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := s.db.SalesMetric.Query().
		Where(salesmetric.DateGTE(Day(s.now().AddDate(0, 0, -days))))
	if line != "" {
		query = query.Where(salesmetric.ProductEQ(product.Line(line)))
	}

	rows, err := query.Order(ent.Asc(salesmetric.FieldDate), ent.Asc(salesmetric.FieldProduct)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily metrics: %w", err)
	}

	out := make([]models.DailyMetric, len(rows))
	for i, r := range rows {
		out[i] = models.DailyMetric{
			Date:         r.Date,
			Product:      string(r.Product),
			LeadsCreated: r.LeadsCreated,
			MessagesSent: r.MessagesSent,
			DealsWon:     r.DealsWon,
			RevenueCents: r.RevenueCents,
			AICostCents:  r.AiCostCents,
			Escalations:  r.Escalations,
		}
	}
	return out, nil
}
