package scraper

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/ent/scrapingqueue"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/phone"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"golang.org/x/time/rate"
)

const (
	placePause = 100 * time.Millisecond
	cityPause  = 500 * time.Millisecond
	// first contact goes out a day after ingestion
	firstContactDelay = 24 * time.Hour
)

// "São Paulo - SP" inside a formatted address
var cityState = regexp.MustCompile(`^\s*(.+?)\s+-\s+([A-Z]{2})\s*$`)

// Result summarizes one scraping run.
type Result struct {
	Product  product.Line `json:"product"`
	Cities   int          `json:"cities"`
	Total    int          `json:"total"`
	New      int          `json:"new"`
	Existing int          `json:"existing"`
	NoPhone  int          `json:"no_phone"`
	Errors   int          `json:"errors"`
}

// Service searches each target city of a product line and queues every new
// place, creating a scraped lead for places with a phone.
type Service struct {
	places    Places
	db        *ent.Client
	leads     *leads.Service
	log       logger.Logger
	limiter   *rate.Limiter
	cityPause time.Duration
	now       func() time.Time
}

// NewService creates a scraper.
func NewService(places Places, store *leads.Service, log logger.Logger) *Service {
	return &Service{
		places:    places,
		db:        store.Client(),
		leads:     store,
		log:       log,
		limiter:   rate.NewLimiter(rate.Every(placePause), 1),
		cityPause: cityPause,
		now:       time.Now,
	}
}

// WithPacing overrides the delays between places and between cities.
func (s *Service) WithPacing(place, city time.Duration) *Service {
	if place <= 0 {
		s.limiter = rate.NewLimiter(rate.Inf, 1)
	} else {
		s.limiter = rate.NewLimiter(rate.Every(place), 1)
	}
	s.cityPause = city
	return s
}

// WithClock replaces the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Run scrapes cities for line; an empty list uses the line's target cities.
// A failing city is counted and skipped.
func (s *Service) Run(ctx context.Context, line product.Line, cities []string) (*Result, error) {
	cfg, err := product.Get(line)
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		cities = cfg.ScrapeCities
	}

	res := &Result{Product: line}
	s.log.Info("🔎 Scraping started", "product", line, "cities", len(cities))

	for i, city := range cities {
		if i > 0 && s.cityPause > 0 {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			case <-time.After(s.cityPause):
			}
		}
		if err := s.scrapeCity(ctx, cfg, city, res); err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			s.log.Warn("City scrape failed", "product", line, "city", city, "error", err)
			res.Errors++
		}
		res.Cities++
	}

	s.log.Info("✅ Scraping finished", "product", line, "total", res.Total, "new", res.New,
		"existing", res.Existing, "no_phone", res.NoPhone, "errors", res.Errors)
	return res, nil
}

func (s *Service) scrapeCity(ctx context.Context, cfg *product.Config, city string, res *Result) error {
	query := fmt.Sprintf("%s em %s", cfg.ScrapeQuery, city)
	found, err := s.places.TextSearch(ctx, query)
	if errors.Is(err, ErrNoResults) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, p := range found {
		res.Total++
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
		if err := s.ingest(ctx, cfg.Line, city, p, res); err != nil {
			s.log.Warn("Place ingestion failed", "place_id", p.PlaceID, "name", p.Name, "error", err)
			res.Errors++
		}
	}
	return nil
}

func (s *Service) ingest(ctx context.Context, line product.Line, searchCity string, found Place, res *Result) error {
	exists, err := s.db.ScrapingQueue.Query().
		Where(scrapingqueue.GooglePlaceID(found.PlaceID)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		res.Existing++
		return nil
	}

	p := found
	if details, err := s.places.Details(ctx, found.PlaceID); err == nil {
		p = *details
	} else {
		s.log.Debug("Places details unavailable, using search result", "place_id", found.PlaceID, "error", err)
	}

	city, state := SplitAddress(p.Address)
	if city == "" {
		city = searchCity
	}

	number := ""
	if p.Phone != "" {
		if n, err := phone.Normalize(p.Phone); err == nil {
			number = n
		}
	}

	status := scrapingqueue.StatusReady
	if number == "" {
		status = scrapingqueue.StatusNoPhone
	}
	q := s.db.ScrapingQueue.Create().
		SetGooglePlaceID(found.PlaceID).
		SetProduct(line).
		SetBusinessName(p.Name).
		SetAddress(p.Address).
		SetCity(city).
		SetState(state).
		SetWebsite(p.Website).
		SetReviewsCount(p.Reviews).
		SetStatus(status)
	if number != "" {
		q.SetPhone(number)
	}
	if p.Rating > 0 {
		q.SetRating(p.Rating)
	}
	entry, err := q.Save(ctx)
	if ent.IsConstraintError(err) {
		res.Existing++
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to queue place: %w", err)
	}

	if number == "" {
		res.NoPhone++
		return nil
	}

	next := s.now().Add(firstContactDelay)
	_, created, err := s.leads.FindOrCreate(ctx, number, line, leads.NewLead{
		CompanyName:    p.Name,
		City:           city,
		State:          state,
		Stage:          pipeline.StageScraped,
		Source:         lead.SourceScraper,
		GooglePlaceID:  found.PlaceID,
		NextFollowupAt: &next,
	})
	if err != nil {
		return err
	}
	if created {
		res.New++
	} else {
		res.Existing++
	}
	return s.db.ScrapingQueue.UpdateOne(entry).SetStatus(scrapingqueue.StatusImported).Exec(ctx)
}

// SplitAddress extracts city and state from a Brazilian formatted address
// such as "R. Augusta, 1500 - Consolação, São Paulo - SP, 01304-001, Brasil".
func SplitAddress(address string) (city, state string) {
	parts := strings.Split(address, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		if m := cityState.FindStringSubmatch(parts[i]); m != nil {
			return m[1], m[2]
		}
	}
	return "", ""
}
