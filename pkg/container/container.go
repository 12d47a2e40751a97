package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jordanlanch/salesagent/config"
	"github.com/jordanlanch/salesagent/pkg/ai/agents"
	"github.com/jordanlanch/salesagent/pkg/ai/llm"
	"github.com/jordanlanch/salesagent/pkg/analytics"
	"github.com/jordanlanch/salesagent/pkg/api/handlers"
	"github.com/jordanlanch/salesagent/pkg/auth"
	"github.com/jordanlanch/salesagent/pkg/backup"
	"github.com/jordanlanch/salesagent/pkg/cache"
	"github.com/jordanlanch/salesagent/pkg/database"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/export"
	"github.com/jordanlanch/salesagent/pkg/jobs"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/metrics"
	"github.com/jordanlanch/salesagent/pkg/middleware"
	"github.com/jordanlanch/salesagent/pkg/monitoring"
	"github.com/jordanlanch/salesagent/pkg/notify"
	"github.com/jordanlanch/salesagent/pkg/payment"
	"github.com/jordanlanch/salesagent/pkg/processor"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/ratelimit"
	"github.com/jordanlanch/salesagent/pkg/scraper"
	"github.com/jordanlanch/salesagent/pkg/tools"
	"github.com/jordanlanch/salesagent/pkg/whatsapp"
	"github.com/prometheus/client_golang/prometheus"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger logger.Logger

	// Infrastructure
	DB      *database.Client
	Cache   *cache.Client
	Metrics *metrics.Metrics
	Monitor *monitoring.Monitor

	// WhatsApp
	Gateway *whatsapp.EvolutionClient
	Paced   *whatsapp.PacedSender
	Queue   *whatsapp.Queue
	Limiter *ratelimit.Limiter

	// Services
	LeadService      *leads.Service
	AnalyticsService *analytics.Service
	PaymentService   *payment.Service
	Notifier         *notify.Service
	Agents           *agents.Registry
	Processor        *processor.Service
	Runner           *jobs.Runner
	AuthService      *auth.Service
	ExportService    *export.Service

	// HTTP
	HTTPLimiter      *middleware.RateLimiter
	WebhookHandler   *handlers.WebhookHandler
	CronHandler      *handlers.CronHandler
	HealthHandler    *handlers.HealthHandler
	DashboardHandler *handlers.DashboardHandler
}

// New creates and initializes all application dependencies
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger.New(cfg.LogLevel),
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	if err := c.initServices(ctx); err != nil {
		c.Close()
		return nil, err
	}
	c.initHandlers()

	c.Logger.Info("Container initialized successfully",
		"environment", cfg.Server.Environment,
		"payment_provider", cfg.Payments.Provider,
		"rate_limit_store", cfg.RateLimit.Store)

	return c, nil
}

// initInfrastructure initializes database and cache connections
func (c *Container) initInfrastructure(ctx context.Context) error {
	var err error

	dbCfg := c.Config.Database
	c.DB, err = database.NewClient(ctx, dbCfg.URL, database.PoolConfig{
		MaxOpenConns:    dbCfg.MaxOpenConns,
		MaxIdleConns:    dbCfg.MaxIdleConns,
		ConnMaxLifetime: dbCfg.ConnMaxLifetime,
	}, c.Logger)
	if err != nil {
		c.Logger.Error("Failed to connect to database", "error", err)
		return err
	}

	c.Cache, err = cache.NewClient(c.Config.Redis.URL)
	if err != nil {
		c.Logger.Error("Failed to connect to cache", "error", err)
		c.DB.Close()
		return err
	}

	c.Metrics = metrics.New(prometheus.DefaultRegisterer)
	c.Monitor = monitoring.New(c.Logger)

	c.Logger.Info("Infrastructure initialized",
		"database", "connected",
		"cache", "connected")

	return nil
}

// initServices builds the domain services, leaves first.
func (c *Container) initServices(ctx context.Context) error {
	cfg := c.Config
	log := c.Logger

	c.AnalyticsService = analytics.NewService(c.DB.Ent, c.Cache, log, c.Metrics)
	c.LeadService = leads.NewService(c.DB.Ent, c.AnalyticsService, log, c.Metrics)

	// WhatsApp: gateway, minimum-interval pacing, and the FIFO queue used by batches.
	var store ratelimit.Store = ratelimit.NewRedisStore(c.Cache.Redis, "ratelimit:")
	if cfg.RateLimit.Store == "memory" {
		store = ratelimit.NewMemoryStore(time.Hour)
	}
	c.Limiter = ratelimit.New(store, ratelimit.Config{
		MaxPerHour:  cfg.RateLimit.MaxMessagesPerHour,
		MinInterval: cfg.RateLimit.MinInterval,
	})
	c.Gateway = whatsapp.NewEvolutionClient(map[product.Line]whatsapp.Instance{
		product.Occhiale: {BaseURL: cfg.Evolution.OcchialeURL, APIKey: cfg.Evolution.OcchialeKey, Name: cfg.Evolution.OcchialeInstance},
		product.Ekkle:    {BaseURL: cfg.Evolution.EkkleURL, APIKey: cfg.Evolution.EkkleKey, Name: cfg.Evolution.EkkleInstance},
	}, log, c.Metrics)
	c.Paced = whatsapp.NewPacedSender(c.Gateway, c.Limiter, log, c.Metrics)
	c.Queue = whatsapp.NewQueue(c.Paced, cfg.RateLimit.QueueDelay, log)

	c.Notifier = c.newNotifier()

	provider := c.newPaymentProvider()
	c.PaymentService = payment.NewService(c.LeadService, c.Paced, log, c.Metrics)

	executor := tools.NewExecutor(c.LeadService, c.Paced, provider, c.Notifier, log, c.Metrics)
	llmClient := llm.NewOpenAIClient(llm.Config{
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
		Timeout:   cfg.LLM.Timeout,
	}, log)
	c.Agents = agents.NewRegistry(llmClient, executor, cfg.LLM.MaxToolRounds, log, c.Metrics)
	c.Processor = processor.NewService(c.LeadService, c.Agents, c.Paced, log, c.Metrics).
		WithMonitor(c.Monitor)

	backupSvc, err := c.newBackup(ctx)
	if err != nil {
		return err
	}

	deps := jobs.Deps{
		Leads:     c.LeadService,
		Processor: c.Processor,
		Sender:    c.Queue,
		Rollup:    c.AnalyticsService,
		Backup:    backupSvc,
		Cache:     c.Cache,
		Log:       log,
		Metrics:   c.Metrics,
	}
	if cfg.Places.APIKey != "" {
		deps.Scraper = scraper.NewService(scraper.NewPlacesClient(cfg.Places.APIKey, cfg.Places.BaseURL), c.LeadService, log)
	} else {
		log.Warn("GOOGLE_PLACES_API_KEY not set, scraper job disabled")
	}
	c.Runner = jobs.NewRunner(deps)

	revoked := auth.NewRevocations(c.Cache)
	c.AuthService = auth.NewService(auth.Config{
		Secret:       cfg.Auth.JWTSecret,
		AdminEmail:   cfg.Auth.AdminEmail,
		PasswordHash: cfg.Auth.AdminPasswordHash,
		TTL:          cfg.Auth.JWTTTL,
	}, revoked)
	c.ExportService = export.NewService(c.LeadService)

	c.Logger.Info("Services initialized",
		"agents", len(c.Agents.Roles()),
		"payment_provider", provider.Name(),
		"notifications", c.Notifier.IsEnabled())
	return nil
}

func (c *Container) newPaymentProvider() domain.PaymentProvider {
	p := c.Config.Payments
	if p.Provider == "stripe" {
		return payment.NewStripeProvider(payment.StripeConfig{
			SecretKey:     p.StripeSecretKey,
			WebhookSecret: p.StripeWebhookSecret,
			SuccessURL:    p.StripeSuccessURL,
			CancelURL:     p.StripeCancelURL,
		}, c.Logger)
	}
	return payment.NewPagarmeClient(payment.PagarmeConfig{
		APIKey:     p.PagarmeAPIKey,
		BaseURL:    p.PagarmeBaseURL,
		SuccessURL: p.SuccessURL,
	}, c.Logger)
}

func (c *Container) newNotifier() *notify.Service {
	n := c.Config.Notify
	var slack notify.SlackClient
	if n.SlackWebhookURL != "" {
		slack = notify.NewWebhookClient(n.SlackWebhookURL)
	}
	var mailer *notify.Mailer
	if n.SendGridAPIKey != "" && len(n.EmailTo) > 0 {
		mailer = notify.NewMailer(n.SendGridAPIKey, "", n.EmailFrom, n.EmailFromName, n.EmailTo)
	}
	return notify.NewService(slack, mailer, c.Logger)
}

func (c *Container) newBackup(ctx context.Context) (*backup.Service, error) {
	b := c.Config.Backup
	bc := backup.Config{
		AWSAccessKeyID:     b.AWSAccessKeyID,
		AWSSecretAccessKey: b.AWSSecretAccessKey,
		AWSRegion:          b.AWSRegion,
		S3Bucket:           b.S3Bucket,
		Endpoint:           b.S3Endpoint,
		LocalDir:           b.LocalDir,
		RetentionDays:      b.RetentionDays,
	}

	var store backup.ObjectStore
	if b.S3Bucket != "" {
		s3Client, err := backup.NewS3Client(ctx, bc)
		if err != nil {
			return nil, fmt.Errorf("backup: %w", err)
		}
		store = s3Client
	}
	return backup.NewService(c.DB.Ent, store, bc, c.Logger)
}

// initHandlers initializes all HTTP handlers
func (c *Container) initHandlers() {
	cfg := c.Config

	c.HTTPLimiter = middleware.NewRateLimiter(cfg.Server.RequestsPerMinute, cfg.Server.Burst)

	stripeSecret := ""
	if cfg.Payments.Provider == "stripe" {
		stripeSecret = cfg.Payments.StripeWebhookSecret
	}
	c.WebhookHandler = handlers.NewWebhookHandler(c.Processor, c.Limiter, c.PaymentService,
		cfg.Payments.PagarmeWebhookSecret, stripeSecret, c.Logger)
	c.CronHandler = handlers.NewCronHandler(c.Runner, c.Logger)

	roles := c.Agents.Roles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	c.HealthHandler = handlers.NewHealthHandler(c.Monitor, names, map[string]handlers.Pinger{
		"database": c.DB,
		"cache":    c.Cache,
	}, c.Gateway, cfg.Server.Environment)

	c.DashboardHandler = handlers.NewDashboardHandler(c.AuthService, c.LeadService, c.AnalyticsService, c.ExportService, c.Logger)

	c.Logger.Info("Handlers initialized")
}

// Close closes all resources (database, cache connections)
func (c *Container) Close() error {
	c.Logger.Info("Shutting down container...")

	if c.HTTPLimiter != nil {
		c.HTTPLimiter.Stop()
	}
	if c.Queue != nil {
		c.Queue.Close()
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.Logger.Error("Failed to close database", "error", err)
			return err
		}
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Error("Failed to close cache", "error", err)
			return err
		}
	}

	c.Logger.Info("Container shutdown complete")
	return nil
}
