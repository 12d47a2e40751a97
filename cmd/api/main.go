package main

// @title Sales Agent API
// @version 2.0
// @description WhatsApp sales automation for Occhiale and Ekkle: Evolution webhooks, payment webhooks, cron triggers and the sales dashboard.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey WebhookKey
// @in header
// @name apikey
// @description Evolution API key sent with every webhook delivery.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/jordanlanch/salesagent/config"
	"github.com/jordanlanch/salesagent/pkg/api/handlers"
	"github.com/jordanlanch/salesagent/pkg/container"
	"github.com/jordanlanch/salesagent/pkg/jobs"
	custommiddleware "github.com/jordanlanch/salesagent/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.Server.Environment)

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Server.Environment,
			TracesSampleRate: 0.2,
			AttachStacktrace: true,
			BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
				// Strip the webhook key and bearer tokens before events leave the process.
				if event.Request != nil {
					delete(event.Request.Headers, "Authorization")
					delete(event.Request.Headers, "Apikey")
					delete(event.Request.Headers, "X-Api-Key")
				}
				return event
			},
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.Server.Environment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := container.New(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize application: %v", err)
	}
	appLog := app.Logger

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				appLog.Warn("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "error", v.Error)
				return nil
			}
			appLog.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	e.Use(app.Metrics.Middleware())
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.Server.AllowedOrigins)))
	e.Use(middleware.Gzip())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(app.HTTPLimiter.RateLimitMiddleware())

	registerRoutes(e, app)

	// WhatsApp batches drain in the background until shutdown.
	go app.Queue.Run(ctx)

	var cronManager *jobs.CronManager
	if cfg.Cron.Internal {
		loc, err := time.LoadLocation(cfg.Cron.Timezone)
		if err != nil {
			log.Fatalf("❌ Invalid cron timezone %q: %v", cfg.Cron.Timezone, err)
		}
		cronManager = jobs.NewCronManager(app.Runner, loc, appLog)
		if err := cronManager.SetupJobs(jobs.DefaultSchedules); err != nil {
			log.Fatalf("❌ Failed to schedule jobs: %v", err)
		}
		cronManager.Start()
		log.Printf("⏰ Cron jobs scheduled in-process (%s)", cfg.Cron.Timezone)
	} else {
		log.Printf("⏰ Cron jobs expect external triggers on POST /api/v1/cron/:job")
	}

	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Sales Agent API starting on %s", address)
	log.Printf("🤖 LLM model: %s (max %d tool rounds)", cfg.LLM.Model, cfg.LLM.MaxToolRounds)
	log.Printf("💳 Payment provider: %s", cfg.Payments.Provider)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d), WhatsApp %d msg/hour per lead",
		cfg.Server.RequestsPerMinute, cfg.Server.Burst, cfg.RateLimit.MaxMessagesPerHour)

	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutting down server...")

	if cronManager != nil {
		cronManager.Stop()
		log.Println("✅ Cron jobs stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	// In-flight agent turns started by webhooks finish before the store closes.
	app.WebhookHandler.Wait()
	if err := app.Close(); err != nil {
		log.Printf("⚠️  Cleanup failed: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}

func registerRoutes(e *echo.Echo, app *container.Container) {
	cfg := app.Config

	e.GET("/health", app.HealthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")
	v1.GET("/health", app.HealthHandler.Health)
	v1.GET("/status", app.HealthHandler.Status)

	hooks := v1.Group("/webhooks")
	{
		hooks.GET("/evolution", app.WebhookHandler.EvolutionStatus)
		hooks.POST("/evolution", app.WebhookHandler.Evolution, custommiddleware.WebhookAPIKey(cfg.Evolution.WebhookKey))
		hooks.POST("/pagarme", app.WebhookHandler.Pagarme)
		hooks.POST("/stripe", app.WebhookHandler.Stripe)
	}

	cron := v1.Group("/cron")
	{
		cron.GET("", app.CronHandler.Info)
		cron.POST("/:job", app.CronHandler.Run, custommiddleware.CronSecret(cfg.Cron.Secret))
	}

	dash := app.DashboardHandler
	d := v1.Group("/dashboard")
	d.POST("/auth/login", dash.Login)

	protected := d.Group("", custommiddleware.JWT(app.AuthService))
	{
		protected.POST("/auth/logout", dash.Logout)

		protected.GET("/leads", dash.ListLeads)
		protected.POST("/leads", dash.CreateLead)
		protected.GET("/leads/export", dash.ExportLeads)
		protected.GET("/leads/:id", dash.GetLead)
		protected.PATCH("/leads/:id", dash.UpdateLead)
		protected.DELETE("/leads/:id", dash.DeleteLead)

		protected.GET("/funnel", dash.Funnel)
		protected.GET("/metrics", dash.Metrics)
		protected.GET("/metrics/daily", dash.DailyMetrics)

		protected.GET("/conversations", dash.Conversations)
		protected.GET("/conversations/recent", dash.RecentConversations)
		protected.GET("/conversations/stats", dash.ConversationStats)
	}
}
