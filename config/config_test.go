package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "pagarme", cfg.Payments.Provider)
	assert.Equal(t, 100, cfg.RateLimit.MaxMessagesPerHour)
	assert.Equal(t, 3*time.Second, cfg.RateLimit.MinInterval)
	assert.Equal(t, "America/Sao_Paulo", cfg.Cron.Timezone)
	assert.False(t, cfg.Cron.Internal)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EVOLUTION_API_URL", "https://evo.example.com")
	t.Setenv("EVOLUTION_API_KEY", "shared")
	t.Setenv("EVOLUTION_KEY_EKKLE", "ekkle-key")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("WHATSAPP_RATE_LIMIT_MS", "1500")
	t.Setenv("CRON_INTERNAL", "true")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("ALERT_EMAIL_TO", "ops@example.com")

	cfg := Load()
	assert.Equal(t, "https://evo.example.com", cfg.Evolution.OcchialeURL)
	assert.Equal(t, "shared", cfg.Evolution.OcchialeKey)
	assert.Equal(t, "ekkle-key", cfg.Evolution.EkkleKey)
	assert.Equal(t, "shared", cfg.Evolution.WebhookKey)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 1500*time.Millisecond, cfg.RateLimit.MinInterval)
	assert.True(t, cfg.Cron.Internal)
	assert.Equal(t, 2*time.Hour, cfg.Auth.JWTTTL)
	assert.Equal(t, []string{"ops@example.com"}, cfg.Notify.EmailTo)
}

func TestValidate(t *testing.T) {
	t.Run("bad provider", func(t *testing.T) {
		cfg := Load()
		cfg.Payments.Provider = "paypal"
		assert.ErrorContains(t, cfg.Validate(), "PAYMENT_PROVIDER")
	})

	t.Run("production requires secrets", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		err := Load().Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "CRON_SECRET is required")
		assert.ErrorContains(t, err, "PAGARME_WEBHOOK_SECRET is required")
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("production with stripe", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("PAYMENT_PROVIDER", "stripe")
		err := Load().Validate()
		assert.ErrorContains(t, err, "STRIPE_WEBHOOK_SECRET is required")
		assert.NotContains(t, err.Error(), "PAGARME")
	})
}
