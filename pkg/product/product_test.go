package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	cfg, err := Get(Occhiale)
	require.NoError(t, err)
	assert.Equal(t, "Ana", cfg.AgentName)
	assert.Len(t, cfg.OnboardingSteps, 8)
	assert.Len(t, cfg.NurtureDrip, 5)

	cfg, err = Get(Ekkle)
	require.NoError(t, err)
	assert.Equal(t, "Sofia", cfg.AgentName)

	_, err = Get(Line("other"))
	assert.Error(t, err)
}

func TestPlanByName_CaseInsensitive(t *testing.T) {
	cfg := MustGet(Occhiale)

	plan, ok := cfg.PlanByName("pro")
	require.True(t, ok)
	assert.Equal(t, 39700, plan.PriceCents)

	_, ok = cfg.PlanByName("Enterprise")
	assert.False(t, ok)
	assert.Equal(t, []string{"Essencial", "Pro"}, cfg.PlanNames())
}

func TestPlanPriceCents(t *testing.T) {
	pro, _ := MustGet(Occhiale).PlanByName("Pro")
	assert.Equal(t, 39700, PlanPriceCents(pro, "monthly"))
	assert.Equal(t, 397000, PlanPriceCents(pro, "annual"))

	anual, _ := MustGet(Ekkle).PlanByName("Anual")
	assert.Equal(t, 39700, PlanPriceCents(anual, "annual"))
}

func TestObjectionResponse(t *testing.T) {
	cfg := MustGet(Occhiale)

	o, ok := cfg.ObjectionResponse("Achei muito CARO")
	require.True(t, ok)
	assert.Equal(t, "price", o.Key)

	_, ok = cfg.ObjectionResponse("bom dia")
	assert.False(t, ok)
}

func TestTipRotation(t *testing.T) {
	cfg := MustGet(Ekkle)

	first, ok := cfg.Tip("growth", 0)
	require.True(t, ok)
	fourth, _ := cfg.Tip("growth", 3)
	assert.Equal(t, first, fourth)

	_, ok = cfg.Tip("unknown", 0)
	assert.False(t, ok)
}

func TestLineFromInstance(t *testing.T) {
	assert.Equal(t, Ekkle, LineFromInstance("EKKLE-sales"))
	assert.Equal(t, Occhiale, LineFromInstance("occhiale-sales"))
	assert.Equal(t, Occhiale, LineFromInstance("something-else"))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R$ 197,00", FormatPrice(19700))
	assert.Equal(t, "R$ 3.970,00", FormatPrice(397000))
}

func TestFirstContactMessage(t *testing.T) {
	msg := MustGet(Occhiale).FirstContactMessage("Ótica Central")
	assert.Contains(t, msg, "Ótica Central")
	assert.NotContains(t, msg, "{name}")
}
