// Package product holds the static per-product-line configuration: persona,
// plan catalog, objection scripts and the canned content used by agents and
// cron jobs.
package product

import (
	"fmt"
	"regexp"
	"strings"
)

// Line identifies a product line (tenant).
type Line string

const (
	Occhiale Line = "occhiale"
	Ekkle    Line = "ekkle"
)

// Values implements ent's EnumValues.
func (Line) Values() []string {
	return []string{string(Occhiale), string(Ekkle)}
}

// ParseLine validates s as a product line.
func ParseLine(s string) (Line, error) {
	switch Line(strings.ToLower(strings.TrimSpace(s))) {
	case Occhiale:
		return Occhiale, nil
	case Ekkle:
		return Ekkle, nil
	}
	return "", fmt.Errorf("unknown product line %q", s)
}

// LineFromInstance maps a gateway instance name to its product line.
func LineFromInstance(instance string) Line {
	name := strings.ToLower(instance)
	switch {
	case strings.Contains(name, string(Ekkle)):
		return Ekkle
	case strings.Contains(name, string(Occhiale)):
		return Occhiale
	default:
		return Occhiale
	}
}

// Plan is one entry of a product's price catalog.
type Plan struct {
	Name       string
	PriceCents int
	Interval   string
	Features   []string
	// AnnualMultiplier prices annual billing as N monthly payments. Zero
	// means the plan is already billed for its whole interval.
	AnnualMultiplier int
}

// Objection pairs a trigger pattern with a scripted answer.
type Objection struct {
	Key      string
	Trigger  *regexp.Regexp
	Response string
}

// CaseStudy is a short customer story used in closing.
type CaseStudy struct {
	Customer string
	City     string
	Result   string
}

// DemoAsset is a piece of demo media sent during closing. Kind is one of
// video, image or text; text assets carry no URL.
type DemoAsset struct {
	Kind    string
	URL     string
	Caption string
}

// Config is immutable per-line configuration.
type Config struct {
	Line             Line
	DisplayName      string
	AgentName        string
	Pitch            string
	Instance         string
	ScrapeQuery      string
	ScrapeCities     []string
	Plans            []Plan
	Objections       []Objection
	CaseStudies      []CaseStudy
	OnboardingSteps  []string
	StepTutorials    map[string]string
	NurtureDrip      []string
	Tips             map[string][]string
	DemoContent      map[string]DemoAsset
	Fallback         string
	FirstContact     string
	PaymentConfirmed string
	PaymentFailed    string
}

var catalog = map[Line]*Config{
	Occhiale: occhialeConfig(),
	Ekkle:    ekkleConfig(),
}

// Get returns the configuration for a line.
func Get(line Line) (*Config, error) {
	cfg, ok := catalog[line]
	if !ok {
		return nil, fmt.Errorf("no configuration for product line %q", line)
	}
	return cfg, nil
}

// MustGet is Get for lines already validated by the caller.
func MustGet(line Line) *Config {
	cfg, err := Get(line)
	if err != nil {
		panic(err)
	}
	return cfg
}

// PlanByName finds a plan case-insensitively.
func (c *Config) PlanByName(name string) (Plan, bool) {
	for _, p := range c.Plans {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Plan{}, false
}

// PlanNames lists the catalog for error messages.
func (c *Config) PlanNames() []string {
	names := make([]string, len(c.Plans))
	for i, p := range c.Plans {
		names[i] = p.Name
	}
	return names
}

// ObjectionResponse returns the first scripted answer whose trigger matches.
func (c *Config) ObjectionResponse(text string) (Objection, bool) {
	for _, o := range c.Objections {
		if o.Trigger.MatchString(text) {
			return o, true
		}
	}
	return Objection{}, false
}

// HasStep reports whether step belongs to the onboarding checklist.
func (c *Config) HasStep(step string) bool {
	for _, s := range c.OnboardingSteps {
		if s == step {
			return true
		}
	}
	return false
}

// Tip returns the tip for a category, rotating on the number already sent.
func (c *Config) Tip(category string, sent int) (string, bool) {
	tips := c.Tips[category]
	if len(tips) == 0 {
		return "", false
	}
	return tips[sent%len(tips)], true
}

// FirstContactMessage renders the outbound template for a scraped business.
func (c *Config) FirstContactMessage(businessName string) string {
	name := strings.TrimSpace(businessName)
	if name == "" {
		name = "tudo bem"
	}
	return strings.ReplaceAll(c.FirstContact, "{name}", name)
}

// PlanPriceCents applies the billing period to a plan price.
func PlanPriceCents(p Plan, billing string) int {
	if billing == "annual" && p.AnnualMultiplier > 0 {
		return p.PriceCents * p.AnnualMultiplier
	}
	return p.PriceCents
}
