package models

import (
	"math"
	"time"
)

// MetadataVersion is the current shape of LeadMetadata. Bump it when a
// sub-record changes incompatibly.
const MetadataVersion = 1

// LeadMetadata is the typed per-lead state stored in the lead.metadata JSON
// column. Each sub-record is owned by the tools or jobs that write it.
type LeadMetadata struct {
	Version       int                 `json:"version"`
	Qualification *QualificationState `json:"qualification,omitempty"`
	Handoff       *HandoffState       `json:"handoff,omitempty"`
	Escalation    *EscalationState    `json:"escalation,omitempty"`
	Nurture       *NurtureState       `json:"nurture,omitempty"`
	Demo          *DemoState          `json:"demo,omitempty"`
	Proposal      *ProposalState      `json:"proposal,omitempty"`
	Payment       *PaymentState       `json:"payment,omitempty"`
	Onboarding    *OnboardingState    `json:"onboarding,omitempty"`
	NPS           NpsHistory          `json:"nps"`
	Success       *SuccessState       `json:"success,omitempty"`
}

// QualificationState holds the BANT answers not promoted to columns.
type QualificationState struct {
	Urgency        string    `json:"urgency"`
	Recommendation string    `json:"recommendation"`
	QualifiedAt    time.Time `json:"qualified_at"`
}

// HandoffState records the Hunter → Closer transfer.
type HandoffState struct {
	Reason        string    `json:"reason"`
	Summary       string    `json:"summary"`
	TransferredAt time.Time `json:"transferred_at"`
}

// EscalationState flags a lead for a human operator.
type EscalationState struct {
	Reason         string    `json:"reason"`
	Priority       string    `json:"priority"`
	PreviousAgent  string    `json:"previous_agent"`
	EscalatedAt    time.Time `json:"escalated_at"`
	NeedsAttention bool      `json:"needs_attention"`
}

// NurtureState tracks the drip campaign position.
type NurtureState struct {
	Reason     string     `json:"reason"`
	Index      int        `json:"index"`
	StartedAt  time.Time  `json:"started_at"`
	LastSentAt *time.Time `json:"last_sent_at,omitempty"`
}

// DemoState tracks demo content and scheduled calls.
type DemoState struct {
	ContentSent  []string   `json:"content_sent,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	RequestedAt  *time.Time `json:"requested_at,omitempty"`
}

// ProposalState is the last proposal sent.
type ProposalState struct {
	Plan            string    `json:"plan"`
	Billing         string    `json:"billing"`
	DiscountPercent int       `json:"discount_percent"`
	AmountCents     int       `json:"amount_cents"`
	SentAt          time.Time `json:"sent_at"`
}

// PaymentState is the last payment link and its outcome.
type PaymentState struct {
	Provider    string     `json:"provider"`
	OrderID     string     `json:"order_id"`
	URL         string     `json:"url"`
	Plan        string     `json:"plan"`
	AmountCents int        `json:"amount_cents"`
	CreatedAt   time.Time  `json:"created_at"`
	Status      string     `json:"status,omitempty"`
	Method      string     `json:"method,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

// OnboardingState is the onboarding checklist progress.
type OnboardingState struct {
	CompletedSteps []string          `json:"completed_steps"`
	Notes          map[string]string `json:"notes,omitempty"`
	StartedAt      time.Time         `json:"started_at"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
}

// Has reports whether step was already completed.
func (o *OnboardingState) Has(step string) bool {
	for _, s := range o.CompletedSteps {
		if s == step {
			return true
		}
	}
	return false
}

// Complete adds step to the completed set. It returns false when the step
// was already there.
func (o *OnboardingState) Complete(step, notes string) bool {
	if o.Has(step) {
		return false
	}
	o.CompletedSteps = append(o.CompletedSteps, step)
	if notes != "" {
		if o.Notes == nil {
			o.Notes = map[string]string{}
		}
		o.Notes[step] = notes
	}
	return true
}

// Progress returns the completion percentage over total steps.
func (o *OnboardingState) Progress(total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(len(o.CompletedSteps)) / float64(total) * 100))
}

// NPS categories.
const (
	NpsPromoter  = "promoter"
	NpsPassive   = "passive"
	NpsDetractor = "detractor"
)

// NpsEntry is one survey answer.
type NpsEntry struct {
	Score      int       `json:"score"`
	Category   string    `json:"category"`
	Feedback   string    `json:"feedback,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// NpsHistory is the append-only list of answers plus the last survey sent.
type NpsHistory struct {
	Entries      []NpsEntry `json:"entries,omitempty"`
	LastSurveyAt *time.Time `json:"last_survey_at,omitempty"`
}

// NpsCategory classifies a 0–10 score.
func NpsCategory(score int) string {
	switch {
	case score >= 9:
		return NpsPromoter
	case score >= 7:
		return NpsPassive
	default:
		return NpsDetractor
	}
}

// Add appends an answer and returns it.
func (h *NpsHistory) Add(score int, feedback string, at time.Time) NpsEntry {
	e := NpsEntry{Score: score, Category: NpsCategory(score), Feedback: feedback, RecordedAt: at}
	h.Entries = append(h.Entries, e)
	return e
}

// LastActivity is the latest of the last answer and the last survey sent.
func (h NpsHistory) LastActivity() (time.Time, bool) {
	var last time.Time
	for _, e := range h.Entries {
		if e.RecordedAt.After(last) {
			last = e.RecordedAt
		}
	}
	if h.LastSurveyAt != nil && h.LastSurveyAt.After(last) {
		last = *h.LastSurveyAt
	}
	return last, !last.IsZero()
}

// SuccessState is the customer-success bookkeeping.
type SuccessState struct {
	TipsSentCount   int            `json:"tips_sent_count"`
	LastTipCategory string         `json:"last_tip_category,omitempty"`
	LastTipAt       *time.Time     `json:"last_tip_at,omitempty"`
	LastChurnPingAt *time.Time     `json:"last_churn_ping_at,omitempty"`
	UpgradeOffers   []UpgradeOffer `json:"upgrade_offers,omitempty"`
}

// UpgradeOffer is one upsell sent by the CS agent.
type UpgradeOffer struct {
	TargetPlan      string    `json:"target_plan"`
	Reason          string    `json:"reason"`
	DiscountPercent int       `json:"discount_percent"`
	OfferedAt       time.Time `json:"offered_at"`
}

// Normalize stamps the current version on metadata read from older rows.
func (m *LeadMetadata) Normalize() {
	if m.Version == 0 {
		m.Version = MetadataVersion
	}
}

// EnsureOnboarding returns the onboarding record, creating it if needed.
func (m *LeadMetadata) EnsureOnboarding(now time.Time) *OnboardingState {
	if m.Onboarding == nil {
		m.Onboarding = &OnboardingState{StartedAt: now}
	}
	return m.Onboarding
}

// EnsureSuccess returns the customer-success record, creating it if needed.
func (m *LeadMetadata) EnsureSuccess() *SuccessState {
	if m.Success == nil {
		m.Success = &SuccessState{}
	}
	return m.Success
}

// EnsureDemo returns the demo record, creating it if needed.
func (m *LeadMetadata) EnsureDemo() *DemoState {
	if m.Demo == nil {
		m.Demo = &DemoState{}
	}
	return m.Demo
}
