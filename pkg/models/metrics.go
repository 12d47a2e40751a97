package models

// MetricDelta is an increment applied to the daily sales_metrics row.
type MetricDelta struct {
	LeadsCreated int
	MessagesSent int
	DealsWon     int
	RevenueCents int
	AICostCents  float64
	Escalations  int
}

// IsZero reports whether the delta changes nothing.
func (d MetricDelta) IsZero() bool {
	return d == MetricDelta{}
}

// FunnelStage is the lead count of one pipeline stage
type FunnelStage struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// FunnelResponse is the per-stage distribution of leads
type FunnelResponse struct {
	Product string        `json:"product,omitempty"`
	Stages  []FunnelStage `json:"stages"`
	Total   int           `json:"total"`
}

// DashboardMetrics summarizes the pipeline
type DashboardMetrics struct {
	Product               string  `json:"product,omitempty"`
	TotalLeads            int     `json:"total_leads"`
	NewLeadsToday         int     `json:"new_leads_today"`
	InQualification       int     `json:"in_qualification"`
	Qualified             int     `json:"qualified"`
	InNegotiation         int     `json:"in_negotiation"`
	DealsWon              int     `json:"deals_won"`
	DealsLost             int     `json:"deals_lost"`
	ActiveCustomers       int     `json:"active_customers"`
	Churned               int     `json:"churned"`
	RevenueCents          int     `json:"revenue_cents"`
	RevenueThisMonthCents int     `json:"revenue_this_month_cents"`
	ConversionRate        float64 `json:"conversion_rate"`
	ChurnRate             float64 `json:"churn_rate"`
	AICostCents           float64 `json:"ai_cost_cents"`
	AICostThisMonthCents  float64 `json:"ai_cost_this_month_cents"`
	Escalations           int     `json:"escalations"`
	NeedsAttention        int     `json:"needs_attention"`
	GeneratedAt           string  `json:"generated_at"`
}

// DailyMetric is one sales_metrics row
type DailyMetric struct {
	Date         string  `json:"date"`
	Product      string  `json:"product"`
	LeadsCreated int     `json:"leads_created"`
	MessagesSent int     `json:"messages_sent"`
	DealsWon     int     `json:"deals_won"`
	RevenueCents int     `json:"revenue_cents"`
	AICostCents  float64 `json:"ai_cost_cents"`
	Escalations  int     `json:"escalations"`
}

// ConversationStats counts stored conversation rows
type ConversationStats struct {
	Total       int            `json:"total"`
	Inbound     int            `json:"inbound"`
	Outbound    int            `json:"outbound"`
	Today       int            `json:"today"`
	ByAgent     map[string]int `json:"by_agent"`
	TotalTokens int            `json:"total_tokens"`
	CostCents   float64        `json:"cost_cents"`
}
