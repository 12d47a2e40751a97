package models

// LeadListRequest represents dashboard filters for leads
type LeadListRequest struct {
	Product string `query:"product" validate:"omitempty,oneof=occhiale ekkle"`
	Stage   string `query:"stage"`
	Search  string `query:"search"`
	SortBy  string `query:"sort_by" validate:"omitempty,oneof=created_at updated_at score last_contact_at"`
	Order   string `query:"order" validate:"omitempty,oneof=asc desc"`
	Page    int    `query:"page" validate:"min=0"`
	Limit   int    `query:"limit" validate:"min=0,max=100"`
}

// CreateLeadRequest creates a lead manually from the dashboard
type CreateLeadRequest struct {
	Phone       string `json:"phone" validate:"required,min=8"`
	Product     string `json:"product" validate:"required,oneof=occhiale ekkle"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email" validate:"omitempty,email"`
	City        string `json:"city"`
	State       string `json:"state" validate:"omitempty,len=2"`
}

// UpdateLeadRequest patches dashboard-editable lead fields
type UpdateLeadRequest struct {
	Name          *string `json:"name,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty" validate:"omitempty,len=2"`
	Stage         *string `json:"stage,omitempty"`
	AssignedAgent *string `json:"assigned_agent,omitempty" validate:"omitempty,oneof=hunter closer onboarding cs human"`
	Score         *int    `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	LostReason    *string `json:"lost_reason,omitempty"`
}

// LeadResponse represents a single lead in API responses
type LeadResponse struct {
	ID             int          `json:"id"`
	Phone          string       `json:"phone"`
	Product        string       `json:"product"`
	Name           string       `json:"name,omitempty"`
	CompanyName    string       `json:"company_name,omitempty"`
	CompanySize    string       `json:"company_size,omitempty"`
	Email          string       `json:"email,omitempty"`
	City           string       `json:"city,omitempty"`
	State          string       `json:"state,omitempty"`
	Stage          string       `json:"stage"`
	Score          int          `json:"score"`
	AssignedAgent  string       `json:"assigned_agent"`
	Source         string       `json:"source"`
	PainPoints     []string     `json:"pain_points,omitempty"`
	Objections     []string     `json:"objections,omitempty"`
	FollowupCount  int          `json:"followup_count"`
	LastContactAt  string       `json:"last_contact_at,omitempty"`
	NextFollowupAt string       `json:"next_followup_at,omitempty"`
	WonPlan        string       `json:"won_plan,omitempty"`
	WonAmountCents int          `json:"won_amount_cents,omitempty"`
	LostReason     string       `json:"lost_reason,omitempty"`
	AICostCents    float64      `json:"ai_cost_cents"`
	Metadata       LeadMetadata `json:"metadata"`
	CreatedAt      string       `json:"created_at"`
	UpdatedAt      string       `json:"updated_at"`
}

// LeadDetailResponse is a lead plus its most recent conversation rows
type LeadDetailResponse struct {
	Lead          LeadResponse           `json:"lead"`
	Conversations []ConversationResponse `json:"conversations"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Data       []LeadResponse `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPaginationInfo fills the derived pagination fields.
func NewPaginationInfo(page, limit, total int) PaginationInfo {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PaginationInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ConversationResponse is one stored conversation row
type ConversationResponse struct {
	ID           int      `json:"id"`
	LeadID       int      `json:"lead_id"`
	Product      string   `json:"product"`
	Direction    string   `json:"direction"`
	Kind         string   `json:"kind"`
	Content      string   `json:"content"`
	Agent        string   `json:"agent"`
	ToolsCalled  []string `json:"tools_called,omitempty"`
	Intent       string   `json:"intent,omitempty"`
	Objection    string   `json:"objection,omitempty"`
	TokensInput  int      `json:"tokens_input"`
	TokensOutput int      `json:"tokens_output"`
	CostCents    float64  `json:"cost_cents"`
	CreatedAt    string   `json:"created_at"`
}

// ConversationListResponse is a page of conversation rows
type ConversationListResponse struct {
	Data       []ConversationResponse `json:"data"`
	Pagination PaginationInfo         `json:"pagination"`
}
