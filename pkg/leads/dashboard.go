package leads

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/ent/predicate"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/phone"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
)

const timeLayout = time.RFC3339

// List searches leads with filters and pagination
func (s *Service) List(ctx context.Context, req models.LeadListRequest) (*models.LeadListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = 20
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	query := s.db.Lead.Query()
	if req.Product != "" {
		query = query.Where(lead.ProductEQ(product.Line(req.Product)))
	}
	if req.Stage != "" {
		stage, err := pipeline.ParseStage(req.Stage)
		if err != nil {
			return nil, domain.NewValidationError(err.Error())
		}
		query = query.Where(lead.StageEQ(stage))
	}
	if q := strings.TrimSpace(req.Search); q != "" {
		preds := []predicate.Lead{lead.NameContainsFold(q), lead.CompanyNameContainsFold(q)}
		if digits := phone.Digits(q); digits != "" {
			preds = append(preds, lead.PhoneContains(digits))
		}
		query = query.Where(lead.Or(preds...))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = lead.FieldCreatedAt
	}
	order := ent.Desc(sortBy, lead.FieldID)
	if req.Order == "asc" {
		order = ent.Asc(sortBy, lead.FieldID)
	}

	rows, err := query.
		Order(order).
		Offset((req.Page - 1) * req.Limit).
		Limit(req.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	data := make([]models.LeadResponse, len(rows))
	for i, l := range rows {
		data[i] = ToLeadResponse(l)
	}
	return &models.LeadListResponse{
		Data:       data,
		Pagination: models.NewPaginationInfo(req.Page, req.Limit, total),
	}, nil
}

// Detail returns a lead with its 50 most recent conversation rows
func (s *Service) Detail(ctx context.Context, id int) (*models.LeadDetailResponse, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.Timeline(ctx, id, 50)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}

	convs := make([]models.ConversationResponse, len(rows))
	for i, c := range rows {
		convs[i] = ToConversationResponse(c)
	}
	return &models.LeadDetailResponse{Lead: ToLeadResponse(l), Conversations: convs}, nil
}

// CreateManual creates a lead from the dashboard
func (s *Service) CreateManual(ctx context.Context, req models.CreateLeadRequest) (*models.LeadResponse, error) {
	canonical, err := phone.Normalize(req.Phone)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	line, err := product.ParseLine(req.Product)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	l, err := s.Create(ctx, canonical, line, NewLead{
		Name:        req.Name,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		City:        req.City,
		State:       strings.ToUpper(req.State),
		Stage:       pipeline.StageNew,
		Source:      lead.SourceManual,
	})
	if err != nil {
		return nil, err
	}
	resp := ToLeadResponse(l)
	return &resp, nil
}

// Update applies a dashboard patch. Stage changes must follow the pipeline.
func (s *Service) Update(ctx context.Context, id int, req models.UpdateLeadRequest) (*models.LeadResponse, error) {
	var target pipeline.Stage
	if req.Stage != nil {
		st, err := pipeline.ParseStage(*req.Stage)
		if err != nil {
			return nil, domain.NewValidationError(err.Error())
		}
		target = st
	}

	l, err := s.Mutate(ctx, id, func(current *ent.Lead, u *ent.LeadUpdate) error {
		if req.Name != nil {
			u.SetName(*req.Name)
		}
		if req.CompanyName != nil {
			u.SetCompanyName(*req.CompanyName)
		}
		if req.Email != nil {
			u.SetEmail(*req.Email)
		}
		if req.City != nil {
			u.SetCity(*req.City)
		}
		if req.State != nil {
			u.SetState(strings.ToUpper(*req.State))
		}
		if req.Score != nil {
			u.SetScore(*req.Score)
		}
		if req.LostReason != nil {
			u.SetLostReason(*req.LostReason)
		}
		if req.AssignedAgent != nil {
			u.SetAssignedAgent(pipeline.Role(*req.AssignedAgent))
		}

		if target != "" && target != current.Stage {
			if err := CheckTransition(current.Stage, target); err != nil {
				return err
			}
			u.SetStage(target)
			if req.AssignedAgent == nil {
				u.SetAssignedAgent(pipeline.AgentFor(target))
			}
			now := s.now()
			switch target {
			case pipeline.StageWon:
				u.SetWonAt(now)
			case pipeline.StageLost:
				u.SetLostAt(now)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToLeadResponse(l)
	return &resp, nil
}

// Conversations returns a page of message rows, newest first
func (s *Service) Conversations(ctx context.Context, line string, page, limit int) (*models.ConversationListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := s.db.Conversation.Query().Where(conversation.KindEQ(conversation.KindMessage))
	if line != "" {
		query = query.Where(conversation.ProductEQ(product.Line(line)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversations: %w", err)
	}
	rows, err := query.
		Order(ent.Desc(conversation.FieldCreatedAt), ent.Desc(conversation.FieldID)).
		Offset((page - 1) * limit).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	data := make([]models.ConversationResponse, len(rows))
	for i, c := range rows {
		data[i] = ToConversationResponse(c)
	}
	return &models.ConversationListResponse{
		Data:       data,
		Pagination: models.NewPaginationInfo(page, limit, total),
	}, nil
}

// Recent returns the latest message rows across all leads
func (s *Service) Recent(ctx context.Context, limit int) ([]models.ConversationResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.db.Conversation.Query().
		Where(conversation.KindEQ(conversation.KindMessage)).
		Order(ent.Desc(conversation.FieldCreatedAt), ent.Desc(conversation.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent conversations: %w", err)
	}
	data := make([]models.ConversationResponse, len(rows))
	for i, c := range rows {
		data[i] = ToConversationResponse(c)
	}
	return data, nil
}

// ToLeadResponse converts an ent lead for the API.
func ToLeadResponse(l *ent.Lead) models.LeadResponse {
	resp := models.LeadResponse{
		ID:            l.ID,
		Phone:         l.Phone,
		Product:       string(l.Product),
		Name:          l.Name,
		CompanyName:   l.CompanyName,
		CompanySize:   string(l.CompanySize),
		Email:         l.Email,
		City:          l.City,
		State:         l.State,
		Stage:         string(l.Stage),
		Score:         l.Score,
		AssignedAgent: string(l.AssignedAgent),
		Source:        string(l.Source),
		PainPoints:    l.PainPoints,
		Objections:    l.Objections,
		FollowupCount: l.FollowupCount,
		WonPlan:       l.WonPlan,
		LostReason:    l.LostReason,
		AICostCents:   l.AiCostCents,
		Metadata:      l.Metadata,
		CreatedAt:     l.CreatedAt.Format(timeLayout),
		UpdatedAt:     l.UpdatedAt.Format(timeLayout),
	}
	if l.LastContactAt != nil {
		resp.LastContactAt = l.LastContactAt.Format(timeLayout)
	}
	if l.NextFollowupAt != nil {
		resp.NextFollowupAt = l.NextFollowupAt.Format(timeLayout)
	}
	if l.WonAmountCents != nil {
		resp.WonAmountCents = *l.WonAmountCents
	}
	return resp
}
