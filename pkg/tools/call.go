// Package tools implements the actions an agent can take on a lead. Each
// tool is a typed Call decoded from the LLM's JSON arguments and run by the
// Executor.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/scoring"
)

// Tool names as exposed to the LLM.
const (
	NameQualifyLead       = "qualify_lead"
	NameTransferToCloser  = "transfer_to_closer"
	NameMarkAsNurture     = "mark_as_nurture"
	NameEscalateToHuman   = "escalate_to_human"
	NameSendDemoContent   = "send_demo_content"
	NameGenerateProposal  = "generate_proposal"
	NameCreatePaymentLink = "create_payment_link"
	NameScheduleDemoCall  = "schedule_demo_call"
	NameUpdateStage       = "update_stage"
	NameCompleteStep      = "complete_step"
	NameSendTutorial      = "send_tutorial"
	NameCheckProgress     = "check_progress"
	NameCheckUsage        = "check_usage"
	NameSendTip           = "send_tip"
	NameOfferUpgrade      = "offer_upgrade"
	NameCollectNPS        = "collect_nps"
)

// Call is one decoded tool invocation. The set of implementations is closed.
type Call interface {
	ToolName() string
	isCall()
}

type QualifyLead struct {
	CompanyName     string          `json:"company_name"`
	CompanySize     scoring.Size    `json:"company_size" validate:"required,oneof=micro small medium large"`
	PainPoints      []string        `json:"pain_points" validate:"dive,required"`
	Urgency         scoring.Urgency `json:"urgency" validate:"required,oneof=now next_month researching"`
	ScoreAdjustment int             `json:"score_adjustment" validate:"gte=-20,lte=20"`
}

type TransferToCloser struct {
	Reason  string `json:"reason" validate:"required"`
	Summary string `json:"summary" validate:"required"`
}

type MarkAsNurture struct {
	Reason          string `json:"reason" validate:"required"`
	NextContactDays int    `json:"next_contact_days" validate:"omitempty,gte=1,lte=365"`
}

type EscalateToHuman struct {
	Reason   string `json:"reason" validate:"required"`
	Priority string `json:"priority" validate:"required,oneof=low medium high"`
}

type SendDemoContent struct {
	ContentType string `json:"content_type" validate:"required,oneof=video_storefront video_whatsapp_agent video_dashboard screenshot_demo case_study"`
	Context     string `json:"context"`
}

type GenerateProposal struct {
	Plan            string `json:"plan" validate:"required"`
	DiscountPercent int    `json:"discount_percent" validate:"gte=0,lte=100"`
	Billing         string `json:"billing" validate:"omitempty,oneof=monthly annual"`
}

type CreatePaymentLink struct {
	Plan          string `json:"plan" validate:"required"`
	AmountCents   int    `json:"amount_cents" validate:"gt=0"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
}

type ScheduleDemoCall struct {
	PreferredDate string `json:"preferred_date" validate:"required,datetime=2006-01-02"`
	PreferredTime string `json:"preferred_time" validate:"omitempty,datetime=15:04"`
}

type UpdateStage struct {
	NewStage pipeline.Stage `json:"new_stage" validate:"required,oneof=presenting negotiating won lost"`
	Reason   string         `json:"reason"`
}

type CompleteStep struct {
	StepName string `json:"step_name" validate:"required"`
	Notes    string `json:"notes"`
}

type SendTutorial struct {
	StepName string `json:"step_name" validate:"required"`
	Format   string `json:"format" validate:"omitempty,oneof=text video image"`
}

type CheckProgress struct{}

type CheckUsage struct{}

type SendTip struct {
	TipCategory string `json:"tip_category" validate:"required,oneof=growth feature best_practice seasonal"`
	CustomTip   string `json:"custom_tip"`
}

type OfferUpgrade struct {
	TargetPlan      string `json:"target_plan" validate:"required"`
	Reason          string `json:"reason" validate:"required"`
	DiscountPercent int    `json:"discount_percent" validate:"gte=0,lte=100"`
}

// CollectNPS records an answer when Score is set and sends the survey
// otherwise.
type CollectNPS struct {
	Score    *int   `json:"score" validate:"omitempty,gte=0,lte=10"`
	Feedback string `json:"feedback"`
}

func (QualifyLead) ToolName() string       { return NameQualifyLead }
func (TransferToCloser) ToolName() string  { return NameTransferToCloser }
func (MarkAsNurture) ToolName() string     { return NameMarkAsNurture }
func (EscalateToHuman) ToolName() string   { return NameEscalateToHuman }
func (SendDemoContent) ToolName() string   { return NameSendDemoContent }
func (GenerateProposal) ToolName() string  { return NameGenerateProposal }
func (CreatePaymentLink) ToolName() string { return NameCreatePaymentLink }
func (ScheduleDemoCall) ToolName() string  { return NameScheduleDemoCall }
func (UpdateStage) ToolName() string       { return NameUpdateStage }
func (CompleteStep) ToolName() string      { return NameCompleteStep }
func (SendTutorial) ToolName() string      { return NameSendTutorial }
func (CheckProgress) ToolName() string     { return NameCheckProgress }
func (CheckUsage) ToolName() string        { return NameCheckUsage }
func (SendTip) ToolName() string           { return NameSendTip }
func (OfferUpgrade) ToolName() string      { return NameOfferUpgrade }
func (CollectNPS) ToolName() string        { return NameCollectNPS }

func (QualifyLead) isCall()       {}
func (TransferToCloser) isCall()  {}
func (MarkAsNurture) isCall()     {}
func (EscalateToHuman) isCall()   {}
func (SendDemoContent) isCall()   {}
func (GenerateProposal) isCall()  {}
func (CreatePaymentLink) isCall() {}
func (ScheduleDemoCall) isCall()  {}
func (UpdateStage) isCall()       {}
func (CompleteStep) isCall()      {}
func (SendTutorial) isCall()      {}
func (CheckProgress) isCall()     {}
func (CheckUsage) isCall()        {}
func (SendTip) isCall()           {}
func (OfferUpgrade) isCall()      {}
func (CollectNPS) isCall()        {}

var decoders = map[string]func(json.RawMessage) (Call, error){
	NameQualifyLead:       decodeAs[QualifyLead],
	NameTransferToCloser:  decodeAs[TransferToCloser],
	NameMarkAsNurture:     decodeAs[MarkAsNurture],
	NameEscalateToHuman:   decodeAs[EscalateToHuman],
	NameSendDemoContent:   decodeAs[SendDemoContent],
	NameGenerateProposal:  decodeAs[GenerateProposal],
	NameCreatePaymentLink: decodeAs[CreatePaymentLink],
	NameScheduleDemoCall:  decodeAs[ScheduleDemoCall],
	NameUpdateStage:       decodeAs[UpdateStage],
	NameCompleteStep:      decodeAs[CompleteStep],
	NameSendTutorial:      decodeAs[SendTutorial],
	NameCheckProgress:     decodeAs[CheckProgress],
	NameCheckUsage:        decodeAs[CheckUsage],
	NameSendTip:           decodeAs[SendTip],
	NameOfferUpgrade:      decodeAs[OfferUpgrade],
	NameCollectNPS:        decodeAs[CollectNPS],
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrUnknownTool is returned by Decode for names outside the tool set.
var ErrUnknownTool = errors.New("unknown tool")

// Decode parses and validates the JSON arguments of a tool call.
func Decode(name, arguments string) (Call, error) {
	decode, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	raw := strings.TrimSpace(arguments)
	if raw == "" {
		raw = "{}"
	}
	return decode(json.RawMessage(raw))
}

func decodeAs[T Call](raw json.RawMessage) (Call, error) {
	var c T
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid arguments for %s: %v", c.ToolName(), err))
	}
	if err := validate.Struct(c); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid arguments for %s: %s", c.ToolName(), describe(err)))
	}
	return c, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
