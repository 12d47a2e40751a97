// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/ent/salesmetric"
	"github.com/jordanlanch/salesagent/ent/schema"
	"github.com/jordanlanch/salesagent/ent/scrapingqueue"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescAgent is the schema descriptor for agent field.
	conversationDescAgent := conversationFields[5].Descriptor()
	// conversation.DefaultAgent holds the default value on creation for the agent field.
	conversation.DefaultAgent = conversationDescAgent.Default.(string)
	// conversationDescTokensInput is the schema descriptor for tokens_input field.
	conversationDescTokensInput := conversationFields[9].Descriptor()
	// conversation.DefaultTokensInput holds the default value on creation for the tokens_input field.
	conversation.DefaultTokensInput = conversationDescTokensInput.Default.(int)
	// conversationDescTokensOutput is the schema descriptor for tokens_output field.
	conversationDescTokensOutput := conversationFields[10].Descriptor()
	// conversation.DefaultTokensOutput holds the default value on creation for the tokens_output field.
	conversation.DefaultTokensOutput = conversationDescTokensOutput.Default.(int)
	// conversationDescCostCents is the schema descriptor for cost_cents field.
	conversationDescCostCents := conversationFields[11].Descriptor()
	// conversation.DefaultCostCents holds the default value on creation for the cost_cents field.
	conversation.DefaultCostCents = conversationDescCostCents.Default.(float64)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[12].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescPhone is the schema descriptor for phone field.
	leadDescPhone := leadFields[0].Descriptor()
	// lead.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	lead.PhoneValidator = leadDescPhone.Validators[0].(func(string) error)
	// leadDescState is the schema descriptor for state field.
	leadDescState := leadFields[7].Descriptor()
	// lead.StateValidator is a validator for the "state" field. It is called by the builders before save.
	lead.StateValidator = leadDescState.Validators[0].(func(string) error)
	// leadDescScore is the schema descriptor for score field.
	leadDescScore := leadFields[9].Descriptor()
	// lead.DefaultScore holds the default value on creation for the score field.
	lead.DefaultScore = leadDescScore.Default.(int)
	// lead.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	lead.ScoreValidator = func() func(int) error {
		validators := leadDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// leadDescFollowupCount is the schema descriptor for followup_count field.
	leadDescFollowupCount := leadFields[17].Descriptor()
	// lead.DefaultFollowupCount holds the default value on creation for the followup_count field.
	lead.DefaultFollowupCount = leadDescFollowupCount.Default.(int)
	// lead.FollowupCountValidator is a validator for the "followup_count" field. It is called by the builders before save.
	lead.FollowupCountValidator = leadDescFollowupCount.Validators[0].(func(int) error)
	// leadDescAiCostCents is the schema descriptor for ai_cost_cents field.
	leadDescAiCostCents := leadFields[23].Descriptor()
	// lead.DefaultAiCostCents holds the default value on creation for the ai_cost_cents field.
	lead.DefaultAiCostCents = leadDescAiCostCents.Default.(float64)
	// leadDescVersion is the schema descriptor for version field.
	leadDescVersion := leadFields[25].Descriptor()
	// lead.DefaultVersion holds the default value on creation for the version field.
	lead.DefaultVersion = leadDescVersion.Default.(int)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[26].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[27].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	salesmetricFields := schema.SalesMetric{}.Fields()
	_ = salesmetricFields
	// salesmetricDescDate is the schema descriptor for date field.
	salesmetricDescDate := salesmetricFields[0].Descriptor()
	// salesmetric.DateValidator is a validator for the "date" field. It is called by the builders before save.
	salesmetric.DateValidator = salesmetricDescDate.Validators[0].(func(string) error)
	// salesmetricDescLeadsCreated is the schema descriptor for leads_created field.
	salesmetricDescLeadsCreated := salesmetricFields[2].Descriptor()
	// salesmetric.DefaultLeadsCreated holds the default value on creation for the leads_created field.
	salesmetric.DefaultLeadsCreated = salesmetricDescLeadsCreated.Default.(int)
	// salesmetricDescMessagesSent is the schema descriptor for messages_sent field.
	salesmetricDescMessagesSent := salesmetricFields[3].Descriptor()
	// salesmetric.DefaultMessagesSent holds the default value on creation for the messages_sent field.
	salesmetric.DefaultMessagesSent = salesmetricDescMessagesSent.Default.(int)
	// salesmetricDescDealsWon is the schema descriptor for deals_won field.
	salesmetricDescDealsWon := salesmetricFields[4].Descriptor()
	// salesmetric.DefaultDealsWon holds the default value on creation for the deals_won field.
	salesmetric.DefaultDealsWon = salesmetricDescDealsWon.Default.(int)
	// salesmetricDescRevenueCents is the schema descriptor for revenue_cents field.
	salesmetricDescRevenueCents := salesmetricFields[5].Descriptor()
	// salesmetric.DefaultRevenueCents holds the default value on creation for the revenue_cents field.
	salesmetric.DefaultRevenueCents = salesmetricDescRevenueCents.Default.(int)
	// salesmetricDescAiCostCents is the schema descriptor for ai_cost_cents field.
	salesmetricDescAiCostCents := salesmetricFields[6].Descriptor()
	// salesmetric.DefaultAiCostCents holds the default value on creation for the ai_cost_cents field.
	salesmetric.DefaultAiCostCents = salesmetricDescAiCostCents.Default.(float64)
	// salesmetricDescEscalations is the schema descriptor for escalations field.
	salesmetricDescEscalations := salesmetricFields[7].Descriptor()
	// salesmetric.DefaultEscalations holds the default value on creation for the escalations field.
	salesmetric.DefaultEscalations = salesmetricDescEscalations.Default.(int)
	// salesmetricDescUpdatedAt is the schema descriptor for updated_at field.
	salesmetricDescUpdatedAt := salesmetricFields[8].Descriptor()
	// salesmetric.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	salesmetric.DefaultUpdatedAt = salesmetricDescUpdatedAt.Default.(func() time.Time)
	// salesmetric.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	salesmetric.UpdateDefaultUpdatedAt = salesmetricDescUpdatedAt.UpdateDefault.(func() time.Time)
	scrapingqueueFields := schema.ScrapingQueue{}.Fields()
	_ = scrapingqueueFields
	// scrapingqueueDescGooglePlaceID is the schema descriptor for google_place_id field.
	scrapingqueueDescGooglePlaceID := scrapingqueueFields[0].Descriptor()
	// scrapingqueue.GooglePlaceIDValidator is a validator for the "google_place_id" field. It is called by the builders before save.
	scrapingqueue.GooglePlaceIDValidator = scrapingqueueDescGooglePlaceID.Validators[0].(func(string) error)
	// scrapingqueueDescReviewsCount is the schema descriptor for reviews_count field.
	scrapingqueueDescReviewsCount := scrapingqueueFields[8].Descriptor()
	// scrapingqueue.DefaultReviewsCount holds the default value on creation for the reviews_count field.
	scrapingqueue.DefaultReviewsCount = scrapingqueueDescReviewsCount.Default.(int)
	// scrapingqueueDescCreatedAt is the schema descriptor for created_at field.
	scrapingqueueDescCreatedAt := scrapingqueueFields[11].Descriptor()
	// scrapingqueue.DefaultCreatedAt holds the default value on creation for the created_at field.
	scrapingqueue.DefaultCreatedAt = scrapingqueueDescCreatedAt.Default.(func() time.Time)
}
