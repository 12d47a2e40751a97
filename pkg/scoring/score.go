// Package scoring computes the 0–100 qualification score of a lead and the
// action recommended for it.
package scoring

import "github.com/jordanlanch/salesagent/pkg/pipeline"

// Size is the company size class gathered during qualification.
type Size string

const (
	SizeMicro  Size = "micro"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Values implements ent's EnumValues.
func (Size) Values() []string {
	return []string{string(SizeMicro), string(SizeSmall), string(SizeMedium), string(SizeLarge)}
}

// Urgency is how soon the lead wants to solve the problem.
type Urgency string

const (
	UrgencyNow         Urgency = "now"
	UrgencyNextMonth   Urgency = "next_month"
	UrgencyResearching Urgency = "researching"
)

// Action is the next step recommended for a score.
type Action string

const (
	ActionTransfer    Action = "transfer_to_closer"
	ActionQualifyMore Action = "qualify_more"
	ActionNurture     Action = "nurture"
	ActionDisqualify  Action = "disqualify"
)

const (
	baseScore       = 10
	painPointWeight = 10
	painPointCap    = 30
	engagedBonus    = 10
	engagedPains    = 3
)

var sizePoints = map[Size]int{
	SizeMicro:  5,
	SizeSmall:  15,
	SizeMedium: 25,
	SizeLarge:  30,
}

var urgencyPoints = map[Urgency]int{
	UrgencyNow:         30,
	UrgencyNextMonth:   15,
	UrgencyResearching: 5,
}

// Input is what the Hunter learned about the lead.
type Input struct {
	Size       Size
	PainPoints []string
	Urgency    Urgency
	Adjustment int
}

// Score maps qualification inputs to [0,100]. Unknown size or urgency values
// contribute nothing.
func Score(in Input) int {
	score := baseScore + sizePoints[in.Size]

	if n := len(in.PainPoints); n > 0 {
		score += min(painPointCap, n*painPointWeight)
		if n >= engagedPains {
			score += engagedBonus
		}
	}

	score += urgencyPoints[in.Urgency]
	score += in.Adjustment
	return Clamp(score)
}

// Clamp bounds a score to [0,100].
func Clamp(score int) int {
	return max(0, min(100, score))
}

// Recommend returns the action for a score.
func Recommend(score int) Action {
	switch {
	case score >= 70:
		return ActionTransfer
	case score >= 50:
		return ActionQualifyMore
	case score >= 30:
		return ActionNurture
	default:
		return ActionDisqualify
	}
}

// StageAfterQualification advances new or contacted → qualifying (score ≥ 40)
// and qualifying → qualified (score ≥ 60). Any other stage is kept.
func StageAfterQualification(current pipeline.Stage, score int) pipeline.Stage {
	switch {
	case score >= 60 && current == pipeline.StageQualifying:
		return pipeline.StageQualified
	case score >= 40 && (current == pipeline.StageNew || current == pipeline.StageContacted):
		return pipeline.StageQualifying
	default:
		return current
	}
}
