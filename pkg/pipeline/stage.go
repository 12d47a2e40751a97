// Package pipeline defines the lead stages, the agent roles and the legal
// transitions between stages.
package pipeline

import "fmt"

// Stage is a lead's position in the sales pipeline.
type Stage string

const (
	StageScraped     Stage = "scraped"
	StageNew         Stage = "new"
	StageContacted   Stage = "contacted"
	StageQualifying  Stage = "qualifying"
	StageQualified   Stage = "qualified"
	StagePresenting  Stage = "presenting"
	StageNegotiating Stage = "negotiating"
	StageWon         Stage = "won"
	StageLost        Stage = "lost"
	StageActive      Stage = "active"
	StageChurned     Stage = "churned"
	StageNurturing   Stage = "nurturing"
)

var allStages = []Stage{
	StageScraped, StageNew, StageContacted, StageQualifying, StageQualified,
	StagePresenting, StageNegotiating, StageWon, StageLost, StageActive,
	StageChurned, StageNurturing,
}

// Values implements ent's EnumValues so Stage can back the lead.stage column.
func (Stage) Values() []string {
	out := make([]string, len(allStages))
	for i, s := range allStages {
		out[i] = string(s)
	}
	return out
}

// Stages returns every declared stage in pipeline order.
func Stages() []Stage {
	return append([]Stage(nil), allStages...)
}

// ParseStage validates s against the declared set.
func ParseStage(s string) (Stage, error) {
	for _, st := range allStages {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q", s)
}

// IsTerminal reports whether automated contact stops at this stage.
func (s Stage) IsTerminal() bool {
	return s == StageLost || s == StageChurned
}

// mainLine is the forward sales path; any forward move along it is legal.
var mainLine = []Stage{
	StageScraped, StageNew, StageContacted, StageQualifying,
	StageQualified, StagePresenting, StageNegotiating,
}

var extraEdges = map[Stage][]Stage{
	StageWon:    {StageActive},
	StageActive: {StageChurned},
}

func lineIndex(s Stage) int {
	for i, st := range mainLine {
		if st == s {
			return i
		}
	}
	return -1
}

// CanTransition reports whether moving from one stage to another is declared.
// Staying in the same stage is always allowed.
func CanTransition(from, to Stage) bool {
	if from == to {
		return true
	}
	if from.IsTerminal() {
		return false
	}

	fi, ti := lineIndex(from), lineIndex(to)
	switch {
	case fi >= 0 && ti >= 0:
		return ti > fi
	case fi >= 0 && (to == StageWon || to == StageLost):
		// closing can happen from anywhere on the main line (payment webhook, update_stage)
		return true
	case to == StageNurturing:
		return from != StageWon && from != StageActive
	case from == StageNurturing:
		return ti >= 0 || to == StageLost || to == StageWon
	}

	for _, next := range extraEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}
