package scoring

import (
	"testing"

	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want int
	}{
		{"empty input gets base", Input{}, 10},
		{"micro researching", Input{Size: SizeMicro, Urgency: UrgencyResearching}, 20},
		{"two pains", Input{Size: SizeSmall, PainPoints: []string{"a", "b"}}, 45},
		{"three pains get bonus", Input{PainPoints: []string{"a", "b", "c"}}, 50},
		{"pain points are capped", Input{PainPoints: []string{"a", "b", "c", "d", "e"}}, 50},
		{"large, 3 pains, now clamps to 100", Input{Size: SizeLarge, PainPoints: []string{"a", "b", "c"}, Urgency: UrgencyNow}, 100},
		{"negative adjustment clamps to 0", Input{Adjustment: -50}, 0},
		{"adjustment applies", Input{Size: SizeMedium, Urgency: UrgencyNextMonth, Adjustment: 5}, 55},
		{"unknown values ignored", Input{Size: Size("huge"), Urgency: Urgency("yesterday")}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.in))
		})
	}
}

func TestScore_BoundsAndMonotonicity(t *testing.T) {
	sizes := []Size{"", SizeMicro, SizeSmall, SizeMedium, SizeLarge}
	urgencies := []Urgency{"", UrgencyResearching, UrgencyNextMonth, UrgencyNow}
	pains := [][]string{nil, {"a"}, {"a", "b"}, {"a", "b", "c"}, {"a", "b", "c", "d"}}

	for _, adj := range []int{-100, -20, 0, 20, 100} {
		for _, p := range pains {
			for ui, u := range urgencies {
				prev := -1
				for _, s := range sizes {
					got := Score(Input{Size: s, PainPoints: p, Urgency: u, Adjustment: adj})
					assert.GreaterOrEqual(t, got, 0)
					assert.LessOrEqual(t, got, 100)
					assert.GreaterOrEqual(t, got, prev, "size monotonicity")
					prev = got

					if ui > 0 {
						lower := Score(Input{Size: s, PainPoints: p, Urgency: urgencies[ui-1], Adjustment: adj})
						assert.GreaterOrEqual(t, got, lower, "urgency monotonicity")
					}
				}
			}
		}
	}
}

func TestRecommend(t *testing.T) {
	assert.Equal(t, ActionTransfer, Recommend(70))
	assert.Equal(t, ActionQualifyMore, Recommend(69))
	assert.Equal(t, ActionQualifyMore, Recommend(50))
	assert.Equal(t, ActionNurture, Recommend(49))
	assert.Equal(t, ActionNurture, Recommend(30))
	assert.Equal(t, ActionDisqualify, Recommend(29))
}

func TestStageAfterQualification(t *testing.T) {
	assert.Equal(t, pipeline.StageQualifying, StageAfterQualification(pipeline.StageNew, 40))
	assert.Equal(t, pipeline.StageNew, StageAfterQualification(pipeline.StageNew, 39))
	// a single call moves one step
	assert.Equal(t, pipeline.StageQualifying, StageAfterQualification(pipeline.StageNew, 100))
	assert.Equal(t, pipeline.StageQualified, StageAfterQualification(pipeline.StageQualifying, 60))
	assert.Equal(t, pipeline.StageQualifying, StageAfterQualification(pipeline.StageQualifying, 59))
	assert.Equal(t, pipeline.StageQualifying, StageAfterQualification(pipeline.StageContacted, 90))
	assert.Equal(t, pipeline.StagePresenting, StageAfterQualification(pipeline.StagePresenting, 90))
}
