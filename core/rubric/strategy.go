package rubric

import "github.com/pkg/errors"

var errNoLevels = errors.New("criterion has no levels")

type (
	// LevelSelector picks the level awarded for a criterion.
	LevelSelector interface {
		Select(studentResponse string, c Criterion) (Level, error)
	}

	// FeedbackWriter comments on a graded response.
	FeedbackWriter interface {
		Feedback(studentResponse string, results []CriterionResult) string
	}
)

// HighestLevel awards the level with the most points, the first one listed on ties.
type HighestLevel struct{}

var _ LevelSelector = HighestLevel{}

func (HighestLevel) Select(_ string, c Criterion) (Level, error) {
	if len(c.Levels) == 0 {
		return Level{}, errNoLevels
	}
	top := c.Levels[0]
	for _, lvl := range c.Levels[1:] {
		if points(lvl) > points(top) {
			top = lvl
		}
	}
	return top, nil
}

// FixedFeedback returns the same comment for every response.
type FixedFeedback struct{}

var _ FeedbackWriter = FixedFeedback{}

func (FixedFeedback) Feedback(string, []CriterionResult) string {
	return "Good structure; consider adding more specific evidence."
}

func points(lvl Level) float64 {
	if lvl.Points == nil {
		return 0
	}
	return *lvl.Points
}
