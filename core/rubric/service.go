package rubric

import "github.com/pkg/errors"

type (
	Service interface {
		Grade(gr GradeRequest) (GradeResponse, error)
	}

	service struct {
		selector LevelSelector
		writer   FeedbackWriter
	}
)

// NewService returns a rubric Service; nil strategies fall back to HighestLevel and FixedFeedback.
func NewService(selector LevelSelector, writer FeedbackWriter) Service {
	if selector == nil {
		selector = HighestLevel{}
	}
	if writer == nil {
		writer = FixedFeedback{}
	}
	return &service{selector: selector, writer: writer}
}

func (svc *service) Grade(gr GradeRequest) (GradeResponse, error) {
	var total float64
	results := make([]CriterionResult, 0, len(gr.Rubric))

	for _, c := range gr.Rubric {
		lvl, err := svc.selector.Select(gr.StudentResponse, c)
		if err != nil {
			return GradeResponse{}, errors.Wrapf(err, "rubric.Grade(%q)", c.Criterion)
		}
		pts := points(lvl) * c.weight()
		total += pts
		results = append(results, CriterionResult{
			Criterion:     c.Criterion,
			SelectedLevel: lvl.Label,
			PointsAwarded: pts,
		})
	}

	if gr.MaxTotalPoints != nil && total > *gr.MaxTotalPoints {
		total = *gr.MaxTotalPoints
	}

	return GradeResponse{
		TotalPoints: total,
		Criteria:    results,
		Feedback:    svc.writer.Feedback(gr.StudentResponse, results),
	}, nil
}
