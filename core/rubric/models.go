package rubric

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mindcanvas/core"
)

const defaultWeight = 1.0

type (
	Level struct {
		Label      string   `json:"label" validate:"required,notblank"`
		Points     *float64 `json:"points" validate:"required,min=0"`
		Descriptor string   `json:"descriptor,omitempty"`
	}

	// Criterion levels are ordered; the order breaks ties between levels worth the same points.
	Criterion struct {
		Criterion string   `json:"criterion" validate:"required,notblank"`
		Levels    []Level  `json:"levels" validate:"required,min=1,dive"`
		Weight    *float64 `json:"weight" validate:"omitempty,min=0"`
	}
)

// weight defaults to 1.0 when omitted; an explicit 0 is kept.
func (c Criterion) weight() float64 {
	if c.Weight == nil {
		return defaultWeight
	}
	return *c.Weight
}

// GradeRequest contains a rubric and the student response to grade against it.
type GradeRequest struct {
	Rubric          []Criterion `json:"rubric" validate:"required,min=1,dive"`
	StudentResponse string      `json:"student_response" validate:"required"`
	MaxTotalPoints  *float64    `json:"max_total_points" validate:"omitempty,min=0"`
}

func (gr *GradeRequest) Validate(validate *validator.Validate) error {
	for i := range gr.Rubric {
		gr.Rubric[i].Criterion = core.CleanString(gr.Rubric[i].Criterion)
		for j := range gr.Rubric[i].Levels {
			gr.Rubric[i].Levels[j].Label = core.CleanString(gr.Rubric[i].Levels[j].Label)
		}
	}
	return validate.Struct(gr)
}

type (
	GradeResponse struct {
		TotalPoints float64           `json:"total_points"`
		Criteria    []CriterionResult `json:"criteria"`
		Feedback    string            `json:"feedback"`
	}

	CriterionResult struct {
		Criterion     string  `json:"criterion"`
		SelectedLevel string  `json:"selected_level"`
		PointsAwarded float64 `json:"points_awarded"`
	}
)
