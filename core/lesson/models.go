package lesson

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mindcanvas/core"
)

// PlanRequest contains the parameters of a lesson to plan.
type PlanRequest struct {
	Subject            string   `json:"subject" validate:"required,notblank"`
	GradeLevel         string   `json:"grade_level" validate:"required,notblank"`
	Standards          []string `json:"standards" validate:"omitempty,dive,notblank"`
	DurationMinutes    int      `json:"duration_minutes" validate:"required,min=15"`
	LearningObjectives []string `json:"learning_objectives" validate:"omitempty,dive,notblank"`
	Differentiation    bool     `json:"differentiation"`
}

func (pr *PlanRequest) Validate(validate *validator.Validate) error {
	pr.Subject = core.CleanString(pr.Subject)
	pr.GradeLevel = core.CleanString(pr.GradeLevel)
	core.CleanStrings(pr.Standards)
	core.CleanStrings(pr.LearningObjectives)
	return validate.Struct(pr)
}

type (
	PlanResponse struct {
		LessonPlan Plan `json:"lesson_plan"`
	}

	Plan struct {
		Meta            Meta            `json:"meta"`
		Objectives      []string        `json:"objectives"`
		Materials       []string        `json:"materials"`
		Sequence        []Phase         `json:"sequence"`
		Assessment      Assessment      `json:"assessment"`
		Differentiation Differentiation `json:"differentiation"`
	}

	Meta struct {
		GeneratedAt     string   `json:"generated_at"`
		Subject         string   `json:"subject"`
		GradeLevel      string   `json:"grade_level"`
		DurationMinutes int      `json:"duration_minutes"`
		Standards       []string `json:"standards"`
	}

	Phase struct {
		Phase    string `json:"phase"`
		Minutes  int    `json:"minutes"`
		Activity string `json:"activity"`
	}

	Assessment struct {
		Type     string   `json:"type"`
		Criteria []string `json:"criteria"`
	}

	Differentiation struct {
		Enabled bool   `json:"enabled"`
		Notes   string `json:"notes"`
	}
)
