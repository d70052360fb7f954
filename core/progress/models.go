package progress

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mindcanvas/core"
)

const (
	defaultAssessmentType = "other"
	defaultRollupWindow   = "unit"
)

// Entry is one scored assessment event.
type Entry struct {
	Date           string   `json:"date" validate:"required"`
	Standard       string   `json:"standard" validate:"required,notblank"`
	Score          *float64 `json:"score" validate:"required,min=0"`
	MaxScore       *float64 `json:"max_score" validate:"required,gt=0"`
	AssessmentType string   `json:"assessment_type" validate:"oneof=quiz project exit_ticket test other"`
	Notes          string   `json:"notes,omitempty"`
}

// ratio is the share of max_score earned; validation guarantees it lies in [0, 1].
func (e Entry) ratio() float64 {
	return *e.Score / *e.MaxScore
}

// TrackRequest contains the scored entries of a student to roll up.
type TrackRequest struct {
	StudentID    string  `json:"student_id" validate:"required,notblank"`
	Entries      []Entry `json:"entries" validate:"required,dive"`
	RollupWindow string  `json:"rollup_window" validate:"oneof=unit quarter semester year"`
}

func (tr *TrackRequest) Validate(validate *validator.Validate) error {
	tr.StudentID = core.CleanString(tr.StudentID)
	tr.RollupWindow = core.CleanString(tr.RollupWindow)
	if tr.RollupWindow == "" {
		tr.RollupWindow = defaultRollupWindow
	}
	for i := range tr.Entries {
		e := &tr.Entries[i]
		e.Date = core.CleanString(e.Date)
		e.Standard = core.CleanString(e.Standard)
		e.AssessmentType = core.CleanString(e.AssessmentType)
		if e.AssessmentType == "" {
			e.AssessmentType = defaultAssessmentType
		}
	}
	return validate.Struct(tr)
}

type (
	TrackResponse struct {
		Mastery []Mastery `json:"mastery"`
	}

	Mastery struct {
		Standard   string  `json:"standard"`
		AvgMastery float64 `json:"avg_mastery"`
		Samples    int     `json:"samples"`
	}
)
