package quiz

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mindcanvas/core"
)

// Question types
const (
	TypeMCQ         = "mcq"
	TypeTrueFalse   = "true_false"
	TypeShortAnswer = "short_answer"
)

const defaultDifficulty = "mixed"

// Request contains the parameters of a quiz to generate.
type Request struct {
	Topic             string   `json:"topic" validate:"required,notblank"`
	GradeLevel        string   `json:"grade_level"`
	QuestionTypes     []string `json:"question_types" validate:"required,min=1,dive,oneof=mcq true_false short_answer"`
	NumQuestions      int      `json:"num_questions" validate:"required,min=1,max=50"`
	Difficulty        string   `json:"difficulty" validate:"oneof=easy medium hard mixed"`
	IncludeRationales bool     `json:"include_rationales"`
}

func (r *Request) Validate(validate *validator.Validate) error {
	r.Topic = core.CleanString(r.Topic)
	r.GradeLevel = core.CleanString(r.GradeLevel)
	r.Difficulty = core.CleanString(r.Difficulty)
	if r.Difficulty == "" {
		r.Difficulty = defaultDifficulty
	}
	return validate.Struct(r)
}

type (
	Response struct {
		Questions []Question `json:"questions"`
		AnswerKey []string   `json:"answer_key"`
	}

	// Question is one generated item; Answer is a string for mcq, a bool for true_false
	// and absent for short_answer.
	Question struct {
		ID        string      `json:"id"`
		Type      string      `json:"type"`
		Stem      string      `json:"stem"`
		Choices   []string    `json:"choices,omitempty"`
		Answer    interface{} `json:"answer,omitempty"`
		Rationale string      `json:"rationale,omitempty"`
	}
)
