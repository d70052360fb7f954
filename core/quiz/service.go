package quiz

import (
	"fmt"

	"github.com/pkg/errors"
)

var errNoQuestionTypes = errors.New("no question types")

type (
	Service interface {
		Generate(r Request) (Response, error)
	}

	service struct {
		answers AnswerStrategy
	}
)

// NewService returns a quiz Service; a nil strategy falls back to PlaceholderAnswers.
func NewService(answers AnswerStrategy) Service {
	if answers == nil {
		answers = PlaceholderAnswers{}
	}
	return &service{answers: answers}
}

// Generate cycles through the requested question types in order.
func (svc *service) Generate(r Request) (Response, error) {
	if len(r.QuestionTypes) == 0 {
		return Response{}, errors.Wrap(errNoQuestionTypes, "quiz.Generate")
	}

	resp := Response{
		Questions: make([]Question, 0, r.NumQuestions),
		AnswerKey: make([]string, 0, r.NumQuestions),
	}
	for i := 0; i < r.NumQuestions; i++ {
		q, key := svc.answers.Compose(i, r.QuestionTypes[i%len(r.QuestionTypes)], r.Topic)
		if r.IncludeRationales {
			q.Rationale = fmt.Sprintf("Rationale for %s pending review (%s difficulty).", q.ID, r.Difficulty)
		}
		resp.Questions = append(resp.Questions, q)
		resp.AnswerKey = append(resp.AnswerKey, key)
	}
	return resp, nil
}
