package quiz

import "fmt"

const freeResponseKey = "<free-response>"

// AnswerStrategy builds the question of type `qtype` at index `idx` along with its answer key entry.
type AnswerStrategy interface {
	Compose(idx int, qtype, topic string) (Question, string)
}

// PlaceholderAnswers always answers "A" to mcq and true to true_false items.
type PlaceholderAnswers struct{}

var _ AnswerStrategy = PlaceholderAnswers{}

func (PlaceholderAnswers) Compose(idx int, qtype, topic string) (Question, string) {
	q := Question{ID: fmt.Sprintf("Q%d", idx+1), Type: qtype}
	switch qtype {
	case TypeMCQ:
		q.Stem = fmt.Sprintf("Which statement about %s is correct?", topic)
		q.Choices = []string{"A", "B", "C", "D"}
		q.Answer = "A"
		return q, "A"
	case TypeTrueFalse:
		q.Stem = fmt.Sprintf("%s: True or False?", topic)
		q.Answer = true
		return q, "True"
	default: // short_answer
		q.Stem = fmt.Sprintf("Briefly explain %s.", topic)
		return q, freeResponseKey
	}
}
