package lesson

import (
	"github.com/trezcool/mindcanvas/core"
)

const (
	doNowMinutes      = 5
	miniLessonMinutes = 15
	guidedMinutes     = 20
	exitTicketMinutes = 5

	// minutes taken by every phase but Independent Practice
	fixedMinutes = doNowMinutes + miniLessonMinutes + guidedMinutes + exitTicketMinutes
)

var (
	defaultObjectives = []string{"Students will ..."}
	materials         = []string{"Projector", "Slides", "Handout"}
	criteria          = []string{"Accuracy", "Reasoning"}
)

type (
	Service interface {
		CreatePlan(pr PlanRequest) (PlanResponse, error)
	}

	service struct{}
)

func NewService() Service {
	return &service{}
}

func (svc *service) CreatePlan(pr PlanRequest) (PlanResponse, error) {
	standards := pr.Standards
	if standards == nil {
		standards = []string{}
	}
	objectives := pr.LearningObjectives
	if len(objectives) == 0 {
		objectives = append([]string(nil), defaultObjectives...)
	}

	plan := Plan{
		Meta: Meta{
			GeneratedAt:     core.NowISO(),
			Subject:         pr.Subject,
			GradeLevel:      pr.GradeLevel,
			DurationMinutes: pr.DurationMinutes,
			Standards:       standards,
		},
		Objectives: objectives,
		Materials:  append([]string(nil), materials...),
		Sequence: []Phase{
			{Phase: "Do Now", Minutes: doNowMinutes, Activity: "Warm-up prompt"},
			{Phase: "Mini-lesson", Minutes: miniLessonMinutes, Activity: "Direct instruction"},
			{Phase: "Guided Practice", Minutes: guidedMinutes, Activity: "Partner work"},
			{Phase: "Independent Practice", Minutes: independentMinutes(pr.DurationMinutes), Activity: "Task"},
			{Phase: "Exit Ticket", Minutes: exitTicketMinutes, Activity: "Quick check"},
		},
		Assessment: Assessment{Type: "exit_ticket", Criteria: append([]string(nil), criteria...)},
		Differentiation: Differentiation{
			Enabled: pr.Differentiation,
			Notes:   "Scaffolds and extensions suggested.",
		},
	}
	return PlanResponse{LessonPlan: plan}, nil
}

// independentMinutes is what remains of the lesson after the fixed phases, never negative.
func independentMinutes(duration int) int {
	if m := duration - fixedMinutes; m > 0 {
		return m
	}
	return 0
}
