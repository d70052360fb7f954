package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mindcanvas/core/conference"
	"github.com/trezcool/mindcanvas/core/exitticket"
	"github.com/trezcool/mindcanvas/core/lesson"
	"github.com/trezcool/mindcanvas/core/progress"
	"github.com/trezcool/mindcanvas/core/quiz"
	"github.com/trezcool/mindcanvas/core/rubric"
	"github.com/trezcool/mindcanvas/core/standards"
)

type actionsApi struct {
	validate      *validator.Validate
	lessonSvc     lesson.Service
	quizSvc       quiz.Service
	rubricSvc     rubric.Service
	standardsSvc  standards.Service
	conferenceSvc conference.Service
	progressSvc   progress.Service
	exitTicketSvc exitticket.Service
}

func registerActionsAPI(e *echo.Echo, auth echo.MiddlewareFunc, deps ServerDeps) {
	api := actionsApi{
		validate:      deps.Validate,
		lessonSvc:     deps.LessonSvc,
		quizSvc:       deps.QuizSvc,
		rubricSvc:     deps.RubricSvc,
		standardsSvc:  deps.StandardsSvc,
		conferenceSvc: deps.ConferenceSvc,
		progressSvc:   deps.ProgressSvc,
		exitTicketSvc: deps.ExitTicketSvc,
	}

	// every action requires the API key
	e.POST("/create-lesson-plan", api.createLessonPlan, auth)
	e.POST("/generate-quiz", api.generateQuiz, auth)
	e.POST("/grade-with-rubric", api.gradeWithRubric, auth)
	e.POST("/map-objectives-to-standards", api.mapObjectivesToStandards, auth)
	e.POST("/schedule-parent-conference", api.scheduleParentConference, auth)
	e.POST("/track-student-progress", api.trackStudentProgress, auth)
	e.POST("/analyze-exit-tickets", api.analyzeExitTickets, auth)
}

// bind decodes the request body into `data`, reporting decoding failures as validation errors.
func bind(ctx echo.Context, data interface{}) error {
	if err := ctx.Bind(data); err != nil {
		if herr, ok := err.(*echo.HTTPError); ok {
			return bindingError(herr)
		}
		return err
	}
	return nil
}

// Handlers

func (api *actionsApi) createLessonPlan(ctx echo.Context) error {
	var data lesson.PlanRequest
	if err := bind(ctx, &data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	resp, err := api.lessonSvc.CreatePlan(data)
	if err != nil {
		return errors.Wrap(err, "creating lesson plan")
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *actionsApi) generateQuiz(ctx echo.Context) error {
	var data quiz.Request
	if err := bind(ctx, &data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	resp, err := api.quizSvc.Generate(data)
	if err != nil {
		return errors.Wrap(err, "generating quiz")
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *actionsApi) gradeWithRubric(ctx echo.Context) error {
	var data rubric.GradeRequest
	if err := bind(ctx, &data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	resp, err := api.rubricSvc.Grade(data)
	if err != nil {
		return errors.Wrap(err, "grading with rubric")
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *actionsApi) mapObjectivesToStandards(ctx echo.Context) error {
	var data standards.MapRequest
	if err := bind(ctx, &data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	resp, err := api.standardsSvc.Map(data)
	if err != nil {
		return errors.Wrap(err, "mapping objectives")
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *actionsApi) scheduleParentConference(ctx echo.Context) error {
	var data conference.ScheduleRequest
	if err := bind(ctx, &data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	resp, err := api.conferenceSvc.Schedule(data)
	if err != nil {
		return errors.Wrap(err, "scheduling conference")
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *actionsApi) trackStudentProgress(ctx echo.Context) error {
	var data progress.TrackRequest
	if err := bind(ctx, &data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	resp, err := api.progressSvc.Track(data)
	if err != nil {
		return errors.Wrap(err, "tracking progress")
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *actionsApi) analyzeExitTickets(ctx echo.Context) error {
	var data exitticket.AnalyzeRequest
	if err := bind(ctx, &data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	resp, err := api.exitTicketSvc.Analyze(data)
	if err != nil {
		return errors.Wrap(err, "analyzing exit tickets")
	}
	return ctx.JSON(http.StatusOK, resp)
}
