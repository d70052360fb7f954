package main

import (
	"context"
	"expvar"
	"fmt"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof on the default mux
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	echoapi "github.com/trezcool/mindcanvas/apps/api/echo"
	"github.com/trezcool/mindcanvas/core"
	"github.com/trezcool/mindcanvas/core/apikey"
	"github.com/trezcool/mindcanvas/core/conference"
	"github.com/trezcool/mindcanvas/core/exitticket"
	"github.com/trezcool/mindcanvas/core/lesson"
	"github.com/trezcool/mindcanvas/core/progress"
	"github.com/trezcool/mindcanvas/core/quiz"
	"github.com/trezcool/mindcanvas/core/rubric"
	"github.com/trezcool/mindcanvas/core/standards"
	logsvc "github.com/trezcool/mindcanvas/services/logger"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	zl := newZeroLogger(conf)
	logger := logsvc.NewRollbarLogger(zl.With().Str("component", "api").Logger(), conf)
	logger.Enable(!conf.Debug)

	if conf.UsesDefaultAPIKey() {
		logger.Warn("API_KEY is not set, using the development key")
	}

	// set up services
	lessonSvc := lesson.NewService()
	quizSvc := quiz.NewService(quiz.PlaceholderAnswers{})
	rubricSvc := rubric.NewService(rubric.HighestLevel{}, rubric.FixedFeedback{})
	standardsSvc := standards.NewService(standards.FixedClassifier{})
	conferenceSvc := conference.NewService(conf.AppName)
	progressSvc := progress.NewService()
	exitTicketSvc := exitticket.NewService(exitticket.LengthGrouper{}, exitticket.FixedMisconceptions{})

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	conference.InitValidators(validate, translator)
	progress.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			AccessLog:     zl.With().Str("component", "http").Logger(),
			Validate:      validate,
			Translator:    translator,
			Gate:          apikey.NewGate(conf.APIKey),
			LessonSvc:     lessonSvc,
			QuizSvc:       quizSvc,
			RubricSvc:     rubricSvc,
			StandardsSvc:  standardsSvc,
			ConferenceSvc: conferenceSvc,
			ProgressSvc:   progressSvc,
			ExitTicketSvc: exitTicketSvc,
		},
	)

	go func() {
		logger.Info(fmt.Sprintf("API listening on %s", conf.Server.Host))
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// newZeroLogger writes JSON to stdout, or human readable lines in debug mode.
func newZeroLogger(conf *core.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level := zerolog.InfoLevel
	if conf.Debug {
		level = zerolog.DebugLevel
	}

	var zl zerolog.Logger
	if conf.Debug {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05.000"})
	} else {
		zl = zerolog.New(os.Stdout)
	}
	return zl.Level(level).With().
		Timestamp().
		Str("service", conf.ServiceName).
		Str("build", conf.Build).
		Logger()
}
