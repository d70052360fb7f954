package echoapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newRequestID() string {
	return uuid.NewString()
}

// requestLogger writes one access log event per request.
func requestLogger(zl zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				// let the error handler write the response so its status is logged
				ctx.Error(err)
			}

			req, res := ctx.Request(), ctx.Response()
			var evt *zerolog.Event
			switch {
			case res.Status >= 500:
				evt = zl.Error()
			case res.Status >= 400:
				evt = zl.Warn()
			default:
				evt = zl.Info()
			}
			evt.Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Str("ip", ctx.RealIP()).
				Str("user_agent", req.UserAgent()).
				Int("status", res.Status).
				Int64("bytes", res.Size).
				Dur("duration", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("HTTP request")
			return nil
		}
	}
}
