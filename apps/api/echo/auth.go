package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/mindcanvas/core/apikey"
)

// apiKeyMiddleware rejects requests whose API key header does not match the gate's secret.
func apiKeyMiddleware(gate *apikey.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if err := gate.Check(ctx.Request().Header.Get(apikey.Header)); err != nil {
				return err
			}
			return next(ctx)
		}
	}
}
