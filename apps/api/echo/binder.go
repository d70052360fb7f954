package echoapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// jsonBinder decodes request bodies as JSON only.
// Path and query parameters never reach the bound value, and a missing Content-Type is read as JSON.
type jsonBinder struct{}

var _ echo.Binder = jsonBinder{}

func (jsonBinder) Bind(i interface{}, ctx echo.Context) error {
	req := ctx.Request()
	if ctype := req.Header.Get(echo.HeaderContentType); ctype != "" && !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return echo.ErrUnsupportedMediaType
	}
	if req.Body == nil || req.ContentLength == 0 {
		return nil
	}

	err := json.NewDecoder(req.Body).Decode(i)
	switch e := err.(type) {
	case nil:
		return nil
	case *json.UnmarshalTypeError:
		msg := fmt.Sprintf("Unmarshal type error: expected=%v, got=%v, field=%v, offset=%v", e.Type, e.Value, e.Field, e.Offset)
		return echo.NewHTTPError(http.StatusBadRequest, msg).SetInternal(err)
	case *json.SyntaxError:
		msg := fmt.Sprintf("Syntax error: offset=%v, error=%v", e.Offset, e.Error())
		return echo.NewHTTPError(http.StatusBadRequest, msg).SetInternal(err)
	}
	if err == io.EOF { // chunked request without a body
		return nil
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}
