package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sistemaescolar/backend/core"
)

// newAppHTTPErrorHandler returns the one place that turns errors into HTTP
// responses. Validation and auth/not-found failures render as {"msg": ...}
// with their status; anything else is a server error rendered as
// {"error": <message>}, where the message is the unwrapped cause so database
// driver errors reach the client verbatim. Changing that exposure is a
// one-line edit here.
func newAppHTTPErrorHandler(logger core.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var body interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			body = echo.Map{"msg": origErr.Message}
		case *core.ValidationError:
			code = http.StatusBadRequest
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				body = echo.Map{"msg": fldErrs}
			} else {
				body = echo.Map{"msg": origErr.Error()}
			}
		default: // any other error is a server error
			code = http.StatusInternalServerError
			body = echo.Map{"error": origErr.Error()}
			logger.Error(http.StatusText(code), err)
		}

		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, body)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
