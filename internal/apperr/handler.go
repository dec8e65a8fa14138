package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusOf maps an error kind to the HTTP status the API answers with.
func StatusOf(kind Kind) int {
	switch kind {
	case ValidationKind, LexKind, ParseKind, DepthKind:
		return http.StatusBadRequest
	case UndefinedVariableKind:
		return http.StatusUnprocessableEntity
	case TooManyVariablesKind:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Response is the body of every error the API returns.
type Response struct {
	Error string `json:"error"`
	Kind  Kind   `json:"kind,omitempty" swaggertype:"string" enums:"validation,lex,parse,depth,undefined_variable,too_many_variables"`
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ke Kinded
		if errors.As(err, &ke) {
			kind := ke.Kind()
			_ = c.JSON(StatusOf(kind), Response{Error: ke.Error(), Kind: kind})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, Response{Error: msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, Response{Error: "internal server error"})
	}
}
