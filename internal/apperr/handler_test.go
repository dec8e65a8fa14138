package apperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/propcheck/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		want       apperr.Response
	}{
		{
			name:       "kinded",
			err:        fmt.Errorf("row 2: %w", &apperr.UndefinedVariableError{Name: "p3"}),
			wantStatus: http.StatusUnprocessableEntity,
			want:       apperr.Response{Error: "no value defined for variable 'p3'", Kind: apperr.UndefinedVariableKind},
		},
		{
			name:       "depth",
			err:        &apperr.DepthError{Pos: -1, Max: 8},
			wantStatus: http.StatusBadRequest,
			want:       apperr.Response{Error: "expression nests deeper than 8 levels", Kind: apperr.DepthKind},
		},
		{
			name:       "echo",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			want:       apperr.Response{Error: "method not allowed"},
		},
		{
			name:       "unexpected",
			err:        errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
			want:       apperr.Response{Error: "internal server error"},
		},
	}

	handler := apperr.GlobalErrorHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

			handler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got apperr.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponse_OmitsUnknownKind(t *testing.T) {
	data, err := json.Marshal(apperr.Response{Error: "internal server error"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"internal server error"}`, string(data))
}
