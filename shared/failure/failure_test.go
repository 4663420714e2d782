package failure_test

import (
	"errors"
	"jumpy/shared/failure"
	"net/http"
	"testing"
)

func TestFailureConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request",
			err:      failure.BadRequest(errors.New("invalid payload")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid payload",
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("Missing required fields"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Missing required fields",
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("invalid credentials"),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "invalid credentials",
		},
		{
			name:     "forbidden",
			err:      failure.Forbidden("insufficient role"),
			wantCode: http.StatusForbidden,
			wantMsg:  "insufficient role",
		},
		{
			name:     "not found",
			err:      failure.NotFound("inflatable not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "inflatable not found",
		},
		{
			name:     "conflict",
			err:      failure.Conflict("slug already exists"),
			wantCode: http.StatusConflict,
			wantMsg:  "slug already exists",
		},
		{
			name:     "internal error",
			err:      failure.InternalError(errors.New("boom")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, code)
			}

			if tt.err.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, tt.err.Error())
			}
		})
	}
}

func TestBadRequestNilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCodeDefaultsToInternalError(t *testing.T) {
	if code := failure.GetCode(errors.New("plain error")); code != http.StatusInternalServerError {
		t.Errorf("expected %d, got %d", http.StatusInternalServerError, code)
	}
}
