package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"stay/shared/failure"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: failure.NotFound("room not found"), want: http.StatusNotFound},
		{name: "invalid range", err: failure.InvalidRange("start date must be before end date"), want: http.StatusBadRequest},
		{name: "capacity exceeded", err: failure.CapacityExceeded("too many guests"), want: http.StatusBadRequest},
		{name: "conflict", err: failure.Conflict("room is not available"), want: http.StatusConflict},
		{name: "invalid transition", err: failure.InvalidTransition("booking already completed"), want: http.StatusConflict},
		{name: "busy", err: failure.Busy("room is busy, retry later"), want: http.StatusServiceUnavailable},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestGetKind_Wrapped(t *testing.T) {
	err := fmt.Errorf("creating booking: %w", failure.Conflict("room is not available"))

	assert.Equal(t, failure.KindConflict, failure.GetKind(err))
	assert.True(t, failure.IsKind(err, failure.KindConflict))
	assert.False(t, failure.IsRetryable(err))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, failure.IsRetryable(failure.Busy("lock wait timed out")))
	assert.False(t, failure.IsRetryable(failure.Conflict("overlap")))
	assert.False(t, failure.IsRetryable(errors.New("boom")))
}
