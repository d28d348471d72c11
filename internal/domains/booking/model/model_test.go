package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stay/internal/domains/booking/model"
	"stay/shared/failure"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name    string
		current model.Status
		event   model.Event
		want    model.Status
		wantErr bool
	}{
		{name: "pending confirm", current: model.StatusPending, event: model.EventConfirm, want: model.StatusConfirmed},
		{name: "pending cancel", current: model.StatusPending, event: model.EventCancel, want: model.StatusCancelled},
		{name: "confirmed cancel", current: model.StatusConfirmed, event: model.EventCancel, want: model.StatusCancelled},
		{name: "confirmed complete", current: model.StatusConfirmed, event: model.EventComplete, want: model.StatusCompleted},
		{name: "pending complete is illegal", current: model.StatusPending, event: model.EventComplete, wantErr: true},
		{name: "cancelled is terminal", current: model.StatusCancelled, event: model.EventConfirm, wantErr: true},
		{name: "completed is terminal", current: model.StatusCompleted, event: model.EventCancel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := model.NextStatus(tt.current, tt.event)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, model.StatusPending.Terminal())
	assert.False(t, model.StatusConfirmed.Terminal())
	assert.True(t, model.StatusCancelled.Terminal())
	assert.True(t, model.StatusCompleted.Terminal())
}

func TestBookingActive(t *testing.T) {
	assert.True(t, model.Booking{Status: model.StatusPending}.Active())
	assert.True(t, model.Booking{Status: model.StatusConfirmed}.Active())
	assert.False(t, model.Booking{Status: model.StatusCancelled}.Active())
	assert.False(t, model.Booking{Status: model.StatusCompleted}.Active())
}
