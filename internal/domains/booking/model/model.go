package model

import (
	"fmt"

	"stay/shared/daterange"
	"stay/shared/failure"
	"stay/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID     = "id"
	FieldRoomID = "room_id"
	FieldUserID = "user_id"
	FieldStatus = "status"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Event string

const (
	EventConfirm  Event = "confirm"
	EventCancel   Event = "cancel"
	EventComplete Event = "complete"
)

// transitions is the single source of truth for booking lifecycle legality.
// Terminal statuses have no outgoing edges.
var transitions = map[Status]map[Event]Status{
	StatusPending: {
		EventConfirm: StatusConfirmed,
		EventCancel:  StatusCancelled,
	},
	StatusConfirmed: {
		EventCancel:   StatusCancelled,
		EventComplete: StatusCompleted,
	},
}

// NextStatus resolves the status an event leads to from the current one, or an
// InvalidTransition failure when the edge does not exist.
func NextStatus(current Status, event Event) (Status, error) {
	next, ok := transitions[current][event]
	if !ok {
		return current, failure.InvalidTransition(fmt.Sprintf("cannot %s a %s booking", event, current)) //nolint:wrapcheck
	}

	return next, nil
}

// Terminal reports whether no event can move the booking out of the status.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

type Booking struct {
	ID              string          `json:"id"`
	RoomID          string          `json:"room_id"`
	UserID          string          `json:"user_id"`
	Stay            daterange.Range `json:"stay"`
	Guests          int             `json:"guests"`
	TotalPrice      float64         `json:"total_price"`
	Status          Status          `json:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	SpecialRequests string          `json:"special_requests"`
	model.Metadata
}

// Active reports whether the booking still holds its room's dates.
func (b Booking) Active() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
