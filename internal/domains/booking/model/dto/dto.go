package dto

import (
	"net/http"

	"github.com/google/uuid"

	"stay/internal/domains/booking/model"
	"stay/shared"
	"stay/shared/constant"
	"stay/shared/daterange"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID          string `json:"room_id"          validate:"required,uuid4"`
	UserID          string `json:"user_id"          validate:"required,uuid4"`
	StartDate       string `json:"start_date"       validate:"required"`
	EndDate         string `json:"end_date"         validate:"required"`
	Guests          int    `json:"guests"           validate:"required,min=1"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

// ToModel builds a pending booking. The stay and price are passed in because
// the coordinator parses the range and prices the stay before committing.
func (c *CreateBookingRequest) ToModel(actor string, stay daterange.Range, totalPrice float64) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		RoomID:          c.RoomID,
		UserID:          c.UserID,
		Stay:            stay,
		Guests:          c.Guests,
		TotalPrice:      totalPrice,
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentPending,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type ConfirmBookingRequest struct {
	PaymentMethod   string `json:"payment_method"   validate:"omitempty,oneof=card cash transfer"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

// BookingFilter narrows ledger listings by room, user, or status.
type BookingFilter struct {
	RoomID string `json:"room_id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

func (f *BookingFilter) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	f.RoomID = queryParams.Get(model.FieldRoomID)
	f.UserID = queryParams.Get(model.FieldUserID)
	f.Status = queryParams.Get(model.FieldStatus)
}

func (f *BookingFilter) Matches(booking model.Booking) bool {
	if f.RoomID != constant.Empty && booking.RoomID != f.RoomID {
		return false
	}

	if f.UserID != constant.Empty && booking.UserID != f.UserID {
		return false
	}

	if f.Status != constant.Empty && string(booking.Status) != f.Status {
		return false
	}

	return true
}

type BookingResponse struct {
	ID              string  `json:"id"`
	RoomID          string  `json:"room_id"`
	UserID          string  `json:"user_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Nights          int     `json:"nights"`
	Guests          int     `json:"guests"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.RoomID = model.RoomID
	b.UserID = model.UserID
	b.StartDate = model.Stay.StartString()
	b.EndDate = model.Stay.EndString()
	b.Nights = model.Stay.Nights()
	b.Guests = model.Guests
	b.TotalPrice = model.TotalPrice
	b.Status = string(model.Status)
	b.PaymentStatus = string(model.PaymentStatus)
	b.SpecialRequests = model.SpecialRequests
	b.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}

// LifecycleEvent is the payload published to the booking event stream.
type LifecycleEvent struct {
	Event      string  `json:"event"`
	BookingID  string  `json:"booking_id"`
	RoomID     string  `json:"room_id"`
	UserID     string  `json:"user_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	OccurredAt string  `json:"occurred_at"`
}

func NewLifecycleEvent(event string, booking model.Booking) LifecycleEvent {
	return LifecycleEvent{
		Event:      event,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		UserID:     booking.UserID,
		StartDate:  booking.Stay.StartString(),
		EndDate:    booking.Stay.EndString(),
		TotalPrice: booking.TotalPrice,
		Status:     string(booking.Status),
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}
}
