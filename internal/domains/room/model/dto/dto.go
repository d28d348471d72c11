package dto

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"stay/internal/domains/room/model"
	"stay/shared"
	"stay/shared/constant"
	"stay/shared/daterange"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"
)

type CreateRoomRequest struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Category    string   `json:"category"    validate:"required,oneof=standard deluxe suite family presidential"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	Capacity    int      `json:"capacity"    validate:"required,min=1"`
	Amenities   []string `json:"amenities"   validate:"omitempty,dive,required"`
	Available   *bool    `json:"available"   validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Category:    c.Category,
		Description: c.Description,
		Price:       c.Price,
		Capacity:    c.Capacity,
		Amenities:   c.Amenities,
		Available:   available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name        string   `json:"name"        validate:"omitempty,max=100"`
	Category    string   `json:"category"    validate:"omitempty,oneof=standard deluxe suite family presidential"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Capacity    *int     `json:"capacity"    validate:"omitempty,min=1"`
	Amenities   []string `json:"amenities"   validate:"omitempty,dive,required"`
	Available   *bool    `json:"available"   validate:"omitempty"`
}

// ApplyTo merges the set fields onto the current room, leaving the reserved
// range set untouched.
func (u *UpdateRoomRequest) ApplyTo(room model.Room, user string) model.Room {
	if u.Name != constant.Empty {
		room.Name = u.Name
	}

	if u.Category != constant.Empty {
		room.Category = u.Category
	}

	if u.Description != nil {
		room.Description = *u.Description
	}

	if u.Price != nil {
		room.Price = *u.Price
	}

	if u.Capacity != nil {
		room.Capacity = *u.Capacity
	}

	if u.Amenities != nil {
		room.Amenities = u.Amenities
	}

	if u.Available != nil {
		room.Available = *u.Available
	}

	room.ModifiedAt = timezone.Now()
	room.ModifiedBy = user

	return room
}

type AddImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

// RoomFilter narrows catalog listings. A zero filter matches every room; the
// Stay range, when set, keeps only rooms free over that range.
type RoomFilter struct {
	Category  string           `json:"category"`
	MinPrice  *float64         `json:"min_price"`
	MaxPrice  *float64         `json:"max_price"`
	Capacity  *int             `json:"capacity"`
	Available *bool            `json:"available"`
	Stay      *daterange.Range `json:"stay"`
}

func (f *RoomFilter) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	f.Category = queryParams.Get(model.FieldCategory)

	if minPrice := queryParams.Get("min_price"); minPrice != constant.Empty {
		if value, err := strconv.ParseFloat(minPrice, 64); err == nil {
			f.MinPrice = &value
		}
	}

	if maxPrice := queryParams.Get("max_price"); maxPrice != constant.Empty {
		if value, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			f.MaxPrice = &value
		}
	}

	if capacity := queryParams.Get(model.FieldCapacity); capacity != constant.Empty {
		if value, err := strconv.Atoi(capacity); err == nil {
			f.Capacity = &value
		}
	}

	f.Available = shared.ConvertStringToBool(queryParams.Get(model.FieldAvailable))

	start := queryParams.Get(constant.RequestParamStartDate)
	end := queryParams.Get(constant.RequestParamEndDate)

	if start != constant.Empty || end != constant.Empty {
		stay, err := daterange.Parse(start, end)
		if err != nil {
			return err
		}

		f.Stay = &stay
	}

	return nil
}

func (f *RoomFilter) Matches(room model.Room) bool {
	if f.Category != constant.Empty && room.Category != f.Category {
		return false
	}

	if f.MinPrice != nil && room.Price < *f.MinPrice {
		return false
	}

	if f.MaxPrice != nil && room.Price > *f.MaxPrice {
		return false
	}

	if f.Capacity != nil && room.Capacity < *f.Capacity {
		return false
	}

	if f.Available != nil && room.Available != *f.Available {
		return false
	}

	if f.Stay != nil && !room.IsFreeFor(*f.Stay) {
		return false
	}

	return true
}

type RoomResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Available   bool     `json:"available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.Description = model.Description
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Amenities = model.Amenities
	r.Images = model.Images
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}
