package model

import (
	"stay/shared/daterange"
	"stay/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID        = "id"
	FieldName      = "name"
	FieldCategory  = "category"
	FieldPrice     = "price"
	FieldCapacity  = "capacity"
	FieldAvailable = "available"
)

const (
	CategoryStandard     = "standard"
	CategoryDeluxe       = "deluxe"
	CategorySuite        = "suite"
	CategoryFamily       = "family"
	CategoryPresidential = "presidential"
)

type Room struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Capacity    int               `json:"capacity"`
	Amenities   []string          `json:"amenities"`
	Images      []string          `json:"images"`
	Available   bool              `json:"available"`
	Reserved    []daterange.Range `json:"reserved"`
	model.Metadata
}

// IsFreeFor reports whether the room can take a stay over the given range.
// Invariant: entries in Reserved never pairwise-overlap, so one pass over the
// set decides the answer.
func (r Room) IsFreeFor(stay daterange.Range) bool {
	return r.Available && !stay.OverlapsAny(r.Reserved)
}
