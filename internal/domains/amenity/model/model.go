package model

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID   = "id"
	FieldName = "name"
)

// Amenity is a fixed catalog entry referenced by rooms through its ID.
type Amenity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
