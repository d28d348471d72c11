package dto

import (
	"stay/internal/domains/amenity/model"
)

type AmenityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (a *AmenityResponse) FromModel(model model.Amenity) {
	a.ID = model.ID
	a.Name = model.Name
	a.Description = model.Description
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalData int               `json:"total_data"`
}

func (a *GetAmenitiesResponse) FromModels(models []model.Amenity) {
	a.TotalData = len(models)

	a.Amenities = make([]AmenityResponse, len(models))
	for i, mod := range models {
		a.Amenities[i].FromModel(mod)
	}
}
