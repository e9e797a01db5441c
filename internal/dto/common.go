package dto

import "github.com/GlebRadaev/deliverypartner/internal/domain"

// LocationDTO keeps coordinates as pointers so a missing value is told apart from zero.
type LocationDTO struct {
	Description string   `json:"description" validate:"required"`
	Lat         *float64 `json:"lat"         validate:"required"`
	Lng         *float64 `json:"lng"         validate:"required"`
}

func (l LocationDTO) Domain() domain.Location {
	loc := domain.Location{Description: l.Description}
	if l.Lat != nil {
		loc.Lat = *l.Lat
	}
	if l.Lng != nil {
		loc.Lng = *l.Lng
	}
	return loc
}
