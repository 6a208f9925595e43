package handler

import (
	"time"

	"adcheck/internal/aircraft"
	"adcheck/internal/domain"
)

// FleetResponse is one stored fleet with its parsed records.
type FleetResponse struct {
	Name      string                  `json:"name"`
	Records   []domain.AircraftRecord `json:"records"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// ListResponse is the body of GET /fleets.
type ListResponse struct {
	Fleets []FleetResponse `json:"fleets"`
}

// FromFleet converts a stored fleet to its response shape.
func FromFleet(fleet *aircraft.Fleet) FleetResponse {
	return FleetResponse{
		Name:      fleet.Name,
		Records:   fleet.Records,
		CreatedAt: fleet.CreatedAt,
		UpdatedAt: fleet.UpdatedAt,
	}
}
