package dto

import "time"

// CreateVehicleRequest alta de vehículo.
type CreateVehicleRequest struct {
	PlateNumber string `json:"plateNumber"`
	VIN         string `json:"vin"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	Color       string `json:"color,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateVehicleRequest actualización de detalles de vehículo.
type UpdateVehicleRequest struct {
	PlateNumber string `json:"plateNumber"`
	VIN         string `json:"vin"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	Color       string `json:"color,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// VehicleResponse detalle de vehículo devuelto por la API.
type VehicleResponse struct {
	ID          string              `json:"id"`
	PlateNumber string              `json:"plateNumber"`
	VIN         string              `json:"vin"`
	Make        string              `json:"make"`
	Model       string              `json:"model"`
	Year        int                 `json:"year"`
	Color       string              `json:"color,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   *time.Time          `json:"updatedAt,omitempty"`
	Ownerships  []OwnershipResponse `json:"ownerships,omitempty"`
}
