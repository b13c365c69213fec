package entity

import "time"

// Vehicle representa un vehículo registrado en el taller.
type Vehicle struct {
	ID          string
	PlateNumber string
	VIN         string
	Make        string
	Model       string
	Year        int
	Color       string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// VehicleOwnership es un registro del historial de propiedad de un vehículo.
// Invariante del ledger: a lo sumo un registro por vehículo con
// IsCurrentOwner = true. Un registro nunca se modifica salvo para apagar el
// flag durante una transferencia.
type VehicleOwnership struct {
	ID                 string
	VehicleID          string
	CustomerID         string
	IsCurrentOwner     bool
	OwnershipStartDate *time.Time
	OwnershipEndDate   *time.Time
	Notes              string
	RegisteredAt       time.Time
}
