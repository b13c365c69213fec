package dto

import "time"

// CreateOwnershipRequest alta de un registro de propiedad.
type CreateOwnershipRequest struct {
	VehicleID      string `json:"vehicleId"`
	CustomerID     string `json:"customerId"`
	IsCurrentOwner bool   `json:"isCurrentOwner"`
	Notes          string `json:"notes,omitempty"`
}

// TransferOwnershipRequest transferencia de propiedad a un nuevo dueño.
type TransferOwnershipRequest struct {
	VehicleID  string `json:"vehicleId"`
	NewOwnerID string `json:"newOwnerId"`
	Notes      string `json:"notes,omitempty"`
}

// OwnershipResponse detalle de un registro de propiedad.
type OwnershipResponse struct {
	ID                 string     `json:"id"`
	VehicleID          string     `json:"vehicleId"`
	CustomerID         string     `json:"customerId"`
	IsCurrentOwner     bool       `json:"isCurrentOwner"`
	OwnershipStartDate *time.Time `json:"ownershipStartDate,omitempty"`
	OwnershipEndDate   *time.Time `json:"ownershipEndDate,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	RegisteredAt       time.Time  `json:"registeredAt"`
}
