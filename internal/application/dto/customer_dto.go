package dto

import "time"

// CustomerIndividualPayload subtipo persona natural en el wire.
type CustomerIndividualPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CustomerCompanyPayload subtipo empresa en el wire.
type CustomerCompanyPayload struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Position      string `json:"position,omitempty"`
}

// CreateCustomerRequest alta de cliente. Exactamente uno de Individual/Company
// debe venir poblado y coincidir con Kind.
type CreateCustomerRequest struct {
	Kind        string                     `json:"kind"`
	Email       string                     `json:"email"`
	PhoneNumber string                     `json:"phoneNumber"`
	Address     string                     `json:"address,omitempty"`
	Notes       string                     `json:"notes,omitempty"`
	Individual  *CustomerIndividualPayload `json:"individual,omitempty"`
	Company     *CustomerCompanyPayload    `json:"company,omitempty"`
}

// UpdateCustomerRequest actualización de detalles. Cambiar Kind descarta el
// payload del subtipo anterior.
type UpdateCustomerRequest struct {
	Kind        string                     `json:"kind"`
	Email       string                     `json:"email"`
	PhoneNumber string                     `json:"phoneNumber"`
	Address     string                     `json:"address,omitempty"`
	Notes       string                     `json:"notes,omitempty"`
	Individual  *CustomerIndividualPayload `json:"individual,omitempty"`
	Company     *CustomerCompanyPayload    `json:"company,omitempty"`
}

// UpdateCustomerStatusRequest cambio de estado (Active/Inactive).
type UpdateCustomerStatusRequest struct {
	Status string `json:"status"`
}

// OwnedVehicleSummary resumen de un vehículo del cliente en la respuesta de detalle.
type OwnedVehicleSummary struct {
	VehicleID      string `json:"vehicleId"`
	PlateNumber    string `json:"plateNumber"`
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	IsCurrentOwner bool   `json:"isCurrentOwner"`
}

// CustomerResponse detalle de cliente devuelto por la API.
type CustomerResponse struct {
	ID            string                     `json:"id"`
	Kind          string                     `json:"kind"`
	Email         string                     `json:"email"`
	PhoneNumber   string                     `json:"phoneNumber"`
	Address       string                     `json:"address,omitempty"`
	Notes         string                     `json:"notes,omitempty"`
	Status        string                     `json:"status"`
	CreatedAt     time.Time                  `json:"createdAt"`
	UpdatedAt     *time.Time                 `json:"updatedAt,omitempty"`
	Individual    *CustomerIndividualPayload `json:"individual,omitempty"`
	Company       *CustomerCompanyPayload    `json:"company,omitempty"`
	OwnedVehicles []OwnedVehicleSummary      `json:"ownedVehicles,omitempty"`
}
