package dto

import "time"

// CreateJobOrderRequest alta de orden de trabajo. Las tres referencias deben
// existir al momento de crear.
type CreateJobOrderRequest struct {
	JobOrderNumber string `json:"jobOrderNumber"`
	CustomerID     string `json:"customerId"`
	VehicleID      string `json:"vehicleId"`
	TechnicianID   string `json:"technicianId"`
}

// PatchJobOrderRequest reasignación parcial: solo los campos presentes se
// validan y aplican.
type PatchJobOrderRequest struct {
	CustomerID   *string `json:"customerId,omitempty"`
	VehicleID    *string `json:"vehicleId,omitempty"`
	TechnicianID *string `json:"technicianId,omitempty"`
}

// UpdateJobOrderStatusRequest cambio de estado explícito (dirigido por el operador).
type UpdateJobOrderStatusRequest struct {
	Status string `json:"status"`
}

// JobOrderCustomerSummary cliente embebido en la respuesta de orden.
type JobOrderCustomerSummary struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// JobOrderVehicleSummary vehículo embebido en la respuesta de orden.
type JobOrderVehicleSummary struct {
	ID          string `json:"id"`
	PlateNumber string `json:"plateNumber"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
}

// JobOrderTechnicianSummary técnico embebido en la respuesta de orden.
type JobOrderTechnicianSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

// JobOrderResponse detalle de orden devuelto por la API, con las referencias
// expandidas desde el lado de lectura.
type JobOrderResponse struct {
	ID             string                     `json:"id"`
	JobOrderNumber string                     `json:"jobOrderNumber"`
	Status         string                     `json:"status"`
	Customer       *JobOrderCustomerSummary   `json:"customer,omitempty"`
	Vehicle        *JobOrderVehicleSummary    `json:"vehicle,omitempty"`
	Technician     *JobOrderTechnicianSummary `json:"technician,omitempty"`
	CreatedAt      time.Time                  `json:"createdAt"`
	UpdatedAt      time.Time                  `json:"updatedAt"`
}
