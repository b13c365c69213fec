package dto

import "time"

// CreateTechnicianRequest alta de técnico.
type CreateTechnicianRequest struct {
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Specialization string `json:"specialization,omitempty"`
}

// UpdateTechnicianRequest actualización de detalles de técnico.
type UpdateTechnicianRequest struct {
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Specialization string `json:"specialization,omitempty"`
}

// UpdateTechnicianStatusRequest cambio de estado (Active/Inactive).
type UpdateTechnicianStatusRequest struct {
	Status string `json:"status"`
}

// TechnicianResponse detalle de técnico devuelto por la API.
type TechnicianResponse struct {
	ID             string     `json:"id"`
	FullName       string     `json:"fullName"`
	PhoneNumber    string     `json:"phoneNumber"`
	Specialization string     `json:"specialization,omitempty"`
	Status         string     `json:"status"`
	RegisteredAt   time.Time  `json:"registeredAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}
