package dto

import "time"

// CreateFindingRequest alta de hallazgo de inspección. Description y
// Recommendation son obligatorios.
type CreateFindingRequest struct {
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	Severity       string `json:"severity"`
}

// UpdateFindingRequest edición de contenido de un hallazgo.
type UpdateFindingRequest struct {
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	Severity       string `json:"severity"`
}

// UpdateFindingStatusRequest toggle del flag de resolución (en ambos sentidos).
type UpdateFindingStatusRequest struct {
	IsResolved bool `json:"isResolved"`
}

// FindingResponse detalle de un hallazgo de inspección.
type FindingResponse struct {
	ID             string     `json:"id"`
	JobOrderID     string     `json:"jobOrderId"`
	Description    string     `json:"description"`
	Recommendation string     `json:"recommendation"`
	Severity       string     `json:"severity"`
	IsResolved     bool       `json:"isResolved"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}
