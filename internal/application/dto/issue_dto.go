package dto

import "time"

// CreateReportedIssueRequest alta de un problema reportado.
type CreateReportedIssueRequest struct {
	Description string `json:"description"`
}

// UpdateReportedIssueRequest edición de un problema reportado.
type UpdateReportedIssueRequest struct {
	Description string `json:"description"`
}

// ReportedIssueResponse detalle de un problema reportado.
type ReportedIssueResponse struct {
	ID          string     `json:"id"`
	JobOrderID  string     `json:"jobOrderId"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
