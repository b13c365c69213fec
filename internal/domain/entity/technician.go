package entity

import "time"

// TechnicianStatus estado del técnico.
type TechnicianStatus string

const (
	TechnicianActive   TechnicianStatus = "Active"
	TechnicianInactive TechnicianStatus = "Inactive"
)

// ParseTechnicianStatus convierte el valor recibido por la API al tipo de dominio.
func ParseTechnicianStatus(s string) (TechnicianStatus, bool) {
	switch TechnicianStatus(s) {
	case TechnicianActive, TechnicianInactive:
		return TechnicianStatus(s), true
	}
	return "", false
}

// Technician representa un técnico del taller. FullName y PhoneNumber se
// esperan únicos entre técnicos.
type Technician struct {
	ID             string
	FullName       string
	PhoneNumber    string
	Specialization string
	Status         TechnicianStatus
	RegisteredAt   time.Time
	UpdatedAt      *time.Time
}
