package entity

import "time"

// FindingSeverity severidad de un hallazgo de inspección, ordenada:
// Minor < Moderate < Critical.
type FindingSeverity string

const (
	SeverityMinor    FindingSeverity = "Minor"
	SeverityModerate FindingSeverity = "Moderate"
	SeverityCritical FindingSeverity = "Critical"
)

// ParseFindingSeverity convierte el valor recibido por la API al tipo de dominio.
func ParseFindingSeverity(s string) (FindingSeverity, bool) {
	switch FindingSeverity(s) {
	case SeverityMinor, SeverityModerate, SeverityCritical:
		return FindingSeverity(s), true
	}
	return "", false
}

// CanChangeSeverity decide si una edición puede pasar de from a to.
// Regla de monotonicidad: una vez Critical, la severidad no puede bajar.
// Subidas y cambios al mismo nivel siempre se permiten.
func CanChangeSeverity(from, to FindingSeverity) bool {
	return from != SeverityCritical || to == SeverityCritical
}

// InspectionFinding es un hallazgo de inspección dentro de una orden de trabajo.
// Con IsResolved = true el hallazgo queda inmutable para ediciones de contenido
// y borrado; solo la operación dedicada de resolución puede seguir actuando
// sobre él (y puede apagar el flag de nuevo).
type InspectionFinding struct {
	ID             string
	JobOrderID     string
	Description    string
	Recommendation string
	Severity       FindingSeverity
	IsResolved     bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
