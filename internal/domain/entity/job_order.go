package entity

import "time"

// JobOrderStatus estado de una orden de trabajo.
// Pending → InProgress → {Completed, Cancelled}. El cambio de estado es una
// decisión del operador: la operación explícita de actualización de estado
// admite cualquier destino. Lo que sí gobierna el estado es la mutabilidad de
// los registros hijos (issues y findings).
type JobOrderStatus string

const (
	JobOrderPending    JobOrderStatus = "Pending"
	JobOrderInProgress JobOrderStatus = "InProgress"
	JobOrderCompleted  JobOrderStatus = "Completed"
	JobOrderCancelled  JobOrderStatus = "Cancelled"
)

// ParseJobOrderStatus convierte el valor recibido por la API al tipo de dominio.
func ParseJobOrderStatus(s string) (JobOrderStatus, bool) {
	switch JobOrderStatus(s) {
	case JobOrderPending, JobOrderInProgress, JobOrderCompleted, JobOrderCancelled:
		return JobOrderStatus(s), true
	}
	return "", false
}

// IsMutable indica si la orden admite crear/editar/borrar registros hijos.
func (s JobOrderStatus) IsMutable() bool {
	return s == JobOrderPending || s == JobOrderInProgress
}

// JobOrder representa una orden de trabajo del taller.
type JobOrder struct {
	ID             string
	JobOrderNumber string
	Status         JobOrderStatus
	CustomerID     string
	VehicleID      string
	TechnicianID   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReportedIssue es un problema reportado por el cliente dentro de una orden.
// Su ciclo de vida está completamente delegado al estado de la orden padre.
type ReportedIssue struct {
	ID          string
	JobOrderID  string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
