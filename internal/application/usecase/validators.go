package usecase

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/driveops/driveops-api/internal/domain"
	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/result"
)

// Validadores de reglas de negocio. Cada uno devuelve nil cuando la regla se
// cumple, o el Result de fallo listo para retornar. Los casos de uso los
// evalúan en orden fijo (existencia → estado → unicidad → contenido) y cortan
// en el primer fallo.

func fail[T any](status result.StatusClass, title, message string) *result.Result[T] {
	r := result.Fail[T](status, title, message)
	return &r
}

// serverError registra el error de infraestructura y devuelve un fallo
// genérico sin exponer detalle interno.
func serverError[T any](op string, err error) result.Result[T] {
	log.Error().Err(err).Str("op", op).Msg("fallo de infraestructura en operación de negocio")
	return result.Fail[T](result.StatusServerError,
		"Unexpected error.",
		"Something went wrong while processing the request.")
}

// writeError traduce el error de una escritura. El guard de unicidad lee y
// decide antes de escribir, así que dos comandos concurrentes pueden pasar el
// chequeo a la vez; cuando el constraint único del almacén corta al segundo,
// se devuelve el mismo resultado de duplicado que habría producido el guard.
// Cualquier otro error es fallo de infraestructura.
func writeError[T any](op string, err error, dup *result.Result[T]) result.Result[T] {
	if errors.Is(err, domain.ErrDuplicate) && dup != nil {
		return *dup
	}
	return serverError[T](op, err)
}

// ── Existencia de entidades ──────────────────────────────────────────────────

func validateCustomerExists[T any](customer *entity.Customer, id string) *result.Result[T] {
	if customer == nil {
		return fail[T](result.StatusNotFound,
			"Customer not found.",
			fmt.Sprintf("Customer with ID [%s] does not exist.", id))
	}
	return nil
}

func validateVehicleExists[T any](vehicle *entity.Vehicle, id string) *result.Result[T] {
	if vehicle == nil {
		return fail[T](result.StatusNotFound,
			"Vehicle not found.",
			fmt.Sprintf("Vehicle with ID [%s] does not exist.", id))
	}
	return nil
}

func validateTechnicianExists[T any](technician *entity.Technician, id string) *result.Result[T] {
	if technician == nil {
		return fail[T](result.StatusNotFound,
			"Technician not found",
			fmt.Sprintf("No technician found with ID [%s].", id))
	}
	return nil
}

func validateJobOrderExists[T any](jobOrder *entity.JobOrder, ref string) *result.Result[T] {
	if jobOrder == nil {
		return fail[T](result.StatusNotFound,
			"Job order not found",
			fmt.Sprintf("No job order found with ID [%s].", ref))
	}
	return nil
}

func validateOwnershipExists[T any](ownership *entity.VehicleOwnership, id string) *result.Result[T] {
	if ownership == nil {
		return fail[T](result.StatusNotFound,
			"Ownership record not found.",
			fmt.Sprintf("No vehicle ownership record found with ID [%s].", id))
	}
	return nil
}

func validateIssueExists[T any](issue *entity.ReportedIssue, id string) *result.Result[T] {
	if issue == nil {
		return fail[T](result.StatusNotFound,
			"Reported issue not found",
			fmt.Sprintf("No reported issue found with ID [%s] for the specified job order.", id))
	}
	return nil
}

func validateFindingExists[T any](finding *entity.InspectionFinding, id string) *result.Result[T] {
	if finding == nil {
		return fail[T](result.StatusNotFound,
			"Inspection finding not found",
			fmt.Sprintf("No inspection finding found with ID [%s] for the specified job order.", id))
	}
	return nil
}

// ── Unicidad ─────────────────────────────────────────────────────────────────

func validateDuplicateContacts[T any](isDuplicate bool) *result.Result[T] {
	if isDuplicate {
		return fail[T](result.StatusBadRequest,
			"Duplicate contact details.",
			"Customer with the same contact details already exists.")
	}
	return nil
}

func validateDuplicateVehicleDetails[T any](isDuplicate bool) *result.Result[T] {
	if isDuplicate {
		return fail[T](result.StatusBadRequest,
			"Duplicate vehicle details",
			"Vehicle with the same plate number or VIN already exists.")
	}
	return nil
}

// El nombre de técnico duplicado responde 409 mientras que el teléfono
// duplicado responde 400. La asimetría viene del comportamiento original y se
// conserva por entidad.
func validateTechnicianNameIsUnique[T any](isDuplicate bool, fullName string) *result.Result[T] {
	if isDuplicate {
		return fail[T](result.StatusConflict,
			"Duplicate Technician record",
			fmt.Sprintf("A technician named %s is already registered.", fullName))
	}
	return nil
}

func validateTechnicianPhoneIsUnique[T any](isDuplicate bool) *result.Result[T] {
	if isDuplicate {
		return fail[T](result.StatusBadRequest,
			"Phone number already in use",
			"Another technician is already registered with this phone number.")
	}
	return nil
}

func validateJobOrderNumberIsUnique[T any](isDuplicate bool) *result.Result[T] {
	if isDuplicate {
		return fail[T](result.StatusBadRequest,
			"Job order number already exists",
			"A job order with the same number already exists.")
	}
	return nil
}

// ── Ledger de propiedad ──────────────────────────────────────────────────────

func validateNoCurrentOwner[T any](hasCurrentOwner bool) *result.Result[T] {
	if hasCurrentOwner {
		return fail[T](result.StatusBadRequest,
			"Current ownership conflict.",
			"This vehicle is already marked as currently owned. End the previous ownership before assigning a new owner.")
	}
	return nil
}

func validateOwnershipToTransfer[T any](current *entity.VehicleOwnership) *result.Result[T] {
	if current == nil {
		return fail[T](result.StatusBadRequest,
			"No ownership to transfer.",
			"Cannot transfer ownership. The vehicle currently has no registered owner.")
	}
	return nil
}

// ── Ciclo de vida de la orden de trabajo ─────────────────────────────────────

// validateJobOrderMutable aplica la regla que bloquea mutaciones de registros
// hijos cuando la orden está Completed o Cancelled.
func validateJobOrderMutable[T any](jobOrder *entity.JobOrder, operation, entityType string) *result.Result[T] {
	if !jobOrder.Status.IsMutable() {
		return fail[T](result.StatusConflict,
			"Job order is not modifiable",
			fmt.Sprintf("Job order is %s, cannot %s %s.", jobOrder.Status, operation, entityType))
	}
	return nil
}

// ── Ciclo de vida del hallazgo de inspección ─────────────────────────────────

func validateFindingNotResolved[T any](finding *entity.InspectionFinding, operation string) *result.Result[T] {
	if finding.IsResolved {
		return fail[T](result.StatusConflict,
			"Inspection finding already resolved",
			fmt.Sprintf("Cannot %s inspection finding with ID [%s] because it has already been resolved.", operation, finding.ID))
	}
	return nil
}

func validateSeverityChange[T any](current, next entity.FindingSeverity) *result.Result[T] {
	if !entity.CanChangeSeverity(current, next) {
		return fail[T](result.StatusBadRequest,
			"Invalid severity change",
			"Cannot downgrade severity from Critical to a lower level. Critical findings must remain critical.")
	}
	return nil
}
