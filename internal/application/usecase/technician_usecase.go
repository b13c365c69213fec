package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
	"github.com/driveops/driveops-api/internal/domain/result"
)

// TechnicianUseCase reglas de negocio de técnicos: nombre completo y teléfono
// únicos, chequeados por separado con códigos de conflicto distintos.
type TechnicianUseCase struct {
	technicians repository.TechnicianRepository
}

// NewTechnicianUseCase construye el caso de uso.
func NewTechnicianUseCase(technicians repository.TechnicianRepository) *TechnicianUseCase {
	return &TechnicianUseCase{technicians: technicians}
}

// List lista técnicos paginados.
func (uc *TechnicianUseCase) List(page, pageSize int) result.Result[dto.PaginatedResponse[dto.TechnicianResponse]] {
	total, err := uc.technicians.Count()
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.TechnicianResponse]]("technician.list", err)
	}
	list, err := uc.technicians.List(pageSize, (page-1)*pageSize)
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.TechnicianResponse]]("technician.list", err)
	}
	items := make([]dto.TechnicianResponse, 0, len(list))
	for _, t := range list {
		items = append(items, toTechnicianResponse(t))
	}
	return result.Ok(dto.NewPaginatedResponse(page, pageSize, total, items))
}

// GetByID recupera un técnico.
func (uc *TechnicianUseCase) GetByID(id string) result.Result[dto.TechnicianResponse] {
	technician, err := uc.technicians.GetByID(id)
	if err != nil {
		return serverError[dto.TechnicianResponse]("technician.get", err)
	}
	if res := validateTechnicianExists[dto.TechnicianResponse](technician, id); res != nil {
		return *res
	}
	return result.Ok(toTechnicianResponse(technician))
}

// Create da de alta un técnico. Nombre duplicado responde Conflict; teléfono
// duplicado responde BadRequest (comportamiento por entidad conservado).
func (uc *TechnicianUseCase) Create(in dto.CreateTechnicianRequest) result.Result[dto.TechnicianResponse] {
	nameTaken, err := uc.technicians.ExistsByFullName(in.FullName, "")
	if err != nil {
		return serverError[dto.TechnicianResponse]("technician.create", err)
	}
	if res := validateTechnicianNameIsUnique[dto.TechnicianResponse](nameTaken, in.FullName); res != nil {
		return *res
	}

	phoneTaken, err := uc.technicians.ExistsByPhone(in.PhoneNumber, "")
	if err != nil {
		return serverError[dto.TechnicianResponse]("technician.create", err)
	}
	if res := validateTechnicianPhoneIsUnique[dto.TechnicianResponse](phoneTaken); res != nil {
		return *res
	}

	technician := &entity.Technician{
		ID:             uuid.New().String(),
		FullName:       in.FullName,
		PhoneNumber:    in.PhoneNumber,
		Specialization: in.Specialization,
		Status:         entity.TechnicianActive,
		RegisteredAt:   time.Now().UTC(),
	}
	if err := uc.technicians.Create(technician); err != nil {
		return writeError("technician.create", err, validateTechnicianNameIsUnique[dto.TechnicianResponse](true, technician.FullName))
	}
	return result.Ok(toTechnicianResponse(technician))
}

// UpdateDetails actualiza los datos del técnico excluyendo su propio ID de los
// escaneos de colisión.
func (uc *TechnicianUseCase) UpdateDetails(id string, in dto.UpdateTechnicianRequest) result.Result[dto.TechnicianResponse] {
	technician, err := uc.technicians.GetByID(id)
	if err != nil {
		return serverError[dto.TechnicianResponse]("technician.update", err)
	}
	if res := validateTechnicianExists[dto.TechnicianResponse](technician, id); res != nil {
		return *res
	}

	nameTaken, err := uc.technicians.ExistsByFullName(in.FullName, id)
	if err != nil {
		return serverError[dto.TechnicianResponse]("technician.update", err)
	}
	if res := validateTechnicianNameIsUnique[dto.TechnicianResponse](nameTaken, in.FullName); res != nil {
		return *res
	}

	phoneTaken, err := uc.technicians.ExistsByPhone(in.PhoneNumber, id)
	if err != nil {
		return serverError[dto.TechnicianResponse]("technician.update", err)
	}
	if res := validateTechnicianPhoneIsUnique[dto.TechnicianResponse](phoneTaken); res != nil {
		return *res
	}

	now := time.Now().UTC()
	technician.FullName = in.FullName
	technician.PhoneNumber = in.PhoneNumber
	technician.Specialization = in.Specialization
	technician.UpdatedAt = &now

	if err := uc.technicians.Update(technician); err != nil {
		return writeError("technician.update", err, validateTechnicianNameIsUnique[dto.TechnicianResponse](true, technician.FullName))
	}
	return result.Ok(toTechnicianResponse(technician))
}

// UpdateStatus cambia el estado Active/Inactive del técnico.
func (uc *TechnicianUseCase) UpdateStatus(id string, in dto.UpdateTechnicianStatusRequest) result.Result[dto.TechnicianResponse] {
	technician, err := uc.technicians.GetByID(id)
	if err != nil {
		return serverError[dto.TechnicianResponse]("technician.status", err)
	}
	if res := validateTechnicianExists[dto.TechnicianResponse](technician, id); res != nil {
		return *res
	}

	status, ok := entity.ParseTechnicianStatus(in.Status)
	if !ok {
		return result.Fail[dto.TechnicianResponse](result.StatusBadRequest,
			"Invalid technician status.",
			"Technician status must be Active or Inactive.")
	}

	now := time.Now().UTC()
	technician.Status = status
	technician.UpdatedAt = &now

	if err := uc.technicians.Update(technician); err != nil {
		return serverError[dto.TechnicianResponse]("technician.status", err)
	}
	return result.Ok(toTechnicianResponse(technician))
}
