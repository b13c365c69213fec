package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
	"github.com/driveops/driveops-api/internal/domain/result"
)

// VehicleUseCase reglas de negocio de vehículos: unicidad de placa O VIN.
type VehicleUseCase struct {
	vehicles   repository.VehicleRepository
	ownerships repository.VehicleOwnershipRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(vehicles repository.VehicleRepository, ownerships repository.VehicleOwnershipRepository) *VehicleUseCase {
	return &VehicleUseCase{vehicles: vehicles, ownerships: ownerships}
}

// List lista vehículos paginados.
func (uc *VehicleUseCase) List(page, pageSize int) result.Result[dto.PaginatedResponse[dto.VehicleResponse]] {
	total, err := uc.vehicles.Count()
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.VehicleResponse]]("vehicle.list", err)
	}
	list, err := uc.vehicles.List(pageSize, (page-1)*pageSize)
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.VehicleResponse]]("vehicle.list", err)
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, toVehicleResponse(v))
	}
	return result.Ok(dto.NewPaginatedResponse(page, pageSize, total, items))
}

// GetByID devuelve el vehículo con su historial de propiedad.
func (uc *VehicleUseCase) GetByID(id string) result.Result[dto.VehicleResponse] {
	vehicle, err := uc.vehicles.GetByID(id)
	if err != nil {
		return serverError[dto.VehicleResponse]("vehicle.get", err)
	}
	if res := validateVehicleExists[dto.VehicleResponse](vehicle, id); res != nil {
		return *res
	}

	out := toVehicleResponse(vehicle)
	records, err := uc.ownerships.ListByVehicle(id)
	if err != nil {
		return serverError[dto.VehicleResponse]("vehicle.get", err)
	}
	for _, rec := range records {
		out.Ownerships = append(out.Ownerships, toOwnershipResponse(rec))
	}
	return result.Ok(out)
}

// Create da de alta un vehículo.
func (uc *VehicleUseCase) Create(in dto.CreateVehicleRequest) result.Result[dto.VehicleResponse] {
	isDuplicate, err := uc.vehicles.ExistsByPlateOrVIN(in.PlateNumber, in.VIN, "")
	if err != nil {
		return serverError[dto.VehicleResponse]("vehicle.create", err)
	}
	if res := validateDuplicateVehicleDetails[dto.VehicleResponse](isDuplicate); res != nil {
		return *res
	}

	vehicle := &entity.Vehicle{
		ID:          uuid.New().String(),
		PlateNumber: in.PlateNumber,
		VIN:         in.VIN,
		Make:        in.Make,
		Model:       in.Model,
		Year:        in.Year,
		Color:       in.Color,
		Notes:       in.Notes,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.vehicles.Create(vehicle); err != nil {
		return writeError("vehicle.create", err, validateDuplicateVehicleDetails[dto.VehicleResponse](true))
	}
	return result.Ok(toVehicleResponse(vehicle))
}

// UpdateDetails actualiza los datos del vehículo excluyendo su propio ID del
// escaneo de colisiones.
func (uc *VehicleUseCase) UpdateDetails(id string, in dto.UpdateVehicleRequest) result.Result[dto.VehicleResponse] {
	vehicle, err := uc.vehicles.GetByID(id)
	if err != nil {
		return serverError[dto.VehicleResponse]("vehicle.update", err)
	}
	if res := validateVehicleExists[dto.VehicleResponse](vehicle, id); res != nil {
		return *res
	}

	isDuplicate, err := uc.vehicles.ExistsByPlateOrVIN(in.PlateNumber, in.VIN, id)
	if err != nil {
		return serverError[dto.VehicleResponse]("vehicle.update", err)
	}
	if res := validateDuplicateVehicleDetails[dto.VehicleResponse](isDuplicate); res != nil {
		return *res
	}

	now := time.Now().UTC()
	vehicle.PlateNumber = in.PlateNumber
	vehicle.VIN = in.VIN
	vehicle.Make = in.Make
	vehicle.Model = in.Model
	vehicle.Year = in.Year
	vehicle.Color = in.Color
	vehicle.Notes = in.Notes
	vehicle.UpdatedAt = &now

	if err := uc.vehicles.Update(vehicle); err != nil {
		return writeError("vehicle.update", err, validateDuplicateVehicleDetails[dto.VehicleResponse](true))
	}
	return result.Ok(toVehicleResponse(vehicle))
}
