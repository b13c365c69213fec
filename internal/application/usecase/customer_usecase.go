package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
	"github.com/driveops/driveops-api/internal/domain/result"
)

// CustomerUseCase reglas de negocio de clientes: unicidad de contacto
// (email O teléfono) y consistencia del subtipo polimórfico.
type CustomerUseCase struct {
	customers  repository.CustomerRepository
	ownerships repository.VehicleOwnershipRepository
	vehicles   repository.VehicleRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	customers repository.CustomerRepository,
	ownerships repository.VehicleOwnershipRepository,
	vehicles repository.VehicleRepository,
) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, ownerships: ownerships, vehicles: vehicles}
}

// buildCustomerSubtype valida que el payload de subtipo esté presente y
// coincida con el kind declarado, y materializa la unión etiquetada. El
// payload del subtipo no elegido se descarta.
func buildCustomerSubtype(
	kind entity.CustomerKind,
	individual *dto.CustomerIndividualPayload,
	company *dto.CustomerCompanyPayload,
) (entity.CustomerSubtype, *result.Result[dto.CustomerResponse]) {
	switch kind {
	case entity.KindIndividual:
		if individual == nil || individual.FirstName == "" || individual.LastName == "" {
			return nil, fail[dto.CustomerResponse](result.StatusBadRequest,
				"Missing required customer subtype details.",
				"Individual customer details are required.")
		}
		return entity.IndividualDetails{
			FirstName: individual.FirstName,
			LastName:  individual.LastName,
		}, nil
	case entity.KindCompany:
		if company == nil || company.CompanyName == "" {
			return nil, fail[dto.CustomerResponse](result.StatusBadRequest,
				"Missing required customer subtype details.",
				"Company customer details are required.")
		}
		return entity.CompanyDetails{
			CompanyName:   company.CompanyName,
			ContactPerson: company.ContactPerson,
			Position:      company.Position,
		}, nil
	}
	return nil, fail[dto.CustomerResponse](result.StatusBadRequest,
		"Invalid customer kind.",
		"Customer kind must be Individual or Company.")
}

// List lista clientes con filtro opcional por kind. page y pageSize llegan ya
// acotados por la capa de entrega.
func (uc *CustomerUseCase) List(kind *entity.CustomerKind, page, pageSize int) result.Result[dto.PaginatedResponse[dto.CustomerResponse]] {
	total, err := uc.customers.Count(kind)
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.CustomerResponse]]("customer.list", err)
	}
	list, err := uc.customers.List(kind, pageSize, (page-1)*pageSize)
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.CustomerResponse]]("customer.list", err)
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCustomerResponse(c))
	}
	return result.Ok(dto.NewPaginatedResponse(page, pageSize, total, items))
}

// GetByID devuelve el detalle del cliente con sus vehículos (todos o solo los
// de propiedad vigente según onlyCurrent).
func (uc *CustomerUseCase) GetByID(id string, onlyCurrent bool) result.Result[dto.CustomerResponse] {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return serverError[dto.CustomerResponse]("customer.get", err)
	}
	if res := validateCustomerExists[dto.CustomerResponse](customer, id); res != nil {
		return *res
	}

	out := toCustomerResponse(customer)

	records, err := uc.ownerships.ListByCustomer(id, onlyCurrent)
	if err != nil {
		return serverError[dto.CustomerResponse]("customer.get", err)
	}
	for _, rec := range records {
		vehicle, err := uc.vehicles.GetByID(rec.VehicleID)
		if err != nil {
			return serverError[dto.CustomerResponse]("customer.get", err)
		}
		if vehicle == nil {
			continue
		}
		out.OwnedVehicles = append(out.OwnedVehicles, dto.OwnedVehicleSummary{
			VehicleID:      vehicle.ID,
			PlateNumber:    vehicle.PlateNumber,
			Make:           vehicle.Make,
			Model:          vehicle.Model,
			Year:           vehicle.Year,
			IsCurrentOwner: rec.IsCurrentOwner,
		})
	}
	return result.Ok(out)
}

// Create da de alta un cliente. Orden de chequeos: contacto duplicado → subtipo.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) result.Result[dto.CustomerResponse] {
	kind, ok := entity.ParseCustomerKind(in.Kind)
	if !ok {
		return result.Fail[dto.CustomerResponse](result.StatusBadRequest,
			"Invalid customer kind.",
			"Customer kind must be Individual or Company.")
	}

	isDuplicate, err := uc.customers.ExistsByContact(in.Email, in.PhoneNumber, "")
	if err != nil {
		return serverError[dto.CustomerResponse]("customer.create", err)
	}
	if res := validateDuplicateContacts[dto.CustomerResponse](isDuplicate); res != nil {
		return *res
	}

	subtype, res := buildCustomerSubtype(kind, in.Individual, in.Company)
	if res != nil {
		return *res
	}

	customer := &entity.Customer{
		ID:          uuid.New().String(),
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		Notes:       in.Notes,
		Status:      entity.CustomerActive,
		Subtype:     subtype,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.customers.Create(customer); err != nil {
		return writeError("customer.create", err, validateDuplicateContacts[dto.CustomerResponse](true))
	}
	return result.Ok(toCustomerResponse(customer))
}

// UpdateDetails actualiza los campos compartidos y el subtipo. Si el kind
// cambia, el payload del subtipo anterior se reemplaza por el nuevo.
func (uc *CustomerUseCase) UpdateDetails(id string, in dto.UpdateCustomerRequest) result.Result[dto.CustomerResponse] {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return serverError[dto.CustomerResponse]("customer.update", err)
	}
	if res := validateCustomerExists[dto.CustomerResponse](customer, id); res != nil {
		return *res
	}

	isDuplicate, err := uc.customers.ExistsByContact(in.Email, in.PhoneNumber, id)
	if err != nil {
		return serverError[dto.CustomerResponse]("customer.update", err)
	}
	if res := validateDuplicateContacts[dto.CustomerResponse](isDuplicate); res != nil {
		return *res
	}

	kind, ok := entity.ParseCustomerKind(in.Kind)
	if !ok {
		return result.Fail[dto.CustomerResponse](result.StatusBadRequest,
			"Invalid customer kind.",
			"Customer kind must be Individual or Company.")
	}
	subtype, res := buildCustomerSubtype(kind, in.Individual, in.Company)
	if res != nil {
		return *res
	}

	now := time.Now().UTC()
	customer.Email = in.Email
	customer.PhoneNumber = in.PhoneNumber
	customer.Address = in.Address
	customer.Notes = in.Notes
	customer.Subtype = subtype
	customer.UpdatedAt = &now

	if err := uc.customers.Update(customer); err != nil {
		return writeError("customer.update", err, validateDuplicateContacts[dto.CustomerResponse](true))
	}
	return result.Ok(toCustomerResponse(customer))
}

// UpdateStatus cambia el estado Active/Inactive del cliente.
func (uc *CustomerUseCase) UpdateStatus(id string, in dto.UpdateCustomerStatusRequest) result.Result[dto.CustomerResponse] {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return serverError[dto.CustomerResponse]("customer.status", err)
	}
	if res := validateCustomerExists[dto.CustomerResponse](customer, id); res != nil {
		return *res
	}

	status, ok := entity.ParseCustomerStatus(in.Status)
	if !ok {
		return result.Fail[dto.CustomerResponse](result.StatusBadRequest,
			"Invalid customer status.",
			"Customer status must be Active or Inactive.")
	}

	now := time.Now().UTC()
	customer.Status = status
	customer.UpdatedAt = &now

	if err := uc.customers.Update(customer); err != nil {
		return serverError[dto.CustomerResponse]("customer.status", err)
	}
	return result.Ok(toCustomerResponse(customer))
}
