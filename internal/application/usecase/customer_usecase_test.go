package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/result"
)

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerCreate_Individual(t *testing.T) {
	f := newFixture()
	res := f.customerUC.Create(dto.CreateCustomerRequest{
		Kind:        "Individual",
		Email:       "ana@correo.test",
		PhoneNumber: "3001112233",
		Individual:  &dto.CustomerIndividualPayload{FirstName: "Ana", LastName: "Ruiz"},
	})
	require.True(t, res.OK)
	assert.Equal(t, "Individual", res.Data.Kind)
	assert.Equal(t, "Active", res.Data.Status, "el cliente nace activo")
	require.NotNil(t, res.Data.Individual)
	assert.Equal(t, "Ana", res.Data.Individual.FirstName)
	assert.Nil(t, res.Data.Company, "solo el subtipo elegido viaja en la respuesta")
	assert.NotEmpty(t, res.Data.ID)
}

func TestCustomerCreate_Company(t *testing.T) {
	f := newFixture()
	res := f.customerUC.Create(dto.CreateCustomerRequest{
		Kind:        "Company",
		Email:       "flota@sabana.test",
		PhoneNumber: "6015550100",
		Company:     &dto.CustomerCompanyPayload{CompanyName: "Transportes La Sabana", ContactPerson: "Laura Gil", Position: "Jefa de flota"},
	})
	require.True(t, res.OK)
	assert.Equal(t, "Company", res.Data.Kind)
	require.NotNil(t, res.Data.Company)
	assert.Equal(t, "Transportes La Sabana", res.Data.Company.CompanyName)
	assert.Nil(t, res.Data.Individual)
}

// Kind declarado Individual pero payload de empresa → 400, sin escritura.
func TestCustomerCreate_SubtipoNoCoincide(t *testing.T) {
	f := newFixture()
	res := f.customerUC.Create(dto.CreateCustomerRequest{
		Kind:        "Individual",
		Email:       "x@correo.test",
		PhoneNumber: "3000000000",
		Company:     &dto.CustomerCompanyPayload{CompanyName: "Fantasma SAS"},
	})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusBadRequest, res.Status)

	count, err := f.customers.Count(nil)
	require.NoError(t, err)
	assert.Zero(t, count, "un comando rechazado no debe escribir")
}

func TestCustomerCreate_KindInvalido(t *testing.T) {
	f := newFixture()
	res := f.customerUC.Create(dto.CreateCustomerRequest{Kind: "Fleet", Email: "a@b.test", PhoneNumber: "1"})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusBadRequest, res.Status)
}

// La unicidad de contacto es OR: basta con que colisione el email o el teléfono.
func TestCustomerCreate_ContactoDuplicado(t *testing.T) {
	f := newFixture()
	seedIndividual(t, f, "ana@correo.test", "3001112233")

	porEmail := f.customerUC.Create(dto.CreateCustomerRequest{
		Kind:        "Individual",
		Email:       "ana@correo.test",
		PhoneNumber: "3999999999",
		Individual:  &dto.CustomerIndividualPayload{FirstName: "Otra", LastName: "Ana"},
	})
	require.False(t, porEmail.OK)
	assert.Equal(t, result.StatusBadRequest, porEmail.Status)
	assert.Equal(t, "Duplicate contact details.", porEmail.Title)

	porTelefono := f.customerUC.Create(dto.CreateCustomerRequest{
		Kind:        "Individual",
		Email:       "otra@correo.test",
		PhoneNumber: "3001112233",
		Individual:  &dto.CustomerIndividualPayload{FirstName: "Otra", LastName: "Ana"},
	})
	require.False(t, porTelefono.OK)
	assert.Equal(t, result.StatusBadRequest, porTelefono.Status)

	count, err := f.customers.Count(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "solo el cliente sembrado debe existir")
}

// El chequeo de duplicado va antes que la validación del subtipo.
func TestCustomerCreate_DuplicadoGanaAlSubtipo(t *testing.T) {
	f := newFixture()
	seedIndividual(t, f, "ana@correo.test", "3001112233")

	res := f.customerUC.Create(dto.CreateCustomerRequest{
		Kind:        "Individual",
		Email:       "ana@correo.test",
		PhoneNumber: "3001112233",
		// sin payload de subtipo: también sería 400, pero el título debe ser el de duplicado
	})
	require.False(t, res.OK)
	assert.Equal(t, "Duplicate contact details.", res.Title)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateDetails / UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

// Cambiar de Individual a Company reemplaza el payload del subtipo.
func TestCustomerUpdate_CambioDeKind(t *testing.T) {
	f := newFixture()
	c := seedIndividual(t, f, "ana@correo.test", "3001112233")

	res := f.customerUC.UpdateDetails(c.ID, dto.UpdateCustomerRequest{
		Kind:        "Company",
		Email:       "ana@correo.test",
		PhoneNumber: "3001112233",
		Company:     &dto.CustomerCompanyPayload{CompanyName: "Ana Ruiz SAS"},
	})
	require.True(t, res.OK)
	assert.Equal(t, "Company", res.Data.Kind)
	require.NotNil(t, res.Data.Company)
	assert.Nil(t, res.Data.Individual, "el payload Individual anterior se descarta")
	assert.NotNil(t, res.Data.UpdatedAt)
}

// Conservar los propios datos de contacto en un update no es un duplicado.
func TestCustomerUpdate_ExcluyeSelfEnUnicidad(t *testing.T) {
	f := newFixture()
	c := seedIndividual(t, f, "ana@correo.test", "3001112233")

	res := f.customerUC.UpdateDetails(c.ID, dto.UpdateCustomerRequest{
		Kind:        "Individual",
		Email:       "ana@correo.test",
		PhoneNumber: "3001112233",
		Address:     "Calle 45 #12-30",
		Individual:  &dto.CustomerIndividualPayload{FirstName: "Ana", LastName: "Ruiz"},
	})
	require.True(t, res.OK)
	assert.Equal(t, "Calle 45 #12-30", res.Data.Address)
}

func TestCustomerUpdate_ContactoDeOtroCliente(t *testing.T) {
	f := newFixture()
	seedIndividual(t, f, "ana@correo.test", "3001112233")
	otro := seedIndividual(t, f, "luis@correo.test", "3019998877")

	res := f.customerUC.UpdateDetails(otro.ID, dto.UpdateCustomerRequest{
		Kind:        "Individual",
		Email:       "ana@correo.test", // email del primer cliente
		PhoneNumber: "3019998877",
		Individual:  &dto.CustomerIndividualPayload{FirstName: "Luis", LastName: "Parra"},
	})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusBadRequest, res.Status)

	// El cliente no debe haber cambiado.
	stored, err := f.customers.GetByID(otro.ID)
	require.NoError(t, err)
	assert.Equal(t, "luis@correo.test", stored.Email)
}

func TestCustomerUpdate_NoExiste(t *testing.T) {
	f := newFixture()
	res := f.customerUC.UpdateDetails("no-such-id", dto.UpdateCustomerRequest{
		Kind: "Individual", Email: "a@b.test", PhoneNumber: "1",
		Individual: &dto.CustomerIndividualPayload{FirstName: "A", LastName: "B"},
	})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusNotFound, res.Status)
	assert.Equal(t, "Customer not found.", res.Title)
}

func TestCustomerUpdateStatus(t *testing.T) {
	f := newFixture()
	c := seedIndividual(t, f, "ana@correo.test", "3001112233")

	res := f.customerUC.UpdateStatus(c.ID, dto.UpdateCustomerStatusRequest{Status: "Inactive"})
	require.True(t, res.OK)
	assert.Equal(t, "Inactive", res.Data.Status)

	bad := f.customerUC.UpdateStatus(c.ID, dto.UpdateCustomerStatusRequest{Status: "Archived"})
	require.False(t, bad.OK)
	assert.Equal(t, result.StatusBadRequest, bad.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID con vehículos del cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerGetByID_VehiculosDelCliente(t *testing.T) {
	f := newFixture()
	c := seedIndividual(t, f, "ana@correo.test", "3001112233")
	v1 := seedVehicle(t, f, "ABC123", "VIN0001")
	v2 := seedVehicle(t, f, "XYZ789", "VIN0002")

	// v1 vigente; v2 fue del cliente pero ya no.
	seedCurrentOwnership(t, f, v1.ID, c.ID)
	old := seedCurrentOwnership(t, f, v2.ID, c.ID)
	old.IsCurrentOwner = false
	require.NoError(t, f.ownerships.Update(old))

	todos := f.customerUC.GetByID(c.ID, false)
	require.True(t, todos.OK)
	assert.Len(t, todos.Data.OwnedVehicles, 2, "sin onlyCurrent se listan todos los registros")

	vigentes := f.customerUC.GetByID(c.ID, true)
	require.True(t, vigentes.OK)
	require.Len(t, vigentes.Data.OwnedVehicles, 1)
	assert.Equal(t, v1.ID, vigentes.Data.OwnedVehicles[0].VehicleID)
	assert.True(t, vigentes.Data.OwnedVehicles[0].IsCurrentOwner)
}

func TestCustomerList_FiltroPorKind(t *testing.T) {
	f := newFixture()
	seedIndividual(t, f, "ana@correo.test", "3001112233")
	seedCompany(t, f, "flota@sabana.test", "6015550100")

	kind := entity.KindCompany
	res := f.customerUC.List(&kind, 1, 10)
	require.True(t, res.OK)
	assert.Equal(t, 1, res.Data.TotalCount)
	require.Len(t, res.Data.Items, 1)
	assert.Equal(t, "Company", res.Data.Items[0].Kind)

	todos := f.customerUC.List(nil, 1, 10)
	require.True(t, todos.OK)
	assert.Equal(t, 2, todos.Data.TotalCount)
}
