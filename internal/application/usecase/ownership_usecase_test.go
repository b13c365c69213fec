package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/result"
)

// countCurrentOwners cuenta los registros vigentes del vehículo directamente
// en el repo, para verificar el invariante del ledger.
func countCurrentOwners(t *testing.T, f *fixture, vehicleID string) int {
	t.Helper()
	all, err := f.ownerships.ListByVehicle(vehicleID)
	require.NoError(t, err)
	n := 0
	for _, o := range all {
		if o.IsCurrentOwner {
			n++
		}
	}
	return n
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestOwnershipCreate_AltaInicial(t *testing.T) {
	f := newFixture()
	c := seedIndividual(t, f, "ana@correo.test", "3001112233")
	v := seedVehicle(t, f, "ABC123", "VIN0001")

	res := f.ownershipUC.Create(dto.CreateOwnershipRequest{
		VehicleID: v.ID, CustomerID: c.ID, IsCurrentOwner: true,
	})
	require.True(t, res.OK)
	assert.True(t, res.Data.IsCurrentOwner)
	assert.NotNil(t, res.Data.OwnershipStartDate)
	assert.Equal(t, 1, countCurrentOwners(t, f, v.ID))
}

func TestOwnershipCreate_ClienteNoExiste(t *testing.T) {
	f := newFixture()
	v := seedVehicle(t, f, "ABC123", "VIN0001")

	res := f.ownershipUC.Create(dto.CreateOwnershipRequest{VehicleID: v.ID, CustomerID: "nope", IsCurrentOwner: true})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusNotFound, res.Status)
	assert.Equal(t, "Customer not found.", res.Title)
}

func TestOwnershipCreate_VehiculoNoExiste(t *testing.T) {
	f := newFixture()
	c := seedIndividual(t, f, "ana@correo.test", "3001112233")

	res := f.ownershipUC.Create(dto.CreateOwnershipRequest{VehicleID: "nope", CustomerID: c.ID, IsCurrentOwner: true})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusNotFound, res.Status)
	assert.Equal(t, "Vehicle not found.", res.Title)
}

// Pedir IsCurrentOwner cuando ya hay dueño vigente es conflicto; el ledger no cambia.
func TestOwnershipCreate_DuenioVigenteYaExiste(t *testing.T) {
	f := newFixture()
	c := seedIndividual(t, f, "ana@correo.test", "3001112233")
	otro := seedIndividual(t, f, "luis@correo.test", "3019998877")
	v := seedVehicle(t, f, "ABC123", "VIN0001")
	seedCurrentOwnership(t, f, v.ID, c.ID)

	res := f.ownershipUC.Create(dto.CreateOwnershipRequest{VehicleID: v.ID, CustomerID: otro.ID, IsCurrentOwner: true})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusBadRequest, res.Status)
	assert.Equal(t, "Current ownership conflict.", res.Title)

	all, err := f.ownerships.ListByVehicle(v.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1, "el comando rechazado no debe agregar registros")
}

// Un registro histórico (IsCurrentOwner=false) se puede agregar aunque haya dueño vigente.
func TestOwnershipCreate_RegistroHistoricoNoChocaConVigente(t *testing.T) {
	f := newFixture()
	c := seedIndividual(t, f, "ana@correo.test", "3001112233")
	previo := seedIndividual(t, f, "luis@correo.test", "3019998877")
	v := seedVehicle(t, f, "ABC123", "VIN0001")
	seedCurrentOwnership(t, f, v.ID, c.ID)

	res := f.ownershipUC.Create(dto.CreateOwnershipRequest{VehicleID: v.ID, CustomerID: previo.ID, IsCurrentOwner: false})
	require.True(t, res.OK)
	assert.False(t, res.Data.IsCurrentOwner)
	assert.Equal(t, 1, countCurrentOwners(t, f, v.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transfer
// ──────────────────────────────────────────────────────────────────────────────

func TestOwnershipTransfer_CambiaDeDuenio(t *testing.T) {
	f := newFixture()
	anterior := seedIndividual(t, f, "ana@correo.test", "3001112233")
	nuevo := seedIndividual(t, f, "luis@correo.test", "3019998877")
	v := seedVehicle(t, f, "ABC123", "VIN0001")
	viejo := seedCurrentOwnership(t, f, v.ID, anterior.ID)

	res := f.ownershipUC.Transfer(context.Background(), dto.TransferOwnershipRequest{
		VehicleID: v.ID, NewOwnerID: nuevo.ID, Notes: "venta entre particulares",
	})
	require.True(t, res.OK)
	assert.Equal(t, nuevo.ID, res.Data.CustomerID)
	assert.True(t, res.Data.IsCurrentOwner)

	// Invariante: exactamente un dueño vigente después de transferir.
	assert.Equal(t, 1, countCurrentOwners(t, f, v.ID))

	// El registro anterior queda como histórico, no se borra.
	cerrado, err := f.ownerships.GetByID(viejo.ID)
	require.NoError(t, err)
	require.NotNil(t, cerrado)
	assert.False(t, cerrado.IsCurrentOwner)

	all, err := f.ownerships.ListByVehicle(v.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2, "la transferencia agrega un registro y conserva el histórico")
}

func TestOwnershipTransfer_SinDuenioVigente(t *testing.T) {
	f := newFixture()
	nuevo := seedIndividual(t, f, "luis@correo.test", "3019998877")
	v := seedVehicle(t, f, "ABC123", "VIN0001")

	res := f.ownershipUC.Transfer(context.Background(), dto.TransferOwnershipRequest{
		VehicleID: v.ID, NewOwnerID: nuevo.ID,
	})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusBadRequest, res.Status)
	assert.Equal(t, "No ownership to transfer.", res.Title)

	all, err := f.ownerships.ListByVehicle(v.ID)
	require.NoError(t, err)
	assert.Empty(t, all, "la transferencia rechazada no debe escribir")
}

func TestOwnershipTransfer_NuevoDuenioNoExiste(t *testing.T) {
	f := newFixture()
	anterior := seedIndividual(t, f, "ana@correo.test", "3001112233")
	v := seedVehicle(t, f, "ABC123", "VIN0001")
	seedCurrentOwnership(t, f, v.ID, anterior.ID)

	res := f.ownershipUC.Transfer(context.Background(), dto.TransferOwnershipRequest{
		VehicleID: v.ID, NewOwnerID: "nope",
	})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusNotFound, res.Status)

	// El dueño vigente sigue siendo el anterior.
	current, err := f.ownerships.GetCurrentByVehicle(v.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, anterior.ID, current.CustomerID)
}
