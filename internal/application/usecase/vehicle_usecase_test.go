package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/result"
)

func TestVehicleCreate(t *testing.T) {
	f := newFixture()

	res := f.vehicleUC.Create(dto.CreateVehicleRequest{
		PlateNumber: "ABC-123",
		VIN:         "1HGCM82633A004352",
		Make:        "Chevrolet",
		Model:       "Spark",
		Year:        2019,
		Color:       "Rojo",
	})
	require.True(t, res.OK)
	assert.NotEmpty(t, res.Data.ID)
	assert.Equal(t, "ABC-123", res.Data.PlateNumber)
	assert.Nil(t, res.Data.UpdatedAt)
}

// Placa y VIN colisionan por OR: basta con que uno de los dos esté tomado.
func TestVehicleCreate_Duplicado(t *testing.T) {
	f := newFixture()
	seedVehicle(t, f, "XYZ-789", "9BWZZZ377VT004251")

	porPlaca := f.vehicleUC.Create(dto.CreateVehicleRequest{
		PlateNumber: "XYZ-789", VIN: "otro-vin", Make: "Mazda", Model: "3", Year: 2020,
	})
	require.False(t, porPlaca.OK)
	assert.Equal(t, result.StatusBadRequest, porPlaca.Status)
	assert.Equal(t, "Duplicate vehicle details", porPlaca.Title)

	porVIN := f.vehicleUC.Create(dto.CreateVehicleRequest{
		PlateNumber: "QRS-456", VIN: "9BWZZZ377VT004251", Make: "Mazda", Model: "3", Year: 2020,
	})
	require.False(t, porVIN.OK)
	assert.Equal(t, result.StatusBadRequest, porVIN.Status)

	count, err := f.vehicles.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// La actualización se excluye a sí misma del escaneo de colisiones.
func TestVehicleUpdate_ExcluyeSuPropioID(t *testing.T) {
	f := newFixture()
	vehicle := seedVehicle(t, f, "XYZ-789", "9BWZZZ377VT004251")

	res := f.vehicleUC.UpdateDetails(vehicle.ID, dto.UpdateVehicleRequest{
		PlateNumber: vehicle.PlateNumber,
		VIN:         vehicle.VIN,
		Make:        vehicle.Make,
		Model:       vehicle.Model,
		Year:        vehicle.Year,
		Color:       "Gris",
	})
	require.True(t, res.OK)
	assert.Equal(t, "Gris", res.Data.Color)
	require.NotNil(t, res.Data.UpdatedAt)
}

func TestVehicleUpdate_RobarPlacaAjena(t *testing.T) {
	f := newFixture()
	primero := seedVehicle(t, f, "XYZ-789", "9BWZZZ377VT004251")
	segundo := &dto.CreateVehicleRequest{
		PlateNumber: "QRS-456", VIN: "otro-vin", Make: "Renault", Model: "Duster", Year: 2022,
	}
	creado := f.vehicleUC.Create(*segundo)
	require.True(t, creado.OK)

	res := f.vehicleUC.UpdateDetails(creado.Data.ID, dto.UpdateVehicleRequest{
		PlateNumber: primero.PlateNumber,
		VIN:         segundo.VIN,
		Make:        segundo.Make,
		Model:       segundo.Model,
		Year:        segundo.Year,
	})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusBadRequest, res.Status)

	stored, err := f.vehicles.GetByID(creado.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, "QRS-456", stored.PlateNumber, "el registro no debe cambiar ante un comando fallido")
}

func TestVehicleUpdate_NoExiste(t *testing.T) {
	f := newFixture()

	res := f.vehicleUC.UpdateDetails("no-existe", dto.UpdateVehicleRequest{
		PlateNumber: "AAA-000", VIN: "v", Make: "m", Model: "m", Year: 2020,
	})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusNotFound, res.Status)
	assert.Equal(t, "Vehicle not found.", res.Title)
}

// El detalle incluye el historial de propiedad completo del vehículo.
func TestVehicleGetByID_ConHistorial(t *testing.T) {
	f := newFixture()
	vehicle := seedVehicle(t, f, "XYZ-789", "9BWZZZ377VT004251")
	anterior := seedIndividual(t, f, "ana@cliente.test", "310-111")
	actual := seedCompany(t, f, "flota@empresa.test", "310-222")
	historico := f.ownershipUC.Create(dto.CreateOwnershipRequest{
		VehicleID: vehicle.ID, CustomerID: anterior.ID, IsCurrentOwner: false,
	})
	require.True(t, historico.OK)
	seedCurrentOwnership(t, f, vehicle.ID, actual.ID)

	res := f.vehicleUC.GetByID(vehicle.ID)
	require.True(t, res.OK)
	require.Len(t, res.Data.Ownerships, 2)

	current := 0
	for _, rec := range res.Data.Ownerships {
		if rec.IsCurrentOwner {
			current++
			assert.Equal(t, actual.ID, rec.CustomerID)
		}
	}
	assert.Equal(t, 1, current)
}
