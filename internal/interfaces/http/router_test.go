package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveops/driveops-api/internal/application/usecase"
	"github.com/driveops/driveops-api/internal/infrastructure/memory"
	apphttp "github.com/driveops/driveops-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp levanta la aplicación completa sobre repositorios en memoria,
// con el mismo cableado de dependencias que cmd/api.
func buildTestApp() *fiber.App {
	customers := memory.NewCustomerRepository()
	vehicles := memory.NewVehicleRepository()
	ownerships := memory.NewVehicleOwnershipRepository()
	technicians := memory.NewTechnicianRepository()
	jobOrders := memory.NewJobOrderRepository()
	issues := memory.NewReportedIssueRepository()
	findings := memory.NewInspectionFindingRepository()
	tx := memory.NewTxRunner(ownerships)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC:   usecase.NewCustomerUseCase(customers, ownerships, vehicles),
		VehicleUC:    usecase.NewVehicleUseCase(vehicles, ownerships),
		OwnershipUC:  usecase.NewVehicleOwnershipUseCase(ownerships, vehicles, customers, tx),
		TechnicianUC: usecase.NewTechnicianUseCase(technicians),
		JobOrderUC:   usecase.NewJobOrderUseCase(jobOrders, customers, vehicles, technicians),
		IssueUC:      usecase.NewReportedIssueUseCase(issues, jobOrders),
		FindingUC:    usecase.NewInspectionFindingUseCase(findings, jobOrders),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

const bodyIndividual = `{
	"kind": "Individual",
	"email": "carlos@cliente.test",
	"phoneNumber": "300-555-0101",
	"individual": {"firstName": "Carlos", "lastName": "Mendoza"}
}`

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de códigos HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_CrearCliente(t *testing.T) {
	app := buildTestApp()

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/customers", bodyIndividual)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Individual", body["kind"])
	assert.NotEmpty(t, body["id"])

	// El subtipo elegido viaja en la respuesta; el otro no.
	require.NotNil(t, body["individual"])
	assert.Nil(t, body["company"])
}

func TestHTTP_DuplicadoDevuelve400ConErrorResponse(t *testing.T) {
	app := buildTestApp()
	doJSON(t, app, fiber.MethodPost, "/api/customers", bodyIndividual)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/customers", bodyIndividual)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Duplicate contact details.", body["title"])
	assert.NotEmpty(t, body["message"])
}

func TestHTTP_NoEncontradoDevuelve404(t *testing.T) {
	app := buildTestApp()

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/customers/no-existe", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Customer not found.", body["title"])
}

func TestHTTP_CuerpoInvalidoDevuelve400(t *testing.T) {
	app := buildTestApp()

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/customers", `{"kind": `)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body.", body["title"])
}

func TestHTTP_ConflictoDevuelve409(t *testing.T) {
	app := buildTestApp()

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/technicians",
		`{"fullName": "Luis Rojas", "phoneNumber": "301-555-0101"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/technicians",
		`{"fullName": "Luis Rojas", "phoneNumber": "301-555-0202"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Duplicate Technician record", body["title"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Querystring
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_PaginacionSeNormaliza(t *testing.T) {
	app := buildTestApp()
	doJSON(t, app, fiber.MethodPost, "/api/customers", bodyIndividual)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/customers?page=0&pageSize=999", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, 10, body["pageSize"])
	assert.EqualValues(t, 1, body["totalCount"])
}

func TestHTTP_FiltroKindInvalidoDevuelve400(t *testing.T) {
	app := buildTestApp()

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/customers?kind=Fleet", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid customer kind.", body["title"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas anidadas
// ──────────────────────────────────────────────────────────────────────────────

// Flujo completo por HTTP: alta de las referencias, creación de la orden y un
// hallazgo anidado bajo su número de orden.
func TestHTTP_FlujoOrdenConHallazgo(t *testing.T) {
	app := buildTestApp()

	_, customer := doJSON(t, app, fiber.MethodPost, "/api/customers", bodyIndividual)
	_, vehicle := doJSON(t, app, fiber.MethodPost, "/api/vehicles",
		`{"plateNumber": "ABC-123", "vin": "1HGCM82633A004352", "make": "Toyota", "model": "Hilux", "year": 2021}`)
	_, tech := doJSON(t, app, fiber.MethodPost, "/api/technicians",
		`{"fullName": "Luis Rojas", "phoneNumber": "301-555-0101"}`)

	resp, jobOrder := doJSON(t, app, fiber.MethodPost, "/api/joborders",
		`{"jobOrderNumber": "JO-2026-001",
		  "customerId": "`+customer["id"].(string)+`",
		  "vehicleId": "`+vehicle["id"].(string)+`",
		  "technicianId": "`+tech["id"].(string)+`"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Pending", jobOrder["status"])

	resp, finding := doJSON(t, app, fiber.MethodPost, "/api/joborders/JO-2026-001/findings",
		`{"description": "Disco de freno rayado", "recommendation": "Rectificar disco", "severity": "Moderate"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Moderate", finding["severity"])

	// Cerrada la orden, el hijo queda bloqueado con 409.
	resp, _ = doJSON(t, app, fiber.MethodPatch,
		"/api/joborders/"+jobOrder["id"].(string)+"/status", `{"status": "Completed"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodPatch,
		"/api/joborders/JO-2026-001/findings/"+finding["id"].(string)+"/status",
		`{"isResolved": true}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Job order is not modifiable", body["title"])
}

// El hijo de una orden no aparece bajo el número de otra.
func TestHTTP_HijoNoPerteneceALaOrden(t *testing.T) {
	app := buildTestApp()

	_, customer := doJSON(t, app, fiber.MethodPost, "/api/customers", bodyIndividual)
	_, vehicle := doJSON(t, app, fiber.MethodPost, "/api/vehicles",
		`{"plateNumber": "ABC-123", "vin": "1HGCM82633A004352", "make": "Toyota", "model": "Hilux", "year": 2021}`)
	_, tech := doJSON(t, app, fiber.MethodPost, "/api/technicians",
		`{"fullName": "Luis Rojas", "phoneNumber": "301-555-0101"}`)

	for _, number := range []string{"JO-1", "JO-2"} {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/joborders",
			`{"jobOrderNumber": "`+number+`",
			  "customerId": "`+customer["id"].(string)+`",
			  "vehicleId": "`+vehicle["id"].(string)+`",
			  "technicianId": "`+tech["id"].(string)+`"}`)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, issue := doJSON(t, app, fiber.MethodPost, "/api/joborders/JO-1/issues",
		`{"description": "Ruido al frenar"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/joborders/JO-2/issues/"+issue["id"].(string), "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Reported issue not found", body["title"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencia de propiedad
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_TransferenciaDePropiedad(t *testing.T) {
	app := buildTestApp()

	_, anterior := doJSON(t, app, fiber.MethodPost, "/api/customers", bodyIndividual)
	_, nuevo := doJSON(t, app, fiber.MethodPost, "/api/customers", `{
		"kind": "Company",
		"email": "flota@empresa.test",
		"phoneNumber": "310-555-0202",
		"company": {"companyName": "Transportes La Sabana"}
	}`)
	_, vehicle := doJSON(t, app, fiber.MethodPost, "/api/vehicles",
		`{"plateNumber": "ABC-123", "vin": "1HGCM82633A004352", "make": "Toyota", "model": "Hilux", "year": 2021}`)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/vehicle-ownerships",
		`{"vehicleId": "`+vehicle["id"].(string)+`", "customerId": "`+anterior["id"].(string)+`", "isCurrentOwner": true}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, record := doJSON(t, app, fiber.MethodPost, "/api/vehicle-ownerships/transfer",
		`{"vehicleId": "`+vehicle["id"].(string)+`", "newOwnerId": "`+nuevo["id"].(string)+`"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, nuevo["id"], record["customerId"])
	assert.Equal(t, true, record["isCurrentOwner"])
}

func TestHTTP_TransferenciaSinDuenoVigente(t *testing.T) {
	app := buildTestApp()

	_, nuevo := doJSON(t, app, fiber.MethodPost, "/api/customers", bodyIndividual)
	_, vehicle := doJSON(t, app, fiber.MethodPost, "/api/vehicles",
		`{"plateNumber": "ABC-123", "vin": "1HGCM82633A004352", "make": "Toyota", "model": "Hilux", "year": 2021}`)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/vehicle-ownerships/transfer",
		`{"vehicleId": "`+vehicle["id"].(string)+`", "newOwnerId": "`+nuevo["id"].(string)+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No ownership to transfer.", body["title"])
}
