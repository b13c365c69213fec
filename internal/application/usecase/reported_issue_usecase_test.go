package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/result"
)

func TestIssueCreate(t *testing.T) {
	f := newFixture()
	jo := seedJobOrder(t, f, "JO-2026-001", entity.JobOrderInProgress)

	res := f.issueUC.Create("JO-2026-001", dto.CreateReportedIssueRequest{
		Description: "Ruido en el tren delantero al frenar",
	})
	require.True(t, res.OK)
	assert.Equal(t, jo.ID, res.Data.JobOrderID)
	assert.Equal(t, "Ruido en el tren delantero al frenar", res.Data.Description)
}

func TestIssueCreate_DescripcionVacia(t *testing.T) {
	f := newFixture()
	seedJobOrder(t, f, "JO-2026-001", entity.JobOrderPending)

	res := f.issueUC.Create("JO-2026-001", dto.CreateReportedIssueRequest{})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusBadRequest, res.Status)
}

func TestIssueCreate_OrdenNoExiste(t *testing.T) {
	f := newFixture()
	res := f.issueUC.Create("JO-NOPE", dto.CreateReportedIssueRequest{Description: "x"})
	require.False(t, res.OK)
	assert.Equal(t, result.StatusNotFound, res.Status)
	assert.Equal(t, "Job order not found", res.Title)
}

// Con la orden Completed o Cancelled toda mutación de issues responde 409 y el
// almacén queda exactamente como estaba.
func TestIssue_OrdenCerradaBloqueaMutaciones(t *testing.T) {
	for _, status := range []entity.JobOrderStatus{entity.JobOrderCompleted, entity.JobOrderCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture()
			jo := seedJobOrder(t, f, "JO-2026-001", status)
			issue := seedIssue(t, f, jo.ID, "Fuga de aceite")

			create := f.issueUC.Create("JO-2026-001", dto.CreateReportedIssueRequest{Description: "otro"})
			require.False(t, create.OK)
			assert.Equal(t, result.StatusConflict, create.Status)
			assert.Equal(t, "Job order is not modifiable", create.Title)
			assert.Contains(t, create.Message, string(status))

			update := f.issueUC.Update("JO-2026-001", issue.ID, dto.UpdateReportedIssueRequest{Description: "editado"})
			require.False(t, update.OK)
			assert.Equal(t, result.StatusConflict, update.Status)

			del := f.issueUC.Delete("JO-2026-001", issue.ID)
			require.False(t, del.OK)
			assert.Equal(t, result.StatusConflict, del.Status)

			// El issue sembrado sigue intacto y es el único.
			count, err := f.issues.CountByJobOrder(jo.ID)
			require.NoError(t, err)
			assert.Equal(t, 1, count)
			stored, err := f.issues.GetByJobOrder(issue.ID, jo.ID)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, "Fuga de aceite", stored.Description)
		})
	}
}

// Las lecturas no están bloqueadas por el estado del padre.
func TestIssue_LecturaConOrdenCerrada(t *testing.T) {
	f := newFixture()
	jo := seedJobOrder(t, f, "JO-2026-001", entity.JobOrderCompleted)
	issue := seedIssue(t, f, jo.ID, "Fuga de aceite")

	get := f.issueUC.GetByID("JO-2026-001", issue.ID)
	require.True(t, get.OK)

	list := f.issueUC.List("JO-2026-001", 1, 10)
	require.True(t, list.OK)
	assert.Equal(t, 1, list.Data.TotalCount)
}

func TestIssueUpdate(t *testing.T) {
	f := newFixture()
	jo := seedJobOrder(t, f, "JO-2026-001", entity.JobOrderInProgress)
	issue := seedIssue(t, f, jo.ID, "Fuga de aceite")

	res := f.issueUC.Update("JO-2026-001", issue.ID, dto.UpdateReportedIssueRequest{
		Description: "Fuga de aceite en el cárter",
	})
	require.True(t, res.OK)
	assert.Equal(t, "Fuga de aceite en el cárter", res.Data.Description)
	assert.NotNil(t, res.Data.UpdatedAt)
}

// El issue debe pertenecer a la orden nombrada en la ruta.
func TestIssue_NoPerteneceALaOrden(t *testing.T) {
	f := newFixture()
	jo1 := seedJobOrder(t, f, "JO-1", entity.JobOrderPending)
	seedJobOrder(t, f, "JO-2", entity.JobOrderPending)
	issue := seedIssue(t, f, jo1.ID, "Fuga de aceite")

	res := f.issueUC.GetByID("JO-2", issue.ID)
	require.False(t, res.OK)
	assert.Equal(t, result.StatusNotFound, res.Status)
	assert.Equal(t, "Reported issue not found", res.Title)
}

func TestIssueDelete(t *testing.T) {
	f := newFixture()
	jo := seedJobOrder(t, f, "JO-2026-001", entity.JobOrderPending)
	issue := seedIssue(t, f, jo.ID, "Fuga de aceite")

	res := f.issueUC.Delete("JO-2026-001", issue.ID)
	require.True(t, res.OK)
	assert.True(t, res.Data)

	count, err := f.issues.CountByJobOrder(jo.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
