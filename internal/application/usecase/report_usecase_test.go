package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/InventoryPro-api/internal/application/usecase"
	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/internal/infrastructure/memory"
)

func seededReportUC(t *testing.T) *usecase.ReportUseCase {
	t.Helper()
	items := memory.NewItemRepository()
	warehouses := memory.NewWarehouseRepository()
	transfers := memory.NewTransferRepository()
	require.NoError(t, memory.Seed(items, warehouses, transfers))
	return usecase.NewReportUseCase(items, warehouses)
}

func TestReportGenerate_TiposConocidos(t *testing.T) {
	uc := seededReportUC(t)

	for _, typ := range []string{usecase.ReportInventory, usecase.ReportLowStock, usecase.ReportMovement, usecase.ReportValuation} {
		out, err := uc.Generate(typ)
		require.NoError(t, err, "reporte %q", typ)
		assert.Equal(t, typ, out.Type)
		assert.NotEmpty(t, out.Title)
		assert.NotEmpty(t, out.Columns)
		assert.NotEmpty(t, out.Rows)
	}
}

func TestReportGenerate_TipoDesconocido(t *testing.T) {
	uc := seededReportUC(t)

	_, err := uc.Generate("auditoria")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El esquema del reporte alimenta la exportación CSV con las mismas columnas
// que la vista.
func TestReportSchema_CoincideConElReporte(t *testing.T) {
	uc := seededReportUC(t)

	schema, rows, err := uc.Schema(usecase.ReportLowStock)
	require.NoError(t, err)
	assert.Equal(t, []string{"item", "category", "currentStock", "warehouse"}, schema.Keys())
	assert.Len(t, rows, 3)
}

func TestDashboard_AgregadosDeLaColeccion(t *testing.T) {
	uc := seededReportUC(t)

	out, err := uc.Dashboard()
	require.NoError(t, err)

	// La semilla suma 45+8+0+125+67 unidades y 2 ítems fuera de In Stock
	assert.Equal(t, 245, out.TotalStockItems)
	assert.Equal(t, 2, out.LowStockItems)
	assert.Equal(t, 5, out.TotalWarehouses)
	assert.Equal(t, "$124,890", out.MonthlyRevenue)
	assert.Len(t, out.RecentActivity, 5)
}
