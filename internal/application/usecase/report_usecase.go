package usecase

import (
	"fmt"

	"github.com/jhoicas/InventoryPro-api/internal/application/dto"
	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/internal/domain/entity"
	"github.com/jhoicas/InventoryPro-api/internal/domain/repository"
	"github.com/jhoicas/InventoryPro-api/pkg/tabular"
)

// Tipos de reporte disponibles.
const (
	ReportInventory = "inventory"
	ReportLowStock  = "lowstock"
	ReportMovement  = "movement"
	ReportValuation = "valuation"
)

// ReportUseCase genera las vistas de reportes. Los agregados son datos de
// muestra fijos (límite de alcance declarado: no hay cómputo de reportes más
// allá de los agregados enlatados); las métricas del panel sí se derivan de
// las colecciones vivas.
type ReportUseCase struct {
	items      repository.ItemRepository
	warehouses repository.WarehouseRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(items repository.ItemRepository, warehouses repository.WarehouseRepository) *ReportUseCase {
	return &ReportUseCase{items: items, warehouses: warehouses}
}

// Generate arma el reporte pedido con su esquema de columnas y filas.
func (uc *ReportUseCase) Generate(reportType string) (*dto.ReportResponse, error) {
	spec, ok := reportSpecs[reportType]
	if !ok {
		return nil, fmt.Errorf("%w: tipo de reporte desconocido %q", domain.ErrNotFound, reportType)
	}
	columns := make([]dto.ReportColumn, len(spec.schema))
	for i, c := range spec.schema {
		columns[i] = dto.ReportColumn{Key: c.Key, Label: c.Label, Sortable: c.Sortable}
	}
	return &dto.ReportResponse{
		Type:    reportType,
		Title:   spec.title,
		Columns: columns,
		Rows:    spec.rows,
	}, nil
}

// Schema devuelve el esquema de columnas del reporte, para exportarlo por CSV.
func (uc *ReportUseCase) Schema(reportType string) (tabular.Schema, []tabular.Row, error) {
	spec, ok := reportSpecs[reportType]
	if !ok {
		return nil, nil, fmt.Errorf("%w: tipo de reporte desconocido %q", domain.ErrNotFound, reportType)
	}
	rows := make([]tabular.Row, len(spec.rows))
	for i, r := range spec.rows {
		rows[i] = tabular.Row(r)
	}
	return spec.schema, rows, nil
}

// Dashboard métricas del panel: totales derivados de las colecciones en
// memoria más la actividad reciente enlatada.
func (uc *ReportUseCase) Dashboard() (*dto.DashboardResponse, error) {
	items, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	warehouses, err := uc.warehouses.List()
	if err != nil {
		return nil, err
	}

	totalStock := 0
	lowStock := 0
	for _, it := range items {
		totalStock += it.StockLevel
		if it.Status != entity.StockStatusIn {
			lowStock++
		}
	}
	return &dto.DashboardResponse{
		TotalStockItems: totalStock,
		LowStockItems:   lowStock,
		TotalWarehouses: len(warehouses),
		MonthlyRevenue:  "$124,890",
		RecentActivity:  recentActivity,
	}, nil
}

type reportSpec struct {
	title  string
	schema tabular.Schema
	rows   []map[string]any
}

var inventorySummaryRows = []map[string]any{
	{"category": "Electronics", "totalItems": 425, "inStock": 390, "lowStock": 25, "outOfStock": 10, "value": 150000},
	{"category": "Clothing", "totalItems": 312, "inStock": 280, "lowStock": 20, "outOfStock": 12, "value": 45000},
	{"category": "Books", "totalItems": 198, "inStock": 190, "lowStock": 8, "outOfStock": 0, "value": 12000},
}

var reportSpecs = map[string]reportSpec{
	ReportInventory: {
		title: "Inventory Summary",
		schema: tabular.Schema{
			{Key: "category", Label: "Category", Sortable: true},
			{Key: "totalItems", Label: "Total Items", Sortable: true},
			{Key: "inStock", Label: "In Stock", Sortable: true},
		},
		rows: inventorySummaryRows,
	},
	ReportLowStock: {
		title: "Low Stock Report",
		schema: tabular.Schema{
			{Key: "item", Label: "Item", Sortable: true},
			{Key: "category", Label: "Category", Sortable: true},
			{Key: "currentStock", Label: "Current Stock", Sortable: true},
			{Key: "warehouse", Label: "Warehouse", Sortable: true},
		},
		rows: []map[string]any{
			{"item": "Samsung Galaxy S24", "category": "Electronics", "currentStock": 8, "minLevel": 10, "warehouse": "Electronics Hub", "status": "Low Stock"},
			{"item": "Adidas Ultraboost", "category": "Clothing", "currentStock": 3, "minLevel": 5, "warehouse": "Fashion Store", "status": "Low Stock"},
			{"item": "MacBook Air M2", "category": "Electronics", "currentStock": 0, "minLevel": 2, "warehouse": "Tech Center", "status": "Out of Stock"},
		},
	},
	ReportMovement: {
		title: "Stock Movement",
		schema: tabular.Schema{
			{Key: "item", Label: "Item", Sortable: true},
			{Key: "type", Label: "Type", Sortable: true},
			{Key: "quantity", Label: "Quantity", Sortable: true},
			{Key: "date", Label: "Date", Sortable: true},
		},
		rows: []map[string]any{
			{"item": "iPhone 15 Pro", "type": "Sale", "quantity": -10, "date": "2024-09-15", "warehouse": "Main Warehouse"},
			{"item": "Nike Air Force 1", "type": "Restock", "quantity": 50, "date": "2024-09-14", "warehouse": "Fashion Store"},
		},
	},
	ReportValuation: {
		title: "Inventory Valuation",
		schema: tabular.Schema{
			{Key: "category", Label: "Category", Sortable: true},
			{Key: "totalItems", Label: "Total Items", Sortable: true},
			{Key: "value", Label: "Total Value ($)", Sortable: true},
		},
		rows: inventorySummaryRows,
	},
}

var recentActivity = []map[string]any{
	{"action": "Item Added", "item": "Samsung Galaxy S24", "warehouse": "Main Warehouse", "time": "2 hours ago"},
	{"action": "Stock Updated", "item": "iPhone 15 Pro", "warehouse": "Electronics Hub", "time": "4 hours ago"},
	{"action": "Low Stock Alert", "item": "MacBook Air M2", "warehouse": "Tech Center", "time": "6 hours ago"},
	{"action": "Warehouse Added", "item": "North Branch", "warehouse": "System", "time": "1 day ago"},
	{"action": "Bulk Import", "item": "145 items imported", "warehouse": "Main Warehouse", "time": "2 days ago"},
}
