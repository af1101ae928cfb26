package usecase

import (
	"github.com/jhoicas/InventoryPro-api/internal/domain/entity"
	"github.com/jhoicas/InventoryPro-api/pkg/tabular"
)

// ItemSchema esquema de columnas de la grilla de inventario, compartido por
// el listado y la exportación CSV.
func ItemSchema() tabular.Schema {
	return tabular.Schema{
		{Key: "id", Label: "Item ID", Sortable: true},
		{Key: "name", Label: "Name", Sortable: true, Required: true},
		{Key: "category", Label: "Category", Sortable: true, Required: true},
		{Key: "stockLevel", Label: "Stock Level", Sortable: true, Required: true},
		{Key: "warehouse", Label: "Warehouse", Sortable: true, Required: true},
		{Key: "price", Label: "Price", Sortable: true},
		{Key: "sku", Label: "SKU"},
		{Key: "minStockLevel", Label: "Min Stock Level"},
		{Key: "description", Label: "Description"},
		{Key: "lastUpdated", Label: "Last Updated", Sortable: true},
		{Key: "status", Label: "Status", Sortable: true},
	}
}

// itemRow proyecta un ítem como fila del motor de tablas. Las fechas se
// proyectan como cadena ISO; la heurística de exportación las reconoce por la
// clave lastUpdated.
func itemRow(i *entity.Item) tabular.Row {
	return tabular.Row{
		"id":            i.ID,
		"name":          i.Name,
		"category":      i.Category,
		"stockLevel":    i.StockLevel,
		"warehouse":     i.Warehouse,
		"price":         i.Price,
		"sku":           i.SKU,
		"minStockLevel": i.MinStockLevel,
		"description":   i.Description,
		"lastUpdated":   i.LastUpdated.Format("2006-01-02"),
		"status":        i.Status,
	}
}
