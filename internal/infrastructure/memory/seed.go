package memory

import (
	"time"

	"github.com/jhoicas/InventoryPro-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Seed puebla los repositorios con los datos de muestra del dashboard y deja
// los contadores secuenciales posicionados después de la semilla.
func Seed(items *ItemRepository, warehouses *WarehouseRepository, transfers *TransferRepository) error {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	price := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}

	sampleItems := []*entity.Item{
		{ID: "INV001", Name: "iPhone 15 Pro", Category: "Electronics", StockLevel: 45, MinStockLevel: 10, Warehouse: "Main Warehouse", Price: price("999.99"), SKU: "APL-IP15P", Status: entity.StockStatusIn, LastUpdated: day("2025-01-15")},
		{ID: "INV002", Name: "Samsung Galaxy S24", Category: "Electronics", StockLevel: 8, MinStockLevel: 10, Warehouse: "Electronics Hub", Price: price("899.99"), SKU: "SMS-GS24", Status: entity.StockStatusLow, LastUpdated: day("2025-01-14")},
		{ID: "INV003", Name: "MacBook Air M2", Category: "Electronics", StockLevel: 0, MinStockLevel: 2, Warehouse: "Tech Center", Price: price("1299.99"), SKU: "APL-MBA-M2", Status: entity.StockStatusOut, LastUpdated: day("2025-01-13")},
		{ID: "INV004", Name: "Nike Air Force 1", Category: "Clothing", StockLevel: 125, MinStockLevel: 20, Warehouse: "Fashion Store", Price: price("89.99"), SKU: "NK-AF1-WHT", Status: entity.StockStatusIn, LastUpdated: day("2025-01-12")},
		{ID: "INV005", Name: "The Great Gatsby", Category: "Books", StockLevel: 67, MinStockLevel: 5, Warehouse: "Book Depot", Price: price("12.50"), SKU: "BK-GATSBY", Status: entity.StockStatusIn, LastUpdated: day("2025-01-11")},
	}
	if err := items.CreateBatch(sampleItems); err != nil {
		return err
	}
	items.setSeq(len(sampleItems))

	sampleWarehouses := []*entity.Warehouse{
		{ID: "WH001", Name: "Main Warehouse", Location: "New York, NY", Capacity: "50,000 sq ft", CurrentStock: 1247, Utilization: 85, Status: entity.WarehouseStatusActive, Manager: "John Smith"},
		{ID: "WH002", Name: "Electronics Hub", Location: "Los Angeles, CA", Capacity: "30,000 sq ft", CurrentStock: 892, Utilization: 72, Status: entity.WarehouseStatusActive, Manager: "Sarah Johnson"},
		{ID: "WH003", Name: "Tech Center", Location: "Austin, TX", Capacity: "25,000 sq ft", CurrentStock: 456, Utilization: 45, Status: entity.WarehouseStatusActive, Manager: "Mike Davis"},
		{ID: "WH004", Name: "Fashion Store", Location: "Miami, FL", Capacity: "20,000 sq ft", CurrentStock: 678, Utilization: 68, Status: entity.WarehouseStatusMaintenance, Manager: "Emma Wilson"},
		{ID: "WH005", Name: "Book Depot", Location: "Chicago, IL", Capacity: "15,000 sq ft", CurrentStock: 234, Utilization: 32, Status: entity.WarehouseStatusActive, Manager: "David Brown"},
	}
	now := time.Now()
	for _, w := range sampleWarehouses {
		w.CreatedAt = now
		w.UpdatedAt = now
		if err := warehouses.Create(w); err != nil {
			return err
		}
	}
	warehouses.setSeq(len(sampleWarehouses))

	sampleTransfers := []*entity.TransferRequest{
		{ID: "TRN001", Item: "iPhone 15 Pro", From: "Main Warehouse", To: "Electronics Hub", Quantity: 10, Status: entity.TransferStatusPending, InitiatedBy: "Main Warehouse", CreatedAt: now, UpdatedAt: now},
		{ID: "TRN002", Item: "Nike Air Force 1", From: "Fashion Store", To: "Main Warehouse", Quantity: 50, Status: entity.TransferStatusCompleted, InitiatedBy: "Fashion Store", CreatedAt: now, UpdatedAt: now},
	}
	for _, t := range sampleTransfers {
		if err := transfers.Create(t); err != nil {
			return err
		}
	}
	transfers.setSeq(len(sampleTransfers))

	return nil
}
