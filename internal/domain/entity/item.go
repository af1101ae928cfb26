package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados del nivel actual frente al mínimo configurado.
const (
	StockStatusIn  = "In Stock"
	StockStatusLow = "Low Stock"
	StockStatusOut = "Out of Stock"
)

// Item representa un artículo del inventario. El stock se referencia por
// nombre de bodega: el sistema original no tiene identificador estable de
// bodega en los ítems, debilidad conocida que se preserva.
type Item struct {
	ID            string
	Name          string
	Category      string
	StockLevel    int
	MinStockLevel int
	Warehouse     string
	Price         decimal.Decimal
	SKU           string
	Description   string
	Status        string // In Stock, Low Stock, Out of Stock
	LastUpdated   time.Time
}

// DeriveStockStatus calcula el estado de stock: agotado con nivel cero, bajo
// cuando no supera el mínimo, disponible en el resto de casos.
func DeriveStockStatus(stockLevel, minStockLevel int) string {
	switch {
	case stockLevel <= 0:
		return StockStatusOut
	case minStockLevel > 0 && stockLevel <= minStockLevel:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}
