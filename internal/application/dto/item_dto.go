package dto

import "time"

// CreateItemRequest entrada para crear un ítem. ID es opcional: en blanco se
// asigna el siguiente secuencial.
type CreateItemRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Category      string `json:"category" validate:"required"`
	StockLevel    int    `json:"stock_level" validate:"min=0"`
	MinStockLevel int    `json:"min_stock_level" validate:"min=0"`
	Warehouse     string `json:"warehouse" validate:"required"`
	Price         string `json:"price"`
	SKU           string `json:"sku"`
	Description   string `json:"description"`
}

// UpdateItemRequest entrada para actualizar un ítem (campos opcionales).
type UpdateItemRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string `json:"category"`
	StockLevel    *int    `json:"stock_level" validate:"omitempty,min=0"`
	MinStockLevel *int    `json:"min_stock_level" validate:"omitempty,min=0"`
	Warehouse     *string `json:"warehouse"`
	Price         *string `json:"price"`
	SKU           *string `json:"sku"`
	Description   *string `json:"description"`
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	StockLevel    int       `json:"stock_level"`
	MinStockLevel int       `json:"min_stock_level"`
	Warehouse     string    `json:"warehouse"`
	Price         string    `json:"price"`
	SKU           string    `json:"sku"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	LastUpdated   time.Time `json:"last_updated"`
}

// ItemListResponse lista de ítems más el total tras búsqueda y filtros.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
