package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Location    string `json:"location"`
	Capacity    string `json:"capacity"`
	Utilization int    `json:"utilization" validate:"min=0,max=100"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Maintenance Inactive"`
	Manager     string `json:"manager"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Location    *string `json:"location"`
	Capacity    *string `json:"capacity"`
	Utilization *int    `json:"utilization" validate:"omitempty,min=0,max=100"`
	Status      *string `json:"status" validate:"omitempty,oneof=Active Maintenance Inactive"`
	Manager     *string `json:"manager"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Capacity     string    `json:"capacity"`
	CurrentStock int       `json:"current_stock"`
	Utilization  int       `json:"utilization"`
	Status       string    `json:"status"`
	Manager      string    `json:"manager"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WarehouseListResponse lista de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Total int                 `json:"total"`
}
