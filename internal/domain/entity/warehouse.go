package entity

import "time"

// Estados operativos de una bodega.
const (
	WarehouseStatusActive      = "Active"
	WarehouseStatusMaintenance = "Maintenance"
	WarehouseStatusInactive    = "Inactive"
)

// Warehouse representa una bodega o sucursal donde se almacena inventario.
type Warehouse struct {
	ID           string
	Name         string
	Location     string
	Capacity     string // texto libre, ej. "50,000 sq ft"
	CurrentStock int
	Utilization  int // porcentaje 0-100
	Status       string
	Manager      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
