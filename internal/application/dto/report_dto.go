package dto

// ReportColumn descriptor de columna para renderizar un reporte.
type ReportColumn struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
}

// ReportResponse un reporte generado: título, esquema de columnas y filas.
// Los datos son agregados de muestra fijos (límite de alcance declarado).
type ReportResponse struct {
	Type    string           `json:"type"`
	Title   string           `json:"title"`
	Columns []ReportColumn   `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// DashboardResponse métricas del panel principal más actividad reciente.
type DashboardResponse struct {
	TotalStockItems int              `json:"total_stock_items"`
	LowStockItems   int              `json:"low_stock_items"`
	TotalWarehouses int              `json:"total_warehouses"`
	MonthlyRevenue  string           `json:"monthly_revenue"`
	RecentActivity  []map[string]any `json:"recent_activity"`
}
