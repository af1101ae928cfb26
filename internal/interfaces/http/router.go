package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/InventoryPro-api/internal/application/auth"
	"github.com/jhoicas/InventoryPro-api/internal/application/importer"
	"github.com/jhoicas/InventoryPro-api/internal/application/transfer"
	"github.com/jhoicas/InventoryPro-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ReportUC    *usecase.ReportUseCase
	SettingsUC  *usecase.SettingsUseCase
	ImportUC    *importer.UseCase
	TransferUC  *transfer.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Importación CSV (protegido)
	imports := protected.Group("/imports")
	importHandler := NewImportHandler(deps.ImportUC)
	imports.Post("/", importHandler.Upload)
	imports.Get("/:id", importHandler.Get)
	imports.Put("/:id/mapping", importHandler.UpdateMapping)
	imports.Post("/:id/commit", importHandler.Commit)
	imports.Delete("/:id", importHandler.Discard)

	// Exportación CSV (protegido)
	exports := protected.Group("/exports")
	exportHandler := NewExportHandler(deps.ItemUC, deps.ReportUC, deps.SettingsUC)
	exports.Get("/items", exportHandler.Items)
	exports.Get("/reports/:type", exportHandler.Report)

	// Traslados (protegido)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Post("/:id/approve", transferHandler.Approve)
	transfers.Post("/:id/reject", transferHandler.Reject)
	transfers.Get("/notifications", transferHandler.Notifications)

	// Reportes y dashboard (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/:type", reportHandler.Generate)

	// Preferencias (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/:bucket", settingsHandler.Get)
	settings.Put("/:bucket", settingsHandler.Save)
}
