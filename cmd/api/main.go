package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/InventoryPro-api/internal/application/auth"
	"github.com/jhoicas/InventoryPro-api/internal/application/importer"
	"github.com/jhoicas/InventoryPro-api/internal/application/transfer"
	"github.com/jhoicas/InventoryPro-api/internal/application/usecase"
	"github.com/jhoicas/InventoryPro-api/internal/infrastructure/memory"
	infrasettings "github.com/jhoicas/InventoryPro-api/internal/infrastructure/settings"
	httpRouter "github.com/jhoicas/InventoryPro-api/internal/interfaces/http"
	"github.com/jhoicas/InventoryPro-api/pkg/config"
	"github.com/jhoicas/InventoryPro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Estado en memoria con datos de muestra; el dashboard original arranca
	// con la misma colección.
	itemRepo := memory.NewItemRepository()
	warehouseRepo := memory.NewWarehouseRepository()
	transferRepo := memory.NewTransferRepository()
	outbox := memory.NewNotificationOutbox()
	if err := memory.Seed(itemRepo, warehouseRepo, transferRepo); err != nil {
		log.Fatal().Err(err).Msg("carga de datos de muestra")
	}

	settingsStore, err := infrasettings.NewFileStore(cfg.Settings.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("apertura del archivo de preferencias")
	}

	itemUC := usecase.NewItemUseCase(itemRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	reportUC := usecase.NewReportUseCase(itemRepo, warehouseRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsStore, cfg.CSV)
	importUC := importer.NewUseCase(itemRepo, log)
	transferUC := transfer.NewUseCase(transferRepo, outbox, log)
	authUC := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		WarehouseUC: warehouseUC,
		ReportUC:    reportUC,
		SettingsUC:  settingsUC,
		ImportUC:    importUC,
		TransferUC:  transferUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
