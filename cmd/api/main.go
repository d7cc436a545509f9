package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tippytea/inventario-stock/internal/application/catalog"
	appexport "github.com/tippytea/inventario-stock/internal/application/export"
	appledger "github.com/tippytea/inventario-stock/internal/application/ledger"
	"github.com/tippytea/inventario-stock/internal/infrastructure/csvstore"
	"github.com/tippytea/inventario-stock/internal/infrastructure/excel"
	infrapdf "github.com/tippytea/inventario-stock/internal/infrastructure/pdf"
	httpRouter "github.com/tippytea/inventario-stock/internal/interfaces/http"
	"github.com/tippytea/inventario-stock/pkg/config"
	"github.com/tippytea/inventario-stock/pkg/logger"
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
		Str("catalogo", cfg.Store.CatalogPath).
		Str("movimientos", cfg.Store.MovementsPath).
		Msg("iniciando aplicación")

	// Repositorios sobre archivos planos
	catalogReader := csvstore.NewCatalogReader(cfg.Store.CatalogPath, cfg.Store.SkipRows, cfg.Store.ConteoColumn, log)
	itemStore := csvstore.NewItemStore(cfg.Store.ItemsPath, log)
	movementStore := csvstore.NewMovementStore(cfg.Store.MovementsPath, cfg.Store.DelimiterRune(), log)

	// Casos de uso
	catalogUC := catalog.NewCatalogUseCase(catalogReader, itemStore)
	ledgerUC := appledger.NewLedgerUseCase(catalogUC, movementStore)

	xlsxGen := excel.NewGenerator()
	pdfGen := infrapdf.NewMarotoStockReport()
	exportUC := appexport.NewExportUseCase(ledgerUC, xlsxGen, pdfGen, cfg.App.Name)

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
		CatalogUC: catalogUC,
		LedgerUC:  ledgerUC,
		ExportUC:  exportUC,
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
