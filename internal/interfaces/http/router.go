package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tippytea/inventario-stock/internal/application/catalog"
	"github.com/tippytea/inventario-stock/internal/application/export"
	appledger "github.com/tippytea/inventario-stock/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *catalog.CatalogUseCase
	LedgerUC  *appledger.LedgerUseCase
	ExportUC  *export.ExportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Stock (catálogo + saldos)
	stockHandler := NewStockHandler(deps.LedgerUC)
	api.Get("/stock", stockHandler.GetStock)
	api.Get("/stock/:codigo", stockHandler.GetStockByCodigo)

	// Alta de productos (almacén secundario)
	itemHandler := NewItemHandler(deps.CatalogUC)
	api.Post("/items", itemHandler.AddItem)

	// Historial de movimientos y correcciones
	movGroup := api.Group("/movimientos")
	movementHandler := NewMovementHandler(deps.LedgerUC)
	movGroup.Get("/", movementHandler.List)
	movGroup.Post("/", movementHandler.Register)
	movGroup.Get("/resumen", movementHandler.Resumen)
	movGroup.Get("/kardex", movementHandler.Kardex)
	movGroup.Post("/undo", movementHandler.Undo)
	movGroup.Put("/:id", movementHandler.Correct)
	movGroup.Delete("/:id", movementHandler.Delete)

	// Exportes descargables
	exportGroup := api.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	exportGroup.Get("/inventario.xlsx", exportHandler.InventarioXLSX)
	exportGroup.Get("/inventario.csv", exportHandler.InventarioCSV)
	exportGroup.Get("/inventario.pdf", exportHandler.InventarioPDF)
	exportGroup.Get("/kardex.xlsx", exportHandler.KardexXLSX)
	exportGroup.Get("/kardex.csv", exportHandler.KardexCSV)
}
