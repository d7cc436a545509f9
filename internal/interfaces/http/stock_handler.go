package http

import (
	"github.com/gofiber/fiber/v2"

	appledger "github.com/tippytea/inventario-stock/internal/application/ledger"
	"github.com/tippytea/inventario-stock/internal/application/dto"
)

// StockHandler maneja las consultas de stock (catálogo + saldos derivados).
type StockHandler struct {
	ledger *appledger.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(ledger *appledger.LedgerUseCase) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// GetStock godoc
// @Summary      Stock actualizado
// @Description  Catálogo fusionado con saldos recalculados desde cero y la
//
//	versión del historial para operaciones correctivas posteriores.
//
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StockResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	snap, err := h.ledger.Snapshot(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(snapshotToStockResponse(snap))
}

// GetStockByCodigo godoc
// @Summary      Saldo de un producto
// @Tags         stock
// @Produce      json
// @Param        codigo  path  string  true  "Código del producto"
// @Success      200  {object}  dto.ItemBalanceDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{codigo} [get]
func (h *StockHandler) GetStockByCodigo(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	snap, err := h.ledger.Snapshot(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	for _, it := range snap.Items {
		if it.Codigo == codigo {
			bal := snap.Balances[it.Codigo]
			return c.JSON(dto.ItemBalanceDTO{
				Codigo:        it.Codigo,
				Producto:      it.Producto,
				Unidad:        it.Unidad,
				StockInicial:  bal.StockInicial,
				TotalEntradas: bal.TotalEntradas,
				TotalSalidas:  bal.TotalSalidas,
				StockActual:   bal.StockActual,
			})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
}

func snapshotToStockResponse(snap *appledger.Snapshot) dto.StockResponse {
	items := make([]dto.ItemBalanceDTO, 0, len(snap.Items))
	for _, it := range snap.Items {
		bal := snap.Balances[it.Codigo]
		items = append(items, dto.ItemBalanceDTO{
			Codigo:        it.Codigo,
			Producto:      it.Producto,
			Unidad:        it.Unidad,
			StockInicial:  bal.StockInicial,
			TotalEntradas: bal.TotalEntradas,
			TotalSalidas:  bal.TotalSalidas,
			StockActual:   bal.StockActual,
		})
	}
	return dto.StockResponse{
		Version: string(snap.Version),
		Total:   len(items),
		Items:   items,
	}
}
