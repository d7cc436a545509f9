package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tippytea/inventario-stock/internal/application/dto"
	appledger "github.com/tippytea/inventario-stock/internal/application/ledger"
	"github.com/tippytea/inventario-stock/internal/domain"
)

// MovementHandler maneja el historial de movimientos y sus correcciones.
type MovementHandler struct {
	ledger *appledger.LedgerUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(ledger *appledger.LedgerUseCase) *MovementHandler {
	return &MovementHandler{ledger: ledger}
}

// List godoc
// @Summary      Historial de movimientos
// @Tags         movimientos
// @Produce      json
// @Success      200  {object}  dto.MovimientosResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	snap, err := h.ledger.Snapshot(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	movs := make([]dto.MovementDTO, 0, len(snap.Movimientos))
	for _, m := range snap.Movimientos {
		movs = append(movs, dto.MovementDTO{
			ID:       m.ID,
			Fecha:    m.Fecha.Format("2006-01-02"),
			Codigo:   m.Codigo,
			Producto: m.Producto,
			Tipo:     m.Tipo,
			Cantidad: m.Cantidad,
			Unidad:   m.Unidad,
			Usuario:  m.Usuario,
		})
	}
	return c.JSON(dto.MovimientosResponse{
		Version:     string(snap.Version),
		Total:       len(movs),
		Movimientos: movs,
	})
}

// Register godoc
// @Summary      Registrar movimientos
// @Description  Una fecha y un tipo (Entrada|Salida) para una o más líneas de
//
//	producto, como el formulario de captura. Devuelve el stock recalculado.
//
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementsRequest  true  "fecha, tipo, usuario, lineas"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	snap, err := h.ledger.RegisterMovements(c.Context(), in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snapshotToStockResponse(snap))
}

// Correct godoc
// @Summary      Corregir un movimiento
// @Description  Corrige cantidad y tipo del movimiento direccionado por ID.
//
//	Exige la versión del historial leída; una versión obsoleta devuelve 409.
//
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.CorrectMovementRequest  true  "version, cantidad, tipo"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [put]
func (h *MovementHandler) Correct(c *fiber.Ctx) error {
	var in dto.CorrectMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	snap, err := h.ledger.CorrectMovement(c.Context(), c.Params("id"), in)
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(snapshotToStockResponse(snap))
}

// Delete godoc
// @Summary      Eliminar un movimiento
// @Tags         movimientos
// @Produce      json
// @Param        id       path   string  true  "ID del movimiento"
// @Param        version  query  string  true  "Versión del historial leída"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	snap, err := h.ledger.DeleteMovement(c.Context(), c.Params("id"), c.Query("version"))
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(snapshotToStockResponse(snap))
}

// Undo godoc
// @Summary      Deshacer el último movimiento
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UndoRequest  true  "version"
// @Success      200   {object}  dto.StockResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos/undo [post]
func (h *MovementHandler) Undo(c *fiber.Ctx) error {
	var in dto.UndoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	snap, err := h.ledger.UndoLast(c.Context(), in.Version)
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(snapshotToStockResponse(snap))
}

// Resumen godoc
// @Summary      Volumen de movimientos por producto
// @Tags         movimientos
// @Produce      json
// @Success      200  {array}  dto.ResumenRowDTO
// @Router       /api/movimientos/resumen [get]
func (h *MovementHandler) Resumen(c *fiber.Ctx) error {
	rows, err := h.ledger.Resumen(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(rows), "resumen": rows})
}

// Kardex godoc
// @Summary      Resumen detallado (inicial | movimiento | final)
// @Tags         movimientos
// @Produce      json
// @Success      200  {array}  dto.KardexRowDTO
// @Router       /api/movimientos/kardex [get]
func (h *MovementHandler) Kardex(c *fiber.Ctx) error {
	rows, version, err := h.ledger.Kardex(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"version": string(version), "total": len(rows), "kardex": rows})
}

// movementError mapea errores de dominio a códigos HTTP.
func movementError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento o producto no encontrado"})
	}
	if err == domain.ErrVersionConflict {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VERSION_CONFLICT", Message: "el historial cambió desde la lectura, recargue e intente de nuevo"})
	}
	if err == domain.ErrEmptyStore {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_STORE", Message: "no hay movimientos para deshacer"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
