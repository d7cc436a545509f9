package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/tippytea/inventario-stock/internal/application/dto"
	"github.com/tippytea/inventario-stock/internal/application/export"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCSV  = "text/csv; charset=utf-8"
	mimePDF  = "application/pdf"
)

// ExportHandler sirve los artefactos descargables (xlsx, csv, pdf).
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// InventarioXLSX godoc
// @Summary      Inventario completo (.xlsx)
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/export/inventario.xlsx [get]
func (h *ExportHandler) InventarioXLSX(c *fiber.Ctx) error {
	return h.download(c, "Inventario_Tippytea.xlsx", mimeXLSX, h.uc.InventarioXLSX)
}

// InventarioCSV godoc
// @Summary      Inventario completo (.csv)
// @Tags         export
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/export/inventario.csv [get]
func (h *ExportHandler) InventarioCSV(c *fiber.Ctx) error {
	return h.download(c, "Inventario_Tippytea.csv", mimeCSV, h.uc.InventarioCSV)
}

// InventarioPDF godoc
// @Summary      Reporte de stock (.pdf)
// @Tags         export
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/export/inventario.pdf [get]
func (h *ExportHandler) InventarioPDF(c *fiber.Ctx) error {
	return h.download(c, "Inventario_Tippytea.pdf", mimePDF, h.uc.InventarioPDF)
}

// KardexXLSX godoc
// @Summary      Historial de movimientos (.xlsx)
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/export/kardex.xlsx [get]
func (h *ExportHandler) KardexXLSX(c *fiber.Ctx) error {
	return h.download(c, "Kardex_Movimientos.xlsx", mimeXLSX, h.uc.KardexXLSX)
}

// KardexCSV godoc
// @Summary      Historial de movimientos (.csv)
// @Tags         export
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/export/kardex.csv [get]
func (h *ExportHandler) KardexCSV(c *fiber.Ctx) error {
	return h.download(c, "Kardex_Movimientos.csv", mimeCSV, h.uc.KardexCSV)
}

func (h *ExportHandler) download(c *fiber.Ctx, filename, mime string, gen func(ctx context.Context) ([]byte, error)) error {
	data, err := gen(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
