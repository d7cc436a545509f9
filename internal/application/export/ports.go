package export

import "context"

// SpreadsheetGenerator produce un libro de cálculo de una sola hoja a partir
// de una tabla. Implementación en internal/infrastructure/excel.
type SpreadsheetGenerator interface {
	Generate(sheet string, header []string, rows [][]string) ([]byte, error)
}

// StockReportRow fila del reporte PDF de inventario.
type StockReportRow struct {
	Codigo      string
	Producto    string
	Unidad      string
	StockActual string
}

// StockPDFGenerator produce el reporte PDF del stock actualizado.
// Implementación en internal/infrastructure/pdf.
type StockPDFGenerator interface {
	GenerateStockReport(ctx context.Context, empresa string, rows []StockReportRow) ([]byte, error)
}
