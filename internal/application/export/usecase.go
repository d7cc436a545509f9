// Package export arma los artefactos descargables (xlsx, csv, pdf) a partir
// del snapshot actual. Construye las tablas aquí y delega el formato a los
// generadores de infraestructura.
package export

import (
	"context"
	"encoding/csv"
	"strings"

	appledger "github.com/tippytea/inventario-stock/internal/application/ledger"
)

var (
	inventarioHeader = []string{"Codigo", "Producto", "Unidad", "Stock_Actual"}
	kardexHeader     = []string{"Fecha", "Producto", "Stock_Inicial", "Mov.", "Stock_Actual", "Usuario"}
)

// ExportUseCase genera los reportes descargables del inventario y el kardex.
type ExportUseCase struct {
	ledger *appledger.LedgerUseCase
	xlsx   SpreadsheetGenerator
	pdf    StockPDFGenerator
	nombre string // nombre de la empresa en el encabezado del PDF
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(ledger *appledger.LedgerUseCase, xlsx SpreadsheetGenerator, pdf StockPDFGenerator, nombre string) *ExportUseCase {
	return &ExportUseCase{ledger: ledger, xlsx: xlsx, pdf: pdf, nombre: nombre}
}

// InventarioXLSX exporta la tabla de stock actualizado como xlsx.
func (uc *ExportUseCase) InventarioXLSX(ctx context.Context) ([]byte, error) {
	rows, err := uc.inventarioRows(ctx)
	if err != nil {
		return nil, err
	}
	return uc.xlsx.Generate("Reporte", inventarioHeader, rows)
}

// InventarioCSV exporta la tabla de stock actualizado como csv.
func (uc *ExportUseCase) InventarioCSV(ctx context.Context) ([]byte, error) {
	rows, err := uc.inventarioRows(ctx)
	if err != nil {
		return nil, err
	}
	return writeCSV(inventarioHeader, rows)
}

// InventarioPDF exporta el reporte PDF del stock actualizado.
func (uc *ExportUseCase) InventarioPDF(ctx context.Context) ([]byte, error) {
	rows, err := uc.inventarioRows(ctx)
	if err != nil {
		return nil, err
	}
	pdfRows := make([]StockReportRow, len(rows))
	for i, r := range rows {
		pdfRows[i] = StockReportRow{Codigo: r[0], Producto: r[1], Unidad: r[2], StockActual: r[3]}
	}
	return uc.pdf.GenerateStockReport(ctx, uc.nombre, pdfRows)
}

// KardexXLSX exporta el historial detallado como xlsx.
func (uc *ExportUseCase) KardexXLSX(ctx context.Context) ([]byte, error) {
	rows, err := uc.kardexRows(ctx)
	if err != nil {
		return nil, err
	}
	return uc.xlsx.Generate("Reporte", kardexHeader, rows)
}

// KardexCSV exporta el historial detallado como csv.
func (uc *ExportUseCase) KardexCSV(ctx context.Context) ([]byte, error) {
	rows, err := uc.kardexRows(ctx)
	if err != nil {
		return nil, err
	}
	return writeCSV(kardexHeader, rows)
}

func (uc *ExportUseCase) inventarioRows(ctx context.Context) ([][]string, error) {
	snap, err := uc.ledger.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(snap.Items))
	for _, it := range snap.Items {
		bal := snap.Balances[it.Codigo]
		rows = append(rows, []string{it.Codigo, it.Producto, it.Unidad, bal.StockActual.String()})
	}
	return rows, nil
}

func (uc *ExportUseCase) kardexRows(ctx context.Context) ([][]string, error) {
	kardex, _, err := uc.ledger.Kardex(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(kardex))
	for _, k := range kardex {
		rows = append(rows, []string{
			k.Fecha, k.Producto, k.StockInicial.String(), k.Movimiento, k.StockActual.String(), k.Usuario,
		})
	}
	return rows, nil
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
