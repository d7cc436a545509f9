package dto

import "github.com/shopspring/decimal"

// MovementDTO movimiento del historial.
type MovementDTO struct {
	ID       string          `json:"id"`
	Fecha    string          `json:"fecha"` // YYYY-MM-DD
	Codigo   string          `json:"codigo"`
	Producto string          `json:"producto"`
	Tipo     string          `json:"tipo"` // Entrada | Salida
	Cantidad decimal.Decimal `json:"cantidad"`
	Unidad   string          `json:"unidad"`
	Usuario  string          `json:"usuario"`
}

// MovimientosResponse respuesta de GET /api/movimientos.
type MovimientosResponse struct {
	Version     string        `json:"version"`
	Total       int           `json:"total"`
	Movimientos []MovementDTO `json:"movimientos"`
}

// MovementLine una línea del formulario de registro: producto y cantidad.
type MovementLine struct {
	Codigo   string          `json:"codigo"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// RegisterMovementsRequest body para POST /api/movimientos. Replica el
// formulario de captura: una fecha y un tipo para varios productos a la vez.
type RegisterMovementsRequest struct {
	Fecha   string         `json:"fecha"` // YYYY-MM-DD
	Tipo    string         `json:"tipo"`  // Entrada | Salida
	Usuario string         `json:"usuario"`
	Lineas  []MovementLine `json:"lineas"`
}

// CorrectMovementRequest body para PUT /api/movimientos/:id.
type CorrectMovementRequest struct {
	Version  string          `json:"version"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Tipo     string          `json:"tipo"`
}

// UndoRequest body para POST /api/movimientos/undo.
type UndoRequest struct {
	Version string `json:"version"`
}

// ResumenRowDTO total movido por producto y tipo (datos del análisis de movimientos).
type ResumenRowDTO struct {
	Producto string          `json:"producto"`
	Tipo     string          `json:"tipo"`
	Total    decimal.Decimal `json:"total"`
}

// KardexRowDTO fila del resumen detallado: inicial | movimiento | final.
type KardexRowDTO struct {
	Fecha        string          `json:"fecha"`
	Producto     string          `json:"producto"`
	StockInicial decimal.Decimal `json:"stock_inicial"`
	Movimiento   string          `json:"movimiento"` // "+ 20" / "- 5"
	StockActual  decimal.Decimal `json:"stock_actual"`
	Usuario      string          `json:"usuario"`
}
