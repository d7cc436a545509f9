package dto

import "github.com/shopspring/decimal"

// ItemBalanceDTO producto del catálogo con su saldo derivado.
type ItemBalanceDTO struct {
	Codigo        string          `json:"codigo"`
	Producto      string          `json:"producto"`
	Unidad        string          `json:"unidad"`
	StockInicial  decimal.Decimal `json:"stock_inicial"`
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSalidas  decimal.Decimal `json:"total_salidas"`
	StockActual   decimal.Decimal `json:"stock_actual"`
}

// StockResponse respuesta de GET /api/stock. Version identifica el contenido
// del historial leído; las correcciones deben devolverla tal cual.
type StockResponse struct {
	Version string           `json:"version"`
	Total   int              `json:"total"`
	Items   []ItemBalanceDTO `json:"items"`
}

// AddItemRequest body para POST /api/items (alta en el almacén secundario).
type AddItemRequest struct {
	Codigo       string          `json:"codigo"`
	Producto     string          `json:"producto"`
	Unidad       string          `json:"unidad"`
	StockInicial decimal.Decimal `json:"stock_inicial"`
}
