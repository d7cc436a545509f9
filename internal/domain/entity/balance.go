package entity

import "github.com/shopspring/decimal"

// Balance es el saldo derivado de un producto: nunca se persiste, se recalcula
// en cada lectura a partir de catálogo × movimientos.
type Balance struct {
	StockInicial  decimal.Decimal
	TotalEntradas decimal.Decimal
	TotalSalidas  decimal.Decimal
	StockActual   decimal.Decimal // StockInicial + TotalEntradas - TotalSalidas
}
