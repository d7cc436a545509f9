package entity

import "github.com/shopspring/decimal"

// Item representa un producto del catálogo de inventario.
// Codigo es la clave única tras la fusión del catálogo; StockInicial es el
// conteo registrado en la fecha del snapshot de planta.
type Item struct {
	Codigo       string
	Producto     string
	Unidad       string
	StockInicial decimal.Decimal
}
