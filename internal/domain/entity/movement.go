package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	TipoEntrada = "Entrada" // suma al stock
	TipoSalida  = "Salida"  // resta del stock
)

// ValidTipo indica si s es uno de los dos tipos de movimiento.
func ValidTipo(s string) bool {
	return s == TipoEntrada || s == TipoSalida
}

// Movement representa un movimiento registrado en el historial (kardex).
// ID se asigna al persistir y es la clave para correcciones; Producto y
// Unidad son copias desnormalizadas del catálogo al momento del registro.
// Cantidad admite negativos: el comportamiento de referencia no los rechaza.
type Movement struct {
	ID       string
	Fecha    time.Time
	Codigo   string
	Producto string
	Tipo     string
	Cantidad decimal.Decimal
	Unidad   string
	Usuario  string
}

// Ajuste devuelve la cantidad con signo: positiva para Entrada, negativa para Salida.
func (m Movement) Ajuste() decimal.Decimal {
	if m.Tipo == TipoEntrada {
		return m.Cantidad
	}
	return m.Cantidad.Neg()
}
