package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCantidad normaliza una celda de cantidad de un export de planta.
//
// Reglas:
//   - vacío, "-" o "0" significan cero (así llegan las celdas sin conteo);
//   - con coma se asume formato es-ES: "." separa miles y "," decimales
//     ("1.234,56" -> 1234.56);
//   - sin coma se interpreta como número plano ("1234.56" -> 1234.56).
//
// Un valor no interpretable devuelve error; el caller decide si lo registra
// como cero o rechaza la fila. Esta función nunca decide por él.
func ParseCantidad(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	if v == "" || v == "-" || v == "0" {
		return decimal.Zero, nil
	}
	if strings.Contains(v, ",") {
		v = strings.ReplaceAll(v, ".", "")
		v = strings.ReplaceAll(v, ",", ".")
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cantidad %q no interpretable: %w", s, err)
	}
	return d, nil
}
