package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tippytea/inventario-stock/internal/domain/entity"
)

// Version identifica el contenido del historial al momento de una lectura.
// Toda mutación correctiva exige la versión leída; si el historial cambió
// entre lectura y escritura la operación falla con domain.ErrVersionConflict
// en lugar de corromper un registro ajeno.
type Version string

// MovementRepository persiste el historial de movimientos. La escritura es
// una reescritura completa del almacén (el comportamiento de referencia no
// hace append real).
type MovementRepository interface {
	// Load devuelve todos los movimientos y la versión del contenido leído.
	Load() ([]entity.Movement, Version, error)

	// Append agrega movimientos al final, asignándoles ID. Un append puro no
	// puede corromper registros ajenos, por eso no exige versión.
	Append(movs []entity.Movement) ([]entity.Movement, Version, error)

	// Update corrige cantidad y tipo del movimiento con el ID dado.
	Update(id string, expected Version, cantidad decimal.Decimal, tipo string) (Version, error)

	// Delete elimina el movimiento con el ID dado.
	Delete(id string, expected Version) (Version, error)

	// RemoveLast elimina el último movimiento registrado (deshacer).
	RemoveLast(expected Version) (Version, error)
}
