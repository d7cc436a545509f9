package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/tippytea/inventario-stock/internal/application/catalog"
	"github.com/tippytea/inventario-stock/internal/application/dto"
	"github.com/tippytea/inventario-stock/internal/domain"
	"github.com/tippytea/inventario-stock/internal/domain/entity"
	domledger "github.com/tippytea/inventario-stock/internal/domain/ledger"
	"github.com/tippytea/inventario-stock/internal/domain/repository"
)

const fechaLayout = "2006-01-02"

// Snapshot es el estado completo derivado en una lectura: catálogo fusionado,
// movimientos, saldos y la versión del historial. Nunca se cachea; toda
// mutación devuelve el snapshot recién releído.
type Snapshot struct {
	Items       []entity.Item
	Balances    map[string]entity.Balance
	Movimientos []entity.Movement
	Version     repository.Version
}

// LedgerUseCase orquesta lecturas y mutaciones del libro de inventario.
type LedgerUseCase struct {
	catalog *catalog.CatalogUseCase
	movs    repository.MovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(cat *catalog.CatalogUseCase, movs repository.MovementRepository) *LedgerUseCase {
	return &LedgerUseCase{catalog: cat, movs: movs}
}

// Snapshot relee catálogo e historial y recalcula los saldos desde cero.
func (uc *LedgerUseCase) Snapshot(ctx context.Context) (*Snapshot, error) {
	items, err := uc.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	movs, version, err := uc.movs.Load()
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Items:       items,
		Balances:    domledger.ComputeBalances(items, movs),
		Movimientos: movs,
		Version:     version,
	}, nil
}

// RegisterMovements registra una tanda de movimientos: una fecha y un tipo
// para varias líneas, como el formulario de captura. Cada línea debe referir
// un código del catálogo; Producto y Unidad se desnormalizan aquí. El signo
// de la cantidad no se valida (comportamiento de referencia).
func (uc *LedgerUseCase) RegisterMovements(ctx context.Context, in dto.RegisterMovementsRequest) (*Snapshot, error) {
	if !entity.ValidTipo(in.Tipo) || len(in.Lineas) == 0 {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := time.Parse(fechaLayout, in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	items, err := uc.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	byCodigo := make(map[string]entity.Item, len(items))
	for _, it := range items {
		byCodigo[it.Codigo] = it
	}

	movs := make([]entity.Movement, 0, len(in.Lineas))
	for _, l := range in.Lineas {
		codigo := strings.TrimSpace(l.Codigo)
		item, ok := byCodigo[codigo]
		if !ok {
			return nil, domain.ErrNotFound
		}
		movs = append(movs, entity.Movement{
			Fecha:    fecha,
			Codigo:   codigo,
			Producto: item.Producto,
			Tipo:     in.Tipo,
			Cantidad: l.Cantidad,
			Unidad:   item.Unidad,
			Usuario:  strings.TrimSpace(in.Usuario),
		})
	}
	if _, _, err := uc.movs.Append(movs); err != nil {
		return nil, err
	}
	return uc.Snapshot(ctx)
}

// CorrectMovement corrige cantidad y tipo de un movimiento direccionado por ID.
func (uc *LedgerUseCase) CorrectMovement(ctx context.Context, id string, in dto.CorrectMovementRequest) (*Snapshot, error) {
	if !entity.ValidTipo(in.Tipo) || id == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.movs.Update(id, repository.Version(in.Version), in.Cantidad, in.Tipo); err != nil {
		return nil, err
	}
	return uc.Snapshot(ctx)
}

// DeleteMovement elimina un movimiento direccionado por ID.
func (uc *LedgerUseCase) DeleteMovement(ctx context.Context, id, version string) (*Snapshot, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.movs.Delete(id, repository.Version(version)); err != nil {
		return nil, err
	}
	return uc.Snapshot(ctx)
}

// UndoLast elimina el último movimiento registrado.
func (uc *LedgerUseCase) UndoLast(ctx context.Context, version string) (*Snapshot, error) {
	if _, err := uc.movs.RemoveLast(repository.Version(version)); err != nil {
		return nil, err
	}
	return uc.Snapshot(ctx)
}

// Resumen devuelve el total movido por producto y tipo.
func (uc *LedgerUseCase) Resumen(ctx context.Context) ([]dto.ResumenRowDTO, error) {
	snap, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	rows := domledger.ResumenPorProducto(snap.Movimientos)
	out := make([]dto.ResumenRowDTO, len(rows))
	for i, r := range rows {
		out[i] = dto.ResumenRowDTO{Producto: r.Producto, Tipo: r.Tipo, Total: r.Total}
	}
	return out, nil
}

// Kardex devuelve el resumen detallado (inicial | movimiento | final) por
// movimiento, del más reciente al más antiguo.
func (uc *LedgerUseCase) Kardex(ctx context.Context) ([]dto.KardexRowDTO, repository.Version, error) {
	snap, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, "", err
	}
	rows := make([]dto.KardexRowDTO, 0, len(snap.Movimientos))
	// Recorrido inverso: el último registrado primero.
	for i := len(snap.Movimientos) - 1; i >= 0; i-- {
		m := snap.Movimientos[i]
		bal := snap.Balances[m.Codigo]
		signo := "+ "
		if m.Tipo == entity.TipoSalida {
			signo = "- "
		}
		rows = append(rows, dto.KardexRowDTO{
			Fecha:        m.Fecha.Format(fechaLayout),
			Producto:     m.Producto,
			StockInicial: bal.StockInicial,
			Movimiento:   signo + m.Cantidad.String(),
			StockActual:  bal.StockActual,
			Usuario:      m.Usuario,
		})
	}
	return rows, snap.Version, nil
}
