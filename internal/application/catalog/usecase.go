package catalog

import (
	"context"
	"strings"

	"github.com/tippytea/inventario-stock/internal/application/dto"
	"github.com/tippytea/inventario-stock/internal/domain"
	"github.com/tippytea/inventario-stock/internal/domain/entity"
	"github.com/tippytea/inventario-stock/internal/domain/repository"
)

// CatalogUseCase fusiona la fuente primaria (export de planta) con el almacén
// secundario de productos agregados y expone el alta de productos. No hay
// caché: cada llamada relee las fuentes.
type CatalogUseCase struct {
	primary repository.CatalogRepository
	items   repository.ItemRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(primary repository.CatalogRepository, items repository.ItemRepository) *CatalogUseCase {
	return &CatalogUseCase{primary: primary, items: items}
}

// Load devuelve el catálogo fusionado: primario primero, secundario después,
// de-duplicado por código. Ante códigos repetidos gana la primera aparición
// (regla heredada del comportamiento de referencia; ver DESIGN.md).
func (uc *CatalogUseCase) Load(_ context.Context) ([]entity.Item, error) {
	primary, err := uc.primary.Read()
	if err != nil {
		return nil, err
	}
	secondary, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	return mergeCatalog(primary, secondary), nil
}

// AddItem agrega un producto al almacén secundario. Un código ya presente en
// el catálogo fusionado es rechazado: la fusión lo descartaría de todos modos.
func (uc *CatalogUseCase) AddItem(ctx context.Context, in dto.AddItemRequest) (*entity.Item, error) {
	item := entity.Item{
		Codigo:       strings.TrimSpace(in.Codigo),
		Producto:     strings.TrimSpace(in.Producto),
		Unidad:       strings.TrimSpace(in.Unidad),
		StockInicial: in.StockInicial,
	}
	if item.Codigo == "" || item.Producto == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range existing {
		if e.Codigo == item.Codigo {
			return nil, domain.ErrDuplicate
		}
	}
	if err := uc.items.Append(item); err != nil {
		return nil, err
	}
	return &item, nil
}

// mergeCatalog concatena ambas fuentes, recorta espacios, descarta filas sin
// nombre de producto y de-duplica por código conservando la primera aparición.
func mergeCatalog(primary, secondary []entity.Item) []entity.Item {
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	out := make([]entity.Item, 0, len(primary)+len(secondary))
	for _, it := range append(append([]entity.Item{}, primary...), secondary...) {
		it.Codigo = strings.TrimSpace(it.Codigo)
		it.Producto = strings.TrimSpace(it.Producto)
		it.Unidad = strings.TrimSpace(it.Unidad)
		if it.Producto == "" {
			continue
		}
		if _, dup := seen[it.Codigo]; dup {
			continue
		}
		seen[it.Codigo] = struct{}{}
		out = append(out, it)
	}
	return out
}
