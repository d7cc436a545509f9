package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tippytea/inventario-stock/internal/application/dto"
	"github.com/tippytea/inventario-stock/internal/domain"
	"github.com/tippytea/inventario-stock/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios de catálogo
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalog struct{ items []entity.Item }

func (f *fakeCatalog) Read() ([]entity.Item, error) { return f.items, nil }

type fakeItems struct {
	items    []entity.Item
	appended []entity.Item
}

func (f *fakeItems) List() ([]entity.Item, error) { return f.items, nil }
func (f *fakeItems) Append(item entity.Item) error {
	f.appended = append(f.appended, item)
	f.items = append(f.items, item)
	return nil
}

func centItem(codigo, producto string, inicial int64) entity.Item {
	return entity.Item{Codigo: codigo, Producto: producto, Unidad: "kg", StockInicial: decimal.NewFromInt(inicial)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Load — fusión primario + secundario
// ──────────────────────────────────────────────────────────────────────────────

// Un código duplicado en el secundario se descarta: gana la primera aparición.
func TestLoad_DuplicadoSecundario_GanaElPrimario(t *testing.T) {
	primary := &fakeCatalog{items: []entity.Item{centItem("A1", "Té Verde", 100)}}
	secondary := &fakeItems{items: []entity.Item{centItem("A1", "Té Verde Pirata", 999), centItem("B2", "Matcha", 5)}}
	uc := NewCatalogUseCase(primary, secondary)

	items, err := uc.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Té Verde", items[0].Producto, "la entrada primaria debe conservarse")
	assert.True(t, items[0].StockInicial.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "B2", items[1].Codigo)
}

// Filas sin nombre de producto se descartan y los campos se recortan.
func TestLoad_FilasSinNombre_SeDescartan(t *testing.T) {
	primary := &fakeCatalog{items: []entity.Item{
		{Codigo: " A1 ", Producto: " Té Verde ", Unidad: " kg "},
		{Codigo: "X9", Producto: "   "},
	}}
	uc := NewCatalogUseCase(primary, &fakeItems{})

	items, err := uc.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "A1", items[0].Codigo)
	assert.Equal(t, "Té Verde", items[0].Producto)
	assert.Equal(t, "kg", items[0].Unidad)
}

// Ambas fuentes vacías: catálogo vacío es un estado válido, no un error.
func TestLoad_FuentesVacias_CatalogoVacio(t *testing.T) {
	uc := NewCatalogUseCase(&fakeCatalog{}, &fakeItems{})
	items, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

// ──────────────────────────────────────────────────────────────────────────────
// AddItem
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_Agrega(t *testing.T) {
	secondary := &fakeItems{}
	uc := NewCatalogUseCase(&fakeCatalog{items: []entity.Item{centItem("A1", "Té Verde", 100)}}, secondary)

	added, err := uc.AddItem(context.Background(), dto.AddItemRequest{
		Codigo: " B2 ", Producto: " Matcha ", Unidad: "g", StockInicial: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	assert.Equal(t, "B2", added.Codigo, "los campos deben llegar recortados")
	require.Len(t, secondary.appended, 1)
	assert.Equal(t, "Matcha", secondary.appended[0].Producto)
}

// Un código ya presente en el catálogo fusionado se rechaza.
func TestAddItem_CodigoDuplicado_Rechazado(t *testing.T) {
	uc := NewCatalogUseCase(&fakeCatalog{items: []entity.Item{centItem("A1", "Té Verde", 100)}}, &fakeItems{})

	_, err := uc.AddItem(context.Background(), dto.AddItemRequest{Codigo: "A1", Producto: "Otro Té"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate), "debe fallar con ErrDuplicate, obtuvo %v", err)
}

func TestAddItem_SinCodigoONombre_Invalido(t *testing.T) {
	uc := NewCatalogUseCase(&fakeCatalog{}, &fakeItems{})

	_, err := uc.AddItem(context.Background(), dto.AddItemRequest{Codigo: "", Producto: "Matcha"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.AddItem(context.Background(), dto.AddItemRequest{Codigo: "B2", Producto: "  "})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
