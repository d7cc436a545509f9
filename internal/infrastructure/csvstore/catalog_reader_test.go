package csvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tippytea/inventario-stock/internal/infrastructure/csvstore"
	"github.com/tippytea/inventario-stock/pkg/logger"
)

const conteoColumn = "Conteo 02-02-2026"

// exportPlanta imita un export real: filas de título, encabezado exacto y
// conteos en formato es-ES.
const exportPlanta = `Inventario de Planta
Tippytea Blends
Corte al 02-02-2026
Responsable: bodega
---
Codigo,Nombre,Unidad,` + conteoColumn + `
A1,Té Verde,kg,"1.234,56"
B2,Matcha Premium,g,-
C3,,kg,10
D4,Rooibos,kg,sin conteo
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planta.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ──────────────────────────────────────────────────────────────────────────────
// Read — mapeo por encabezado exacto
// ──────────────────────────────────────────────────────────────────────────────

func TestRead_EncabezadoExacto(t *testing.T) {
	path := writeCatalog(t, exportPlanta)
	r := csvstore.NewCatalogReader(path, 5, conteoColumn, logger.Nop())

	items, err := r.Read()
	require.NoError(t, err)

	// C3 no tiene nombre de producto y se descarta.
	require.Len(t, items, 3)

	assert.Equal(t, "A1", items[0].Codigo)
	assert.True(t, items[0].StockInicial.Equal(decimal.RequireFromString("1234.56")),
		"el conteo es-ES debe normalizarse, obtuvo %s", items[0].StockInicial)

	// "-" significa sin conteo: cero.
	assert.True(t, items[1].StockInicial.IsZero())

	// Un conteo basura se registra como cero en lugar de abortar la carga.
	assert.Equal(t, "D4", items[2].Codigo)
	assert.True(t, items[2].StockInicial.IsZero())
}

// Sin los encabezados exactos se usan las primeras cuatro columnas.
func TestRead_FallbackPosicional(t *testing.T) {
	path := writeCatalog(t, `titulo
otra fila
x
y
z
SKU,Descripcion,Medida,Cant
A1,Té Verde,kg,100
`)
	r := csvstore.NewCatalogReader(path, 5, conteoColumn, logger.Nop())

	items, err := r.Read()
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "A1", items[0].Codigo)
	assert.Equal(t, "Té Verde", items[0].Producto)
	assert.True(t, items[0].StockInicial.Equal(decimal.NewFromInt(100)))
}

// Archivo ausente: catálogo vacío, sin error. El sistema sigue operando.
func TestRead_ArchivoAusente_CatalogoVacio(t *testing.T) {
	r := csvstore.NewCatalogReader(filepath.Join(t.TempDir(), "no-existe.csv"), 5, conteoColumn, logger.Nop())

	items, err := r.Read()
	require.NoError(t, err)
	assert.Empty(t, items)
}

// Un export con menos filas que las de título tampoco es un error.
func TestRead_ArchivoSoloTitulos_CatalogoVacio(t *testing.T) {
	path := writeCatalog(t, "titulo\notra\n")
	r := csvstore.NewCatalogReader(path, 5, conteoColumn, logger.Nop())

	items, err := r.Read()
	require.NoError(t, err)
	assert.Empty(t, items)
}

// Con Codigo en la última columna y una fila corta en el cuerpo, la fila
// corta se descarta y el resto del export se carga igual.
func TestRead_CodigoAlFinal_FilaCortaSeDescarta(t *testing.T) {
	path := writeCatalog(t, `titulo
sub
x
y
z
Nombre,Unidad,`+conteoColumn+`,Codigo
Té Verde,kg,5
Matcha,g,8,B2
`)
	r := csvstore.NewCatalogReader(path, 5, conteoColumn, logger.Nop())

	items, err := r.Read()
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "B2", items[0].Codigo)
	assert.Equal(t, "Matcha", items[0].Producto)
	assert.True(t, items[0].StockInicial.Equal(decimal.NewFromInt(8)))
}

// Los exports de planta suelen venir en ISO-8859-1; deben transcodificarse.
func TestRead_ISO88591_SeTranscodifica(t *testing.T) {
	// "Té Rojo" con la é en Latin-1 (0xE9), inválida como UTF-8.
	raw := []byte("a\nb\nc\nd\ne\nCodigo,Nombre,Unidad," + conteoColumn + "\nA1,T\xe9 Rojo,kg,5\n")
	path := filepath.Join(t.TempDir(), "planta-latin1.csv")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	r := csvstore.NewCatalogReader(path, 5, conteoColumn, logger.Nop())
	items, err := r.Read()
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Té Rojo", items[0].Producto, "la é Latin-1 debe llegar como UTF-8")
}
