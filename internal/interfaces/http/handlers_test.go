package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tippytea/inventario-stock/internal/application/catalog"
	appexport "github.com/tippytea/inventario-stock/internal/application/export"
	appledger "github.com/tippytea/inventario-stock/internal/application/ledger"
	"github.com/tippytea/inventario-stock/internal/application/dto"
	"github.com/tippytea/inventario-stock/internal/infrastructure/csvstore"
	"github.com/tippytea/inventario-stock/internal/infrastructure/excel"
	infrapdf "github.com/tippytea/inventario-stock/internal/infrastructure/pdf"
	apphttp "github.com/tippytea/inventario-stock/internal/interfaces/http"
	"github.com/tippytea/inventario-stock/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testConteo = "Conteo 02-02-2026"

// catálogo de planta con dos productos: A1 inicia en 100, B2 en 50.
const testCatalogo = `titulo
sub
x
y
z
Codigo,Nombre,Unidad,` + testConteo + `
A1,Té Verde,kg,100
B2,Matcha,g,50
`

// buildTestApp arma la aplicación completa sobre archivos temporales.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "planta.csv")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalogo), 0o644))

	log := logger.Nop()
	reader := csvstore.NewCatalogReader(catalogPath, 5, testConteo, log)
	items := csvstore.NewItemStore(filepath.Join(dir, "productos_agregados.csv"), log)
	movs := csvstore.NewMovementStore(filepath.Join(dir, "movimientos.csv"), ',', log)

	catalogUC := catalog.NewCatalogUseCase(reader, items)
	ledgerUC := appledger.NewLedgerUseCase(catalogUC, movs)
	exportUC := appexport.NewExportUseCase(ledgerUC, excel.NewGenerator(), infrapdf.NewMarotoStockReport(), "Tippytea Test")

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{CatalogUC: catalogUC, LedgerUC: ledgerUC, ExportUC: exportUC})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeStock(t *testing.T, resp *http.Response) dto.StockResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.StockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func balanceOf(t *testing.T, stock dto.StockResponse, codigo string) dto.ItemBalanceDTO {
	t.Helper()
	for _, it := range stock.Items {
		if it.Codigo == codigo {
			return it
		}
	}
	t.Fatalf("el producto %s no aparece en el stock", codigo)
	return dto.ItemBalanceDTO{}
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo: registrar, consultar, corregir, deshacer
// ──────────────────────────────────────────────────────────────────────────────

// Entrada de 20 y salida de 5 sobre un inicial de 100 dejan el stock en 115.
func TestFlujo_RegistrarYConsultarStock(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movimientos", dto.RegisterMovementsRequest{
		Fecha: "2026-02-10", Tipo: "Entrada", Usuario: "martin",
		Lineas: []dto.MovementLine{{Codigo: "A1", Cantidad: decimal.NewFromInt(20)}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/movimientos", dto.RegisterMovementsRequest{
		Fecha: "2026-02-11", Tipo: "Salida", Usuario: "jenny",
		Lineas: []dto.MovementLine{{Codigo: "A1", Cantidad: decimal.NewFromInt(5)}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	stock := decodeStock(t, resp)

	a1 := balanceOf(t, stock, "A1")
	assert.True(t, a1.StockActual.Equal(decimal.NewFromInt(115)), "100 + 20 - 5 = 115, obtuvo %s", a1.StockActual)
	assert.True(t, a1.TotalEntradas.Equal(decimal.NewFromInt(20)))
	assert.True(t, a1.TotalSalidas.Equal(decimal.NewFromInt(5)))

	// B2 no se movió: conserva su inicial.
	b2 := balanceOf(t, stock, "B2")
	assert.True(t, b2.StockActual.Equal(decimal.NewFromInt(50)))
}

// Un movimiento sobre un código fuera del catálogo se rechaza.
func TestRegistrar_CodigoDesconocido_404(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movimientos", dto.RegisterMovementsRequest{
		Fecha: "2026-02-10", Tipo: "Entrada", Usuario: "martin",
		Lineas: []dto.MovementLine{{Codigo: "ZZ", Cantidad: decimal.NewFromInt(1)}},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegistrar_TipoInvalido_400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movimientos", dto.RegisterMovementsRequest{
		Fecha: "2026-02-10", Tipo: "Traslado", Usuario: "martin",
		Lineas: []dto.MovementLine{{Codigo: "A1", Cantidad: decimal.NewFromInt(1)}},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Corregir exige la versión leída: con la versión al día funciona, con una
// obsoleta devuelve 409 y no toca el historial.
func TestCorregir_ConflictoDeVersion(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movimientos", dto.RegisterMovementsRequest{
		Fecha: "2026-02-10", Tipo: "Entrada", Usuario: "martin",
		Lineas: []dto.MovementLine{{Codigo: "A1", Cantidad: decimal.NewFromInt(20)}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	stock := decodeStock(t, resp)

	// Lista para conocer el ID del movimiento.
	resp = doJSON(t, app, http.MethodGet, "/api/movimientos", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var hist dto.MovimientosResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&hist))
	resp.Body.Close()
	require.Len(t, hist.Movimientos, 1)
	id := hist.Movimientos[0].ID

	// Corrección con la versión al día.
	resp = doJSON(t, app, http.MethodPut, "/api/movimientos/"+id, dto.CorrectMovementRequest{
		Version: stock.Version, Cantidad: decimal.NewFromInt(30), Tipo: "Entrada",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeStock(t, resp)
	assert.True(t, balanceOf(t, updated, "A1").StockActual.Equal(decimal.NewFromInt(130)))

	// La versión anterior quedó obsoleta: reintento con ella → 409.
	resp = doJSON(t, app, http.MethodPut, "/api/movimientos/"+id, dto.CorrectMovementRequest{
		Version: stock.Version, Cantidad: decimal.NewFromInt(99), Tipo: "Salida",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// El saldo no cambió con el intento obsoleto.
	resp2 := doJSON(t, app, http.MethodGet, "/api/stock", nil)
	final := decodeStock(t, resp2)
	assert.True(t, balanceOf(t, final, "A1").StockActual.Equal(decimal.NewFromInt(130)))
}

// Deshacer elimina el último movimiento; sobre un historial vacío devuelve 409.
func TestUndo(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movimientos", dto.RegisterMovementsRequest{
		Fecha: "2026-02-10", Tipo: "Salida", Usuario: "martin",
		Lineas: []dto.MovementLine{{Codigo: "A1", Cantidad: decimal.NewFromInt(5)}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	stock := decodeStock(t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/movimientos/undo", dto.UndoRequest{Version: stock.Version})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	undone := decodeStock(t, resp)
	assert.True(t, balanceOf(t, undone, "A1").StockActual.Equal(decimal.NewFromInt(100)),
		"tras deshacer, el stock vuelve al inicial")

	resp = doJSON(t, app, http.MethodPost, "/api/movimientos/undo", dto.UndoRequest{Version: undone.Version})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "no hay nada más que deshacer")
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_YRegistroSobreElNuevo(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/items", dto.AddItemRequest{
		Codigo: "C3", Producto: "Rooibos", Unidad: "kg", StockInicial: decimal.NewFromInt(10),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// El duplicado contra el primario se rechaza.
	resp = doJSON(t, app, http.MethodPost, "/api/items", dto.AddItemRequest{Codigo: "A1", Producto: "Otro"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// El nuevo producto acepta movimientos.
	resp = doJSON(t, app, http.MethodPost, "/api/movimientos", dto.RegisterMovementsRequest{
		Fecha: "2026-02-12", Tipo: "Entrada", Usuario: "martin",
		Lineas: []dto.MovementLine{{Codigo: "C3", Cantidad: decimal.NewFromInt(4)}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	stock := decodeStock(t, resp)
	assert.True(t, balanceOf(t, stock, "C3").StockActual.Equal(decimal.NewFromInt(14)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen, kardex y exportes
// ──────────────────────────────────────────────────────────────────────────────

func TestResumenYKardex(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movimientos", dto.RegisterMovementsRequest{
		Fecha: "2026-02-10", Tipo: "Entrada", Usuario: "martin",
		Lineas: []dto.MovementLine{
			{Codigo: "A1", Cantidad: decimal.NewFromInt(20)},
			{Codigo: "B2", Cantidad: decimal.NewFromInt(8)},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/movimientos/resumen", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var resumen struct {
		Total   int                 `json:"total"`
		Resumen []dto.ResumenRowDTO `json:"resumen"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&resumen))
	resp.Body.Close()
	assert.Equal(t, 2, resumen.Total)

	resp = doJSON(t, app, http.MethodGet, "/api/movimientos/kardex", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var kardex struct {
		Total  int                `json:"total"`
		Kardex []dto.KardexRowDTO `json:"kardex"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&kardex))
	resp.Body.Close()
	require.Equal(t, 2, kardex.Total)
	// El kardex llega del más reciente al más antiguo: B2 fue la última línea registrada.
	assert.Equal(t, "Matcha", kardex.Kardex[0].Producto)
	assert.Equal(t, "+ 8", kardex.Kardex[0].Movimiento)
}

func TestExport_CSVyXLSXyPDF(t *testing.T) {
	app := buildTestApp(t)

	readBody := func(resp *http.Response) []byte {
		t.Helper()
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return raw
	}

	resp := doJSON(t, app, http.MethodGet, "/api/export/inventario.csv", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	csv := string(readBody(resp))
	assert.Contains(t, csv, "Codigo,Producto,Unidad,Stock_Actual")
	assert.Contains(t, csv, "A1,Té Verde,kg,100")

	resp = doJSON(t, app, http.MethodGet, "/api/export/inventario.xlsx", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Inventario_Tippytea.xlsx")
	xlsx := readBody(resp)
	assert.True(t, bytes.HasPrefix(xlsx, []byte("PK")), "un xlsx es un zip: debe iniciar con PK")

	resp = doJSON(t, app, http.MethodGet, "/api/export/inventario.pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pdf := readBody(resp)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "el reporte debe ser un PDF válido")
}
