// Package csvstore implementa los repositorios sobre archivos tabulares
// planos: el export de planta (catálogo), el almacén secundario de productos
// y el historial de movimientos.
package csvstore

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/tippytea/inventario-stock/internal/domain/entity"
	"github.com/tippytea/inventario-stock/internal/domain/ledger"
	"github.com/tippytea/inventario-stock/pkg/logger"
)

// Encabezados exactos del export de planta. Si alguno falta se usan las
// primeras cuatro columnas en este mismo orden.
const (
	headerCodigo = "Codigo"
	headerNombre = "Nombre"
	headerUnidad = "Unidad"
)

// CatalogReader lee el export de planta: archivo CSV con filas de título no
// tabulares al inicio, columnas ubicadas por encabezado exacto (o posición) y
// conteos en formato es-ES. Implementa repository.CatalogRepository.
type CatalogReader struct {
	path         string
	skipRows     int
	conteoColumn string // encabezado de la columna de conteo, ej. "Conteo 02-02-2026"
	log          *logger.Logger
}

// NewCatalogReader construye el lector.
func NewCatalogReader(path string, skipRows int, conteoColumn string, log *logger.Logger) *CatalogReader {
	return &CatalogReader{path: path, skipRows: skipRows, conteoColumn: conteoColumn, log: log}
}

// Read carga el catálogo primario. Archivo ausente o ilegible devuelve un
// catálogo vacío sin error: un catálogo vacío es un estado válido y continuo.
func (r *CatalogReader) Read() ([]entity.Item, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		r.log.Warn().Str("archivo", r.path).Err(err).Msg("catálogo primario no disponible, se continúa vacío")
		return nil, nil
	}

	records, err := readRecords(raw, ',')
	if err != nil {
		r.log.Warn().Str("archivo", r.path).Err(err).Msg("catálogo primario ilegible, se continúa vacío")
		return nil, nil
	}
	if len(records) <= r.skipRows {
		return nil, nil
	}
	records = records[r.skipRows:]

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	idxCodigo, idxNombre, idxUnidad, idxConteo := resolveColumns(header, r.conteoColumn)
	if idxCodigo < 0 {
		// Ni encabezados exactos ni cuatro columnas: no hay forma de mapear.
		r.log.Warn().Str("archivo", r.path).Msg("encabezado del catálogo no reconocido, se continúa vacío")
		return nil, nil
	}

	var items []entity.Item
	for n, rec := range records[1:] {
		if idxCodigo >= len(rec) || idxNombre >= len(rec) || idxUnidad >= len(rec) || idxConteo >= len(rec) {
			// Fila corta: el export trae filas no tabulares también en el cuerpo.
			r.log.Warn().Str("archivo", r.path).Int("fila", r.skipRows+n+2).
				Msg("fila con menos columnas de las mapeadas, se descarta")
			continue
		}
		producto := strings.TrimSpace(rec[idxNombre])
		if producto == "" {
			continue // filas sin nombre de producto se descartan
		}
		stock, err := ledger.ParseCantidad(rec[idxConteo])
		if err != nil {
			r.log.Warn().Str("archivo", r.path).Int("fila", r.skipRows+n+2).Err(err).
				Msg("conteo no interpretable, se registra como cero")
		}
		items = append(items, entity.Item{
			Codigo:       strings.TrimSpace(rec[idxCodigo]),
			Producto:     producto,
			Unidad:       strings.TrimSpace(rec[idxUnidad]),
			StockInicial: stock,
		})
	}
	return items, nil
}

// resolveColumns ubica las cuatro columnas por encabezado exacto; si alguno
// falta cae a la regla posicional (primeras cuatro columnas). Devuelve -1 si
// tampoco hay cuatro columnas.
func resolveColumns(header []string, conteoColumn string) (codigo, nombre, unidad, conteo int) {
	codigo, nombre, unidad, conteo = -1, -1, -1, -1
	for i, h := range header {
		switch h {
		case headerCodigo:
			codigo = i
		case headerNombre:
			nombre = i
		case headerUnidad:
			unidad = i
		case conteoColumn:
			conteo = i
		}
	}
	if codigo >= 0 && nombre >= 0 && unidad >= 0 && conteo >= 0 {
		return codigo, nombre, unidad, conteo
	}
	if len(header) >= 4 {
		return 0, 1, 2, 3
	}
	return -1, -1, -1, -1
}

// readRecords decodifica bytes CSV. Los exports de planta suelen venir en
// ISO-8859-1; si el contenido no es UTF-8 válido se transcodifica primero.
func readRecords(raw []byte, delimiter rune) ([][]string, error) {
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(src)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1 // las filas de título no son tabulares
	cr.LazyQuotes = true
	return cr.ReadAll()
}
