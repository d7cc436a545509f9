package csvstore

import (
	"encoding/csv"
	"os"
	"strings"
	"sync"

	"github.com/tippytea/inventario-stock/internal/domain/entity"
	"github.com/tippytea/inventario-stock/internal/domain/ledger"
	"github.com/tippytea/inventario-stock/pkg/logger"
)

var itemHeader = []string{"codigo", "nombre", "unidad", "stock_inicial"}

// ItemStore es el almacén secundario de productos agregados por usuarios:
// CSV de solo-agregar. Implementa repository.ItemRepository.
type ItemStore struct {
	path string
	log  *logger.Logger

	// Serializa escritores dentro del proceso, igual que el historial.
	mu sync.Mutex
}

// NewItemStore construye el almacén.
func NewItemStore(path string, log *logger.Logger) *ItemStore {
	return &ItemStore{path: path, log: log}
}

// List devuelve los productos agregados. Archivo ausente = lista vacía.
func (s *ItemStore) List() ([]entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Str("archivo", s.path).Err(err).Msg("almacén secundario ilegible, se continúa vacío")
		}
		return nil, nil
	}
	records, err := readRecords(raw, ',')
	if err != nil {
		s.log.Warn().Str("archivo", s.path).Err(err).Msg("almacén secundario ilegible, se continúa vacío")
		return nil, nil
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var items []entity.Item
	for n, rec := range records[1:] {
		if len(rec) < 4 {
			continue
		}
		stock, err := ledger.ParseCantidad(rec[3])
		if err != nil {
			s.log.Warn().Str("archivo", s.path).Int("fila", n+2).Err(err).
				Msg("stock inicial no interpretable, se registra como cero")
		}
		items = append(items, entity.Item{
			Codigo:       strings.TrimSpace(rec[0]),
			Producto:     strings.TrimSpace(rec[1]),
			Unidad:       strings.TrimSpace(rec[2]),
			StockInicial: stock,
		})
	}
	return items, nil
}

// Append agrega un producto al final del archivo, escribiendo primero el
// encabezado si el archivo no existe o está vacío (un archivo tocado por un
// operador cuenta como vacío). Este almacén sí es append real: nunca se
// corrige ni elimina.
func (s *ItemStore) Append(item entity.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, statErr := os.Stat(s.path)
	needHeader := os.IsNotExist(statErr) || (statErr == nil && info.Size() == 0)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(itemHeader); err != nil {
			return err
		}
	}
	if err := w.Write([]string{item.Codigo, item.Producto, item.Unidad, item.StockInicial.String()}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
