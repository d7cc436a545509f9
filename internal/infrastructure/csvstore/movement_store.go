package csvstore

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tippytea/inventario-stock/internal/domain"
	"github.com/tippytea/inventario-stock/internal/domain/entity"
	"github.com/tippytea/inventario-stock/internal/domain/ledger"
	"github.com/tippytea/inventario-stock/internal/domain/repository"
	"github.com/tippytea/inventario-stock/pkg/logger"
)

const fechaLayout = "2006-01-02"

var movementHeader = []string{"ID", "Fecha", "Codigo", "Producto", "Tipo", "Cantidad", "Unidad", "Usuario"}

// VersionEmpty es la versión de un historial sin archivo.
const VersionEmpty = repository.Version("")

// MovementStore persiste el historial de movimientos en un CSV. Cada escritura
// reescribe el archivo completo (temp + rename, nunca queda a medias). Las
// operaciones correctivas direccionan por ID de movimiento y exigen la versión
// leída: si el contenido del archivo cambió, fallan con ErrVersionConflict.
// Un mutex serializa además los escritores dentro del proceso.
type MovementStore struct {
	mu        sync.Mutex
	path      string
	delimiter rune
	log       *logger.Logger
}

// NewMovementStore construye el almacén.
func NewMovementStore(path string, delimiter rune, log *logger.Logger) *MovementStore {
	return &MovementStore{path: path, delimiter: delimiter, log: log}
}

// Load devuelve todos los movimientos y la versión del contenido.
func (s *MovementStore) Load() ([]entity.Movement, repository.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Append agrega movimientos al final asignándoles ID. Devuelve los movimientos
// persistidos y la nueva versión.
func (s *MovementStore) Append(movs []entity.Movement) ([]entity.Movement, repository.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _, err := s.load()
	if err != nil {
		return nil, VersionEmpty, err
	}
	appended := make([]entity.Movement, len(movs))
	for i, m := range movs {
		m.ID = uuid.New().String()
		appended[i] = m
	}
	version, err := s.write(append(current, appended...))
	if err != nil {
		return nil, VersionEmpty, err
	}
	return appended, version, nil
}

// Update corrige cantidad y tipo del movimiento con el ID dado.
func (s *MovementStore) Update(id string, expected repository.Version, cantidad decimal.Decimal, tipo string) (repository.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadChecked(expected)
	if err != nil {
		return VersionEmpty, err
	}
	found := false
	for i := range current {
		if current[i].ID == id {
			current[i].Cantidad = cantidad
			current[i].Tipo = tipo
			found = true
			break
		}
	}
	if !found {
		return VersionEmpty, domain.ErrNotFound
	}
	return s.write(current)
}

// Delete elimina el movimiento con el ID dado.
func (s *MovementStore) Delete(id string, expected repository.Version) (repository.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadChecked(expected)
	if err != nil {
		return VersionEmpty, err
	}
	idx := -1
	for i := range current {
		if current[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return VersionEmpty, domain.ErrNotFound
	}
	return s.write(append(current[:idx], current[idx+1:]...))
}

// RemoveLast elimina el último movimiento (deshacer).
func (s *MovementStore) RemoveLast(expected repository.Version) (repository.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadChecked(expected)
	if err != nil {
		return VersionEmpty, err
	}
	if len(current) == 0 {
		return VersionEmpty, domain.ErrEmptyStore
	}
	return s.write(current[:len(current)-1])
}

// loadChecked carga el historial y verifica que la versión del contenido siga
// siendo la que leyó el caller.
func (s *MovementStore) loadChecked(expected repository.Version) ([]entity.Movement, error) {
	current, version, err := s.load()
	if err != nil {
		return nil, err
	}
	if version != expected {
		return nil, domain.ErrVersionConflict
	}
	return current, nil
}

func (s *MovementStore) load() ([]entity.Movement, repository.Version, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, VersionEmpty, nil
		}
		return nil, VersionEmpty, err
	}
	version := hashVersion(raw)

	records, err := readRecords(raw, s.delimiter)
	if err != nil {
		s.log.Warn().Str("archivo", s.path).Err(err).Msg("historial ilegible, se continúa vacío")
		return nil, version, nil
	}
	if len(records) <= 1 {
		return nil, version, nil
	}

	movs := make([]entity.Movement, 0, len(records)-1)
	for n, rec := range records[1:] {
		if len(rec) < len(movementHeader) {
			s.log.Warn().Str("archivo", s.path).Int("fila", n+2).Msg("fila incompleta descartada")
			continue
		}
		fecha, err := time.Parse(fechaLayout, strings.TrimSpace(rec[1]))
		if err != nil {
			s.log.Warn().Str("archivo", s.path).Int("fila", n+2).Err(err).Msg("fecha no interpretable")
		}
		cantidad, err := ledger.ParseCantidad(rec[5])
		if err != nil {
			s.log.Warn().Str("archivo", s.path).Int("fila", n+2).Err(err).
				Msg("cantidad no interpretable, se registra como cero")
		}
		movs = append(movs, entity.Movement{
			ID:       strings.TrimSpace(rec[0]),
			Fecha:    fecha,
			Codigo:   strings.TrimSpace(rec[2]),
			Producto: strings.TrimSpace(rec[3]),
			Tipo:     strings.TrimSpace(rec[4]),
			Cantidad: cantidad,
			Unidad:   strings.TrimSpace(rec[6]),
			Usuario:  strings.TrimSpace(rec[7]),
		})
	}
	return movs, version, nil
}

// write reescribe el archivo completo de forma atómica (temp + rename) y
// devuelve la versión del nuevo contenido.
func (s *MovementStore) write(movs []entity.Movement) (repository.Version, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = s.delimiter
	if err := w.Write(movementHeader); err != nil {
		return VersionEmpty, err
	}
	for _, m := range movs {
		rec := []string{m.ID, m.Fecha.Format(fechaLayout), m.Codigo, m.Producto, m.Tipo, m.Cantidad.String(), m.Unidad, m.Usuario}
		if err := w.Write(rec); err != nil {
			return VersionEmpty, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return VersionEmpty, err
	}

	raw := []byte(sb.String())
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".movimientos-*.tmp")
	if err != nil {
		return VersionEmpty, err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return VersionEmpty, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return VersionEmpty, err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return VersionEmpty, err
	}
	return hashVersion(raw), nil
}

func hashVersion(raw []byte) repository.Version {
	sum := sha256.Sum256(raw)
	return repository.Version(hex.EncodeToString(sum[:]))
}
