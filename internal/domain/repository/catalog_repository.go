package repository

import "github.com/tippytea/inventario-stock/internal/domain/entity"

// CatalogRepository lee la fuente primaria del catálogo (export de planta).
// Una fuente ausente o ilegible devuelve un catálogo vacío, no un error: el
// sistema debe seguir operando con lo que haya.
type CatalogRepository interface {
	Read() ([]entity.Item, error)
}

// ItemRepository es el almacén secundario de productos agregados por
// usuarios. Solo se agrega; nunca se elimina.
type ItemRepository interface {
	List() ([]entity.Item, error)
	Append(item entity.Item) error
}
