// Package ledger contiene la lógica pura del libro de inventario: suma con
// signo de movimientos por producto y cruce con el catálogo. No lee archivos
// ni interpreta strings; las cantidades ya llegan como decimales.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tippytea/inventario-stock/internal/domain/entity"
)

// ComputeBalances calcula el saldo por producto: StockInicial más entradas
// menos salidas. Todo producto del catálogo aparece en el resultado, tenga o
// no movimientos; movimientos con códigos fuera del catálogo se descartan
// (left join sobre el catálogo). La suma es conmutativa: el orden de los
// movimientos no altera el resultado.
func ComputeBalances(items []entity.Item, movs []entity.Movement) map[string]entity.Balance {
	type acc struct {
		entradas decimal.Decimal
		salidas  decimal.Decimal
	}
	sums := make(map[string]acc, len(items))
	for _, m := range movs {
		a := sums[m.Codigo]
		if m.Tipo == entity.TipoEntrada {
			a.entradas = a.entradas.Add(m.Cantidad)
		} else {
			a.salidas = a.salidas.Add(m.Cantidad)
		}
		sums[m.Codigo] = a
	}

	out := make(map[string]entity.Balance, len(items))
	for _, it := range items {
		a := sums[it.Codigo]
		out[it.Codigo] = entity.Balance{
			StockInicial:  it.StockInicial,
			TotalEntradas: a.entradas,
			TotalSalidas:  a.salidas,
			StockActual:   it.StockInicial.Add(a.entradas).Sub(a.salidas),
		}
	}
	return out
}

// ResumenRow total de cantidad movida por producto y tipo.
type ResumenRow struct {
	Producto string
	Tipo     string
	Total    decimal.Decimal
}

// ResumenPorProducto agrupa los movimientos por (Producto, Tipo) y suma las
// cantidades. Orden estable: producto ascendente, Entrada antes que Salida.
func ResumenPorProducto(movs []entity.Movement) []ResumenRow {
	type key struct{ producto, tipo string }
	sums := make(map[key]decimal.Decimal)
	for _, m := range movs {
		k := key{m.Producto, m.Tipo}
		sums[k] = sums[k].Add(m.Cantidad)
	}

	rows := make([]ResumenRow, 0, len(sums))
	for k, total := range sums {
		rows = append(rows, ResumenRow{Producto: k.producto, Tipo: k.tipo, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Producto != rows[j].Producto {
			return rows[i].Producto < rows[j].Producto
		}
		return rows[i].Tipo < rows[j].Tipo
	})
	return rows
}
