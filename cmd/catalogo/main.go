// catalogo normaliza un export de planta crudo (ISO-8859-1, filas de título,
// conteos en formato es-ES) a un CSV de catálogo limpio en UTF-8 con columnas
// codigo,nombre,unidad,stock_inicial.
//
// Uso: go run ./cmd/catalogo [entrada.csv] [salida.csv]
// Por defecto lee "Inventarios - Planta.csv" y escribe "catalogo.csv".
package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/tippytea/inventario-stock/internal/infrastructure/csvstore"
	"github.com/tippytea/inventario-stock/pkg/config"
	"github.com/tippytea/inventario-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	inPath := cfg.Store.CatalogPath
	outPath := "catalogo.csv"
	if len(os.Args) > 1 {
		inPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})
	reader := csvstore.NewCatalogReader(inPath, cfg.Store.SkipRows, cfg.Store.ConteoColumn, log)
	items, err := reader.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer export: %v\n", err)
		os.Exit(1)
	}
	if len(items) == 0 {
		fmt.Fprintf(os.Stderr, "El export %q no contiene productos\n", inPath)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write([]string{"codigo", "nombre", "unidad", "stock_inicial"}); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir encabezado: %v\n", err)
		os.Exit(1)
	}
	for _, it := range items {
		if err := w.Write([]string{it.Codigo, it.Producto, it.Unidad, it.StockInicial.String()}); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir fila: %v\n", err)
			os.Exit(1)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir salida: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d productos\n", outPath, len(items))
}
