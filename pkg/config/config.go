package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Store StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig rutas y formato de los archivos de datos.
// CatalogPath es el export de planta (con filas de encabezado no tabulares);
// ItemsPath es el almacén secundario de productos agregados por usuarios;
// MovementsPath es el historial de movimientos.
type StoreConfig struct {
	CatalogPath   string
	ItemsPath     string
	MovementsPath string
	SkipRows      int    // filas no tabulares al inicio del export de planta
	ConteoColumn  string // encabezado exacto de la columna de conteo (ej. "Conteo 02-02-2026")
	Delimiter     string // delimitador del historial de movimientos; un solo carácter
}

// DelimiterRune devuelve el delimitador como rune; coma si no está configurado.
func (c StoreConfig) DelimiterRune() rune {
	if c.Delimiter == "" {
		return ','
	}
	return []rune(c.Delimiter)[0]
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORE_CATALOG_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-stock"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			CatalogPath:   getString(v, "STORE_CATALOG_PATH", "Inventarios - Planta.csv"),
			ItemsPath:     getString(v, "STORE_ITEMS_PATH", "productos_agregados.csv"),
			MovementsPath: getString(v, "STORE_MOVEMENTS_PATH", "movimientos.csv"),
			SkipRows:      getInt(v, "STORE_SKIP_ROWS", 5),
			ConteoColumn:  getString(v, "STORE_CONTEO_COLUMN", "Conteo 02-02-2026"),
			Delimiter:     getString(v, "STORE_DELIMITER", ","),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
