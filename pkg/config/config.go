package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	CSV      CSVConfig
	Settings SettingsConfig
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

// JWTConfig configuración del token de sesión. El login es un stub que acepta
// cualquier credencial; el token solo transporta el punto de vista elegido
// (usuario y bodega actual).
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// CSVConfig defaults de exportación CSV. Pueden quedar sobreescritos por las
// preferencias guardadas en el bucket de settings "csv".
type CSVConfig struct {
	Delimiter      string // , ; \t |
	DateFormat     string // MM/DD/YYYY, DD/MM/YYYY, YYYY-MM-DD
	IncludeHeaders bool
}

// SettingsConfig ubicación del archivo de settings persistidos (buckets
// organization, csv, profile).
type SettingsConfig struct {
	Path string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, JWT_SECRET, CSV_DELIMITER, SETTINGS_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventory-pro"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "inventory-pro-dev"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "inventory-pro"),
		},
		CSV: CSVConfig{
			Delimiter:      getString(v, "CSV_DELIMITER", ","),
			DateFormat:     getString(v, "CSV_DATE_FORMAT", "MM/DD/YYYY"),
			IncludeHeaders: getBool(v, "CSV_INCLUDE_HEADERS", true),
		},
		Settings: SettingsConfig{
			Path: getString(v, "SETTINGS_PATH", "settings.json"),
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
