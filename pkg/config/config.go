package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
	Pipeline PipelineConfig
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

// JWTConfig configuración de los tokens de sesión propios.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// UpstreamConfig parámetros del cliente HTTP hacia Tecopos: timeout duro,
// reintentos con backoff exponencial (solo GET) y tope de páginas al paginar.
type UpstreamConfig struct {
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration // factor base del backoff exponencial
	MaxPages   int
}

// PipelineConfig valores por defecto del pipeline de rendimiento de descomposición.
// El caller puede sobreescribirlos por request (chunk_days, max_concurrency).
type PipelineConfig struct {
	ChunkDays      int
	MaxConcurrency int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
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
			Name: getString(v, "APP_NAME", "tecopos-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "tecopos-api"),
		},
		Upstream: UpstreamConfig{
			Timeout:    time.Duration(getInt(v, "UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,
			MaxRetries: getInt(v, "UPSTREAM_MAX_RETRIES", 3),
			Backoff:    time.Duration(getInt(v, "UPSTREAM_BACKOFF_MS", 500)) * time.Millisecond,
			MaxPages:   getInt(v, "UPSTREAM_MAX_PAGES", 50),
		},
		Pipeline: PipelineConfig{
			ChunkDays:      getInt(v, "PIPELINE_CHUNK_DAYS", 30),
			MaxConcurrency: getInt(v, "PIPELINE_MAX_CONCURRENCY", 8),
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
