package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del panel (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Backend   BackendConfig
	Panel     PanelConfig
	Workspace WorkspaceConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
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

// BackendConfig API REST de la tienda.
type BackendConfig struct {
	URL            string
	TimeoutSeconds int
}

// Timeout timeout por llamada como duración.
func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PanelConfig reglas del guard de sesión.
type PanelConfig struct {
	RequiredRole string
	EntryPath    string
	OnError      string // redirect | retry
	Session      string // cookie de sesión para panelctl
}

// WorkspaceConfig vida de los workspaces en memoria.
type WorkspaceConfig struct {
	IdleMinutes int
}

// MaxIdle tiempo sin uso tras el cual se descarta un workspace.
func (c WorkspaceConfig) MaxIdle() time.Duration {
	return time.Duration(c.IdleMinutes) * time.Minute
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_URL, PANEL_REQUIRED_ROLE, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "panel-llantas"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Backend: BackendConfig{
			URL:            getString(v, "BACKEND_URL", "http://localhost:4000"),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 15),
		},
		Panel: PanelConfig{
			RequiredRole: getString(v, "PANEL_REQUIRED_ROLE", "admin"),
			EntryPath:    getString(v, "PANEL_ENTRY_PATH", "/"),
			OnError:      strings.ToLower(getString(v, "PANEL_GUARD_ON_ERROR", "redirect")),
			Session:      getString(v, "PANEL_SESSION", ""),
		},
		Workspace: WorkspaceConfig{
			IdleMinutes: getInt(v, "WORKSPACE_IDLE_MINUTES", 30),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("BACKEND_URL es obligatorio")
	}
	if c.HTTP.Port <= 0 {
		return fmt.Errorf("HTTP_PORT inválido: %d", c.HTTP.Port)
	}
	if !strings.HasPrefix(c.Panel.EntryPath, "/") {
		return fmt.Errorf("PANEL_ENTRY_PATH debe empezar con /: %q", c.Panel.EntryPath)
	}
	switch c.Panel.OnError {
	case "redirect", "retry":
	default:
		return fmt.Errorf("PANEL_GUARD_ON_ERROR debe ser redirect o retry: %q", c.Panel.OnError)
	}
	if c.Workspace.IdleMinutes <= 0 {
		c.Workspace.IdleMinutes = 30
	}
	return nil
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
