package services

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	beego "github.com/beego/beego/v2/server/web"
)

// Config centraliza la configuración del MID y del gateway REST.
type Config struct {
	AppName  string
	HTTPPort int
	RunMode  string

	GatewayBaseURL    string
	GatewayPathPrefix string
	GatewayToken      string
	RequestTimeout    time.Duration
	GatewayRPS        float64
	GatewayBurst      int

	ReferenceRetries int
	ReferenceBackoff time.Duration

	TimezoneOffsetHours int
	DefaultPageSize     int

	WaterCheckEnabled bool
	WaterCheckSpec    string

	AnnotationsAdapter string
	AnnotationsConfig  string

	OrganizationID string
	LogoPath       string
}

var (
	cfg  Config
	once sync.Once
)

// GetConfig devuelve la configuración cargada desde variables de entorno o app.conf.
func GetConfig() Config {
	once.Do(func() {
		cfg = LoadConfig()
		if cfg.GatewayBaseURL == "" {
			panic("GATEWAY_BASE_URL no configurado")
		}
	})
	return cfg
}

// LoadConfig lee la configuración sin cachearla ni validarla.
func LoadConfig() Config {
	return Config{
		AppName:             getString("APP_NAME", "appname", "agua_mid"),
		HTTPPort:            getInt("HTTP_PORT", "httpport", 8080),
		RunMode:             getString("RUN_MODE", "runmode", "dev"),
		GatewayBaseURL:      normalizeBase(getString("GATEWAY_BASE_URL", "gateway_base_url", "")),
		GatewayPathPrefix:   normalizePrefix(getString("GATEWAY_PATH_PREFIX", "gateway_path_prefix", "/internal")),
		GatewayToken:        getString("GATEWAY_BEARER_TOKEN", "gateway_bearer_token", ""),
		RequestTimeout:      time.Duration(getInt("REQUEST_TIMEOUT_MS", "request_timeout_ms", 10000)) * time.Millisecond,
		GatewayRPS:          getFloat("GATEWAY_RPS", "gateway_rps", 20),
		GatewayBurst:        getInt("GATEWAY_BURST", "gateway_burst", 10),
		ReferenceRetries:    getInt("REFERENCE_RETRIES", "reference_retries", 2),
		ReferenceBackoff:    time.Duration(getInt("REFERENCE_BACKOFF_MS", "reference_backoff_ms", 1000)) * time.Millisecond,
		TimezoneOffsetHours: getInt("TZ_OFFSET_HOURS", "tz_offset_hours", -5),
		DefaultPageSize:     getInt("DEFAULT_PAGE_SIZE", "default_page_size", 10),
		WaterCheckEnabled:   getBool("WATER_CHECK_ENABLED", "water_check_enabled", false),
		WaterCheckSpec:      getString("WATER_CHECK_SPEC", "water_check_spec", "0/30 * * * * *"),
		AnnotationsAdapter:  getString("ANNOTATIONS_ADAPTER", "annotations_adapter", "file"),
		AnnotationsConfig:   getString("ANNOTATIONS_CONFIG", "annotations_config", `{"CachePath":"./data/anotaciones","FileSuffix":".cache","DirectoryLevel":"1","EmbedExpiry":"0"}`),
		OrganizationID:      getString("ORGANIZATION_ID", "organization_id", ""),
		LogoPath:            getString("REPORT_LOGO_PATH", "report_logo_path", ""),
	}
}

func getString(envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if val, err := beego.AppConfig.String(confKey); err == nil && strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func getInt(envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Int(confKey); err == nil {
		return val
	}
	return def
}

func getFloat(envKey, confKey string, def float64) float64 {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Float(confKey); err == nil {
		return val
	}
	return def
}

func getBool(envKey, confKey string, def bool) bool {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Bool(confKey); err == nil {
		return val
	}
	return def
}

func normalizeBase(value string) string {
	return strings.TrimSuffix(strings.TrimSpace(value), "/")
}

func normalizePrefix(value string) string {
	trimmed := strings.Trim(strings.TrimSpace(value), "/")
	if trimmed == "" {
		return ""
	}
	return "/" + trimmed
}

// BuildURL compone una URL asegurando que no haya dobles slashes.
func BuildURL(base string, elems ...string) string {
	trimmed := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		if e = strings.Trim(e, "/"); e == "" {
			continue
		}
		trimmed += "/" + e
	}
	return trimmed
}
