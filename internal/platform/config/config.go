package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa la configuración del proceso. Se construye una vez en main.
type Config struct {
	Addr string

	// TrainerID es el único principal autorizado a agregar inventario.
	TrainerID string

	DBDSN string

	RedisURL     string
	RedisChannel string

	// JWTSigningKey vacío = modo dev (X-Debug-User-ID).
	JWTSigningKey string

	LogLevel  string
	LogFormat string
	AppName   string

	RateLimitRPS   float64
	RateLimitBurst int

	ShutdownTimeout time.Duration
}

// FromEnv carga .env si existe (no es obligatorio) y lee las variables.
func FromEnv() Config {
	_ = godotenv.Load()
	return fromLookup(os.Getenv)
}

func fromLookup(get func(string) string) Config {
	addr := strings.TrimSpace(get("ADDR"))
	if addr == "" {
		addr = ":8080"
		if port := strings.TrimSpace(get("PORT")); port != "" {
			addr = ":" + port
		}
	}

	return Config{
		Addr:            addr,
		TrainerID:       withDefault(get("TRAINER_ID"), "trainer"),
		DBDSN:           strings.TrimSpace(get("DB_DSN")),
		RedisURL:        strings.TrimSpace(get("REDIS_URL")),
		RedisChannel:    withDefault(get("REDIS_CHANNEL"), "zoo.notifications"),
		JWTSigningKey:   strings.TrimSpace(get("JWT_SIGNING_KEY")),
		LogLevel:        get("LOG_LEVEL"),
		LogFormat:       get("LOG_FORMAT"),
		AppName:         withDefault(get("APP_NAME"), "animal-zoo"),
		RateLimitRPS:    parseFloat(get("RATE_LIMIT_RPS"), 5),
		RateLimitBurst:  parseInt(get("RATE_LIMIT_BURST"), 10),
		ShutdownTimeout: parseDuration(get("SHUTDOWN_TIMEOUT"), 10*time.Second),
	}
}

func withDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f < 0 {
		return def
	}
	return f
}

func parseInt(v string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return def
	}
	return n
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
