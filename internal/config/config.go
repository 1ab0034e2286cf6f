package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	Port            int
	DB              DBConfig
	LogLevel        zapcore.Level
	ShutdownTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

// URL собирает строку подключения для pgxpool.ParseConfig
func (c DBConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.SSLMode}}.Encode()
	}
	return u.String()
}

// Problems - все отсутствующие или некорректные настройки сразу
type Problems []string

func (p Problems) Error() string {
	return "invalid configuration: " + strings.Join(p, "; ")
}

func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom читает настройки через getenv и проверяет их целиком,
// решение о завершении процесса остается за вызывающим
func LoadFrom(getenv func(string) string) (Config, error) {
	var problems Problems

	cfg := Config{
		DB: DBConfig{
			Host:     getEnv(getenv, "DB_HOST", "db"),
			User:     getenv("DB_USER"),
			Password: getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME"),
			SSLMode:  getenv("DB_SSLMODE"),
		},
	}

	var missing []string
	for _, kv := range []struct{ key, val string }{
		{"DB_USER", cfg.DB.User},
		{"DB_PASSWORD", cfg.DB.Password},
		{"DB_NAME", cfg.DB.Name},
	} {
		if kv.val == "" {
			missing = append(missing, kv.key)
		}
	}
	if len(missing) > 0 {
		problems = append(problems, "missing environment variables: "+strings.Join(missing, ", "))
	}

	var err error
	if cfg.DB.Port, err = positiveInt(getenv, "DB_PORT", 5432); err != nil {
		problems = append(problems, err.Error())
	}
	if cfg.Port, err = positiveInt(getenv, "PORT", 3000); err != nil {
		problems = append(problems, err.Error())
	}
	if getenv("DB_MAX_CONNS") != "" {
		n, err := positiveInt(getenv, "DB_MAX_CONNS", 0)
		if err != nil {
			problems = append(problems, err.Error())
		}
		cfg.DB.MaxConns = int32(n)
	}

	if cfg.LogLevel, err = zapcore.ParseLevel(getEnv(getenv, "LOG_LEVEL", "info")); err != nil {
		problems = append(problems, "LOG_LEVEL: "+err.Error())
	}

	cfg.ShutdownTimeout = 10 * time.Second
	if raw := getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			problems = append(problems, "SHUTDOWN_TIMEOUT must be a positive duration")
		} else {
			cfg.ShutdownTimeout = d
		}
	}

	if len(problems) > 0 {
		return Config{}, problems
	}
	return cfg, nil
}

func positiveInt(getenv func(string) string, key string, def int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 || n > 1<<31-1 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return n, nil
}

func getEnv(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
