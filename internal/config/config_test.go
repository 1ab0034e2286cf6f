package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func validEnv() map[string]string {
	return map[string]string{
		"DB_USER":     "app",
		"DB_PASSWORD": "secret",
		"DB_NAME":     "tasks",
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(envFrom(validEnv()))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Zero(t, cfg.DB.MaxConns)
}

func TestLoadFrom_Overrides(t *testing.T) {
	env := validEnv()
	env["PORT"] = "8081"
	env["DB_HOST"] = "localhost"
	env["DB_PORT"] = "15432"
	env["DB_MAX_CONNS"] = "8"
	env["LOG_LEVEL"] = "debug"
	env["SHUTDOWN_TIMEOUT"] = "3s"

	cfg, err := LoadFrom(envFrom(env))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 15432, cfg.DB.Port)
	assert.Equal(t, int32(8), cfg.DB.MaxConns)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFrom_Problems(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want []string
	}{
		{
			name: "all credentials missing",
			env:  map[string]string{},
			want: []string{"missing environment variables: DB_USER, DB_PASSWORD, DB_NAME"},
		},
		{
			name: "one credential missing",
			env:  map[string]string{"DB_USER": "app", "DB_NAME": "tasks"},
			want: []string{"missing environment variables: DB_PASSWORD"},
		},
		{
			name: "non-numeric port",
			env:  merge(validEnv(), map[string]string{"PORT": "abc"}),
			want: []string{"PORT must be a positive integer"},
		},
		{
			name: "zero db port",
			env:  merge(validEnv(), map[string]string{"DB_PORT": "0"}),
			want: []string{"DB_PORT must be a positive integer"},
		},
		{
			name: "negative port",
			env:  merge(validEnv(), map[string]string{"PORT": "-1"}),
			want: []string{"PORT must be a positive integer"},
		},
		{
			name: "fractional port",
			env:  merge(validEnv(), map[string]string{"PORT": "80.5"}),
			want: []string{"PORT must be a positive integer"},
		},
		{
			name: "bad max conns",
			env:  merge(validEnv(), map[string]string{"DB_MAX_CONNS": "zero"}),
			want: []string{"DB_MAX_CONNS must be a positive integer"},
		},
		{
			name: "bad shutdown timeout",
			env:  merge(validEnv(), map[string]string{"SHUTDOWN_TIMEOUT": "-5s"}),
			want: []string{"SHUTDOWN_TIMEOUT must be a positive duration"},
		},
		{
			name: "everything wrong at once",
			env:  map[string]string{"PORT": "x", "DB_PORT": "y"},
			want: []string{
				"missing environment variables: DB_USER, DB_PASSWORD, DB_NAME",
				"DB_PORT must be a positive integer",
				"PORT must be a positive integer",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(envFrom(tt.env))
			require.Error(t, err)

			var problems Problems
			require.ErrorAs(t, err, &problems)
			assert.Equal(t, tt.want, []string(problems))
		})
	}
}

func TestLoadFrom_BadLogLevel(t *testing.T) {
	env := validEnv()
	env["LOG_LEVEL"] = "loud"

	_, err := LoadFrom(envFrom(env))

	var problems Problems
	require.ErrorAs(t, err, &problems)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "LOG_LEVEL")
}

func TestDBConfig_URL(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", Name: "tasks"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/tasks", c.URL())

	c.SSLMode = "disable"
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/tasks?sslmode=disable", c.URL())
}

func merge(base, extra map[string]string) map[string]string {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
