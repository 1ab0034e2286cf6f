package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-list-api/internal/config"
	"github.com/BuzzLyutic/task-list-api/internal/handler"
	"github.com/BuzzLyutic/task-list-api/internal/repo"
	"github.com/BuzzLyutic/task-list-api/internal/service"
)

func main() {
	// Загрузка конфигурации - до открытия порта
	cfg, err := config.Load()
	if err != nil {
		bootLogger, _ := zap.NewProduction()
		var problems config.Problems
		if errors.As(err, &problems) {
			bootLogger.Error("Invalid configuration", zap.Strings("problems", problems))
		} else {
			bootLogger.Error("Invalid configuration", zap.Error(err))
		}
		_ = bootLogger.Sync()
		os.Exit(1)
	}

	// Подключаем логгер
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("Service stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	return zcfg.Build()
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Подключаем БД
	startCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := repo.NewPool(startCtx, cfg.DB)
	if err != nil {
		return err
	}
	// Пул закрывается только после остановки сервера
	defer func() {
		pool.Close()
		logger.Info("Database pool closed")
	}()
	logger.Info("Successfully connected to the Database!",
		zap.String("host", cfg.DB.Host),
		zap.Int("port", cfg.DB.Port),
		zap.String("database", cfg.DB.Name),
	)

	if err := repo.EnsureSchema(startCtx, pool); err != nil {
		return err
	}
	logger.Info("Table tasks is ready")

	taskRepo := repo.NewTaskRepo(pool)
	taskService := service.NewTaskService(taskRepo)
	taskHandler := handler.NewTaskHandler(taskService, logger)

	srv := &http.Server{ // Создаем сервер
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      handler.NewRouter(taskHandler, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() { // Запуск сервера и обработка ошибок
		logger.Info("Server started", zap.String("addr", srv.Addr),
			zap.Strings("endpoints", []string{"GET /health", "GET /tasks", "POST /tasks", "PUT /tasks/{id}", "DELETE /tasks/{id}"}),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown
	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server stopped successfully!")
	return nil
}
