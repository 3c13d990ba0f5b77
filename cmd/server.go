package cmd

import (
	"bodylover-backend/config"
	"bodylover-backend/internal/api"
	"bodylover-backend/internal/database"
	"bodylover-backend/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := initLogger(cfg); err != nil {
			return err
		}
		defer logger.Sync()

		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		switch cfg.DBDriver {
		case "postgres":
			err = database.RunMigrations(db)
		default:
			err = database.AutoMigrate(db)
		}
		if err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		if cfg.RedisEnabled() {
			if err := database.ConnectRedis(cfg); err != nil {
				return fmt.Errorf("failed to connect to redis: %w", err)
			}
			defer database.RedisClient.Close()
		} else {
			logger.Log.Warn("REDIS_HOST not set, running without user cache and token denylist")
		}

		srv := &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: api.NewRouter(cfg),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Log.Info("Server starting",
				zap.String("addr", srv.Addr),
				zap.String("db_driver", cfg.DBDriver),
				zap.Bool("auth_required", cfg.AuthRequired),
			)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)
		case <-ctx.Done():
		}

		logger.Log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func initLogger(cfg *config.Config) error {
	return logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Database connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}
