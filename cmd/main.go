package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bandgap_lab/internal/handlers"
	"bandgap_lab/internal/logger"
	"bandgap_lab/internal/repository"
	"bandgap_lab/internal/repository/db"
	"bandgap_lab/internal/server"
	"bandgap_lab/internal/service"

	"github.com/spf13/viper"
)

const (
	shutdownTimeout = 10 * time.Second

	storeDriverMemory = "memory"
	storeDriverSQLite = "sqlite"
)

// config mirrors configs/config.yml.
type config struct {
	Port              string
	LogLevel          string
	StoreDriver       string
	SQLitePath        string
	ImagesDir         string
	LegacyStatusCodes bool
}

func main() {
	cfg, cfgErr := loadConfig()

	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	repos, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatalw("failed to init reading store", "driver", cfg.StoreDriver, "err", err)
	}
	defer closeStore()

	// wire dependencies
	services := service.NewService(repos)
	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		ImagesDir:         cfg.ImagesDir,
		LegacyStatusCodes: cfg.LegacyStatusCodes,
	})

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, log)
}

// loadConfig reads configs/config.yml (or $BANDGAP_CONFIG_DIR/config.yml).
// A missing file is fine; defaults and BANDGAP_* env vars still apply.
func loadConfig() (config, error) {
	viper.SetDefault("port", server.DefaultPort)
	viper.SetDefault("log_level", logger.InfoLevel)
	viper.SetDefault("store.driver", storeDriverMemory)
	viper.SetDefault("store.sqlite_path", db.MemoryPath)
	viper.SetDefault("web.images_dir", "static/images")
	viper.SetDefault("api.legacy_status_codes", false)

	viper.SetEnvPrefix("BANDGAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	dir := os.Getenv("BANDGAP_CONFIG_DIR")
	if dir == "" {
		dir = "configs"
	}
	viper.AddConfigPath(dir)
	viper.SetConfigName("config")

	var readErr error
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			readErr = err
		}
	}

	return config{
		Port:              viper.GetString("port"),
		LogLevel:          viper.GetString("log_level"),
		StoreDriver:       strings.ToLower(strings.TrimSpace(viper.GetString("store.driver"))),
		SQLitePath:        viper.GetString("store.sqlite_path"),
		ImagesDir:         viper.GetString("web.images_dir"),
		LegacyStatusCodes: viper.GetBool("api.legacy_status_codes"),
	}, readErr
}

// openStore builds the reading repository for the configured driver.
func openStore(cfg config, log *logger.Logger) (*repository.Repository, func(), error) {
	switch cfg.StoreDriver {
	case "", storeDriverMemory:
		log.Infow("reading store ready", "driver", storeDriverMemory)
		return repository.NewMemoryRepository(), func() {}, nil
	case storeDriverSQLite:
		conn, err := openDB(cfg.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if cerr := conn.Close(); cerr != nil {
				log.Errorw("failed to close sqlite", "err", cerr)
			}
		}
		return repository.NewRepository(conn), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown store.driver %q (want %s or %s)", cfg.StoreDriver, storeDriverMemory, storeDriverSQLite)
	}
}

func openDB(path string, log *logger.Logger) (*sql.DB, error) {
	if path == "" {
		log.Infow("store.sqlite_path not set; using in-memory database", "default", db.MemoryPath)
		path = db.MemoryPath
	}
	log.Infow("reading store ready", "driver", storeDriverSQLite, "path", path)
	return db.InitDB(path)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("starting server", "addr", server.NormalizeAddr(port))
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
