package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop/cmd"
	httpin "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres"
	"shop/internal/core/application/seed"
	"shop/internal/pkg/errs"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	gormDB, err := postgres.Open(configs.DSN(), logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	if err = prepareDatabase(app, configs, gormDB, logger); err != nil {
		logger.Error("failed to prepare database", slog.Any("error", err))
		os.Exit(1)
	}

	if err = startWebServer(app, configs.HTTPPort, logger); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

func prepareDatabase(app cmd.CompositionRoot, configs cmd.Config, gormDB *gorm.DB, logger *slog.Logger) error {
	if configs.DBAutoMigrate {
		if err := postgres.AutoMigrate(gormDB); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		logger.Info("schema migrated")
	}

	if configs.SeedDemoData {
		demo, err := seed.LoadDemo(context.Background(), app.UnitOfWorkFactory(), time.Now())
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			logger.Info("demo data already present")
			return nil
		}
		if err != nil {
			return fmt.Errorf("load demo data: %w", err)
		}
		logger.Info("demo data loaded",
			slog.Int("members", len(demo.Members)),
			slog.Int("items", len(demo.Items)),
			slog.Int("orders", len(demo.Orders)),
		)
	}

	return nil
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := httpin.NewRouter(app.CreateHTTPServer(), httpin.NewMetrics(logger), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting shop service", slog.String("port", port))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
