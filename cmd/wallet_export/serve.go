package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"wallet_export/internal/infrastructure/configloader"
	"wallet_export/internal/infrastructure/restapi"
	"wallet_export/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const swaggerSpecPath = "docs/swagger.yaml"

func runServe(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", defaultConfigPath(), "path to the YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := configloader.Load(*configPath)
	if err != nil {
		return err
	}
	zapLogger, err := setupLogging(cfg, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = zapLogger.Sync() }()

	app, err := newApplication(cfg, zapLogger)
	if err != nil {
		return err
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	opts := restapi.RouterOptions{}
	if utils.FileExists(swaggerSpecPath) {
		opts.SwaggerSpecPath = swaggerSpecPath
	}
	router := restapi.SetupRouter(restapi.NewWalletHandler(app.builder, app.appLogger), zapLogger, opts)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zapLogger.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zapLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	zapLogger.Info("Server exiting")
	return nil
}
