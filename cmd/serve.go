package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"skin-catalog/core/catalog"
	"skin-catalog/core/loader"
	"skin-catalog/core/logger"
	"skin-catalog/core/middleware/auth"
	"skin-catalog/core/middleware/rayid"
	"skin-catalog/core/reconcile"
	"skin-catalog/feature/skins"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the skin catalog HTTP API",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logg, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logg.Sync() }()

	if !cfg.Server.IsValidSource() {
		return fmt.Errorf("invalid server catalog source %q", cfg.Server.CatalogSource)
	}

	src, err := catalogSource(cfg, cfg.Server.CatalogSource)
	if err != nil {
		return err
	}
	tbl, err := loadTables(cfg, logg)
	if err != nil {
		return err
	}
	cache := catalog.NewCache(src, cfg.Server.CacheTTL)
	engine := reconcile.NewEngine(tbl, logg)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager(logg)
	mgr.Register(skins.NewFeature(cache, engine, logg))

	// RayID first so everything after it is traceable.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	if cfg.Server.ApiKey == "" {
		logg.Warn("SERVER_API_KEY is empty, the API is unauthenticated")
	}
	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server",
			zap.String("port", cfg.Server.Port),
			zap.String("catalog_source", cfg.Server.CatalogSource),
		)
		errCh <- app.Listen(":" + cfg.Server.Port)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-sig:
	}

	logg.Info("Shutting down server...")
	return app.Shutdown()
}
