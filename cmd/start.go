package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chr-catalog/core/config"
	"chr-catalog/core/database"
	"chr-catalog/core/dbc"
	"chr-catalog/core/loader"
	"chr-catalog/core/logger"
	"chr-catalog/core/middleware/auth"
	"chr-catalog/core/middleware/rayid"
	"chr-catalog/core/storage"

	"chr-catalog/feature/customization"
	"chr-catalog/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "chr-catalog/docs/swagger"
)

// @title Character Customization Catalog API
// @version 1.0
// @description API for resolving character customization texture layers and materials.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog server",
	Long:  `Starts the HTTP server, builds the customization catalog and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Hotfix Mirror (Optional)
		// Only required when the dataset source is the mirror itself; the
		// schema check degrades gracefully without it.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to hotfix mirror database")
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Select Dataset Source
		src, err := newDatasetSource(cfg, store, db)
		if err != nil {
			logg.Fatal("Failed to select dataset source", zap.Error(err))
		}

		// 6. Build Customization Catalog
		// A corrupt dataset snapshot fails startup. Absent tables do not.
		manager := customization.NewManager(src, cfg.Dataset, logg)
		if err := manager.Load(context.Background()); err != nil {
			logg.Fatal("Failed to build customization catalog", zap.Error(err))
		}

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 8. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		custFeature := customization.NewFeature(manager, logg)
		mgr.Register(custFeature)
		mgr.Register(integrity.NewFeature(src, store, cfg.Storage.Bucket, logg, db, custFeature.Service()))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 9. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("source", src.Name()),
				zap.Bool("catalog", manager.Available()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 11. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// newDatasetSource builds the configured dataset source. The database kind
// needs a working mirror connection, the storage kind only the bucket.
func newDatasetSource(cfg *config.Config, store storage.Client, db *gorm.DB) (dbc.Source, error) {
	if !cfg.Dataset.IsValidSource() {
		return nil, fmt.Errorf("invalid dataset source %q", cfg.Dataset.Source)
	}

	switch cfg.Dataset.Source {
	case dbc.SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("dataset source %q requires a database connection", dbc.SourceDatabase)
		}
		return dbc.NewDatabaseSource(db), nil
	default:
		return dbc.NewStorageSource(store, cfg.Storage.Bucket, cfg.Dataset.Prefix), nil
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
