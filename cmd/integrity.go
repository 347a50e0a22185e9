package cmd

import (
	"context"
	"fmt"
	"os"

	"chr-catalog/core/config"
	"chr-catalog/core/database"
	"chr-catalog/core/logger"
	"chr-catalog/core/storage"
	"chr-catalog/feature/customization"
	"chr-catalog/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the dataset and storage",
	Long:  `Checks if the dataset tables, texture files and hotfix mirror schema match what the customization catalog needs.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), false, false, false)
	},
}

// tablesCmd represents the integrity tables command
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Check dataset table presence",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// texturesCmd represents the integrity textures command
var texturesCmd = &cobra.Command{
	Use:   "textures",
	Short: "Check texture files referenced by the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check integrity of the hotfix mirror schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(tablesCmd, texturesCmd, schemaCmd)
}

func runIntegrityChecks(ctx context.Context, onlyTables, onlyTextures, onlySchema bool) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	// Create Storage Client
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	// Connect to Hotfix Mirror (Optional)
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	// Select Dataset Source
	src, err := newDatasetSource(cfg, store, db)
	if err != nil {
		logg.Fatal("Failed to select dataset source", zap.Error(err))
	}

	// The texture check compares against the published catalog, so the
	// catalog must be built even for a one-shot CLI run.
	manager := customization.NewManager(src, cfg.Dataset, logg)
	if err := manager.Load(ctx); err != nil {
		logg.Fatal("Failed to build customization catalog", zap.Error(err))
	}

	svc := integrity.NewService(src, store, cfg.Storage.Bucket, logg, db, customization.NewService(manager))
	runTables := onlyTables || (!onlyTextures && !onlySchema)
	runTextures := onlyTextures || (!onlyTables && !onlySchema)
	runSchema := onlySchema || (!onlyTables && !onlyTextures)

	// Run Checks

	if runTables {
		logg.Info("Checking dataset tables...")
		missing, err := svc.CheckTables(ctx)
		if err != nil {
			logg.Fatal("Table check failed", zap.Error(err))
		}

		if len(missing) == 0 {
			logg.Info("Dataset tables are present.")
		} else {
			logg.Warn("Missing dataset tables detected", zap.Strings("missing", missing))
		}
	}

	if runTextures {
		logg.Info("Checking texture files (this might take a while)...")
		report, err := svc.CheckTextures(ctx)
		if err != nil {
			logg.Fatal("Texture check failed", zap.Error(err))
		}

		if len(report.Missing) == 0 {
			logg.Info("Texture files are present.",
				zap.Int("expected", report.TotalExpected),
				zap.Int64("duration_ms", report.DurationMs))
		} else {
			logg.Warn("Missing texture files detected",
				zap.Int("expected", report.TotalExpected),
				zap.Int("found", report.TotalFound),
				zap.Ints("missing", report.Missing))
		}
	}

	if runSchema {
		logg.Info("Checking hotfix mirror schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Mirror schema check failed", zap.Error(err))
		} else {
			if report.Matched {
				logg.Info("Mirror schema matches the dataset row models.")
			} else {
				logg.Warn("Mirror schema mismatches found")
				for table, tblReport := range report.Tables {
					if tblReport.Status == "missing" {
						logg.Warn("Missing Table", zap.String("table", table))
					} else if len(tblReport.MissingColumns) > 0 {
						logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
					}
				}
				for _, e := range report.Errors {
					logg.Error("Inspection Error", zap.String("error", e))
				}
			}
		}
	}
}
