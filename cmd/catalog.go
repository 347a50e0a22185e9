package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chr-catalog/core/config"
	"chr-catalog/core/database"
	"chr-catalog/core/logger"
	"chr-catalog/core/storage"
	"chr-catalog/feature/customization"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Build the customization catalog and print its statistics",
	Long:  `Builds the customization catalog from the configured dataset source and prints build information and index sizes.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCatalogStats(cmd.Context())
	},
}

// meshDetailCmd represents the top-level mesh command
var meshDetailCmd = &cobra.Command{
	Use:   "mesh [fileDataID]",
	Short: "View catalog knowledge about a character mesh",
	Long:  `Shows whether a mesh file is customizable, which model and texture layout it belongs to, and its customization options and display variants.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileDataID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid mesh file id %q", args[0])
		}
		runMeshDetail(cmd.Context(), fileDataID)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	RootCmd.AddCommand(meshDetailCmd)
}

// setupCatalog bootstraps the customization manager for one-shot commands.
func setupCatalog(ctx context.Context) (*customization.Manager, *zap.Logger) {
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

	src, err := newDatasetSource(cfg, store, db)
	if err != nil {
		logg.Fatal("Failed to select dataset source", zap.Error(err))
	}

	manager := customization.NewManager(src, cfg.Dataset, logg)
	if err := manager.Load(ctx); err != nil {
		logg.Fatal("Failed to build customization catalog", zap.Error(err))
	}

	return manager, logg
}

func runCatalogStats(ctx context.Context) {
	manager, logg := setupCatalog(ctx)

	catalog := manager.Catalog()
	if catalog == nil {
		logg.Warn("Customization catalog is not available",
			zap.Bool("enabled", manager.Enabled()),
			zap.String("source", manager.SourceName()))
		return
	}

	stats := catalog.Stats()

	// Pretty Console Output
	fmt.Println("\n--- Customization Catalog ---")
	fmt.Printf("Source:         %s\n", catalog.Source())
	if catalog.Build() != "" {
		fmt.Printf("Build:          %s\n", catalog.Build())
	}
	fmt.Printf("Built At:       %s\n", catalog.BuiltAt().Format("2006-01-02 15:04:05 MST"))
	fmt.Println("-----------------------------")
	fmt.Printf("Models:         %d\n", stats.Models)
	fmt.Printf("Meshes:         %d\n", stats.Meshes)
	fmt.Printf("Displays:       %d\n", stats.Displays)
	fmt.Printf("Options:        %d\n", stats.Options)
	fmt.Printf("Choices:        %d\n", stats.Choices)
	fmt.Printf("Geoset Keys:    %d\n", stats.GeosetKeys)
	fmt.Printf("Materials:      %d\n", stats.Materials)
	fmt.Printf("Layouts:        %d\n", stats.Layouts)
	fmt.Printf("Sections:       %d\n", stats.Sections)
	fmt.Printf("Texture Files:  %d\n", stats.TextureFiles)
	fmt.Println("-----------------------------")
}

func runMeshDetail(ctx context.Context, fileDataID int) {
	manager, logg := setupCatalog(ctx)
	svc := customization.NewService(manager)

	logg.Info("Looking up mesh...", zap.Int("file_data_id", fileDataID))
	mesh, err := svc.Mesh(fileDataID)
	if err != nil {
		logg.Fatal("Mesh lookup failed", zap.Error(err))
	}

	// Pretty Console Output
	fmt.Println("\n--- Mesh Detail View ---")
	fmt.Printf("File Data ID:   %d\n", mesh.FileDataID)
	fmt.Printf("Customizable:   %v\n", mesh.Customizable)
	if mesh.Customizable {
		fmt.Printf("Model ID:       %d\n", mesh.ModelID)
		fmt.Printf("Layout ID:      %d\n", mesh.LayoutID)
	}
	fmt.Println("------------------------")

	if mesh.Customizable {
		options, err := svc.Options(mesh.ModelID)
		if err == nil && len(options) > 0 {
			fmt.Println("Options:")
			for _, opt := range options {
				fmt.Printf("- [%d] %s\n", opt.ID, opt.Name)
			}
		}
	}

	if len(mesh.Displays) > 0 {
		fmt.Println("Displays:")
		for _, d := range mesh.Displays {
			line := fmt.Sprintf("- [%d] textures %v", d.DisplayID, d.TextureFileIDs)
			if len(d.ExtraGeosets) > 0 {
				geosets := make([]string, 0, len(d.ExtraGeosets))
				for _, g := range d.ExtraGeosets {
					geosets = append(geosets, strconv.Itoa(g))
				}
				line += fmt.Sprintf(" geosets %s", strings.Join(geosets, ","))
			}
			fmt.Println(line)
		}
	}
	fmt.Println("------------------------")
}
