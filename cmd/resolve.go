package cmd

import (
	"fmt"
	"strconv"

	"chr-catalog/core/utils"
	"chr-catalog/feature/customization"
	"chr-catalog/feature/customization/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var selectionsFlag string

// resolveCmd is the parent command for all resolve operations.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve texture layers and materials for a character mesh",
	Long: `Resolve the compositing stack of a customization choice against the
catalog, either as positioned skin layers or as a single selected material.`,
}

// layersResolveCmd resolves the skin layer stack of one choice.
var layersResolveCmd = &cobra.Command{
	Use:   "layers [meshFileID] [choiceID]",
	Short: "Resolve positioned skin layers for a mesh and choice",
	Args:  cobra.ExactArgs(2),
	RunE:  runResolveLayers,
}

// textureResolveCmd resolves the choice texture with selection disambiguation.
var textureResolveCmd = &cobra.Command{
	Use:   "texture [meshFileID] [choiceID]",
	Short: "Resolve the texture of a choice against the active selections",
	Long: `Resolves the texture of a customization choice. When the choice carries
multiple material candidates, the --selections list disambiguates by related
choice; without a match the first candidate is used as fallback.

Examples:
  # Resolve with no other selections active
  resolve texture 1000 45

  # Resolve against the active selections of a character
  resolve texture 1000 45 --selections 42,48`,
	Args: cobra.ExactArgs(2),
	RunE: runResolveTexture,
}

func init() {
	resolveCmd.AddCommand(layersResolveCmd, textureResolveCmd)
	textureResolveCmd.Flags().StringVar(&selectionsFlag, "selections", "", "Comma-separated choice IDs active on the character")
	RootCmd.AddCommand(resolveCmd)
}

func parseResolveArgs(args []string) (int, int, error) {
	meshFileID, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid mesh file id %q", args[0])
	}
	choiceID, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid choice id %q", args[1])
	}
	return meshFileID, choiceID, nil
}

func runResolveLayers(cmd *cobra.Command, args []string) error {
	meshFileID, choiceID, err := parseResolveArgs(args)
	if err != nil {
		return err
	}

	manager, logg := setupCatalog(cmd.Context())
	svc := customization.NewService(manager)

	layers, err := svc.SkinLayers(meshFileID, choiceID)
	if err != nil {
		logg.Fatal("Layer resolution failed", zap.Error(err))
	}

	// Pretty Console Output
	fmt.Println("\n--- Skin Layers ---")
	fmt.Printf("Mesh:           %d\n", meshFileID)
	fmt.Printf("Choice:         %d\n", choiceID)
	fmt.Println("-------------------")
	if len(layers) == 0 {
		fmt.Println("No layers resolved for this choice.")
	}
	for _, l := range layers {
		section := strconv.Itoa(l.SectionType)
		if l.SectionType == models.SectionMaskAll {
			section = "atlas"
		}
		fmt.Printf("layer %d section %-5s type %-3d file %-8d rect %d,%d %dx%d\n",
			l.Layer, section, l.TextureType, l.FileDataID, l.X, l.Y, l.Width, l.Height)
	}
	fmt.Println("-------------------")
	return nil
}

func runResolveTexture(cmd *cobra.Command, args []string) error {
	meshFileID, choiceID, err := parseResolveArgs(args)
	if err != nil {
		return err
	}

	selections, err := utils.ParseIDList(selectionsFlag)
	if err != nil {
		return fmt.Errorf("invalid --selections list: %w", err)
	}

	manager, logg := setupCatalog(cmd.Context())
	svc := customization.NewService(manager)

	texture, err := svc.ResolveTexture(meshFileID, choiceID, selections)
	if err != nil {
		logg.Fatal("Texture resolution failed", zap.Error(err))
	}

	// Pretty Console Output
	fmt.Println("\n--- Choice Texture ---")
	fmt.Printf("Mesh:           %d\n", meshFileID)
	fmt.Printf("Choice:         %d\n", choiceID)
	fmt.Printf("Selections:     %v\n", selections)
	fmt.Println("----------------------")
	fmt.Printf("Texture Type:   %d\n", texture.TextureType)
	fmt.Printf("File Data ID:   %d\n", texture.FileDataID)
	fmt.Printf("Section Mask:   %d\n", texture.SectionMask)

	fallbackColor := "\033[32m" // Green
	if texture.Fallback {
		fallbackColor = "\033[33m" // Yellow
	}
	resetColor := "\033[0m"
	fmt.Printf("Fallback:       %s%v%s\n", fallbackColor, texture.Fallback, resetColor)
	fmt.Println("----------------------")
	return nil
}
