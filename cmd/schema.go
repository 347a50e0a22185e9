package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chr-catalog/core/dbc"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

var schemaOutDir string

// datasetSchemaCmd represents the schema command
var datasetSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON Schemas for the dataset table exports",
	Long: `Generates one JSON Schema per dataset table, describing the row format
expected from the table exports in the storage bucket. The schemas can be used
to validate an export pipeline before pointing the service at a new build.`,
	RunE: runDatasetSchemas,
}

func init() {
	datasetSchemaCmd.Flags().StringVar(&schemaOutDir, "out", "schemas", "Output directory for the generated schemas")
	RootCmd.AddCommand(datasetSchemaCmd)
}

func runDatasetSchemas(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(schemaOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}

	for _, table := range dbc.AllTables() {
		proto, ok := dbc.Prototype(table)
		if !ok {
			continue
		}

		schema := reflector.Reflect(proto)
		schema.Title = table
		schema.Description = fmt.Sprintf("Row format of the %s dataset table export.", table)

		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schema for %s: %w", table, err)
		}

		dbName, _ := dbc.DBTableName(table)
		name := filepath.Join(schemaOutDir, dbName+".schema.json")
		if err := os.WriteFile(name, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write schema for %s: %w", table, err)
		}
		fmt.Printf("Wrote %s\n", name)
	}

	return nil
}
