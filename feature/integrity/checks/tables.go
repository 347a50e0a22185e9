package checks

import (
	"context"
	"fmt"

	"chr-catalog/core/dbc"
)

// CheckTables returns the dataset tables the source cannot serve. Every
// customization table is required; a populated result means the catalog
// cannot be built from this source.
func CheckTables(ctx context.Context, src dbc.Source) ([]string, error) {
	var missing []string

	for _, table := range dbc.AllTables() {
		ok, err := src.HasTable(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to probe table %s: %w", table, err)
		}
		if !ok {
			missing = append(missing, table)
		}
	}

	return missing, nil
}
