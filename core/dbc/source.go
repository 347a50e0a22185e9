package dbc

import "context"

// Source provides read access to the dataset tables of one game build.
//
// Implementations must return full table contents in a deterministic order
// and must not retain references to out after Load returns.
type Source interface {
	// Name identifies the source kind (storage, database).
	Name() string
	// HasTable reports whether the given table exists in the dataset.
	// A missing table is not an error.
	HasTable(ctx context.Context, table string) (bool, error)
	// Load reads every row of the given table into out, which must be a
	// pointer to the row slice type registered for that table.
	Load(ctx context.Context, table string, out any) error
}
