// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure connections to the hotfix-style client data mirror based on the
// application's configuration. MySQL is the production driver; SQLite is
// supported for local files and in-memory testing.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. It is
// agnostic to the mirror's table layout regarding connection establishment,
// but the Schema Inspector relies on knowing the expected schema.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, which is crucial
// for the Schema Integrity Check. It allows retrieving table columns and
// verifying matches against the row models defined in core/dbc.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.Columns(db, "chr_model")
package database
