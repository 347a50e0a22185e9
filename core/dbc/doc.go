// Package dbc provides typed read access to client database (DBC/DB2) table
// dumps, the relational game data the catalog is built from.
//
// # Tables
//
// The package defines a canonical row struct per table (ChrModel,
// ChrCustomizationOption, TextureFileData, ...) plus a registry mapping table
// names to row types and hotfix mirror table names. AllTables lists the
// tables in canonical load order.
//
// # Sources
//
// Two Source implementations exist:
//
//   - StorageSource reads JSON exports (<prefix>/<Table>.json) from an object
//     storage bucket. This is the default for production datasets.
//   - DatabaseSource reads a hotfix-style MySQL mirror where table and column
//     names are snake_cased and array columns are flattened with 1-based
//     suffixes. Flattened rows are normalized back into canonical rows.
//
// Both sources return rows ordered by primary key, so downstream index
// builders behave identically regardless of the source kind.
//
// # Usage
//
//	src := dbc.NewStorageSource(client, "gamedata", "dbc")
//	var options []dbc.ChrCustomizationOption
//	err := src.Load(ctx, dbc.TableChrCustomizationOption, &options)
package dbc
