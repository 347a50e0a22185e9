// Package integrity provides dataset and storage health checks.
//
// Unlike the 'customization' package which answers resolution queries, this
// package verifies that the data the catalog depends on is actually complete:
// the source tables, the exported texture files and the mirror schema.
//
// # Checks Provided
//
//   - Tables: Checks that every customization table can be served by the
//     configured dataset source.
//   - Textures: Verifies that each texture file the published catalog
//     references exists in the storage bucket.
//   - Schema: Validates that the hotfix mirror database schema matches the
//     dataset row models (tables and columns).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/tables : Runs the dataset table check.
//   - GET /integrity/textures : Runs the texture presence check.
//   - GET /integrity/schema : Runs the mirror schema check.
package integrity
