// Package customization implements the character customization catalog.
//
// It builds an immutable index over the customization tables of a dataset
// snapshot (models, options, choices, elements, materials, texture layers,
// atlas sections and texture files) and answers resolution queries against
// it:
//  1. Which texture layers a choice paints onto a mesh's composite texture.
//  2. Which single texture a choice applies given the caller's other
//     current selections.
//  3. Which geoset key a choice toggles on the mesh.
//
// # Catalog Lifecycle
//
// The Manager builds the catalog once at startup and republishes it on
// demand. Builds are deduplicated through singleflight and the catalog is
// swapped in atomically, so readers never observe a partially built index.
// When the dataset is disabled or the source carries no customization
// tables, no catalog is published and every query reports unavailable
// instead of failing.
//
// # Components
//
//   - Catalog: The immutable index plus the two resolution algorithms.
//   - Manager: Owns the published catalog and its rebuild lifecycle.
//   - Service: Maps catalog lookups onto sentinel errors.
//   - Handler: Exposes HTTP endpoints for browsing and resolution.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET  /customization/status : Catalog availability and build statistics.
//   - POST /customization/reload : Rebuild the catalog from the source.
//   - GET  /customization/models : List customizable models.
//   - GET  /customization/models/:modelID/options : List a model's options.
//   - GET  /customization/options/:optionID/choices : List an option's choices.
//   - GET  /customization/choices/:choiceID/geoset : Resolve a choice's geoset key.
//   - GET  /customization/meshes/:fileID : Summarize a mesh file.
//   - GET  /customization/meshes/:fileID/layers : Resolve a choice's layer stack.
//   - GET  /customization/meshes/:fileID/texture : Resolve a choice's texture.
package customization
