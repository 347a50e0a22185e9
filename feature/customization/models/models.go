package models

import (
	"fmt"
	"strconv"
	"time"
)

// SectionMaskAll is the sentinel section bit-mask marking a layer that paints
// the whole atlas instead of a set of sections.
const SectionMaskAll = -1

// Composite atlas dimensions used for whole-atlas layers.
const (
	FullAtlasWidth  = 1024
	FullAtlasHeight = 512
)

// GeosetKey encodes a geoset group/variant pair into a single integer key:
// both values are zero-padded to two digits and concatenated, so group 1
// variant 5 yields 105 and group 12 variant 3 yields 1203.
func GeosetKey(geosetType, geosetID int) int {
	key, _ := strconv.Atoi(fmt.Sprintf("%02d%02d", geosetType, geosetID))
	return key
}

// ExtraGeosetKey encodes a display's extra geoset activation. The group index
// is shifted into the hundreds so the low two digits keep the raw value.
func ExtraGeosetKey(geosetIndex, geosetValue int) int {
	return (geosetIndex+1)*100 + geosetValue
}

// SkinMaterial is one draw instruction of a resolved layer stack: paint the
// given texture file into the destination rectangle at the given layer.
// SectionType is -1 for whole-atlas entries.
type SkinMaterial struct {
	TextureType int `json:"texture_type"`
	FileDataID  int `json:"file_data_id"`
	Layer       int `json:"layer"`
	SectionType int `json:"section_type"`
	X           int `json:"x"`
	Y           int `json:"y"`
	Width       int `json:"width"`
	Height      int `json:"height"`
}

// ChoiceTexture is the single texture resolved for a choice against the
// caller's current selections. Fallback marks that no candidate material
// matched the selections and the first candidate was used instead.
type ChoiceTexture struct {
	TextureType int  `json:"texture_type"`
	FileDataID  int  `json:"file_data_id"`
	SectionMask int  `json:"section_mask"`
	Fallback    bool `json:"fallback"`
}

// ModelInfo is one customizable character model.
type ModelInfo struct {
	ID         int `json:"id"`
	MeshFileID int `json:"mesh_file_id"`
	LayoutID   int `json:"layout_id"`
	Options    int `json:"options"`
}

// OptionInfo is one customization category of a model.
type OptionInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ChoiceInfo is one selectable value of an option. Label falls back to
// "Choice {order}" when the row carries no authored name.
type ChoiceInfo struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// ChoiceGeoset is the encoded geoset key a choice toggles.
type ChoiceGeoset struct {
	ChoiceID  int `json:"choice_id"`
	GeosetKey int `json:"geoset_key"`
}

// DisplayVariant is one display row bound to a mesh: its candidate whole-skin
// texture files and extra geoset activations.
type DisplayVariant struct {
	DisplayID      int   `json:"display_id"`
	TextureFileIDs []int `json:"texture_file_ids,omitempty"`
	ExtraGeosets   []int `json:"extra_geosets,omitempty"`
}

// MeshInfo summarizes what the catalog knows about a mesh file.
type MeshInfo struct {
	FileDataID   int              `json:"file_data_id"`
	Customizable bool             `json:"customizable"`
	ModelID      int              `json:"model_id,omitempty"`
	LayoutID     int              `json:"layout_id,omitempty"`
	Displays     []DisplayVariant `json:"displays,omitempty"`
}

// Stats counts the catalog's index entries.
type Stats struct {
	Models       int `json:"models"`
	Meshes       int `json:"meshes"`
	Displays     int `json:"displays"`
	Options      int `json:"options"`
	Choices      int `json:"choices"`
	GeosetKeys   int `json:"geoset_keys"`
	Materials    int `json:"materials"`
	Layouts      int `json:"layouts"`
	Sections     int `json:"sections"`
	TextureFiles int `json:"texture_files"`
}

// StatusReport describes catalog availability for the status endpoint.
type StatusReport struct {
	Available bool       `json:"available"`
	Enabled   bool       `json:"enabled"`
	Source    string     `json:"source,omitempty"`
	Build     string     `json:"build,omitempty"`
	BuiltAt   *time.Time `json:"built_at,omitempty"`
	Stats     *Stats     `json:"stats,omitempty"`
}
