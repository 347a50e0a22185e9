package customization

import (
	"sort"
	"time"

	"chr-catalog/feature/customization/models"
)

// material is one authored texture material: which slot of the model it
// targets and which resource holds its pixels.
type material struct {
	textureTargetID     int
	materialResourcesID int
}

// materialElement is one material-bearing element of a choice, together with
// the related choice that gates it during disambiguation.
type materialElement struct {
	materialID      int
	relatedChoiceID int
}

// textureLayer describes how a texture target is composited for a layout.
type textureLayer struct {
	textureType int
	layer       int
	sectionMask int
}

// textureSection is one authored atlas rectangle of a layout.
type textureSection struct {
	sectionType int
	x           int
	y           int
	width       int
	height      int
}

// Catalog is the immutable customization index built from one dataset
// snapshot. All maps are populated once during Build and never written
// afterwards, so concurrent reads need no locking.
type Catalog struct {
	source  string
	build   string
	builtAt time.Time

	modelByMesh    map[int]int
	meshByModel    map[int]int
	layoutByModel  map[int]int
	displaysByMesh map[int][]models.DisplayVariant

	optionsByModel  map[int][]models.OptionInfo
	optionModel     map[int]int
	choicesByOption map[int][]models.ChoiceInfo

	geosetByChoice map[int]int
	geosetKeys     map[int]int

	elementsByChoice map[int][]materialElement
	materials        map[int]material

	layers       map[int]map[int]textureLayer
	sections     map[int]map[int]textureSection
	sectionTypes map[int][]int

	textureFiles map[int]int

	obs Observer
}

func newCatalog(source, build string, obs Observer) *Catalog {
	return &Catalog{
		source:           source,
		build:            build,
		modelByMesh:      make(map[int]int),
		meshByModel:      make(map[int]int),
		layoutByModel:    make(map[int]int),
		displaysByMesh:   make(map[int][]models.DisplayVariant),
		optionsByModel:   make(map[int][]models.OptionInfo),
		optionModel:      make(map[int]int),
		choicesByOption:  make(map[int][]models.ChoiceInfo),
		geosetByChoice:   make(map[int]int),
		geosetKeys:       make(map[int]int),
		elementsByChoice: make(map[int][]materialElement),
		materials:        make(map[int]material),
		layers:           make(map[int]map[int]textureLayer),
		sections:         make(map[int]map[int]textureSection),
		sectionTypes:     make(map[int][]int),
		textureFiles:     make(map[int]int),
		obs:              obs,
	}
}

// Source reports which dataset source the catalog was built from.
func (c *Catalog) Source() string {
	return c.source
}

// Build reports the dataset build label, if one was configured.
func (c *Catalog) Build() string {
	return c.build
}

// BuiltAt reports when the catalog finished building.
func (c *Catalog) BuiltAt() time.Time {
	return c.builtAt
}

// Models lists every customizable model sorted by ID.
func (c *Catalog) Models() []models.ModelInfo {
	ids := make([]int, 0, len(c.meshByModel))
	for id := range c.meshByModel {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]models.ModelInfo, 0, len(ids))
	for _, id := range ids {
		result = append(result, models.ModelInfo{
			ID:         id,
			MeshFileID: c.meshByModel[id],
			LayoutID:   c.layoutByModel[id],
			Options:    len(c.optionsByModel[id]),
		})
	}
	return result
}

// ModelForMesh resolves a mesh file to its customizable model.
func (c *Catalog) ModelForMesh(fileDataID int) (int, bool) {
	modelID, ok := c.modelByMesh[fileDataID]
	return modelID, ok
}

// MeshForModel resolves a model to its mesh file.
func (c *Catalog) MeshForModel(modelID int) (int, bool) {
	fileDataID, ok := c.meshByModel[modelID]
	return fileDataID, ok
}

// TextureLayout resolves a model to its component texture layout.
func (c *Catalog) TextureLayout(modelID int) (int, bool) {
	layoutID, ok := c.layoutByModel[modelID]
	return layoutID, ok
}

// IsCustomizableMesh reports whether a mesh file belongs to a customizable
// model.
func (c *Catalog) IsCustomizableMesh(fileDataID int) bool {
	_, ok := c.modelByMesh[fileDataID]
	return ok
}

// Options lists a model's customization options in authored order. The
// boolean reports whether the model exists at all.
func (c *Catalog) Options(modelID int) ([]models.OptionInfo, bool) {
	if _, ok := c.meshByModel[modelID]; !ok {
		return nil, false
	}
	return c.optionsByModel[modelID], true
}

// Choices lists an option's choices in authored order. The boolean reports
// whether the option exists at all.
func (c *Catalog) Choices(optionID int) ([]models.ChoiceInfo, bool) {
	if _, ok := c.optionModel[optionID]; !ok {
		return nil, false
	}
	return c.choicesByOption[optionID], true
}

// GeosetKeyForChoice resolves the encoded geoset key a choice toggles. Both
// the choice's geoset binding and the geoset row itself must exist.
func (c *Catalog) GeosetKeyForChoice(choiceID int) (int, bool) {
	geosetID, ok := c.geosetByChoice[choiceID]
	if !ok {
		return 0, false
	}
	key, ok := c.geosetKeys[geosetID]
	if !ok {
		return 0, false
	}
	return key, true
}

// DisplaysForMesh lists the display variants bound to a mesh file.
func (c *Catalog) DisplaysForMesh(fileDataID int) []models.DisplayVariant {
	return c.displaysByMesh[fileDataID]
}

// MeshInfo summarizes a mesh file. The boolean is false when the mesh is
// known to neither the model index nor the display index.
func (c *Catalog) MeshInfo(fileDataID int) (models.MeshInfo, bool) {
	info := models.MeshInfo{FileDataID: fileDataID}

	modelID, customizable := c.modelByMesh[fileDataID]
	displays, hasDisplays := c.displaysByMesh[fileDataID]
	if !customizable && !hasDisplays {
		return models.MeshInfo{}, false
	}

	info.Customizable = customizable
	info.Displays = displays
	if customizable {
		info.ModelID = modelID
		info.LayoutID = c.layoutByModel[modelID]
	}
	return info, true
}

// TextureFileIDs lists every texture file the catalog references, sorted and
// de-duplicated. This covers material resources and display skin variations.
func (c *Catalog) TextureFileIDs() []int {
	seen := make(map[int]struct{}, len(c.textureFiles))
	for _, fileDataID := range c.textureFiles {
		seen[fileDataID] = struct{}{}
	}
	for _, displays := range c.displaysByMesh {
		for _, display := range displays {
			for _, fileDataID := range display.TextureFileIDs {
				seen[fileDataID] = struct{}{}
			}
		}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Stats counts the catalog's index entries.
func (c *Catalog) Stats() models.Stats {
	stats := models.Stats{
		Models:       len(c.meshByModel),
		Meshes:       len(c.displaysByMesh),
		GeosetKeys:   len(c.geosetKeys),
		Materials:    len(c.materials),
		Layouts:      len(c.layers),
		TextureFiles: len(c.textureFiles),
	}
	for _, displays := range c.displaysByMesh {
		stats.Displays += len(displays)
	}
	for _, options := range c.optionsByModel {
		stats.Options += len(options)
	}
	for _, choices := range c.choicesByOption {
		stats.Choices += len(choices)
	}
	for _, group := range c.sections {
		stats.Sections += len(group)
	}
	return stats
}
