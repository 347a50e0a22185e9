package customization

import (
	"context"
	"sort"
	"strconv"
	"time"

	"chr-catalog/core/dbc"
	"chr-catalog/feature/customization/models"
)

// Build loads every customization table from the source and assembles the
// catalog. A failed or undecodable table aborts the whole build; a catalog is
// never published from a partial snapshot.
func Build(ctx context.Context, src dbc.Source, build string, obs Observer) (*Catalog, error) {
	if obs == nil {
		obs = NopObserver{}
	}

	var (
		modelData    []dbc.CreatureModelData
		displays     []dbc.CreatureDisplayInfo
		displayGeos  []dbc.CreatureDisplayInfoGeosetData
		chrModels    []dbc.ChrModel
		options      []dbc.ChrCustomizationOption
		choices      []dbc.ChrCustomizationChoice
		materials    []dbc.ChrCustomizationMaterial
		elements     []dbc.ChrCustomizationElement
		geosets      []dbc.ChrCustomizationGeoset
		layers       []dbc.ChrModelTextureLayer
		sections     []dbc.CharComponentTextureSection
		textureFiles []dbc.TextureFileData
	)

	steps := []struct {
		table string
		dest  any
	}{
		{dbc.TableCreatureModelData, &modelData},
		{dbc.TableCreatureDisplayInfo, &displays},
		{dbc.TableCreatureDisplayInfoGeosetData, &displayGeos},
		{dbc.TableChrModel, &chrModels},
		{dbc.TableChrCustomizationOption, &options},
		{dbc.TableChrCustomizationChoice, &choices},
		{dbc.TableChrCustomizationMaterial, &materials},
		{dbc.TableChrCustomizationElement, &elements},
		{dbc.TableChrCustomizationGeoset, &geosets},
		{dbc.TableChrModelTextureLayer, &layers},
		{dbc.TableCharComponentTextureSections, &sections},
		{dbc.TableTextureFileData, &textureFiles},
	}
	for _, step := range steps {
		if err := src.Load(ctx, step.table, step.dest); err != nil {
			return nil, err
		}
	}

	c := newCatalog(src.Name(), build, obs)
	meshByDisplay := c.indexDisplays(modelData, displays, displayGeos)
	c.indexModels(chrModels, meshByDisplay)
	c.indexOptions(options)
	c.indexChoices(choices)
	c.indexMaterials(materials)
	c.indexElements(elements)
	c.indexGeosets(geosets)
	c.indexLayers(layers)
	c.indexSections(sections)
	c.indexTextureFiles(textureFiles)
	c.builtAt = time.Now().UTC()
	return c, nil
}

// indexDisplays binds display rows to mesh files through the model-data table
// and attaches their skin variations and extra geoset activations. It returns
// the display-to-mesh lookup the model pass needs.
func (c *Catalog) indexDisplays(modelData []dbc.CreatureModelData, displays []dbc.CreatureDisplayInfo, geosetData []dbc.CreatureDisplayInfoGeosetData) map[int]int {
	meshByModelData := make(map[int]int, len(modelData))
	for _, row := range modelData {
		if row.FileDataID == 0 {
			continue
		}
		meshByModelData[row.ID] = row.FileDataID
	}

	extras := make(map[int][]int)
	for _, row := range geosetData {
		if row.CreatureDisplayInfoID == 0 {
			continue
		}
		extras[row.CreatureDisplayInfoID] = append(extras[row.CreatureDisplayInfoID], models.ExtraGeosetKey(row.GeosetIndex, row.GeosetValue))
	}

	meshByDisplay := make(map[int]int, len(displays))
	for _, row := range displays {
		mesh, ok := meshByModelData[row.ModelID]
		if !ok {
			continue
		}
		meshByDisplay[row.ID] = mesh

		variant := models.DisplayVariant{DisplayID: row.ID, ExtraGeosets: extras[row.ID]}
		for _, fileDataID := range row.TextureVariationFileDataID {
			if fileDataID > 0 {
				variant.TextureFileIDs = append(variant.TextureFileIDs, fileDataID)
			}
		}
		c.displaysByMesh[mesh] = append(c.displaysByMesh[mesh], variant)
	}
	return meshByDisplay
}

// indexModels binds each character model to its mesh file and texture layout.
// Models whose display does not resolve to a mesh are not customizable and
// are left out.
func (c *Catalog) indexModels(rows []dbc.ChrModel, meshByDisplay map[int]int) {
	for _, row := range rows {
		mesh, ok := meshByDisplay[row.DisplayID]
		if !ok {
			continue
		}
		c.modelByMesh[mesh] = row.ID
		c.meshByModel[row.ID] = mesh
		c.layoutByModel[row.ID] = row.CharComponentTextureLayoutID
	}
}

func (c *Catalog) indexOptions(rows []dbc.ChrCustomizationOption) {
	grouped := make(map[int][]dbc.ChrCustomizationOption)
	for _, row := range rows {
		if row.ChrModelID == 0 {
			continue
		}
		grouped[row.ChrModelID] = append(grouped[row.ChrModelID], row)
	}

	for modelID, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].SortIndex != group[j].SortIndex {
				return group[i].SortIndex < group[j].SortIndex
			}
			return group[i].ID < group[j].ID
		})

		infos := make([]models.OptionInfo, 0, len(group))
		for _, row := range group {
			infos = append(infos, models.OptionInfo{ID: row.ID, Name: row.Name})
			c.optionModel[row.ID] = modelID
		}
		c.optionsByModel[modelID] = infos
	}
}

func (c *Catalog) indexChoices(rows []dbc.ChrCustomizationChoice) {
	grouped := make(map[int][]dbc.ChrCustomizationChoice)
	for _, row := range rows {
		if row.ChrCustomizationOptionID == 0 {
			continue
		}
		grouped[row.ChrCustomizationOptionID] = append(grouped[row.ChrCustomizationOptionID], row)
	}

	for optionID, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].OrderIndex != group[j].OrderIndex {
				return group[i].OrderIndex < group[j].OrderIndex
			}
			return group[i].ID < group[j].ID
		})

		infos := make([]models.ChoiceInfo, 0, len(group))
		for _, row := range group {
			label := row.Name
			if label == "" {
				label = "Choice " + strconv.Itoa(row.OrderIndex)
			}
			infos = append(infos, models.ChoiceInfo{ID: row.ID, Label: label})
		}
		c.choicesByOption[optionID] = infos
	}
}

func (c *Catalog) indexMaterials(rows []dbc.ChrCustomizationMaterial) {
	for _, row := range rows {
		c.materials[row.ID] = material{
			textureTargetID:     row.ChrModelTextureTargetID,
			materialResourcesID: row.MaterialResourcesID,
		}
	}
}

// indexElements splits each choice's elements into its geoset binding and its
// material candidates. Elements may carry either, both, or neither.
func (c *Catalog) indexElements(rows []dbc.ChrCustomizationElement) {
	for _, row := range rows {
		if row.ChrCustomizationChoiceID == 0 {
			continue
		}
		if row.ChrCustomizationGeosetID != 0 {
			c.geosetByChoice[row.ChrCustomizationChoiceID] = row.ChrCustomizationGeosetID
		}
		if row.ChrCustomizationMaterialID != 0 {
			c.elementsByChoice[row.ChrCustomizationChoiceID] = append(c.elementsByChoice[row.ChrCustomizationChoiceID], materialElement{
				materialID:      row.ChrCustomizationMaterialID,
				relatedChoiceID: row.RelatedChrCustomizationChoiceID,
			})
		}
	}
}

func (c *Catalog) indexGeosets(rows []dbc.ChrCustomizationGeoset) {
	for _, row := range rows {
		c.geosetKeys[row.ID] = models.GeosetKey(row.GeosetType, row.GeosetID)
	}
}

// indexLayers keys each layer row by its layout and first texture target.
// Rows with no target are authoring noise and are skipped.
func (c *Catalog) indexLayers(rows []dbc.ChrModelTextureLayer) {
	for _, row := range rows {
		target := row.ChrModelTextureTargetID[0]
		if target == 0 {
			continue
		}
		layout := row.CharComponentTextureLayoutsID
		if c.layers[layout] == nil {
			c.layers[layout] = make(map[int]textureLayer)
		}
		c.layers[layout][target] = textureLayer{
			textureType: row.TextureType,
			layer:       row.Layer,
			sectionMask: row.TextureSectionTypeBitMask,
		}
	}
}

func (c *Catalog) indexSections(rows []dbc.CharComponentTextureSection) {
	for _, row := range rows {
		layout := row.CharComponentTextureLayoutID
		if c.sections[layout] == nil {
			c.sections[layout] = make(map[int]textureSection)
		}
		c.sections[layout][row.SectionType] = textureSection{
			sectionType: row.SectionType,
			x:           row.X,
			y:           row.Y,
			width:       row.Width,
			height:      row.Height,
		}
	}

	for layout, group := range c.sections {
		types := make([]int, 0, len(group))
		for sectionType := range group {
			types = append(types, sectionType)
		}
		sort.Ints(types)
		c.sectionTypes[layout] = types
	}
}

// indexTextureFiles keeps the plain-texture file for each material resource.
// Non-zero usage types are special render paths and are ignored; the first
// row per resource wins, which with ordered loads is the lowest file ID.
func (c *Catalog) indexTextureFiles(rows []dbc.TextureFileData) {
	for _, row := range rows {
		if row.UsageType != 0 || row.MaterialResourcesID == 0 {
			continue
		}
		if _, ok := c.textureFiles[row.MaterialResourcesID]; ok {
			continue
		}
		c.textureFiles[row.MaterialResourcesID] = row.FileDataID
	}
}
