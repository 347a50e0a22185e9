package customization_test

import (
	"context"
	"errors"
	"testing"

	"chr-catalog/core/dbc"
	"chr-catalog/feature/customization"
	"chr-catalog/feature/customization/models"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves JSON table documents from memory. It covers the happy
// path, missing tables and injected load failures.
type fakeSource struct {
	name        string
	tables      map[string]string
	hasTable    bool
	hasTableErr error
	loadErr     map[string]error
}

func (f *fakeSource) Name() string {
	return f.name
}

func (f *fakeSource) HasTable(ctx context.Context, table string) (bool, error) {
	return f.hasTable, f.hasTableErr
}

func (f *fakeSource) Load(ctx context.Context, table string, out any) error {
	if err := f.loadErr[table]; err != nil {
		return err
	}
	doc, ok := f.tables[table]
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(doc), out)
}

// fixtureTables is a small but fully linked customization snapshot.
//
// Model 1 (mesh 1000, layout 7) carries options 30 and 31. Option 30 holds
// the layer-stack cases, option 31 the related-choice cases. Model 2
// (mesh 1100, layout 8) exists to prove indexes keep models apart.
func fixtureTables() map[string]string {
	return map[string]string{
		dbc.TableCreatureModelData: `[
			{"ID": 10, "FileDataID": 1000},
			{"ID": 11, "FileDataID": 1100},
			{"ID": 12, "FileDataID": 0}
		]`,
		dbc.TableCreatureDisplayInfo: `[
			{"ID": 20, "ModelID": 10, "TextureVariationFileDataID": [500, 501, 0]},
			{"ID": 21, "ModelID": 10, "TextureVariationFileDataID": [502, 0, 0]},
			{"ID": 22, "ModelID": 11, "TextureVariationFileDataID": [0, 0, 0]},
			{"ID": 23, "ModelID": 99, "TextureVariationFileDataID": [503, 0, 0]}
		]`,
		dbc.TableCreatureDisplayInfoGeosetData: `[
			{"ID": 1, "GeosetIndex": 0, "GeosetValue": 1, "CreatureDisplayInfoID": 20},
			{"ID": 2, "GeosetIndex": 2, "GeosetValue": 3, "CreatureDisplayInfoID": 20},
			{"ID": 3, "GeosetIndex": 1, "GeosetValue": 1, "CreatureDisplayInfoID": 0}
		]`,
		dbc.TableChrModel: `[
			{"ID": 1, "Sex": 0, "DisplayID": 20, "CharComponentTextureLayoutID": 7, "Flags": 0},
			{"ID": 2, "Sex": 1, "DisplayID": 22, "CharComponentTextureLayoutID": 8, "Flags": 0},
			{"ID": 3, "Sex": 0, "DisplayID": 999, "CharComponentTextureLayoutID": 7, "Flags": 0}
		]`,
		dbc.TableChrCustomizationOption: `[
			{"ID": 31, "Name_lang": "Face", "ChrModelID": 1, "SortIndex": 1, "ChrCustomizationCategoryID": 1},
			{"ID": 30, "Name_lang": "Skin Color", "ChrModelID": 1, "SortIndex": 0, "ChrCustomizationCategoryID": 1},
			{"ID": 32, "Name_lang": "Hair Style", "ChrModelID": 2, "SortIndex": 0, "ChrCustomizationCategoryID": 2},
			{"ID": 33, "Name_lang": "Orphan", "ChrModelID": 0, "SortIndex": 0, "ChrCustomizationCategoryID": 1}
		]`,
		dbc.TableChrCustomizationChoice: `[
			{"ID": 40, "Name_lang": "Pale", "ChrCustomizationOptionID": 30, "OrderIndex": 0},
			{"ID": 41, "Name_lang": "", "ChrCustomizationOptionID": 30, "OrderIndex": 1},
			{"ID": 42, "Name_lang": "Dark", "ChrCustomizationOptionID": 30, "OrderIndex": 2},
			{"ID": 43, "Name_lang": "Ashen", "ChrCustomizationOptionID": 30, "OrderIndex": 3},
			{"ID": 44, "Name_lang": "Painted", "ChrCustomizationOptionID": 30, "OrderIndex": 4},
			{"ID": 45, "Name_lang": "Face A", "ChrCustomizationOptionID": 31, "OrderIndex": 0},
			{"ID": 48, "Name_lang": "Bald", "ChrCustomizationOptionID": 32, "OrderIndex": 0},
			{"ID": 46, "Name_lang": "Orphan", "ChrCustomizationOptionID": 0, "OrderIndex": 0}
		]`,
		dbc.TableChrCustomizationMaterial: `[
			{"ID": 50, "ChrModelTextureTargetID": 1, "MaterialResourcesID": 60},
			{"ID": 51, "ChrModelTextureTargetID": 2, "MaterialResourcesID": 61},
			{"ID": 52, "ChrModelTextureTargetID": 3, "MaterialResourcesID": 62},
			{"ID": 53, "ChrModelTextureTargetID": 1, "MaterialResourcesID": 63},
			{"ID": 54, "ChrModelTextureTargetID": 2, "MaterialResourcesID": 64},
			{"ID": 55, "ChrModelTextureTargetID": 1, "MaterialResourcesID": 61}
		]`,
		dbc.TableChrCustomizationElement: `[
			{"ID": 70, "ChrCustomizationChoiceID": 40, "RelatedChrCustomizationChoiceID": 0, "ChrCustomizationGeosetID": 0, "ChrCustomizationMaterialID": 50},
			{"ID": 71, "ChrCustomizationChoiceID": 41, "RelatedChrCustomizationChoiceID": 0, "ChrCustomizationGeosetID": 0, "ChrCustomizationMaterialID": 51},
			{"ID": 72, "ChrCustomizationChoiceID": 42, "RelatedChrCustomizationChoiceID": 0, "ChrCustomizationGeosetID": 99, "ChrCustomizationMaterialID": 52},
			{"ID": 73, "ChrCustomizationChoiceID": 43, "RelatedChrCustomizationChoiceID": 0, "ChrCustomizationGeosetID": 0, "ChrCustomizationMaterialID": 53},
			{"ID": 74, "ChrCustomizationChoiceID": 44, "RelatedChrCustomizationChoiceID": 0, "ChrCustomizationGeosetID": 0, "ChrCustomizationMaterialID": 50},
			{"ID": 75, "ChrCustomizationChoiceID": 44, "RelatedChrCustomizationChoiceID": 0, "ChrCustomizationGeosetID": 0, "ChrCustomizationMaterialID": 55},
			{"ID": 76, "ChrCustomizationChoiceID": 45, "RelatedChrCustomizationChoiceID": 40, "ChrCustomizationGeosetID": 0, "ChrCustomizationMaterialID": 51},
			{"ID": 77, "ChrCustomizationChoiceID": 45, "RelatedChrCustomizationChoiceID": 42, "ChrCustomizationGeosetID": 0, "ChrCustomizationMaterialID": 54},
			{"ID": 78, "ChrCustomizationChoiceID": 45, "RelatedChrCustomizationChoiceID": 0, "ChrCustomizationGeosetID": 80, "ChrCustomizationMaterialID": 0},
			{"ID": 79, "ChrCustomizationChoiceID": 48, "RelatedChrCustomizationChoiceID": 0, "ChrCustomizationGeosetID": 81, "ChrCustomizationMaterialID": 0},
			{"ID": 80, "ChrCustomizationChoiceID": 0, "RelatedChrCustomizationChoiceID": 0, "ChrCustomizationGeosetID": 0, "ChrCustomizationMaterialID": 50}
		]`,
		dbc.TableChrCustomizationGeoset: `[
			{"ID": 80, "GeosetType": 12, "GeosetID": 3, "Modifier": 0},
			{"ID": 81, "GeosetType": 1, "GeosetID": 5, "Modifier": 0}
		]`,
		dbc.TableChrModelTextureLayer: `[
			{"ID": 90, "TextureType": 1, "Layer": 0, "Flags": 0, "BlendMode": 0, "TextureSectionTypeBitMask": 5, "ChrModelTextureTargetID": [1, 0], "CharComponentTextureLayoutsID": 7},
			{"ID": 91, "TextureType": 6, "Layer": 1, "Flags": 0, "BlendMode": 0, "TextureSectionTypeBitMask": -1, "ChrModelTextureTargetID": [2, 0], "CharComponentTextureLayoutsID": 7},
			{"ID": 92, "TextureType": 1, "Layer": 0, "Flags": 0, "BlendMode": 0, "TextureSectionTypeBitMask": 1, "ChrModelTextureTargetID": [0, 0], "CharComponentTextureLayoutsID": 7},
			{"ID": 93, "TextureType": 1, "Layer": 0, "Flags": 0, "BlendMode": 0, "TextureSectionTypeBitMask": 1, "ChrModelTextureTargetID": [1, 0], "CharComponentTextureLayoutsID": 8}
		]`,
		dbc.TableCharComponentTextureSections: `[
			{"ID": 100, "CharComponentTextureLayoutID": 7, "SectionType": 0, "X": 0, "Y": 0, "Width": 512, "Height": 256, "OverlapSectionMask": 0},
			{"ID": 101, "CharComponentTextureLayoutID": 7, "SectionType": 1, "X": 512, "Y": 0, "Width": 512, "Height": 256, "OverlapSectionMask": 0},
			{"ID": 102, "CharComponentTextureLayoutID": 7, "SectionType": 2, "X": 0, "Y": 256, "Width": 512, "Height": 256, "OverlapSectionMask": 0},
			{"ID": 103, "CharComponentTextureLayoutID": 8, "SectionType": 0, "X": 0, "Y": 0, "Width": 256, "Height": 128, "OverlapSectionMask": 0}
		]`,
		dbc.TableTextureFileData: `[
			{"FileDataID": 700, "UsageType": 0, "MaterialResourcesID": 60},
			{"FileDataID": 701, "UsageType": 0, "MaterialResourcesID": 61},
			{"FileDataID": 702, "UsageType": 0, "MaterialResourcesID": 62},
			{"FileDataID": 703, "UsageType": 0, "MaterialResourcesID": 64},
			{"FileDataID": 704, "UsageType": 2, "MaterialResourcesID": 65},
			{"FileDataID": 705, "UsageType": 0, "MaterialResourcesID": 0},
			{"FileDataID": 706, "UsageType": 0, "MaterialResourcesID": 60}
		]`,
	}
}

func buildFixtureCatalog(t *testing.T, obs customization.Observer) *customization.Catalog {
	t.Helper()
	src := &fakeSource{name: "fixture", tables: fixtureTables(), hasTable: true}
	catalog, err := customization.Build(context.Background(), src, "11.0.7.58238", obs)
	require.NoError(t, err)
	return catalog
}

func TestBuild(t *testing.T) {
	catalog := buildFixtureCatalog(t, nil)

	t.Run("Models", func(t *testing.T) {
		result := catalog.Models()
		require.Len(t, result, 2)
		assert.Equal(t, models.ModelInfo{ID: 1, MeshFileID: 1000, LayoutID: 7, Options: 2}, result[0])
		assert.Equal(t, models.ModelInfo{ID: 2, MeshFileID: 1100, LayoutID: 8, Options: 1}, result[1])
	})

	t.Run("Mesh Lookups", func(t *testing.T) {
		modelID, ok := catalog.ModelForMesh(1000)
		require.True(t, ok)
		assert.Equal(t, 1, modelID)

		mesh, ok := catalog.MeshForModel(2)
		require.True(t, ok)
		assert.Equal(t, 1100, mesh)

		layout, ok := catalog.TextureLayout(1)
		require.True(t, ok)
		assert.Equal(t, 7, layout)

		assert.True(t, catalog.IsCustomizableMesh(1100))
		assert.False(t, catalog.IsCustomizableMesh(9999))

		_, ok = catalog.ModelForMesh(9999)
		assert.False(t, ok)
	})

	t.Run("Options Ordered By Sort Index", func(t *testing.T) {
		options, ok := catalog.Options(1)
		require.True(t, ok)
		require.Len(t, options, 2)
		assert.Equal(t, models.OptionInfo{ID: 30, Name: "Skin Color"}, options[0])
		assert.Equal(t, models.OptionInfo{ID: 31, Name: "Face"}, options[1])

		_, ok = catalog.Options(999)
		assert.False(t, ok)
	})

	t.Run("Choices With Label Synthesis", func(t *testing.T) {
		choices, ok := catalog.Choices(30)
		require.True(t, ok)
		require.Len(t, choices, 5)
		assert.Equal(t, models.ChoiceInfo{ID: 40, Label: "Pale"}, choices[0])
		assert.Equal(t, models.ChoiceInfo{ID: 41, Label: "Choice 1"}, choices[1])
		assert.Equal(t, models.ChoiceInfo{ID: 42, Label: "Dark"}, choices[2])

		_, ok = catalog.Choices(999)
		assert.False(t, ok)
	})

	t.Run("Geoset Key Resolution", func(t *testing.T) {
		key, ok := catalog.GeosetKeyForChoice(45)
		require.True(t, ok)
		assert.Equal(t, 1203, key)

		key, ok = catalog.GeosetKeyForChoice(48)
		require.True(t, ok)
		assert.Equal(t, 105, key)

		// Choice 42 points at geoset row 99 which does not exist.
		_, ok = catalog.GeosetKeyForChoice(42)
		assert.False(t, ok)

		// Choice 40 carries only a material element.
		_, ok = catalog.GeosetKeyForChoice(40)
		assert.False(t, ok)
	})

	t.Run("Displays For Mesh", func(t *testing.T) {
		displays := catalog.DisplaysForMesh(1000)
		require.Len(t, displays, 2)
		assert.Equal(t, 20, displays[0].DisplayID)
		assert.Equal(t, []int{500, 501}, displays[0].TextureFileIDs)
		assert.Equal(t, []int{101, 303}, displays[0].ExtraGeosets)
		assert.Equal(t, 21, displays[1].DisplayID)
		assert.Equal(t, []int{502}, displays[1].TextureFileIDs)
		assert.Empty(t, displays[1].ExtraGeosets)
	})

	t.Run("Mesh Info", func(t *testing.T) {
		info, ok := catalog.MeshInfo(1000)
		require.True(t, ok)
		assert.True(t, info.Customizable)
		assert.Equal(t, 1, info.ModelID)
		assert.Equal(t, 7, info.LayoutID)
		assert.Len(t, info.Displays, 2)

		_, ok = catalog.MeshInfo(9999)
		assert.False(t, ok)
	})

	t.Run("Texture File Union", func(t *testing.T) {
		// Material resources plus display skin variations, sorted and
		// de-duplicated. Resource 60 keeps file 700, not the later 706.
		assert.Equal(t, []int{500, 501, 502, 700, 701, 702, 703}, catalog.TextureFileIDs())
	})

	t.Run("Stats", func(t *testing.T) {
		stats := catalog.Stats()
		assert.Equal(t, 2, stats.Models)
		assert.Equal(t, 2, stats.Meshes)
		assert.Equal(t, 3, stats.Displays)
		assert.Equal(t, 3, stats.Options)
		assert.Equal(t, 7, stats.Choices)
		assert.Equal(t, 2, stats.GeosetKeys)
		assert.Equal(t, 6, stats.Materials)
		assert.Equal(t, 2, stats.Layouts)
		assert.Equal(t, 4, stats.Sections)
		assert.Equal(t, 4, stats.TextureFiles)
	})

	t.Run("Metadata", func(t *testing.T) {
		assert.Equal(t, "fixture", catalog.Source())
		assert.Equal(t, "11.0.7.58238", catalog.Build())
		assert.False(t, catalog.BuiltAt().IsZero())
	})
}

func TestBuildAbortsOnLoadFailure(t *testing.T) {
	src := &fakeSource{
		name:     "fixture",
		tables:   fixtureTables(),
		hasTable: true,
		loadErr: map[string]error{
			dbc.TableChrCustomizationElement: errors.New("connection reset"),
		},
	}

	catalog, err := customization.Build(context.Background(), src, "", nil)
	require.Error(t, err)
	assert.Nil(t, catalog)
}
