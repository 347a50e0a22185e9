package customization_test

import (
	"testing"

	"chr-catalog/feature/customization/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureObserver records every anomaly for assertions.
type captureObserver struct {
	fallbacks       [][2]int
	missingLayers   [][2]int
	missingTextures []int
}

func (o *captureObserver) FallbackSelection(choiceID, materialID int) {
	o.fallbacks = append(o.fallbacks, [2]int{choiceID, materialID})
}

func (o *captureObserver) MissingLayer(layoutID, textureTargetID int) {
	o.missingLayers = append(o.missingLayers, [2]int{layoutID, textureTargetID})
}

func (o *captureObserver) MissingTexture(materialResourcesID int) {
	o.missingTextures = append(o.missingTextures, materialResourcesID)
}

func TestSkinLayers(t *testing.T) {
	t.Run("Masked Sections", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		// Layer mask 0b101 selects sections 0 and 2 of layout 7.
		result, ok := catalog.SkinLayers(1000, 40)
		require.True(t, ok)
		require.Len(t, result, 2)
		assert.Equal(t, models.SkinMaterial{
			TextureType: 1, FileDataID: 700, Layer: 0, SectionType: 0,
			X: 0, Y: 0, Width: 512, Height: 256,
		}, result[0])
		assert.Equal(t, models.SkinMaterial{
			TextureType: 1, FileDataID: 700, Layer: 0, SectionType: 2,
			X: 0, Y: 256, Width: 512, Height: 256,
		}, result[1])
	})

	t.Run("Whole Atlas Sentinel", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		result, ok := catalog.SkinLayers(1000, 41)
		require.True(t, ok)
		require.Len(t, result, 1)
		assert.Equal(t, models.SkinMaterial{
			TextureType: 6, FileDataID: 701, Layer: 1, SectionType: models.SectionMaskAll,
			X: 0, Y: 0, Width: models.FullAtlasWidth, Height: models.FullAtlasHeight,
		}, result[0])
	})

	t.Run("Later Element Overwrites Same Slot", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		// Choice 44 carries two elements on the same texture target. The
		// second one wins at every section it covers.
		result, ok := catalog.SkinLayers(1000, 44)
		require.True(t, ok)
		require.Len(t, result, 2)
		for _, entry := range result {
			assert.Equal(t, 701, entry.FileDataID)
		}
	})

	t.Run("Layout Dependent Resolution", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		// The same choice resolves through layout 8 on the second mesh.
		result, ok := catalog.SkinLayers(1100, 40)
		require.True(t, ok)
		require.Len(t, result, 1)
		assert.Equal(t, models.SkinMaterial{
			TextureType: 1, FileDataID: 700, Layer: 0, SectionType: 0,
			X: 0, Y: 0, Width: 256, Height: 128,
		}, result[0])
	})

	t.Run("Missing Layer Observed And Skipped", func(t *testing.T) {
		obs := &captureObserver{}
		catalog := buildFixtureCatalog(t, obs)

		result, ok := catalog.SkinLayers(1000, 42)
		require.True(t, ok)
		assert.Empty(t, result)
		assert.Equal(t, [][2]int{{7, 3}}, obs.missingLayers)
	})

	t.Run("Missing Texture Observed And Skipped", func(t *testing.T) {
		obs := &captureObserver{}
		catalog := buildFixtureCatalog(t, obs)

		result, ok := catalog.SkinLayers(1000, 43)
		require.True(t, ok)
		assert.Empty(t, result)
		assert.Equal(t, []int{63}, obs.missingTextures)
	})

	t.Run("Unknown Mesh", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		_, ok := catalog.SkinLayers(9999, 40)
		assert.False(t, ok)
	})

	t.Run("Choice Without Material Elements", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		_, ok := catalog.SkinLayers(1000, 48)
		assert.False(t, ok)

		_, ok = catalog.SkinLayers(1000, 9999)
		assert.False(t, ok)
	})
}

func TestResolveTexture(t *testing.T) {
	t.Run("Related Selection Match", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		result, ok := catalog.ResolveTexture(1000, 45, []int{42})
		require.True(t, ok)
		assert.Equal(t, models.ChoiceTexture{
			TextureType: 6, FileDataID: 703, SectionMask: models.SectionMaskAll,
		}, result)
	})

	t.Run("Selection Order Sets Priority", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		result, ok := catalog.ResolveTexture(1000, 45, []int{42, 40})
		require.True(t, ok)
		assert.Equal(t, 703, result.FileDataID)

		result, ok = catalog.ResolveTexture(1000, 45, []int{40, 42})
		require.True(t, ok)
		assert.Equal(t, 701, result.FileDataID)
	})

	t.Run("Zero Selections Ignored", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		result, ok := catalog.ResolveTexture(1000, 45, []int{0, 42})
		require.True(t, ok)
		assert.Equal(t, 703, result.FileDataID)
		assert.False(t, result.Fallback)
	})

	t.Run("Fallback To First Candidate", func(t *testing.T) {
		obs := &captureObserver{}
		catalog := buildFixtureCatalog(t, obs)

		result, ok := catalog.ResolveTexture(1000, 45, []int{99})
		require.True(t, ok)
		assert.Equal(t, models.ChoiceTexture{
			TextureType: 6, FileDataID: 701, SectionMask: models.SectionMaskAll, Fallback: true,
		}, result)
		assert.Equal(t, [][2]int{{45, 51}}, obs.fallbacks)
	})

	t.Run("Empty Selections Fall Back", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		result, ok := catalog.ResolveTexture(1000, 45, nil)
		require.True(t, ok)
		assert.True(t, result.Fallback)
		assert.Equal(t, 701, result.FileDataID)
	})

	t.Run("No Material Candidates", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		_, ok := catalog.ResolveTexture(1000, 48, nil)
		assert.False(t, ok)

		_, ok = catalog.ResolveTexture(1000, 9999, nil)
		assert.False(t, ok)
	})

	t.Run("Unknown Mesh", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		_, ok := catalog.ResolveTexture(9999, 45, []int{42})
		assert.False(t, ok)
	})

	t.Run("Layer Missing In Layout", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		// Layout 8 has no layer for texture target 2.
		_, ok := catalog.ResolveTexture(1100, 41, nil)
		assert.False(t, ok)
	})

	t.Run("Missing Texture File", func(t *testing.T) {
		catalog := buildFixtureCatalog(t, nil)

		_, ok := catalog.ResolveTexture(1000, 43, nil)
		assert.False(t, ok)
	})
}

func TestRepeatedResolutionIsStable(t *testing.T) {
	catalog := buildFixtureCatalog(t, nil)

	first, ok := catalog.SkinLayers(1000, 40)
	require.True(t, ok)
	second, ok := catalog.SkinLayers(1000, 40)
	require.True(t, ok)
	assert.Equal(t, first, second)

	texture, ok := catalog.ResolveTexture(1000, 45, []int{42})
	require.True(t, ok)
	again, ok := catalog.ResolveTexture(1000, 45, []int{42})
	require.True(t, ok)
	assert.Equal(t, texture, again)
}
