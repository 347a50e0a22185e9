package customization

import (
	"sort"

	"chr-catalog/feature/customization/models"
)

// layerKey identifies one slot of a resolved layer stack. Whole-atlas entries
// use SectionMaskAll as their section so they occupy a slot of their own.
type layerKey struct {
	layer   int
	section int
}

// SkinLayers resolves the full layer stack a choice paints onto a mesh's
// composite texture. The boolean is false when the mesh is not customizable,
// its model has no texture layout, or the choice carries no material
// elements. Elements whose layer or texture cannot be resolved are reported
// to the observer and skipped; a later element overwrites an earlier one at
// the same layer and section.
func (c *Catalog) SkinLayers(meshFileID, choiceID int) ([]models.SkinMaterial, bool) {
	modelID, ok := c.modelByMesh[meshFileID]
	if !ok {
		return nil, false
	}
	layoutID, ok := c.layoutByModel[modelID]
	if !ok {
		return nil, false
	}
	elements := c.elementsByChoice[choiceID]
	if len(elements) == 0 {
		return nil, false
	}

	resolved := make(map[layerKey]models.SkinMaterial)
	for _, element := range elements {
		mat, ok := c.materials[element.materialID]
		if !ok {
			continue
		}
		layer, ok := c.layers[layoutID][mat.textureTargetID]
		if !ok {
			c.obs.MissingLayer(layoutID, mat.textureTargetID)
			continue
		}
		fileDataID, ok := c.textureFiles[mat.materialResourcesID]
		if !ok {
			c.obs.MissingTexture(mat.materialResourcesID)
			continue
		}

		if layer.sectionMask == models.SectionMaskAll {
			resolved[layerKey{layer.layer, models.SectionMaskAll}] = models.SkinMaterial{
				TextureType: layer.textureType,
				FileDataID:  fileDataID,
				Layer:       layer.layer,
				SectionType: models.SectionMaskAll,
				Width:       models.FullAtlasWidth,
				Height:      models.FullAtlasHeight,
			}
			continue
		}

		for _, sectionType := range c.sectionTypes[layoutID] {
			if layer.sectionMask&(1<<sectionType) == 0 {
				continue
			}
			section := c.sections[layoutID][sectionType]
			resolved[layerKey{layer.layer, sectionType}] = models.SkinMaterial{
				TextureType: layer.textureType,
				FileDataID:  fileDataID,
				Layer:       layer.layer,
				SectionType: sectionType,
				X:           section.x,
				Y:           section.y,
				Width:       section.width,
				Height:      section.height,
			}
		}
	}

	result := make([]models.SkinMaterial, 0, len(resolved))
	for _, entry := range resolved {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Layer != result[j].Layer {
			return result[i].Layer < result[j].Layer
		}
		return result[i].SectionType < result[j].SectionType
	})
	return result, true
}

// ResolveTexture picks the texture a choice applies to a mesh given the
// caller's other current selections. Candidate materials are scanned against
// the selections in the caller's order; when none is related to any selection
// the first candidate is used and the fallback is reported. The boolean is
// false when the choice has no material candidates or any link of the chosen
// material cannot be resolved.
func (c *Catalog) ResolveTexture(meshFileID, choiceID int, selections []int) (models.ChoiceTexture, bool) {
	elements := c.elementsByChoice[choiceID]
	if len(elements) == 0 {
		return models.ChoiceTexture{}, false
	}

	chosen, matched := pickElement(elements, selections)
	if !matched {
		chosen = elements[0]
		c.obs.FallbackSelection(choiceID, chosen.materialID)
	}

	mat, ok := c.materials[chosen.materialID]
	if !ok {
		return models.ChoiceTexture{}, false
	}
	modelID, ok := c.modelByMesh[meshFileID]
	if !ok {
		return models.ChoiceTexture{}, false
	}
	layoutID, ok := c.layoutByModel[modelID]
	if !ok {
		return models.ChoiceTexture{}, false
	}
	layer, ok := c.layers[layoutID][mat.textureTargetID]
	if !ok {
		return models.ChoiceTexture{}, false
	}
	fileDataID, ok := c.textureFiles[mat.materialResourcesID]
	if !ok {
		return models.ChoiceTexture{}, false
	}

	return models.ChoiceTexture{
		TextureType: layer.textureType,
		FileDataID:  fileDataID,
		SectionMask: layer.sectionMask,
		Fallback:    !matched,
	}, true
}

func pickElement(elements []materialElement, selections []int) (materialElement, bool) {
	for _, selection := range selections {
		if selection == 0 {
			continue
		}
		for _, element := range elements {
			if element.relatedChoiceID == selection {
				return element, true
			}
		}
	}
	return materialElement{}, false
}
