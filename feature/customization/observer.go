package customization

import "go.uber.org/zap"

// Observer receives resolution anomalies: data that is authored inconsistently
// but must not fail a request.
type Observer interface {
	// FallbackSelection fires when no candidate material of a choice is
	// related to any current selection and the first candidate is used.
	FallbackSelection(choiceID, materialID int)
	// MissingLayer fires when a layout has no layer for a texture target.
	MissingLayer(layoutID, textureTargetID int)
	// MissingTexture fires when a material resource has no texture file.
	MissingTexture(materialResourcesID int)
}

// NopObserver discards all anomalies.
type NopObserver struct{}

func (NopObserver) FallbackSelection(choiceID, materialID int) {}
func (NopObserver) MissingLayer(layoutID, textureTargetID int) {}
func (NopObserver) MissingTexture(materialResourcesID int) {}

// LogObserver writes anomalies to a zap logger at debug level.
type LogObserver struct {
	Logger *zap.Logger
}

func (o LogObserver) FallbackSelection(choiceID, materialID int) {
	o.Logger.Debug("No material matched current selections, using first candidate",
		zap.Int("choice_id", choiceID),
		zap.Int("material_id", materialID))
}

func (o LogObserver) MissingLayer(layoutID, textureTargetID int) {
	o.Logger.Debug("No texture layer for target in layout",
		zap.Int("layout_id", layoutID),
		zap.Int("texture_target_id", textureTargetID))
}

func (o LogObserver) MissingTexture(materialResourcesID int) {
	o.Logger.Debug("No texture file for material resource",
		zap.Int("material_resources_id", materialResourcesID))
}
