package customization

import (
	"context"
	"errors"

	"chr-catalog/feature/customization/models"
)

var (
	// ErrUnavailable means no catalog is published, either because the
	// feature is disabled or the source carries no customization tables.
	ErrUnavailable = errors.New("customization catalog unavailable")
	// ErrNotFound means the catalog is published but the requested entity
	// does not exist in it.
	ErrNotFound = errors.New("not found in customization catalog")
)

type Service struct {
	manager *Manager
}

func NewService(manager *Manager) *Service {
	return &Service{manager: manager}
}

func (s *Service) catalog() (*Catalog, error) {
	catalog := s.manager.Catalog()
	if catalog == nil {
		return nil, ErrUnavailable
	}
	return catalog, nil
}

// Status reports catalog availability. It never errors so the endpoint can
// answer while the catalog is unavailable.
func (s *Service) Status() models.StatusReport {
	report := models.StatusReport{
		Enabled: s.manager.Enabled(),
		Source:  s.manager.SourceName(),
	}

	catalog := s.manager.Catalog()
	if catalog == nil {
		return report
	}

	builtAt := catalog.BuiltAt()
	stats := catalog.Stats()
	report.Available = true
	report.Source = catalog.Source()
	report.Build = catalog.Build()
	report.BuiltAt = &builtAt
	report.Stats = &stats
	return report
}

// Reload rebuilds the catalog from the configured source.
func (s *Service) Reload(ctx context.Context) error {
	if !s.manager.Enabled() {
		return ErrUnavailable
	}
	return s.manager.Reload(ctx)
}

// Models lists the customizable models.
func (s *Service) Models() ([]models.ModelInfo, error) {
	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}
	return catalog.Models(), nil
}

// Options lists a model's customization options.
func (s *Service) Options(modelID int) ([]models.OptionInfo, error) {
	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}
	options, ok := catalog.Options(modelID)
	if !ok {
		return nil, ErrNotFound
	}
	return options, nil
}

// Choices lists an option's choices.
func (s *Service) Choices(optionID int) ([]models.ChoiceInfo, error) {
	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}
	choices, ok := catalog.Choices(optionID)
	if !ok {
		return nil, ErrNotFound
	}
	return choices, nil
}

// Geoset resolves the encoded geoset key a choice toggles.
func (s *Service) Geoset(choiceID int) (models.ChoiceGeoset, error) {
	catalog, err := s.catalog()
	if err != nil {
		return models.ChoiceGeoset{}, err
	}
	key, ok := catalog.GeosetKeyForChoice(choiceID)
	if !ok {
		return models.ChoiceGeoset{}, ErrNotFound
	}
	return models.ChoiceGeoset{ChoiceID: choiceID, GeosetKey: key}, nil
}

// Mesh summarizes what the catalog knows about a mesh file.
func (s *Service) Mesh(fileDataID int) (models.MeshInfo, error) {
	catalog, err := s.catalog()
	if err != nil {
		return models.MeshInfo{}, err
	}
	info, ok := catalog.MeshInfo(fileDataID)
	if !ok {
		return models.MeshInfo{}, ErrNotFound
	}
	return info, nil
}

// SkinLayers resolves the layer stack a choice paints onto a mesh's
// composite texture.
func (s *Service) SkinLayers(meshFileID, choiceID int) ([]models.SkinMaterial, error) {
	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}
	layers, ok := catalog.SkinLayers(meshFileID, choiceID)
	if !ok {
		return nil, ErrNotFound
	}
	return layers, nil
}

// ResolveTexture picks the texture a choice applies to a mesh given the
// caller's current selections.
func (s *Service) ResolveTexture(meshFileID, choiceID int, selections []int) (models.ChoiceTexture, error) {
	catalog, err := s.catalog()
	if err != nil {
		return models.ChoiceTexture{}, err
	}
	texture, ok := catalog.ResolveTexture(meshFileID, choiceID, selections)
	if !ok {
		return models.ChoiceTexture{}, ErrNotFound
	}
	return texture, nil
}

// TextureFileIDs lists every texture file the published catalog references.
func (s *Service) TextureFileIDs() ([]int, error) {
	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}
	return catalog.TextureFileIDs(), nil
}
