package integrity

import (
	"context"

	"chr-catalog/core/dbc"
	"chr-catalog/core/storage"
	"chr-catalog/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TextureLister names the expected bucket contents: the texture files the
// published customization catalog references. The customization service
// satisfies it.
type TextureLister interface {
	TextureFileIDs() ([]int, error)
}

// Service handles integrity checks.
type Service struct {
	src      dbc.Source
	client   storage.Client
	bucket   string
	logger   *zap.Logger
	db       *gorm.DB
	textures TextureLister
}

// NewService creates a new integrity service. db may be nil when no mirror
// database is configured; the schema check then reports an error instead.
func NewService(src dbc.Source, client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, textures TextureLister) *Service {
	return &Service{
		src:      src,
		client:   client,
		bucket:   bucket,
		logger:   logger,
		db:       db,
		textures: textures,
	}
}

// CheckTables returns the dataset tables the configured source cannot serve.
func (s *Service) CheckTables(ctx context.Context) ([]string, error) {
	return checks.CheckTables(ctx, s.src)
}

// CheckTextures verifies that every texture file the catalog references
// exists in the storage bucket.
func (s *Service) CheckTextures(ctx context.Context) (*checks.TextureReport, error) {
	expected, err := s.textures.TextureFileIDs()
	if err != nil {
		return nil, err
	}
	return checks.CheckTextures(ctx, s.client, s.bucket, checks.TexturePrefix, expected)
}

// CheckSchema verifies the hotfix mirror schema against the dataset row models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}
