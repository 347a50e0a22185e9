package integrity

import (
	"testing"

	"chr-catalog/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	mockClient := new(mocks.Client)
	// Pass nil db, the schema check reports the missing connection itself
	feature := NewFeature(stubSource{}, mockClient, "test-bucket", zap.NewNop(), nil, stubTextures{})

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
