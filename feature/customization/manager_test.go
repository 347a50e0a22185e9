package customization_test

import (
	"context"
	"errors"
	"testing"

	"chr-catalog/core/dbc"
	"chr-catalog/feature/customization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestManagerLoad(t *testing.T) {
	t.Run("Disabled By Configuration", func(t *testing.T) {
		src := &fakeSource{name: "fixture", tables: fixtureTables(), hasTable: true}
		manager := customization.NewManager(src, dbc.Config{Customization: false}, zap.NewNop())

		require.NoError(t, manager.Load(context.Background()))
		assert.False(t, manager.Enabled())
		assert.False(t, manager.Available())
		assert.Nil(t, manager.Catalog())
	})

	t.Run("Tables Absent In Source", func(t *testing.T) {
		src := &fakeSource{name: "fixture", tables: fixtureTables(), hasTable: false}
		manager := customization.NewManager(src, dbc.Config{Customization: true}, zap.NewNop())

		require.NoError(t, manager.Load(context.Background()))
		assert.True(t, manager.Enabled())
		assert.False(t, manager.Available())
	})

	t.Run("Probe Failure", func(t *testing.T) {
		src := &fakeSource{name: "fixture", hasTableErr: errors.New("connection refused")}
		manager := customization.NewManager(src, dbc.Config{Customization: true}, zap.NewNop())

		err := manager.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to probe customization tables")
	})

	t.Run("Publishes Catalog", func(t *testing.T) {
		src := &fakeSource{name: "fixture", tables: fixtureTables(), hasTable: true}
		manager := customization.NewManager(src, dbc.Config{Customization: true, Build: "11.0.7"}, zap.NewNop())

		require.NoError(t, manager.Load(context.Background()))
		require.True(t, manager.Available())
		assert.Equal(t, "fixture", manager.SourceName())

		catalog := manager.Catalog()
		assert.Equal(t, "11.0.7", catalog.Build())
		assert.Equal(t, 2, catalog.Stats().Models)
	})
}

func TestManagerReloadKeepsCatalogOnFailure(t *testing.T) {
	src := &fakeSource{
		name:     "fixture",
		tables:   fixtureTables(),
		hasTable: true,
		loadErr:  map[string]error{},
	}
	manager := customization.NewManager(src, dbc.Config{Customization: true}, zap.NewNop())
	require.NoError(t, manager.Load(context.Background()))

	previous := manager.Catalog()
	require.NotNil(t, previous)

	src.loadErr[dbc.TableChrModel] = errors.New("read timeout")
	require.Error(t, manager.Reload(context.Background()))
	assert.Same(t, previous, manager.Catalog())
}
