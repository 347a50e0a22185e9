package dbc_test

import (
	"testing"

	"chr-catalog/core/dbc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRegistry(t *testing.T) {
	names := dbc.AllTables()
	require.Len(t, names, 12)

	// Every registered table resolves a mirror name, a prototype and a slice.
	for _, name := range names {
		dbName, ok := dbc.DBTableName(name)
		assert.True(t, ok, name)
		assert.NotEmpty(t, dbName, name)

		proto, ok := dbc.Prototype(name)
		assert.True(t, ok, name)
		assert.NotNil(t, proto, name)

		slice, ok := dbc.NewRowSlice(name)
		assert.True(t, ok, name)
		assert.NotNil(t, slice, name)

		model, ok := dbc.MirrorModel(name)
		assert.True(t, ok, name)
		assert.NotNil(t, model, name)
	}
}

func TestTableRegistryNames(t *testing.T) {
	dbName, ok := dbc.DBTableName(dbc.TableCharComponentTextureSections)
	require.True(t, ok)
	assert.Equal(t, "char_component_texture_sections", dbName)

	dbName, ok = dbc.DBTableName(dbc.TableChrModel)
	require.True(t, ok)
	assert.Equal(t, "chr_model", dbName)

	_, ok = dbc.DBTableName("NotATable")
	assert.False(t, ok)
}

func TestNewRowSliceTypes(t *testing.T) {
	slice, ok := dbc.NewRowSlice(dbc.TableChrModel)
	require.True(t, ok)
	_, isTyped := slice.(*[]dbc.ChrModel)
	assert.True(t, isTyped)

	slice, ok = dbc.NewRowSlice(dbc.TableTextureFileData)
	require.True(t, ok)
	_, isTyped = slice.(*[]dbc.TextureFileData)
	assert.True(t, isTyped)
}
