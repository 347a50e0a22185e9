package dbc_test

import (
	"context"
	"testing"

	"chr-catalog/core/dbc"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestDatabaseSourceLoad(t *testing.T) {
	t.Run("Plain table", func(t *testing.T) {
		db, mock := setupMockDB(t)

		rows := sqlmock.NewRows([]string{"ID", "Sex", "DisplayID", "CharComponentTextureLayoutID", "Flags"}).
			AddRow(1, 0, 100, 5, 0).
			AddRow(2, 1, 101, 5, 0)
		mock.ExpectQuery("SELECT \\* FROM `chr_model` ORDER BY ID").WillReturnRows(rows)

		src := dbc.NewDatabaseSource(db)
		var models []dbc.ChrModel
		err := src.Load(context.Background(), dbc.TableChrModel, &models)
		require.NoError(t, err)
		require.Len(t, models, 2)
		assert.Equal(t, 100, models[0].DisplayID)
		assert.Equal(t, 5, models[1].CharComponentTextureLayoutID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Flattened array columns are normalized", func(t *testing.T) {
		db, mock := setupMockDB(t)

		rows := sqlmock.NewRows([]string{"ID", "ModelID", "TextureVariationFileDataID1", "TextureVariationFileDataID2", "TextureVariationFileDataID3"}).
			AddRow(9, 4, 111, 222, 0)
		mock.ExpectQuery("SELECT \\* FROM `creature_display_info` ORDER BY ID").WillReturnRows(rows)

		src := dbc.NewDatabaseSource(db)
		var displays []dbc.CreatureDisplayInfo
		err := src.Load(context.Background(), dbc.TableCreatureDisplayInfo, &displays)
		require.NoError(t, err)
		require.Len(t, displays, 1)
		assert.Equal(t, [3]int{111, 222, 0}, displays[0].TextureVariationFileDataID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Texture layer targets are normalized", func(t *testing.T) {
		db, mock := setupMockDB(t)

		rows := sqlmock.NewRows([]string{"ID", "TextureType", "Layer", "Flags", "BlendMode", "TextureSectionTypeBitMask", "ChrModelTextureTargetID1", "ChrModelTextureTargetID2", "CharComponentTextureLayoutsID"}).
			AddRow(31, 1, 0, 0, 0, -1, 7, 0, 5)
		mock.ExpectQuery("SELECT \\* FROM `chr_model_texture_layer` ORDER BY ID").WillReturnRows(rows)

		src := dbc.NewDatabaseSource(db)
		var layers []dbc.ChrModelTextureLayer
		err := src.Load(context.Background(), dbc.TableChrModelTextureLayer, &layers)
		require.NoError(t, err)
		require.Len(t, layers, 1)
		assert.Equal(t, [2]int{7, 0}, layers[0].ChrModelTextureTargetID)
		assert.Equal(t, -1, layers[0].TextureSectionTypeBitMask)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("TextureFileData orders by FileDataID", func(t *testing.T) {
		db, mock := setupMockDB(t)

		rows := sqlmock.NewRows([]string{"FileDataID", "UsageType", "MaterialResourcesID"}).
			AddRow(700, 0, 40).
			AddRow(701, 2, 40)
		mock.ExpectQuery("SELECT \\* FROM `texture_file_data` ORDER BY FileDataID").WillReturnRows(rows)

		src := dbc.NewDatabaseSource(db)
		var files []dbc.TextureFileData
		err := src.Load(context.Background(), dbc.TableTextureFileData, &files)
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, 700, files[0].FileDataID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unsupported destination type", func(t *testing.T) {
		db, _ := setupMockDB(t)

		src := dbc.NewDatabaseSource(db)
		var wrong []string
		err := src.Load(context.Background(), dbc.TableChrModel, &wrong)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported row type")
	})
}

func TestDatabaseSourceHasTable(t *testing.T) {
	t.Run("Unknown table", func(t *testing.T) {
		db, _ := setupMockDB(t)

		src := dbc.NewDatabaseSource(db)
		_, err := src.HasTable(context.Background(), "NotATable")
		assert.Error(t, err)
	})
}
