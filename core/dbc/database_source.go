package dbc

import (
	"context"
	"fmt"

	"chr-catalog/core/database"

	"gorm.io/gorm"
)

// DatabaseSource reads dataset tables from a hotfix-style MySQL mirror.
// The mirror stores one table per dataset table, snake_cased, with array
// columns flattened using 1-based suffixes (the TrinityCore convention).
type DatabaseSource struct {
	db *gorm.DB
}

// NewDatabaseSource creates a source reading from the given connection.
func NewDatabaseSource(db *gorm.DB) *DatabaseSource {
	return &DatabaseSource{db: db}
}

// Name implements Source.
func (s *DatabaseSource) Name() string {
	return SourceDatabase
}

// HasTable implements Source.
func (s *DatabaseSource) HasTable(ctx context.Context, table string) (bool, error) {
	dbName, ok := DBTableName(table)
	if !ok {
		return false, fmt.Errorf("unknown table %s", table)
	}
	return database.TableExists(s.db.WithContext(ctx), dbName), nil
}

// Load implements Source. Rows come back ordered by primary key so both
// source kinds feed the catalog builder in the same order.
func (s *DatabaseSource) Load(ctx context.Context, table string, out any) error {
	tx := s.db.WithContext(ctx)

	switch dest := out.(type) {
	case *[]ChrModel:
		return s.find(tx.Order("ID"), table, dest)
	case *[]CreatureModelData:
		return s.find(tx.Order("ID"), table, dest)
	case *[]CreatureDisplayInfoGeosetData:
		return s.find(tx.Order("ID"), table, dest)
	case *[]ChrCustomizationOption:
		return s.find(tx.Order("ID"), table, dest)
	case *[]ChrCustomizationChoice:
		return s.find(tx.Order("ID"), table, dest)
	case *[]ChrCustomizationMaterial:
		return s.find(tx.Order("ID"), table, dest)
	case *[]ChrCustomizationElement:
		return s.find(tx.Order("ID"), table, dest)
	case *[]ChrCustomizationGeoset:
		return s.find(tx.Order("ID"), table, dest)
	case *[]CharComponentTextureSection:
		return s.find(tx.Order("ID"), table, dest)
	case *[]TextureFileData:
		return s.find(tx.Order("FileDataID"), table, dest)
	case *[]CreatureDisplayInfo:
		var rows []displayInfoRow
		if err := tx.Order("ID").Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to load table %s: %w", table, err)
		}
		*dest = make([]CreatureDisplayInfo, 0, len(rows))
		for _, r := range rows {
			*dest = append(*dest, r.ToRow())
		}
		return nil
	case *[]ChrModelTextureLayer:
		var rows []textureLayerRow
		if err := tx.Order("ID").Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to load table %s: %w", table, err)
		}
		*dest = make([]ChrModelTextureLayer, 0, len(rows))
		for _, r := range rows {
			*dest = append(*dest, r.ToRow())
		}
		return nil
	default:
		return fmt.Errorf("unsupported row type %T for table %s", out, table)
	}
}

func (s *DatabaseSource) find(tx *gorm.DB, table string, dest any) error {
	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("failed to load table %s: %w", table, err)
	}
	return nil
}

// displayInfoRow is the mirror layout of CreatureDisplayInfo.
type displayInfoRow struct {
	ID                          int `gorm:"primaryKey;column:ID"`
	ModelID                     int `gorm:"column:ModelID"`
	TextureVariationFileDataID1 int `gorm:"column:TextureVariationFileDataID1"`
	TextureVariationFileDataID2 int `gorm:"column:TextureVariationFileDataID2"`
	TextureVariationFileDataID3 int `gorm:"column:TextureVariationFileDataID3"`
}

func (displayInfoRow) TableName() string {
	return "creature_display_info"
}

// ToRow converts the flattened mirror layout back into the canonical row.
func (r displayInfoRow) ToRow() CreatureDisplayInfo {
	return CreatureDisplayInfo{
		ID:      r.ID,
		ModelID: r.ModelID,
		TextureVariationFileDataID: [3]int{
			r.TextureVariationFileDataID1,
			r.TextureVariationFileDataID2,
			r.TextureVariationFileDataID3,
		},
	}
}

// MirrorModel returns the GORM row model matching the mirror layout of a
// dataset table. For tables with array columns this is the flattened variant,
// for everything else the canonical row. Schema checks reflect over it.
func MirrorModel(table string) (any, bool) {
	switch table {
	case TableCreatureDisplayInfo:
		return displayInfoRow{}, true
	case TableChrModelTextureLayer:
		return textureLayerRow{}, true
	default:
		return Prototype(table)
	}
}

// textureLayerRow is the mirror layout of ChrModelTextureLayer.
type textureLayerRow struct {
	ID                            int `gorm:"primaryKey;column:ID"`
	TextureType                   int `gorm:"column:TextureType"`
	Layer                         int `gorm:"column:Layer"`
	Flags                         int `gorm:"column:Flags"`
	BlendMode                     int `gorm:"column:BlendMode"`
	TextureSectionTypeBitMask     int `gorm:"column:TextureSectionTypeBitMask"`
	ChrModelTextureTargetID1      int `gorm:"column:ChrModelTextureTargetID1"`
	ChrModelTextureTargetID2      int `gorm:"column:ChrModelTextureTargetID2"`
	CharComponentTextureLayoutsID int `gorm:"column:CharComponentTextureLayoutsID"`
}

func (textureLayerRow) TableName() string {
	return "chr_model_texture_layer"
}

// ToRow converts the flattened mirror layout back into the canonical row.
func (r textureLayerRow) ToRow() ChrModelTextureLayer {
	return ChrModelTextureLayer{
		ID:                        r.ID,
		TextureType:               r.TextureType,
		Layer:                     r.Layer,
		Flags:                     r.Flags,
		BlendMode:                 r.BlendMode,
		TextureSectionTypeBitMask: r.TextureSectionTypeBitMask,
		ChrModelTextureTargetID: [2]int{
			r.ChrModelTextureTargetID1,
			r.ChrModelTextureTargetID2,
		},
		CharComponentTextureLayoutsID: r.CharComponentTextureLayoutsID,
	}
}
