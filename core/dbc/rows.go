package dbc

// Dataset table names, shared by export objects and the hotfix mirror.
const (
	TableChrModel                      = "ChrModel"
	TableCreatureDisplayInfo           = "CreatureDisplayInfo"
	TableCreatureModelData             = "CreatureModelData"
	TableCreatureDisplayInfoGeosetData = "CreatureDisplayInfoGeosetData"
	TableChrCustomizationOption        = "ChrCustomizationOption"
	TableChrCustomizationChoice        = "ChrCustomizationChoice"
	TableChrCustomizationMaterial      = "ChrCustomizationMaterial"
	TableChrCustomizationElement       = "ChrCustomizationElement"
	TableChrCustomizationGeoset        = "ChrCustomizationGeoset"
	TableChrModelTextureLayer          = "ChrModelTextureLayer"
	TableCharComponentTextureSections  = "CharComponentTextureSections"
	TableTextureFileData               = "TextureFileData"
)

// ChrModel is one playable character model.
type ChrModel struct {
	ID                           int `json:"ID" gorm:"primaryKey;column:ID"`
	Sex                          int `json:"Sex" gorm:"column:Sex"`
	DisplayID                    int `json:"DisplayID" gorm:"column:DisplayID"`
	CharComponentTextureLayoutID int `json:"CharComponentTextureLayoutID" gorm:"column:CharComponentTextureLayoutID"`
	Flags                        int `json:"Flags" gorm:"column:Flags"`
}

func (ChrModel) TableName() string {
	return "chr_model"
}

// CreatureDisplayInfo is one display variant of a creature or character model.
// TextureVariationFileDataID holds up to three whole-skin texture candidates.
// The mirror flattens the array, so this row has no direct GORM mapping.
type CreatureDisplayInfo struct {
	ID                         int    `json:"ID"`
	ModelID                    int    `json:"ModelID"`
	TextureVariationFileDataID [3]int `json:"TextureVariationFileDataID"`
}

// CreatureModelData links a model to its mesh file.
type CreatureModelData struct {
	ID         int `json:"ID" gorm:"primaryKey;column:ID"`
	FileDataID int `json:"FileDataID" gorm:"column:FileDataID"`
}

func (CreatureModelData) TableName() string {
	return "creature_model_data"
}

// CreatureDisplayInfoGeosetData is one extra geoset activation of a display.
type CreatureDisplayInfoGeosetData struct {
	ID                    int `json:"ID" gorm:"primaryKey;column:ID"`
	GeosetIndex           int `json:"GeosetIndex" gorm:"column:GeosetIndex"`
	GeosetValue           int `json:"GeosetValue" gorm:"column:GeosetValue"`
	CreatureDisplayInfoID int `json:"CreatureDisplayInfoID" gorm:"column:CreatureDisplayInfoID"`
}

func (CreatureDisplayInfoGeosetData) TableName() string {
	return "creature_display_info_geoset_data"
}

// ChrCustomizationOption is one customization slot of a model (skin color,
// face, hair style, ...).
type ChrCustomizationOption struct {
	ID                         int    `json:"ID" gorm:"primaryKey;column:ID"`
	Name                       string `json:"Name_lang" gorm:"column:Name_lang"`
	Flags                      int    `json:"Flags" gorm:"column:Flags"`
	ChrModelID                 int    `json:"ChrModelID" gorm:"column:ChrModelID"`
	SortIndex                  int    `json:"SortIndex" gorm:"column:SortIndex"`
	ChrCustomizationCategoryID int    `json:"ChrCustomizationCategoryID" gorm:"column:ChrCustomizationCategoryID"`
}

func (ChrCustomizationOption) TableName() string {
	return "chr_customization_option"
}

// ChrCustomizationChoice is one selectable value of an option.
type ChrCustomizationChoice struct {
	ID                       int    `json:"ID" gorm:"primaryKey;column:ID"`
	Name                     string `json:"Name_lang" gorm:"column:Name_lang"`
	ChrCustomizationOptionID int    `json:"ChrCustomizationOptionID" gorm:"column:ChrCustomizationOptionID"`
	ChrCustomizationReqID    int    `json:"ChrCustomizationReqID" gorm:"column:ChrCustomizationReqID"`
	OrderIndex               int    `json:"OrderIndex" gorm:"column:OrderIndex"`
	Flags                    int    `json:"Flags" gorm:"column:Flags"`
}

func (ChrCustomizationChoice) TableName() string {
	return "chr_customization_choice"
}

// ChrCustomizationMaterial names a texture target and the material resource
// behind it.
type ChrCustomizationMaterial struct {
	ID                      int `json:"ID" gorm:"primaryKey;column:ID"`
	ChrModelTextureTargetID int `json:"ChrModelTextureTargetID" gorm:"column:ChrModelTextureTargetID"`
	MaterialResourcesID     int `json:"MaterialResourcesID" gorm:"column:MaterialResourcesID"`
}

func (ChrCustomizationMaterial) TableName() string {
	return "chr_customization_material"
}

// ChrCustomizationElement is the effect of picking a choice: it can toggle a
// geoset, apply a material, swap a skinned model and more. Zero foreign keys
// mean "no effect of that kind".
type ChrCustomizationElement struct {
	ID                              int `json:"ID" gorm:"primaryKey;column:ID"`
	ChrCustomizationChoiceID        int `json:"ChrCustomizationChoiceID" gorm:"column:ChrCustomizationChoiceID"`
	RelatedChrCustomizationChoiceID int `json:"RelatedChrCustomizationChoiceID" gorm:"column:RelatedChrCustomizationChoiceID"`
	ChrCustomizationGeosetID        int `json:"ChrCustomizationGeosetID" gorm:"column:ChrCustomizationGeosetID"`
	ChrCustomizationSkinnedModelID  int `json:"ChrCustomizationSkinnedModelID" gorm:"column:ChrCustomizationSkinnedModelID"`
	ChrCustomizationMaterialID      int `json:"ChrCustomizationMaterialID" gorm:"column:ChrCustomizationMaterialID"`
	ChrCustomizationBoneSetID       int `json:"ChrCustomizationBoneSetID" gorm:"column:ChrCustomizationBoneSetID"`
	ChrCustomizationCondModelID     int `json:"ChrCustomizationCondModelID" gorm:"column:ChrCustomizationCondModelID"`
}

func (ChrCustomizationElement) TableName() string {
	return "chr_customization_element"
}

// ChrCustomizationGeoset describes a mesh group activation.
type ChrCustomizationGeoset struct {
	ID         int `json:"ID" gorm:"primaryKey;column:ID"`
	GeosetType int `json:"GeosetType" gorm:"column:GeosetType"`
	GeosetID   int `json:"GeosetID" gorm:"column:GeosetID"`
	Modifier   int `json:"Modifier" gorm:"column:Modifier"`
}

func (ChrCustomizationGeoset) TableName() string {
	return "chr_customization_geoset"
}

// ChrModelTextureLayer places a texture target on the compositing stack of a
// texture layout. Only the first entry of ChrModelTextureTargetID is used for
// layer lookup. The mirror flattens the array, so this row has no direct GORM
// mapping.
type ChrModelTextureLayer struct {
	ID                            int    `json:"ID"`
	TextureType                   int    `json:"TextureType"`
	Layer                         int    `json:"Layer"`
	Flags                         int    `json:"Flags"`
	BlendMode                     int    `json:"BlendMode"`
	TextureSectionTypeBitMask     int    `json:"TextureSectionTypeBitMask"`
	ChrModelTextureTargetID       [2]int `json:"ChrModelTextureTargetID"`
	CharComponentTextureLayoutsID int    `json:"CharComponentTextureLayoutsID"`
}

// CharComponentTextureSection is one named rectangle of a texture layout
// atlas (torso, legs, face, ...).
type CharComponentTextureSection struct {
	ID                           int `json:"ID" gorm:"primaryKey;column:ID"`
	CharComponentTextureLayoutID int `json:"CharComponentTextureLayoutID" gorm:"column:CharComponentTextureLayoutID"`
	SectionType                  int `json:"SectionType" gorm:"column:SectionType"`
	X                            int `json:"X" gorm:"column:X"`
	Y                            int `json:"Y" gorm:"column:Y"`
	Width                        int `json:"Width" gorm:"column:Width"`
	Height                       int `json:"Height" gorm:"column:Height"`
	OverlapSectionMask           int `json:"OverlapSectionMask" gorm:"column:OverlapSectionMask"`
}

func (CharComponentTextureSection) TableName() string {
	return "char_component_texture_sections"
}

// TextureFileData maps a material resource to a concrete texture file.
// UsageType zero marks the plain color pass used for compositing.
type TextureFileData struct {
	FileDataID          int `json:"FileDataID" gorm:"primaryKey;column:FileDataID"`
	UsageType           int `json:"UsageType" gorm:"column:UsageType"`
	MaterialResourcesID int `json:"MaterialResourcesID" gorm:"column:MaterialResourcesID"`
}

func (TextureFileData) TableName() string {
	return "texture_file_data"
}

// tableInfo binds a dataset table name to its mirror table name and row type.
type tableInfo struct {
	name     string
	dbName   string
	proto    func() any
	newSlice func() any
}

// tables lists every dataset table in canonical load order. Side tables come
// before the tables that reference them.
var tables = []tableInfo{
	{TableCreatureModelData, "creature_model_data",
		func() any { return CreatureModelData{} }, func() any { return &[]CreatureModelData{} }},
	{TableCreatureDisplayInfo, "creature_display_info",
		func() any { return CreatureDisplayInfo{} }, func() any { return &[]CreatureDisplayInfo{} }},
	{TableCreatureDisplayInfoGeosetData, "creature_display_info_geoset_data",
		func() any { return CreatureDisplayInfoGeosetData{} }, func() any { return &[]CreatureDisplayInfoGeosetData{} }},
	{TableChrModel, "chr_model",
		func() any { return ChrModel{} }, func() any { return &[]ChrModel{} }},
	{TableChrCustomizationOption, "chr_customization_option",
		func() any { return ChrCustomizationOption{} }, func() any { return &[]ChrCustomizationOption{} }},
	{TableChrCustomizationChoice, "chr_customization_choice",
		func() any { return ChrCustomizationChoice{} }, func() any { return &[]ChrCustomizationChoice{} }},
	{TableChrCustomizationMaterial, "chr_customization_material",
		func() any { return ChrCustomizationMaterial{} }, func() any { return &[]ChrCustomizationMaterial{} }},
	{TableChrCustomizationElement, "chr_customization_element",
		func() any { return ChrCustomizationElement{} }, func() any { return &[]ChrCustomizationElement{} }},
	{TableChrCustomizationGeoset, "chr_customization_geoset",
		func() any { return ChrCustomizationGeoset{} }, func() any { return &[]ChrCustomizationGeoset{} }},
	{TableChrModelTextureLayer, "chr_model_texture_layer",
		func() any { return ChrModelTextureLayer{} }, func() any { return &[]ChrModelTextureLayer{} }},
	{TableCharComponentTextureSections, "char_component_texture_sections",
		func() any { return CharComponentTextureSection{} }, func() any { return &[]CharComponentTextureSection{} }},
	{TableTextureFileData, "texture_file_data",
		func() any { return TextureFileData{} }, func() any { return &[]TextureFileData{} }},
}

// AllTables returns the dataset table names in canonical load order.
func AllTables() []string {
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, t.name)
	}
	return names
}

func lookupTable(name string) (tableInfo, bool) {
	for _, t := range tables {
		if t.name == name {
			return t, true
		}
	}
	return tableInfo{}, false
}

// DBTableName returns the hotfix mirror table name for a dataset table.
func DBTableName(name string) (string, bool) {
	t, ok := lookupTable(name)
	if !ok {
		return "", false
	}
	return t.dbName, true
}

// Prototype returns a zero row value for the given table. Used for schema
// generation and reflection-based checks.
func Prototype(name string) (any, bool) {
	t, ok := lookupTable(name)
	if !ok {
		return nil, false
	}
	return t.proto(), true
}

// NewRowSlice returns a pointer to an empty row slice of the given table,
// suitable as the out argument of Source.Load.
func NewRowSlice(name string) (any, bool) {
	t, ok := lookupTable(name)
	if !ok {
		return nil, false
	}
	return t.newSlice(), true
}
