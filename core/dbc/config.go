package dbc

// Supported dataset source kinds.
const (
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// Config holds configuration for the dataset access layer.
type Config struct {
	// Source selects where table rows are read from (storage, database).
	Source string `mapstructure:"source" default:"storage"`
	// Prefix is the object key prefix of table exports in the storage bucket.
	Prefix string `mapstructure:"prefix" default:"dbc"`
	// Build is a free-form label of the game build the dataset was exported from.
	Build string `mapstructure:"build" default:""`
	// Customization toggles loading of the character customization catalog.
	Customization bool `mapstructure:"customization" default:"true"`
}

// IsValidSource checks if the configured source kind is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceStorage, SourceDatabase:
		return true
	default:
		return false
	}
}
