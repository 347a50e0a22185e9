package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the log output format (json, console).
	Format string `mapstructure:"format" default:"json"`
	// File is the path of an optional rotating log file. Empty disables file output.
	File string `mapstructure:"file" default:""`
	// FileMaxSizeMB is the size in megabytes at which the log file is rotated.
	FileMaxSizeMB int `mapstructure:"file_max_size_mb" default:"100"`
	// FileMaxBackups is the number of rotated log files to retain.
	FileMaxBackups int `mapstructure:"file_max_backups" default:"3"`
	// FileMaxAgeDays is the number of days to retain rotated log files.
	FileMaxAgeDays int `mapstructure:"file_max_age_days" default:"28"`
}
