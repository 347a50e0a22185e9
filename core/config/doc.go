// Package config provides configuration management for the chr-catalog service.
//
// It utilizes Viper for loading configuration from environment variables
// and .env files, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: hotfix mirror connection details (MySQL or SQLite)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level, format and optional rotating file
//   - Dataset: dataset source selection and catalog toggles
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
