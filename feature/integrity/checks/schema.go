package checks

import (
	"fmt"
	"reflect"
	"strings"

	"chr-catalog/core/database"
	"chr-catalog/core/dbc"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a mirror schema check.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "missing", "error"
}

// CheckSchema verifies the hotfix mirror schema using the dataset row models
// as the source of truth. Every mirror table must exist and carry each column
// its row model declares; column names compare case-insensitively because the
// inspector lowercases what the server reports.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Tables:  make(map[string]TableReport),
		Matched: true,
	}

	for _, table := range dbc.AllTables() {
		model, ok := dbc.MirrorModel(table)
		if !ok {
			continue
		}
		dbName, ok := dbc.DBTableName(table)
		if !ok {
			continue
		}

		if !database.TableExists(db, dbName) {
			report.Tables[dbName] = TableReport{MissingColumns: []string{}, Status: "missing"}
			report.Matched = false
			continue
		}

		actual, err := database.Columns(db, dbName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", dbName, err))
			report.Matched = false
			continue
		}
		actualSet := make(map[string]struct{}, len(actual))
		for _, col := range actual {
			actualSet[col.Field] = struct{}{}
		}

		tblReport := TableReport{MissingColumns: []string{}, Status: "ok"}

		val := reflect.TypeOf(model)
		for i := 0; i < val.NumField(); i++ {
			colName := parseGormColumn(val.Field(i).Tag.Get("gorm"))
			if colName == "" {
				continue
			}
			if _, exists := actualSet[strings.ToLower(colName)]; !exists {
				tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
				tblReport.Status = "error"
				report.Matched = false
			}
		}

		report.Tables[dbName] = tblReport
	}

	return report, nil
}

// parseGormColumn extracts the column name from a GORM struct tag.
func parseGormColumn(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}
