package checks

import (
	"fmt"
	"reflect"
	"strings"

	"asset-ledger/core/database"

	"gorm.io/gorm"
)

// SchemaReport compares the live tables with the store models.
type SchemaReport struct {
	Dialect string                 `json:"dialect"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies the database schema using the GORM models as the source of truth.
func CheckSchema(db *gorm.DB, models []any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Dialect: db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
		Matched: true,
	}

	for _, model := range models {
		typ := reflect.TypeOf(model)
		if typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		if typ.Kind() != reflect.Struct {
			return nil, fmt.Errorf("model %T is not a struct", model)
		}

		tabler, ok := reflect.New(typ).Interface().(interface{ TableName() string })
		if !ok {
			return nil, fmt.Errorf("model %s does not implement TableName", typ.Name())
		}
		table := tabler.TableName()

		actual, err := database.GetTableColumns(db, table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		tbl := compareTable(typ, actual)
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}

func compareTable(typ reflect.Type, actual []database.ColumnInfo) TableReport {
	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	byName := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		byName[col.Field] = col
	}

	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("gorm")
		name := parseGormColumn(tag)
		if name == "" {
			continue
		}

		col, exists := byName[name]
		if !exists {
			tbl.MissingColumns = append(tbl.MissingColumns, name)
			tbl.Status = "error"
			continue
		}

		// Only explicit type: tags are compared; size-only columns vary by dialect.
		if expected := strings.ToLower(parseGormType(tag)); expected != "" && !strings.Contains(col.Type, expected) {
			tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", name, expected, col.Type))
			tbl.Status = "error"
		}
	}
	return tbl
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	return tagValue(tag, "column:")
}

func parseGormType(tag string) string {
	return tagValue(tag, "type:")
}

func tagValue(tag, prefix string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, prefix) {
			return strings.TrimPrefix(p, prefix)
		}
	}
	return ""
}
