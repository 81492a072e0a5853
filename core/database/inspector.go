package database

import (
	"fmt"
	"strings"

	"asset-ledger/core/utils"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // Pointer because NULL default is possible
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
// Field and Type are lowercased so callers can compare them directly.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo

	switch db.Dialector.Name() {
	case "sqlite":
		var rows []map[string]interface{}
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, row := range rows {
			info := ColumnInfo{
				Field:   utils.ToString(row["name"]),
				Type:    utils.ToString(row["type"]),
				Default: utils.StringPtr(row["dflt_value"]),
				Null:    "YES",
			}
			if utils.ToBool(row["notnull"]) {
				info.Null = "NO"
			}
			if utils.ToInt(row["pk"]) > 0 {
				info.Key = "PRI"
			}
			columns = append(columns, info)
		}
	case "postgres":
		type pgColumn struct {
			ColumnName    string
			DataType      string
			IsNullable    string
			ColumnDefault *string
		}
		var rows []pgColumn
		err := db.Raw(`SELECT column_name, data_type, is_nullable, column_default
			FROM information_schema.columns WHERE table_name = ? ORDER BY ordinal_position`, tableName).
			Scan(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range rows {
			columns = append(columns, ColumnInfo{
				Field:   col.ColumnName,
				Type:    col.DataType,
				Null:    col.IsNullable,
				Default: col.ColumnDefault,
			})
		}
	default:
		if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
	}

	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}
