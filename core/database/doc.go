// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL, PostgreSQL or SQLite
// connections from the application's configuration. The "memory" driver is
// recognised here only as a constant; selecting it bypasses SQL entirely.
//
// # Schema Inspection
//
// GetTableColumns reads the live column list of a table in a dialect-aware way.
// The integrity feature compares it against the gorm models of the ledger tables.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "movements")
package database
