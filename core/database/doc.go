// Package database handles the optional catalog database connection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local files and tests)
// from the application's configuration.
//
// # Schema Inspection
//
// TableColumns lists the column names of a table so the catalog store can verify that
// an existing character_skins table has what it needs before reading from it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	columns, err := database.TableColumns(db, "character_skins")
package database
