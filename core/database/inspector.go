package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type columnRow struct {
	Name string
}

// TableColumns returns the lowercased column names of table in declaration order,
// or nil when the table does not exist.
func TableColumns(db *gorm.DB, table string) ([]string, error) {
	query := "SELECT column_name AS name FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ? ORDER BY ordinal_position"
	if db.Dialector.Name() == "sqlite" {
		query = "SELECT name FROM pragma_table_info(?)"
	}

	var rows []columnRow
	if err := db.Raw(query, table).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = strings.ToLower(r.Name)
	}
	return names, nil
}
