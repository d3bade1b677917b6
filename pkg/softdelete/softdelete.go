// Package softdelete provides the read scopes and the writer for tables that
// carry a nullable deleted_at column.
//
// Reads pick a scope explicitly:
//
//	db.Scopes(softdelete.Active).Find(&posts)   // default paths
//	db.Scopes(softdelete.All).Find(&posts)      // administrative paths
package softdelete

import (
	"time"

	"gorm.io/gorm"
)

const Column = "deleted_at"

// Active hides soft-deleted rows.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where(Column + " IS NULL")
}

// ActiveIn is Active qualified by table, for queries that join other
// soft-deletable tables.
func ActiveIn(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table + "." + Column + " IS NULL")
	}
}

// All keeps soft-deleted rows.
func All(db *gorm.DB) *gorm.DB {
	return db
}

// Scope returns All when includeDeleted is set and ActiveIn(table)
// otherwise. List queries use it to honour an include-deleted filter.
func Scope(table string, includeDeleted bool) func(*gorm.DB) *gorm.DB {
	if includeDeleted {
		return All
	}
	return ActiveIn(table)
}

// Mark sets deleted_at on the row with the given id and writes no other
// column: UpdateColumn skips hooks and the updated_at timestamp. It reports
// false when the row does not exist or is already deleted.
func Mark(db *gorm.DB, model interface{}, id string, at time.Time) (bool, error) {
	result := db.Model(model).
		Where("id = ? AND "+Column+" IS NULL", id).
		UpdateColumn(Column, at)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
