// Package dberr classifies constraint violations across the postgres and
// sqlite drivers.
package dberr

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// IsForeignKey reports whether err is a foreign key violation.
func IsForeignKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "SQLSTATE 23503") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed")
}
