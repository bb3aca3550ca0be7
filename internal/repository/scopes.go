package repository

import "gorm.io/gorm"

// notDeleted narrows a query to rows that are not soft deleted. Every default
// read path applies this scope; the IncludeDeleted methods are the only call
// sites allowed to bypass it.
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}
