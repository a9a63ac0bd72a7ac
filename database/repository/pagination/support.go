package pagination

import "gorm.io/gorm"

// Count counts the distinct rows of a cloned query, so joins that fan out
// rows are not counted twice.
func Count(query *gorm.DB, session *gorm.Session, distinct string) (int64, error) {
	var total int64

	err := query.
		Session(session).
		Distinct(distinct).
		Count(&total).Error

	return total, err
}
