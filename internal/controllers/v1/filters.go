package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters adds LIKE filters for title and description and a search over both.
// A parameter that is set but empty matches the empty string.
func stringFilters(db, query *gorm.DB, setFields []string, title, description, search string) *gorm.DB {
	if title != "" {
		query = query.Where("title LIKE ?", fmt.Sprintf("%%%s%%", title))
	} else if slices.Contains(setFields, "Title") {
		query = query.Where("title = ''")
	}

	if description != "" {
		query = query.Where("description LIKE ?", fmt.Sprintf("%%%s%%", description))
	} else if slices.Contains(setFields, "Description") {
		query = query.Where("description = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("description LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("title LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
