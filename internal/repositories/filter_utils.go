package repositories

import (
	"strings"

	"lostfound/internal/models"
)

// buildItemSearchWhere turns an ItemSearchFilter into a WHERE clause and its
// arguments. The query matches case-insensitive substrings of the item name
// or description; location "" and "All" mean no location filter.
func buildItemSearchWhere(filter models.ItemSearchFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		conds = append(conds, "(LOWER(i.item_name) LIKE ? OR LOWER(i.description) LIKE ?)")
		args = append(args, pattern, pattern)
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" && loc != "All" {
		conds = append(conds, "i.location = ?")
		args = append(args, loc)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
