package persistence

import (
	"strings"

	"gorm.io/gorm/clause"
)

// sortColumns maps the sort keys accepted from clients to table columns.
// Anything outside the map falls back to the default column, so user input
// never reaches ORDER BY.
type sortColumns struct {
	columns map[string]string
	def     string
}

func newSortColumns(def string, keys ...string) sortColumns {
	columns := make(map[string]string, len(keys)+3)
	for _, k := range append([]string{"id", "created_at", "updated_at"}, keys...) {
		columns[k] = k
	}
	return sortColumns{columns: columns, def: def}
}

// alias accepts key as another name for column
func (s sortColumns) alias(key, column string) sortColumns {
	s.columns[key] = column
	return s
}

// column resolves a client sort key, returning the default when unknown
func (s sortColumns) column(key string) string {
	if col, ok := s.columns[strings.TrimSpace(key)]; ok {
		return col
	}
	return s.def
}

// orderBy builds the ORDER BY clause for a key and direction. Only "asc"
// (any case) sorts ascending.
func (s sortColumns) orderBy(key, dir string) clause.OrderByColumn {
	return clause.OrderByColumn{
		Column: clause.Column{Name: s.column(key)},
		Desc:   !strings.EqualFold(strings.TrimSpace(dir), "asc"),
	}
}

var productSortColumns = newSortColumns("created_at",
	"name", "name_ar", "price", "discount_price", "rating", "is_active", "is_featured",
)

var orderSortColumns = newSortColumns("created_at",
	"order_number", "customer_name", "total_price", "status",
).alias("total", "total_price")
