package shared

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Filter is the paging, sorting and search part shared by list queries.
// Unknown OrderBy values are mapped to a default column by the repository.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}

// NewFilter returns page 1 of DefaultPageSize rows when page or pageSize is
// not positive, and caps pageSize at MaxPageSize.
func NewFilter(page, pageSize int) Filter {
	f := Filter{Page: page, PageSize: pageSize}
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.PageSize < 1:
		f.PageSize = DefaultPageSize
	case f.PageSize > MaxPageSize:
		f.PageSize = MaxPageSize
	}
	return f
}

// Sorted sets the sort column and direction
func (f Filter) Sorted(by, dir string) Filter {
	f.OrderBy, f.OrderDir = by, dir
	return f
}

// Offset is the number of rows skipped before the current page
func (f Filter) Offset() int {
	if f.Page < 1 || f.PageSize < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}
