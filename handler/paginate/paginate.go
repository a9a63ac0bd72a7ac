package paginate

import (
	"net/url"
	"strconv"

	"github.com/inkwell/database/repository/pagination"
)

// NewFrom returns nil when the query carries neither page nor limit, which
// tells the caller to answer with a bare list.
func NewFrom(query url.Values) *pagination.Paginate {
	if !query.Has("page") && !query.Has("limit") {
		return nil
	}

	page := pagination.MinPage
	limit := pagination.DefaultLimit

	if value, err := strconv.Atoi(query.Get("page")); err == nil {
		page = value
	}

	if value, err := strconv.Atoi(query.Get("limit")); err == nil {
		limit = value
	}

	paginate := pagination.NewPaginate(page, limit)

	return &paginate
}
