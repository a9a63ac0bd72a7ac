package queries

import (
	"net/url"
	"strings"

	"github.com/inkwell/pkg/portal"
)

// PostFilters carries the optional narrowing criteria of a post listing.
type PostFilters struct {
	TagSlug      string
	CategorySlug string
	Type         string
	Search       string // case-insensitive partial match over title and content
}

func MakePostFiltersFrom(values url.Values) PostFilters {
	return PostFilters{
		TagSlug:      values.Get("tag_slug"),
		CategorySlug: values.Get("category_slug"),
		Type:         values.Get("type"),
		Search:       values.Get("search"),
	}
}

// Slugs and the type are matched exactly. Only surrounding whitespace is dropped.
func (f PostFilters) GetTagSlug() string {
	return strings.TrimSpace(f.TagSlug)
}

func (f PostFilters) GetCategorySlug() string {
	return strings.TrimSpace(f.CategorySlug)
}

func (f PostFilters) GetType() string {
	return strings.TrimSpace(f.Type)
}

// GetSearch is folded to lower case since the search match ignores case.
func (f PostFilters) GetSearch() string {
	str := portal.NewStringable(f.Search)

	return strings.TrimSpace(str.ToLower())
}
