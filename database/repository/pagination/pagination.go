package pagination

import "math"

// Pagination holds the data for a single page along with all pagination metadata.
// It's generic and can be used for any data type.
//
// NextPage and PreviousPage are pointers (*int) so they render as null when
// there isn't a next or previous page.
type Pagination[T any] struct {
	Results      []T   `json:"results"`
	Count        int64 `json:"count"`
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
	NextPage     *int  `json:"next_page"`
	PreviousPage *int  `json:"previous_page"`
}

func MakePagination[T any](data []T, paginate Paginate) *Pagination[T] {
	pSize := float64(paginate.Limit)
	if pSize <= 0 {
		pSize = DefaultLimit
	}

	totalPages := int(
		math.Ceil(paginate.GetNumItemsAsFloat() / pSize),
	)

	pagination := Pagination[T]{
		Results:      data,
		Page:         paginate.Page,
		Count:        paginate.GetNumItemsAsInt(),
		PageSize:     paginate.Limit,
		TotalPages:   totalPages,
		NextPage:     nil,
		PreviousPage: nil,
	}

	var nextPage *int
	if pagination.Page < pagination.TotalPages {
		p := pagination.Page + 1
		nextPage = &p
	}

	var prevPage *int
	if pagination.Page > 1 && pagination.Page <= pagination.TotalPages {
		p := pagination.Page - 1
		prevPage = &p
	}

	pagination.NextPage = nextPage
	pagination.PreviousPage = prevPage

	return &pagination
}

// HydratePagination transforms a paginated result containing items of a source type (S)
// into a new result containing items of a destination type (D).
//
// It takes a source Pagination and a mapper function that defines the conversion
// logic from an item of type S to an item of type D.
//
// Type Parameters:
//   - S: The source type (e.g., a database model like database.Post).
//   - D: The destination type (e.g., an API response DTO like PostResponse).
//
// The function returns a new Pagination with the transformed data, while preserving
// all original pagination metadata (Count, Page, etc.).
func HydratePagination[S any, D any](source *Pagination[S], mapper func(S) D) *Pagination[D] {
	mappedData := make([]D, len(source.Results))

	for i, item := range source.Results {
		mappedData[i] = mapper(item)
	}

	return &Pagination[D]{
		Results:      mappedData,
		Count:        source.Count,
		Page:         source.Page,
		PageSize:     source.PageSize,
		TotalPages:   source.TotalPages,
		NextPage:     source.NextPage,
		PreviousPage: source.PreviousPage,
	}
}
