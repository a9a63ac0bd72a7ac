package payload

import "github.com/inkwell/database"

type CategoryResponse struct {
	ID     uint64  `json:"id"`
	Name   string  `json:"name"`
	Parent *uint64 `json:"parent"`
	Slug   string  `json:"slug"`
}

// CategoryWriteRequest requires a name. On PUT a missing parent keeps the
// stored one and an explicit null moves the category to the root.
type CategoryWriteRequest struct {
	Name   string     `json:"name" validate:"required,max=100"`
	Parent NullableID `json:"parent"`
	Slug   string     `json:"slug" validate:"omitempty,max=100"`
}

type CategoryPatchRequest struct {
	Name   *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Parent NullableID `json:"parent"`
	Slug   *string    `json:"slug" validate:"omitempty,min=1,max=100"`
}

func GetCategoryResponse(category database.Category) CategoryResponse {
	return CategoryResponse{
		ID:     category.ID,
		Name:   category.Name,
		Parent: category.ParentID,
		Slug:   category.Slug,
	}
}

func GetCategoriesResponse(categories []database.Category) []CategoryResponse {
	data := make([]CategoryResponse, 0, len(categories))

	for _, category := range categories {
		data = append(data, GetCategoryResponse(category))
	}

	return data
}

func (r CategoryWriteRequest) ToAttrs() database.CategoryAttrs {
	return database.CategoryAttrs{
		Name:     r.Name,
		Slug:     r.Slug,
		ParentID: r.Parent.Value,
	}
}

// ApplyTo keeps the stored slug unless a new one was sent.
func (r CategoryWriteRequest) ApplyTo(category *database.Category) {
	category.Name = r.Name

	if r.Parent.Set {
		category.ParentID = r.Parent.Value
	}

	if r.Slug != "" {
		category.Slug = r.Slug
	}
}

func (r CategoryPatchRequest) ApplyTo(category *database.Category) {
	if r.Name != nil {
		category.Name = *r.Name
	}

	if r.Parent.Set {
		category.ParentID = r.Parent.Value
	}

	if r.Slug != nil {
		category.Slug = *r.Slug
	}
}
