package payload

import "github.com/inkwell/database"

type TagResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TagWriteRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"omitempty,max=100"`
}

type TagPatchRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug *string `json:"slug" validate:"omitempty,min=1,max=100"`
}

func GetTagResponse(tag database.Tag) TagResponse {
	return TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
		Slug: tag.Slug,
	}
}

func GetTagsResponse(tags []database.Tag) []TagResponse {
	data := make([]TagResponse, 0, len(tags))

	for _, tag := range tags {
		data = append(data, GetTagResponse(tag))
	}

	return data
}

func (r TagWriteRequest) ToAttrs() database.TagAttrs {
	return database.TagAttrs{Name: r.Name, Slug: r.Slug}
}

func (r TagWriteRequest) ApplyTo(tag *database.Tag) {
	tag.Name = r.Name

	if r.Slug != "" {
		tag.Slug = r.Slug
	}
}

func (r TagPatchRequest) ApplyTo(tag *database.Tag) {
	if r.Name != nil {
		tag.Name = *r.Name
	}

	if r.Slug != nil {
		tag.Slug = *r.Slug
	}
}
