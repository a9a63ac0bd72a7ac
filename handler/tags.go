package handler

import (
	"net/http"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository"
	"github.com/inkwell/database/repository/pagination"
	"github.com/inkwell/handler/payload"
	"github.com/inkwell/pkg/endpoint"
	"github.com/inkwell/pkg/portal"
)

type TagsHandler struct {
	Tags      *repository.Tags
	Validator *portal.Validator
}

func NewTagsHandler(tags *repository.Tags, validator *portal.Validator) TagsHandler {
	return TagsHandler{
		Tags:      tags,
		Validator: validator,
	}
}

func (h *TagsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	return respondCollection(
		w, r, "tags",
		func() ([]database.Tag, error) {
			return h.Tags.Filter()
		},
		func(page pagination.Paginate) (*pagination.Pagination[database.Tag], error) {
			return h.Tags.Paginate(page)
		},
		payload.GetTagResponse,
	)
}

func (h *TagsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	tag, apiErr := h.find(r)
	if apiErr != nil {
		return apiErr
	}

	return respond(w, r, http.StatusOK, payload.GetTagResponse(*tag))
}

func (h *TagsHandler) Store(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	var req payload.TagWriteRequest

	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		return apiErr
	}

	if apiErr := validate(h.Validator, req); apiErr != nil {
		return apiErr
	}

	tag, err := h.Tags.Create(req.ToAttrs())
	if err != nil {
		return storeError("tag", err)
	}

	return respond(w, r, http.StatusCreated, payload.GetTagResponse(*tag))
}

func (h *TagsHandler) Update(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	tag, apiErr := h.find(r)
	if apiErr != nil {
		return apiErr
	}

	var req payload.TagWriteRequest

	if apiErr = decodeJSON(w, r, &req); apiErr != nil {
		return apiErr
	}

	if apiErr = validate(h.Validator, req); apiErr != nil {
		return apiErr
	}

	req.ApplyTo(tag)

	return h.save(w, r, tag)
}

func (h *TagsHandler) Patch(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	tag, apiErr := h.find(r)
	if apiErr != nil {
		return apiErr
	}

	var req payload.TagPatchRequest

	if apiErr = decodeJSON(w, r, &req); apiErr != nil {
		return apiErr
	}

	if apiErr = validate(h.Validator, req); apiErr != nil {
		return apiErr
	}

	req.ApplyTo(tag)

	return h.save(w, r, tag)
}

func (h *TagsHandler) Destroy(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	tag, apiErr := h.find(r)
	if apiErr != nil {
		return apiErr
	}

	if err := h.Tags.Delete(tag.ID); err != nil {
		return storeError("tag", err)
	}

	endpoint.MakeNoCacheResponse(w, r).RespondNoContent()

	return nil
}

func (h *TagsHandler) find(r *http.Request) (*database.Tag, *endpoint.ApiError) {
	id, ok := payload.GetIDFrom(r, "id")
	if !ok {
		return nil, endpoint.NotFound("tag not found")
	}

	tag, err := h.Tags.FindByID(id)
	if err != nil {
		return nil, storeError("tag", err)
	}

	return tag, nil
}

func (h *TagsHandler) save(w http.ResponseWriter, r *http.Request, tag *database.Tag) *endpoint.ApiError {
	if err := h.Tags.Save(tag); err != nil {
		return storeError("tag", err)
	}

	return respond(w, r, http.StatusOK, payload.GetTagResponse(*tag))
}
