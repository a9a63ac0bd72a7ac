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

type CategoriesHandler struct {
	Categories *repository.Categories
	Validator  *portal.Validator
}

func NewCategoriesHandler(categories *repository.Categories, validator *portal.Validator) CategoriesHandler {
	return CategoriesHandler{
		Categories: categories,
		Validator:  validator,
	}
}

func (h *CategoriesHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	return respondCollection(
		w, r, "categories",
		func() ([]database.Category, error) {
			return h.Categories.Filter()
		},
		func(page pagination.Paginate) (*pagination.Pagination[database.Category], error) {
			return h.Categories.Paginate(page)
		},
		payload.GetCategoryResponse,
	)
}

func (h *CategoriesHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	category, apiErr := h.find(r)
	if apiErr != nil {
		return apiErr
	}

	return respond(w, r, http.StatusOK, payload.GetCategoryResponse(*category))
}

func (h *CategoriesHandler) Store(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	var req payload.CategoryWriteRequest

	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		return apiErr
	}

	if apiErr := validate(h.Validator, req); apiErr != nil {
		return apiErr
	}

	category, err := h.Categories.Create(req.ToAttrs())
	if err != nil {
		return storeError("category", err)
	}

	return respond(w, r, http.StatusCreated, payload.GetCategoryResponse(*category))
}

func (h *CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	category, apiErr := h.find(r)
	if apiErr != nil {
		return apiErr
	}

	var req payload.CategoryWriteRequest

	if apiErr = decodeJSON(w, r, &req); apiErr != nil {
		return apiErr
	}

	if apiErr = validate(h.Validator, req); apiErr != nil {
		return apiErr
	}

	req.ApplyTo(category)

	return h.save(w, r, category)
}

func (h *CategoriesHandler) Patch(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	category, apiErr := h.find(r)
	if apiErr != nil {
		return apiErr
	}

	var req payload.CategoryPatchRequest

	if apiErr = decodeJSON(w, r, &req); apiErr != nil {
		return apiErr
	}

	if apiErr = validate(h.Validator, req); apiErr != nil {
		return apiErr
	}

	req.ApplyTo(category)

	return h.save(w, r, category)
}

// Destroy detaches posts and child categories, then removes the category.
func (h *CategoriesHandler) Destroy(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	category, apiErr := h.find(r)
	if apiErr != nil {
		return apiErr
	}

	if err := h.Categories.Delete(category.ID); err != nil {
		return storeError("category", err)
	}

	endpoint.MakeNoCacheResponse(w, r).RespondNoContent()

	return nil
}

func (h *CategoriesHandler) find(r *http.Request) (*database.Category, *endpoint.ApiError) {
	id, ok := payload.GetIDFrom(r, "id")
	if !ok {
		return nil, endpoint.NotFound("category not found")
	}

	category, err := h.Categories.FindByID(id)
	if err != nil {
		return nil, storeError("category", err)
	}

	return category, nil
}

func (h *CategoriesHandler) save(w http.ResponseWriter, r *http.Request, category *database.Category) *endpoint.ApiError {
	if err := h.Categories.Save(category); err != nil {
		return storeError("category", err)
	}

	return respond(w, r, http.StatusOK, payload.GetCategoryResponse(*category))
}
