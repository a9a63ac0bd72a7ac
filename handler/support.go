package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/inkwell/database/repository"
	"github.com/inkwell/database/repository/pagination"
	"github.com/inkwell/handler/paginate"
	"github.com/inkwell/pkg/endpoint"
	"github.com/inkwell/pkg/portal"
)

const invalidFieldsMessage = "The given fields are invalid"

// decodeJSON reads a bounded JSON body. Unknown keys are ignored so clients
// can echo back read-only fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	r.Body = http.MaxBytesReader(w, r.Body, endpoint.MaxRequestSize)

	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return endpoint.LogBadRequestError("could not parse the given data.", err)
	}

	return nil
}

func validate(validator *portal.Validator, data any) *endpoint.ApiError {
	if messages := validator.Check(data); len(messages) > 0 {
		return endpoint.UnprocessableEntity(invalidFieldsMessage, messages)
	}

	return nil
}

// storeError maps repository failures onto API errors.
func storeError(resource string, err error) *endpoint.ApiError {
	var duplicate *repository.DuplicateError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return endpoint.NotFound(fmt.Sprintf("%s not found", resource))
	case errors.As(err, &duplicate):
		return endpoint.UnprocessableEntity(invalidFieldsMessage, map[string]any{
			duplicate.Field: fmt.Sprintf("%s with this %s already exists", resource, duplicate.Field),
		})
	case errors.Is(err, repository.ErrDuplicated):
		return endpoint.UnprocessableEntity(invalidFieldsMessage, map[string]any{
			"_": fmt.Sprintf("%s already exists", resource),
		})
	case errors.Is(err, portal.ErrEmptySlug):
		return endpoint.UnprocessableEntity(invalidFieldsMessage, map[string]any{
			"slug": "the field could not be derived from the given name",
		})
	case errors.Is(err, repository.ErrInvalidParent):
		return endpoint.UnprocessableEntity(invalidFieldsMessage, map[string]any{
			"parent": err.Error(),
		})
	case errors.Is(err, repository.ErrUnknownAuthor):
		return endpoint.UnprocessableEntity(invalidFieldsMessage, map[string]any{
			"author_id": err.Error(),
		})
	case errors.Is(err, repository.ErrUnknownCategory):
		return endpoint.UnprocessableEntity(invalidFieldsMessage, map[string]any{
			"category": err.Error(),
		})
	default:
		return endpoint.LogInternalError(fmt.Sprintf("could not process the %s", resource), err)
	}
}

// respondCollection answers with a bare list, or with the pagination
// envelope when the query asked for a page.
func respondCollection[S any, D any](
	w http.ResponseWriter,
	r *http.Request,
	resource string,
	list func() ([]S, error),
	page func(pagination.Paginate) (*pagination.Pagination[S], error),
	mapper func(S) D,
) *endpoint.ApiError {
	resp := endpoint.MakeNoCacheResponse(w, r)

	if paginator := paginate.NewFrom(r.URL.Query()); paginator != nil {
		result, err := page(*paginator)
		if err != nil {
			return storeError(resource, err)
		}

		if err = resp.RespondOk(pagination.HydratePagination(result, mapper)); err != nil {
			return endpoint.LogInternalError("could not encode the response", err)
		}

		return nil
	}

	items, err := list()
	if err != nil {
		return storeError(resource, err)
	}

	data := make([]D, 0, len(items))
	for _, item := range items {
		data = append(data, mapper(item))
	}

	if err = resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode the response", err)
	}

	return nil
}

func respond(w http.ResponseWriter, r *http.Request, status int, data any) *endpoint.ApiError {
	resp := endpoint.MakeNoCacheResponse(w, r)

	var err error
	if status == http.StatusCreated {
		err = resp.RespondCreated(data)
	} else {
		err = resp.RespondOk(data)
	}

	if err != nil {
		return endpoint.LogInternalError("could not encode the response", err)
	}

	return nil
}
