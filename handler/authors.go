package handler

import (
	"net/http"
	"strings"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository"
	"github.com/inkwell/database/repository/pagination"
	"github.com/inkwell/handler/payload"
	"github.com/inkwell/pkg/endpoint"
)

// AuthorsHandler is read only; authors are managed from the CLI.
type AuthorsHandler struct {
	Authors *repository.Authors
}

func NewAuthorsHandler(authors *repository.Authors) AuthorsHandler {
	return AuthorsHandler{Authors: authors}
}

func (h *AuthorsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	return respondCollection(
		w, r, "authors",
		func() ([]database.Author, error) {
			return h.Authors.Filter()
		},
		func(page pagination.Paginate) (*pagination.Pagination[database.Author], error) {
			return h.Authors.Paginate(page)
		},
		payload.GetAuthorResponse,
	)
}

// Show resolves a numeric key as an id and anything else as a slug.
func (h *AuthorsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	var (
		author *database.Author
		err    error
	)

	if id, ok := payload.GetIDFrom(r, "id"); ok {
		author, err = h.Authors.FindByID(id)
	} else {
		author, err = h.Authors.FindBySlug(strings.ToLower(strings.TrimSpace(r.PathValue("id"))))
	}

	if err != nil {
		return storeError("author", err)
	}

	return respond(w, r, http.StatusOK, payload.GetAuthorResponse(*author))
}
