package handler

import (
	"errors"
	"net/http"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository"
	"github.com/inkwell/database/repository/pagination"
	"github.com/inkwell/database/repository/queries"
	"github.com/inkwell/handler/payload"
	"github.com/inkwell/pkg/endpoint"
	"github.com/inkwell/pkg/middleware"
	"github.com/inkwell/pkg/portal"
)

type PostsHandler struct {
	Posts       *repository.Posts
	Authors     *repository.Authors
	Attachments *repository.Attachments
	Validator   *portal.Validator
}

func NewPostsHandler(posts *repository.Posts, authors *repository.Authors, attachments *repository.Attachments, validator *portal.Validator) PostsHandler {
	return PostsHandler{
		Posts:       posts,
		Authors:     authors,
		Attachments: attachments,
		Validator:   validator,
	}
}

// Index lists posts narrowed by tag_slug, category_slug, type and search.
func (h *PostsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	plan, err := h.Posts.Resolve(queries.MakePostFiltersFrom(r.URL.Query()))
	if err != nil {
		return storeError("posts", err)
	}

	return respondCollection(
		w, r, "posts",
		func() ([]database.Post, error) {
			return h.Posts.Filter(plan.Scope)
		},
		func(page pagination.Paginate) (*pagination.Pagination[database.Post], error) {
			return h.Posts.Paginate(page, plan.Scope)
		},
		payload.GetPostResponse,
	)
}

func (h *PostsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	post, err := h.Posts.FindBySlug(payload.GetSlugFrom(r))
	if err != nil {
		return storeError("post", err)
	}

	return respond(w, r, http.StatusOK, payload.GetPostResponse(*post))
}

func (h *PostsHandler) Store(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	var req payload.PostWriteRequest

	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		return apiErr
	}

	if apiErr := validate(h.Validator, req); apiErr != nil {
		return apiErr
	}

	authorID, apiErr := h.resolveAuthor(r, req.AuthorID)
	if apiErr != nil {
		return apiErr
	}

	post, err := h.Posts.Create(req.ToAttrs(authorID))
	if err != nil {
		return storeError("post", err)
	}

	return respond(w, r, http.StatusCreated, payload.GetPostResponse(*post))
}

func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	post, err := h.Posts.FindBySlug(payload.GetSlugFrom(r))
	if err != nil {
		return storeError("post", err)
	}

	var req payload.PostWriteRequest

	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		return apiErr
	}

	if apiErr := validate(h.Validator, req); apiErr != nil {
		return apiErr
	}

	req.ApplyTo(post)

	return h.save(w, r, post)
}

func (h *PostsHandler) Patch(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	post, err := h.Posts.FindBySlug(payload.GetSlugFrom(r))
	if err != nil {
		return storeError("post", err)
	}

	var req payload.PostPatchRequest

	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		return apiErr
	}

	if apiErr := validate(h.Validator, req); apiErr != nil {
		return apiErr
	}

	req.ApplyTo(post)

	return h.save(w, r, post)
}

func (h *PostsHandler) Destroy(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	post, err := h.Posts.FindBySlug(payload.GetSlugFrom(r))
	if err != nil {
		return storeError("post", err)
	}

	if err = h.Posts.Delete(post.ID); err != nil {
		return storeError("post", err)
	}

	endpoint.MakeNoCacheResponse(w, r).RespondNoContent()

	return nil
}

func (h *PostsHandler) StoreAttachment(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	post, err := h.Posts.FindBySlug(payload.GetSlugFrom(r))
	if err != nil {
		return storeError("post", err)
	}

	var req payload.AttachmentWriteRequest

	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		return apiErr
	}

	if apiErr := validate(h.Validator, req); apiErr != nil {
		return apiErr
	}

	attachment, err := h.Attachments.Create(post.ID, req.ToAttrs())
	if err != nil {
		return storeError("attachment", err)
	}

	return respond(w, r, http.StatusCreated, payload.GetAttachmentResponse(*attachment))
}

func (h *PostsHandler) DestroyAttachment(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	post, err := h.Posts.FindBySlug(payload.GetSlugFrom(r))
	if err != nil {
		return storeError("post", err)
	}

	id, ok := payload.GetIDFrom(r, "id")
	if !ok {
		return endpoint.NotFound("attachment not found")
	}

	if err = h.Attachments.Delete(post.ID, id); err != nil {
		return storeError("attachment", err)
	}

	endpoint.MakeNoCacheResponse(w, r).RespondNoContent()

	return nil
}

func (h *PostsHandler) save(w http.ResponseWriter, r *http.Request, post *database.Post) *endpoint.ApiError {
	if err := h.Posts.Save(post); err != nil {
		return storeError("post", err)
	}

	fresh, err := h.Posts.FindByID(post.ID)
	if err != nil {
		return storeError("post", err)
	}

	return respond(w, r, http.StatusOK, payload.GetPostResponse(*fresh))
}

// resolveAuthor prefers the author_id in the body and falls back to the
// author whose slug matches the token subject.
func (h *PostsHandler) resolveAuthor(r *http.Request, requested *uint64) (uint64, *endpoint.ApiError) {
	if requested != nil {
		return *requested, nil
	}

	subject := middleware.GetAuthSubject(r.Context())

	if subject == "" {
		return 0, endpoint.UnprocessableEntity(invalidFieldsMessage, map[string]any{
			"author_id": "the field is required",
		})
	}

	author, err := h.Authors.FindBySlug(subject)

	if errors.Is(err, repository.ErrNotFound) {
		return 0, endpoint.UnprocessableEntity(invalidFieldsMessage, map[string]any{
			"author_id": "the field is required when the token does not name an author",
		})
	}

	if err != nil {
		return 0, storeError("author", err)
	}

	return author.ID, nil
}
