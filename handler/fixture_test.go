package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository"
	handlertests "github.com/inkwell/handler/tests"
	"github.com/inkwell/pkg/auth"
	"github.com/inkwell/pkg/endpoint"
	"github.com/inkwell/pkg/middleware"
	"github.com/inkwell/pkg/portal"
)

type fixture struct {
	conn        *database.Connection
	authors     *repository.Authors
	categories  *repository.Categories
	tags        *repository.Tags
	posts       *repository.Posts
	attachments *repository.Attachments
	jwt         auth.JWTHandler
	mux         *http.ServeMux
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	conn := handlertests.NewTestDB(t)
	slugger := portal.NewSlugger("en", false)
	validator := portal.GetDefaultValidator()

	f := &fixture{conn: conn}
	f.authors = &repository.Authors{DB: conn, Slugger: slugger}
	f.categories = &repository.Categories{DB: conn, Slugger: slugger}
	f.tags = &repository.Tags{DB: conn, Slugger: slugger}
	f.posts = &repository.Posts{DB: conn, Slugger: slugger, Categories: f.categories}
	f.attachments = &repository.Attachments{DB: conn}

	jwtHandler, err := auth.MakeJWTHandler([]byte(strings.Repeat("k", auth.MinSecretLength)), time.Hour, "inkwell")
	if err != nil {
		t.Fatalf("jwt handler: %v", err)
	}

	f.jwt = jwtHandler

	pipe := middleware.Pipeline{JWT: middleware.MakeJWTMiddleware(jwtHandler)}
	posts := NewPostsHandler(f.posts, f.authors, f.attachments, validator)
	categories := NewCategoriesHandler(f.categories, validator)
	tags := NewTagsHandler(f.tags, validator)
	authors := NewAuthorsHandler(f.authors)

	open := func(h endpoint.ApiHandler) http.HandlerFunc {
		return endpoint.NewApiHandler(pipe.Public(h))
	}

	guarded := func(h endpoint.ApiHandler) http.HandlerFunc {
		return endpoint.NewApiHandler(pipe.Protected(h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", open(posts.Index))
	mux.HandleFunc("GET /posts/{slug}", open(posts.Show))
	mux.HandleFunc("POST /posts", guarded(posts.Store))
	mux.HandleFunc("PUT /posts/{slug}", guarded(posts.Update))
	mux.HandleFunc("PATCH /posts/{slug}", guarded(posts.Patch))
	mux.HandleFunc("DELETE /posts/{slug}", guarded(posts.Destroy))
	mux.HandleFunc("POST /posts/{slug}/attachments", guarded(posts.StoreAttachment))
	mux.HandleFunc("DELETE /posts/{slug}/attachments/{id}", guarded(posts.DestroyAttachment))

	mux.HandleFunc("GET /categories", open(categories.Index))
	mux.HandleFunc("POST /categories", open(categories.Store))
	mux.HandleFunc("GET /categories/{id}", open(categories.Show))
	mux.HandleFunc("PUT /categories/{id}", open(categories.Update))
	mux.HandleFunc("PATCH /categories/{id}", open(categories.Patch))
	mux.HandleFunc("DELETE /categories/{id}", open(categories.Destroy))

	mux.HandleFunc("GET /tags", open(tags.Index))
	mux.HandleFunc("POST /tags", open(tags.Store))
	mux.HandleFunc("GET /tags/{id}", open(tags.Show))
	mux.HandleFunc("PUT /tags/{id}", open(tags.Update))
	mux.HandleFunc("PATCH /tags/{id}", open(tags.Patch))
	mux.HandleFunc("DELETE /tags/{id}", open(tags.Destroy))

	mux.HandleFunc("GET /authors", open(authors.Index))
	mux.HandleFunc("GET /authors/{id}", open(authors.Show))

	f.mux = mux

	return f
}

func (f *fixture) token(t *testing.T, subject string) string {
	t.Helper()

	token, err := f.jwt.Generate(subject)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return token
}

// do sends a request through the mux; an empty token sends no Authorization header.
func (f *fixture) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)

	return rec
}

func (f *fixture) author(t *testing.T, name string) database.Author {
	t.Helper()

	author, err := f.authors.Create(database.AuthorAttrs{Name: name})
	if err != nil {
		t.Fatalf("create author: %v", err)
	}

	return *author
}

func (f *fixture) category(t *testing.T, name string, parent *database.Category) database.Category {
	t.Helper()

	attrs := database.CategoryAttrs{Name: name}
	if parent != nil {
		attrs.ParentID = &parent.ID
	}

	category, err := f.categories.Create(attrs)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	return *category
}

func (f *fixture) tag(t *testing.T, name string) database.Tag {
	t.Helper()

	tag, err := f.tags.Create(database.TagAttrs{Name: name})
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}

	return *tag
}

func (f *fixture) post(t *testing.T, author database.Author, category *database.Category, kind database.PostType, title string, tags ...database.Tag) database.Post {
	t.Helper()

	attrs := database.PostAttrs{
		AuthorID: author.ID,
		Title:    title,
		Content:  "Content of " + title,
		PostType: kind,
	}

	if category != nil {
		attrs.CategoryID = &category.ID
	}

	for _, tag := range tags {
		attrs.TagIDs = append(attrs.TagIDs, tag.ID)
	}

	post, err := f.posts.Create(attrs)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	return *post
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}

	return out
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
}
