package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository/pagination"
	"github.com/inkwell/handler/payload"
	"github.com/inkwell/pkg/endpoint"
)

func titlesOf(posts []payload.PostResponse) map[string]bool {
	out := make(map[string]bool, len(posts))

	for _, post := range posts {
		out[post.Title] = true
	}

	return out
}

func TestPostsStoreRequiresToken(t *testing.T) {
	f := newFixture(t)
	f.author(t, "Ada Lovelace")

	body := `{"title":"Hello","content":"Body"}`

	expectStatus(t, f.do(t, http.MethodPost, "/posts", body, ""), http.StatusUnauthorized)
	expectStatus(t, f.do(t, http.MethodPost, "/posts", body, "not-a-token"), http.StatusUnauthorized)

	posts, err := f.posts.Filter()
	if err != nil {
		t.Fatalf("filter: %v", err)
	}

	if len(posts) != 0 {
		t.Fatalf("rejected requests must not write, found %d posts", len(posts))
	}
}

func TestPostsStoreDerivesSlugAndIsRetrievable(t *testing.T) {
	f := newFixture(t)
	author := f.author(t, "Ada Lovelace")
	content := strings.Repeat("x", 180)

	rec := f.do(t, http.MethodPost, "/posts",
		fmt.Sprintf(`{"title":"Hello World","content":%q,"tags":["ignored"],"summary":"ignored"}`, content),
		f.token(t, author.Slug),
	)

	expectStatus(t, rec, http.StatusCreated)

	created := decode[payload.PostResponse](t, rec)

	if created.Slug != "hello-world" || created.AuthorID != author.ID || created.Author.Name != "Ada Lovelace" {
		t.Fatalf("unexpected post: %+v", created)
	}

	if created.PostType != database.PostTypeBlog || len(created.Tags) != 0 {
		t.Fatalf("unexpected defaults: %+v", created)
	}

	if created.Summary != strings.Repeat("x", 150)+"..." {
		t.Fatalf("unexpected summary %q", created.Summary)
	}

	rec = f.do(t, http.MethodGet, "/posts/hello-world", "", "")
	expectStatus(t, rec, http.StatusOK)

	shown := decode[payload.PostResponse](t, rec)

	if shown.ID != created.ID || shown.Content != content {
		t.Fatalf("unexpected post: %+v", shown)
	}
}

func TestPostsStoreAuthorResolution(t *testing.T) {
	f := newFixture(t)
	ada := f.author(t, "Ada Lovelace")
	grace := f.author(t, "Grace Hopper")
	token := f.token(t, ada.Slug)

	rec := f.do(t, http.MethodPost, "/posts",
		fmt.Sprintf(`{"title":"By Grace","content":"c","author_id":%d}`, grace.ID), token)

	expectStatus(t, rec, http.StatusCreated)

	if post := decode[payload.PostResponse](t, rec); post.AuthorID != grace.ID {
		t.Fatalf("explicit author_id should win, got %d", post.AuthorID)
	}

	rec = f.do(t, http.MethodPost, "/posts", `{"title":"Ghost","content":"c","author_id":999}`, token)
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	if resp := decode[endpoint.ErrorResponse](t, rec); resp.Data["author_id"] == nil {
		t.Fatalf("expected author_id error: %+v", resp)
	}

	rec = f.do(t, http.MethodPost, "/posts", `{"title":"Nobody","content":"c"}`, f.token(t, "not-an-author"))
	expectStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestPostsStoreRejectsInvalidInput(t *testing.T) {
	f := newFixture(t)
	author := f.author(t, "Ada Lovelace")
	token := f.token(t, author.Slug)

	expectStatus(t, f.do(t, http.MethodPost, "/posts", `{"title":`, token), http.StatusBadRequest)

	rec := f.do(t, http.MethodPost, "/posts", `{"title":"Only title","post_type":"story"}`, token)
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	resp := decode[endpoint.ErrorResponse](t, rec)
	if resp.Data["content"] == nil || resp.Data["post_type"] == nil {
		t.Fatalf("expected content and post_type errors: %+v", resp.Data)
	}

	expectStatus(t, f.do(t, http.MethodPost, "/posts", `{"title":"Same","content":"c"}`, token), http.StatusCreated)

	rec = f.do(t, http.MethodPost, "/posts", `{"title":"Same","content":"c"}`, token)
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	if resp := decode[endpoint.ErrorResponse](t, rec); resp.Data["slug"] == nil {
		t.Fatalf("expected slug uniqueness error: %+v", resp.Data)
	}

	rec = f.do(t, http.MethodPost, "/posts", `{"title":"!!!","content":"c"}`, token)
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	rec = f.do(t, http.MethodPost, "/posts", `{"title":"Lost","content":"c","category":42}`, token)
	expectStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestPostsShowUnknownSlug(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/posts/missing", "", "")
	expectStatus(t, rec, http.StatusNotFound)

	if resp := decode[endpoint.ErrorResponse](t, rec); resp.Status != http.StatusNotFound {
		t.Fatalf("unexpected error body: %+v", resp)
	}
}

func TestPostsIndexFilters(t *testing.T) {
	f := newFixture(t)
	author := f.author(t, "Ada Lovelace")
	a := f.category(t, "A", nil)
	b := f.category(t, "B", &a)
	c := f.category(t, "C", &b)
	other := f.category(t, "Other", nil)
	goTag := f.tag(t, "Go")

	f.post(t, author, &a, database.PostTypeBlog, "In A", goTag)
	f.post(t, author, &b, database.PostTypeMoment, "In B")
	f.post(t, author, &c, database.PostTypeBlog, "In C", goTag)
	f.post(t, author, &other, database.PostTypeMoment, "In Other", goTag)

	cases := []struct {
		query string
		want  []string
	}{
		{"", []string{"In A", "In B", "In C", "In Other"}},
		{"?category_slug=a", []string{"In A", "In B", "In C"}},
		{"?category_slug=b", []string{"In B", "In C"}},
		{"?category_slug=missing&type=blog&tag_slug=go", nil},
		{"?type=moment", []string{"In B", "In Other"}},
		{"?type=bogus", []string{"In A", "In B", "In C", "In Other"}},
		{"?tag_slug=go", []string{"In A", "In C", "In Other"}},
		{"?tag_slug=go&category_slug=a&type=blog", []string{"In A", "In C"}},
		{"?search=other", []string{"In Other"}},
		{"?search=IN%20b", []string{"In B"}},
		{"?type=MOMENT", []string{"In A", "In B", "In C", "In Other"}},
		{"?category_slug=A", nil},
		{"?tag_slug=GO", nil},
		{"?search=%25", nil},
		{"?search=_", nil},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			rec := f.do(t, http.MethodGet, "/posts"+tc.query, "", "")
			expectStatus(t, rec, http.StatusOK)

			posts := decode[[]payload.PostResponse](t, rec)
			got := titlesOf(posts)

			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}

			for _, title := range tc.want {
				if !got[title] {
					t.Fatalf("expected %q in %v", title, got)
				}
			}
		})
	}
}

func TestPostsIndexNewestFirstAndPaginated(t *testing.T) {
	f := newFixture(t)
	author := f.author(t, "Ada Lovelace")

	for i := 1; i <= 3; i++ {
		f.post(t, author, nil, database.PostTypeBlog, fmt.Sprintf("Post %d", i))
	}

	rec := f.do(t, http.MethodGet, "/posts", "", "")
	expectStatus(t, rec, http.StatusOK)

	posts := decode[[]payload.PostResponse](t, rec)
	if len(posts) != 3 || posts[0].Title != "Post 3" || posts[2].Title != "Post 1" {
		t.Fatalf("expected newest first, got %v", titlesOf(posts))
	}

	rec = f.do(t, http.MethodGet, "/posts?page=1&limit=2", "", "")
	expectStatus(t, rec, http.StatusOK)

	page := decode[pagination.Pagination[payload.PostResponse]](t, rec)

	if page.Count != 3 || page.TotalPages != 2 || len(page.Results) != 2 || page.NextPage == nil || *page.NextPage != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}

	if page.Results[0].Title != "Post 3" {
		t.Fatalf("unexpected first result %q", page.Results[0].Title)
	}
}

func TestPostsUpdateAndPatch(t *testing.T) {
	f := newFixture(t)
	author := f.author(t, "Ada Lovelace")
	category := f.category(t, "Notes", nil)
	post := f.post(t, author, &category, database.PostTypeBlog, "First Title")
	token := f.token(t, author.Slug)

	expectStatus(t, f.do(t, http.MethodPatch, "/posts/first-title", `{"title":"x"}`, ""), http.StatusUnauthorized)

	rec := f.do(t, http.MethodPut, "/posts/first-title", `{"title":"Renamed","content":"New body"}`, token)
	expectStatus(t, rec, http.StatusOK)

	updated := decode[payload.PostResponse](t, rec)

	if updated.Slug != post.Slug || updated.Title != "Renamed" || updated.Content != "New body" {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if updated.Category == nil || *updated.Category != category.ID || updated.PostType != database.PostTypeBlog {
		t.Fatalf("put must keep optional fields it was not sent: %+v", updated)
	}

	if !updated.CreatedAt.Equal(post.CreatedAt) {
		t.Fatalf("created_at must not change: %v vs %v", updated.CreatedAt, post.CreatedAt)
	}

	rec = f.do(t, http.MethodPatch, "/posts/first-title",
		fmt.Sprintf(`{"post_type":"moment","category":%d}`, category.ID), token)
	expectStatus(t, rec, http.StatusOK)

	patched := decode[payload.PostResponse](t, rec)

	if patched.PostType != database.PostTypeMoment || patched.Category == nil || *patched.Category != category.ID {
		t.Fatalf("unexpected patch: %+v", patched)
	}

	if patched.Title != "Renamed" || patched.Content != "New body" {
		t.Fatalf("patch must keep absent fields: %+v", patched)
	}

	expectStatus(t, f.do(t, http.MethodPatch, "/posts/missing", `{"title":"x"}`, token), http.StatusNotFound)
}

func TestPostsUpdateKeepsAbsentOptionalFields(t *testing.T) {
	f := newFixture(t)
	author := f.author(t, "Ada Lovelace")
	category := f.category(t, "Travel", nil)
	f.post(t, author, &category, database.PostTypeMoment, "Morning")
	token := f.token(t, author.Slug)

	rec := f.do(t, http.MethodPut, "/posts/morning", `{"title":"Morning","content":"edited"}`, token)
	expectStatus(t, rec, http.StatusOK)

	kept := decode[payload.PostResponse](t, rec)

	if kept.PostType != database.PostTypeMoment || kept.Category == nil || *kept.Category != category.ID {
		t.Fatalf("put must keep type and category: %+v", kept)
	}

	rec = f.do(t, http.MethodPut, "/posts/morning", `{"title":"Morning","content":"edited","category":null,"post_type":"blog"}`, token)
	expectStatus(t, rec, http.StatusOK)

	cleared := decode[payload.PostResponse](t, rec)

	if cleared.PostType != database.PostTypeBlog || cleared.Category != nil {
		t.Fatalf("put must write the keys it was sent: %+v", cleared)
	}
}

func TestPostsDestroy(t *testing.T) {
	f := newFixture(t)
	author := f.author(t, "Ada Lovelace")
	f.post(t, author, nil, database.PostTypeBlog, "Doomed", f.tag(t, "Go"))
	token := f.token(t, author.Slug)

	expectStatus(t, f.do(t, http.MethodDelete, "/posts/doomed", "", ""), http.StatusUnauthorized)
	expectStatus(t, f.do(t, http.MethodDelete, "/posts/doomed", "", token), http.StatusNoContent)
	expectStatus(t, f.do(t, http.MethodGet, "/posts/doomed", "", ""), http.StatusNotFound)
	expectStatus(t, f.do(t, http.MethodDelete, "/posts/doomed", "", token), http.StatusNotFound)

	if _, err := f.tags.FindBySlug("go"); err != nil {
		t.Fatalf("deleting a post must keep its tags: %v", err)
	}
}

func TestPostsAttachments(t *testing.T) {
	f := newFixture(t)
	author := f.author(t, "Ada Lovelace")
	f.post(t, author, nil, database.PostTypeBlog, "Slides")
	token := f.token(t, author.Slug)

	body := `{"file":"attachments/talk.pdf","description":"Talk slides"}`

	expectStatus(t, f.do(t, http.MethodPost, "/posts/slides/attachments", body, ""), http.StatusUnauthorized)
	expectStatus(t, f.do(t, http.MethodPost, "/posts/slides/attachments", `{}`, token), http.StatusUnprocessableEntity)
	expectStatus(t, f.do(t, http.MethodPost, "/posts/missing/attachments", body, token), http.StatusNotFound)

	rec := f.do(t, http.MethodPost, "/posts/slides/attachments", body, token)
	expectStatus(t, rec, http.StatusCreated)

	attachment := decode[payload.AttachmentResponse](t, rec)

	if attachment.File != "attachments/talk.pdf" || attachment.Description == nil || *attachment.Description != "Talk slides" {
		t.Fatalf("unexpected attachment: %+v", attachment)
	}

	rec = f.do(t, http.MethodGet, "/posts/slides", "", "")
	post := decode[payload.PostResponse](t, rec)

	if len(post.PDFAttachments) != 1 || post.PDFAttachments[0].ID != attachment.ID {
		t.Fatalf("expected the attachment on the post: %+v", post.PDFAttachments)
	}

	path := fmt.Sprintf("/posts/slides/attachments/%d", attachment.ID)

	expectStatus(t, f.do(t, http.MethodDelete, path, "", token), http.StatusNoContent)
	expectStatus(t, f.do(t, http.MethodDelete, path, "", token), http.StatusNotFound)
	expectStatus(t, f.do(t, http.MethodDelete, "/posts/slides/attachments/abc", "", token), http.StatusNotFound)
}
