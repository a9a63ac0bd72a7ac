package payload

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/inkwell/database"
	"github.com/inkwell/pkg/portal"
)

const SummaryLength = 150
const SummarySuffix = "..."

type PostResponse struct {
	ID             uint64               `json:"id"`
	Title          string               `json:"title"`
	Content        string               `json:"content"`
	Category       *uint64              `json:"category"`
	Tags           []string             `json:"tags"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	Author         AuthorResponse       `json:"author"`
	AuthorID       uint64               `json:"author_id"`
	Slug           string               `json:"slug"`
	Summary        string               `json:"summary"`
	PostType       database.PostType    `json:"post_type"`
	ImageURL       *string              `json:"image_url"`
	ImageAlt       string               `json:"image_alt"`
	PDFAttachments []AttachmentResponse `json:"pdf_attachments"`
}

// PostWriteRequest is the body for create and PUT. Title and content are
// required; optional keys left out of a PUT keep their stored value. Tags,
// attachments and timestamps are not writable here; unknown keys are dropped.
type PostWriteRequest struct {
	Title    string     `json:"title" validate:"required,max=200"`
	Content  string     `json:"content" validate:"required"`
	Slug     string     `json:"slug" validate:"omitempty,max=200"`
	PostType *string    `json:"post_type" validate:"omitempty,oneof=blog moment"`
	ImageURL *string    `json:"image_url" validate:"omitempty,max=500"`
	ImageAlt *string    `json:"image_alt" validate:"omitempty,max=200"`
	Category NullableID `json:"category"`
	AuthorID *uint64    `json:"author_id"`
}

type PostPatchRequest struct {
	Title    *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Content  *string    `json:"content" validate:"omitempty,min=1"`
	Slug     *string    `json:"slug" validate:"omitempty,min=1,max=200"`
	PostType *string    `json:"post_type" validate:"omitempty,oneof=blog moment"`
	ImageURL *string    `json:"image_url" validate:"omitempty,max=500"`
	ImageAlt *string    `json:"image_alt" validate:"omitempty,max=200"`
	Category NullableID `json:"category"`
}

// Summarise keeps the first SummaryLength runes and always appends the
// suffix, even when nothing was cut.
func Summarise(content string) string {
	runes := []rune(content)

	if len(runes) > SummaryLength {
		runes = runes[:SummaryLength]
	}

	return string(runes) + SummarySuffix
}

func GetSlugFrom(r *http.Request) string {
	str := portal.NewStringable(r.PathValue("slug"))

	return strings.TrimSpace(str.ToLower())
}

// GetIDFrom reads a positive numeric path value.
func GetIDFrom(r *http.Request, key string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(r.PathValue(key)), 10, 64)

	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}

func GetPostResponse(p database.Post) PostResponse {
	return PostResponse{
		ID:             p.ID,
		Title:          p.Title,
		Content:        p.Content,
		Category:       p.CategoryID,
		Tags:           p.TagNames(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Author:         GetAuthorResponse(p.Author),
		AuthorID:       p.AuthorID,
		Slug:           p.Slug,
		Summary:        Summarise(p.Content),
		PostType:       p.PostType,
		ImageURL:       p.ImageURL,
		ImageAlt:       p.ImageAlt,
		PDFAttachments: GetAttachmentsResponse(p.Attachments),
	}
}

func GetPostsResponse(posts []database.Post) []PostResponse {
	data := make([]PostResponse, 0, len(posts))

	for _, post := range posts {
		data = append(data, GetPostResponse(post))
	}

	return data
}

func (r PostWriteRequest) ToAttrs(authorID uint64) database.PostAttrs {
	attrs := database.PostAttrs{
		AuthorID:   authorID,
		CategoryID: r.Category.Value,
		Title:      r.Title,
		Slug:       r.Slug,
		Content:    r.Content,
		ImageURL:   r.ImageURL,
	}

	if r.PostType != nil {
		attrs.PostType = database.PostType(*r.PostType)
	}

	if r.ImageAlt != nil {
		attrs.ImageAlt = *r.ImageAlt
	}

	return attrs
}

// ApplyTo writes title and content plus every optional key the client sent.
// The author never changes and a blank slug keeps the stored one. An explicit
// null category detaches the post.
func (r PostWriteRequest) ApplyTo(post *database.Post) {
	post.Title = r.Title
	post.Content = r.Content

	if r.PostType != nil {
		if kind, ok := database.ParsePostType(*r.PostType); ok {
			post.PostType = kind
		}
	}

	if r.ImageURL != nil {
		post.ImageURL = r.ImageURL
	}

	if r.ImageAlt != nil {
		post.ImageAlt = *r.ImageAlt
	}

	if r.Category.Set {
		post.CategoryID = r.Category.Value
	}

	if r.Slug != "" {
		post.Slug = r.Slug
	}
}

func (r PostPatchRequest) ApplyTo(post *database.Post) {
	if r.Title != nil {
		post.Title = *r.Title
	}

	if r.Content != nil {
		post.Content = *r.Content
	}

	if r.Slug != nil {
		post.Slug = *r.Slug
	}

	if r.PostType != nil {
		if kind, ok := database.ParsePostType(*r.PostType); ok {
			post.PostType = kind
		}
	}

	if r.ImageURL != nil {
		post.ImageURL = r.ImageURL
	}

	if r.ImageAlt != nil {
		post.ImageAlt = *r.ImageAlt
	}

	if r.Category.Set {
		post.CategoryID = r.Category.Value
	}
}
