package seeds

import (
	"fmt"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository"
)

type PostsSeed struct {
	posts       repository.Posts
	attachments repository.Attachments
}

func NewPostsSeed(posts repository.Posts, attachments repository.Attachments) *PostsSeed {
	return &PostsSeed{
		posts:       posts,
		attachments: attachments,
	}
}

func (s PostsSeed) CreatePosts(attrs ...database.PostAttrs) ([]database.Post, error) {
	var posts []database.Post

	for _, item := range attrs {
		post, err := s.posts.Create(item)

		if err != nil {
			return nil, fmt.Errorf("issue creating post [%s]: %w", item.Title, err)
		}

		posts = append(posts, *post)
	}

	return posts, nil
}

func (s PostsSeed) Attach(post database.Post, file, description string) (*database.PDFAttachment, error) {
	attachment, err := s.attachments.Create(post.ID, database.AttachmentAttrs{
		File:        file,
		Description: &description,
	})

	if err != nil {
		return nil, fmt.Errorf("issue attaching [%s] to post [%s]: %w", file, post.Slug, err)
	}

	return attachment, nil
}
