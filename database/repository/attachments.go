package repository

import (
	"fmt"
	"strings"

	"github.com/inkwell/database"
)

type Attachments struct {
	DB *database.Connection
}

func (a Attachments) ForPost(postID uint64) ([]database.PDFAttachment, error) {
	var attachments []database.PDFAttachment

	err := a.DB.Sql().
		Where("post_id = ?", postID).
		Order("id asc").
		Find(&attachments).Error

	if err != nil {
		return nil, fmt.Errorf("attachments of post [%d]: %w", postID, err)
	}

	return attachments, nil
}

func (a Attachments) Create(postID uint64, attrs database.AttachmentAttrs) (*database.PDFAttachment, error) {
	if strings.TrimSpace(attrs.File) == "" {
		return nil, fmt.Errorf("attachment file is required")
	}

	if err := a.DB.Sql().First(&database.Post{}, postID).Error; err != nil {
		return nil, translate(err)
	}

	attachment := attrs.ToModel(postID)

	if err := a.DB.Sql().Create(&attachment).Error; err != nil {
		return nil, translate(err)
	}

	return &attachment, nil
}

// Delete removes the attachment only when it belongs to the given post.
func (a Attachments) Delete(postID, id uint64) error {
	result := a.DB.Sql().
		Where("id = ? AND post_id = ?", id, postID).
		Delete(&database.PDFAttachment{})

	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
