package payload

import "github.com/inkwell/database"

type AttachmentResponse struct {
	ID          uint64  `json:"id"`
	File        string  `json:"file"`
	Description *string `json:"description"`
}

type AttachmentWriteRequest struct {
	File        string  `json:"file" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func GetAttachmentResponse(attachment database.PDFAttachment) AttachmentResponse {
	return AttachmentResponse{
		ID:          attachment.ID,
		File:        attachment.File,
		Description: attachment.Description,
	}
}

func GetAttachmentsResponse(attachments []database.PDFAttachment) []AttachmentResponse {
	data := make([]AttachmentResponse, 0, len(attachments))

	for _, attachment := range attachments {
		data = append(data, GetAttachmentResponse(attachment))
	}

	return data
}

func (r AttachmentWriteRequest) ToAttrs() database.AttachmentAttrs {
	return database.AttachmentAttrs{
		File:        r.File,
		Description: r.Description,
	}
}
