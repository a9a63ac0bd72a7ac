package database

type AuthorAttrs struct {
	Name       string
	Slug       string
	AvatarURL  *string
	Occupation *string
	Company    *string
	Email      *string
	Twitter    *string
	LinkedIn   *string
	Github     *string
	Bio        *string
}

type CategoryAttrs struct {
	Name     string
	Slug     string
	ParentID *uint64
}

type TagAttrs struct {
	Name string
	Slug string
}

type PostAttrs struct {
	AuthorID   uint64
	CategoryID *uint64
	Title      string
	Slug       string
	Content    string
	PostType   PostType
	ImageURL   *string
	ImageAlt   string
	TagIDs     []uint64
}

type AttachmentAttrs struct {
	File        string
	Description *string
}

func (a AuthorAttrs) ToModel() Author {
	return Author{
		Name:       a.Name,
		Slug:       a.Slug,
		AvatarURL:  a.AvatarURL,
		Occupation: a.Occupation,
		Company:    a.Company,
		Email:      a.Email,
		Twitter:    a.Twitter,
		LinkedIn:   a.LinkedIn,
		Github:     a.Github,
		Bio:        a.Bio,
	}
}

func (a CategoryAttrs) ToModel() Category {
	return Category{Name: a.Name, Slug: a.Slug, ParentID: a.ParentID}
}

func (a TagAttrs) ToModel() Tag {
	return Tag{Name: a.Name, Slug: a.Slug}
}

func (a PostAttrs) ToModel() Post {
	postType := a.PostType
	if !postType.IsValid() {
		postType = PostTypeBlog
	}

	return Post{
		AuthorID:   a.AuthorID,
		CategoryID: a.CategoryID,
		Title:      a.Title,
		Slug:       a.Slug,
		Content:    a.Content,
		PostType:   postType,
		ImageURL:   a.ImageURL,
		ImageAlt:   a.ImageAlt,
	}
}

func (a AttachmentAttrs) ToModel(postID uint64) PDFAttachment {
	return PDFAttachment{PostID: postID, File: a.File, Description: a.Description}
}
