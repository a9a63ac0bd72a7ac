package database

import (
	"slices"
	"time"
)

type PostType string

const (
	PostTypeBlog   PostType = "blog"
	PostTypeMoment PostType = "moment"
)

func (t PostType) IsValid() bool {
	return t == PostTypeBlog || t == PostTypeMoment
}

// ParsePostType reports ok=false for anything other than a known type.
func ParsePostType(value string) (PostType, bool) {
	candidate := PostType(value)

	return candidate, candidate.IsValid()
}

type Author struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug       string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	AvatarURL  *string   `gorm:"type:varchar(500)"`
	Occupation *string   `gorm:"type:varchar(100)"`
	Company    *string   `gorm:"type:varchar(100)"`
	Email      *string   `gorm:"type:varchar(254)"`
	Twitter    *string   `gorm:"type:varchar(200)"`
	LinkedIn   *string   `gorm:"column:linkedin;type:varchar(200)"`
	Github     *string   `gorm:"type:varchar(200)"`
	Bio        *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

type Category struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	ParentID  *uint64   `gorm:"index"`
	Parent    *Category `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

type Tag struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

type Post struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	Title       string          `gorm:"type:varchar(200);not null"`
	Content     string          `gorm:"type:text;not null"`
	Slug        string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	PostType    PostType        `gorm:"type:varchar(10);not null;default:blog;index"`
	ImageURL    *string         `gorm:"type:varchar(500)"`
	ImageAlt    string          `gorm:"type:varchar(200);not null;default:''"`
	AuthorID    uint64          `gorm:"not null;index"`
	Author      Author          `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CategoryID  *uint64         `gorm:"index"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Tags        []Tag           `gorm:"many2many:post_tags;"`
	Attachments []PDFAttachment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
}

// PostTag is the join row between posts and tags.
type PostTag struct {
	PostID    uint64    `gorm:"primaryKey"`
	TagID     uint64    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

type PDFAttachment struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	PostID      uint64    `gorm:"not null;index"`
	File        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (Author) TableName() string        { return "authors" }
func (Category) TableName() string      { return "categories" }
func (Tag) TableName() string           { return "tags" }
func (Post) TableName() string          { return "posts" }
func (PostTag) TableName() string       { return "post_tags" }
func (PDFAttachment) TableName() string { return "pdf_attachments" }

// TagNames lists the tag names in their loaded order.
func (p Post) TagNames() []string {
	names := make([]string, 0, len(p.Tags))

	for _, tag := range p.Tags {
		names = append(names, tag.Name)
	}

	return names
}

// GetSchemaTables returns the tables in creation order; dependants come last.
func GetSchemaTables() []string {
	return []string{
		"authors",
		"categories",
		"tags",
		"posts",
		"post_tags",
		"pdf_attachments",
	}
}

// Models lists every migrated model, in the same order as GetSchemaTables.
func Models() []any {
	return []any{
		&Author{},
		&Category{},
		&Tag{},
		&Post{},
		&PostTag{},
		&PDFAttachment{},
	}
}

func isValidTable(seed string) bool {
	return slices.Contains(GetSchemaTables(), seed)
}
