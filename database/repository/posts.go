package repository

import (
	"errors"
	"fmt"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository/pagination"
	"github.com/inkwell/database/repository/queries"
	"github.com/inkwell/pkg/portal"
	stdgorm "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Posts struct {
	DB         *database.Connection
	Slugger    portal.Slugger
	Categories *Categories
}

const postsOrder = "posts.created_at desc, posts.id desc"

// withRelations loads everything the post representation renders.
func withRelations(query *stdgorm.DB) *stdgorm.DB {
	return query.
		Preload("Author").
		Preload("Tags", func(db *stdgorm.DB) *stdgorm.DB {
			return db.Order("tags.name asc")
		}).
		Preload("Attachments", func(db *stdgorm.DB) *stdgorm.DB {
			return db.Order("pdf_attachments.id asc")
		})
}

func (p Posts) FindByID(id uint64) (*database.Post, error) {
	post := database.Post{}

	if err := p.DB.Sql().Scopes(withRelations).First(&post, id).Error; err != nil {
		return nil, translate(err)
	}

	return &post, nil
}

func (p Posts) FindBySlug(slug string) (*database.Post, error) {
	post := database.Post{}

	err := p.DB.Sql().
		Scopes(withRelations).
		Where("posts.slug = ?", slug).
		First(&post).Error

	if err != nil {
		return nil, translate(err)
	}

	return &post, nil
}

// Resolve turns listing filters into a plan that Filter and Paginate apply.
func (p Posts) Resolve(filters queries.PostFilters) (queries.PostPlan, error) {
	if p.Categories == nil {
		return queries.PostPlan{}, errors.New("posts repository has no categories store")
	}

	return queries.MakePostsResolver(p.Categories).Resolve(filters)
}

func (p Posts) Filter(scopes ...Scope) ([]database.Post, error) {
	var posts []database.Post

	err := p.DB.Sql().
		Model(&database.Post{}).
		Scopes(scopes...).
		Scopes(withRelations).
		Order(postsOrder).
		Find(&posts).Error

	if err != nil {
		return nil, fmt.Errorf("filter posts: %w", err)
	}

	return posts, nil
}

func (p Posts) Paginate(page pagination.Paginate, scopes ...Scope) (*pagination.Pagination[database.Post], error) {
	return paginate[database.Post](p.DB, "posts", page, postsOrder, withRelations, scopes...)
}

// Save creates the post or updates its own columns. Tags and attachments are
// never written through here.
func (p Posts) Save(post *database.Post) error {
	return p.DB.Transaction(func(tx *stdgorm.DB) error {
		return p.save(tx, post)
	})
}

func (p Posts) save(tx *stdgorm.DB, post *database.Post) error {
	if err := assignSlug(tx, p.Slugger, &database.Post{}, "post", post.ID, &post.Slug, post.Title); err != nil {
		return err
	}

	if post.PostType == "" {
		post.PostType = database.PostTypeBlog
	}

	if err := p.guardReferences(tx, post); err != nil {
		return err
	}

	err := ensureUnique(tx, &database.Post{}, "post", post.ID,
		uniqueField{column: "slug", value: post.Slug},
	)

	if err != nil {
		return err
	}

	if post.ID == 0 {
		return translate(tx.Omit(clause.Associations).Create(post).Error)
	}

	err = tx.Model(post).
		Select("*").
		Omit(clause.Associations, "created_at").
		Updates(post).Error

	return translate(err)
}

func (p Posts) guardReferences(tx *stdgorm.DB, post *database.Post) error {
	var count int64

	if err := tx.Model(&database.Author{}).Where("id = ?", post.AuthorID).Count(&count).Error; err != nil {
		return fmt.Errorf("check post author: %w", err)
	}

	if count == 0 {
		return fmt.Errorf("%w: [%d]", ErrUnknownAuthor, post.AuthorID)
	}

	if post.CategoryID == nil {
		return nil
	}

	if err := tx.Model(&database.Category{}).Where("id = ?", *post.CategoryID).Count(&count).Error; err != nil {
		return fmt.Errorf("check post category: %w", err)
	}

	if count == 0 {
		return fmt.Errorf("%w: [%d]", ErrUnknownCategory, *post.CategoryID)
	}

	return nil
}

// Create stores the post and links the given tags in one transaction.
func (p Posts) Create(attrs database.PostAttrs) (*database.Post, error) {
	post := attrs.ToModel()

	err := p.DB.Transaction(func(tx *stdgorm.DB) error {
		if err := p.save(tx, &post); err != nil {
			return err
		}

		return p.linkTags(tx, post.ID, attrs.TagIDs)
	})

	if err != nil {
		return nil, err
	}

	return p.FindByID(post.ID)
}

func (p Posts) LinkTags(postID uint64, tagIDs []uint64) error {
	return p.DB.Transaction(func(tx *stdgorm.DB) error {
		return p.linkTags(tx, postID, tagIDs)
	})
}

func (p Posts) linkTags(tx *stdgorm.DB, postID uint64, tagIDs []uint64) error {
	for _, tagID := range tagIDs {
		trace := database.PostTag{
			PostID: postID,
			TagID:  tagID,
		}

		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&trace).Error

		if err != nil {
			return fmt.Errorf("error linking tag [%d] to post [%d]: %w", tagID, postID, err)
		}
	}

	return nil
}

// Delete removes the post with its attachments and tag links.
func (p Posts) Delete(id uint64) error {
	return p.DB.Transaction(func(tx *stdgorm.DB) error {
		if err := tx.First(&database.Post{}, id).Error; err != nil {
			return translate(err)
		}

		if err := tx.Where("post_id = ?", id).Delete(&database.PDFAttachment{}).Error; err != nil {
			return fmt.Errorf("delete post attachments: %w", err)
		}

		if err := tx.Where("post_id = ?", id).Delete(&database.PostTag{}).Error; err != nil {
			return fmt.Errorf("unlink post tags: %w", err)
		}

		return translate(tx.Delete(&database.Post{}, id).Error)
	})
}
