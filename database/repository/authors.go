package repository

import (
	"fmt"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository/pagination"
	"github.com/inkwell/pkg/portal"
	stdgorm "gorm.io/gorm"
)

type Authors struct {
	DB      *database.Connection
	Slugger portal.Slugger
}

const authorsOrder = "authors.name asc, authors.id asc"

func (a Authors) FindByID(id uint64) (*database.Author, error) {
	author := database.Author{}

	if err := a.DB.Sql().First(&author, id).Error; err != nil {
		return nil, translate(err)
	}

	return &author, nil
}

func (a Authors) FindBySlug(slug string) (*database.Author, error) {
	author := database.Author{}

	err := a.DB.Sql().
		Where("slug = ?", slug).
		First(&author).Error

	if err != nil {
		return nil, translate(err)
	}

	return &author, nil
}

func (a Authors) Filter(scopes ...Scope) ([]database.Author, error) {
	var authors []database.Author

	err := a.DB.Sql().
		Scopes(scopes...).
		Order(authorsOrder).
		Find(&authors).Error

	if err != nil {
		return nil, fmt.Errorf("filter authors: %w", err)
	}

	return authors, nil
}

func (a Authors) Paginate(page pagination.Paginate, scopes ...Scope) (*pagination.Pagination[database.Author], error) {
	return paginate[database.Author](a.DB, "authors", page, authorsOrder, noPreload, scopes...)
}

func (a Authors) Save(author *database.Author) error {
	return a.DB.Transaction(func(tx *stdgorm.DB) error {
		if err := assignSlug(tx, a.Slugger, &database.Author{}, "author", author.ID, &author.Slug, author.Name); err != nil {
			return err
		}

		err := ensureUnique(tx, &database.Author{}, "author", author.ID,
			uniqueField{column: "name", value: author.Name},
			uniqueField{column: "slug", value: author.Slug},
		)

		if err != nil {
			return err
		}

		return translate(tx.Save(author).Error)
	})
}

func (a Authors) Create(attrs database.AuthorAttrs) (*database.Author, error) {
	author := attrs.ToModel()

	if err := a.Save(&author); err != nil {
		return nil, err
	}

	return &author, nil
}

// Delete removes the author together with every post they wrote.
func (a Authors) Delete(id uint64) error {
	return a.DB.Transaction(func(tx *stdgorm.DB) error {
		if err := tx.First(&database.Author{}, id).Error; err != nil {
			return translate(err)
		}

		posts := tx.Model(&database.Post{}).Select("id").Where("author_id = ?", id)

		if err := tx.Where("post_id IN (?)", posts).Delete(&database.PDFAttachment{}).Error; err != nil {
			return fmt.Errorf("delete author attachments: %w", err)
		}

		if err := tx.Where("post_id IN (?)", posts).Delete(&database.PostTag{}).Error; err != nil {
			return fmt.Errorf("delete author post tags: %w", err)
		}

		if err := tx.Where("author_id = ?", id).Delete(&database.Post{}).Error; err != nil {
			return fmt.Errorf("delete author posts: %w", err)
		}

		return translate(tx.Delete(&database.Author{}, id).Error)
	})
}
