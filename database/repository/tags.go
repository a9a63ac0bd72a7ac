package repository

import (
	"fmt"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository/pagination"
	"github.com/inkwell/pkg/portal"
	stdgorm "gorm.io/gorm"
)

type Tags struct {
	DB      *database.Connection
	Slugger portal.Slugger
}

const tagsOrder = "tags.name asc, tags.id asc"

func (t Tags) FindByID(id uint64) (*database.Tag, error) {
	tag := database.Tag{}

	if err := t.DB.Sql().First(&tag, id).Error; err != nil {
		return nil, translate(err)
	}

	return &tag, nil
}

func (t Tags) FindBySlug(slug string) (*database.Tag, error) {
	tag := database.Tag{}

	err := t.DB.Sql().
		Where("slug = ?", slug).
		First(&tag).Error

	if err != nil {
		return nil, translate(err)
	}

	return &tag, nil
}

func (t Tags) Filter(scopes ...Scope) ([]database.Tag, error) {
	var tags []database.Tag

	err := t.DB.Sql().
		Scopes(scopes...).
		Order(tagsOrder).
		Find(&tags).Error

	if err != nil {
		return nil, fmt.Errorf("filter tags: %w", err)
	}

	return tags, nil
}

func (t Tags) Paginate(page pagination.Paginate, scopes ...Scope) (*pagination.Pagination[database.Tag], error) {
	return paginate[database.Tag](t.DB, "tags", page, tagsOrder, noPreload, scopes...)
}

func (t Tags) Save(tag *database.Tag) error {
	return t.DB.Transaction(func(tx *stdgorm.DB) error {
		if err := assignSlug(tx, t.Slugger, &database.Tag{}, "tag", tag.ID, &tag.Slug, tag.Name); err != nil {
			return err
		}

		err := ensureUnique(tx, &database.Tag{}, "tag", tag.ID,
			uniqueField{column: "name", value: tag.Name},
			uniqueField{column: "slug", value: tag.Slug},
		)

		if err != nil {
			return err
		}

		return translate(tx.Save(tag).Error)
	})
}

func (t Tags) Create(attrs database.TagAttrs) (*database.Tag, error) {
	tag := attrs.ToModel()

	if err := t.Save(&tag); err != nil {
		return nil, err
	}

	return &tag, nil
}

// Delete unlinks the tag from its posts before removing it.
func (t Tags) Delete(id uint64) error {
	return t.DB.Transaction(func(tx *stdgorm.DB) error {
		if err := tx.First(&database.Tag{}, id).Error; err != nil {
			return translate(err)
		}

		if err := tx.Where("tag_id = ?", id).Delete(&database.PostTag{}).Error; err != nil {
			return fmt.Errorf("unlink tag posts: %w", err)
		}

		return translate(tx.Delete(&database.Tag{}, id).Error)
	})
}
