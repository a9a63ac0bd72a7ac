package repository

import (
	"errors"
	"fmt"
	"slices"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository/pagination"
	"github.com/inkwell/database/repository/queries"
	"github.com/inkwell/pkg/gorm"
	"github.com/inkwell/pkg/portal"
	stdgorm "gorm.io/gorm"
)

type Categories struct {
	DB      *database.Connection
	Slugger portal.Slugger
}

const categoriesOrder = "categories.name asc, categories.id asc"

func (c Categories) FindByID(id uint64) (*database.Category, error) {
	category := database.Category{}

	if err := c.DB.Sql().First(&category, id).Error; err != nil {
		return nil, translate(err)
	}

	return &category, nil
}

func (c Categories) FindBySlug(slug string) (*database.Category, error) {
	category, err := c.FindBy(slug)

	if err != nil {
		return nil, err
	}

	if category == nil {
		return nil, ErrNotFound
	}

	return category, nil
}

// FindBy returns nil without error when no category carries the slug.
func (c Categories) FindBy(slug string) (*database.Category, error) {
	category := database.Category{}

	result := c.DB.Sql().
		Where("slug = ?", slug).
		First(&category)

	if gorm.IsNotFound(result.Error) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, fmt.Errorf("find category [%s]: %w", slug, result.Error)
	}

	return &category, nil
}

func (c Categories) ChildrenOf(id uint64) ([]database.Category, error) {
	var children []database.Category

	err := c.DB.Sql().
		Where("parent_id = ?", id).
		Order(categoriesOrder).
		Find(&children).Error

	if err != nil {
		return nil, fmt.Errorf("children of category [%d]: %w", id, err)
	}

	return children, nil
}

// Descendants returns the ids of the category with the given slug and its
// whole subtree. Unknown slugs return ErrNotFound.
func (c Categories) Descendants(slug string) ([]uint64, error) {
	root, err := c.FindBySlug(slug)
	if err != nil {
		return nil, err
	}

	return queries.Descendants(c, *root)
}

func (c Categories) Filter(scopes ...Scope) ([]database.Category, error) {
	var categories []database.Category

	err := c.DB.Sql().
		Scopes(scopes...).
		Order(categoriesOrder).
		Find(&categories).Error

	if err != nil {
		return nil, fmt.Errorf("filter categories: %w", err)
	}

	return categories, nil
}

func (c Categories) Paginate(page pagination.Paginate, scopes ...Scope) (*pagination.Pagination[database.Category], error) {
	return paginate[database.Category](c.DB, "categories", page, categoriesOrder, noPreload, scopes...)
}

func (c Categories) Save(category *database.Category) error {
	if err := c.guardParent(category); err != nil {
		return err
	}

	return c.DB.Transaction(func(tx *stdgorm.DB) error {
		if err := assignSlug(tx, c.Slugger, &database.Category{}, "category", category.ID, &category.Slug, category.Name); err != nil {
			return err
		}

		err := ensureUnique(tx, &database.Category{}, "category", category.ID,
			uniqueField{column: "name", value: category.Name},
			uniqueField{column: "slug", value: category.Slug},
		)

		if err != nil {
			return err
		}

		return translate(tx.Omit("Parent").Save(category).Error)
	})
}

func (c Categories) Create(attrs database.CategoryAttrs) (*database.Category, error) {
	category := attrs.ToModel()

	if err := c.Save(&category); err != nil {
		return nil, err
	}

	return &category, nil
}

// guardParent rejects unknown parents and parents that sit inside the
// category's own subtree.
func (c Categories) guardParent(category *database.Category) error {
	if category.ParentID == nil {
		return nil
	}

	parentID := *category.ParentID

	if _, err := c.FindByID(parentID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: parent [%d] does not exist", ErrInvalidParent, parentID)
		}

		return err
	}

	if category.ID == 0 {
		return nil
	}

	subtree, err := queries.Descendants(c, *category)
	if err != nil {
		return err
	}

	if slices.Contains(subtree, parentID) {
		return fmt.Errorf("%w: [%d] is inside the subtree of [%d]", ErrInvalidParent, parentID, category.ID)
	}

	return nil
}

// Delete detaches the category's posts and children before removing it.
func (c Categories) Delete(id uint64) error {
	return c.DB.Transaction(func(tx *stdgorm.DB) error {
		if err := tx.First(&database.Category{}, id).Error; err != nil {
			return translate(err)
		}

		err := tx.Model(&database.Post{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error

		if err != nil {
			return fmt.Errorf("detach category posts: %w", err)
		}

		err = tx.Model(&database.Category{}).
			Where("parent_id = ?", id).
			Update("parent_id", nil).Error

		if err != nil {
			return fmt.Errorf("detach category children: %w", err)
		}

		return translate(tx.Delete(&database.Category{}, id).Error)
	})
}
