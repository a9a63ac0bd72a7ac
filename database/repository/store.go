package repository

import (
	"fmt"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository/pagination"
	"github.com/inkwell/pkg/portal"
	stdgorm "gorm.io/gorm"
)

// Scope narrows a query. Scopes are applied in order.
type Scope = func(*stdgorm.DB) *stdgorm.DB

// Store is the capability set every entity repository offers.
type Store[T any] interface {
	FindByID(id uint64) (*T, error)
	FindBySlug(slug string) (*T, error)
	Filter(scopes ...Scope) ([]T, error)
	Save(entity *T) error
	Delete(id uint64) error
}

var (
	_ Store[database.Author]   = Authors{}
	_ Store[database.Category] = Categories{}
	_ Store[database.Tag]      = Tags{}
	_ Store[database.Post]     = Posts{}
)

type uniqueField struct {
	column string
	value  string
}

// ensureUnique fails with a DuplicateError naming the first unique column
// already taken by another row of the same table.
func ensureUnique(tx *stdgorm.DB, model any, entity string, id uint64, fields ...uniqueField) error {
	for _, field := range fields {
		var count int64

		query := tx.Model(model).Where(field.column+" = ?", field.value)

		if id != 0 {
			query = query.Where("id <> ?", id)
		}

		if err := query.Count(&count).Error; err != nil {
			return fmt.Errorf("check unique %s.%s: %w", entity, field.column, err)
		}

		if count > 0 {
			return &DuplicateError{Entity: entity, Field: field.column, Value: field.value}
		}
	}

	return nil
}

// assignSlug hands the row's stored slug to the slugger so an unchanged slug
// is written back as is.
func assignSlug(tx *stdgorm.DB, slugger portal.Slugger, model any, entity string, id uint64, target *string, source string) error {
	var stored []string

	if id != 0 {
		if err := tx.Model(model).Where("id = ?", id).Pluck("slug", &stored).Error; err != nil {
			return fmt.Errorf("load %s slug: %w", entity, err)
		}
	}

	previous := ""
	if len(stored) > 0 {
		previous = stored[0]
	}

	if err := slugger.Assign(target, source, previous); err != nil {
		return fmt.Errorf("%s slug: %w", entity, err)
	}

	return nil
}

// paginate counts the narrowed query, then loads one page of it.
func paginate[T any](db *database.Connection, table string, page pagination.Paginate, order string, load Scope, scopes ...Scope) (*pagination.Pagination[T], error) {
	var items []T

	query := db.Sql().Model(new(T)).Scopes(scopes...)

	numItems, err := pagination.Count(query, db.GetSession(), table+".id")
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", table, err)
	}

	err = db.Sql().
		Model(new(T)).
		Scopes(scopes...).
		Scopes(load).
		Order(order).
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&items).Error

	if err != nil {
		return nil, fmt.Errorf("load %s page: %w", table, err)
	}

	page.SetNumItems(numItems)

	return pagination.MakePagination[T](items, page), nil
}

func noPreload(query *stdgorm.DB) *stdgorm.DB {
	return query
}
