package seeds

import (
	"fmt"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository"
)

type CategoriesSeed struct {
	categories repository.Categories
}

func MakeCategoriesSeed(categories repository.Categories) *CategoriesSeed {
	return &CategoriesSeed{
		categories: categories,
	}
}

// Create stores each branch as a chain, every entry being the parent of the
// next one, and returns the categories in creation order.
func (s CategoriesSeed) Create(branches ...[]string) ([]database.Category, error) {
	var categories []database.Category

	for _, branch := range branches {
		var parent *uint64

		for _, name := range branch {
			category, err := s.categories.Create(database.CategoryAttrs{
				Name:     name,
				ParentID: parent,
			})

			if err != nil {
				return nil, fmt.Errorf("error seeding category [%s]: %w", name, err)
			}

			parent = &category.ID
			categories = append(categories, *category)
		}
	}

	return categories, nil
}
