package seeds

import (
	"fmt"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository"
)

type AuthorsSeed struct {
	authors repository.Authors
}

func NewAuthorsSeed(authors repository.Authors) *AuthorsSeed {
	return &AuthorsSeed{
		authors: authors,
	}
}

func (s AuthorsSeed) Create(name string) (*database.Author, error) {
	occupation := "Software Engineer"
	bio := "Writes about backend systems and the odd trip."

	author, err := s.authors.Create(database.AuthorAttrs{
		Name:       name,
		Occupation: &occupation,
		Bio:        &bio,
	})

	if err != nil {
		return nil, fmt.Errorf("issues creating author [%s]: %w", name, err)
	}

	return author, nil
}
