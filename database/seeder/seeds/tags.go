package seeds

import (
	"fmt"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository"
)

type TagsSeed struct {
	tags repository.Tags
}

func NewTagsSeed(tags repository.Tags) *TagsSeed {
	return &TagsSeed{
		tags: tags,
	}
}

func (s TagsSeed) Create(names ...string) ([]database.Tag, error) {
	var tags []database.Tag

	for _, name := range names {
		tag, err := s.tags.Create(database.TagAttrs{Name: name})

		if err != nil {
			return nil, fmt.Errorf("issues creating tag [%s]: %w", name, err)
		}

		tags = append(tags, *tag)
	}

	return tags, nil
}
