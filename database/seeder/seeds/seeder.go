package seeds

import (
	"fmt"
	"strings"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository"
	"github.com/inkwell/metal/env"
	"github.com/inkwell/pkg/cli"
	"github.com/inkwell/pkg/portal"
)

const SampleAuthorName = "Ada Writer"

var (
	categoryBranches = [][]string{
		{"Engineering", "Backend", "Go"},
		{"Life", "Travel"},
	}

	tagNames = []string{"Go", "Databases", "Notes", "Photography"}
)

type Seeder struct {
	dbConn      *database.Connection
	env         *env.Environment
	authors     repository.Authors
	categories  repository.Categories
	tags        repository.Tags
	posts       repository.Posts
	attachments repository.Attachments
}

type seeded[T any] struct {
	items []T
	err   error
}

func MakeSeeder(dbConnection *database.Connection, environment *env.Environment) *Seeder {
	slugger := portal.NewSlugger(environment.Slug.Lang, environment.Slug.Transliterate)
	categories := repository.Categories{DB: dbConnection, Slugger: slugger}

	return &Seeder{
		dbConn:      dbConnection,
		env:         environment,
		authors:     repository.Authors{DB: dbConnection, Slugger: slugger},
		categories:  categories,
		tags:        repository.Tags{DB: dbConnection, Slugger: slugger},
		posts:       repository.Posts{DB: dbConnection, Slugger: slugger, Categories: &categories},
		attachments: repository.Attachments{DB: dbConnection},
	}
}

func (s *Seeder) TruncateDB() error {
	return database.NewTruncate(s.dbConn, s.env).Execute()
}

func (s *Seeder) SeedAuthor() (*database.Author, error) {
	return NewAuthorsSeed(s.authors).Create(SampleAuthorName)
}

func (s *Seeder) SeedCategories() ([]database.Category, error) {
	return MakeCategoriesSeed(s.categories).Create(categoryBranches...)
}

func (s *Seeder) SeedTags() ([]database.Tag, error) {
	return NewTagsSeed(s.tags).Create(tagNames...)
}

// SeedPosts writes blog posts and moments spread over the category tree, plus
// one uncategorised moment.
func (s *Seeder) SeedPosts(author database.Author, categories []database.Category, tags []database.Tag) ([]database.Post, error) {
	category := func(name string) *uint64 {
		for _, item := range categories {
			if item.Name == name {
				id := item.ID
				return &id
			}
		}

		return nil
	}

	tagged := func(names ...string) []uint64 {
		var ids []uint64

		for _, item := range tags {
			for _, name := range names {
				if item.Name == name {
					ids = append(ids, item.ID)
				}
			}
		}

		return ids
	}

	return NewPostsSeed(s.posts, s.attachments).CreatePosts(
		database.PostAttrs{
			AuthorID:   author.ID,
			CategoryID: category("Go"),
			Title:      "Understanding Go interfaces",
			Content:    longContent("Interfaces in Go are satisfied implicitly."),
			PostType:   database.PostTypeBlog,
			TagIDs:     tagged("Go", "Notes"),
		},
		database.PostAttrs{
			AuthorID:   author.ID,
			CategoryID: category("Backend"),
			Title:      "Postgres indexes in practice",
			Content:    longContent("A b-tree index is the default and usually the right call."),
			PostType:   database.PostTypeBlog,
			TagIDs:     tagged("Databases"),
		},
		database.PostAttrs{
			AuthorID:   author.ID,
			CategoryID: category("Travel"),
			Title:      "Morning in Lisbon",
			Content:    "Fog over the river, then sun by nine.",
			PostType:   database.PostTypeMoment,
			TagIDs:     tagged("Photography"),
		},
		database.PostAttrs{
			AuthorID: author.ID,
			Title:    "Shipping on a Friday",
			Content:  "It went fine. This time.",
			PostType: database.PostTypeMoment,
			TagIDs:   tagged("Notes"),
		},
	)
}

func (s *Seeder) SeedAttachments(posts []database.Post) error {
	for _, post := range posts {
		if post.PostType != database.PostTypeBlog {
			continue
		}

		file := fmt.Sprintf("attachments/%s.pdf", post.Slug)

		if _, err := NewPostsSeed(s.posts, s.attachments).Attach(post, file, "Printable version"); err != nil {
			return err
		}
	}

	return nil
}

// Run wipes the database and seeds it again. Authors, categories and tags do
// not depend on each other, so they are written concurrently.
func (s *Seeder) Run() error {
	if err := s.TruncateDB(); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	cli.Successln("db truncated successfully ...")

	authorChan := make(chan seeded[database.Author])
	categoriesChan := make(chan seeded[database.Category])
	tagsChan := make(chan seeded[database.Tag])

	go func() {
		defer close(authorChan)

		cli.Blueln("Seeding authors ...")
		author, err := s.SeedAuthor()

		if err != nil {
			authorChan <- seeded[database.Author]{err: err}
			return
		}

		authorChan <- seeded[database.Author]{items: []database.Author{*author}}
	}()

	go func() {
		defer close(categoriesChan)

		cli.Warningln("Seeding categories ...")
		categories, err := s.SeedCategories()
		categoriesChan <- seeded[database.Category]{items: categories, err: err}
	}()

	go func() {
		defer close(tagsChan)

		cli.Magentaln("Seeding tags ...")
		tags, err := s.SeedTags()
		tagsChan <- seeded[database.Tag]{items: tags, err: err}
	}()

	author := <-authorChan
	categories := <-categoriesChan
	tags := <-tagsChan

	for _, err := range []error{author.err, categories.err, tags.err} {
		if err != nil {
			return err
		}
	}

	cli.Cyanln("Seeding posts ...")
	posts, err := s.SeedPosts(author.items[0], categories.items, tags.items)
	if err != nil {
		return err
	}

	cli.Grayln("Seeding attachments ...")
	if err := s.SeedAttachments(posts); err != nil {
		return err
	}

	cli.Magentaln("db seeded as expected ....")

	return nil
}

func longContent(opening string) string {
	filler := "Each section builds on the one before it, with short examples and the trade-offs spelled out. "

	return opening + " " + strings.Repeat(filler, 3)
}
