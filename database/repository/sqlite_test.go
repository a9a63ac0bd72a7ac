package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository"
	"github.com/inkwell/pkg/portal"
)

type stores struct {
	authors     repository.Authors
	categories  repository.Categories
	tags        repository.Tags
	posts       repository.Posts
	attachments repository.Attachments
}

func newStores(conn *database.Connection) stores {
	slugger := portal.NewSlugger("en", false)
	categories := repository.Categories{DB: conn, Slugger: slugger}

	return stores{
		authors:     repository.Authors{DB: conn, Slugger: slugger},
		categories:  categories,
		tags:        repository.Tags{DB: conn, Slugger: slugger},
		posts:       repository.Posts{DB: conn, Slugger: slugger, Categories: &categories},
		attachments: repository.Attachments{DB: conn},
	}
}

func newSQLiteConnection(t *testing.T) (*database.Connection, *gorm.DB) {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database.NewConnectionFromGorm(db), db
}

func seedAuthor(t *testing.T, s stores, name string) database.Author {
	t.Helper()

	author, err := s.authors.Create(database.AuthorAttrs{Name: name})
	if err != nil {
		t.Fatalf("create author: %v", err)
	}

	return *author
}

func seedCategory(t *testing.T, s stores, name string, parent *database.Category) database.Category {
	t.Helper()

	attrs := database.CategoryAttrs{Name: name}
	if parent != nil {
		attrs.ParentID = &parent.ID
	}

	category, err := s.categories.Create(attrs)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	return *category
}

func seedTag(t *testing.T, s stores, name string) database.Tag {
	t.Helper()

	tag, err := s.tags.Create(database.TagAttrs{Name: name})
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}

	return *tag
}

func seedPost(t *testing.T, s stores, author database.Author, category *database.Category, postType database.PostType, title string, tags ...database.Tag) database.Post {
	t.Helper()

	attrs := database.PostAttrs{
		AuthorID: author.ID,
		Title:    title,
		Content:  title + " content",
		PostType: postType,
	}

	if category != nil {
		attrs.CategoryID = &category.ID
	}

	for _, tag := range tags {
		attrs.TagIDs = append(attrs.TagIDs, tag.ID)
	}

	post, err := s.posts.Create(attrs)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	return *post
}

func titles(posts []database.Post) map[string]bool {
	out := make(map[string]bool, len(posts))

	for _, post := range posts {
		out[post.Title] = true
	}

	return out
}
