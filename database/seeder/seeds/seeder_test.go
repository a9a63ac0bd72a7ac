package seeds

import (
	"testing"

	"github.com/inkwell/database"
	handlertests "github.com/inkwell/handler/tests"
	"github.com/inkwell/metal/env"
)

func setupSeeder(t *testing.T, appType string) *Seeder {
	t.Helper()

	e := &env.Environment{
		App:  env.AppEnvironment{Type: appType},
		Slug: env.SlugEnvironment{Lang: "en"},
	}

	return MakeSeeder(handlertests.NewTestDB(t), e)
}

func count(t *testing.T, s *Seeder, model any) int64 {
	t.Helper()

	var total int64

	if err := s.dbConn.Sql().Model(model).Count(&total).Error; err != nil {
		t.Fatalf("count: %v", err)
	}

	return total
}

func TestSeederRun(t *testing.T) {
	seeder := setupSeeder(t, "local")

	// A second run starts from a truncated database.
	for i := 0; i < 2; i++ {
		if err := seeder.Run(); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	expected := map[string]struct {
		model any
		total int64
	}{
		"authors":     {&database.Author{}, 1},
		"categories":  {&database.Category{}, 5},
		"tags":        {&database.Tag{}, 4},
		"posts":       {&database.Post{}, 4},
		"post_tags":   {&database.PostTag{}, 5},
		"attachments": {&database.PDFAttachment{}, 2},
	}

	for name, want := range expected {
		if got := count(t, seeder, want.model); got != want.total {
			t.Fatalf("expected %d %s, got %d", want.total, name, got)
		}
	}

	author, err := seeder.authors.FindBySlug("ada-writer")
	if err != nil || author.Name != SampleAuthorName {
		t.Fatalf("sample author not found: %v", err)
	}

	subtree, err := seeder.categories.Descendants("engineering")
	if err != nil {
		t.Fatalf("descendants: %v", err)
	}

	if len(subtree) != 3 {
		t.Fatalf("expected a three level tree, got %v", subtree)
	}
}

func TestSeederPostTypes(t *testing.T) {
	seeder := setupSeeder(t, "local")

	if err := seeder.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	for postType, want := range map[database.PostType]int64{
		database.PostTypeBlog:   2,
		database.PostTypeMoment: 2,
	} {
		var total int64

		seeder.dbConn.Sql().Model(&database.Post{}).Where("post_type = ?", postType).Count(&total)

		if total != want {
			t.Fatalf("expected %d %s posts, got %d", want, postType, total)
		}
	}

	post, err := seeder.posts.FindBySlug("understanding-go-interfaces")
	if err != nil {
		t.Fatalf("find post: %v", err)
	}

	if len(post.Attachments) != 1 || post.Attachments[0].File != "attachments/understanding-go-interfaces.pdf" {
		t.Fatalf("unexpected attachments %+v", post.Attachments)
	}

	if len(post.Tags) != 2 {
		t.Fatalf("expected two tags, got %v", post.TagNames())
	}
}

func TestSeederRefusesProduction(t *testing.T) {
	seeder := setupSeeder(t, "production")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected truncate to refuse production")
		}
	}()

	_ = seeder.TruncateDB()
}
