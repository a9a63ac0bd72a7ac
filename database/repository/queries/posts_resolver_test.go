package queries

import (
	"errors"
	"slices"
	"testing"

	"github.com/inkwell/database"
)

type fakeTree struct {
	bySlug   map[string]database.Category
	children map[uint64][]database.Category
	calls    map[uint64]int
	err      error
}

func newFakeTree(categories ...database.Category) *fakeTree {
	tree := &fakeTree{
		bySlug:   map[string]database.Category{},
		children: map[uint64][]database.Category{},
		calls:    map[uint64]int{},
	}

	for _, category := range categories {
		tree.bySlug[category.Slug] = category

		if category.ParentID != nil {
			tree.children[*category.ParentID] = append(tree.children[*category.ParentID], category)
		}
	}

	return tree
}

func (f *fakeTree) FindBy(slug string) (*database.Category, error) {
	if f.err != nil {
		return nil, f.err
	}

	category, ok := f.bySlug[slug]
	if !ok {
		return nil, nil
	}

	return &category, nil
}

func (f *fakeTree) ChildrenOf(id uint64) ([]database.Category, error) {
	f.calls[id]++

	return f.children[id], nil
}

func ref(id uint64) *uint64 {
	return &id
}

func sorted(ids []uint64) []uint64 {
	out := slices.Clone(ids)
	slices.Sort(out)

	return out
}

func TestDescendantsCollectsWholeSubtree(t *testing.T) {
	a := database.Category{ID: 1, Slug: "a"}
	b := database.Category{ID: 2, Slug: "b", ParentID: ref(1)}
	c := database.Category{ID: 3, Slug: "c", ParentID: ref(2)}
	d := database.Category{ID: 4, Slug: "d", ParentID: ref(1)}
	other := database.Category{ID: 5, Slug: "other"}

	tree := newFakeTree(a, b, c, d, other)

	ids, err := Descendants(tree, a)
	if err != nil {
		t.Fatalf("descendants: %v", err)
	}

	if got := sorted(ids); !slices.Equal(got, []uint64{1, 2, 3, 4}) {
		t.Fatalf("unexpected ids %v", got)
	}

	ids, _ = Descendants(tree, c)
	if !slices.Equal(ids, []uint64{3}) {
		t.Fatalf("leaf should only contain itself, got %v", ids)
	}
}

func TestDescendantsTerminatesOnCycle(t *testing.T) {
	// 1 -> 2 -> 3 -> 1
	a := database.Category{ID: 1, Slug: "a", ParentID: ref(3)}
	b := database.Category{ID: 2, Slug: "b", ParentID: ref(1)}
	c := database.Category{ID: 3, Slug: "c", ParentID: ref(2)}

	tree := newFakeTree(a, b, c)

	ids, err := Descendants(tree, a)
	if err != nil {
		t.Fatalf("descendants: %v", err)
	}

	if got := sorted(ids); !slices.Equal(got, []uint64{1, 2, 3}) {
		t.Fatalf("unexpected ids %v", got)
	}

	for id, calls := range tree.calls {
		if calls != 1 {
			t.Fatalf("category %d expanded %d times", id, calls)
		}
	}
}

func TestDescendantsTerminatesOnSelfParent(t *testing.T) {
	loop := database.Category{ID: 7, Slug: "loop", ParentID: ref(7)}

	ids, err := Descendants(newFakeTree(loop), loop)
	if err != nil {
		t.Fatalf("descendants: %v", err)
	}

	if !slices.Equal(ids, []uint64{7}) {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestResolveUnknownCategoryShortCircuits(t *testing.T) {
	resolver := MakePostsResolver(newFakeTree())

	plan, err := resolver.Resolve(PostFilters{TagSlug: "go", CategorySlug: "missing", Type: "moment"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if !plan.Empty {
		t.Fatalf("expected empty plan")
	}

	if plan.TagSlug != "" || plan.Type != "" || plan.CategoryIDs != nil {
		t.Fatalf("empty plan must not carry other filters: %+v", plan)
	}
}

func TestResolveKnownCategoryAndType(t *testing.T) {
	a := database.Category{ID: 1, Slug: "a"}
	b := database.Category{ID: 2, Slug: "b", ParentID: ref(1)}

	plan, err := MakePostsResolver(newFakeTree(a, b)).Resolve(PostFilters{CategorySlug: " a ", Type: "moment"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if plan.Empty {
		t.Fatalf("plan should not be empty")
	}

	if got := sorted(plan.CategoryIDs); !slices.Equal(got, []uint64{1, 2}) {
		t.Fatalf("unexpected ids %v", got)
	}

	if plan.Type != database.PostTypeMoment {
		t.Fatalf("expected moment, got %q", plan.Type)
	}
}

func TestResolveIgnoresUnknownType(t *testing.T) {
	plan, err := MakePostsResolver(newFakeTree()).Resolve(PostFilters{Type: "bogus"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if plan.Type != "" || plan.Empty {
		t.Fatalf("unknown type must be ignored: %+v", plan)
	}
}

func TestResolveMatchesTypeExactly(t *testing.T) {
	for _, value := range []string{"MOMENT", "Blog", "moments"} {
		plan, err := MakePostsResolver(newFakeTree()).Resolve(PostFilters{Type: value})
		if err != nil {
			t.Fatalf("resolve %q: %v", value, err)
		}

		if plan.Type != "" || plan.Empty {
			t.Fatalf("type %q must be ignored: %+v", value, plan)
		}
	}
}

func TestResolveMatchesCategorySlugExactly(t *testing.T) {
	tree := newFakeTree(database.Category{ID: 1, Slug: "go"})

	plan, err := MakePostsResolver(tree).Resolve(PostFilters{CategorySlug: "GO"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if !plan.Empty || plan.CategoryIDs != nil {
		t.Fatalf("upper-case slug must not match a lower-case category: %+v", plan)
	}
}

func TestResolveKeepsTagSlugCase(t *testing.T) {
	plan, err := MakePostsResolver(newFakeTree()).Resolve(PostFilters{TagSlug: " Go "})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if plan.TagSlug != "Go" {
		t.Fatalf("expected the trimmed slug unchanged, got %q", plan.TagSlug)
	}
}

func TestResolvePropagatesLookupErrors(t *testing.T) {
	tree := newFakeTree()
	tree.err = errors.New("db down")

	if _, err := MakePostsResolver(tree).Resolve(PostFilters{CategorySlug: "a"}); !errors.Is(err, tree.err) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"plain":    "plain",
		"100%":     `100\%`,
		"snake_id": `snake\_id`,
		`a\b`:      `a\\b`,
	}

	for input, want := range cases {
		if got := EscapeLike(input); got != want {
			t.Fatalf("EscapeLike(%q) = %q, want %q", input, got, want)
		}
	}
}
