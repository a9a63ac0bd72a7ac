package queries

import (
	"fmt"
	"strings"

	"github.com/inkwell/database"
	"gorm.io/gorm"
)

// CategoryTree is the read surface the resolver needs from the category store.
// FindBy returns nil without error when the slug is unknown.
type CategoryTree interface {
	FindBy(slug string) (*database.Category, error)
	ChildrenOf(id uint64) ([]database.Category, error)
}

// PostPlan is a resolved, not yet executed, post listing. Apply it with Scope.
type PostPlan struct {
	Empty       bool
	TagSlug     string
	CategoryIDs []uint64
	Type        database.PostType
	Search      string
}

type PostsResolver struct {
	Tree CategoryTree
}

func MakePostsResolver(tree CategoryTree) PostsResolver {
	return PostsResolver{Tree: tree}
}

// Resolve narrows by tag, then category subtree, then type. An unknown
// category slug yields an empty plan whatever the other filters say, and an
// unknown type is ignored.
func (r PostsResolver) Resolve(filters PostFilters) (PostPlan, error) {
	plan := PostPlan{
		TagSlug: filters.GetTagSlug(),
		Search:  filters.GetSearch(),
	}

	if slug := filters.GetCategorySlug(); slug != "" {
		root, err := r.Tree.FindBy(slug)

		if err != nil {
			return PostPlan{}, fmt.Errorf("resolve category [%s]: %w", slug, err)
		}

		if root == nil {
			return PostPlan{Empty: true}, nil
		}

		ids, err := Descendants(r.Tree, *root)
		if err != nil {
			return PostPlan{}, err
		}

		plan.CategoryIDs = ids
	}

	if postType, ok := database.ParsePostType(filters.GetType()); ok {
		plan.Type = postType
	}

	return plan, nil
}

// Descendants returns root's id plus the ids of every category reachable
// through child links. Each category is expanded at most once, so a parent
// cycle in stored data terminates.
func Descendants(tree CategoryTree, root database.Category) ([]uint64, error) {
	visited := map[uint64]struct{}{}
	stack := []uint64{root.ID}
	ids := make([]uint64, 0, 4)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[id]; seen {
			continue
		}

		visited[id] = struct{}{}
		ids = append(ids, id)

		children, err := tree.ChildrenOf(id)
		if err != nil {
			return nil, fmt.Errorf("expand category [%d]: %w", id, err)
		}

		for _, child := range children {
			if _, seen := visited[child.ID]; !seen {
				stack = append(stack, child.ID)
			}
		}
	}

	return ids, nil
}

// Scope applies the plan to a query whose master table is "posts".
func (p PostPlan) Scope(query *gorm.DB) *gorm.DB {
	if p.Empty {
		return query.Where("1 = 0")
	}

	if p.TagSlug != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM post_tags JOIN tags ON tags.id = post_tags.tag_id WHERE post_tags.post_id = posts.id AND tags.slug = ?)",
			p.TagSlug,
		)
	}

	if len(p.CategoryIDs) > 0 {
		query = query.Where("posts.category_id IN ?", p.CategoryIDs)
	}

	if p.Type != "" {
		query = query.Where("posts.post_type = ?", p.Type)
	}

	if p.Search != "" {
		needle := "%" + EscapeLike(p.Search) + "%"
		query = query.Where(
			`(LOWER(posts.title) LIKE ? ESCAPE '\' OR LOWER(posts.content) LIKE ? ESCAPE '\')`,
			needle,
			needle,
		)
	}

	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike makes the LIKE wildcards in value match literally under ESCAPE '\'.
func EscapeLike(value string) string {
	return likeEscaper.Replace(value)
}
