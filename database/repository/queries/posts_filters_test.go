package queries

import (
	"net/url"
	"testing"
)

func TestPostFiltersSanitise(t *testing.T) {
	f := PostFilters{
		TagSlug:      "  Go  ",
		CategorySlug: "  Tech  ",
		Type:         " MOMENT ",
		Search:       "Hello  ",
	}

	if f.GetTagSlug() != "Go" {
		t.Fatalf("got %s", f.GetTagSlug())
	}

	if f.GetCategorySlug() != "Tech" {
		t.Fatalf("got %s", f.GetCategorySlug())
	}

	if f.GetType() != "MOMENT" {
		t.Fatalf("got %s", f.GetType())
	}

	if f.GetSearch() != "hello" {
		t.Fatalf("got %s", f.GetSearch())
	}
}

func TestMakePostFiltersFrom(t *testing.T) {
	values, _ := url.ParseQuery("tag_slug=go&category_slug=tech&type=blog&search=tips")
	f := MakePostFiltersFrom(values)

	if f.TagSlug != "go" || f.CategorySlug != "tech" || f.Type != "blog" || f.Search != "tips" {
		t.Fatalf("unexpected filters %+v", f)
	}
}
