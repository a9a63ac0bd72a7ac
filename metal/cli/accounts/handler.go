package accounts

import (
	"fmt"

	"github.com/inkwell/database"
	"github.com/inkwell/pkg/cli"
)

func (h Handler) CreateAccount(name string) error {
	author, err := h.Authors.Create(database.AuthorAttrs{Name: name})

	if err != nil {
		return fmt.Errorf("failed to create the author [%s]: %w", name, err)
	}

	cli.Successln("\nThe author has been created successfully!\n")
	h.print(author)

	return nil
}

func (h Handler) ShowAccount(slug string) error {
	author, err := h.Authors.FindBySlug(slug)

	if err != nil {
		return fmt.Errorf("the given author [%s] was not found: %w", slug, err)
	}

	cli.Successln("\nThe given author has been found successfully!\n")
	h.print(author)

	return nil
}

// IssueToken signs a bearer token whose subject is the author's slug.
func (h Handler) IssueToken(slug string) (string, error) {
	author, err := h.Authors.FindBySlug(slug)

	if err != nil {
		return "", fmt.Errorf("the given author [%s] was not found: %w", slug, err)
	}

	token, err := h.JWT.Generate(author.Slug)

	if err != nil {
		return "", fmt.Errorf("could not sign a token for [%s]: %w", author.Slug, err)
	}

	cli.Successln("\nThe token was issued successfully.")
	cli.Blueln("   > " + fmt.Sprintf("Author: %s", author.Slug))
	cli.Blueln("   > " + fmt.Sprintf("Expires in: %s", h.JWT.TTL))
	cli.Magentaln("   > " + fmt.Sprintf("Bearer: %s", token))
	fmt.Println(" ")

	return token, nil
}

func (h Handler) print(author *database.Author) {
	cli.Blueln("   > " + fmt.Sprintf("ID: %d", author.ID))
	cli.Blueln("   > " + fmt.Sprintf("Name: %s", author.Name))
	cli.Blueln("   > " + fmt.Sprintf("Slug: %s", author.Slug))
	fmt.Println(" ")
}
