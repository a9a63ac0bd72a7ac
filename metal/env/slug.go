package env

// SlugEnvironment controls how names are turned into slugs. Lang is a BCP 47
// tag; Transliterate switches to ASCII-only slugs.
type SlugEnvironment struct {
	Lang          string `validate:"required,min=2,max=12"`
	Transliterate bool
}
