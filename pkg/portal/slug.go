package portal

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var ErrEmptySlug = errors.New("the given value does not produce a slug")

// Slugger turns human-readable names into URL-safe identifiers. By default
// non-ASCII letters survive; with transliteration enabled the output is ASCII.
type Slugger struct {
	lang          language.Tag
	transliterate bool
}

func NewSlugger(lang string, transliterate bool) Slugger {
	tag, err := language.Parse(strings.TrimSpace(lang))

	if err != nil {
		tag = language.Und
	}

	return Slugger{
		lang:          tag,
		transliterate: transliterate,
	}
}

func (s Slugger) Make(value string) (string, error) {
	var result string

	if s.transliterate {
		result = slug.MakeLang(value, s.langCode())
	} else {
		result = s.unicode(value)
	}

	if result == "" {
		return "", ErrEmptySlug
	}

	return result, nil
}

// Assign settles the slug of a row whose stored slug is stored ("" for a new
// row). A blank target falls back to the stored slug, or is derived from
// source when there is none. A target equal to the stored slug is left as is.
// Anything else was supplied by the client and is normalised.
func (s Slugger) Assign(target *string, source, stored string) error {
	seed := *target

	if strings.TrimSpace(seed) == "" {
		if stored != "" {
			*target = stored

			return nil
		}

		seed = source
	} else if seed == stored {
		return nil
	}

	value, err := s.Make(seed)
	if err != nil {
		return err
	}

	*target = value

	return nil
}

func (s Slugger) unicode(value string) string {
	lower := cases.Lower(s.lang).String(norm.NFKC.String(value))

	var builder strings.Builder
	separate := false

	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_' {
			if separate && builder.Len() > 0 {
				builder.WriteByte('-')
			}

			separate = false
			builder.WriteRune(r)

			continue
		}

		separate = true
	}

	return strings.Trim(builder.String(), "-_")
}

func (s Slugger) langCode() string {
	base, confidence := s.lang.Base()

	if confidence == language.No {
		return "en"
	}

	return base.String()
}
