package portal

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Stringable struct {
	value string
}

func NewStringable(value string) *Stringable {
	return &Stringable{
		value: strings.TrimSpace(value),
	}
}

func (s Stringable) ToLower() string {
	caser := cases.Lower(language.English)

	return strings.TrimSpace(caser.String(s.value))
}

func (s Stringable) IsEmpty() bool {
	return s.value == ""
}

func (s Stringable) Value() string {
	return s.value
}
