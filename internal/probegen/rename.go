package probegen

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type wordCase int

const (
	lower wordCase = iota
	upper
	title
)

// caser returns a fresh caser; casers keep state and are not shared.
func (w wordCase) caser() cases.Caser {
	switch w {
	case upper:
		return cases.Upper(language.Und)
	case title:
		return cases.Title(language.Und)
	}
	return cases.Lower(language.Und)
}

// renameCase turns a Go identifier into a label.
type renameCase struct {
	name  string
	sep   string
	first wordCase
	rest  wordCase
}

var renameCases = map[string]renameCase{
	"lower":                {sep: "", first: lower, rest: lower},
	"UPPER":                {sep: "", first: upper, rest: upper},
	"snake_case":           {sep: "_", first: lower, rest: lower},
	"SCREAMING_SNAKE_CASE": {sep: "_", first: upper, rest: upper},
	"UPPER_SNAKE_CASE":     {sep: "_", first: upper, rest: upper},
	"camelCase":            {sep: "", first: lower, rest: title},
	"PascalCase":           {sep: "", first: title, rest: title},
	"kebab-case":           {sep: "-", first: lower, rest: lower},
	"SCREAMING-KEBAB-CASE": {sep: "-", first: upper, rest: upper},
	"Train-Case":           {sep: "-", first: title, rest: title},
}

func lookupCase(name string) (renameCase, bool) {
	c, ok := renameCases[name]
	c.name = name
	return c, ok
}

func (c renameCase) apply(ident string) string {
	words := splitWords(ident)
	first, rest := c.first.caser(), c.rest.caser()
	for i, w := range words {
		if i == 0 {
			words[i] = first.String(w)
		} else {
			words[i] = rest.String(w)
		}
	}
	return strings.Join(words, c.sep)
}

// splitWords splits an identifier at underscores, at lower to upper case
// changes and before the last capital of an acronym followed by a lower
// case letter: "HTTPServerID" is HTTP, Server, ID.
func splitWords(ident string) []string {
	var words []string
	runes := []rune(ident)
	start := 0
	flush := func(end int) {
		if end > start {
			words = append(words, string(runes[start:end]))
		}
		start = end
	}
	for i, r := range runes {
		switch {
		case r == '_' || r == '-':
			flush(i)
			start = i + 1
		case i == start:
		case unicode.IsUpper(r):
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || unicode.IsUpper(prev) && nextLower {
				flush(i)
			}
		}
	}
	flush(len(runes))
	return words
}
