// Package casing rewrites GraphQL names into Go identifiers.
//
// Both transformations are pure functions of their input and are total: every
// string, including the empty string, has a result.
package casing

import (
	"strings"
	"unicode"
)

// PascalCase rewrites s into PascalCase.
//
// Digits are copied through and capitalize the next letter. Any other
// non-letter is dropped and capitalizes the next letter. Letters without case
// are dropped and leave the state untouched. Runs of capital
// letters are treated as abbreviations: the first capital is kept and the rest
// are lowered, unless a capital starts a new word (it is followed by a lower
// case letter).
//
//	PascalCase("http_server") // HttpServer
//	PascalCase("HTTPServer")  // HttpServer
//	PascalCase("user2name")   // User2Name
func PascalCase(s string) string {
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s))

	capitalize := true
	abbreviation := false

	for i, r := range runes {
		switch {
		case unicode.IsNumber(r):
			b.WriteRune(r)
			capitalize = true
			abbreviation = false
		case !unicode.IsLetter(r):
			capitalize = true
			abbreviation = false
		case unicode.IsLower(r):
			if capitalize {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(r)
			}
			capitalize = false
			abbreviation = false
		case unicode.IsUpper(r):
			// A capital followed by a lower case letter starts a new word.
			if i < len(runes)-1 && unicode.IsLower(runes[i+1]) {
				b.WriteRune(r)
				capitalize = false
				abbreviation = false
				continue
			}

			switch {
			case !abbreviation:
				b.WriteRune(r)
				abbreviation = true
				capitalize = false
			case capitalize:
				b.WriteRune(r)
				capitalize = false
			default:
				b.WriteRune(unicode.ToLower(r))
			}
		}
		// Letters with no case (e.g. CJK) match no branch and are dropped.
	}

	return b.String()
}

// CamelCasePreservingSurroundingUnderscores returns s camelCased while keeping
// every leading and trailing underscore.
//
//	CamelCasePreservingSurroundingUnderscores("_foo_")         // _foo_
//	CamelCasePreservingSurroundingUnderscores("___foo_bar___") // ___fooBar___
//
// A string made only of underscores is returned unchanged.
func CamelCasePreservingSurroundingUnderscores(s string) string {
	trimmedLeft := strings.TrimLeft(s, "_")
	leading := s[:len(s)-len(trimmedLeft)]

	middle := strings.TrimRight(trimmedLeft, "_")
	trailing := trimmedLeft[len(middle):]

	pascal := PascalCase(middle)
	if pascal == "" {
		return leading + trailing
	}

	return leading + lowerFirst(pascal) + trailing
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
