package capi

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// classifyLocaleError maps a parse failure onto the LocaleParseError set.
// The first subtag is the language; a single-letter subtag starts an
// extension.
func classifyLocaleError(input string, err error) LocaleParseError {
	subtags := strings.FieldsFunc(input, func(r rune) bool { return r == '-' || r == '_' })
	if len(subtags) == 0 {
		return LocaleParseErrorLanguage
	}

	var verr language.ValueError
	if errors.As(err, &verr) {
		if strings.EqualFold(verr.Subtag(), subtags[0]) {
			return LocaleParseErrorLanguage
		}
		if inExtension(subtags, verr.Subtag()) {
			return LocaleParseErrorExtension
		}
		return LocaleParseErrorSubtag
	}

	if !isLanguageSubtag(subtags[0]) {
		return LocaleParseErrorLanguage
	}
	if duplicateSingleton(subtags) {
		return LocaleParseErrorDuplicated
	}
	for _, s := range subtags[1:] {
		if isSingleton(s) {
			return LocaleParseErrorExtension
		}
	}
	return LocaleParseErrorSubtag
}

func isLanguageSubtag(s string) bool {
	if len(s) < 2 || len(s) > 8 || len(s) == 4 {
		return false
	}
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}

// isSingleton reports an extension introducer: one ASCII letter or digit.
func isSingleton(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func inExtension(subtags []string, bad string) bool {
	for i, s := range subtags[1:] {
		if !isSingleton(s) {
			continue
		}
		for _, rest := range subtags[i+2:] {
			if strings.EqualFold(rest, bad) {
				return true
			}
		}
	}
	return false
}

// duplicateSingleton reports an extension singleton that appears twice
// before the private use section.
func duplicateSingleton(subtags []string) bool {
	seen := make(map[string]bool)
	for _, s := range subtags[1:] {
		if !isSingleton(s) {
			continue
		}
		s = strings.ToLower(s)
		if s == "x" {
			return false
		}
		if seen[s] {
			return true
		}
		seen[s] = true
	}
	return false
}
