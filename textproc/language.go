// SPDX-License-Identifier: MIT

// Package textproc turns raw text into the normalised Words the summarisers
// consume: sentence segmentation, tokenisation (NFKC plus locale-aware lower
// casing), stopword filtering, Snowball stemming, and joining a summary back
// into text.
//
// Chinese is segmented on 。！？； and tokenised per Han character; every
// other supported language is treated as space-delimited.
package textproc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage indicates a language name outside the supported set.
var ErrUnsupportedLanguage = errors.New("textproc: unsupported language")

// Language is a supported natural language.
type Language string

// Supported languages. Snowball stemmers exist for all but Chinese.
const (
	English Language = "english"
	Chinese Language = "chinese"
	French  Language = "french"
	Spanish Language = "spanish"
	Russian Language = "russian"
	Swedish Language = "swedish"
)

var languages = map[string]Language{
	"english": English, "en": English,
	"chinese": Chinese, "zh": Chinese, "cn": Chinese,
	"french": French, "fr": French,
	"spanish": Spanish, "es": Spanish,
	"russian": Russian, "ru": Russian,
	"swedish": Swedish, "sv": Swedish,
}

var tags = map[Language]language.Tag{
	English: language.English,
	Chinese: language.Chinese,
	French:  language.French,
	Spanish: language.Spanish,
	Russian: language.Russian,
	Swedish: language.Swedish,
}

// ParseLanguage resolves a name or ISO 639-1 code, case-insensitively.
func ParseLanguage(name string) (Language, error) {
	if l, ok := languages[strings.ToLower(strings.TrimSpace(name))]; ok {
		return l, nil
	}

	return "", fmt.Errorf("ParseLanguage(%q): %w", name, ErrUnsupportedLanguage)
}

// Tag returns the BCP 47 tag of l.
func (l Language) Tag() language.Tag { return tags[l] }

// SpaceDelimited reports whether words are separated by whitespace.
func (l Language) SpaceDelimited() bool { return l != Chinese }
