// SPDX-License-Identifier: MIT

package textproc

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvsum/textmodel"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	reToken      = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}]+)?`)
	reSentence   = regexp.MustCompile(`[^.!?]+(?:[.!?]+|$)`)
	reSentenceZH = regexp.MustCompile(`[^。！？；!?;]+(?:[。！？；!?;]+|$)`)
	reParagraph  = regexp.MustCompile(`\r?\n\s*\r?\n`)
)

// Tokenizer splits text into sentences and lower-cased tokens.
type Tokenizer struct {
	lang  Language
	lower cases.Caser
}

// NewTokenizer returns a Tokenizer for lang.
func NewTokenizer(lang Language) *Tokenizer {
	return &Tokenizer{lang: lang, lower: cases.Lower(lang.Tag())}
}

// Language returns the tokenizer language.
func (t *Tokenizer) Language() Language { return t.lang }

// Paragraphs splits text on blank lines and drops empty paragraphs.
func Paragraphs(text string) []string {
	var out []string
	for _, p := range reParagraph.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// Sentences segments text into trimmed, non-empty sentences.
func (t *Tokenizer) Sentences(text string) []string {
	re := reSentence
	if !t.lang.SpaceDelimited() {
		re = reSentenceZH
	}
	var out []string
	for _, s := range re.FindAllString(norm.NFKC.String(text), -1) {
		s = strings.Join(strings.Fields(s), " ")
		if s != "" && strings.IndexFunc(s, isWordRune) >= 0 {
			out = append(out, s)
		}
	}

	return out
}

// Tokens returns the lower-cased word tokens of text. Han characters become
// single-rune tokens.
func (t *Tokenizer) Tokens(text string) []string {
	text = t.lower.String(norm.NFKC.String(text))
	var out []string
	for _, tok := range reToken.FindAllString(text, -1) {
		if !containsHan(tok) {
			out = append(out, tok)

			continue
		}
		// split mixed runs: Han runes one by one, other letters grouped
		var run []rune
		for _, r := range tok {
			if unicode.Is(unicode.Han, r) {
				if len(run) > 0 {
					out = append(out, string(run))
					run = run[:0]
				}
				out = append(out, string(r))

				continue
			}
			run = append(run, r)
		}
		if len(run) > 0 {
			out = append(out, string(run))
		}
	}

	return out
}

// Tokenize returns Tokens as textmodel Words.
func (t *Tokenizer) Tokenize(text string) []textmodel.Word {
	toks := t.Tokens(text)
	out := make([]textmodel.Word, len(toks))
	for i, tok := range toks {
		out[i] = textmodel.Word(tok)
	}

	return out
}

// Length is the budget length of a sentence: whitespace fields for
// space-delimited languages, word tokens otherwise.
func (t *Tokenizer) Length(sentence string) int {
	if t.lang.SpaceDelimited() {
		return len(strings.Fields(sentence))
	}

	return len(t.Tokens(sentence))
}

func containsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}

	return false
}

func isWordRune(r rune) bool { return unicode.IsLetter(r) || unicode.IsNumber(r) }
