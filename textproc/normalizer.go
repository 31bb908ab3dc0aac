// SPDX-License-Identifier: MIT

package textproc

import (
	"strings"

	"github.com/katalvlaran/lvsum/textmodel"
	"github.com/kljensen/snowball"
)

// Normalizer tokenises text and turns tokens into Words: stopwords are
// dropped and, when enabled, the rest are stemmed.
type Normalizer struct {
	*Tokenizer
	stop StopSet
	stem bool
}

// NewNormalizer returns a Normalizer. A nil stop set means DefaultStopwords.
// Stemming is ignored for languages without a Snowball stemmer.
func NewNormalizer(lang Language, stop StopSet, stem bool) *Normalizer {
	if stop == nil {
		stop = DefaultStopwords(lang)
	}

	return &Normalizer{Tokenizer: NewTokenizer(lang), stop: stop, stem: stem && lang != Chinese}
}

// Normalize filters stopwords and stems what remains. Tokens that stem to
// the empty string are dropped.
func (n *Normalizer) Normalize(words []textmodel.Word) []textmodel.Word {
	out := make([]textmodel.Word, 0, len(words))
	for _, w := range words {
		s := string(w)
		if n.stop.Contains(s) {
			continue
		}
		if n.stem {
			s = n.stemWord(s)
		}
		if s != "" {
			out = append(out, textmodel.Word(s))
		}
	}

	return out
}

// stemWord falls back to the input when Snowball rejects the language.
func (n *Normalizer) stemWord(w string) string {
	stemmed, err := snowball.Stem(w, string(n.lang), true)
	if err != nil {
		return w
	}

	return strings.TrimSpace(stemmed)
}

// Join renders a summary: space-joined for space-delimited languages,
// each sentence terminated by 。 for Chinese.
func Join(sentences []textmodel.Sentence, lang Language) string {
	var b strings.Builder
	for i, s := range sentences {
		if lang.SpaceDelimited() {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s.Text)

			continue
		}
		b.WriteString(strings.TrimRight(s.Text, "。！？；!?;"))
		b.WriteString("。")
	}

	return b.String()
}
