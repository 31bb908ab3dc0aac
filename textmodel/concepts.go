// SPDX-License-Identifier: MIT

package textmodel

import "sort"

// ConceptSet maps every sentence to the distinct concepts it mentions.
//
// Weight of a concept is the number of Documents that mention it when the set
// has more than one Document, and the number of sentences that mention it
// otherwise. Concepts below minWeight are dropped.
type ConceptSet struct {
	// Terms[c] is the Word behind concept id c.
	Terms []Word

	// Weights[c] is the weight of concept c.
	Weights []float64

	// PerSentence[i] lists the ascending concept ids of sentence i.
	PerSentence [][]int
}

// Concepts extracts the ConceptSet of ds.
func Concepts(ds *DocumentSet, minWeight float64) ConceptSet {
	n := ds.Len()
	multiDoc := ds.DocumentCount() > 1

	// count distinct units (documents or sentences) per word
	freq := make(map[Word]int)
	lastUnit := make(map[Word]int)
	for i := 0; i < n; i++ {
		s := ds.sentences[i]
		unit := i
		if multiDoc {
			unit = s.Doc
		}
		for _, w := range s.Words {
			if last, ok := lastUnit[w]; ok && last == unit {
				continue
			}
			lastUnit[w] = unit
			freq[w]++
		}
	}

	terms := make([]Word, 0, len(freq))
	for w, f := range freq {
		if float64(f) >= minWeight {
			terms = append(terms, w)
		}
	}
	sort.Slice(terms, func(a, b int) bool { return terms[a] < terms[b] })

	ids := make(map[Word]int, len(terms))
	weights := make([]float64, len(terms))
	for c, w := range terms {
		ids[w] = c
		weights[c] = float64(freq[w])
	}

	per := make([][]int, n)
	for i := 0; i < n; i++ {
		set := make(map[int]struct{})
		for _, w := range ds.sentences[i].Words {
			if c, ok := ids[w]; ok {
				set[c] = struct{}{}
			}
		}
		cs := make([]int, 0, len(set))
		for c := range set {
			cs = append(cs, c)
		}
		sort.Ints(cs)
		per[i] = cs
	}

	return ConceptSet{Terms: terms, Weights: weights, PerSentence: per}
}
