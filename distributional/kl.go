// SPDX-License-Identifier: MIT

package distributional

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvsum/textmodel"
)

// wordCount is one distinct word of a sentence and its frequency.
type wordCount struct {
	id int
	n  float64
}

// klState holds the running selection distribution Q.
type klState struct {
	doc      []float64 // P as raw counts
	docTotal float64

	sel      []float64 // Q as raw counts over the selection
	selIDs   []int     // support of sel, in order of first appearance
	selTotal float64

	extra []float64 // candidate counts, zero outside a klWith call
}

// KL greedily adds the fitting sentence that minimises KL(Q_sel ‖ P_doc),
// ties to the lower index, until nothing fits.
//
// Complexity: O(k·n·(s+t)) for k selected sentences, with s the distinct
// words of the selection and t the distinct words per sentence.
func KL(ds *textmodel.DocumentSet, budget int) ([]int, error) {
	if budget < 0 {
		return nil, fmt.Errorf("KL: budget %d: %w", budget, ErrBadBudget)
	}
	sentences := ds.Sentences()
	n := len(sentences)

	// Map words to dense ids; P is the unigram distribution of the input.
	ids := make(map[textmodel.Word]int)
	counts := make([][]wordCount, n)
	st := klState{}
	for i, s := range sentences {
		at := make(map[int]int, len(s.Words)) // id -> position in counts[i]
		for _, w := range s.Words {
			id, ok := ids[w]
			if !ok {
				id = len(st.doc)
				ids[w] = id
				st.doc = append(st.doc, 0)
			}
			if k, seen := at[id]; seen {
				counts[i][k].n++
			} else {
				at[id] = len(counts[i])
				counts[i] = append(counts[i], wordCount{id: id, n: 1})
			}
			st.doc[id]++
			st.docTotal++
		}
		sort.Slice(counts[i], func(a, b int) bool { return counts[i][a].id < counts[i][b].id })
	}
	st.sel = make([]float64, len(st.doc))
	st.extra = make([]float64, len(st.doc))

	considered := make([]bool, n)
	selected := make([]int, 0)
	remaining := budget

	for {
		best, bestKL := -1, math.Inf(1)
		for i := 0; i < n; i++ {
			if considered[i] || sentences[i].Length > remaining {
				continue
			}
			d := st.klWith(counts[i])
			if best == -1 || d < bestKL {
				best, bestKL = i, d
			}
		}
		if best == -1 {
			break
		}
		considered[best] = true
		selected = append(selected, best)
		remaining -= sentences[best].Length
		st.add(counts[best])
	}

	return selected, nil
}

func (st *klState) add(words []wordCount) {
	for _, w := range words {
		if st.sel[w.id] == 0 {
			st.selIDs = append(st.selIDs, w.id)
		}
		st.sel[w.id] += w.n
		st.selTotal += w.n
	}
}

// klWith returns KL(Q ‖ P) where Q is the selection plus the candidate.
// Only the selection's support and the candidate's words are visited. Q's
// support lies inside P's, so the value is finite unless Q is empty.
func (st *klState) klWith(cand []wordCount) float64 {
	total := st.selTotal
	for _, w := range cand {
		total += w.n
		st.extra[w.id] = w.n
	}

	d := math.Inf(1)
	if total > 0 {
		d = st.divergence(cand, total)
	}
	for _, w := range cand {
		st.extra[w.id] = 0
	}

	return d
}

func (st *klState) divergence(cand []wordCount, total float64) float64 {
	var d, q float64
	for _, id := range st.selIDs {
		q = (st.sel[id] + st.extra[id]) / total
		d += q * math.Log(q*st.docTotal/st.doc[id])
	}
	for _, w := range cand {
		if st.sel[w.id] != 0 {
			continue // already counted with the selection
		}
		q = w.n / total
		d += q * math.Log(q*st.docTotal/st.doc[w.id])
	}

	return d
}
