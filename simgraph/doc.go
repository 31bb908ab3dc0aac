// SPDX-License-Identifier: MIT

// Package simgraph builds the sentence-similarity graph shared by the
// graph-based rankers.
//
// The graph is an undirected weighted graph over arena indices, stored as a
// symmetric n×n matrix.Dense with a zero diagonal and weights in [0,1].
// Two measures are available:
//
//   - Cosine (default): TF-IDF cosine of the sentence vectors.
//   - Overlap: TextRank co-occurrence |Si∩Sj| / (log|Si| + log|Sj|),
//     scaled by its maximum into [0,1].
//
// Sparsification:
//
//   - WithThreshold(t) drops edges with weight < t.
//   - WithTopK(k) keeps, per node, its k strongest edges. The kept set is the
//     union over both endpoints, so the result stays symmetric.
//
// When the model carries a query, Graph.QuerySim holds cos(query, s_i) for
// every sentence; the query itself never becomes a node.
//
// Transition derives the row-stochastic random-walk operator; isolated
// sentences get a uniform row so the walk never gets stuck.
package simgraph
