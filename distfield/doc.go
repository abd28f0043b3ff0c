// Package distfield computes per-seed label cost fields over a hex grid and
// combines them into the aggregate field the growth engine selects from.
//
// What:
//
//   - Solve: for one seeded cell, the cost of reaching every (cell, label)
//     pair, where a step to a neighbouring cell must change to a label
//     compatible with the current one and is charged that label's weight.
//   - Aggregate: the weight-corrected sum of several fields.
//
// Algorithm (Solve):
//
//  1. Every enabled cell starts at Inf for every label; the seed holds 0 at
//     its own label.
//  2. The worklist starts with the seed and is processed in rounds.
//  3. For a popped cell, one hop of label relaxation is applied to its
//     current vector: for each finite (label₁, cost) and each label₂
//     compatible with label₁, candidate = cost + weight(label₂). Candidates
//     reaching Inf are dropped. The minimum per label₂ is the relaxed vector.
//  4. The relaxed vector is offered to every enabled neighbour except the
//     seed. A stored cost is replaced only if strictly smaller; an improved
//     neighbour joins the next round once.
//  5. Rounds repeat until none is produced.
//
// Labelled cells other than the seed are pinned: they accept only their own
// label, at the relaxed cost minus that label's weight, so passing through an
// already placed label costs nothing extra. Every other label stays Inf there.
//
// The label relaxation is deliberately a single hop per visit. Repeated grid
// rounds stand in for longer label chains, so a neighbour's label is always
// compatible with the label it was reached from.
//
// Aggregate:
//
//	agg(c, L) = Σᵢ fieldᵢ(c, L) − N·w(L) + w(L)
//
//	Each field charges the destination label's weight once on its last hop;
//	the correction charges it once overall. If any field is Inf at (c, L),
//	the aggregate is Inf.
//
// Complexity:
//
//   - Solve:     O(R · V · (L·d + 6·L)) time in the worst case, where R is the
//     number of rounds (bounded by the number of improvements), V cells,
//     L labels and d the label degree. Memory O(V·L).
//   - Aggregate: O(N · V · L).
package distfield
