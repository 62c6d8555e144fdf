// Package rank orders generated candidate sequences by their suffix
// similarity to the original sequence.
package rank

import (
	"fmt"
	"sort"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/blosum"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/sequence"
)

// TopN is the number of candidates returned to callers.
const TopN = 5

// ScoredCandidate pairs a generated sequence with its suffix similarity
// score against the original.
type ScoredCandidate struct {
	Sequence string  `json:"sequence"`
	Score    float64 `json:"score"`
}

// ScoreAll scores every candidate's trailing sequence.SuffixLen residues
// against the original's. The result preserves generation order.
func ScoreAll(original sequence.Sequence, candidates []string) ([]ScoredCandidate, error) {
	origSuffix := original.Suffix()

	scored := make([]ScoredCandidate, 0, len(candidates))
	for i, cand := range candidates {
		if len(cand) < sequence.SuffixLen {
			return nil, fmt.Errorf("candidate %d too short: %d residues", i, len(cand))
		}
		score, err := blosum.Score(origSuffix, cand[len(cand)-sequence.SuffixLen:])
		if err != nil {
			return nil, fmt.Errorf("scoring candidate %d: %w", i, err)
		}
		scored = append(scored, ScoredCandidate{Sequence: cand, Score: score})
	}
	return scored, nil
}

// Select sorts scored candidates descending and truncates to TopN. The sort
// is stable, so ties keep generation order. The input slice is reordered in
// place.
func Select(scored []ScoredCandidate) []ScoredCandidate {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > TopN {
		return scored[:TopN]
	}
	return scored
}

// Top scores all candidates and returns at most TopN entries sorted by
// score descending.
func Top(original sequence.Sequence, candidates []string) ([]ScoredCandidate, error) {
	scored, err := ScoreAll(original, candidates)
	if err != nil {
		return nil, err
	}
	return Select(scored), nil
}
