// Package generator produces candidate protein sequences similar to an
// input sequence and ranks them by suffix similarity.
//
// Candidate generation is a PLACEHOLDER for the real trained-model
// sampling: each candidate is the input with a handful of random point
// mutations. Only the scoring and ranking of candidates is real logic.
package generator

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/checkpoint"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/rank"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/sequence"
)

// ErrNotLoaded indicates the generator was constructed without a model.
var ErrNotLoaded = errors.New("model not loaded")

const (
	// NumCandidates is how many sequences are generated per request
	// before ranking.
	NumCandidates = 100

	// MinMutations and MaxMutations bound the number of mutated
	// positions per candidate. Every mutation substitutes a different
	// residue, so a candidate always differs from the input by the
	// sampled count.
	MinMutations = 2
	MaxMutations = 7
)

// Generator produces and ranks candidate sequences for a loaded model.
type Generator struct {
	model *checkpoint.Model
	rng   *rand.Rand
}

// New returns a Generator bound to the given model handle. A nil rng gets a
// time-seeded source; tests pass a fixed seed.
func New(model *checkpoint.Model, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{model: model, rng: rng}
}

// Loaded reports whether a model handle is present.
func (g *Generator) Loaded() bool {
	return g.model != nil
}

// Generate returns NumCandidates point-mutated copies of the input
// sequence. This is the placeholder sampling step standing in for the real
// model.
func (g *Generator) Generate(seq sequence.Sequence) []string {
	out := make([]string, NumCandidates)
	for i := range out {
		out[i] = g.mutate(seq)
	}
	return out
}

// GenerateRanked generates candidates, scores each last-20 suffix against
// the original, and returns at most rank.TopN entries sorted by score
// descending.
func (g *Generator) GenerateRanked(seq sequence.Sequence) ([]rank.ScoredCandidate, error) {
	if g.model == nil {
		return nil, ErrNotLoaded
	}

	candidates := g.Generate(seq)
	scored, err := rank.ScoreAll(seq, candidates)
	if err != nil {
		return nil, err
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		scores := make([]float64, len(scored))
		for i, sc := range scored {
			scores[i] = sc.Score
		}
		mean, std := stat.MeanStdDev(scores, nil)
		slog.Debug("candidate score distribution",
			"candidates", len(scores),
			"mean", mean,
			"stddev", std,
		)
	}

	return rank.Select(scored), nil
}

// mutate copies the sequence and substitutes MinMutations..MaxMutations
// distinct positions with a different residue each.
func (g *Generator) mutate(seq sequence.Sequence) string {
	buf := []byte(seq.String())

	n := MinMutations + g.rng.Intn(MaxMutations-MinMutations+1)
	positions := g.rng.Perm(len(buf))[:n]

	for _, pos := range positions {
		cur := sequence.Index(buf[pos])
		// Draw from the 19 residues other than the current one.
		j := g.rng.Intn(len(sequence.Alphabet) - 1)
		if j >= cur {
			j++
		}
		buf[pos] = sequence.Alphabet[j]
	}
	return string(buf)
}
