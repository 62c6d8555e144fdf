// Package predictor maps a validated protein sequence to a predicted
// small-molecule SMILES string.
//
// The trained-model integration is unfinished: regardless of checkpoint
// shape, the forward pass below is a PLACEHOLDER that selects a canned
// SMILES string from a fixed list, keyed by a hash of the encoded input.
// It stands in for real inference and must not be mistaken for it.
package predictor

import (
	"context"
	"encoding/binary"
	"errors"
	"hash/fnv"
	"log/slog"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/checkpoint"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/sequence"
)

// ErrNotLoaded indicates the predictor was constructed without a model.
var ErrNotLoaded = errors.New("model not loaded")

// mockSMILES is the fixed placeholder output pool. The same input always
// selects the same entry.
var mockSMILES = []string{
	"CC(C)CC1=CC=C(C=C1)C(C)C(=O)O",
	"CC1=CC=C(C=C1)C2=CC(=O)C3=C(C=CC=C3O2)O",
	"CC1=CC=C(C=C1)C2=CC(=O)C3=C(C=CC=C3O2)O",
	"CC1=CC=C(C=C1)C2=CC(=O)C3=C(C=CC=C3O2)O",
	"CC1=CC=C(C=C1)C2=CC(=O)C3=C(C=CC=C3O2)O",
}

// Result holds a single prediction. Placeholder is always true until a real
// inference runtime is wired in.
type Result struct {
	SMILES      string
	Placeholder bool
}

// Predictor invokes the loaded model artifact for a validated sequence.
type Predictor struct {
	model *checkpoint.Model
}

// New returns a Predictor bound to the given model handle. The handle may
// be nil; Predict then fails fast with ErrNotLoaded.
func New(model *checkpoint.Model) *Predictor {
	return &Predictor{model: model}
}

// Loaded reports whether a model handle is present.
func (p *Predictor) Loaded() bool {
	return p.model != nil
}

// Predict encodes the sequence and runs the model forward pass.
//
// When the checkpoint is a raw parameter mapping there is nothing callable
// to invoke, matching the reference behavior of substituting a mock
// prediction; the condition is logged per request. When the checkpoint does
// expose an entry point, no runtime exists in this process to execute it,
// so the output is the same documented placeholder.
func (p *Predictor) Predict(ctx context.Context, seq sequence.Sequence) (Result, error) {
	if p.model == nil {
		return Result{}, ErrNotLoaded
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if !p.model.HasRuntime() {
		slog.Warn("model is a state dict, using mock prediction",
			"checkpoint", p.model.Path(),
			"kind", p.model.Kind().String(),
		)
	}

	return Result{
		SMILES:      selectSMILES(seq.Encode()),
		Placeholder: true,
	}, nil
}

// selectSMILES deterministically picks a placeholder SMILES string from the
// fixed pool by hashing the encoded residue indices.
func selectSMILES(encoded []int) string {
	h := fnv.New64a()
	var buf [8]byte
	for _, idx := range encoded {
		binary.LittleEndian.PutUint64(buf[:], uint64(idx))
		h.Write(buf[:])
	}
	return mockSMILES[h.Sum64()%uint64(len(mockSMILES))]
}
