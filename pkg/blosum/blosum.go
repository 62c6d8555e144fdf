// Package blosum scores the similarity of protein sequence regions using a
// fixed BLOSUM62 substitution matrix restricted to the 20 standard amino
// acids.
//
// Score is a pure function of its two inputs and the matrix. It is the only
// piece of real algorithmic logic in the generation service; everything else
// in that pipeline is placeholder model output.
package blosum

import (
	"fmt"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/sequence"
)

// unknownScore is returned for any residue pair where either side falls
// outside the 20-letter alphabet.
const unknownScore = -1

// matrix is BLOSUM62 over the alphabet ACDEFGHIKLMNPQRSTVWY, indexed by
// sequence.Index of each residue. The table is symmetric.
var matrix = [20][20]int{
	/* A */ {4, 0, -2, -1, -2, 0, -2, -1, -1, -1, -1, -2, -1, -1, -1, 1, 0, 0, -3, -2},
	/* C */ {0, 9, -3, -4, -2, -3, -3, -1, -3, -1, -1, -3, -3, -3, -3, -1, -1, -1, -2, -2},
	/* D */ {-2, -3, 6, 2, -3, -1, -1, -3, -1, -4, -3, 1, -1, 0, -2, 0, -1, -3, -4, -3},
	/* E */ {-1, -4, 2, 5, -3, -2, 0, -3, 1, -3, -2, 0, -1, 2, 0, 0, -1, -2, -3, -2},
	/* F */ {-2, -2, -3, -3, 6, -3, -1, 0, -3, 0, 0, -3, -4, -3, -3, -2, -2, -1, 1, 3},
	/* G */ {0, -3, -1, -2, -3, 6, -2, -4, -2, -4, -3, 0, -2, -2, -2, 0, -2, -3, -2, -3},
	/* H */ {-2, -3, -1, 0, -1, -2, 8, -3, -1, -3, -2, 1, -2, 0, 0, -1, -2, -3, -2, 2},
	/* I */ {-1, -1, -3, -3, 0, -4, -3, 4, -3, 2, 1, -3, -3, -3, -3, -2, -1, 3, -3, -1},
	/* K */ {-1, -3, -1, 1, -3, -2, -1, -3, 5, -2, -1, 0, -1, 1, 2, 0, -1, -2, -3, -2},
	/* L */ {-1, -1, -4, -3, 0, -4, -3, 2, -2, 4, 2, -3, -3, -2, -2, -2, -1, 1, -2, -1},
	/* M */ {-1, -1, -3, -2, 0, -3, -2, 1, -1, 2, 5, -2, -2, 0, -1, -1, 0, 1, -1, -1},
	/* N */ {-2, -3, 1, 0, -3, 0, 1, -3, 0, -3, -2, 6, -2, 0, 0, 1, 0, -3, -4, -2},
	/* P */ {-1, -3, -1, -1, -4, -2, -2, -3, -1, -3, -2, -2, 7, -1, -2, -1, -1, -2, -4, -3},
	/* Q */ {-1, -3, 0, 2, -3, -2, 0, -3, 1, -2, 0, 0, -1, 5, 1, 0, -1, -2, -2, -1},
	/* R */ {-1, -3, -2, 0, -3, -2, 0, -3, 2, -2, -1, 0, -2, 1, 5, -1, -1, -3, -3, -2},
	/* S */ {1, -1, 0, 0, -2, 0, -1, -2, 0, -2, -1, 1, -1, 0, -1, 4, 1, -2, -3, -2},
	/* T */ {0, -1, -1, -1, -2, -2, -2, -1, -1, -1, 0, 0, -1, -1, -1, 1, 5, 0, -2, -2},
	/* V */ {0, -1, -3, -2, -1, -3, -3, 3, -2, 1, 1, -3, -2, -2, -3, -2, 0, 4, -3, -1},
	/* W */ {-3, -2, -4, -3, 1, -2, -2, -3, -3, -2, -1, -4, -4, -2, -3, -3, -2, -3, 11, 2},
	/* Y */ {-2, -2, -3, -2, 3, -3, 2, -1, -2, -1, -1, -2, -3, -1, -2, -2, -2, -1, 2, 7},
}

// Lookup returns the substitution score for a residue pair. Residues outside
// the alphabet score -1.
func Lookup(a, b byte) int {
	i, j := sequence.Index(a), sequence.Index(b)
	if i < 0 || j < 0 {
		return unknownScore
	}
	return matrix[i][j]
}

// Score returns the mean per-residue substitution score of two equal-length
// strings. Unequal lengths are rejected rather than silently truncated.
func Score(a, b string) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("sequence length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("cannot score empty sequences")
	}
	sum := 0
	for i := 0; i < len(a); i++ {
		sum += Lookup(a[i], b[i])
	}
	return float64(sum) / float64(len(a)), nil
}
