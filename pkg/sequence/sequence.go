// Package sequence defines the fixed-length protein sequence type accepted
// by both services and its validation rules.
//
// A sequence is exactly 50 residues drawn from the 20 standard amino acids.
// Input is case-insensitive and normalized to uppercase.
package sequence

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Alphabet lists the 20 standard amino acids in index order.
	// The position of a residue in this string is its model input index.
	Alphabet = "ACDEFGHIKLMNPQRSTVWY"

	// Length is the required residue count for every input and
	// generated sequence.
	Length = 50

	// SuffixLen is the number of trailing residues compared by the
	// similarity scorer.
	SuffixLen = 20
)

var (
	// ErrLength indicates the input is not exactly Length residues.
	ErrLength = fmt.Errorf("sequence must be a string of exactly %d characters", Length)

	// ErrAlphabet indicates the input contains a character outside the
	// amino acid alphabet.
	ErrAlphabet = errors.New("sequence contains invalid amino acid characters")
)

// residueIndex maps an uppercase residue to its alphabet index, -1 otherwise.
var residueIndex [256]int

func init() {
	for i := range residueIndex {
		residueIndex[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		residueIndex[Alphabet[i]] = i
	}
}

// Sequence is a validated, uppercase protein sequence of exactly Length
// residues.
type Sequence string

// Normalize uppercases a raw sequence string.
func Normalize(raw string) string {
	return strings.ToUpper(raw)
}

// Parse validates a raw sequence string and returns the normalized Sequence.
func Parse(raw string) (Sequence, error) {
	s := Normalize(raw)
	if len(s) != Length {
		return "", ErrLength
	}
	for i := 0; i < len(s); i++ {
		if residueIndex[s[i]] < 0 {
			return "", fmt.Errorf("%w: %q at position %d", ErrAlphabet, s[i], i+1)
		}
	}
	return Sequence(s), nil
}

// Valid reports whether a single uppercase byte is a standard amino acid.
func Valid(b byte) bool {
	return residueIndex[b] >= 0
}

// Index returns the alphabet index of an uppercase residue, or -1 if the
// byte is not a standard amino acid.
func Index(b byte) int {
	return residueIndex[b]
}

// Encode converts the sequence to its integer index representation
// (A=0 ... Y=19), the form fed to the model.
func (s Sequence) Encode() []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = residueIndex[s[i]]
	}
	return out
}

// Suffix returns the trailing SuffixLen residues used for similarity scoring.
func (s Sequence) Suffix() string {
	return string(s[len(s)-SuffixLen:])
}

// String returns the sequence as a plain string.
func (s Sequence) String() string {
	return string(s)
}
