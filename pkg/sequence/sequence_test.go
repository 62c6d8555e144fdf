package sequence

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	valid := strings.Repeat("ACDEFGHIKL", 5)

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "valid uppercase",
			input: valid,
		},
		{
			name:  "valid lowercase",
			input: strings.ToLower(valid),
		},
		{
			name:    "too short",
			input:   "ACDEF",
			wantErr: ErrLength,
		},
		{
			name:    "too long",
			input:   valid + "A",
			wantErr: ErrLength,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrLength,
		},
		{
			name:    "invalid residue B",
			input:   "B" + valid[1:],
			wantErr: ErrAlphabet,
		},
		{
			name:    "invalid residue X",
			input:   valid[:49] + "X",
			wantErr: ErrAlphabet,
		},
		{
			name:    "digit",
			input:   "1" + valid[1:],
			wantErr: ErrAlphabet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if seq.String() != strings.ToUpper(tt.input) {
				t.Errorf("Parse(%q) = %q, want normalized uppercase", tt.input, seq)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	seq, err := Parse(strings.Repeat("A", 49) + "Y")
	assert.NoError(t, err)

	enc := seq.Encode()
	assert.Len(t, enc, Length)
	assert.Equal(t, 0, enc[0], "A encodes to 0")
	assert.Equal(t, 19, enc[Length-1], "Y encodes to 19")
}

func TestEncodeAlphabetOrder(t *testing.T) {
	for i := 0; i < len(Alphabet); i++ {
		assert.Equal(t, i, Index(Alphabet[i]))
	}
	assert.Equal(t, -1, Index('X'))
	assert.Equal(t, -1, Index('b'))
}

func TestSuffix(t *testing.T) {
	seq, err := Parse(strings.Repeat("A", 30) + strings.Repeat("W", 20))
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("W", 20), seq.Suffix())
	assert.Len(t, seq.Suffix(), SuffixLen)
}
