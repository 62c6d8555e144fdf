package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/sequence"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/server"
)

// maxBodyBytes bounds request bodies; a sequence payload is tiny.
const maxBodyBytes = 4 << 10

// decodeSequence reads and validates the sequence body of a POST request.
// On failure it writes the 400 response and returns ok=false. The error
// variants (missing field, wrong length, invalid character) are
// distinguished in the message for operator diagnosis only; all map to 400.
func decodeSequence(w http.ResponseWriter, r *http.Request) (sequence.Sequence, bool) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, server.ErrCodeMethodNotAllowed,
			"Method not allowed", false)
		return "", false
	}

	var req SequenceRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest,
			fmt.Sprintf("Invalid request body: %v", err), false)
		return "", false
	}

	if req.Sequence == "" {
		server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest,
			"Missing sequence parameter", false)
		return "", false
	}

	seq, err := sequence.Parse(req.Sequence)
	if err != nil {
		msg := "Sequence contains invalid amino acid characters"
		if errors.Is(err, sequence.ErrLength) {
			msg = fmt.Sprintf("Sequence must be a string of exactly %d characters", sequence.Length)
		}
		server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest, msg, false)
		return "", false
	}

	return seq, true
}
