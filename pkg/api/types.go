package api

import "github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/rank"

// SequenceRequest is the body of the predict and generate endpoints.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
}

// PredictResponse is the body of a successful prediction.
type PredictResponse struct {
	SMILES   string `json:"smiles"`
	Sequence string `json:"sequence"`
	Status   string `json:"status"`
}

// GenerateResponse is the body of a successful generation. Sequences holds
// at most rank.TopN entries sorted by score descending.
type GenerateResponse struct {
	Sequences        []rank.ScoredCandidate `json:"sequences"`
	OriginalSequence string                 `json:"original_sequence"`
	Status           string                 `json:"status"`
}

// statusSuccess is the status value on every successful response.
const statusSuccess = "success"
