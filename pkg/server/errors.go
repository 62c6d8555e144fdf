package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/serializers"
)

// Error codes for the machine-readable code field.
const (
	ErrCodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeModelNotLoaded     = "MODEL_NOT_LOADED"
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// ErrorResponse is the error envelope for all endpoints. The error field is
// the documented API contract; the rest is operator diagnostics.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Code      string    `json:"code,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Retryable bool      `json:"retryable"`
}

// WriteError writes a JSON error response with request correlation.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code, message string, retryable bool) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializers.RespondJSON(w, statusCode, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}
