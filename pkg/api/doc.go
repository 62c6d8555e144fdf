// Package api provides the HTTP layer for the two model services.
//
// Both services are thin wrappers around a model checkpoint loaded once at
// startup: the prediction service maps a 50-residue protein sequence to a
// predicted small-molecule SMILES string, and the generation service
// produces and ranks candidate similar sequences. The package configures
// structured logging, loads the checkpoint (a missing checkpoint is fatal),
// wires the application routes, and delegates server lifecycle to
// pkg/server.
//
// # Endpoints
//
// Prediction service (default port 5000):
//   - POST /predict    - body {"sequence": "<50 residues>"} returns
//     {"smiles": "...", "sequence": "...", "status": "success"}
//   - GET  /model_info - checkpoint diagnostics, 500 if unloaded
//
// Generation service (default port 5001):
//   - POST /generate   - body {"sequence": "<50 residues>"} returns
//     {"sequences": [{"sequence": "...", "score": 1.2}, ...],
//     "original_sequence": "...", "status": "success"}
//     with at most 5 entries sorted by score descending
//   - GET  /model_info - checkpoint diagnostics, 500 if unloaded
//
// Both services also expose /health, /ready, and /metrics via pkg/server.
//
// Client input errors (missing, wrong length, or invalid-alphabet
// sequence) return 400 with a descriptive error field; an unloaded model
// returns 500; unexpected failures are logged and return a generic 500.
// No request is ever retried.
//
// # Configuration
//
// Environment variables:
//   - PORT: HTTP server port
//   - MODEL_PATH: checkpoint file path
//   - LOG_LEVEL: logging level (debug, info, warn, error)
package api
