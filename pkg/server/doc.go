// Package server implements the shared HTTP host for the protein model
// services.
//
// The server is stateless: application handlers are injected at
// construction and the package contributes the surrounding machinery:
//
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Request ID tracking via X-Request-Id headers
//   - Prometheus RED metrics and a /metrics endpoint
//   - Panic recovery
//   - CORS for the browser frontend
//   - Graceful shutdown on SIGINT/SIGTERM
//   - Health and readiness probes
//
// # Usage
//
//	routes := map[string]http.HandlerFunc{
//	    "/predict": handlePredict,
//	}
//
//	s := server.New(
//	    server.WithName("predictd"),
//	    server.WithVersion(version),
//	    server.WithPort(5000),
//	    server.WithHandler(routes),
//	    server.WithModelLoaded(func() bool { return model != nil }),
//	)
//
//	if err := s.Run(ctx); err != nil {
//	    // fatal
//	}
//
// # Configuration
//
// Environment variables override defaults:
//
//   - PORT: listen port
//   - SHUTDOWN_TIMEOUT_SECONDS: drain timeout on shutdown
//
// GET /health always returns 200 with {"status": "healthy",
// "model_loaded": <bool>}; readiness flips to 503 while the server is
// starting or draining.
package server
