package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/checkpoint"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/generator"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/logging"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/serializers"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/server"
)

const (
	// GenerateName is the generation service identity in logs.
	GenerateName = "seqgend"
	// GeneratePort is the default generation service port.
	GeneratePort = 5001
	// GenerateModelPath is the default generation checkpoint path.
	GenerateModelPath = "final_ckpt.pt"
)

// GenerateService handles similar-sequence generation requests against a
// loaded checkpoint.
type GenerateService struct {
	model     *checkpoint.Model
	generator *generator.Generator
}

// NewGenerateService creates the generation service for a loaded model
// handle. The handle may be nil; requests then fail with 500.
func NewGenerateService(model *checkpoint.Model) *GenerateService {
	return &GenerateService{
		model:     model,
		generator: generator.New(model, nil),
	}
}

// HandleGenerate handles POST /generate.
func (s *GenerateService) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	seq, ok := decodeSequence(w, r)
	if !ok {
		return
	}

	if s.model == nil {
		server.WriteError(w, r, http.StatusInternalServerError, server.ErrCodeModelNotLoaded,
			"Model not loaded", false)
		return
	}

	top, err := s.generator.GenerateRanked(seq)
	if err != nil {
		slog.Error("generation failed", "error", err)
		server.WriteError(w, r, http.StatusInternalServerError, server.ErrCodeInternalError,
			"Generation failed", false)
		return
	}

	serializers.RespondJSON(w, http.StatusOK, GenerateResponse{
		Sequences:        top,
		OriginalSequence: seq.String(),
		Status:           statusSuccess,
	})
}

// HandleModelInfo handles GET /model_info.
func (s *GenerateService) HandleModelInfo(w http.ResponseWriter, r *http.Request) {
	modelInfo(w, r, s.model)
}

// Loaded reports whether the checkpoint was loaded.
func (s *GenerateService) Loaded() bool {
	return s.model != nil
}

// ServeGenerate loads the generation checkpoint and runs the generation
// service until shutdown. A missing checkpoint is a fatal startup error.
func ServeGenerate(ctx context.Context, opts Options) error {
	logging.SetDefaultStructuredLogger(GenerateName, version)
	slog.Info("starting",
		"name", GenerateName,
		"version", version,
		"commit", commit,
		"date", date,
	)

	model, err := checkpoint.Load(opts.modelPath(GenerateModelPath))
	if err != nil {
		slog.Error("failed to load model", "error", err)
		return err
	}
	slog.Info("model loaded",
		"checkpoint", model.Path(),
		"kind", model.Kind().String(),
		"size_bytes", model.Size(),
	)

	svc := NewGenerateService(model)
	routes := map[string]http.HandlerFunc{
		"/generate":   svc.HandleGenerate,
		"/model_info": svc.HandleModelInfo,
	}

	s := server.New(
		server.WithName(GenerateName),
		server.WithVersion(version),
		server.WithPort(opts.port(GeneratePort)),
		server.WithHandler(routes),
		server.WithModelLoaded(svc.Loaded),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}
