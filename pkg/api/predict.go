package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/checkpoint"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/logging"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/predictor"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/serializers"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/server"
)

const (
	// PredictName is the prediction service identity in logs.
	PredictName = "predictd"
	// PredictPort is the default prediction service port.
	PredictPort = 5000
	// PredictModelPath is the default prediction checkpoint path.
	PredictModelPath = "fusion_best.pt"

	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info,
	// e.g. -X "github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Options configures a service started through this package. Zero values
// fall back to environment variables, then to the service defaults.
type Options struct {
	Port      int
	ModelPath string
}

func (o Options) modelPath(fallback string) string {
	if o.ModelPath != "" {
		return o.ModelPath
	}
	if env := os.Getenv("MODEL_PATH"); env != "" {
		return env
	}
	return fallback
}

func (o Options) port(fallback int) int {
	if o.Port > 0 {
		return o.Port
	}
	if env := os.Getenv("PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil && p > 0 {
			return p
		}
	}
	return fallback
}

// PredictService handles protein to SMILES prediction requests against a
// loaded checkpoint.
type PredictService struct {
	model     *checkpoint.Model
	predictor *predictor.Predictor
}

// NewPredictService creates the prediction service for a loaded model
// handle. The handle may be nil; requests then fail with 500.
func NewPredictService(model *checkpoint.Model) *PredictService {
	return &PredictService{
		model:     model,
		predictor: predictor.New(model),
	}
}

// HandlePredict handles POST /predict.
func (s *PredictService) HandlePredict(w http.ResponseWriter, r *http.Request) {
	seq, ok := decodeSequence(w, r)
	if !ok {
		return
	}

	if s.model == nil {
		server.WriteError(w, r, http.StatusInternalServerError, server.ErrCodeModelNotLoaded,
			"Model not loaded", false)
		return
	}

	result, err := s.predictor.Predict(r.Context(), seq)
	if err != nil {
		slog.Error("prediction failed", "error", err)
		server.WriteError(w, r, http.StatusInternalServerError, server.ErrCodeInternalError,
			"Prediction failed", false)
		return
	}

	serializers.RespondJSON(w, http.StatusOK, PredictResponse{
		SMILES:   result.SMILES,
		Sequence: seq.String(),
		Status:   statusSuccess,
	})
}

// HandleModelInfo handles GET /model_info.
func (s *PredictService) HandleModelInfo(w http.ResponseWriter, r *http.Request) {
	modelInfo(w, r, s.model)
}

// Loaded reports whether the checkpoint was loaded.
func (s *PredictService) Loaded() bool {
	return s.model != nil
}

// modelInfo writes checkpoint diagnostics, or 500 when no model is loaded.
func modelInfo(w http.ResponseWriter, r *http.Request, model *checkpoint.Model) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, server.ErrCodeMethodNotAllowed,
			"Method not allowed", false)
		return
	}
	if model == nil {
		server.WriteError(w, r, http.StatusInternalServerError, server.ErrCodeModelNotLoaded,
			"Model not loaded", false)
		return
	}
	serializers.RespondJSON(w, http.StatusOK, model.Info())
}

// ServePredict loads the prediction checkpoint and runs the prediction
// service until shutdown. A missing checkpoint is a fatal startup error.
func ServePredict(ctx context.Context, opts Options) error {
	logging.SetDefaultStructuredLogger(PredictName, version)
	slog.Info("starting",
		"name", PredictName,
		"version", version,
		"commit", commit,
		"date", date,
	)

	model, err := checkpoint.Load(opts.modelPath(PredictModelPath))
	if err != nil {
		slog.Error("failed to load model", "error", err)
		return err
	}
	slog.Info("model loaded",
		"checkpoint", model.Path(),
		"kind", model.Kind().String(),
		"size_bytes", model.Size(),
	)

	svc := NewPredictService(model)
	routes := map[string]http.HandlerFunc{
		"/predict":    svc.HandlePredict,
		"/model_info": svc.HandleModelInfo,
	}

	s := server.New(
		server.WithName(PredictName),
		server.WithVersion(version),
		server.WithPort(opts.port(PredictPort)),
		server.WithHandler(routes),
		server.WithModelLoaded(svc.Loaded),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}
