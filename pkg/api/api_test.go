package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/checkpoint"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/rank"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/sequence"
)

func testModel(t *testing.T) *checkpoint.Model {
	t.Helper()
	p := filepath.Join(t.TempDir(), "test_ckpt.pt")
	f, err := os.Create(p)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("test_ckpt/data.pkl")
	require.NoError(t, err)
	_, err = w.Write([]byte{0x80, 0x02})
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	m, err := checkpoint.Load(p)
	require.NoError(t, err)
	return m
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Error
}

func TestPredictSuccess(t *testing.T) {
	svc := NewPredictService(testModel(t))
	seq := strings.Repeat("acdefghikl", 5) // lowercase input is accepted

	w := postJSON(t, svc.HandlePredict, `{"sequence": "`+seq+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp PredictResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.SMILES)
	assert.Equal(t, strings.ToUpper(seq), resp.Sequence)
}

func TestPredictDeterministicAcrossRequests(t *testing.T) {
	svc := NewPredictService(testModel(t))
	body := `{"sequence": "` + strings.Repeat("A", 50) + `"}`

	var first PredictResponse
	w := postJSON(t, svc.HandlePredict, body)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&first))

	for i := 0; i < 3; i++ {
		var again PredictResponse
		w = postJSON(t, svc.HandlePredict, body)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.NewDecoder(w.Body).Decode(&again))
		assert.Equal(t, first.SMILES, again.SMILES)
	}
}

func TestSequenceValidationErrors(t *testing.T) {
	predict := NewPredictService(testModel(t))
	generate := NewGenerateService(testModel(t))

	handlers := map[string]http.HandlerFunc{
		"predict":  predict.HandlePredict,
		"generate": generate.HandleGenerate,
	}

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "missing sequence",
			body:    `{}`,
			wantMsg: "Missing sequence parameter",
		},
		{
			name:    "empty sequence",
			body:    `{"sequence": ""}`,
			wantMsg: "Missing sequence parameter",
		},
		{
			name:    "too short",
			body:    `{"sequence": "ACDEF"}`,
			wantMsg: "exactly 50 characters",
		},
		{
			name:    "too long",
			body:    `{"sequence": "` + strings.Repeat("A", 51) + `"}`,
			wantMsg: "exactly 50 characters",
		},
		{
			name:    "invalid residue",
			body:    `{"sequence": "` + strings.Repeat("A", 49) + `X"}`,
			wantMsg: "invalid amino acid",
		},
		{
			name:    "wrong type",
			body:    `{"sequence": 42}`,
			wantMsg: "Invalid request body",
		},
		{
			name:    "malformed json",
			body:    `{"sequence": `,
			wantMsg: "Invalid request body",
		},
	}

	for service, handler := range handlers {
		for _, tt := range tests {
			t.Run(service+"/"+tt.name, func(t *testing.T) {
				w := postJSON(t, handler, tt.body)
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, decodeError(t, w), tt.wantMsg)
			})
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	svc := NewPredictService(testModel(t))

	req := httptest.NewRequest(http.MethodGet, "/predict", nil)
	w := httptest.NewRecorder()
	svc.HandlePredict(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestPredictModelNotLoaded(t *testing.T) {
	svc := NewPredictService(nil)
	assert.False(t, svc.Loaded())

	w := postJSON(t, svc.HandlePredict, `{"sequence": "`+strings.Repeat("A", 50)+`"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Model not loaded", decodeError(t, w))
}

func TestGenerateModelNotLoaded(t *testing.T) {
	svc := NewGenerateService(nil)

	w := postJSON(t, svc.HandleGenerate, `{"sequence": "`+strings.Repeat("A", 50)+`"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Model not loaded", decodeError(t, w))
}

func TestGenerateSuccess(t *testing.T) {
	svc := NewGenerateService(testModel(t))
	original := strings.Repeat("A", 50)

	w := postJSON(t, svc.HandleGenerate, `{"sequence": "`+original+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, original, resp.OriginalSequence)
	assert.LessOrEqual(t, len(resp.Sequences), rank.TopN)
	assert.NotEmpty(t, resp.Sequences)

	for i, sc := range resp.Sequences {
		_, err := sequence.Parse(sc.Sequence)
		assert.NoError(t, err, "candidate %d must be a valid sequence", i)
		if i > 0 {
			assert.GreaterOrEqual(t, resp.Sequences[i-1].Score, sc.Score,
				"scores must be non-increasing")
		}
	}
}

func TestModelInfo(t *testing.T) {
	loaded := NewPredictService(testModel(t))
	unloaded := NewGenerateService(nil)

	req := httptest.NewRequest(http.MethodGet, "/model_info", nil)
	w := httptest.NewRecorder()
	loaded.HandleModelInfo(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var info checkpoint.Info
	require.NoError(t, json.NewDecoder(w.Body).Decode(&info))
	assert.True(t, info.ModelLoaded)
	assert.Equal(t, "state_dict", info.ModelType)
	assert.Equal(t, "cpu", info.Device)

	req = httptest.NewRequest(http.MethodGet, "/model_info", nil)
	w = httptest.NewRecorder()
	unloaded.HandleModelInfo(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOptionsResolution(t *testing.T) {
	t.Setenv("MODEL_PATH", "")
	t.Setenv("PORT", "")

	assert.Equal(t, PredictModelPath, Options{}.modelPath(PredictModelPath))
	assert.Equal(t, "custom.pt", Options{ModelPath: "custom.pt"}.modelPath(PredictModelPath))
	assert.Equal(t, PredictPort, Options{}.port(PredictPort))
	assert.Equal(t, 9000, Options{Port: 9000}.port(PredictPort))

	t.Setenv("MODEL_PATH", "env.pt")
	t.Setenv("PORT", "7777")
	assert.Equal(t, "env.pt", Options{}.modelPath(PredictModelPath))
	assert.Equal(t, 7777, Options{}.port(PredictPort))

	// Explicit options win over the environment.
	assert.Equal(t, "custom.pt", Options{ModelPath: "custom.pt"}.modelPath(PredictModelPath))
	assert.Equal(t, 9000, Options{Port: 9000}.port(PredictPort))
}
