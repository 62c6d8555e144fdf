// Package checkpoint loads a serialized model artifact and resolves its
// shape once at startup.
//
// The services do not interpret checkpoint internals beyond classifying
// the artifact: a TorchScript archive carries a callable inference entry
// point, while a plain state-dict archive (or a legacy pickle stream) is a
// raw parameter mapping with no runtime behavior. The classification is a
// tagged Kind resolved at load time; request handlers never re-inspect the
// file.
package checkpoint

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Kind identifies the resolved shape of a loaded checkpoint.
type Kind int

const (
	// KindStateDict is a raw parameter mapping with no runtime behavior.
	KindStateDict Kind = iota
	// KindScriptModule is an archive exposing a callable inference entry
	// point.
	KindScriptModule
	// KindLegacyPickle is a bare pickle stream (pre-archive serialization
	// format), treated as a raw parameter mapping.
	KindLegacyPickle
)

func (k Kind) String() string {
	switch k {
	case KindStateDict:
		return "state_dict"
	case KindScriptModule:
		return "script_module"
	case KindLegacyPickle:
		return "legacy_pickle"
	default:
		return "unknown"
	}
}

// ErrNotFound indicates the checkpoint file does not exist. Callers treat
// this as a fatal startup condition.
var ErrNotFound = errors.New("checkpoint file not found")

// pickleProtoMagic is the first byte of a pickle stream using protocol 2+.
const pickleProtoMagic = 0x80

// Model is an immutable handle to a loaded checkpoint. It is constructed
// once before the request-handling loop starts and passed by reference into
// handlers.
type Model struct {
	path     string
	kind     Kind
	size     int64
	loadedAt time.Time
}

// Info is the diagnostic metadata exposed on the model_info endpoint.
type Info struct {
	ModelType   string    `json:"model_type" yaml:"model_type"`
	ModelLoaded bool      `json:"model_loaded" yaml:"model_loaded"`
	Device      string    `json:"device" yaml:"device"`
	Path        string    `json:"path" yaml:"path"`
	SizeBytes   int64     `json:"size_bytes" yaml:"size_bytes"`
	LoadedAt    time.Time `json:"loaded_at" yaml:"loaded_at"`
}

// Load opens the checkpoint at path and resolves its Kind. A missing file
// returns ErrNotFound; the process is expected to exit rather than serve
// without a model.
func Load(p string) (*Model, error) {
	st, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return nil, fmt.Errorf("stat checkpoint %s: %w", p, err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("checkpoint %s is a directory", p)
	}

	kind, err := classify(p)
	if err != nil {
		return nil, err
	}

	return &Model{
		path:     p,
		kind:     kind,
		size:     st.Size(),
		loadedAt: time.Now().UTC(),
	}, nil
}

// classify resolves the checkpoint shape from the file layout. Modern
// serialized checkpoints are zip archives: a TorchScript module carries a
// constants.pkl entry alongside serialized code, while a plain tensor dump
// only has data.pkl. Anything that is not an archive must at least look
// like a pickle stream.
func classify(p string) (Kind, error) {
	r, err := zip.OpenReader(p)
	if err == nil {
		defer r.Close()
		for _, f := range r.File {
			if path.Base(f.Name) == "constants.pkl" {
				return KindScriptModule, nil
			}
		}
		return KindStateDict, nil
	}
	if !errors.Is(err, zip.ErrFormat) {
		return 0, fmt.Errorf("open checkpoint %s: %w", p, err)
	}

	f, err := os.Open(p)
	if err != nil {
		return 0, fmt.Errorf("open checkpoint %s: %w", p, err)
	}
	defer f.Close()

	var magic [1]byte
	if _, err := f.Read(magic[:]); err != nil {
		return 0, fmt.Errorf("read checkpoint %s: %w", p, err)
	}
	if magic[0] == pickleProtoMagic {
		return KindLegacyPickle, nil
	}
	return 0, fmt.Errorf("unrecognized checkpoint format: %s", p)
}

// Kind returns the shape resolved at load time.
func (m *Model) Kind() Kind {
	return m.kind
}

// HasRuntime reports whether the artifact exposes a callable inference
// entry point. A raw parameter mapping does not.
func (m *Model) HasRuntime() bool {
	return m.kind == KindScriptModule
}

// Path returns the checkpoint file path.
func (m *Model) Path() string {
	return m.path
}

// Size returns the checkpoint file size in bytes.
func (m *Model) Size() int64 {
	return m.size
}

// Info returns diagnostic metadata for the model_info endpoint.
func (m *Model) Info() Info {
	return Info{
		ModelType:   m.kind.String(),
		ModelLoaded: true,
		Device:      "cpu",
		Path:        m.path,
		SizeBytes:   m.size,
		LoadedAt:    m.loadedAt,
	}
}

// Name returns a short human-readable identifier for logs.
func (m *Model) Name() string {
	base := filepath.Base(m.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
