package pipeline

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/dcntforecast/internal/model"
)

// ManifestName is the run record written into every output folder
const ManifestName = "run.yaml"

// idSource hands out monotonic ULIDs. Not safe for concurrent use; the
// orchestrator runs one pipeline at a time.
type idSource struct {
	entropy io.Reader
}

func newIDSource() *idSource {
	return &idSource{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

func (s *idSource) next(at time.Time) string {
	return ulid.MustNew(ulid.Timestamp(at), s.entropy).String()
}

// WriteManifest stores rec as dir/run.yaml, replacing any previous record
func WriteManifest(dir string, rec *model.RunRecord) (string, error) {
	path := filepath.Join(dir, ManifestName)
	if err := writeYAMLAtomic(path, rec); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

func writeYAMLAtomic(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
