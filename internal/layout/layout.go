// Package layout derives the per-run output folder and the artifact paths
// inside it.
package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ppiankov/dcntforecast/internal/calendar"
	"github.com/ppiankov/dcntforecast/internal/model"
)

const maxSuffix = 999

// ErrNoFreeFolder means base and every numbered variant already exist
var ErrNoFreeFolder = errors.New("no free output folder name")

// Policy decides what happens when every numbered variant is taken
type Policy int

const (
	// FailWhenExhausted returns ErrNoFreeFolder
	FailWhenExhausted Policy = iota
	// ReuseWhenExhausted returns the unsuffixed base path
	ReuseWhenExhausted
)

// ParsePolicy maps the on_exhausted setting to a Policy
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", model.OnExhaustedError:
		return FailWhenExhausted, nil
	case model.OnExhaustedReuse:
		return ReuseWhenExhausted, nil
	}
	return FailWhenExhausted, fmt.Errorf("unknown exhaustion policy %q (want %s or %s)", s, model.OnExhaustedError, model.OnExhaustedReuse)
}

// Artifacts are the files one extract+forecast pass produces
type Artifacts struct {
	Raw    string
	Clean  string
	Result string
}

// Layout is the output folder of one run
type Layout struct {
	Dir     string
	Primary Artifacts // chosen granularity
	Annual  Artifacts // reserved for the annual fallback
}

// Sanitize lower-cases ASCII letters and digits, turns runs of space,
// hyphen and underscore into one underscore, drops everything else and
// trims underscores at both ends
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false

	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		case r == ' ' || r == '-' || r == '_':
			pendingSep = true
			continue
		default:
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('_')
		}
		pendingSep = false
		b.WriteRune(r)
	}
	return b.String()
}

// FolderName is "<dd-mm-yyyy>-<disease>-<analysis>" with the date taken in UTC-3
func FolderName(a *model.Analysis, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", calendar.Today(now.Unix()), Sanitize(a.Disease.Slug), a.Type.Slug)
}

// UniqueDir returns base when nothing exists there, otherwise the first free
// base_2 .. base_999. A path that cannot be inspected is an error, not a
// free slot.
func UniqueDir(base string, policy Policy) (string, error) {
	taken, err := exists(base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	for i := 2; i <= maxSuffix; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	if policy == ReuseWhenExhausted {
		return base, nil
	}
	return "", fmt.Errorf("%w: %s_2 .. %s_%d all exist", ErrNoFreeFolder, base, base, maxSuffix)
}

// Derive picks a free folder under root and names the artifacts in it.
// Nothing is created on disk.
func Derive(a *model.Analysis, root string, now time.Time, policy Policy) (*Layout, error) {
	dir, err := UniqueDir(filepath.Join(root, FolderName(a, now)), policy)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		Dir: dir,
		Annual: Artifacts{
			Raw:    filepath.Join(dir, "dados_tabnet_anual.csv"),
			Clean:  filepath.Join(dir, "dados_limpos_anual.csv"),
			Result: filepath.Join(dir, "saida_previsao_anual.json"),
		},
	}

	if a.Monthly() {
		l.Primary = Artifacts{
			Raw:    filepath.Join(dir, "dados_tabnet_mensal.csv"),
			Clean:  filepath.Join(dir, "dados_limpos_mensal.csv"),
			Result: filepath.Join(dir, "saida_previsao_mensal.json"),
		}
	} else {
		l.Primary = Artifacts{
			Raw:    filepath.Join(dir, "dados_tabnet.csv"),
			Clean:  filepath.Join(dir, "dados_limpos.csv"),
			Result: filepath.Join(dir, "saida_previsao.json"),
		}
	}

	return l, nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	}
	return false, fmt.Errorf("inspect output folder %s: %w", path, err)
}
