package baseline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/kritik-dev/kritik/internal/fileutil"
)

// Baseline maps declaration signatures to the rule IDs suppressed for
// them. The signature string is the join key: it is recomputed on every
// scan and must match the recorded key byte for byte.
type Baseline struct {
	Version    int                 `yaml:"version"`
	Suppressed map[string][]string `yaml:"suppressed"`
}

const currentVersion = 1

func New() *Baseline {
	return &Baseline{
		Version:    currentVersion,
		Suppressed: make(map[string][]string),
	}
}

// Load reads a baseline file. A missing file yields an empty baseline so
// first runs need no setup; a malformed file is an error.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline %s: %w", path, err)
	}

	b := New()
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("failed to parse baseline %s: %w", path, err)
	}
	if b.Version > currentVersion {
		return nil, fmt.Errorf("baseline %s has unsupported version %d", path, b.Version)
	}
	if b.Suppressed == nil {
		b.Suppressed = make(map[string][]string)
	}
	return b, nil
}

// Save writes the baseline, reporting whether the file changed on disk.
func (b *Baseline) Save(path string) (bool, error) {
	b.Version = currentVersion
	for sig := range b.Suppressed {
		sort.Strings(b.Suppressed[sig])
	}

	data, err := yaml.Marshal(b)
	if err != nil {
		return false, fmt.Errorf("failed to encode baseline: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, err
		}
	}
	return fileutil.WriteIfChangedTracked(path, data)
}

// IsSuppressed reports whether the (signature, rule) pair is baselined.
func (b *Baseline) IsSuppressed(sig, ruleID string) bool {
	for _, id := range b.Suppressed[sig] {
		if id == ruleID {
			return true
		}
	}
	return false
}

// Record adds the (signature, rule) pair, keeping entries unique.
func (b *Baseline) Record(sig, ruleID string) {
	if b.IsSuppressed(sig, ruleID) {
		return
	}
	b.Suppressed[sig] = append(b.Suppressed[sig], ruleID)
}

// Count returns the number of suppressed (signature, rule) pairs.
func (b *Baseline) Count() int {
	total := 0
	for _, ids := range b.Suppressed {
		total += len(ids)
	}
	return total
}
