package classify

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"gopkg.in/yaml.v2"
)

//go:embed taxonomies/*.yaml
var defaultFiles embed.FS

// Taxonomy names. Each is loaded from <name>.yaml.
const (
	General          = "general"
	ZakatAssets      = "zakat_assets"
	ZakatLiabilities = "zakat_liabilities"
	Income           = "income"
	NonCash          = "noncash"
)

// Taxonomy is an ordered rule list. The first matching rule decides the bucket, so
// order encodes priority.
type Taxonomy struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
}

// Classify returns the bucket of the first matching rule.
func (t *Taxonomy) Classify(row domain.LedgerRow) (domain.Bucket, bool) {
	name, category := row.NormalizedName(), row.NormalizedCategory()
	for _, r := range t.Rules {
		if r.Matches(name, category) {
			return r.Bucket, true
		}
	}
	return "", false
}

// Buckets lists the distinct buckets the taxonomy can produce, in rule order.
func (t *Taxonomy) Buckets() []domain.Bucket {
	seen := make(map[domain.Bucket]bool)
	var out []domain.Bucket
	for _, r := range t.Rules {
		if !seen[r.Bucket] {
			seen[r.Bucket] = true
			out = append(out, r.Bucket)
		}
	}
	return out
}

// Missing returns the buckets of want that no rule of the taxonomy produces.
func (t *Taxonomy) Missing(want []domain.Bucket) []domain.Bucket {
	have := make(map[domain.Bucket]bool)
	for _, b := range t.Buckets() {
		have[b] = true
	}
	var out []domain.Bucket
	for _, b := range want {
		if !have[b] {
			out = append(out, b)
		}
	}
	return out
}

// Parse decodes and validates a YAML taxonomy document.
func Parse(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.UnmarshalStrict(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}
	if len(t.Rules) == 0 {
		return nil, fmt.Errorf("taxonomy %q has no rules", t.Name)
	}
	for i := range t.Rules {
		if err := t.Rules[i].normalize(); err != nil {
			return nil, fmt.Errorf("taxonomy %q rule %d: %w", t.Name, i, err)
		}
	}
	return &t, nil
}

// Set holds the independent classifier configurations. General reporting and zakat
// never share a taxonomy.
type Set struct {
	General          *Taxonomy
	ZakatAssets      *Taxonomy
	ZakatLiabilities *Taxonomy
	Income           *Taxonomy
	NonCash          *Taxonomy
}

// DefaultSet returns the embedded taxonomies. It panics only if the embedded files are
// broken, which the package tests guard against.
func DefaultSet() *Set {
	s, err := LoadSet("")
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomies are invalid: %v", err))
	}
	return s
}

// LoadSet loads every taxonomy, preferring <dir>/<name>.yaml when dir is set and the
// file exists, otherwise the embedded default.
func LoadSet(dir string) (*Set, error) {
	load := func(name string) (*Taxonomy, error) {
		data, err := readTaxonomy(dir, name)
		if err != nil {
			return nil, err
		}
		t, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if t.Name == "" {
			t.Name = name
		}
		return t, nil
	}

	s := &Set{}
	targets := []struct {
		name string
		dst  **Taxonomy
	}{
		{General, &s.General},
		{ZakatAssets, &s.ZakatAssets},
		{ZakatLiabilities, &s.ZakatLiabilities},
		{Income, &s.Income},
		{NonCash, &s.NonCash},
	}
	for _, tg := range targets {
		t, err := load(tg.name)
		if err != nil {
			return nil, err
		}
		*tg.dst = t
	}
	return s, nil
}

func readTaxonomy(dir, name string) ([]byte, error) {
	file := name + ".yaml"
	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read taxonomy %s: %w", file, err)
		}
	}
	return defaultFiles.ReadFile("taxonomies/" + file)
}
