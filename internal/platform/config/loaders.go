package config

import (
	"fmt"
	"log"
	"os"

	"github.com/SscSPs/polaris_reporting/internal/core/classify"
	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

// LoadTaxonomies returns the classifier taxonomies. Files in dir replace the built-in
// taxonomy of the same name; an empty dir uses the built-in set.
func LoadTaxonomies(dir string) (*classify.Set, error) {
	if dir == "" {
		return classify.DefaultSet(), nil
	}
	set, err := classify.LoadSet(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomies from %s: %w", dir, err)
	}
	if missing := set.General.Missing(domain.GeneralBuckets); len(missing) > 0 {
		log.Printf("Warning: general taxonomy in %s has no rule for %v. Those totals stay zero.\n", dir, missing)
	}
	return set, nil
}

// LoadAssumptions returns the default assumptions with any values from the YAML file at
// path applied on top. The file groups keys the same way as the dotted names:
//
//	zakat:
//	  rate: 0.02577
//	cashFlow:
//	  capexRate: 0.12
func LoadAssumptions(path string) (domain.Assumptions, error) {
	defaults := domain.DefaultAssumptions()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("failed to read assumptions file: %w", err)
	}
	overrides, err := ParseAssumptionOverrides(data)
	if err != nil {
		return defaults, fmt.Errorf("assumptions file %s: %w", path, err)
	}
	a, err := defaults.Apply(overrides)
	if err != nil {
		return defaults, fmt.Errorf("assumptions file %s: %w", path, err)
	}
	return a, nil
}

// ParseAssumptionOverrides flattens a grouped YAML document into dotted assumption keys.
func ParseAssumptionOverrides(data []byte) (map[string]decimal.Decimal, error) {
	var groups map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("failed to parse assumptions: %w", err)
	}

	out := make(map[string]decimal.Decimal)
	for group, values := range groups {
		for name, raw := range values {
			key := group + "." + name
			v, err := decimal.NewFromString(fmt.Sprint(raw))
			if err != nil {
				return nil, fmt.Errorf("assumption %s: %q is not a number", key, fmt.Sprint(raw))
			}
			out[key] = v
		}
	}
	return out, nil
}
