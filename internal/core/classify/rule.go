package classify

import (
	"fmt"
	"strings"

	"github.com/SscSPs/polaris_reporting/internal/core/domain"
)

// Field selects which text of a row a rule inspects.
type Field string

const (
	FieldName     Field = "name"
	FieldCategory Field = "category"
	FieldAny      Field = "any"
)

// Rule maps a row to a bucket when its keyword conditions hold. Matching is substring
// containment on lower-cased text, never whole-word.
//
// A rule matches when at least one AnyOf keyword is present (if AnyOf is set), every
// AllOf group has at least one keyword present, and no NoneOf keyword is present.
// CategoryNoneOf is always checked against the category, whatever Field says, so a
// name rule can be kept off rows whose category places them elsewhere.
type Rule struct {
	Bucket         domain.Bucket `yaml:"bucket"`
	Field          Field         `yaml:"field"`
	AnyOf          []string      `yaml:"anyOf"`
	AllOf          [][]string    `yaml:"allOf"`
	NoneOf         []string      `yaml:"noneOf"`
	CategoryNoneOf []string      `yaml:"categoryNoneOf"`
}

// Matches evaluates the rule against already-normalized name and category text.
func (r Rule) Matches(name, category string) bool {
	has := func(k string) bool {
		switch r.Field {
		case FieldName:
			return strings.Contains(name, k)
		case FieldCategory:
			return strings.Contains(category, k)
		default:
			return strings.Contains(name, k) || strings.Contains(category, k)
		}
	}

	for _, k := range r.CategoryNoneOf {
		if strings.Contains(category, k) {
			return false
		}
	}
	for _, k := range r.NoneOf {
		if has(k) {
			return false
		}
	}
	if len(r.AnyOf) > 0 && !containsAny(r.AnyOf, has) {
		return false
	}
	for _, group := range r.AllOf {
		if !containsAny(group, has) {
			return false
		}
	}
	return true
}

func containsAny(keywords []string, has func(string) bool) bool {
	for _, k := range keywords {
		if has(k) {
			return true
		}
	}
	return false
}

// normalize lower-cases keywords and defaults the field, and rejects rules that could
// match every row.
func (r *Rule) normalize() error {
	if !r.Bucket.IsValid() {
		return fmt.Errorf("unknown bucket %q", r.Bucket)
	}
	switch r.Field {
	case "":
		r.Field = FieldName
	case FieldName, FieldCategory, FieldAny:
	default:
		return fmt.Errorf("bucket %s: unknown field %q", r.Bucket, r.Field)
	}
	if len(r.AnyOf) == 0 && len(r.AllOf) == 0 {
		return fmt.Errorf("bucket %s: rule needs anyOf or allOf keywords", r.Bucket)
	}

	r.AnyOf = lowerAll(r.AnyOf)
	r.NoneOf = lowerAll(r.NoneOf)
	r.CategoryNoneOf = lowerAll(r.CategoryNoneOf)
	for i, group := range r.AllOf {
		if len(group) == 0 {
			return fmt.Errorf("bucket %s: empty allOf group", r.Bucket)
		}
		r.AllOf[i] = lowerAll(group)
	}
	return nil
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
