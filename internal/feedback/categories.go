// Package feedback implements the aggregation core of the faculty feedback
// system: turning raw rating submissions into per-category and overall
// averages, the star encoding used for display, and the report structure
// consumed by renderers. Everything in this package is pure computation;
// storage and transport live elsewhere.
package feedback

import (
	"fmt"
	"strings"
)

// DefaultCategories is used when a deployment does not configure its own set.
var DefaultCategories = CategorySet{"Knowledge", "Clarity", "Engagement", "Punctuality"}

// CategorySet is the ordered list of rating dimensions valid for one
// deployment. The same set is used for validation, storage and summary
// output; its order drives the order of report rows.
type CategorySet []string

// NewCategorySet validates and builds a CategorySet. Names must be non-blank
// and unique; the set must be non-empty.
func NewCategorySet(names []string) (CategorySet, error) {
	if len(names) == 0 {
		return nil, ErrEmptyCategorySet
	}

	seen := make(map[string]struct{}, len(names))
	set := make(CategorySet, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("blank category name")
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate category %q", name)
		}
		seen[name] = struct{}{}
		set = append(set, name)
	}
	return set, nil
}

// Contains reports whether name is part of the set.
func (cs CategorySet) Contains(name string) bool {
	for _, c := range cs {
		if c == name {
			return true
		}
	}
	return false
}
