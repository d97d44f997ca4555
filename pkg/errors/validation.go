package errors

import (
	"strings"
	"unicode"
)

const maxFieldLength = 128

// ValidateFieldName checks that name can address a column of a tabular
// dataset. Column names are matched after trimming, so surrounding
// whitespace is rejected to avoid silent mismatches.
func ValidateFieldName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidField, "field name cannot be empty")
	}
	if len(name) > maxFieldLength {
		return New(ErrCodeInvalidField, "field name too long (max %d characters)", maxFieldLength)
	}
	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidField, "field name %q has leading or trailing whitespace", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidField, "field name contains control characters")
		}
	}
	return nil
}

// ValidateKeyList checks a fixed list of category keys: no empty entries and
// no duplicates, since either would make the stacking order ambiguous.
func ValidateKeyList(kind string, keys []string) error {
	seen := make(map[string]struct{}, len(keys))
	for i, k := range keys {
		if strings.TrimSpace(k) == "" {
			return New(ErrCodeInvalidConfig, "%s key #%d is empty", kind, i+1)
		}
		if _, dup := seen[k]; dup {
			return New(ErrCodeInvalidConfig, "duplicate %s key %q", kind, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
