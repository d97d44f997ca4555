package mekko

import "strings"

// Record is one input row keyed by column name.
type Record map[string]string

// KeyFunc extracts a categorical key from a record. An empty result marks
// the key as missing.
type KeyFunc func(Record) string

// Field returns a KeyFunc reading the named column with surrounding
// whitespace removed.
func Field(name string) KeyFunc {
	return func(r Record) string {
		return strings.TrimSpace(r[name])
	}
}
