package mekko

import (
	"slices"

	"github.com/samber/lo"
)

// MissingPolicy decides what happens to records with an empty outer or
// inner key.
type MissingPolicy string

const (
	// MissingDrop discards the record and counts it in Table.Dropped.
	MissingDrop MissingPolicy = "drop"
	// MissingBucket counts the record under AggregateOptions.UnknownLabel.
	MissingBucket MissingPolicy = "bucket"
)

// Order selects the canonical order of discovered keys.
type Order string

const (
	// OrderFirstSeen keeps keys in the order they first appear in the input.
	OrderFirstSeen Order = "first-seen"
	// OrderSorted sorts keys lexicographically.
	OrderSorted Order = "sorted"
)

// DefaultUnknownLabel is the bucket name used by MissingBucket when no
// label is configured.
const DefaultUnknownLabel = "Unknown"

// AggregateOptions configures [Aggregate]. Outer and Inner are required.
type AggregateOptions struct {
	Outer KeyFunc
	Inner KeyFunc

	Missing      MissingPolicy
	UnknownLabel string

	// InnerKeys fixes the inner-key universe and its stacking order. Records
	// whose inner key is not listed are dropped. Empty means discover the
	// union of inner keys from the data.
	InnerKeys []string

	// OuterKeys pins the leading column order. Outer keys seen in the data
	// but not listed follow in OuterOrder. Listed keys with no records are
	// omitted.
	OuterKeys []string

	OuterOrder Order
	InnerOrder Order
}

func (o *AggregateOptions) setDefaults() {
	// A repeated key would emit its column or segment twice.
	o.InnerKeys = lo.Uniq(o.InnerKeys)
	o.OuterKeys = lo.Uniq(o.OuterKeys)
	if o.Missing == "" {
		o.Missing = MissingDrop
	}
	if o.UnknownLabel == "" {
		o.UnknownLabel = DefaultUnknownLabel
	}
	if o.OuterOrder == "" {
		o.OuterOrder = OrderFirstSeen
	}
	if o.InnerOrder == "" {
		o.InnerOrder = OrderFirstSeen
	}
}

// Table holds two-level frequency counts.
//
// Invariants: Totals[o] == Σ_i Counts[o][i] for every o in Outer, and
// Grand == Σ_o Totals[o]. Every key in Counts appears in Outer.
type Table struct {
	Outer   []string                  `json:"outer"`
	Inner   []string                  `json:"inner"`
	Counts  map[string]map[string]int `json:"counts"`
	Totals  map[string]int            `json:"totals"`
	Grand   int                       `json:"grand_total"`
	Dropped int                       `json:"dropped"`
}

// Aggregate groups records by the outer and inner key and counts each pair.
// It never fails: missing keys are resolved by the configured policy and an
// empty input yields an empty table.
func Aggregate(records []Record, opts AggregateOptions) Table {
	opts.setDefaults()

	t := Table{
		Counts: make(map[string]map[string]int),
		Totals: make(map[string]int),
	}
	fixedInner := len(opts.InnerKeys) > 0

	var outerSeen, innerSeen []string
	innerIndex := make(map[string]struct{})

	for _, rec := range records {
		outer, inner := opts.Outer(rec), opts.Inner(rec)
		if outer == "" || inner == "" {
			if opts.Missing != MissingBucket {
				t.Dropped++
				continue
			}
			if outer == "" {
				outer = opts.UnknownLabel
			}
			if inner == "" {
				inner = opts.UnknownLabel
			}
		}
		if fixedInner && !lo.Contains(opts.InnerKeys, inner) {
			t.Dropped++
			continue
		}

		row, ok := t.Counts[outer]
		if !ok {
			row = make(map[string]int)
			t.Counts[outer] = row
			outerSeen = append(outerSeen, outer)
		}
		if _, ok := innerIndex[inner]; !ok {
			innerIndex[inner] = struct{}{}
			innerSeen = append(innerSeen, inner)
		}

		row[inner]++
		t.Totals[outer]++
		t.Grand++
	}

	t.Outer = orderKeys(outerSeen, opts.OuterKeys, opts.OuterOrder)
	if fixedInner {
		t.Inner = slices.Clone(opts.InnerKeys)
	} else {
		t.Inner = orderKeys(innerSeen, nil, opts.InnerOrder)
	}
	return t
}

// NewTable builds a table from precomputed counts, deriving totals. Pairs
// listed in counts but absent from outer or inner are ignored, as are
// repeated keys.
func NewTable(outer, inner []string, counts map[string]map[string]int) Table {
	outer, inner = lo.Uniq(outer), lo.Uniq(inner)
	t := Table{
		Outer:  outer,
		Inner:  inner,
		Counts: make(map[string]map[string]int, len(outer)),
		Totals: make(map[string]int, len(outer)),
	}
	for _, o := range outer {
		row := make(map[string]int, len(inner))
		for _, i := range inner {
			if n := counts[o][i]; n > 0 {
				row[i] = n
			}
		}
		t.Counts[o] = row
		t.Totals[o] = lo.Sum(lo.Values(row))
		t.Grand += t.Totals[o]
	}
	return t
}

// Count returns the number of records for the pair, 0 if absent.
func (t Table) Count(outer, inner string) int {
	return t.Counts[outer][inner]
}

// Total returns the number of records in the outer group.
func (t Table) Total(outer string) int {
	return t.Totals[outer]
}

// Share returns the outer group's fraction of all records, 0 for an empty
// table.
func (t Table) Share(outer string) float64 {
	if t.Grand == 0 {
		return 0
	}
	return float64(t.Totals[outer]) / float64(t.Grand)
}

// Empty reports whether no record was counted.
func (t Table) Empty() bool { return t.Grand == 0 }

func orderKeys(seen, pinned []string, order Order) []string {
	keys := slices.Clone(seen)
	if order == OrderSorted {
		slices.Sort(keys)
	}
	if len(pinned) == 0 {
		return keys
	}
	head := lo.Filter(pinned, func(k string, _ int) bool {
		return lo.Contains(seen, k)
	})
	return append(head, lo.Without(keys, head...)...)
}
