// Package dataset loads tabular input into [mekko.Record] rows.
//
// CSV and TSV files must start with a header row; each following row becomes
// a record keyed by header name. JSON files must contain an array of flat
// objects; non-string values are formatted with fmt.
//
//	rows, err := dataset.Load("data/mental_health.csv", dataset.Options{
//	    Required: []string{"Gender", "Treatment"},
//	})
//
// An input without any data rows is not an error: it yields an empty slice,
// which the layout engine turns into an empty chart. A missing file, a
// malformed row or a missing required column is reported with a coded error
// from pkg/errors and no rows are returned.
//
// [mekko.Record]: github.com/matzehuels/mekko/pkg/mekko.Record
package dataset
