package dataset

import (
	"fmt"
	"io"
	"slices"

	"github.com/goccy/go-json"
	"github.com/samber/lo"

	errs "github.com/matzehuels/mekko/pkg/errors"
	"github.com/matzehuels/mekko/pkg/mekko"
)

// ReadJSON decodes an array of flat objects. Null values are treated as
// missing; numbers and booleans are formatted with fmt.
func ReadJSON(r io.Reader, opts Options) ([]mekko.Record, error) {
	var rows []map[string]any
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		if err == io.EOF {
			return []mekko.Record{}, nil
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode json rows")
	}

	records := make([]mekko.Record, 0, len(rows))
	seen := make(map[string]struct{})
	for _, row := range rows {
		rec := make(mekko.Record, len(row))
		for k, v := range row {
			seen[k] = struct{}{}
			if v == nil {
				continue
			}
			if s, ok := v.(string); ok {
				rec[k] = s
				continue
			}
			rec[k] = fmt.Sprint(v)
		}
		records = append(records, rec)
	}

	if len(records) > 0 {
		header := lo.Keys(seen)
		slices.Sort(header)
		if err := checkRequired(header, opts.Required); err != nil {
			return nil, err
		}
	}
	return records, nil
}
