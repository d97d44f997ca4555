package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/mekko/pkg/errors"
	"github.com/matzehuels/mekko/pkg/mekko"
)

const utf8BOM = "\ufeff"

// Options configures loading.
type Options struct {
	// Comma is the field delimiter for delimited text. Zero selects ',' for
	// .csv and '\t' for .tsv.
	Comma rune
	// Required lists columns that must be present in the header.
	Required []string
}

// Load reads path, picking the decoder from its extension (.csv, .tsv,
// .json). Unknown extensions are read as CSV.
func Load(path string, opts Options) ([]mekko.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Read(path, f, opts)
}

// Read decodes r with the decoder matching the extension of name.
func Read(name string, r io.Reader, opts Options) ([]mekko.Record, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return ReadJSON(r, opts)
	case ".tsv":
		if opts.Comma == 0 {
			opts.Comma = '\t'
		}
	}
	return ReadCSV(r, opts)
}

// ReadCSV decodes delimited text with a header row. Rows shorter than the
// header leave the trailing columns absent; extra fields are ignored.
func ReadCSV(r io.Reader, opts Options) ([]mekko.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	header, err := cr.Read()
	if err == io.EOF {
		return []mekko.Record{}, nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read header")
	}
	header = normalizeHeader(header)
	if err := checkRequired(header, opts.Required); err != nil {
		return nil, err
	}

	var records []mekko.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read row %d", len(records)+2)
		}
		if isBlank(row) {
			continue
		}
		rec := make(mekko.Record, len(header))
		for i, name := range header {
			if i >= len(row) {
				break
			}
			if _, dup := rec[name]; dup {
				continue
			}
			rec[name] = row[i]
		}
		records = append(records, rec)
	}
	if records == nil {
		records = []mekko.Record{}
	}
	return records, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func checkRequired(header, required []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, name := range required {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errs.New(errs.ErrCodeMissingField, "missing column(s) %s (have: %s)",
			strings.Join(missing, ", "), strings.Join(header, ", "))
	}
	return nil
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
