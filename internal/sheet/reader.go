package sheet

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// Read locates and parses <dir>/<dataset>.xlsx. An absent file is not an
// error: the caller gets NotProvided and proceeds to its fallback path. A
// present file missing any of the required columns yields a *SchemaError.
//
// The first sheet of the workbook is read; its first row is the header. Extra
// columns beyond the required set pass through verbatim.
func Read(dir, dataset string, required []string) (Result, error) {
	path := filepath.Join(dir, dataset+".xlsx")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return NotProvided(), nil
		}
		return NotProvided(), errors.Wrapf(err, "stat %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return NotProvided(), errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	raw, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return NotProvided(), errors.Wrapf(err, "read %s", path)
	}

	var header []string
	if len(raw) > 0 {
		for _, cell := range raw[0] {
			header = append(header, strings.TrimSpace(cell))
		}
	}

	if missing := missingColumns(header, required); len(missing) > 0 {
		return NotProvided(), &SchemaError{Dataset: dataset, Missing: missing}
	}

	t := &Table{Fields: header}
	if len(raw) < 2 {
		return SourceData(t), nil
	}
	for _, cells := range raw[1:] {
		row := make([]any, len(header))
		empty := true
		for i := range header {
			if i < len(cells) && strings.TrimSpace(cells[i]) != "" {
				row[i] = cells[i]
				empty = false
			}
		}
		if empty {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return SourceData(t), nil
}

func missingColumns(header, required []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}
	var missing []string
	for _, req := range required {
		if _, ok := present[req]; !ok {
			missing = append(missing, req)
		}
	}
	return missing
}
