package sheet

import (
	"fmt"
	"strings"
)

// SchemaError reports a present spreadsheet that lacks required columns. It is
// fatal for the whole run and is raised before any store access happens.
type SchemaError struct {
	Dataset string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s.xlsx is missing columns: %s", e.Dataset, strings.Join(e.Missing, ", "))
}
