package sheet

// Table is the parsed contents of one dataset spreadsheet: the header row in
// file order plus every data row. Cell values pass through verbatim; blank
// cells become nil so the store receives NULL.
type Table struct {
	Fields []string
	Rows   [][]any
}

// Result resolves a dataset to exactly one of two outcomes: source data was
// provided, or no file was found and the caller should fall back.
type Result struct {
	Table    *Table
	Provided bool
}

func SourceData(t *Table) Result {
	return Result{Table: t, Provided: true}
}

func NotProvided() Result {
	return Result{}
}
