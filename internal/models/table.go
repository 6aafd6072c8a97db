package models

// Row maps human-readable column names to scalar cell values.
type Row map[string]any

// Table is one workbook tab: a fixed column order plus rows kept in input
// order. Builders append rows; the writer walks Columns per row.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

func NewTable(name string, columns []string) *Table {
	return &Table{
		Name:    name,
		Columns: columns,
	}
}

func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

func (t *Table) RowCount() int {
	return len(t.Rows)
}

func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// RowValues returns row i's cells in column order, with nil for any column
// the row does not carry.
func (t *Table) RowValues(i int) []any {
	vals := make([]any, len(t.Columns))
	for j, col := range t.Columns {
		vals[j] = t.Rows[i][col]
	}
	return vals
}
