package views

import "github.com/jfrummel/cintel-02-data/src/dataset"

// TableStyle distinguishes the two table renderings.
type TableStyle string

const (
	StyleDataTable TableStyle = "datatable"
	StyleDataGrid  TableStyle = "datagrid"
)

// SelectionMode of a table.
type SelectionMode string

const (
	SelectNone SelectionMode = "none"
	SelectRow  SelectionMode = "row"
)

// Fixed pixel size of both tables.
const (
	TableWidthPx  = 400
	TableHeightPx = 250
)

// Table is a formatted tabular rendering of the dataset.
type Table struct {
	Style         TableStyle
	Header        string
	Columns       []string
	Rows          [][]string
	Width         int
	Height        int
	SelectionMode SelectionMode
	// Filters enables per column filter inputs.
	Filters bool
}

func (t *Table) Kind() Kind    { return KindTable }
func (t *Table) Title() string { return t.Header }
func (t *Table) RowCount() int { return len(t.Rows) }

// NewDataTable renders every row of the dataset as a row-selectable data table.
func NewDataTable(ds *dataset.Table) *Table {
	return newTable(ds, StyleDataTable, "Data Table", false)
}

// NewDataGrid renders every row of the dataset as a row-selectable grid with filters off.
func NewDataGrid(ds *dataset.Table) *Table {
	return newTable(ds, StyleDataGrid, "Data Grid", false)
}

func newTable(ds *dataset.Table, style TableStyle, header string, filters bool) *Table {
	cols := append([]string(nil), dataset.Columns...)
	rows := make([][]string, ds.Len())
	for i := range rows {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = ds.Cell(i, c)
		}
		rows[i] = row
	}
	return &Table{
		Style:         style,
		Header:        header,
		Columns:       cols,
		Rows:          rows,
		Width:         TableWidthPx,
		Height:        TableHeightPx,
		SelectionMode: SelectRow,
		Filters:       filters,
	}
}
