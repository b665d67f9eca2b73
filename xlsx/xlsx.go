// Package xlsx bridges curriculum tables and Excel workbooks. The tabular
// codec itself never touches excelize; it only sees curriculum.Table.
package xlsx

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/academica/curricula/core/curriculum"
)

const sheetName = "Curriculum"

// Read extracts the first sheet of an Excel workbook into a Table. The first
// row is taken as the column header.
func Read(r io.Reader) (curriculum.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return curriculum.Table{}, errors.Wrap(err, "opening workbook")
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return curriculum.Table{}, errors.Wrap(err, "reading sheet")
	}
	if len(rows) == 0 {
		return curriculum.Table{}, errors.New("empty workbook")
	}

	tab := curriculum.Table{
		Columns: rows[0],
		Records: make([][]string, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		// GetRows trims trailing empty cells; pad back to the header width
		record := make([]string, len(tab.Columns))
		copy(record, row)
		tab.Records = append(tab.Records, record)
	}
	return tab, nil
}

// Write renders a Table as an Excel workbook with a bold header; continuation
// rows (blank course code) get a gray fill.
func Write(w io.Writer, tab curriculum.Table) error {
	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), sheetName)

	headerStyle, err := f.NewStyle(`{"font":{"bold":true},"fill":{"type":"pattern","color":["#D9D9D9"],"pattern":1}}`)
	if err != nil {
		return errors.Wrap(err, "creating header style")
	}
	contStyle, err := f.NewStyle(`{"fill":{"type":"pattern","color":["#F2F2F2"],"pattern":1}}`)
	if err != nil {
		return errors.Wrap(err, "creating style")
	}

	for i, col := range tab.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, col)
	}
	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(tab.Columns), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeaderCell, headerStyle)

	for r, record := range tab.Records {
		for c, value := range record {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheetName, cell, value)
		}
		if len(record) > 0 && record[0] == "" {
			first, _ := excelize.CoordinatesToCellName(1, r+2)
			last, _ := excelize.CoordinatesToCellName(len(tab.Columns), r+2)
			_ = f.SetCellStyle(sheetName, first, last, contStyle)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "B", 18)
	return errors.Wrap(f.Write(w), "writing workbook")
}

// WriteTemplate writes the illustrative import template workbook.
func WriteTemplate(w io.Writer) error {
	return Write(w, curriculum.Template())
}
