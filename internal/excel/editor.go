package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Editor is a read-only handle on one loaded copy of a workbook.
type Editor struct {
	file     *excelize.File
	filepath string
}

// OpenReader loads a workbook from r. name is only used in messages.
func OpenReader(r io.Reader, name string, opts ...excelize.Options) (*Editor, error) {
	file, err := excelize.OpenReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return &Editor{
		file:     file,
		filepath: name,
	}, nil
}

// ActiveSheet returns the workbook's active sheet, or the first sheet when
// the workbook does not record one.
func (e *Editor) ActiveSheet() (string, error) {
	if name := e.file.GetSheetName(e.file.GetActiveSheetIndex()); name != "" {
		return name, nil
	}
	sheets := e.GetSheetNames()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook %s has no sheets", e.filepath)
	}
	return sheets[0], nil
}

// GetCellFormula returns the formula in a specific cell (if any)
func (e *Editor) GetCellFormula(sheet, cell string) (string, error) {
	return e.file.GetCellFormula(sheet, cell)
}

// GetCellValue returns the value in a specific cell
func (e *Editor) GetCellValue(sheet, cell string) (string, error) {
	return e.file.GetCellValue(sheet, cell)
}

func (e *Editor) GetCellDataType(sheet, cell string) (excelize.CellType, error) {
	return e.file.GetCellType(sheet, cell)
}

// CalcCellValue evaluates the formula in a cell with excelize's engine.
func (e *Editor) CalcCellValue(sheet, cell string) (string, error) {
	return e.file.CalcCellValue(sheet, cell, excelize.Options{RawCellValue: true})
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}

// CellName converts 1-based (row, column) coordinates to an A1 reference.
func CellName(row, col int) (string, error) {
	return excelize.CoordinatesToCellName(col, row)
}
