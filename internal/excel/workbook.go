package excel

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"moontools/internal/logger"

	"github.com/xuri/excelize/v2"
)

// Value is one cell as read from a workbook view.
type Value struct {
	Raw      string
	Number   float64
	IsNumber bool
}

func (v Value) IsEmpty() bool {
	return v.Raw == ""
}

func (v Value) String() string {
	if v.IsEmpty() {
		return "(empty)"
	}
	return v.Raw
}

// Workbook holds two loads of the same file content: one keeping formulas,
// one yielding computed values. The file is read once so both views always
// see identical bytes.
type Workbook struct {
	Path string

	formulas     *Editor
	formulaSheet string
	values       *Editor
	valueSheet   string
}

// OpenWorkbook loads path into a formula view and a value view.
func OpenWorkbook(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}

	formulas, err := OpenReader(bytes.NewReader(data), path)
	if err != nil {
		return nil, err
	}
	values, err := OpenReader(bytes.NewReader(data), path, excelize.Options{RawCellValue: true})
	if err != nil {
		formulas.Close()
		return nil, err
	}

	wb := &Workbook{Path: path, formulas: formulas, values: values}
	if wb.formulaSheet, err = formulas.ActiveSheet(); err != nil {
		wb.Close()
		return nil, err
	}
	if wb.valueSheet, err = values.ActiveSheet(); err != nil {
		wb.Close()
		return nil, err
	}

	logger.Debug("Opened workbook", "path", path, "sheet", wb.valueSheet)
	return wb, nil
}

// Sheet returns the name of the active worksheet.
func (w *Workbook) Sheet() string {
	return w.valueSheet
}

// Value reads the computed value at (row, col). Formula cells without a
// cached result are evaluated.
func (w *Workbook) Value(row, col int) (Value, error) {
	cell, err := CellName(row, col)
	if err != nil {
		return Value{}, err
	}

	raw, err := w.values.GetCellValue(w.valueSheet, cell)
	if err != nil {
		return Value{}, fmt.Errorf("failed to read %s: %w", cell, err)
	}
	typ, err := w.values.GetCellDataType(w.valueSheet, cell)
	if err != nil {
		return Value{}, fmt.Errorf("failed to read type of %s: %w", cell, err)
	}

	if raw == "" {
		formula, err := w.values.GetCellFormula(w.valueSheet, cell)
		if err != nil {
			return Value{}, fmt.Errorf("failed to read formula in %s: %w", cell, err)
		}
		if formula != "" {
			calc, err := w.values.CalcCellValue(w.valueSheet, cell)
			if err != nil {
				logger.Warn("Could not evaluate formula", "cell", cell, "formula", formula, "error", err)
			} else {
				raw = calc
				typ = excelize.CellTypeUnset
			}
		}
	}

	return newValue(raw, typ), nil
}

// Formula reads the formula text at (row, col) as "=<formula>". A cell
// without a formula yields its stored value.
func (w *Workbook) Formula(row, col int) (Value, error) {
	cell, err := CellName(row, col)
	if err != nil {
		return Value{}, err
	}

	formula, err := w.formulas.GetCellFormula(w.formulaSheet, cell)
	if err != nil {
		return Value{}, fmt.Errorf("failed to read formula in %s: %w", cell, err)
	}
	if formula != "" {
		if !strings.HasPrefix(formula, "=") {
			formula = "=" + formula
		}
		return Value{Raw: formula}, nil
	}

	raw, err := w.formulas.GetCellValue(w.formulaSheet, cell)
	if err != nil {
		return Value{}, fmt.Errorf("failed to read %s: %w", cell, err)
	}
	typ, err := w.formulas.GetCellDataType(w.formulaSheet, cell)
	if err != nil {
		return Value{}, fmt.Errorf("failed to read type of %s: %w", cell, err)
	}
	return newValue(raw, typ), nil
}

// Close releases both views.
func (w *Workbook) Close() error {
	var firstErr error
	for _, e := range []*Editor{w.formulas, w.values} {
		if e == nil {
			continue
		}
		if err := e.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// newValue classifies raw cell text. Only number-typed cells (or untyped
// cells, which OOXML treats as numbers) count as numeric; text that merely
// looks like a number stays text.
func newValue(raw string, typ excelize.CellType) Value {
	v := Value{Raw: raw}
	if raw == "" {
		return v
	}
	switch typ {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			v.Number = n
			v.IsNumber = true
		}
	}
	return v
}
