package excel

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// LabeledCell is a cell printed under a human-readable label.
type LabeledCell struct {
	Label string
	Row   int
	Col   int
}

// KeyPoint is a sample row highlighted in the summary section.
type KeyPoint struct {
	Label string
	Row   int
}

// Layout describes which cells of the Moon Avoidance sheet are dumped.
type Layout struct {
	Parameters []LabeledCell
	Formulas   []LabeledCell

	AgeCol     int
	ClassicCol int
	RelaxedCol int

	SampleRows []int
	FullMoon   KeyPoint
	KeyPoints  []KeyPoint
}

// DefaultLayout matches Relaxed-Moon-Avoidance.xlsx.
func DefaultLayout() Layout {
	return Layout{
		Parameters: []LabeledCell{
			{Label: "Separation (Classic)", Row: 3, Col: 2},
			{Label: "Width (Classic)", Row: 4, Col: 2},
			{Label: "Separation (Relaxed)", Row: 3, Col: 5},
			{Label: "Width (Relaxed)", Row: 4, Col: 5},
			{Label: "Altitude", Row: 5, Col: 5},
			{Label: "Relax Scale", Row: 6, Col: 5},
			{Label: "Min Alt", Row: 7, Col: 5},
			{Label: "Max Alt", Row: 8, Col: 5},
			{Label: "Lunar Cycle", Row: 3, Col: 7},
		},
		Formulas: []LabeledCell{
			{Label: "Classic formula", Row: 10, Col: 3},
			{Label: "Relaxed formula", Row: 10, Col: 4},
		},
		AgeCol:     2,
		ClassicCol: 3,
		RelaxedCol: 4,
		SampleRows: []int{10, 15, 20, 25, 30},
		FullMoon:   KeyPoint{Label: "Age 15", Row: 15},
		KeyPoints: []KeyPoint{
			{Label: "Age 0 (new moon)", Row: 10},
			{Label: "Age 15 (full moon)", Row: 15},
			{Label: "Age 29 (next new moon)", Row: 39},
		},
	}
}

type sample struct {
	age, classic, relaxed Value
}

// Dump prints the parameters, formulas and sample rows of wb to w.
func Dump(w io.Writer, wb *Workbook, layout Layout) error {
	heading := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	section := func(first bool, title string) {
		if !first {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, heading.Render("=== "+title+" ==="))
	}

	readSample := func(row int) (sample, error) {
		var s sample
		var err error
		if s.age, err = wb.Value(row, layout.AgeCol); err != nil {
			return s, err
		}
		if s.classic, err = wb.Value(row, layout.ClassicCol); err != nil {
			return s, err
		}
		if s.relaxed, err = wb.Value(row, layout.RelaxedCol); err != nil {
			return s, err
		}
		return s, nil
	}
	printSample := func(s sample) {
		classic, relaxed, _ := FormatPair(s.classic, s.relaxed)
		fmt.Fprintf(w, "Age %s: Classic=%s, Relaxed=%s\n", s.age, classic, relaxed)
	}

	section(true, "PARAMETERS")
	for _, p := range layout.Parameters {
		v, err := wb.Value(p.Row, p.Col)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", p.Label, v)
	}

	section(false, "FORMULAS")
	for _, p := range layout.Formulas {
		v, err := wb.Formula(p.Row, p.Col)
		if err != nil {
			return err
		}
		cell, err := CellName(p.Row, p.Col)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s (%s): %s\n", p.Label, cell, v)
	}

	section(false, "SAMPLE VALUES")
	for _, row := range layout.SampleRows {
		s, err := readSample(row)
		if err != nil {
			return err
		}
		printSample(s)
	}

	fullMoon, err := readSample(layout.FullMoon.Row)
	if err != nil {
		return err
	}
	section(false, "FULL MOON CHECK ("+layout.FullMoon.Label+")")
	printSample(fullMoon)

	section(false, "KEY POINTS")
	for _, kp := range layout.KeyPoints {
		s, err := readSample(kp.Row)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:\n", kp.Label)
		if classic, relaxed, ok := FormatPair(s.classic, s.relaxed); ok {
			fmt.Fprintf(w, "  Classic=%s, Relaxed=%s\n", classic, relaxed)
		}
	}

	return nil
}
