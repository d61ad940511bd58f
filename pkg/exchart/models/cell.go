// Package models defines data structures for spreadsheet charting.
package models

import (
	"strconv"
	"time"
)

// CellKind identifies which variant of Cell is populated.
type CellKind int

const (
	// KindMissing marks an empty cell or a value that could not be read.
	KindMissing CellKind = iota
	// KindInteger marks a whole number stored without a fractional part.
	KindInteger
	// KindFloat marks a number with a fractional part.
	KindFloat
	// KindText marks a string cell.
	KindText
	// KindDateTime marks a number carrying a date or time number format.
	KindDateTime
)

func (k CellKind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindDateTime:
		return "datetime"
	}
	return "CellKind(" + strconv.Itoa(int(k)) + ")"
}

// Cell is a typed spreadsheet value, decided once at load time.
// Only the field matching Kind is meaningful.
type Cell struct {
	// Kind selects the populated variant.
	Kind CellKind
	// Int holds the value of an integer cell.
	Int int64
	// Float holds the value of a float cell.
	Float float64
	// Text holds the value of a text cell, untrimmed.
	Text string
	// Time holds the value of a datetime cell.
	Time time.Time
}

// Missing returns an empty cell.
func Missing() Cell { return Cell{} }

// Integer returns an integer cell.
func Integer(v int64) Cell { return Cell{Kind: KindInteger, Int: v} }

// Float returns a float cell.
func Float(v float64) Cell { return Cell{Kind: KindFloat, Float: v} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// DateTime returns a datetime cell.
func DateTime(t time.Time) Cell { return Cell{Kind: KindDateTime, Time: t} }

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool { return c.Kind == KindMissing }

// String renders the cell the way a spreadsheet user would type it back in:
// integers without separators, floats in shortest form, datetimes as
// "2006-01-02 15:04:05" and missing cells as the empty string.
func (c Cell) String() string {
	switch c.Kind {
	case KindInteger:
		return strconv.FormatInt(c.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(c.Float, 'f', -1, 64)
	case KindText:
		return c.Text
	case KindDateTime:
		return c.Time.Format(time.DateTime)
	}
	return ""
}
