package offering

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind is a type of offering a program can have
type Kind string

const (
	Bachelors   Kind = "Bachelor's"
	Masters     Kind = "Master's"
	Doctorate   Kind = "Doctorate"
	Certificate Kind = "Certificate"
	Minor       Kind = "Minor"
)

// Columns maps a data column index of the offerings table to the Kind it holds.
// The source table has no machine-readable headers, so the order here is the
// only thing tying a column to its meaning.
type Columns []Kind

// DefaultColumns is the column layout of the UMBC degree programs table
var DefaultColumns = Columns{Bachelors, Masters, Doctorate, Certificate, Minor}

// Value is the offering of one Kind for a program: not offered, offered as a
// plain flag, or offered under a named sub-type such as a major.
type Value struct {
	state valueState
	label string
}

type valueState uint8

const (
	notOffered valueState = iota
	flag
	labeled
)

// NotOffered is the zero Value
var NotOffered = Value{}

// Offered returns the flag Value used for offerings without a sub-type
func Offered() Value {
	return Value{state: flag}
}

// Label returns a Value naming the offered sub-type. The label may be empty
// and still encodes as a string.
func Label(s string) Value {
	return Value{state: labeled, label: s}
}

// IsOffered reports whether the program has this offering at all
func (v Value) IsOffered() bool {
	return v.state != notOffered
}

// Text returns the sub-type label, or "" for flag and not-offered values
func (v Value) Text() string {
	return v.label
}

// IsLabel reports whether the value carries a sub-type label
func (v Value) IsLabel() bool {
	return v.state == labeled
}

func (v Value) String() string {
	if v.IsLabel() {
		return strconv.Quote(v.label)
	}
	return strconv.FormatBool(v.IsOffered())
}

// MarshalJSON encodes the value as false, true or a string
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsLabel() {
		return json.Marshal(v.label)
	}
	return json.Marshal(v.IsOffered())
}

// Record holds a program's offerings keyed by Kind
type Record map[Kind]Value

// Table holds the Record of every program keyed by program title
type Table map[string]Record

// Row is a single row of the offerings table after extraction from HTML
type Row struct {
	Title string
	Cells []string
}

// Empty reports whether every data cell of the row is blank. The table uses
// such rows as separators between groups of programs.
func (r Row) Empty() bool {
	for _, c := range r.Cells {
		if c != "" {
			return false
		}
	}
	return true
}

// NormalizeCertificate turns a cell that lists certificate variants on
// separate lines into a single comma separated list.
func NormalizeCertificate(s string) string {
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
