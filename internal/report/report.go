// Package report writes field results as fixed-point console lines.
package report

import (
	"fmt"
	"io"

	"fields/internal/geometry/vector"
)

// Precision is the number of digits printed after the decimal point.
const Precision = 4

// Row is one scalar line of a Column.
type Row struct {
	Desc  string
	Value float64
}

// Writer formats vectors and scalars onto an io.Writer. The first write
// error is kept and every later write is skipped.
type Writer struct {
	w   io.Writer
	err error
}

// New returns a Writer that writes to w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (r *Writer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Vector writes "<label> = (<x>, <y>, <z>)".
func (r *Writer) Vector(label string, v vector.Vec3) {
	r.printf("%s = (%.*f, %.*f, %.*f)\n", label, Precision, v.X, Precision, v.Y, Precision, v.Z)
}

// Scalar writes "<desc> = <value>".
func (r *Writer) Scalar(desc string, value float64) {
	r.printf("%s = %.*f\n", desc, Precision, value)
}

// Column writes rows with their descriptions padded to the widest one, so
// the values line up:
//
//	Magnitude(E_default)   = 0.0000
//	Magnitude(E_components)= 100000.1451
func (r *Writer) Column(rows []Row) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row.Desc))
	}
	for _, row := range rows {
		r.printf("%-*s= %.*f\n", width, row.Desc, Precision, row.Value)
	}
}

// Line writes s followed by a newline.
func (r *Writer) Line(s string) {
	r.printf("%s\n", s)
}

// Blank writes an empty line.
func (r *Writer) Blank() {
	r.printf("\n")
}

// Err returns the first error hit while writing.
func (r *Writer) Err() error {
	return r.err
}
