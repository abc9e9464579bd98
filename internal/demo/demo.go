// Package demo runs the field driver: it builds the scenario's samples and
// prints their components, magnitudes and derived quantities.
package demo

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"fields/internal/field"
	"fields/internal/geometry/vector"
	"fields/internal/report"
	"fields/internal/scenario"
)

type sample[T any] struct {
	label string
	field T
}

func build[T any](samples []scenario.Sample, wrap func(x, y, z float64) T) ([]sample[T], map[string]T, error) {
	built := make([]sample[T], 0, len(samples))
	byLabel := make(map[string]T, len(samples))
	for _, s := range samples {
		v, err := s.Build()
		if err != nil {
			return nil, nil, err
		}
		f := wrap(v.X, v.Y, v.Z)
		built = append(built, sample[T]{label: s.Label, field: f})
		byLabel[s.Label] = f

		log.Debug().
			Str("label", s.Label).
			Str("construct", string(s.Construct)).
			Stringer("vector", v).
			Msg("built sample")
	}
	return built, byLabel, nil
}

func magnitudeRow(label string, magnitude float64) report.Row {
	return report.Row{Desc: fmt.Sprintf("Magnitude(%s)", label), Value: magnitude}
}

// Run writes the full report for s to w. Output order follows the
// scenario: electric samples, their magnitudes and inner products, a blank
// line, then magnetic samples, their magnitudes and unit vectors.
func Run(w io.Writer, s *scenario.Scenario) error {
	if err := s.Validate(); err != nil {
		return err
	}

	electric, electricByLabel, err := build(s.Electric, field.NewElectric)
	if err != nil {
		return err
	}
	magnetic, magneticByLabel, err := build(s.Magnetic, field.NewMagnetic)
	if err != nil {
		return err
	}

	r := report.New(w)

	rows := make([]report.Row, 0, len(electric))
	for _, e := range electric {
		r.Vector(e.label, e.field.Vec3)
		rows = append(rows, magnitudeRow(e.label, e.field.Magnitude()))
	}
	r.Column(rows)
	for _, label := range s.InnerProduct {
		writeInnerProduct(r, label, electricByLabel[label])
	}
	r.Blank()

	rows = make([]report.Row, 0, len(magnetic))
	for _, b := range magnetic {
		r.Vector(b.label, b.field.Vec3)
		rows = append(rows, magnitudeRow(b.label, b.field.Magnitude()))
	}
	r.Column(rows)
	for _, label := range s.UnitVector {
		writeUnitVector(r, label, magneticByLabel[label])
	}

	if err := r.Err(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	log.Debug().
		Int("electric", len(electric)).
		Int("magnetic", len(magnetic)).
		Msg("report written")
	return nil
}

func writeInnerProduct(r *report.Writer, label string, e field.Electric) {
	ip := e.InnerProduct()
	log.Debug().Str("label", label).Float64("innerProduct", ip).Msg("inner product")
	r.Scalar(fmt.Sprintf("Inner product (%s · %s)", label, label), ip)
}

func writeUnitVector(r *report.Writer, label string, b field.Magnetic) {
	u, ok := b.UnitVector()
	if !ok {
		log.Debug().Str("label", label).Msg("unit vector undefined for zero field")
		r.Line(fmt.Sprintf("Unit vector of %s is undefined (zero vector).", label))
		return
	}
	r.Vector(fmt.Sprintf("Unit vector of %s", label), u)
}

// Magnitude reports a single vector and its magnitude.
func Magnitude(w io.Writer, label string, v vector.Vec3) error {
	r := report.New(w)
	r.Vector(label, v)
	r.Scalar(fmt.Sprintf("Magnitude(%s)", label), v.Magnitude())
	return r.Err()
}

// InnerProduct reports an electric field and E·E.
func InnerProduct(w io.Writer, label string, e field.Electric) error {
	r := report.New(w)
	r.Vector(label, e.Vec3)
	writeInnerProduct(r, label, e)
	return r.Err()
}

// UnitVector reports a magnetic field and its unit vector, or that the unit
// vector is undefined. The undefined case is not an error.
func UnitVector(w io.Writer, label string, b field.Magnetic) error {
	r := report.New(w)
	r.Vector(label, b.Vec3)
	writeUnitVector(r, label, b)
	return r.Err()
}
