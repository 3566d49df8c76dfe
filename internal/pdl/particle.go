// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pdl

import "math"

// fieldNames lists the diffable fields in the positional order they appear on
// a PDL data line. Line is deliberately absent: it never takes part in
// identity or comparison, only display.
var fieldNames = [...]string{
	"name", "id", "mass", "width", "max_dM",
	"charge", "spin", "lifetime", "pythiaId",
}

// Particle is one particle definition parsed from a PDL file. Values are
// never mutated after construction.
type Particle struct {
	Name      string
	ID        int
	Mass      float64
	Width     float64
	MaxDeltaM float64
	Charge    int
	Spin      int
	Lifetime  float64
	PythiaID  int
	// Line is the zero-based line the particle was read from.
	Line int
}

// fieldValues returns the diffable field values in fieldNames order.
func (p Particle) fieldValues() [9]any {
	return [9]any{
		p.Name, p.ID, p.Mass, p.Width, p.MaxDeltaM,
		p.Charge, p.Spin, p.Lifetime, p.PythiaID,
	}
}

// SameEntity reports whether p and other describe the same particle across
// two files. Identity is determined by ID alone; any other field may differ.
// This is the equality the aligner matches on and is intentionally distinct
// from the field-wise comparison done by Diff.
func (p Particle) SameEntity(other Particle) bool {
	return p.ID == other.ID
}

// FieldDiff records one field whose values differ between two particles,
// carrying the value from each side.
type FieldDiff struct {
	Field string
	A, B  any
}

// Diff compares p to other field by field and returns the fields that are
// not close, in declaration order. Floats are close when they are within the
// given combined relative/absolute tolerance; all other fields must be
// exactly equal. The source line is ignored. An empty result means the two
// particles have no observable differences.
func (p Particle) Diff(other Particle, tolerance float64) []FieldDiff {
	av, bv := p.fieldValues(), other.fieldValues()
	var diffs []FieldDiff
	for i, name := range fieldNames {
		if !closeValues(av[i], bv[i], tolerance) {
			diffs = append(diffs, FieldDiff{Field: name, A: av[i], B: bv[i]})
		}
	}
	return diffs
}

// Property is a named field value, used when a whole particle is reported as
// added or removed.
type Property struct {
	Name  string
	Value any
}

// Properties returns the value-carrying fields, i.e. everything after name
// and id, in declaration order.
func (p Particle) Properties() []Property {
	v := p.fieldValues()
	props := make([]Property, 0, len(fieldNames)-2)
	for i := 2; i < len(fieldNames); i++ {
		props = append(props, Property{Name: fieldNames[i], Value: v[i]})
	}
	return props
}

// closeValues compares two field values, tolerantly for floats and exactly
// for everything else.
func closeValues(a, b any, tolerance float64) bool {
	if af, ok := a.(float64); ok {
		bf, ok := b.(float64)
		return ok && isClose(af, bf, tolerance)
	}
	return a == b
}

// isClose reports whether a and b are within tolerance of each other, where
// tolerance acts as both the relative and the absolute threshold:
//
//	|a-b| <= max(tolerance, tolerance*max(|a|, |b|))
//
// The comparison is symmetric. Equal values (including equal infinities) are
// always close; NaN is never close to anything.
func isClose(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= math.Max(tolerance, tolerance*math.Max(math.Abs(a), math.Abs(b)))
}
