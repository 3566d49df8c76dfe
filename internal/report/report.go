// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"strconv"

	"github.com/pdldiff/pdldiff/internal/align"
	"github.com/pdldiff/pdldiff/internal/pdl"
)

// Defaults for the comparison tunables, matching the command-line defaults.
const (
	DefaultTolerance = 1e-5
	DefaultPrecision = 5
)

// placeholder fills cells for the side a particle is missing from.
const placeholder = "--"

// Kind classifies a report entry.
type Kind int

const (
	Unchanged Kind = iota
	Changed
	Added
	Removed
)

// class returns the display class attached to cells of this kind. Unchanged
// entries carry no class.
func (k Kind) class() string {
	switch k {
	case Changed:
		return "changed"
	case Added:
		return "added"
	case Removed:
		return "removed"
	}
	return ""
}

func (k Kind) String() string {
	if k == Unchanged {
		return "unchanged"
	}
	return k.class()
}

// Entry is one semantic report line, produced before any formatting or row
// compression. HasA/HasB record whether the particle exists on that side;
// when false the corresponding value and line render as placeholders.
type Entry struct {
	Kind     Kind
	Name     string
	ID       int
	Property string
	ValueA   any
	ValueB   any
	LineA    int
	LineB    int
	HasA     bool
	HasB     bool
}

// Options are the comparison tunables. Tolerance and Precision are honored
// exactly as given, including zero (a zero tolerance means exact float
// comparison); the command layer supplies the defaults. Order zero keeps
// both lists untouched.
type Options struct {
	Order     pdl.Order
	Tolerance float64
	Precision int
}

// Report holds the built comparison between two particle files.
type Report struct {
	FileA, FileB string
	Entries      []Entry

	tolerance float64
	precision int
}

// Build arranges both particle lists per the ordering policy, aligns them by
// particle id, and walks the resulting opcodes into report entries.
func Build(fileA, fileB string, a, b []pdl.Particle, opts Options) *Report {
	r := &Report{
		FileA:     fileA,
		FileB:     fileB,
		tolerance: opts.Tolerance,
		precision: opts.Precision,
	}

	a, b = opts.Order.Apply(a, b)

	m := align.New(a, b, func(p pdl.Particle) int { return p.ID })
	for _, op := range m.Opcodes() {
		switch op.Op {
		case align.OpEqual:
			r.compare(a[op.I1:op.I2], b[op.J1:op.J2])
		case align.OpDelete:
			r.removed(a[op.I1:op.I2])
		case align.OpInsert:
			r.added(b[op.J1:op.J2])
		case align.OpReplace:
			r.removed(a[op.I1:op.I2])
			r.added(b[op.J1:op.J2])
		}
	}

	return r
}

// compare zips two equal-length runs of id-matched particles. A pair with no
// field differences yields a single unchanged entry carrying both line
// numbers; otherwise one changed entry per differing field.
func (r *Report) compare(a, b []pdl.Particle) {
	for i := range a {
		pa, pb := a[i], b[i]
		diffs := pa.Diff(pb, r.tolerance)
		if len(diffs) == 0 {
			r.Entries = append(r.Entries, Entry{
				Kind: Unchanged, Name: pa.Name, ID: pa.ID,
				LineA: pa.Line, LineB: pb.Line, HasA: true, HasB: true,
			})
			continue
		}
		for _, d := range diffs {
			r.Entries = append(r.Entries, Entry{
				Kind: Changed, Name: pa.Name, ID: pa.ID, Property: d.Field,
				ValueA: d.A, ValueB: d.B,
				LineA: pa.Line, LineB: pb.Line, HasA: true, HasB: true,
			})
		}
	}
}

// removed emits one entry per value-carrying field of each particle that has
// no counterpart in B.
func (r *Report) removed(particles []pdl.Particle) {
	for _, p := range particles {
		for _, prop := range p.Properties() {
			r.Entries = append(r.Entries, Entry{
				Kind: Removed, Name: p.Name, ID: p.ID, Property: prop.Name,
				ValueA: prop.Value, LineA: p.Line, HasA: true,
			})
		}
	}
}

// added mirrors removed for particles only present in B.
func (r *Report) added(particles []pdl.Particle) {
	for _, p := range particles {
		for _, prop := range p.Properties() {
			r.Entries = append(r.Entries, Entry{
				Kind: Added, Name: p.Name, ID: p.ID, Property: prop.Name,
				ValueB: prop.Value, LineB: p.Line, HasB: true,
			})
		}
	}
}

// Cell is one rendered table cell.
type Cell struct {
	Text  string
	Class string
}

// Row is one rendered table row.
type Row struct {
	Kind  Kind
	Class string
	Cells [8]Cell
}

// Headers returns the table column headers, naming both input files.
func (r *Report) Headers() []string {
	return []string{
		"what", "name", "id", "property",
		"value in " + r.FileA, "value in " + r.FileB,
		"line in " + r.FileA, "line in " + r.FileB,
	}
}

// Rows formats the entries into display rows. Floats are rendered with the
// configured significant-digit precision. Consecutive entries for the same
// (name, id) pair keep only their property and value columns so multi-field
// changes group visually under one particle header; the first row of each
// particle carries the "newparticle" row class. Changed rows mark the old
// value cell removed-style and the new value cell added-style.
func (r *Report) Rows() []Row {
	type entity struct {
		name string
		id   int
	}

	var last *entity
	rows := make([]Row, 0, len(r.Entries))
	for _, e := range r.Entries {
		kc := e.Kind.class()

		valueA, lineA := r.formatValue(e.ValueA), strconv.Itoa(e.LineA)
		if !e.HasA {
			valueA, lineA = placeholder, placeholder
		}
		valueB, lineB := r.formatValue(e.ValueB), strconv.Itoa(e.LineB)
		if !e.HasB {
			valueB, lineB = placeholder, placeholder
		}

		cells := [8]Cell{
			{Text: kc, Class: kc},
			{Text: e.Name, Class: kc},
			{Text: strconv.Itoa(e.ID), Class: kc},
			{Text: e.Property, Class: kc},
			{Text: valueA, Class: kc},
			{Text: valueB, Class: kc},
			{Text: lineA, Class: kc},
			{Text: lineB, Class: kc},
		}
		rowClass := "newparticle"

		if last != nil && last.name == e.Name && last.id == e.ID {
			// Continuation row: repeat only the property and value columns.
			for i := range cells {
				switch i {
				case 3, 4, 5:
				default:
					cells[i] = Cell{}
				}
			}
			rowClass = ""
		}

		if e.Kind == Changed {
			cells[4].Class = "removed"
			cells[5].Class = "added"
		}

		rows = append(rows, Row{Kind: e.Kind, Class: rowClass, Cells: cells})
		last = &entity{name: e.Name, id: e.ID}
	}
	return rows
}

// formatValue renders a field value for display. Floats honor the configured
// precision; nil (no value) renders empty.
func (r *Report) formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'g', r.precision, 64)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
