// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pdl

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Order selects how both particle lists are arranged before alignment.
type Order string

const (
	OrderName Order = "name" // sort both lists by particle name
	OrderID   Order = "id"   // sort both lists by particle id
	OrderA    Order = "a"    // keep A's order, reconcile B to it
	OrderB    Order = "b"    // keep B's order, reconcile A to it
)

// orderChoices lists the accepted ordering values for error messages.
var orderChoices = []string{"name", "id", "a", "b"}

// ParseOrder normalizes and validates an ordering choice. The match is
// case-insensitive.
func ParseOrder(s string) (Order, error) {
	o := Order(strings.ToLower(s))
	switch o {
	case OrderName, OrderID, OrderA, OrderB:
		return o, nil
	}
	return "", fmt.Errorf("unknown sort order %q, choose one of %s", s, strings.Join(orderChoices, ", "))
}

// Apply returns both lists arranged according to the ordering policy. The
// input slices are not modified.
func (o Order) Apply(a, b []Particle) ([]Particle, []Particle) {
	a, b = slices.Clone(a), slices.Clone(b)
	switch o {
	case OrderName:
		byName := func(x, y Particle) int { return strings.Compare(x.Name, y.Name) }
		slices.SortStableFunc(a, byName)
		slices.SortStableFunc(b, byName)
	case OrderID:
		byID := func(x, y Particle) int { return cmp.Compare(x.ID, y.ID) }
		slices.SortStableFunc(a, byID)
		slices.SortStableFunc(b, byID)
	case OrderA:
		b = reconcile(a, b)
	case OrderB:
		a = reconcile(b, a)
	}
	return a, b
}

// reconcile reorders other so that particles whose ids appear in ref come in
// ref's order, with the leftovers appended sorted by their original line
// number. Duplicate ids within one file are out of scope; the last occurrence
// wins.
func reconcile(ref, other []Particle) []Particle {
	index := make(map[int]Particle, len(other))
	for _, p := range other {
		index[p.ID] = p
	}

	out := make([]Particle, 0, len(other))
	for _, r := range ref {
		if p, ok := index[r.ID]; ok {
			out = append(out, p)
			delete(index, r.ID)
		}
	}

	rest := make([]Particle, 0, len(index))
	for _, p := range index {
		rest = append(rest, p)
	}
	slices.SortFunc(rest, func(x, y Particle) int { return cmp.Compare(x.Line, y.Line) })

	return append(out, rest...)
}
