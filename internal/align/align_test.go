// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runeKey matches runes by themselves, the simplest possible key.
func runeKey(r rune) rune { return r }

func TestOpcodes(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want []Opcode
	}{
		{
			name: "identical",
			a:    "abc",
			b:    "abc",
			want: []Opcode{
				{OpEqual, 0, 3, 0, 3},
			},
		},
		{
			name: "empty both",
			a:    "",
			b:    "",
			want: nil,
		},
		{
			name: "all deleted",
			a:    "abc",
			b:    "",
			want: []Opcode{
				{OpDelete, 0, 3, 0, 0},
			},
		},
		{
			name: "all inserted",
			a:    "",
			b:    "abc",
			want: []Opcode{
				{OpInsert, 0, 0, 0, 3},
			},
		},
		{
			name: "classic mixed diff",
			a:    "qabxcd",
			b:    "abycdf",
			want: []Opcode{
				{OpDelete, 0, 1, 0, 0},
				{OpEqual, 1, 3, 0, 2},
				{OpReplace, 3, 4, 2, 3},
				{OpEqual, 4, 6, 3, 5},
				{OpInsert, 6, 6, 5, 6},
			},
		},
		{
			name: "insertion in the middle",
			a:    "abcd",
			b:    "abxcd",
			want: []Opcode{
				{OpEqual, 0, 2, 0, 2},
				{OpInsert, 2, 2, 2, 3},
				{OpEqual, 2, 4, 3, 5},
			},
		},
		{
			name: "no common elements",
			a:    "abc",
			b:    "xyz",
			want: []Opcode{
				{OpReplace, 0, 3, 0, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New([]rune(tt.a), []rune(tt.b), runeKey)
			assert.Equal(t, tt.want, m.Opcodes())
		})
	}
}

// TestOpcodesCoverage verifies the coverage law: reading the a-side spans of
// equal/replace/delete opcodes reconstructs a, and the b-side spans of
// equal/replace/insert opcodes reconstruct b, in order.
func TestOpcodesCoverage(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"identical", "hello", "hello"},
		{"disjoint", "aaaa", "bbbb"},
		{"interleaved", "axbxcx", "xaxbxc"},
		{"repeats", "aabbaabb", "bbaabbaa"},
		{"prefix", "abcdef", "abc"},
		{"suffix", "def", "abcdef"},
		{"empty a", "", "xyz"},
		{"empty b", "xyz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := []rune(tt.a), []rune(tt.b)
			m := New(a, b, runeKey)

			var gotA, gotB []rune
			lastI, lastJ := 0, 0
			for _, op := range m.Opcodes() {
				// Spans must be contiguous and ordered.
				require.Equal(t, lastI, op.I1)
				require.Equal(t, lastJ, op.J1)
				lastI, lastJ = op.I2, op.J2

				if op.Op != OpInsert {
					gotA = append(gotA, a[op.I1:op.I2]...)
				}
				if op.Op != OpDelete {
					gotB = append(gotB, b[op.J1:op.J2]...)
				}
			}
			assert.Equal(t, lastI, len(a))
			assert.Equal(t, lastJ, len(b))
			assert.Equal(t, tt.a, string(gotA))
			assert.Equal(t, tt.b, string(gotB))
		})
	}
}

func TestMatchingBlocks(t *testing.T) {
	m := New([]rune("abxcd"), []rune("abcd"), runeKey)
	got := m.MatchingBlocks()

	// "ab" and "cd" blocks plus the sentinel.
	assert.Equal(t, []Match{
		{A: 0, B: 0, Size: 2},
		{A: 3, B: 2, Size: 2},
		{A: 5, B: 4, Size: 0},
	}, got)
}

func TestMatchingBlocksMergesAdjacent(t *testing.T) {
	// One contiguous match must come back as a single block even though the
	// recursion may discover it piecewise.
	m := New([]rune("abcdef"), []rune("abcdef"), runeKey)
	got := m.MatchingBlocks()
	assert.Equal(t, []Match{
		{A: 0, B: 0, Size: 6},
		{A: 6, B: 6, Size: 0},
	}, got)
}

func TestKeyedMatching(t *testing.T) {
	// Elements that differ are still matched when their keys agree.
	type rec struct {
		id   int
		mass float64
	}
	a := []rec{{1, 1.0}, {2, 2.0}}
	b := []rec{{1, 1.5}, {2, 2.0}}

	m := New(a, b, func(r rec) int { return r.id })
	assert.Equal(t, []Opcode{{OpEqual, 0, 2, 0, 2}}, m.Opcodes())
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "equal", OpEqual.String())
	assert.Equal(t, "replace", OpReplace.String())
	assert.Equal(t, "delete", OpDelete.String())
	assert.Equal(t, "insert", OpInsert.String())
	assert.Equal(t, "unknown", Op(99).String())
}
