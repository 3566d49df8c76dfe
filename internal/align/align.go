// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package align

import "sort"

// Op classifies one opcode span pair.
type Op int

const (
	OpEqual   Op = iota // a[I1:I2] and b[J1:J2] match one-for-one in order
	OpReplace           // a[I1:I2] was replaced by b[J1:J2]
	OpDelete            // a[I1:I2] has no counterpart in b
	OpInsert            // b[J1:J2] has no counterpart in a
)

func (op Op) String() string {
	switch op {
	case OpEqual:
		return "equal"
	case OpReplace:
		return "replace"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	}
	return "unknown"
}

// Opcode describes how a[I1:I2] relates to b[J1:J2]. For OpDelete J1 == J2,
// for OpInsert I1 == I2.
type Opcode struct {
	Op     Op
	I1, I2 int
	J1, J2 int
}

// Match is a maximal run of pairwise-matching elements: a[A:A+Size] matches
// b[B:B+Size] element by element.
type Match struct {
	A, B, Size int
}

// Matcher aligns two sequences by recursively picking the longest matching
// block (Ratcliff-Obershelp). All elements take part in matching; there is no
// junk notion.
type Matcher[T any, K comparable] struct {
	a, b []T
	key  func(T) K
	b2j  map[K][]int
}

// New returns a Matcher for a and b. Two elements are considered equal for
// matching purposes iff key returns the same value for both.
func New[T any, K comparable](a, b []T, key func(T) K) *Matcher[T, K] {
	m := &Matcher[T, K]{a: a, b: b, key: key, b2j: make(map[K][]int)}
	for j, el := range b {
		k := key(el)
		m.b2j[k] = append(m.b2j[k], j)
	}
	return m
}

// longestMatch finds the longest block matching in a[alo:ahi] and b[blo:bhi].
// Ties resolve to the block starting earliest in a, then earliest in b.
func (m *Matcher[T, K]) longestMatch(alo, ahi, blo, bhi int) Match {
	best := Match{A: alo, B: blo}
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := map[int]int{}
		for _, j := range m.b2j[m.key(m.a[i])] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > best.Size {
				best = Match{A: i - k + 1, B: j - k + 1, Size: k}
			}
		}
		j2len = newj2len
	}
	return best
}

// MatchingBlocks returns all maximal matching blocks, sorted by position and
// merged when adjacent, terminated by a zero-length sentinel at
// (len(a), len(b)). Blocks are non-overlapping and preserve the relative
// order of both inputs.
func (m *Matcher[T, K]) MatchingBlocks() []Match {
	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(m.a), 0, len(m.b)}}
	var blocks []Match
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		mt := m.longestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if mt.Size == 0 {
			continue
		}
		blocks = append(blocks, mt)
		if s.alo < mt.A && s.blo < mt.B {
			queue = append(queue, span{s.alo, mt.A, s.blo, mt.B})
		}
		if mt.A+mt.Size < s.ahi && mt.B+mt.Size < s.bhi {
			queue = append(queue, span{mt.A + mt.Size, s.ahi, mt.B + mt.Size, s.bhi})
		}
	}
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].A != blocks[j].A {
			return blocks[i].A < blocks[j].A
		}
		return blocks[i].B < blocks[j].B
	})

	// Collapse blocks that abut in both sequences into one.
	var merged []Match
	for _, bl := range blocks {
		if n := len(merged); n > 0 &&
			merged[n-1].A+merged[n-1].Size == bl.A &&
			merged[n-1].B+merged[n-1].Size == bl.B {
			merged[n-1].Size += bl.Size
			continue
		}
		merged = append(merged, bl)
	}

	return append(merged, Match{A: len(m.a), B: len(m.b)})
}

// Opcodes classifies the full extent of both sequences as an ordered list of
// equal/replace/delete/insert spans. Concatenating the a-side spans of equal,
// replace and delete opcodes reconstructs a; the b-side spans of equal,
// replace and insert opcodes reconstruct b.
func (m *Matcher[T, K]) Opcodes() []Opcode {
	var ops []Opcode
	i, j := 0, 0
	for _, bl := range m.MatchingBlocks() {
		gap := Opcode{I1: i, I2: bl.A, J1: j, J2: bl.B}
		switch {
		case i < bl.A && j < bl.B:
			gap.Op = OpReplace
		case i < bl.A:
			gap.Op = OpDelete
		case j < bl.B:
			gap.Op = OpInsert
		}
		if gap.I1 < gap.I2 || gap.J1 < gap.J2 {
			ops = append(ops, gap)
		}
		i, j = bl.A+bl.Size, bl.B+bl.Size
		if bl.Size > 0 {
			ops = append(ops, Opcode{Op: OpEqual, I1: bl.A, I2: i, J1: bl.B, J2: j})
		}
	}
	return ops
}
