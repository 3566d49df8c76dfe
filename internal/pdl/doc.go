// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package pdl reads particle-definition (PDL) files and models their records.
// A PDL file is line oriented: comment lines start with '*', blank lines are
// ignored, data lines carry the marker "add p Particle" followed by nine
// positional fields, and a line whose first token is "end" terminates the
// file. The package also provides the ordering policies applied to two
// particle lists before they are aligned for comparison.
package pdl
