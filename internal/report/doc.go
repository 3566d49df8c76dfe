// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report builds the comparison report for two particle lists and
// renders it. Building happens in two phases: the aligner's opcodes are
// walked into semantic entries (unchanged/changed/added/removed), and the
// entries are then formatted into display rows with numeric precision
// applied and repeated name/id columns compressed away. Renderers exist for
// a self-contained HTML document and for a terminal table.
package report
