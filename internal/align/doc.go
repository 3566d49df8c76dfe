// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package align provides a generic longest-matching-block sequence aligner.
// Elements are matched by a caller-supplied key, so two elements land in the
// same slot whenever their keys are equal even if they differ otherwise. The
// output is a classified opcode list in the style of line-oriented diff
// tools: equal/replace/delete/insert spans that cover both inputs exactly
// and in order.
package align
