// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the pdldiff command-line surface: app construction,
// flags and their value sources, flag validation, and the diff action that
// drives parsing, alignment, report building and rendering.
package command
