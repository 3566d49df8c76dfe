// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows a built report to the entries a user cares about.
// A filter spec is a comma-separated list of key/operator/value terms over
// the entry fields kind, name, id and property, e.g.
// "kind=changed,name~pi". Filters are applied to the semantic entries before
// row compression so grouped rows stay consistent after filtering.
package filters
