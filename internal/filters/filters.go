// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"strconv"
	"strings"

	"github.com/pdldiff/pdldiff/internal/log"
	"github.com/pdldiff/pdldiff/internal/report"
)

// Filter is one parsed filter term.
type Filter struct {
	Key     string
	Operand string
	Value   string
	Negate  bool
}

// BuildFilters parses a comma-separated filter spec into Filter values.
// Supported operators are "=" (equals), "!=" (not equals) and "~" (contains).
// Terms that carry no operator are ignored.
func BuildFilters(spec string) []Filter {
	var list []Filter
	for term := range strings.SplitSeq(spec, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		switch {
		case strings.Contains(term, "!="):
			k, v, _ := strings.Cut(term, "!=")
			list = append(list, Filter{Key: k, Operand: "=", Value: v, Negate: true})
		case strings.Contains(term, "~"):
			k, v, _ := strings.Cut(term, "~")
			list = append(list, Filter{Key: k, Operand: "~", Value: v})
		case strings.Contains(term, "="):
			k, v, _ := strings.Cut(term, "=")
			list = append(list, Filter{Key: k, Operand: "=", Value: v})
		default:
			log.Warnf("ignoring filter term without operator: %s", term)
		}
	}
	return list
}

// Apply returns the entries matching every term of the given spec. An empty
// spec keeps everything.
func Apply(entries []report.Entry, spec string) []report.Entry {
	list := BuildFilters(spec)
	if len(list) == 0 {
		return entries
	}

	out := make([]report.Entry, 0, len(entries))
	for _, e := range entries {
		if matches(e, list) {
			out = append(out, e)
		}
	}
	return out
}

// matches reports whether the entry satisfies all filters.
func matches(e report.Entry, list []Filter) bool {
	for _, f := range list {
		v := keyValue(e, f.Key)

		var ok bool
		switch f.Operand {
		case "~":
			ok = strings.Contains(v, f.Value)
		default:
			ok = v == f.Value
		}
		if f.Negate {
			ok = !ok
		}
		if !ok {
			return false
		}
	}
	return true
}

// keyValue extracts the filterable string value of an entry field. Unknown
// keys yield the empty string and thus never match an equality term.
func keyValue(e report.Entry, key string) string {
	switch key {
	case "kind":
		return e.Kind.String()
	case "name":
		return e.Name
	case "id":
		return strconv.Itoa(e.ID)
	case "property":
		return e.Property
	}
	return ""
}
