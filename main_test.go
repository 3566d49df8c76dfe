// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{
			name: "no args",
			args: []string{"pdldiff"},
			want: false,
		},
		{
			name: "long flag",
			args: []string{"pdldiff", "--version"},
			want: true,
		},
		{
			name: "short flag",
			args: []string{"pdldiff", "-v"},
			want: true,
		},
		{
			name: "flag after positionals",
			args: []string{"pdldiff", "a.pdl", "b.pdl", "--version"},
			want: true,
		},
		{
			name: "normal run",
			args: []string{"pdldiff", "a.pdl", "b.pdl"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleVersion(tt.args); got != tt.want {
				t.Errorf("handleVersion(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestHandleNakedRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "bare invocation gets help",
			args:     []string{"pdldiff"},
			expected: []string{"pdldiff", "--help"},
		},
		{
			name:     "empty args get help",
			args:     []string{},
			expected: []string{"--help"},
		},
		{
			name:     "args preserved",
			args:     []string{"pdldiff", "a.pdl", "b.pdl"},
			expected: []string{"pdldiff", "a.pdl", "b.pdl"},
		},
		{
			name:     "single flag preserved",
			args:     []string{"pdldiff", "--help"},
			expected: []string{"pdldiff", "--help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedRun(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedRun(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}
