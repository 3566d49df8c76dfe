// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fileAContent = `* masses in GeV
add p Particle pi+ 211 1.3957000e-01 0.0 0.0 3 0 2.6033000e-08 211
add p Particle K+ 321 4.9368000e-01 0.0 0.0 3 0 1.2380000e-08 321
`

const fileBContent = `* masses in GeV
add p Particle pi+ 211 1.4000000e-01 0.0 0.0 3 0 2.6033000e-08 211
add p Particle mu- 13 1.0566000e-01 0.0 0.0 -3 1 2.1970000e-06 13
`

// writeInputs drops the two sample files into a temp dir and points the
// config lookup away from any real user config.
func writeInputs(t *testing.T) (fileA, fileB string) {
	t.Helper()
	t.Setenv("PDLDIFF_CFG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	dir := t.TempDir()
	fileA = filepath.Join(dir, "a.pdl")
	fileB = filepath.Join(dir, "b.pdl")
	require.NoError(t, os.WriteFile(fileA, []byte(fileAContent), 0o644))
	require.NoError(t, os.WriteFile(fileB, []byte(fileBContent), 0o644))
	return fileA, fileB
}

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	ctx := context.Background()
	argv := append([]string{"pdldiff"}, args...)
	app, err := InitApp(ctx, argv)
	require.NoError(t, err)
	return app.Run(ctx, argv)
}

func TestDiffWritesHTMLReport(t *testing.T) {
	fileA, fileB := writeInputs(t)
	out := filepath.Join(t.TempDir(), "report.html")

	require.NoError(t, runApp(t, "--output", out, fileA, fileB))

	doc, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<title>Differences between "+fileA+" and "+fileB+"</title>")
	assert.Contains(t, string(doc), `<td class="removed">0.1396</td>`)
	assert.Contains(t, string(doc), `<td class="added">0.14</td>`)
	// K+ is only in file A, mu- only in file B.
	assert.Contains(t, string(doc), "K+")
	assert.Contains(t, string(doc), "mu-")
}

func TestDiffWritesTextReport(t *testing.T) {
	fileA, fileB := writeInputs(t)
	out := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, runApp(t, "--format", "text", "--titles", "--output", out, fileA, fileB))

	txt, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(txt), "mass")
	assert.Contains(t, string(txt), "0.1396")
	assert.Contains(t, string(txt), "value in "+fileA)
}

func TestDiffFilter(t *testing.T) {
	fileA, fileB := writeInputs(t)
	out := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, runApp(t, "--format", "text", "--filter", "kind=changed", "--output", out, fileA, fileB))

	txt, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(txt), "pi+")
	assert.NotContains(t, string(txt), "mu-")
}

func TestDiffArgumentErrors(t *testing.T) {
	fileA, fileB := writeInputs(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing inputs",
			args:    []string{fileA},
			wantErr: "expected two input files",
		},
		{
			name:    "invalid sort",
			args:    []string{"--sort", "mass", fileA, fileB},
			wantErr: "unknown sort order",
		},
		{
			name:    "invalid format",
			args:    []string{"--format", "json", fileA, fileB},
			wantErr: "must be one of",
		},
		{
			name:    "unreadable input",
			args:    []string{fileA, filepath.Join(t.TempDir(), "nope.pdl")},
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runApp(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDiffZeroTolerance(t *testing.T) {
	t.Setenv("PDLDIFF_CFG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.pdl")
	fileB := filepath.Join(dir, "b.pdl")
	require.NoError(t, os.WriteFile(fileA, []byte("add p Particle pi+ 211 1.3957000e-01 0.0 0.0 3 0 2.6033000e-08 211\n"), 0o644))
	require.NoError(t, os.WriteFile(fileB, []byte("add p Particle pi+ 211 1.3957010e-01 0.0 0.0 3 0 2.6033000e-08 211\n"), 0o644))

	render := func(extra ...string) string {
		out := filepath.Join(t.TempDir(), "report.txt")
		args := append([]string{"--format", "text", "--filter", "kind=changed", "--output", out}, extra...)
		require.NoError(t, runApp(t, append(args, fileA, fileB)...))
		txt, err := os.ReadFile(out)
		require.NoError(t, err)
		return string(txt)
	}

	// The delta is below the stock tolerance, so nothing changes by default.
	assert.NotContains(t, render(), "mass")

	// An explicit zero tolerance compares floats exactly and must report it.
	assert.Contains(t, render("--tolerance", "0"), "mass")
}

func TestDiffSortFromEnv(t *testing.T) {
	fileA, fileB := writeInputs(t)
	out := filepath.Join(t.TempDir(), "report.html")

	t.Setenv("PDLDIFF_SORT", "bogus")
	err := runApp(t, "--output", out, fileA, fileB)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort order")
}
