// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdldiff/pdldiff/internal/pdl"
)

func TestWriteTable(t *testing.T) {
	pa := pion(4)
	pb := pion(7)
	pb.Mass = 0.1400

	r := build([]pdl.Particle{pa}, []pdl.Particle{pb}, Options{Order: pdl.OrderName, Tolerance: 1e-5, Precision: 5})

	var buf bytes.Buffer
	require.NoError(t, r.WriteTable(&buf, TableOptions{}))
	out := buf.String()

	assert.Contains(t, out, "pi+")
	assert.Contains(t, out, "mass")
	assert.Contains(t, out, "0.1396")
	assert.Contains(t, out, "0.14")
	// Without --titles there is no header row.
	assert.NotContains(t, out, "value in a.pdl")
}

func TestWriteTableTitles(t *testing.T) {
	r := build([]pdl.Particle{pion(0)}, []pdl.Particle{pion(0)}, Options{Order: pdl.OrderName, Tolerance: 1e-5})

	var buf bytes.Buffer
	require.NoError(t, r.WriteTable(&buf, TableOptions{Titles: true}))
	out := buf.String()

	assert.Contains(t, out, "value in a.pdl")
	assert.Contains(t, out, "line in b.pdl")
}

func TestWriteTableEmpty(t *testing.T) {
	r := build(nil, nil, Options{})

	var buf bytes.Buffer
	require.NoError(t, r.WriteTable(&buf, TableOptions{Titles: true}))
	assert.Empty(t, buf.String())
}

// failingWriter rejects every write, standing in for a full disk or a closed
// pipe.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("no space left on device")
}

func TestWriteTableWriteError(t *testing.T) {
	r := build([]pdl.Particle{pion(0)}, []pdl.Particle{pion(0)}, Options{Order: pdl.OrderName, Tolerance: 1e-5})

	err := r.WriteTable(failingWriter{}, TableOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no space left on device")
}
