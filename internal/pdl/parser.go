// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pdl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// marker holds the three tokens that open every particle definition line.
var marker = [3]string{"add", "p", "Particle"}

// terminator ends parsing when it appears as a line's first token.
const terminator = "end"

// commentPrefix marks a comment line.
const commentPrefix = "*"

// Warning describes an input line that was skipped because it did not carry
// the expected marker tokens. Skipped lines are not fatal; the caller decides
// how to surface them.
type Warning struct {
	Line int
	Text string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d starts with unexpected token: %s", w.Line, w.Text)
}

// ParseFile reads a PDL file and returns its particles in file order, each
// tagged with its zero-based source line. Lines with a bad marker are skipped
// and reported as warnings; a malformed field value aborts parsing with an
// error naming the line.
func ParseFile(path string) ([]Particle, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return parse(f)
}

// parse consumes r line by line until EOF or the terminator keyword.
func parse(r io.Reader) ([]Particle, []Warning, error) {
	var particles []Particle
	var warnings []Warning

	scanner := bufio.NewScanner(r)
	nr := -1
	for scanner.Scan() {
		nr++
		line := scanner.Text()
		if strings.HasPrefix(line, commentPrefix) || strings.TrimSpace(line) == "" {
			continue
		}

		tokens := strings.Fields(line)
		if tokens[0] == terminator {
			break
		}
		if len(tokens) < len(marker) ||
			tokens[0] != marker[0] || tokens[1] != marker[1] || tokens[2] != marker[2] {
			warnings = append(warnings, Warning{Line: nr, Text: line})
			continue
		}

		p, err := parseParticle(tokens[len(marker):], nr)
		if err != nil {
			return nil, warnings, fmt.Errorf("line %d: %w", nr, err)
		}
		particles = append(particles, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, err
	}

	return particles, warnings, nil
}

// parseParticle converts the positional tokens following the marker into a
// typed Particle. The format is control-generated, so conversion failures are
// treated as fatal rather than recovered from.
func parseParticle(tokens []string, line int) (Particle, error) {
	if len(tokens) != len(fieldNames) {
		return Particle{}, fmt.Errorf("expected %d fields after marker, got %d", len(fieldNames), len(tokens))
	}

	var err error
	atoi := func(field, s string) int {
		if err != nil {
			return 0
		}
		v, cerr := strconv.Atoi(s)
		if cerr != nil {
			err = fmt.Errorf("field %s: %w", field, cerr)
		}
		return v
	}
	atof := func(field, s string) float64 {
		if err != nil {
			return 0
		}
		v, cerr := strconv.ParseFloat(s, 64)
		if cerr != nil {
			err = fmt.Errorf("field %s: %w", field, cerr)
		}
		return v
	}

	p := Particle{
		Name:      tokens[0],
		ID:        atoi("id", tokens[1]),
		Mass:      atof("mass", tokens[2]),
		Width:     atof("width", tokens[3]),
		MaxDeltaM: atof("max_dM", tokens[4]),
		Charge:    atoi("charge", tokens[5]),
		Spin:      atoi("spin", tokens[6]),
		Lifetime:  atof("lifetime", tokens[7]),
		PythiaID:  atoi("pythiaId", tokens[8]),
		Line:      line,
	}
	if err != nil {
		return Particle{}, err
	}
	return p, nil
}
