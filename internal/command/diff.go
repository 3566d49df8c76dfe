// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/pdldiff/pdldiff/internal/filters"
	"github.com/pdldiff/pdldiff/internal/log"
	"github.com/pdldiff/pdldiff/internal/pdl"
	"github.com/pdldiff/pdldiff/internal/report"
)

// diffCommandAction is the action handler for the pdldiff command. It reads
// both input files, builds the comparison report and writes it in the
// requested format.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() != 2 {
		return fmt.Errorf("expected two input files, got %d (usage: pdldiff [options] fileA fileB)", args.Len())
	}
	fileA, fileB := args.Get(0), args.Get(1)

	// Validate the ordering choice up front so a bad value fails before any
	// parsing work is done.
	order, err := pdl.ParseOrder(cmd.String("sort"))
	if err != nil {
		return err
	}

	a, err := loadFile(fileA)
	if err != nil {
		return err
	}
	b, err := loadFile(fileB)
	if err != nil {
		return err
	}

	rep := report.Build(fileA, fileB, a, b, report.Options{
		Order:     order,
		Tolerance: cmd.Float("tolerance"),
		Precision: cmd.Int("precision"),
	})

	if spec := cmd.String("filter"); spec != "" {
		rep.Entries = filters.Apply(rep.Entries, spec)
		log.Debugf("entries after filtering: %d", len(rep.Entries))
	}

	switch cmd.String("format") {
	case "text":
		return writeText(rep, cmd)
	default:
		return writeHTML(ctx, rep, cmd)
	}
}

// loadFile parses one PDL file, logging a warning for every skipped line and
// an info summary for the file.
func loadFile(path string) ([]pdl.Particle, error) {
	particles, warnings, err := pdl.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, w := range warnings {
		log.Warnf("%s: %s", path, w)
	}

	if fi, serr := os.Stat(path); serr == nil {
		log.Infof("parsed %s: %d particles (%s)", path, len(particles), humanize.Bytes(uint64(fi.Size())))
	}

	return particles, nil
}

// writeHTML writes the report document to the configured output path and
// optionally hands it to a viewer.
func writeHTML(ctx context.Context, rep *report.Report, cmd *cli.Command) error {
	path := cmd.String("output")

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := rep.WriteHTML(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Infof("wrote %s", path)

	if cmd.Bool("open") {
		openInViewer(ctx, path)
	}

	return nil
}

// writeText renders the report as a terminal table, to stdout unless an
// output file was explicitly requested.
func writeText(rep *report.Report, cmd *cli.Command) error {
	opts := report.TableOptions{
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
	}

	if cmd.IsSet("output") {
		path := cmd.String("output")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := rep.WriteTable(f, opts); err != nil {
			f.Close()
			return fmt.Errorf("failed to write report: %w", err)
		}
		return f.Close()
	}

	return rep.WriteTable(os.Stdout, opts)
}

// openInViewer hands the written report to the platform opener. Failure to
// open is not fatal; the report is already on disk.
func openInViewer(ctx context.Context, path string) {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.CommandContext(ctx, "open", path)
	case "windows":
		c = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", path)
	default:
		c = exec.CommandContext(ctx, "xdg-open", path)
	}
	if err := c.Start(); err != nil {
		log.Warnf("failed to open %s: %v", path, err)
	}
}
