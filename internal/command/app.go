// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/pdldiff/pdldiff/internal/config"
	"github.com/pdldiff/pdldiff/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// allow short if-style local cfg; no actual outer cfg
	cfg, _ := config.Load() //nolint
	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}
	if sd, err := os.Getwd(); err == nil {
		m.StartingDir = sd
	}

	app := &cli.Command{
		Name:      "pdldiff",
		Usage:     "visual diff for particle definition files",
		UsageText: "pdldiff [options] fileA fileB",
		Flags:     diffFlags(m),
		Action:    diffCommandAction,
		Metadata:  map[string]any{"meta": m},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
