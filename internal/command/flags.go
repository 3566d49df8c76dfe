// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/pdldiff/pdldiff/internal/meta"
	"github.com/pdldiff/pdldiff/internal/report"
)

// DefaultOutput is the report filename used when --output is not given.
const DefaultOutput = "pdldiff.html"

// diffFlags constructs the flag set for the diff command. String flags pick
// up defaults from PDLDIFF_* env vars and, when a config file is present,
// from its "diff.<name>" or "<name>" keys.
func diffFlags(m meta.Meta) []cli.Flag {
	return []cli.Flag{
		newSourcedStringFlag(m, &cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "row order: name, id, a (file A's order) or b (file B's order)",
			Value:   "name",
			Validator: func(value string) error {
				return FlagValidators(value, SortValidator)
			},
		}),
		&cli.FloatFlag{
			Name:  "tolerance",
			Usage: "relative and absolute comparison tolerance for float values",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PDLDIFF_TOLERANCE"),
			),
			Value: report.DefaultTolerance,
		},
		&cli.IntFlag{
			Name:  "precision",
			Usage: "maximum precision for floating point values in the table",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PDLDIFF_PRECISION"),
			),
			Value: report.DefaultPrecision,
		},
		newSourcedStringFlag(m, &cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "name of the output file",
			Value:   DefaultOutput,
		}),
		newSourcedStringFlag(m, &cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "report format",
			Value:   "html",
			Validator: func(value string) error {
				return FlagValidators(value, FormatValidator)
			},
		}),
		&cli.StringFlag{
			Name:  "filter",
			Usage: "comma-separated list of filters to apply to report rows (e.g. kind=changed,name~pi)",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show column titles with text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:        "open",
			Usage:       "open the report in a viewer after writing",
			HideDefault: true,
		},
	}
}

// newSourcedStringFlag layers the flag's default value sources: explicit
// flag, then the PDLDIFF_<NAME> env var, then the config file keys.
func newSourcedStringFlag(m meta.Meta, flag *cli.StringFlag) *cli.StringFlag {
	flag.Sources = cli.NewValueSourceChain(
		cli.EnvVar("PDLDIFF_" + strings.ToUpper(flag.Name)),
	)
	if m.Config.Source != "" {
		flag = NameSpacedValueChainFlagFromConfigFile("diff", m.Config.Source, flag)
	}
	return flag
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
