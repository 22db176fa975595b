// Package main provides the pandigital command-line checker.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/pandigital/cmd/pandigital/commands"
	"github.com/dmitrymomot/pandigital/pkg/logger"
	"github.com/dmitrymomot/pandigital/pkg/pandigital"
)

func main() {
	settings, err := commands.LoadSettings()
	if err != nil {
		slog.Error("application error", logger.Error(err))
		os.Exit(1)
	}

	log, err := commands.NewLogger(settings, os.Stderr)
	if err != nil {
		slog.Error("application error", logger.Error(err))
		os.Exit(1)
	}

	cmd := &cli.Command{
		Name:    "pandigital",
		Usage:   "Check whether digit strings are pandigital",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Check values given as arguments, or one per line on stdin",
				ArgsUsage: "[values...]",
				Flags: append(configFlags(settings),
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Value:   settings.Workers,
						Usage:   "Number of goroutines used to check values",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Explain why a value is not pandigital",
					},
					formatFlag(),
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCheck(
						ctx,
						log,
						commands.DefaultIO(),
						cmd.Args().Slice(),
						commands.CheckOptions{
							Config:  configFromFlags(cmd),
							Workers: cmd.Int("workers"),
							Verbose: cmd.Bool("verbose"),
							Format:  cmd.String("format"),
						},
					)
				},
			},
			{
				Name:  "describe",
				Usage: "Print the alphabet, minimum length and pattern for a configuration",
				Flags: append(configFlags(settings), formatFlag()),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunDescribe(log, os.Stdout, configFromFlags(cmd), cmd.String("format"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, commands.ErrNotPandigital) {
			log.Error("application error", logger.Error(err))
		}
		os.Exit(1)
	}
}

func configFlags(s commands.Settings) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "base",
			Aliases: []string{"b"},
			Value:   s.Pandigital.Base,
			Usage:   "Numbering base: 1 through 10, or 16",
		},
		&cli.BoolFlag{
			Name:    "unique",
			Aliases: []string{"u"},
			Value:   s.Pandigital.Unique,
			Usage:   "Forbid repeated digits",
		},
		&cli.BoolFlag{
			Name:    "require-zero",
			Aliases: []string{"z"},
			Value:   s.Pandigital.RequireZero,
			Usage:   "Require the zero digit; disable with --require-zero=false",
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func configFromFlags(cmd *cli.Command) pandigital.Config {
	return pandigital.Config{
		Base:        cmd.Int("base"),
		Unique:      cmd.Bool("unique"),
		RequireZero: cmd.Bool("require-zero"),
	}
}
