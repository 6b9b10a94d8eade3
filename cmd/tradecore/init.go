package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/config"
	"github.com/astralfield/tradecore/logging"
)

type InitCmd struct {
	Home  string `short:"d" long:"home" default:"." description:"Directory holding the tradecore configuration"`
	Force bool   `short:"f" long:"force" description:"Overwrite an existing configuration at the specified path"`
}

var initCmd InitCmd

func (opts *InitCmd) Execute(_ []string) error {
	logger := logging.NewLoggerFromEnv("dev")
	defer logger.AtExit()

	path := filepath.Join(opts.Home, "config.toml")
	if _, err := os.Stat(path); err == nil && !opts.Force {
		return errors.Errorf("configuration already exists at %s, remove it first or re-run using -f", path)
	}

	cfg := config.NewDefaultConfig()
	if err := config.Write(opts.Home, &cfg); err != nil {
		return errors.Wrap(err, "could not save configuration file")
	}

	logger.Info("configuration generated successfully", logging.String("path", path))
	return nil
}

func Init(ctx context.Context, parser *flags.Parser) error {
	initCmd = InitCmd{}

	short := "Initializes a tradecore node"
	long := "Generate the minimal configuration required for a tradecore node to start"

	_, err := parser.AddCommand("init", short, long, &initCmd)
	return err
}
