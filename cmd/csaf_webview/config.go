// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/csaf-poc/csaf_webview/internal/filter"
	"github.com/csaf-poc/csaf_webview/internal/options"
)

// outputFormat selects how converted advisories are written.
type outputFormat string

const (
	formatJSON    outputFormat = "json"
	formatCSV     outputFormat = "csv"
	formatSummary outputFormat = "summary"
)

type config struct {
	Format        outputFormat     `short:"f" long:"format" choice:"json" choice:"csv" choice:"summary" description:"Output FORMAT of the conversion" value-name:"FORMAT" toml:"format"`
	Output        string           `short:"o" long:"output" description:"FILE to write the output to (defaults to stdout)" value-name:"FILE" toml:"output"`
	Cache         string           `long:"cache" description:"FILE to cache view models" value-name:"FILE" toml:"cache"`
	IgnorePattern []string         `short:"i" long:"ignorepattern" description:"Dont convert files if their names match any of the given PATTERNs" value-name:"PATTERN" toml:"ignorepattern"`
	LogLevel      options.LogLevel `long:"loglevel" description:"LEVEL of logging details" value-name:"LEVEL" toml:"loglevel"`
	Version       bool             `long:"version" description:"Display version of the binary" toml:"-"`

	Config string `short:"c" long:"config" description:"Path to config TOML file" value-name:"TOML-FILE" toml:"-"`

	ignorePattern filter.PatternMatcher
}

// configPaths are the potential file locations of the config file.
var configPaths = []string{
	"~/.config/csaf/webview.toml",
	"~/.csaf_webview.toml",
	"csaf_webview.toml",
}

// parseArgsConfig parses the command line and if needed a config file.
func parseArgsConfig() ([]string, *config, error) {
	p := options.Parser[config]{
		DefaultConfigLocations: configPaths,
		ConfigLocation:         func(cfg *config) string { return cfg.Config },
		Usage:                  "[OPTIONS] advisory.json...",
		HasVersion:             func(cfg *config) bool { return cfg.Version },
		SetDefaults: func(cfg *config) {
			cfg.Format = formatJSON
		},
		// Re-establish default values if not set.
		EnsureDefaults: func(cfg *config) {
			if cfg.Format == "" {
				cfg.Format = formatJSON
			}
		},
	}
	return p.Parse()
}

// ignoreFile returns true if the given file should not be converted.
func (cfg *config) ignoreFile(name string) bool {
	return cfg.ignorePattern.Matches(name)
}

// compileIgnorePatterns compiles the configured patterns to be ignored.
func (cfg *config) compileIgnorePatterns() error {
	pm, err := filter.NewPatternMatcher(cfg.IgnorePattern)
	if err != nil {
		return err
	}
	cfg.ignorePattern = pm
	return nil
}

// prepareLogging sets up the structured logger.
func (cfg *config) prepareLogging() {
	ho := slog.HandlerOptions{Level: cfg.LogLevel.Level}
	handler := slog.NewTextHandler(os.Stderr, &ho)
	slog.SetDefault(slog.New(handler))
}

// prepare prepares internal state of a loaded configuration.
func (cfg *config) prepare() error {
	cfg.prepareLogging()
	if err := cfg.compileIgnorePatterns(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
