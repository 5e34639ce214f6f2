// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

// Package main implements the csaf_webview tool. It converts CSAF
// advisories into their flattened view models and writes them as
// JSON, advisory summaries or the product/vulnerability cross
// table as CSV.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/csaf-poc/csaf_webview/client"
	"github.com/csaf-poc/csaf_webview/csaf"
	"github.com/csaf-poc/csaf_webview/internal/options"
	"github.com/csaf-poc/csaf_webview/util"
)

type processor struct {
	cfg   *config
	cache *client.ViewModelCache
	eval  *util.PathEval
}

// run converts all given files to the configured output format.
func run(cfg *config, files []string) error {
	cache, err := client.OpenViewModelCache(cfg.Cache)
	if err != nil {
		return err
	}
	defer cache.Close()

	out := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	p := &processor{
		cfg:   cfg,
		cache: cache,
		eval:  util.NewPathEval(),
	}

	for _, file := range files {
		if cfg.ignoreFile(file) {
			slog.Debug("ignoring file", "file", file)
			continue
		}
		if err := p.process(out, file); err != nil {
			return fmt.Errorf("processing %q failed: %w", file, err)
		}
	}
	return nil
}

func (p *processor) process(out io.Writer, file string) error {
	slog.Info("converting advisory", "file", file)
	doc := csaf.LoadRawAdvisoryFile(file)
	switch p.cfg.Format {
	case formatCSV:
		model, err := p.cache.Convert(doc)
		if err != nil {
			return err
		}
		w := util.NewFullyQuotedCSVWriter(out)
		return w.WriteAll(model.ProductVulnerabilities)
	case formatSummary:
		summary := csaf.NewAdvisorySummary(p.eval, doc)
		return writeJSON(out, summary)
	default:
		model, err := p.cache.Convert(doc)
		if err != nil {
			return err
		}
		return writeJSON(out, model)
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	files, cfg, err := parseArgsConfig()
	options.ErrorCheck(err)
	options.ErrorCheck(cfg.prepare())

	if len(files) == 0 {
		slog.Error("No advisory files given.")
		os.Exit(1)
	}
	options.ErrorCheck(run(cfg, files))
}
