// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/csaf-poc/csaf_webview/csaf"
)

const testAdvisory = `{
	"document": {
		"title": "Example advisory",
		"tracking": {"id": "EXA-2023-0001", "status": "final"}
	},
	"product_tree": {
		"full_product_names": [
			{"product_id": "123", "name": "Product A"}
		]
	},
	"vulnerabilities": [
		{"cve": "CVE-2019-0171", "product_status": {"known_affected": ["123"]}}
	]
}`

func writeAdvisory(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "advisory.json")
	if err := os.WriteFile(name, []byte(testAdvisory), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestRunJSON(t *testing.T) {
	file := writeAdvisory(t)
	output := filepath.Join(t.TempDir(), "out.json")
	cfg := &config{Format: formatJSON, Output: output}
	if err := cfg.prepare(); err != nil {
		t.Fatal(err)
	}
	if err := run(cfg, []string{file}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	var model csaf.DocModel
	if err := json.Unmarshal(data, &model); err != nil {
		t.Fatal(err)
	}
	if model.Title != "Example advisory" || !model.IsVulnerabilitiesPresent {
		t.Errorf("got %+v", model)
	}
}

func TestRunCSV(t *testing.T) {
	file := writeAdvisory(t)
	output := filepath.Join(t.TempDir(), "out.csv")
	cfg := &config{Format: formatCSV, Output: output}
	if err := cfg.prepare(); err != nil {
		t.Fatal(err)
	}
	if err := run(cfg, []string{file}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	expected := `"Product","Total result","CVE-2019-0171"` + "\n" +
		`"123","K","K"` + "\n"
	if got := string(data); got != expected {
		t.Errorf("got %q expected %q", got, expected)
	}
}

func TestRunIgnorePattern(t *testing.T) {
	file := writeAdvisory(t)
	output := filepath.Join(t.TempDir(), "out.json")
	cfg := &config{
		Format:        formatJSON,
		Output:        output,
		IgnorePattern: []string{`advisory\.json$`},
	}
	if err := cfg.prepare(); err != nil {
		t.Fatal(err)
	}
	if err := run(cfg, []string{file}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("got %q expected no output", data)
	}
}

func TestRunWithCache(t *testing.T) {
	file := writeAdvisory(t)
	dir := t.TempDir()
	cfg := &config{
		Format: formatJSON,
		Output: filepath.Join(dir, "out.json"),
		Cache:  filepath.Join(dir, "viewmodels.db"),
	}
	if err := cfg.prepare(); err != nil {
		t.Fatal(err)
	}
	// Twice to hit the cache on the second run.
	for i := 0; i < 2; i++ {
		if err := run(cfg, []string{file}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := os.Stat(cfg.Cache); err != nil {
		t.Errorf("cache file missing: %v", err)
	}
}

func TestBadIgnorePattern(t *testing.T) {
	cfg := &config{IgnorePattern: []string{"++"}}
	if err := cfg.prepare(); err == nil ||
		!strings.Contains(err.Error(), "invalid ignore pattern") {
		t.Errorf("got %v expected invalid pattern error", err)
	}
}
