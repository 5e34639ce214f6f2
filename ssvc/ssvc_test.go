// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package ssvc

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// testTree is a coordinator style tree: four simple decision
// points, a complex one owning two of them, and a final decision.
const testTree = `{
	"lang": "en",
	"title": "test decision tree",
	"version": "2.0",
	"decision_points": [
		{"label": "Exploitation", "key": "E", "decision_type": "simple",
		 "options": [
			{"label": "none", "key": "N"},
			{"label": "poc", "key": "P"},
			{"label": "active", "key": "A"}
		 ]},
		{"label": "Automatable", "key": "A", "decision_type": "simple",
		 "options": [
			{"label": "no", "key": "N"},
			{"label": "yes", "key": "Y"}
		 ]},
		{"label": "Technical Impact", "key": "T", "decision_type": "simple",
		 "options": [
			{"label": "partial", "key": "P"},
			{"label": "total", "key": "T"}
		 ]},
		{"label": "Mission Prevalence", "key": "P", "decision_type": "simple",
		 "options": [
			{"label": "Minimal", "key": "M"},
			{"label": "Support", "key": "S"},
			{"label": "Essential", "key": "E"}
		 ]},
		{"label": "Public Well-being Impact", "key": "B", "decision_type": "simple",
		 "options": [
			{"label": "Minimal", "key": "M"},
			{"label": "Material", "key": "A"},
			{"label": "Irreversible", "key": "I"}
		 ]},
		{"label": "Mission & Well-being", "key": "M", "decision_type": "complex",
		 "children": [
			{"label": "Mission Prevalence"},
			{"label": "Public Well-being Impact"}
		 ],
		 "options": [
			{"label": "low", "key": "L"},
			{"label": "medium", "key": "M"},
			{"label": "high", "key": "H"}
		 ]},
		{"label": "Decision", "key": "D", "decision_type": "final",
		 "options": [
			{"label": "Track", "key": "T", "color": "#28a745"},
			{"label": "Track*", "key": "R", "color": "#ffc107"},
			{"label": "Attend", "key": "A", "color": "#fd7e14"},
			{"label": "Act", "key": "C", "color": "#dc3545"}
		 ]}
	],
	"decisions_table": [
		{"Exploitation": "none", "Automatable": "no",
		 "Technical Impact": "partial", "Mission & Well-being": "low",
		 "Decision": "Track"}
	]
}`

func loadTestTree(t *testing.T) *ParsedTree {
	t.Helper()
	tree, err := LoadDecisionTree(strings.NewReader(testTree))
	if err != nil {
		t.Fatal(err)
	}
	return tree.Parse()
}

func TestLoadDecisionTreeInvalid(t *testing.T) {
	for _, doc := range []string{
		`{`,
		`{"decision_points": []}`,
		`{"decision_points": [{"label": "X"}], "decisions_table": []}`,
		`{"decision_points": [
			{"label": "X", "decision_type": "bananas", "options": []}
		 ], "decisions_table": []}`,
	} {
		if _, err := LoadDecisionTree(strings.NewReader(doc)); err == nil {
			t.Errorf("%s: expected error", doc)
		}
	}
}

// TestParse checks that children of complex decisions do not become
// main decision steps of their own.
func TestParse(t *testing.T) {
	parsed := loadTestTree(t)
	expected := []string{
		"Exploitation",
		"Automatable",
		"Technical Impact",
		"Mission & Well-being",
		"Decision",
	}
	if !reflect.DeepEqual(parsed.Steps, expected) {
		t.Errorf("steps: got %v expected %v", parsed.Steps, expected)
	}
	if len(parsed.MainDecisions) != 5 {
		t.Errorf("got %d main decisions expected 5", len(parsed.MainDecisions))
	}
	if len(parsed.DecisionPoints) != 7 {
		t.Errorf("got %d decision points expected 7", len(parsed.DecisionPoints))
	}
}

func TestResolveVector(t *testing.T) {
	parsed := loadTestTree(t)
	for _, x := range []struct {
		vector string
		label  string
		color  string
	}{
		// Main decisions only.
		{"SSVCv2/E:N/A:N/T:P/M:L/D:T/2024-03-13T10:34:39Z/", "Track", "#28a745"},
		// All decision points spelled out.
		{"SSVCv2/E:N/A:N/T:P/P:M/B:M/M:L/D:C/2024-03-13T10:33:45Z/", "Act", "#dc3545"},
		{"SSVCv2/E:A/A:Y/T:T/M:H/D:A/2024-03-13T10:34:39Z/", "Attend", "#fd7e14"},
	} {
		outcome, err := parsed.ResolveVector(x.vector)
		if err != nil {
			t.Errorf("%q: %v", x.vector, err)
			continue
		}
		if outcome.Label != x.label {
			t.Errorf("%q: got label %q expected %q", x.vector, outcome.Label, x.label)
		}
		if outcome.Color != x.color {
			t.Errorf("%q: got color %q expected %q", x.vector, outcome.Color, x.color)
		}
		if outcome.Vector != x.vector {
			t.Errorf("%q: vector not carried", x.vector)
		}
	}
}

func TestResolveVectorMalformed(t *testing.T) {
	parsed := loadTestTree(t)
	for _, vector := range []string{
		"",
		"SSVCv2/2024-03-13T10:34:39Z/",
		// Wrong number of decision segments.
		"SSVCv2/E:N/A:N/D:T/2024-03-13T10:34:39Z/",
		// Last segment has no key value layout.
		"SSVCv2/E:N/A:N/T:P/M:L/DT/2024-03-13T10:34:39Z/",
		// Unknown option key.
		"SSVCv2/E:N/A:N/T:P/M:L/D:X/2024-03-13T10:34:39Z/",
	} {
		if _, err := parsed.ResolveVector(vector); !errors.Is(err, ErrMalformedVector) {
			t.Errorf("%q: got %v expected ErrMalformedVector", vector, err)
		}
	}
}

func TestDecisionOption(t *testing.T) {
	parsed := loadTestTree(t)
	final := parsed.MainDecisions[len(parsed.MainDecisions)-1]
	if option := final.Option("R"); option == nil || option.Label != "Track*" {
		t.Errorf("got %+v expected Track*", option)
	}
	if option := final.Option("X"); option != nil {
		t.Errorf("got %+v expected nil", option)
	}
}
