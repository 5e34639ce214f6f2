// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

// Package ssvc steps through SSVC decision trees and resolves
// SSVC vector strings to their final decision.
package ssvc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Option is one selectable option of a decision.
type Option struct {
	Label       string `json:"label"`
	Key         string `json:"key"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Child references a decision owned by a complex decision.
type Child struct {
	Label string `json:"label"`
}

// Decision is one decision point of the tree. Its type is either
// "simple", "complex" (owning children) or "final".
type Decision struct {
	Label        string   `json:"label"`
	Key          string   `json:"key"`
	DecisionType string   `json:"decision_type"`
	Children     []Child  `json:"children,omitempty"`
	Options      []Option `json:"options"`
}

// Option returns the option with the given key or nil.
func (d *Decision) Option(key string) *Option {
	for i := range d.Options {
		if d.Options[i].Key == key {
			return &d.Options[i]
		}
	}
	return nil
}

// DecisionTree is a decision tree as stored in its JSON form.
type DecisionTree struct {
	DecisionPoints []Decision          `json:"decision_points"`
	DecisionsTable []map[string]string `json:"decisions_table"`
	Lang           string              `json:"lang,omitempty"`
	Title          string              `json:"title,omitempty"`
	Version        string              `json:"version,omitempty"`
}

// ParsedTree is a decision tree prepared for stepping through it.
type ParsedTree struct {
	DecisionPoints []Decision
	DecisionsTable []map[string]string
	// MainDecisions are the top level decision steps: decision
	// points not owned as children by a complex decision, in
	// document order.
	MainDecisions []Decision
	// Steps are the labels of the main decisions.
	Steps []string
}

// LoadDecisionTree reads a decision tree from r. The document is
// validated against the embedded schema before it is decoded.
func LoadDecisionTree(r io.Reader) (*DecisionTree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decision tree is not valid JSON: %w", err)
	}
	if err := validateDecisionTree(doc); err != nil {
		return nil, err
	}
	var tree DecisionTree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return &tree, nil
}

// Parse orders the flat decision point list into main decision
// steps. The list is scanned in reverse; a label already claimed
// as child of a previously visited complex decision is skipped.
func (t *DecisionTree) Parse() *ParsedTree {
	claimed := map[string]bool{}
	var main []Decision
	for i := len(t.DecisionPoints) - 1; i >= 0; i-- {
		decision := t.DecisionPoints[i]
		if claimed[decision.Label] {
			continue
		}
		main = append(main, decision)
		if decision.DecisionType == "complex" {
			for _, child := range decision.Children {
				claimed[child.Label] = true
			}
		} else {
			claimed[decision.Label] = true
		}
	}
	// Reverse back into document order.
	for i, j := 0, len(main)-1; i < j; i, j = i+1, j-1 {
		main[i], main[j] = main[j], main[i]
	}
	steps := make([]string, len(main))
	for i := range main {
		steps[i] = main[i].Label
	}
	return &ParsedTree{
		DecisionPoints: t.DecisionPoints,
		DecisionsTable: t.DecisionsTable,
		MainDecisions:  main,
		Steps:          steps,
	}
}

// Outcome is the resolved final decision of an SSVC vector.
type Outcome struct {
	Vector string
	Label  string
	Color  string
}

// ErrMalformedVector is returned for vectors which do not follow
// the SSVCv2/<key>:<value>/.../<timestamp>/ layout.
var ErrMalformedVector = errors.New("malformed SSVC vector")

// ResolveVector resolves an SSVC vector string to its outcome.
// The leading product label and the trailing timestamp and
// terminator segments are stripped; the key of the last remaining
// segment is looked up in the options of the last main decision.
// If the vector instead spells out every decision point the lookup
// falls back to the last decision point.
func (p *ParsedTree) ResolveVector(vector string) (Outcome, error) {
	segments := strings.Split(vector, "/")
	if len(segments) < 4 {
		return Outcome{}, ErrMalformedVector
	}
	keyPairs := segments[1 : len(segments)-2]

	last := keyPairs[len(keyPairs)-1]
	_, key, found := strings.Cut(last, ":")
	if !found {
		return Outcome{}, ErrMalformedVector
	}

	var decision *Decision
	switch {
	case len(p.MainDecisions) == len(keyPairs):
		decision = &p.MainDecisions[len(p.MainDecisions)-1]
	case len(p.DecisionPoints) == len(keyPairs):
		decision = &p.DecisionPoints[len(p.DecisionPoints)-1]
	default:
		return Outcome{}, fmt.Errorf(
			"%w: %d segments do not match %d decision steps",
			ErrMalformedVector, len(keyPairs), len(p.MainDecisions))
	}

	option := decision.Option(key)
	if option == nil {
		return Outcome{}, fmt.Errorf(
			"%w: no option with key %q", ErrMalformedVector, key)
	}
	return Outcome{Vector: vector, Label: option.Label, Color: option.Color}, nil
}
