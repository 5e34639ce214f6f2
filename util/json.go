// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
)

// ReMarshalJSON transforms data from src to dst via JSON marshalling.
func ReMarshalJSON(dst, src any) error {
	intermediate, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(intermediate, dst)
}

// PathEval is a helper to evaluate JSON paths on documents.
type PathEval struct {
	builder gval.Language
	exprs   map[string]gval.Evaluable
}

// NewPathEval creates a new PathEval.
func NewPathEval() *PathEval {
	return &PathEval{
		builder: gval.Full(jsonpath.Language()),
		exprs:   map[string]gval.Evaluable{},
	}
}

// Compile compiles an expression and caches it.
func (pe *PathEval) Compile(expr string) (gval.Evaluable, error) {
	if eval := pe.exprs[expr]; eval != nil {
		return eval, nil
	}
	eval, err := pe.builder.NewEvaluable(expr)
	if err != nil {
		return nil, err
	}
	pe.exprs[expr] = eval
	return eval, nil
}

// Eval evaluates expression expr on document doc.
// Returns the result of the expression.
func (pe *PathEval) Eval(expr string, doc any) (any, error) {
	if doc == nil {
		return nil, errors.New("no document to extract data from")
	}
	eval, err := pe.Compile(expr)
	if err != nil {
		return nil, err
	}
	return eval(context.Background(), doc)
}

// PathEvalMatcher is a pair of an expression and an action
// when doing extractions via PathEval.Match.
type PathEvalMatcher struct {
	// Expr is the expression to evaluate.
	Expr string
	// Action is executed with the result of the match.
	Action func(any) error
	// Optional makes a failing expression non-fatal.
	Optional bool
}

// ReMarshalMatcher is an action to re-marshal the result to another type.
func ReMarshalMatcher(dst any) func(any) error {
	return func(src any) error {
		return ReMarshalJSON(dst, src)
	}
}

// StringMatcher stores the matched result in a string.
func StringMatcher(dst *string) func(any) error {
	return func(x any) error {
		s, ok := x.(string)
		if !ok {
			return fmt.Errorf("%v is not a string", x)
		}
		*dst = s
		return nil
	}
}

// FirstStringMatcher stores the matched result in a string.
// Filter expressions evaluate to a slice of matches, so a slice
// is unwrapped to its first string element.
func FirstStringMatcher(dst *string) func(any) error {
	return func(x any) error {
		switch v := x.(type) {
		case string:
			*dst = v
			return nil
		case []any:
			for _, e := range v {
				if s, ok := e.(string); ok {
					*dst = s
					return nil
				}
			}
			return fmt.Errorf("%v contains no string", v)
		default:
			return fmt.Errorf("%v is not a string", x)
		}
	}
}

// TimeMatcher stores a time with a given format.
func TimeMatcher(dst *time.Time, format string) func(any) error {
	return func(x any) error {
		s, ok := x.(string)
		if !ok {
			return fmt.Errorf("%v is not a string", x)
		}
		t, err := time.Parse(format, s)
		if err != nil {
			return err
		}
		*dst = t.UTC()
		return nil
	}
}

// Match matches a list of PathEvalMatcher pairs against a document.
// Errors of optional matchers are swallowed.
func (pe *PathEval) Match(matcher []PathEvalMatcher, doc any) error {
	for _, m := range matcher {
		x, err := pe.Eval(m.Expr, doc)
		if err != nil {
			if m.Optional {
				continue
			}
			return err
		}
		if err := m.Action(x); err != nil && !m.Optional {
			return err
		}
	}
	return nil
}
