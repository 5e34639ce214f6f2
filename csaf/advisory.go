// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package csaf

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
)

// RawAdvisory is an advisory as handed over by the outside world.
// No assumptions are made about its shape: any key at any depth
// may be missing, null or of an unexpected type. All functions
// working on a RawAdvisory degrade to defined defaults instead
// of failing.
type RawAdvisory map[string]any

// LoadRawAdvisory reads a raw advisory from r. Documents which do
// not parse as JSON objects are treated as empty documents, so the
// derivation pipeline downstream always has something to work on.
func LoadRawAdvisory(r io.Reader) RawAdvisory {
	var doc RawAdvisory
	if err := json.NewDecoder(r).Decode(&doc); err != nil || doc == nil {
		return RawAdvisory{}
	}
	return doc
}

// LoadRawAdvisoryFile reads a raw advisory from a file.
// Unreadable or unparsable files count as empty documents.
func LoadRawAdvisoryFile(name string) RawAdvisory {
	f, err := os.Open(name)
	if err != nil {
		return RawAdvisory{}
	}
	defer f.Close()
	return LoadRawAdvisory(f)
}

// asObject unwraps v to its underlying JSON object. A RawAdvisory
// is a defined type, so a plain type assertion would miss it.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case RawAdvisory:
		return m, true
	default:
		return nil, false
	}
}

// object fetches a sub object of a JSON object.
func object(v any, key string) (map[string]any, bool) {
	m, ok := asObject(v)
	if !ok {
		return nil, false
	}
	s, ok := m[key].(map[string]any)
	return s, ok
}

// array fetches an array member of a JSON object.
func array(v any, key string) ([]any, bool) {
	m, ok := asObject(v)
	if !ok {
		return nil, false
	}
	s, ok := m[key].([]any)
	return s, ok
}

// text fetches a string member of a JSON object. JSON numbers are
// accepted, too, as some producers emit version numbers unquoted.
func text(v any, key string) (string, bool) {
	m, ok := asObject(v)
	if !ok {
		return "", false
	}
	switch x := m[key].(type) {
	case string:
		return x, x != ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case json.Number:
		return x.String(), true
	default:
		return "", false
	}
}

// stringsOf fetches an array member of a JSON object keeping
// only its string elements.
func stringsOf(v any, key string) []string {
	arr, ok := array(v, key)
	if !ok {
		return nil
	}
	var out []string
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
