// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package ssvc

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/decision_tree.json
var schemaSource string

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	const name = "decision_tree.json"
	if err := compiler.AddResource(name, strings.NewReader(schemaSource)); err != nil {
		return nil, err
	}
	return compiler.Compile(name)
})

// validateDecisionTree validates a decoded decision tree document
// against the embedded JSON schema.
func validateDecisionTree(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("decision tree is invalid: %w", err)
	}
	return nil
}
