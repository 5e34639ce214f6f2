// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package csaf

import (
	"reflect"
	"testing"
)

func TestExtractProductsEmpty(t *testing.T) {
	for _, doc := range []string{
		`{}`,
		`{"product_tree":{}}`,
		`{"product_tree":{"branches":[]}}`,
		`{"product_tree":"no object"}`,
	} {
		if products := ExtractProducts(load(t, doc)); len(products) != 0 {
			t.Errorf("%s: got %d products expected 0", doc, len(products))
		}
	}
}

func TestExtractProductsFlat(t *testing.T) {
	products := ExtractProducts(load(t, `{"product_tree":{"branches":[
		{"category": "product_version",
		 "product": {"product_id": "123", "name": "Product A"}}
	]}}`))
	expected := []Product{{ID: "123", Name: "Product A"}}
	if !reflect.DeepEqual(products, expected) {
		t.Errorf("got %v expected %v", products, expected)
	}
}

func TestExtractProductsNested(t *testing.T) {
	products := ExtractProducts(load(t, `{"product_tree":{"branches":[
		{"branches": [
			{"category": "product_version",
			 "product": {"product_id": "123", "name": "Product A"}}
		]}
	]}}`))
	expected := []Product{{ID: "123", Name: "Product A"}}
	if !reflect.DeepEqual(products, expected) {
		t.Errorf("got %v expected %v", products, expected)
	}
}

// TestExtractProductsDeeplyNested checks that products below
// several branch levels surface in depth first order.
func TestExtractProductsDeeplyNested(t *testing.T) {
	products := ExtractProducts(load(t, `{"product_tree":{"branches":[
		{"branches": [
			{"branches": [
				{"category": "product_version",
				 "product": {"product_id": "8910", "name": "Product C"}}
			]},
			{"category": "product_version",
			 "product": {"product_id": "123", "name": "Product A"}},
			{"category": "product_version",
			 "product": {"product_id": "3456", "name": "Product B"}}
		]}
	]}}`))
	expected := []Product{
		{ID: "8910", Name: "Product C"},
		{ID: "123", Name: "Product A"},
		{ID: "3456", Name: "Product B"},
	}
	if !reflect.DeepEqual(products, expected) {
		t.Errorf("got %v expected %v", products, expected)
	}
}

func TestExtractProductsFullProductNames(t *testing.T) {
	products := ExtractProducts(load(t, `{"product_tree":{
		"full_product_names": [
			{"product_id": "123", "name": "Product A"}
		]
	}}`))
	expected := []Product{{ID: "123", Name: "Product A"}}
	if !reflect.DeepEqual(products, expected) {
		t.Errorf("got %v expected %v", products, expected)
	}
}

// TestExtractProductsIncompleteLeaf checks that branch leaves
// missing id or name are not turned into products.
func TestExtractProductsIncompleteLeaf(t *testing.T) {
	products := ExtractProducts(load(t, `{"product_tree":{"branches":[
		{"category": "product_version", "product": {"product_id": "123"}},
		{"category": "product_version", "product": {"name": "Product A"}},
		{"category": "product_version", "product": {}}
	]}}`))
	if len(products) != 0 {
		t.Errorf("got %v expected no products", products)
	}
}

// TestExtractProductsOrder checks the fixed source order: branches
// first, then full_product_names, then relationship products.
func TestExtractProductsOrder(t *testing.T) {
	products := ExtractProducts(load(t, `{"product_tree":{
		"branches": [
			{"category": "product_version",
			 "product": {"product_id": "1", "name": "From branch"}}
		],
		"full_product_names": [
			{"product_id": "2", "name": "From full product names"}
		],
		"relationships": [
			{"category": "installed_on",
			 "full_product_name": {"product_id": "3", "name": "From relationship"}}
		]
	}}`))
	expected := []Product{
		{ID: "1", Name: "From branch"},
		{ID: "2", Name: "From full product names"},
		{ID: "3", Name: "From relationship"},
	}
	if !reflect.DeepEqual(products, expected) {
		t.Errorf("got %v expected %v", products, expected)
	}
}

// TestExtractProductsNoDedup checks that duplicate ids survive
// extraction. Deduplication happens later in the id lookup.
func TestExtractProductsNoDedup(t *testing.T) {
	products := ExtractProducts(load(t, `{"product_tree":{
		"branches": [
			{"category": "product_version",
			 "product": {"product_id": "1", "name": "First"}}
		],
		"full_product_names": [
			{"product_id": "1", "name": "Second"}
		]
	}}`))
	if len(products) != 2 {
		t.Fatalf("got %d products expected 2", len(products))
	}
}
