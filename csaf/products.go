// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package csaf

// Product is one entry of the flattened product inventory of
// an advisory. The id identifies the product within the document,
// the name is for display only and not necessarily unique.
type Product struct {
	ID   string `json:"product_id"`
	Name string `json:"name"`
}

// ExtractProducts flattens the product tree of a raw advisory into
// a list of products. Three sources contribute in a fixed order:
// the recursive branches, the full_product_names list and the
// full product names of the relationship entries. Duplicates are
// not collapsed. A document without a product tree yields an
// empty list.
func ExtractProducts(doc RawAdvisory) []Product {
	tree, ok := object(doc, "product_tree")
	if !ok {
		return nil
	}
	var products []Product
	if branches, ok := array(tree, "branches"); ok {
		for _, branch := range branches {
			products = parseBranch(products, branch)
		}
	}
	if fpns, ok := array(tree, "full_product_names"); ok {
		for _, fpn := range fpns {
			products = append(products, looseProductOf(fpn))
		}
	}
	if rels, ok := array(tree, "relationships"); ok {
		for _, rel := range rels {
			m, ok := object(rel, "full_product_name")
			if !ok {
				continue
			}
			products = append(products, looseProductOf(m))
		}
	}
	return products
}

// parseBranch walks a branch depth-first. A branch owning sub
// branches recurses into all of them; a leaf branch contributes
// a product if it carries a full product name with both id and
// name set.
func parseBranch(acc []Product, branch any) []Product {
	if subs, ok := array(branch, "branches"); ok {
		for _, sub := range subs {
			acc = parseBranch(acc, sub)
		}
		return acc
	}
	if m, ok := object(branch, "product"); ok {
		if p, ok := productOf(m); ok {
			acc = append(acc, p)
		}
	}
	return acc
}

// productOf reads a full product name object. Both product_id and
// name have to be non-empty strings.
func productOf(v any) (Product, bool) {
	id, ok1 := text(v, "product_id")
	name, ok2 := text(v, "name")
	if !ok1 || !ok2 {
		return Product{}, false
	}
	return Product{ID: id, Name: name}, true
}

// looseProductOf reads a full product name object without insisting
// on its fields. Sources outside the branch walk are taken as given.
func looseProductOf(v any) Product {
	id, _ := text(v, "product_id")
	name, _ := text(v, "name")
	return Product{ID: id, Name: name}
}
