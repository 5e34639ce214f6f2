// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package csaf

import (
	"sort"
	"strings"
)

// Symbols of the product status categories in cross table cells.
const (
	SymbolFixed              = "F"
	SymbolUnderInvestigation = "U"
	SymbolKnownAffected      = "K"
	SymbolNotAffected        = "N"
	SymbolRecommended        = "R"
	// SymbolNotApplicable is the total of a row no status applies to.
	SymbolNotApplicable = "N.A"
)

// GenerateProductVulnerabilities builds the product/vulnerability
// cross table of an advisory. Row 0 is the header
//
//	["Product", "Total result", cve 1, cve 2, ...]
//
// with the CVEs in ascending order. Each following row belongs to
// one product referenced by at least one vulnerability:
//
//	[product id, total, one cell per CVE]
//
// Rows are sorted by the display name of their product looked up
// in lookup; products missing from the lookup sort towards the
// front. Cells concatenate the symbols of all matching status
// categories in the fixed order F, U, K, N, R.
func GenerateProductVulnerabilities(
	doc RawAdvisory,
	products []Product,
	lookup map[string]string,
) [][]string {
	extraction := ExtractVulnerabilities(doc)

	relevant := make([]Product, 0, len(products))
	for _, product := range products {
		if extraction.RelevantProducts.Contains(product.ID) {
			relevant = append(relevant, product)
		}
	}

	vulns := extraction.Vulnerabilities
	sort.SliceStable(vulns, func(i, j int) bool {
		return vulns[i].CVE < vulns[j].CVE
	})

	header := make([]string, 0, len(vulns)+2)
	header = append(header, "Product", "Total result")
	for _, vuln := range vulns {
		header = append(header, vuln.CVE)
	}

	rows := make([][]string, 0, len(relevant))
	for _, product := range relevant {
		rows = append(rows, generateRow(product, vulns))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return lookup[rows[i][0]] < lookup[rows[j][0]]
	})

	return append([][]string{header}, rows...)
}

// generateRow computes the cells of one product row including
// the total cell.
func generateRow(product Product, vulns []VulnerabilityRecord) []string {
	row := make([]string, 2, len(vulns)+2)
	row[0] = product.ID
	for _, vuln := range vulns {
		var cell strings.Builder
		if vuln.Fixed.Contains(product.ID) {
			cell.WriteString(SymbolFixed)
		}
		if vuln.UnderInvestigation.Contains(product.ID) {
			cell.WriteString(SymbolUnderInvestigation)
		}
		if vuln.KnownAffected.Contains(product.ID) {
			cell.WriteString(SymbolKnownAffected)
		}
		if vuln.KnownNotAffected.Contains(product.ID) {
			cell.WriteString(SymbolNotAffected)
		}
		if vuln.Recommended.Contains(product.ID) {
			cell.WriteString(SymbolRecommended)
		}
		row = append(row, cell.String())
	}
	row[1] = rowTotal(row[2:])
	return row
}

// rowTotal resolves the cells of a row to one aggregate symbol.
// The precedence known affected > under investigation > fixed >
// not affected is a fixed business rule of the overview table,
// not derivable from the symbol order within a cell.
func rowTotal(cells []string) string {
	contains := func(symbol string) bool {
		for _, cell := range cells {
			if strings.Contains(cell, symbol) {
				return true
			}
		}
		return false
	}
	switch {
	case contains(SymbolKnownAffected):
		return SymbolKnownAffected
	case contains(SymbolUnderInvestigation):
		return SymbolUnderInvestigation
	case contains(SymbolFixed):
		return SymbolFixed
	case contains(SymbolNotAffected):
		return SymbolNotAffected
	default:
		return SymbolNotApplicable
	}
}
