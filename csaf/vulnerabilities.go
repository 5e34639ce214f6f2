// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package csaf

import (
	"github.com/csaf-poc/csaf_webview/util"
)

// VulnerabilityRecord is the per vulnerability extract of the
// product status lists. A status set is nil if the corresponding
// list was missing in the source and non-nil (possibly empty)
// if it was given.
type VulnerabilityRecord struct {
	CVE                string
	KnownAffected      util.Set[string]
	Fixed              util.Set[string]
	UnderInvestigation util.Set[string]
	KnownNotAffected   util.Set[string]
	Recommended        util.Set[string]
}

// VulnerabilityExtraction is the result of ExtractVulnerabilities.
type VulnerabilityExtraction struct {
	Vulnerabilities []VulnerabilityRecord
	// RelevantProducts is the union of all product ids referenced
	// by any status list of any vulnerability.
	RelevantProducts util.Set[string]
}

// ExtractVulnerabilities walks the vulnerabilities of a raw advisory.
// Entries without a CVE cannot be cross referenced and are dropped.
// A document without vulnerabilities yields an empty result.
func ExtractVulnerabilities(doc RawAdvisory) VulnerabilityExtraction {
	extraction := VulnerabilityExtraction{
		RelevantProducts: util.Set[string]{},
	}
	vulns, ok := doc["vulnerabilities"].([]any)
	if !ok {
		return extraction
	}
	for _, vuln := range vulns {
		cve, ok := text(vuln, "cve")
		if !ok {
			continue
		}
		record := VulnerabilityRecord{CVE: cve}
		if status, ok := object(vuln, "product_status"); ok {
			statusSet := func(key string) util.Set[string] {
				arr, ok := status[key].([]any)
				if !ok {
					return nil
				}
				set := util.Set[string]{}
				for _, id := range arr {
					if s, ok := id.(string); ok {
						set.Add(s)
						extraction.RelevantProducts.Add(s)
					}
				}
				return set
			}
			record.KnownAffected = statusSet("known_affected")
			record.Fixed = statusSet("fixed")
			record.UnderInvestigation = statusSet("under_investigation")
			record.KnownNotAffected = statusSet("known_not_affected")
			record.Recommended = statusSet("recommended")
		}
		extraction.Vulnerabilities = append(extraction.Vulnerabilities, record)
	}
	return extraction
}
