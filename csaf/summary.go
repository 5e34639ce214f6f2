// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package csaf

import (
	"time"

	"github.com/csaf-poc/csaf_webview/util"
)

const (
	idExpr                 = `$.document.tracking.id`
	titleExpr              = `$.document.title`
	publisherNameExpr      = `$.document.publisher.name`
	initialReleaseDateExpr = `$.document.tracking.initial_release_date`
	currentReleaseDateExpr = `$.document.tracking.current_release_date`
	tlpLabelExpr           = `$.document.distribution.tlp.label`
	summaryExpr            = `$.document.notes[? @.category=="summary" || @.type=="summary"].text`
)

// AdvisorySummary is the short form of an advisory shown in
// document listings. Missing fields stay empty.
type AdvisorySummary struct {
	ID                 string
	Title              string
	PublisherName      string
	InitialReleaseDate time.Time
	CurrentReleaseDate time.Time
	Summary            string
	TLPLabel           TLPLabel
}

// NewAdvisorySummary extracts a summary from a raw advisory with
// the help of an expression evaluator. Fields whose paths do not
// resolve are left at their zero values.
func NewAdvisorySummary(expr *util.PathEval, doc RawAdvisory) *AdvisorySummary {
	summary := new(AdvisorySummary)

	var label string
	// Errors of individual extractions are ignored on purpose:
	// a summary of a partial document is still a summary.
	expr.Match([]util.PathEvalMatcher{
		{Expr: idExpr, Action: util.StringMatcher(&summary.ID), Optional: true},
		{Expr: titleExpr, Action: util.StringMatcher(&summary.Title), Optional: true},
		{Expr: publisherNameExpr, Action: util.StringMatcher(&summary.PublisherName), Optional: true},
		{Expr: initialReleaseDateExpr, Action: util.TimeMatcher(&summary.InitialReleaseDate, time.RFC3339), Optional: true},
		{Expr: currentReleaseDateExpr, Action: util.TimeMatcher(&summary.CurrentReleaseDate, time.RFC3339), Optional: true},
		{Expr: summaryExpr, Action: util.FirstStringMatcher(&summary.Summary), Optional: true},
		{Expr: tlpLabelExpr, Action: util.StringMatcher(&label), Optional: true},
	}, map[string]any(doc))

	if label != "" {
		summary.TLPLabel = validTLPLabel(label)
	}
	return summary
}
