// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

// Package stats post-processes statistic series fetched from the
// server so they can be charted directly.
package stats

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/csaf-poc/csaf_webview/internal/models"
)

// Entry is one point of a statistic series. A nil value marks a
// point in time for which the server reported nothing.
type Entry struct {
	Time  time.Time
	Value *float64
}

// UnmarshalJSON decodes the [timestamp, value] tuples served by
// the statistics endpoints.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var tuple [2]any
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	switch ts := tuple[0].(type) {
	case string:
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return err
		}
		e.Time = t.UTC()
	case float64:
		e.Time = time.Unix(int64(ts), 0).UTC()
	default:
		return fmt.Errorf("unexpected timestamp %v", tuple[0])
	}
	if v, ok := tuple[1].(float64); ok {
		e.Value = &v
	} else {
		e.Value = nil
	}
	return nil
}

// FillGaps spreads a series over the step grid of a time range.
// Grid points the series has no entry for are filled with nil
// values so a chart shows when nothing was reported.
func FillGaps(r models.TimeRange, step time.Duration, entries []Entry) []Entry {
	if step <= 0 {
		return entries
	}
	byTime := make(map[int64]Entry, len(entries))
	for _, e := range entries {
		byTime[e.Time.UnixMilli()] = e
	}
	var filled []Entry
	for t := r[0]; !t.After(r[1]); t = t.Add(step) {
		if e, ok := byTime[t.UnixMilli()]; ok {
			filled = append(filled, e)
		} else {
			filled = append(filled, Entry{Time: t})
		}
	}
	return filled
}

// Textual ratings of CVSS scores.
const (
	RatingNone   = "None"
	RatingLow    = "Low"
	RatingMedium = "Medium"
	RatingHigh   = "High"
)

// TextualRating buckets a CVSS score into its textual rating.
func TextualRating(score float64) string {
	switch {
	case score == 0:
		return RatingNone
	case score <= 3.9:
		return RatingLow
	case score <= 6.9:
		return RatingMedium
	default:
		return RatingHigh
	}
}
