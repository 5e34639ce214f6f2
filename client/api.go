// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/csaf-poc/csaf_webview/csaf"
	"github.com/csaf-poc/csaf_webview/internal/models"
	"github.com/csaf-poc/csaf_webview/stats"
)

// Endpoint accesses the document management API.
type Endpoint struct {
	// BaseURL is the base URL of the API, e.g. "https://example.com/api".
	BaseURL string
	// Client does the requests. Defaults to http.DefaultClient.
	Client Client
}

func (ep *Endpoint) client() Client {
	if ep.Client != nil {
		return ep.Client
	}
	return http.DefaultClient
}

func (ep *Endpoint) get(path string, query url.Values, result any) error {
	u := ep.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	resp, err := ep.client().Get(u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s failed: %s (%d)",
			path, resp.Status, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

// GetDocument fetches the advisory document with the given id.
// Broken or empty payloads result in an empty document.
func (ep *Endpoint) GetDocument(id int64) (csaf.RawAdvisory, error) {
	u := ep.BaseURL + "/documents/" + strconv.FormatInt(id, 10)
	resp, err := ep.client().Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching document %d failed: %s (%d)",
			id, resp.Status, resp.StatusCode)
	}
	return csaf.LoadRawAdvisory(resp.Body), nil
}

// documentsResult is the shape of a documents listing response.
type documentsResult struct {
	Count     int64        `json:"count"`
	Documents []listingRow `json:"documents"`
}

// listingRow is one flat row of a documents listing.
type listingRow struct {
	TrackingID         string    `json:"tracking_id"`
	Title              string    `json:"title"`
	Publisher          string    `json:"publisher"`
	InitialReleaseDate time.Time `json:"initial_release_date"`
	CurrentReleaseDate time.Time `json:"current_release_date"`
	TLP                string    `json:"tlp"`
}

// Columns fetched for document listings.
var summaryColumns = []string{
	"tracking_id", "title", "publisher",
	"initial_release_date", "current_release_date", "tlp",
}

// ListDocumentSummaries fetches flat summaries of the stored advisory
// documents. An optional query expression filters the listing
// server side.
func (ep *Endpoint) ListDocumentSummaries(query string) ([]csaf.AdvisorySummary, error) {
	values := url.Values{}
	for _, col := range summaryColumns {
		values.Add("columns", col)
	}
	if query != "" {
		values.Set("query", query)
	}
	var result documentsResult
	if err := ep.get("/documents", values, &result); err != nil {
		return nil, err
	}
	summaries := make([]csaf.AdvisorySummary, 0, len(result.Documents))
	for _, row := range result.Documents {
		summaries = append(summaries, csaf.AdvisorySummary{
			ID:                 row.TrackingID,
			Title:              row.Title,
			PublisherName:      row.Publisher,
			InitialReleaseDate: row.InitialReleaseDate,
			CurrentReleaseDate: row.CurrentReleaseDate,
			TLPLabel:           csaf.ParseTLPLabel(row.TLP),
		})
	}
	return summaries, nil
}

// GetStats fetches statistics of the given name in the given time
// range. Entries come back as [timestamp, value] tuples.
func (ep *Endpoint) GetStats(name string, r models.TimeRange, step time.Duration) ([]stats.Entry, error) {
	values := url.Values{
		"from": []string{r[0].UTC().Format(time.RFC3339)},
		"to":   []string{r[1].UTC().Format(time.RFC3339)},
		"step": []string{strconv.FormatInt(step.Milliseconds(), 10) + "ms"},
	}
	var entries []stats.Entry
	if err := ep.get("/stats/"+name, values, &entries); err != nil {
		return nil, err
	}
	return stats.FillGaps(r, step, entries), nil
}
