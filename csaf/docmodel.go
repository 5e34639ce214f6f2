// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package csaf

import "sort"

// Publisher is the publisher block of the view model. The three
// required fields are always present, empty if the source is.
type Publisher struct {
	Category         string `json:"category"`
	Name             string `json:"name"`
	Namespace        string `json:"namespace"`
	ContactDetails   string `json:"contact_details,omitempty"`
	IssuingAuthority string `json:"issuing_authority,omitempty"`
}

// TLP is the traffic light protocol block of the view model.
type TLP struct {
	Label TLPLabel `json:"label"`
	URL   string   `json:"url,omitempty"`
}

// Note is one document note.
type Note struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	Audience string `json:"audience,omitempty"`
	Title    string `json:"title,omitempty"`
}

// Reference is one document reference.
type Reference struct {
	Category string `json:"category"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// Acknowledgement is one entry of the acknowledgements list.
type Acknowledgement struct {
	Names        []string `json:"names,omitempty"`
	Organization string   `json:"organization,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	URLs         []string `json:"urls,omitempty"`
}

// AggregateSeverity is the urgency with which the advisory as a
// whole should be addressed.
type AggregateSeverity struct {
	Namespace string `json:"namespace,omitempty"`
	Text      string `json:"text"`
}

// Engine describes the engine that generated the document.
type Engine struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// Generator describes how the document was generated.
type Generator struct {
	Engine Engine `json:"engine"`
	Date   string `json:"date,omitempty"`
}

// Revision is one entry of the revision history.
type Revision struct {
	Date          string `json:"date"`
	Number        string `json:"number"`
	Summary       string `json:"summary"`
	LegacyVersion string `json:"legacy_version,omitempty"`
}

// DocModel is the flattened, always safe to read view model of an
// advisory. Every field degrades to its zero value if the source
// path is absent; the Is*Present flags tell absence apart from
// genuinely empty content. A field and its flag never disagree.
type DocModel struct {
	Acknowledgements  []Acknowledgement  `json:"acknowledgements"`
	AggregateSeverity *AggregateSeverity `json:"aggregateSeverity"`
	Aliases           []string           `json:"aliases"`
	Category          string             `json:"category"`
	CSAFVersion       string             `json:"csafVersion"`
	Generator         *Generator         `json:"generator"`
	ID                string             `json:"id"`
	Lang              string             `json:"lang"`
	LastUpdate        string             `json:"lastUpdate"`
	Notes             []Note             `json:"notes"`
	Published         string             `json:"published"`
	Publisher         Publisher          `json:"publisher"`
	References        []Reference        `json:"references"`
	RevisionHistory   []Revision         `json:"revisionHistory"`
	SourceLang        string             `json:"sourceLang"`
	Status            TrackingStatus     `json:"status"`
	Title             string             `json:"title"`
	TLP               TLP                `json:"tlp"`
	TrackingVersion   string             `json:"trackingVersion"`

	IsDistributionPresent    bool `json:"isDistributionPresent"`
	IsDocPresent             bool `json:"isDocPresent"`
	IsProductTreePresent     bool `json:"isProductTreePresent"`
	IsPublisherPresent       bool `json:"isPublisherPresent"`
	IsRevisionHistoryPresent bool `json:"isRevisionHistoryPresent"`
	IsTLPPresent             bool `json:"isTLPPresent"`
	IsTrackingPresent        bool `json:"isTrackingPresent"`
	IsVulnerabilitiesPresent bool `json:"isVulnerabilitiesPresent"`

	// ProductsByID maps product ids to display names. Duplicate ids
	// collapse last write wins.
	ProductsByID map[string]string `json:"productsByID"`
	// ProductVulnerabilities is the cross table as produced by
	// GenerateProductVulnerabilities.
	ProductVulnerabilities [][]string `json:"productVulnerabilities"`
}

// Presence checks. Each one guards all accesses below its path.

func checkDocument(doc RawAdvisory) (map[string]any, bool) {
	return object(doc, "document")
}

func checkTracking(doc RawAdvisory) (map[string]any, bool) {
	document, ok := checkDocument(doc)
	if !ok {
		return nil, false
	}
	return object(document, "tracking")
}

func checkDistribution(doc RawAdvisory) (map[string]any, bool) {
	document, ok := checkDocument(doc)
	if !ok {
		return nil, false
	}
	return object(document, "distribution")
}

func checkTLP(doc RawAdvisory) (map[string]any, bool) {
	distribution, ok := checkDistribution(doc)
	if !ok {
		return nil, false
	}
	tlp, ok := object(distribution, "tlp")
	if !ok {
		return nil, false
	}
	if _, ok := text(tlp, "label"); !ok {
		return nil, false
	}
	return tlp, true
}

func checkPublisher(doc RawAdvisory) (map[string]any, bool) {
	document, ok := checkDocument(doc)
	if !ok {
		return nil, false
	}
	return object(document, "publisher")
}

func checkRevisionHistory(doc RawAdvisory) ([]any, bool) {
	tracking, ok := checkTracking(doc)
	if !ok {
		return nil, false
	}
	return array(tracking, "revision_history")
}

func checkProductTree(doc RawAdvisory) bool {
	_, ok := object(doc, "product_tree")
	return ok
}

func checkVulnerabilities(doc RawAdvisory) bool {
	_, ok := doc["vulnerabilities"].([]any)
	return ok
}

// documentText reads a string directly below the document object.
func documentText(doc RawAdvisory, key string) string {
	document, ok := checkDocument(doc)
	if !ok {
		return Empty
	}
	s, _ := text(document, key)
	return s
}

// trackingText reads a string directly below the tracking object.
func trackingText(doc RawAdvisory, key string) string {
	tracking, ok := checkTracking(doc)
	if !ok {
		return Empty
	}
	s, _ := text(tracking, key)
	return s
}

func getStatus(doc RawAdvisory) TrackingStatus {
	tracking, ok := checkTracking(doc)
	if !ok {
		return Empty
	}
	s, _ := text(tracking, "status")
	return validTrackingStatus(s)
}

func getTLP(doc RawAdvisory) TLP {
	tlp, ok := checkTLP(doc)
	if !ok {
		return TLP{Label: Empty}
	}
	label, _ := text(tlp, "label")
	url, _ := text(tlp, "url")
	return TLP{Label: validTLPLabel(label), URL: url}
}

func getPublisher(doc RawAdvisory) Publisher {
	publisher, ok := checkPublisher(doc)
	if !ok {
		return Publisher{}
	}
	category, _ := text(publisher, "category")
	name, _ := text(publisher, "name")
	namespace, _ := text(publisher, "namespace")
	contact, _ := text(publisher, "contact_details")
	authority, _ := text(publisher, "issuing_authority")
	return Publisher{
		Category:         category,
		Name:             name,
		Namespace:        namespace,
		ContactDetails:   contact,
		IssuingAuthority: authority,
	}
}

// getRevisionHistory reads the revision history sorted by date
// string, newest first. ISO 8601 dates sort correctly this way.
func getRevisionHistory(doc RawAdvisory) []Revision {
	entries, ok := checkRevisionHistory(doc)
	if !ok {
		return nil
	}
	history := make([]Revision, 0, len(entries))
	for _, entry := range entries {
		date, _ := text(entry, "date")
		number, _ := text(entry, "number")
		summary, _ := text(entry, "summary")
		legacy, _ := text(entry, "legacy_version")
		history = append(history, Revision{
			Date:          date,
			Number:        number,
			Summary:       summary,
			LegacyVersion: legacy,
		})
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})
	return history
}

func getNotes(doc RawAdvisory) []Note {
	document, ok := checkDocument(doc)
	if !ok {
		return nil
	}
	entries, ok := array(document, "notes")
	if !ok {
		return nil
	}
	notes := make([]Note, 0, len(entries))
	for _, entry := range entries {
		category, _ := text(entry, "category")
		content, _ := text(entry, "text")
		audience, _ := text(entry, "audience")
		title, _ := text(entry, "title")
		notes = append(notes, Note{
			Category: category,
			Text:     content,
			Audience: audience,
			Title:    title,
		})
	}
	return notes
}

func getReferences(doc RawAdvisory) []Reference {
	document, ok := checkDocument(doc)
	if !ok {
		return nil
	}
	entries, ok := array(document, "references")
	if !ok {
		return nil
	}
	references := make([]Reference, 0, len(entries))
	for _, entry := range entries {
		category, _ := text(entry, "category")
		summary, _ := text(entry, "summary")
		url, _ := text(entry, "url")
		references = append(references, Reference{
			Category: category,
			Summary:  summary,
			URL:      url,
		})
	}
	return references
}

func getAcknowledgements(doc RawAdvisory) []Acknowledgement {
	document, ok := checkDocument(doc)
	if !ok {
		return nil
	}
	entries, ok := array(document, "acknowledgements")
	if !ok {
		return nil
	}
	acks := make([]Acknowledgement, 0, len(entries))
	for _, entry := range entries {
		organization, _ := text(entry, "organization")
		summary, _ := text(entry, "summary")
		acks = append(acks, Acknowledgement{
			Names:        stringsOf(entry, "names"),
			Organization: organization,
			Summary:      summary,
			URLs:         stringsOf(entry, "urls"),
		})
	}
	return acks
}

func getAggregateSeverity(doc RawAdvisory) *AggregateSeverity {
	document, ok := checkDocument(doc)
	if !ok {
		return nil
	}
	severity, ok := object(document, "aggregate_severity")
	if !ok {
		return nil
	}
	namespace, _ := text(severity, "namespace")
	content, _ := text(severity, "text")
	return &AggregateSeverity{Namespace: namespace, Text: content}
}

func getGenerator(doc RawAdvisory) *Generator {
	tracking, ok := checkTracking(doc)
	if !ok {
		return nil
	}
	generator, ok := object(tracking, "generator")
	if !ok {
		return nil
	}
	date, _ := text(generator, "date")
	var engine Engine
	if e, ok := object(generator, "engine"); ok {
		engine.Name, _ = text(e, "name")
		engine.Version, _ = text(e, "version")
	}
	return &Generator{Engine: engine, Date: date}
}

func getAliases(doc RawAdvisory) []string {
	tracking, ok := checkTracking(doc)
	if !ok {
		return nil
	}
	return stringsOf(tracking, "aliases")
}

// ConvertToDocModel flattens a raw advisory into a view model.
// It never fails: the worst possible input resolves every field
// to its zero value and every presence flag to false.
func ConvertToDocModel(doc RawAdvisory) *DocModel {
	_, isDoc := checkDocument(doc)
	_, isTracking := checkTracking(doc)
	_, isDistribution := checkDistribution(doc)
	_, isTLP := checkTLP(doc)
	_, isPublisher := checkPublisher(doc)
	_, isRevisionHistory := checkRevisionHistory(doc)

	model := &DocModel{
		Acknowledgements:  getAcknowledgements(doc),
		AggregateSeverity: getAggregateSeverity(doc),
		Aliases:           getAliases(doc),
		Category:          documentText(doc, "category"),
		CSAFVersion:       documentText(doc, "csaf_version"),
		Generator:         getGenerator(doc),
		ID:                trackingText(doc, "id"),
		Lang:              documentText(doc, "lang"),
		LastUpdate:        trackingText(doc, "current_release_date"),
		Notes:             getNotes(doc),
		Published:         trackingText(doc, "initial_release_date"),
		Publisher:         getPublisher(doc),
		References:        getReferences(doc),
		RevisionHistory:   getRevisionHistory(doc),
		SourceLang:        documentText(doc, "source_lang"),
		Status:            getStatus(doc),
		Title:             documentText(doc, "title"),
		TLP:               getTLP(doc),
		TrackingVersion:   trackingText(doc, "version"),

		IsDistributionPresent:    isDistribution,
		IsDocPresent:             isDoc,
		IsProductTreePresent:     checkProductTree(doc),
		IsPublisherPresent:       isPublisher,
		IsRevisionHistoryPresent: isRevisionHistory,
		IsTLPPresent:             isTLP,
		IsTrackingPresent:        isTracking,
		IsVulnerabilitiesPresent: checkVulnerabilities(doc),
	}

	products := ExtractProducts(doc)
	lookup := make(map[string]string, len(products))
	for _, product := range products {
		lookup[product.ID] = product.Name
	}
	model.ProductsByID = lookup
	model.ProductVulnerabilities = GenerateProductVulnerabilities(doc, products, lookup)

	return model
}
