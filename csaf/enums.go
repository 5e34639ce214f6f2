// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package csaf

// Empty is the sentinel for a value whose source path is absent.
const Empty = ""

// TLPLabel is the label of the traffic light protocol classification
// of a document.
type TLPLabel string

const (
	// TLPLabelAmber is the "AMBER" label.
	TLPLabelAmber TLPLabel = "AMBER"
	// TLPLabelGreen is the "GREEN" label.
	TLPLabelGreen TLPLabel = "GREEN"
	// TLPLabelRed is the "RED" label.
	TLPLabelRed TLPLabel = "RED"
	// TLPLabelWhite is the "WHITE" label.
	TLPLabelWhite TLPLabel = "WHITE"
	// TLPLabelInvalid marks a label which was given but is not part
	// of the closed vocabulary. Distinct from the empty label of an
	// absent distribution/tlp/label path.
	TLPLabelInvalid TLPLabel = "Invalid TLP"
)

// validTLPLabel maps a given label to the closed vocabulary.
// Anything else is flagged invalid instead of being passed through.
func validTLPLabel(s string) TLPLabel {
	switch TLPLabel(s) {
	case TLPLabelAmber:
		return TLPLabelAmber
	case TLPLabelGreen:
		return TLPLabelGreen
	case TLPLabelWhite:
		return TLPLabelWhite
	case TLPLabelRed:
		return TLPLabelRed
	default:
		return TLPLabelInvalid
	}
}

// ParseTLPLabel interprets s as a TLP label. An empty input stays
// empty, anything outside the closed vocabulary is flagged invalid.
func ParseTLPLabel(s string) TLPLabel {
	if s == Empty {
		return Empty
	}
	return validTLPLabel(s)
}

// TrackingStatus is the tracking status of a document.
type TrackingStatus string

const (
	// TrackingStatusDraft is the "draft" status.
	TrackingStatusDraft TrackingStatus = "draft"
	// TrackingStatusFinal is the "final" status.
	TrackingStatusFinal TrackingStatus = "final"
	// TrackingStatusInterim is the "interim" status.
	TrackingStatusInterim TrackingStatus = "interim"
	// TrackingStatusInvalid marks a status outside the closed
	// vocabulary, including a missing one below a present tracking
	// object.
	TrackingStatusInvalid TrackingStatus = "Invalid Status"
)

// validTrackingStatus maps a given status to the closed vocabulary.
func validTrackingStatus(s string) TrackingStatus {
	switch TrackingStatus(s) {
	case TrackingStatusDraft:
		return TrackingStatusDraft
	case TrackingStatusFinal:
		return TrackingStatusFinal
	case TrackingStatusInterim:
		return TrackingStatusInterim
	default:
		return TrackingStatusInvalid
	}
}
