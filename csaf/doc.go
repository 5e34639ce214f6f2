// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

// Package csaf derives view models from untrusted CSAF advisories.
//
// The entry point is [ConvertToDocModel] which flattens an arbitrary
// advisory document into a [DocModel] whose fields are always safe to
// read. The product inventory, the per vulnerability product status
// sets and the product/vulnerability cross table are derived along
// the way and attached to the model.
package csaf
