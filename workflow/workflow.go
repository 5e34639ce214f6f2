// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

// Package workflow models the lifecycle states of an advisory and
// which roles may move a document between them.
package workflow

// State is the workflow state of an advisory.
type State string

// The workflow states of an advisory.
const (
	New       State = "new"
	Read      State = "read"
	Assessing State = "assessing"
	Review    State = "review"
	Archived  State = "archived"
	Delete    State = "delete"
)

// States lists all workflow states.
var States = []State{New, Read, Assessing, Review, Archived, Delete}

// Role is the role of a user.
type Role string

// The roles known to the system.
const (
	Admin         Role = "admin"
	Importer      Role = "importer"
	Editor        Role = "editor"
	Reviewer      Role = "reviewer"
	Auditor       Role = "auditor"
	SourceManager Role = "source-manager"
)

// Transition is one allowed state change and the roles which may
// perform it. Transitions are not transitive: a multi step change
// needs an explicit entry per step.
type Transition struct {
	From  State
	To    State
	Roles []Role
}

// Transitions is the table of all allowed state changes.
var Transitions = []Transition{
	{From: Archived, To: Assessing, Roles: []Role{Admin, Editor}},
	{From: Archived, To: Delete, Roles: []Role{Editor, Reviewer}},
	{From: Archived, To: New, Roles: []Role{Importer}},
	{From: Archived, To: Read, Roles: []Role{Admin}},
	{From: Archived, To: Review, Roles: []Role{Admin, Editor}},
	{From: Assessing, To: Delete, Roles: []Role{Editor, Reviewer}},
	{From: Assessing, To: New, Roles: []Role{Importer}},
	{From: Assessing, To: Read, Roles: []Role{Editor}},
	{From: Assessing, To: Review, Roles: []Role{Editor}},
	{From: Delete, To: Archived, Roles: []Role{Admin}},
	{From: Delete, To: Assessing, Roles: []Role{Admin}},
	{From: Delete, To: Read, Roles: []Role{Admin}},
	{From: Delete, To: Review, Roles: []Role{Admin}},
	{From: New, To: Read, Roles: []Role{Editor}},
	{From: Read, To: Assessing, Roles: []Role{Editor}},
	{From: Read, To: Delete, Roles: []Role{Editor, Reviewer}},
	{From: Read, To: New, Roles: []Role{Editor}},
	{From: Review, To: Archived, Roles: []Role{Reviewer}},
	{From: Review, To: Assessing, Roles: []Role{Reviewer, Editor}},
	{From: Review, To: Delete, Roles: []Role{Reviewer}},
	{From: Review, To: New, Roles: []Role{Importer}},
	{From: Review, To: Read, Roles: []Role{Reviewer}},
}

// roleIntersects returns true if any of the needed roles is held.
func roleIntersects(held, needed []Role) bool {
	for _, n := range needed {
		for _, h := range held {
			if n == h {
				return true
			}
		}
	}
	return false
}

// AllowedToChange returns true if a user holding the given roles
// may move a document from one state to another.
func AllowedToChange(roles []Role, from, to State) bool {
	for _, t := range Transitions {
		if t.From == from && t.To == to && roleIntersects(roles, t.Roles) {
			return true
		}
	}
	return false
}

// AllowedChanges returns the transitions out of the given state
// available to a user holding the given roles.
func AllowedChanges(roles []Role, from State) []Transition {
	var allowed []Transition
	for _, t := range Transitions {
		if t.From == from && roleIntersects(roles, t.Roles) {
			allowed = append(allowed, t)
		}
	}
	return allowed
}
