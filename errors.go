/*
 * errors.go, part of protview.
 *
 * Copyright 2024 The protview authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package protview

import (
	"fmt"
	"strings"
)

// Messages for the errors returned by this package.
const (
	EmptyContent   = "empty file content"
	NoAtomRecords  = "no atom records found in pdb file"
	UnreadableData = "unable to read pdb data"
)

// PDBError is the general structure for errors in this package. It fulfills Error.
type PDBError struct {
	message  string
	deco     []string
	critical bool
}

func (err *PDBError) Error() string {
	if len(err.deco) == 0 {
		return fmt.Sprintf("pdb: %s", err.message)
	}
	return fmt.Sprintf("pdb: %s (%s)", err.message, strings.Join(err.deco, " <- "))
}

// Decorate adds new information to the error and returns the
// decoration slice.
func (err *PDBError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise.
func (err *PDBError) Critical() bool { return err.critical }

// FormatError is returned, inside a ValidationResult, when the content
// given is not a usable PDB file. It is never critical: the caller is
// expected to report it and keep its previous state.
type FormatError struct {
	PDBError
}

func newFormatError(msg, caller string) *FormatError {
	return &FormatError{PDBError{message: msg, deco: []string{caller}}}
}

// Reason returns the message of the error without decorations.
func (err *FormatError) Reason() string { return err.message }

//errDecorate is a helper function that asserts that the error
//implements Error and decorates it with the caller's name before returning it.
//Errors that do not implement Error are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

// ParseWarning records an input line that was skipped by the parser.
type ParseWarning struct {
	Line   int //1-based
	Record string
	Reason string
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("line %d (%s): %s", w.Line, w.Record, w.Reason)
}
