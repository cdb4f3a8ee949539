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

package params

import "strings"

// Error is the error type of the package. It carries the chain of
// functions through which it traveled.
type Error struct {
	Message string
	deco    []string
}

func (err Error) Error() string {
	if len(err.deco) == 0 {
		return "params: " + err.Message
	}
	return "params: " + err.Message + " (" + strings.Join(err.deco, " <- ") + ")"
}

// Decorate adds dec to the call chain of the error and returns the chain.
// An empty dec just returns the chain.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical always returns false, no parameter error is critical.
func (err Error) Critical() bool { return false }

func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
		return e
	}
	return err
}
