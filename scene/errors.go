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

package scene

import (
	"fmt"
	"strings"
)

// Error is the error type for the scene package.
type Error struct {
	message  string
	deco     []string
	critical bool
	cause    error
}

func (err Error) Error() string {
	if len(err.deco) == 0 {
		return "scene: " + err.message
	}
	return fmt.Sprintf("scene: %s (%s)", err.message, strings.Join(err.deco, " <- "))
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Unwrap returns the error that caused this one, if any.
func (err Error) Unwrap() error { return err.cause }

// Is reports whether target is a scene Error with the same message,
// so errors.Is works with the decorated copies of the package errors.
func (err Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.message == err.message
}

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

var (
	ErrNoGraphics     = Error{message: "no graphics backend available", critical: true}
	ErrOutOfResources = Error{message: "graphics backend out of resources", critical: true}
	ErrDisposed       = Error{message: "scene already disposed"}
)

//errDecorate adds the caller to err if it is a scene Error.
//Other errors are wrapped.
func errDecorate(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return Error{message: err.Error(), deco: []string{caller}, critical: true, cause: err}
	}
	e.deco = append(e.deco, caller)
	return e
}
