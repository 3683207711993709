/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

// Package appid sets and queries the process's explicit Application User
// Model ID. Setting one before any window is created makes the shell group
// the process's windows under their own taskbar button and icon instead of
// the host interpreter's or launcher's.
package appid

import (
	"errors"
	"strings"
)

// MaxLength is the shell's limit on AppUserModelID length, in characters.
const MaxLength = 128

var (
	ErrUnsupported = errors.New("AppUserModelIDs are not supported on this platform")
	ErrInvalidID   = errors.New("An AppUserModelID must be 1 to 128 characters with no spaces")
)

// Validate reports whether id satisfies the shell's AppUserModelID contract:
// nonempty, at most MaxLength characters, and free of spaces. The
// conventional form is CompanyName.ProductName[.SubProduct[.Version]].
func Validate(id string) error {
	if id == "" || len(id) > MaxLength {
		return ErrInvalidID
	}
	if strings.ContainsAny(id, " \t\r\n\x00") {
		return ErrInvalidID
	}
	return nil
}
