/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

//go:build !windows

package appid

// Set fails with ErrUnsupported: only the Windows shell has AppUserModelIDs.
func Set(id string) error {
	if err := Validate(id); err != nil {
		return err
	}
	return ErrUnsupported
}

// Get fails with ErrUnsupported.
func Get() (string, error) {
	return "", ErrUnsupported
}
