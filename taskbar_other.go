/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

//go:build !windows

package wintaskbar

func newBackend() (backend, error) {
	return nil, ErrUnsupported
}
