/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

//go:build !windows

package appid

import (
	"errors"
	"testing"
)

func TestUnsupportedPlatform(t *testing.T) {
	if err := Set("Glasswing.TaskbarDemo"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Set returned %v, although ErrUnsupported is expected", err)
	}
	if _, err := Get(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Get returned %v, although ErrUnsupported is expected", err)
	}
}
