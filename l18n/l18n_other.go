/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

//go:build !windows

package l18n

import (
	"os"
	"strings"
)

func getUserLanguages() ([]string, error) {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if locale := os.Getenv(env); locale != "" {
			locale, _, _ = strings.Cut(locale, ".")
			return []string{strings.ReplaceAll(locale, "_", "-")}, nil
		}
	}
	return nil, nil
}
