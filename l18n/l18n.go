/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

// Package l18n formats user-facing strings in the user's preferred UI
// language.
package l18n

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerOnce sync.Once
)

func prn() *message.Printer {
	printerOnce.Do(func() {
		printer = message.NewPrinter(lang())
	})
	return printer
}

// lang returns the user preferred UI language the default catalog has the
// most confident translation for, falling back to English.
func lang() language.Tag {
	tag := language.English
	confidence := language.No
	languages, err := getUserLanguages()
	if err != nil {
		return tag
	}
	for i := range languages {
		t, _, c := message.DefaultCatalog.Matcher().Match(message.MatchLanguage(languages[i]))
		if c > confidence {
			tag = t
			confidence = c
		}
	}
	return tag
}

// Sprintf is like fmt.Sprintf, but using language-specific formatting.
func Sprintf(key message.Reference, a ...any) string {
	return prn().Sprintf(key, a...)
}
