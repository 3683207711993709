/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

package appid

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		id string
		ok bool
	}{
		{"", false},
		{"Glasswing.TaskbarDemo", true},
		{"CompanyName.ProductName.SubProduct.1", true},
		{"has space", false},
		{"has\ttab", false},
		{"has\x00nul", false},
		{strings.Repeat("a", MaxLength), true},
		{strings.Repeat("a", MaxLength+1), false},
	}
	for _, tt := range tests {
		err := Validate(tt.id)
		if tt.ok && err != nil {
			t.Errorf("Validate(%q) failed: %v", tt.id, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidID) {
			t.Errorf("Validate(%q) returned %v, although ErrInvalidID is expected", tt.id, err)
		}
	}
}

func TestSetRejectsInvalidID(t *testing.T) {
	if err := Set("not valid"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Set with an invalid ID returned %v, although ErrInvalidID is expected", err)
	}
}
