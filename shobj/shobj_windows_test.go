/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

package shobj

import (
	"testing"
	"unsafe"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// THUMBBUTTON must match the pshpack8 layout the shell expects.
func TestTHUMBBUTTONLayout(t *testing.T) {
	s := THUMBBUTTON{}
	sp := uintptr(unsafe.Pointer(&s))

	var thumbButtonSize, thumbButtonHIconOffset, thumbButtonSzTipOffset, thumbButtonDwFlagsOffset uintptr
	if ptrSize == 8 {
		thumbButtonSize = 552
		thumbButtonHIconOffset = 16
		thumbButtonSzTipOffset = 24
		thumbButtonDwFlagsOffset = 544
	} else {
		thumbButtonSize = 540
		thumbButtonHIconOffset = 12
		thumbButtonSzTipOffset = 16
		thumbButtonDwFlagsOffset = 536
	}

	if size := unsafe.Sizeof(s); size != thumbButtonSize {
		t.Errorf("Size of THUMBBUTTON is %d, although %d is expected.", size, thumbButtonSize)
	}
	if offset := uintptr(unsafe.Pointer(&s.HIcon)) - sp; offset != thumbButtonHIconOffset {
		t.Errorf("THUMBBUTTON.HIcon offset is %d although %d is expected", offset, thumbButtonHIconOffset)
	}
	if offset := uintptr(unsafe.Pointer(&s.SzTip)) - sp; offset != thumbButtonSzTipOffset {
		t.Errorf("THUMBBUTTON.SzTip offset is %d although %d is expected", offset, thumbButtonSzTipOffset)
	}
	if offset := uintptr(unsafe.Pointer(&s.DwFlags)) - sp; offset != thumbButtonDwFlagsOffset {
		t.Errorf("THUMBBUTTON.DwFlags offset is %d although %d is expected", offset, thumbButtonDwFlagsOffset)
	}
}

// The vtable structs must carry exactly one slot per method of the published
// interface chain: 3 for IUnknown, then 5, 1, and 12 for the three
// ITaskbarList generations.
func TestVtblSlotCounts(t *testing.T) {
	tests := []struct {
		name  string
		size  uintptr
		slots uintptr
	}{
		{"ITaskbarListVtbl", unsafe.Sizeof(ITaskbarListVtbl{}), 3 + 5},
		{"ITaskbarList2Vtbl", unsafe.Sizeof(ITaskbarList2Vtbl{}), 3 + 5 + 1},
		{"ITaskbarList3Vtbl", unsafe.Sizeof(ITaskbarList3Vtbl{}), 3 + 5 + 1 + 12},
	}
	for _, tt := range tests {
		if tt.size != tt.slots*ptrSize {
			t.Errorf("Size of %s is %d, although %d slots are expected.", tt.name, tt.size, tt.slots)
		}
	}
}

// The interface structs are cast directly from the pointers COM hands out,
// so they must stay pointer-sized through the whole inheritance chain.
func TestInterfaceStructSizes(t *testing.T) {
	if size := unsafe.Sizeof(ITaskbarList3{}); size != unsafe.Sizeof(ITaskbarList{}) {
		t.Errorf("ITaskbarList3 size %d differs from ITaskbarList size %d", size, unsafe.Sizeof(ITaskbarList{}))
	}
}

func TestGUIDFormatting(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLSID_TaskbarList", CLSID_TaskbarList.String(), "{56FDF344-FD6D-11D0-958A-006097C9A090}"},
		{"IID_ITaskbarList", IID_ITaskbarList.String(), "{56FDF342-FD6D-11D0-958A-006097C9A090}"},
		{"IID_ITaskbarList2", IID_ITaskbarList2.String(), "{602D4995-B13A-429B-A66E-1935E44F4317}"},
		{"IID_ITaskbarList3", IID_ITaskbarList3.String(), "{EA1AFB91-9E28-4B86-90E9-9E9F8A5EEFAF}"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s is %s, although %s is expected", tt.name, tt.got, tt.want)
		}
	}
}
