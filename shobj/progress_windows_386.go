/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

package shobj

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// On x86 the stdcall ABI passes each ULONGLONG as two 32-bit stack slots,
// low half first.
func (obj *ITaskbarList3) SetProgressValue(hwnd win.HWND, completed, total uint64) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().SetProgressValue,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd),
		uintptr(completed),
		uintptr(completed>>32),
		uintptr(total),
		uintptr(total>>32))
	return hresultToError(hr)
}
