/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

//go:build windows && !386

package shobj

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

func (obj *ITaskbarList3) SetProgressValue(hwnd win.HWND, completed, total uint64) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().SetProgressValue,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd),
		uintptr(completed),
		uintptr(total))
	return hresultToError(hr)
}
