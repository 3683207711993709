/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

package appid

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modshell32 = windows.NewLazySystemDLL("shell32.dll")

	procSetCurrentProcessExplicitAppUserModelID = modshell32.NewProc("SetCurrentProcessExplicitAppUserModelID")
	procGetCurrentProcessExplicitAppUserModelID = modshell32.NewProc("GetCurrentProcessExplicitAppUserModelID")
)

// Set assigns id as the process's explicit AppUserModelID. It must be called
// before the process creates any windows to take effect.
func Set(id string) error {
	if err := Validate(id); err != nil {
		return err
	}
	id16, err := windows.UTF16PtrFromString(id)
	if err != nil {
		return err
	}
	hr, _, _ := procSetCurrentProcessExplicitAppUserModelID.Call(uintptr(unsafe.Pointer(id16)))
	if int32(hr) < 0 {
		return syscall.Errno(hr)
	}
	return nil
}

// Get returns the process's explicit AppUserModelID. It fails if none has
// been set.
func Get() (string, error) {
	var id16 *uint16
	hr, _, _ := procGetCurrentProcessExplicitAppUserModelID.Call(uintptr(unsafe.Pointer(&id16)))
	if int32(hr) < 0 {
		return "", syscall.Errno(hr)
	}
	defer windows.CoTaskMemFree(unsafe.Pointer(id16))
	return windows.UTF16PtrToString(id16), nil
}
