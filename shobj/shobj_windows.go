/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

// Package shobj contains raw vtable bindings for the shell's ITaskbarList,
// ITaskbarList2, and ITaskbarList3 COM interfaces.
//
// The bindings perform in-process vtable dispatch only; cross-apartment
// marshalling remains the business of the system-provided proxy/stub. The
// shell registers the TaskbarList coclass free-threaded, so the object may
// be called from any thread of an initialized apartment.
package shobj

import (
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"github.com/lxn/win"
)

var (
	CLSID_TaskbarList = ole.NewGUID("{56FDF344-FD6D-11D0-958A-006097C9A090}")

	IID_ITaskbarList  = ole.NewGUID("{56FDF342-FD6D-11D0-958A-006097C9A090}")
	IID_ITaskbarList2 = ole.NewGUID("{602D4995-B13A-429B-A66E-1935E44F4317}")
	IID_ITaskbarList3 = ole.NewGUID("{EA1AFB91-9E28-4B86-90E9-9E9F8A5EEFAF}")
)

// TBPFLAG is the progress indicator state passed to SetProgressState.
type TBPFLAG uint32

const (
	TBPF_NOPROGRESS    TBPFLAG = 0x0
	TBPF_INDETERMINATE TBPFLAG = 0x1
	TBPF_NORMAL        TBPFLAG = 0x2
	TBPF_ERROR         TBPFLAG = 0x4
	TBPF_PAUSED        TBPFLAG = 0x8
)

// TBATFLAG selects MDI tab thumbnail and live preview behavior for
// SetTabActive.
type TBATFLAG uint32

const (
	TBATF_USEMDITHUMBNAIL   TBATFLAG = 0x1
	TBATF_USEMDILIVEPREVIEW TBATFLAG = 0x2
)

// THUMBBUTTONMASK bits declare which THUMBBUTTON fields are valid.
const (
	THB_BITMAP  = 0x1
	THB_ICON    = 0x2
	THB_TOOLTIP = 0x4
	THB_FLAGS   = 0x8
)

// THUMBBUTTONFLAGS bits control thumbnail toolbar button behavior.
const (
	THBF_ENABLED        = 0x0
	THBF_DISABLED       = 0x1
	THBF_DISMISSONCLICK = 0x2
	THBF_NOBACKGROUND   = 0x4
	THBF_HIDDEN         = 0x8
	THBF_NONINTERACTIVE = 0x10
)

// THBN_CLICKED arrives in the HIWORD of a WM_COMMAND wParam when a thumbnail
// toolbar button is pressed; the LOWORD carries the button's IId.
const THBN_CLICKED = 0x1800

// THUMBBUTTON mirrors the pshpack8 wire struct of the same name.
type THUMBBUTTON struct {
	DwMask  uint32
	IId     uint32
	IBitmap uint32
	HIcon   win.HICON
	SzTip   [260]uint16
	DwFlags uint32
}

type ITaskbarList struct {
	ole.IUnknown
}

type ITaskbarListVtbl struct {
	ole.IUnknownVtbl
	HrInit       uintptr
	AddTab       uintptr
	DeleteTab    uintptr
	ActivateTab  uintptr
	SetActiveAlt uintptr
}

type ITaskbarList2 struct {
	ITaskbarList
}

type ITaskbarList2Vtbl struct {
	ITaskbarListVtbl
	MarkFullscreenWindow uintptr
}

type ITaskbarList3 struct {
	ITaskbarList2
}

type ITaskbarList3Vtbl struct {
	ITaskbarList2Vtbl
	SetProgressValue      uintptr
	SetProgressState      uintptr
	RegisterTab           uintptr
	UnregisterTab         uintptr
	SetTabOrder           uintptr
	SetTabActive          uintptr
	ThumbBarAddButtons    uintptr
	ThumbBarUpdateButtons uintptr
	ThumbBarSetImageList  uintptr
	SetOverlayIcon        uintptr
	SetThumbnailTooltip   uintptr
	SetThumbnailClip      uintptr
}

func (obj *ITaskbarList) VTable() *ITaskbarListVtbl {
	return (*ITaskbarListVtbl)(unsafe.Pointer(obj.RawVTable))
}

func (obj *ITaskbarList2) VTable() *ITaskbarList2Vtbl {
	return (*ITaskbarList2Vtbl)(unsafe.Pointer(obj.RawVTable))
}

func (obj *ITaskbarList3) VTable() *ITaskbarList3Vtbl {
	return (*ITaskbarList3Vtbl)(unsafe.Pointer(obj.RawVTable))
}

// CreateTaskbarList instantiates the shell's TaskbarList coclass and asks it
// for ITaskbarList3. COM must already be initialized on the calling thread.
func CreateTaskbarList() (*ITaskbarList3, error) {
	iu, err := ole.CreateInstance(CLSID_TaskbarList, IID_ITaskbarList3)
	if err != nil {
		return nil, err
	}
	return (*ITaskbarList3)(unsafe.Pointer(iu)), nil
}

func hresultToError(hr uintptr) error {
	if int32(hr) < 0 {
		return ole.NewError(hr)
	}
	return nil
}

func (obj *ITaskbarList) HrInit() error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().HrInit,
		uintptr(unsafe.Pointer(obj)))
	return hresultToError(hr)
}

func (obj *ITaskbarList) AddTab(hwnd win.HWND) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().AddTab,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd))
	return hresultToError(hr)
}

func (obj *ITaskbarList) DeleteTab(hwnd win.HWND) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().DeleteTab,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd))
	return hresultToError(hr)
}

func (obj *ITaskbarList) ActivateTab(hwnd win.HWND) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().ActivateTab,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd))
	return hresultToError(hr)
}

func (obj *ITaskbarList) SetActiveAlt(hwnd win.HWND) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().SetActiveAlt,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd))
	return hresultToError(hr)
}

func (obj *ITaskbarList2) MarkFullscreenWindow(hwnd win.HWND, fullscreen bool) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().MarkFullscreenWindow,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd),
		uintptr(win.BoolToBOOL(fullscreen)))
	return hresultToError(hr)
}

func (obj *ITaskbarList3) SetProgressState(hwnd win.HWND, tbpFlags TBPFLAG) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().SetProgressState,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd),
		uintptr(tbpFlags))
	return hresultToError(hr)
}

func (obj *ITaskbarList3) RegisterTab(hwndTab, hwndMDI win.HWND) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().RegisterTab,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwndTab),
		uintptr(hwndMDI))
	return hresultToError(hr)
}

func (obj *ITaskbarList3) UnregisterTab(hwndTab win.HWND) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().UnregisterTab,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwndTab))
	return hresultToError(hr)
}

func (obj *ITaskbarList3) SetTabOrder(hwndTab, hwndInsertBefore win.HWND) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().SetTabOrder,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwndTab),
		uintptr(hwndInsertBefore))
	return hresultToError(hr)
}

func (obj *ITaskbarList3) SetTabActive(hwndTab, hwndMDI win.HWND, tbatFlags TBATFLAG) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().SetTabActive,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwndTab),
		uintptr(hwndMDI),
		uintptr(tbatFlags))
	return hresultToError(hr)
}

func (obj *ITaskbarList3) ThumbBarAddButtons(hwnd win.HWND, buttons []THUMBBUTTON) error {
	if len(buttons) == 0 {
		return ole.NewError(ole.E_INVALIDARG)
	}
	hr, _, _ := syscall.SyscallN(
		obj.VTable().ThumbBarAddButtons,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd),
		uintptr(len(buttons)),
		uintptr(unsafe.Pointer(&buttons[0])))
	return hresultToError(hr)
}

func (obj *ITaskbarList3) ThumbBarUpdateButtons(hwnd win.HWND, buttons []THUMBBUTTON) error {
	if len(buttons) == 0 {
		return ole.NewError(ole.E_INVALIDARG)
	}
	hr, _, _ := syscall.SyscallN(
		obj.VTable().ThumbBarUpdateButtons,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd),
		uintptr(len(buttons)),
		uintptr(unsafe.Pointer(&buttons[0])))
	return hresultToError(hr)
}

func (obj *ITaskbarList3) ThumbBarSetImageList(hwnd win.HWND, himl win.HIMAGELIST) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().ThumbBarSetImageList,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd),
		uintptr(himl))
	return hresultToError(hr)
}

func (obj *ITaskbarList3) SetOverlayIcon(hwnd win.HWND, hIcon win.HICON, description *uint16) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().SetOverlayIcon,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd),
		uintptr(hIcon),
		uintptr(unsafe.Pointer(description)))
	return hresultToError(hr)
}

func (obj *ITaskbarList3) SetThumbnailTooltip(hwnd win.HWND, tip *uint16) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().SetThumbnailTooltip,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd),
		uintptr(unsafe.Pointer(tip)))
	return hresultToError(hr)
}

func (obj *ITaskbarList3) SetThumbnailClip(hwnd win.HWND, clip *win.RECT) error {
	hr, _, _ := syscall.SyscallN(
		obj.VTable().SetThumbnailClip,
		uintptr(unsafe.Pointer(obj)),
		uintptr(hwnd),
		uintptr(unsafe.Pointer(clip)))
	return hresultToError(hr)
}
