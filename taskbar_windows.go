/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

package wintaskbar

import (
	"sync"
	"syscall"

	ole "github.com/go-ole/go-ole"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/glasswing/wintaskbar/shobj"
)

// comBackend dispatches facade calls onto the shell's ITaskbarList3 object.
// Arguments pass through unchanged apart from UTF-16 string conversion and
// THUMBBUTTON layout conversion.
type comBackend struct {
	tbl *shobj.ITaskbarList3
}

func newBackend() (backend, error) {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED|ole.COINIT_DISABLE_OLE1DDE); err != nil {
		code := err.(*ole.OleError).Code()
		// S_FALSE means already initialized; RPC_E_CHANGED_MODE means
		// the thread runs in a different apartment model, which the
		// free-threaded TaskbarList object does not mind.
		if code != uintptr(windows.S_OK) && code != uintptr(windows.S_FALSE) && code != uintptr(windows.RPC_E_CHANGED_MODE) {
			return nil, err
		}
	}
	tbl, err := shobj.CreateTaskbarList()
	if err != nil {
		return nil, err
	}
	return &comBackend{tbl: tbl}, nil
}

func (c *comBackend) Init() error {
	return c.tbl.HrInit()
}

func (c *comBackend) Close() error {
	c.tbl.Release()
	c.tbl = nil
	return nil
}

func (c *comBackend) AddTab(hwnd HWND) error {
	return c.tbl.AddTab(win.HWND(hwnd))
}

func (c *comBackend) DeleteTab(hwnd HWND) error {
	return c.tbl.DeleteTab(win.HWND(hwnd))
}

func (c *comBackend) ActivateTab(hwnd HWND) error {
	return c.tbl.ActivateTab(win.HWND(hwnd))
}

func (c *comBackend) SetActiveAlt(hwnd HWND) error {
	return c.tbl.SetActiveAlt(win.HWND(hwnd))
}

func (c *comBackend) MarkFullscreenWindow(hwnd HWND, fullscreen bool) error {
	return c.tbl.MarkFullscreenWindow(win.HWND(hwnd), fullscreen)
}

func (c *comBackend) SetProgressValue(hwnd HWND, completed, total uint64) error {
	return c.tbl.SetProgressValue(win.HWND(hwnd), completed, total)
}

func (c *comBackend) SetProgressState(hwnd HWND, state ProgressState) error {
	return c.tbl.SetProgressState(win.HWND(hwnd), shobj.TBPFLAG(state))
}

func (c *comBackend) RegisterTab(tab, mdi HWND) error {
	return c.tbl.RegisterTab(win.HWND(tab), win.HWND(mdi))
}

func (c *comBackend) UnregisterTab(tab HWND) error {
	return c.tbl.UnregisterTab(win.HWND(tab))
}

func (c *comBackend) SetTabOrder(tab, insertBefore HWND) error {
	return c.tbl.SetTabOrder(win.HWND(tab), win.HWND(insertBefore))
}

func (c *comBackend) SetTabActive(tab, mdi HWND, flags TabActiveFlags) error {
	return c.tbl.SetTabActive(win.HWND(tab), win.HWND(mdi), shobj.TBATFLAG(flags))
}

func (c *comBackend) ThumbBarAddButtons(hwnd HWND, buttons []ThumbButton) error {
	wire, err := wireButtons(buttons)
	if err != nil {
		return err
	}
	return c.tbl.ThumbBarAddButtons(win.HWND(hwnd), wire)
}

func (c *comBackend) ThumbBarUpdateButtons(hwnd HWND, buttons []ThumbButton) error {
	wire, err := wireButtons(buttons)
	if err != nil {
		return err
	}
	return c.tbl.ThumbBarUpdateButtons(win.HWND(hwnd), wire)
}

func (c *comBackend) ThumbBarSetImageList(hwnd HWND, himl HIMAGELIST) error {
	return c.tbl.ThumbBarSetImageList(win.HWND(hwnd), win.HIMAGELIST(himl))
}

func (c *comBackend) SetOverlayIcon(hwnd HWND, icon HICON, description string) error {
	var desc *uint16
	if description != "" {
		var err error
		desc, err = windows.UTF16PtrFromString(description)
		if err != nil {
			return err
		}
	}
	return c.tbl.SetOverlayIcon(win.HWND(hwnd), win.HICON(icon), desc)
}

func (c *comBackend) SetThumbnailTooltip(hwnd HWND, tip string) error {
	var t *uint16
	if tip != "" {
		var err error
		t, err = windows.UTF16PtrFromString(tip)
		if err != nil {
			return err
		}
	}
	return c.tbl.SetThumbnailTooltip(win.HWND(hwnd), t)
}

func (c *comBackend) SetThumbnailClip(hwnd HWND, clip *Rect) error {
	var rc *win.RECT
	if clip != nil {
		rc = &win.RECT{Left: clip.Left, Top: clip.Top, Right: clip.Right, Bottom: clip.Bottom}
	}
	return c.tbl.SetThumbnailClip(win.HWND(hwnd), rc)
}

func wireButtons(buttons []ThumbButton) ([]shobj.THUMBBUTTON, error) {
	wire := make([]shobj.THUMBBUTTON, len(buttons))
	for i, b := range buttons {
		wire[i] = shobj.THUMBBUTTON{
			DwMask:  uint32(b.Mask),
			IId:     b.ID,
			IBitmap: b.Bitmap,
			HIcon:   win.HICON(b.Icon),
			DwFlags: uint32(b.Flags),
		}
		if b.Tooltip != "" {
			tip, err := windows.UTF16FromString(b.Tooltip)
			if err != nil {
				return nil, err
			}
			copy(wire[i].SzTip[:], tip)
		}
	}
	return wire, nil
}

var (
	taskbarButtonCreatedOnce sync.Once
	taskbarButtonCreatedMsg  uint32
)

// TaskbarButtonCreatedMessage returns the broadcast window message the shell
// sends once a window's taskbar button exists, and again whenever the shell
// restarts. Taskbar state applied before this message is discarded, so
// embedders should (re)apply their state upon receiving it.
func TaskbarButtonCreatedMessage() uint32 {
	taskbarButtonCreatedOnce.Do(func() {
		taskbarButtonCreatedMsg = win.RegisterWindowMessage(syscall.StringToUTF16Ptr("TaskbarButtonCreated"))
	})
	return taskbarButtonCreatedMsg
}
