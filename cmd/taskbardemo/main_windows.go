/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

// taskbardemo exercises the full taskbar surface against a live shell: it
// claims its own AppUserModelID, then drives progress, overlay icons,
// thumbnail tooltips, clipping, and a thumbnail toolbar on a small window.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/lxn/walk"
	"github.com/lxn/win"

	"github.com/glasswing/wintaskbar"
	"github.com/glasswing/wintaskbar/appid"
	"github.com/glasswing/wintaskbar/l18n"
	"github.com/glasswing/wintaskbar/shobj"
)

const demoWindowClass = "Taskbar Demo Window"

const (
	buttonIDRewind = 100 + iota
	buttonIDPause
)

const progressTotal = 100

func init() {
	walk.MustRegisterWindowClass(demoWindowClass)
}

type DemoWindow struct {
	walk.FormBase

	progressBar *walk.ProgressBar

	taskbar   *wintaskbar.TaskbarList
	warnIcon  win.HICON
	completed uint64
	paused    bool
	overlaid  bool
	clipped   bool
}

func NewDemoWindow() (*DemoWindow, error) {
	dw := new(DemoWindow)
	err := walk.InitWindow(dw, nil, demoWindowClass, win.WS_OVERLAPPEDWINDOW, win.WS_EX_CONTROLPARENT)
	if err != nil {
		return nil, err
	}
	win.ChangeWindowMessageFilterEx(dw.Handle(), wintaskbar.TaskbarButtonCreatedMessage(), win.MSGFLT_ALLOW, nil)

	dw.SetTitle(l18n.Sprintf("Taskbar Demo"))
	dw.SetSize(walk.Size{Width: 420, Height: 180})
	dw.SetLayout(walk.NewVBoxLayout())
	dw.warnIcon = win.LoadIcon(0, win.MAKEINTRESOURCE(win.IDI_WARNING))

	if dw.progressBar, err = walk.NewProgressBar(dw); err != nil {
		return nil, err
	}
	dw.progressBar.SetRange(0, progressTotal)

	pauseButton, err := walk.NewPushButton(dw)
	if err != nil {
		return nil, err
	}
	pauseButton.SetText(l18n.Sprintf("Pause / Resume"))
	pauseButton.Clicked().Attach(dw.togglePaused)

	overlayButton, err := walk.NewPushButton(dw)
	if err != nil {
		return nil, err
	}
	overlayButton.SetText(l18n.Sprintf("Toggle overlay badge"))
	overlayButton.Clicked().Attach(dw.toggleOverlay)

	clipButton, err := walk.NewPushButton(dw)
	if err != nil {
		return nil, err
	}
	clipButton.SetText(l18n.Sprintf("Toggle thumbnail clip"))
	clipButton.Clicked().Attach(dw.toggleClip)

	return dw, nil
}

// WndProc wires the shell's messages: taskbar state must be (re)applied
// whenever the shell announces the button exists, and thumbnail toolbar
// clicks arrive as WM_COMMAND with THBN_CLICKED in the high word.
func (dw *DemoWindow) WndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case wintaskbar.TaskbarButtonCreatedMessage():
		dw.connectTaskbar()
	case win.WM_COMMAND:
		if win.HIWORD(uint32(wParam)) == shobj.THBN_CLICKED {
			dw.thumbButtonClicked(win.LOWORD(uint32(wParam)))
			return 0
		}
	}
	return dw.FormBase.WndProc(hwnd, msg, wParam, lParam)
}

func (dw *DemoWindow) hwnd() wintaskbar.HWND {
	return wintaskbar.HWND(dw.Handle())
}

// connectTaskbar creates and initializes the taskbar connection, then
// applies all state the shell may have discarded.
func (dw *DemoWindow) connectTaskbar() {
	if dw.taskbar == nil {
		tbl, err := wintaskbar.New()
		if err != nil {
			log.Printf("Unable to connect to the taskbar: %v", err)
			return
		}
		if err = tbl.Init(); err != nil {
			log.Printf("Unable to initialize the taskbar list: %v", err)
			tbl.Close()
			return
		}
		dw.taskbar = tbl
	}

	buttons := []wintaskbar.ThumbButton{
		{
			Mask:    wintaskbar.MaskIcon | wintaskbar.MaskTooltip | wintaskbar.MaskFlags,
			ID:      buttonIDRewind,
			Icon:    wintaskbar.HICON(win.LoadIcon(0, win.MAKEINTRESOURCE(win.IDI_INFORMATION))),
			Tooltip: l18n.Sprintf("Restart progress"),
			Flags:   wintaskbar.ButtonEnabled,
		},
		{
			Mask:    wintaskbar.MaskIcon | wintaskbar.MaskTooltip | wintaskbar.MaskFlags,
			ID:      buttonIDPause,
			Icon:    wintaskbar.HICON(win.LoadIcon(0, win.MAKEINTRESOURCE(win.IDI_QUESTION))),
			Tooltip: l18n.Sprintf("Pause or resume"),
			Flags:   wintaskbar.ButtonEnabled | wintaskbar.ButtonDismissOnClick,
		},
	}
	if err := dw.taskbar.ThumbBarAddButtons(dw.hwnd(), buttons); err != nil {
		log.Printf("Unable to install thumbnail toolbar: %v", err)
	}
	if err := dw.taskbar.SetThumbnailTooltip(dw.hwnd(), l18n.Sprintf("Watch the bar go")); err != nil {
		log.Printf("Unable to set thumbnail tooltip: %v", err)
	}
	dw.applyProgress()
}

func (dw *DemoWindow) thumbButtonClicked(id uint16) {
	switch id {
	case buttonIDRewind:
		dw.completed = 0
		dw.applyProgress()
	case buttonIDPause:
		dw.togglePaused()
	}
}

func (dw *DemoWindow) applyProgress() {
	if dw.taskbar == nil {
		return
	}
	dw.progressBar.SetValue(int(dw.completed))
	if err := dw.taskbar.SetProgressValue(dw.hwnd(), dw.completed, progressTotal); err != nil {
		log.Printf("Unable to set progress value: %v", err)
	}
	state := wintaskbar.ProgressNormal
	if dw.paused {
		state = wintaskbar.ProgressPaused
	}
	if err := dw.taskbar.SetProgressState(dw.hwnd(), state); err != nil {
		log.Printf("Unable to set progress state: %v", err)
	}
}

func (dw *DemoWindow) togglePaused() {
	dw.paused = !dw.paused
	dw.applyProgress()
}

func (dw *DemoWindow) toggleOverlay() {
	if dw.taskbar == nil {
		return
	}
	dw.overlaid = !dw.overlaid
	icon := wintaskbar.HICON(0)
	description := ""
	if dw.overlaid {
		icon = wintaskbar.HICON(dw.warnIcon)
		description = l18n.Sprintf("Attention required")
	}
	if err := dw.taskbar.SetOverlayIcon(dw.hwnd(), icon, description); err != nil {
		log.Printf("Unable to set overlay icon: %v", err)
	}
}

func (dw *DemoWindow) toggleClip() {
	if dw.taskbar == nil {
		return
	}
	dw.clipped = !dw.clipped
	var err error
	if dw.clipped {
		err = dw.taskbar.SetThumbnailClip(dw.hwnd(), &wintaskbar.Rect{Left: 0, Top: 0, Right: 200, Bottom: 120})
	} else {
		err = dw.taskbar.ClearThumbnailClip(dw.hwnd())
	}
	if err != nil {
		log.Printf("Unable to adjust thumbnail clip: %v", err)
	}
}

func (dw *DemoWindow) tick() {
	if dw.paused || dw.taskbar == nil {
		return
	}
	dw.completed++
	if dw.completed > progressTotal {
		dw.completed = 0
	}
	dw.applyProgress()
}

func main() {
	demoAppID := flag.String("appid", "Glasswing.TaskbarDemo", "AppUserModelID to claim for this process")
	flag.Parse()

	// Claim our own taskbar identity before any window exists, so the
	// shell does not group us with other Go programs. Failure is not
	// fatal; the demo still works, just grouped differently.
	if err := appid.Set(*demoAppID); err != nil {
		log.Printf("Unable to set AppUserModelID: %v", err)
	}

	dw, err := NewDemoWindow()
	if err != nil {
		log.Fatalf("Unable to create demo window: %v", err)
	}
	defer func() {
		if dw.taskbar != nil {
			dw.taskbar.Close()
		}
	}()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			dw.Synchronize(dw.tick)
		}
	}()

	dw.Show()
	dw.Run()
}
