/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2026 Glasswing Software. All Rights Reserved.
 */

// Package wintaskbar is a typed client for the shell's ITaskbarList family
// of interfaces, which applications use to control taskbar buttons, progress
// indicators, and thumbnail toolbars. All arguments are validated and
// forwarded to the platform unmodified; every operation reports a single
// status as its returned error and promises no side effects on failure.
package wintaskbar

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Opaque window-system identifiers. Their lifecycle is owned entirely by the
// caller; this layer never creates or destroys them.
type (
	HWND       uintptr
	HICON      uintptr
	HIMAGELIST uintptr
)

// Rect is a clip rectangle in window client coordinates.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// ProgressState selects the visual style of a taskbar button's progress
// indicator. The values are the TBPFLAG enumeration.
type ProgressState uint32

const (
	ProgressNone          ProgressState = 0x0
	ProgressIndeterminate ProgressState = 0x1
	ProgressNormal        ProgressState = 0x2
	ProgressError         ProgressState = 0x4
	ProgressPaused        ProgressState = 0x8
)

func (s ProgressState) valid() bool {
	switch s {
	case ProgressNone, ProgressIndeterminate, ProgressNormal, ProgressError, ProgressPaused:
		return true
	}
	return false
}

// ThumbButtonMask declares which ThumbButton fields carry meaning. The
// values are the THUMBBUTTONMASK enumeration.
type ThumbButtonMask uint32

const (
	MaskBitmap  ThumbButtonMask = 0x1
	MaskIcon    ThumbButtonMask = 0x2
	MaskTooltip ThumbButtonMask = 0x4
	MaskFlags   ThumbButtonMask = 0x8

	maskAll = MaskBitmap | MaskIcon | MaskTooltip | MaskFlags
)

// ThumbButtonFlags controls the behavior and appearance of a thumbnail
// toolbar button. The values are the THUMBBUTTONFLAGS enumeration.
type ThumbButtonFlags uint32

const (
	ButtonEnabled        ThumbButtonFlags = 0x0
	ButtonDisabled       ThumbButtonFlags = 0x1
	ButtonDismissOnClick ThumbButtonFlags = 0x2
	ButtonNoBackground   ThumbButtonFlags = 0x4
	ButtonHidden         ThumbButtonFlags = 0x8
	ButtonNonInteractive ThumbButtonFlags = 0x10

	buttonFlagsAll = ButtonDisabled | ButtonDismissOnClick | ButtonNoBackground | ButtonHidden | ButtonNonInteractive
)

// TabActiveFlags selects how an MDI tab renders its thumbnail and live
// preview. The values are the TBATFLAG enumeration.
type TabActiveFlags uint32

const (
	UseMDIThumbnail   TabActiveFlags = 0x1
	UseMDILivePreview TabActiveFlags = 0x2

	tabActiveFlagsAll = UseMDIThumbnail | UseMDILivePreview
)

// ThumbButton describes one button on a thumbnail toolbar.
//
// Bitmap is a zero-based index into the image list installed with
// ThumbBarSetImageList; Icon is used instead when Mask contains MaskIcon.
// The caller retains ownership of Icon.
type ThumbButton struct {
	Mask    ThumbButtonMask
	ID      uint32
	Bitmap  uint32
	Icon    HICON
	Tooltip string
	Flags   ThumbButtonFlags
}

const (
	// MaxThumbButtons is the shell's limit on thumbnail toolbar buttons
	// per window.
	MaxThumbButtons = 7

	// MaxTooltipLength is the longest tooltip the wire format can carry,
	// in UTF-16 code units. The underlying field is a 260-unit fixed
	// array including the terminator.
	MaxTooltipLength = 259
)

var (
	ErrUnsupported    = errors.New("The shell taskbar is not available on this platform")
	ErrNotInitialized = errors.New("The taskbar list has not been initialized")
	ErrInvalidWindow  = errors.New("A window handle is required")
	ErrNoButtons      = errors.New("At least one thumbnail button is required")
	ErrTooManyButtons = errors.New("The taskbar supports at most 7 thumbnail buttons per window")
	ErrTextTooLong    = errors.New("Text exceeds the 259 UTF-16 code unit limit")
	ErrInvalidText    = errors.New("Text must not contain NUL characters")
	ErrNoClipRect     = errors.New("A clip rectangle is required")
	ErrInvalidEnum    = errors.New("Value is outside the declared enumeration")
)

// backend is the platform call surface behind TaskbarList. On Windows it is
// the ITaskbarList3 COM object; tests substitute a fake.
type backend interface {
	Init() error
	AddTab(hwnd HWND) error
	DeleteTab(hwnd HWND) error
	ActivateTab(hwnd HWND) error
	SetActiveAlt(hwnd HWND) error
	MarkFullscreenWindow(hwnd HWND, fullscreen bool) error
	SetProgressValue(hwnd HWND, completed, total uint64) error
	SetProgressState(hwnd HWND, state ProgressState) error
	RegisterTab(tab, mdi HWND) error
	UnregisterTab(tab HWND) error
	SetTabOrder(tab, insertBefore HWND) error
	SetTabActive(tab, mdi HWND, flags TabActiveFlags) error
	ThumbBarAddButtons(hwnd HWND, buttons []ThumbButton) error
	ThumbBarUpdateButtons(hwnd HWND, buttons []ThumbButton) error
	ThumbBarSetImageList(hwnd HWND, himl HIMAGELIST) error
	SetOverlayIcon(hwnd HWND, icon HICON, description string) error
	SetThumbnailTooltip(hwnd HWND, tip string) error
	SetThumbnailClip(hwnd HWND, clip *Rect) error
	Close() error
}

// TaskbarList is a validated handle to the shell's taskbar. Init must be
// called before any other method. A TaskbarList is safe for concurrent use;
// the shell object is free-threaded, so serialized dispatch suffices.
type TaskbarList struct {
	mu      sync.Mutex
	backend backend
	inited  bool
}

// New connects to the shell's taskbar object. It fails with ErrUnsupported
// on platforms without one. The returned TaskbarList must still be
// initialized with Init before use.
func New() (*TaskbarList, error) {
	b, err := newBackend()
	if err != nil {
		return nil, err
	}
	return &TaskbarList{backend: b}, nil
}

// Init initializes the taskbar connection (HrInit). Calling Init again on an
// initialized TaskbarList is a no-op.
func (t *TaskbarList) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.backend == nil {
		return ErrNotInitialized
	}
	if t.inited {
		return nil
	}
	if err := t.backend.Init(); err != nil {
		return err
	}
	t.inited = true
	return nil
}

// Close releases the underlying shell object. The TaskbarList may not be
// used afterwards.
func (t *TaskbarList) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.backend == nil {
		return nil
	}
	err := t.backend.Close()
	t.backend = nil
	t.inited = false
	return err
}

// do serializes dispatch and enforces the init-before-use contract. The
// backend is never consulted for a rejected call.
func (t *TaskbarList) do(f func(backend) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.inited {
		return ErrNotInitialized
	}
	return f(t.backend)
}

// AddTab adds hwnd to the taskbar as its own button.
func (t *TaskbarList) AddTab(hwnd HWND) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	return t.do(func(b backend) error { return b.AddTab(hwnd) })
}

// DeleteTab removes hwnd's button from the taskbar.
func (t *TaskbarList) DeleteTab(hwnd HWND) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	return t.do(func(b backend) error { return b.DeleteTab(hwnd) })
}

// ActivateTab marks hwnd's button as active.
func (t *TaskbarList) ActivateTab(hwnd HWND) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	return t.do(func(b backend) error { return b.ActivateTab(hwnd) })
}

// SetActiveAlt marks hwnd's button as active without activating the window.
func (t *TaskbarList) SetActiveAlt(hwnd HWND) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	return t.do(func(b backend) error { return b.SetActiveAlt(hwnd) })
}

// MarkFullscreenWindow tells the taskbar whether hwnd is displaying
// fullscreen, so the taskbar can get out of the way.
func (t *TaskbarList) MarkFullscreenWindow(hwnd HWND, fullscreen bool) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	return t.do(func(b backend) error { return b.MarkFullscreenWindow(hwnd, fullscreen) })
}

// SetProgressValue displays completed out of total on hwnd's taskbar button.
func (t *TaskbarList) SetProgressValue(hwnd HWND, completed, total uint64) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	return t.do(func(b backend) error { return b.SetProgressValue(hwnd, completed, total) })
}

// SetProgressState selects the progress indicator style for hwnd's button.
func (t *TaskbarList) SetProgressState(hwnd HWND, state ProgressState) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	if !state.valid() {
		return fmt.Errorf("Progress state %#x: %w", uint32(state), ErrInvalidEnum)
	}
	return t.do(func(b backend) error { return b.SetProgressState(hwnd, state) })
}

// RegisterTab registers tab as a grouped MDI tab of the mdi frame window.
func (t *TaskbarList) RegisterTab(tab, mdi HWND) error {
	if tab == 0 || mdi == 0 {
		return ErrInvalidWindow
	}
	return t.do(func(b backend) error { return b.RegisterTab(tab, mdi) })
}

// UnregisterTab removes a previously registered MDI tab.
func (t *TaskbarList) UnregisterTab(tab HWND) error {
	if tab == 0 {
		return ErrInvalidWindow
	}
	return t.do(func(b backend) error { return b.UnregisterTab(tab) })
}

// SetTabOrder inserts tab before insertBefore in the group. An insertBefore
// of zero appends the tab at the end.
func (t *TaskbarList) SetTabOrder(tab, insertBefore HWND) error {
	if tab == 0 {
		return ErrInvalidWindow
	}
	return t.do(func(b backend) error { return b.SetTabOrder(tab, insertBefore) })
}

// SetTabActive makes tab the active entry of the mdi frame window's group.
func (t *TaskbarList) SetTabActive(tab, mdi HWND, flags TabActiveFlags) error {
	if tab == 0 {
		return ErrInvalidWindow
	}
	if flags&^tabActiveFlagsAll != 0 {
		return fmt.Errorf("Tab active flags %#x: %w", uint32(flags), ErrInvalidEnum)
	}
	return t.do(func(b backend) error { return b.SetTabActive(tab, mdi, flags) })
}

// ThumbBarAddButtons installs the thumbnail toolbar for hwnd. The toolbar
// may be installed only once per window; use ThumbBarUpdateButtons for
// subsequent changes.
func (t *TaskbarList) ThumbBarAddButtons(hwnd HWND, buttons []ThumbButton) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	if err := validateButtons(buttons); err != nil {
		return err
	}
	return t.do(func(b backend) error { return b.ThumbBarAddButtons(hwnd, buttons) })
}

// ThumbBarUpdateButtons updates buttons previously installed with
// ThumbBarAddButtons, matched by ID.
func (t *TaskbarList) ThumbBarUpdateButtons(hwnd HWND, buttons []ThumbButton) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	if err := validateButtons(buttons); err != nil {
		return err
	}
	return t.do(func(b backend) error { return b.ThumbBarUpdateButtons(hwnd, buttons) })
}

// ThumbBarSetImageList installs the image list that Bitmap indices of
// subsequent thumbnail buttons refer to.
func (t *TaskbarList) ThumbBarSetImageList(hwnd HWND, himl HIMAGELIST) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	return t.do(func(b backend) error { return b.ThumbBarSetImageList(hwnd, himl) })
}

// SetOverlayIcon draws icon as a badge atop hwnd's taskbar icon, with an
// accessibility description. A zero icon clears the overlay. The caller
// retains ownership of icon.
func (t *TaskbarList) SetOverlayIcon(hwnd HWND, icon HICON, description string) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	if err := validateText(description); err != nil {
		return fmt.Errorf("Overlay description: %w", err)
	}
	return t.do(func(b backend) error { return b.SetOverlayIcon(hwnd, icon, description) })
}

// SetThumbnailTooltip overrides the tooltip shown when hovering hwnd's
// thumbnail. An empty tip restores the default.
func (t *TaskbarList) SetThumbnailTooltip(hwnd HWND, tip string) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	if err := validateText(tip); err != nil {
		return fmt.Errorf("Thumbnail tooltip: %w", err)
	}
	return t.do(func(b backend) error { return b.SetThumbnailTooltip(hwnd, tip) })
}

// SetThumbnailClip crops hwnd's thumbnail to clip, in client coordinates.
// A nil clip is rejected; use ClearThumbnailClip to restore the full view.
func (t *TaskbarList) SetThumbnailClip(hwnd HWND, clip *Rect) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	if clip == nil {
		return ErrNoClipRect
	}
	return t.do(func(b backend) error { return b.SetThumbnailClip(hwnd, clip) })
}

// ClearThumbnailClip restores hwnd's default, uncropped thumbnail.
func (t *TaskbarList) ClearThumbnailClip(hwnd HWND) error {
	if hwnd == 0 {
		return ErrInvalidWindow
	}
	return t.do(func(b backend) error { return b.SetThumbnailClip(hwnd, nil) })
}

func validateButtons(buttons []ThumbButton) error {
	if len(buttons) == 0 {
		return ErrNoButtons
	}
	if len(buttons) > MaxThumbButtons {
		return ErrTooManyButtons
	}
	for i := range buttons {
		if err := buttons[i].validate(); err != nil {
			return fmt.Errorf("Button %d: %w", i, err)
		}
	}
	return nil
}

func (tb *ThumbButton) validate() error {
	if tb.Mask&^maskAll != 0 {
		return fmt.Errorf("Mask %#x: %w", uint32(tb.Mask), ErrInvalidEnum)
	}
	if tb.Flags&^buttonFlagsAll != 0 {
		return fmt.Errorf("Flags %#x: %w", uint32(tb.Flags), ErrInvalidEnum)
	}
	return validateTooltip(tb.Tooltip)
}

// validateTooltip additionally enforces the fixed-size szTip buffer limit,
// which does not apply to the variable-length overlay and thumbnail strings.
func validateTooltip(s string) error {
	if err := validateText(s); err != nil {
		return err
	}
	if utf16Len(s) > MaxTooltipLength {
		return ErrTextTooLong
	}
	return nil
}

func validateText(s string) error {
	if strings.ContainsRune(s, 0) {
		return ErrInvalidText
	}
	return nil
}

// utf16Len counts the UTF-16 code units s encodes to, which is what the
// wire format's fixed-size buffers are measured in.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
