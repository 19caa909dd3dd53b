// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

import "runtime"

// Modifiers is a bitmask of keyboard modifier keys held during an event.
// It is a plain bitmask rather than a codegen'd enum type because
// textcore ships standalone and has no access to a code generator.
type Modifiers uint8

const (
	// ModControl is the Control key (Command on macOS keyboards maps to
	// ModMeta, not this one; see ActionModifier).
	ModControl Modifiers = 1 << iota
	// ModShift is the Shift key.
	ModShift
	// ModAlt is the Alt/Option key.
	ModAlt
	// ModMeta is the Meta/Super/Command key.
	ModMeta
)

// Has reports whether all bits in m are set in the receiver.
func (m Modifiers) Has(bits Modifiers) bool { return m&bits == bits }

// HasAny reports whether any bit in bits is set in the receiver.
func (m Modifiers) HasAny(bits Modifiers) bool { return m&bits != 0 }

// ActionModifier returns the modifier bit used for chord shortcuts
// (copy/cut/paste/select-all/undo/redo): Meta on macOS, Control elsewhere.
func ActionModifier() Modifiers {
	if runtime.GOOS == "darwin" {
		return ModMeta
	}
	return ModControl
}

// ElementState is the press/release state of a button or key.
type ElementState uint8

const (
	Pressed ElementState = iota
	Released
)

// MouseButton identifies which button a MouseInput event reports.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonOther
)

// MouseScrollDeltaKind says whether a MouseScrollDelta's X and Y are
// measured in lines or in pixels.
type MouseScrollDeltaKind uint8

const (
	ScrollDeltaLine MouseScrollDeltaKind = iota
	ScrollDeltaPixel
)

// MouseScrollDelta is the payload of a MouseWheel event; Kind gives the
// unit of X and Y.
type MouseScrollDelta struct {
	Kind MouseScrollDeltaKind
	X, Y float32
}

// Key identifies a keyboard key at a level independent of modifiers and
// layout, covering the keys textcore's state machine cares about.
type Key uint8

const (
	KeyNone Key = iota
	KeyCharacter
	KeySpace
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyTab
	KeyEscape
	// KeyA..KeyZ cover the action-modifier chords (copy/cut/paste/select
	// all/undo/redo); Character carries the literal rune to insert.
	KeyA
	KeyC
	KeyV
	KeyX
	KeyZ
)

// TouchPhase is the lifecycle phase of a Touch event.
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

// ImeKind discriminates the three shapes an Ime event can take.
type ImeKind uint8

const (
	ImeDisabled ImeKind = iota
	ImeCommit
	ImePreedit
)

// Event is the single event type the registry dispatches; exactly one
// field group is meaningful per Kind, following the host's winit-style
// event source named in the external-interfaces contract.
type Event struct {
	Kind EventKind

	// MouseInput
	MouseState  ElementState
	MouseButton MouseButton

	// CursorMoved and Touch; for MouseInput the Registry fills it in
	// from the last CursorMoved position before routing the event.
	Position Point

	// MouseWheel
	ScrollDelta MouseScrollDelta

	// KeyboardInput
	KeyState          ElementState
	Key               Key
	Character         rune
	KeyWithoutMods    Key

	// ModifiersChanged
	Modifiers Modifiers

	// Ime
	ImeKind    ImeKind
	ImeText    string
	ImeCursor  ImeRange
	ImeHasCursor bool

	// Touch
	TouchPhase TouchPhase

	// Resized
	Size Size
}

// ImeRange is the preedit cursor range an Ime::Preedit event may carry.
type ImeRange struct {
	Start, End int
}

// EventKind discriminates the Event union.
type EventKind uint8

const (
	EventMouseInput EventKind = iota
	EventCursorMoved
	EventMouseWheel
	EventKeyboardInput
	EventModifiersChanged
	EventIme
	EventTouch
	EventResized
)
