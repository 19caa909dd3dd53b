// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBox(text string) *TextBox {
	b := newTextBox(text, StyleHandle{})
	b.layout = newFakeLayout(text)
	b.needsRelayout = false
	b.width = b.layout.Bounds().Size.Width
	b.height = b.layout.Bounds().Size.Height
	return b
}

// A plain left click collapses the selection to the clicked point and
// grabs focus.
func TestTextBoxClickMovesCaret(t *testing.T) {
	b := newBox("hello world")
	keep, changed := b.handleEventNoEditInner(Event{
		Kind: EventMouseInput, MouseButton: MouseButtonLeft, MouseState: Pressed,
		Position: Point{X: 3 * fakeCharWidth, Y: 0},
	}, 1, false, nil)
	require.True(t, keep)
	assert.True(t, changed)
	assert.True(t, b.selection.Collapsed())
	assert.Equal(t, 3, b.selection.Focus.Index)
}

// A double click (count=2) selects the word under the point.
func TestTextBoxDoubleClickSelectsWord(t *testing.T) {
	b := newBox("hello world")
	_, _ = b.handleEventNoEditInner(Event{
		Kind: EventMouseInput, MouseButton: MouseButtonLeft, MouseState: Pressed,
		Position: Point{X: 8 * fakeCharWidth, Y: 0},
	}, 2, false, nil)
	start, end := b.selection.TextRange()
	assert.Equal(t, "world", b.text[start:end])
}

// Clicking outside the box's laid-out bounds while focused drops focus.
func TestTextBoxClickOutsideDropsFocus(t *testing.T) {
	b := newBox("hi")
	keep, changed := b.handleEventNoEditInner(Event{
		Kind: EventMouseInput, MouseButton: MouseButtonLeft, MouseState: Pressed,
		Position: Point{X: 1000, Y: 1000},
	}, 1, true, nil)
	assert.False(t, keep)
	assert.True(t, changed)
}

// Ctrl/Cmd+A selects the entire buffer.
func TestTextBoxSelectAll(t *testing.T) {
	b := newBox("hello")
	keep, changed := b.handleEventNoEditInner(Event{
		Kind: EventKeyboardInput, KeyState: Pressed, Key: KeyA, Modifiers: ActionModifier(),
	}, 1, true, nil)
	assert.True(t, keep)
	assert.True(t, changed)
	start, end := b.selection.TextRange()
	assert.Equal(t, "hello", b.text[start:end])
}

// Ctrl/Cmd+C copies the selected text to the clipboard and leaves the
// selection untouched (no decoration change).
func TestTextBoxCopy(t *testing.T) {
	b := newBox("hello")
	b.selectionState.setSelection(Selection{Anchor: collapsedAt(0, Upstream).Anchor, Focus: collapsedAt(5, Upstream).Anchor})
	clip := &fakeClipboard{}
	keep, changed := b.handleEventNoEditInner(Event{
		Kind: EventKeyboardInput, KeyState: Pressed, Key: KeyC, Modifiers: ActionModifier(),
	}, 1, true, clip)
	assert.True(t, keep)
	assert.False(t, changed)
	text, ok := clip.GetText()
	require.True(t, ok)
	assert.Equal(t, "hello", text)
}

// A non-selectable box never reports handling an event, regardless of
// focus state.
func TestTextBoxNotSelectableIgnoresEvents(t *testing.T) {
	b := newBox("hello")
	b.SetSelectable(false)
	keep, changed := b.handleEventNoEditInner(Event{
		Kind: EventMouseInput, MouseButton: MouseButtonLeft, MouseState: Pressed,
		Position: Point{X: 0, Y: 0},
	}, 1, false, nil)
	assert.False(t, keep)
	assert.False(t, changed)
}
