// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 4: IME round-trip. Buffer "ab" with caret at 2; Preedit("漢",
// (0,1)) inserts the preedit glyph and opens a 3-byte compose range at
// byte 2; Commit("漢字") then replaces the preedit with the committed
// text and clears composition.
func TestIMERoundTrip(t *testing.T) {
	e := newEdit("ab")
	e.selectionState.setSelection(collapsedAt(2, Upstream))

	var result TextEventResult
	e.handleIme(Event{
		Kind:         EventIme,
		ImeKind:      ImePreedit,
		ImeText:      "漢",
		ImeCursor:    ImeRange{Start: 0, End: len("漢")},
		ImeHasCursor: true,
	}, nil, &result)
	e.layout = newFakeLayout(e.text)

	require.True(t, e.IsComposing())
	assert.Equal(t, "ab漢", e.text)
	assert.Equal(t, 2, e.compose.Start)
	assert.Equal(t, 2+len("漢"), e.compose.End)
	assert.True(t, e.showCursor)

	e.handleIme(Event{Kind: EventIme, ImeKind: ImeCommit, ImeText: "漢字"}, nil, &result)
	e.layout = newFakeLayout(e.text)

	assert.False(t, e.IsComposing())
	assert.Equal(t, "ab漢字", e.text)
	assert.Equal(t, 2+len("漢字"), e.selection.Focus.Index)
}

// An empty Preedit clears composition without inserting anything.
func TestIMEEmptyPreeditClearsCompose(t *testing.T) {
	e := newEdit("ab")
	e.selectionState.setSelection(collapsedAt(2, Upstream))
	var result TextEventResult

	e.handleIme(Event{Kind: EventIme, ImeKind: ImePreedit, ImeText: "x"}, nil, &result)
	e.layout = newFakeLayout(e.text)
	require.True(t, e.IsComposing())

	e.handleIme(Event{Kind: EventIme, ImeKind: ImePreedit, ImeText: ""}, nil, &result)
	assert.False(t, e.IsComposing())
	assert.Equal(t, "ab", e.text)
}

// Scenario 5: single-line paste strips newlines. Pasting "a\nb\r\nc" into
// a single-line field replaces every \n and \r with a space.
func TestSingleLinePasteStripsNewlines(t *testing.T) {
	e := newEdit("")
	e.singleLine = true

	clip := &fakeClipboard{text: "a\nb\r\nc", has: true}
	var result TextEventResult
	e.handleKeyboard(Event{Kind: EventKeyboardInput, KeyState: Pressed, Key: KeyV, Modifiers: ActionModifier()}, clip, &result)

	assert.Equal(t, "a b  c", e.text)
	assert.Equal(t, 6, e.selection.Focus.Index)
}

// Typing Enter in single-line mode never inserts a newline, regardless
// of the configured newline mode.
func TestSingleLineEnterNeverInserts(t *testing.T) {
	e := newEdit("ab")
	e.singleLine = true
	e.selectionState.setSelection(collapsedAt(2, Upstream))

	var result TextEventResult
	e.handleKeyboard(Event{Kind: EventKeyboardInput, KeyState: Pressed, Key: KeyEnter}, nil, &result)
	assert.Equal(t, "ab", e.text)
	assert.False(t, result.TextChanged)
}

// Placeholder handling: setting a placeholder on an empty field writes
// it verbatim; the first keystroke clears it before inserting.
func TestPlaceholderClearedOnFirstEdit(t *testing.T) {
	e := newEdit("")
	e.SetPlaceholder("type here")
	require.True(t, e.showingPlaceholder)
	assert.Equal(t, "type here", e.text)
	assert.Equal(t, 0, e.selection.Focus.Index)

	e.layout = newFakeLayout(e.text)
	var result TextEventResult
	e.handleKeyboard(Event{Kind: EventKeyboardInput, KeyState: Pressed, Key: KeyCharacter, Character: 'x'}, nil, &result)

	assert.False(t, e.showingPlaceholder)
	assert.Equal(t, "x", e.text)
}

// Clearing the buffer back to empty after an edit restores the
// placeholder.
func TestPlaceholderRestoredWhenEmptied(t *testing.T) {
	e := newEdit("x")
	e.SetPlaceholder("type here")
	e.layout = newFakeLayout(e.text)
	e.selectionState.setSelection(Selection{Anchor: collapsedAt(0, Upstream).Anchor, Focus: collapsedAt(1, Upstream).Anchor})

	var result TextEventResult
	e.deleteSelection(&result)
	e.restorePlaceholderIfAny(&result)

	assert.True(t, e.showingPlaceholder)
	assert.Equal(t, "type here", e.text)
}

// SetText bypasses history entirely: after SetText, undo is a no-op.
func TestSetTextBypassesHistory(t *testing.T) {
	e := newEdit("")
	e.typeChar(t, 'a')
	require.Equal(t, 1, e.history.Len())

	e.SetText("replaced")
	assert.Equal(t, 0, e.history.Len())
	assert.Equal(t, len("replaced"), e.selection.Focus.Index)

	var result TextEventResult
	_, ok := e.history.undo(func(r byteRange) string { return "" })
	assert.False(t, ok)
	e.undo(&result)
	assert.Equal(t, "replaced", e.text)
}

// P3: single_line == true implies no '\n' or '\r' survives any edit API.
func TestSingleLineInvariantHoldsAfterSetSingleLine(t *testing.T) {
	e := newEdit("a\nb\r\nc")
	e.SetSingleLine(true)
	assert.NotContains(t, e.text, "\n")
	assert.NotContains(t, e.text, "\r")
}

// P4: composing then clearing without a commit restores the
// pre-composition buffer exactly.
func TestComposeThenClearRestoresBuffer(t *testing.T) {
	e := newEdit("ab")
	e.selectionState.setSelection(collapsedAt(2, Upstream))
	before := e.text

	var result TextEventResult
	e.setCompose("x", nil, &result)
	e.layout = newFakeLayout(e.text)
	assert.NotEqual(t, before, e.text)

	e.clearCompose(&result)
	assert.Equal(t, before, e.text)
	assert.False(t, e.IsComposing())
}

// Backspace deletes a non-empty selection instead of the previous
// character.
func TestBackspaceDeletesSelectionFirst(t *testing.T) {
	e := newEdit("hello")
	e.layout = newFakeLayout(e.text)
	e.selectionState.setSelection(Selection{Anchor: collapsedAt(1, Upstream).Anchor, Focus: collapsedAt(4, Upstream).Anchor})

	var result TextEventResult
	e.handleKeyboard(Event{Kind: EventKeyboardInput, KeyState: Pressed, Key: KeyBackspace}, nil, &result)

	assert.Equal(t, "ho", e.text)
}
