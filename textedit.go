// Copyright (c) 2025, The TextCore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textcore

import (
	"strings"
	"time"
)

// NewlineMode controls which key chord, if any, inserts a literal newline
// in a multi-line TextEdit.
type NewlineMode uint8

const (
	// NewlineOnEnter inserts a newline on a plain Enter press.
	NewlineOnEnter NewlineMode = iota
	// NewlineOnShiftEnter inserts a newline only with Shift held (no
	// action modifier).
	NewlineOnShiftEnter
	// NewlineOnCtrlEnter inserts a newline only with the action modifier
	// held (no Shift).
	NewlineOnCtrlEnter
	// NewlineNone never inserts a newline from the keyboard.
	NewlineNone
)

// singleLineScrollPadding keeps the caret this many pixels clear of
// either edge of a single-line field's visible window.
const singleLineScrollPadding = 10

// cursorBlinkPeriod is the default interval between cursor visibility
// toggles; the host drives the actual timer, textcore only reports when
// the next toggle is due.
const cursorBlinkPeriod = 500 * time.Millisecond

// TextEventResult reports which dirty flags an event handler touched, so
// the registry can decide whether to re-clear the renderer or only the
// decoration buffers.
type TextEventResult struct {
	TextChanged        bool
	DecorationsChanged bool
}

func (r *TextEventResult) merge(o TextEventResult) {
	r.TextChanged = r.TextChanged || o.TextChanged
	r.DecorationsChanged = r.DecorationsChanged || o.DecorationsChanged
}

// TextEdit is an editable text widget: a TextBox plus IME composition
// state, cursor blink, single-line/newline policy, a placeholder, and an
// owned undo/redo history.
type TextEdit struct {
	TextBox

	compose    *byteRange
	showCursor bool
	blinkStart time.Time
	blinkPeriod time.Duration

	singleLine  bool
	newlineMode NewlineMode
	disabled    bool

	showingPlaceholder bool
	placeholder        *string

	shouldFollowCursor bool

	history EditHistory
}

// newTextEdit builds a TextEdit in its default state.
func newTextEdit(text string, style StyleHandle) *TextEdit {
	e := &TextEdit{
		TextBox:     *newTextBox(text, style),
		blinkPeriod: cursorBlinkPeriod,
	}
	e.cursorReset()
	return e
}

// Text returns the committed buffer contents: if IME composition is in
// flight, the live preedit span is excised so callers never observe
// uncommitted text; if the placeholder is showing, its text is returned
// verbatim (invariant 4).
func (e *TextEdit) Text() string {
	if e.compose == nil {
		return e.text
	}
	return e.text[:e.compose.Start] + e.text[e.compose.End:]
}

// RawText is Text, except it returns "" while the placeholder is showing,
// so callers that want "what did the user actually type" never see the
// placeholder string.
func (e *TextEdit) RawText() string {
	if e.showingPlaceholder {
		return ""
	}
	return e.Text()
}

// Hidden reports whether the widget is currently hidden.
func (e *TextEdit) Hidden() bool { return e.hidden }

// Disabled reports whether the widget currently rejects edits.
func (e *TextEdit) Disabled() bool { return e.disabled }

// SetDisabled sets whether the widget rejects edits. It does not itself
// move focus; callers that need focus-aware disabling should use
// Registry.SetTextEditDisabled instead.
func (e *TextEdit) SetDisabled(v bool) { e.disabled = v }

// IsSingleLine reports whether the widget rejects newline characters.
func (e *TextEdit) IsSingleLine() bool { return e.singleLine }

// SetSingleLine toggles single-line mode. Turning it on immediately
// strips any existing newlines from the buffer.
func (e *TextEdit) SetSingleLine(v bool) {
	e.singleLine = v
	if v {
		e.stripNewlinesInPlace()
	}
}

// GetNewlineMode returns the current newline-insertion policy.
func (e *TextEdit) GetNewlineMode() NewlineMode { return e.newlineMode }

// SetNewlineMode sets the newline-insertion policy.
func (e *TextEdit) SetNewlineMode(m NewlineMode) { e.newlineMode = m }

// ScrollOffset returns the current horizontal scroll offset used by
// single-line mode.
func (e *TextEdit) ScrollOffset() float32 { return e.scrollOffset }

// IsComposing reports whether an IME composition is currently in flight.
func (e *TextEdit) IsComposing() bool { return e.compose != nil }

// ShowingPlaceholder reports whether the buffer currently holds the
// placeholder text rather than user input.
func (e *TextEdit) ShowingPlaceholder() bool { return e.showingPlaceholder }

// SetPlaceholder sets the placeholder string. If the buffer is currently
// empty or already showing a placeholder, the new placeholder is written
// into the buffer immediately.
func (e *TextEdit) SetPlaceholder(s string) {
	e.placeholder = &s
	if e.text == "" || e.showingPlaceholder {
		e.text = s
		e.showingPlaceholder = true
		e.selectionState.setSelection(collapsedAt(0, Upstream))
		e.needsRelayout = true
	}
}

// CursorGeometry returns the focused cursor's decoration rectangles, or
// nil if the caret is not currently shown.
func (e *TextEdit) CursorGeometry() []Rect {
	if !e.showCursor || e.layout == nil {
		return nil
	}
	return e.layout.Geometry(collapsedAt(e.selection.Focus.Index, e.selection.Focus.Affinity))
}

// ImeCursorArea returns the widget-local rectangle the host should
// position its IME candidate window against: while composing, the
// preedit glyph box inflated by a few character-widths of slack so the
// candidate window doesn't jostle as composition grows; otherwise the
// focused selection's geometry.
func (e *TextEdit) ImeCursorArea(avgCharAdvance float32) Rect {
	var base Rect
	if e.layout != nil {
		rects := e.layout.Geometry(e.selection)
		if len(rects) > 0 {
			base = rects[0]
		}
	}
	if e.compose == nil {
		return base
	}
	pad := avgCharAdvance * 3
	return Rect{
		Pos:  Point{X: base.Pos.X, Y: base.Pos.Y},
		Size: Size{Width: base.Size.Width + pad, Height: base.Size.Height},
	}
}

// cursorReset restamps the blink clock and forces the caret visible,
// e.g. after any caret-moving edit or gesture.
func (e *TextEdit) cursorReset() {
	e.blinkStart = time.Now()
	e.blinkPeriod = cursorBlinkPeriod
	e.showCursor = true
}

// cursorBlink recomputes show_cursor from the elapsed time since the
// last reset; the host calls this on its own timer tick, textcore never
// schedules one itself.
func (e *TextEdit) cursorBlink(now time.Time) {
	elapsed := now.Sub(e.blinkStart)
	toggles := elapsed / e.blinkPeriod
	e.showCursor = toggles%2 == 0
}

// nextBlinkTime returns the instant at which show_cursor will next flip.
func (e *TextEdit) nextBlinkTime() time.Time {
	elapsed := time.Since(e.blinkStart)
	toggles := elapsed/e.blinkPeriod + 1
	return e.blinkStart.Add(toggles * e.blinkPeriod)
}

// disableBlink forces the caret visible. It does not stop a later
// cursorBlink call from toggling it again, and nothing in this package
// calls it.
func (e *TextEdit) disableBlink() {
	e.showCursor = true
}

// handleEvent is the full editable event dispatch described by the edit
// state machine: it runs the non-editing base handling first (unless the
// placeholder is showing), then routes editable-only event kinds,
// finishes by restoring the placeholder if the buffer went empty, and
// diffs decorations.
func (e *TextEdit) handleEvent(evt Event, window Window, clip Clipboard, focused bool, clickCount int) (keepFocus bool, result TextEventResult) {
	if e.hidden || e.disabled {
		return focused, TextEventResult{}
	}

	initialSelection := e.selection
	initialShowCursor := e.showCursor
	keepFocus = focused

	if !e.showingPlaceholder {
		kf, changed := e.handleEventNoEditInner(evt, clickCount, focused, clip)
		keepFocus = kf
		if changed {
			result.DecorationsChanged = true
		}
	}

	switch evt.Kind {
	case EventKeyboardInput:
		if evt.KeyState == Pressed && e.compose == nil {
			e.handleKeyboard(evt, clip, &result)
		}
	case EventTouch:
		if e.compose == nil && !e.showingPlaceholder {
			e.handleTouch(evt)
		}
	case EventIme:
		e.handleIme(evt, window, &result)
	case EventMouseWheel:
		if e.singleLine {
			e.handleWheel(evt, &result)
		}
	case EventResized:
		result.TextChanged = true
	}

	e.restorePlaceholderIfAny(&result)

	if e.showCursor != initialShowCursor || !selectionRangeEqual(e.selection, initialSelection) {
		result.DecorationsChanged = true
	}
	if result.TextChanged {
		e.shouldFollowCursor = true
	}
	return keepFocus, result
}

func selectionRangeEqual(a, b Selection) bool {
	as, ae := a.TextRange()
	bs, be := b.TextRange()
	return as == bs && ae == be
}

// handleKeyboard implements the KeyboardInput branch of the state
// machine: action-modifier chords, plain navigation, and character/space/
// enter insertion.
func (e *TextEdit) handleKeyboard(evt Event, clip Clipboard, result *TextEventResult) {
	mods := evt.Modifiers
	action := ActionModifier()

	if mods.Has(action) {
		switch evt.Key {
		case KeyX:
			if !e.selection.Collapsed() {
				start, end := e.selection.TextRange()
				if clip != nil {
					clip.SetText(e.text[start:end])
				}
				e.deleteSelection(result)
			}
			return
		case KeyV:
			if clip != nil {
				if s, ok := clip.GetText(); ok {
					e.insertOrReplaceSelection(s, result)
				}
			}
			return
		case KeyZ:
			if mods.Has(ModShift) {
				e.redo(result)
			} else {
				e.undo(result)
			}
			return
		}
		// 'c' (copy) and 'a' (select all) are handled by the base
		// non-editing layer; everything else (arrows, Home/End, Delete,
		// Backspace) falls through below with the action modifier still
		// set, to be interpreted as a word-boundary variant.
	}

	word := mods.Has(action)
	if !mods.Has(ModShift) && e.layout != nil {
		switch evt.Key {
		case KeyArrowLeft:
			if word {
				e.moveCaret(e.layout.PreviousVisualWord(e.selection.Focus))
			} else {
				e.moveCaret(e.layout.PreviousVisual(e.selection.Focus))
			}
			return
		case KeyArrowRight:
			if word {
				e.moveCaret(e.layout.NextVisualWord(e.selection.Focus))
			} else {
				e.moveCaret(e.layout.NextVisual(e.selection.Focus))
			}
			return
		case KeyArrowUp:
			if e.singleLine {
				e.moveCaret(Cursor{Index: 0, Affinity: Upstream})
			} else {
				e.moveCaret(e.layout.PreviousLine(e.selection.Focus))
			}
			return
		case KeyArrowDown:
			if e.singleLine {
				e.moveCaret(Cursor{Index: len(e.text), Affinity: Downstream})
			} else {
				e.moveCaret(e.layout.NextLine(e.selection.Focus))
			}
			return
		case KeyHome:
			if word {
				e.moveCaret(Cursor{Index: 0, Affinity: Upstream})
			} else {
				e.moveCaret(e.layout.LineStart(e.selection.Focus))
			}
			return
		case KeyEnd:
			if word {
				e.moveCaret(Cursor{Index: len(e.text), Affinity: Downstream})
			} else {
				e.moveCaret(e.layout.LineEnd(e.selection.Focus))
			}
			return
		}
	}

	switch evt.Key {
	case KeyDelete:
		if !e.selection.Collapsed() {
			e.deleteSelection(result)
		} else if mods.Has(action) {
			e.deleteWord(result)
		} else {
			e.delete(result)
		}
		return
	case KeyBackspace:
		if !e.selection.Collapsed() {
			e.deleteSelection(result)
		} else if mods.Has(action) {
			e.backdeleteWord(result)
		} else {
			e.backdelete(result)
		}
		return
	case KeyEnter:
		wantsNewline := false
		switch e.newlineMode {
		case NewlineOnEnter:
			wantsNewline = !mods.HasAny(ModShift | action)
		case NewlineOnShiftEnter:
			wantsNewline = mods.Has(ModShift) && !mods.Has(action)
		case NewlineOnCtrlEnter:
			wantsNewline = mods.Has(action) && !mods.Has(ModShift)
		case NewlineNone:
			wantsNewline = false
		}
		if wantsNewline && !e.singleLine {
			e.insertOrReplaceSelection("\n", result)
		}
		return
	case KeySpace:
		if !mods.Has(action) {
			e.insertOrReplaceSelection(" ", result)
		}
		return
	case KeyCharacter:
		if !mods.Has(action) && evt.Character != 0 {
			e.insertOrReplaceSelection(string(evt.Character), result)
		}
		return
	}
}

// moveCaret collapses the selection to c and requests relayout follow-up.
func (e *TextEdit) moveCaret(c Cursor) {
	e.selectionState.setSelection(collapsedAt(c.Index, c.Affinity))
	e.shouldFollowCursor = true
}

// handleTouch implements the Touch branch of the state machine.
func (e *TextEdit) handleTouch(evt Event) {
	if e.layout == nil {
		return
	}
	p := e.localPoint(evt.Position)
	switch evt.TouchPhase {
	case TouchStarted:
		e.moveToPoint(e.layout, p)
	case TouchMoved:
		e.extendSelectionToPoint(e.layout, p, 1)
	case TouchCancelled:
		e.reset()
	case TouchEnded:
	}
}

// handleIme implements the Ime branch: Disabled clears composition,
// Commit clears the placeholder and inserts the committed text, and
// Preedit either clears composition (empty text) or updates it and asks
// the host to reposition its candidate window.
func (e *TextEdit) handleIme(evt Event, window Window, result *TextEventResult) {
	switch evt.ImeKind {
	case ImeDisabled:
		e.clearCompose(result)
	case ImeCommit:
		e.clearCompose(result)
		e.clearPlaceholder()
		e.insertOrReplaceSelection(evt.ImeText, result)
	case ImePreedit:
		if evt.ImeText == "" {
			e.clearCompose(result)
			return
		}
		var cursor *ImeRange
		if evt.ImeHasCursor {
			cursor = &evt.ImeCursor
		}
		e.setCompose(evt.ImeText, cursor, result)
		if window != nil && e.layout != nil {
			rects := e.layout.Geometry(e.selection)
			if len(rects) > 0 {
				window.SetIMECursorArea(rects[0].Pos, rects[0].Size)
			}
		}
	}
}

// setCompose installs or updates the live IME preedit span. If already
// composing, the existing preedit range is replaced with text; otherwise
// the current selection is replaced with text and a fresh compose range
// is opened at its start. cursor, if present, places the selection
// within the newly inserted text using unchecked cursors -- safe because
// a relayout is always pending after any compose update (invariant 7).
func (e *TextEdit) setCompose(text string, cursor *ImeRange, result *TextEventResult) {
	if e.singleLine {
		text = stripNewlines(text)
	}
	var start int
	if e.compose != nil {
		start = e.compose.Start
		e.spliceBuffer(*e.compose, text)
	} else {
		s, en := e.selection.TextRange()
		start = s
		e.spliceBuffer(byteRange{Start: s, End: en}, text)
	}
	e.compose = &byteRange{Start: start, End: start + len(text)}
	e.showCursor = cursor != nil
	if cursor != nil {
		anchor := cursorUnchecked(e.layout, start+cursor.Start, Upstream)
		focus := cursorUnchecked(e.layout, start+cursor.End, Upstream)
		e.selection = Selection{Anchor: anchor, Focus: focus}
	} else {
		e.selection = collapsedAt(start+len(text), Upstream)
	}
	e.needsRelayout = true
	result.TextChanged = true
}

// clearCompose removes the live preedit span from the buffer, restores
// the caret as visible, and collapses it to the start of where the
// preedit was.
func (e *TextEdit) clearCompose(result *TextEventResult) {
	if e.compose == nil {
		return
	}
	rng := *e.compose
	e.spliceBuffer(rng, "")
	e.compose = nil
	e.showCursor = true
	e.selection = collapsedAt(rng.Start, Upstream)
	e.needsRelayout = true
	result.TextChanged = true
}

// cursorUnchecked builds a Cursor from a raw byte index without
// validating cluster boundaries, falling back to a cursor at the raw,
// unclamped index if no layout is available yet.
func cursorUnchecked(l Layout, index int, affinity Affinity) Cursor {
	if l == nil {
		return Cursor{Index: index, Affinity: affinity}
	}
	return l.CursorFromByteIndexUnchecked(index, affinity)
}

// handleWheel implements the single-line MouseWheel branch: horizontal
// scroll, clamped to the range the text can actually be scrolled within.
func (e *TextEdit) handleWheel(evt Event, result *TextEventResult) {
	var dx float32
	switch evt.ScrollDelta.Kind {
	case ScrollDeltaLine:
		dx = evt.ScrollDelta.X * 30
	case ScrollDeltaPixel:
		dx = evt.ScrollDelta.X
	}
	if dx == 0 {
		return
	}
	maxScroll := float32(0)
	if e.layout != nil {
		if full := e.layout.FullWidth() - e.maxAdvance; full > 0 {
			maxScroll = full
		}
	}
	next := e.scrollOffset - dx
	if next < 0 {
		next = 0
	}
	if next > maxScroll {
		next = maxScroll
	}
	if next != e.scrollOffset {
		e.scrollOffset = next
		result.TextChanged = true
	}
}

// insertOrReplaceSelection clears any placeholder, then replaces the
// current selection (or inserts at the collapsed caret) with s.
func (e *TextEdit) insertOrReplaceSelection(s string, result *TextEventResult) {
	e.clearPlaceholder()
	if e.singleLine {
		s = stripNewlines(s)
	}
	start, end := e.selection.TextRange()
	e.replaceRangeAndRecord(byteRange{Start: start, End: end}, s, result)
}

// replaceSelection replaces rng in the buffer with s without recording
// history, clearing the placeholder, or touching the selection; used
// internally by undo and redo to apply a TextRestore.
func (e *TextEdit) replaceSelection(rng byteRange, s string) {
	e.spliceBuffer(rng, s)
}

// replaceRangeAndRecord is the single point through which every editing
// mutation flows: it records the edit in history, splices the buffer,
// and sets the resulting selection.
func (e *TextEdit) replaceRangeAndRecord(rng byteRange, newText string, result *TextEventResult) {
	old := e.text[rng.Start:rng.End]
	prevSelection := e.selection
	e.spliceBuffer(rng, newText)

	insertedRange := byteRange{Start: rng.Start, End: rng.Start + len(newText)}
	e.history.record(old, newText, prevSelection, insertedRange)

	if strings.HasSuffix(newText, "\n") {
		e.selectionState.setSelection(collapsedAt(insertedRange.End, Downstream))
	} else {
		e.selectionState.setSelection(collapsedAt(insertedRange.End, Upstream))
	}
	e.needsRelayout = true
	result.TextChanged = true
}

// spliceBuffer replaces rng in the live buffer with s and enforces the
// single-line no-newline invariant afterward.
func (e *TextEdit) spliceBuffer(rng byteRange, s string) {
	e.text = e.text[:rng.Start] + s + e.text[rng.End:]
	if e.singleLine {
		e.stripNewlinesInPlace()
	}
}

// deleteSelection deletes the current non-empty selection.
func (e *TextEdit) deleteSelection(result *TextEventResult) {
	e.clearPlaceholder()
	start, end := e.selection.TextRange()
	if start == end {
		return
	}
	e.replaceRangeAndRecord(byteRange{Start: start, End: end}, "", result)
}

// delete deletes the downstream logical cluster from a collapsed caret.
func (e *TextEdit) delete(result *TextEventResult) {
	if e.layout == nil {
		return
	}
	e.clearPlaceholder()
	end := e.layout.NextVisual(e.selection.Focus).Index
	start := e.selection.Focus.Index
	if end <= start {
		return
	}
	e.replaceRangeAndRecord(byteRange{Start: start, End: end}, "", result)
}

// deleteWord deletes forward to the next logical word boundary.
func (e *TextEdit) deleteWord(result *TextEventResult) {
	if e.layout == nil {
		return
	}
	e.clearPlaceholder()
	end := e.layout.NextVisualWord(e.selection.Focus).Index
	start := e.selection.Focus.Index
	if end <= start {
		return
	}
	e.replaceRangeAndRecord(byteRange{Start: start, End: end}, "", result)
}

// backdelete deletes back from a collapsed caret to the layout engine's
// PreviousVisual cluster boundary, so a multi-codepoint cluster is
// deleted as one unit (there is no separate hard-line-break or emoji
// case; the layout engine's cluster boundary decides).
func (e *TextEdit) backdelete(result *TextEventResult) {
	if e.layout == nil {
		return
	}
	e.clearPlaceholder()
	start := e.layout.PreviousVisual(e.selection.Focus).Index
	end := e.selection.Focus.Index
	if start >= end {
		return
	}
	e.replaceRangeAndRecord(byteRange{Start: start, End: end}, "", result)
}

// backdeleteWord deletes backward to the previous logical word boundary.
func (e *TextEdit) backdeleteWord(result *TextEventResult) {
	if e.layout == nil {
		return
	}
	e.clearPlaceholder()
	start := e.layout.PreviousVisualWord(e.selection.Focus).Index
	end := e.selection.Focus.Index
	if start >= end {
		return
	}
	e.replaceRangeAndRecord(byteRange{Start: start, End: end}, "", result)
}

// clearPlaceholder clears placeholder display state, emptying the buffer
// so subsequent insertion happens against real (empty) content, not the
// placeholder string.
func (e *TextEdit) clearPlaceholder() {
	if !e.showingPlaceholder {
		return
	}
	e.text = ""
	e.showingPlaceholder = false
	e.selectionState.setSelection(collapsedAt(0, Upstream))
}

// restorePlaceholderIfAny writes the placeholder back into an empty
// buffer after an event, if one is configured and not already showing.
func (e *TextEdit) restorePlaceholderIfAny(result *TextEventResult) {
	if e.text != "" || e.placeholder == nil || e.showingPlaceholder {
		return
	}
	e.text = *e.placeholder
	e.showingPlaceholder = true
	e.selectionState.setSelection(collapsedAt(0, Upstream))
	e.needsRelayout = true
	result.TextChanged = true
}

// undo reverses the most recent history entry, clearing the placeholder
// first if necessary so the restored content lands in a real buffer.
func (e *TextEdit) undo(result *TextEventResult) {
	e.clearPlaceholder()
	restore, ok := e.history.undo(func(r byteRange) string {
		return e.text[r.Start:r.End]
	})
	if !ok {
		return
	}
	e.replaceSelection(restore.RangeToClear, restore.TextToRestore)
	e.selectionState.setSelection(restore.Selection)
	e.needsRelayout = true
	result.TextChanged = true
}

// redo re-applies the next history entry.
func (e *TextEdit) redo(result *TextEventResult) {
	e.clearPlaceholder()
	restore, ok := e.history.redo()
	if !ok {
		return
	}
	e.replaceSelection(restore.RangeToClear, restore.TextToRestore)
	e.selectionState.setSelection(restore.Selection)
	e.needsRelayout = true
	result.TextChanged = true
}

// SetText replaces the buffer outright, bypassing history entirely:
// history is reset, the caret moves to the end, any composition is
// dropped, the blink clock resets, and the placeholder is cleared.
func (e *TextEdit) SetText(s string) {
	if e.singleLine {
		s = stripNewlines(s)
	}
	e.text = s
	e.showingPlaceholder = false
	e.compose = nil
	e.history.reset()
	e.selectionState.setSelection(collapsedAt(len(s), Upstream))
	e.cursorReset()
	e.needsRelayout = true
}

// stripNewlines returns s with every '\n' and '\r' replaced by a space,
// preserving length and every other byte exactly.
func stripNewlines(s string) string {
	if !strings.ContainsAny(s, "\n\r") {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c == '\n' || c == '\r' {
			b[i] = ' '
		}
	}
	return string(b)
}

// stripNewlinesInPlace enforces the single-line invariant on the live
// buffer after any mutation.
func (e *TextEdit) stripNewlinesInPlace() {
	e.text = stripNewlines(e.text)
}

// updateScrollToCursor recomputes the single-line horizontal scroll
// offset so the caret stays within the visible window, returning whether
// the offset changed (callers should treat that as a text-changed
// condition so the renderer re-uploads).
func (e *TextEdit) updateScrollToCursor() bool {
	if !e.singleLine || e.layout == nil {
		return false
	}
	rects := e.layout.Geometry(collapsedAt(e.selection.Focus.Index, e.selection.Focus.Affinity))
	if len(rects) == 0 {
		return false
	}
	cursorX := rects[0].Pos.X
	total := e.layout.FullWidth()
	visible := e.maxAdvance

	old := e.scrollOffset
	next := old

	if total <= visible {
		next = 0
	} else if e.selection.Focus.Index >= len(e.text) {
		next = total - visible + singleLineScrollPadding
	} else if cursorX < next+singleLineScrollPadding {
		next = cursorX - singleLineScrollPadding
	} else if cursorX > next+visible-singleLineScrollPadding {
		next = cursorX - visible + singleLineScrollPadding
	}
	if next < 0 {
		next = 0
	}
	if maxScroll := total - visible + singleLineScrollPadding; total > visible && next > maxScroll {
		next = maxScroll
	}
	if next != old {
		e.scrollOffset = next
		return true
	}
	return false
}
